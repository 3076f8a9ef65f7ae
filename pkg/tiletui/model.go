// Package tiletui is the interactive terminal preview for the tile engine.
// It is a pure display consumer: it calls tile.Apply and tile.FindNeighbor
// and renders the result, but never reimplements layout math itself.
package tiletui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/help"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

// Model is the root bubbletea model for the tile preview. It holds no
// layout math of its own: every tile position comes from tile.Apply, and
// neighbor selection comes from tile.FindNeighbor.
type Model struct {
	registry    *tile.Registry
	names       []string
	layoutIdx   int
	windowCount int
	container   tile.Rect
	current     int
	cache       *tile.Cache
	keys        keyMap
	help        help.Model
	showHelp    bool
	zones       *zone.Manager
	width       int
	height      int
}

// NewModel builds a preview model seeded with the given registry, starting
// layout name, window count, and container size. zm may be nil, in which
// case mouse hit-testing on tiles is disabled.
func NewModel(r *tile.Registry, startLayout string, windowCount int, container tile.Rect, zm *zone.Manager) Model {
	names := r.Names()
	idx := 0
	for i, n := range names {
		if n == startLayout {
			idx = i
			break
		}
	}
	return Model{
		registry:    r,
		names:       names,
		layoutIdx:   idx,
		windowCount: windowCount,
		container:   container,
		cache:       tile.NewCache(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		zones:       zm,
		width:       container.W,
		height:      container.H,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) currentLayout() tile.LayoutDefinition {
	l, _ := m.registry.Get(m.names[m.layoutIdx])
	return l
}

func (m Model) tiles() []tile.Rect {
	return m.cache.Apply(m.currentLayout(), m.windowCount, m.container)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.zones == nil || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		z := m.zones.Get(gridZoneID)
		if z == nil || !z.InBounds(msg) {
			return m, nil
		}
		cellX, cellY := msg.X-z.StartX, msg.Y-z.StartY
		if n := tileAt(m.tiles(), m.container, cellX, cellY, m.width, m.height-2); n != -1 {
			m.current = n
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case matchesKey(msg, m.keys.Quit):
			return m, tea.Quit
		case matchesKey(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case matchesKey(msg, m.keys.NextLayout):
			m.layoutIdx = (m.layoutIdx + 1) % len(m.names)
			m.current = 0
		case matchesKey(msg, m.keys.PrevLayout):
			m.layoutIdx = (m.layoutIdx - 1 + len(m.names)) % len(m.names)
			m.current = 0
		case matchesKey(msg, m.keys.MoreWindows):
			m.windowCount++
		case matchesKey(msg, m.keys.FewerWindows):
			if m.windowCount > 0 {
				m.windowCount--
			}
		case matchesKey(msg, m.keys.Rotate):
			name := m.currentLayout().Name
			if p := m.registry.GetMut(name); p != nil {
				p.RotateGlobal(true)
				m.cache.Invalidate(name)
			}
		case matchesKey(msg, m.keys.North):
			m.moveCurrent(tile.DirNorth)
		case matchesKey(msg, m.keys.South):
			m.moveCurrent(tile.DirSouth)
		case matchesKey(msg, m.keys.East):
			m.moveCurrent(tile.DirEast)
		case matchesKey(msg, m.keys.West):
			m.moveCurrent(tile.DirWest)
		}
	}
	return m, nil
}

func (m *Model) moveCurrent(dir tile.Direction) {
	tiles := m.tiles()
	if len(tiles) == 0 {
		return
	}
	if m.current >= len(tiles) {
		m.current = 0
	}
	if n := tile.FindNeighbor(tiles, m.current, dir, m.container); n != -1 {
		m.current = n
	}
}

func matchesKey(msg tea.KeyMsg, b interface{ Keys() []string }) bool {
	for _, k := range b.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	tiles := m.tiles()
	l := m.currentLayout()
	grid := renderGrid(tiles, m.current, m.container, m.width, m.height-2, m.zones)

	status := fmt.Sprintf(" %s  windows=%d  tile %d/%d  ", l.Name, m.windowCount, min1(m.current+1, len(tiles)), len(tiles))
	out := grid + "\n" + statusBarStyle.Render(status)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

func min1(n, max int) int {
	if max == 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
