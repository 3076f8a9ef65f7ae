package tiletui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

// normalStyle and currentStyle are deliberately uncolored: their output is
// blitted rune-by-rune into a shared canvas buffer below, which would
// mangle embedded ANSI color escapes. The current tile is distinguished by
// border weight instead. statusBarStyle is rendered once, directly, as the
// final output line, so it's free to use color.
var (
	normalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center, lipgloss.Center)

	currentStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Align(lipgloss.Center, lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(lipgloss.Color("#374151"))
)

// gridZoneID names the single bubblezone region covering the whole
// rendered grid. Per-tile hit-testing doesn't mark individual boxes -
// bubblezone's invisible markers get corrupted by the rune-level canvas
// blit below - instead tileAt reverses the same scale() used to
// place the tiles, against a mouse position resolved relative to this
// zone's bounds.
const gridZoneID = "tile-grid"

// renderGrid scales tile rectangles from container coordinates into a
// termWidth x termHeight character canvas and composites one bordered
// lipgloss box per tile. This mirrors the teacher's buffer-blit
// compositing technique (pkg/tui/render.go's tuiBlitToBuffer), rebuilt on
// lipgloss-rendered boxes instead of hand-rolled ANSI.
func renderGrid(tiles []tile.Rect, current int, container tile.Rect, termWidth, termHeight int, zm *zone.Manager) string {
	if termWidth <= 0 || termHeight <= 0 || container.W <= 0 || container.H <= 0 {
		return ""
	}
	buf := newCanvas(termWidth, termHeight)

	for i, r := range tiles {
		cx, cy, cw, ch := scale(r, container, termWidth, termHeight)
		if cw < 2 || ch < 2 {
			continue
		}
		style := normalStyle
		if i == current {
			style = currentStyle
		}
		box := style.Width(cw - 2).Height(ch - 2).Render(strconv.Itoa(i))
		blit(buf, box, cx, cy, termWidth, termHeight)
	}

	grid := canvasString(buf)
	if zm != nil {
		grid = zm.Mark(gridZoneID, grid)
	}
	return grid
}

// tileAt reverses scale() to map a click's container-relative cell
// position back to the index of the tile rectangle that contains it, or
// -1 if none does. Grounded on tile.Rect.Contains rather than reimplementing
// hit-testing.
func tileAt(tiles []tile.Rect, container tile.Rect, cellX, cellY, termWidth, termHeight int) int {
	if termWidth <= 0 || termHeight <= 0 {
		return -1
	}
	px := container.X + cellX*container.W/termWidth
	py := container.Y + cellY*container.H/termHeight
	for i, r := range tiles {
		if r.Contains(px, py) {
			return i
		}
	}
	return -1
}

func scale(r, container tile.Rect, termWidth, termHeight int) (x, y, w, h int) {
	x = (r.X - container.X) * termWidth / container.W
	y = (r.Y - container.Y) * termHeight / container.H
	w = r.W * termWidth / container.W
	h = r.H * termHeight / container.H
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return
}

func newCanvas(w, h int) [][]rune {
	buf := make([][]rune, h)
	for y := range buf {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		buf[y] = row
	}
	return buf
}

func blit(buf [][]rune, rendered string, x, y, bufW, bufH int) {
	for dy, line := range strings.Split(rendered, "\n") {
		ry := y + dy
		if ry < 0 || ry >= bufH {
			continue
		}
		dx := 0
		for _, ch := range line {
			rx := x + dx
			if rx >= 0 && rx < bufW {
				buf[ry][rx] = ch
			}
			dx++
		}
	}
}

func canvasString(buf [][]rune) string {
	lines := make([]string, len(buf))
	for i, row := range buf {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
