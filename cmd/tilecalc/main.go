// Command tilecalc is a demo harness for the tile layout engine: it
// resolves a layout from built-ins, config, or a custom-layout file, then
// previews it interactively, as plain ASCII, or rasterized to PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kestrelwm/tilecalc/pkg/tile"
	"github.com/kestrelwm/tilecalc/pkg/tileascii"
	"github.com/kestrelwm/tilecalc/pkg/tileconfig"
	"github.com/kestrelwm/tilecalc/pkg/tilefmt"
	"github.com/kestrelwm/tilecalc/pkg/tileimg"
	"github.com/kestrelwm/tilecalc/pkg/terminal"
	"github.com/kestrelwm/tilecalc/pkg/tiletui"
)

func main() {
	var (
		layoutName = flag.String("layout", "", "layout name (default from config)")
		windows    = flag.Int("windows", 4, "number of windows to tile")
		width      = flag.Int("width", 0, "container width in pixels (0 = terminal size)")
		height     = flag.Int("height", 0, "container height in pixels (0 = terminal size)")
		configPath = flag.String("config", "", "path to a config TOML file (default: XDG search path)")
		customPath = flag.String("custom", "", "path to a custom layouts TOML file")
		useTUI     = flag.Bool("tui", false, "run the interactive preview")
		asciiOnly  = flag.Bool("ascii", false, "force the plain-text renderer, skipping TTY detection")
		pngPath    = flag.String("png", "", "write a PNG rasterization to this path instead of previewing")
		list       = flag.Bool("list", false, "list registered layout names and exit")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn, error (default from config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := cfg.General.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))

	registry, err := buildRegistry(*customPath, logger)
	if err != nil {
		logger.Error("building layout registry", "error", err)
		os.Exit(1)
	}

	if *list {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return
	}

	name := cfg.Layout.Default
	if *layoutName != "" {
		name = *layoutName
	}
	layout, ok := registry.Get(name)
	if !ok {
		logger.Error("unknown layout", "name", name)
		os.Exit(1)
	}

	container := resolveContainer(cfg, *width, *height)

	switch {
	case *pngPath != "":
		tiles := tile.Apply(layout, *windows, container)
		if err := tileimg.WriteFile(*pngPath, tiles, container); err != nil {
			logger.Error("writing PNG", "path", *pngPath, "error", err)
			os.Exit(1)
		}
		logger.Info("wrote PNG", "path", *pngPath, "tiles", len(tiles))

	case *useTUI && !*asciiOnly && supportsTUI(logger):
		if err := runTUI(registry, name, *windows, container); err != nil {
			logger.Error("running preview", "error", err)
			os.Exit(1)
		}

	default:
		tiles := tile.Apply(layout, *windows, container)
		cols, rows := container.W, container.H
		if size := terminal.GetSize(); size.Cols > 0 {
			cols, rows = size.Cols, size.Rows-1
		}
		fmt.Println(tileascii.Render(tiles, container, cols, rows))
	}
}

func loadConfig(path string) (*tileconfig.Config, error) {
	if path != "" {
		return tileconfig.LoadFromFile(path)
	}
	return tileconfig.Load()
}

func buildRegistry(customPath string, logger *slog.Logger) (*tile.Registry, error) {
	registry := tile.NewRegistry()
	if customPath == "" {
		return registry, nil
	}
	custom, err := tilefmt.LoadCustomLayoutsTOML(customPath)
	if err != nil {
		return nil, err
	}
	for _, l := range custom {
		l.Check(logger)
	}
	logger.Info("loaded custom layouts", "path", customPath, "count", len(custom))
	return registry.WithCustomLayouts(custom...), nil
}

// resolveContainer prefers explicit flag values, then the terminal's pixel
// geometry when available, then the config file's fallback dimensions.
func resolveContainer(cfg *tileconfig.Config, width, height int) tile.Rect {
	w, h := width, height
	if w == 0 || h == 0 {
		size := terminal.GetSize()
		if w == 0 {
			w = size.PixelW
		}
		if h == 0 {
			h = size.PixelH
		}
	}
	if w == 0 {
		w = cfg.Layout.ContainerW
	}
	if h == 0 {
		h = cfg.Layout.ContainerH
	}
	return tile.NewRect(0, 0, w, h)
}

func supportsTUI(logger *slog.Logger) bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		return false
	}

	caps := terminal.DetectCapabilities()
	logger.Debug("detected terminal", "term", caps.Term, "ssh", caps.SSH, "mux", caps.Mux, "true_color", caps.TrueColor)

	// SSH sessions degrade to the ASCII renderer: mouse reporting over a
	// forwarded TTY is unreliable enough that the preview's hit-testing
	// can't be trusted.
	if caps.SSH {
		return false
	}
	return true
}

func runTUI(registry *tile.Registry, startLayout string, windows int, container tile.Rect) error {
	zm := zone.New()
	model := tiletui.NewModel(registry, startLayout, windows, container, zm)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
