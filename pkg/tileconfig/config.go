// Package tileconfig resolves the demo binary's settings: the default
// layout name to select on startup and the default container size to tile
// when no terminal size can be queried.
package tileconfig

// Config holds the resolved settings for cmd/tilecalc.
type Config struct {
	General GeneralConfig `toml:"general"`
	Layout  LayoutConfig  `toml:"layout"`
}

// GeneralConfig holds settings unrelated to any one layout.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// LayoutConfig holds the default layout selection and fallback container.
type LayoutConfig struct {
	Default       string `toml:"default"`
	ContainerW    int    `toml:"container_w"`
	ContainerH    int    `toml:"container_h"`
	BalanceStacks bool   `toml:"balance_stacks"`
}

// DefaultConfig returns the built-in defaults, used when no config file is
// found and as the decode target so a partial file only overrides the
// fields it sets.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Layout: LayoutConfig{
			Default:       "MainAndVertStack",
			ContainerW:    500,
			ContainerH:    250,
			BalanceStacks: true,
		},
	}
}
