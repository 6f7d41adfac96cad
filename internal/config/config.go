package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blazeneuro/blazewm/internal/hotkeys"
)

// Struts are the pixels reserved for the topbar and the dock.
type Struts struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// MinSize is the smallest size an interactive resize may produce.
type MinSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Keys holds the global key sequences, in xgbutil keybind syntax.
type Keys struct {
	Close    string `yaml:"close"`
	Cycle    string `yaml:"cycle"`
	Launcher string `yaml:"launcher"`
	Terminal string `yaml:"terminal"`
}

// Config holds the window manager configuration.
type Config struct {
	Display      string  `yaml:"display,omitempty"`
	WMName       string  `yaml:"wm_name"`
	LogLevel     string  `yaml:"log_level"`
	Struts       Struts  `yaml:"struts"`
	MinSize      MinSize `yaml:"min_size"`
	MoveButton   string  `yaml:"move_button"`
	ResizeButton string  `yaml:"resize_button"`
	Launcher     string  `yaml:"launcher"`
	Terminal     string  `yaml:"terminal"`
	Keys         Keys    `yaml:"keys"`
}

func DefaultConfig() *Config {
	return &Config{
		WMName:       "BlazeNeuro",
		LogLevel:     "info",
		Struts:       Struts{Top: 32, Bottom: 72},
		MinSize:      MinSize{Width: 100, Height: 60},
		MoveButton:   "Mod1-1",
		ResizeButton: "Mod1-3",
		Launcher:     "blazeneuro-launcher",
		Terminal:     "blazeneuro-terminal",
		Keys: Keys{
			Close:    "Mod1-F4",
			Cycle:    "Mod1-Tab",
			Launcher: "Mod1-space",
			Terminal: "Mod1-Return",
		},
	}
}

// Bindings returns the hotkey table described by Keys.
func (c *Config) Bindings() []hotkeys.Binding {
	return []hotkeys.Binding{
		{Keys: c.Keys.Close, Action: hotkeys.ActionClose},
		{Keys: c.Keys.Cycle, Action: hotkeys.ActionCycle},
		{Keys: c.Keys.Launcher, Action: hotkeys.ActionLauncher},
		{Keys: c.Keys.Terminal, Action: hotkeys.ActionTerminal},
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate performs strict validation of the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WMName) == "" {
		return &ValidationError{Path: "wm_name", Err: fmt.Errorf("wm_name is required")}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	if c.Struts.Top < 0 {
		return &ValidationError{Path: "struts.top", Err: fmt.Errorf("top must be >= 0")}
	}
	if c.Struts.Bottom < 0 {
		return &ValidationError{Path: "struts.bottom", Err: fmt.Errorf("bottom must be >= 0")}
	}
	if c.MinSize.Width < 1 {
		return &ValidationError{Path: "min_size.width", Err: fmt.Errorf("width must be >= 1")}
	}
	if c.MinSize.Height < 1 {
		return &ValidationError{Path: "min_size.height", Err: fmt.Errorf("height must be >= 1")}
	}
	if strings.TrimSpace(c.MoveButton) == "" {
		return &ValidationError{Path: "move_button", Err: fmt.Errorf("move_button is required")}
	}
	if strings.TrimSpace(c.ResizeButton) == "" {
		return &ValidationError{Path: "resize_button", Err: fmt.Errorf("resize_button is required")}
	}
	if strings.TrimSpace(c.Launcher) == "" {
		return &ValidationError{Path: "launcher", Err: fmt.Errorf("launcher command must not be empty")}
	}
	if strings.TrimSpace(c.Terminal) == "" {
		return &ValidationError{Path: "terminal", Err: fmt.Errorf("terminal command must not be empty")}
	}

	seen := make(map[string]string)
	for _, k := range []struct{ path, keys string }{
		{"keys.close", c.Keys.Close},
		{"keys.cycle", c.Keys.Cycle},
		{"keys.launcher", c.Keys.Launcher},
		{"keys.terminal", c.Keys.Terminal},
	} {
		keys := strings.TrimSpace(k.keys)
		if keys == "" {
			return &ValidationError{Path: k.path, Err: fmt.Errorf("key sequence is required")}
		}
		if prev, ok := seen[strings.ToLower(keys)]; ok {
			return &ValidationError{Path: k.path, Err: fmt.Errorf("%q is already bound by %s", keys, prev)}
		}
		seen[strings.ToLower(keys)] = k.path
	}

	return nil
}
