package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blazeneuro/blazewm/internal/hotkeys"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Struts.Top != 32 || cfg.Struts.Bottom != 72 {
		t.Fatalf("unexpected default struts %+v", cfg.Struts)
	}
	if cfg.MinSize.Width != 100 || cfg.MinSize.Height != 60 {
		t.Fatalf("unexpected default min size %+v", cfg.MinSize)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Exists {
		t.Fatalf("expected Exists=false for a missing file")
	}
	if res.Config.WMName != "BlazeNeuro" {
		t.Fatalf("expected default wm_name, got %q", res.Config.WMName)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !res.Exists {
		t.Fatalf("expected Exists=true")
	}
	if res.Config.Launcher != "blazeneuro-launcher" {
		t.Fatalf("expected default launcher, got %q", res.Config.Launcher)
	}
}

func TestLoadFromPath_OverridesKeepOtherDefaults(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		`display: ":1"`,
		"struts:",
		"  top: 24",
		"keys:",
		"  cycle: Mod4-Tab",
		"terminal: xterm -fa Monospace",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Display != ":1" {
		t.Fatalf("expected display :1, got %q", cfg.Display)
	}
	if cfg.Struts.Top != 24 || cfg.Struts.Bottom != 72 {
		t.Fatalf("expected top override and default bottom, got %+v", cfg.Struts)
	}
	if cfg.Keys.Cycle != "Mod4-Tab" || cfg.Keys.Close != "Mod1-F4" {
		t.Fatalf("unexpected keys %+v", cfg.Keys)
	}
	if cfg.Terminal != "xterm -fa Monospace" {
		t.Fatalf("unexpected terminal %q", cfg.Terminal)
	}
}

func TestLoadFromPath_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "gap_size: 4\n"))
	if err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
	if !strings.Contains(err.Error(), "gap_size") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasPosition(t *testing.T) {
	path := writeConfig(t, "wm_name: BlazeNeuro\nmin_size:\n  width: 0\n")

	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "min_size.width" {
		t.Fatalf("expected path min_size.width, got %q", verr.Path)
	}
	if verr.Source.File != path || verr.Source.Line != 3 {
		t.Fatalf("expected %s line 3, got %+v", path, verr.Source)
	}
	if !strings.HasPrefix(err.Error(), path+":3:") {
		t.Fatalf("expected file:line prefix, got %q", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"negative top strut", func(c *Config) { c.Struts.Top = -1 }, "struts.top"},
		{"negative bottom strut", func(c *Config) { c.Struts.Bottom = -5 }, "struts.bottom"},
		{"zero min height", func(c *Config) { c.MinSize.Height = 0 }, "min_size.height"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"empty wm name", func(c *Config) { c.WMName = " " }, "wm_name"},
		{"empty launcher", func(c *Config) { c.Launcher = "" }, "launcher"},
		{"empty move button", func(c *Config) { c.MoveButton = "" }, "move_button"},
		{"empty key", func(c *Config) { c.Keys.Terminal = "" }, "keys.terminal"},
		{"duplicate key", func(c *Config) { c.Keys.Cycle = c.Keys.Close }, "keys.cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("expected path %q, got %q", tt.path, verr.Path)
			}
		})
	}
}

func TestBindings(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.Bindings()

	want := map[hotkeys.Action]string{
		hotkeys.ActionClose:    cfg.Keys.Close,
		hotkeys.ActionCycle:    cfg.Keys.Cycle,
		hotkeys.ActionLauncher: cfg.Keys.Launcher,
		hotkeys.ActionTerminal: cfg.Keys.Terminal,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d bindings, got %d", len(want), len(got))
	}
	for _, b := range got {
		if want[b.Action] != b.Keys {
			t.Fatalf("binding %v = %q, want %q", b.Action, b.Keys, want[b.Action])
		}
	}
}

func TestDefaultConfigPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/tmp/xdg/blazewm/config.yaml" {
		t.Fatalf("unexpected path %q", got)
	}
}
