package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
platform: x11
trace: true
window:
  width: 1024
layers:
  - VK_LAYER_KHRONOS_validation
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Platform != "x11" || !cfg.Trace {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 || cfg.Window.Title != "vksurface" {
		t.Fatalf("window not merged: %+v", cfg.Window)
	}
	if len(cfg.Layers) != 1 || cfg.Layers[0] != "VK_LAYER_KHRONOS_validation" {
		t.Fatalf("layers %v", cfg.Layers)
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key": "colour: red\n",
		"bad size":    "window:\n  width: 0\n",
	}
	for name, data := range tests {
		if err := Parse([]byte(data), Default()); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if err := Parse(nil, Default()); err != nil {
		t.Fatal(err)
	}
}
