package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vault-crawler/constant"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg.ScreenWidth != constant.DefaultScreenWidth || cfg.ScreenHeight != constant.DefaultScreenHeight {
		t.Errorf("Expected default screen dimensions, got %gx%g", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected zero seed by default, got %d", cfg.Seed)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "screen_width: 1024\nscreen_height: 768\nvolume: 0.2\nseed: 99\ndebug: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ScreenWidth != 1024 || cfg.ScreenHeight != 768 {
		t.Errorf("Expected 1024x768, got %gx%g", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Volume != 0.2 || cfg.Seed != 99 || !cfg.Debug {
		t.Errorf("Expected overridden fields, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"negative width", "screen_width: -5\n"},
		{"volume above one", "volume: 1.5\n"},
		{"malformed yaml", "screen_width: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
