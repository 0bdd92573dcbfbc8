package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"partial yaml", write("lives.yaml", "player:\n  lives: 4\n"), false},
		{"partial toml", write("lives.toml", "[player]\nlives = 4\n"), false},
		{"missing file", filepath.Join(dir, "typo.yaml"), true},
		{"broken yaml", write("broken.yaml", "player: [\n"), true},
		{"invalid value", write("mode.yaml", "start:\n  mode: sideways\n"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConfig(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkConfig(%s) error = %v, wantErr %v", filepath.Base(tt.path), err, tt.wantErr)
			}
		})
	}
}

func TestRuntimeConfigDefaults(t *testing.T) {
	oldFPS, oldSeed := flagFPS, flagSeed
	defer func() { flagFPS, flagSeed = oldFPS, oldSeed }()

	flagFPS, flagSeed = 0, 7
	cfg := runtimeConfig()
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the default 60", cfg.TickRate)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", cfg.Seed)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Errorf("screen = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
