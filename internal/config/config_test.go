package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, id := range []string{ShooterID, ShooterCompactID} {
		t.Run(id, func(t *testing.T) {
			var cfg ShooterConfig
			if err := yaml.Unmarshal(GetDefaultYAML(id), &cfg); err != nil {
				t.Fatalf("embedded yaml: %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultFor(id)) {
				t.Errorf("embedded defaults differ from hardcoded:\n got %+v\nwant %+v", cfg, DefaultFor(id))
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("defaults should validate: %v", err)
			}
		})
	}
}

func TestLoadShooterCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lives: 7\nenemy:\n  max_active: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(ShooterID, path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Enemy.MaxActive != 2 {
		t.Errorf("overrides not applied: lives=%d max_active=%d", cfg.Player.Lives, cfg.Enemy.MaxActive)
	}
	// Untouched fields keep the variant defaults
	if cfg.Surface.Width != 600 || cfg.Enemy.Health != 5 {
		t.Errorf("defaults lost: %+v", cfg.Surface)
	}
}

func TestLoadShooterCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[surface]\nwidth = 480\nheight = 640\n\n[enemy.fire]\nburst = 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(ShooterCompactID, path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Surface.Width != 480 || cfg.Surface.Height != 640 {
		t.Errorf("surface = %+v, expected 480x640", cfg.Surface)
	}
	if cfg.Enemy.Fire.Burst != 5 || cfg.Enemy.Fire.Spread != SpreadLateral {
		t.Errorf("fire = %+v", cfg.Enemy.Fire)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadShooter(ShooterID, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("start:\n  mode: sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(ShooterID, bad); err == nil {
		t.Error("invalid start mode should fail validation")
	}
}

func TestIntervalFloorAndMonotonic(t *testing.T) {
	prev := Interval(5000, 0.01, 1000, 0)
	if prev != 5000 {
		t.Fatalf("Interval at 0 = %v, expected base 5000", prev)
	}
	for elapsed := 0.0; elapsed <= 1_000_000; elapsed += 1000 {
		got := Interval(5000, 0.01, 1000, elapsed)
		if got > prev {
			t.Fatalf("interval increased at %vms: %v > %v", elapsed, got, prev)
		}
		if got < 1000 {
			t.Fatalf("interval %v dropped below floor at %vms", got, elapsed)
		}
		prev = got
	}
	if prev != 1000 {
		t.Errorf("interval should settle on its floor, got %v", prev)
	}
}

func TestDifficultyManagerSchedule(t *testing.T) {
	cfg := DefaultShooterConfig()
	dm := NewDifficultyManager(cfg.Schedule, cfg.Difficulty)

	tests := []struct {
		elapsed  time.Duration
		expected Intervals
	}{
		{0, Intervals{5 * time.Second, 3 * time.Second, time.Second}},
		{30 * time.Second, Intervals{4700 * time.Millisecond, 2820 * time.Millisecond, 750 * time.Millisecond}},
		{100 * time.Second, Intervals{4 * time.Second, 2400 * time.Millisecond, 500 * time.Millisecond}},
		{time.Hour, Intervals{time.Second, time.Second, 500 * time.Millisecond}},
	}

	for _, tc := range tests {
		got := dm.At(tc.elapsed)
		if absDur(got.EnemySpawn-tc.expected.EnemySpawn) > time.Millisecond ||
			absDur(got.ObstacleSpawn-tc.expected.ObstacleSpawn) > time.Millisecond ||
			absDur(got.EnemyFire-tc.expected.EnemyFire) > time.Millisecond {
			t.Errorf("At(%v) = %+v, expected %+v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestApplyShooterPreset(t *testing.T) {
	elapsed := 60 * time.Second

	at := func(preset DifficultyPreset) Intervals {
		cfg := DefaultShooterConfig()
		ApplyShooterPreset(&cfg, preset)
		return NewDifficultyManager(cfg.Schedule, cfg.Difficulty).At(elapsed)
	}

	normal := at(DifficultyNormal)
	easy := at(DifficultyEasy)
	hard := at(DifficultyHard)
	fixed := at(DifficultyFixed)

	if !(easy.EnemySpawn > normal.EnemySpawn) {
		t.Errorf("easy should spawn slower than normal: %v vs %v", easy.EnemySpawn, normal.EnemySpawn)
	}
	if !(hard.EnemySpawn < normal.EnemySpawn) {
		t.Errorf("hard should spawn faster than normal: %v vs %v", hard.EnemySpawn, normal.EnemySpawn)
	}
	if fixed.EnemySpawn != 5*time.Second || fixed.EnemyFire != time.Second {
		t.Errorf("fixed should stay at base intervals, got %+v", fixed)
	}

	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if NewDifficultyManager(cfg.Schedule, cfg.Difficulty).IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func absDur(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
