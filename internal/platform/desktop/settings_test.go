package desktop

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestSettingsStoreInMemory(t *testing.T) {
	s := NewSettingsStore(nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.Get(); got != DefaultSettings() {
		t.Errorf("Get() = %+v, want defaults", got)
	}

	if s.ToggleSound() {
		t.Error("first toggle should disable sound")
	}
	if err := s.Save(); err != nil {
		t.Errorf("Save without a manager should be a no-op, got %v", err)
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := NewSettingsStore(nil)
	s.Set(Settings{SoundEnabled: true, Volume: 3, WindowScale: -1})

	got := s.Get()
	if got.Volume != 1 || got.WindowScale != 1 {
		t.Errorf("Set() kept out-of-range values: %+v", got)
	}
}

func TestSettingsPersist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	m, err := gdata.Open(gdata.Config{AppName: "skyraid_settings_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}

	first := NewSettingsStore(m)
	first.Set(Settings{SoundEnabled: false, Volume: 0.25, WindowScale: 0.75})
	if err := first.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := NewSettingsStore(m)
	if err := second.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Settings{SoundEnabled: false, Volume: 0.25, WindowScale: 0.75}
	if got := second.Get(); got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}
