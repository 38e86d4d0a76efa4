package config

import (
	"testing"
	"time"

	"pomoquest/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timer.FocusDuration != Duration(25*time.Minute) {
		t.Errorf("FocusDuration = %v, want 25m", cfg.Timer.FocusDuration)
	}
	if cfg.Timer.LongBreakInterval != 4 {
		t.Errorf("LongBreakInterval = %d, want 4", cfg.Timer.LongBreakInterval)
	}
	if !cfg.Sound.Enabled || !cfg.Notifications.Enabled {
		t.Error("sound and notifications should default to enabled")
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
}

func TestDuration(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("25m")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Seconds() != 1500 {
		t.Errorf("Seconds() = %d, want 1500", d.Seconds())
	}
	if d.String() != "25m0s" {
		t.Errorf("String() = %q, want 25m0s", d.String())
	}

	if err := d.UnmarshalText([]byte("not a duration")); err == nil {
		t.Error("UnmarshalText() should reject garbage")
	}
}

func TestToSettings(t *testing.T) {
	t.Run("defaults map through", func(t *testing.T) {
		s := DefaultConfig().ToSettings()
		if s.FocusDuration != 1500 || s.ShortBreakDuration != 300 || s.LongBreakDuration != 900 {
			t.Errorf("durations = %d/%d/%d, want 1500/300/900", s.FocusDuration, s.ShortBreakDuration, s.LongBreakDuration)
		}
		if s.AmbientSound != nil {
			t.Error("empty ambient should map to nil")
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Timer.FocusDuration = 0
		cfg.Timer.LongBreakInterval = 0
		cfg.Sound.Volume = 2.0

		s := cfg.ToSettings()
		if s.FocusDuration != 1500 {
			t.Errorf("FocusDuration = %d, want default 1500", s.FocusDuration)
		}
		if s.LongBreakInterval != 4 {
			t.Errorf("LongBreakInterval = %d, want default 4", s.LongBreakInterval)
		}
		if s.Volume != 0.5 {
			t.Errorf("Volume = %v, want default 0.5", s.Volume)
		}
	})

	t.Run("unknown ambient clip is dropped", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sound.Ambient = "vuvuzela"
		if s := cfg.ToSettings(); s.AmbientSound != nil {
			t.Errorf("AmbientSound = %q, want nil for an id outside the catalog", *s.AmbientSound)
		}
	})

	t.Run("ambient and theme carry over", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sound.Ambient = "rain"
		cfg.UI.Theme = "dark"

		s := cfg.ToSettings()
		if s.AmbientSound == nil || *s.AmbientSound != "rain" {
			t.Error("ambient sound should carry over")
		}
		if s.Theme != domain.ThemeDark {
			t.Errorf("Theme = %v, want dark", s.Theme)
		}
	})
}
