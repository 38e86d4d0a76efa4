package domain

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.FocusDuration != 1500 {
		t.Errorf("FocusDuration = %d, want 1500", s.FocusDuration)
	}
	if s.ShortBreakDuration != 300 {
		t.Errorf("ShortBreakDuration = %d, want 300", s.ShortBreakDuration)
	}
	if s.LongBreakDuration != 900 {
		t.Errorf("LongBreakDuration = %d, want 900", s.LongBreakDuration)
	}
	if s.LongBreakInterval != 4 {
		t.Errorf("LongBreakInterval = %d, want 4", s.LongBreakInterval)
	}
	if !s.SoundEnabled || !s.NotificationsEnabled {
		t.Error("sound and notifications should default to enabled")
	}
}

func TestDurationFor(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		sessionType SessionType
		want        int
	}{
		{SessionTypeFocus, 1500},
		{SessionTypeShortBreak, 300},
		{SessionTypeLongBreak, 900},
	}

	for _, tt := range tests {
		if got := s.DurationFor(tt.sessionType); got != tt.want {
			t.Errorf("DurationFor(%s) = %d, want %d", tt.sessionType, got, tt.want)
		}
	}
}

func TestSettingsPatch_Apply(t *testing.T) {
	t.Run("merges only set fields", func(t *testing.T) {
		s := DefaultSettings()
		focus := 3000
		auto := true
		SettingsPatch{FocusDuration: &focus, AutoStartBreaks: &auto}.Apply(&s)

		if s.FocusDuration != 3000 {
			t.Errorf("FocusDuration = %d, want 3000", s.FocusDuration)
		}
		if !s.AutoStartBreaks {
			t.Error("AutoStartBreaks should be true")
		}
		if s.ShortBreakDuration != 300 {
			t.Errorf("ShortBreakDuration = %d, want unchanged 300", s.ShortBreakDuration)
		}
	})

	t.Run("rejects zero long break interval", func(t *testing.T) {
		s := DefaultSettings()
		zero := 0
		SettingsPatch{LongBreakInterval: &zero}.Apply(&s)
		if s.LongBreakInterval != 4 {
			t.Errorf("LongBreakInterval = %d, want unchanged 4", s.LongBreakInterval)
		}
	})

	t.Run("out of range volume is ignored", func(t *testing.T) {
		s := DefaultSettings()
		loud := 1.5
		SettingsPatch{Volume: &loud}.Apply(&s)
		if s.Volume != 0.5 {
			t.Errorf("Volume = %v, want unchanged 0.5", s.Volume)
		}
	})

	t.Run("ambient sound can be set and cleared", func(t *testing.T) {
		s := DefaultSettings()
		rain := "rain"
		ptr := &rain
		SettingsPatch{AmbientSound: &ptr}.Apply(&s)
		if s.AmbientSound == nil || *s.AmbientSound != "rain" {
			t.Fatalf("AmbientSound = %v, want rain", s.AmbientSound)
		}

		var cleared *string
		SettingsPatch{AmbientSound: &cleared}.Apply(&s)
		if s.AmbientSound != nil {
			t.Errorf("AmbientSound = %v, want nil", *s.AmbientSound)
		}
	})
}
