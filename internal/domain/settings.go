package domain

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AppSettings holds user-tunable behavior. Durations are in seconds.
type AppSettings struct {
	FocusDuration        int     `json:"focusDuration"`
	ShortBreakDuration   int     `json:"shortBreakDuration"`
	LongBreakDuration    int     `json:"longBreakDuration"`
	AutoStartBreaks      bool    `json:"autoStartBreaks"`
	AutoStartPomodoros   bool    `json:"autoStartPomodoros"`
	LongBreakInterval    int     `json:"longBreakInterval"`
	Theme                Theme   `json:"theme"`
	SoundEnabled         bool    `json:"soundEnabled"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
	AmbientSound         *string `json:"ambientSound,omitempty"`
	Volume               float64 `json:"volume"`
}

// DefaultSettings returns the standard pomodoro configuration:
// 25 minute focus, 5 minute short break, 15 minute long break every 4 sessions.
func DefaultSettings() AppSettings {
	return AppSettings{
		FocusDuration:        25 * 60,
		ShortBreakDuration:   5 * 60,
		LongBreakDuration:    15 * 60,
		AutoStartBreaks:      false,
		AutoStartPomodoros:   false,
		LongBreakInterval:    4,
		Theme:                ThemeLight,
		SoundEnabled:         true,
		NotificationsEnabled: true,
		Volume:               0.5,
	}
}

// DurationFor returns the configured duration in seconds for a session type.
func (s AppSettings) DurationFor(t SessionType) int {
	switch t {
	case SessionTypeShortBreak:
		return s.ShortBreakDuration
	case SessionTypeLongBreak:
		return s.LongBreakDuration
	default:
		return s.FocusDuration
	}
}

// SettingsPatch describes a merge-style partial settings update.
// Nil fields are left untouched.
type SettingsPatch struct {
	FocusDuration        *int
	ShortBreakDuration   *int
	LongBreakDuration    *int
	AutoStartBreaks      *bool
	AutoStartPomodoros   *bool
	LongBreakInterval    *int
	Theme                *Theme
	SoundEnabled         *bool
	NotificationsEnabled *bool
	AmbientSound         **string
	Volume               *float64
}

// Apply merges the patch into the settings.
func (p SettingsPatch) Apply(s *AppSettings) {
	if p.FocusDuration != nil {
		s.FocusDuration = *p.FocusDuration
	}
	if p.ShortBreakDuration != nil {
		s.ShortBreakDuration = *p.ShortBreakDuration
	}
	if p.LongBreakDuration != nil {
		s.LongBreakDuration = *p.LongBreakDuration
	}
	if p.AutoStartBreaks != nil {
		s.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartPomodoros != nil {
		s.AutoStartPomodoros = *p.AutoStartPomodoros
	}
	if p.LongBreakInterval != nil && *p.LongBreakInterval >= 1 {
		s.LongBreakInterval = *p.LongBreakInterval
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.AmbientSound != nil {
		s.AmbientSound = *p.AmbientSound
	}
	if p.Volume != nil && *p.Volume >= 0 && *p.Volume <= 1 {
		s.Volume = *p.Volume
	}
}

// AmbientSoundClip is an entry in the fixed ambient sound catalog.
type AmbientSoundClip struct {
	ID   string
	Name string
}

// AmbientSounds is the fixed catalog of ambient sound clips.
func AmbientSounds() []AmbientSoundClip {
	return []AmbientSoundClip{
		{ID: "rain", Name: "Rain"},
		{ID: "cafe", Name: "Café"},
		{ID: "forest", Name: "Forest"},
		{ID: "ocean", Name: "Ocean Waves"},
		{ID: "white-noise", Name: "White Noise"},
	}
}

// MotivationalQuotes shown by the UI after a completed focus session.
var MotivationalQuotes = []string{
	"Great work! You're building momentum! 🚀",
	"Focus is the gateway to productivity! 💪",
	"Another step closer to your goals! 🎯",
	"You're on fire! Keep it up! 🔥",
	"Consistency is the key to success! ⭐",
	"Amazing focus! You're unstoppable! 💎",
}
