// Package config provides configuration management for PomoQuest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"pomoquest/internal/domain"
)

// Config holds the on-disk configuration. It supplies the initial settings
// for a fresh profile; once a snapshot exists, settings changed at runtime
// live in the snapshot and take precedence.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Sound         SoundConfig        `mapstructure:"sound"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	UI            UIConfig           `mapstructure:"ui"`
	Storage       StorageConfig      `mapstructure:"storage"`
}

// TimerConfig holds the timer durations and auto-start behavior.
type TimerConfig struct {
	FocusDuration      Duration `mapstructure:"focus_duration"`
	ShortBreak         Duration `mapstructure:"short_break"`
	LongBreak          Duration `mapstructure:"long_break"`
	LongBreakInterval  int      `mapstructure:"long_break_interval"`
	AutoStartBreaks    bool     `mapstructure:"auto_start_breaks"`
	AutoStartPomodoros bool     `mapstructure:"auto_start_pomodoros"`
}

// SoundConfig holds the sound side-channel settings.
type SoundConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Ambient string  `mapstructure:"ambient"`
	Volume  float64 `mapstructure:"volume"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme      string `mapstructure:"theme"`
	ColorFocus string `mapstructure:"color_focus"`
	ColorBreak string `mapstructure:"color_break"`
	ColorText  string `mapstructure:"color_text"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Seconds returns the duration as whole seconds.
func (d Duration) Seconds() int {
	return int(time.Duration(d) / time.Second)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			FocusDuration:      Duration(25 * time.Minute),
			ShortBreak:         Duration(5 * time.Minute),
			LongBreak:          Duration(15 * time.Minute),
			LongBreakInterval:  4,
			AutoStartBreaks:    false,
			AutoStartPomodoros: false,
		},
		Sound: SoundConfig{
			Enabled: true,
			Ambient: "",
			Volume:  0.5,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		UI: UIConfig{
			Theme:      "light",
			ColorFocus: "#E0645C",
			ColorBreak: "#4ECDC4",
			ColorText:  "#6B7280",
		},
		Storage: StorageConfig{
			DataDir: "~/.pomoquest",
		},
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.pomoquest" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".pomoquest")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("timer.focus_duration", cfg.Timer.FocusDuration.String())
	viper.Set("timer.short_break", cfg.Timer.ShortBreak.String())
	viper.Set("timer.long_break", cfg.Timer.LongBreak.String())
	viper.Set("timer.long_break_interval", cfg.Timer.LongBreakInterval)
	viper.Set("timer.auto_start_breaks", cfg.Timer.AutoStartBreaks)
	viper.Set("timer.auto_start_pomodoros", cfg.Timer.AutoStartPomodoros)
	viper.Set("sound.enabled", cfg.Sound.Enabled)
	viper.Set("sound.ambient", cfg.Sound.Ambient)
	viper.Set("sound.volume", cfg.Sound.Volume)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("ui.theme", cfg.UI.Theme)
	viper.Set("ui.color_focus", cfg.UI.ColorFocus)
	viper.Set("ui.color_break", cfg.UI.ColorBreak)
	viper.Set("ui.color_text", cfg.UI.ColorText)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomoquest", "config.toml"), nil
}

// GetDBPath returns the path to the snapshot database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "pomoquest.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("timer.focus_duration", "25m")
	viper.SetDefault("timer.short_break", "5m")
	viper.SetDefault("timer.long_break", "15m")
	viper.SetDefault("timer.long_break_interval", 4)
	viper.SetDefault("timer.auto_start_breaks", false)
	viper.SetDefault("timer.auto_start_pomodoros", false)
	viper.SetDefault("sound.enabled", true)
	viper.SetDefault("sound.ambient", "")
	viper.SetDefault("sound.volume", 0.5)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("ui.theme", "light")
	viper.SetDefault("ui.color_focus", "#E0645C")
	viper.SetDefault("ui.color_break", "#4ECDC4")
	viper.SetDefault("ui.color_text", "#6B7280")
	viper.SetDefault("storage.data_dir", "~/.pomoquest")
}

// ToSettings converts the file config into the domain settings used for a
// fresh profile.
func (c *Config) ToSettings() domain.AppSettings {
	settings := domain.DefaultSettings()
	if c.Timer.FocusDuration.Seconds() > 0 {
		settings.FocusDuration = c.Timer.FocusDuration.Seconds()
	}
	if c.Timer.ShortBreak.Seconds() > 0 {
		settings.ShortBreakDuration = c.Timer.ShortBreak.Seconds()
	}
	if c.Timer.LongBreak.Seconds() > 0 {
		settings.LongBreakDuration = c.Timer.LongBreak.Seconds()
	}
	if c.Timer.LongBreakInterval >= 1 {
		settings.LongBreakInterval = c.Timer.LongBreakInterval
	}
	settings.AutoStartBreaks = c.Timer.AutoStartBreaks
	settings.AutoStartPomodoros = c.Timer.AutoStartPomodoros
	settings.SoundEnabled = c.Sound.Enabled
	settings.NotificationsEnabled = c.Notifications.Enabled
	if c.Sound.Volume >= 0 && c.Sound.Volume <= 1 {
		settings.Volume = c.Sound.Volume
	}
	// Only clip ids from the fixed catalog carry over.
	for _, clip := range domain.AmbientSounds() {
		if clip.ID == c.Sound.Ambient {
			ambient := c.Sound.Ambient
			settings.AmbientSound = &ambient
			break
		}
	}
	if c.UI.Theme == string(domain.ThemeDark) {
		settings.Theme = domain.ThemeDark
	}
	return settings
}
