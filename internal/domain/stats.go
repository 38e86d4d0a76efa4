package domain

import "time"

// AchievementType determines which stat an achievement threshold applies to.
type AchievementType string

const (
	AchievementTypeSessions AchievementType = "sessions"
	AchievementTypeStreak   AchievementType = "streak"
)

// Achievement is a one-time unlockable milestone from the fixed catalog.
// UnlockedAt is set when the achievement is earned.
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Threshold   int             `json:"threshold"`
	Type        AchievementType `json:"type"`
	UnlockedAt  *time.Time      `json:"unlockedAt,omitempty"`
}

// UserStats is the cached aggregate derived from the session log.
// Achievements is append-only and unique by id.
type UserStats struct {
	TotalPomodoros int           `json:"totalPomodoros"`
	TotalFocusTime int           `json:"totalFocusTime"`
	CurrentStreak  int           `json:"currentStreak"`
	LongestStreak  int           `json:"longestStreak"`
	Level          int           `json:"level"`
	XP             int           `json:"xp"`
	Achievements   []Achievement `json:"achievements"`
}

// InitialStats returns the zero-progress stats for a fresh profile.
func InitialStats() UserStats {
	return UserStats{
		Level:        1,
		Achievements: []Achievement{},
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (s UserStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
