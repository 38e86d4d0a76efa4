package gamify

import (
	"time"

	"pomoquest/internal/domain"
)

// Catalog is the fixed achievement catalog, in unlock-check order.
func Catalog() []domain.Achievement {
	return []domain.Achievement{
		{ID: "first", Title: "First Session", Description: "Complete your first Pomodoro", Icon: "🎯", Threshold: 1, Type: domain.AchievementTypeSessions},
		{ID: "starter", Title: "Getting Started", Description: "Complete 10 Pomodoros", Icon: "🚀", Threshold: 10, Type: domain.AchievementTypeSessions},
		{ID: "focused", Title: "Focused Mind", Description: "Complete 50 Pomodoros", Icon: "🧠", Threshold: 50, Type: domain.AchievementTypeSessions},
		{ID: "master", Title: "Productivity Master", Description: "Complete 100 Pomodoros", Icon: "👑", Threshold: 100, Type: domain.AchievementTypeSessions},
		{ID: "marathon", Title: "Marathon Runner", Description: "Complete 500 Pomodoros", Icon: "🏆", Threshold: 500, Type: domain.AchievementTypeSessions},
		{ID: "week", Title: "Weekly Warrior", Description: "7-day streak", Icon: "⚡", Threshold: 7, Type: domain.AchievementTypeStreak},
		{ID: "month", Title: "Monthly Champion", Description: "30-day streak", Icon: "🔥", Threshold: 30, Type: domain.AchievementTypeStreak},
	}
}

// CheckNewAchievements returns the catalog achievements newly earned by the
// given stats, stamped with unlockedAt = now, in catalog order. Achievements
// already present in stats are never returned again, so repeated calls with
// updated stats are idempotent.
func CheckNewAchievements(stats domain.UserStats, catalog []domain.Achievement, now time.Time) []domain.Achievement {
	var unlocked []domain.Achievement
	for _, a := range catalog {
		if stats.HasAchievement(a.ID) {
			continue
		}

		earned := false
		switch a.Type {
		case domain.AchievementTypeSessions:
			earned = stats.TotalPomodoros >= a.Threshold
		case domain.AchievementTypeStreak:
			earned = stats.CurrentStreak >= a.Threshold
		}
		if !earned {
			continue
		}

		stamped := a
		t := now
		stamped.UnlockedAt = &t
		unlocked = append(unlocked, stamped)
	}
	return unlocked
}
