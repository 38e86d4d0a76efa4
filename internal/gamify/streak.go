// Package gamify derives streaks, levels, XP progress, and achievement
// unlocks from the session log. All functions are pure: they take the
// current time explicitly and never touch shared state.
package gamify

import (
	"sort"
	"time"

	"pomoquest/internal/domain"
	"pomoquest/internal/timeutil"
)

// Streak holds the consecutive-day streak metrics.
type Streak struct {
	Current int
	Longest int
}

// CalculateStreak derives the current and longest consecutive-day streaks
// from the session log. Only focus sessions count toward streaks. The
// current streak walks backward day-by-day from today, so it is zero until
// today has a focus session; the longest streak is computed over the full
// history regardless.
func CalculateStreak(sessions []domain.Session, now time.Time) Streak {
	days := focusDays(sessions)
	if len(days) == 0 {
		return Streak{}
	}

	sorted := make([]string, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Strings(sorted)

	current := 0
	for check := timeutil.StartOfDay(now); days[timeutil.DayKey(check)]; check = check.AddDate(0, 0, -1) {
		current++
	}

	return Streak{Current: current, Longest: longestRun(sorted)}
}

// focusDays collects the distinct local calendar days containing at least
// one focus session.
func focusDays(sessions []domain.Session) map[string]bool {
	days := make(map[string]bool)
	for _, s := range sessions {
		if s.IsFocus() {
			days[timeutil.DayKey(s.CompletedAt)] = true
		}
	}
	return days
}

// longestRun returns the maximum run of consecutive calendar days in a
// sorted list of distinct yyyy-MM-dd keys.
func longestRun(sorted []string) int {
	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		prev, _ := time.Parse(timeutil.DayFormat, sorted[i-1])
		curr, _ := time.Parse(timeutil.DayFormat, sorted[i])
		if timeutil.DaysBetween(prev, curr) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
