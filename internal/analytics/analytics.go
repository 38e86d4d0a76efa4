// Package analytics produces histograms and aggregates over the session log.
// Everything here is a pure function over an immutable slice of sessions;
// the current time is passed in so windows are deterministic under test.
package analytics

import (
	"math"
	"time"

	"pomoquest/internal/domain"
	"pomoquest/internal/timeutil"
)

// targetSessionsPerDay is the daily focus count that scores 100.
const targetSessionsPerDay = 8.0

// FilterByDays returns the sessions completed within the inclusive window of
// `days` calendar days ending on now's day.
func FilterByDays(sessions []domain.Session, days int, now time.Time) []domain.Session {
	start := timeutil.WindowStart(now, days)
	var out []domain.Session
	for _, s := range sessions {
		if !s.CompletedAt.Before(start) {
			out = append(out, s)
		}
	}
	return out
}

// DailyCounts buckets focus sessions per calendar day over the last `days`
// days ending today. Every day in the window is present, zero-seeded;
// sessions outside the window are dropped.
func DailyCounts(sessions []domain.Session, days int, now time.Time) map[string]int {
	counts := make(map[string]int, days)
	for i := 0; i < days; i++ {
		counts[timeutil.DayKey(now.AddDate(0, 0, -i))] = 0
	}

	for _, s := range sessions {
		if !s.IsFocus() {
			continue
		}
		key := timeutil.DayKey(s.CompletedAt)
		if _, ok := counts[key]; ok {
			counts[key]++
		}
	}
	return counts
}

// CountsByCategory buckets focus sessions by their frozen category.
func CountsByCategory(sessions []domain.Session) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, s := range sessions {
		if s.IsFocus() {
			counts[s.Category]++
		}
	}
	return counts
}

// CountsByHour buckets focus sessions by local hour of completion.
// All 24 hours are present in the result.
func CountsByHour(sessions []domain.Session) map[int]int {
	counts := make(map[int]int, 24)
	for h := 0; h < 24; h++ {
		counts[h] = 0
	}
	for _, s := range sessions {
		if s.IsFocus() {
			counts[s.CompletedAt.Hour()]++
		}
	}
	return counts
}

// TotalFocusTime sums the recorded durations of focus sessions, in seconds.
func TotalFocusTime(sessions []domain.Session) int {
	total := 0
	for _, s := range sessions {
		if s.IsFocus() {
			total += s.Duration
		}
	}
	return total
}

// ProductivityScore rates the average focus sessions per day over the window
// on a 0..100 scale, where 8 sessions a day scores 100. Returns 0 when the
// window holds no focus sessions.
func ProductivityScore(sessions []domain.Session, days int, now time.Time) int {
	focusCount := 0
	for _, s := range FilterByDays(sessions, days, now) {
		if s.IsFocus() {
			focusCount++
		}
	}
	if focusCount == 0 {
		return 0
	}

	avgPerDay := float64(focusCount) / float64(days)
	score := math.Min(100, avgPerDay/targetSessionsPerDay*100)
	return int(math.Round(score))
}
