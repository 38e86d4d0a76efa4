// Package timeutil provides duration formatting and day-boundary arithmetic
// shared by the timer, streak, and analytics code.
package timeutil

import (
	"fmt"
	"time"
)

// DayFormat is the layout used for calendar-day bucket keys.
const DayFormat = "2006-01-02"

// FormatTime renders a second count as a zero-padded "MM:SS" countdown.
// Behavior is undefined for negative input; callers must not pass one.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatDuration renders minutes as "Xm", "XhYm", or "Xh" when the
// remainder is zero.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b, computed on
// local day boundaries. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)) / (24 * time.Hour))
}

// DayKey formats t's calendar day as yyyy-MM-dd.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// WindowStart returns the start of the inclusive window of `days` calendar
// days ending on now's day.
func WindowStart(now time.Time, days int) time.Time {
	return StartOfDay(now.AddDate(0, 0, -(days - 1)))
}
