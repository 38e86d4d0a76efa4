package analytics

import (
	"testing"
	"time"

	"pomoquest/internal/domain"
	"pomoquest/internal/timeutil"
)

var now = time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)

func focusAt(at time.Time) domain.Session {
	return domain.NewSession(domain.SessionTypeFocus, 1500, nil, domain.CategoryWork, at)
}

func focusIn(category domain.Category, at time.Time) domain.Session {
	return domain.NewSession(domain.SessionTypeFocus, 1500, nil, category, at)
}

func breakAt(at time.Time) domain.Session {
	return domain.NewSession(domain.SessionTypeShortBreak, 300, nil, domain.DefaultCategory, at)
}

func TestFilterByDays(t *testing.T) {
	sessions := []domain.Session{
		focusAt(now),
		focusAt(now.AddDate(0, 0, -6)),
		focusAt(now.AddDate(0, 0, -7)),
		focusAt(now.AddDate(0, 0, -30)),
	}

	got := FilterByDays(sessions, 7, now)
	if len(got) != 2 {
		t.Errorf("FilterByDays(7) kept %d sessions, want 2", len(got))
	}

	got = FilterByDays(sessions, 31, now)
	if len(got) != 4 {
		t.Errorf("FilterByDays(31) kept %d sessions, want 4", len(got))
	}
}

func TestDailyCounts(t *testing.T) {
	sessions := []domain.Session{
		focusAt(now),
		focusAt(now),
		focusAt(now.AddDate(0, 0, -2)),
		breakAt(now),
		focusAt(now.AddDate(0, 0, -10)),
	}

	counts := DailyCounts(sessions, 7, now)
	if len(counts) != 7 {
		t.Fatalf("DailyCounts has %d keys, want 7", len(counts))
	}
	if got := counts[timeutil.DayKey(now)]; got != 2 {
		t.Errorf("today = %d, want 2 (breaks excluded)", got)
	}
	if got := counts[timeutil.DayKey(now.AddDate(0, 0, -2))]; got != 1 {
		t.Errorf("two days ago = %d, want 1", got)
	}
	if got := counts[timeutil.DayKey(now.AddDate(0, 0, -1))]; got != 0 {
		t.Errorf("yesterday = %d, want zero-seeded 0", got)
	}
	if _, ok := counts[timeutil.DayKey(now.AddDate(0, 0, -10))]; ok {
		t.Error("sessions outside the window should be dropped, not bucketed")
	}
}

func TestCountsByCategory(t *testing.T) {
	sessions := []domain.Session{
		focusIn(domain.CategoryWork, now),
		focusIn(domain.CategoryWork, now),
		focusIn(domain.CategoryStudy, now),
		breakAt(now),
	}

	counts := CountsByCategory(sessions)
	if counts[domain.CategoryWork] != 2 {
		t.Errorf("work = %d, want 2", counts[domain.CategoryWork])
	}
	if counts[domain.CategoryStudy] != 1 {
		t.Errorf("study = %d, want 1", counts[domain.CategoryStudy])
	}
	if _, ok := counts[domain.DefaultCategory]; ok {
		t.Error("break sessions should not contribute a category bucket")
	}
}

func TestCountsByHour(t *testing.T) {
	morning := time.Date(2025, 3, 10, 9, 15, 0, 0, time.Local)
	evening := time.Date(2025, 3, 10, 21, 45, 0, 0, time.Local)
	sessions := []domain.Session{focusAt(morning), focusAt(morning), focusAt(evening)}

	counts := CountsByHour(sessions)
	if len(counts) != 24 {
		t.Fatalf("CountsByHour has %d keys, want 24", len(counts))
	}
	if counts[9] != 2 {
		t.Errorf("hour 9 = %d, want 2", counts[9])
	}
	if counts[21] != 1 {
		t.Errorf("hour 21 = %d, want 1", counts[21])
	}
	if counts[3] != 0 {
		t.Errorf("hour 3 = %d, want 0", counts[3])
	}
}

func TestTotalFocusTime(t *testing.T) {
	sessions := []domain.Session{focusAt(now), focusAt(now), breakAt(now)}
	if got := TotalFocusTime(sessions); got != 3000 {
		t.Errorf("TotalFocusTime = %d, want 3000", got)
	}
}

func TestProductivityScore(t *testing.T) {
	t.Run("empty window scores zero", func(t *testing.T) {
		if got := ProductivityScore(nil, 7, now); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("breaks only score zero", func(t *testing.T) {
		if got := ProductivityScore([]domain.Session{breakAt(now)}, 7, now); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("eight per day hits the cap", func(t *testing.T) {
		var sessions []domain.Session
		for i := 0; i < 8; i++ {
			sessions = append(sessions, focusAt(now))
		}
		if got := ProductivityScore(sessions, 1, now); got != 100 {
			t.Errorf("score = %d, want 100", got)
		}
	})

	t.Run("caps above target", func(t *testing.T) {
		var sessions []domain.Session
		for i := 0; i < 20; i++ {
			sessions = append(sessions, focusAt(now))
		}
		if got := ProductivityScore(sessions, 1, now); got != 100 {
			t.Errorf("score = %d, want 100", got)
		}
	})

	t.Run("partial effort rounds", func(t *testing.T) {
		// 7 sessions over 7 days = 1/day = 12.5% of target, rounds to 13.
		var sessions []domain.Session
		for i := 0; i < 7; i++ {
			sessions = append(sessions, focusAt(now.AddDate(0, 0, -i)))
		}
		if got := ProductivityScore(sessions, 7, now); got != 13 {
			t.Errorf("score = %d, want 13", got)
		}
	})
}
