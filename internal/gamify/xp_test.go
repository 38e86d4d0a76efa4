package gamify

import "testing"

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{900, 4},
		{-10, 1},
	}

	for _, tt := range tests {
		if got := CalculateLevel(tt.xp); got != tt.want {
			t.Errorf("CalculateLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	t.Run("fresh start", func(t *testing.T) {
		p := Progress(0)
		if p.Current != 0 {
			t.Errorf("Current = %d, want 0", p.Current)
		}
		if p.Needed != 100 {
			t.Errorf("Needed = %d, want 100", p.Needed)
		}
		if p.Percentage != 0 {
			t.Errorf("Percentage = %v, want 0", p.Percentage)
		}
	})

	t.Run("halfway through level 2", func(t *testing.T) {
		// Level 2 spans 100..400 XP.
		p := Progress(250)
		if p.Current != 150 {
			t.Errorf("Current = %d, want 150", p.Current)
		}
		if p.Needed != 300 {
			t.Errorf("Needed = %d, want 300", p.Needed)
		}
		if p.Percentage != 50 {
			t.Errorf("Percentage = %v, want 50", p.Percentage)
		}
	})

	t.Run("level floor plus current recovers total", func(t *testing.T) {
		for _, xp := range []int{0, 10, 99, 100, 370, 400, 1234} {
			level := CalculateLevel(xp)
			p := Progress(xp)
			if floor := (level - 1) * (level - 1) * 100; floor+p.Current != xp {
				t.Errorf("xp %d: floor %d + current %d != total", xp, floor, p.Current)
			}
		}
	})
}
