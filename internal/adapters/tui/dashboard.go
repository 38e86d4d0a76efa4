package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"pomoquest/internal/analytics"
	"pomoquest/internal/domain"
	"pomoquest/internal/gamify"
	"pomoquest/internal/store"
	"pomoquest/internal/timeutil"
)

// dashboardDays is the analytics window rendered by the dashboard.
const dashboardDays = 7

// dashboardModel renders the analytics view: a daily focus histogram,
// category breakdown, XP progress, and the achievement grid.
type dashboardModel struct {
	store  *store.Store
	chart  barchart.Model
	width  int
	height int
}

func newDashboardModel(st *store.Store) dashboardModel {
	return dashboardModel{store: st, chart: barchart.New(48, 10)}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

// refresh rebuilds the daily histogram from the session log.
func (d *dashboardModel) refresh() {
	chartWidth := d.width - 8
	if chartWidth < 24 {
		chartWidth = 48
	}
	d.chart = barchart.New(chartWidth, 10)

	now := time.Now()
	counts := analytics.DailyCounts(d.store.Sessions(), dashboardDays, now)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E0645C"))
	var bars []barchart.BarData
	for i := dashboardDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		bars = append(bars, barchart.BarData{
			Label: day.Format("Mon"),
			Values: []barchart.BarValue{
				{Name: "focus", Value: float64(counts[timeutil.DayKey(day)]), Style: barStyle},
			},
		})
	}
	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view(s styles) string {
	sessions := d.store.Sessions()
	stats := d.store.Stats()
	now := time.Now()

	var sb strings.Builder
	sb.WriteString(s.title.Render("📊 Dashboard · last 7 days") + "\n\n")
	sb.WriteString(d.chart.View() + "\n\n")

	progress := gamify.Progress(stats.XP)
	sb.WriteString(fmt.Sprintf("Level %d · %d/%d XP (%.0f%%)\n",
		stats.Level, progress.Current, progress.Needed, progress.Percentage))
	sb.WriteString(fmt.Sprintf("Streak %d (best %d) · %d pomodoros · %s focused\n",
		stats.CurrentStreak, stats.LongestStreak, stats.TotalPomodoros,
		timeutil.FormatDuration(stats.TotalFocusTime/60)))
	sb.WriteString(fmt.Sprintf("Productivity score: %d/100\n\n",
		analytics.ProductivityScore(sessions, dashboardDays, now)))

	sb.WriteString(s.title.Render("By category") + "\n")
	sb.WriteString(categoryLines(sessions, s) + "\n")

	sb.WriteString(s.title.Render("Achievements") + "\n")
	sb.WriteString(achievementLine(stats.Achievements, s) + "\n\n")

	sb.WriteString(s.muted.Render("esc back"))
	return sb.String()
}

// categoryLines renders focus-session counts per category, busiest first.
func categoryLines(sessions []domain.Session, s styles) string {
	counts := analytics.CountsByCategory(sessions)
	if len(counts) == 0 {
		return s.muted.Render("  no focus sessions yet") + "\n"
	}

	type row struct {
		category domain.Category
		count    int
	}
	rows := make([]row, 0, len(counts))
	for c, n := range counts {
		rows = append(rows, row{c, n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].category < rows[j].category
	})

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %-10s %s %d\n", r.category,
			strings.Repeat("▇", min(r.count, 30)), r.count))
	}
	return sb.String()
}

// achievementLine renders the unlocked badges against the full catalog.
func achievementLine(unlocked []domain.Achievement, s styles) string {
	have := make(map[string]bool, len(unlocked))
	for _, a := range unlocked {
		have[a.ID] = true
	}

	var parts []string
	for _, a := range gamify.Catalog() {
		if have[a.ID] {
			parts = append(parts, s.badge.Render(a.Icon+" "+a.Title))
		} else {
			parts = append(parts, s.muted.Render("🔒 "+a.Title))
		}
	}
	return "  " + strings.Join(parts, "  ")
}
