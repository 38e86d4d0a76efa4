package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"pomoquest/internal/analytics"
	"pomoquest/internal/domain"
	"pomoquest/internal/gamify"
	"pomoquest/internal/timeutil"
)

var statsDays int

// statsCmd prints the gamification summary and analytics breakdowns.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity statistics and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		sessions := appStore.Sessions()
		stats := appStore.Stats()

		progress := gamify.Progress(stats.XP)
		fmt.Printf("Level %d · %d XP (%d/%d to next, %.0f%%)\n",
			stats.Level, stats.XP, progress.Current, progress.Needed, progress.Percentage)
		fmt.Printf("Pomodoros: %d total, %s focused\n",
			stats.TotalPomodoros, timeutil.FormatDuration(stats.TotalFocusTime/60))
		fmt.Printf("Streak:    %d day(s), best %d\n", stats.CurrentStreak, stats.LongestStreak)
		fmt.Printf("Score:     %d/100 (last %d days)\n\n",
			analytics.ProductivityScore(sessions, statsDays, now), statsDays)

		fmt.Println(renderDailyChart(sessions, statsDays, now))

		fmt.Println("By category:")
		counts := analytics.CountsByCategory(sessions)
		categories := make([]string, 0, len(counts))
		for c := range counts {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Printf("  %-10s %d\n", c, counts[domain.Category(c)])
		}
		if len(categories) == 0 {
			fmt.Println("  no focus sessions yet")
		}

		fmt.Println("\nAchievements:")
		unlocked := make(map[string]bool, len(stats.Achievements))
		for _, a := range stats.Achievements {
			unlocked[a.ID] = true
		}
		for _, a := range gamify.Catalog() {
			mark := "🔒"
			if unlocked[a.ID] {
				mark = a.Icon
			}
			fmt.Printf("  %s %-20s %s\n", mark, a.Title, a.Description)
		}
		return nil
	},
}

// renderDailyChart draws the last-N-days focus histogram sized to the
// terminal.
func renderDailyChart(sessions []domain.Session, days int, now time.Time) string {
	width := 60
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 20 {
		width = min(w-4, 80)
	}

	chart := barchart.New(width, 10)
	counts := analytics.DailyCounts(sessions, days, now)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E0645C"))

	var bars []barchart.BarData
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		bars = append(bars, barchart.BarData{
			Label: day.Format("01-02"),
			Values: []barchart.BarValue{
				{Name: "focus", Value: float64(counts[timeutil.DayKey(day)]), Style: barStyle},
			},
		})
	}
	chart.PushAll(bars)
	chart.Draw()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Focus sessions, last %d days:\n", days))
	sb.WriteString(chart.View())
	return sb.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "Analytics window in days")
}
