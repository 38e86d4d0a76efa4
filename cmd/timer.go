package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pomoquest/internal/adapters/tui"
	"pomoquest/internal/domain"
	"pomoquest/internal/ports"
	"pomoquest/internal/timeutil"
)

var (
	startTaskID string
	startNoUI   bool
)

// startCmd starts the timer and opens the interactive view.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the timer and open the interactive view",
	RunE: func(cmd *cobra.Command, args []string) error {
		if startTaskID != "" {
			id := startTaskID
			if err := appStore.SetCurrentTask(&id); err != nil {
				return fmt.Errorf("failed to link task: %w", err)
			}
		}
		appStore.Start()
		if startNoUI {
			return runHeadless()
		}
		return tui.Run(appStore, appConfig.UI)
	},
}

// runHeadless drives the countdown without the TUI until the current session
// completes or the user interrupts. An interrupt pauses the timer so the
// remaining time survives into the next invocation.
func runHeadless() error {
	target := len(appStore.Sessions()) + 1
	done := make(chan struct{})

	ticker := ports.NewSecondTicker()
	ticker.Start(func() {
		appStore.Tick()
		if len(appStore.Sessions()) >= target {
			ticker.Stop()
			close(done)
		}
	})
	defer ticker.Stop()

	printTimerState()
	fmt.Println("Running without UI. Ctrl+C to pause and exit.")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case <-done:
		printTimerState()
	case <-interrupt:
		appStore.Pause()
		fmt.Println("\nPaused.")
	}
	return nil
}

// pauseCmd pauses a running timer.
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.Pause()
		printTimerState()
		return nil
	},
}

// resetCmd resets the timer to the full duration of the current phase.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the timer for the current session type",
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.Reset()
		printTimerState()
		return nil
	},
}

// skipCmd completes the current session immediately.
var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip to the end of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		appStore.Skip()
		printTimerState()
		return nil
	},
}

// statusCmd prints the timer and stats summary.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		printTimerState()

		if task, ok := appStore.CurrentTask(); ok {
			fmt.Printf("Task:      %s (%d/%d 🍅)\n", task.Title, task.PomodorosCompleted, task.PomodorosEstimated)
		}

		stats := appStore.Stats()
		fmt.Printf("Level:     %d (%d XP)\n", stats.Level, stats.XP)
		fmt.Printf("Streak:    %d day(s), best %d\n", stats.CurrentStreak, stats.LongestStreak)
		return nil
	},
}

func printTimerState() {
	timer := appStore.Timer()
	status := "idle"
	switch timer.Status {
	case domain.TimerStatusRunning:
		status = "running"
	case domain.TimerStatusPaused:
		status = "paused"
	}
	fmt.Printf("Timer:     %s %s (%s)\n",
		domain.SessionTypeLabel(timer.SessionType),
		timeutil.FormatTime(timer.TimeRemaining),
		status)
	fmt.Printf("Long break in %d focus session(s)\n", timer.SessionsUntilLongBreak)
}

func init() {
	startCmd.Flags().StringVar(&startTaskID, "task", "", "ID of the task to work on")
	startCmd.Flags().BoolVar(&startNoUI, "no-ui", false, "Run the countdown without the interactive view")
}
