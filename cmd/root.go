// Package cmd provides the CLI commands for the PomoQuest application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomoquest/internal/adapters/audio"
	"pomoquest/internal/adapters/notification"
	"pomoquest/internal/adapters/snapshot"
	"pomoquest/internal/adapters/tui"
	"pomoquest/internal/config"
	"pomoquest/internal/ports"
	"pomoquest/internal/store"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	dataDir string

	// Global dependencies
	appConfig     *config.Config
	snapshotStore ports.SnapshotStore
	appStore      *store.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pomoquest",
	Short: "PomoQuest - A gamified Pomodoro timer with task tracking",
	Long: `PomoQuest is a command-line Pomodoro timer that tracks your tasks,
turns completed focus sessions into XP, levels, streaks, and achievements,
and shows your productivity analytics.

Run "pomoquest" with no arguments to open the interactive timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(appStore, appConfig.UI)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Path to the data directory (default: ~/.pomoquest)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("PomoQuest\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices sets up configuration, persistence, and the store.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}
	if dataDir != "" {
		appConfig.Storage.DataDir = dataDir
	}

	if err := os.MkdirAll(appConfig.Storage.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	snapshotStore, err = snapshot.New(config.GetDBPath(appConfig))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	appStore = store.New(snapshotStore, appConfig.ToSettings(),
		store.WithNotifier(notification.New(appConfig.Notifications.Enabled)),
		store.WithAudioPlayer(audio.New(appConfig.Sound.Enabled)),
	)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if snapshotStore != nil {
		return snapshotStore.Close()
	}
	return nil
}
