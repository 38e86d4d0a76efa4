package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pomoquest/internal/config"
	"pomoquest/internal/export"
)

var (
	exportFormat string
	exportOut    string
	clearYes     bool
)

// exportCmd writes the session log or a full data backup to a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions as CSV or a full JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch exportFormat {
		case "csv":
			if exportOut == "" {
				exportOut = "pomoquest-sessions.csv"
			}
			if err := export.WriteCSV(appStore.Sessions(), exportOut); err != nil {
				return fmt.Errorf("failed to export CSV: %w", err)
			}
		case "json":
			if exportOut == "" {
				exportOut = "pomoquest-backup.json"
			}
			if err := export.WriteJSON(appStore.ExportData(), exportOut); err != nil {
				return fmt.Errorf("failed to export JSON: %w", err)
			}
		default:
			return fmt.Errorf("unknown export format %q (want csv or json)", exportFormat)
		}

		fmt.Printf("✓ Exported to %s\n", exportOut)
		return nil
	},
}

// importCmd replaces tasks, sessions, and stats from a JSON backup.
var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Import tasks, sessions, and stats from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := export.ReadJSON(args[0])
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}
		appStore.ImportData(backup)
		fmt.Printf("✓ Imported %d task(s) and %d session(s)\n", len(backup.Tasks), len(backup.Sessions))
		return nil
	},
}

// clearCmd wipes tasks, sessions, stats, and the timer runtime.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks, sessions, and stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			fmt.Print("This deletes all tasks, sessions, and stats. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		appStore.ClearAllData()
		fmt.Println("✓ All data cleared")
		return nil
	},
}

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err == nil {
			fmt.Printf("Config file: %s\n\n", path)
		}

		settings := appStore.Settings()
		fmt.Printf("Focus:               %ds\n", settings.FocusDuration)
		fmt.Printf("Short break:         %ds\n", settings.ShortBreakDuration)
		fmt.Printf("Long break:          %ds\n", settings.LongBreakDuration)
		fmt.Printf("Long break interval: %d\n", settings.LongBreakInterval)
		fmt.Printf("Auto-start breaks:   %v\n", settings.AutoStartBreaks)
		fmt.Printf("Auto-start focus:    %v\n", settings.AutoStartPomodoros)
		fmt.Printf("Sound:               %v\n", settings.SoundEnabled)
		fmt.Printf("Notifications:       %v\n", settings.NotificationsEnabled)
		fmt.Printf("Theme:               %s\n", settings.Theme)
		fmt.Printf("Data dir:            %s\n", appConfig.Storage.DataDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Skip the confirmation prompt")
}
