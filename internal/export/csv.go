// Package export serializes the session log and data backups for the
// export/import commands.
package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strings"

	"pomoquest/internal/domain"
)

// csvTimeLayout is the session timestamp format in CSV exports.
const csvTimeLayout = "2006-01-02 15:04:05"

// missingTaskID is the placeholder for sessions without a linked task.
const missingTaskID = "N/A"

// SessionsCSV renders the session log as CSV, one row per session in log
// order. Durations are rounded to the nearest minute.
func SessionsCSV(sessions []domain.Session) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Date", "Type", "Category", "Duration (min)", "Task ID"}); err != nil {
		return "", err
	}

	for _, s := range sessions {
		taskID := missingTaskID
		if s.TaskID != nil {
			taskID = *s.TaskID
		}
		row := []string{
			s.CompletedAt.Local().Format(csvTimeLayout),
			string(s.Type),
			string(s.Category),
			fmt.Sprintf("%d", int(math.Round(float64(s.Duration)/60))),
			taskID,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteCSV writes the session log as CSV to path.
func WriteCSV(sessions []domain.Session, path string) error {
	data, err := SessionsCSV(sessions)
	if err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return nil
}
