package export

import (
	"encoding/json"
	"fmt"
	"os"

	"pomoquest/internal/domain"
)

// BackupJSON renders a backup as pretty-printed JSON.
func BackupJSON(backup domain.Backup) ([]byte, error) {
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// WriteJSON writes a backup to path as pretty-printed JSON.
func WriteJSON(backup domain.Backup, path string) error {
	data, err := BackupJSON(backup)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// ReadJSON loads a backup from path. Fields absent from the file are left
// at their zero values; the store substitutes defaults on import.
func ReadJSON(path string) (domain.Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Backup{}, fmt.Errorf("read backup file: %w", err)
	}
	var backup domain.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return domain.Backup{}, fmt.Errorf("parse backup file: %w", err)
	}
	return backup, nil
}
