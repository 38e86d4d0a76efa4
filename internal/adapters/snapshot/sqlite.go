// Package snapshot provides the SQLite implementation of the snapshot-store
// port: a single durable key-value slot holding the serialized application
// state as a JSON blob.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pomoquest/internal/domain"
	"pomoquest/internal/ports"

	_ "modernc.org/sqlite"
)

// slotKey identifies the single snapshot row.
const slotKey = "pomoquest-state"

// sqliteStore implements ports.SnapshotStore using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Ensure sqliteStore implements ports.SnapshotStore.
var _ ports.SnapshotStore = (*sqliteStore)(nil)

// New opens (creating if needed) the snapshot database at dbPath.
func New(dbPath string) (ports.SnapshotStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		slot TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// NewMemory creates an in-memory snapshot store for testing.
func NewMemory() (ports.SnapshotStore, error) {
	return New(":memory:")
}

// Load retrieves the persisted snapshot, or (nil, nil) when none exists.
func (s *sqliteStore) Load() (*domain.Snapshot, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE slot = ?", slotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save replaces the snapshot blob wholesale.
func (s *sqliteStore) Save(snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshots (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, slotKey, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Clear removes the persisted snapshot.
func (s *sqliteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE slot = ?", slotKey); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
