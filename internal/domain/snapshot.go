package domain

import "time"

// Snapshot is the full persisted application state. The store serializes
// one of these to the snapshot slot after every mutation and rehydrates
// from it at startup. Instants round-trip as RFC 3339 timestamps.
type Snapshot struct {
	Tasks                  []Task      `json:"tasks"`
	Sessions               []Session   `json:"sessions"`
	Stats                  UserStats   `json:"stats"`
	Settings               AppSettings `json:"settings"`
	TimerStatus            TimerStatus `json:"timerStatus"`
	CurrentSessionType     SessionType `json:"currentSessionType"`
	TimeRemaining          int         `json:"timeRemaining"`
	SessionsUntilLongBreak int         `json:"sessionsUntilLongBreak"`
	CurrentTaskID          *string     `json:"currentTaskId,omitempty"`
}

// Backup is the user-facing JSON export: data only, no timer runtime.
type Backup struct {
	Tasks      []Task    `json:"tasks"`
	Sessions   []Session `json:"sessions"`
	Stats      UserStats `json:"stats"`
	ExportedAt time.Time `json:"exportedAt"`
}
