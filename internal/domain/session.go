package domain

import "time"

// SessionType represents the type of timer phase.
type SessionType string

const (
	SessionTypeFocus      SessionType = "focus"
	SessionTypeShortBreak SessionType = "shortBreak"
	SessionTypeLongBreak  SessionType = "longBreak"
)

// TimerStatus represents the current state of the countdown.
type TimerStatus string

const (
	TimerStatusIdle    TimerStatus = "idle"
	TimerStatusRunning TimerStatus = "running"
	TimerStatusPaused  TimerStatus = "paused"
)

// Session is an immutable record of one completed timer phase.
// Duration is the configured duration at completion time in seconds, not
// elapsed wall time. Category is frozen from the linked task at completion
// so later task deletion never invalidates history.
type Session struct {
	ID          string      `json:"id"`
	TaskID      *string     `json:"taskId,omitempty"`
	Type        SessionType `json:"type"`
	Duration    int         `json:"duration"`
	CompletedAt time.Time   `json:"completedAt"`
	Category    Category    `json:"category"`
}

// NewSession records a completed timer phase.
func NewSession(sessionType SessionType, durationSeconds int, taskID *string, category Category, completedAt time.Time) Session {
	return Session{
		ID:          generateID(),
		TaskID:      taskID,
		Type:        sessionType,
		Duration:    durationSeconds,
		CompletedAt: completedAt,
		Category:    category,
	}
}

// IsFocus returns true for focus-type sessions.
func (s Session) IsFocus() bool {
	return s.Type == SessionTypeFocus
}

// IsBreak returns true for short or long break sessions.
func (s Session) IsBreak() bool {
	return s.Type == SessionTypeShortBreak || s.Type == SessionTypeLongBreak
}

// SessionTypeLabel returns a human-readable label for the session type.
func SessionTypeLabel(t SessionType) string {
	switch t {
	case SessionTypeFocus:
		return "Focus"
	case SessionTypeShortBreak:
		return "Short Break"
	case SessionTypeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}
