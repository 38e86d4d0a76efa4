// Package store owns the whole application state: tasks, the append-only
// session log, derived user stats, settings, and the timer runtime. Every
// mutation runs to completion under one lock and is followed by a snapshot
// persist, mirroring the single-threaded event-driven model of the UI layer
// that drives it.
package store

import (
	"sync"
	"time"

	"pomoquest/internal/domain"
	"pomoquest/internal/ports"
)

// Store is the process-wide state container. All mutation operations
// delegate derivation to the pure gamify/analytics packages and persist a
// full snapshot through the SnapshotStore port afterwards.
type Store struct {
	mu        sync.Mutex
	snapshots ports.SnapshotStore
	notifier  ports.Notifier
	audio     ports.AudioPlayer
	now       func() time.Time

	tasks    []domain.Task
	sessions []domain.Session
	stats    domain.UserStats
	settings domain.AppSettings

	timerStatus            domain.TimerStatus
	currentSessionType     domain.SessionType
	timeRemaining          int
	sessionsUntilLongBreak int
	currentTaskID          *string
}

// Option configures optional store collaborators.
type Option func(*Store)

// WithNotifier injects the desktop-notification side channel.
func WithNotifier(n ports.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithAudioPlayer injects the sound side channel.
func WithAudioPlayer(p ports.AudioPlayer) Option {
	return func(s *Store) { s.audio = p }
}

// WithClock injects the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store hydrated from the snapshot slot. When no snapshot
// exists yet, the store starts from the given settings with a fresh focus
// timer. A load failure falls back to the same initial state rather than
// failing construction.
func New(snapshots ports.SnapshotStore, settings domain.AppSettings, opts ...Option) *Store {
	s := &Store{
		snapshots: snapshots,
		notifier:  ports.NopNotifier{},
		audio:     ports.NopAudioPlayer{},
		now:       time.Now,
		settings:  settings,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, err := snapshots.Load()
	if err == nil && snap != nil {
		s.restore(snap)
	} else {
		s.resetRuntimeLocked()
		s.tasks = []domain.Task{}
		s.sessions = []domain.Session{}
		s.stats = domain.InitialStats()
	}
	return s
}

// restore applies a persisted snapshot, substituting defaults for fields a
// hand-edited or older snapshot may be missing.
func (s *Store) restore(snap *domain.Snapshot) {
	s.tasks = snap.Tasks
	if s.tasks == nil {
		s.tasks = []domain.Task{}
	}
	s.sessions = snap.Sessions
	if s.sessions == nil {
		s.sessions = []domain.Session{}
	}
	s.stats = normalizeStats(snap.Stats)
	if snap.Settings.FocusDuration > 0 {
		s.settings = snap.Settings
	}

	s.timerStatus = snap.TimerStatus
	s.currentSessionType = snap.CurrentSessionType
	s.timeRemaining = snap.TimeRemaining
	s.sessionsUntilLongBreak = snap.SessionsUntilLongBreak
	s.currentTaskID = snap.CurrentTaskID

	if s.timerStatus == "" {
		s.timerStatus = domain.TimerStatusIdle
	}
	if s.currentSessionType == "" {
		s.resetRuntimeLocked()
	}
	if s.sessionsUntilLongBreak < 1 {
		s.sessionsUntilLongBreak = s.settings.LongBreakInterval
	}
}

// resetRuntimeLocked puts the timer runtime back to its initial values:
// an idle focus timer with a full long-break cycle ahead.
func (s *Store) resetRuntimeLocked() {
	s.timerStatus = domain.TimerStatusIdle
	s.currentSessionType = domain.SessionTypeFocus
	s.timeRemaining = s.settings.FocusDuration
	s.sessionsUntilLongBreak = s.settings.LongBreakInterval
	s.currentTaskID = nil
}

// persistLocked writes the full snapshot. Persistence is best-effort: a
// failing write never rolls back or fails the mutation that triggered it.
func (s *Store) persistLocked() {
	_ = s.snapshots.Save(&domain.Snapshot{
		Tasks:                  s.tasks,
		Sessions:               s.sessions,
		Stats:                  s.stats,
		Settings:               s.settings,
		TimerStatus:            s.timerStatus,
		CurrentSessionType:     s.currentSessionType,
		TimeRemaining:          s.timeRemaining,
		SessionsUntilLongBreak: s.sessionsUntilLongBreak,
		CurrentTaskID:          s.currentTaskID,
	})
}

// normalizeStats substitutes initial stats for an absent or invalid stats
// block. Valid levels are always >= 1.
func normalizeStats(stats domain.UserStats) domain.UserStats {
	if stats.Level < 1 {
		return domain.InitialStats()
	}
	if stats.Achievements == nil {
		stats.Achievements = []domain.Achievement{}
	}
	return stats
}

func (s *Store) findTaskLocked(id string) *domain.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// Tasks returns a copy of all tasks.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Sessions returns a copy of the session log, in completion order.
func (s *Store) Sessions() []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Stats returns the current derived stats.
func (s *Store) Stats() domain.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := s.stats
	stats.Achievements = make([]domain.Achievement, len(s.stats.Achievements))
	copy(stats.Achievements, s.stats.Achievements)
	return stats
}

// Settings returns the current settings.
func (s *Store) Settings() domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// TimerState is a read-only view of the timer runtime.
type TimerState struct {
	Status                 domain.TimerStatus
	SessionType            domain.SessionType
	TimeRemaining          int
	SessionsUntilLongBreak int
	CurrentTaskID          *string
}

// Timer returns the current timer runtime state.
func (s *Store) Timer() TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TimerState{
		Status:                 s.timerStatus,
		SessionType:            s.currentSessionType,
		TimeRemaining:          s.timeRemaining,
		SessionsUntilLongBreak: s.sessionsUntilLongBreak,
		CurrentTaskID:          s.currentTaskID,
	}
}

// CurrentTask returns the selected task, if any.
func (s *Store) CurrentTask() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentTaskID == nil {
		return domain.Task{}, false
	}
	if t := s.findTaskLocked(*s.currentTaskID); t != nil {
		return *t, true
	}
	return domain.Task{}, false
}
