package store

import "pomoquest/internal/domain"

// UpdateSettings merges a partial settings update. Duration changes for the
// current session type take effect on an idle timer immediately so the next
// start uses the new duration.
func (s *Store) UpdateSettings(patch domain.SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.settings)
	if s.timerStatus == domain.TimerStatusIdle {
		s.timeRemaining = s.settings.DurationFor(s.currentSessionType)
	}
	s.persistLocked()
}

// ClearAllData resets tasks, sessions, stats, and the timer runtime to
// their initial values. Settings are kept.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = []domain.Task{}
	s.sessions = []domain.Session{}
	s.stats = domain.InitialStats()
	s.resetRuntimeLocked()
	s.persistLocked()
}

// ExportData returns a backup of tasks, sessions, and stats stamped with
// the export time.
func (s *Store) ExportData() domain.Backup {
	s.mu.Lock()
	defer s.mu.Unlock()
	backup := domain.Backup{
		Tasks:      make([]domain.Task, len(s.tasks)),
		Sessions:   make([]domain.Session, len(s.sessions)),
		Stats:      s.stats,
		ExportedAt: s.now(),
	}
	copy(backup.Tasks, s.tasks)
	copy(backup.Sessions, s.sessions)
	return backup
}

// ImportData replaces tasks, sessions, and stats wholesale. Absent fields
// are tolerated: missing collections become empty and a missing stats block
// becomes initial stats. The timer runtime is not touched.
func (s *Store) ImportData(backup domain.Backup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = backup.Tasks
	if s.tasks == nil {
		s.tasks = []domain.Task{}
	}
	s.sessions = backup.Sessions
	if s.sessions == nil {
		s.sessions = []domain.Session{}
	}
	s.stats = normalizeStats(backup.Stats)
	if s.currentTaskID != nil && s.findTaskLocked(*s.currentTaskID) == nil {
		s.currentTaskID = nil
	}
	s.persistLocked()
}
