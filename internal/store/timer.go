package store

import (
	"fmt"

	"pomoquest/internal/domain"
	"pomoquest/internal/gamify"
)

// notificationClip is the clip id played when a session completes.
const notificationClip = "notification"

// Start transitions an idle or paused timer to running. No-op when the
// timer is already running. Starting a focus session plays the selected
// ambient clip, if any.
func (s *Store) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timerStatus == domain.TimerStatusRunning {
		return
	}
	s.timerStatus = domain.TimerStatusRunning
	s.persistLocked()
	s.playAmbientLocked()
}

// playAmbientLocked plays the selected ambient clip for a focus session.
// Best-effort, like every audio call.
func (s *Store) playAmbientLocked() {
	if !s.settings.SoundEnabled || s.settings.AmbientSound == nil {
		return
	}
	if s.currentSessionType != domain.SessionTypeFocus {
		return
	}
	_ = s.audio.Play(*s.settings.AmbientSound)
}

// Pause transitions a running timer to paused. No-op otherwise.
func (s *Store) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timerStatus != domain.TimerStatusRunning {
		return
	}
	s.timerStatus = domain.TimerStatusPaused
	s.persistLocked()
}

// Reset returns the timer to idle with the full configured duration for the
// current session type. The session type and the long-break counter are
// left as they are.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timerStatus = domain.TimerStatusIdle
	s.timeRemaining = s.settings.DurationFor(s.currentSessionType)
	s.persistLocked()
}

// Tick advances the countdown by one second. Only effective while running.
// When the remaining time would reach zero the session completes instead of
// the countdown going negative.
func (s *Store) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timerStatus != domain.TimerStatusRunning {
		return
	}
	if s.timeRemaining <= 1 {
		s.completeSessionLocked()
		return
	}
	s.timeRemaining--
	s.persistLocked()
}

// Skip completes the current session immediately. The recorded session
// carries the full configured duration for its type, mirroring natural
// completion.
func (s *Store) Skip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completeSessionLocked()
}

// SetCurrentTask links (or with nil unlinks) the task the timer is working
// against. An unknown id is rejected.
func (s *Store) SetCurrentTask(taskID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if taskID != nil && s.findTaskLocked(*taskID) == nil {
		return domain.ErrTaskNotFound
	}
	s.currentTaskID = taskID
	s.persistLocked()
	return nil
}

// completeSessionLocked runs the session-completion pipeline: record the
// session, credit the linked task, advance the phase cycle, recompute stats,
// persist, then fire the advisory side effects.
func (s *Store) completeSessionLocked() {
	now := s.now()
	completedType := s.currentSessionType

	category := domain.DefaultCategory
	var taskID *string
	if s.currentTaskID != nil {
		id := *s.currentTaskID
		taskID = &id
		if t := s.findTaskLocked(id); t != nil {
			category = t.Category
		}
	}

	session := domain.NewSession(completedType, s.settings.DurationFor(completedType), taskID, category, now)
	s.sessions = append(s.sessions, session)

	if completedType == domain.SessionTypeFocus && taskID != nil {
		if t := s.findTaskLocked(*taskID); t != nil {
			t.PomodorosCompleted++
		}
	}

	var nextType domain.SessionType
	if completedType == domain.SessionTypeFocus {
		s.sessionsUntilLongBreak--
		if s.sessionsUntilLongBreak == 0 {
			nextType = domain.SessionTypeLongBreak
			s.sessionsUntilLongBreak = s.settings.LongBreakInterval
		} else {
			nextType = domain.SessionTypeShortBreak
		}
	} else {
		nextType = domain.SessionTypeFocus
	}

	s.currentSessionType = nextType
	s.timeRemaining = s.settings.DurationFor(nextType)
	if s.settings.AutoStartPomodoros || (nextType != domain.SessionTypeFocus && s.settings.AutoStartBreaks) {
		s.timerStatus = domain.TimerStatusRunning
	} else {
		s.timerStatus = domain.TimerStatusIdle
	}

	unlocked := s.recomputeStatsLocked()
	s.persistLocked()
	s.fireCompletionEffects(completedType, unlocked)
}

// recomputeStatsLocked rebuilds the cached aggregates from the full session
// log, awards the flat per-session XP, and appends any newly unlocked
// achievements. Returns the achievements unlocked by this recomputation.
func (s *Store) recomputeStatsLocked() []domain.Achievement {
	now := s.now()

	focusCount, focusTime := 0, 0
	for _, sess := range s.sessions {
		if sess.IsFocus() {
			focusCount++
			focusTime += sess.Duration
		}
	}

	streak := gamify.CalculateStreak(s.sessions, now)

	s.stats.TotalPomodoros = focusCount
	s.stats.TotalFocusTime = focusTime
	s.stats.CurrentStreak = streak.Current
	s.stats.LongestStreak = streak.Longest
	s.stats.XP += gamify.XPPerSession
	s.stats.Level = gamify.CalculateLevel(s.stats.XP)

	unlocked := gamify.CheckNewAchievements(s.stats, gamify.Catalog(), now)
	s.stats.Achievements = append(s.stats.Achievements, unlocked...)
	return unlocked
}

// fireCompletionEffects plays the completion chime and shows notifications.
// All of it is best-effort: failures are swallowed and never affect the
// state transition that triggered them.
func (s *Store) fireCompletionEffects(completedType domain.SessionType, unlocked []domain.Achievement) {
	if s.settings.SoundEnabled {
		_ = s.audio.Play(notificationClip)
	}
	if s.timerStatus == domain.TimerStatusRunning {
		s.playAmbientLocked()
	}

	if !s.settings.NotificationsEnabled {
		return
	}
	_ = s.notifier.Show("PomoQuest", completionMessage(completedType))
	for _, a := range unlocked {
		_ = s.notifier.Show("🏆 Achievement Unlocked!", fmt.Sprintf("%s %s: %s", a.Icon, a.Title, a.Description))
	}
}

// completionMessage returns the notification body for a completed type.
func completionMessage(t domain.SessionType) string {
	switch t {
	case domain.SessionTypeFocus:
		return "Focus session complete! Time for a break. 🎉"
	case domain.SessionTypeShortBreak:
		return "Break is over. Ready to focus again? 💪"
	default:
		return "Long break complete. Let's get back to work! 🚀"
	}
}
