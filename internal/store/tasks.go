package store

import (
	"time"

	"pomoquest/internal/domain"
)

// AddTaskRequest contains the data to create a task.
type AddTaskRequest struct {
	Title              string
	Description        string
	Category           domain.Category
	Priority           domain.Priority
	Deadline           *time.Time
	PomodorosEstimated int
}

// AddTask validates and stores a new task.
func (s *Store) AddTask(req AddTaskRequest) (domain.Task, error) {
	task, err := domain.NewTask(req.Title, req.Category, req.Priority)
	if err != nil {
		return domain.Task{}, err
	}
	task.Description = req.Description
	task.Deadline = req.Deadline
	if req.PomodorosEstimated > 0 {
		task.PomodorosEstimated = req.PomodorosEstimated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *task)
	s.persistLocked()
	return *task, nil
}

// UpdateTask merges a partial update into an existing task.
func (s *Store) UpdateTask(id string, patch domain.TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.findTaskLocked(id)
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err := patch.Apply(task); err != nil {
		return domain.Task{}, err
	}
	s.persistLocked()
	return *task, nil
}

// DeleteTask removes a task. Historical sessions referencing it are kept
// untouched; if the deleted task was the selected one, the selection is
// cleared.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		if s.currentTaskID != nil && *s.currentTaskID == id {
			s.currentTaskID = nil
		}
		s.persistLocked()
		return nil
	}
	return domain.ErrTaskNotFound
}

// ToggleTaskComplete flips a task's completed flag.
func (s *Store) ToggleTaskComplete(id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.findTaskLocked(id)
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	task.Completed = !task.Completed
	s.persistLocked()
	return *task, nil
}
