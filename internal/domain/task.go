// Package domain contains the core business entities for PomoQuest.
// These entities represent the fundamental concepts of the focus-timer
// system and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidCategory = errors.New("invalid task category")
	ErrInvalidPriority = errors.New("invalid task priority")
)

// Category classifies what area of life a task belongs to.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryPersonal Category = "personal"
	CategoryFitness  Category = "fitness"
	CategoryCreative Category = "creative"
)

// DefaultCategory is used for sessions completed without a linked task.
const DefaultCategory = CategoryPersonal

// Categories lists all valid task categories.
func Categories() []Category {
	return []Category{CategoryWork, CategoryStudy, CategoryPersonal, CategoryFitness, CategoryCreative}
}

// ValidateCategory checks that c is one of the fixed category set.
func ValidateCategory(c Category) error {
	switch c {
	case CategoryWork, CategoryStudy, CategoryPersonal, CategoryFitness, CategoryCreative:
		return nil
	}
	return ErrInvalidCategory
}

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidatePriority checks that p is one of the fixed priority set.
func ValidatePriority(p Priority) error {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	}
	return ErrInvalidPriority
}

// Task represents a unit of work to be tracked.
type Task struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Category           Category   `json:"category"`
	Priority           Priority   `json:"priority"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	Completed          bool       `json:"completed"`
	PomodorosCompleted int        `json:"pomodorosCompleted"`
	PomodorosEstimated int        `json:"pomodorosEstimated"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// NewTask creates a task with the given title and classification.
func NewTask(title string, category Category, priority Priority) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTaskTitle
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := ValidatePriority(priority); err != nil {
		return nil, err
	}

	return &Task{
		ID:                 generateID(),
		Title:              title,
		Category:           category,
		Priority:           priority,
		PomodorosEstimated: 1,
		CreatedAt:          time.Now(),
	}, nil
}

// TaskPatch describes a partial update to a task. Nil fields are left
// untouched by the merge.
type TaskPatch struct {
	Title              *string
	Description        *string
	Category           *Category
	Priority           *Priority
	Deadline           *time.Time
	Completed          *bool
	PomodorosEstimated *int
}

// Apply merges the patch into the task.
func (p TaskPatch) Apply(t *Task) error {
	if p.Title != nil {
		if *p.Title == "" {
			return ErrEmptyTaskTitle
		}
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		if err := ValidateCategory(*p.Category); err != nil {
			return err
		}
		t.Category = *p.Category
	}
	if p.Priority != nil {
		if err := ValidatePriority(*p.Priority); err != nil {
			return err
		}
		t.Priority = *p.Priority
	}
	if p.Deadline != nil {
		t.Deadline = p.Deadline
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.PomodorosEstimated != nil {
		t.PomodorosEstimated = *p.PomodorosEstimated
	}
	return nil
}
