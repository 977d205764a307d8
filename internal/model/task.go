package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

const DefaultPriority = PriorityMedium

// Categories is the palette the UI offers. The data layer accepts any
// string; a category outside this list is stored as-is.
var Categories = []string{
	"Work", "Personal", "Shopping", "Health", "Education", "Finance", "Travel", "Hobby",
}

const DefaultCategory = "Work"

type Task struct {
	ID        string
	Title     string
	Text      string
	Completed bool
	CreatedAt time.Time
	Priority  Priority
	Category  string
}

// NewID returns a fresh collision-free task id.
func NewID() string {
	return uuid.NewString()
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}
