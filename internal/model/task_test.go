package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Buy milk",
		Text:      "Two liters",
		Priority:  PriorityHigh,
		Category:  "Shopping",
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateMissingTitle(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "   ",
		Priority:  PriorityMedium,
		CreatedAt: now,
	}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank title, got nil")
	}
}

func TestTaskValidateInvalidPriority(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Bad priority",
		Priority:  Priority("urgent"),
		CreatedAt: now,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if !p.IsValid() {
			t.Fatalf("expected %q to be valid", p)
		}
	}
	if Priority("critical").IsValid() {
		t.Fatal("expected critical to be invalid")
	}
	if Priority("").IsValid() {
		t.Fatal("expected empty priority to be invalid")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
