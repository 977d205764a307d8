package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const wireTimeLayout = time.RFC3339Nano

// taskRecord is the wire shape stored under the tasks key: a JSON array of
// these records, createdAt as an ISO-8601 string.
type taskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
}

func EncodeTasks(tasks []Task) (string, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:        t.ID,
			Title:     t.Title,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.UTC().Format(wireTimeLayout),
			Priority:  string(t.Priority),
			Category:  t.Category,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(raw), nil
}

// DecodeTasks parses a stored collection, applying defaulting rules for
// records written by older versions: a missing title becomes "Untitled", a
// missing or unparseable createdAt becomes now, an unknown priority becomes
// medium. Order is preserved.
func DecodeTasks(raw string, now time.Time) ([]Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	out := make([]Task, 0, len(records))
	for _, rec := range records {
		out = append(out, taskFromRecord(rec, now))
	}
	return out, nil
}

func taskFromRecord(rec taskRecord, now time.Time) Task {
	title := rec.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	createdAt, err := time.Parse(wireTimeLayout, rec.CreatedAt)
	if err != nil {
		createdAt = now
	}
	priority := Priority(rec.Priority)
	if !priority.IsValid() {
		priority = DefaultPriority
	}
	return Task{
		ID:        rec.ID,
		Title:     title,
		Text:      rec.Text,
		Completed: rec.Completed,
		CreatedAt: createdAt,
		Priority:  priority,
		Category:  rec.Category,
	}
}
