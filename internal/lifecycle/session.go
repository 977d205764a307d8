package lifecycle

import (
	"context"

	"github.com/trizenhq/trizen/internal/model"
)

type EditState string

const (
	StateViewing EditState = "viewing"
	StateEditing EditState = "editing"
)

// EditSession models one task's editing lifecycle: Viewing -> Editing on an
// edit request, back to Viewing on save or cancel. Only one session exists
// per task; there is no nested editing and no partial commit.
type EditSession struct {
	TaskID string
	State  EditState
	Draft  CreateInput

	// Policy guards Save. The list screen's inline form uses
	// PolicyTitleAndText; the detail screen saves unconditionally (nil).
	Policy ValidationPolicy

	original CreateInput
}

// BeginEdit opens an editing session seeded with the task's current values.
func BeginEdit(t model.Task, policy ValidationPolicy) *EditSession {
	draft := CreateInput{Title: t.Title, Text: t.Text, Priority: t.Priority, Category: t.Category}
	return &EditSession{
		TaskID:   t.ID,
		State:    StateEditing,
		Draft:    draft,
		Policy:   policy,
		original: draft,
	}
}

// Save validates the draft (when a policy is set), persists the merge, and
// returns the session to Viewing. A validation failure keeps the session in
// Editing with the draft intact.
func (s *EditSession) Save(ctx context.Context, c *Controller) error {
	if s.State != StateEditing {
		return nil
	}
	if s.Policy != nil {
		if err := s.Policy.Validate(s.Draft); err != nil {
			return err
		}
	}
	c.Update(ctx, s.TaskID, UpdateFields{
		Title:    &s.Draft.Title,
		Text:     &s.Draft.Text,
		Priority: &s.Draft.Priority,
		Category: &s.Draft.Category,
	})
	s.State = StateViewing
	return nil
}

// Cancel discards the draft and reverts to the last-persisted values.
func (s *EditSession) Cancel() {
	s.Draft = s.original
	s.State = StateViewing
}
