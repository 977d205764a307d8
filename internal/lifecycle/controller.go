package lifecycle

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/tasks"
)

// Controller orchestrates task mutations: it validates input, assigns ids,
// and drives the repository. Storage failures are optimistic per the app's
// error model: the repository logs them and the operation is reported as
// having gone through.
type Controller struct {
	repo   *tasks.Repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	pendingMu sync.Mutex
	pending   map[string]string // confirmation token -> task id
}

func NewController(repo *tasks.Repository, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		repo:    repo,
		logger:  logger,
		now:     time.Now,
		newID:   model.NewID,
		pending: make(map[string]string),
	}
}

type CreateInput struct {
	Title    string
	Text     string
	Priority model.Priority
	Category string
}

// Create validates the input under the given policy, then prepends a fresh
// task so the collection stays newest-first. A validation failure performs no
// mutation.
func (c *Controller) Create(ctx context.Context, in CreateInput, policy ValidationPolicy) (model.Task, error) {
	if err := policy.Validate(in); err != nil {
		return model.Task{}, err
	}

	priority := in.Priority
	if !priority.IsValid() {
		priority = model.DefaultPriority
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = model.DefaultCategory
	}
	task := model.Task{
		ID:        c.newID(),
		Title:     strings.TrimSpace(in.Title),
		Text:      strings.TrimSpace(in.Text),
		Completed: false,
		CreatedAt: c.now().UTC(),
		Priority:  priority,
		Category:  category,
	}

	err := c.repo.Mutate(ctx, func(ts []model.Task) ([]model.Task, bool) {
		return append([]model.Task{task}, ts...), true
	})
	if err != nil {
		c.logger.Error("create task: persist", "id", task.ID, "error", err)
	}
	return task, nil
}

// UpdateFields carries the fields an edit may change. Nil means "leave as
// is". id, completed and createdAt are never touched by an update.
type UpdateFields struct {
	Title    *string
	Text     *string
	Priority *model.Priority
	Category *string
}

// Update merges the provided fields into the task with the given id. An
// unknown id is a silent no-op.
func (c *Controller) Update(ctx context.Context, id string, fields UpdateFields) {
	err := c.repo.Mutate(ctx, func(ts []model.Task) ([]model.Task, bool) {
		for i := range ts {
			if ts[i].ID != id {
				continue
			}
			if fields.Title != nil {
				ts[i].Title = strings.TrimSpace(*fields.Title)
			}
			if fields.Text != nil {
				ts[i].Text = strings.TrimSpace(*fields.Text)
			}
			if fields.Priority != nil {
				ts[i].Priority = *fields.Priority
			}
			if fields.Category != nil {
				ts[i].Category = *fields.Category
			}
			return ts, true
		}
		c.logger.Debug("update: id not found", "id", id)
		return ts, false
	})
	if err != nil {
		c.logger.Error("update task: persist", "id", id, "error", err)
	}
}

// ToggleComplete flips the completion flag. Each call is a full persisted
// round trip; two toggles restore the original state.
func (c *Controller) ToggleComplete(ctx context.Context, id string) {
	err := c.repo.Mutate(ctx, func(ts []model.Task) ([]model.Task, bool) {
		for i := range ts {
			if ts[i].ID == id {
				ts[i].Completed = !ts[i].Completed
				return ts, true
			}
		}
		c.logger.Debug("toggle: id not found", "id", id)
		return ts, false
	})
	if err != nil {
		c.logger.Error("toggle task: persist", "id", id, "error", err)
	}
}

// DeleteRequest is a pending deletion waiting for the user's confirm/cancel
// decision.
type DeleteRequest struct {
	Token  string
	TaskID string
}

// RequestDelete starts the two-step delete: nothing is removed until the
// returned token is confirmed.
func (c *Controller) RequestDelete(id string) DeleteRequest {
	req := DeleteRequest{Token: c.newID(), TaskID: id}
	c.pendingMu.Lock()
	c.pending[req.Token] = id
	c.pendingMu.Unlock()
	return req
}

// ConfirmDelete removes the task named by a previously issued token. An
// unknown or already-used token, like an unknown task id, is a no-op.
func (c *Controller) ConfirmDelete(ctx context.Context, token string) {
	c.pendingMu.Lock()
	id, ok := c.pending[token]
	delete(c.pending, token)
	c.pendingMu.Unlock()
	if !ok {
		c.logger.Debug("confirm delete: unknown token")
		return
	}
	if err := c.repo.Remove(ctx, id); err != nil {
		c.logger.Error("delete task: persist", "id", id, "error", err)
	}
}

// CancelDelete discards a pending confirmation.
func (c *Controller) CancelDelete(token string) {
	c.pendingMu.Lock()
	delete(c.pending, token)
	c.pendingMu.Unlock()
}
