package lifecycle

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trizenhq/trizen/internal/kvstore"
	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/tasks"
)

func newTestController(t *testing.T) (*Controller, *tasks.Repository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := tasks.NewRepository(kvstore.NewMemoryStore(), logger)
	return NewController(repo, logger), repo
}

func TestCreateThenLoad(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{
		Title:    "Buy milk",
		Text:     "",
		Priority: model.PriorityMedium,
		Category: "Shopping",
	}, PolicyTitleOnly)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	out := repo.Load(ctx)
	require.Len(t, out, 1)
	assert.Equal(t, "Buy milk", out[0].Title)
	assert.Equal(t, "", out[0].Text)
	assert.False(t, out[0].Completed)
	assert.Equal(t, model.PriorityMedium, out[0].Priority)
	assert.Equal(t, "Shopping", out[0].Category)
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	first, err := ctrl.Create(ctx, CreateInput{Title: "first"}, PolicyTitleOnly)
	require.NoError(t, err)
	second, err := ctrl.Create(ctx, CreateInput{Title: "second"}, PolicyTitleOnly)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	out := repo.Load(ctx)
	require.Len(t, out, 2)
	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, first.ID, out[1].ID)
}

func TestCreateValidationPolicies(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	// Add screen: title alone is enough.
	_, err := ctrl.Create(ctx, CreateInput{Title: "only a title"}, PolicyTitleOnly)
	assert.NoError(t, err)

	// Inline edit form: description is required too.
	_, err = ctrl.Create(ctx, CreateInput{Title: "only a title"}, PolicyTitleAndText)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Blank title fails under both, whitespace included.
	_, err = ctrl.Create(ctx, CreateInput{Title: "   ", Text: "body"}, PolicyTitleOnly)
	require.ErrorAs(t, err, &verr)

	// A failed validation performs no mutation.
	assert.Len(t, repo.Load(ctx), 1)
}

func TestCreateDefaultsPriorityAndCategory(t *testing.T) {
	ctrl, _ := newTestController(t)

	created, err := ctrl.Create(context.Background(), CreateInput{Title: "defaults"}, PolicyTitleOnly)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPriority, created.Priority)
	assert.Equal(t, model.DefaultCategory, created.Category)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "original", Text: "body", Category: "Work"}, PolicyTitleOnly)
	require.NoError(t, err)
	ctrl.ToggleComplete(ctx, created.ID)
	before := repo.Load(ctx)[0]

	title := "X"
	ctrl.Update(ctx, created.ID, UpdateFields{Title: &title})

	after := repo.Load(ctx)[0]
	assert.Equal(t, "X", after.Title)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Text, after.Text)
	assert.Equal(t, before.Completed, after.Completed)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.Equal(t, before.Priority, after.Priority)
	assert.Equal(t, before.Category, after.Category)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	_, err := ctrl.Create(ctx, CreateInput{Title: "keep me"}, PolicyTitleOnly)
	require.NoError(t, err)
	before := repo.Load(ctx)

	title := "X"
	ctrl.Update(ctx, "no-such-id", UpdateFields{Title: &title})

	assert.Equal(t, before, repo.Load(ctx))
}

func TestToggleCompleteTwiceRestoresState(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "toggle me"}, PolicyTitleOnly)
	require.NoError(t, err)

	ch := repo.Subscribe()
	ctrl.ToggleComplete(ctx, created.ID)
	assert.True(t, repo.Load(ctx)[0].Completed)
	requireSignal(t, ch)

	ctrl.ToggleComplete(ctx, created.ID)
	assert.False(t, repo.Load(ctx)[0].Completed)
	requireSignal(t, ch)
}

func TestTwoStepDelete(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "doomed"}, PolicyTitleOnly)
	require.NoError(t, err)

	req := ctrl.RequestDelete(created.ID)
	require.NotEmpty(t, req.Token)
	// Nothing happens until confirmation.
	assert.Len(t, repo.Load(ctx), 1)

	ctrl.ConfirmDelete(ctx, req.Token)
	assert.Empty(t, repo.Load(ctx))

	// A spent token is inert.
	ctrl.ConfirmDelete(ctx, req.Token)
	assert.Empty(t, repo.Load(ctx))
}

func TestCancelDeleteKeepsTask(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "survivor"}, PolicyTitleOnly)
	require.NoError(t, err)

	req := ctrl.RequestDelete(created.ID)
	ctrl.CancelDelete(req.Token)
	ctrl.ConfirmDelete(ctx, req.Token)

	assert.Len(t, repo.Load(ctx), 1)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	_, err := ctrl.Create(ctx, CreateInput{Title: "keep"}, PolicyTitleOnly)
	require.NoError(t, err)
	before := repo.Load(ctx)

	req := ctrl.RequestDelete("no-such-id")
	ctrl.ConfirmDelete(ctx, req.Token)

	assert.Equal(t, before, repo.Load(ctx))
}

func requireSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected change signal")
	}
}
