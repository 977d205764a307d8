package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trizenhq/trizen/internal/model"
)

func TestEditSessionSave(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "draft me", Text: "body"}, PolicyTitleOnly)
	require.NoError(t, err)

	session := BeginEdit(created, PolicyTitleAndText)
	assert.Equal(t, StateEditing, session.State)

	session.Draft.Title = "edited"
	session.Draft.Priority = model.PriorityHigh
	require.NoError(t, session.Save(ctx, ctrl))
	assert.Equal(t, StateViewing, session.State)

	out := repo.Load(ctx)[0]
	assert.Equal(t, "edited", out.Title)
	assert.Equal(t, model.PriorityHigh, out.Priority)
}

func TestEditSessionValidationKeepsEditing(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "original", Text: "body"}, PolicyTitleOnly)
	require.NoError(t, err)

	session := BeginEdit(created, PolicyTitleAndText)
	session.Draft.Text = "   "
	err = session.Save(ctx, ctrl)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StateEditing, session.State)
	assert.Equal(t, "original", repo.Load(ctx)[0].Title)
}

func TestEditSessionCancelRevertsDraft(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "original", Text: "body"}, PolicyTitleOnly)
	require.NoError(t, err)

	session := BeginEdit(created, PolicyTitleAndText)
	session.Draft.Title = "scratch"
	session.Cancel()

	assert.Equal(t, StateViewing, session.State)
	assert.Equal(t, "original", session.Draft.Title)
	assert.Equal(t, "original", repo.Load(ctx)[0].Title)
}

func TestEditSessionWithoutPolicySavesUnconditionally(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, CreateInput{Title: "detail", Text: "body"}, PolicyTitleOnly)
	require.NoError(t, err)

	session := BeginEdit(created, nil)
	session.Draft.Text = ""
	require.NoError(t, session.Save(ctx, ctrl))
	assert.Equal(t, "", repo.Load(ctx)[0].Text)
}
