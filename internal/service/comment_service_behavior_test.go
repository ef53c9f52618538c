package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/internal/moderation"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
)

func TestCommentCreate_SafeCommentStaysVisible(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "comment_safe")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-comment-1", time.Now().Add(24*time.Hour))

	c, err := h.comments.Create(ctx, "voter-1", b.ID, "great matchup, loved both entries")
	require.NoError(t, err)
	assert.True(t, c.Visible)

	// Every comment gets a recorded decision, applied or not.
	action, err := h.client.ModerationAction.Query().
		Where(moderationaction.SubjectIDEQ(c.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, moderationaction.StatusPROPOSED, action.Status)
	assert.Equal(t, moderation.ClassSafe, action.Decision["classification"])
}

func TestCommentCreate_ToxicCommentAutoHidden(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "comment_toxic")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-comment-2", time.Now().Add(24*time.Hour))

	c, err := h.comments.Create(ctx, "voter-1", b.ID, "what a pathetic excuse for music, you idiot")
	require.NoError(t, err)
	assert.False(t, c.Visible)
	assert.Equal(t, moderation.ClassToxic, c.HiddenReason)
	assert.Equal(t, moderation.EngineActor, c.HiddenBy)

	action, err := h.client.ModerationAction.Query().
		Where(moderationaction.SubjectIDEQ(c.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, moderationaction.StatusEXECUTED, action.Status)
	assert.Equal(t, "comment_hidden", action.AppliedEffect)
}

func TestCommentCreate_Validation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "comment_validation")
	h.seedCast(t)
	ctx := context.Background()

	_, err := h.comments.Create(ctx, "voter-1", "battle-missing", "hello")
	assert.Equal(t, apperrors.CodeBattleNotFound, appCode(t, err))

	b := h.seedActiveBattle(t, "battle-comment-3", time.Now().Add(24*time.Hour))
	_, err = h.comments.Create(ctx, "voter-1", b.ID, "")
	assert.Equal(t, apperrors.CodeValidationFailed, appCode(t, err))
}

func TestCommentHideAndEdit_Permissions(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "comment_permissions")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-comment-4", time.Now().Add(24*time.Hour))
	c, err := h.comments.Create(ctx, "voter-1", b.ID, "solid production on both sides")
	require.NoError(t, err)

	// A bystander can neither hide nor edit.
	_, err = h.comments.Hide(ctx, "voter-2", c.ID, "spite")
	assert.Equal(t, apperrors.CodeCommentEditForbidden, appCode(t, err))
	_, err = h.comments.Edit(ctx, "voter-2", c.ID, "defaced")
	assert.Equal(t, apperrors.CodeCommentEditForbidden, appCode(t, err))

	edited, err := h.comments.Edit(ctx, "voter-1", c.ID, "solid production, B takes it for me")
	require.NoError(t, err)
	assert.Equal(t, "solid production, B takes it for me", edited.Body)

	hidden, err := h.comments.Hide(ctx, "user-admin", c.ID, "off topic")
	require.NoError(t, err)
	assert.False(t, hidden.Visible)
	assert.Equal(t, "off topic", hidden.HiddenReason)
	assert.Equal(t, "user-admin", hidden.HiddenBy)

	// Hiding an already-hidden comment is a no-op, not an error.
	again, err := h.comments.Hide(ctx, "voter-1", c.ID, "mine")
	require.NoError(t, err)
	assert.Equal(t, "off topic", again.HiddenReason)
}

func TestCommentList_HiddenFiltering(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "comment_list")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-comment-5", time.Now().Add(24*time.Hour))
	visible, err := h.comments.Create(ctx, "voter-1", b.ID, "close one")
	require.NoError(t, err)
	toHide, err := h.comments.Create(ctx, "voter-2", b.ID, "calling it now")
	require.NoError(t, err)
	_, err = h.comments.Hide(ctx, "voter-2", toHide.ID, "changed my mind")
	require.NoError(t, err)

	public, err := h.comments.List(ctx, b.ID, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	adminView, err := h.comments.List(ctx, b.ID, true)
	require.NoError(t, err)
	assert.Len(t, adminView, 2)
}
