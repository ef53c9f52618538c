package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func newEngineHarness(t *testing.T, prefix string) (*Engine, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	alerts := monitor.NewService(client, 0)
	auditLogger := audit.NewLogger(client, alerts, nil)
	return NewEngine(client, auditLogger, alerts), client
}

func seedComment(t *testing.T, client *ent.Client, id, body string) *ent.Comment {
	t.Helper()
	ctx := context.Background()
	_, err := client.Battle.Create().
		SetID("battle-1").
		SetSlug("arena-battle-1").
		SetStatus(battle.StatusACTIVE).
		SetParticipantA("user-a").
		SetParticipantB("user-b").
		SetCreatedBy("user-a").
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		t.Fatalf("seed battle: %v", err)
	}

	c, err := client.Comment.Create().
		SetID(id).
		SetBattleID("battle-1").
		SetAuthorID("user-author").
		SetBody(body).
		Save(ctx)
	require.NoError(t, err)
	return c
}

func TestOnCommentCreated_SafeCommentOnlyProposed(t *testing.T) {
	t.Parallel()

	engine, client := newEngineHarness(t, "engine_safe")
	ctx := context.Background()

	c := seedComment(t, client, "comment-1", "the mixing on track A is superb")

	action, err := engine.OnCommentCreated(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, moderationaction.StatusPROPOSED, action.Status)
	assert.Equal(t, ClassSafe, action.Decision["classification"])
	assert.Empty(t, action.AppliedEffect)

	fresh, err := client.Comment.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, fresh.Visible)

	// No audit mirror for unapplied decisions.
	n, err := client.AuditEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOnCommentCreated_AutoHideAndMirror(t *testing.T) {
	t.Parallel()

	engine, client := newEngineHarness(t, "engine_autohide")
	ctx := context.Background()

	var hookComment string
	var hookReason string
	engine.SetHiddenHook(func(_ context.Context, c *ent.Comment, reason string) {
		hookComment = c.ID
		hookReason = reason
	})

	c := seedComment(t, client, "comment-1", "buy now at https://spam.example promo code inside")

	action, err := engine.OnCommentCreated(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, moderationaction.StatusEXECUTED, action.Status)
	assert.Equal(t, "comment_hidden", action.AppliedEffect)
	assert.Equal(t, EngineActor, action.ExecutedBy)
	require.NotNil(t, action.ExecutedAt)

	fresh, err := client.Comment.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Visible)
	assert.Equal(t, ClassSpam, fresh.HiddenReason)
	assert.Equal(t, EngineActor, fresh.HiddenBy)

	assert.Equal(t, c.ID, hookComment)
	assert.Equal(t, ClassSpam, hookReason)

	mirror, err := client.AuditEntry.Query().
		Where(auditentry.SourceDecisionIDEQ(action.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, audit.ActionModerationApply, mirror.Action)
	assert.Equal(t, c.ID, mirror.SubjectID)
}

func TestOnCommentCreated_AlreadyHiddenComment(t *testing.T) {
	t.Parallel()

	engine, client := newEngineHarness(t, "engine_alreadyhidden")
	ctx := context.Background()

	c := seedComment(t, client, "comment-1", "you pathetic idiot")
	require.NoError(t, client.Comment.UpdateOneID(c.ID).
		SetVisible(false).
		SetHiddenReason("manual").
		SetHiddenBy("user-admin").
		Exec(ctx))
	c, err := client.Comment.Get(ctx, c.ID)
	require.NoError(t, err)

	hookFired := false
	engine.SetHiddenHook(func(context.Context, *ent.Comment, string) { hookFired = true })

	action, err := engine.OnCommentCreated(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, moderationaction.StatusEXECUTED, action.Status)
	assert.Equal(t, "already_hidden", action.AppliedEffect)
	assert.False(t, hookFired)

	// The manual hide attribution is untouched.
	fresh, err := client.Comment.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-admin", fresh.HiddenBy)
}

func TestOverride_RestoreAndFeedback(t *testing.T) {
	t.Parallel()

	engine, client := newEngineHarness(t, "engine_override")
	ctx := context.Background()

	c := seedComment(t, client, "comment-1", "dm me for free followers giveaway")
	action, err := engine.OnCommentCreated(ctx, c)
	require.NoError(t, err)
	require.Equal(t, moderationaction.StatusEXECUTED, action.Status)

	overridden, err := engine.Override(ctx, action.ID, "user-admin", OverrideRestore, "false positive")
	require.NoError(t, err)
	assert.Equal(t, moderationaction.StatusOVERRIDDEN, overridden.Status)
	assert.Equal(t, ClassSpam, overridden.OverrideFeedback["predicted"])
	assert.Equal(t, OverrideRestore, overridden.OverrideFeedback["human_decision"])
	assert.Equal(t, "user-admin", overridden.OverrideFeedback["overridden_by"])
	assert.Equal(t, "false positive", overridden.OverrideFeedback["note"])

	fresh, err := client.Comment.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, fresh.Visible)
	assert.Empty(t, fresh.HiddenReason)
	assert.Empty(t, fresh.HiddenBy)
}

func TestOverride_HideConfirmsDecision(t *testing.T) {
	t.Parallel()

	engine, client := newEngineHarness(t, "engine_override_hide")
	ctx := context.Background()

	c := seedComment(t, client, "comment-1", "the vocals felt a bit rigged to me")
	action, err := engine.OnCommentCreated(ctx, c)
	require.NoError(t, err)
	require.Equal(t, moderationaction.StatusPROPOSED, action.Status)

	_, err = engine.Override(ctx, action.ID, "user-admin", OverrideHide, "agree with the model")
	require.NoError(t, err)

	fresh, err := client.Comment.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Visible)
	assert.Equal(t, "admin_override", fresh.HiddenReason)
	assert.Equal(t, "user-admin", fresh.HiddenBy)
}

func TestOverride_Validation(t *testing.T) {
	t.Parallel()

	engine, client := newEngineHarness(t, "engine_override_validation")
	ctx := context.Background()

	c := seedComment(t, client, "comment-1", "fine entry")
	action, err := engine.OnCommentCreated(ctx, c)
	require.NoError(t, err)

	_, err = engine.Override(ctx, action.ID, "user-admin", "obliterate", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))

	_, err = engine.Override(ctx, "mod-missing", "user-admin", OverrideRestore, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeModerationActionNotFound, apperrors.CodeOf(err))
}
