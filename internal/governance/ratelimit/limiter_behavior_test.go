package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/ratelimitviolation"
	"versus-arena.io/arena/internal/governance/monitor"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/settings"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func newLimiterHarness(t *testing.T, prefix string) (*Limiter, *ent.Client, *settings.Store) {
	t.Helper()
	client, pool := testutil.OpenEntWithPool(t, prefix)
	store := settings.NewStore(client)
	alerts := monitor.NewService(client, time.Hour)
	return NewLimiter(pool, client, store, alerts), client, store
}

func putRules(t *testing.T, store *settings.Store, rules map[string]interface{}) {
	t.Helper()
	_, err := store.Put(context.Background(), settings.KeyRateLimitRules, rules, "test")
	require.NoError(t, err)
}

func TestCheckAndConsume_BudgetBoundary(t *testing.T) {
	t.Parallel()

	limiter, client, store := newLimiterHarness(t, "limiter_boundary")
	ctx := context.Background()

	putRules(t, store, map[string]interface{}{
		ProcedureVoteCast: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 3,
			"enabled":            true,
		},
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureVoteCast))
	}

	err := limiter.CheckAndConsume(ctx, "user-1", ProcedureVoteCast)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeRateLimitExceeded, apperrors.CodeOf(err))

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 3, appErr.Params["allowed_per_minute"])
	assert.Positive(t, appErr.Params["retry_after_secs"])

	// A user-scoped rule does not couple actors.
	require.NoError(t, limiter.CheckAndConsume(ctx, "user-2", ProcedureVoteCast))

	// The breach left a durable violation row and a warning alert.
	violations, err := client.RateLimitViolation.Query().
		Where(ratelimitviolation.ActorEQ("user-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, ProcedureVoteCast, violations[0].Procedure)
	assert.Equal(t, 4, violations[0].Count)
	assert.Equal(t, 3, violations[0].AllowedPerMinute)

	alerts, err := client.MonitoringAlert.Query().
		Where(monitoringalert.EventTypeEQ(monitor.EventRateLimitBreach)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "user-1", alerts[0].SubjectID)
}

func TestCheckAndConsume_WindowRollover(t *testing.T) {
	t.Parallel()

	limiter, _, store := newLimiterHarness(t, "limiter_rollover")
	ctx := context.Background()

	putRules(t, store, map[string]interface{}{
		ProcedureCommentCreate: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 1,
			"enabled":            true,
		},
	})

	base := time.Now().UTC().Truncate(time.Minute)
	limiter.now = func() time.Time { return base.Add(10 * time.Second) }

	require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureCommentCreate))
	require.Error(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureCommentCreate))

	// The next window starts fresh.
	limiter.now = func() time.Time { return base.Add(70 * time.Second) }
	require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureCommentCreate))
}

func TestCheckAndConsume_GlobalScopeSharesBudget(t *testing.T) {
	t.Parallel()

	limiter, _, store := newLimiterHarness(t, "limiter_global")
	ctx := context.Background()

	putRules(t, store, map[string]interface{}{
		ProcedureAdminValidate: map[string]interface{}{
			"scope":              ScopeGlobal,
			"allowed_per_minute": 2,
			"enabled":            true,
		},
	})

	require.NoError(t, limiter.CheckAndConsume(ctx, "admin-1", ProcedureAdminValidate))
	require.NoError(t, limiter.CheckAndConsume(ctx, "admin-2", ProcedureAdminValidate))
	err := limiter.CheckAndConsume(ctx, "admin-3", ProcedureAdminValidate)
	assert.Equal(t, apperrors.CodeRateLimitExceeded, apperrors.CodeOf(err))
}

func TestCheckAndConsume_UnlistedAndDisabledProceduresPass(t *testing.T) {
	t.Parallel()

	limiter, _, store := newLimiterHarness(t, "limiter_unlisted")
	ctx := context.Background()

	putRules(t, store, map[string]interface{}{
		ProcedureBattlePropose: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 1,
			"enabled":            false,
		},
	})

	// No rules document at all for the procedure, and an explicitly disabled
	// rule, both mean unlimited.
	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureFinalize))
		require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureBattlePropose))
	}
}

func TestCheckAndConsume_FailsOpenOnBadRuleTable(t *testing.T) {
	t.Parallel()

	limiter, _, store := newLimiterHarness(t, "limiter_failopen")
	ctx := context.Background()

	putRules(t, store, map[string]interface{}{
		ProcedureVoteCast: map[string]interface{}{
			"scope":              "galactic",
			"allowed_per_minute": 1,
			"enabled":            true,
		},
	})

	// An unparseable rule table must not lock users out.
	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureVoteCast))
	}
}

func TestPurgeCountersBefore(t *testing.T) {
	t.Parallel()

	limiter, client, store := newLimiterHarness(t, "limiter_purge")
	ctx := context.Background()

	putRules(t, store, map[string]interface{}{
		ProcedureVoteCast: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 10,
			"enabled":            true,
		},
	})

	base := time.Now().UTC().Truncate(time.Minute)
	limiter.now = func() time.Time { return base.Add(-2 * time.Hour) }
	require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureVoteCast))
	limiter.now = func() time.Time { return base }
	require.NoError(t, limiter.CheckAndConsume(ctx, "user-1", ProcedureVoteCast))

	deleted, err := limiter.PurgeCountersBefore(ctx, base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.RateLimitCounter.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
