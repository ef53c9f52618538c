package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/identity"
	"versus-arena.io/arena/internal/moderation"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/pkg/worker"
	"versus-arena.io/arena/internal/settings"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// harness wires the full service stack against an isolated schema.
type harness struct {
	client     *ent.Client
	store      *settings.Store
	alerts     *monitor.Service
	audit      *audit.Logger
	oracle     *identity.EntOracle
	limiter    *ratelimit.Limiter
	dispatcher *domain.EventDispatcher
	battles    *BattleService
	votes      *VoteService
	comments   *CommentService
	engine     *moderation.Engine
}

func newHarness(t *testing.T, prefix string) *harness {
	t.Helper()

	client, pool := testutil.OpenEntWithPool(t, prefix)

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	alerts := monitor.NewService(client, time.Hour)
	auditLogger := audit.NewLogger(client, alerts, pools)
	store := settings.NewStore(client)
	oracle := identity.NewEntOracle(client)
	limiter := ratelimit.NewLimiter(pool, client, store, alerts)
	dispatcher := domain.NewEventDispatcher()
	engine := moderation.NewEngine(client, auditLogger, alerts)

	return &harness{
		client:     client,
		store:      store,
		alerts:     alerts,
		audit:      auditLogger,
		oracle:     oracle,
		limiter:    limiter,
		dispatcher: dispatcher,
		battles:    NewBattleService(client, limiter, oracle, oracle, auditLogger, alerts, store, dispatcher),
		votes:      NewVoteService(client, limiter, oracle, auditLogger),
		comments:   NewCommentService(client, limiter, oracle, auditLogger, engine, dispatcher),
		engine:     engine,
	}
}

func (h *harness) seedUser(t *testing.T, id string, role user.Role, verified bool) {
	t.Helper()
	_, err := h.client.User.Create().
		SetID(id).
		SetUsername(id).
		SetEmail(id + "@example.com").
		SetEmailVerified(verified).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
}

func (h *harness) seedSubmission(t *testing.T, id, ownerID string) {
	t.Helper()
	_, err := h.client.Submission.Create().
		SetID(id).
		SetOwnerID(ownerID).
		SetTitle("work " + id).
		Save(context.Background())
	require.NoError(t, err)
}

// seedCast creates the standard fixture: two participants with submissions,
// an admin and three verified voters.
func (h *harness) seedCast(t *testing.T) {
	t.Helper()
	h.seedUser(t, "user-a", user.RoleUSER, true)
	h.seedUser(t, "user-b", user.RoleUSER, true)
	h.seedUser(t, "user-admin", user.RoleADMIN, true)
	h.seedUser(t, "voter-1", user.RoleUSER, true)
	h.seedUser(t, "voter-2", user.RoleUSER, true)
	h.seedUser(t, "voter-3", user.RoleUSER, true)
	h.seedSubmission(t, "sub-a", "user-a")
	h.seedSubmission(t, "sub-b", "user-b")
}

// seedActiveBattle inserts a battle directly in ACTIVE with an open voting
// window, bypassing the proposal flow.
func (h *harness) seedActiveBattle(t *testing.T, id string, votingEndsAt time.Time) *ent.Battle {
	t.Helper()
	now := time.Now()
	b, err := h.client.Battle.Create().
		SetID(id).
		SetSlug("arena-" + id).
		SetParticipantA("user-a").
		SetParticipantB("user-b").
		SetSubmissionA("sub-a").
		SetSubmissionB("sub-b").
		SetStatus(battle.StatusACTIVE).
		SetStartsAt(now).
		SetVotingEndsAt(votingEndsAt).
		SetAcceptedAt(now).
		SetAdminValidatedAt(now).
		SetCreatedBy("user-a").
		Save(context.Background())
	require.NoError(t, err)
	return b
}

func (h *harness) user(t *testing.T, id string) *ent.User {
	t.Helper()
	u, err := h.client.User.Get(context.Background(), id)
	require.NoError(t, err)
	return u
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.CodeOf(err)
}

func TestBattleLifecycle_ProposeToFinalize(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_lifecycle")
	h.seedCast(t)
	ctx := context.Background()

	_, err := h.store.Put(ctx, settings.KeyVotingDefaultDuration, map[string]interface{}{"days": 3}, "test")
	require.NoError(t, err)

	b, err := h.battles.Propose(ctx, "user-a", "user-b", "sub-a", "sub-b", nil)
	require.NoError(t, err)
	assert.Equal(t, battle.StatusPENDING_ACCEPTANCE, b.Status)
	assert.Contains(t, b.Slug, "arena-")
	require.NotNil(t, b.ResponseDeadline)
	assert.WithinDuration(t, time.Now().Add(ResponseWindow), *b.ResponseDeadline, time.Minute)
	assert.Zero(t, b.VotesA)
	assert.Zero(t, b.VotesB)
	assert.Nil(t, b.Winner)

	b, err = h.battles.Respond(ctx, b.ID, "user-b", true, "")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusAWAITING_ADMIN, b.Status)
	require.NotNil(t, b.AcceptedAt)

	b, err = h.battles.AdminValidate(ctx, b.ID, "user-admin")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusACTIVE, b.Status)
	require.NotNil(t, b.StartsAt)
	require.NotNil(t, b.VotingEndsAt)
	// Global default (3 days) applies when the battle has no override.
	assert.WithinDuration(t, b.StartsAt.AddDate(0, 0, 3), *b.VotingEndsAt, time.Minute)

	assert.Equal(t, 1, h.user(t, "user-a").BattlesParticipated)
	assert.Equal(t, 1, h.user(t, "user-b").BattlesParticipated)

	for voterID, target := range map[string]string{
		"voter-1": "user-a",
		"voter-2": "user-a",
		"voter-3": "user-b",
	} {
		_, err = h.votes.CastVote(ctx, voterID, b.ID, voterID, target)
		require.NoError(t, err)
	}

	b, err = h.battles.Finalize(ctx, b.ID, "user-admin")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusCOMPLETED, b.Status)
	assert.Equal(t, 2, b.VotesA)
	assert.Equal(t, 1, b.VotesB)
	require.NotNil(t, b.Winner)
	assert.Equal(t, "user-a", *b.Winner)

	// Finalize on a completed battle is a no-op returning the recorded state.
	again, err := h.battles.Finalize(ctx, b.ID, "user-admin")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusCOMPLETED, again.Status)
	require.NotNil(t, again.Winner)
	assert.Equal(t, "user-a", *again.Winner)
	assert.Equal(t, 2, again.VotesA)

	// Counters reflect exactly one completion per participant.
	ua := h.user(t, "user-a")
	assert.Equal(t, 1, ua.BattlesCompleted)
	assert.Equal(t, 2, ua.EngagementScore)

	// Every transition left an audit row.
	for _, action := range []string{
		audit.ActionBattlePropose,
		audit.ActionBattleAccept,
		audit.ActionBattleValidate,
		audit.ActionVoteCast,
		audit.ActionBattleFinalize,
	} {
		n, err := h.client.AuditEntry.Query().
			Where(auditentry.ActionEQ(action), auditentry.SuccessEQ(true)).
			Count(ctx)
		require.NoError(t, err)
		assert.Positive(t, n, "expected audit entries for %s", action)
	}
}

func TestBattleRespond_RejectCountsRefusal(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_reject")
	h.seedCast(t)
	ctx := context.Background()

	b, err := h.battles.Propose(ctx, "user-a", "user-b", "sub-a", "", nil)
	require.NoError(t, err)

	_, err = h.battles.Respond(ctx, b.ID, "user-b", false, "")
	assert.Equal(t, apperrors.CodeRejectionReasonRequired, appCode(t, err))

	b, err = h.battles.Respond(ctx, b.ID, "user-b", false, "schedule conflict")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusREJECTED, b.Status)
	assert.Equal(t, "schedule conflict", b.RejectionReason)
	require.NotNil(t, b.RejectedAt)

	ub := h.user(t, "user-b")
	assert.Equal(t, 1, ub.BattlesRefused)
	assert.Equal(t, -1, ub.EngagementScore)

	// The response is recorded exactly once.
	_, err = h.battles.Respond(ctx, b.ID, "user-b", true, "")
	assert.Equal(t, apperrors.CodeBattleNotWaitingForResponse, appCode(t, err))
}

func TestBattlePropose_Validation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_propose_validation")
	h.seedCast(t)
	h.seedUser(t, "user-disabled", user.RoleUSER, true)
	ctx := context.Background()

	require.NoError(t, h.client.User.UpdateOneID("user-disabled").SetEnabled(false).Exec(ctx))

	cases := []struct {
		name       string
		proposer   string
		opponent   string
		subA, subB string
		duration   *int
	}{
		{"self battle", "user-a", "user-a", "sub-a", "", nil},
		{"duration below range", "user-a", "user-b", "sub-a", "", intPtr(0)},
		{"duration above range", "user-a", "user-b", "sub-a", "", intPtr(MaxTotalDurationDays + 1)},
		{"disabled opponent", "user-a", "user-disabled", "sub-a", "", nil},
		{"submission not owned by proposer", "user-a", "user-b", "sub-b", "", nil},
		{"opponent submission not owned", "user-a", "user-b", "sub-a", "sub-a", nil},
		{"unknown submission", "user-a", "user-b", "sub-missing", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.battles.Propose(ctx, tc.proposer, tc.opponent, tc.subA, tc.subB, tc.duration)
			assert.Equal(t, apperrors.CodeInvalidProposal, appCode(t, err))
		})
	}

	// Nothing was persisted by the rejected proposals.
	n, err := h.client.Battle.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAdminValidate_DurationOverrideWins(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_duration_override")
	h.seedCast(t)
	ctx := context.Background()

	_, err := h.store.Put(ctx, settings.KeyVotingDefaultDuration, map[string]interface{}{"days": 3}, "test")
	require.NoError(t, err)

	b, err := h.battles.Propose(ctx, "user-a", "user-b", "sub-a", "sub-b", intPtr(10))
	require.NoError(t, err)
	require.NotNil(t, b.CustomDurationDays)
	assert.Equal(t, 10, *b.CustomDurationDays)

	_, err = h.battles.Respond(ctx, b.ID, "user-b", true, "")
	require.NoError(t, err)

	b, err = h.battles.AdminValidate(ctx, b.ID, "user-admin")
	require.NoError(t, err)
	require.NotNil(t, b.VotingEndsAt)
	assert.WithinDuration(t, b.StartsAt.AddDate(0, 0, 10), *b.VotingEndsAt, time.Minute)
}

func TestAdminOperations_RequireAdmin(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_admin_gate")
	h.seedCast(t)
	ctx := context.Background()

	b, err := h.battles.Propose(ctx, "user-a", "user-b", "sub-a", "", nil)
	require.NoError(t, err)
	_, err = h.battles.Respond(ctx, b.ID, "user-b", true, "")
	require.NoError(t, err)

	_, err = h.battles.AdminValidate(ctx, b.ID, "voter-1")
	assert.Equal(t, apperrors.CodeAdminRequired, appCode(t, err))

	_, err = h.battles.AdminCancel(ctx, b.ID, "voter-1", "nope")
	assert.Equal(t, apperrors.CodeAdminRequired, appCode(t, err))

	// The denial itself is audited.
	n, err := h.client.AuditEntry.Query().
		Where(
			auditentry.ActorEQ("voter-1"),
			auditentry.SuccessEQ(false),
			auditentry.ErrorCodeEQ(apperrors.CodeAdminRequired),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAdminExtendDuration(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_extend")
	h.seedCast(t)
	ctx := context.Background()

	end := time.Now().Add(48 * time.Hour)
	b := h.seedActiveBattle(t, "battle-extend-1", end)

	extended, err := h.battles.AdminExtendDuration(ctx, b.ID, "user-admin", 2, "close race")
	require.NoError(t, err)
	assert.Equal(t, 1, extended.ExtensionCount)
	require.NotNil(t, extended.VotingEndsAt)
	assert.WithinDuration(t, end.AddDate(0, 0, 2), *extended.VotingEndsAt, time.Second)

	// An expired window cannot be extended.
	expired := h.seedActiveBattle(t, "battle-extend-2", time.Now().Add(-time.Hour))
	_, err = h.battles.AdminExtendDuration(ctx, expired.ID, "user-admin", 2, "too late")
	assert.Equal(t, apperrors.CodeBattleAlreadyExpired, appCode(t, err))
}

func TestAdminCancel_ClearsWinnerAndIsTerminal(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_cancel")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-cancel-1", time.Now().Add(24*time.Hour))

	cancelled, err := h.battles.AdminCancel(ctx, b.ID, "user-admin", "rule violation")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusCANCELLED, cancelled.Status)
	assert.Nil(t, cancelled.Winner)

	// Cancelled battles never finalize.
	_, err = h.battles.Finalize(ctx, b.ID, "user-admin")
	assert.Equal(t, apperrors.CodeBattleCancelled, appCode(t, err))
}

func TestFinalize_TieLeavesNoWinner(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_tie")
	h.seedCast(t)
	ctx := context.Background()

	b := h.seedActiveBattle(t, "battle-tie-1", time.Now().Add(24*time.Hour))
	_, err := h.votes.CastVote(ctx, "voter-1", b.ID, "voter-1", "user-a")
	require.NoError(t, err)
	_, err = h.votes.CastVote(ctx, "voter-2", b.ID, "voter-2", "user-b")
	require.NoError(t, err)

	done, err := h.battles.Finalize(ctx, b.ID, "user-admin")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusCOMPLETED, done.Status)
	assert.Nil(t, done.Winner)
}

func TestSweepExpired_FinalizesOnlyElapsedWindows(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_sweep")
	h.seedCast(t)
	ctx := context.Background()

	expired := h.seedActiveBattle(t, "battle-sweep-expired", time.Now().Add(-time.Hour))
	open := h.seedActiveBattle(t, "battle-sweep-open", time.Now().Add(time.Hour))

	_, err := h.votes.CastVote(ctx, "voter-1", expired.ID, "voter-1", "user-b")
	require.NoError(t, err)

	finalized, err := h.battles.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, finalized)

	got, err := h.battles.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, battle.StatusCOMPLETED, got.Status)
	require.NotNil(t, got.Winner)
	assert.Equal(t, "user-b", *got.Winner)

	got, err = h.battles.Get(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, battle.StatusACTIVE, got.Status)

	// Re-running the sweep finds nothing new.
	finalized, err = h.battles.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, finalized)
}

func TestSweepExpired_FinalizeFailureRaisesAlert(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_sweep_failure")
	h.seedCast(t)
	ctx := context.Background()

	// Participants without user rows make the counter update inside finalize
	// fail, so the sweep cannot close this battle.
	now := time.Now()
	_, err := h.client.Battle.Create().
		SetID("battle-sweep-stuck").
		SetSlug("arena-battle-sweep-stuck").
		SetParticipantA("ghost-a").
		SetParticipantB("ghost-b").
		SetSubmissionA("sub-a").
		SetSubmissionB("sub-b").
		SetStatus(battle.StatusACTIVE).
		SetStartsAt(now.Add(-2 * time.Hour)).
		SetVotingEndsAt(now.Add(-time.Hour)).
		SetCreatedBy("ghost-a").
		Save(ctx)
	require.NoError(t, err)

	finalized, err := h.battles.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, finalized)

	got, err := h.battles.Get(ctx, "battle-sweep-stuck")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusACTIVE, got.Status)

	alert, err := h.client.MonitoringAlert.Query().
		Where(
			monitoringalert.EventTypeEQ(monitor.EventSweepFailure),
			monitoringalert.SubjectIDEQ("battle-sweep-stuck"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, monitoringalert.SeverityWARNING, alert.Severity)
	assert.False(t, alert.Resolved)

	// The next sweep hits the same wall; dedup keeps it to one open alert.
	_, err = h.battles.SweepExpired(ctx)
	require.NoError(t, err)
	n, err := h.client.MonitoringAlert.Query().
		Where(monitoringalert.EventTypeEQ(monitor.EventSweepFailure)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBattleGetAndList(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "battle_list")
	h.seedCast(t)
	ctx := context.Background()

	_, err := h.battles.Get(ctx, "battle-missing")
	assert.Equal(t, apperrors.CodeBattleNotFound, appCode(t, err))

	h.seedActiveBattle(t, "battle-list-1", time.Now().Add(time.Hour))
	h.seedActiveBattle(t, "battle-list-2", time.Now().Add(time.Hour))
	_, err = h.battles.Propose(ctx, "user-a", "user-b", "sub-a", "", nil)
	require.NoError(t, err)

	active, err := h.battles.List(ctx, string(battle.StatusACTIVE), 10, 0)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := h.battles.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
