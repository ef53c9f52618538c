package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/pkg/worker"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// newAuditHarness builds a logger without worker pools; the companion check
// is exercised separately.
func newAuditHarness(t *testing.T, prefix string) (*Logger, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	alerts := monitor.NewService(client, time.Hour)
	return NewLogger(client, alerts, nil), client
}

func TestLog_WritesEntry(t *testing.T) {
	t.Parallel()

	auditLogger, client := newAuditHarness(t, "audit_write")
	ctx := WithRequestMeta(context.Background(), map[string]interface{}{
		"request_id": "req-1",
		"client_ip":  "10.0.0.1",
	})

	err := auditLogger.Log(ctx, Entry{
		Actor:          "user-1",
		Action:         ActionBattlePropose,
		SubjectType:    "battle",
		SubjectID:      "battle-1",
		RequestContext: RequestMeta(ctx),
		Detail:         map[string]interface{}{"opponent_id": "user-2"},
		Success:        true,
	})
	require.NoError(t, err)

	row, err := client.AuditEntry.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", row.Actor)
	assert.Equal(t, ActionBattlePropose, row.Action)
	assert.Equal(t, "battle-1", row.SubjectID)
	assert.True(t, row.Success)
	assert.Equal(t, "req-1", row.RequestContext["request_id"])
	assert.Equal(t, "user-2", row.Detail["opponent_id"])
	assert.Empty(t, row.ErrorCode)
}

func TestLog_RecordedFailureRaisesAlert(t *testing.T) {
	t.Parallel()

	auditLogger, client := newAuditHarness(t, "audit_failure_alert")
	ctx := context.Background()

	err := auditLogger.Log(ctx, Entry{
		Actor:       "user-1",
		Action:      ActionBattleCancel,
		SubjectType: "battle",
		SubjectID:   "battle-1",
		Success:     false,
		ErrorCode:   "admin_required",
	})
	require.NoError(t, err)

	alerts, err := client.MonitoringAlert.Query().
		Where(monitoringalert.EventTypeEQ(monitor.EventOperationFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "battle-1", alerts[0].SubjectID)
	assert.Equal(t, "admin_required", alerts[0].Detail["error_code"])
}

func TestMirrorModerationAction_Idempotent(t *testing.T) {
	t.Parallel()

	auditLogger, client := newAuditHarness(t, "audit_mirror")
	ctx := context.Background()

	action, err := client.ModerationAction.Create().
		SetID("mod-1").
		SetSubjectType("comment").
		SetSubjectID("comment-1").
		SetDecision(map[string]interface{}{"classification": "toxic", "confidence": 0.99}).
		SetStatus(moderationaction.StatusEXECUTED).
		SetAppliedEffect("comment_hidden").
		SetExecutedAt(time.Now()).
		SetExecutedBy("moderation-engine").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, auditLogger.MirrorModerationAction(ctx, action, "comment_hidden"))
	require.NoError(t, auditLogger.MirrorModerationAction(ctx, action, "comment_hidden"))

	rows, err := client.AuditEntry.Query().
		Where(auditentry.SourceDecisionIDEQ("mod-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ActionModerationApply, rows[0].Action)
	assert.Equal(t, "moderation-engine", rows[0].Actor)
	assert.Equal(t, "comment_hidden", rows[0].Detail["applied_effect"])
}

func TestCompanionCheck_BurstRaisesCriticalAlert(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "audit_companion")
	alerts := monitor.NewService(client, time.Hour)

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	auditLogger := NewLogger(client, alerts, pools)
	ctx := context.Background()

	for i := 0; i < companionThreshold; i++ {
		require.NoError(t, auditLogger.Log(ctx, Entry{
			Actor:       "user-1",
			Action:      ActionVoteCast,
			SubjectType: "battle",
			SubjectID:   fmt.Sprintf("battle-%d", i),
			Success:     true,
		}))
	}

	require.Eventually(t, func() bool {
		n, err := client.MonitoringAlert.Query().
			Where(
				monitoringalert.EventTypeEQ(monitor.EventAuditAnomaly),
				monitoringalert.SubjectIDEQ(ActionVoteCast),
			).
			Count(context.Background())
		return err == nil && n >= 1
	}, 10*time.Second, 50*time.Millisecond, "companion check never raised the burst alert")
}
