package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/testutil"
)

func seedAuditBurst(t *testing.T, client *ent.Client, action string, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		_, err := client.AuditEntry.Create().
			SetID(fmt.Sprintf("audit-%s-%d", action, i)).
			SetActor("user-1").
			SetAction(action).
			SetSubjectType("battle").
			SetSubjectID(fmt.Sprintf("battle-%d", i)).
			SetSuccess(true).
			Save(ctx)
		require.NoError(t, err)
	}
}

func seedViolations(t *testing.T, client *ent.Client, n int) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Minute)
	for i := 0; i < n; i++ {
		_, err := client.RateLimitViolation.Create().
			SetID(fmt.Sprintf("rlv-%d", i)).
			SetProcedure("vote.cast").
			SetScopeKey(fmt.Sprintf("user-%d", i)).
			SetActor(fmt.Sprintf("user-%d", i)).
			SetWindowStart(now).
			SetCount(31).
			SetAllowedPerMinute(30).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestScan_FlagsActionBursts(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "anomaly_burst")
	alerts := monitor.NewService(client, time.Hour)
	detector := NewDetector(client, alerts)
	ctx := context.Background()

	seedAuditBurst(t, client, ActionVoteCast, actionBurstThreshold)
	seedAuditBurst(t, client, ActionBattlePropose, 3)

	report, err := detector.Scan(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, report.ActionsScanned)
	assert.Equal(t, []string{ActionVoteCast}, report.AnomalousActions)
	assert.Equal(t, 1, report.AlertsRaised)

	alertRows, err := client.MonitoringAlert.Query().
		Where(monitoringalert.EventTypeEQ(monitor.EventAuditAnomaly)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, alertRows, 1)
	assert.Equal(t, ActionVoteCast, alertRows[0].SubjectID)
	assert.Equal(t, monitoringalert.SeverityCRITICAL, alertRows[0].Severity)

	// Dedup keeps a repeat scan from re-raising the live finding.
	report, err = detector.Scan(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{ActionVoteCast}, report.AnomalousActions)
	assert.Zero(t, report.AlertsRaised)
}

func TestScan_FlagsViolationVolume(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "anomaly_violations")
	alerts := monitor.NewService(client, time.Hour)
	detector := NewDetector(client, alerts)
	ctx := context.Background()

	seedViolations(t, client, violationVolumeThreshold)

	report, err := detector.Scan(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, violationVolumeThreshold, report.ViolationCount)
	assert.Equal(t, 1, report.AlertsRaised)

	n, err := client.MonitoringAlert.Query().
		Where(monitoringalert.EventTypeEQ(monitor.EventRateLimitVolume)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScan_QuietWindowRaisesNothing(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "anomaly_quiet")
	alerts := monitor.NewService(client, time.Hour)
	detector := NewDetector(client, alerts)
	ctx := context.Background()

	seedAuditBurst(t, client, ActionBattlePropose, 5)
	seedViolations(t, client, 2)

	report, err := detector.Scan(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, report.AnomalousActions)
	assert.Equal(t, 2, report.ViolationCount)
	assert.Zero(t, report.AlertsRaised)

	n, err := client.MonitoringAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
