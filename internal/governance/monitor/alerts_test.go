package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func testAlert(subjectID string) Alert {
	return Alert{
		Severity:    monitoringalert.SeverityWARNING,
		Source:      "rate_limiter",
		EventType:   EventRateLimitBreach,
		SubjectType: "actor",
		SubjectID:   subjectID,
		Detail:      map[string]interface{}{"procedure": "vote.cast"},
	}
}

func TestRaise_DeduplicatesWithinWindow(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "alerts_dedup")
	svc := NewService(client, time.Hour)
	ctx := context.Background()

	created, err := svc.Raise(ctx, testAlert("user-1"))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Raise(ctx, testAlert("user-1"))
	require.NoError(t, err)
	assert.False(t, created)

	// A different subject is a different finding.
	created, err = svc.Raise(ctx, testAlert("user-2"))
	require.NoError(t, err)
	assert.True(t, created)

	n, err := client.MonitoringAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRaise_ResolvedAlertDoesNotSuppress(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "alerts_resolved")
	svc := NewService(client, time.Hour)
	ctx := context.Background()

	_, err := svc.Raise(ctx, testAlert("user-1"))
	require.NoError(t, err)

	open, err := svc.ListOpen(ctx, 10)
	require.NoError(t, err)
	require.Len(t, open, 1)

	resolved, err := svc.Resolve(ctx, open[0].ID, "admin-1")
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	assert.Equal(t, "admin-1", resolved.ResolvedBy)
	assert.NotNil(t, resolved.ResolvedAt)

	// The condition recurring after resolution is a new alert.
	created, err := svc.Raise(ctx, testAlert("user-1"))
	require.NoError(t, err)
	assert.True(t, created)

	open, err = svc.ListOpen(ctx, 10)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.NotEqual(t, resolved.ID, open[0].ID)
}

func TestResolve_UnknownAlert(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "alerts_unknown")
	svc := NewService(client, time.Hour)

	_, err := svc.Resolve(context.Background(), "alert-missing", "admin-1")
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestNewService_DefaultsDedupWindow(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, 0)
	assert.Equal(t, time.Hour, svc.dedupWindow)
}
