package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seedOracleUsers(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	users := []struct {
		id       string
		role     user.Role
		verified bool
		enabled  bool
	}{
		{"user-admin", user.RoleADMIN, true, true},
		{"user-verified", user.RoleUSER, true, true},
		{"user-unverified", user.RoleUSER, false, true},
		{"user-disabled-admin", user.RoleADMIN, true, false},
		{"user-disabled", user.RoleUSER, true, false},
	}
	for _, u := range users {
		_, err := client.User.Create().
			SetID(u.id).
			SetUsername(u.id).
			SetEmail(u.id + "@example.com").
			SetEmailVerified(u.verified).
			SetRole(u.role).
			SetEnabled(u.enabled).
			SetBattlesCompleted(3).
			SetBattlesRefused(1).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestEntOracle_Eligibility(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "oracle_eligibility")
	seedOracleUsers(t, client)
	oracle := NewEntOracle(client)
	ctx := context.Background()

	assert.True(t, oracle.IsAdministrator(ctx, "user-admin"))
	assert.False(t, oracle.IsAdministrator(ctx, "user-verified"))
	// A disabled account loses every privilege, role included.
	assert.False(t, oracle.IsAdministrator(ctx, "user-disabled-admin"))
	assert.False(t, oracle.IsAdministrator(ctx, "user-missing"))
	assert.False(t, oracle.IsAdministrator(ctx, ""))

	assert.True(t, oracle.IsContactVerified(ctx, "user-verified"))
	assert.False(t, oracle.IsContactVerified(ctx, "user-unverified"))
	assert.False(t, oracle.IsContactVerified(ctx, "user-disabled"))

	assert.True(t, oracle.CanCompete(ctx, "user-unverified"))
	assert.False(t, oracle.CanCompete(ctx, "user-disabled"))
	assert.False(t, oracle.CanCompete(ctx, "user-missing"))
}

func TestEntOracle_EngagementInputs(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "oracle_engagement")
	seedOracleUsers(t, client)
	oracle := NewEntOracle(client)
	ctx := context.Background()

	in, ok := oracle.CurrentEngagementInputs(ctx, "user-verified")
	require.True(t, ok)
	assert.Equal(t, 3, in.Completions)
	assert.Equal(t, 1, in.Refusals)
	assert.Equal(t, 5, EngagementScore(in))

	_, ok = oracle.CurrentEngagementInputs(ctx, "user-missing")
	assert.False(t, ok)
}

func TestEngagementScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, EngagementScore(EngagementInputs{}))
	assert.Equal(t, 6, EngagementScore(EngagementInputs{Completions: 3}))
	assert.Equal(t, -2, EngagementScore(EngagementInputs{Refusals: 2}))
	assert.Equal(t, 4, EngagementScore(EngagementInputs{Completions: 3, Refusals: 2}))
}

func TestEntOracle_SubmissionOwned(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "oracle_submissions")
	seedOracleUsers(t, client)
	oracle := NewEntOracle(client)
	ctx := context.Background()

	_, err := client.Submission.Create().
		SetID("sub-1").
		SetOwnerID("user-verified").
		SetTitle("Neon Skyline").
		Save(ctx)
	require.NoError(t, err)

	assert.True(t, oracle.SubmissionOwned(ctx, "sub-1", "user-verified"))
	assert.False(t, oracle.SubmissionOwned(ctx, "sub-1", "user-admin"))
	assert.False(t, oracle.SubmissionOwned(ctx, "sub-missing", "user-verified"))
	assert.False(t, oracle.SubmissionOwned(ctx, "", "user-verified"))
	assert.False(t, oracle.SubmissionOwned(ctx, "sub-1", ""))
}
