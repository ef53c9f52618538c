package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"versus-arena.io/arena/internal/governance/ratelimit"
)

func TestDefaultRateLimitRulesParse(t *testing.T) {
	rules, err := ratelimit.ParseRules(defaultRateLimitRules())
	require.NoError(t, err)

	assert.Contains(t, rules, ratelimit.ProcedureBattlePropose)
	assert.Contains(t, rules, ratelimit.ProcedureVoteCast)
	for procedure, rule := range rules {
		assert.True(t, rule.Enabled, "rule %s must be enabled", procedure)
		assert.Positive(t, rule.AllowedPerMinute, "rule %s needs a budget", procedure)
	}
}

func TestFixtureParsing(t *testing.T) {
	raw := []byte(`
users:
  - id: user-alice
    username: alice
    email: alice@example.com
    email_verified: true
    password: secret
    role: USER
submissions:
  - id: sub-1
    owner_id: user-alice
    title: Neon Skyline
`)

	var fx fixtures
	require.NoError(t, yaml.Unmarshal(raw, &fx))

	require.Len(t, fx.Users, 1)
	assert.Equal(t, "alice", fx.Users[0].Username)
	assert.True(t, fx.Users[0].EmailVerified)
	require.Len(t, fx.Submissions, 1)
	assert.Equal(t, "user-alice", fx.Submissions[0].OwnerID)
}
