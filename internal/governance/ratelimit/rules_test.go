package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	t.Parallel()

	doc := map[string]interface{}{
		ProcedureBattlePropose: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 5,
			"enabled":            true,
		},
		ProcedureVoteCast: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 30,
			"enabled":            false,
		},
	}

	rules, err := ParseRules(doc)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, Rule{Scope: ScopeUser, AllowedPerMinute: 5, Enabled: true}, rules[ProcedureBattlePropose])
	assert.False(t, rules[ProcedureVoteCast].Enabled)
}

func TestParseRulesRejectsBadBudget(t *testing.T) {
	t.Parallel()

	_, err := ParseRules(map[string]interface{}{
		ProcedureCommentCreate: map[string]interface{}{
			"scope":              ScopeUser,
			"allowed_per_minute": 0,
			"enabled":            true,
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed_per_minute")
}

func TestParseRulesRejectsUnknownScope(t *testing.T) {
	t.Parallel()

	_, err := ParseRules(map[string]interface{}{
		ProcedureVoteCast: map[string]interface{}{
			"scope":              "team",
			"allowed_per_minute": 10,
			"enabled":            true,
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scope")
}
