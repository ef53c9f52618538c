// Package ratelimit implements the per-minute fixed-window rate limiter for
// privileged engine procedures. Rules live in the versioned settings store so
// they can be tuned at runtime; counters and violations are durable rows.
package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"

	"versus-arena.io/arena/internal/settings"
)

// Scope selects how a counter is keyed.
const (
	ScopeUser   = "user"   // one window per actor
	ScopeGlobal = "global" // one window shared by everyone
)

// Well-known rate-limited procedures. Admin procedures are gated too; they
// simply ship without an enabled rule by default.
const (
	ProcedureBattlePropose = "battle.propose"
	ProcedureBattleRespond = "battle.respond"
	ProcedureVoteCast      = "vote.cast"
	ProcedureCommentCreate = "comment.create"
	ProcedureAdminValidate = "battle.admin_validate"
	ProcedureAdminCancel   = "battle.admin_cancel"
	ProcedureAdminExtend   = "battle.admin_extend"
	ProcedureFinalize      = "battle.finalize"
)

// Rule is one entry of the rate_limit.rules settings document, keyed by
// procedure name.
type Rule struct {
	Scope            string `json:"scope"`
	AllowedPerMinute int    `json:"allowed_per_minute"`
	Enabled          bool   `json:"enabled"`
}

// ParseRules decodes the settings document into a procedure→rule table.
// Malformed entries fail the whole document; a limiter running on a partial
// rule table is worse than one running on the previous version.
func ParseRules(doc map[string]interface{}) (map[string]Rule, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode rate limit rules: %w", err)
	}
	rules := make(map[string]Rule)
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("decode rate limit rules: %w", err)
	}
	for proc, r := range rules {
		if r.Enabled && r.AllowedPerMinute <= 0 {
			return nil, fmt.Errorf("rule %s: allowed_per_minute must be positive", proc)
		}
		switch r.Scope {
		case ScopeUser, ScopeGlobal:
		default:
			return nil, fmt.Errorf("rule %s: unknown scope %q", proc, r.Scope)
		}
	}
	return rules, nil
}

// ruleFor resolves the active rule for a procedure. A missing document or a
// missing entry means the procedure is unlimited.
func (l *Limiter) ruleFor(ctx context.Context, procedure string) (Rule, bool, error) {
	doc, ok, err := l.settings.Get(ctx, settings.KeyRateLimitRules)
	if err != nil {
		return Rule{}, false, err
	}
	if !ok {
		return Rule{}, false, nil
	}
	rules, err := ParseRules(doc.Body)
	if err != nil {
		return Rule{}, false, err
	}
	r, found := rules[procedure]
	if !found || !r.Enabled {
		return Rule{}, false, nil
	}
	return r, true, nil
}
