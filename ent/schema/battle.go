package schema

import (
	"context"
	"fmt"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Battle holds the schema definition for the Battle entity, the central
// two-party competitive entity under lifecycle management.
//
// Lifecycle: PENDING_ACCEPTANCE → {AWAITING_ADMIN, REJECTED} →
// AWAITING_ADMIN → ACTIVE → {COMPLETED, CANCELLED}; any non-terminal status
// can be cancelled by an administrator. Terminal rows are retained for
// history, never deleted.
//
// The three LEGACY_* values exist only for rows imported from the previous
// generation of the voting-window logic. They are readable but never newly
// assignable; see legacyStatusGuard.
type Battle struct {
	ent.Schema
}

// Legacy status values, grandfathered read-only.
const (
	LegacyStatusOpen   = "LEGACY_OPEN"
	LegacyStatusVoting = "LEGACY_VOTING"
	LegacyStatusClosed = "LEGACY_CLOSED"
)

// Mixin of the Battle.
func (Battle) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Battle.
func (Battle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("slug").
			NotEmpty().
			Immutable(),
		field.String("participant_a").
			Optional(),
		field.String("participant_b").
			Optional(),
		field.String("submission_a").
			Optional(),
		field.String("submission_b").
			Optional(),
		field.Enum("status").
			Values(
				"PENDING_ACCEPTANCE",
				"AWAITING_ADMIN",
				"ACTIVE",
				"COMPLETED",
				"REJECTED",
				"CANCELLED",
				LegacyStatusOpen,
				LegacyStatusVoting,
				LegacyStatusClosed,
			).
			Default("PENDING_ACCEPTANCE"),
		field.Time("response_deadline").
			Optional().
			Nillable(),
		field.Time("starts_at").
			Optional().
			Nillable(),
		field.Time("voting_ends_at").
			Optional().
			Nillable(),
		field.Int("custom_duration_days").
			Optional().
			Nillable(), // Per-battle override of the global default duration
		field.Int("extension_count").
			Default(0).
			NonNegative(),
		field.Int("votes_a").
			Default(0).
			NonNegative(),
		field.Int("votes_b").
			Default(0).
			NonNegative(),
		field.String("winner").
			Optional().
			Nillable(), // nil also represents a tie after completion
		field.Time("accepted_at").
			Optional().
			Nillable(),
		field.Time("rejected_at").
			Optional().
			Nillable(), // Mutually exclusive with accepted_at
		field.Time("admin_validated_at").
			Optional().
			Nillable(),
		field.String("rejection_reason").
			Optional(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the Battle.
func (Battle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
		index.Fields("status"),
		index.Fields("status", "voting_ends_at"), // Finalization sweep scan
		index.Fields("participant_a"),
		index.Fields("participant_b"),
	}
}

// Hooks of the Battle.
func (Battle) Hooks() []ent.Hook {
	return []ent.Hook{
		legacyStatusGuard(),
	}
}

// legacyStatusGuard rejects any mutation that assigns a legacy status value,
// on creation or transition. Updates that leave status untouched pass, so
// rows that already carry a legacy value stay editable (grandfathering).
func legacyStatusGuard() ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if v, ok := m.Field("status"); ok {
				switch fmt.Sprint(v) {
				case LegacyStatusOpen, LegacyStatusVoting, LegacyStatusClosed:
					return nil, fmt.Errorf("battle status %v is legacy and not assignable", v)
				}
			}
			return next.Mutate(ctx, m)
		})
	}
}
