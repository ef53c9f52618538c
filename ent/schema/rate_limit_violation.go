package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitViolation holds the schema definition for the RateLimitViolation
// entity, emitted when a counter exceeds its rule's budget. Read by the
// anomaly detector.
type RateLimitViolation struct {
	ent.Schema
}

// Mixin of the RateLimitViolation.
func (RateLimitViolation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the RateLimitViolation.
func (RateLimitViolation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("procedure").
			NotEmpty().
			Immutable(),
		field.String("scope_key").
			NotEmpty().
			Immutable(),
		field.String("actor").
			Optional().
			Immutable(),
		field.Time("window_start").
			Immutable(),
		field.Int("count").
			Immutable(), // Post-increment count that tripped the rule
		field.Int("allowed_per_minute").
			Immutable(),
	}
}

// Indexes of the RateLimitViolation.
func (RateLimitViolation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("procedure", "created_at"),
		index.Fields("actor"),
	}
}
