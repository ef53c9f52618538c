package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// One row per privileged operation attempt, success or failure.
// Append-only compliance records. Hard-delete is NOT allowed.
type AuditEntry struct {
	ent.Schema
}

// Mixin of the AuditEntry.
func (AuditEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("actor").
			NotEmpty().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "battle.propose", "vote.cast"
		field.String("subject_type").
			NotEmpty().
			Immutable(),
		field.String("subject_id").
			Optional().
			Immutable(),
		field.JSON("request_context", map[string]interface{}{}).
			Optional(), // ip, session marker, request id
		field.JSON("detail", map[string]interface{}{}).
			Optional(), // Structured outcome (before/after state, computed values)
		field.Bool("success").
			Default(true).
			Immutable(),
		field.String("error_code").
			Optional().
			Immutable(),
		// Set when the entry mirrors an executed ModerationAction. The unique
		// index makes the mirror idempotent on the originating decision id.
		field.String("source_decision_id").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action", "created_at"),
		index.Fields("subject_type", "subject_id"),
		index.Fields("actor"),
		index.Fields("source_decision_id").Unique(),
	}
}
