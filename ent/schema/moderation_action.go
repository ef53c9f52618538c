package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModerationAction holds the schema definition for the ModerationAction
// entity. One row per automated classification decision over user content.
//
// Lifecycle: PROPOSED on every classification; EXECUTED when the suggested
// action was applied automatically; FAILED when applying it errored;
// OVERRIDDEN when an administrator reversed the automated outcome. Overrides
// carry labeled feedback (model prediction vs. human decision) for model
// evaluation.
type ModerationAction struct {
	ent.Schema
}

// Mixin of the ModerationAction.
func (ModerationAction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ModerationAction.
func (ModerationAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("subject_type").
			NotEmpty().
			Immutable(), // e.g. "comment"
		field.String("subject_id").
			NotEmpty().
			Immutable(),
		field.JSON("decision", map[string]interface{}{}).
			Immutable(), // Classifier output: model, classification, confidence, reason, suggested_action, signals
		field.Enum("status").
			Values("PROPOSED", "EXECUTED", "FAILED", "OVERRIDDEN").
			Default("PROPOSED"),
		field.String("applied_effect").
			Optional(), // e.g. "comment_hidden"
		field.Time("executed_at").
			Optional().
			Nillable(),
		field.String("executed_by").
			Optional(), // "moderation-engine" for automated execution
		field.JSON("override_feedback", map[string]interface{}{}).
			Optional(), // predicted vs. human decision, override flag
	}
}

// Indexes of the ModerationAction.
func (ModerationAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_type", "subject_id"),
		index.Fields("status"),
	}
}
