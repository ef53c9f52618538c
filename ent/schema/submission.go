package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds the schema definition for the Submission entity, a
// read-only projection of the catalog's creative works. The engine only
// consults it to validate that a claimed submission belongs to its claimed
// owner at proposal time; it never mutates catalog state.
type Submission struct {
	ent.Schema
}

// Mixin of the Submission.
func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("media_path").
			Optional(), // Opaque storage reference; media hosting is external
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
