package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity. Comments
// belong to a battle and an author; edit/hide is restricted to the author or
// an administrator in the service layer.
type Comment struct {
	ent.Schema
}

// Mixin of the Comment.
func (Comment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("battle_id").
			NotEmpty().
			Immutable(),
		field.String("author_id").
			NotEmpty().
			Immutable(),
		field.Text("body").
			NotEmpty(),
		field.Bool("visible").
			Default(true),
		field.String("hidden_reason").
			Optional(),
		field.String("hidden_by").
			Optional(), // Actor that hid the comment ("moderation-engine" or an admin)
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battle_id", "created_at"),
		index.Fields("author_id"),
	}
}
