package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// In-app inbox rows written when a battle reaches a new state. External push
// channels subscribe to the same trigger points and are out of scope here.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.Enum("type").
			Values(
				"BATTLE_INVITED",
				"BATTLE_ACCEPTED",
				"BATTLE_REJECTED",
				"BATTLE_STARTED",
				"BATTLE_COMPLETED",
				"BATTLE_CANCELLED",
				"COMMENT_HIDDEN",
			),
		field.String("title").
			NotEmpty(),
		field.Text("message").
			Optional(),
		field.String("resource_type").
			Optional(),
		field.String("resource_id").
			Optional(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "read"),
		index.Fields("created_at"),
	}
}
