package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vote holds the schema definition for the Vote entity. One row per
// (battle, voter) pair, immutable once created.
//
// The unique index on (battle_id, voter_id) is the storage-level line of
// defense against double-voting: a race between two concurrent casts from
// the same voter that slips past the in-transaction check is rejected here
// and mapped to the already_voted error code by the voting service.
type Vote struct {
	ent.Schema
}

// Mixin of the Vote.
func (Vote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the Vote.
func (Vote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("battle_id").
			NotEmpty().
			Immutable(),
		field.String("voter_id").
			NotEmpty().
			Immutable(),
		field.String("target_participant_id").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the Vote.
func (Vote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battle_id", "voter_id").Unique(),
		index.Fields("voter_id"),
	}
}
