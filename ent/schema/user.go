package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity, the creator accounts
// backing the identity/eligibility oracle. The engagement counters are
// denormalized here and recalculated by the battle service on completion and
// refusal transitions (engagement = completed*2 - refusals).
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			Optional().
			MaxLen(255),
		field.Bool("email_verified").
			Default(false), // Current eligibility bar for voting
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Enum("role").
			Values("USER", "ADMIN").
			Default("USER"),
		field.Int("battles_participated").
			Default(0).
			NonNegative(), // Incremented when a battle goes active
		field.Int("battles_completed").
			Default(0).
			NonNegative(),
		field.Int("battles_refused").
			Default(0).
			NonNegative(),
		field.Int("engagement_score").
			Default(0),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("email").Unique(),
	}
}
