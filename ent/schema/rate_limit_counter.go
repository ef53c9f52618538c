package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitCounter holds the schema definition for the RateLimitCounter
// entity: (procedure, scope_key, window_start) → count. One row per live
// one-minute window; increments happen through a single atomic
// insert-or-increment (see governance/ratelimit). Rows older than the
// retention horizon are garbage-collected by a periodic job.
type RateLimitCounter struct {
	ent.Schema
}

// Fields of the RateLimitCounter.
func (RateLimitCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("procedure").
			NotEmpty(),
		field.String("scope_key").
			NotEmpty(), // "global" or the actor id
		field.Time("window_start"),
		field.Int("count").
			Default(0).
			NonNegative(),
	}
}

// Indexes of the RateLimitCounter.
func (RateLimitCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("procedure", "scope_key", "window_start").Unique(),
		index.Fields("window_start"), // GC scan
	}
}
