package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngineSetting holds the schema definition for the EngineSetting entity.
// A simple versioned key/document store for hot-reloadable engine settings.
// Writers insert a new version instead of updating in place; readers resolve
// the highest version per key. Supplies the global default voting duration
// and the rate-limit rule table.
type EngineSetting struct {
	ent.Schema
}

// Mixin of the EngineSetting.
func (EngineSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the EngineSetting.
func (EngineSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Immutable(), // e.g. "voting.default_duration", "rate_limit.rules"
		field.Int("version").
			Positive().
			Immutable(),
		field.JSON("document", map[string]interface{}{}).
			Immutable(),
		field.String("updated_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the EngineSetting.
func (EngineSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key", "version").Unique(),
	}
}
