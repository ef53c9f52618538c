package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitoringAlert holds the schema definition for the MonitoringAlert
// entity. Alerts are deduplicated per (event_type, subject) within a
// lookback window to avoid alert storms; see governance/monitor.
type MonitoringAlert struct {
	ent.Schema
}

// Mixin of the MonitoringAlert.
func (MonitoringAlert) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the MonitoringAlert.
func (MonitoringAlert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("severity").
			Values("INFO", "WARNING", "CRITICAL"),
		field.String("source").
			NotEmpty().
			Immutable(), // e.g. "audit-log", "rate-limiter", "anomaly-detector"
		field.String("event_type").
			NotEmpty().
			Immutable(), // e.g. "audit_failure", "rate_limit_violation", "action_volume_anomaly"
		field.String("subject_type").
			Optional().
			Immutable(),
		field.String("subject_id").
			Optional().
			Immutable(),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
		field.Bool("resolved").
			Default(false),
		field.String("resolved_by").
			Optional(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the MonitoringAlert.
func (MonitoringAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type", "subject_type", "subject_id", "created_at"),
		index.Fields("severity", "resolved"),
	}
}
