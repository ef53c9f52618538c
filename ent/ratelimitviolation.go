// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/ratelimitviolation"
)

// RateLimitViolation is the model entity for the RateLimitViolation schema.
type RateLimitViolation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Procedure holds the value of the "procedure" field.
	Procedure string `json:"procedure,omitempty"`
	// ScopeKey holds the value of the "scope_key" field.
	ScopeKey string `json:"scope_key,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor string `json:"actor,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// AllowedPerMinute holds the value of the "allowed_per_minute" field.
	AllowedPerMinute int `json:"allowed_per_minute,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateLimitViolation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratelimitviolation.FieldCount, ratelimitviolation.FieldAllowedPerMinute:
			values[i] = new(sql.NullInt64)
		case ratelimitviolation.FieldID, ratelimitviolation.FieldProcedure, ratelimitviolation.FieldScopeKey, ratelimitviolation.FieldActor:
			values[i] = new(sql.NullString)
		case ratelimitviolation.FieldCreatedAt, ratelimitviolation.FieldWindowStart:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateLimitViolation fields.
func (_m *RateLimitViolation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratelimitviolation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ratelimitviolation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ratelimitviolation.FieldProcedure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field procedure", values[i])
			} else if value.Valid {
				_m.Procedure = value.String
			}
		case ratelimitviolation.FieldScopeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_key", values[i])
			} else if value.Valid {
				_m.ScopeKey = value.String
			}
		case ratelimitviolation.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case ratelimitviolation.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case ratelimitviolation.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case ratelimitviolation.FieldAllowedPerMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_per_minute", values[i])
			} else if value.Valid {
				_m.AllowedPerMinute = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateLimitViolation.
// This includes values selected through modifiers, order, etc.
func (_m *RateLimitViolation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RateLimitViolation.
// Note that you need to call RateLimitViolation.Unwrap() before calling this method if this RateLimitViolation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RateLimitViolation) Update() *RateLimitViolationUpdateOne {
	return NewRateLimitViolationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RateLimitViolation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RateLimitViolation) Unwrap() *RateLimitViolation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateLimitViolation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RateLimitViolation) String() string {
	var builder strings.Builder
	builder.WriteString("RateLimitViolation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("procedure=")
	builder.WriteString(_m.Procedure)
	builder.WriteString(", ")
	builder.WriteString("scope_key=")
	builder.WriteString(_m.ScopeKey)
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("allowed_per_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedPerMinute))
	builder.WriteByte(')')
	return builder.String()
}

// RateLimitViolations is a parsable slice of RateLimitViolation.
type RateLimitViolations []*RateLimitViolation
