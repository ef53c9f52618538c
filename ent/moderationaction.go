// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/moderationaction"
)

// ModerationAction is the model entity for the ModerationAction schema.
type ModerationAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SubjectType holds the value of the "subject_type" field.
	SubjectType string `json:"subject_type,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision map[string]interface{} `json:"decision,omitempty"`
	// Status holds the value of the "status" field.
	Status moderationaction.Status `json:"status,omitempty"`
	// AppliedEffect holds the value of the "applied_effect" field.
	AppliedEffect string `json:"applied_effect,omitempty"`
	// ExecutedAt holds the value of the "executed_at" field.
	ExecutedAt *time.Time `json:"executed_at,omitempty"`
	// ExecutedBy holds the value of the "executed_by" field.
	ExecutedBy string `json:"executed_by,omitempty"`
	// OverrideFeedback holds the value of the "override_feedback" field.
	OverrideFeedback map[string]interface{} `json:"override_feedback,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModerationAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case moderationaction.FieldDecision, moderationaction.FieldOverrideFeedback:
			values[i] = new([]byte)
		case moderationaction.FieldID, moderationaction.FieldSubjectType, moderationaction.FieldSubjectID, moderationaction.FieldStatus, moderationaction.FieldAppliedEffect, moderationaction.FieldExecutedBy:
			values[i] = new(sql.NullString)
		case moderationaction.FieldCreatedAt, moderationaction.FieldUpdatedAt, moderationaction.FieldExecutedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModerationAction fields.
func (_m *ModerationAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case moderationaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case moderationaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case moderationaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case moderationaction.FieldSubjectType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_type", values[i])
			} else if value.Valid {
				_m.SubjectType = value.String
			}
		case moderationaction.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case moderationaction.FieldDecision:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Decision); err != nil {
					return fmt.Errorf("unmarshal field decision: %w", err)
				}
			}
		case moderationaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = moderationaction.Status(value.String)
			}
		case moderationaction.FieldAppliedEffect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field applied_effect", values[i])
			} else if value.Valid {
				_m.AppliedEffect = value.String
			}
		case moderationaction.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = new(time.Time)
				*_m.ExecutedAt = value.Time
			}
		case moderationaction.FieldExecutedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executed_by", values[i])
			} else if value.Valid {
				_m.ExecutedBy = value.String
			}
		case moderationaction.FieldOverrideFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field override_feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OverrideFeedback); err != nil {
					return fmt.Errorf("unmarshal field override_feedback: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModerationAction.
// This includes values selected through modifiers, order, etc.
func (_m *ModerationAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModerationAction.
// Note that you need to call ModerationAction.Unwrap() before calling this method if this ModerationAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModerationAction) Update() *ModerationActionUpdateOne {
	return NewModerationActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModerationAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModerationAction) Unwrap() *ModerationAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModerationAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModerationAction) String() string {
	var builder strings.Builder
	builder.WriteString("ModerationAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject_type=")
	builder.WriteString(_m.SubjectType)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("applied_effect=")
	builder.WriteString(_m.AppliedEffect)
	builder.WriteString(", ")
	if v := _m.ExecutedAt; v != nil {
		builder.WriteString("executed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("executed_by=")
	builder.WriteString(_m.ExecutedBy)
	builder.WriteString(", ")
	builder.WriteString("override_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverrideFeedback))
	builder.WriteByte(')')
	return builder.String()
}

// ModerationActions is a parsable slice of ModerationAction.
type ModerationActions []*ModerationAction
