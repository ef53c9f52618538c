// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/battle"
)

// Battle is the model entity for the Battle schema.
type Battle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// ParticipantA holds the value of the "participant_a" field.
	ParticipantA string `json:"participant_a,omitempty"`
	// ParticipantB holds the value of the "participant_b" field.
	ParticipantB string `json:"participant_b,omitempty"`
	// SubmissionA holds the value of the "submission_a" field.
	SubmissionA string `json:"submission_a,omitempty"`
	// SubmissionB holds the value of the "submission_b" field.
	SubmissionB string `json:"submission_b,omitempty"`
	// Status holds the value of the "status" field.
	Status battle.Status `json:"status,omitempty"`
	// ResponseDeadline holds the value of the "response_deadline" field.
	ResponseDeadline *time.Time `json:"response_deadline,omitempty"`
	// StartsAt holds the value of the "starts_at" field.
	StartsAt *time.Time `json:"starts_at,omitempty"`
	// VotingEndsAt holds the value of the "voting_ends_at" field.
	VotingEndsAt *time.Time `json:"voting_ends_at,omitempty"`
	// CustomDurationDays holds the value of the "custom_duration_days" field.
	CustomDurationDays *int `json:"custom_duration_days,omitempty"`
	// ExtensionCount holds the value of the "extension_count" field.
	ExtensionCount int `json:"extension_count,omitempty"`
	// VotesA holds the value of the "votes_a" field.
	VotesA int `json:"votes_a,omitempty"`
	// VotesB holds the value of the "votes_b" field.
	VotesB int `json:"votes_b,omitempty"`
	// Winner holds the value of the "winner" field.
	Winner *string `json:"winner,omitempty"`
	// AcceptedAt holds the value of the "accepted_at" field.
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	// RejectedAt holds the value of the "rejected_at" field.
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	// AdminValidatedAt holds the value of the "admin_validated_at" field.
	AdminValidatedAt *time.Time `json:"admin_validated_at,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason string `json:"rejection_reason,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Battle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case battle.FieldCustomDurationDays, battle.FieldExtensionCount, battle.FieldVotesA, battle.FieldVotesB:
			values[i] = new(sql.NullInt64)
		case battle.FieldID, battle.FieldSlug, battle.FieldParticipantA, battle.FieldParticipantB, battle.FieldSubmissionA, battle.FieldSubmissionB, battle.FieldStatus, battle.FieldWinner, battle.FieldRejectionReason, battle.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case battle.FieldCreatedAt, battle.FieldUpdatedAt, battle.FieldResponseDeadline, battle.FieldStartsAt, battle.FieldVotingEndsAt, battle.FieldAcceptedAt, battle.FieldRejectedAt, battle.FieldAdminValidatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Battle fields.
func (_m *Battle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case battle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case battle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case battle.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case battle.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case battle.FieldParticipantA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_a", values[i])
			} else if value.Valid {
				_m.ParticipantA = value.String
			}
		case battle.FieldParticipantB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_b", values[i])
			} else if value.Valid {
				_m.ParticipantB = value.String
			}
		case battle.FieldSubmissionA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_a", values[i])
			} else if value.Valid {
				_m.SubmissionA = value.String
			}
		case battle.FieldSubmissionB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_b", values[i])
			} else if value.Valid {
				_m.SubmissionB = value.String
			}
		case battle.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = battle.Status(value.String)
			}
		case battle.FieldResponseDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field response_deadline", values[i])
			} else if value.Valid {
				_m.ResponseDeadline = new(time.Time)
				*_m.ResponseDeadline = value.Time
			}
		case battle.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = new(time.Time)
				*_m.StartsAt = value.Time
			}
		case battle.FieldVotingEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field voting_ends_at", values[i])
			} else if value.Valid {
				_m.VotingEndsAt = new(time.Time)
				*_m.VotingEndsAt = value.Time
			}
		case battle.FieldCustomDurationDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field custom_duration_days", values[i])
			} else if value.Valid {
				_m.CustomDurationDays = new(int)
				*_m.CustomDurationDays = int(value.Int64)
			}
		case battle.FieldExtensionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extension_count", values[i])
			} else if value.Valid {
				_m.ExtensionCount = int(value.Int64)
			}
		case battle.FieldVotesA:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field votes_a", values[i])
			} else if value.Valid {
				_m.VotesA = int(value.Int64)
			}
		case battle.FieldVotesB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field votes_b", values[i])
			} else if value.Valid {
				_m.VotesB = int(value.Int64)
			}
		case battle.FieldWinner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field winner", values[i])
			} else if value.Valid {
				_m.Winner = new(string)
				*_m.Winner = value.String
			}
		case battle.FieldAcceptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field accepted_at", values[i])
			} else if value.Valid {
				_m.AcceptedAt = new(time.Time)
				*_m.AcceptedAt = value.Time
			}
		case battle.FieldRejectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_at", values[i])
			} else if value.Valid {
				_m.RejectedAt = new(time.Time)
				*_m.RejectedAt = value.Time
			}
		case battle.FieldAdminValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field admin_validated_at", values[i])
			} else if value.Valid {
				_m.AdminValidatedAt = new(time.Time)
				*_m.AdminValidatedAt = value.Time
			}
		case battle.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = value.String
			}
		case battle.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Battle.
// This includes values selected through modifiers, order, etc.
func (_m *Battle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Battle.
// Note that you need to call Battle.Unwrap() before calling this method if this Battle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Battle) Update() *BattleUpdateOne {
	return NewBattleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Battle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Battle) Unwrap() *Battle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Battle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Battle) String() string {
	var builder strings.Builder
	builder.WriteString("Battle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("participant_a=")
	builder.WriteString(_m.ParticipantA)
	builder.WriteString(", ")
	builder.WriteString("participant_b=")
	builder.WriteString(_m.ParticipantB)
	builder.WriteString(", ")
	builder.WriteString("submission_a=")
	builder.WriteString(_m.SubmissionA)
	builder.WriteString(", ")
	builder.WriteString("submission_b=")
	builder.WriteString(_m.SubmissionB)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResponseDeadline; v != nil {
		builder.WriteString("response_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartsAt; v != nil {
		builder.WriteString("starts_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VotingEndsAt; v != nil {
		builder.WriteString("voting_ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CustomDurationDays; v != nil {
		builder.WriteString("custom_duration_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extension_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtensionCount))
	builder.WriteString(", ")
	builder.WriteString("votes_a=")
	builder.WriteString(fmt.Sprintf("%v", _m.VotesA))
	builder.WriteString(", ")
	builder.WriteString("votes_b=")
	builder.WriteString(fmt.Sprintf("%v", _m.VotesB))
	builder.WriteString(", ")
	if v := _m.Winner; v != nil {
		builder.WriteString("winner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AcceptedAt; v != nil {
		builder.WriteString("accepted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RejectedAt; v != nil {
		builder.WriteString("rejected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AdminValidatedAt; v != nil {
		builder.WriteString("admin_validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("rejection_reason=")
	builder.WriteString(_m.RejectionReason)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// Battles is a parsable slice of Battle.
type Battles []*Battle
