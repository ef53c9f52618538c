// Code generated by ent, DO NOT EDIT.

package moderationaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the moderationaction type in the database.
	Label = "moderation_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSubjectType holds the string denoting the subject_type field in the database.
	FieldSubjectType = "subject_type"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAppliedEffect holds the string denoting the applied_effect field in the database.
	FieldAppliedEffect = "applied_effect"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// FieldExecutedBy holds the string denoting the executed_by field in the database.
	FieldExecutedBy = "executed_by"
	// FieldOverrideFeedback holds the string denoting the override_feedback field in the database.
	FieldOverrideFeedback = "override_feedback"
	// Table holds the table name of the moderationaction in the database.
	Table = "moderation_actions"
)

// Columns holds all SQL columns for moderationaction fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSubjectType,
	FieldSubjectID,
	FieldDecision,
	FieldStatus,
	FieldAppliedEffect,
	FieldExecutedAt,
	FieldExecutedBy,
	FieldOverrideFeedback,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SubjectTypeValidator is a validator for the "subject_type" field. It is called by the builders before save.
	SubjectTypeValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPROPOSED is the default value of the Status enum.
const DefaultStatus = StatusPROPOSED

// Status values.
const (
	StatusPROPOSED   Status = "PROPOSED"
	StatusEXECUTED   Status = "EXECUTED"
	StatusFAILED     Status = "FAILED"
	StatusOVERRIDDEN Status = "OVERRIDDEN"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPROPOSED, StatusEXECUTED, StatusFAILED, StatusOVERRIDDEN:
		return nil
	default:
		return fmt.Errorf("moderationaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ModerationAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubjectType orders the results by the subject_type field.
func BySubjectType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectType, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAppliedEffect orders the results by the applied_effect field.
func ByAppliedEffect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedEffect, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}

// ByExecutedBy orders the results by the executed_by field.
func ByExecutedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedBy, opts...).ToFunc()
}
