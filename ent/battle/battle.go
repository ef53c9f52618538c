// Code generated by ent, DO NOT EDIT.

package battle

import (
	"fmt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the battle type in the database.
	Label = "battle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldParticipantA holds the string denoting the participant_a field in the database.
	FieldParticipantA = "participant_a"
	// FieldParticipantB holds the string denoting the participant_b field in the database.
	FieldParticipantB = "participant_b"
	// FieldSubmissionA holds the string denoting the submission_a field in the database.
	FieldSubmissionA = "submission_a"
	// FieldSubmissionB holds the string denoting the submission_b field in the database.
	FieldSubmissionB = "submission_b"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResponseDeadline holds the string denoting the response_deadline field in the database.
	FieldResponseDeadline = "response_deadline"
	// FieldStartsAt holds the string denoting the starts_at field in the database.
	FieldStartsAt = "starts_at"
	// FieldVotingEndsAt holds the string denoting the voting_ends_at field in the database.
	FieldVotingEndsAt = "voting_ends_at"
	// FieldCustomDurationDays holds the string denoting the custom_duration_days field in the database.
	FieldCustomDurationDays = "custom_duration_days"
	// FieldExtensionCount holds the string denoting the extension_count field in the database.
	FieldExtensionCount = "extension_count"
	// FieldVotesA holds the string denoting the votes_a field in the database.
	FieldVotesA = "votes_a"
	// FieldVotesB holds the string denoting the votes_b field in the database.
	FieldVotesB = "votes_b"
	// FieldWinner holds the string denoting the winner field in the database.
	FieldWinner = "winner"
	// FieldAcceptedAt holds the string denoting the accepted_at field in the database.
	FieldAcceptedAt = "accepted_at"
	// FieldRejectedAt holds the string denoting the rejected_at field in the database.
	FieldRejectedAt = "rejected_at"
	// FieldAdminValidatedAt holds the string denoting the admin_validated_at field in the database.
	FieldAdminValidatedAt = "admin_validated_at"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// Table holds the table name of the battle in the database.
	Table = "battles"
)

// Columns holds all SQL columns for battle fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSlug,
	FieldParticipantA,
	FieldParticipantB,
	FieldSubmissionA,
	FieldSubmissionB,
	FieldStatus,
	FieldResponseDeadline,
	FieldStartsAt,
	FieldVotingEndsAt,
	FieldCustomDurationDays,
	FieldExtensionCount,
	FieldVotesA,
	FieldVotesB,
	FieldWinner,
	FieldAcceptedAt,
	FieldRejectedAt,
	FieldAdminValidatedAt,
	FieldRejectionReason,
	FieldCreatedBy,
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

// Note that the variables below are initialized by the runtime
// package on the initialization of the application. Therefore,
// it should be imported in the main as follows:
//
//	import _ "versus-arena.io/arena/ent/runtime"
var (
	Hooks [1]ent.Hook
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultExtensionCount holds the default value on creation for the "extension_count" field.
	DefaultExtensionCount int
	// ExtensionCountValidator is a validator for the "extension_count" field. It is called by the builders before save.
	ExtensionCountValidator func(int) error
	// DefaultVotesA holds the default value on creation for the "votes_a" field.
	DefaultVotesA int
	// VotesAValidator is a validator for the "votes_a" field. It is called by the builders before save.
	VotesAValidator func(int) error
	// DefaultVotesB holds the default value on creation for the "votes_b" field.
	DefaultVotesB int
	// VotesBValidator is a validator for the "votes_b" field. It is called by the builders before save.
	VotesBValidator func(int) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING_ACCEPTANCE is the default value of the Status enum.
const DefaultStatus = StatusPENDING_ACCEPTANCE

// Status values.
const (
	StatusPENDING_ACCEPTANCE Status = "PENDING_ACCEPTANCE"
	StatusAWAITING_ADMIN     Status = "AWAITING_ADMIN"
	StatusACTIVE             Status = "ACTIVE"
	StatusCOMPLETED          Status = "COMPLETED"
	StatusREJECTED           Status = "REJECTED"
	StatusCANCELLED          Status = "CANCELLED"
	StatusLEGACY_OPEN        Status = "LEGACY_OPEN"
	StatusLEGACY_VOTING      Status = "LEGACY_VOTING"
	StatusLEGACY_CLOSED      Status = "LEGACY_CLOSED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING_ACCEPTANCE, StatusAWAITING_ADMIN, StatusACTIVE, StatusCOMPLETED, StatusREJECTED, StatusCANCELLED, StatusLEGACY_OPEN, StatusLEGACY_VOTING, StatusLEGACY_CLOSED:
		return nil
	default:
		return fmt.Errorf("battle: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Battle queries.
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

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByParticipantA orders the results by the participant_a field.
func ByParticipantA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantA, opts...).ToFunc()
}

// ByParticipantB orders the results by the participant_b field.
func ByParticipantB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantB, opts...).ToFunc()
}

// BySubmissionA orders the results by the submission_a field.
func BySubmissionA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionA, opts...).ToFunc()
}

// BySubmissionB orders the results by the submission_b field.
func BySubmissionB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionB, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResponseDeadline orders the results by the response_deadline field.
func ByResponseDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseDeadline, opts...).ToFunc()
}

// ByStartsAt orders the results by the starts_at field.
func ByStartsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartsAt, opts...).ToFunc()
}

// ByVotingEndsAt orders the results by the voting_ends_at field.
func ByVotingEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVotingEndsAt, opts...).ToFunc()
}

// ByCustomDurationDays orders the results by the custom_duration_days field.
func ByCustomDurationDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomDurationDays, opts...).ToFunc()
}

// ByExtensionCount orders the results by the extension_count field.
func ByExtensionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtensionCount, opts...).ToFunc()
}

// ByVotesA orders the results by the votes_a field.
func ByVotesA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVotesA, opts...).ToFunc()
}

// ByVotesB orders the results by the votes_b field.
func ByVotesB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVotesB, opts...).ToFunc()
}

// ByWinner orders the results by the winner field.
func ByWinner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWinner, opts...).ToFunc()
}

// ByAcceptedAt orders the results by the accepted_at field.
func ByAcceptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptedAt, opts...).ToFunc()
}

// ByRejectedAt orders the results by the rejected_at field.
func ByRejectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedAt, opts...).ToFunc()
}

// ByAdminValidatedAt orders the results by the admin_validated_at field.
func ByAdminValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminValidatedAt, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}
