// Code generated by ent, DO NOT EDIT.

package vote

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vote type in the database.
	Label = "vote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldBattleID holds the string denoting the battle_id field in the database.
	FieldBattleID = "battle_id"
	// FieldVoterID holds the string denoting the voter_id field in the database.
	FieldVoterID = "voter_id"
	// FieldTargetParticipantID holds the string denoting the target_participant_id field in the database.
	FieldTargetParticipantID = "target_participant_id"
	// Table holds the table name of the vote in the database.
	Table = "votes"
)

// Columns holds all SQL columns for vote fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldBattleID,
	FieldVoterID,
	FieldTargetParticipantID,
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
	// BattleIDValidator is a validator for the "battle_id" field. It is called by the builders before save.
	BattleIDValidator func(string) error
	// VoterIDValidator is a validator for the "voter_id" field. It is called by the builders before save.
	VoterIDValidator func(string) error
	// TargetParticipantIDValidator is a validator for the "target_participant_id" field. It is called by the builders before save.
	TargetParticipantIDValidator func(string) error
)

// OrderOption defines the ordering options for the Vote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBattleID orders the results by the battle_id field.
func ByBattleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBattleID, opts...).ToFunc()
}

// ByVoterID orders the results by the voter_id field.
func ByVoterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoterID, opts...).ToFunc()
}

// ByTargetParticipantID orders the results by the target_participant_id field.
func ByTargetParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetParticipantID, opts...).ToFunc()
}
