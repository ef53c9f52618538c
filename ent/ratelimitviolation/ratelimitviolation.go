// Code generated by ent, DO NOT EDIT.

package ratelimitviolation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratelimitviolation type in the database.
	Label = "rate_limit_violation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldProcedure holds the string denoting the procedure field in the database.
	FieldProcedure = "procedure"
	// FieldScopeKey holds the string denoting the scope_key field in the database.
	FieldScopeKey = "scope_key"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// FieldAllowedPerMinute holds the string denoting the allowed_per_minute field in the database.
	FieldAllowedPerMinute = "allowed_per_minute"
	// Table holds the table name of the ratelimitviolation in the database.
	Table = "rate_limit_violations"
)

// Columns holds all SQL columns for ratelimitviolation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldProcedure,
	FieldScopeKey,
	FieldActor,
	FieldWindowStart,
	FieldCount,
	FieldAllowedPerMinute,
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
	// ProcedureValidator is a validator for the "procedure" field. It is called by the builders before save.
	ProcedureValidator func(string) error
	// ScopeKeyValidator is a validator for the "scope_key" field. It is called by the builders before save.
	ScopeKeyValidator func(string) error
)

// OrderOption defines the ordering options for the RateLimitViolation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcedure orders the results by the procedure field.
func ByProcedure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcedure, opts...).ToFunc()
}

// ByScopeKey orders the results by the scope_key field.
func ByScopeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeKey, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

// ByAllowedPerMinute orders the results by the allowed_per_minute field.
func ByAllowedPerMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowedPerMinute, opts...).ToFunc()
}
