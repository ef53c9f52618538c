// Code generated by ent, DO NOT EDIT.

package ratelimitcounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratelimitcounter type in the database.
	Label = "rate_limit_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProcedure holds the string denoting the procedure field in the database.
	FieldProcedure = "procedure"
	// FieldScopeKey holds the string denoting the scope_key field in the database.
	FieldScopeKey = "scope_key"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// Table holds the table name of the ratelimitcounter in the database.
	Table = "rate_limit_counters"
)

// Columns holds all SQL columns for ratelimitcounter fields.
var Columns = []string{
	FieldID,
	FieldProcedure,
	FieldScopeKey,
	FieldWindowStart,
	FieldCount,
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
	// ProcedureValidator is a validator for the "procedure" field. It is called by the builders before save.
	ProcedureValidator func(string) error
	// ScopeKeyValidator is a validator for the "scope_key" field. It is called by the builders before save.
	ScopeKeyValidator func(string) error
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
	// CountValidator is a validator for the "count" field. It is called by the builders before save.
	CountValidator func(int) error
)

// OrderOption defines the ordering options for the RateLimitCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcedure orders the results by the procedure field.
func ByProcedure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcedure, opts...).ToFunc()
}

// ByScopeKey orders the results by the scope_key field.
func ByScopeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeKey, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}
