// Code generated by ent, DO NOT EDIT.

package ratelimitcounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLTE(FieldID, id))
}

// Procedure applies equality check predicate on the "procedure" field. It's identical to ProcedureEQ.
func Procedure(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldProcedure, v))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldScopeKey, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldWindowStart, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldCount, v))
}

// ProcedureEQ applies the EQ predicate on the "procedure" field.
func ProcedureEQ(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldProcedure, v))
}

// ProcedureNEQ applies the NEQ predicate on the "procedure" field.
func ProcedureNEQ(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNEQ(FieldProcedure, v))
}

// ProcedureIn applies the In predicate on the "procedure" field.
func ProcedureIn(vs ...string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldIn(FieldProcedure, vs...))
}

// ProcedureNotIn applies the NotIn predicate on the "procedure" field.
func ProcedureNotIn(vs ...string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNotIn(FieldProcedure, vs...))
}

// ProcedureGT applies the GT predicate on the "procedure" field.
func ProcedureGT(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGT(FieldProcedure, v))
}

// ProcedureGTE applies the GTE predicate on the "procedure" field.
func ProcedureGTE(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGTE(FieldProcedure, v))
}

// ProcedureLT applies the LT predicate on the "procedure" field.
func ProcedureLT(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLT(FieldProcedure, v))
}

// ProcedureLTE applies the LTE predicate on the "procedure" field.
func ProcedureLTE(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLTE(FieldProcedure, v))
}

// ProcedureContains applies the Contains predicate on the "procedure" field.
func ProcedureContains(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldContains(FieldProcedure, v))
}

// ProcedureHasPrefix applies the HasPrefix predicate on the "procedure" field.
func ProcedureHasPrefix(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldHasPrefix(FieldProcedure, v))
}

// ProcedureHasSuffix applies the HasSuffix predicate on the "procedure" field.
func ProcedureHasSuffix(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldHasSuffix(FieldProcedure, v))
}

// ProcedureEqualFold applies the EqualFold predicate on the "procedure" field.
func ProcedureEqualFold(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEqualFold(FieldProcedure, v))
}

// ProcedureContainsFold applies the ContainsFold predicate on the "procedure" field.
func ProcedureContainsFold(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldContainsFold(FieldProcedure, v))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldContainsFold(FieldScopeKey, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLTE(FieldWindowStart, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.FieldLTE(FieldCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RateLimitCounter) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RateLimitCounter) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RateLimitCounter) predicate.RateLimitCounter {
	return predicate.RateLimitCounter(sql.NotPredicates(p))
}
