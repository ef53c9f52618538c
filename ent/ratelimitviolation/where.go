// Code generated by ent, DO NOT EDIT.

package ratelimitviolation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldCreatedAt, v))
}

// Procedure applies equality check predicate on the "procedure" field. It's identical to ProcedureEQ.
func Procedure(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldProcedure, v))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldScopeKey, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldActor, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldWindowStart, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldCount, v))
}

// AllowedPerMinute applies equality check predicate on the "allowed_per_minute" field. It's identical to AllowedPerMinuteEQ.
func AllowedPerMinute(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldAllowedPerMinute, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcedureEQ applies the EQ predicate on the "procedure" field.
func ProcedureEQ(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldProcedure, v))
}

// ProcedureNEQ applies the NEQ predicate on the "procedure" field.
func ProcedureNEQ(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldProcedure, v))
}

// ProcedureIn applies the In predicate on the "procedure" field.
func ProcedureIn(vs ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldProcedure, vs...))
}

// ProcedureNotIn applies the NotIn predicate on the "procedure" field.
func ProcedureNotIn(vs ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldProcedure, vs...))
}

// ProcedureGT applies the GT predicate on the "procedure" field.
func ProcedureGT(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldProcedure, v))
}

// ProcedureGTE applies the GTE predicate on the "procedure" field.
func ProcedureGTE(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldProcedure, v))
}

// ProcedureLT applies the LT predicate on the "procedure" field.
func ProcedureLT(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldProcedure, v))
}

// ProcedureLTE applies the LTE predicate on the "procedure" field.
func ProcedureLTE(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldProcedure, v))
}

// ProcedureContains applies the Contains predicate on the "procedure" field.
func ProcedureContains(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContains(FieldProcedure, v))
}

// ProcedureHasPrefix applies the HasPrefix predicate on the "procedure" field.
func ProcedureHasPrefix(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldHasPrefix(FieldProcedure, v))
}

// ProcedureHasSuffix applies the HasSuffix predicate on the "procedure" field.
func ProcedureHasSuffix(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldHasSuffix(FieldProcedure, v))
}

// ProcedureEqualFold applies the EqualFold predicate on the "procedure" field.
func ProcedureEqualFold(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEqualFold(FieldProcedure, v))
}

// ProcedureContainsFold applies the ContainsFold predicate on the "procedure" field.
func ProcedureContainsFold(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContainsFold(FieldProcedure, v))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContainsFold(FieldScopeKey, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldHasSuffix(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotNull(FieldActor))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldContainsFold(FieldActor, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldWindowStart, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldCount, v))
}

// AllowedPerMinuteEQ applies the EQ predicate on the "allowed_per_minute" field.
func AllowedPerMinuteEQ(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldEQ(FieldAllowedPerMinute, v))
}

// AllowedPerMinuteNEQ applies the NEQ predicate on the "allowed_per_minute" field.
func AllowedPerMinuteNEQ(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNEQ(FieldAllowedPerMinute, v))
}

// AllowedPerMinuteIn applies the In predicate on the "allowed_per_minute" field.
func AllowedPerMinuteIn(vs ...int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldIn(FieldAllowedPerMinute, vs...))
}

// AllowedPerMinuteNotIn applies the NotIn predicate on the "allowed_per_minute" field.
func AllowedPerMinuteNotIn(vs ...int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldNotIn(FieldAllowedPerMinute, vs...))
}

// AllowedPerMinuteGT applies the GT predicate on the "allowed_per_minute" field.
func AllowedPerMinuteGT(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGT(FieldAllowedPerMinute, v))
}

// AllowedPerMinuteGTE applies the GTE predicate on the "allowed_per_minute" field.
func AllowedPerMinuteGTE(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldGTE(FieldAllowedPerMinute, v))
}

// AllowedPerMinuteLT applies the LT predicate on the "allowed_per_minute" field.
func AllowedPerMinuteLT(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLT(FieldAllowedPerMinute, v))
}

// AllowedPerMinuteLTE applies the LTE predicate on the "allowed_per_minute" field.
func AllowedPerMinuteLTE(v int) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.FieldLTE(FieldAllowedPerMinute, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RateLimitViolation) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RateLimitViolation) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RateLimitViolation) predicate.RateLimitViolation {
	return predicate.RateLimitViolation(sql.NotPredicates(p))
}
