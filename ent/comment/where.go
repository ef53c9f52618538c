// Code generated by ent, DO NOT EDIT.

package comment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldUpdatedAt, v))
}

// BattleID applies equality check predicate on the "battle_id" field. It's identical to BattleIDEQ.
func BattleID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldBattleID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldBody, v))
}

// Visible applies equality check predicate on the "visible" field. It's identical to VisibleEQ.
func Visible(v bool) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldVisible, v))
}

// HiddenReason applies equality check predicate on the "hidden_reason" field. It's identical to HiddenReasonEQ.
func HiddenReason(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldHiddenReason, v))
}

// HiddenBy applies equality check predicate on the "hidden_by" field. It's identical to HiddenByEQ.
func HiddenBy(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldHiddenBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldUpdatedAt, v))
}

// BattleIDEQ applies the EQ predicate on the "battle_id" field.
func BattleIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldBattleID, v))
}

// BattleIDNEQ applies the NEQ predicate on the "battle_id" field.
func BattleIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldBattleID, v))
}

// BattleIDIn applies the In predicate on the "battle_id" field.
func BattleIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldBattleID, vs...))
}

// BattleIDNotIn applies the NotIn predicate on the "battle_id" field.
func BattleIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldBattleID, vs...))
}

// BattleIDGT applies the GT predicate on the "battle_id" field.
func BattleIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldBattleID, v))
}

// BattleIDGTE applies the GTE predicate on the "battle_id" field.
func BattleIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldBattleID, v))
}

// BattleIDLT applies the LT predicate on the "battle_id" field.
func BattleIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldBattleID, v))
}

// BattleIDLTE applies the LTE predicate on the "battle_id" field.
func BattleIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldBattleID, v))
}

// BattleIDContains applies the Contains predicate on the "battle_id" field.
func BattleIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldBattleID, v))
}

// BattleIDHasPrefix applies the HasPrefix predicate on the "battle_id" field.
func BattleIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldBattleID, v))
}

// BattleIDHasSuffix applies the HasSuffix predicate on the "battle_id" field.
func BattleIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldBattleID, v))
}

// BattleIDEqualFold applies the EqualFold predicate on the "battle_id" field.
func BattleIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldBattleID, v))
}

// BattleIDContainsFold applies the ContainsFold predicate on the "battle_id" field.
func BattleIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldBattleID, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldAuthorID, v))
}

// AuthorIDContains applies the Contains predicate on the "author_id" field.
func AuthorIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldAuthorID, v))
}

// AuthorIDHasPrefix applies the HasPrefix predicate on the "author_id" field.
func AuthorIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldAuthorID, v))
}

// AuthorIDHasSuffix applies the HasSuffix predicate on the "author_id" field.
func AuthorIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldAuthorID, v))
}

// AuthorIDEqualFold applies the EqualFold predicate on the "author_id" field.
func AuthorIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldAuthorID, v))
}

// AuthorIDContainsFold applies the ContainsFold predicate on the "author_id" field.
func AuthorIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldAuthorID, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldBody, v))
}

// VisibleEQ applies the EQ predicate on the "visible" field.
func VisibleEQ(v bool) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldVisible, v))
}

// VisibleNEQ applies the NEQ predicate on the "visible" field.
func VisibleNEQ(v bool) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldVisible, v))
}

// HiddenReasonEQ applies the EQ predicate on the "hidden_reason" field.
func HiddenReasonEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldHiddenReason, v))
}

// HiddenReasonNEQ applies the NEQ predicate on the "hidden_reason" field.
func HiddenReasonNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldHiddenReason, v))
}

// HiddenReasonIn applies the In predicate on the "hidden_reason" field.
func HiddenReasonIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldHiddenReason, vs...))
}

// HiddenReasonNotIn applies the NotIn predicate on the "hidden_reason" field.
func HiddenReasonNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldHiddenReason, vs...))
}

// HiddenReasonGT applies the GT predicate on the "hidden_reason" field.
func HiddenReasonGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldHiddenReason, v))
}

// HiddenReasonGTE applies the GTE predicate on the "hidden_reason" field.
func HiddenReasonGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldHiddenReason, v))
}

// HiddenReasonLT applies the LT predicate on the "hidden_reason" field.
func HiddenReasonLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldHiddenReason, v))
}

// HiddenReasonLTE applies the LTE predicate on the "hidden_reason" field.
func HiddenReasonLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldHiddenReason, v))
}

// HiddenReasonContains applies the Contains predicate on the "hidden_reason" field.
func HiddenReasonContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldHiddenReason, v))
}

// HiddenReasonHasPrefix applies the HasPrefix predicate on the "hidden_reason" field.
func HiddenReasonHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldHiddenReason, v))
}

// HiddenReasonHasSuffix applies the HasSuffix predicate on the "hidden_reason" field.
func HiddenReasonHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldHiddenReason, v))
}

// HiddenReasonIsNil applies the IsNil predicate on the "hidden_reason" field.
func HiddenReasonIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldHiddenReason))
}

// HiddenReasonNotNil applies the NotNil predicate on the "hidden_reason" field.
func HiddenReasonNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldHiddenReason))
}

// HiddenReasonEqualFold applies the EqualFold predicate on the "hidden_reason" field.
func HiddenReasonEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldHiddenReason, v))
}

// HiddenReasonContainsFold applies the ContainsFold predicate on the "hidden_reason" field.
func HiddenReasonContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldHiddenReason, v))
}

// HiddenByEQ applies the EQ predicate on the "hidden_by" field.
func HiddenByEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldHiddenBy, v))
}

// HiddenByNEQ applies the NEQ predicate on the "hidden_by" field.
func HiddenByNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldHiddenBy, v))
}

// HiddenByIn applies the In predicate on the "hidden_by" field.
func HiddenByIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldHiddenBy, vs...))
}

// HiddenByNotIn applies the NotIn predicate on the "hidden_by" field.
func HiddenByNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldHiddenBy, vs...))
}

// HiddenByGT applies the GT predicate on the "hidden_by" field.
func HiddenByGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldHiddenBy, v))
}

// HiddenByGTE applies the GTE predicate on the "hidden_by" field.
func HiddenByGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldHiddenBy, v))
}

// HiddenByLT applies the LT predicate on the "hidden_by" field.
func HiddenByLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldHiddenBy, v))
}

// HiddenByLTE applies the LTE predicate on the "hidden_by" field.
func HiddenByLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldHiddenBy, v))
}

// HiddenByContains applies the Contains predicate on the "hidden_by" field.
func HiddenByContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldHiddenBy, v))
}

// HiddenByHasPrefix applies the HasPrefix predicate on the "hidden_by" field.
func HiddenByHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldHiddenBy, v))
}

// HiddenByHasSuffix applies the HasSuffix predicate on the "hidden_by" field.
func HiddenByHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldHiddenBy, v))
}

// HiddenByIsNil applies the IsNil predicate on the "hidden_by" field.
func HiddenByIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldHiddenBy))
}

// HiddenByNotNil applies the NotNil predicate on the "hidden_by" field.
func HiddenByNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldHiddenBy))
}

// HiddenByEqualFold applies the EqualFold predicate on the "hidden_by" field.
func HiddenByEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldHiddenBy, v))
}

// HiddenByContainsFold applies the ContainsFold predicate on the "hidden_by" field.
func HiddenByContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldHiddenBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.NotPredicates(p))
}
