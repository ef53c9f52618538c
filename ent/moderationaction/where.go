// Code generated by ent, DO NOT EDIT.

package moderationaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubjectType applies equality check predicate on the "subject_type" field. It's identical to SubjectTypeEQ.
func SubjectType(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldSubjectType, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldSubjectID, v))
}

// AppliedEffect applies equality check predicate on the "applied_effect" field. It's identical to AppliedEffectEQ.
func AppliedEffect(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldAppliedEffect, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedBy applies equality check predicate on the "executed_by" field. It's identical to ExecutedByEQ.
func ExecutedBy(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldExecutedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldUpdatedAt, v))
}

// SubjectTypeEQ applies the EQ predicate on the "subject_type" field.
func SubjectTypeEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldSubjectType, v))
}

// SubjectTypeNEQ applies the NEQ predicate on the "subject_type" field.
func SubjectTypeNEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldSubjectType, v))
}

// SubjectTypeIn applies the In predicate on the "subject_type" field.
func SubjectTypeIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldSubjectType, vs...))
}

// SubjectTypeNotIn applies the NotIn predicate on the "subject_type" field.
func SubjectTypeNotIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldSubjectType, vs...))
}

// SubjectTypeGT applies the GT predicate on the "subject_type" field.
func SubjectTypeGT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldSubjectType, v))
}

// SubjectTypeGTE applies the GTE predicate on the "subject_type" field.
func SubjectTypeGTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldSubjectType, v))
}

// SubjectTypeLT applies the LT predicate on the "subject_type" field.
func SubjectTypeLT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldSubjectType, v))
}

// SubjectTypeLTE applies the LTE predicate on the "subject_type" field.
func SubjectTypeLTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldSubjectType, v))
}

// SubjectTypeContains applies the Contains predicate on the "subject_type" field.
func SubjectTypeContains(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContains(FieldSubjectType, v))
}

// SubjectTypeHasPrefix applies the HasPrefix predicate on the "subject_type" field.
func SubjectTypeHasPrefix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasPrefix(FieldSubjectType, v))
}

// SubjectTypeHasSuffix applies the HasSuffix predicate on the "subject_type" field.
func SubjectTypeHasSuffix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasSuffix(FieldSubjectType, v))
}

// SubjectTypeEqualFold applies the EqualFold predicate on the "subject_type" field.
func SubjectTypeEqualFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEqualFold(FieldSubjectType, v))
}

// SubjectTypeContainsFold applies the ContainsFold predicate on the "subject_type" field.
func SubjectTypeContainsFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContainsFold(FieldSubjectType, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContainsFold(FieldSubjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldStatus, vs...))
}

// AppliedEffectEQ applies the EQ predicate on the "applied_effect" field.
func AppliedEffectEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldAppliedEffect, v))
}

// AppliedEffectNEQ applies the NEQ predicate on the "applied_effect" field.
func AppliedEffectNEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldAppliedEffect, v))
}

// AppliedEffectIn applies the In predicate on the "applied_effect" field.
func AppliedEffectIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldAppliedEffect, vs...))
}

// AppliedEffectNotIn applies the NotIn predicate on the "applied_effect" field.
func AppliedEffectNotIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldAppliedEffect, vs...))
}

// AppliedEffectGT applies the GT predicate on the "applied_effect" field.
func AppliedEffectGT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldAppliedEffect, v))
}

// AppliedEffectGTE applies the GTE predicate on the "applied_effect" field.
func AppliedEffectGTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldAppliedEffect, v))
}

// AppliedEffectLT applies the LT predicate on the "applied_effect" field.
func AppliedEffectLT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldAppliedEffect, v))
}

// AppliedEffectLTE applies the LTE predicate on the "applied_effect" field.
func AppliedEffectLTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldAppliedEffect, v))
}

// AppliedEffectContains applies the Contains predicate on the "applied_effect" field.
func AppliedEffectContains(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContains(FieldAppliedEffect, v))
}

// AppliedEffectHasPrefix applies the HasPrefix predicate on the "applied_effect" field.
func AppliedEffectHasPrefix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasPrefix(FieldAppliedEffect, v))
}

// AppliedEffectHasSuffix applies the HasSuffix predicate on the "applied_effect" field.
func AppliedEffectHasSuffix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasSuffix(FieldAppliedEffect, v))
}

// AppliedEffectIsNil applies the IsNil predicate on the "applied_effect" field.
func AppliedEffectIsNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIsNull(FieldAppliedEffect))
}

// AppliedEffectNotNil applies the NotNil predicate on the "applied_effect" field.
func AppliedEffectNotNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotNull(FieldAppliedEffect))
}

// AppliedEffectEqualFold applies the EqualFold predicate on the "applied_effect" field.
func AppliedEffectEqualFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEqualFold(FieldAppliedEffect, v))
}

// AppliedEffectContainsFold applies the ContainsFold predicate on the "applied_effect" field.
func AppliedEffectContainsFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContainsFold(FieldAppliedEffect, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldExecutedAt, v))
}

// ExecutedAtIsNil applies the IsNil predicate on the "executed_at" field.
func ExecutedAtIsNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIsNull(FieldExecutedAt))
}

// ExecutedAtNotNil applies the NotNil predicate on the "executed_at" field.
func ExecutedAtNotNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotNull(FieldExecutedAt))
}

// ExecutedByEQ applies the EQ predicate on the "executed_by" field.
func ExecutedByEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEQ(FieldExecutedBy, v))
}

// ExecutedByNEQ applies the NEQ predicate on the "executed_by" field.
func ExecutedByNEQ(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNEQ(FieldExecutedBy, v))
}

// ExecutedByIn applies the In predicate on the "executed_by" field.
func ExecutedByIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIn(FieldExecutedBy, vs...))
}

// ExecutedByNotIn applies the NotIn predicate on the "executed_by" field.
func ExecutedByNotIn(vs ...string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotIn(FieldExecutedBy, vs...))
}

// ExecutedByGT applies the GT predicate on the "executed_by" field.
func ExecutedByGT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGT(FieldExecutedBy, v))
}

// ExecutedByGTE applies the GTE predicate on the "executed_by" field.
func ExecutedByGTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldGTE(FieldExecutedBy, v))
}

// ExecutedByLT applies the LT predicate on the "executed_by" field.
func ExecutedByLT(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLT(FieldExecutedBy, v))
}

// ExecutedByLTE applies the LTE predicate on the "executed_by" field.
func ExecutedByLTE(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldLTE(FieldExecutedBy, v))
}

// ExecutedByContains applies the Contains predicate on the "executed_by" field.
func ExecutedByContains(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContains(FieldExecutedBy, v))
}

// ExecutedByHasPrefix applies the HasPrefix predicate on the "executed_by" field.
func ExecutedByHasPrefix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasPrefix(FieldExecutedBy, v))
}

// ExecutedByHasSuffix applies the HasSuffix predicate on the "executed_by" field.
func ExecutedByHasSuffix(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldHasSuffix(FieldExecutedBy, v))
}

// ExecutedByIsNil applies the IsNil predicate on the "executed_by" field.
func ExecutedByIsNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIsNull(FieldExecutedBy))
}

// ExecutedByNotNil applies the NotNil predicate on the "executed_by" field.
func ExecutedByNotNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotNull(FieldExecutedBy))
}

// ExecutedByEqualFold applies the EqualFold predicate on the "executed_by" field.
func ExecutedByEqualFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldEqualFold(FieldExecutedBy, v))
}

// ExecutedByContainsFold applies the ContainsFold predicate on the "executed_by" field.
func ExecutedByContainsFold(v string) predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldContainsFold(FieldExecutedBy, v))
}

// OverrideFeedbackIsNil applies the IsNil predicate on the "override_feedback" field.
func OverrideFeedbackIsNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldIsNull(FieldOverrideFeedback))
}

// OverrideFeedbackNotNil applies the NotNil predicate on the "override_feedback" field.
func OverrideFeedbackNotNil() predicate.ModerationAction {
	return predicate.ModerationAction(sql.FieldNotNull(FieldOverrideFeedback))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModerationAction) predicate.ModerationAction {
	return predicate.ModerationAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModerationAction) predicate.ModerationAction {
	return predicate.ModerationAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModerationAction) predicate.ModerationAction {
	return predicate.ModerationAction(sql.NotPredicates(p))
}
