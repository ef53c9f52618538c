// Code generated by ent, DO NOT EDIT.

package battle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldUpdatedAt, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldSlug, v))
}

// ParticipantA applies equality check predicate on the "participant_a" field. It's identical to ParticipantAEQ.
func ParticipantA(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldParticipantA, v))
}

// ParticipantB applies equality check predicate on the "participant_b" field. It's identical to ParticipantBEQ.
func ParticipantB(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldParticipantB, v))
}

// SubmissionA applies equality check predicate on the "submission_a" field. It's identical to SubmissionAEQ.
func SubmissionA(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldSubmissionA, v))
}

// SubmissionB applies equality check predicate on the "submission_b" field. It's identical to SubmissionBEQ.
func SubmissionB(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldSubmissionB, v))
}

// ResponseDeadline applies equality check predicate on the "response_deadline" field. It's identical to ResponseDeadlineEQ.
func ResponseDeadline(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldResponseDeadline, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldStartsAt, v))
}

// VotingEndsAt applies equality check predicate on the "voting_ends_at" field. It's identical to VotingEndsAtEQ.
func VotingEndsAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldVotingEndsAt, v))
}

// CustomDurationDays applies equality check predicate on the "custom_duration_days" field. It's identical to CustomDurationDaysEQ.
func CustomDurationDays(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldCustomDurationDays, v))
}

// ExtensionCount applies equality check predicate on the "extension_count" field. It's identical to ExtensionCountEQ.
func ExtensionCount(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldExtensionCount, v))
}

// VotesA applies equality check predicate on the "votes_a" field. It's identical to VotesAEQ.
func VotesA(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldVotesA, v))
}

// VotesB applies equality check predicate on the "votes_b" field. It's identical to VotesBEQ.
func VotesB(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldVotesB, v))
}

// Winner applies equality check predicate on the "winner" field. It's identical to WinnerEQ.
func Winner(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldWinner, v))
}

// AcceptedAt applies equality check predicate on the "accepted_at" field. It's identical to AcceptedAtEQ.
func AcceptedAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldAcceptedAt, v))
}

// RejectedAt applies equality check predicate on the "rejected_at" field. It's identical to RejectedAtEQ.
func RejectedAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldRejectedAt, v))
}

// AdminValidatedAt applies equality check predicate on the "admin_validated_at" field. It's identical to AdminValidatedAtEQ.
func AdminValidatedAt(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldAdminValidatedAt, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldRejectionReason, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldUpdatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldSlug, v))
}

// ParticipantAEQ applies the EQ predicate on the "participant_a" field.
func ParticipantAEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldParticipantA, v))
}

// ParticipantANEQ applies the NEQ predicate on the "participant_a" field.
func ParticipantANEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldParticipantA, v))
}

// ParticipantAIn applies the In predicate on the "participant_a" field.
func ParticipantAIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldParticipantA, vs...))
}

// ParticipantANotIn applies the NotIn predicate on the "participant_a" field.
func ParticipantANotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldParticipantA, vs...))
}

// ParticipantAGT applies the GT predicate on the "participant_a" field.
func ParticipantAGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldParticipantA, v))
}

// ParticipantAGTE applies the GTE predicate on the "participant_a" field.
func ParticipantAGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldParticipantA, v))
}

// ParticipantALT applies the LT predicate on the "participant_a" field.
func ParticipantALT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldParticipantA, v))
}

// ParticipantALTE applies the LTE predicate on the "participant_a" field.
func ParticipantALTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldParticipantA, v))
}

// ParticipantAContains applies the Contains predicate on the "participant_a" field.
func ParticipantAContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldParticipantA, v))
}

// ParticipantAHasPrefix applies the HasPrefix predicate on the "participant_a" field.
func ParticipantAHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldParticipantA, v))
}

// ParticipantAHasSuffix applies the HasSuffix predicate on the "participant_a" field.
func ParticipantAHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldParticipantA, v))
}

// ParticipantAIsNil applies the IsNil predicate on the "participant_a" field.
func ParticipantAIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldParticipantA))
}

// ParticipantANotNil applies the NotNil predicate on the "participant_a" field.
func ParticipantANotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldParticipantA))
}

// ParticipantAEqualFold applies the EqualFold predicate on the "participant_a" field.
func ParticipantAEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldParticipantA, v))
}

// ParticipantAContainsFold applies the ContainsFold predicate on the "participant_a" field.
func ParticipantAContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldParticipantA, v))
}

// ParticipantBEQ applies the EQ predicate on the "participant_b" field.
func ParticipantBEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldParticipantB, v))
}

// ParticipantBNEQ applies the NEQ predicate on the "participant_b" field.
func ParticipantBNEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldParticipantB, v))
}

// ParticipantBIn applies the In predicate on the "participant_b" field.
func ParticipantBIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldParticipantB, vs...))
}

// ParticipantBNotIn applies the NotIn predicate on the "participant_b" field.
func ParticipantBNotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldParticipantB, vs...))
}

// ParticipantBGT applies the GT predicate on the "participant_b" field.
func ParticipantBGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldParticipantB, v))
}

// ParticipantBGTE applies the GTE predicate on the "participant_b" field.
func ParticipantBGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldParticipantB, v))
}

// ParticipantBLT applies the LT predicate on the "participant_b" field.
func ParticipantBLT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldParticipantB, v))
}

// ParticipantBLTE applies the LTE predicate on the "participant_b" field.
func ParticipantBLTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldParticipantB, v))
}

// ParticipantBContains applies the Contains predicate on the "participant_b" field.
func ParticipantBContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldParticipantB, v))
}

// ParticipantBHasPrefix applies the HasPrefix predicate on the "participant_b" field.
func ParticipantBHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldParticipantB, v))
}

// ParticipantBHasSuffix applies the HasSuffix predicate on the "participant_b" field.
func ParticipantBHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldParticipantB, v))
}

// ParticipantBIsNil applies the IsNil predicate on the "participant_b" field.
func ParticipantBIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldParticipantB))
}

// ParticipantBNotNil applies the NotNil predicate on the "participant_b" field.
func ParticipantBNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldParticipantB))
}

// ParticipantBEqualFold applies the EqualFold predicate on the "participant_b" field.
func ParticipantBEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldParticipantB, v))
}

// ParticipantBContainsFold applies the ContainsFold predicate on the "participant_b" field.
func ParticipantBContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldParticipantB, v))
}

// SubmissionAEQ applies the EQ predicate on the "submission_a" field.
func SubmissionAEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldSubmissionA, v))
}

// SubmissionANEQ applies the NEQ predicate on the "submission_a" field.
func SubmissionANEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldSubmissionA, v))
}

// SubmissionAIn applies the In predicate on the "submission_a" field.
func SubmissionAIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldSubmissionA, vs...))
}

// SubmissionANotIn applies the NotIn predicate on the "submission_a" field.
func SubmissionANotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldSubmissionA, vs...))
}

// SubmissionAGT applies the GT predicate on the "submission_a" field.
func SubmissionAGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldSubmissionA, v))
}

// SubmissionAGTE applies the GTE predicate on the "submission_a" field.
func SubmissionAGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldSubmissionA, v))
}

// SubmissionALT applies the LT predicate on the "submission_a" field.
func SubmissionALT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldSubmissionA, v))
}

// SubmissionALTE applies the LTE predicate on the "submission_a" field.
func SubmissionALTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldSubmissionA, v))
}

// SubmissionAContains applies the Contains predicate on the "submission_a" field.
func SubmissionAContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldSubmissionA, v))
}

// SubmissionAHasPrefix applies the HasPrefix predicate on the "submission_a" field.
func SubmissionAHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldSubmissionA, v))
}

// SubmissionAHasSuffix applies the HasSuffix predicate on the "submission_a" field.
func SubmissionAHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldSubmissionA, v))
}

// SubmissionAIsNil applies the IsNil predicate on the "submission_a" field.
func SubmissionAIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldSubmissionA))
}

// SubmissionANotNil applies the NotNil predicate on the "submission_a" field.
func SubmissionANotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldSubmissionA))
}

// SubmissionAEqualFold applies the EqualFold predicate on the "submission_a" field.
func SubmissionAEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldSubmissionA, v))
}

// SubmissionAContainsFold applies the ContainsFold predicate on the "submission_a" field.
func SubmissionAContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldSubmissionA, v))
}

// SubmissionBEQ applies the EQ predicate on the "submission_b" field.
func SubmissionBEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldSubmissionB, v))
}

// SubmissionBNEQ applies the NEQ predicate on the "submission_b" field.
func SubmissionBNEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldSubmissionB, v))
}

// SubmissionBIn applies the In predicate on the "submission_b" field.
func SubmissionBIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldSubmissionB, vs...))
}

// SubmissionBNotIn applies the NotIn predicate on the "submission_b" field.
func SubmissionBNotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldSubmissionB, vs...))
}

// SubmissionBGT applies the GT predicate on the "submission_b" field.
func SubmissionBGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldSubmissionB, v))
}

// SubmissionBGTE applies the GTE predicate on the "submission_b" field.
func SubmissionBGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldSubmissionB, v))
}

// SubmissionBLT applies the LT predicate on the "submission_b" field.
func SubmissionBLT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldSubmissionB, v))
}

// SubmissionBLTE applies the LTE predicate on the "submission_b" field.
func SubmissionBLTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldSubmissionB, v))
}

// SubmissionBContains applies the Contains predicate on the "submission_b" field.
func SubmissionBContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldSubmissionB, v))
}

// SubmissionBHasPrefix applies the HasPrefix predicate on the "submission_b" field.
func SubmissionBHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldSubmissionB, v))
}

// SubmissionBHasSuffix applies the HasSuffix predicate on the "submission_b" field.
func SubmissionBHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldSubmissionB, v))
}

// SubmissionBIsNil applies the IsNil predicate on the "submission_b" field.
func SubmissionBIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldSubmissionB))
}

// SubmissionBNotNil applies the NotNil predicate on the "submission_b" field.
func SubmissionBNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldSubmissionB))
}

// SubmissionBEqualFold applies the EqualFold predicate on the "submission_b" field.
func SubmissionBEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldSubmissionB, v))
}

// SubmissionBContainsFold applies the ContainsFold predicate on the "submission_b" field.
func SubmissionBContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldSubmissionB, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldStatus, vs...))
}

// ResponseDeadlineEQ applies the EQ predicate on the "response_deadline" field.
func ResponseDeadlineEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldResponseDeadline, v))
}

// ResponseDeadlineNEQ applies the NEQ predicate on the "response_deadline" field.
func ResponseDeadlineNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldResponseDeadline, v))
}

// ResponseDeadlineIn applies the In predicate on the "response_deadline" field.
func ResponseDeadlineIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldResponseDeadline, vs...))
}

// ResponseDeadlineNotIn applies the NotIn predicate on the "response_deadline" field.
func ResponseDeadlineNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldResponseDeadline, vs...))
}

// ResponseDeadlineGT applies the GT predicate on the "response_deadline" field.
func ResponseDeadlineGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldResponseDeadline, v))
}

// ResponseDeadlineGTE applies the GTE predicate on the "response_deadline" field.
func ResponseDeadlineGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldResponseDeadline, v))
}

// ResponseDeadlineLT applies the LT predicate on the "response_deadline" field.
func ResponseDeadlineLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldResponseDeadline, v))
}

// ResponseDeadlineLTE applies the LTE predicate on the "response_deadline" field.
func ResponseDeadlineLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldResponseDeadline, v))
}

// ResponseDeadlineIsNil applies the IsNil predicate on the "response_deadline" field.
func ResponseDeadlineIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldResponseDeadline))
}

// ResponseDeadlineNotNil applies the NotNil predicate on the "response_deadline" field.
func ResponseDeadlineNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldResponseDeadline))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldStartsAt, v))
}

// StartsAtIsNil applies the IsNil predicate on the "starts_at" field.
func StartsAtIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldStartsAt))
}

// StartsAtNotNil applies the NotNil predicate on the "starts_at" field.
func StartsAtNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldStartsAt))
}

// VotingEndsAtEQ applies the EQ predicate on the "voting_ends_at" field.
func VotingEndsAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldVotingEndsAt, v))
}

// VotingEndsAtNEQ applies the NEQ predicate on the "voting_ends_at" field.
func VotingEndsAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldVotingEndsAt, v))
}

// VotingEndsAtIn applies the In predicate on the "voting_ends_at" field.
func VotingEndsAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldVotingEndsAt, vs...))
}

// VotingEndsAtNotIn applies the NotIn predicate on the "voting_ends_at" field.
func VotingEndsAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldVotingEndsAt, vs...))
}

// VotingEndsAtGT applies the GT predicate on the "voting_ends_at" field.
func VotingEndsAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldVotingEndsAt, v))
}

// VotingEndsAtGTE applies the GTE predicate on the "voting_ends_at" field.
func VotingEndsAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldVotingEndsAt, v))
}

// VotingEndsAtLT applies the LT predicate on the "voting_ends_at" field.
func VotingEndsAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldVotingEndsAt, v))
}

// VotingEndsAtLTE applies the LTE predicate on the "voting_ends_at" field.
func VotingEndsAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldVotingEndsAt, v))
}

// VotingEndsAtIsNil applies the IsNil predicate on the "voting_ends_at" field.
func VotingEndsAtIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldVotingEndsAt))
}

// VotingEndsAtNotNil applies the NotNil predicate on the "voting_ends_at" field.
func VotingEndsAtNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldVotingEndsAt))
}

// CustomDurationDaysEQ applies the EQ predicate on the "custom_duration_days" field.
func CustomDurationDaysEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldCustomDurationDays, v))
}

// CustomDurationDaysNEQ applies the NEQ predicate on the "custom_duration_days" field.
func CustomDurationDaysNEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldCustomDurationDays, v))
}

// CustomDurationDaysIn applies the In predicate on the "custom_duration_days" field.
func CustomDurationDaysIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldCustomDurationDays, vs...))
}

// CustomDurationDaysNotIn applies the NotIn predicate on the "custom_duration_days" field.
func CustomDurationDaysNotIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldCustomDurationDays, vs...))
}

// CustomDurationDaysGT applies the GT predicate on the "custom_duration_days" field.
func CustomDurationDaysGT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldCustomDurationDays, v))
}

// CustomDurationDaysGTE applies the GTE predicate on the "custom_duration_days" field.
func CustomDurationDaysGTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldCustomDurationDays, v))
}

// CustomDurationDaysLT applies the LT predicate on the "custom_duration_days" field.
func CustomDurationDaysLT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldCustomDurationDays, v))
}

// CustomDurationDaysLTE applies the LTE predicate on the "custom_duration_days" field.
func CustomDurationDaysLTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldCustomDurationDays, v))
}

// CustomDurationDaysIsNil applies the IsNil predicate on the "custom_duration_days" field.
func CustomDurationDaysIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldCustomDurationDays))
}

// CustomDurationDaysNotNil applies the NotNil predicate on the "custom_duration_days" field.
func CustomDurationDaysNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldCustomDurationDays))
}

// ExtensionCountEQ applies the EQ predicate on the "extension_count" field.
func ExtensionCountEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldExtensionCount, v))
}

// ExtensionCountNEQ applies the NEQ predicate on the "extension_count" field.
func ExtensionCountNEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldExtensionCount, v))
}

// ExtensionCountIn applies the In predicate on the "extension_count" field.
func ExtensionCountIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldExtensionCount, vs...))
}

// ExtensionCountNotIn applies the NotIn predicate on the "extension_count" field.
func ExtensionCountNotIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldExtensionCount, vs...))
}

// ExtensionCountGT applies the GT predicate on the "extension_count" field.
func ExtensionCountGT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldExtensionCount, v))
}

// ExtensionCountGTE applies the GTE predicate on the "extension_count" field.
func ExtensionCountGTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldExtensionCount, v))
}

// ExtensionCountLT applies the LT predicate on the "extension_count" field.
func ExtensionCountLT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldExtensionCount, v))
}

// ExtensionCountLTE applies the LTE predicate on the "extension_count" field.
func ExtensionCountLTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldExtensionCount, v))
}

// VotesAEQ applies the EQ predicate on the "votes_a" field.
func VotesAEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldVotesA, v))
}

// VotesANEQ applies the NEQ predicate on the "votes_a" field.
func VotesANEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldVotesA, v))
}

// VotesAIn applies the In predicate on the "votes_a" field.
func VotesAIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldVotesA, vs...))
}

// VotesANotIn applies the NotIn predicate on the "votes_a" field.
func VotesANotIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldVotesA, vs...))
}

// VotesAGT applies the GT predicate on the "votes_a" field.
func VotesAGT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldVotesA, v))
}

// VotesAGTE applies the GTE predicate on the "votes_a" field.
func VotesAGTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldVotesA, v))
}

// VotesALT applies the LT predicate on the "votes_a" field.
func VotesALT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldVotesA, v))
}

// VotesALTE applies the LTE predicate on the "votes_a" field.
func VotesALTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldVotesA, v))
}

// VotesBEQ applies the EQ predicate on the "votes_b" field.
func VotesBEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldVotesB, v))
}

// VotesBNEQ applies the NEQ predicate on the "votes_b" field.
func VotesBNEQ(v int) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldVotesB, v))
}

// VotesBIn applies the In predicate on the "votes_b" field.
func VotesBIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldVotesB, vs...))
}

// VotesBNotIn applies the NotIn predicate on the "votes_b" field.
func VotesBNotIn(vs ...int) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldVotesB, vs...))
}

// VotesBGT applies the GT predicate on the "votes_b" field.
func VotesBGT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldVotesB, v))
}

// VotesBGTE applies the GTE predicate on the "votes_b" field.
func VotesBGTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldVotesB, v))
}

// VotesBLT applies the LT predicate on the "votes_b" field.
func VotesBLT(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldVotesB, v))
}

// VotesBLTE applies the LTE predicate on the "votes_b" field.
func VotesBLTE(v int) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldVotesB, v))
}

// WinnerEQ applies the EQ predicate on the "winner" field.
func WinnerEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldWinner, v))
}

// WinnerNEQ applies the NEQ predicate on the "winner" field.
func WinnerNEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldWinner, v))
}

// WinnerIn applies the In predicate on the "winner" field.
func WinnerIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldWinner, vs...))
}

// WinnerNotIn applies the NotIn predicate on the "winner" field.
func WinnerNotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldWinner, vs...))
}

// WinnerGT applies the GT predicate on the "winner" field.
func WinnerGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldWinner, v))
}

// WinnerGTE applies the GTE predicate on the "winner" field.
func WinnerGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldWinner, v))
}

// WinnerLT applies the LT predicate on the "winner" field.
func WinnerLT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldWinner, v))
}

// WinnerLTE applies the LTE predicate on the "winner" field.
func WinnerLTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldWinner, v))
}

// WinnerContains applies the Contains predicate on the "winner" field.
func WinnerContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldWinner, v))
}

// WinnerHasPrefix applies the HasPrefix predicate on the "winner" field.
func WinnerHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldWinner, v))
}

// WinnerHasSuffix applies the HasSuffix predicate on the "winner" field.
func WinnerHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldWinner, v))
}

// WinnerIsNil applies the IsNil predicate on the "winner" field.
func WinnerIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldWinner))
}

// WinnerNotNil applies the NotNil predicate on the "winner" field.
func WinnerNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldWinner))
}

// WinnerEqualFold applies the EqualFold predicate on the "winner" field.
func WinnerEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldWinner, v))
}

// WinnerContainsFold applies the ContainsFold predicate on the "winner" field.
func WinnerContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldWinner, v))
}

// AcceptedAtEQ applies the EQ predicate on the "accepted_at" field.
func AcceptedAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldAcceptedAt, v))
}

// AcceptedAtNEQ applies the NEQ predicate on the "accepted_at" field.
func AcceptedAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldAcceptedAt, v))
}

// AcceptedAtIn applies the In predicate on the "accepted_at" field.
func AcceptedAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldAcceptedAt, vs...))
}

// AcceptedAtNotIn applies the NotIn predicate on the "accepted_at" field.
func AcceptedAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldAcceptedAt, vs...))
}

// AcceptedAtGT applies the GT predicate on the "accepted_at" field.
func AcceptedAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldAcceptedAt, v))
}

// AcceptedAtGTE applies the GTE predicate on the "accepted_at" field.
func AcceptedAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldAcceptedAt, v))
}

// AcceptedAtLT applies the LT predicate on the "accepted_at" field.
func AcceptedAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldAcceptedAt, v))
}

// AcceptedAtLTE applies the LTE predicate on the "accepted_at" field.
func AcceptedAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldAcceptedAt, v))
}

// AcceptedAtIsNil applies the IsNil predicate on the "accepted_at" field.
func AcceptedAtIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldAcceptedAt))
}

// AcceptedAtNotNil applies the NotNil predicate on the "accepted_at" field.
func AcceptedAtNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldAcceptedAt))
}

// RejectedAtEQ applies the EQ predicate on the "rejected_at" field.
func RejectedAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldRejectedAt, v))
}

// RejectedAtNEQ applies the NEQ predicate on the "rejected_at" field.
func RejectedAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldRejectedAt, v))
}

// RejectedAtIn applies the In predicate on the "rejected_at" field.
func RejectedAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldRejectedAt, vs...))
}

// RejectedAtNotIn applies the NotIn predicate on the "rejected_at" field.
func RejectedAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldRejectedAt, vs...))
}

// RejectedAtGT applies the GT predicate on the "rejected_at" field.
func RejectedAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldRejectedAt, v))
}

// RejectedAtGTE applies the GTE predicate on the "rejected_at" field.
func RejectedAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldRejectedAt, v))
}

// RejectedAtLT applies the LT predicate on the "rejected_at" field.
func RejectedAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldRejectedAt, v))
}

// RejectedAtLTE applies the LTE predicate on the "rejected_at" field.
func RejectedAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldRejectedAt, v))
}

// RejectedAtIsNil applies the IsNil predicate on the "rejected_at" field.
func RejectedAtIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldRejectedAt))
}

// RejectedAtNotNil applies the NotNil predicate on the "rejected_at" field.
func RejectedAtNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldRejectedAt))
}

// AdminValidatedAtEQ applies the EQ predicate on the "admin_validated_at" field.
func AdminValidatedAtEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldAdminValidatedAt, v))
}

// AdminValidatedAtNEQ applies the NEQ predicate on the "admin_validated_at" field.
func AdminValidatedAtNEQ(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldAdminValidatedAt, v))
}

// AdminValidatedAtIn applies the In predicate on the "admin_validated_at" field.
func AdminValidatedAtIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldAdminValidatedAt, vs...))
}

// AdminValidatedAtNotIn applies the NotIn predicate on the "admin_validated_at" field.
func AdminValidatedAtNotIn(vs ...time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldAdminValidatedAt, vs...))
}

// AdminValidatedAtGT applies the GT predicate on the "admin_validated_at" field.
func AdminValidatedAtGT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldAdminValidatedAt, v))
}

// AdminValidatedAtGTE applies the GTE predicate on the "admin_validated_at" field.
func AdminValidatedAtGTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldAdminValidatedAt, v))
}

// AdminValidatedAtLT applies the LT predicate on the "admin_validated_at" field.
func AdminValidatedAtLT(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldAdminValidatedAt, v))
}

// AdminValidatedAtLTE applies the LTE predicate on the "admin_validated_at" field.
func AdminValidatedAtLTE(v time.Time) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldAdminValidatedAt, v))
}

// AdminValidatedAtIsNil applies the IsNil predicate on the "admin_validated_at" field.
func AdminValidatedAtIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldAdminValidatedAt))
}

// AdminValidatedAtNotNil applies the NotNil predicate on the "admin_validated_at" field.
func AdminValidatedAtNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldAdminValidatedAt))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.Battle {
	return predicate.Battle(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.Battle {
	return predicate.Battle(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldRejectionReason, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Battle {
	return predicate.Battle(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Battle {
	return predicate.Battle(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Battle {
	return predicate.Battle(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Battle {
	return predicate.Battle(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Battle {
	return predicate.Battle(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Battle) predicate.Battle {
	return predicate.Battle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Battle) predicate.Battle {
	return predicate.Battle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Battle) predicate.Battle {
	return predicate.Battle(sql.NotPredicates(p))
}
