// Code generated by ent, DO NOT EDIT.

package vote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldCreatedAt, v))
}

// BattleID applies equality check predicate on the "battle_id" field. It's identical to BattleIDEQ.
func BattleID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldBattleID, v))
}

// VoterID applies equality check predicate on the "voter_id" field. It's identical to VoterIDEQ.
func VoterID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldVoterID, v))
}

// TargetParticipantID applies equality check predicate on the "target_participant_id" field. It's identical to TargetParticipantIDEQ.
func TargetParticipantID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldTargetParticipantID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldCreatedAt, v))
}

// BattleIDEQ applies the EQ predicate on the "battle_id" field.
func BattleIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldBattleID, v))
}

// BattleIDNEQ applies the NEQ predicate on the "battle_id" field.
func BattleIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldBattleID, v))
}

// BattleIDIn applies the In predicate on the "battle_id" field.
func BattleIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldBattleID, vs...))
}

// BattleIDNotIn applies the NotIn predicate on the "battle_id" field.
func BattleIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldBattleID, vs...))
}

// BattleIDGT applies the GT predicate on the "battle_id" field.
func BattleIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldBattleID, v))
}

// BattleIDGTE applies the GTE predicate on the "battle_id" field.
func BattleIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldBattleID, v))
}

// BattleIDLT applies the LT predicate on the "battle_id" field.
func BattleIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldBattleID, v))
}

// BattleIDLTE applies the LTE predicate on the "battle_id" field.
func BattleIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldBattleID, v))
}

// BattleIDContains applies the Contains predicate on the "battle_id" field.
func BattleIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldBattleID, v))
}

// BattleIDHasPrefix applies the HasPrefix predicate on the "battle_id" field.
func BattleIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldBattleID, v))
}

// BattleIDHasSuffix applies the HasSuffix predicate on the "battle_id" field.
func BattleIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldBattleID, v))
}

// BattleIDEqualFold applies the EqualFold predicate on the "battle_id" field.
func BattleIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldBattleID, v))
}

// BattleIDContainsFold applies the ContainsFold predicate on the "battle_id" field.
func BattleIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldBattleID, v))
}

// VoterIDEQ applies the EQ predicate on the "voter_id" field.
func VoterIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldVoterID, v))
}

// VoterIDNEQ applies the NEQ predicate on the "voter_id" field.
func VoterIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldVoterID, v))
}

// VoterIDIn applies the In predicate on the "voter_id" field.
func VoterIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldVoterID, vs...))
}

// VoterIDNotIn applies the NotIn predicate on the "voter_id" field.
func VoterIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldVoterID, vs...))
}

// VoterIDGT applies the GT predicate on the "voter_id" field.
func VoterIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldVoterID, v))
}

// VoterIDGTE applies the GTE predicate on the "voter_id" field.
func VoterIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldVoterID, v))
}

// VoterIDLT applies the LT predicate on the "voter_id" field.
func VoterIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldVoterID, v))
}

// VoterIDLTE applies the LTE predicate on the "voter_id" field.
func VoterIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldVoterID, v))
}

// VoterIDContains applies the Contains predicate on the "voter_id" field.
func VoterIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldVoterID, v))
}

// VoterIDHasPrefix applies the HasPrefix predicate on the "voter_id" field.
func VoterIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldVoterID, v))
}

// VoterIDHasSuffix applies the HasSuffix predicate on the "voter_id" field.
func VoterIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldVoterID, v))
}

// VoterIDEqualFold applies the EqualFold predicate on the "voter_id" field.
func VoterIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldVoterID, v))
}

// VoterIDContainsFold applies the ContainsFold predicate on the "voter_id" field.
func VoterIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldVoterID, v))
}

// TargetParticipantIDEQ applies the EQ predicate on the "target_participant_id" field.
func TargetParticipantIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldTargetParticipantID, v))
}

// TargetParticipantIDNEQ applies the NEQ predicate on the "target_participant_id" field.
func TargetParticipantIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldTargetParticipantID, v))
}

// TargetParticipantIDIn applies the In predicate on the "target_participant_id" field.
func TargetParticipantIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldTargetParticipantID, vs...))
}

// TargetParticipantIDNotIn applies the NotIn predicate on the "target_participant_id" field.
func TargetParticipantIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldTargetParticipantID, vs...))
}

// TargetParticipantIDGT applies the GT predicate on the "target_participant_id" field.
func TargetParticipantIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldTargetParticipantID, v))
}

// TargetParticipantIDGTE applies the GTE predicate on the "target_participant_id" field.
func TargetParticipantIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldTargetParticipantID, v))
}

// TargetParticipantIDLT applies the LT predicate on the "target_participant_id" field.
func TargetParticipantIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldTargetParticipantID, v))
}

// TargetParticipantIDLTE applies the LTE predicate on the "target_participant_id" field.
func TargetParticipantIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldTargetParticipantID, v))
}

// TargetParticipantIDContains applies the Contains predicate on the "target_participant_id" field.
func TargetParticipantIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldTargetParticipantID, v))
}

// TargetParticipantIDHasPrefix applies the HasPrefix predicate on the "target_participant_id" field.
func TargetParticipantIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldTargetParticipantID, v))
}

// TargetParticipantIDHasSuffix applies the HasSuffix predicate on the "target_participant_id" field.
func TargetParticipantIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldTargetParticipantID, v))
}

// TargetParticipantIDEqualFold applies the EqualFold predicate on the "target_participant_id" field.
func TargetParticipantIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldTargetParticipantID, v))
}

// TargetParticipantIDContainsFold applies the ContainsFold predicate on the "target_participant_id" field.
func TargetParticipantIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldTargetParticipantID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.NotPredicates(p))
}
