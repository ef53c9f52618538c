// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/predicate"
)

// BattleUpdate is the builder for updating Battle entities.
type BattleUpdate struct {
	config
	hooks    []Hook
	mutation *BattleMutation
}

// Where appends a list predicates to the BattleUpdate builder.
func (_u *BattleUpdate) Where(ps ...predicate.Battle) *BattleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BattleUpdate) SetUpdatedAt(v time.Time) *BattleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParticipantA sets the "participant_a" field.
func (_u *BattleUpdate) SetParticipantA(v string) *BattleUpdate {
	_u.mutation.SetParticipantA(v)
	return _u
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableParticipantA(v *string) *BattleUpdate {
	if v != nil {
		_u.SetParticipantA(*v)
	}
	return _u
}

// ClearParticipantA clears the value of the "participant_a" field.
func (_u *BattleUpdate) ClearParticipantA() *BattleUpdate {
	_u.mutation.ClearParticipantA()
	return _u
}

// SetParticipantB sets the "participant_b" field.
func (_u *BattleUpdate) SetParticipantB(v string) *BattleUpdate {
	_u.mutation.SetParticipantB(v)
	return _u
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableParticipantB(v *string) *BattleUpdate {
	if v != nil {
		_u.SetParticipantB(*v)
	}
	return _u
}

// ClearParticipantB clears the value of the "participant_b" field.
func (_u *BattleUpdate) ClearParticipantB() *BattleUpdate {
	_u.mutation.ClearParticipantB()
	return _u
}

// SetSubmissionA sets the "submission_a" field.
func (_u *BattleUpdate) SetSubmissionA(v string) *BattleUpdate {
	_u.mutation.SetSubmissionA(v)
	return _u
}

// SetNillableSubmissionA sets the "submission_a" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableSubmissionA(v *string) *BattleUpdate {
	if v != nil {
		_u.SetSubmissionA(*v)
	}
	return _u
}

// ClearSubmissionA clears the value of the "submission_a" field.
func (_u *BattleUpdate) ClearSubmissionA() *BattleUpdate {
	_u.mutation.ClearSubmissionA()
	return _u
}

// SetSubmissionB sets the "submission_b" field.
func (_u *BattleUpdate) SetSubmissionB(v string) *BattleUpdate {
	_u.mutation.SetSubmissionB(v)
	return _u
}

// SetNillableSubmissionB sets the "submission_b" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableSubmissionB(v *string) *BattleUpdate {
	if v != nil {
		_u.SetSubmissionB(*v)
	}
	return _u
}

// ClearSubmissionB clears the value of the "submission_b" field.
func (_u *BattleUpdate) ClearSubmissionB() *BattleUpdate {
	_u.mutation.ClearSubmissionB()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BattleUpdate) SetStatus(v battle.Status) *BattleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableStatus(v *battle.Status) *BattleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponseDeadline sets the "response_deadline" field.
func (_u *BattleUpdate) SetResponseDeadline(v time.Time) *BattleUpdate {
	_u.mutation.SetResponseDeadline(v)
	return _u
}

// SetNillableResponseDeadline sets the "response_deadline" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableResponseDeadline(v *time.Time) *BattleUpdate {
	if v != nil {
		_u.SetResponseDeadline(*v)
	}
	return _u
}

// ClearResponseDeadline clears the value of the "response_deadline" field.
func (_u *BattleUpdate) ClearResponseDeadline() *BattleUpdate {
	_u.mutation.ClearResponseDeadline()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *BattleUpdate) SetStartsAt(v time.Time) *BattleUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableStartsAt(v *time.Time) *BattleUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (_u *BattleUpdate) ClearStartsAt() *BattleUpdate {
	_u.mutation.ClearStartsAt()
	return _u
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (_u *BattleUpdate) SetVotingEndsAt(v time.Time) *BattleUpdate {
	_u.mutation.SetVotingEndsAt(v)
	return _u
}

// SetNillableVotingEndsAt sets the "voting_ends_at" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableVotingEndsAt(v *time.Time) *BattleUpdate {
	if v != nil {
		_u.SetVotingEndsAt(*v)
	}
	return _u
}

// ClearVotingEndsAt clears the value of the "voting_ends_at" field.
func (_u *BattleUpdate) ClearVotingEndsAt() *BattleUpdate {
	_u.mutation.ClearVotingEndsAt()
	return _u
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (_u *BattleUpdate) SetCustomDurationDays(v int) *BattleUpdate {
	_u.mutation.ResetCustomDurationDays()
	_u.mutation.SetCustomDurationDays(v)
	return _u
}

// SetNillableCustomDurationDays sets the "custom_duration_days" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableCustomDurationDays(v *int) *BattleUpdate {
	if v != nil {
		_u.SetCustomDurationDays(*v)
	}
	return _u
}

// AddCustomDurationDays adds value to the "custom_duration_days" field.
func (_u *BattleUpdate) AddCustomDurationDays(v int) *BattleUpdate {
	_u.mutation.AddCustomDurationDays(v)
	return _u
}

// ClearCustomDurationDays clears the value of the "custom_duration_days" field.
func (_u *BattleUpdate) ClearCustomDurationDays() *BattleUpdate {
	_u.mutation.ClearCustomDurationDays()
	return _u
}

// SetExtensionCount sets the "extension_count" field.
func (_u *BattleUpdate) SetExtensionCount(v int) *BattleUpdate {
	_u.mutation.ResetExtensionCount()
	_u.mutation.SetExtensionCount(v)
	return _u
}

// SetNillableExtensionCount sets the "extension_count" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableExtensionCount(v *int) *BattleUpdate {
	if v != nil {
		_u.SetExtensionCount(*v)
	}
	return _u
}

// AddExtensionCount adds value to the "extension_count" field.
func (_u *BattleUpdate) AddExtensionCount(v int) *BattleUpdate {
	_u.mutation.AddExtensionCount(v)
	return _u
}

// SetVotesA sets the "votes_a" field.
func (_u *BattleUpdate) SetVotesA(v int) *BattleUpdate {
	_u.mutation.ResetVotesA()
	_u.mutation.SetVotesA(v)
	return _u
}

// SetNillableVotesA sets the "votes_a" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableVotesA(v *int) *BattleUpdate {
	if v != nil {
		_u.SetVotesA(*v)
	}
	return _u
}

// AddVotesA adds value to the "votes_a" field.
func (_u *BattleUpdate) AddVotesA(v int) *BattleUpdate {
	_u.mutation.AddVotesA(v)
	return _u
}

// SetVotesB sets the "votes_b" field.
func (_u *BattleUpdate) SetVotesB(v int) *BattleUpdate {
	_u.mutation.ResetVotesB()
	_u.mutation.SetVotesB(v)
	return _u
}

// SetNillableVotesB sets the "votes_b" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableVotesB(v *int) *BattleUpdate {
	if v != nil {
		_u.SetVotesB(*v)
	}
	return _u
}

// AddVotesB adds value to the "votes_b" field.
func (_u *BattleUpdate) AddVotesB(v int) *BattleUpdate {
	_u.mutation.AddVotesB(v)
	return _u
}

// SetWinner sets the "winner" field.
func (_u *BattleUpdate) SetWinner(v string) *BattleUpdate {
	_u.mutation.SetWinner(v)
	return _u
}

// SetNillableWinner sets the "winner" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableWinner(v *string) *BattleUpdate {
	if v != nil {
		_u.SetWinner(*v)
	}
	return _u
}

// ClearWinner clears the value of the "winner" field.
func (_u *BattleUpdate) ClearWinner() *BattleUpdate {
	_u.mutation.ClearWinner()
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *BattleUpdate) SetAcceptedAt(v time.Time) *BattleUpdate {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableAcceptedAt(v *time.Time) *BattleUpdate {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *BattleUpdate) ClearAcceptedAt() *BattleUpdate {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *BattleUpdate) SetRejectedAt(v time.Time) *BattleUpdate {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableRejectedAt(v *time.Time) *BattleUpdate {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *BattleUpdate) ClearRejectedAt() *BattleUpdate {
	_u.mutation.ClearRejectedAt()
	return _u
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (_u *BattleUpdate) SetAdminValidatedAt(v time.Time) *BattleUpdate {
	_u.mutation.SetAdminValidatedAt(v)
	return _u
}

// SetNillableAdminValidatedAt sets the "admin_validated_at" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableAdminValidatedAt(v *time.Time) *BattleUpdate {
	if v != nil {
		_u.SetAdminValidatedAt(*v)
	}
	return _u
}

// ClearAdminValidatedAt clears the value of the "admin_validated_at" field.
func (_u *BattleUpdate) ClearAdminValidatedAt() *BattleUpdate {
	_u.mutation.ClearAdminValidatedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *BattleUpdate) SetRejectionReason(v string) *BattleUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *BattleUpdate) SetNillableRejectionReason(v *string) *BattleUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *BattleUpdate) ClearRejectionReason() *BattleUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// Mutation returns the BattleMutation object of the builder.
func (_u *BattleUpdate) Mutation() *BattleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BattleUpdate) Save(ctx context.Context) (int, error) {
	if err := _u.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BattleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BattleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BattleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BattleUpdate) defaults() error {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		if battle.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized battle.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := battle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (_u *BattleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := battle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Battle.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtensionCount(); ok {
		if err := battle.ExtensionCountValidator(v); err != nil {
			return &ValidationError{Name: "extension_count", err: fmt.Errorf(`ent: validator failed for field "Battle.extension_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VotesA(); ok {
		if err := battle.VotesAValidator(v); err != nil {
			return &ValidationError{Name: "votes_a", err: fmt.Errorf(`ent: validator failed for field "Battle.votes_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VotesB(); ok {
		if err := battle.VotesBValidator(v); err != nil {
			return &ValidationError{Name: "votes_b", err: fmt.Errorf(`ent: validator failed for field "Battle.votes_b": %w`, err)}
		}
	}
	return nil
}

func (_u *BattleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(battle.Table, battle.Columns, sqlgraph.NewFieldSpec(battle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(battle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParticipantA(); ok {
		_spec.SetField(battle.FieldParticipantA, field.TypeString, value)
	}
	if _u.mutation.ParticipantACleared() {
		_spec.ClearField(battle.FieldParticipantA, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantB(); ok {
		_spec.SetField(battle.FieldParticipantB, field.TypeString, value)
	}
	if _u.mutation.ParticipantBCleared() {
		_spec.ClearField(battle.FieldParticipantB, field.TypeString)
	}
	if value, ok := _u.mutation.SubmissionA(); ok {
		_spec.SetField(battle.FieldSubmissionA, field.TypeString, value)
	}
	if _u.mutation.SubmissionACleared() {
		_spec.ClearField(battle.FieldSubmissionA, field.TypeString)
	}
	if value, ok := _u.mutation.SubmissionB(); ok {
		_spec.SetField(battle.FieldSubmissionB, field.TypeString, value)
	}
	if _u.mutation.SubmissionBCleared() {
		_spec.ClearField(battle.FieldSubmissionB, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(battle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseDeadline(); ok {
		_spec.SetField(battle.FieldResponseDeadline, field.TypeTime, value)
	}
	if _u.mutation.ResponseDeadlineCleared() {
		_spec.ClearField(battle.FieldResponseDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(battle.FieldStartsAt, field.TypeTime, value)
	}
	if _u.mutation.StartsAtCleared() {
		_spec.ClearField(battle.FieldStartsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VotingEndsAt(); ok {
		_spec.SetField(battle.FieldVotingEndsAt, field.TypeTime, value)
	}
	if _u.mutation.VotingEndsAtCleared() {
		_spec.ClearField(battle.FieldVotingEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomDurationDays(); ok {
		_spec.SetField(battle.FieldCustomDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomDurationDays(); ok {
		_spec.AddField(battle.FieldCustomDurationDays, field.TypeInt, value)
	}
	if _u.mutation.CustomDurationDaysCleared() {
		_spec.ClearField(battle.FieldCustomDurationDays, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtensionCount(); ok {
		_spec.SetField(battle.FieldExtensionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtensionCount(); ok {
		_spec.AddField(battle.FieldExtensionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VotesA(); ok {
		_spec.SetField(battle.FieldVotesA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVotesA(); ok {
		_spec.AddField(battle.FieldVotesA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VotesB(); ok {
		_spec.SetField(battle.FieldVotesB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVotesB(); ok {
		_spec.AddField(battle.FieldVotesB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Winner(); ok {
		_spec.SetField(battle.FieldWinner, field.TypeString, value)
	}
	if _u.mutation.WinnerCleared() {
		_spec.ClearField(battle.FieldWinner, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(battle.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(battle.FieldAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(battle.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(battle.FieldRejectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdminValidatedAt(); ok {
		_spec.SetField(battle.FieldAdminValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdminValidatedAtCleared() {
		_spec.ClearField(battle.FieldAdminValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(battle.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(battle.FieldRejectionReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{battle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BattleUpdateOne is the builder for updating a single Battle entity.
type BattleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BattleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BattleUpdateOne) SetUpdatedAt(v time.Time) *BattleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParticipantA sets the "participant_a" field.
func (_u *BattleUpdateOne) SetParticipantA(v string) *BattleUpdateOne {
	_u.mutation.SetParticipantA(v)
	return _u
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableParticipantA(v *string) *BattleUpdateOne {
	if v != nil {
		_u.SetParticipantA(*v)
	}
	return _u
}

// ClearParticipantA clears the value of the "participant_a" field.
func (_u *BattleUpdateOne) ClearParticipantA() *BattleUpdateOne {
	_u.mutation.ClearParticipantA()
	return _u
}

// SetParticipantB sets the "participant_b" field.
func (_u *BattleUpdateOne) SetParticipantB(v string) *BattleUpdateOne {
	_u.mutation.SetParticipantB(v)
	return _u
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableParticipantB(v *string) *BattleUpdateOne {
	if v != nil {
		_u.SetParticipantB(*v)
	}
	return _u
}

// ClearParticipantB clears the value of the "participant_b" field.
func (_u *BattleUpdateOne) ClearParticipantB() *BattleUpdateOne {
	_u.mutation.ClearParticipantB()
	return _u
}

// SetSubmissionA sets the "submission_a" field.
func (_u *BattleUpdateOne) SetSubmissionA(v string) *BattleUpdateOne {
	_u.mutation.SetSubmissionA(v)
	return _u
}

// SetNillableSubmissionA sets the "submission_a" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableSubmissionA(v *string) *BattleUpdateOne {
	if v != nil {
		_u.SetSubmissionA(*v)
	}
	return _u
}

// ClearSubmissionA clears the value of the "submission_a" field.
func (_u *BattleUpdateOne) ClearSubmissionA() *BattleUpdateOne {
	_u.mutation.ClearSubmissionA()
	return _u
}

// SetSubmissionB sets the "submission_b" field.
func (_u *BattleUpdateOne) SetSubmissionB(v string) *BattleUpdateOne {
	_u.mutation.SetSubmissionB(v)
	return _u
}

// SetNillableSubmissionB sets the "submission_b" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableSubmissionB(v *string) *BattleUpdateOne {
	if v != nil {
		_u.SetSubmissionB(*v)
	}
	return _u
}

// ClearSubmissionB clears the value of the "submission_b" field.
func (_u *BattleUpdateOne) ClearSubmissionB() *BattleUpdateOne {
	_u.mutation.ClearSubmissionB()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BattleUpdateOne) SetStatus(v battle.Status) *BattleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableStatus(v *battle.Status) *BattleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponseDeadline sets the "response_deadline" field.
func (_u *BattleUpdateOne) SetResponseDeadline(v time.Time) *BattleUpdateOne {
	_u.mutation.SetResponseDeadline(v)
	return _u
}

// SetNillableResponseDeadline sets the "response_deadline" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableResponseDeadline(v *time.Time) *BattleUpdateOne {
	if v != nil {
		_u.SetResponseDeadline(*v)
	}
	return _u
}

// ClearResponseDeadline clears the value of the "response_deadline" field.
func (_u *BattleUpdateOne) ClearResponseDeadline() *BattleUpdateOne {
	_u.mutation.ClearResponseDeadline()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *BattleUpdateOne) SetStartsAt(v time.Time) *BattleUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableStartsAt(v *time.Time) *BattleUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (_u *BattleUpdateOne) ClearStartsAt() *BattleUpdateOne {
	_u.mutation.ClearStartsAt()
	return _u
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (_u *BattleUpdateOne) SetVotingEndsAt(v time.Time) *BattleUpdateOne {
	_u.mutation.SetVotingEndsAt(v)
	return _u
}

// SetNillableVotingEndsAt sets the "voting_ends_at" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableVotingEndsAt(v *time.Time) *BattleUpdateOne {
	if v != nil {
		_u.SetVotingEndsAt(*v)
	}
	return _u
}

// ClearVotingEndsAt clears the value of the "voting_ends_at" field.
func (_u *BattleUpdateOne) ClearVotingEndsAt() *BattleUpdateOne {
	_u.mutation.ClearVotingEndsAt()
	return _u
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (_u *BattleUpdateOne) SetCustomDurationDays(v int) *BattleUpdateOne {
	_u.mutation.ResetCustomDurationDays()
	_u.mutation.SetCustomDurationDays(v)
	return _u
}

// SetNillableCustomDurationDays sets the "custom_duration_days" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableCustomDurationDays(v *int) *BattleUpdateOne {
	if v != nil {
		_u.SetCustomDurationDays(*v)
	}
	return _u
}

// AddCustomDurationDays adds value to the "custom_duration_days" field.
func (_u *BattleUpdateOne) AddCustomDurationDays(v int) *BattleUpdateOne {
	_u.mutation.AddCustomDurationDays(v)
	return _u
}

// ClearCustomDurationDays clears the value of the "custom_duration_days" field.
func (_u *BattleUpdateOne) ClearCustomDurationDays() *BattleUpdateOne {
	_u.mutation.ClearCustomDurationDays()
	return _u
}

// SetExtensionCount sets the "extension_count" field.
func (_u *BattleUpdateOne) SetExtensionCount(v int) *BattleUpdateOne {
	_u.mutation.ResetExtensionCount()
	_u.mutation.SetExtensionCount(v)
	return _u
}

// SetNillableExtensionCount sets the "extension_count" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableExtensionCount(v *int) *BattleUpdateOne {
	if v != nil {
		_u.SetExtensionCount(*v)
	}
	return _u
}

// AddExtensionCount adds value to the "extension_count" field.
func (_u *BattleUpdateOne) AddExtensionCount(v int) *BattleUpdateOne {
	_u.mutation.AddExtensionCount(v)
	return _u
}

// SetVotesA sets the "votes_a" field.
func (_u *BattleUpdateOne) SetVotesA(v int) *BattleUpdateOne {
	_u.mutation.ResetVotesA()
	_u.mutation.SetVotesA(v)
	return _u
}

// SetNillableVotesA sets the "votes_a" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableVotesA(v *int) *BattleUpdateOne {
	if v != nil {
		_u.SetVotesA(*v)
	}
	return _u
}

// AddVotesA adds value to the "votes_a" field.
func (_u *BattleUpdateOne) AddVotesA(v int) *BattleUpdateOne {
	_u.mutation.AddVotesA(v)
	return _u
}

// SetVotesB sets the "votes_b" field.
func (_u *BattleUpdateOne) SetVotesB(v int) *BattleUpdateOne {
	_u.mutation.ResetVotesB()
	_u.mutation.SetVotesB(v)
	return _u
}

// SetNillableVotesB sets the "votes_b" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableVotesB(v *int) *BattleUpdateOne {
	if v != nil {
		_u.SetVotesB(*v)
	}
	return _u
}

// AddVotesB adds value to the "votes_b" field.
func (_u *BattleUpdateOne) AddVotesB(v int) *BattleUpdateOne {
	_u.mutation.AddVotesB(v)
	return _u
}

// SetWinner sets the "winner" field.
func (_u *BattleUpdateOne) SetWinner(v string) *BattleUpdateOne {
	_u.mutation.SetWinner(v)
	return _u
}

// SetNillableWinner sets the "winner" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableWinner(v *string) *BattleUpdateOne {
	if v != nil {
		_u.SetWinner(*v)
	}
	return _u
}

// ClearWinner clears the value of the "winner" field.
func (_u *BattleUpdateOne) ClearWinner() *BattleUpdateOne {
	_u.mutation.ClearWinner()
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *BattleUpdateOne) SetAcceptedAt(v time.Time) *BattleUpdateOne {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableAcceptedAt(v *time.Time) *BattleUpdateOne {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *BattleUpdateOne) ClearAcceptedAt() *BattleUpdateOne {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *BattleUpdateOne) SetRejectedAt(v time.Time) *BattleUpdateOne {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableRejectedAt(v *time.Time) *BattleUpdateOne {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *BattleUpdateOne) ClearRejectedAt() *BattleUpdateOne {
	_u.mutation.ClearRejectedAt()
	return _u
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (_u *BattleUpdateOne) SetAdminValidatedAt(v time.Time) *BattleUpdateOne {
	_u.mutation.SetAdminValidatedAt(v)
	return _u
}

// SetNillableAdminValidatedAt sets the "admin_validated_at" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableAdminValidatedAt(v *time.Time) *BattleUpdateOne {
	if v != nil {
		_u.SetAdminValidatedAt(*v)
	}
	return _u
}

// ClearAdminValidatedAt clears the value of the "admin_validated_at" field.
func (_u *BattleUpdateOne) ClearAdminValidatedAt() *BattleUpdateOne {
	_u.mutation.ClearAdminValidatedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *BattleUpdateOne) SetRejectionReason(v string) *BattleUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *BattleUpdateOne) SetNillableRejectionReason(v *string) *BattleUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *BattleUpdateOne) ClearRejectionReason() *BattleUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// Mutation returns the BattleMutation object of the builder.
func (_u *BattleUpdateOne) Mutation() *BattleMutation {
	return _u.mutation
}

// Where appends a list predicates to the BattleUpdate builder.
func (_u *BattleUpdateOne) Where(ps ...predicate.Battle) *BattleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BattleUpdateOne) Select(field string, fields ...string) *BattleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Battle entity.
func (_u *BattleUpdateOne) Save(ctx context.Context) (*Battle, error) {
	if err := _u.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BattleUpdateOne) SaveX(ctx context.Context) *Battle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BattleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BattleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BattleUpdateOne) defaults() error {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		if battle.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized battle.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := battle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (_u *BattleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := battle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Battle.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtensionCount(); ok {
		if err := battle.ExtensionCountValidator(v); err != nil {
			return &ValidationError{Name: "extension_count", err: fmt.Errorf(`ent: validator failed for field "Battle.extension_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VotesA(); ok {
		if err := battle.VotesAValidator(v); err != nil {
			return &ValidationError{Name: "votes_a", err: fmt.Errorf(`ent: validator failed for field "Battle.votes_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VotesB(); ok {
		if err := battle.VotesBValidator(v); err != nil {
			return &ValidationError{Name: "votes_b", err: fmt.Errorf(`ent: validator failed for field "Battle.votes_b": %w`, err)}
		}
	}
	return nil
}

func (_u *BattleUpdateOne) sqlSave(ctx context.Context) (_node *Battle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(battle.Table, battle.Columns, sqlgraph.NewFieldSpec(battle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Battle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, battle.FieldID)
		for _, f := range fields {
			if !battle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != battle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(battle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParticipantA(); ok {
		_spec.SetField(battle.FieldParticipantA, field.TypeString, value)
	}
	if _u.mutation.ParticipantACleared() {
		_spec.ClearField(battle.FieldParticipantA, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantB(); ok {
		_spec.SetField(battle.FieldParticipantB, field.TypeString, value)
	}
	if _u.mutation.ParticipantBCleared() {
		_spec.ClearField(battle.FieldParticipantB, field.TypeString)
	}
	if value, ok := _u.mutation.SubmissionA(); ok {
		_spec.SetField(battle.FieldSubmissionA, field.TypeString, value)
	}
	if _u.mutation.SubmissionACleared() {
		_spec.ClearField(battle.FieldSubmissionA, field.TypeString)
	}
	if value, ok := _u.mutation.SubmissionB(); ok {
		_spec.SetField(battle.FieldSubmissionB, field.TypeString, value)
	}
	if _u.mutation.SubmissionBCleared() {
		_spec.ClearField(battle.FieldSubmissionB, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(battle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseDeadline(); ok {
		_spec.SetField(battle.FieldResponseDeadline, field.TypeTime, value)
	}
	if _u.mutation.ResponseDeadlineCleared() {
		_spec.ClearField(battle.FieldResponseDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(battle.FieldStartsAt, field.TypeTime, value)
	}
	if _u.mutation.StartsAtCleared() {
		_spec.ClearField(battle.FieldStartsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VotingEndsAt(); ok {
		_spec.SetField(battle.FieldVotingEndsAt, field.TypeTime, value)
	}
	if _u.mutation.VotingEndsAtCleared() {
		_spec.ClearField(battle.FieldVotingEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomDurationDays(); ok {
		_spec.SetField(battle.FieldCustomDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomDurationDays(); ok {
		_spec.AddField(battle.FieldCustomDurationDays, field.TypeInt, value)
	}
	if _u.mutation.CustomDurationDaysCleared() {
		_spec.ClearField(battle.FieldCustomDurationDays, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtensionCount(); ok {
		_spec.SetField(battle.FieldExtensionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtensionCount(); ok {
		_spec.AddField(battle.FieldExtensionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VotesA(); ok {
		_spec.SetField(battle.FieldVotesA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVotesA(); ok {
		_spec.AddField(battle.FieldVotesA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VotesB(); ok {
		_spec.SetField(battle.FieldVotesB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVotesB(); ok {
		_spec.AddField(battle.FieldVotesB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Winner(); ok {
		_spec.SetField(battle.FieldWinner, field.TypeString, value)
	}
	if _u.mutation.WinnerCleared() {
		_spec.ClearField(battle.FieldWinner, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(battle.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(battle.FieldAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(battle.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(battle.FieldRejectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdminValidatedAt(); ok {
		_spec.SetField(battle.FieldAdminValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdminValidatedAtCleared() {
		_spec.ClearField(battle.FieldAdminValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(battle.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(battle.FieldRejectionReason, field.TypeString)
	}
	_node = &Battle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{battle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
