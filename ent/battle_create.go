// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"versus-arena.io/arena/ent/battle"
)

// BattleCreate is the builder for creating a Battle entity.
type BattleCreate struct {
	config
	mutation *BattleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BattleCreate) SetCreatedAt(v time.Time) *BattleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableCreatedAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BattleCreate) SetUpdatedAt(v time.Time) *BattleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableUpdatedAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *BattleCreate) SetSlug(v string) *BattleCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetParticipantA sets the "participant_a" field.
func (_c *BattleCreate) SetParticipantA(v string) *BattleCreate {
	_c.mutation.SetParticipantA(v)
	return _c
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_c *BattleCreate) SetNillableParticipantA(v *string) *BattleCreate {
	if v != nil {
		_c.SetParticipantA(*v)
	}
	return _c
}

// SetParticipantB sets the "participant_b" field.
func (_c *BattleCreate) SetParticipantB(v string) *BattleCreate {
	_c.mutation.SetParticipantB(v)
	return _c
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_c *BattleCreate) SetNillableParticipantB(v *string) *BattleCreate {
	if v != nil {
		_c.SetParticipantB(*v)
	}
	return _c
}

// SetSubmissionA sets the "submission_a" field.
func (_c *BattleCreate) SetSubmissionA(v string) *BattleCreate {
	_c.mutation.SetSubmissionA(v)
	return _c
}

// SetNillableSubmissionA sets the "submission_a" field if the given value is not nil.
func (_c *BattleCreate) SetNillableSubmissionA(v *string) *BattleCreate {
	if v != nil {
		_c.SetSubmissionA(*v)
	}
	return _c
}

// SetSubmissionB sets the "submission_b" field.
func (_c *BattleCreate) SetSubmissionB(v string) *BattleCreate {
	_c.mutation.SetSubmissionB(v)
	return _c
}

// SetNillableSubmissionB sets the "submission_b" field if the given value is not nil.
func (_c *BattleCreate) SetNillableSubmissionB(v *string) *BattleCreate {
	if v != nil {
		_c.SetSubmissionB(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BattleCreate) SetStatus(v battle.Status) *BattleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BattleCreate) SetNillableStatus(v *battle.Status) *BattleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResponseDeadline sets the "response_deadline" field.
func (_c *BattleCreate) SetResponseDeadline(v time.Time) *BattleCreate {
	_c.mutation.SetResponseDeadline(v)
	return _c
}

// SetNillableResponseDeadline sets the "response_deadline" field if the given value is not nil.
func (_c *BattleCreate) SetNillableResponseDeadline(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetResponseDeadline(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *BattleCreate) SetStartsAt(v time.Time) *BattleCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableStartsAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetStartsAt(*v)
	}
	return _c
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (_c *BattleCreate) SetVotingEndsAt(v time.Time) *BattleCreate {
	_c.mutation.SetVotingEndsAt(v)
	return _c
}

// SetNillableVotingEndsAt sets the "voting_ends_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableVotingEndsAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetVotingEndsAt(*v)
	}
	return _c
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (_c *BattleCreate) SetCustomDurationDays(v int) *BattleCreate {
	_c.mutation.SetCustomDurationDays(v)
	return _c
}

// SetNillableCustomDurationDays sets the "custom_duration_days" field if the given value is not nil.
func (_c *BattleCreate) SetNillableCustomDurationDays(v *int) *BattleCreate {
	if v != nil {
		_c.SetCustomDurationDays(*v)
	}
	return _c
}

// SetExtensionCount sets the "extension_count" field.
func (_c *BattleCreate) SetExtensionCount(v int) *BattleCreate {
	_c.mutation.SetExtensionCount(v)
	return _c
}

// SetNillableExtensionCount sets the "extension_count" field if the given value is not nil.
func (_c *BattleCreate) SetNillableExtensionCount(v *int) *BattleCreate {
	if v != nil {
		_c.SetExtensionCount(*v)
	}
	return _c
}

// SetVotesA sets the "votes_a" field.
func (_c *BattleCreate) SetVotesA(v int) *BattleCreate {
	_c.mutation.SetVotesA(v)
	return _c
}

// SetNillableVotesA sets the "votes_a" field if the given value is not nil.
func (_c *BattleCreate) SetNillableVotesA(v *int) *BattleCreate {
	if v != nil {
		_c.SetVotesA(*v)
	}
	return _c
}

// SetVotesB sets the "votes_b" field.
func (_c *BattleCreate) SetVotesB(v int) *BattleCreate {
	_c.mutation.SetVotesB(v)
	return _c
}

// SetNillableVotesB sets the "votes_b" field if the given value is not nil.
func (_c *BattleCreate) SetNillableVotesB(v *int) *BattleCreate {
	if v != nil {
		_c.SetVotesB(*v)
	}
	return _c
}

// SetWinner sets the "winner" field.
func (_c *BattleCreate) SetWinner(v string) *BattleCreate {
	_c.mutation.SetWinner(v)
	return _c
}

// SetNillableWinner sets the "winner" field if the given value is not nil.
func (_c *BattleCreate) SetNillableWinner(v *string) *BattleCreate {
	if v != nil {
		_c.SetWinner(*v)
	}
	return _c
}

// SetAcceptedAt sets the "accepted_at" field.
func (_c *BattleCreate) SetAcceptedAt(v time.Time) *BattleCreate {
	_c.mutation.SetAcceptedAt(v)
	return _c
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableAcceptedAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetAcceptedAt(*v)
	}
	return _c
}

// SetRejectedAt sets the "rejected_at" field.
func (_c *BattleCreate) SetRejectedAt(v time.Time) *BattleCreate {
	_c.mutation.SetRejectedAt(v)
	return _c
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableRejectedAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetRejectedAt(*v)
	}
	return _c
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (_c *BattleCreate) SetAdminValidatedAt(v time.Time) *BattleCreate {
	_c.mutation.SetAdminValidatedAt(v)
	return _c
}

// SetNillableAdminValidatedAt sets the "admin_validated_at" field if the given value is not nil.
func (_c *BattleCreate) SetNillableAdminValidatedAt(v *time.Time) *BattleCreate {
	if v != nil {
		_c.SetAdminValidatedAt(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *BattleCreate) SetRejectionReason(v string) *BattleCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *BattleCreate) SetNillableRejectionReason(v *string) *BattleCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *BattleCreate) SetCreatedBy(v string) *BattleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BattleCreate) SetID(v string) *BattleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BattleMutation object of the builder.
func (_c *BattleCreate) Mutation() *BattleMutation {
	return _c.mutation
}

// Save creates the Battle in the database.
func (_c *BattleCreate) Save(ctx context.Context) (*Battle, error) {
	if err := _c.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BattleCreate) SaveX(ctx context.Context) *Battle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BattleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BattleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BattleCreate) defaults() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		if battle.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized battle.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := battle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		if battle.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized battle.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := battle.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := battle.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtensionCount(); !ok {
		v := battle.DefaultExtensionCount
		_c.mutation.SetExtensionCount(v)
	}
	if _, ok := _c.mutation.VotesA(); !ok {
		v := battle.DefaultVotesA
		_c.mutation.SetVotesA(v)
	}
	if _, ok := _c.mutation.VotesB(); !ok {
		v := battle.DefaultVotesB
		_c.mutation.SetVotesB(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (_c *BattleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Battle.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Battle.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Battle.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := battle.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Battle.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Battle.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := battle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Battle.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtensionCount(); !ok {
		return &ValidationError{Name: "extension_count", err: errors.New(`ent: missing required field "Battle.extension_count"`)}
	}
	if v, ok := _c.mutation.ExtensionCount(); ok {
		if err := battle.ExtensionCountValidator(v); err != nil {
			return &ValidationError{Name: "extension_count", err: fmt.Errorf(`ent: validator failed for field "Battle.extension_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VotesA(); !ok {
		return &ValidationError{Name: "votes_a", err: errors.New(`ent: missing required field "Battle.votes_a"`)}
	}
	if v, ok := _c.mutation.VotesA(); ok {
		if err := battle.VotesAValidator(v); err != nil {
			return &ValidationError{Name: "votes_a", err: fmt.Errorf(`ent: validator failed for field "Battle.votes_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VotesB(); !ok {
		return &ValidationError{Name: "votes_b", err: errors.New(`ent: missing required field "Battle.votes_b"`)}
	}
	if v, ok := _c.mutation.VotesB(); ok {
		if err := battle.VotesBValidator(v); err != nil {
			return &ValidationError{Name: "votes_b", err: fmt.Errorf(`ent: validator failed for field "Battle.votes_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Battle.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := battle.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Battle.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *BattleCreate) sqlSave(ctx context.Context) (*Battle, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Battle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BattleCreate) createSpec() (*Battle, *sqlgraph.CreateSpec) {
	var (
		_node = &Battle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(battle.Table, sqlgraph.NewFieldSpec(battle.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(battle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(battle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(battle.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.ParticipantA(); ok {
		_spec.SetField(battle.FieldParticipantA, field.TypeString, value)
		_node.ParticipantA = value
	}
	if value, ok := _c.mutation.ParticipantB(); ok {
		_spec.SetField(battle.FieldParticipantB, field.TypeString, value)
		_node.ParticipantB = value
	}
	if value, ok := _c.mutation.SubmissionA(); ok {
		_spec.SetField(battle.FieldSubmissionA, field.TypeString, value)
		_node.SubmissionA = value
	}
	if value, ok := _c.mutation.SubmissionB(); ok {
		_spec.SetField(battle.FieldSubmissionB, field.TypeString, value)
		_node.SubmissionB = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(battle.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResponseDeadline(); ok {
		_spec.SetField(battle.FieldResponseDeadline, field.TypeTime, value)
		_node.ResponseDeadline = &value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(battle.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = &value
	}
	if value, ok := _c.mutation.VotingEndsAt(); ok {
		_spec.SetField(battle.FieldVotingEndsAt, field.TypeTime, value)
		_node.VotingEndsAt = &value
	}
	if value, ok := _c.mutation.CustomDurationDays(); ok {
		_spec.SetField(battle.FieldCustomDurationDays, field.TypeInt, value)
		_node.CustomDurationDays = &value
	}
	if value, ok := _c.mutation.ExtensionCount(); ok {
		_spec.SetField(battle.FieldExtensionCount, field.TypeInt, value)
		_node.ExtensionCount = value
	}
	if value, ok := _c.mutation.VotesA(); ok {
		_spec.SetField(battle.FieldVotesA, field.TypeInt, value)
		_node.VotesA = value
	}
	if value, ok := _c.mutation.VotesB(); ok {
		_spec.SetField(battle.FieldVotesB, field.TypeInt, value)
		_node.VotesB = value
	}
	if value, ok := _c.mutation.Winner(); ok {
		_spec.SetField(battle.FieldWinner, field.TypeString, value)
		_node.Winner = &value
	}
	if value, ok := _c.mutation.AcceptedAt(); ok {
		_spec.SetField(battle.FieldAcceptedAt, field.TypeTime, value)
		_node.AcceptedAt = &value
	}
	if value, ok := _c.mutation.RejectedAt(); ok {
		_spec.SetField(battle.FieldRejectedAt, field.TypeTime, value)
		_node.RejectedAt = &value
	}
	if value, ok := _c.mutation.AdminValidatedAt(); ok {
		_spec.SetField(battle.FieldAdminValidatedAt, field.TypeTime, value)
		_node.AdminValidatedAt = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(battle.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(battle.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Battle.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BattleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BattleCreate) OnConflict(opts ...sql.ConflictOption) *BattleUpsertOne {
	_c.conflict = opts
	return &BattleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Battle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BattleCreate) OnConflictColumns(columns ...string) *BattleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BattleUpsertOne{
		create: _c,
	}
}

type (
	// BattleUpsertOne is the builder for "upsert"-ing
	//  one Battle node.
	BattleUpsertOne struct {
		create *BattleCreate
	}

	// BattleUpsert is the "OnConflict" setter.
	BattleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BattleUpsert) SetUpdatedAt(v time.Time) *BattleUpsert {
	u.Set(battle.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BattleUpsert) UpdateUpdatedAt() *BattleUpsert {
	u.SetExcluded(battle.FieldUpdatedAt)
	return u
}

// SetParticipantA sets the "participant_a" field.
func (u *BattleUpsert) SetParticipantA(v string) *BattleUpsert {
	u.Set(battle.FieldParticipantA, v)
	return u
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *BattleUpsert) UpdateParticipantA() *BattleUpsert {
	u.SetExcluded(battle.FieldParticipantA)
	return u
}

// ClearParticipantA clears the value of the "participant_a" field.
func (u *BattleUpsert) ClearParticipantA() *BattleUpsert {
	u.SetNull(battle.FieldParticipantA)
	return u
}

// SetParticipantB sets the "participant_b" field.
func (u *BattleUpsert) SetParticipantB(v string) *BattleUpsert {
	u.Set(battle.FieldParticipantB, v)
	return u
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *BattleUpsert) UpdateParticipantB() *BattleUpsert {
	u.SetExcluded(battle.FieldParticipantB)
	return u
}

// ClearParticipantB clears the value of the "participant_b" field.
func (u *BattleUpsert) ClearParticipantB() *BattleUpsert {
	u.SetNull(battle.FieldParticipantB)
	return u
}

// SetSubmissionA sets the "submission_a" field.
func (u *BattleUpsert) SetSubmissionA(v string) *BattleUpsert {
	u.Set(battle.FieldSubmissionA, v)
	return u
}

// UpdateSubmissionA sets the "submission_a" field to the value that was provided on create.
func (u *BattleUpsert) UpdateSubmissionA() *BattleUpsert {
	u.SetExcluded(battle.FieldSubmissionA)
	return u
}

// ClearSubmissionA clears the value of the "submission_a" field.
func (u *BattleUpsert) ClearSubmissionA() *BattleUpsert {
	u.SetNull(battle.FieldSubmissionA)
	return u
}

// SetSubmissionB sets the "submission_b" field.
func (u *BattleUpsert) SetSubmissionB(v string) *BattleUpsert {
	u.Set(battle.FieldSubmissionB, v)
	return u
}

// UpdateSubmissionB sets the "submission_b" field to the value that was provided on create.
func (u *BattleUpsert) UpdateSubmissionB() *BattleUpsert {
	u.SetExcluded(battle.FieldSubmissionB)
	return u
}

// ClearSubmissionB clears the value of the "submission_b" field.
func (u *BattleUpsert) ClearSubmissionB() *BattleUpsert {
	u.SetNull(battle.FieldSubmissionB)
	return u
}

// SetStatus sets the "status" field.
func (u *BattleUpsert) SetStatus(v battle.Status) *BattleUpsert {
	u.Set(battle.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BattleUpsert) UpdateStatus() *BattleUpsert {
	u.SetExcluded(battle.FieldStatus)
	return u
}

// SetResponseDeadline sets the "response_deadline" field.
func (u *BattleUpsert) SetResponseDeadline(v time.Time) *BattleUpsert {
	u.Set(battle.FieldResponseDeadline, v)
	return u
}

// UpdateResponseDeadline sets the "response_deadline" field to the value that was provided on create.
func (u *BattleUpsert) UpdateResponseDeadline() *BattleUpsert {
	u.SetExcluded(battle.FieldResponseDeadline)
	return u
}

// ClearResponseDeadline clears the value of the "response_deadline" field.
func (u *BattleUpsert) ClearResponseDeadline() *BattleUpsert {
	u.SetNull(battle.FieldResponseDeadline)
	return u
}

// SetStartsAt sets the "starts_at" field.
func (u *BattleUpsert) SetStartsAt(v time.Time) *BattleUpsert {
	u.Set(battle.FieldStartsAt, v)
	return u
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *BattleUpsert) UpdateStartsAt() *BattleUpsert {
	u.SetExcluded(battle.FieldStartsAt)
	return u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (u *BattleUpsert) ClearStartsAt() *BattleUpsert {
	u.SetNull(battle.FieldStartsAt)
	return u
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (u *BattleUpsert) SetVotingEndsAt(v time.Time) *BattleUpsert {
	u.Set(battle.FieldVotingEndsAt, v)
	return u
}

// UpdateVotingEndsAt sets the "voting_ends_at" field to the value that was provided on create.
func (u *BattleUpsert) UpdateVotingEndsAt() *BattleUpsert {
	u.SetExcluded(battle.FieldVotingEndsAt)
	return u
}

// ClearVotingEndsAt clears the value of the "voting_ends_at" field.
func (u *BattleUpsert) ClearVotingEndsAt() *BattleUpsert {
	u.SetNull(battle.FieldVotingEndsAt)
	return u
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (u *BattleUpsert) SetCustomDurationDays(v int) *BattleUpsert {
	u.Set(battle.FieldCustomDurationDays, v)
	return u
}

// UpdateCustomDurationDays sets the "custom_duration_days" field to the value that was provided on create.
func (u *BattleUpsert) UpdateCustomDurationDays() *BattleUpsert {
	u.SetExcluded(battle.FieldCustomDurationDays)
	return u
}

// AddCustomDurationDays adds v to the "custom_duration_days" field.
func (u *BattleUpsert) AddCustomDurationDays(v int) *BattleUpsert {
	u.Add(battle.FieldCustomDurationDays, v)
	return u
}

// ClearCustomDurationDays clears the value of the "custom_duration_days" field.
func (u *BattleUpsert) ClearCustomDurationDays() *BattleUpsert {
	u.SetNull(battle.FieldCustomDurationDays)
	return u
}

// SetExtensionCount sets the "extension_count" field.
func (u *BattleUpsert) SetExtensionCount(v int) *BattleUpsert {
	u.Set(battle.FieldExtensionCount, v)
	return u
}

// UpdateExtensionCount sets the "extension_count" field to the value that was provided on create.
func (u *BattleUpsert) UpdateExtensionCount() *BattleUpsert {
	u.SetExcluded(battle.FieldExtensionCount)
	return u
}

// AddExtensionCount adds v to the "extension_count" field.
func (u *BattleUpsert) AddExtensionCount(v int) *BattleUpsert {
	u.Add(battle.FieldExtensionCount, v)
	return u
}

// SetVotesA sets the "votes_a" field.
func (u *BattleUpsert) SetVotesA(v int) *BattleUpsert {
	u.Set(battle.FieldVotesA, v)
	return u
}

// UpdateVotesA sets the "votes_a" field to the value that was provided on create.
func (u *BattleUpsert) UpdateVotesA() *BattleUpsert {
	u.SetExcluded(battle.FieldVotesA)
	return u
}

// AddVotesA adds v to the "votes_a" field.
func (u *BattleUpsert) AddVotesA(v int) *BattleUpsert {
	u.Add(battle.FieldVotesA, v)
	return u
}

// SetVotesB sets the "votes_b" field.
func (u *BattleUpsert) SetVotesB(v int) *BattleUpsert {
	u.Set(battle.FieldVotesB, v)
	return u
}

// UpdateVotesB sets the "votes_b" field to the value that was provided on create.
func (u *BattleUpsert) UpdateVotesB() *BattleUpsert {
	u.SetExcluded(battle.FieldVotesB)
	return u
}

// AddVotesB adds v to the "votes_b" field.
func (u *BattleUpsert) AddVotesB(v int) *BattleUpsert {
	u.Add(battle.FieldVotesB, v)
	return u
}

// SetWinner sets the "winner" field.
func (u *BattleUpsert) SetWinner(v string) *BattleUpsert {
	u.Set(battle.FieldWinner, v)
	return u
}

// UpdateWinner sets the "winner" field to the value that was provided on create.
func (u *BattleUpsert) UpdateWinner() *BattleUpsert {
	u.SetExcluded(battle.FieldWinner)
	return u
}

// ClearWinner clears the value of the "winner" field.
func (u *BattleUpsert) ClearWinner() *BattleUpsert {
	u.SetNull(battle.FieldWinner)
	return u
}

// SetAcceptedAt sets the "accepted_at" field.
func (u *BattleUpsert) SetAcceptedAt(v time.Time) *BattleUpsert {
	u.Set(battle.FieldAcceptedAt, v)
	return u
}

// UpdateAcceptedAt sets the "accepted_at" field to the value that was provided on create.
func (u *BattleUpsert) UpdateAcceptedAt() *BattleUpsert {
	u.SetExcluded(battle.FieldAcceptedAt)
	return u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (u *BattleUpsert) ClearAcceptedAt() *BattleUpsert {
	u.SetNull(battle.FieldAcceptedAt)
	return u
}

// SetRejectedAt sets the "rejected_at" field.
func (u *BattleUpsert) SetRejectedAt(v time.Time) *BattleUpsert {
	u.Set(battle.FieldRejectedAt, v)
	return u
}

// UpdateRejectedAt sets the "rejected_at" field to the value that was provided on create.
func (u *BattleUpsert) UpdateRejectedAt() *BattleUpsert {
	u.SetExcluded(battle.FieldRejectedAt)
	return u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (u *BattleUpsert) ClearRejectedAt() *BattleUpsert {
	u.SetNull(battle.FieldRejectedAt)
	return u
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (u *BattleUpsert) SetAdminValidatedAt(v time.Time) *BattleUpsert {
	u.Set(battle.FieldAdminValidatedAt, v)
	return u
}

// UpdateAdminValidatedAt sets the "admin_validated_at" field to the value that was provided on create.
func (u *BattleUpsert) UpdateAdminValidatedAt() *BattleUpsert {
	u.SetExcluded(battle.FieldAdminValidatedAt)
	return u
}

// ClearAdminValidatedAt clears the value of the "admin_validated_at" field.
func (u *BattleUpsert) ClearAdminValidatedAt() *BattleUpsert {
	u.SetNull(battle.FieldAdminValidatedAt)
	return u
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *BattleUpsert) SetRejectionReason(v string) *BattleUpsert {
	u.Set(battle.FieldRejectionReason, v)
	return u
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *BattleUpsert) UpdateRejectionReason() *BattleUpsert {
	u.SetExcluded(battle.FieldRejectionReason)
	return u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *BattleUpsert) ClearRejectionReason() *BattleUpsert {
	u.SetNull(battle.FieldRejectionReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Battle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(battle.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BattleUpsertOne) UpdateNewValues() *BattleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(battle.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(battle.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Slug(); exists {
			s.SetIgnore(battle.FieldSlug)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(battle.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Battle.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BattleUpsertOne) Ignore() *BattleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BattleUpsertOne) DoNothing() *BattleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BattleCreate.OnConflict
// documentation for more info.
func (u *BattleUpsertOne) Update(set func(*BattleUpsert)) *BattleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BattleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BattleUpsertOne) SetUpdatedAt(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateUpdatedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetParticipantA sets the "participant_a" field.
func (u *BattleUpsertOne) SetParticipantA(v string) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetParticipantA(v)
	})
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateParticipantA() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateParticipantA()
	})
}

// ClearParticipantA clears the value of the "participant_a" field.
func (u *BattleUpsertOne) ClearParticipantA() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearParticipantA()
	})
}

// SetParticipantB sets the "participant_b" field.
func (u *BattleUpsertOne) SetParticipantB(v string) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetParticipantB(v)
	})
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateParticipantB() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateParticipantB()
	})
}

// ClearParticipantB clears the value of the "participant_b" field.
func (u *BattleUpsertOne) ClearParticipantB() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearParticipantB()
	})
}

// SetSubmissionA sets the "submission_a" field.
func (u *BattleUpsertOne) SetSubmissionA(v string) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetSubmissionA(v)
	})
}

// UpdateSubmissionA sets the "submission_a" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateSubmissionA() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateSubmissionA()
	})
}

// ClearSubmissionA clears the value of the "submission_a" field.
func (u *BattleUpsertOne) ClearSubmissionA() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearSubmissionA()
	})
}

// SetSubmissionB sets the "submission_b" field.
func (u *BattleUpsertOne) SetSubmissionB(v string) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetSubmissionB(v)
	})
}

// UpdateSubmissionB sets the "submission_b" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateSubmissionB() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateSubmissionB()
	})
}

// ClearSubmissionB clears the value of the "submission_b" field.
func (u *BattleUpsertOne) ClearSubmissionB() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearSubmissionB()
	})
}

// SetStatus sets the "status" field.
func (u *BattleUpsertOne) SetStatus(v battle.Status) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateStatus() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateStatus()
	})
}

// SetResponseDeadline sets the "response_deadline" field.
func (u *BattleUpsertOne) SetResponseDeadline(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetResponseDeadline(v)
	})
}

// UpdateResponseDeadline sets the "response_deadline" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateResponseDeadline() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateResponseDeadline()
	})
}

// ClearResponseDeadline clears the value of the "response_deadline" field.
func (u *BattleUpsertOne) ClearResponseDeadline() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearResponseDeadline()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *BattleUpsertOne) SetStartsAt(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateStartsAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateStartsAt()
	})
}

// ClearStartsAt clears the value of the "starts_at" field.
func (u *BattleUpsertOne) ClearStartsAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearStartsAt()
	})
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (u *BattleUpsertOne) SetVotingEndsAt(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetVotingEndsAt(v)
	})
}

// UpdateVotingEndsAt sets the "voting_ends_at" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateVotingEndsAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateVotingEndsAt()
	})
}

// ClearVotingEndsAt clears the value of the "voting_ends_at" field.
func (u *BattleUpsertOne) ClearVotingEndsAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearVotingEndsAt()
	})
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (u *BattleUpsertOne) SetCustomDurationDays(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetCustomDurationDays(v)
	})
}

// AddCustomDurationDays adds v to the "custom_duration_days" field.
func (u *BattleUpsertOne) AddCustomDurationDays(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.AddCustomDurationDays(v)
	})
}

// UpdateCustomDurationDays sets the "custom_duration_days" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateCustomDurationDays() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateCustomDurationDays()
	})
}

// ClearCustomDurationDays clears the value of the "custom_duration_days" field.
func (u *BattleUpsertOne) ClearCustomDurationDays() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearCustomDurationDays()
	})
}

// SetExtensionCount sets the "extension_count" field.
func (u *BattleUpsertOne) SetExtensionCount(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetExtensionCount(v)
	})
}

// AddExtensionCount adds v to the "extension_count" field.
func (u *BattleUpsertOne) AddExtensionCount(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.AddExtensionCount(v)
	})
}

// UpdateExtensionCount sets the "extension_count" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateExtensionCount() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateExtensionCount()
	})
}

// SetVotesA sets the "votes_a" field.
func (u *BattleUpsertOne) SetVotesA(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetVotesA(v)
	})
}

// AddVotesA adds v to the "votes_a" field.
func (u *BattleUpsertOne) AddVotesA(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.AddVotesA(v)
	})
}

// UpdateVotesA sets the "votes_a" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateVotesA() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateVotesA()
	})
}

// SetVotesB sets the "votes_b" field.
func (u *BattleUpsertOne) SetVotesB(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetVotesB(v)
	})
}

// AddVotesB adds v to the "votes_b" field.
func (u *BattleUpsertOne) AddVotesB(v int) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.AddVotesB(v)
	})
}

// UpdateVotesB sets the "votes_b" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateVotesB() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateVotesB()
	})
}

// SetWinner sets the "winner" field.
func (u *BattleUpsertOne) SetWinner(v string) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetWinner(v)
	})
}

// UpdateWinner sets the "winner" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateWinner() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateWinner()
	})
}

// ClearWinner clears the value of the "winner" field.
func (u *BattleUpsertOne) ClearWinner() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearWinner()
	})
}

// SetAcceptedAt sets the "accepted_at" field.
func (u *BattleUpsertOne) SetAcceptedAt(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetAcceptedAt(v)
	})
}

// UpdateAcceptedAt sets the "accepted_at" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateAcceptedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateAcceptedAt()
	})
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (u *BattleUpsertOne) ClearAcceptedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearAcceptedAt()
	})
}

// SetRejectedAt sets the "rejected_at" field.
func (u *BattleUpsertOne) SetRejectedAt(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetRejectedAt(v)
	})
}

// UpdateRejectedAt sets the "rejected_at" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateRejectedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateRejectedAt()
	})
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (u *BattleUpsertOne) ClearRejectedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearRejectedAt()
	})
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (u *BattleUpsertOne) SetAdminValidatedAt(v time.Time) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetAdminValidatedAt(v)
	})
}

// UpdateAdminValidatedAt sets the "admin_validated_at" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateAdminValidatedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateAdminValidatedAt()
	})
}

// ClearAdminValidatedAt clears the value of the "admin_validated_at" field.
func (u *BattleUpsertOne) ClearAdminValidatedAt() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearAdminValidatedAt()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *BattleUpsertOne) SetRejectionReason(v string) *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *BattleUpsertOne) UpdateRejectionReason() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *BattleUpsertOne) ClearRejectionReason() *BattleUpsertOne {
	return u.Update(func(s *BattleUpsert) {
		s.ClearRejectionReason()
	})
}

// Exec executes the query.
func (u *BattleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BattleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BattleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BattleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BattleUpsertOne.ID is not supported by MySQL driver. Use BattleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BattleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BattleCreateBulk is the builder for creating many Battle entities in bulk.
type BattleCreateBulk struct {
	config
	err      error
	builders []*BattleCreate
	conflict []sql.ConflictOption
}

// Save creates the Battle entities in the database.
func (_c *BattleCreateBulk) Save(ctx context.Context) ([]*Battle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Battle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BattleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BattleCreateBulk) SaveX(ctx context.Context) []*Battle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BattleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BattleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Battle.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BattleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BattleCreateBulk) OnConflict(opts ...sql.ConflictOption) *BattleUpsertBulk {
	_c.conflict = opts
	return &BattleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Battle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BattleCreateBulk) OnConflictColumns(columns ...string) *BattleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BattleUpsertBulk{
		create: _c,
	}
}

// BattleUpsertBulk is the builder for "upsert"-ing
// a bulk of Battle nodes.
type BattleUpsertBulk struct {
	create *BattleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Battle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(battle.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BattleUpsertBulk) UpdateNewValues() *BattleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(battle.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(battle.FieldCreatedAt)
			}
			if _, exists := b.mutation.Slug(); exists {
				s.SetIgnore(battle.FieldSlug)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(battle.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Battle.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BattleUpsertBulk) Ignore() *BattleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BattleUpsertBulk) DoNothing() *BattleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BattleCreateBulk.OnConflict
// documentation for more info.
func (u *BattleUpsertBulk) Update(set func(*BattleUpsert)) *BattleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BattleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BattleUpsertBulk) SetUpdatedAt(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateUpdatedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetParticipantA sets the "participant_a" field.
func (u *BattleUpsertBulk) SetParticipantA(v string) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetParticipantA(v)
	})
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateParticipantA() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateParticipantA()
	})
}

// ClearParticipantA clears the value of the "participant_a" field.
func (u *BattleUpsertBulk) ClearParticipantA() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearParticipantA()
	})
}

// SetParticipantB sets the "participant_b" field.
func (u *BattleUpsertBulk) SetParticipantB(v string) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetParticipantB(v)
	})
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateParticipantB() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateParticipantB()
	})
}

// ClearParticipantB clears the value of the "participant_b" field.
func (u *BattleUpsertBulk) ClearParticipantB() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearParticipantB()
	})
}

// SetSubmissionA sets the "submission_a" field.
func (u *BattleUpsertBulk) SetSubmissionA(v string) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetSubmissionA(v)
	})
}

// UpdateSubmissionA sets the "submission_a" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateSubmissionA() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateSubmissionA()
	})
}

// ClearSubmissionA clears the value of the "submission_a" field.
func (u *BattleUpsertBulk) ClearSubmissionA() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearSubmissionA()
	})
}

// SetSubmissionB sets the "submission_b" field.
func (u *BattleUpsertBulk) SetSubmissionB(v string) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetSubmissionB(v)
	})
}

// UpdateSubmissionB sets the "submission_b" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateSubmissionB() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateSubmissionB()
	})
}

// ClearSubmissionB clears the value of the "submission_b" field.
func (u *BattleUpsertBulk) ClearSubmissionB() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearSubmissionB()
	})
}

// SetStatus sets the "status" field.
func (u *BattleUpsertBulk) SetStatus(v battle.Status) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateStatus() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateStatus()
	})
}

// SetResponseDeadline sets the "response_deadline" field.
func (u *BattleUpsertBulk) SetResponseDeadline(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetResponseDeadline(v)
	})
}

// UpdateResponseDeadline sets the "response_deadline" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateResponseDeadline() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateResponseDeadline()
	})
}

// ClearResponseDeadline clears the value of the "response_deadline" field.
func (u *BattleUpsertBulk) ClearResponseDeadline() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearResponseDeadline()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *BattleUpsertBulk) SetStartsAt(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateStartsAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateStartsAt()
	})
}

// ClearStartsAt clears the value of the "starts_at" field.
func (u *BattleUpsertBulk) ClearStartsAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearStartsAt()
	})
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (u *BattleUpsertBulk) SetVotingEndsAt(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetVotingEndsAt(v)
	})
}

// UpdateVotingEndsAt sets the "voting_ends_at" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateVotingEndsAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateVotingEndsAt()
	})
}

// ClearVotingEndsAt clears the value of the "voting_ends_at" field.
func (u *BattleUpsertBulk) ClearVotingEndsAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearVotingEndsAt()
	})
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (u *BattleUpsertBulk) SetCustomDurationDays(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetCustomDurationDays(v)
	})
}

// AddCustomDurationDays adds v to the "custom_duration_days" field.
func (u *BattleUpsertBulk) AddCustomDurationDays(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.AddCustomDurationDays(v)
	})
}

// UpdateCustomDurationDays sets the "custom_duration_days" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateCustomDurationDays() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateCustomDurationDays()
	})
}

// ClearCustomDurationDays clears the value of the "custom_duration_days" field.
func (u *BattleUpsertBulk) ClearCustomDurationDays() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearCustomDurationDays()
	})
}

// SetExtensionCount sets the "extension_count" field.
func (u *BattleUpsertBulk) SetExtensionCount(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetExtensionCount(v)
	})
}

// AddExtensionCount adds v to the "extension_count" field.
func (u *BattleUpsertBulk) AddExtensionCount(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.AddExtensionCount(v)
	})
}

// UpdateExtensionCount sets the "extension_count" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateExtensionCount() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateExtensionCount()
	})
}

// SetVotesA sets the "votes_a" field.
func (u *BattleUpsertBulk) SetVotesA(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetVotesA(v)
	})
}

// AddVotesA adds v to the "votes_a" field.
func (u *BattleUpsertBulk) AddVotesA(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.AddVotesA(v)
	})
}

// UpdateVotesA sets the "votes_a" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateVotesA() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateVotesA()
	})
}

// SetVotesB sets the "votes_b" field.
func (u *BattleUpsertBulk) SetVotesB(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetVotesB(v)
	})
}

// AddVotesB adds v to the "votes_b" field.
func (u *BattleUpsertBulk) AddVotesB(v int) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.AddVotesB(v)
	})
}

// UpdateVotesB sets the "votes_b" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateVotesB() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateVotesB()
	})
}

// SetWinner sets the "winner" field.
func (u *BattleUpsertBulk) SetWinner(v string) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetWinner(v)
	})
}

// UpdateWinner sets the "winner" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateWinner() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateWinner()
	})
}

// ClearWinner clears the value of the "winner" field.
func (u *BattleUpsertBulk) ClearWinner() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearWinner()
	})
}

// SetAcceptedAt sets the "accepted_at" field.
func (u *BattleUpsertBulk) SetAcceptedAt(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetAcceptedAt(v)
	})
}

// UpdateAcceptedAt sets the "accepted_at" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateAcceptedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateAcceptedAt()
	})
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (u *BattleUpsertBulk) ClearAcceptedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearAcceptedAt()
	})
}

// SetRejectedAt sets the "rejected_at" field.
func (u *BattleUpsertBulk) SetRejectedAt(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetRejectedAt(v)
	})
}

// UpdateRejectedAt sets the "rejected_at" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateRejectedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateRejectedAt()
	})
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (u *BattleUpsertBulk) ClearRejectedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearRejectedAt()
	})
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (u *BattleUpsertBulk) SetAdminValidatedAt(v time.Time) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetAdminValidatedAt(v)
	})
}

// UpdateAdminValidatedAt sets the "admin_validated_at" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateAdminValidatedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateAdminValidatedAt()
	})
}

// ClearAdminValidatedAt clears the value of the "admin_validated_at" field.
func (u *BattleUpsertBulk) ClearAdminValidatedAt() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearAdminValidatedAt()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *BattleUpsertBulk) SetRejectionReason(v string) *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *BattleUpsertBulk) UpdateRejectionReason() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *BattleUpsertBulk) ClearRejectionReason() *BattleUpsertBulk {
	return u.Update(func(s *BattleUpsert) {
		s.ClearRejectionReason()
	})
}

// Exec executes the query.
func (u *BattleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BattleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BattleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BattleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
