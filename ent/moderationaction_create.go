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
	"versus-arena.io/arena/ent/moderationaction"
)

// ModerationActionCreate is the builder for creating a ModerationAction entity.
type ModerationActionCreate struct {
	config
	mutation *ModerationActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModerationActionCreate) SetCreatedAt(v time.Time) *ModerationActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModerationActionCreate) SetNillableCreatedAt(v *time.Time) *ModerationActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModerationActionCreate) SetUpdatedAt(v time.Time) *ModerationActionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModerationActionCreate) SetNillableUpdatedAt(v *time.Time) *ModerationActionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSubjectType sets the "subject_type" field.
func (_c *ModerationActionCreate) SetSubjectType(v string) *ModerationActionCreate {
	_c.mutation.SetSubjectType(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *ModerationActionCreate) SetSubjectID(v string) *ModerationActionCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ModerationActionCreate) SetDecision(v map[string]interface{}) *ModerationActionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModerationActionCreate) SetStatus(v moderationaction.Status) *ModerationActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModerationActionCreate) SetNillableStatus(v *moderationaction.Status) *ModerationActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAppliedEffect sets the "applied_effect" field.
func (_c *ModerationActionCreate) SetAppliedEffect(v string) *ModerationActionCreate {
	_c.mutation.SetAppliedEffect(v)
	return _c
}

// SetNillableAppliedEffect sets the "applied_effect" field if the given value is not nil.
func (_c *ModerationActionCreate) SetNillableAppliedEffect(v *string) *ModerationActionCreate {
	if v != nil {
		_c.SetAppliedEffect(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *ModerationActionCreate) SetExecutedAt(v time.Time) *ModerationActionCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *ModerationActionCreate) SetNillableExecutedAt(v *time.Time) *ModerationActionCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetExecutedBy sets the "executed_by" field.
func (_c *ModerationActionCreate) SetExecutedBy(v string) *ModerationActionCreate {
	_c.mutation.SetExecutedBy(v)
	return _c
}

// SetNillableExecutedBy sets the "executed_by" field if the given value is not nil.
func (_c *ModerationActionCreate) SetNillableExecutedBy(v *string) *ModerationActionCreate {
	if v != nil {
		_c.SetExecutedBy(*v)
	}
	return _c
}

// SetOverrideFeedback sets the "override_feedback" field.
func (_c *ModerationActionCreate) SetOverrideFeedback(v map[string]interface{}) *ModerationActionCreate {
	_c.mutation.SetOverrideFeedback(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ModerationActionCreate) SetID(v string) *ModerationActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModerationActionMutation object of the builder.
func (_c *ModerationActionCreate) Mutation() *ModerationActionMutation {
	return _c.mutation
}

// Save creates the ModerationAction in the database.
func (_c *ModerationActionCreate) Save(ctx context.Context) (*ModerationAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModerationActionCreate) SaveX(ctx context.Context) *ModerationAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModerationActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModerationActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModerationActionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := moderationaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := moderationaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := moderationaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModerationActionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModerationAction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModerationAction.updated_at"`)}
	}
	if _, ok := _c.mutation.SubjectType(); !ok {
		return &ValidationError{Name: "subject_type", err: errors.New(`ent: missing required field "ModerationAction.subject_type"`)}
	}
	if v, ok := _c.mutation.SubjectType(); ok {
		if err := moderationaction.SubjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "subject_type", err: fmt.Errorf(`ent: validator failed for field "ModerationAction.subject_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "ModerationAction.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := moderationaction.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ModerationAction.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ModerationAction.decision"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModerationAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := moderationaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModerationAction.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ModerationActionCreate) sqlSave(ctx context.Context) (*ModerationAction, error) {
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
			return nil, fmt.Errorf("unexpected ModerationAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModerationActionCreate) createSpec() (*ModerationAction, *sqlgraph.CreateSpec) {
	var (
		_node = &ModerationAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moderationaction.Table, sqlgraph.NewFieldSpec(moderationaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(moderationaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(moderationaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SubjectType(); ok {
		_spec.SetField(moderationaction.FieldSubjectType, field.TypeString, value)
		_node.SubjectType = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(moderationaction.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(moderationaction.FieldDecision, field.TypeJSON, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(moderationaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AppliedEffect(); ok {
		_spec.SetField(moderationaction.FieldAppliedEffect, field.TypeString, value)
		_node.AppliedEffect = value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(moderationaction.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = &value
	}
	if value, ok := _c.mutation.ExecutedBy(); ok {
		_spec.SetField(moderationaction.FieldExecutedBy, field.TypeString, value)
		_node.ExecutedBy = value
	}
	if value, ok := _c.mutation.OverrideFeedback(); ok {
		_spec.SetField(moderationaction.FieldOverrideFeedback, field.TypeJSON, value)
		_node.OverrideFeedback = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModerationAction.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModerationActionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ModerationActionCreate) OnConflict(opts ...sql.ConflictOption) *ModerationActionUpsertOne {
	_c.conflict = opts
	return &ModerationActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModerationAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModerationActionCreate) OnConflictColumns(columns ...string) *ModerationActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModerationActionUpsertOne{
		create: _c,
	}
}

type (
	// ModerationActionUpsertOne is the builder for "upsert"-ing
	//  one ModerationAction node.
	ModerationActionUpsertOne struct {
		create *ModerationActionCreate
	}

	// ModerationActionUpsert is the "OnConflict" setter.
	ModerationActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ModerationActionUpsert) SetUpdatedAt(v time.Time) *ModerationActionUpsert {
	u.Set(moderationaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModerationActionUpsert) UpdateUpdatedAt() *ModerationActionUpsert {
	u.SetExcluded(moderationaction.FieldUpdatedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *ModerationActionUpsert) SetStatus(v moderationaction.Status) *ModerationActionUpsert {
	u.Set(moderationaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ModerationActionUpsert) UpdateStatus() *ModerationActionUpsert {
	u.SetExcluded(moderationaction.FieldStatus)
	return u
}

// SetAppliedEffect sets the "applied_effect" field.
func (u *ModerationActionUpsert) SetAppliedEffect(v string) *ModerationActionUpsert {
	u.Set(moderationaction.FieldAppliedEffect, v)
	return u
}

// UpdateAppliedEffect sets the "applied_effect" field to the value that was provided on create.
func (u *ModerationActionUpsert) UpdateAppliedEffect() *ModerationActionUpsert {
	u.SetExcluded(moderationaction.FieldAppliedEffect)
	return u
}

// ClearAppliedEffect clears the value of the "applied_effect" field.
func (u *ModerationActionUpsert) ClearAppliedEffect() *ModerationActionUpsert {
	u.SetNull(moderationaction.FieldAppliedEffect)
	return u
}

// SetExecutedAt sets the "executed_at" field.
func (u *ModerationActionUpsert) SetExecutedAt(v time.Time) *ModerationActionUpsert {
	u.Set(moderationaction.FieldExecutedAt, v)
	return u
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *ModerationActionUpsert) UpdateExecutedAt() *ModerationActionUpsert {
	u.SetExcluded(moderationaction.FieldExecutedAt)
	return u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *ModerationActionUpsert) ClearExecutedAt() *ModerationActionUpsert {
	u.SetNull(moderationaction.FieldExecutedAt)
	return u
}

// SetExecutedBy sets the "executed_by" field.
func (u *ModerationActionUpsert) SetExecutedBy(v string) *ModerationActionUpsert {
	u.Set(moderationaction.FieldExecutedBy, v)
	return u
}

// UpdateExecutedBy sets the "executed_by" field to the value that was provided on create.
func (u *ModerationActionUpsert) UpdateExecutedBy() *ModerationActionUpsert {
	u.SetExcluded(moderationaction.FieldExecutedBy)
	return u
}

// ClearExecutedBy clears the value of the "executed_by" field.
func (u *ModerationActionUpsert) ClearExecutedBy() *ModerationActionUpsert {
	u.SetNull(moderationaction.FieldExecutedBy)
	return u
}

// SetOverrideFeedback sets the "override_feedback" field.
func (u *ModerationActionUpsert) SetOverrideFeedback(v map[string]interface{}) *ModerationActionUpsert {
	u.Set(moderationaction.FieldOverrideFeedback, v)
	return u
}

// UpdateOverrideFeedback sets the "override_feedback" field to the value that was provided on create.
func (u *ModerationActionUpsert) UpdateOverrideFeedback() *ModerationActionUpsert {
	u.SetExcluded(moderationaction.FieldOverrideFeedback)
	return u
}

// ClearOverrideFeedback clears the value of the "override_feedback" field.
func (u *ModerationActionUpsert) ClearOverrideFeedback() *ModerationActionUpsert {
	u.SetNull(moderationaction.FieldOverrideFeedback)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModerationAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(moderationaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModerationActionUpsertOne) UpdateNewValues() *ModerationActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(moderationaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(moderationaction.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SubjectType(); exists {
			s.SetIgnore(moderationaction.FieldSubjectType)
		}
		if _, exists := u.create.mutation.SubjectID(); exists {
			s.SetIgnore(moderationaction.FieldSubjectID)
		}
		if _, exists := u.create.mutation.Decision(); exists {
			s.SetIgnore(moderationaction.FieldDecision)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModerationAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModerationActionUpsertOne) Ignore() *ModerationActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModerationActionUpsertOne) DoNothing() *ModerationActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModerationActionCreate.OnConflict
// documentation for more info.
func (u *ModerationActionUpsertOne) Update(set func(*ModerationActionUpsert)) *ModerationActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModerationActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModerationActionUpsertOne) SetUpdatedAt(v time.Time) *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModerationActionUpsertOne) UpdateUpdatedAt() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ModerationActionUpsertOne) SetStatus(v moderationaction.Status) *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ModerationActionUpsertOne) UpdateStatus() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateStatus()
	})
}

// SetAppliedEffect sets the "applied_effect" field.
func (u *ModerationActionUpsertOne) SetAppliedEffect(v string) *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetAppliedEffect(v)
	})
}

// UpdateAppliedEffect sets the "applied_effect" field to the value that was provided on create.
func (u *ModerationActionUpsertOne) UpdateAppliedEffect() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateAppliedEffect()
	})
}

// ClearAppliedEffect clears the value of the "applied_effect" field.
func (u *ModerationActionUpsertOne) ClearAppliedEffect() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearAppliedEffect()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *ModerationActionUpsertOne) SetExecutedAt(v time.Time) *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *ModerationActionUpsertOne) UpdateExecutedAt() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateExecutedAt()
	})
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *ModerationActionUpsertOne) ClearExecutedAt() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearExecutedAt()
	})
}

// SetExecutedBy sets the "executed_by" field.
func (u *ModerationActionUpsertOne) SetExecutedBy(v string) *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetExecutedBy(v)
	})
}

// UpdateExecutedBy sets the "executed_by" field to the value that was provided on create.
func (u *ModerationActionUpsertOne) UpdateExecutedBy() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateExecutedBy()
	})
}

// ClearExecutedBy clears the value of the "executed_by" field.
func (u *ModerationActionUpsertOne) ClearExecutedBy() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearExecutedBy()
	})
}

// SetOverrideFeedback sets the "override_feedback" field.
func (u *ModerationActionUpsertOne) SetOverrideFeedback(v map[string]interface{}) *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetOverrideFeedback(v)
	})
}

// UpdateOverrideFeedback sets the "override_feedback" field to the value that was provided on create.
func (u *ModerationActionUpsertOne) UpdateOverrideFeedback() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateOverrideFeedback()
	})
}

// ClearOverrideFeedback clears the value of the "override_feedback" field.
func (u *ModerationActionUpsertOne) ClearOverrideFeedback() *ModerationActionUpsertOne {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearOverrideFeedback()
	})
}

// Exec executes the query.
func (u *ModerationActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModerationActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModerationActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModerationActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModerationActionUpsertOne.ID is not supported by MySQL driver. Use ModerationActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModerationActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModerationActionCreateBulk is the builder for creating many ModerationAction entities in bulk.
type ModerationActionCreateBulk struct {
	config
	err      error
	builders []*ModerationActionCreate
	conflict []sql.ConflictOption
}

// Save creates the ModerationAction entities in the database.
func (_c *ModerationActionCreateBulk) Save(ctx context.Context) ([]*ModerationAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModerationAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModerationActionMutation)
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
func (_c *ModerationActionCreateBulk) SaveX(ctx context.Context) []*ModerationAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModerationActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModerationActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModerationAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModerationActionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ModerationActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModerationActionUpsertBulk {
	_c.conflict = opts
	return &ModerationActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModerationAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModerationActionCreateBulk) OnConflictColumns(columns ...string) *ModerationActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModerationActionUpsertBulk{
		create: _c,
	}
}

// ModerationActionUpsertBulk is the builder for "upsert"-ing
// a bulk of ModerationAction nodes.
type ModerationActionUpsertBulk struct {
	create *ModerationActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModerationAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(moderationaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModerationActionUpsertBulk) UpdateNewValues() *ModerationActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(moderationaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(moderationaction.FieldCreatedAt)
			}
			if _, exists := b.mutation.SubjectType(); exists {
				s.SetIgnore(moderationaction.FieldSubjectType)
			}
			if _, exists := b.mutation.SubjectID(); exists {
				s.SetIgnore(moderationaction.FieldSubjectID)
			}
			if _, exists := b.mutation.Decision(); exists {
				s.SetIgnore(moderationaction.FieldDecision)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModerationAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModerationActionUpsertBulk) Ignore() *ModerationActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModerationActionUpsertBulk) DoNothing() *ModerationActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModerationActionCreateBulk.OnConflict
// documentation for more info.
func (u *ModerationActionUpsertBulk) Update(set func(*ModerationActionUpsert)) *ModerationActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModerationActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModerationActionUpsertBulk) SetUpdatedAt(v time.Time) *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModerationActionUpsertBulk) UpdateUpdatedAt() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ModerationActionUpsertBulk) SetStatus(v moderationaction.Status) *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ModerationActionUpsertBulk) UpdateStatus() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateStatus()
	})
}

// SetAppliedEffect sets the "applied_effect" field.
func (u *ModerationActionUpsertBulk) SetAppliedEffect(v string) *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetAppliedEffect(v)
	})
}

// UpdateAppliedEffect sets the "applied_effect" field to the value that was provided on create.
func (u *ModerationActionUpsertBulk) UpdateAppliedEffect() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateAppliedEffect()
	})
}

// ClearAppliedEffect clears the value of the "applied_effect" field.
func (u *ModerationActionUpsertBulk) ClearAppliedEffect() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearAppliedEffect()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *ModerationActionUpsertBulk) SetExecutedAt(v time.Time) *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *ModerationActionUpsertBulk) UpdateExecutedAt() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateExecutedAt()
	})
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *ModerationActionUpsertBulk) ClearExecutedAt() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearExecutedAt()
	})
}

// SetExecutedBy sets the "executed_by" field.
func (u *ModerationActionUpsertBulk) SetExecutedBy(v string) *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetExecutedBy(v)
	})
}

// UpdateExecutedBy sets the "executed_by" field to the value that was provided on create.
func (u *ModerationActionUpsertBulk) UpdateExecutedBy() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateExecutedBy()
	})
}

// ClearExecutedBy clears the value of the "executed_by" field.
func (u *ModerationActionUpsertBulk) ClearExecutedBy() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearExecutedBy()
	})
}

// SetOverrideFeedback sets the "override_feedback" field.
func (u *ModerationActionUpsertBulk) SetOverrideFeedback(v map[string]interface{}) *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.SetOverrideFeedback(v)
	})
}

// UpdateOverrideFeedback sets the "override_feedback" field to the value that was provided on create.
func (u *ModerationActionUpsertBulk) UpdateOverrideFeedback() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.UpdateOverrideFeedback()
	})
}

// ClearOverrideFeedback clears the value of the "override_feedback" field.
func (u *ModerationActionUpsertBulk) ClearOverrideFeedback() *ModerationActionUpsertBulk {
	return u.Update(func(s *ModerationActionUpsert) {
		s.ClearOverrideFeedback()
	})
}

// Exec executes the query.
func (u *ModerationActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModerationActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModerationActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModerationActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
