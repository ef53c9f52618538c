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
	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/ent/predicate"
)

// ModerationActionUpdate is the builder for updating ModerationAction entities.
type ModerationActionUpdate struct {
	config
	hooks    []Hook
	mutation *ModerationActionMutation
}

// Where appends a list predicates to the ModerationActionUpdate builder.
func (_u *ModerationActionUpdate) Where(ps ...predicate.ModerationAction) *ModerationActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModerationActionUpdate) SetUpdatedAt(v time.Time) *ModerationActionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModerationActionUpdate) SetStatus(v moderationaction.Status) *ModerationActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModerationActionUpdate) SetNillableStatus(v *moderationaction.Status) *ModerationActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAppliedEffect sets the "applied_effect" field.
func (_u *ModerationActionUpdate) SetAppliedEffect(v string) *ModerationActionUpdate {
	_u.mutation.SetAppliedEffect(v)
	return _u
}

// SetNillableAppliedEffect sets the "applied_effect" field if the given value is not nil.
func (_u *ModerationActionUpdate) SetNillableAppliedEffect(v *string) *ModerationActionUpdate {
	if v != nil {
		_u.SetAppliedEffect(*v)
	}
	return _u
}

// ClearAppliedEffect clears the value of the "applied_effect" field.
func (_u *ModerationActionUpdate) ClearAppliedEffect() *ModerationActionUpdate {
	_u.mutation.ClearAppliedEffect()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *ModerationActionUpdate) SetExecutedAt(v time.Time) *ModerationActionUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *ModerationActionUpdate) SetNillableExecutedAt(v *time.Time) *ModerationActionUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *ModerationActionUpdate) ClearExecutedAt() *ModerationActionUpdate {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetExecutedBy sets the "executed_by" field.
func (_u *ModerationActionUpdate) SetExecutedBy(v string) *ModerationActionUpdate {
	_u.mutation.SetExecutedBy(v)
	return _u
}

// SetNillableExecutedBy sets the "executed_by" field if the given value is not nil.
func (_u *ModerationActionUpdate) SetNillableExecutedBy(v *string) *ModerationActionUpdate {
	if v != nil {
		_u.SetExecutedBy(*v)
	}
	return _u
}

// ClearExecutedBy clears the value of the "executed_by" field.
func (_u *ModerationActionUpdate) ClearExecutedBy() *ModerationActionUpdate {
	_u.mutation.ClearExecutedBy()
	return _u
}

// SetOverrideFeedback sets the "override_feedback" field.
func (_u *ModerationActionUpdate) SetOverrideFeedback(v map[string]interface{}) *ModerationActionUpdate {
	_u.mutation.SetOverrideFeedback(v)
	return _u
}

// ClearOverrideFeedback clears the value of the "override_feedback" field.
func (_u *ModerationActionUpdate) ClearOverrideFeedback() *ModerationActionUpdate {
	_u.mutation.ClearOverrideFeedback()
	return _u
}

// Mutation returns the ModerationActionMutation object of the builder.
func (_u *ModerationActionUpdate) Mutation() *ModerationActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModerationActionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModerationActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModerationActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModerationActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModerationActionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := moderationaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModerationActionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := moderationaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModerationAction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ModerationActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moderationaction.Table, moderationaction.Columns, sqlgraph.NewFieldSpec(moderationaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(moderationaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(moderationaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AppliedEffect(); ok {
		_spec.SetField(moderationaction.FieldAppliedEffect, field.TypeString, value)
	}
	if _u.mutation.AppliedEffectCleared() {
		_spec.ClearField(moderationaction.FieldAppliedEffect, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(moderationaction.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(moderationaction.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutedBy(); ok {
		_spec.SetField(moderationaction.FieldExecutedBy, field.TypeString, value)
	}
	if _u.mutation.ExecutedByCleared() {
		_spec.ClearField(moderationaction.FieldExecutedBy, field.TypeString)
	}
	if value, ok := _u.mutation.OverrideFeedback(); ok {
		_spec.SetField(moderationaction.FieldOverrideFeedback, field.TypeJSON, value)
	}
	if _u.mutation.OverrideFeedbackCleared() {
		_spec.ClearField(moderationaction.FieldOverrideFeedback, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moderationaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModerationActionUpdateOne is the builder for updating a single ModerationAction entity.
type ModerationActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModerationActionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModerationActionUpdateOne) SetUpdatedAt(v time.Time) *ModerationActionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModerationActionUpdateOne) SetStatus(v moderationaction.Status) *ModerationActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModerationActionUpdateOne) SetNillableStatus(v *moderationaction.Status) *ModerationActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAppliedEffect sets the "applied_effect" field.
func (_u *ModerationActionUpdateOne) SetAppliedEffect(v string) *ModerationActionUpdateOne {
	_u.mutation.SetAppliedEffect(v)
	return _u
}

// SetNillableAppliedEffect sets the "applied_effect" field if the given value is not nil.
func (_u *ModerationActionUpdateOne) SetNillableAppliedEffect(v *string) *ModerationActionUpdateOne {
	if v != nil {
		_u.SetAppliedEffect(*v)
	}
	return _u
}

// ClearAppliedEffect clears the value of the "applied_effect" field.
func (_u *ModerationActionUpdateOne) ClearAppliedEffect() *ModerationActionUpdateOne {
	_u.mutation.ClearAppliedEffect()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *ModerationActionUpdateOne) SetExecutedAt(v time.Time) *ModerationActionUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *ModerationActionUpdateOne) SetNillableExecutedAt(v *time.Time) *ModerationActionUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *ModerationActionUpdateOne) ClearExecutedAt() *ModerationActionUpdateOne {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetExecutedBy sets the "executed_by" field.
func (_u *ModerationActionUpdateOne) SetExecutedBy(v string) *ModerationActionUpdateOne {
	_u.mutation.SetExecutedBy(v)
	return _u
}

// SetNillableExecutedBy sets the "executed_by" field if the given value is not nil.
func (_u *ModerationActionUpdateOne) SetNillableExecutedBy(v *string) *ModerationActionUpdateOne {
	if v != nil {
		_u.SetExecutedBy(*v)
	}
	return _u
}

// ClearExecutedBy clears the value of the "executed_by" field.
func (_u *ModerationActionUpdateOne) ClearExecutedBy() *ModerationActionUpdateOne {
	_u.mutation.ClearExecutedBy()
	return _u
}

// SetOverrideFeedback sets the "override_feedback" field.
func (_u *ModerationActionUpdateOne) SetOverrideFeedback(v map[string]interface{}) *ModerationActionUpdateOne {
	_u.mutation.SetOverrideFeedback(v)
	return _u
}

// ClearOverrideFeedback clears the value of the "override_feedback" field.
func (_u *ModerationActionUpdateOne) ClearOverrideFeedback() *ModerationActionUpdateOne {
	_u.mutation.ClearOverrideFeedback()
	return _u
}

// Mutation returns the ModerationActionMutation object of the builder.
func (_u *ModerationActionUpdateOne) Mutation() *ModerationActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModerationActionUpdate builder.
func (_u *ModerationActionUpdateOne) Where(ps ...predicate.ModerationAction) *ModerationActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModerationActionUpdateOne) Select(field string, fields ...string) *ModerationActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModerationAction entity.
func (_u *ModerationActionUpdateOne) Save(ctx context.Context) (*ModerationAction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModerationActionUpdateOne) SaveX(ctx context.Context) *ModerationAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModerationActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModerationActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModerationActionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := moderationaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModerationActionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := moderationaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModerationAction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ModerationActionUpdateOne) sqlSave(ctx context.Context) (_node *ModerationAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moderationaction.Table, moderationaction.Columns, sqlgraph.NewFieldSpec(moderationaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModerationAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moderationaction.FieldID)
		for _, f := range fields {
			if !moderationaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moderationaction.FieldID {
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
		_spec.SetField(moderationaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(moderationaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AppliedEffect(); ok {
		_spec.SetField(moderationaction.FieldAppliedEffect, field.TypeString, value)
	}
	if _u.mutation.AppliedEffectCleared() {
		_spec.ClearField(moderationaction.FieldAppliedEffect, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(moderationaction.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(moderationaction.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutedBy(); ok {
		_spec.SetField(moderationaction.FieldExecutedBy, field.TypeString, value)
	}
	if _u.mutation.ExecutedByCleared() {
		_spec.ClearField(moderationaction.FieldExecutedBy, field.TypeString)
	}
	if value, ok := _u.mutation.OverrideFeedback(); ok {
		_spec.SetField(moderationaction.FieldOverrideFeedback, field.TypeJSON, value)
	}
	if _u.mutation.OverrideFeedbackCleared() {
		_spec.ClearField(moderationaction.FieldOverrideFeedback, field.TypeJSON)
	}
	_node = &ModerationAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moderationaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
