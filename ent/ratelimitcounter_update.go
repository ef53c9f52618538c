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
	"versus-arena.io/arena/ent/predicate"
	"versus-arena.io/arena/ent/ratelimitcounter"
)

// RateLimitCounterUpdate is the builder for updating RateLimitCounter entities.
type RateLimitCounterUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitCounterMutation
}

// Where appends a list predicates to the RateLimitCounterUpdate builder.
func (_u *RateLimitCounterUpdate) Where(ps ...predicate.RateLimitCounter) *RateLimitCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcedure sets the "procedure" field.
func (_u *RateLimitCounterUpdate) SetProcedure(v string) *RateLimitCounterUpdate {
	_u.mutation.SetProcedure(v)
	return _u
}

// SetNillableProcedure sets the "procedure" field if the given value is not nil.
func (_u *RateLimitCounterUpdate) SetNillableProcedure(v *string) *RateLimitCounterUpdate {
	if v != nil {
		_u.SetProcedure(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *RateLimitCounterUpdate) SetScopeKey(v string) *RateLimitCounterUpdate {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *RateLimitCounterUpdate) SetNillableScopeKey(v *string) *RateLimitCounterUpdate {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RateLimitCounterUpdate) SetWindowStart(v time.Time) *RateLimitCounterUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RateLimitCounterUpdate) SetNillableWindowStart(v *time.Time) *RateLimitCounterUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *RateLimitCounterUpdate) SetCount(v int) *RateLimitCounterUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *RateLimitCounterUpdate) SetNillableCount(v *int) *RateLimitCounterUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *RateLimitCounterUpdate) AddCount(v int) *RateLimitCounterUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the RateLimitCounterMutation object of the builder.
func (_u *RateLimitCounterUpdate) Mutation() *RateLimitCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RateLimitCounterUpdate) check() error {
	if v, ok := _u.mutation.Procedure(); ok {
		if err := ratelimitcounter.ProcedureValidator(v); err != nil {
			return &ValidationError{Name: "procedure", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.procedure": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKey(); ok {
		if err := ratelimitcounter.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.scope_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := ratelimitcounter.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.count": %w`, err)}
		}
	}
	return nil
}

func (_u *RateLimitCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratelimitcounter.Table, ratelimitcounter.Columns, sqlgraph.NewFieldSpec(ratelimitcounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Procedure(); ok {
		_spec.SetField(ratelimitcounter.FieldProcedure, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(ratelimitcounter.FieldScopeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitcounter.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(ratelimitcounter.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(ratelimitcounter.FieldCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitCounterUpdateOne is the builder for updating a single RateLimitCounter entity.
type RateLimitCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitCounterMutation
}

// SetProcedure sets the "procedure" field.
func (_u *RateLimitCounterUpdateOne) SetProcedure(v string) *RateLimitCounterUpdateOne {
	_u.mutation.SetProcedure(v)
	return _u
}

// SetNillableProcedure sets the "procedure" field if the given value is not nil.
func (_u *RateLimitCounterUpdateOne) SetNillableProcedure(v *string) *RateLimitCounterUpdateOne {
	if v != nil {
		_u.SetProcedure(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *RateLimitCounterUpdateOne) SetScopeKey(v string) *RateLimitCounterUpdateOne {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *RateLimitCounterUpdateOne) SetNillableScopeKey(v *string) *RateLimitCounterUpdateOne {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RateLimitCounterUpdateOne) SetWindowStart(v time.Time) *RateLimitCounterUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RateLimitCounterUpdateOne) SetNillableWindowStart(v *time.Time) *RateLimitCounterUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *RateLimitCounterUpdateOne) SetCount(v int) *RateLimitCounterUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *RateLimitCounterUpdateOne) SetNillableCount(v *int) *RateLimitCounterUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *RateLimitCounterUpdateOne) AddCount(v int) *RateLimitCounterUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the RateLimitCounterMutation object of the builder.
func (_u *RateLimitCounterUpdateOne) Mutation() *RateLimitCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateLimitCounterUpdate builder.
func (_u *RateLimitCounterUpdateOne) Where(ps ...predicate.RateLimitCounter) *RateLimitCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitCounterUpdateOne) Select(field string, fields ...string) *RateLimitCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitCounter entity.
func (_u *RateLimitCounterUpdateOne) Save(ctx context.Context) (*RateLimitCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitCounterUpdateOne) SaveX(ctx context.Context) *RateLimitCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RateLimitCounterUpdateOne) check() error {
	if v, ok := _u.mutation.Procedure(); ok {
		if err := ratelimitcounter.ProcedureValidator(v); err != nil {
			return &ValidationError{Name: "procedure", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.procedure": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKey(); ok {
		if err := ratelimitcounter.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.scope_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := ratelimitcounter.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.count": %w`, err)}
		}
	}
	return nil
}

func (_u *RateLimitCounterUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitCounter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratelimitcounter.Table, ratelimitcounter.Columns, sqlgraph.NewFieldSpec(ratelimitcounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitcounter.FieldID)
		for _, f := range fields {
			if !ratelimitcounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitcounter.FieldID {
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
	if value, ok := _u.mutation.Procedure(); ok {
		_spec.SetField(ratelimitcounter.FieldProcedure, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(ratelimitcounter.FieldScopeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitcounter.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(ratelimitcounter.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(ratelimitcounter.FieldCount, field.TypeInt, value)
	}
	_node = &RateLimitCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
