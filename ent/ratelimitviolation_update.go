// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"versus-arena.io/arena/ent/predicate"
	"versus-arena.io/arena/ent/ratelimitviolation"
)

// RateLimitViolationUpdate is the builder for updating RateLimitViolation entities.
type RateLimitViolationUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitViolationMutation
}

// Where appends a list predicates to the RateLimitViolationUpdate builder.
func (_u *RateLimitViolationUpdate) Where(ps ...predicate.RateLimitViolation) *RateLimitViolationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the RateLimitViolationMutation object of the builder.
func (_u *RateLimitViolationUpdate) Mutation() *RateLimitViolationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitViolationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitViolationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitViolationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitViolationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RateLimitViolationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitviolation.Table, ratelimitviolation.Columns, sqlgraph.NewFieldSpec(ratelimitviolation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(ratelimitviolation.FieldActor, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitViolationUpdateOne is the builder for updating a single RateLimitViolation entity.
type RateLimitViolationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitViolationMutation
}

// Mutation returns the RateLimitViolationMutation object of the builder.
func (_u *RateLimitViolationUpdateOne) Mutation() *RateLimitViolationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateLimitViolationUpdate builder.
func (_u *RateLimitViolationUpdateOne) Where(ps ...predicate.RateLimitViolation) *RateLimitViolationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitViolationUpdateOne) Select(field string, fields ...string) *RateLimitViolationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitViolation entity.
func (_u *RateLimitViolationUpdateOne) Save(ctx context.Context) (*RateLimitViolation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitViolationUpdateOne) SaveX(ctx context.Context) *RateLimitViolation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitViolationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitViolationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RateLimitViolationUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitViolation, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitviolation.Table, ratelimitviolation.Columns, sqlgraph.NewFieldSpec(ratelimitviolation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitViolation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitviolation.FieldID)
		for _, f := range fields {
			if !ratelimitviolation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitviolation.FieldID {
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
	if _u.mutation.ActorCleared() {
		_spec.ClearField(ratelimitviolation.FieldActor, field.TypeString)
	}
	_node = &RateLimitViolation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
