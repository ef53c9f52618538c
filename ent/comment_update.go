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
	"versus-arena.io/arena/ent/comment"
	"versus-arena.io/arena/ent/predicate"
)

// CommentUpdate is the builder for updating Comment entities.
type CommentUpdate struct {
	config
	hooks    []Hook
	mutation *CommentMutation
}

// Where appends a list predicates to the CommentUpdate builder.
func (_u *CommentUpdate) Where(ps ...predicate.Comment) *CommentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommentUpdate) SetUpdatedAt(v time.Time) *CommentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *CommentUpdate) SetBody(v string) *CommentUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableBody(v *string) *CommentUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetVisible sets the "visible" field.
func (_u *CommentUpdate) SetVisible(v bool) *CommentUpdate {
	_u.mutation.SetVisible(v)
	return _u
}

// SetNillableVisible sets the "visible" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableVisible(v *bool) *CommentUpdate {
	if v != nil {
		_u.SetVisible(*v)
	}
	return _u
}

// SetHiddenReason sets the "hidden_reason" field.
func (_u *CommentUpdate) SetHiddenReason(v string) *CommentUpdate {
	_u.mutation.SetHiddenReason(v)
	return _u
}

// SetNillableHiddenReason sets the "hidden_reason" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableHiddenReason(v *string) *CommentUpdate {
	if v != nil {
		_u.SetHiddenReason(*v)
	}
	return _u
}

// ClearHiddenReason clears the value of the "hidden_reason" field.
func (_u *CommentUpdate) ClearHiddenReason() *CommentUpdate {
	_u.mutation.ClearHiddenReason()
	return _u
}

// SetHiddenBy sets the "hidden_by" field.
func (_u *CommentUpdate) SetHiddenBy(v string) *CommentUpdate {
	_u.mutation.SetHiddenBy(v)
	return _u
}

// SetNillableHiddenBy sets the "hidden_by" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableHiddenBy(v *string) *CommentUpdate {
	if v != nil {
		_u.SetHiddenBy(*v)
	}
	return _u
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (_u *CommentUpdate) ClearHiddenBy() *CommentUpdate {
	_u.mutation.ClearHiddenBy()
	return _u
}

// Mutation returns the CommentMutation object of the builder.
func (_u *CommentUpdate) Mutation() *CommentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := comment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommentUpdate) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := comment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Comment.body": %w`, err)}
		}
	}
	return nil
}

func (_u *CommentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(comment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(comment.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Visible(); ok {
		_spec.SetField(comment.FieldVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HiddenReason(); ok {
		_spec.SetField(comment.FieldHiddenReason, field.TypeString, value)
	}
	if _u.mutation.HiddenReasonCleared() {
		_spec.ClearField(comment.FieldHiddenReason, field.TypeString)
	}
	if value, ok := _u.mutation.HiddenBy(); ok {
		_spec.SetField(comment.FieldHiddenBy, field.TypeString, value)
	}
	if _u.mutation.HiddenByCleared() {
		_spec.ClearField(comment.FieldHiddenBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommentUpdateOne is the builder for updating a single Comment entity.
type CommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommentUpdateOne) SetUpdatedAt(v time.Time) *CommentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *CommentUpdateOne) SetBody(v string) *CommentUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableBody(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetVisible sets the "visible" field.
func (_u *CommentUpdateOne) SetVisible(v bool) *CommentUpdateOne {
	_u.mutation.SetVisible(v)
	return _u
}

// SetNillableVisible sets the "visible" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableVisible(v *bool) *CommentUpdateOne {
	if v != nil {
		_u.SetVisible(*v)
	}
	return _u
}

// SetHiddenReason sets the "hidden_reason" field.
func (_u *CommentUpdateOne) SetHiddenReason(v string) *CommentUpdateOne {
	_u.mutation.SetHiddenReason(v)
	return _u
}

// SetNillableHiddenReason sets the "hidden_reason" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableHiddenReason(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetHiddenReason(*v)
	}
	return _u
}

// ClearHiddenReason clears the value of the "hidden_reason" field.
func (_u *CommentUpdateOne) ClearHiddenReason() *CommentUpdateOne {
	_u.mutation.ClearHiddenReason()
	return _u
}

// SetHiddenBy sets the "hidden_by" field.
func (_u *CommentUpdateOne) SetHiddenBy(v string) *CommentUpdateOne {
	_u.mutation.SetHiddenBy(v)
	return _u
}

// SetNillableHiddenBy sets the "hidden_by" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableHiddenBy(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetHiddenBy(*v)
	}
	return _u
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (_u *CommentUpdateOne) ClearHiddenBy() *CommentUpdateOne {
	_u.mutation.ClearHiddenBy()
	return _u
}

// Mutation returns the CommentMutation object of the builder.
func (_u *CommentUpdateOne) Mutation() *CommentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommentUpdate builder.
func (_u *CommentUpdateOne) Where(ps ...predicate.Comment) *CommentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommentUpdateOne) Select(field string, fields ...string) *CommentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Comment entity.
func (_u *CommentUpdateOne) Save(ctx context.Context) (*Comment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommentUpdateOne) SaveX(ctx context.Context) *Comment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := comment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommentUpdateOne) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := comment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Comment.body": %w`, err)}
		}
	}
	return nil
}

func (_u *CommentUpdateOne) sqlSave(ctx context.Context) (_node *Comment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comment.FieldID)
		for _, f := range fields {
			if !comment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comment.FieldID {
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
		_spec.SetField(comment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(comment.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Visible(); ok {
		_spec.SetField(comment.FieldVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HiddenReason(); ok {
		_spec.SetField(comment.FieldHiddenReason, field.TypeString, value)
	}
	if _u.mutation.HiddenReasonCleared() {
		_spec.ClearField(comment.FieldHiddenReason, field.TypeString)
	}
	if value, ok := _u.mutation.HiddenBy(); ok {
		_spec.SetField(comment.FieldHiddenBy, field.TypeString, value)
	}
	if _u.mutation.HiddenByCleared() {
		_spec.ClearField(comment.FieldHiddenBy, field.TypeString)
	}
	_node = &Comment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
