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
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/predicate"
)

// MonitoringAlertUpdate is the builder for updating MonitoringAlert entities.
type MonitoringAlertUpdate struct {
	config
	hooks    []Hook
	mutation *MonitoringAlertMutation
}

// Where appends a list predicates to the MonitoringAlertUpdate builder.
func (_u *MonitoringAlertUpdate) Where(ps ...predicate.MonitoringAlert) *MonitoringAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonitoringAlertUpdate) SetUpdatedAt(v time.Time) *MonitoringAlertUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MonitoringAlertUpdate) SetSeverity(v monitoringalert.Severity) *MonitoringAlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MonitoringAlertUpdate) SetNillableSeverity(v *monitoringalert.Severity) *MonitoringAlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *MonitoringAlertUpdate) SetDetail(v map[string]interface{}) *MonitoringAlertUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *MonitoringAlertUpdate) ClearDetail() *MonitoringAlertUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *MonitoringAlertUpdate) SetResolved(v bool) *MonitoringAlertUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *MonitoringAlertUpdate) SetNillableResolved(v *bool) *MonitoringAlertUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *MonitoringAlertUpdate) SetResolvedBy(v string) *MonitoringAlertUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *MonitoringAlertUpdate) SetNillableResolvedBy(v *string) *MonitoringAlertUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *MonitoringAlertUpdate) ClearResolvedBy() *MonitoringAlertUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *MonitoringAlertUpdate) SetResolvedAt(v time.Time) *MonitoringAlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *MonitoringAlertUpdate) SetNillableResolvedAt(v *time.Time) *MonitoringAlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *MonitoringAlertUpdate) ClearResolvedAt() *MonitoringAlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the MonitoringAlertMutation object of the builder.
func (_u *MonitoringAlertUpdate) Mutation() *MonitoringAlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitoringAlertUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoringAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitoringAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoringAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonitoringAlertUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monitoringalert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoringAlertUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := monitoringalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitoringAlert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *MonitoringAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoringalert.Table, monitoringalert.Columns, sqlgraph.NewFieldSpec(monitoringalert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringalert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(monitoringalert.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SubjectTypeCleared() {
		_spec.ClearField(monitoringalert.FieldSubjectType, field.TypeString)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(monitoringalert.FieldSubjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(monitoringalert.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(monitoringalert.FieldDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(monitoringalert.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(monitoringalert.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(monitoringalert.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(monitoringalert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(monitoringalert.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoringalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitoringAlertUpdateOne is the builder for updating a single MonitoringAlert entity.
type MonitoringAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitoringAlertMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonitoringAlertUpdateOne) SetUpdatedAt(v time.Time) *MonitoringAlertUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MonitoringAlertUpdateOne) SetSeverity(v monitoringalert.Severity) *MonitoringAlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MonitoringAlertUpdateOne) SetNillableSeverity(v *monitoringalert.Severity) *MonitoringAlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *MonitoringAlertUpdateOne) SetDetail(v map[string]interface{}) *MonitoringAlertUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *MonitoringAlertUpdateOne) ClearDetail() *MonitoringAlertUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *MonitoringAlertUpdateOne) SetResolved(v bool) *MonitoringAlertUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *MonitoringAlertUpdateOne) SetNillableResolved(v *bool) *MonitoringAlertUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *MonitoringAlertUpdateOne) SetResolvedBy(v string) *MonitoringAlertUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *MonitoringAlertUpdateOne) SetNillableResolvedBy(v *string) *MonitoringAlertUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *MonitoringAlertUpdateOne) ClearResolvedBy() *MonitoringAlertUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *MonitoringAlertUpdateOne) SetResolvedAt(v time.Time) *MonitoringAlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *MonitoringAlertUpdateOne) SetNillableResolvedAt(v *time.Time) *MonitoringAlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *MonitoringAlertUpdateOne) ClearResolvedAt() *MonitoringAlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the MonitoringAlertMutation object of the builder.
func (_u *MonitoringAlertUpdateOne) Mutation() *MonitoringAlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the MonitoringAlertUpdate builder.
func (_u *MonitoringAlertUpdateOne) Where(ps ...predicate.MonitoringAlert) *MonitoringAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitoringAlertUpdateOne) Select(field string, fields ...string) *MonitoringAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitoringAlert entity.
func (_u *MonitoringAlertUpdateOne) Save(ctx context.Context) (*MonitoringAlert, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoringAlertUpdateOne) SaveX(ctx context.Context) *MonitoringAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitoringAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoringAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonitoringAlertUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monitoringalert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoringAlertUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := monitoringalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitoringAlert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *MonitoringAlertUpdateOne) sqlSave(ctx context.Context) (_node *MonitoringAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoringalert.Table, monitoringalert.Columns, sqlgraph.NewFieldSpec(monitoringalert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonitoringAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoringalert.FieldID)
		for _, f := range fields {
			if !monitoringalert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monitoringalert.FieldID {
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
		_spec.SetField(monitoringalert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(monitoringalert.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SubjectTypeCleared() {
		_spec.ClearField(monitoringalert.FieldSubjectType, field.TypeString)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(monitoringalert.FieldSubjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(monitoringalert.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(monitoringalert.FieldDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(monitoringalert.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(monitoringalert.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(monitoringalert.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(monitoringalert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(monitoringalert.FieldResolvedAt, field.TypeTime)
	}
	_node = &MonitoringAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoringalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
