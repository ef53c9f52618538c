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
	"versus-arena.io/arena/ent/monitoringalert"
)

// MonitoringAlertCreate is the builder for creating a MonitoringAlert entity.
type MonitoringAlertCreate struct {
	config
	mutation *MonitoringAlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MonitoringAlertCreate) SetCreatedAt(v time.Time) *MonitoringAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableCreatedAt(v *time.Time) *MonitoringAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MonitoringAlertCreate) SetUpdatedAt(v time.Time) *MonitoringAlertCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableUpdatedAt(v *time.Time) *MonitoringAlertCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *MonitoringAlertCreate) SetSeverity(v monitoringalert.Severity) *MonitoringAlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MonitoringAlertCreate) SetSource(v string) *MonitoringAlertCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *MonitoringAlertCreate) SetEventType(v string) *MonitoringAlertCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSubjectType sets the "subject_type" field.
func (_c *MonitoringAlertCreate) SetSubjectType(v string) *MonitoringAlertCreate {
	_c.mutation.SetSubjectType(v)
	return _c
}

// SetNillableSubjectType sets the "subject_type" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableSubjectType(v *string) *MonitoringAlertCreate {
	if v != nil {
		_c.SetSubjectType(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *MonitoringAlertCreate) SetSubjectID(v string) *MonitoringAlertCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableSubjectID(v *string) *MonitoringAlertCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *MonitoringAlertCreate) SetDetail(v map[string]interface{}) *MonitoringAlertCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *MonitoringAlertCreate) SetResolved(v bool) *MonitoringAlertCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableResolved(v *bool) *MonitoringAlertCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *MonitoringAlertCreate) SetResolvedBy(v string) *MonitoringAlertCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableResolvedBy(v *string) *MonitoringAlertCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *MonitoringAlertCreate) SetResolvedAt(v time.Time) *MonitoringAlertCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *MonitoringAlertCreate) SetNillableResolvedAt(v *time.Time) *MonitoringAlertCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonitoringAlertCreate) SetID(v string) *MonitoringAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MonitoringAlertMutation object of the builder.
func (_c *MonitoringAlertCreate) Mutation() *MonitoringAlertMutation {
	return _c.mutation
}

// Save creates the MonitoringAlert in the database.
func (_c *MonitoringAlertCreate) Save(ctx context.Context) (*MonitoringAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitoringAlertCreate) SaveX(ctx context.Context) *MonitoringAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoringAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoringAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitoringAlertCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := monitoringalert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := monitoringalert.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := monitoringalert.DefaultResolved
		_c.mutation.SetResolved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitoringAlertCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MonitoringAlert.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MonitoringAlert.updated_at"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "MonitoringAlert.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := monitoringalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitoringAlert.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MonitoringAlert.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := monitoringalert.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MonitoringAlert.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "MonitoringAlert.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := monitoringalert.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "MonitoringAlert.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "MonitoringAlert.resolved"`)}
	}
	return nil
}

func (_c *MonitoringAlertCreate) sqlSave(ctx context.Context) (*MonitoringAlert, error) {
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
			return nil, fmt.Errorf("unexpected MonitoringAlert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonitoringAlertCreate) createSpec() (*MonitoringAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitoringAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoringalert.Table, sqlgraph.NewFieldSpec(monitoringalert.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(monitoringalert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringalert.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(monitoringalert.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(monitoringalert.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(monitoringalert.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.SubjectType(); ok {
		_spec.SetField(monitoringalert.FieldSubjectType, field.TypeString, value)
		_node.SubjectType = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(monitoringalert.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(monitoringalert.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(monitoringalert.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(monitoringalert.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(monitoringalert.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitoringAlert.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitoringAlertUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitoringAlertCreate) OnConflict(opts ...sql.ConflictOption) *MonitoringAlertUpsertOne {
	_c.conflict = opts
	return &MonitoringAlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitoringAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitoringAlertCreate) OnConflictColumns(columns ...string) *MonitoringAlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitoringAlertUpsertOne{
		create: _c,
	}
}

type (
	// MonitoringAlertUpsertOne is the builder for "upsert"-ing
	//  one MonitoringAlert node.
	MonitoringAlertUpsertOne struct {
		create *MonitoringAlertCreate
	}

	// MonitoringAlertUpsert is the "OnConflict" setter.
	MonitoringAlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringAlertUpsert) SetUpdatedAt(v time.Time) *MonitoringAlertUpsert {
	u.Set(monitoringalert.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringAlertUpsert) UpdateUpdatedAt() *MonitoringAlertUpsert {
	u.SetExcluded(monitoringalert.FieldUpdatedAt)
	return u
}

// SetSeverity sets the "severity" field.
func (u *MonitoringAlertUpsert) SetSeverity(v monitoringalert.Severity) *MonitoringAlertUpsert {
	u.Set(monitoringalert.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *MonitoringAlertUpsert) UpdateSeverity() *MonitoringAlertUpsert {
	u.SetExcluded(monitoringalert.FieldSeverity)
	return u
}

// SetDetail sets the "detail" field.
func (u *MonitoringAlertUpsert) SetDetail(v map[string]interface{}) *MonitoringAlertUpsert {
	u.Set(monitoringalert.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *MonitoringAlertUpsert) UpdateDetail() *MonitoringAlertUpsert {
	u.SetExcluded(monitoringalert.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *MonitoringAlertUpsert) ClearDetail() *MonitoringAlertUpsert {
	u.SetNull(monitoringalert.FieldDetail)
	return u
}

// SetResolved sets the "resolved" field.
func (u *MonitoringAlertUpsert) SetResolved(v bool) *MonitoringAlertUpsert {
	u.Set(monitoringalert.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *MonitoringAlertUpsert) UpdateResolved() *MonitoringAlertUpsert {
	u.SetExcluded(monitoringalert.FieldResolved)
	return u
}

// SetResolvedBy sets the "resolved_by" field.
func (u *MonitoringAlertUpsert) SetResolvedBy(v string) *MonitoringAlertUpsert {
	u.Set(monitoringalert.FieldResolvedBy, v)
	return u
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *MonitoringAlertUpsert) UpdateResolvedBy() *MonitoringAlertUpsert {
	u.SetExcluded(monitoringalert.FieldResolvedBy)
	return u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *MonitoringAlertUpsert) ClearResolvedBy() *MonitoringAlertUpsert {
	u.SetNull(monitoringalert.FieldResolvedBy)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *MonitoringAlertUpsert) SetResolvedAt(v time.Time) *MonitoringAlertUpsert {
	u.Set(monitoringalert.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *MonitoringAlertUpsert) UpdateResolvedAt() *MonitoringAlertUpsert {
	u.SetExcluded(monitoringalert.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *MonitoringAlertUpsert) ClearResolvedAt() *MonitoringAlertUpsert {
	u.SetNull(monitoringalert.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MonitoringAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoringalert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitoringAlertUpsertOne) UpdateNewValues() *MonitoringAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(monitoringalert.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(monitoringalert.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(monitoringalert.FieldSource)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(monitoringalert.FieldEventType)
		}
		if _, exists := u.create.mutation.SubjectType(); exists {
			s.SetIgnore(monitoringalert.FieldSubjectType)
		}
		if _, exists := u.create.mutation.SubjectID(); exists {
			s.SetIgnore(monitoringalert.FieldSubjectID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitoringAlert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MonitoringAlertUpsertOne) Ignore() *MonitoringAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitoringAlertUpsertOne) DoNothing() *MonitoringAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitoringAlertCreate.OnConflict
// documentation for more info.
func (u *MonitoringAlertUpsertOne) Update(set func(*MonitoringAlertUpsert)) *MonitoringAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitoringAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringAlertUpsertOne) SetUpdatedAt(v time.Time) *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringAlertUpsertOne) UpdateUpdatedAt() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSeverity sets the "severity" field.
func (u *MonitoringAlertUpsertOne) SetSeverity(v monitoringalert.Severity) *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *MonitoringAlertUpsertOne) UpdateSeverity() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetDetail sets the "detail" field.
func (u *MonitoringAlertUpsertOne) SetDetail(v map[string]interface{}) *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *MonitoringAlertUpsertOne) UpdateDetail() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *MonitoringAlertUpsertOne) ClearDetail() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.ClearDetail()
	})
}

// SetResolved sets the "resolved" field.
func (u *MonitoringAlertUpsertOne) SetResolved(v bool) *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *MonitoringAlertUpsertOne) UpdateResolved() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *MonitoringAlertUpsertOne) SetResolvedBy(v string) *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *MonitoringAlertUpsertOne) UpdateResolvedBy() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *MonitoringAlertUpsertOne) ClearResolvedBy() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.ClearResolvedBy()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *MonitoringAlertUpsertOne) SetResolvedAt(v time.Time) *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *MonitoringAlertUpsertOne) UpdateResolvedAt() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *MonitoringAlertUpsertOne) ClearResolvedAt() *MonitoringAlertUpsertOne {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *MonitoringAlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MonitoringAlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitoringAlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MonitoringAlertUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MonitoringAlertUpsertOne.ID is not supported by MySQL driver. Use MonitoringAlertUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MonitoringAlertUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MonitoringAlertCreateBulk is the builder for creating many MonitoringAlert entities in bulk.
type MonitoringAlertCreateBulk struct {
	config
	err      error
	builders []*MonitoringAlertCreate
	conflict []sql.ConflictOption
}

// Save creates the MonitoringAlert entities in the database.
func (_c *MonitoringAlertCreateBulk) Save(ctx context.Context) ([]*MonitoringAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitoringAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitoringAlertMutation)
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
func (_c *MonitoringAlertCreateBulk) SaveX(ctx context.Context) []*MonitoringAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoringAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoringAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitoringAlert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitoringAlertUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitoringAlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *MonitoringAlertUpsertBulk {
	_c.conflict = opts
	return &MonitoringAlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitoringAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitoringAlertCreateBulk) OnConflictColumns(columns ...string) *MonitoringAlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitoringAlertUpsertBulk{
		create: _c,
	}
}

// MonitoringAlertUpsertBulk is the builder for "upsert"-ing
// a bulk of MonitoringAlert nodes.
type MonitoringAlertUpsertBulk struct {
	create *MonitoringAlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MonitoringAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoringalert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitoringAlertUpsertBulk) UpdateNewValues() *MonitoringAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(monitoringalert.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(monitoringalert.FieldCreatedAt)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(monitoringalert.FieldSource)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(monitoringalert.FieldEventType)
			}
			if _, exists := b.mutation.SubjectType(); exists {
				s.SetIgnore(monitoringalert.FieldSubjectType)
			}
			if _, exists := b.mutation.SubjectID(); exists {
				s.SetIgnore(monitoringalert.FieldSubjectID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitoringAlert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MonitoringAlertUpsertBulk) Ignore() *MonitoringAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitoringAlertUpsertBulk) DoNothing() *MonitoringAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitoringAlertCreateBulk.OnConflict
// documentation for more info.
func (u *MonitoringAlertUpsertBulk) Update(set func(*MonitoringAlertUpsert)) *MonitoringAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitoringAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringAlertUpsertBulk) SetUpdatedAt(v time.Time) *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringAlertUpsertBulk) UpdateUpdatedAt() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSeverity sets the "severity" field.
func (u *MonitoringAlertUpsertBulk) SetSeverity(v monitoringalert.Severity) *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *MonitoringAlertUpsertBulk) UpdateSeverity() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetDetail sets the "detail" field.
func (u *MonitoringAlertUpsertBulk) SetDetail(v map[string]interface{}) *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *MonitoringAlertUpsertBulk) UpdateDetail() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *MonitoringAlertUpsertBulk) ClearDetail() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.ClearDetail()
	})
}

// SetResolved sets the "resolved" field.
func (u *MonitoringAlertUpsertBulk) SetResolved(v bool) *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *MonitoringAlertUpsertBulk) UpdateResolved() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *MonitoringAlertUpsertBulk) SetResolvedBy(v string) *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *MonitoringAlertUpsertBulk) UpdateResolvedBy() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *MonitoringAlertUpsertBulk) ClearResolvedBy() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.ClearResolvedBy()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *MonitoringAlertUpsertBulk) SetResolvedAt(v time.Time) *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *MonitoringAlertUpsertBulk) UpdateResolvedAt() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *MonitoringAlertUpsertBulk) ClearResolvedAt() *MonitoringAlertUpsertBulk {
	return u.Update(func(s *MonitoringAlertUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *MonitoringAlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MonitoringAlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MonitoringAlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitoringAlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
