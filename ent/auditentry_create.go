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
	"versus-arena.io/arena/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditEntryCreate) SetCreatedAt(v time.Time) *AuditEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableCreatedAt(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *AuditEntryCreate) SetActor(v string) *AuditEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AuditEntryCreate) SetAction(v string) *AuditEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSubjectType sets the "subject_type" field.
func (_c *AuditEntryCreate) SetSubjectType(v string) *AuditEntryCreate {
	_c.mutation.SetSubjectType(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *AuditEntryCreate) SetSubjectID(v string) *AuditEntryCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableSubjectID(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetRequestContext sets the "request_context" field.
func (_c *AuditEntryCreate) SetRequestContext(v map[string]interface{}) *AuditEntryCreate {
	_c.mutation.SetRequestContext(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *AuditEntryCreate) SetDetail(v map[string]interface{}) *AuditEntryCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AuditEntryCreate) SetSuccess(v bool) *AuditEntryCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableSuccess(v *bool) *AuditEntryCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *AuditEntryCreate) SetErrorCode(v string) *AuditEntryCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableErrorCode(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetSourceDecisionID sets the "source_decision_id" field.
func (_c *AuditEntryCreate) SetSourceDecisionID(v string) *AuditEntryCreate {
	_c.mutation.SetSourceDecisionID(v)
	return _c
}

// SetNillableSourceDecisionID sets the "source_decision_id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableSourceDecisionID(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetSourceDecisionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditEntryCreate) SetID(v string) *AuditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := auditentry.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditEntry.created_at"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "AuditEntry.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := auditentry.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := auditentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectType(); !ok {
		return &ValidationError{Name: "subject_type", err: errors.New(`ent: missing required field "AuditEntry.subject_type"`)}
	}
	if v, ok := _c.mutation.SubjectType(); ok {
		if err := auditentry.SubjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "subject_type", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.subject_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AuditEntry.success"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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
			return nil, fmt.Errorf("unexpected AuditEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(auditentry.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SubjectType(); ok {
		_spec.SetField(auditentry.FieldSubjectType, field.TypeString, value)
		_node.SubjectType = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(auditentry.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.RequestContext(); ok {
		_spec.SetField(auditentry.FieldRequestContext, field.TypeJSON, value)
		_node.RequestContext = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(auditentry.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(auditentry.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(auditentry.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = value
	}
	if value, ok := _c.mutation.SourceDecisionID(); ok {
		_spec.SetField(auditentry.FieldSourceDecisionID, field.TypeString, value)
		_node.SourceDecisionID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditEntry.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditEntryCreate) OnConflict(opts ...sql.ConflictOption) *AuditEntryUpsertOne {
	_c.conflict = opts
	return &AuditEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditEntryCreate) OnConflictColumns(columns ...string) *AuditEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditEntryUpsertOne{
		create: _c,
	}
}

type (
	// AuditEntryUpsertOne is the builder for "upsert"-ing
	//  one AuditEntry node.
	AuditEntryUpsertOne struct {
		create *AuditEntryCreate
	}

	// AuditEntryUpsert is the "OnConflict" setter.
	AuditEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetRequestContext sets the "request_context" field.
func (u *AuditEntryUpsert) SetRequestContext(v map[string]interface{}) *AuditEntryUpsert {
	u.Set(auditentry.FieldRequestContext, v)
	return u
}

// UpdateRequestContext sets the "request_context" field to the value that was provided on create.
func (u *AuditEntryUpsert) UpdateRequestContext() *AuditEntryUpsert {
	u.SetExcluded(auditentry.FieldRequestContext)
	return u
}

// ClearRequestContext clears the value of the "request_context" field.
func (u *AuditEntryUpsert) ClearRequestContext() *AuditEntryUpsert {
	u.SetNull(auditentry.FieldRequestContext)
	return u
}

// SetDetail sets the "detail" field.
func (u *AuditEntryUpsert) SetDetail(v map[string]interface{}) *AuditEntryUpsert {
	u.Set(auditentry.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *AuditEntryUpsert) UpdateDetail() *AuditEntryUpsert {
	u.SetExcluded(auditentry.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *AuditEntryUpsert) ClearDetail() *AuditEntryUpsert {
	u.SetNull(auditentry.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditEntryUpsertOne) UpdateNewValues() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(auditentry.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Actor(); exists {
			s.SetIgnore(auditentry.FieldActor)
		}
		if _, exists := u.create.mutation.Action(); exists {
			s.SetIgnore(auditentry.FieldAction)
		}
		if _, exists := u.create.mutation.SubjectType(); exists {
			s.SetIgnore(auditentry.FieldSubjectType)
		}
		if _, exists := u.create.mutation.SubjectID(); exists {
			s.SetIgnore(auditentry.FieldSubjectID)
		}
		if _, exists := u.create.mutation.Success(); exists {
			s.SetIgnore(auditentry.FieldSuccess)
		}
		if _, exists := u.create.mutation.ErrorCode(); exists {
			s.SetIgnore(auditentry.FieldErrorCode)
		}
		if _, exists := u.create.mutation.SourceDecisionID(); exists {
			s.SetIgnore(auditentry.FieldSourceDecisionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditEntryUpsertOne) Ignore() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditEntryUpsertOne) DoNothing() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditEntryCreate.OnConflict
// documentation for more info.
func (u *AuditEntryUpsertOne) Update(set func(*AuditEntryUpsert)) *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequestContext sets the "request_context" field.
func (u *AuditEntryUpsertOne) SetRequestContext(v map[string]interface{}) *AuditEntryUpsertOne {
	return u.Update(func(s *AuditEntryUpsert) {
		s.SetRequestContext(v)
	})
}

// UpdateRequestContext sets the "request_context" field to the value that was provided on create.
func (u *AuditEntryUpsertOne) UpdateRequestContext() *AuditEntryUpsertOne {
	return u.Update(func(s *AuditEntryUpsert) {
		s.UpdateRequestContext()
	})
}

// ClearRequestContext clears the value of the "request_context" field.
func (u *AuditEntryUpsertOne) ClearRequestContext() *AuditEntryUpsertOne {
	return u.Update(func(s *AuditEntryUpsert) {
		s.ClearRequestContext()
	})
}

// SetDetail sets the "detail" field.
func (u *AuditEntryUpsertOne) SetDetail(v map[string]interface{}) *AuditEntryUpsertOne {
	return u.Update(func(s *AuditEntryUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *AuditEntryUpsertOne) UpdateDetail() *AuditEntryUpsertOne {
	return u.Update(func(s *AuditEntryUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *AuditEntryUpsertOne) ClearDetail() *AuditEntryUpsertOne {
	return u.Update(func(s *AuditEntryUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *AuditEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditEntryUpsertOne.ID is not supported by MySQL driver. Use AuditEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditEntryUpsertBulk {
	_c.conflict = opts
	return &AuditEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditEntryCreateBulk) OnConflictColumns(columns ...string) *AuditEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditEntryUpsertBulk{
		create: _c,
	}
}

// AuditEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditEntry nodes.
type AuditEntryUpsertBulk struct {
	create *AuditEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditEntryUpsertBulk) UpdateNewValues() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(auditentry.FieldCreatedAt)
			}
			if _, exists := b.mutation.Actor(); exists {
				s.SetIgnore(auditentry.FieldActor)
			}
			if _, exists := b.mutation.Action(); exists {
				s.SetIgnore(auditentry.FieldAction)
			}
			if _, exists := b.mutation.SubjectType(); exists {
				s.SetIgnore(auditentry.FieldSubjectType)
			}
			if _, exists := b.mutation.SubjectID(); exists {
				s.SetIgnore(auditentry.FieldSubjectID)
			}
			if _, exists := b.mutation.Success(); exists {
				s.SetIgnore(auditentry.FieldSuccess)
			}
			if _, exists := b.mutation.ErrorCode(); exists {
				s.SetIgnore(auditentry.FieldErrorCode)
			}
			if _, exists := b.mutation.SourceDecisionID(); exists {
				s.SetIgnore(auditentry.FieldSourceDecisionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditEntryUpsertBulk) Ignore() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditEntryUpsertBulk) DoNothing() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditEntryCreateBulk.OnConflict
// documentation for more info.
func (u *AuditEntryUpsertBulk) Update(set func(*AuditEntryUpsert)) *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequestContext sets the "request_context" field.
func (u *AuditEntryUpsertBulk) SetRequestContext(v map[string]interface{}) *AuditEntryUpsertBulk {
	return u.Update(func(s *AuditEntryUpsert) {
		s.SetRequestContext(v)
	})
}

// UpdateRequestContext sets the "request_context" field to the value that was provided on create.
func (u *AuditEntryUpsertBulk) UpdateRequestContext() *AuditEntryUpsertBulk {
	return u.Update(func(s *AuditEntryUpsert) {
		s.UpdateRequestContext()
	})
}

// ClearRequestContext clears the value of the "request_context" field.
func (u *AuditEntryUpsertBulk) ClearRequestContext() *AuditEntryUpsertBulk {
	return u.Update(func(s *AuditEntryUpsert) {
		s.ClearRequestContext()
	})
}

// SetDetail sets the "detail" field.
func (u *AuditEntryUpsertBulk) SetDetail(v map[string]interface{}) *AuditEntryUpsertBulk {
	return u.Update(func(s *AuditEntryUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *AuditEntryUpsertBulk) UpdateDetail() *AuditEntryUpsertBulk {
	return u.Update(func(s *AuditEntryUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *AuditEntryUpsertBulk) ClearDetail() *AuditEntryUpsertBulk {
	return u.Update(func(s *AuditEntryUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *AuditEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
