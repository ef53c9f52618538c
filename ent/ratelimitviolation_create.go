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
	"versus-arena.io/arena/ent/ratelimitviolation"
)

// RateLimitViolationCreate is the builder for creating a RateLimitViolation entity.
type RateLimitViolationCreate struct {
	config
	mutation *RateLimitViolationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RateLimitViolationCreate) SetCreatedAt(v time.Time) *RateLimitViolationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RateLimitViolationCreate) SetNillableCreatedAt(v *time.Time) *RateLimitViolationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcedure sets the "procedure" field.
func (_c *RateLimitViolationCreate) SetProcedure(v string) *RateLimitViolationCreate {
	_c.mutation.SetProcedure(v)
	return _c
}

// SetScopeKey sets the "scope_key" field.
func (_c *RateLimitViolationCreate) SetScopeKey(v string) *RateLimitViolationCreate {
	_c.mutation.SetScopeKey(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *RateLimitViolationCreate) SetActor(v string) *RateLimitViolationCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *RateLimitViolationCreate) SetNillableActor(v *string) *RateLimitViolationCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *RateLimitViolationCreate) SetWindowStart(v time.Time) *RateLimitViolationCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *RateLimitViolationCreate) SetCount(v int) *RateLimitViolationCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetAllowedPerMinute sets the "allowed_per_minute" field.
func (_c *RateLimitViolationCreate) SetAllowedPerMinute(v int) *RateLimitViolationCreate {
	_c.mutation.SetAllowedPerMinute(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RateLimitViolationCreate) SetID(v string) *RateLimitViolationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RateLimitViolationMutation object of the builder.
func (_c *RateLimitViolationCreate) Mutation() *RateLimitViolationMutation {
	return _c.mutation
}

// Save creates the RateLimitViolation in the database.
func (_c *RateLimitViolationCreate) Save(ctx context.Context) (*RateLimitViolation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitViolationCreate) SaveX(ctx context.Context) *RateLimitViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitViolationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitViolationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitViolationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ratelimitviolation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitViolationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RateLimitViolation.created_at"`)}
	}
	if _, ok := _c.mutation.Procedure(); !ok {
		return &ValidationError{Name: "procedure", err: errors.New(`ent: missing required field "RateLimitViolation.procedure"`)}
	}
	if v, ok := _c.mutation.Procedure(); ok {
		if err := ratelimitviolation.ProcedureValidator(v); err != nil {
			return &ValidationError{Name: "procedure", err: fmt.Errorf(`ent: validator failed for field "RateLimitViolation.procedure": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeKey(); !ok {
		return &ValidationError{Name: "scope_key", err: errors.New(`ent: missing required field "RateLimitViolation.scope_key"`)}
	}
	if v, ok := _c.mutation.ScopeKey(); ok {
		if err := ratelimitviolation.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "RateLimitViolation.scope_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "RateLimitViolation.window_start"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "RateLimitViolation.count"`)}
	}
	if _, ok := _c.mutation.AllowedPerMinute(); !ok {
		return &ValidationError{Name: "allowed_per_minute", err: errors.New(`ent: missing required field "RateLimitViolation.allowed_per_minute"`)}
	}
	return nil
}

func (_c *RateLimitViolationCreate) sqlSave(ctx context.Context) (*RateLimitViolation, error) {
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
			return nil, fmt.Errorf("unexpected RateLimitViolation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RateLimitViolationCreate) createSpec() (*RateLimitViolation, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitViolation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitviolation.Table, sqlgraph.NewFieldSpec(ratelimitviolation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ratelimitviolation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Procedure(); ok {
		_spec.SetField(ratelimitviolation.FieldProcedure, field.TypeString, value)
		_node.Procedure = value
	}
	if value, ok := _c.mutation.ScopeKey(); ok {
		_spec.SetField(ratelimitviolation.FieldScopeKey, field.TypeString, value)
		_node.ScopeKey = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(ratelimitviolation.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitviolation.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(ratelimitviolation.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.AllowedPerMinute(); ok {
		_spec.SetField(ratelimitviolation.FieldAllowedPerMinute, field.TypeInt, value)
		_node.AllowedPerMinute = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitViolation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitViolationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitViolationCreate) OnConflict(opts ...sql.ConflictOption) *RateLimitViolationUpsertOne {
	_c.conflict = opts
	return &RateLimitViolationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitViolation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitViolationCreate) OnConflictColumns(columns ...string) *RateLimitViolationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitViolationUpsertOne{
		create: _c,
	}
}

type (
	// RateLimitViolationUpsertOne is the builder for "upsert"-ing
	//  one RateLimitViolation node.
	RateLimitViolationUpsertOne struct {
		create *RateLimitViolationCreate
	}

	// RateLimitViolationUpsert is the "OnConflict" setter.
	RateLimitViolationUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RateLimitViolation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ratelimitviolation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RateLimitViolationUpsertOne) UpdateNewValues() *RateLimitViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ratelimitviolation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ratelimitviolation.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Procedure(); exists {
			s.SetIgnore(ratelimitviolation.FieldProcedure)
		}
		if _, exists := u.create.mutation.ScopeKey(); exists {
			s.SetIgnore(ratelimitviolation.FieldScopeKey)
		}
		if _, exists := u.create.mutation.Actor(); exists {
			s.SetIgnore(ratelimitviolation.FieldActor)
		}
		if _, exists := u.create.mutation.WindowStart(); exists {
			s.SetIgnore(ratelimitviolation.FieldWindowStart)
		}
		if _, exists := u.create.mutation.Count(); exists {
			s.SetIgnore(ratelimitviolation.FieldCount)
		}
		if _, exists := u.create.mutation.AllowedPerMinute(); exists {
			s.SetIgnore(ratelimitviolation.FieldAllowedPerMinute)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitViolation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RateLimitViolationUpsertOne) Ignore() *RateLimitViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitViolationUpsertOne) DoNothing() *RateLimitViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitViolationCreate.OnConflict
// documentation for more info.
func (u *RateLimitViolationUpsertOne) Update(set func(*RateLimitViolationUpsert)) *RateLimitViolationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitViolationUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *RateLimitViolationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitViolationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitViolationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RateLimitViolationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RateLimitViolationUpsertOne.ID is not supported by MySQL driver. Use RateLimitViolationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RateLimitViolationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RateLimitViolationCreateBulk is the builder for creating many RateLimitViolation entities in bulk.
type RateLimitViolationCreateBulk struct {
	config
	err      error
	builders []*RateLimitViolationCreate
	conflict []sql.ConflictOption
}

// Save creates the RateLimitViolation entities in the database.
func (_c *RateLimitViolationCreateBulk) Save(ctx context.Context) ([]*RateLimitViolation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitViolation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitViolationMutation)
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
func (_c *RateLimitViolationCreateBulk) SaveX(ctx context.Context) []*RateLimitViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitViolationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitViolationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitViolation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitViolationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitViolationCreateBulk) OnConflict(opts ...sql.ConflictOption) *RateLimitViolationUpsertBulk {
	_c.conflict = opts
	return &RateLimitViolationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitViolation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitViolationCreateBulk) OnConflictColumns(columns ...string) *RateLimitViolationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitViolationUpsertBulk{
		create: _c,
	}
}

// RateLimitViolationUpsertBulk is the builder for "upsert"-ing
// a bulk of RateLimitViolation nodes.
type RateLimitViolationUpsertBulk struct {
	create *RateLimitViolationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RateLimitViolation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ratelimitviolation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RateLimitViolationUpsertBulk) UpdateNewValues() *RateLimitViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ratelimitviolation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ratelimitviolation.FieldCreatedAt)
			}
			if _, exists := b.mutation.Procedure(); exists {
				s.SetIgnore(ratelimitviolation.FieldProcedure)
			}
			if _, exists := b.mutation.ScopeKey(); exists {
				s.SetIgnore(ratelimitviolation.FieldScopeKey)
			}
			if _, exists := b.mutation.Actor(); exists {
				s.SetIgnore(ratelimitviolation.FieldActor)
			}
			if _, exists := b.mutation.WindowStart(); exists {
				s.SetIgnore(ratelimitviolation.FieldWindowStart)
			}
			if _, exists := b.mutation.Count(); exists {
				s.SetIgnore(ratelimitviolation.FieldCount)
			}
			if _, exists := b.mutation.AllowedPerMinute(); exists {
				s.SetIgnore(ratelimitviolation.FieldAllowedPerMinute)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitViolation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RateLimitViolationUpsertBulk) Ignore() *RateLimitViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitViolationUpsertBulk) DoNothing() *RateLimitViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitViolationCreateBulk.OnConflict
// documentation for more info.
func (u *RateLimitViolationUpsertBulk) Update(set func(*RateLimitViolationUpsert)) *RateLimitViolationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitViolationUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *RateLimitViolationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RateLimitViolationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitViolationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitViolationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
