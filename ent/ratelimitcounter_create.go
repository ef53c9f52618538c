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
	"versus-arena.io/arena/ent/ratelimitcounter"
)

// RateLimitCounterCreate is the builder for creating a RateLimitCounter entity.
type RateLimitCounterCreate struct {
	config
	mutation *RateLimitCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcedure sets the "procedure" field.
func (_c *RateLimitCounterCreate) SetProcedure(v string) *RateLimitCounterCreate {
	_c.mutation.SetProcedure(v)
	return _c
}

// SetScopeKey sets the "scope_key" field.
func (_c *RateLimitCounterCreate) SetScopeKey(v string) *RateLimitCounterCreate {
	_c.mutation.SetScopeKey(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *RateLimitCounterCreate) SetWindowStart(v time.Time) *RateLimitCounterCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *RateLimitCounterCreate) SetCount(v int) *RateLimitCounterCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *RateLimitCounterCreate) SetNillableCount(v *int) *RateLimitCounterCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// Mutation returns the RateLimitCounterMutation object of the builder.
func (_c *RateLimitCounterCreate) Mutation() *RateLimitCounterMutation {
	return _c.mutation
}

// Save creates the RateLimitCounter in the database.
func (_c *RateLimitCounterCreate) Save(ctx context.Context) (*RateLimitCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitCounterCreate) SaveX(ctx context.Context) *RateLimitCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitCounterCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := ratelimitcounter.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitCounterCreate) check() error {
	if _, ok := _c.mutation.Procedure(); !ok {
		return &ValidationError{Name: "procedure", err: errors.New(`ent: missing required field "RateLimitCounter.procedure"`)}
	}
	if v, ok := _c.mutation.Procedure(); ok {
		if err := ratelimitcounter.ProcedureValidator(v); err != nil {
			return &ValidationError{Name: "procedure", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.procedure": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeKey(); !ok {
		return &ValidationError{Name: "scope_key", err: errors.New(`ent: missing required field "RateLimitCounter.scope_key"`)}
	}
	if v, ok := _c.mutation.ScopeKey(); ok {
		if err := ratelimitcounter.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.scope_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "RateLimitCounter.window_start"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "RateLimitCounter.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := ratelimitcounter.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "RateLimitCounter.count": %w`, err)}
		}
	}
	return nil
}

func (_c *RateLimitCounterCreate) sqlSave(ctx context.Context) (*RateLimitCounter, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RateLimitCounterCreate) createSpec() (*RateLimitCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitcounter.Table, sqlgraph.NewFieldSpec(ratelimitcounter.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Procedure(); ok {
		_spec.SetField(ratelimitcounter.FieldProcedure, field.TypeString, value)
		_node.Procedure = value
	}
	if value, ok := _c.mutation.ScopeKey(); ok {
		_spec.SetField(ratelimitcounter.FieldScopeKey, field.TypeString, value)
		_node.ScopeKey = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitcounter.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(ratelimitcounter.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitCounter.Create().
//		SetProcedure(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitCounterUpsert) {
//			SetProcedure(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitCounterCreate) OnConflict(opts ...sql.ConflictOption) *RateLimitCounterUpsertOne {
	_c.conflict = opts
	return &RateLimitCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitCounterCreate) OnConflictColumns(columns ...string) *RateLimitCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitCounterUpsertOne{
		create: _c,
	}
}

type (
	// RateLimitCounterUpsertOne is the builder for "upsert"-ing
	//  one RateLimitCounter node.
	RateLimitCounterUpsertOne struct {
		create *RateLimitCounterCreate
	}

	// RateLimitCounterUpsert is the "OnConflict" setter.
	RateLimitCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetProcedure sets the "procedure" field.
func (u *RateLimitCounterUpsert) SetProcedure(v string) *RateLimitCounterUpsert {
	u.Set(ratelimitcounter.FieldProcedure, v)
	return u
}

// UpdateProcedure sets the "procedure" field to the value that was provided on create.
func (u *RateLimitCounterUpsert) UpdateProcedure() *RateLimitCounterUpsert {
	u.SetExcluded(ratelimitcounter.FieldProcedure)
	return u
}

// SetScopeKey sets the "scope_key" field.
func (u *RateLimitCounterUpsert) SetScopeKey(v string) *RateLimitCounterUpsert {
	u.Set(ratelimitcounter.FieldScopeKey, v)
	return u
}

// UpdateScopeKey sets the "scope_key" field to the value that was provided on create.
func (u *RateLimitCounterUpsert) UpdateScopeKey() *RateLimitCounterUpsert {
	u.SetExcluded(ratelimitcounter.FieldScopeKey)
	return u
}

// SetWindowStart sets the "window_start" field.
func (u *RateLimitCounterUpsert) SetWindowStart(v time.Time) *RateLimitCounterUpsert {
	u.Set(ratelimitcounter.FieldWindowStart, v)
	return u
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *RateLimitCounterUpsert) UpdateWindowStart() *RateLimitCounterUpsert {
	u.SetExcluded(ratelimitcounter.FieldWindowStart)
	return u
}

// SetCount sets the "count" field.
func (u *RateLimitCounterUpsert) SetCount(v int) *RateLimitCounterUpsert {
	u.Set(ratelimitcounter.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *RateLimitCounterUpsert) UpdateCount() *RateLimitCounterUpsert {
	u.SetExcluded(ratelimitcounter.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *RateLimitCounterUpsert) AddCount(v int) *RateLimitCounterUpsert {
	u.Add(ratelimitcounter.FieldCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RateLimitCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RateLimitCounterUpsertOne) UpdateNewValues() *RateLimitCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RateLimitCounterUpsertOne) Ignore() *RateLimitCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitCounterUpsertOne) DoNothing() *RateLimitCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitCounterCreate.OnConflict
// documentation for more info.
func (u *RateLimitCounterUpsertOne) Update(set func(*RateLimitCounterUpsert)) *RateLimitCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcedure sets the "procedure" field.
func (u *RateLimitCounterUpsertOne) SetProcedure(v string) *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetProcedure(v)
	})
}

// UpdateProcedure sets the "procedure" field to the value that was provided on create.
func (u *RateLimitCounterUpsertOne) UpdateProcedure() *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateProcedure()
	})
}

// SetScopeKey sets the "scope_key" field.
func (u *RateLimitCounterUpsertOne) SetScopeKey(v string) *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetScopeKey(v)
	})
}

// UpdateScopeKey sets the "scope_key" field to the value that was provided on create.
func (u *RateLimitCounterUpsertOne) UpdateScopeKey() *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateScopeKey()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *RateLimitCounterUpsertOne) SetWindowStart(v time.Time) *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *RateLimitCounterUpsertOne) UpdateWindowStart() *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateWindowStart()
	})
}

// SetCount sets the "count" field.
func (u *RateLimitCounterUpsertOne) SetCount(v int) *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *RateLimitCounterUpsertOne) AddCount(v int) *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *RateLimitCounterUpsertOne) UpdateCount() *RateLimitCounterUpsertOne {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *RateLimitCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RateLimitCounterUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RateLimitCounterUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RateLimitCounterCreateBulk is the builder for creating many RateLimitCounter entities in bulk.
type RateLimitCounterCreateBulk struct {
	config
	err      error
	builders []*RateLimitCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the RateLimitCounter entities in the database.
func (_c *RateLimitCounterCreateBulk) Save(ctx context.Context) ([]*RateLimitCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitCounterMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RateLimitCounterCreateBulk) SaveX(ctx context.Context) []*RateLimitCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitCounterUpsert) {
//			SetProcedure(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *RateLimitCounterUpsertBulk {
	_c.conflict = opts
	return &RateLimitCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitCounterCreateBulk) OnConflictColumns(columns ...string) *RateLimitCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitCounterUpsertBulk{
		create: _c,
	}
}

// RateLimitCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of RateLimitCounter nodes.
type RateLimitCounterUpsertBulk struct {
	create *RateLimitCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RateLimitCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RateLimitCounterUpsertBulk) UpdateNewValues() *RateLimitCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RateLimitCounterUpsertBulk) Ignore() *RateLimitCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitCounterUpsertBulk) DoNothing() *RateLimitCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitCounterCreateBulk.OnConflict
// documentation for more info.
func (u *RateLimitCounterUpsertBulk) Update(set func(*RateLimitCounterUpsert)) *RateLimitCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcedure sets the "procedure" field.
func (u *RateLimitCounterUpsertBulk) SetProcedure(v string) *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetProcedure(v)
	})
}

// UpdateProcedure sets the "procedure" field to the value that was provided on create.
func (u *RateLimitCounterUpsertBulk) UpdateProcedure() *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateProcedure()
	})
}

// SetScopeKey sets the "scope_key" field.
func (u *RateLimitCounterUpsertBulk) SetScopeKey(v string) *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetScopeKey(v)
	})
}

// UpdateScopeKey sets the "scope_key" field to the value that was provided on create.
func (u *RateLimitCounterUpsertBulk) UpdateScopeKey() *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateScopeKey()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *RateLimitCounterUpsertBulk) SetWindowStart(v time.Time) *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *RateLimitCounterUpsertBulk) UpdateWindowStart() *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateWindowStart()
	})
}

// SetCount sets the "count" field.
func (u *RateLimitCounterUpsertBulk) SetCount(v int) *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *RateLimitCounterUpsertBulk) AddCount(v int) *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *RateLimitCounterUpsertBulk) UpdateCount() *RateLimitCounterUpsertBulk {
	return u.Update(func(s *RateLimitCounterUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *RateLimitCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RateLimitCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
