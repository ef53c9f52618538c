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
	"versus-arena.io/arena/ent/comment"
)

// CommentCreate is the builder for creating a Comment entity.
type CommentCreate struct {
	config
	mutation *CommentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommentCreate) SetCreatedAt(v time.Time) *CommentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommentCreate) SetNillableCreatedAt(v *time.Time) *CommentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommentCreate) SetUpdatedAt(v time.Time) *CommentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommentCreate) SetNillableUpdatedAt(v *time.Time) *CommentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBattleID sets the "battle_id" field.
func (_c *CommentCreate) SetBattleID(v string) *CommentCreate {
	_c.mutation.SetBattleID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *CommentCreate) SetAuthorID(v string) *CommentCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *CommentCreate) SetBody(v string) *CommentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetVisible sets the "visible" field.
func (_c *CommentCreate) SetVisible(v bool) *CommentCreate {
	_c.mutation.SetVisible(v)
	return _c
}

// SetNillableVisible sets the "visible" field if the given value is not nil.
func (_c *CommentCreate) SetNillableVisible(v *bool) *CommentCreate {
	if v != nil {
		_c.SetVisible(*v)
	}
	return _c
}

// SetHiddenReason sets the "hidden_reason" field.
func (_c *CommentCreate) SetHiddenReason(v string) *CommentCreate {
	_c.mutation.SetHiddenReason(v)
	return _c
}

// SetNillableHiddenReason sets the "hidden_reason" field if the given value is not nil.
func (_c *CommentCreate) SetNillableHiddenReason(v *string) *CommentCreate {
	if v != nil {
		_c.SetHiddenReason(*v)
	}
	return _c
}

// SetHiddenBy sets the "hidden_by" field.
func (_c *CommentCreate) SetHiddenBy(v string) *CommentCreate {
	_c.mutation.SetHiddenBy(v)
	return _c
}

// SetNillableHiddenBy sets the "hidden_by" field if the given value is not nil.
func (_c *CommentCreate) SetNillableHiddenBy(v *string) *CommentCreate {
	if v != nil {
		_c.SetHiddenBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommentCreate) SetID(v string) *CommentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommentMutation object of the builder.
func (_c *CommentCreate) Mutation() *CommentMutation {
	return _c.mutation
}

// Save creates the Comment in the database.
func (_c *CommentCreate) Save(ctx context.Context) (*Comment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommentCreate) SaveX(ctx context.Context) *Comment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := comment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := comment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Visible(); !ok {
		v := comment.DefaultVisible
		_c.mutation.SetVisible(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Comment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Comment.updated_at"`)}
	}
	if _, ok := _c.mutation.BattleID(); !ok {
		return &ValidationError{Name: "battle_id", err: errors.New(`ent: missing required field "Comment.battle_id"`)}
	}
	if v, ok := _c.mutation.BattleID(); ok {
		if err := comment.BattleIDValidator(v); err != nil {
			return &ValidationError{Name: "battle_id", err: fmt.Errorf(`ent: validator failed for field "Comment.battle_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Comment.author_id"`)}
	}
	if v, ok := _c.mutation.AuthorID(); ok {
		if err := comment.AuthorIDValidator(v); err != nil {
			return &ValidationError{Name: "author_id", err: fmt.Errorf(`ent: validator failed for field "Comment.author_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Comment.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := comment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Comment.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Visible(); !ok {
		return &ValidationError{Name: "visible", err: errors.New(`ent: missing required field "Comment.visible"`)}
	}
	return nil
}

func (_c *CommentCreate) sqlSave(ctx context.Context) (*Comment, error) {
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
			return nil, fmt.Errorf("unexpected Comment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommentCreate) createSpec() (*Comment, *sqlgraph.CreateSpec) {
	var (
		_node = &Comment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(comment.Table, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(comment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(comment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BattleID(); ok {
		_spec.SetField(comment.FieldBattleID, field.TypeString, value)
		_node.BattleID = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(comment.FieldAuthorID, field.TypeString, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(comment.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Visible(); ok {
		_spec.SetField(comment.FieldVisible, field.TypeBool, value)
		_node.Visible = value
	}
	if value, ok := _c.mutation.HiddenReason(); ok {
		_spec.SetField(comment.FieldHiddenReason, field.TypeString, value)
		_node.HiddenReason = value
	}
	if value, ok := _c.mutation.HiddenBy(); ok {
		_spec.SetField(comment.FieldHiddenBy, field.TypeString, value)
		_node.HiddenBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Comment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommentCreate) OnConflict(opts ...sql.ConflictOption) *CommentUpsertOne {
	_c.conflict = opts
	return &CommentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommentCreate) OnConflictColumns(columns ...string) *CommentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommentUpsertOne{
		create: _c,
	}
}

type (
	// CommentUpsertOne is the builder for "upsert"-ing
	//  one Comment node.
	CommentUpsertOne struct {
		create *CommentCreate
	}

	// CommentUpsert is the "OnConflict" setter.
	CommentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CommentUpsert) SetUpdatedAt(v time.Time) *CommentUpsert {
	u.Set(comment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommentUpsert) UpdateUpdatedAt() *CommentUpsert {
	u.SetExcluded(comment.FieldUpdatedAt)
	return u
}

// SetBody sets the "body" field.
func (u *CommentUpsert) SetBody(v string) *CommentUpsert {
	u.Set(comment.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CommentUpsert) UpdateBody() *CommentUpsert {
	u.SetExcluded(comment.FieldBody)
	return u
}

// SetVisible sets the "visible" field.
func (u *CommentUpsert) SetVisible(v bool) *CommentUpsert {
	u.Set(comment.FieldVisible, v)
	return u
}

// UpdateVisible sets the "visible" field to the value that was provided on create.
func (u *CommentUpsert) UpdateVisible() *CommentUpsert {
	u.SetExcluded(comment.FieldVisible)
	return u
}

// SetHiddenReason sets the "hidden_reason" field.
func (u *CommentUpsert) SetHiddenReason(v string) *CommentUpsert {
	u.Set(comment.FieldHiddenReason, v)
	return u
}

// UpdateHiddenReason sets the "hidden_reason" field to the value that was provided on create.
func (u *CommentUpsert) UpdateHiddenReason() *CommentUpsert {
	u.SetExcluded(comment.FieldHiddenReason)
	return u
}

// ClearHiddenReason clears the value of the "hidden_reason" field.
func (u *CommentUpsert) ClearHiddenReason() *CommentUpsert {
	u.SetNull(comment.FieldHiddenReason)
	return u
}

// SetHiddenBy sets the "hidden_by" field.
func (u *CommentUpsert) SetHiddenBy(v string) *CommentUpsert {
	u.Set(comment.FieldHiddenBy, v)
	return u
}

// UpdateHiddenBy sets the "hidden_by" field to the value that was provided on create.
func (u *CommentUpsert) UpdateHiddenBy() *CommentUpsert {
	u.SetExcluded(comment.FieldHiddenBy)
	return u
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (u *CommentUpsert) ClearHiddenBy() *CommentUpsert {
	u.SetNull(comment.FieldHiddenBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(comment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommentUpsertOne) UpdateNewValues() *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(comment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(comment.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.BattleID(); exists {
			s.SetIgnore(comment.FieldBattleID)
		}
		if _, exists := u.create.mutation.AuthorID(); exists {
			s.SetIgnore(comment.FieldAuthorID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Comment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommentUpsertOne) Ignore() *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommentUpsertOne) DoNothing() *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommentCreate.OnConflict
// documentation for more info.
func (u *CommentUpsertOne) Update(set func(*CommentUpsert)) *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommentUpsertOne) SetUpdatedAt(v time.Time) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateUpdatedAt() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBody sets the "body" field.
func (u *CommentUpsertOne) SetBody(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateBody() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateBody()
	})
}

// SetVisible sets the "visible" field.
func (u *CommentUpsertOne) SetVisible(v bool) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetVisible(v)
	})
}

// UpdateVisible sets the "visible" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateVisible() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateVisible()
	})
}

// SetHiddenReason sets the "hidden_reason" field.
func (u *CommentUpsertOne) SetHiddenReason(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetHiddenReason(v)
	})
}

// UpdateHiddenReason sets the "hidden_reason" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateHiddenReason() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateHiddenReason()
	})
}

// ClearHiddenReason clears the value of the "hidden_reason" field.
func (u *CommentUpsertOne) ClearHiddenReason() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.ClearHiddenReason()
	})
}

// SetHiddenBy sets the "hidden_by" field.
func (u *CommentUpsertOne) SetHiddenBy(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetHiddenBy(v)
	})
}

// UpdateHiddenBy sets the "hidden_by" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateHiddenBy() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateHiddenBy()
	})
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (u *CommentUpsertOne) ClearHiddenBy() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.ClearHiddenBy()
	})
}

// Exec executes the query.
func (u *CommentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CommentUpsertOne.ID is not supported by MySQL driver. Use CommentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommentCreateBulk is the builder for creating many Comment entities in bulk.
type CommentCreateBulk struct {
	config
	err      error
	builders []*CommentCreate
	conflict []sql.ConflictOption
}

// Save creates the Comment entities in the database.
func (_c *CommentCreateBulk) Save(ctx context.Context) ([]*Comment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Comment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommentMutation)
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
func (_c *CommentCreateBulk) SaveX(ctx context.Context) []*Comment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Comment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommentCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommentUpsertBulk {
	_c.conflict = opts
	return &CommentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommentCreateBulk) OnConflictColumns(columns ...string) *CommentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommentUpsertBulk{
		create: _c,
	}
}

// CommentUpsertBulk is the builder for "upsert"-ing
// a bulk of Comment nodes.
type CommentUpsertBulk struct {
	create *CommentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(comment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommentUpsertBulk) UpdateNewValues() *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(comment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(comment.FieldCreatedAt)
			}
			if _, exists := b.mutation.BattleID(); exists {
				s.SetIgnore(comment.FieldBattleID)
			}
			if _, exists := b.mutation.AuthorID(); exists {
				s.SetIgnore(comment.FieldAuthorID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommentUpsertBulk) Ignore() *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommentUpsertBulk) DoNothing() *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommentCreateBulk.OnConflict
// documentation for more info.
func (u *CommentUpsertBulk) Update(set func(*CommentUpsert)) *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommentUpsertBulk) SetUpdatedAt(v time.Time) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateUpdatedAt() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBody sets the "body" field.
func (u *CommentUpsertBulk) SetBody(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateBody() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateBody()
	})
}

// SetVisible sets the "visible" field.
func (u *CommentUpsertBulk) SetVisible(v bool) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetVisible(v)
	})
}

// UpdateVisible sets the "visible" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateVisible() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateVisible()
	})
}

// SetHiddenReason sets the "hidden_reason" field.
func (u *CommentUpsertBulk) SetHiddenReason(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetHiddenReason(v)
	})
}

// UpdateHiddenReason sets the "hidden_reason" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateHiddenReason() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateHiddenReason()
	})
}

// ClearHiddenReason clears the value of the "hidden_reason" field.
func (u *CommentUpsertBulk) ClearHiddenReason() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.ClearHiddenReason()
	})
}

// SetHiddenBy sets the "hidden_by" field.
func (u *CommentUpsertBulk) SetHiddenBy(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetHiddenBy(v)
	})
}

// UpdateHiddenBy sets the "hidden_by" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateHiddenBy() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateHiddenBy()
	})
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (u *CommentUpsertBulk) ClearHiddenBy() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.ClearHiddenBy()
	})
}

// Exec executes the query.
func (u *CommentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CommentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
