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
	"versus-arena.io/arena/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdate) SetUsername(v string) *UserUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdate) SetNillableUsername(v *string) *UserUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdate) ClearEmail() *UserUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdate) SetEmailVerified(v bool) *UserUpdate {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdate) ClearPasswordHash() *UserUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetBattlesParticipated sets the "battles_participated" field.
func (_u *UserUpdate) SetBattlesParticipated(v int) *UserUpdate {
	_u.mutation.ResetBattlesParticipated()
	_u.mutation.SetBattlesParticipated(v)
	return _u
}

// SetNillableBattlesParticipated sets the "battles_participated" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBattlesParticipated(v *int) *UserUpdate {
	if v != nil {
		_u.SetBattlesParticipated(*v)
	}
	return _u
}

// AddBattlesParticipated adds value to the "battles_participated" field.
func (_u *UserUpdate) AddBattlesParticipated(v int) *UserUpdate {
	_u.mutation.AddBattlesParticipated(v)
	return _u
}

// SetBattlesCompleted sets the "battles_completed" field.
func (_u *UserUpdate) SetBattlesCompleted(v int) *UserUpdate {
	_u.mutation.ResetBattlesCompleted()
	_u.mutation.SetBattlesCompleted(v)
	return _u
}

// SetNillableBattlesCompleted sets the "battles_completed" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBattlesCompleted(v *int) *UserUpdate {
	if v != nil {
		_u.SetBattlesCompleted(*v)
	}
	return _u
}

// AddBattlesCompleted adds value to the "battles_completed" field.
func (_u *UserUpdate) AddBattlesCompleted(v int) *UserUpdate {
	_u.mutation.AddBattlesCompleted(v)
	return _u
}

// SetBattlesRefused sets the "battles_refused" field.
func (_u *UserUpdate) SetBattlesRefused(v int) *UserUpdate {
	_u.mutation.ResetBattlesRefused()
	_u.mutation.SetBattlesRefused(v)
	return _u
}

// SetNillableBattlesRefused sets the "battles_refused" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBattlesRefused(v *int) *UserUpdate {
	if v != nil {
		_u.SetBattlesRefused(*v)
	}
	return _u
}

// AddBattlesRefused adds value to the "battles_refused" field.
func (_u *UserUpdate) AddBattlesRefused(v int) *UserUpdate {
	_u.mutation.AddBattlesRefused(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *UserUpdate) SetEngagementScore(v int) *UserUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEngagementScore(v *int) *UserUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *UserUpdate) AddEngagementScore(v int) *UserUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserUpdate) SetEnabled(v bool) *UserUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEnabled(v *bool) *UserUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := user.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "User.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BattlesParticipated(); ok {
		if err := user.BattlesParticipatedValidator(v); err != nil {
			return &ValidationError{Name: "battles_participated", err: fmt.Errorf(`ent: validator failed for field "User.battles_participated": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BattlesCompleted(); ok {
		if err := user.BattlesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "battles_completed", err: fmt.Errorf(`ent: validator failed for field "User.battles_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BattlesRefused(); ok {
		if err := user.BattlesRefusedValidator(v); err != nil {
			return &ValidationError{Name: "battles_refused", err: fmt.Errorf(`ent: validator failed for field "User.battles_refused": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BattlesParticipated(); ok {
		_spec.SetField(user.FieldBattlesParticipated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBattlesParticipated(); ok {
		_spec.AddField(user.FieldBattlesParticipated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BattlesCompleted(); ok {
		_spec.SetField(user.FieldBattlesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBattlesCompleted(); ok {
		_spec.AddField(user.FieldBattlesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BattlesRefused(); ok {
		_spec.SetField(user.FieldBattlesRefused, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBattlesRefused(); ok {
		_spec.AddField(user.FieldBattlesRefused, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(user.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(user.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(user.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdateOne) SetUsername(v string) *UserUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableUsername(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdateOne) ClearEmail() *UserUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdateOne) SetEmailVerified(v bool) *UserUpdateOne {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdateOne) ClearPasswordHash() *UserUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetBattlesParticipated sets the "battles_participated" field.
func (_u *UserUpdateOne) SetBattlesParticipated(v int) *UserUpdateOne {
	_u.mutation.ResetBattlesParticipated()
	_u.mutation.SetBattlesParticipated(v)
	return _u
}

// SetNillableBattlesParticipated sets the "battles_participated" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBattlesParticipated(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetBattlesParticipated(*v)
	}
	return _u
}

// AddBattlesParticipated adds value to the "battles_participated" field.
func (_u *UserUpdateOne) AddBattlesParticipated(v int) *UserUpdateOne {
	_u.mutation.AddBattlesParticipated(v)
	return _u
}

// SetBattlesCompleted sets the "battles_completed" field.
func (_u *UserUpdateOne) SetBattlesCompleted(v int) *UserUpdateOne {
	_u.mutation.ResetBattlesCompleted()
	_u.mutation.SetBattlesCompleted(v)
	return _u
}

// SetNillableBattlesCompleted sets the "battles_completed" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBattlesCompleted(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetBattlesCompleted(*v)
	}
	return _u
}

// AddBattlesCompleted adds value to the "battles_completed" field.
func (_u *UserUpdateOne) AddBattlesCompleted(v int) *UserUpdateOne {
	_u.mutation.AddBattlesCompleted(v)
	return _u
}

// SetBattlesRefused sets the "battles_refused" field.
func (_u *UserUpdateOne) SetBattlesRefused(v int) *UserUpdateOne {
	_u.mutation.ResetBattlesRefused()
	_u.mutation.SetBattlesRefused(v)
	return _u
}

// SetNillableBattlesRefused sets the "battles_refused" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBattlesRefused(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetBattlesRefused(*v)
	}
	return _u
}

// AddBattlesRefused adds value to the "battles_refused" field.
func (_u *UserUpdateOne) AddBattlesRefused(v int) *UserUpdateOne {
	_u.mutation.AddBattlesRefused(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *UserUpdateOne) SetEngagementScore(v int) *UserUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEngagementScore(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *UserUpdateOne) AddEngagementScore(v int) *UserUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserUpdateOne) SetEnabled(v bool) *UserUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEnabled(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := user.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "User.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BattlesParticipated(); ok {
		if err := user.BattlesParticipatedValidator(v); err != nil {
			return &ValidationError{Name: "battles_participated", err: fmt.Errorf(`ent: validator failed for field "User.battles_participated": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BattlesCompleted(); ok {
		if err := user.BattlesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "battles_completed", err: fmt.Errorf(`ent: validator failed for field "User.battles_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BattlesRefused(); ok {
		if err := user.BattlesRefusedValidator(v); err != nil {
			return &ValidationError{Name: "battles_refused", err: fmt.Errorf(`ent: validator failed for field "User.battles_refused": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BattlesParticipated(); ok {
		_spec.SetField(user.FieldBattlesParticipated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBattlesParticipated(); ok {
		_spec.AddField(user.FieldBattlesParticipated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BattlesCompleted(); ok {
		_spec.SetField(user.FieldBattlesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBattlesCompleted(); ok {
		_spec.AddField(user.FieldBattlesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BattlesRefused(); ok {
		_spec.SetField(user.FieldBattlesRefused, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBattlesRefused(); ok {
		_spec.AddField(user.FieldBattlesRefused, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(user.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(user.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(user.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
