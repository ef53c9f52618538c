// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"versus-arena.io/arena/ent/auditentry"
	"versus-arena.io/arena/ent/battle"
	"versus-arena.io/arena/ent/comment"
	"versus-arena.io/arena/ent/enginesetting"
	"versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/ent/monitoringalert"
	"versus-arena.io/arena/ent/notification"
	"versus-arena.io/arena/ent/predicate"
	"versus-arena.io/arena/ent/ratelimitcounter"
	"versus-arena.io/arena/ent/ratelimitviolation"
	"versus-arena.io/arena/ent/submission"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/ent/vote"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry         = "AuditEntry"
	TypeBattle             = "Battle"
	TypeComment            = "Comment"
	TypeEngineSetting      = "EngineSetting"
	TypeModerationAction   = "ModerationAction"
	TypeMonitoringAlert    = "MonitoringAlert"
	TypeNotification       = "Notification"
	TypeRateLimitCounter   = "RateLimitCounter"
	TypeRateLimitViolation = "RateLimitViolation"
	TypeSubmission         = "Submission"
	TypeUser               = "User"
	TypeVote               = "Vote"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	actor              *string
	action             *string
	subject_type       *string
	subject_id         *string
	request_context    *map[string]interface{}
	detail             *map[string]interface{}
	success            *bool
	error_code         *string
	source_decision_id *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AuditEntry, error)
	predicates         []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActor sets the "actor" field.
func (m *AuditEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEntryMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetSubjectType sets the "subject_type" field.
func (m *AuditEntryMutation) SetSubjectType(s string) {
	m.subject_type = &s
}

// SubjectType returns the value of the "subject_type" field in the mutation.
func (m *AuditEntryMutation) SubjectType() (r string, exists bool) {
	v := m.subject_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectType returns the old "subject_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSubjectType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectType: %w", err)
	}
	return oldValue.SubjectType, nil
}

// ResetSubjectType resets all changes to the "subject_type" field.
func (m *AuditEntryMutation) ResetSubjectType() {
	m.subject_type = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *AuditEntryMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *AuditEntryMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *AuditEntryMutation) ClearSubjectID() {
	m.subject_id = nil
	m.clearedFields[auditentry.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *AuditEntryMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *AuditEntryMutation) ResetSubjectID() {
	m.subject_id = nil
	delete(m.clearedFields, auditentry.FieldSubjectID)
}

// SetRequestContext sets the "request_context" field.
func (m *AuditEntryMutation) SetRequestContext(value map[string]interface{}) {
	m.request_context = &value
}

// RequestContext returns the value of the "request_context" field in the mutation.
func (m *AuditEntryMutation) RequestContext() (r map[string]interface{}, exists bool) {
	v := m.request_context
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestContext returns the old "request_context" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldRequestContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestContext: %w", err)
	}
	return oldValue.RequestContext, nil
}

// ClearRequestContext clears the value of the "request_context" field.
func (m *AuditEntryMutation) ClearRequestContext() {
	m.request_context = nil
	m.clearedFields[auditentry.FieldRequestContext] = struct{}{}
}

// RequestContextCleared returns if the "request_context" field was cleared in this mutation.
func (m *AuditEntryMutation) RequestContextCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldRequestContext]
	return ok
}

// ResetRequestContext resets all changes to the "request_context" field.
func (m *AuditEntryMutation) ResetRequestContext() {
	m.request_context = nil
	delete(m.clearedFields, auditentry.FieldRequestContext)
}

// SetDetail sets the "detail" field.
func (m *AuditEntryMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditEntryMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditEntryMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditentry.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditEntryMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditEntryMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditentry.FieldDetail)
}

// SetSuccess sets the "success" field.
func (m *AuditEntryMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AuditEntryMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AuditEntryMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorCode sets the "error_code" field.
func (m *AuditEntryMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *AuditEntryMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldErrorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *AuditEntryMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[auditentry.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *AuditEntryMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *AuditEntryMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, auditentry.FieldErrorCode)
}

// SetSourceDecisionID sets the "source_decision_id" field.
func (m *AuditEntryMutation) SetSourceDecisionID(s string) {
	m.source_decision_id = &s
}

// SourceDecisionID returns the value of the "source_decision_id" field in the mutation.
func (m *AuditEntryMutation) SourceDecisionID() (r string, exists bool) {
	v := m.source_decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDecisionID returns the old "source_decision_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSourceDecisionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDecisionID: %w", err)
	}
	return oldValue.SourceDecisionID, nil
}

// ClearSourceDecisionID clears the value of the "source_decision_id" field.
func (m *AuditEntryMutation) ClearSourceDecisionID() {
	m.source_decision_id = nil
	m.clearedFields[auditentry.FieldSourceDecisionID] = struct{}{}
}

// SourceDecisionIDCleared returns if the "source_decision_id" field was cleared in this mutation.
func (m *AuditEntryMutation) SourceDecisionIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldSourceDecisionID]
	return ok
}

// ResetSourceDecisionID resets all changes to the "source_decision_id" field.
func (m *AuditEntryMutation) ResetSourceDecisionID() {
	m.source_decision_id = nil
	delete(m.clearedFields, auditentry.FieldSourceDecisionID)
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	if m.actor != nil {
		fields = append(fields, auditentry.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.subject_type != nil {
		fields = append(fields, auditentry.FieldSubjectType)
	}
	if m.subject_id != nil {
		fields = append(fields, auditentry.FieldSubjectID)
	}
	if m.request_context != nil {
		fields = append(fields, auditentry.FieldRequestContext)
	}
	if m.detail != nil {
		fields = append(fields, auditentry.FieldDetail)
	}
	if m.success != nil {
		fields = append(fields, auditentry.FieldSuccess)
	}
	if m.error_code != nil {
		fields = append(fields, auditentry.FieldErrorCode)
	}
	if m.source_decision_id != nil {
		fields = append(fields, auditentry.FieldSourceDecisionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	case auditentry.FieldActor:
		return m.Actor()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldSubjectType:
		return m.SubjectType()
	case auditentry.FieldSubjectID:
		return m.SubjectID()
	case auditentry.FieldRequestContext:
		return m.RequestContext()
	case auditentry.FieldDetail:
		return m.Detail()
	case auditentry.FieldSuccess:
		return m.Success()
	case auditentry.FieldErrorCode:
		return m.ErrorCode()
	case auditentry.FieldSourceDecisionID:
		return m.SourceDecisionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditentry.FieldActor:
		return m.OldActor(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldSubjectType:
		return m.OldSubjectType(ctx)
	case auditentry.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case auditentry.FieldRequestContext:
		return m.OldRequestContext(ctx)
	case auditentry.FieldDetail:
		return m.OldDetail(ctx)
	case auditentry.FieldSuccess:
		return m.OldSuccess(ctx)
	case auditentry.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case auditentry.FieldSourceDecisionID:
		return m.OldSourceDecisionID(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldSubjectType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectType(v)
		return nil
	case auditentry.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case auditentry.FieldRequestContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestContext(v)
		return nil
	case auditentry.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditentry.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case auditentry.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case auditentry.FieldSourceDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDecisionID(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldSubjectID) {
		fields = append(fields, auditentry.FieldSubjectID)
	}
	if m.FieldCleared(auditentry.FieldRequestContext) {
		fields = append(fields, auditentry.FieldRequestContext)
	}
	if m.FieldCleared(auditentry.FieldDetail) {
		fields = append(fields, auditentry.FieldDetail)
	}
	if m.FieldCleared(auditentry.FieldErrorCode) {
		fields = append(fields, auditentry.FieldErrorCode)
	}
	if m.FieldCleared(auditentry.FieldSourceDecisionID) {
		fields = append(fields, auditentry.FieldSourceDecisionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	case auditentry.FieldRequestContext:
		m.ClearRequestContext()
		return nil
	case auditentry.FieldDetail:
		m.ClearDetail()
		return nil
	case auditentry.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case auditentry.FieldSourceDecisionID:
		m.ClearSourceDecisionID()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditentry.FieldActor:
		m.ResetActor()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldSubjectType:
		m.ResetSubjectType()
		return nil
	case auditentry.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case auditentry.FieldRequestContext:
		m.ResetRequestContext()
		return nil
	case auditentry.FieldDetail:
		m.ResetDetail()
		return nil
	case auditentry.FieldSuccess:
		m.ResetSuccess()
		return nil
	case auditentry.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case auditentry.FieldSourceDecisionID:
		m.ResetSourceDecisionID()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// BattleMutation represents an operation that mutates the Battle nodes in the graph.
type BattleMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	created_at              *time.Time
	updated_at              *time.Time
	slug                    *string
	participant_a           *string
	participant_b           *string
	submission_a            *string
	submission_b            *string
	status                  *battle.Status
	response_deadline       *time.Time
	starts_at               *time.Time
	voting_ends_at          *time.Time
	custom_duration_days    *int
	addcustom_duration_days *int
	extension_count         *int
	addextension_count      *int
	votes_a                 *int
	addvotes_a              *int
	votes_b                 *int
	addvotes_b              *int
	winner                  *string
	accepted_at             *time.Time
	rejected_at             *time.Time
	admin_validated_at      *time.Time
	rejection_reason        *string
	created_by              *string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Battle, error)
	predicates              []predicate.Battle
}

var _ ent.Mutation = (*BattleMutation)(nil)

// battleOption allows management of the mutation configuration using functional options.
type battleOption func(*BattleMutation)

// newBattleMutation creates new mutation for the Battle entity.
func newBattleMutation(c config, op Op, opts ...battleOption) *BattleMutation {
	m := &BattleMutation{
		config:        c,
		op:            op,
		typ:           TypeBattle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBattleID sets the ID field of the mutation.
func withBattleID(id string) battleOption {
	return func(m *BattleMutation) {
		var (
			err   error
			once  sync.Once
			value *Battle
		)
		m.oldValue = func(ctx context.Context) (*Battle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Battle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBattle sets the old Battle of the mutation.
func withBattle(node *Battle) battleOption {
	return func(m *BattleMutation) {
		m.oldValue = func(context.Context) (*Battle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BattleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BattleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Battle entities.
func (m *BattleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BattleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BattleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Battle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BattleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BattleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BattleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BattleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BattleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BattleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSlug sets the "slug" field.
func (m *BattleMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *BattleMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *BattleMutation) ResetSlug() {
	m.slug = nil
}

// SetParticipantA sets the "participant_a" field.
func (m *BattleMutation) SetParticipantA(s string) {
	m.participant_a = &s
}

// ParticipantA returns the value of the "participant_a" field in the mutation.
func (m *BattleMutation) ParticipantA() (r string, exists bool) {
	v := m.participant_a
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantA returns the old "participant_a" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldParticipantA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantA: %w", err)
	}
	return oldValue.ParticipantA, nil
}

// ClearParticipantA clears the value of the "participant_a" field.
func (m *BattleMutation) ClearParticipantA() {
	m.participant_a = nil
	m.clearedFields[battle.FieldParticipantA] = struct{}{}
}

// ParticipantACleared returns if the "participant_a" field was cleared in this mutation.
func (m *BattleMutation) ParticipantACleared() bool {
	_, ok := m.clearedFields[battle.FieldParticipantA]
	return ok
}

// ResetParticipantA resets all changes to the "participant_a" field.
func (m *BattleMutation) ResetParticipantA() {
	m.participant_a = nil
	delete(m.clearedFields, battle.FieldParticipantA)
}

// SetParticipantB sets the "participant_b" field.
func (m *BattleMutation) SetParticipantB(s string) {
	m.participant_b = &s
}

// ParticipantB returns the value of the "participant_b" field in the mutation.
func (m *BattleMutation) ParticipantB() (r string, exists bool) {
	v := m.participant_b
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantB returns the old "participant_b" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldParticipantB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantB: %w", err)
	}
	return oldValue.ParticipantB, nil
}

// ClearParticipantB clears the value of the "participant_b" field.
func (m *BattleMutation) ClearParticipantB() {
	m.participant_b = nil
	m.clearedFields[battle.FieldParticipantB] = struct{}{}
}

// ParticipantBCleared returns if the "participant_b" field was cleared in this mutation.
func (m *BattleMutation) ParticipantBCleared() bool {
	_, ok := m.clearedFields[battle.FieldParticipantB]
	return ok
}

// ResetParticipantB resets all changes to the "participant_b" field.
func (m *BattleMutation) ResetParticipantB() {
	m.participant_b = nil
	delete(m.clearedFields, battle.FieldParticipantB)
}

// SetSubmissionA sets the "submission_a" field.
func (m *BattleMutation) SetSubmissionA(s string) {
	m.submission_a = &s
}

// SubmissionA returns the value of the "submission_a" field in the mutation.
func (m *BattleMutation) SubmissionA() (r string, exists bool) {
	v := m.submission_a
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionA returns the old "submission_a" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldSubmissionA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionA: %w", err)
	}
	return oldValue.SubmissionA, nil
}

// ClearSubmissionA clears the value of the "submission_a" field.
func (m *BattleMutation) ClearSubmissionA() {
	m.submission_a = nil
	m.clearedFields[battle.FieldSubmissionA] = struct{}{}
}

// SubmissionACleared returns if the "submission_a" field was cleared in this mutation.
func (m *BattleMutation) SubmissionACleared() bool {
	_, ok := m.clearedFields[battle.FieldSubmissionA]
	return ok
}

// ResetSubmissionA resets all changes to the "submission_a" field.
func (m *BattleMutation) ResetSubmissionA() {
	m.submission_a = nil
	delete(m.clearedFields, battle.FieldSubmissionA)
}

// SetSubmissionB sets the "submission_b" field.
func (m *BattleMutation) SetSubmissionB(s string) {
	m.submission_b = &s
}

// SubmissionB returns the value of the "submission_b" field in the mutation.
func (m *BattleMutation) SubmissionB() (r string, exists bool) {
	v := m.submission_b
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionB returns the old "submission_b" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldSubmissionB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionB: %w", err)
	}
	return oldValue.SubmissionB, nil
}

// ClearSubmissionB clears the value of the "submission_b" field.
func (m *BattleMutation) ClearSubmissionB() {
	m.submission_b = nil
	m.clearedFields[battle.FieldSubmissionB] = struct{}{}
}

// SubmissionBCleared returns if the "submission_b" field was cleared in this mutation.
func (m *BattleMutation) SubmissionBCleared() bool {
	_, ok := m.clearedFields[battle.FieldSubmissionB]
	return ok
}

// ResetSubmissionB resets all changes to the "submission_b" field.
func (m *BattleMutation) ResetSubmissionB() {
	m.submission_b = nil
	delete(m.clearedFields, battle.FieldSubmissionB)
}

// SetStatus sets the "status" field.
func (m *BattleMutation) SetStatus(b battle.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BattleMutation) Status() (r battle.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldStatus(ctx context.Context) (v battle.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BattleMutation) ResetStatus() {
	m.status = nil
}

// SetResponseDeadline sets the "response_deadline" field.
func (m *BattleMutation) SetResponseDeadline(t time.Time) {
	m.response_deadline = &t
}

// ResponseDeadline returns the value of the "response_deadline" field in the mutation.
func (m *BattleMutation) ResponseDeadline() (r time.Time, exists bool) {
	v := m.response_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseDeadline returns the old "response_deadline" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldResponseDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseDeadline: %w", err)
	}
	return oldValue.ResponseDeadline, nil
}

// ClearResponseDeadline clears the value of the "response_deadline" field.
func (m *BattleMutation) ClearResponseDeadline() {
	m.response_deadline = nil
	m.clearedFields[battle.FieldResponseDeadline] = struct{}{}
}

// ResponseDeadlineCleared returns if the "response_deadline" field was cleared in this mutation.
func (m *BattleMutation) ResponseDeadlineCleared() bool {
	_, ok := m.clearedFields[battle.FieldResponseDeadline]
	return ok
}

// ResetResponseDeadline resets all changes to the "response_deadline" field.
func (m *BattleMutation) ResetResponseDeadline() {
	m.response_deadline = nil
	delete(m.clearedFields, battle.FieldResponseDeadline)
}

// SetStartsAt sets the "starts_at" field.
func (m *BattleMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *BattleMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldStartsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ClearStartsAt clears the value of the "starts_at" field.
func (m *BattleMutation) ClearStartsAt() {
	m.starts_at = nil
	m.clearedFields[battle.FieldStartsAt] = struct{}{}
}

// StartsAtCleared returns if the "starts_at" field was cleared in this mutation.
func (m *BattleMutation) StartsAtCleared() bool {
	_, ok := m.clearedFields[battle.FieldStartsAt]
	return ok
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *BattleMutation) ResetStartsAt() {
	m.starts_at = nil
	delete(m.clearedFields, battle.FieldStartsAt)
}

// SetVotingEndsAt sets the "voting_ends_at" field.
func (m *BattleMutation) SetVotingEndsAt(t time.Time) {
	m.voting_ends_at = &t
}

// VotingEndsAt returns the value of the "voting_ends_at" field in the mutation.
func (m *BattleMutation) VotingEndsAt() (r time.Time, exists bool) {
	v := m.voting_ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVotingEndsAt returns the old "voting_ends_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldVotingEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotingEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotingEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotingEndsAt: %w", err)
	}
	return oldValue.VotingEndsAt, nil
}

// ClearVotingEndsAt clears the value of the "voting_ends_at" field.
func (m *BattleMutation) ClearVotingEndsAt() {
	m.voting_ends_at = nil
	m.clearedFields[battle.FieldVotingEndsAt] = struct{}{}
}

// VotingEndsAtCleared returns if the "voting_ends_at" field was cleared in this mutation.
func (m *BattleMutation) VotingEndsAtCleared() bool {
	_, ok := m.clearedFields[battle.FieldVotingEndsAt]
	return ok
}

// ResetVotingEndsAt resets all changes to the "voting_ends_at" field.
func (m *BattleMutation) ResetVotingEndsAt() {
	m.voting_ends_at = nil
	delete(m.clearedFields, battle.FieldVotingEndsAt)
}

// SetCustomDurationDays sets the "custom_duration_days" field.
func (m *BattleMutation) SetCustomDurationDays(i int) {
	m.custom_duration_days = &i
	m.addcustom_duration_days = nil
}

// CustomDurationDays returns the value of the "custom_duration_days" field in the mutation.
func (m *BattleMutation) CustomDurationDays() (r int, exists bool) {
	v := m.custom_duration_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomDurationDays returns the old "custom_duration_days" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldCustomDurationDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomDurationDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomDurationDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomDurationDays: %w", err)
	}
	return oldValue.CustomDurationDays, nil
}

// AddCustomDurationDays adds i to the "custom_duration_days" field.
func (m *BattleMutation) AddCustomDurationDays(i int) {
	if m.addcustom_duration_days != nil {
		*m.addcustom_duration_days += i
	} else {
		m.addcustom_duration_days = &i
	}
}

// AddedCustomDurationDays returns the value that was added to the "custom_duration_days" field in this mutation.
func (m *BattleMutation) AddedCustomDurationDays() (r int, exists bool) {
	v := m.addcustom_duration_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearCustomDurationDays clears the value of the "custom_duration_days" field.
func (m *BattleMutation) ClearCustomDurationDays() {
	m.custom_duration_days = nil
	m.addcustom_duration_days = nil
	m.clearedFields[battle.FieldCustomDurationDays] = struct{}{}
}

// CustomDurationDaysCleared returns if the "custom_duration_days" field was cleared in this mutation.
func (m *BattleMutation) CustomDurationDaysCleared() bool {
	_, ok := m.clearedFields[battle.FieldCustomDurationDays]
	return ok
}

// ResetCustomDurationDays resets all changes to the "custom_duration_days" field.
func (m *BattleMutation) ResetCustomDurationDays() {
	m.custom_duration_days = nil
	m.addcustom_duration_days = nil
	delete(m.clearedFields, battle.FieldCustomDurationDays)
}

// SetExtensionCount sets the "extension_count" field.
func (m *BattleMutation) SetExtensionCount(i int) {
	m.extension_count = &i
	m.addextension_count = nil
}

// ExtensionCount returns the value of the "extension_count" field in the mutation.
func (m *BattleMutation) ExtensionCount() (r int, exists bool) {
	v := m.extension_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExtensionCount returns the old "extension_count" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldExtensionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtensionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtensionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtensionCount: %w", err)
	}
	return oldValue.ExtensionCount, nil
}

// AddExtensionCount adds i to the "extension_count" field.
func (m *BattleMutation) AddExtensionCount(i int) {
	if m.addextension_count != nil {
		*m.addextension_count += i
	} else {
		m.addextension_count = &i
	}
}

// AddedExtensionCount returns the value that was added to the "extension_count" field in this mutation.
func (m *BattleMutation) AddedExtensionCount() (r int, exists bool) {
	v := m.addextension_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtensionCount resets all changes to the "extension_count" field.
func (m *BattleMutation) ResetExtensionCount() {
	m.extension_count = nil
	m.addextension_count = nil
}

// SetVotesA sets the "votes_a" field.
func (m *BattleMutation) SetVotesA(i int) {
	m.votes_a = &i
	m.addvotes_a = nil
}

// VotesA returns the value of the "votes_a" field in the mutation.
func (m *BattleMutation) VotesA() (r int, exists bool) {
	v := m.votes_a
	if v == nil {
		return
	}
	return *v, true
}

// OldVotesA returns the old "votes_a" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldVotesA(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotesA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotesA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotesA: %w", err)
	}
	return oldValue.VotesA, nil
}

// AddVotesA adds i to the "votes_a" field.
func (m *BattleMutation) AddVotesA(i int) {
	if m.addvotes_a != nil {
		*m.addvotes_a += i
	} else {
		m.addvotes_a = &i
	}
}

// AddedVotesA returns the value that was added to the "votes_a" field in this mutation.
func (m *BattleMutation) AddedVotesA() (r int, exists bool) {
	v := m.addvotes_a
	if v == nil {
		return
	}
	return *v, true
}

// ResetVotesA resets all changes to the "votes_a" field.
func (m *BattleMutation) ResetVotesA() {
	m.votes_a = nil
	m.addvotes_a = nil
}

// SetVotesB sets the "votes_b" field.
func (m *BattleMutation) SetVotesB(i int) {
	m.votes_b = &i
	m.addvotes_b = nil
}

// VotesB returns the value of the "votes_b" field in the mutation.
func (m *BattleMutation) VotesB() (r int, exists bool) {
	v := m.votes_b
	if v == nil {
		return
	}
	return *v, true
}

// OldVotesB returns the old "votes_b" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldVotesB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotesB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotesB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotesB: %w", err)
	}
	return oldValue.VotesB, nil
}

// AddVotesB adds i to the "votes_b" field.
func (m *BattleMutation) AddVotesB(i int) {
	if m.addvotes_b != nil {
		*m.addvotes_b += i
	} else {
		m.addvotes_b = &i
	}
}

// AddedVotesB returns the value that was added to the "votes_b" field in this mutation.
func (m *BattleMutation) AddedVotesB() (r int, exists bool) {
	v := m.addvotes_b
	if v == nil {
		return
	}
	return *v, true
}

// ResetVotesB resets all changes to the "votes_b" field.
func (m *BattleMutation) ResetVotesB() {
	m.votes_b = nil
	m.addvotes_b = nil
}

// SetWinner sets the "winner" field.
func (m *BattleMutation) SetWinner(s string) {
	m.winner = &s
}

// Winner returns the value of the "winner" field in the mutation.
func (m *BattleMutation) Winner() (r string, exists bool) {
	v := m.winner
	if v == nil {
		return
	}
	return *v, true
}

// OldWinner returns the old "winner" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldWinner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWinner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWinner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWinner: %w", err)
	}
	return oldValue.Winner, nil
}

// ClearWinner clears the value of the "winner" field.
func (m *BattleMutation) ClearWinner() {
	m.winner = nil
	m.clearedFields[battle.FieldWinner] = struct{}{}
}

// WinnerCleared returns if the "winner" field was cleared in this mutation.
func (m *BattleMutation) WinnerCleared() bool {
	_, ok := m.clearedFields[battle.FieldWinner]
	return ok
}

// ResetWinner resets all changes to the "winner" field.
func (m *BattleMutation) ResetWinner() {
	m.winner = nil
	delete(m.clearedFields, battle.FieldWinner)
}

// SetAcceptedAt sets the "accepted_at" field.
func (m *BattleMutation) SetAcceptedAt(t time.Time) {
	m.accepted_at = &t
}

// AcceptedAt returns the value of the "accepted_at" field in the mutation.
func (m *BattleMutation) AcceptedAt() (r time.Time, exists bool) {
	v := m.accepted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedAt returns the old "accepted_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldAcceptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedAt: %w", err)
	}
	return oldValue.AcceptedAt, nil
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (m *BattleMutation) ClearAcceptedAt() {
	m.accepted_at = nil
	m.clearedFields[battle.FieldAcceptedAt] = struct{}{}
}

// AcceptedAtCleared returns if the "accepted_at" field was cleared in this mutation.
func (m *BattleMutation) AcceptedAtCleared() bool {
	_, ok := m.clearedFields[battle.FieldAcceptedAt]
	return ok
}

// ResetAcceptedAt resets all changes to the "accepted_at" field.
func (m *BattleMutation) ResetAcceptedAt() {
	m.accepted_at = nil
	delete(m.clearedFields, battle.FieldAcceptedAt)
}

// SetRejectedAt sets the "rejected_at" field.
func (m *BattleMutation) SetRejectedAt(t time.Time) {
	m.rejected_at = &t
}

// RejectedAt returns the value of the "rejected_at" field in the mutation.
func (m *BattleMutation) RejectedAt() (r time.Time, exists bool) {
	v := m.rejected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedAt returns the old "rejected_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldRejectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedAt: %w", err)
	}
	return oldValue.RejectedAt, nil
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (m *BattleMutation) ClearRejectedAt() {
	m.rejected_at = nil
	m.clearedFields[battle.FieldRejectedAt] = struct{}{}
}

// RejectedAtCleared returns if the "rejected_at" field was cleared in this mutation.
func (m *BattleMutation) RejectedAtCleared() bool {
	_, ok := m.clearedFields[battle.FieldRejectedAt]
	return ok
}

// ResetRejectedAt resets all changes to the "rejected_at" field.
func (m *BattleMutation) ResetRejectedAt() {
	m.rejected_at = nil
	delete(m.clearedFields, battle.FieldRejectedAt)
}

// SetAdminValidatedAt sets the "admin_validated_at" field.
func (m *BattleMutation) SetAdminValidatedAt(t time.Time) {
	m.admin_validated_at = &t
}

// AdminValidatedAt returns the value of the "admin_validated_at" field in the mutation.
func (m *BattleMutation) AdminValidatedAt() (r time.Time, exists bool) {
	v := m.admin_validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminValidatedAt returns the old "admin_validated_at" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldAdminValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminValidatedAt: %w", err)
	}
	return oldValue.AdminValidatedAt, nil
}

// ClearAdminValidatedAt clears the value of the "admin_validated_at" field.
func (m *BattleMutation) ClearAdminValidatedAt() {
	m.admin_validated_at = nil
	m.clearedFields[battle.FieldAdminValidatedAt] = struct{}{}
}

// AdminValidatedAtCleared returns if the "admin_validated_at" field was cleared in this mutation.
func (m *BattleMutation) AdminValidatedAtCleared() bool {
	_, ok := m.clearedFields[battle.FieldAdminValidatedAt]
	return ok
}

// ResetAdminValidatedAt resets all changes to the "admin_validated_at" field.
func (m *BattleMutation) ResetAdminValidatedAt() {
	m.admin_validated_at = nil
	delete(m.clearedFields, battle.FieldAdminValidatedAt)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *BattleMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *BattleMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldRejectionReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *BattleMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[battle.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *BattleMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[battle.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *BattleMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, battle.FieldRejectionReason)
}

// SetCreatedBy sets the "created_by" field.
func (m *BattleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *BattleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Battle entity.
// If the Battle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BattleMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *BattleMutation) ResetCreatedBy() {
	m.created_by = nil
}

// Where appends a list predicates to the BattleMutation builder.
func (m *BattleMutation) Where(ps ...predicate.Battle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BattleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BattleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Battle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BattleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BattleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Battle).
func (m *BattleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BattleMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, battle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, battle.FieldUpdatedAt)
	}
	if m.slug != nil {
		fields = append(fields, battle.FieldSlug)
	}
	if m.participant_a != nil {
		fields = append(fields, battle.FieldParticipantA)
	}
	if m.participant_b != nil {
		fields = append(fields, battle.FieldParticipantB)
	}
	if m.submission_a != nil {
		fields = append(fields, battle.FieldSubmissionA)
	}
	if m.submission_b != nil {
		fields = append(fields, battle.FieldSubmissionB)
	}
	if m.status != nil {
		fields = append(fields, battle.FieldStatus)
	}
	if m.response_deadline != nil {
		fields = append(fields, battle.FieldResponseDeadline)
	}
	if m.starts_at != nil {
		fields = append(fields, battle.FieldStartsAt)
	}
	if m.voting_ends_at != nil {
		fields = append(fields, battle.FieldVotingEndsAt)
	}
	if m.custom_duration_days != nil {
		fields = append(fields, battle.FieldCustomDurationDays)
	}
	if m.extension_count != nil {
		fields = append(fields, battle.FieldExtensionCount)
	}
	if m.votes_a != nil {
		fields = append(fields, battle.FieldVotesA)
	}
	if m.votes_b != nil {
		fields = append(fields, battle.FieldVotesB)
	}
	if m.winner != nil {
		fields = append(fields, battle.FieldWinner)
	}
	if m.accepted_at != nil {
		fields = append(fields, battle.FieldAcceptedAt)
	}
	if m.rejected_at != nil {
		fields = append(fields, battle.FieldRejectedAt)
	}
	if m.admin_validated_at != nil {
		fields = append(fields, battle.FieldAdminValidatedAt)
	}
	if m.rejection_reason != nil {
		fields = append(fields, battle.FieldRejectionReason)
	}
	if m.created_by != nil {
		fields = append(fields, battle.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BattleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case battle.FieldCreatedAt:
		return m.CreatedAt()
	case battle.FieldUpdatedAt:
		return m.UpdatedAt()
	case battle.FieldSlug:
		return m.Slug()
	case battle.FieldParticipantA:
		return m.ParticipantA()
	case battle.FieldParticipantB:
		return m.ParticipantB()
	case battle.FieldSubmissionA:
		return m.SubmissionA()
	case battle.FieldSubmissionB:
		return m.SubmissionB()
	case battle.FieldStatus:
		return m.Status()
	case battle.FieldResponseDeadline:
		return m.ResponseDeadline()
	case battle.FieldStartsAt:
		return m.StartsAt()
	case battle.FieldVotingEndsAt:
		return m.VotingEndsAt()
	case battle.FieldCustomDurationDays:
		return m.CustomDurationDays()
	case battle.FieldExtensionCount:
		return m.ExtensionCount()
	case battle.FieldVotesA:
		return m.VotesA()
	case battle.FieldVotesB:
		return m.VotesB()
	case battle.FieldWinner:
		return m.Winner()
	case battle.FieldAcceptedAt:
		return m.AcceptedAt()
	case battle.FieldRejectedAt:
		return m.RejectedAt()
	case battle.FieldAdminValidatedAt:
		return m.AdminValidatedAt()
	case battle.FieldRejectionReason:
		return m.RejectionReason()
	case battle.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BattleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case battle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case battle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case battle.FieldSlug:
		return m.OldSlug(ctx)
	case battle.FieldParticipantA:
		return m.OldParticipantA(ctx)
	case battle.FieldParticipantB:
		return m.OldParticipantB(ctx)
	case battle.FieldSubmissionA:
		return m.OldSubmissionA(ctx)
	case battle.FieldSubmissionB:
		return m.OldSubmissionB(ctx)
	case battle.FieldStatus:
		return m.OldStatus(ctx)
	case battle.FieldResponseDeadline:
		return m.OldResponseDeadline(ctx)
	case battle.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case battle.FieldVotingEndsAt:
		return m.OldVotingEndsAt(ctx)
	case battle.FieldCustomDurationDays:
		return m.OldCustomDurationDays(ctx)
	case battle.FieldExtensionCount:
		return m.OldExtensionCount(ctx)
	case battle.FieldVotesA:
		return m.OldVotesA(ctx)
	case battle.FieldVotesB:
		return m.OldVotesB(ctx)
	case battle.FieldWinner:
		return m.OldWinner(ctx)
	case battle.FieldAcceptedAt:
		return m.OldAcceptedAt(ctx)
	case battle.FieldRejectedAt:
		return m.OldRejectedAt(ctx)
	case battle.FieldAdminValidatedAt:
		return m.OldAdminValidatedAt(ctx)
	case battle.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case battle.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Battle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BattleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case battle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case battle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case battle.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case battle.FieldParticipantA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantA(v)
		return nil
	case battle.FieldParticipantB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantB(v)
		return nil
	case battle.FieldSubmissionA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionA(v)
		return nil
	case battle.FieldSubmissionB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionB(v)
		return nil
	case battle.FieldStatus:
		v, ok := value.(battle.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case battle.FieldResponseDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseDeadline(v)
		return nil
	case battle.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case battle.FieldVotingEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotingEndsAt(v)
		return nil
	case battle.FieldCustomDurationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomDurationDays(v)
		return nil
	case battle.FieldExtensionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtensionCount(v)
		return nil
	case battle.FieldVotesA:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotesA(v)
		return nil
	case battle.FieldVotesB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotesB(v)
		return nil
	case battle.FieldWinner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWinner(v)
		return nil
	case battle.FieldAcceptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedAt(v)
		return nil
	case battle.FieldRejectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedAt(v)
		return nil
	case battle.FieldAdminValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminValidatedAt(v)
		return nil
	case battle.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case battle.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Battle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BattleMutation) AddedFields() []string {
	var fields []string
	if m.addcustom_duration_days != nil {
		fields = append(fields, battle.FieldCustomDurationDays)
	}
	if m.addextension_count != nil {
		fields = append(fields, battle.FieldExtensionCount)
	}
	if m.addvotes_a != nil {
		fields = append(fields, battle.FieldVotesA)
	}
	if m.addvotes_b != nil {
		fields = append(fields, battle.FieldVotesB)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BattleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case battle.FieldCustomDurationDays:
		return m.AddedCustomDurationDays()
	case battle.FieldExtensionCount:
		return m.AddedExtensionCount()
	case battle.FieldVotesA:
		return m.AddedVotesA()
	case battle.FieldVotesB:
		return m.AddedVotesB()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BattleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case battle.FieldCustomDurationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCustomDurationDays(v)
		return nil
	case battle.FieldExtensionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtensionCount(v)
		return nil
	case battle.FieldVotesA:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVotesA(v)
		return nil
	case battle.FieldVotesB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVotesB(v)
		return nil
	}
	return fmt.Errorf("unknown Battle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BattleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(battle.FieldParticipantA) {
		fields = append(fields, battle.FieldParticipantA)
	}
	if m.FieldCleared(battle.FieldParticipantB) {
		fields = append(fields, battle.FieldParticipantB)
	}
	if m.FieldCleared(battle.FieldSubmissionA) {
		fields = append(fields, battle.FieldSubmissionA)
	}
	if m.FieldCleared(battle.FieldSubmissionB) {
		fields = append(fields, battle.FieldSubmissionB)
	}
	if m.FieldCleared(battle.FieldResponseDeadline) {
		fields = append(fields, battle.FieldResponseDeadline)
	}
	if m.FieldCleared(battle.FieldStartsAt) {
		fields = append(fields, battle.FieldStartsAt)
	}
	if m.FieldCleared(battle.FieldVotingEndsAt) {
		fields = append(fields, battle.FieldVotingEndsAt)
	}
	if m.FieldCleared(battle.FieldCustomDurationDays) {
		fields = append(fields, battle.FieldCustomDurationDays)
	}
	if m.FieldCleared(battle.FieldWinner) {
		fields = append(fields, battle.FieldWinner)
	}
	if m.FieldCleared(battle.FieldAcceptedAt) {
		fields = append(fields, battle.FieldAcceptedAt)
	}
	if m.FieldCleared(battle.FieldRejectedAt) {
		fields = append(fields, battle.FieldRejectedAt)
	}
	if m.FieldCleared(battle.FieldAdminValidatedAt) {
		fields = append(fields, battle.FieldAdminValidatedAt)
	}
	if m.FieldCleared(battle.FieldRejectionReason) {
		fields = append(fields, battle.FieldRejectionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BattleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BattleMutation) ClearField(name string) error {
	switch name {
	case battle.FieldParticipantA:
		m.ClearParticipantA()
		return nil
	case battle.FieldParticipantB:
		m.ClearParticipantB()
		return nil
	case battle.FieldSubmissionA:
		m.ClearSubmissionA()
		return nil
	case battle.FieldSubmissionB:
		m.ClearSubmissionB()
		return nil
	case battle.FieldResponseDeadline:
		m.ClearResponseDeadline()
		return nil
	case battle.FieldStartsAt:
		m.ClearStartsAt()
		return nil
	case battle.FieldVotingEndsAt:
		m.ClearVotingEndsAt()
		return nil
	case battle.FieldCustomDurationDays:
		m.ClearCustomDurationDays()
		return nil
	case battle.FieldWinner:
		m.ClearWinner()
		return nil
	case battle.FieldAcceptedAt:
		m.ClearAcceptedAt()
		return nil
	case battle.FieldRejectedAt:
		m.ClearRejectedAt()
		return nil
	case battle.FieldAdminValidatedAt:
		m.ClearAdminValidatedAt()
		return nil
	case battle.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown Battle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BattleMutation) ResetField(name string) error {
	switch name {
	case battle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case battle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case battle.FieldSlug:
		m.ResetSlug()
		return nil
	case battle.FieldParticipantA:
		m.ResetParticipantA()
		return nil
	case battle.FieldParticipantB:
		m.ResetParticipantB()
		return nil
	case battle.FieldSubmissionA:
		m.ResetSubmissionA()
		return nil
	case battle.FieldSubmissionB:
		m.ResetSubmissionB()
		return nil
	case battle.FieldStatus:
		m.ResetStatus()
		return nil
	case battle.FieldResponseDeadline:
		m.ResetResponseDeadline()
		return nil
	case battle.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case battle.FieldVotingEndsAt:
		m.ResetVotingEndsAt()
		return nil
	case battle.FieldCustomDurationDays:
		m.ResetCustomDurationDays()
		return nil
	case battle.FieldExtensionCount:
		m.ResetExtensionCount()
		return nil
	case battle.FieldVotesA:
		m.ResetVotesA()
		return nil
	case battle.FieldVotesB:
		m.ResetVotesB()
		return nil
	case battle.FieldWinner:
		m.ResetWinner()
		return nil
	case battle.FieldAcceptedAt:
		m.ResetAcceptedAt()
		return nil
	case battle.FieldRejectedAt:
		m.ResetRejectedAt()
		return nil
	case battle.FieldAdminValidatedAt:
		m.ResetAdminValidatedAt()
		return nil
	case battle.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case battle.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Battle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BattleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BattleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BattleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BattleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BattleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BattleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BattleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Battle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BattleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Battle edge %s", name)
}

// CommentMutation represents an operation that mutates the Comment nodes in the graph.
type CommentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	battle_id     *string
	author_id     *string
	body          *string
	visible       *bool
	hidden_reason *string
	hidden_by     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Comment, error)
	predicates    []predicate.Comment
}

var _ ent.Mutation = (*CommentMutation)(nil)

// commentOption allows management of the mutation configuration using functional options.
type commentOption func(*CommentMutation)

// newCommentMutation creates new mutation for the Comment entity.
func newCommentMutation(c config, op Op, opts ...commentOption) *CommentMutation {
	m := &CommentMutation{
		config:        c,
		op:            op,
		typ:           TypeComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommentID sets the ID field of the mutation.
func withCommentID(id string) commentOption {
	return func(m *CommentMutation) {
		var (
			err   error
			once  sync.Once
			value *Comment
		)
		m.oldValue = func(ctx context.Context) (*Comment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComment sets the old Comment of the mutation.
func withComment(node *Comment) commentOption {
	return func(m *CommentMutation) {
		m.oldValue = func(context.Context) (*Comment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comment entities.
func (m *CommentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBattleID sets the "battle_id" field.
func (m *CommentMutation) SetBattleID(s string) {
	m.battle_id = &s
}

// BattleID returns the value of the "battle_id" field in the mutation.
func (m *CommentMutation) BattleID() (r string, exists bool) {
	v := m.battle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBattleID returns the old "battle_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldBattleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBattleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBattleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBattleID: %w", err)
	}
	return oldValue.BattleID, nil
}

// ResetBattleID resets all changes to the "battle_id" field.
func (m *CommentMutation) ResetBattleID() {
	m.battle_id = nil
}

// SetAuthorID sets the "author_id" field.
func (m *CommentMutation) SetAuthorID(s string) {
	m.author_id = &s
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *CommentMutation) AuthorID() (r string, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldAuthorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *CommentMutation) ResetAuthorID() {
	m.author_id = nil
}

// SetBody sets the "body" field.
func (m *CommentMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *CommentMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *CommentMutation) ResetBody() {
	m.body = nil
}

// SetVisible sets the "visible" field.
func (m *CommentMutation) SetVisible(b bool) {
	m.visible = &b
}

// Visible returns the value of the "visible" field in the mutation.
func (m *CommentMutation) Visible() (r bool, exists bool) {
	v := m.visible
	if v == nil {
		return
	}
	return *v, true
}

// OldVisible returns the old "visible" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldVisible(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisible: %w", err)
	}
	return oldValue.Visible, nil
}

// ResetVisible resets all changes to the "visible" field.
func (m *CommentMutation) ResetVisible() {
	m.visible = nil
}

// SetHiddenReason sets the "hidden_reason" field.
func (m *CommentMutation) SetHiddenReason(s string) {
	m.hidden_reason = &s
}

// HiddenReason returns the value of the "hidden_reason" field in the mutation.
func (m *CommentMutation) HiddenReason() (r string, exists bool) {
	v := m.hidden_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldHiddenReason returns the old "hidden_reason" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldHiddenReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHiddenReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHiddenReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHiddenReason: %w", err)
	}
	return oldValue.HiddenReason, nil
}

// ClearHiddenReason clears the value of the "hidden_reason" field.
func (m *CommentMutation) ClearHiddenReason() {
	m.hidden_reason = nil
	m.clearedFields[comment.FieldHiddenReason] = struct{}{}
}

// HiddenReasonCleared returns if the "hidden_reason" field was cleared in this mutation.
func (m *CommentMutation) HiddenReasonCleared() bool {
	_, ok := m.clearedFields[comment.FieldHiddenReason]
	return ok
}

// ResetHiddenReason resets all changes to the "hidden_reason" field.
func (m *CommentMutation) ResetHiddenReason() {
	m.hidden_reason = nil
	delete(m.clearedFields, comment.FieldHiddenReason)
}

// SetHiddenBy sets the "hidden_by" field.
func (m *CommentMutation) SetHiddenBy(s string) {
	m.hidden_by = &s
}

// HiddenBy returns the value of the "hidden_by" field in the mutation.
func (m *CommentMutation) HiddenBy() (r string, exists bool) {
	v := m.hidden_by
	if v == nil {
		return
	}
	return *v, true
}

// OldHiddenBy returns the old "hidden_by" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldHiddenBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHiddenBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHiddenBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHiddenBy: %w", err)
	}
	return oldValue.HiddenBy, nil
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (m *CommentMutation) ClearHiddenBy() {
	m.hidden_by = nil
	m.clearedFields[comment.FieldHiddenBy] = struct{}{}
}

// HiddenByCleared returns if the "hidden_by" field was cleared in this mutation.
func (m *CommentMutation) HiddenByCleared() bool {
	_, ok := m.clearedFields[comment.FieldHiddenBy]
	return ok
}

// ResetHiddenBy resets all changes to the "hidden_by" field.
func (m *CommentMutation) ResetHiddenBy() {
	m.hidden_by = nil
	delete(m.clearedFields, comment.FieldHiddenBy)
}

// Where appends a list predicates to the CommentMutation builder.
func (m *CommentMutation) Where(ps ...predicate.Comment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comment).
func (m *CommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, comment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, comment.FieldUpdatedAt)
	}
	if m.battle_id != nil {
		fields = append(fields, comment.FieldBattleID)
	}
	if m.author_id != nil {
		fields = append(fields, comment.FieldAuthorID)
	}
	if m.body != nil {
		fields = append(fields, comment.FieldBody)
	}
	if m.visible != nil {
		fields = append(fields, comment.FieldVisible)
	}
	if m.hidden_reason != nil {
		fields = append(fields, comment.FieldHiddenReason)
	}
	if m.hidden_by != nil {
		fields = append(fields, comment.FieldHiddenBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldCreatedAt:
		return m.CreatedAt()
	case comment.FieldUpdatedAt:
		return m.UpdatedAt()
	case comment.FieldBattleID:
		return m.BattleID()
	case comment.FieldAuthorID:
		return m.AuthorID()
	case comment.FieldBody:
		return m.Body()
	case comment.FieldVisible:
		return m.Visible()
	case comment.FieldHiddenReason:
		return m.HiddenReason()
	case comment.FieldHiddenBy:
		return m.HiddenBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case comment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case comment.FieldBattleID:
		return m.OldBattleID(ctx)
	case comment.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case comment.FieldBody:
		return m.OldBody(ctx)
	case comment.FieldVisible:
		return m.OldVisible(ctx)
	case comment.FieldHiddenReason:
		return m.OldHiddenReason(ctx)
	case comment.FieldHiddenBy:
		return m.OldHiddenBy(ctx)
	}
	return nil, fmt.Errorf("unknown Comment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case comment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case comment.FieldBattleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBattleID(v)
		return nil
	case comment.FieldAuthorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case comment.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case comment.FieldVisible:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisible(v)
		return nil
	case comment.FieldHiddenReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHiddenReason(v)
		return nil
	case comment.FieldHiddenBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHiddenBy(v)
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Comment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comment.FieldHiddenReason) {
		fields = append(fields, comment.FieldHiddenReason)
	}
	if m.FieldCleared(comment.FieldHiddenBy) {
		fields = append(fields, comment.FieldHiddenBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommentMutation) ClearField(name string) error {
	switch name {
	case comment.FieldHiddenReason:
		m.ClearHiddenReason()
		return nil
	case comment.FieldHiddenBy:
		m.ClearHiddenBy()
		return nil
	}
	return fmt.Errorf("unknown Comment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommentMutation) ResetField(name string) error {
	switch name {
	case comment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case comment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case comment.FieldBattleID:
		m.ResetBattleID()
		return nil
	case comment.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case comment.FieldBody:
		m.ResetBody()
		return nil
	case comment.FieldVisible:
		m.ResetVisible()
		return nil
	case comment.FieldHiddenReason:
		m.ResetHiddenReason()
		return nil
	case comment.FieldHiddenBy:
		m.ResetHiddenBy()
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Comment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Comment edge %s", name)
}

// EngineSettingMutation represents an operation that mutates the EngineSetting nodes in the graph.
type EngineSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	key           *string
	version       *int
	addversion    *int
	document      *map[string]interface{}
	updated_by    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EngineSetting, error)
	predicates    []predicate.EngineSetting
}

var _ ent.Mutation = (*EngineSettingMutation)(nil)

// enginesettingOption allows management of the mutation configuration using functional options.
type enginesettingOption func(*EngineSettingMutation)

// newEngineSettingMutation creates new mutation for the EngineSetting entity.
func newEngineSettingMutation(c config, op Op, opts ...enginesettingOption) *EngineSettingMutation {
	m := &EngineSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeEngineSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngineSettingID sets the ID field of the mutation.
func withEngineSettingID(id int) enginesettingOption {
	return func(m *EngineSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *EngineSetting
		)
		m.oldValue = func(ctx context.Context) (*EngineSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngineSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngineSetting sets the old EngineSetting of the mutation.
func withEngineSetting(node *EngineSetting) enginesettingOption {
	return func(m *EngineSettingMutation) {
		m.oldValue = func(context.Context) (*EngineSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngineSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngineSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngineSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngineSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngineSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EngineSettingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngineSettingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngineSettingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetKey sets the "key" field.
func (m *EngineSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *EngineSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *EngineSettingMutation) ResetKey() {
	m.key = nil
}

// SetVersion sets the "version" field.
func (m *EngineSettingMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *EngineSettingMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *EngineSettingMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *EngineSettingMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *EngineSettingMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetDocument sets the "document" field.
func (m *EngineSettingMutation) SetDocument(value map[string]interface{}) {
	m.document = &value
}

// Document returns the value of the "document" field in the mutation.
func (m *EngineSettingMutation) Document() (r map[string]interface{}, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldDocument(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// ResetDocument resets all changes to the "document" field.
func (m *EngineSettingMutation) ResetDocument() {
	m.document = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *EngineSettingMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *EngineSettingMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the EngineSetting entity.
// If the EngineSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngineSettingMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *EngineSettingMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// Where appends a list predicates to the EngineSettingMutation builder.
func (m *EngineSettingMutation) Where(ps ...predicate.EngineSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngineSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngineSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngineSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngineSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngineSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngineSetting).
func (m *EngineSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngineSettingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, enginesetting.FieldCreatedAt)
	}
	if m.key != nil {
		fields = append(fields, enginesetting.FieldKey)
	}
	if m.version != nil {
		fields = append(fields, enginesetting.FieldVersion)
	}
	if m.document != nil {
		fields = append(fields, enginesetting.FieldDocument)
	}
	if m.updated_by != nil {
		fields = append(fields, enginesetting.FieldUpdatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngineSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enginesetting.FieldCreatedAt:
		return m.CreatedAt()
	case enginesetting.FieldKey:
		return m.Key()
	case enginesetting.FieldVersion:
		return m.Version()
	case enginesetting.FieldDocument:
		return m.Document()
	case enginesetting.FieldUpdatedBy:
		return m.UpdatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngineSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enginesetting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case enginesetting.FieldKey:
		return m.OldKey(ctx)
	case enginesetting.FieldVersion:
		return m.OldVersion(ctx)
	case enginesetting.FieldDocument:
		return m.OldDocument(ctx)
	case enginesetting.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown EngineSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngineSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enginesetting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case enginesetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case enginesetting.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case enginesetting.FieldDocument:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case enginesetting.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown EngineSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngineSettingMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, enginesetting.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngineSettingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enginesetting.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngineSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enginesetting.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown EngineSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngineSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngineSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngineSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EngineSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngineSettingMutation) ResetField(name string) error {
	switch name {
	case enginesetting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case enginesetting.FieldKey:
		m.ResetKey()
		return nil
	case enginesetting.FieldVersion:
		m.ResetVersion()
		return nil
	case enginesetting.FieldDocument:
		m.ResetDocument()
		return nil
	case enginesetting.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown EngineSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngineSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngineSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngineSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngineSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngineSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngineSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngineSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EngineSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngineSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EngineSetting edge %s", name)
}

// ModerationActionMutation represents an operation that mutates the ModerationAction nodes in the graph.
type ModerationActionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	subject_type      *string
	subject_id        *string
	decision          *map[string]interface{}
	status            *moderationaction.Status
	applied_effect    *string
	executed_at       *time.Time
	executed_by       *string
	override_feedback *map[string]interface{}
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ModerationAction, error)
	predicates        []predicate.ModerationAction
}

var _ ent.Mutation = (*ModerationActionMutation)(nil)

// moderationactionOption allows management of the mutation configuration using functional options.
type moderationactionOption func(*ModerationActionMutation)

// newModerationActionMutation creates new mutation for the ModerationAction entity.
func newModerationActionMutation(c config, op Op, opts ...moderationactionOption) *ModerationActionMutation {
	m := &ModerationActionMutation{
		config:        c,
		op:            op,
		typ:           TypeModerationAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModerationActionID sets the ID field of the mutation.
func withModerationActionID(id string) moderationactionOption {
	return func(m *ModerationActionMutation) {
		var (
			err   error
			once  sync.Once
			value *ModerationAction
		)
		m.oldValue = func(ctx context.Context) (*ModerationAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModerationAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModerationAction sets the old ModerationAction of the mutation.
func withModerationAction(node *ModerationAction) moderationactionOption {
	return func(m *ModerationActionMutation) {
		m.oldValue = func(context.Context) (*ModerationAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModerationActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModerationActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModerationAction entities.
func (m *ModerationActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModerationActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModerationActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModerationAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ModerationActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModerationActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModerationActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModerationActionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModerationActionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModerationActionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSubjectType sets the "subject_type" field.
func (m *ModerationActionMutation) SetSubjectType(s string) {
	m.subject_type = &s
}

// SubjectType returns the value of the "subject_type" field in the mutation.
func (m *ModerationActionMutation) SubjectType() (r string, exists bool) {
	v := m.subject_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectType returns the old "subject_type" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldSubjectType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectType: %w", err)
	}
	return oldValue.SubjectType, nil
}

// ResetSubjectType resets all changes to the "subject_type" field.
func (m *ModerationActionMutation) ResetSubjectType() {
	m.subject_type = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *ModerationActionMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *ModerationActionMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *ModerationActionMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetDecision sets the "decision" field.
func (m *ModerationActionMutation) SetDecision(value map[string]interface{}) {
	m.decision = &value
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ModerationActionMutation) Decision() (r map[string]interface{}, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldDecision(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ModerationActionMutation) ResetDecision() {
	m.decision = nil
}

// SetStatus sets the "status" field.
func (m *ModerationActionMutation) SetStatus(value moderationaction.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *ModerationActionMutation) Status() (r moderationaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldStatus(ctx context.Context) (v moderationaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ModerationActionMutation) ResetStatus() {
	m.status = nil
}

// SetAppliedEffect sets the "applied_effect" field.
func (m *ModerationActionMutation) SetAppliedEffect(s string) {
	m.applied_effect = &s
}

// AppliedEffect returns the value of the "applied_effect" field in the mutation.
func (m *ModerationActionMutation) AppliedEffect() (r string, exists bool) {
	v := m.applied_effect
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedEffect returns the old "applied_effect" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldAppliedEffect(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedEffect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedEffect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedEffect: %w", err)
	}
	return oldValue.AppliedEffect, nil
}

// ClearAppliedEffect clears the value of the "applied_effect" field.
func (m *ModerationActionMutation) ClearAppliedEffect() {
	m.applied_effect = nil
	m.clearedFields[moderationaction.FieldAppliedEffect] = struct{}{}
}

// AppliedEffectCleared returns if the "applied_effect" field was cleared in this mutation.
func (m *ModerationActionMutation) AppliedEffectCleared() bool {
	_, ok := m.clearedFields[moderationaction.FieldAppliedEffect]
	return ok
}

// ResetAppliedEffect resets all changes to the "applied_effect" field.
func (m *ModerationActionMutation) ResetAppliedEffect() {
	m.applied_effect = nil
	delete(m.clearedFields, moderationaction.FieldAppliedEffect)
}

// SetExecutedAt sets the "executed_at" field.
func (m *ModerationActionMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *ModerationActionMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (m *ModerationActionMutation) ClearExecutedAt() {
	m.executed_at = nil
	m.clearedFields[moderationaction.FieldExecutedAt] = struct{}{}
}

// ExecutedAtCleared returns if the "executed_at" field was cleared in this mutation.
func (m *ModerationActionMutation) ExecutedAtCleared() bool {
	_, ok := m.clearedFields[moderationaction.FieldExecutedAt]
	return ok
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *ModerationActionMutation) ResetExecutedAt() {
	m.executed_at = nil
	delete(m.clearedFields, moderationaction.FieldExecutedAt)
}

// SetExecutedBy sets the "executed_by" field.
func (m *ModerationActionMutation) SetExecutedBy(s string) {
	m.executed_by = &s
}

// ExecutedBy returns the value of the "executed_by" field in the mutation.
func (m *ModerationActionMutation) ExecutedBy() (r string, exists bool) {
	v := m.executed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedBy returns the old "executed_by" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldExecutedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedBy: %w", err)
	}
	return oldValue.ExecutedBy, nil
}

// ClearExecutedBy clears the value of the "executed_by" field.
func (m *ModerationActionMutation) ClearExecutedBy() {
	m.executed_by = nil
	m.clearedFields[moderationaction.FieldExecutedBy] = struct{}{}
}

// ExecutedByCleared returns if the "executed_by" field was cleared in this mutation.
func (m *ModerationActionMutation) ExecutedByCleared() bool {
	_, ok := m.clearedFields[moderationaction.FieldExecutedBy]
	return ok
}

// ResetExecutedBy resets all changes to the "executed_by" field.
func (m *ModerationActionMutation) ResetExecutedBy() {
	m.executed_by = nil
	delete(m.clearedFields, moderationaction.FieldExecutedBy)
}

// SetOverrideFeedback sets the "override_feedback" field.
func (m *ModerationActionMutation) SetOverrideFeedback(value map[string]interface{}) {
	m.override_feedback = &value
}

// OverrideFeedback returns the value of the "override_feedback" field in the mutation.
func (m *ModerationActionMutation) OverrideFeedback() (r map[string]interface{}, exists bool) {
	v := m.override_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrideFeedback returns the old "override_feedback" field's value of the ModerationAction entity.
// If the ModerationAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModerationActionMutation) OldOverrideFeedback(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrideFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrideFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrideFeedback: %w", err)
	}
	return oldValue.OverrideFeedback, nil
}

// ClearOverrideFeedback clears the value of the "override_feedback" field.
func (m *ModerationActionMutation) ClearOverrideFeedback() {
	m.override_feedback = nil
	m.clearedFields[moderationaction.FieldOverrideFeedback] = struct{}{}
}

// OverrideFeedbackCleared returns if the "override_feedback" field was cleared in this mutation.
func (m *ModerationActionMutation) OverrideFeedbackCleared() bool {
	_, ok := m.clearedFields[moderationaction.FieldOverrideFeedback]
	return ok
}

// ResetOverrideFeedback resets all changes to the "override_feedback" field.
func (m *ModerationActionMutation) ResetOverrideFeedback() {
	m.override_feedback = nil
	delete(m.clearedFields, moderationaction.FieldOverrideFeedback)
}

// Where appends a list predicates to the ModerationActionMutation builder.
func (m *ModerationActionMutation) Where(ps ...predicate.ModerationAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModerationActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModerationActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModerationAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModerationActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModerationActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModerationAction).
func (m *ModerationActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModerationActionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, moderationaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, moderationaction.FieldUpdatedAt)
	}
	if m.subject_type != nil {
		fields = append(fields, moderationaction.FieldSubjectType)
	}
	if m.subject_id != nil {
		fields = append(fields, moderationaction.FieldSubjectID)
	}
	if m.decision != nil {
		fields = append(fields, moderationaction.FieldDecision)
	}
	if m.status != nil {
		fields = append(fields, moderationaction.FieldStatus)
	}
	if m.applied_effect != nil {
		fields = append(fields, moderationaction.FieldAppliedEffect)
	}
	if m.executed_at != nil {
		fields = append(fields, moderationaction.FieldExecutedAt)
	}
	if m.executed_by != nil {
		fields = append(fields, moderationaction.FieldExecutedBy)
	}
	if m.override_feedback != nil {
		fields = append(fields, moderationaction.FieldOverrideFeedback)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModerationActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case moderationaction.FieldCreatedAt:
		return m.CreatedAt()
	case moderationaction.FieldUpdatedAt:
		return m.UpdatedAt()
	case moderationaction.FieldSubjectType:
		return m.SubjectType()
	case moderationaction.FieldSubjectID:
		return m.SubjectID()
	case moderationaction.FieldDecision:
		return m.Decision()
	case moderationaction.FieldStatus:
		return m.Status()
	case moderationaction.FieldAppliedEffect:
		return m.AppliedEffect()
	case moderationaction.FieldExecutedAt:
		return m.ExecutedAt()
	case moderationaction.FieldExecutedBy:
		return m.ExecutedBy()
	case moderationaction.FieldOverrideFeedback:
		return m.OverrideFeedback()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModerationActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case moderationaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case moderationaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case moderationaction.FieldSubjectType:
		return m.OldSubjectType(ctx)
	case moderationaction.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case moderationaction.FieldDecision:
		return m.OldDecision(ctx)
	case moderationaction.FieldStatus:
		return m.OldStatus(ctx)
	case moderationaction.FieldAppliedEffect:
		return m.OldAppliedEffect(ctx)
	case moderationaction.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	case moderationaction.FieldExecutedBy:
		return m.OldExecutedBy(ctx)
	case moderationaction.FieldOverrideFeedback:
		return m.OldOverrideFeedback(ctx)
	}
	return nil, fmt.Errorf("unknown ModerationAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModerationActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case moderationaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case moderationaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case moderationaction.FieldSubjectType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectType(v)
		return nil
	case moderationaction.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case moderationaction.FieldDecision:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case moderationaction.FieldStatus:
		v, ok := value.(moderationaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case moderationaction.FieldAppliedEffect:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedEffect(v)
		return nil
	case moderationaction.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	case moderationaction.FieldExecutedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedBy(v)
		return nil
	case moderationaction.FieldOverrideFeedback:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrideFeedback(v)
		return nil
	}
	return fmt.Errorf("unknown ModerationAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModerationActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModerationActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModerationActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ModerationAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModerationActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(moderationaction.FieldAppliedEffect) {
		fields = append(fields, moderationaction.FieldAppliedEffect)
	}
	if m.FieldCleared(moderationaction.FieldExecutedAt) {
		fields = append(fields, moderationaction.FieldExecutedAt)
	}
	if m.FieldCleared(moderationaction.FieldExecutedBy) {
		fields = append(fields, moderationaction.FieldExecutedBy)
	}
	if m.FieldCleared(moderationaction.FieldOverrideFeedback) {
		fields = append(fields, moderationaction.FieldOverrideFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModerationActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModerationActionMutation) ClearField(name string) error {
	switch name {
	case moderationaction.FieldAppliedEffect:
		m.ClearAppliedEffect()
		return nil
	case moderationaction.FieldExecutedAt:
		m.ClearExecutedAt()
		return nil
	case moderationaction.FieldExecutedBy:
		m.ClearExecutedBy()
		return nil
	case moderationaction.FieldOverrideFeedback:
		m.ClearOverrideFeedback()
		return nil
	}
	return fmt.Errorf("unknown ModerationAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModerationActionMutation) ResetField(name string) error {
	switch name {
	case moderationaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case moderationaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case moderationaction.FieldSubjectType:
		m.ResetSubjectType()
		return nil
	case moderationaction.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case moderationaction.FieldDecision:
		m.ResetDecision()
		return nil
	case moderationaction.FieldStatus:
		m.ResetStatus()
		return nil
	case moderationaction.FieldAppliedEffect:
		m.ResetAppliedEffect()
		return nil
	case moderationaction.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	case moderationaction.FieldExecutedBy:
		m.ResetExecutedBy()
		return nil
	case moderationaction.FieldOverrideFeedback:
		m.ResetOverrideFeedback()
		return nil
	}
	return fmt.Errorf("unknown ModerationAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModerationActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModerationActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModerationActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModerationActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModerationActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModerationActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModerationActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModerationAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModerationActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModerationAction edge %s", name)
}

// MonitoringAlertMutation represents an operation that mutates the MonitoringAlert nodes in the graph.
type MonitoringAlertMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	severity      *monitoringalert.Severity
	source        *string
	event_type    *string
	subject_type  *string
	subject_id    *string
	detail        *map[string]interface{}
	resolved      *bool
	resolved_by   *string
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MonitoringAlert, error)
	predicates    []predicate.MonitoringAlert
}

var _ ent.Mutation = (*MonitoringAlertMutation)(nil)

// monitoringalertOption allows management of the mutation configuration using functional options.
type monitoringalertOption func(*MonitoringAlertMutation)

// newMonitoringAlertMutation creates new mutation for the MonitoringAlert entity.
func newMonitoringAlertMutation(c config, op Op, opts ...monitoringalertOption) *MonitoringAlertMutation {
	m := &MonitoringAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitoringAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitoringAlertID sets the ID field of the mutation.
func withMonitoringAlertID(id string) monitoringalertOption {
	return func(m *MonitoringAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitoringAlert
		)
		m.oldValue = func(ctx context.Context) (*MonitoringAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitoringAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitoringAlert sets the old MonitoringAlert of the mutation.
func withMonitoringAlert(node *MonitoringAlert) monitoringalertOption {
	return func(m *MonitoringAlertMutation) {
		m.oldValue = func(context.Context) (*MonitoringAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitoringAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitoringAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonitoringAlert entities.
func (m *MonitoringAlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitoringAlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitoringAlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitoringAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MonitoringAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MonitoringAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MonitoringAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MonitoringAlertMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MonitoringAlertMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MonitoringAlertMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSeverity sets the "severity" field.
func (m *MonitoringAlertMutation) SetSeverity(value monitoringalert.Severity) {
	m.severity = &value
}

// Severity returns the value of the "severity" field in the mutation.
func (m *MonitoringAlertMutation) Severity() (r monitoringalert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldSeverity(ctx context.Context) (v monitoringalert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *MonitoringAlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetSource sets the "source" field.
func (m *MonitoringAlertMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *MonitoringAlertMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MonitoringAlertMutation) ResetSource() {
	m.source = nil
}

// SetEventType sets the "event_type" field.
func (m *MonitoringAlertMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *MonitoringAlertMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *MonitoringAlertMutation) ResetEventType() {
	m.event_type = nil
}

// SetSubjectType sets the "subject_type" field.
func (m *MonitoringAlertMutation) SetSubjectType(s string) {
	m.subject_type = &s
}

// SubjectType returns the value of the "subject_type" field in the mutation.
func (m *MonitoringAlertMutation) SubjectType() (r string, exists bool) {
	v := m.subject_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectType returns the old "subject_type" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldSubjectType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectType: %w", err)
	}
	return oldValue.SubjectType, nil
}

// ClearSubjectType clears the value of the "subject_type" field.
func (m *MonitoringAlertMutation) ClearSubjectType() {
	m.subject_type = nil
	m.clearedFields[monitoringalert.FieldSubjectType] = struct{}{}
}

// SubjectTypeCleared returns if the "subject_type" field was cleared in this mutation.
func (m *MonitoringAlertMutation) SubjectTypeCleared() bool {
	_, ok := m.clearedFields[monitoringalert.FieldSubjectType]
	return ok
}

// ResetSubjectType resets all changes to the "subject_type" field.
func (m *MonitoringAlertMutation) ResetSubjectType() {
	m.subject_type = nil
	delete(m.clearedFields, monitoringalert.FieldSubjectType)
}

// SetSubjectID sets the "subject_id" field.
func (m *MonitoringAlertMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *MonitoringAlertMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *MonitoringAlertMutation) ClearSubjectID() {
	m.subject_id = nil
	m.clearedFields[monitoringalert.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *MonitoringAlertMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[monitoringalert.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *MonitoringAlertMutation) ResetSubjectID() {
	m.subject_id = nil
	delete(m.clearedFields, monitoringalert.FieldSubjectID)
}

// SetDetail sets the "detail" field.
func (m *MonitoringAlertMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *MonitoringAlertMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *MonitoringAlertMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[monitoringalert.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *MonitoringAlertMutation) DetailCleared() bool {
	_, ok := m.clearedFields[monitoringalert.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *MonitoringAlertMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, monitoringalert.FieldDetail)
}

// SetResolved sets the "resolved" field.
func (m *MonitoringAlertMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *MonitoringAlertMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *MonitoringAlertMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolvedBy sets the "resolved_by" field.
func (m *MonitoringAlertMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *MonitoringAlertMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldResolvedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *MonitoringAlertMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[monitoringalert.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *MonitoringAlertMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[monitoringalert.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *MonitoringAlertMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, monitoringalert.FieldResolvedBy)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *MonitoringAlertMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *MonitoringAlertMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the MonitoringAlert entity.
// If the MonitoringAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringAlertMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *MonitoringAlertMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[monitoringalert.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *MonitoringAlertMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[monitoringalert.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *MonitoringAlertMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, monitoringalert.FieldResolvedAt)
}

// Where appends a list predicates to the MonitoringAlertMutation builder.
func (m *MonitoringAlertMutation) Where(ps ...predicate.MonitoringAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitoringAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitoringAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitoringAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitoringAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitoringAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitoringAlert).
func (m *MonitoringAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitoringAlertMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, monitoringalert.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, monitoringalert.FieldUpdatedAt)
	}
	if m.severity != nil {
		fields = append(fields, monitoringalert.FieldSeverity)
	}
	if m.source != nil {
		fields = append(fields, monitoringalert.FieldSource)
	}
	if m.event_type != nil {
		fields = append(fields, monitoringalert.FieldEventType)
	}
	if m.subject_type != nil {
		fields = append(fields, monitoringalert.FieldSubjectType)
	}
	if m.subject_id != nil {
		fields = append(fields, monitoringalert.FieldSubjectID)
	}
	if m.detail != nil {
		fields = append(fields, monitoringalert.FieldDetail)
	}
	if m.resolved != nil {
		fields = append(fields, monitoringalert.FieldResolved)
	}
	if m.resolved_by != nil {
		fields = append(fields, monitoringalert.FieldResolvedBy)
	}
	if m.resolved_at != nil {
		fields = append(fields, monitoringalert.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitoringAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoringalert.FieldCreatedAt:
		return m.CreatedAt()
	case monitoringalert.FieldUpdatedAt:
		return m.UpdatedAt()
	case monitoringalert.FieldSeverity:
		return m.Severity()
	case monitoringalert.FieldSource:
		return m.Source()
	case monitoringalert.FieldEventType:
		return m.EventType()
	case monitoringalert.FieldSubjectType:
		return m.SubjectType()
	case monitoringalert.FieldSubjectID:
		return m.SubjectID()
	case monitoringalert.FieldDetail:
		return m.Detail()
	case monitoringalert.FieldResolved:
		return m.Resolved()
	case monitoringalert.FieldResolvedBy:
		return m.ResolvedBy()
	case monitoringalert.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitoringAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoringalert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case monitoringalert.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case monitoringalert.FieldSeverity:
		return m.OldSeverity(ctx)
	case monitoringalert.FieldSource:
		return m.OldSource(ctx)
	case monitoringalert.FieldEventType:
		return m.OldEventType(ctx)
	case monitoringalert.FieldSubjectType:
		return m.OldSubjectType(ctx)
	case monitoringalert.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case monitoringalert.FieldDetail:
		return m.OldDetail(ctx)
	case monitoringalert.FieldResolved:
		return m.OldResolved(ctx)
	case monitoringalert.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	case monitoringalert.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonitoringAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoringAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoringalert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case monitoringalert.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case monitoringalert.FieldSeverity:
		v, ok := value.(monitoringalert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case monitoringalert.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case monitoringalert.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case monitoringalert.FieldSubjectType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectType(v)
		return nil
	case monitoringalert.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case monitoringalert.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case monitoringalert.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case monitoringalert.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	case monitoringalert.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoringAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitoringAlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitoringAlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoringAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MonitoringAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitoringAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monitoringalert.FieldSubjectType) {
		fields = append(fields, monitoringalert.FieldSubjectType)
	}
	if m.FieldCleared(monitoringalert.FieldSubjectID) {
		fields = append(fields, monitoringalert.FieldSubjectID)
	}
	if m.FieldCleared(monitoringalert.FieldDetail) {
		fields = append(fields, monitoringalert.FieldDetail)
	}
	if m.FieldCleared(monitoringalert.FieldResolvedBy) {
		fields = append(fields, monitoringalert.FieldResolvedBy)
	}
	if m.FieldCleared(monitoringalert.FieldResolvedAt) {
		fields = append(fields, monitoringalert.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitoringAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitoringAlertMutation) ClearField(name string) error {
	switch name {
	case monitoringalert.FieldSubjectType:
		m.ClearSubjectType()
		return nil
	case monitoringalert.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	case monitoringalert.FieldDetail:
		m.ClearDetail()
		return nil
	case monitoringalert.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	case monitoringalert.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitoringAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitoringAlertMutation) ResetField(name string) error {
	switch name {
	case monitoringalert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case monitoringalert.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case monitoringalert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case monitoringalert.FieldSource:
		m.ResetSource()
		return nil
	case monitoringalert.FieldEventType:
		m.ResetEventType()
		return nil
	case monitoringalert.FieldSubjectType:
		m.ResetSubjectType()
		return nil
	case monitoringalert.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case monitoringalert.FieldDetail:
		m.ResetDetail()
		return nil
	case monitoringalert.FieldResolved:
		m.ResetResolved()
		return nil
	case monitoringalert.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	case monitoringalert.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitoringAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitoringAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitoringAlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitoringAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitoringAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitoringAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitoringAlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitoringAlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MonitoringAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitoringAlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MonitoringAlert edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	recipient_id  *string
	_type         *notification.Type
	title         *string
	message       *string
	resource_type *string
	resource_id   *string
	read          *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *NotificationMutation) SetRecipientID(s string) {
	m.recipient_id = &s
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *NotificationMutation) RecipientID() (r string, exists bool) {
	v := m.recipient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *NotificationMutation) ResetRecipientID() {
	m.recipient_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *NotificationMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[notification.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *NotificationMutation) MessageCleared() bool {
	_, ok := m.clearedFields[notification.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, notification.FieldMessage)
}

// SetResourceType sets the "resource_type" field.
func (m *NotificationMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *NotificationMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *NotificationMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[notification.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *NotificationMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *NotificationMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, notification.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *NotificationMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *NotificationMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *NotificationMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[notification.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *NotificationMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *NotificationMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, notification.FieldResourceID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notification.FieldUpdatedAt)
	}
	if m.recipient_id != nil {
		fields = append(fields, notification.FieldRecipientID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.resource_type != nil {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUpdatedAt:
		return m.UpdatedAt()
	case notification.FieldRecipientID:
		return m.RecipientID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldResourceType:
		return m.ResourceType()
	case notification.FieldResourceID:
		return m.ResourceID()
	case notification.FieldRead:
		return m.Read()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case notification.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldResourceType:
		return m.OldResourceType(ctx)
	case notification.FieldResourceID:
		return m.OldResourceID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case notification.FieldRecipientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case notification.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldMessage) {
		fields = append(fields, notification.FieldMessage)
	}
	if m.FieldCleared(notification.FieldResourceType) {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.FieldCleared(notification.FieldResourceID) {
		fields = append(fields, notification.FieldResourceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldMessage:
		m.ClearMessage()
		return nil
	case notification.FieldResourceType:
		m.ClearResourceType()
		return nil
	case notification.FieldResourceID:
		m.ClearResourceID()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case notification.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldResourceType:
		m.ResetResourceType()
		return nil
	case notification.FieldResourceID:
		m.ResetResourceID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// RateLimitCounterMutation represents an operation that mutates the RateLimitCounter nodes in the graph.
type RateLimitCounterMutation struct {
	config
	op            Op
	typ           string
	id            *int
	procedure     *string
	scope_key     *string
	window_start  *time.Time
	count         *int
	addcount      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RateLimitCounter, error)
	predicates    []predicate.RateLimitCounter
}

var _ ent.Mutation = (*RateLimitCounterMutation)(nil)

// ratelimitcounterOption allows management of the mutation configuration using functional options.
type ratelimitcounterOption func(*RateLimitCounterMutation)

// newRateLimitCounterMutation creates new mutation for the RateLimitCounter entity.
func newRateLimitCounterMutation(c config, op Op, opts ...ratelimitcounterOption) *RateLimitCounterMutation {
	m := &RateLimitCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitCounterID sets the ID field of the mutation.
func withRateLimitCounterID(id int) ratelimitcounterOption {
	return func(m *RateLimitCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitCounter
		)
		m.oldValue = func(ctx context.Context) (*RateLimitCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitCounter sets the old RateLimitCounter of the mutation.
func withRateLimitCounter(node *RateLimitCounter) ratelimitcounterOption {
	return func(m *RateLimitCounterMutation) {
		m.oldValue = func(context.Context) (*RateLimitCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitCounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitCounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcedure sets the "procedure" field.
func (m *RateLimitCounterMutation) SetProcedure(s string) {
	m.procedure = &s
}

// Procedure returns the value of the "procedure" field in the mutation.
func (m *RateLimitCounterMutation) Procedure() (r string, exists bool) {
	v := m.procedure
	if v == nil {
		return
	}
	return *v, true
}

// OldProcedure returns the old "procedure" field's value of the RateLimitCounter entity.
// If the RateLimitCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitCounterMutation) OldProcedure(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcedure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcedure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcedure: %w", err)
	}
	return oldValue.Procedure, nil
}

// ResetProcedure resets all changes to the "procedure" field.
func (m *RateLimitCounterMutation) ResetProcedure() {
	m.procedure = nil
}

// SetScopeKey sets the "scope_key" field.
func (m *RateLimitCounterMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *RateLimitCounterMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the RateLimitCounter entity.
// If the RateLimitCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitCounterMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *RateLimitCounterMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetWindowStart sets the "window_start" field.
func (m *RateLimitCounterMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *RateLimitCounterMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the RateLimitCounter entity.
// If the RateLimitCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitCounterMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *RateLimitCounterMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetCount sets the "count" field.
func (m *RateLimitCounterMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *RateLimitCounterMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the RateLimitCounter entity.
// If the RateLimitCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitCounterMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *RateLimitCounterMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *RateLimitCounterMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *RateLimitCounterMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// Where appends a list predicates to the RateLimitCounterMutation builder.
func (m *RateLimitCounterMutation) Where(ps ...predicate.RateLimitCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitCounter).
func (m *RateLimitCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitCounterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.procedure != nil {
		fields = append(fields, ratelimitcounter.FieldProcedure)
	}
	if m.scope_key != nil {
		fields = append(fields, ratelimitcounter.FieldScopeKey)
	}
	if m.window_start != nil {
		fields = append(fields, ratelimitcounter.FieldWindowStart)
	}
	if m.count != nil {
		fields = append(fields, ratelimitcounter.FieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitcounter.FieldProcedure:
		return m.Procedure()
	case ratelimitcounter.FieldScopeKey:
		return m.ScopeKey()
	case ratelimitcounter.FieldWindowStart:
		return m.WindowStart()
	case ratelimitcounter.FieldCount:
		return m.Count()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitcounter.FieldProcedure:
		return m.OldProcedure(ctx)
	case ratelimitcounter.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case ratelimitcounter.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case ratelimitcounter.FieldCount:
		return m.OldCount(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitcounter.FieldProcedure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcedure(v)
		return nil
	case ratelimitcounter.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case ratelimitcounter.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case ratelimitcounter.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitCounterMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, ratelimitcounter.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ratelimitcounter.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ratelimitcounter.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RateLimitCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitCounterMutation) ResetField(name string) error {
	switch name {
	case ratelimitcounter.FieldProcedure:
		m.ResetProcedure()
		return nil
	case ratelimitcounter.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case ratelimitcounter.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case ratelimitcounter.FieldCount:
		m.ResetCount()
		return nil
	}
	return fmt.Errorf("unknown RateLimitCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateLimitCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateLimitCounter edge %s", name)
}

// RateLimitViolationMutation represents an operation that mutates the RateLimitViolation nodes in the graph.
type RateLimitViolationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	procedure             *string
	scope_key             *string
	actor                 *string
	window_start          *time.Time
	count                 *int
	addcount              *int
	allowed_per_minute    *int
	addallowed_per_minute *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*RateLimitViolation, error)
	predicates            []predicate.RateLimitViolation
}

var _ ent.Mutation = (*RateLimitViolationMutation)(nil)

// ratelimitviolationOption allows management of the mutation configuration using functional options.
type ratelimitviolationOption func(*RateLimitViolationMutation)

// newRateLimitViolationMutation creates new mutation for the RateLimitViolation entity.
func newRateLimitViolationMutation(c config, op Op, opts ...ratelimitviolationOption) *RateLimitViolationMutation {
	m := &RateLimitViolationMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitViolation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitViolationID sets the ID field of the mutation.
func withRateLimitViolationID(id string) ratelimitviolationOption {
	return func(m *RateLimitViolationMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitViolation
		)
		m.oldValue = func(ctx context.Context) (*RateLimitViolation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitViolation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitViolation sets the old RateLimitViolation of the mutation.
func withRateLimitViolation(node *RateLimitViolation) ratelimitviolationOption {
	return func(m *RateLimitViolationMutation) {
		m.oldValue = func(context.Context) (*RateLimitViolation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitViolationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitViolationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RateLimitViolation entities.
func (m *RateLimitViolationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitViolationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitViolationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitViolation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RateLimitViolationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RateLimitViolationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RateLimitViolationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcedure sets the "procedure" field.
func (m *RateLimitViolationMutation) SetProcedure(s string) {
	m.procedure = &s
}

// Procedure returns the value of the "procedure" field in the mutation.
func (m *RateLimitViolationMutation) Procedure() (r string, exists bool) {
	v := m.procedure
	if v == nil {
		return
	}
	return *v, true
}

// OldProcedure returns the old "procedure" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldProcedure(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcedure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcedure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcedure: %w", err)
	}
	return oldValue.Procedure, nil
}

// ResetProcedure resets all changes to the "procedure" field.
func (m *RateLimitViolationMutation) ResetProcedure() {
	m.procedure = nil
}

// SetScopeKey sets the "scope_key" field.
func (m *RateLimitViolationMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *RateLimitViolationMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *RateLimitViolationMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetActor sets the "actor" field.
func (m *RateLimitViolationMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *RateLimitViolationMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *RateLimitViolationMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[ratelimitviolation.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *RateLimitViolationMutation) ActorCleared() bool {
	_, ok := m.clearedFields[ratelimitviolation.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *RateLimitViolationMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, ratelimitviolation.FieldActor)
}

// SetWindowStart sets the "window_start" field.
func (m *RateLimitViolationMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *RateLimitViolationMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *RateLimitViolationMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetCount sets the "count" field.
func (m *RateLimitViolationMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *RateLimitViolationMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *RateLimitViolationMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *RateLimitViolationMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *RateLimitViolationMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetAllowedPerMinute sets the "allowed_per_minute" field.
func (m *RateLimitViolationMutation) SetAllowedPerMinute(i int) {
	m.allowed_per_minute = &i
	m.addallowed_per_minute = nil
}

// AllowedPerMinute returns the value of the "allowed_per_minute" field in the mutation.
func (m *RateLimitViolationMutation) AllowedPerMinute() (r int, exists bool) {
	v := m.allowed_per_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedPerMinute returns the old "allowed_per_minute" field's value of the RateLimitViolation entity.
// If the RateLimitViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitViolationMutation) OldAllowedPerMinute(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedPerMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedPerMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedPerMinute: %w", err)
	}
	return oldValue.AllowedPerMinute, nil
}

// AddAllowedPerMinute adds i to the "allowed_per_minute" field.
func (m *RateLimitViolationMutation) AddAllowedPerMinute(i int) {
	if m.addallowed_per_minute != nil {
		*m.addallowed_per_minute += i
	} else {
		m.addallowed_per_minute = &i
	}
}

// AddedAllowedPerMinute returns the value that was added to the "allowed_per_minute" field in this mutation.
func (m *RateLimitViolationMutation) AddedAllowedPerMinute() (r int, exists bool) {
	v := m.addallowed_per_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllowedPerMinute resets all changes to the "allowed_per_minute" field.
func (m *RateLimitViolationMutation) ResetAllowedPerMinute() {
	m.allowed_per_minute = nil
	m.addallowed_per_minute = nil
}

// Where appends a list predicates to the RateLimitViolationMutation builder.
func (m *RateLimitViolationMutation) Where(ps ...predicate.RateLimitViolation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitViolationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitViolationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitViolation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitViolationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitViolationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitViolation).
func (m *RateLimitViolationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitViolationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, ratelimitviolation.FieldCreatedAt)
	}
	if m.procedure != nil {
		fields = append(fields, ratelimitviolation.FieldProcedure)
	}
	if m.scope_key != nil {
		fields = append(fields, ratelimitviolation.FieldScopeKey)
	}
	if m.actor != nil {
		fields = append(fields, ratelimitviolation.FieldActor)
	}
	if m.window_start != nil {
		fields = append(fields, ratelimitviolation.FieldWindowStart)
	}
	if m.count != nil {
		fields = append(fields, ratelimitviolation.FieldCount)
	}
	if m.allowed_per_minute != nil {
		fields = append(fields, ratelimitviolation.FieldAllowedPerMinute)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitViolationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitviolation.FieldCreatedAt:
		return m.CreatedAt()
	case ratelimitviolation.FieldProcedure:
		return m.Procedure()
	case ratelimitviolation.FieldScopeKey:
		return m.ScopeKey()
	case ratelimitviolation.FieldActor:
		return m.Actor()
	case ratelimitviolation.FieldWindowStart:
		return m.WindowStart()
	case ratelimitviolation.FieldCount:
		return m.Count()
	case ratelimitviolation.FieldAllowedPerMinute:
		return m.AllowedPerMinute()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitViolationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitviolation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ratelimitviolation.FieldProcedure:
		return m.OldProcedure(ctx)
	case ratelimitviolation.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case ratelimitviolation.FieldActor:
		return m.OldActor(ctx)
	case ratelimitviolation.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case ratelimitviolation.FieldCount:
		return m.OldCount(ctx)
	case ratelimitviolation.FieldAllowedPerMinute:
		return m.OldAllowedPerMinute(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitViolation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitViolationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitviolation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ratelimitviolation.FieldProcedure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcedure(v)
		return nil
	case ratelimitviolation.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case ratelimitviolation.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case ratelimitviolation.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case ratelimitviolation.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case ratelimitviolation.FieldAllowedPerMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedPerMinute(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitViolation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitViolationMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, ratelimitviolation.FieldCount)
	}
	if m.addallowed_per_minute != nil {
		fields = append(fields, ratelimitviolation.FieldAllowedPerMinute)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitViolationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ratelimitviolation.FieldCount:
		return m.AddedCount()
	case ratelimitviolation.FieldAllowedPerMinute:
		return m.AddedAllowedPerMinute()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitViolationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ratelimitviolation.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case ratelimitviolation.FieldAllowedPerMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllowedPerMinute(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitViolation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitViolationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ratelimitviolation.FieldActor) {
		fields = append(fields, ratelimitviolation.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitViolationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitViolationMutation) ClearField(name string) error {
	switch name {
	case ratelimitviolation.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown RateLimitViolation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitViolationMutation) ResetField(name string) error {
	switch name {
	case ratelimitviolation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ratelimitviolation.FieldProcedure:
		m.ResetProcedure()
		return nil
	case ratelimitviolation.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case ratelimitviolation.FieldActor:
		m.ResetActor()
		return nil
	case ratelimitviolation.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case ratelimitviolation.FieldCount:
		m.ResetCount()
		return nil
	case ratelimitviolation.FieldAllowedPerMinute:
		m.ResetAllowedPerMinute()
		return nil
	}
	return fmt.Errorf("unknown RateLimitViolation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitViolationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitViolationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitViolationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitViolationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitViolationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitViolationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitViolationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateLimitViolation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitViolationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateLimitViolation edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	owner_id      *string
	title         *string
	media_path    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Submission, error)
	predicates    []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id string) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *SubmissionMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *SubmissionMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *SubmissionMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTitle sets the "title" field.
func (m *SubmissionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubmissionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SubmissionMutation) ResetTitle() {
	m.title = nil
}

// SetMediaPath sets the "media_path" field.
func (m *SubmissionMutation) SetMediaPath(s string) {
	m.media_path = &s
}

// MediaPath returns the value of the "media_path" field in the mutation.
func (m *SubmissionMutation) MediaPath() (r string, exists bool) {
	v := m.media_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaPath returns the old "media_path" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldMediaPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaPath: %w", err)
	}
	return oldValue.MediaPath, nil
}

// ClearMediaPath clears the value of the "media_path" field.
func (m *SubmissionMutation) ClearMediaPath() {
	m.media_path = nil
	m.clearedFields[submission.FieldMediaPath] = struct{}{}
}

// MediaPathCleared returns if the "media_path" field was cleared in this mutation.
func (m *SubmissionMutation) MediaPathCleared() bool {
	_, ok := m.clearedFields[submission.FieldMediaPath]
	return ok
}

// ResetMediaPath resets all changes to the "media_path" field.
func (m *SubmissionMutation) ResetMediaPath() {
	m.media_path = nil
	delete(m.clearedFields, submission.FieldMediaPath)
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submission.FieldUpdatedAt)
	}
	if m.owner_id != nil {
		fields = append(fields, submission.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, submission.FieldTitle)
	}
	if m.media_path != nil {
		fields = append(fields, submission.FieldMediaPath)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldUpdatedAt:
		return m.UpdatedAt()
	case submission.FieldOwnerID:
		return m.OwnerID()
	case submission.FieldTitle:
		return m.Title()
	case submission.FieldMediaPath:
		return m.MediaPath()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case submission.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case submission.FieldTitle:
		return m.OldTitle(ctx)
	case submission.FieldMediaPath:
		return m.OldMediaPath(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case submission.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case submission.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case submission.FieldMediaPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaPath(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldMediaPath) {
		fields = append(fields, submission.FieldMediaPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldMediaPath:
		m.ClearMediaPath()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case submission.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case submission.FieldTitle:
		m.ResetTitle()
		return nil
	case submission.FieldMediaPath:
		m.ResetMediaPath()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Submission edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	created_at              *time.Time
	updated_at              *time.Time
	username                *string
	email                   *string
	email_verified          *bool
	password_hash           *string
	role                    *user.Role
	battles_participated    *int
	addbattles_participated *int
	battles_completed       *int
	addbattles_completed    *int
	battles_refused         *int
	addbattles_refused      *int
	engagement_score        *int
	addengagement_score     *int
	enabled                 *bool
	last_login_at           *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetBattlesParticipated sets the "battles_participated" field.
func (m *UserMutation) SetBattlesParticipated(i int) {
	m.battles_participated = &i
	m.addbattles_participated = nil
}

// BattlesParticipated returns the value of the "battles_participated" field in the mutation.
func (m *UserMutation) BattlesParticipated() (r int, exists bool) {
	v := m.battles_participated
	if v == nil {
		return
	}
	return *v, true
}

// OldBattlesParticipated returns the old "battles_participated" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBattlesParticipated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBattlesParticipated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBattlesParticipated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBattlesParticipated: %w", err)
	}
	return oldValue.BattlesParticipated, nil
}

// AddBattlesParticipated adds i to the "battles_participated" field.
func (m *UserMutation) AddBattlesParticipated(i int) {
	if m.addbattles_participated != nil {
		*m.addbattles_participated += i
	} else {
		m.addbattles_participated = &i
	}
}

// AddedBattlesParticipated returns the value that was added to the "battles_participated" field in this mutation.
func (m *UserMutation) AddedBattlesParticipated() (r int, exists bool) {
	v := m.addbattles_participated
	if v == nil {
		return
	}
	return *v, true
}

// ResetBattlesParticipated resets all changes to the "battles_participated" field.
func (m *UserMutation) ResetBattlesParticipated() {
	m.battles_participated = nil
	m.addbattles_participated = nil
}

// SetBattlesCompleted sets the "battles_completed" field.
func (m *UserMutation) SetBattlesCompleted(i int) {
	m.battles_completed = &i
	m.addbattles_completed = nil
}

// BattlesCompleted returns the value of the "battles_completed" field in the mutation.
func (m *UserMutation) BattlesCompleted() (r int, exists bool) {
	v := m.battles_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldBattlesCompleted returns the old "battles_completed" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBattlesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBattlesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBattlesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBattlesCompleted: %w", err)
	}
	return oldValue.BattlesCompleted, nil
}

// AddBattlesCompleted adds i to the "battles_completed" field.
func (m *UserMutation) AddBattlesCompleted(i int) {
	if m.addbattles_completed != nil {
		*m.addbattles_completed += i
	} else {
		m.addbattles_completed = &i
	}
}

// AddedBattlesCompleted returns the value that was added to the "battles_completed" field in this mutation.
func (m *UserMutation) AddedBattlesCompleted() (r int, exists bool) {
	v := m.addbattles_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetBattlesCompleted resets all changes to the "battles_completed" field.
func (m *UserMutation) ResetBattlesCompleted() {
	m.battles_completed = nil
	m.addbattles_completed = nil
}

// SetBattlesRefused sets the "battles_refused" field.
func (m *UserMutation) SetBattlesRefused(i int) {
	m.battles_refused = &i
	m.addbattles_refused = nil
}

// BattlesRefused returns the value of the "battles_refused" field in the mutation.
func (m *UserMutation) BattlesRefused() (r int, exists bool) {
	v := m.battles_refused
	if v == nil {
		return
	}
	return *v, true
}

// OldBattlesRefused returns the old "battles_refused" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBattlesRefused(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBattlesRefused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBattlesRefused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBattlesRefused: %w", err)
	}
	return oldValue.BattlesRefused, nil
}

// AddBattlesRefused adds i to the "battles_refused" field.
func (m *UserMutation) AddBattlesRefused(i int) {
	if m.addbattles_refused != nil {
		*m.addbattles_refused += i
	} else {
		m.addbattles_refused = &i
	}
}

// AddedBattlesRefused returns the value that was added to the "battles_refused" field in this mutation.
func (m *UserMutation) AddedBattlesRefused() (r int, exists bool) {
	v := m.addbattles_refused
	if v == nil {
		return
	}
	return *v, true
}

// ResetBattlesRefused resets all changes to the "battles_refused" field.
func (m *UserMutation) ResetBattlesRefused() {
	m.battles_refused = nil
	m.addbattles_refused = nil
}

// SetEngagementScore sets the "engagement_score" field.
func (m *UserMutation) SetEngagementScore(i int) {
	m.engagement_score = &i
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *UserMutation) EngagementScore() (r int, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEngagementScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds i to the "engagement_score" field.
func (m *UserMutation) AddEngagementScore(i int) {
	if m.addengagement_score != nil {
		*m.addengagement_score += i
	} else {
		m.addengagement_score = &i
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *UserMutation) AddedEngagementScore() (r int, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *UserMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.battles_participated != nil {
		fields = append(fields, user.FieldBattlesParticipated)
	}
	if m.battles_completed != nil {
		fields = append(fields, user.FieldBattlesCompleted)
	}
	if m.battles_refused != nil {
		fields = append(fields, user.FieldBattlesRefused)
	}
	if m.engagement_score != nil {
		fields = append(fields, user.FieldEngagementScore)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldBattlesParticipated:
		return m.BattlesParticipated()
	case user.FieldBattlesCompleted:
		return m.BattlesCompleted()
	case user.FieldBattlesRefused:
		return m.BattlesRefused()
	case user.FieldEngagementScore:
		return m.EngagementScore()
	case user.FieldEnabled:
		return m.Enabled()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldBattlesParticipated:
		return m.OldBattlesParticipated(ctx)
	case user.FieldBattlesCompleted:
		return m.OldBattlesCompleted(ctx)
	case user.FieldBattlesRefused:
		return m.OldBattlesRefused(ctx)
	case user.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldBattlesParticipated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBattlesParticipated(v)
		return nil
	case user.FieldBattlesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBattlesCompleted(v)
		return nil
	case user.FieldBattlesRefused:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBattlesRefused(v)
		return nil
	case user.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addbattles_participated != nil {
		fields = append(fields, user.FieldBattlesParticipated)
	}
	if m.addbattles_completed != nil {
		fields = append(fields, user.FieldBattlesCompleted)
	}
	if m.addbattles_refused != nil {
		fields = append(fields, user.FieldBattlesRefused)
	}
	if m.addengagement_score != nil {
		fields = append(fields, user.FieldEngagementScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldBattlesParticipated:
		return m.AddedBattlesParticipated()
	case user.FieldBattlesCompleted:
		return m.AddedBattlesCompleted()
	case user.FieldBattlesRefused:
		return m.AddedBattlesRefused()
	case user.FieldEngagementScore:
		return m.AddedEngagementScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldBattlesParticipated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBattlesParticipated(v)
		return nil
	case user.FieldBattlesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBattlesCompleted(v)
		return nil
	case user.FieldBattlesRefused:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBattlesRefused(v)
		return nil
	case user.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldBattlesParticipated:
		m.ResetBattlesParticipated()
		return nil
	case user.FieldBattlesCompleted:
		m.ResetBattlesCompleted()
		return nil
	case user.FieldBattlesRefused:
		m.ResetBattlesRefused()
		return nil
	case user.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// VoteMutation represents an operation that mutates the Vote nodes in the graph.
type VoteMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	battle_id             *string
	voter_id              *string
	target_participant_id *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Vote, error)
	predicates            []predicate.Vote
}

var _ ent.Mutation = (*VoteMutation)(nil)

// voteOption allows management of the mutation configuration using functional options.
type voteOption func(*VoteMutation)

// newVoteMutation creates new mutation for the Vote entity.
func newVoteMutation(c config, op Op, opts ...voteOption) *VoteMutation {
	m := &VoteMutation{
		config:        c,
		op:            op,
		typ:           TypeVote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoteID sets the ID field of the mutation.
func withVoteID(id string) voteOption {
	return func(m *VoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Vote
		)
		m.oldValue = func(ctx context.Context) (*Vote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVote sets the old Vote of the mutation.
func withVote(node *Vote) voteOption {
	return func(m *VoteMutation) {
		m.oldValue = func(context.Context) (*Vote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vote entities.
func (m *VoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetBattleID sets the "battle_id" field.
func (m *VoteMutation) SetBattleID(s string) {
	m.battle_id = &s
}

// BattleID returns the value of the "battle_id" field in the mutation.
func (m *VoteMutation) BattleID() (r string, exists bool) {
	v := m.battle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBattleID returns the old "battle_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldBattleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBattleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBattleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBattleID: %w", err)
	}
	return oldValue.BattleID, nil
}

// ResetBattleID resets all changes to the "battle_id" field.
func (m *VoteMutation) ResetBattleID() {
	m.battle_id = nil
}

// SetVoterID sets the "voter_id" field.
func (m *VoteMutation) SetVoterID(s string) {
	m.voter_id = &s
}

// VoterID returns the value of the "voter_id" field in the mutation.
func (m *VoteMutation) VoterID() (r string, exists bool) {
	v := m.voter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVoterID returns the old "voter_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldVoterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoterID: %w", err)
	}
	return oldValue.VoterID, nil
}

// ResetVoterID resets all changes to the "voter_id" field.
func (m *VoteMutation) ResetVoterID() {
	m.voter_id = nil
}

// SetTargetParticipantID sets the "target_participant_id" field.
func (m *VoteMutation) SetTargetParticipantID(s string) {
	m.target_participant_id = &s
}

// TargetParticipantID returns the value of the "target_participant_id" field in the mutation.
func (m *VoteMutation) TargetParticipantID() (r string, exists bool) {
	v := m.target_participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetParticipantID returns the old "target_participant_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldTargetParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetParticipantID: %w", err)
	}
	return oldValue.TargetParticipantID, nil
}

// ResetTargetParticipantID resets all changes to the "target_participant_id" field.
func (m *VoteMutation) ResetTargetParticipantID() {
	m.target_participant_id = nil
}

// Where appends a list predicates to the VoteMutation builder.
func (m *VoteMutation) Where(ps ...predicate.Vote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vote).
func (m *VoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoteMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, vote.FieldCreatedAt)
	}
	if m.battle_id != nil {
		fields = append(fields, vote.FieldBattleID)
	}
	if m.voter_id != nil {
		fields = append(fields, vote.FieldVoterID)
	}
	if m.target_participant_id != nil {
		fields = append(fields, vote.FieldTargetParticipantID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldCreatedAt:
		return m.CreatedAt()
	case vote.FieldBattleID:
		return m.BattleID()
	case vote.FieldVoterID:
		return m.VoterID()
	case vote.FieldTargetParticipantID:
		return m.TargetParticipantID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vote.FieldBattleID:
		return m.OldBattleID(ctx)
	case vote.FieldVoterID:
		return m.OldVoterID(ctx)
	case vote.FieldTargetParticipantID:
		return m.OldTargetParticipantID(ctx)
	}
	return nil, fmt.Errorf("unknown Vote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vote.FieldBattleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBattleID(v)
		return nil
	case vote.FieldVoterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoterID(v)
		return nil
	case vote.FieldTargetParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetParticipantID(v)
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Vote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoteMutation) ResetField(name string) error {
	switch name {
	case vote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vote.FieldBattleID:
		m.ResetBattleID()
		return nil
	case vote.FieldVoterID:
		m.ResetVoterID()
		return nil
	case vote.FieldTargetParticipantID:
		m.ResetTargetParticipantID()
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vote edge %s", name)
}
