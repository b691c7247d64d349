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
	"github.com/docpipe/docpipe/ent/webhookdelivery"
)

// WebhookDeliveryCreate is the builder for creating a WebhookDelivery entity.
type WebhookDeliveryCreate struct {
	config
	mutation *WebhookDeliveryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrganizationID sets the "organization_id" field.
func (_c *WebhookDeliveryCreate) SetOrganizationID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *WebhookDeliveryCreate) SetEventType(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *WebhookDeliveryCreate) SetEventID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *WebhookDeliveryCreate) SetDocumentID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableDocumentID(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookDeliveryCreate) SetPayload(v map[string]interface{}) *WebhookDeliveryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTargetURL sets the "target_url" field.
func (_c *WebhookDeliveryCreate) SetTargetURL(v string) *WebhookDeliveryCreate {
	_c.mutation.SetTargetURL(v)
	return _c
}

// SetAuthType sets the "auth_type" field.
func (_c *WebhookDeliveryCreate) SetAuthType(v webhookdelivery.AuthType) *WebhookDeliveryCreate {
	_c.mutation.SetAuthType(v)
	return _c
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (_c *WebhookDeliveryCreate) SetAuthHeaderName(v string) *WebhookDeliveryCreate {
	_c.mutation.SetAuthHeaderName(v)
	return _c
}

// SetNillableAuthHeaderName sets the "auth_header_name" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableAuthHeaderName(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetAuthHeaderName(*v)
	}
	return _c
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (_c *WebhookDeliveryCreate) SetAuthHeaderValueEncrypted(v string) *WebhookDeliveryCreate {
	_c.mutation.SetAuthHeaderValueEncrypted(v)
	return _c
}

// SetNillableAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableAuthHeaderValueEncrypted(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetAuthHeaderValueEncrypted(*v)
	}
	return _c
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_c *WebhookDeliveryCreate) SetSecretEncrypted(v string) *WebhookDeliveryCreate {
	_c.mutation.SetSecretEncrypted(v)
	return _c
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableSecretEncrypted(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetSecretEncrypted(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *WebhookDeliveryCreate) SetAttempts(v int) *WebhookDeliveryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableAttempts(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *WebhookDeliveryCreate) SetNextAttemptAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WebhookDeliveryCreate) SetStatus(v webhookdelivery.Status) *WebhookDeliveryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastStatusCode sets the "last_status_code" field.
func (_c *WebhookDeliveryCreate) SetLastStatusCode(v int) *WebhookDeliveryCreate {
	_c.mutation.SetLastStatusCode(v)
	return _c
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableLastStatusCode(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetLastStatusCode(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *WebhookDeliveryCreate) SetLastError(v string) *WebhookDeliveryCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableLastError(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookDeliveryCreate) SetCreatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookDeliveryCreate) SetUpdatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableUpdatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookDeliveryCreate) SetID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_c *WebhookDeliveryCreate) Mutation() *WebhookDeliveryMutation {
	return _c.mutation
}

// Save creates the WebhookDelivery in the database.
func (_c *WebhookDeliveryCreate) Save(ctx context.Context) (*WebhookDelivery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookDeliveryCreate) SaveX(ctx context.Context) *WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookDeliveryCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := webhookdelivery.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := webhookdelivery.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookdelivery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookDeliveryCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "WebhookDelivery.organization_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WebhookDelivery.event_type"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "WebhookDelivery.event_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookDelivery.payload"`)}
	}
	if _, ok := _c.mutation.TargetURL(); !ok {
		return &ValidationError{Name: "target_url", err: errors.New(`ent: missing required field "WebhookDelivery.target_url"`)}
	}
	if _, ok := _c.mutation.AuthType(); !ok {
		return &ValidationError{Name: "auth_type", err: errors.New(`ent: missing required field "WebhookDelivery.auth_type"`)}
	}
	if v, ok := _c.mutation.AuthType(); ok {
		if err := webhookdelivery.AuthTypeValidator(v); err != nil {
			return &ValidationError{Name: "auth_type", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.auth_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "WebhookDelivery.attempts"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "WebhookDelivery.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WebhookDelivery.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookDelivery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookDelivery.updated_at"`)}
	}
	return nil
}

func (_c *WebhookDeliveryCreate) sqlSave(ctx context.Context) (*WebhookDelivery, error) {
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
			return nil, fmt.Errorf("unexpected WebhookDelivery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookDeliveryCreate) createSpec() (*WebhookDelivery, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookDelivery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookdelivery.Table, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(webhookdelivery.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(webhookdelivery.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.TargetURL(); ok {
		_spec.SetField(webhookdelivery.FieldTargetURL, field.TypeString, value)
		_node.TargetURL = value
	}
	if value, ok := _c.mutation.AuthType(); ok {
		_spec.SetField(webhookdelivery.FieldAuthType, field.TypeEnum, value)
		_node.AuthType = value
	}
	if value, ok := _c.mutation.AuthHeaderName(); ok {
		_spec.SetField(webhookdelivery.FieldAuthHeaderName, field.TypeString, value)
		_node.AuthHeaderName = &value
	}
	if value, ok := _c.mutation.AuthHeaderValueEncrypted(); ok {
		_spec.SetField(webhookdelivery.FieldAuthHeaderValueEncrypted, field.TypeString, value)
		_node.AuthHeaderValueEncrypted = &value
	}
	if value, ok := _c.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhookdelivery.FieldSecretEncrypted, field.TypeString, value)
		_node.SecretEncrypted = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
		_node.LastStatusCode = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.Create().
//		SetOrganizationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertOne {
	_c.conflict = opts
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

type (
	// WebhookDeliveryUpsertOne is the builder for "upsert"-ing
	//  one WebhookDelivery node.
	WebhookDeliveryUpsertOne struct {
		create *WebhookDeliveryCreate
	}

	// WebhookDeliveryUpsert is the "OnConflict" setter.
	WebhookDeliveryUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrganizationID sets the "organization_id" field.
func (u *WebhookDeliveryUpsert) SetOrganizationID(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldOrganizationID, v)
	return u
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateOrganizationID() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldOrganizationID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsert) SetEventType(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateEventType() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldEventType)
	return u
}

// SetEventID sets the "event_id" field.
func (u *WebhookDeliveryUpsert) SetEventID(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateEventID() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldEventID)
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *WebhookDeliveryUpsert) SetDocumentID(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateDocumentID() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldDocumentID)
	return u
}

// ClearDocumentID clears the value of the "document_id" field.
func (u *WebhookDeliveryUpsert) ClearDocumentID() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldDocumentID)
	return u
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsert) SetPayload(v map[string]interface{}) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdatePayload() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldPayload)
	return u
}

// SetTargetURL sets the "target_url" field.
func (u *WebhookDeliveryUpsert) SetTargetURL(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldTargetURL, v)
	return u
}

// UpdateTargetURL sets the "target_url" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateTargetURL() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldTargetURL)
	return u
}

// SetAuthType sets the "auth_type" field.
func (u *WebhookDeliveryUpsert) SetAuthType(v webhookdelivery.AuthType) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldAuthType, v)
	return u
}

// UpdateAuthType sets the "auth_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateAuthType() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldAuthType)
	return u
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (u *WebhookDeliveryUpsert) SetAuthHeaderName(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldAuthHeaderName, v)
	return u
}

// UpdateAuthHeaderName sets the "auth_header_name" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateAuthHeaderName() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldAuthHeaderName)
	return u
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (u *WebhookDeliveryUpsert) ClearAuthHeaderName() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldAuthHeaderName)
	return u
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (u *WebhookDeliveryUpsert) SetAuthHeaderValueEncrypted(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldAuthHeaderValueEncrypted, v)
	return u
}

// UpdateAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateAuthHeaderValueEncrypted() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldAuthHeaderValueEncrypted)
	return u
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (u *WebhookDeliveryUpsert) ClearAuthHeaderValueEncrypted() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldAuthHeaderValueEncrypted)
	return u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (u *WebhookDeliveryUpsert) SetSecretEncrypted(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldSecretEncrypted, v)
	return u
}

// UpdateSecretEncrypted sets the "secret_encrypted" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateSecretEncrypted() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldSecretEncrypted)
	return u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (u *WebhookDeliveryUpsert) ClearSecretEncrypted() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldSecretEncrypted)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsert) SetAttempts(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateAttempts() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsert) AddAttempts(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldAttempts, v)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *WebhookDeliveryUpsert) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateNextAttemptAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldNextAttemptAt)
	return u
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsert) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateStatus() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldStatus)
	return u
}

// SetLastStatusCode sets the "last_status_code" field.
func (u *WebhookDeliveryUpsert) SetLastStatusCode(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldLastStatusCode, v)
	return u
}

// UpdateLastStatusCode sets the "last_status_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateLastStatusCode() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldLastStatusCode)
	return u
}

// AddLastStatusCode adds v to the "last_status_code" field.
func (u *WebhookDeliveryUpsert) AddLastStatusCode(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldLastStatusCode, v)
	return u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (u *WebhookDeliveryUpsert) ClearLastStatusCode() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldLastStatusCode)
	return u
}

// SetLastError sets the "last_error" field.
func (u *WebhookDeliveryUpsert) SetLastError(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateLastError() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *WebhookDeliveryUpsert) ClearLastError() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldLastError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsert) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateUpdatedAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertOne) UpdateNewValues() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookdelivery.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(webhookdelivery.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookDeliveryUpsertOne) Ignore() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertOne) DoNothing() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreate.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertOne) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *WebhookDeliveryUpsertOne) SetOrganizationID(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateOrganizationID() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateOrganizationID()
	})
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsertOne) SetEventType(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateEventType() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventType()
	})
}

// SetEventID sets the "event_id" field.
func (u *WebhookDeliveryUpsertOne) SetEventID(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateEventID() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventID()
	})
}

// SetDocumentID sets the "document_id" field.
func (u *WebhookDeliveryUpsertOne) SetDocumentID(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateDocumentID() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateDocumentID()
	})
}

// ClearDocumentID clears the value of the "document_id" field.
func (u *WebhookDeliveryUpsertOne) ClearDocumentID() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearDocumentID()
	})
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsertOne) SetPayload(v map[string]interface{}) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdatePayload() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdatePayload()
	})
}

// SetTargetURL sets the "target_url" field.
func (u *WebhookDeliveryUpsertOne) SetTargetURL(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetTargetURL(v)
	})
}

// UpdateTargetURL sets the "target_url" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateTargetURL() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateTargetURL()
	})
}

// SetAuthType sets the "auth_type" field.
func (u *WebhookDeliveryUpsertOne) SetAuthType(v webhookdelivery.AuthType) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAuthType(v)
	})
}

// UpdateAuthType sets the "auth_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateAuthType() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAuthType()
	})
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (u *WebhookDeliveryUpsertOne) SetAuthHeaderName(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAuthHeaderName(v)
	})
}

// UpdateAuthHeaderName sets the "auth_header_name" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateAuthHeaderName() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAuthHeaderName()
	})
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (u *WebhookDeliveryUpsertOne) ClearAuthHeaderName() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearAuthHeaderName()
	})
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (u *WebhookDeliveryUpsertOne) SetAuthHeaderValueEncrypted(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAuthHeaderValueEncrypted(v)
	})
}

// UpdateAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateAuthHeaderValueEncrypted() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAuthHeaderValueEncrypted()
	})
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (u *WebhookDeliveryUpsertOne) ClearAuthHeaderValueEncrypted() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearAuthHeaderValueEncrypted()
	})
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (u *WebhookDeliveryUpsertOne) SetSecretEncrypted(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetSecretEncrypted(v)
	})
}

// UpdateSecretEncrypted sets the "secret_encrypted" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateSecretEncrypted() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateSecretEncrypted()
	})
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (u *WebhookDeliveryUpsertOne) ClearSecretEncrypted() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearSecretEncrypted()
	})
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsertOne) SetAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsertOne) AddAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateAttempts() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *WebhookDeliveryUpsertOne) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateNextAttemptAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsertOne) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateStatus() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateStatus()
	})
}

// SetLastStatusCode sets the "last_status_code" field.
func (u *WebhookDeliveryUpsertOne) SetLastStatusCode(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastStatusCode(v)
	})
}

// AddLastStatusCode adds v to the "last_status_code" field.
func (u *WebhookDeliveryUpsertOne) AddLastStatusCode(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddLastStatusCode(v)
	})
}

// UpdateLastStatusCode sets the "last_status_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateLastStatusCode() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastStatusCode()
	})
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (u *WebhookDeliveryUpsertOne) ClearLastStatusCode() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastStatusCode()
	})
}

// SetLastError sets the "last_error" field.
func (u *WebhookDeliveryUpsertOne) SetLastError(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateLastError() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *WebhookDeliveryUpsertOne) ClearLastError() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsertOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateUpdatedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookDeliveryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookDeliveryUpsertOne.ID is not supported by MySQL driver. Use WebhookDeliveryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookDeliveryCreateBulk is the builder for creating many WebhookDelivery entities in bulk.
type WebhookDeliveryCreateBulk struct {
	config
	err      error
	builders []*WebhookDeliveryCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookDelivery entities in the database.
func (_c *WebhookDeliveryCreateBulk) Save(ctx context.Context) ([]*WebhookDelivery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookDelivery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookDeliveryMutation)
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
func (_c *WebhookDeliveryCreateBulk) SaveX(ctx context.Context) []*WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertBulk {
	_c.conflict = opts
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// WebhookDeliveryUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookDelivery nodes.
type WebhookDeliveryUpsertBulk struct {
	create *WebhookDeliveryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) UpdateNewValues() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookdelivery.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(webhookdelivery.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) Ignore() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertBulk) DoNothing() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertBulk) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *WebhookDeliveryUpsertBulk) SetOrganizationID(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateOrganizationID() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateOrganizationID()
	})
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsertBulk) SetEventType(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateEventType() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventType()
	})
}

// SetEventID sets the "event_id" field.
func (u *WebhookDeliveryUpsertBulk) SetEventID(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateEventID() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventID()
	})
}

// SetDocumentID sets the "document_id" field.
func (u *WebhookDeliveryUpsertBulk) SetDocumentID(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateDocumentID() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateDocumentID()
	})
}

// ClearDocumentID clears the value of the "document_id" field.
func (u *WebhookDeliveryUpsertBulk) ClearDocumentID() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearDocumentID()
	})
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsertBulk) SetPayload(v map[string]interface{}) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdatePayload() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdatePayload()
	})
}

// SetTargetURL sets the "target_url" field.
func (u *WebhookDeliveryUpsertBulk) SetTargetURL(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetTargetURL(v)
	})
}

// UpdateTargetURL sets the "target_url" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateTargetURL() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateTargetURL()
	})
}

// SetAuthType sets the "auth_type" field.
func (u *WebhookDeliveryUpsertBulk) SetAuthType(v webhookdelivery.AuthType) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAuthType(v)
	})
}

// UpdateAuthType sets the "auth_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateAuthType() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAuthType()
	})
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (u *WebhookDeliveryUpsertBulk) SetAuthHeaderName(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAuthHeaderName(v)
	})
}

// UpdateAuthHeaderName sets the "auth_header_name" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateAuthHeaderName() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAuthHeaderName()
	})
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (u *WebhookDeliveryUpsertBulk) ClearAuthHeaderName() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearAuthHeaderName()
	})
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (u *WebhookDeliveryUpsertBulk) SetAuthHeaderValueEncrypted(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAuthHeaderValueEncrypted(v)
	})
}

// UpdateAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateAuthHeaderValueEncrypted() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAuthHeaderValueEncrypted()
	})
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (u *WebhookDeliveryUpsertBulk) ClearAuthHeaderValueEncrypted() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearAuthHeaderValueEncrypted()
	})
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (u *WebhookDeliveryUpsertBulk) SetSecretEncrypted(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetSecretEncrypted(v)
	})
}

// UpdateSecretEncrypted sets the "secret_encrypted" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateSecretEncrypted() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateSecretEncrypted()
	})
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (u *WebhookDeliveryUpsertBulk) ClearSecretEncrypted() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearSecretEncrypted()
	})
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsertBulk) SetAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsertBulk) AddAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateAttempts() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *WebhookDeliveryUpsertBulk) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateNextAttemptAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsertBulk) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateStatus() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateStatus()
	})
}

// SetLastStatusCode sets the "last_status_code" field.
func (u *WebhookDeliveryUpsertBulk) SetLastStatusCode(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastStatusCode(v)
	})
}

// AddLastStatusCode adds v to the "last_status_code" field.
func (u *WebhookDeliveryUpsertBulk) AddLastStatusCode(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddLastStatusCode(v)
	})
}

// UpdateLastStatusCode sets the "last_status_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateLastStatusCode() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastStatusCode()
	})
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (u *WebhookDeliveryUpsertBulk) ClearLastStatusCode() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastStatusCode()
	})
}

// SetLastError sets the "last_error" field.
func (u *WebhookDeliveryUpsertBulk) SetLastError(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateLastError() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *WebhookDeliveryUpsertBulk) ClearLastError() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookDeliveryUpsertBulk) SetUpdatedAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateUpdatedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookDeliveryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
