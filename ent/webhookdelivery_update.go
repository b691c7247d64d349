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
	"github.com/docpipe/docpipe/ent/predicate"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *WebhookDeliveryUpdate) SetOrganizationID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableOrganizationID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookDeliveryUpdate) SetEventType(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventType(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *WebhookDeliveryUpdate) SetEventID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *WebhookDeliveryUpdate) SetDocumentID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableDocumentID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *WebhookDeliveryUpdate) ClearDocumentID() *WebhookDeliveryUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdate) SetPayload(v map[string]interface{}) *WebhookDeliveryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *WebhookDeliveryUpdate) SetTargetURL(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableTargetURL(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// SetAuthType sets the "auth_type" field.
func (_u *WebhookDeliveryUpdate) SetAuthType(v webhookdelivery.AuthType) *WebhookDeliveryUpdate {
	_u.mutation.SetAuthType(v)
	return _u
}

// SetNillableAuthType sets the "auth_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAuthType(v *webhookdelivery.AuthType) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAuthType(*v)
	}
	return _u
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (_u *WebhookDeliveryUpdate) SetAuthHeaderName(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetAuthHeaderName(v)
	return _u
}

// SetNillableAuthHeaderName sets the "auth_header_name" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAuthHeaderName(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAuthHeaderName(*v)
	}
	return _u
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (_u *WebhookDeliveryUpdate) ClearAuthHeaderName() *WebhookDeliveryUpdate {
	_u.mutation.ClearAuthHeaderName()
	return _u
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (_u *WebhookDeliveryUpdate) SetAuthHeaderValueEncrypted(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetAuthHeaderValueEncrypted(v)
	return _u
}

// SetNillableAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAuthHeaderValueEncrypted(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAuthHeaderValueEncrypted(*v)
	}
	return _u
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (_u *WebhookDeliveryUpdate) ClearAuthHeaderValueEncrypted() *WebhookDeliveryUpdate {
	_u.mutation.ClearAuthHeaderValueEncrypted()
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookDeliveryUpdate) SetSecretEncrypted(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableSecretEncrypted(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (_u *WebhookDeliveryUpdate) ClearSecretEncrypted() *WebhookDeliveryUpdate {
	_u.mutation.ClearSecretEncrypted()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WebhookDeliveryUpdate) SetAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAttempts(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WebhookDeliveryUpdate) AddAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *WebhookDeliveryUpdate) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryUpdate) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastStatusCode sets the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) SetLastStatusCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetLastStatusCode()
	_u.mutation.SetLastStatusCode(v)
	return _u
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableLastStatusCode(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetLastStatusCode(*v)
	}
	return _u
}

// AddLastStatusCode adds value to the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) AddLastStatusCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddLastStatusCode(v)
	return _u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) ClearLastStatusCode() *WebhookDeliveryUpdate {
	_u.mutation.ClearLastStatusCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *WebhookDeliveryUpdate) SetLastError(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableLastError(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *WebhookDeliveryUpdate) ClearLastError() *WebhookDeliveryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdate) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdate) check() error {
	if v, ok := _u.mutation.AuthType(); ok {
		if err := webhookdelivery.AuthTypeValidator(v); err != nil {
			return &ValidationError{Name: "auth_type", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.auth_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(webhookdelivery.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(webhookdelivery.FieldDocumentID, field.TypeString, value)
	}
	if _u.mutation.DocumentIDCleared() {
		_spec.ClearField(webhookdelivery.FieldDocumentID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(webhookdelivery.FieldTargetURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthType(); ok {
		_spec.SetField(webhookdelivery.FieldAuthType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthHeaderName(); ok {
		_spec.SetField(webhookdelivery.FieldAuthHeaderName, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderNameCleared() {
		_spec.ClearField(webhookdelivery.FieldAuthHeaderName, field.TypeString)
	}
	if value, ok := _u.mutation.AuthHeaderValueEncrypted(); ok {
		_spec.SetField(webhookdelivery.FieldAuthHeaderValueEncrypted, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderValueEncryptedCleared() {
		_spec.ClearField(webhookdelivery.FieldAuthHeaderValueEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhookdelivery.FieldSecretEncrypted, field.TypeString, value)
	}
	if _u.mutation.SecretEncryptedCleared() {
		_spec.ClearField(webhookdelivery.FieldSecretEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStatusCode(); ok {
		_spec.AddField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if _u.mutation.LastStatusCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldLastStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(webhookdelivery.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *WebhookDeliveryUpdateOne) SetOrganizationID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableOrganizationID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookDeliveryUpdateOne) SetEventType(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventType(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *WebhookDeliveryUpdateOne) SetEventID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *WebhookDeliveryUpdateOne) SetDocumentID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableDocumentID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *WebhookDeliveryUpdateOne) ClearDocumentID() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdateOne) SetPayload(v map[string]interface{}) *WebhookDeliveryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *WebhookDeliveryUpdateOne) SetTargetURL(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableTargetURL(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// SetAuthType sets the "auth_type" field.
func (_u *WebhookDeliveryUpdateOne) SetAuthType(v webhookdelivery.AuthType) *WebhookDeliveryUpdateOne {
	_u.mutation.SetAuthType(v)
	return _u
}

// SetNillableAuthType sets the "auth_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAuthType(v *webhookdelivery.AuthType) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAuthType(*v)
	}
	return _u
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (_u *WebhookDeliveryUpdateOne) SetAuthHeaderName(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetAuthHeaderName(v)
	return _u
}

// SetNillableAuthHeaderName sets the "auth_header_name" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAuthHeaderName(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAuthHeaderName(*v)
	}
	return _u
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (_u *WebhookDeliveryUpdateOne) ClearAuthHeaderName() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearAuthHeaderName()
	return _u
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (_u *WebhookDeliveryUpdateOne) SetAuthHeaderValueEncrypted(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetAuthHeaderValueEncrypted(v)
	return _u
}

// SetNillableAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAuthHeaderValueEncrypted(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAuthHeaderValueEncrypted(*v)
	}
	return _u
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (_u *WebhookDeliveryUpdateOne) ClearAuthHeaderValueEncrypted() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearAuthHeaderValueEncrypted()
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookDeliveryUpdateOne) SetSecretEncrypted(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableSecretEncrypted(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (_u *WebhookDeliveryUpdateOne) ClearSecretEncrypted() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearSecretEncrypted()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WebhookDeliveryUpdateOne) SetAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAttempts(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WebhookDeliveryUpdateOne) AddAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *WebhookDeliveryUpdateOne) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryUpdateOne) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastStatusCode sets the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) SetLastStatusCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetLastStatusCode()
	_u.mutation.SetLastStatusCode(v)
	return _u
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableLastStatusCode(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetLastStatusCode(*v)
	}
	return _u
}

// AddLastStatusCode adds value to the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) AddLastStatusCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddLastStatusCode(v)
	return _u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) ClearLastStatusCode() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearLastStatusCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *WebhookDeliveryUpdateOne) SetLastError(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableLastError(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *WebhookDeliveryUpdateOne) ClearLastError() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookDeliveryUpdateOne) SetUpdatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookDeliveryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookdelivery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdateOne) check() error {
	if v, ok := _u.mutation.AuthType(); ok {
		if err := webhookdelivery.AuthTypeValidator(v); err != nil {
			return &ValidationError{Name: "auth_type", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.auth_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(webhookdelivery.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(webhookdelivery.FieldDocumentID, field.TypeString, value)
	}
	if _u.mutation.DocumentIDCleared() {
		_spec.ClearField(webhookdelivery.FieldDocumentID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(webhookdelivery.FieldTargetURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthType(); ok {
		_spec.SetField(webhookdelivery.FieldAuthType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthHeaderName(); ok {
		_spec.SetField(webhookdelivery.FieldAuthHeaderName, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderNameCleared() {
		_spec.ClearField(webhookdelivery.FieldAuthHeaderName, field.TypeString)
	}
	if value, ok := _u.mutation.AuthHeaderValueEncrypted(); ok {
		_spec.SetField(webhookdelivery.FieldAuthHeaderValueEncrypted, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderValueEncryptedCleared() {
		_spec.ClearField(webhookdelivery.FieldAuthHeaderValueEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhookdelivery.FieldSecretEncrypted, field.TypeString, value)
	}
	if _u.mutation.SecretEncryptedCleared() {
		_spec.ClearField(webhookdelivery.FieldSecretEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStatusCode(); ok {
		_spec.AddField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if _u.mutation.LastStatusCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldLastStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(webhookdelivery.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
