// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docpipe/docpipe/ent/predicate"
	"github.com/docpipe/docpipe/ent/webhookconfig"
)

// WebhookConfigUpdate is the builder for updating WebhookConfig entities.
type WebhookConfigUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookConfigMutation
}

// Where appends a list predicates to the WebhookConfigUpdate builder.
func (_u *WebhookConfigUpdate) Where(ps ...predicate.WebhookConfig) *WebhookConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WebhookConfigUpdate) SetEnabled(v bool) *WebhookConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableEnabled(v *bool) *WebhookConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookConfigUpdate) SetURL(v string) *WebhookConfigUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableURL(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *WebhookConfigUpdate) ClearURL() *WebhookConfigUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookConfigUpdate) SetEvents(v []string) *WebhookConfigUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookConfigUpdate) AppendEvents(v []string) *WebhookConfigUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *WebhookConfigUpdate) ClearEvents() *WebhookConfigUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// SetAuthType sets the "auth_type" field.
func (_u *WebhookConfigUpdate) SetAuthType(v webhookconfig.AuthType) *WebhookConfigUpdate {
	_u.mutation.SetAuthType(v)
	return _u
}

// SetNillableAuthType sets the "auth_type" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableAuthType(v *webhookconfig.AuthType) *WebhookConfigUpdate {
	if v != nil {
		_u.SetAuthType(*v)
	}
	return _u
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (_u *WebhookConfigUpdate) SetAuthHeaderName(v string) *WebhookConfigUpdate {
	_u.mutation.SetAuthHeaderName(v)
	return _u
}

// SetNillableAuthHeaderName sets the "auth_header_name" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableAuthHeaderName(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetAuthHeaderName(*v)
	}
	return _u
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (_u *WebhookConfigUpdate) ClearAuthHeaderName() *WebhookConfigUpdate {
	_u.mutation.ClearAuthHeaderName()
	return _u
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (_u *WebhookConfigUpdate) SetAuthHeaderValueEncrypted(v string) *WebhookConfigUpdate {
	_u.mutation.SetAuthHeaderValueEncrypted(v)
	return _u
}

// SetNillableAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableAuthHeaderValueEncrypted(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetAuthHeaderValueEncrypted(*v)
	}
	return _u
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (_u *WebhookConfigUpdate) ClearAuthHeaderValueEncrypted() *WebhookConfigUpdate {
	_u.mutation.ClearAuthHeaderValueEncrypted()
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookConfigUpdate) SetSecretEncrypted(v string) *WebhookConfigUpdate {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableSecretEncrypted(v *string) *WebhookConfigUpdate {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (_u *WebhookConfigUpdate) ClearSecretEncrypted() *WebhookConfigUpdate {
	_u.mutation.ClearSecretEncrypted()
	return _u
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (_u *WebhookConfigUpdate) SetSignatureEnabled(v bool) *WebhookConfigUpdate {
	_u.mutation.SetSignatureEnabled(v)
	return _u
}

// SetNillableSignatureEnabled sets the "signature_enabled" field if the given value is not nil.
func (_u *WebhookConfigUpdate) SetNillableSignatureEnabled(v *bool) *WebhookConfigUpdate {
	if v != nil {
		_u.SetSignatureEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookConfigUpdate) SetUpdatedAt(v time.Time) *WebhookConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookConfigMutation object of the builder.
func (_u *WebhookConfigUpdate) Mutation() *WebhookConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookConfigUpdate) check() error {
	if v, ok := _u.mutation.AuthType(); ok {
		if err := webhookconfig.AuthTypeValidator(v); err != nil {
			return &ValidationError{Name: "auth_type", err: fmt.Errorf(`ent: validator failed for field "WebhookConfig.auth_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookconfig.Table, webhookconfig.Columns, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(webhookconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookconfig.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(webhookconfig.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhookconfig.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookconfig.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(webhookconfig.FieldEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuthType(); ok {
		_spec.SetField(webhookconfig.FieldAuthType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthHeaderName(); ok {
		_spec.SetField(webhookconfig.FieldAuthHeaderName, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderNameCleared() {
		_spec.ClearField(webhookconfig.FieldAuthHeaderName, field.TypeString)
	}
	if value, ok := _u.mutation.AuthHeaderValueEncrypted(); ok {
		_spec.SetField(webhookconfig.FieldAuthHeaderValueEncrypted, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderValueEncryptedCleared() {
		_spec.ClearField(webhookconfig.FieldAuthHeaderValueEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhookconfig.FieldSecretEncrypted, field.TypeString, value)
	}
	if _u.mutation.SecretEncryptedCleared() {
		_spec.ClearField(webhookconfig.FieldSecretEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureEnabled(); ok {
		_spec.SetField(webhookconfig.FieldSignatureEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookConfigUpdateOne is the builder for updating a single WebhookConfig entity.
type WebhookConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookConfigMutation
}

// SetEnabled sets the "enabled" field.
func (_u *WebhookConfigUpdateOne) SetEnabled(v bool) *WebhookConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableEnabled(v *bool) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookConfigUpdateOne) SetURL(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableURL(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *WebhookConfigUpdateOne) ClearURL() *WebhookConfigUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookConfigUpdateOne) SetEvents(v []string) *WebhookConfigUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookConfigUpdateOne) AppendEvents(v []string) *WebhookConfigUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *WebhookConfigUpdateOne) ClearEvents() *WebhookConfigUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// SetAuthType sets the "auth_type" field.
func (_u *WebhookConfigUpdateOne) SetAuthType(v webhookconfig.AuthType) *WebhookConfigUpdateOne {
	_u.mutation.SetAuthType(v)
	return _u
}

// SetNillableAuthType sets the "auth_type" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableAuthType(v *webhookconfig.AuthType) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetAuthType(*v)
	}
	return _u
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (_u *WebhookConfigUpdateOne) SetAuthHeaderName(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetAuthHeaderName(v)
	return _u
}

// SetNillableAuthHeaderName sets the "auth_header_name" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableAuthHeaderName(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetAuthHeaderName(*v)
	}
	return _u
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (_u *WebhookConfigUpdateOne) ClearAuthHeaderName() *WebhookConfigUpdateOne {
	_u.mutation.ClearAuthHeaderName()
	return _u
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (_u *WebhookConfigUpdateOne) SetAuthHeaderValueEncrypted(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetAuthHeaderValueEncrypted(v)
	return _u
}

// SetNillableAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableAuthHeaderValueEncrypted(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetAuthHeaderValueEncrypted(*v)
	}
	return _u
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (_u *WebhookConfigUpdateOne) ClearAuthHeaderValueEncrypted() *WebhookConfigUpdateOne {
	_u.mutation.ClearAuthHeaderValueEncrypted()
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookConfigUpdateOne) SetSecretEncrypted(v string) *WebhookConfigUpdateOne {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableSecretEncrypted(v *string) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (_u *WebhookConfigUpdateOne) ClearSecretEncrypted() *WebhookConfigUpdateOne {
	_u.mutation.ClearSecretEncrypted()
	return _u
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (_u *WebhookConfigUpdateOne) SetSignatureEnabled(v bool) *WebhookConfigUpdateOne {
	_u.mutation.SetSignatureEnabled(v)
	return _u
}

// SetNillableSignatureEnabled sets the "signature_enabled" field if the given value is not nil.
func (_u *WebhookConfigUpdateOne) SetNillableSignatureEnabled(v *bool) *WebhookConfigUpdateOne {
	if v != nil {
		_u.SetSignatureEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookConfigUpdateOne) SetUpdatedAt(v time.Time) *WebhookConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WebhookConfigMutation object of the builder.
func (_u *WebhookConfigUpdateOne) Mutation() *WebhookConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookConfigUpdate builder.
func (_u *WebhookConfigUpdateOne) Where(ps ...predicate.WebhookConfig) *WebhookConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookConfigUpdateOne) Select(field string, fields ...string) *WebhookConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookConfig entity.
func (_u *WebhookConfigUpdateOne) Save(ctx context.Context) (*WebhookConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookConfigUpdateOne) SaveX(ctx context.Context) *WebhookConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookConfigUpdateOne) check() error {
	if v, ok := _u.mutation.AuthType(); ok {
		if err := webhookconfig.AuthTypeValidator(v); err != nil {
			return &ValidationError{Name: "auth_type", err: fmt.Errorf(`ent: validator failed for field "WebhookConfig.auth_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookConfigUpdateOne) sqlSave(ctx context.Context) (_node *WebhookConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookconfig.Table, webhookconfig.Columns, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookconfig.FieldID)
		for _, f := range fields {
			if !webhookconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookconfig.FieldID {
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
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(webhookconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookconfig.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(webhookconfig.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhookconfig.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookconfig.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(webhookconfig.FieldEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuthType(); ok {
		_spec.SetField(webhookconfig.FieldAuthType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuthHeaderName(); ok {
		_spec.SetField(webhookconfig.FieldAuthHeaderName, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderNameCleared() {
		_spec.ClearField(webhookconfig.FieldAuthHeaderName, field.TypeString)
	}
	if value, ok := _u.mutation.AuthHeaderValueEncrypted(); ok {
		_spec.SetField(webhookconfig.FieldAuthHeaderValueEncrypted, field.TypeString, value)
	}
	if _u.mutation.AuthHeaderValueEncryptedCleared() {
		_spec.ClearField(webhookconfig.FieldAuthHeaderValueEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhookconfig.FieldSecretEncrypted, field.TypeString, value)
	}
	if _u.mutation.SecretEncryptedCleared() {
		_spec.ClearField(webhookconfig.FieldSecretEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureEnabled(); ok {
		_spec.SetField(webhookconfig.FieldSignatureEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WebhookConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
