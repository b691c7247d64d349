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
	"github.com/docpipe/docpipe/ent/webhookconfig"
)

// WebhookConfigCreate is the builder for creating a WebhookConfig entity.
type WebhookConfigCreate struct {
	config
	mutation *WebhookConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEnabled sets the "enabled" field.
func (_c *WebhookConfigCreate) SetEnabled(v bool) *WebhookConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableEnabled(v *bool) *WebhookConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookConfigCreate) SetURL(v string) *WebhookConfigCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableURL(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetEvents sets the "events" field.
func (_c *WebhookConfigCreate) SetEvents(v []string) *WebhookConfigCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// SetAuthType sets the "auth_type" field.
func (_c *WebhookConfigCreate) SetAuthType(v webhookconfig.AuthType) *WebhookConfigCreate {
	_c.mutation.SetAuthType(v)
	return _c
}

// SetNillableAuthType sets the "auth_type" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableAuthType(v *webhookconfig.AuthType) *WebhookConfigCreate {
	if v != nil {
		_c.SetAuthType(*v)
	}
	return _c
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (_c *WebhookConfigCreate) SetAuthHeaderName(v string) *WebhookConfigCreate {
	_c.mutation.SetAuthHeaderName(v)
	return _c
}

// SetNillableAuthHeaderName sets the "auth_header_name" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableAuthHeaderName(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetAuthHeaderName(*v)
	}
	return _c
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (_c *WebhookConfigCreate) SetAuthHeaderValueEncrypted(v string) *WebhookConfigCreate {
	_c.mutation.SetAuthHeaderValueEncrypted(v)
	return _c
}

// SetNillableAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableAuthHeaderValueEncrypted(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetAuthHeaderValueEncrypted(*v)
	}
	return _c
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_c *WebhookConfigCreate) SetSecretEncrypted(v string) *WebhookConfigCreate {
	_c.mutation.SetSecretEncrypted(v)
	return _c
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableSecretEncrypted(v *string) *WebhookConfigCreate {
	if v != nil {
		_c.SetSecretEncrypted(*v)
	}
	return _c
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (_c *WebhookConfigCreate) SetSignatureEnabled(v bool) *WebhookConfigCreate {
	_c.mutation.SetSignatureEnabled(v)
	return _c
}

// SetNillableSignatureEnabled sets the "signature_enabled" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableSignatureEnabled(v *bool) *WebhookConfigCreate {
	if v != nil {
		_c.SetSignatureEnabled(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookConfigCreate) SetUpdatedAt(v time.Time) *WebhookConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookConfigCreate) SetNillableUpdatedAt(v *time.Time) *WebhookConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookConfigCreate) SetID(v string) *WebhookConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WebhookConfigMutation object of the builder.
func (_c *WebhookConfigCreate) Mutation() *WebhookConfigMutation {
	return _c.mutation
}

// Save creates the WebhookConfig in the database.
func (_c *WebhookConfigCreate) Save(ctx context.Context) (*WebhookConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookConfigCreate) SaveX(ctx context.Context) *WebhookConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := webhookconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.AuthType(); !ok {
		v := webhookconfig.DefaultAuthType
		_c.mutation.SetAuthType(v)
	}
	if _, ok := _c.mutation.SignatureEnabled(); !ok {
		v := webhookconfig.DefaultSignatureEnabled
		_c.mutation.SetSignatureEnabled(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookConfigCreate) check() error {
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "WebhookConfig.enabled"`)}
	}
	if _, ok := _c.mutation.AuthType(); !ok {
		return &ValidationError{Name: "auth_type", err: errors.New(`ent: missing required field "WebhookConfig.auth_type"`)}
	}
	if v, ok := _c.mutation.AuthType(); ok {
		if err := webhookconfig.AuthTypeValidator(v); err != nil {
			return &ValidationError{Name: "auth_type", err: fmt.Errorf(`ent: validator failed for field "WebhookConfig.auth_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SignatureEnabled(); !ok {
		return &ValidationError{Name: "signature_enabled", err: errors.New(`ent: missing required field "WebhookConfig.signature_enabled"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookConfig.updated_at"`)}
	}
	return nil
}

func (_c *WebhookConfigCreate) sqlSave(ctx context.Context) (*WebhookConfig, error) {
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
			return nil, fmt.Errorf("unexpected WebhookConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookConfigCreate) createSpec() (*WebhookConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookconfig.Table, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(webhookconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhookconfig.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(webhookconfig.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	if value, ok := _c.mutation.AuthType(); ok {
		_spec.SetField(webhookconfig.FieldAuthType, field.TypeEnum, value)
		_node.AuthType = value
	}
	if value, ok := _c.mutation.AuthHeaderName(); ok {
		_spec.SetField(webhookconfig.FieldAuthHeaderName, field.TypeString, value)
		_node.AuthHeaderName = &value
	}
	if value, ok := _c.mutation.AuthHeaderValueEncrypted(); ok {
		_spec.SetField(webhookconfig.FieldAuthHeaderValueEncrypted, field.TypeString, value)
		_node.AuthHeaderValueEncrypted = &value
	}
	if value, ok := _c.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhookconfig.FieldSecretEncrypted, field.TypeString, value)
		_node.SecretEncrypted = &value
	}
	if value, ok := _c.mutation.SignatureEnabled(); ok {
		_spec.SetField(webhookconfig.FieldSignatureEnabled, field.TypeBool, value)
		_node.SignatureEnabled = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookConfig.Create().
//		SetEnabled(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookConfigUpsert) {
//			SetEnabled(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookConfigCreate) OnConflict(opts ...sql.ConflictOption) *WebhookConfigUpsertOne {
	_c.conflict = opts
	return &WebhookConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookConfigCreate) OnConflictColumns(columns ...string) *WebhookConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookConfigUpsertOne{
		create: _c,
	}
}

type (
	// WebhookConfigUpsertOne is the builder for "upsert"-ing
	//  one WebhookConfig node.
	WebhookConfigUpsertOne struct {
		create *WebhookConfigCreate
	}

	// WebhookConfigUpsert is the "OnConflict" setter.
	WebhookConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetEnabled sets the "enabled" field.
func (u *WebhookConfigUpsert) SetEnabled(v bool) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateEnabled() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldEnabled)
	return u
}

// SetURL sets the "url" field.
func (u *WebhookConfigUpsert) SetURL(v string) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateURL() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldURL)
	return u
}

// ClearURL clears the value of the "url" field.
func (u *WebhookConfigUpsert) ClearURL() *WebhookConfigUpsert {
	u.SetNull(webhookconfig.FieldURL)
	return u
}

// SetEvents sets the "events" field.
func (u *WebhookConfigUpsert) SetEvents(v []string) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldEvents, v)
	return u
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateEvents() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldEvents)
	return u
}

// ClearEvents clears the value of the "events" field.
func (u *WebhookConfigUpsert) ClearEvents() *WebhookConfigUpsert {
	u.SetNull(webhookconfig.FieldEvents)
	return u
}

// SetAuthType sets the "auth_type" field.
func (u *WebhookConfigUpsert) SetAuthType(v webhookconfig.AuthType) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldAuthType, v)
	return u
}

// UpdateAuthType sets the "auth_type" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateAuthType() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldAuthType)
	return u
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (u *WebhookConfigUpsert) SetAuthHeaderName(v string) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldAuthHeaderName, v)
	return u
}

// UpdateAuthHeaderName sets the "auth_header_name" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateAuthHeaderName() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldAuthHeaderName)
	return u
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (u *WebhookConfigUpsert) ClearAuthHeaderName() *WebhookConfigUpsert {
	u.SetNull(webhookconfig.FieldAuthHeaderName)
	return u
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (u *WebhookConfigUpsert) SetAuthHeaderValueEncrypted(v string) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldAuthHeaderValueEncrypted, v)
	return u
}

// UpdateAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateAuthHeaderValueEncrypted() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldAuthHeaderValueEncrypted)
	return u
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (u *WebhookConfigUpsert) ClearAuthHeaderValueEncrypted() *WebhookConfigUpsert {
	u.SetNull(webhookconfig.FieldAuthHeaderValueEncrypted)
	return u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (u *WebhookConfigUpsert) SetSecretEncrypted(v string) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldSecretEncrypted, v)
	return u
}

// UpdateSecretEncrypted sets the "secret_encrypted" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateSecretEncrypted() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldSecretEncrypted)
	return u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (u *WebhookConfigUpsert) ClearSecretEncrypted() *WebhookConfigUpsert {
	u.SetNull(webhookconfig.FieldSecretEncrypted)
	return u
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (u *WebhookConfigUpsert) SetSignatureEnabled(v bool) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldSignatureEnabled, v)
	return u
}

// UpdateSignatureEnabled sets the "signature_enabled" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateSignatureEnabled() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldSignatureEnabled)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookConfigUpsert) SetUpdatedAt(v time.Time) *WebhookConfigUpsert {
	u.Set(webhookconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookConfigUpsert) UpdateUpdatedAt() *WebhookConfigUpsert {
	u.SetExcluded(webhookconfig.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookConfigUpsertOne) UpdateNewValues() *WebhookConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookconfig.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookConfigUpsertOne) Ignore() *WebhookConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookConfigUpsertOne) DoNothing() *WebhookConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookConfigCreate.OnConflict
// documentation for more info.
func (u *WebhookConfigUpsertOne) Update(set func(*WebhookConfigUpsert)) *WebhookConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetEnabled sets the "enabled" field.
func (u *WebhookConfigUpsertOne) SetEnabled(v bool) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateEnabled() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetURL sets the "url" field.
func (u *WebhookConfigUpsertOne) SetURL(v string) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateURL() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *WebhookConfigUpsertOne) ClearURL() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearURL()
	})
}

// SetEvents sets the "events" field.
func (u *WebhookConfigUpsertOne) SetEvents(v []string) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetEvents(v)
	})
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateEvents() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateEvents()
	})
}

// ClearEvents clears the value of the "events" field.
func (u *WebhookConfigUpsertOne) ClearEvents() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearEvents()
	})
}

// SetAuthType sets the "auth_type" field.
func (u *WebhookConfigUpsertOne) SetAuthType(v webhookconfig.AuthType) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetAuthType(v)
	})
}

// UpdateAuthType sets the "auth_type" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateAuthType() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateAuthType()
	})
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (u *WebhookConfigUpsertOne) SetAuthHeaderName(v string) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetAuthHeaderName(v)
	})
}

// UpdateAuthHeaderName sets the "auth_header_name" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateAuthHeaderName() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateAuthHeaderName()
	})
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (u *WebhookConfigUpsertOne) ClearAuthHeaderName() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearAuthHeaderName()
	})
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (u *WebhookConfigUpsertOne) SetAuthHeaderValueEncrypted(v string) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetAuthHeaderValueEncrypted(v)
	})
}

// UpdateAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateAuthHeaderValueEncrypted() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateAuthHeaderValueEncrypted()
	})
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (u *WebhookConfigUpsertOne) ClearAuthHeaderValueEncrypted() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearAuthHeaderValueEncrypted()
	})
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (u *WebhookConfigUpsertOne) SetSecretEncrypted(v string) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetSecretEncrypted(v)
	})
}

// UpdateSecretEncrypted sets the "secret_encrypted" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateSecretEncrypted() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateSecretEncrypted()
	})
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (u *WebhookConfigUpsertOne) ClearSecretEncrypted() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearSecretEncrypted()
	})
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (u *WebhookConfigUpsertOne) SetSignatureEnabled(v bool) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetSignatureEnabled(v)
	})
}

// UpdateSignatureEnabled sets the "signature_enabled" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateSignatureEnabled() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateSignatureEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookConfigUpsertOne) SetUpdatedAt(v time.Time) *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookConfigUpsertOne) UpdateUpdatedAt() *WebhookConfigUpsertOne {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookConfigUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookConfigUpsertOne.ID is not supported by MySQL driver. Use WebhookConfigUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookConfigUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookConfigCreateBulk is the builder for creating many WebhookConfig entities in bulk.
type WebhookConfigCreateBulk struct {
	config
	err      error
	builders []*WebhookConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookConfig entities in the database.
func (_c *WebhookConfigCreateBulk) Save(ctx context.Context) ([]*WebhookConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookConfigMutation)
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
func (_c *WebhookConfigCreateBulk) SaveX(ctx context.Context) []*WebhookConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookConfigUpsert) {
//			SetEnabled(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookConfigUpsertBulk {
	_c.conflict = opts
	return &WebhookConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookConfigCreateBulk) OnConflictColumns(columns ...string) *WebhookConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookConfigUpsertBulk{
		create: _c,
	}
}

// WebhookConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookConfig nodes.
type WebhookConfigUpsertBulk struct {
	create *WebhookConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookConfigUpsertBulk) UpdateNewValues() *WebhookConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookconfig.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookConfigUpsertBulk) Ignore() *WebhookConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookConfigUpsertBulk) DoNothing() *WebhookConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookConfigCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookConfigUpsertBulk) Update(set func(*WebhookConfigUpsert)) *WebhookConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetEnabled sets the "enabled" field.
func (u *WebhookConfigUpsertBulk) SetEnabled(v bool) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateEnabled() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetURL sets the "url" field.
func (u *WebhookConfigUpsertBulk) SetURL(v string) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateURL() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *WebhookConfigUpsertBulk) ClearURL() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearURL()
	})
}

// SetEvents sets the "events" field.
func (u *WebhookConfigUpsertBulk) SetEvents(v []string) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetEvents(v)
	})
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateEvents() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateEvents()
	})
}

// ClearEvents clears the value of the "events" field.
func (u *WebhookConfigUpsertBulk) ClearEvents() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearEvents()
	})
}

// SetAuthType sets the "auth_type" field.
func (u *WebhookConfigUpsertBulk) SetAuthType(v webhookconfig.AuthType) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetAuthType(v)
	})
}

// UpdateAuthType sets the "auth_type" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateAuthType() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateAuthType()
	})
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (u *WebhookConfigUpsertBulk) SetAuthHeaderName(v string) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetAuthHeaderName(v)
	})
}

// UpdateAuthHeaderName sets the "auth_header_name" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateAuthHeaderName() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateAuthHeaderName()
	})
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (u *WebhookConfigUpsertBulk) ClearAuthHeaderName() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearAuthHeaderName()
	})
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (u *WebhookConfigUpsertBulk) SetAuthHeaderValueEncrypted(v string) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetAuthHeaderValueEncrypted(v)
	})
}

// UpdateAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateAuthHeaderValueEncrypted() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateAuthHeaderValueEncrypted()
	})
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (u *WebhookConfigUpsertBulk) ClearAuthHeaderValueEncrypted() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearAuthHeaderValueEncrypted()
	})
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (u *WebhookConfigUpsertBulk) SetSecretEncrypted(v string) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetSecretEncrypted(v)
	})
}

// UpdateSecretEncrypted sets the "secret_encrypted" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateSecretEncrypted() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateSecretEncrypted()
	})
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (u *WebhookConfigUpsertBulk) ClearSecretEncrypted() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.ClearSecretEncrypted()
	})
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (u *WebhookConfigUpsertBulk) SetSignatureEnabled(v bool) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetSignatureEnabled(v)
	})
}

// UpdateSignatureEnabled sets the "signature_enabled" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateSignatureEnabled() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateSignatureEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookConfigUpsertBulk) SetUpdatedAt(v time.Time) *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookConfigUpsertBulk) UpdateUpdatedAt() *WebhookConfigUpsertBulk {
	return u.Update(func(s *WebhookConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
