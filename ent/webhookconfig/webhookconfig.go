// Code generated by ent, DO NOT EDIT.

package webhookconfig

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the webhookconfig type in the database.
	Label = "webhook_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "organization_id"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldEvents holds the string denoting the events field in the database.
	FieldEvents = "events"
	// FieldAuthType holds the string denoting the auth_type field in the database.
	FieldAuthType = "auth_type"
	// FieldAuthHeaderName holds the string denoting the auth_header_name field in the database.
	FieldAuthHeaderName = "auth_header_name"
	// FieldAuthHeaderValueEncrypted holds the string denoting the auth_header_value_encrypted field in the database.
	FieldAuthHeaderValueEncrypted = "auth_header_value_encrypted"
	// FieldSecretEncrypted holds the string denoting the secret_encrypted field in the database.
	FieldSecretEncrypted = "secret_encrypted"
	// FieldSignatureEnabled holds the string denoting the signature_enabled field in the database.
	FieldSignatureEnabled = "signature_enabled"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the webhookconfig in the database.
	Table = "webhook_configs"
)

// Columns holds all SQL columns for webhookconfig fields.
var Columns = []string{
	FieldID,
	FieldEnabled,
	FieldURL,
	FieldEvents,
	FieldAuthType,
	FieldAuthHeaderName,
	FieldAuthHeaderValueEncrypted,
	FieldSecretEncrypted,
	FieldSignatureEnabled,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultSignatureEnabled holds the default value on creation for the "signature_enabled" field.
	DefaultSignatureEnabled bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AuthType defines the type for the "auth_type" enum field.
type AuthType string

// AuthTypeNone is the default value of the AuthType enum.
const DefaultAuthType = AuthTypeNone

// AuthType values.
const (
	AuthTypeNone   AuthType = "none"
	AuthTypeHeader AuthType = "header"
	AuthTypeHmac   AuthType = "hmac"
)

func (at AuthType) String() string {
	return string(at)
}

// AuthTypeValidator is a validator for the "auth_type" field enum values. It is called by the builders before save.
func AuthTypeValidator(at AuthType) error {
	switch at {
	case AuthTypeNone, AuthTypeHeader, AuthTypeHmac:
		return nil
	default:
		return fmt.Errorf("webhookconfig: invalid enum value for auth_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the WebhookConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByAuthType orders the results by the auth_type field.
func ByAuthType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthType, opts...).ToFunc()
}

// ByAuthHeaderName orders the results by the auth_header_name field.
func ByAuthHeaderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthHeaderName, opts...).ToFunc()
}

// ByAuthHeaderValueEncrypted orders the results by the auth_header_value_encrypted field.
func ByAuthHeaderValueEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthHeaderValueEncrypted, opts...).ToFunc()
}

// BySecretEncrypted orders the results by the secret_encrypted field.
func BySecretEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecretEncrypted, opts...).ToFunc()
}

// BySignatureEnabled orders the results by the signature_enabled field.
func BySignatureEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureEnabled, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
