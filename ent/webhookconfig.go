// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docpipe/docpipe/ent/webhookconfig"
)

// WebhookConfig is the model entity for the WebhookConfig schema.
type WebhookConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Event allowlist; absent/null means all events
	Events []string `json:"events,omitempty"`
	// AuthType holds the value of the "auth_type" field.
	AuthType webhookconfig.AuthType `json:"auth_type,omitempty"`
	// AuthHeaderName holds the value of the "auth_header_name" field.
	AuthHeaderName *string `json:"auth_header_name,omitempty"`
	// AuthHeaderValueEncrypted holds the value of the "auth_header_value_encrypted" field.
	AuthHeaderValueEncrypted *string `json:"auth_header_value_encrypted,omitempty"`
	// SecretEncrypted holds the value of the "secret_encrypted" field.
	SecretEncrypted *string `json:"secret_encrypted,omitempty"`
	// SignatureEnabled holds the value of the "signature_enabled" field.
	SignatureEnabled bool `json:"signature_enabled,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookconfig.FieldEvents:
			values[i] = new([]byte)
		case webhookconfig.FieldEnabled, webhookconfig.FieldSignatureEnabled:
			values[i] = new(sql.NullBool)
		case webhookconfig.FieldID, webhookconfig.FieldURL, webhookconfig.FieldAuthType, webhookconfig.FieldAuthHeaderName, webhookconfig.FieldAuthHeaderValueEncrypted, webhookconfig.FieldSecretEncrypted:
			values[i] = new(sql.NullString)
		case webhookconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookConfig fields.
func (_m *WebhookConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case webhookconfig.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case webhookconfig.FieldEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Events); err != nil {
					return fmt.Errorf("unmarshal field events: %w", err)
				}
			}
		case webhookconfig.FieldAuthType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_type", values[i])
			} else if value.Valid {
				_m.AuthType = webhookconfig.AuthType(value.String)
			}
		case webhookconfig.FieldAuthHeaderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_header_name", values[i])
			} else if value.Valid {
				_m.AuthHeaderName = new(string)
				*_m.AuthHeaderName = value.String
			}
		case webhookconfig.FieldAuthHeaderValueEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_header_value_encrypted", values[i])
			} else if value.Valid {
				_m.AuthHeaderValueEncrypted = new(string)
				*_m.AuthHeaderValueEncrypted = value.String
			}
		case webhookconfig.FieldSecretEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret_encrypted", values[i])
			} else if value.Valid {
				_m.SecretEncrypted = new(string)
				*_m.SecretEncrypted = value.String
			}
		case webhookconfig.FieldSignatureEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field signature_enabled", values[i])
			} else if value.Valid {
				_m.SignatureEnabled = value.Bool
			}
		case webhookconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookConfig.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WebhookConfig.
// Note that you need to call WebhookConfig.Unwrap() before calling this method if this WebhookConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookConfig) Update() *WebhookConfigUpdateOne {
	return NewWebhookConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookConfig) Unwrap() *WebhookConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookConfig) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("events=")
	builder.WriteString(fmt.Sprintf("%v", _m.Events))
	builder.WriteString(", ")
	builder.WriteString("auth_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthType))
	builder.WriteString(", ")
	if v := _m.AuthHeaderName; v != nil {
		builder.WriteString("auth_header_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AuthHeaderValueEncrypted; v != nil {
		builder.WriteString("auth_header_value_encrypted=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SecretEncrypted; v != nil {
		builder.WriteString("secret_encrypted=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("signature_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignatureEnabled))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookConfigs is a parsable slice of WebhookConfig.
type WebhookConfigs []*WebhookConfig
