package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WebhookConfig holds the schema definition for the WebhookConfig entity.
// One row per organization, keyed by the organization id.
type WebhookConfig struct {
	ent.Schema
}

// Fields of the WebhookConfig.
func (WebhookConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("organization_id").
			Unique().
			Immutable(),
		field.Bool("enabled").
			Default(false),
		field.String("url").
			Optional(),
		field.JSON("events", []string{}).
			Optional().
			Comment("Event allowlist; absent/null means all events"),
		field.Enum("auth_type").
			Values("none", "header", "hmac").
			Default("none"),
		field.String("auth_header_name").
			Optional().
			Nillable(),
		field.String("auth_header_value_encrypted").
			Optional().
			Nillable(),
		field.String("secret_encrypted").
			Optional().
			Nillable(),
		field.Bool("signature_enabled").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
