package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery holds the schema definition for the WebhookDelivery entity.
// One row per logical POST obligation; physical attempts share the row.
// Auth material is snapshotted (re-encrypted) so secret rotation does not
// disturb in-flight deliveries.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_id").
			Unique().
			Immutable(),
		field.String("organization_id"),
		field.String("event_type"),
		field.String("event_id").
			Comment("Stable across retries so receivers can dedupe"),
		field.String("document_id").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]interface{}{}),
		field.String("target_url"),
		field.Enum("auth_type").
			Values("none", "header", "hmac"),
		field.String("auth_header_name").
			Optional().
			Nillable(),
		field.String("auth_header_value_encrypted").
			Optional().
			Nillable(),
		field.String("secret_encrypted").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0),
		field.Time("next_attempt_at"),
		field.Enum("status").
			Values("pending", "in_flight", "succeeded", "failed", "giving_up").
			Default("pending"),
		field.Int("last_status_code").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("document_id"),
		// Scheduler sweep: due pending deliveries.
		index.Fields("status", "next_attempt_at"),
	}
}
