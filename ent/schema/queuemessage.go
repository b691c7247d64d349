package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueMessage holds the schema definition for the QueueMessage entity.
// All named queues share this table; the queue name is a column rather
// than a table per queue so one claim path serves every queue.
type QueueMessage struct {
	ent.Schema
}

// Fields of the QueueMessage.
func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("msg_id").
			Unique().
			Immutable(),
		field.String("queue"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.JSON("msg", map[string]interface{}{}).
			Comment("Opaque message payload (discriminated by its 'kind' key)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("When the message transitioned to processing (visibility timeout base)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the QueueMessage.
func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Claim path: oldest pending per queue.
		index.Fields("queue", "status", "created_at"),
		// Recovery sweep: stuck processing messages.
		index.Fields("status", "claimed_at"),
	}
}
