// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlobChunksColumns holds the columns for the "blob_chunks" table.
	BlobChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "data", Type: field.TypeBytes},
		{Name: "blob_id", Type: field.TypeString},
	}
	// BlobChunksTable holds the schema information for the "blob_chunks" table.
	BlobChunksTable = &schema.Table{
		Name:       "blob_chunks",
		Columns:    BlobChunksColumns,
		PrimaryKey: []*schema.Column{BlobChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blob_chunks_blob_objects_chunks",
				Columns:    []*schema.Column{BlobChunksColumns[3]},
				RefColumns: []*schema.Column{BlobObjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blobchunk_blob_id_seq",
				Unique:  true,
				Columns: []*schema.Column{BlobChunksColumns[3], BlobChunksColumns[1]},
			},
		},
	}
	// BlobObjectsColumns holds the columns for the "blob_objects" table.
	BlobObjectsColumns = []*schema.Column{
		{Name: "blob_id", Type: field.TypeString, Unique: true},
		{Name: "bucket", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt64},
		{Name: "chunk_count", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlobObjectsTable holds the schema information for the "blob_objects" table.
	BlobObjectsTable = &schema.Table{
		Name:       "blob_objects",
		Columns:    BlobObjectsColumns,
		PrimaryKey: []*schema.Column{BlobObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blobobject_bucket_key",
				Unique:  true,
				Columns: []*schema.Column{BlobObjectsColumns[1], BlobObjectsColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_file_name", Type: field.TypeString},
		{Name: "stored_file_name", Type: field.TypeString},
		{Name: "pdf_file_name", Type: field.TypeString},
		{Name: "tag_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"uploaded", "ocr_processing", "ocr_completed", "ocr_failed", "llm_processing", "llm_completed", "llm_failed", "kb_index_processing", "kb_index_completed", "kb_index_failed"}, Default: "uploaded"},
		{Name: "state_updated_at", Type: field.TypeTime},
		{Name: "upload_date", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_organization_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_state",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_upload_date",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "extraction_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_rev_id", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_documents_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_document_id_prompt_rev_id",
				Unique:  true,
				Columns: []*schema.Column{ExtractionsColumns[5], ExtractionsColumns[1]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_rev_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "tag_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_name",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[1]},
			},
		},
	}
	// QueueMessagesColumns holds the columns for the "queue_messages" table.
	QueueMessagesColumns = []*schema.Column{
		{Name: "msg_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "msg", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// QueueMessagesTable holds the schema information for the "queue_messages" table.
	QueueMessagesTable = &schema.Table{
		Name:       "queue_messages",
		Columns:    QueueMessagesColumns,
		PrimaryKey: []*schema.Column{QueueMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_queue_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[1], QueueMessagesColumns[2], QueueMessagesColumns[4]},
			},
			{
				Name:    "queuemessage_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[2], QueueMessagesColumns[5]},
			},
		},
	}
	// WebhookConfigsColumns holds the columns for the "webhook_configs" table.
	WebhookConfigsColumns = []*schema.Column{
		{Name: "organization_id", Type: field.TypeString, Unique: true},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "events", Type: field.TypeJSON, Nullable: true},
		{Name: "auth_type", Type: field.TypeEnum, Enums: []string{"none", "header", "hmac"}, Default: "none"},
		{Name: "auth_header_name", Type: field.TypeString, Nullable: true},
		{Name: "auth_header_value_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "secret_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "signature_enabled", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookConfigsTable holds the schema information for the "webhook_configs" table.
	WebhookConfigsTable = &schema.Table{
		Name:       "webhook_configs",
		Columns:    WebhookConfigsColumns,
		PrimaryKey: []*schema.Column{WebhookConfigsColumns[0]},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "target_url", Type: field.TypeString},
		{Name: "auth_type", Type: field.TypeEnum, Enums: []string{"none", "header", "hmac"}},
		{Name: "auth_header_name", Type: field.TypeString, Nullable: true},
		{Name: "auth_header_value_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "secret_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "succeeded", "failed", "giving_up"}, Default: "pending"},
		{Name: "last_status_code", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_organization_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1]},
			},
			{
				Name:    "webhookdelivery_document_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[4]},
			},
			{
				Name:    "webhookdelivery_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[13], WebhookDeliveriesColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlobChunksTable,
		BlobObjectsTable,
		DocumentsTable,
		ExtractionsTable,
		PromptsTable,
		QueueMessagesTable,
		WebhookConfigsTable,
		WebhookDeliveriesTable,
	}
)

func init() {
	BlobChunksTable.ForeignKeys[0].RefTable = BlobObjectsTable
	ExtractionsTable.ForeignKeys[0].RefTable = DocumentsTable
}
