// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BlobChunk is the predicate function for blobchunk builders.
type BlobChunk func(*sql.Selector)

// BlobObject is the predicate function for blobobject builders.
type BlobObject func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)

// WebhookConfig is the predicate function for webhookconfig builders.
type WebhookConfig func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)
