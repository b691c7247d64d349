// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docpipe/docpipe/ent/blobobject"
	"github.com/docpipe/docpipe/ent/document"
	"github.com/docpipe/docpipe/ent/extraction"
	"github.com/docpipe/docpipe/ent/prompt"
	"github.com/docpipe/docpipe/ent/queuemessage"
	"github.com/docpipe/docpipe/ent/schema"
	"github.com/docpipe/docpipe/ent/webhookconfig"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blobobjectFields := schema.BlobObject{}.Fields()
	_ = blobobjectFields
	// blobobjectDescCreatedAt is the schema descriptor for created_at field.
	blobobjectDescCreatedAt := blobobjectFields[6].Descriptor()
	// blobobject.DefaultCreatedAt holds the default value on creation for the created_at field.
	blobobject.DefaultCreatedAt = blobobjectDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescStateUpdatedAt is the schema descriptor for state_updated_at field.
	documentDescStateUpdatedAt := documentFields[7].Descriptor()
	// document.DefaultStateUpdatedAt holds the default value on creation for the state_updated_at field.
	document.DefaultStateUpdatedAt = documentDescStateUpdatedAt.Default.(func() time.Time)
	// documentDescUploadDate is the schema descriptor for upload_date field.
	documentDescUploadDate := documentFields[8].Descriptor()
	// document.DefaultUploadDate holds the default value on creation for the upload_date field.
	document.DefaultUploadDate = documentDescUploadDate.Default.(func() time.Time)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[4].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	// extractionDescUpdatedAt is the schema descriptor for updated_at field.
	extractionDescUpdatedAt := extractionFields[5].Descriptor()
	// extraction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extraction.DefaultUpdatedAt = extractionDescUpdatedAt.Default.(func() time.Time)
	// extraction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extraction.UpdateDefaultUpdatedAt = extractionDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescModel is the schema descriptor for model field.
	promptDescModel := promptFields[3].Descriptor()
	// prompt.DefaultModel holds the default value on creation for the model field.
	prompt.DefaultModel = promptDescModel.Default.(string)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[5].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescCreatedAt is the schema descriptor for created_at field.
	queuemessageDescCreatedAt := queuemessageFields[4].Descriptor()
	// queuemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuemessage.DefaultCreatedAt = queuemessageDescCreatedAt.Default.(func() time.Time)
	webhookconfigFields := schema.WebhookConfig{}.Fields()
	_ = webhookconfigFields
	// webhookconfigDescEnabled is the schema descriptor for enabled field.
	webhookconfigDescEnabled := webhookconfigFields[1].Descriptor()
	// webhookconfig.DefaultEnabled holds the default value on creation for the enabled field.
	webhookconfig.DefaultEnabled = webhookconfigDescEnabled.Default.(bool)
	// webhookconfigDescSignatureEnabled is the schema descriptor for signature_enabled field.
	webhookconfigDescSignatureEnabled := webhookconfigFields[8].Descriptor()
	// webhookconfig.DefaultSignatureEnabled holds the default value on creation for the signature_enabled field.
	webhookconfig.DefaultSignatureEnabled = webhookconfigDescSignatureEnabled.Default.(bool)
	// webhookconfigDescUpdatedAt is the schema descriptor for updated_at field.
	webhookconfigDescUpdatedAt := webhookconfigFields[9].Descriptor()
	// webhookconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookconfig.DefaultUpdatedAt = webhookconfigDescUpdatedAt.Default.(func() time.Time)
	// webhookconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookconfig.UpdateDefaultUpdatedAt = webhookconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttempts is the schema descriptor for attempts field.
	webhookdeliveryDescAttempts := webhookdeliveryFields[11].Descriptor()
	// webhookdelivery.DefaultAttempts holds the default value on creation for the attempts field.
	webhookdelivery.DefaultAttempts = webhookdeliveryDescAttempts.Default.(int)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[16].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
	// webhookdeliveryDescUpdatedAt is the schema descriptor for updated_at field.
	webhookdeliveryDescUpdatedAt := webhookdeliveryFields[17].Descriptor()
	// webhookdelivery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookdelivery.DefaultUpdatedAt = webhookdeliveryDescUpdatedAt.Default.(func() time.Time)
	// webhookdelivery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookdelivery.UpdateDefaultUpdatedAt = webhookdeliveryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
