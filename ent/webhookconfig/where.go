// Code generated by ent, DO NOT EDIT.

package webhookconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docpipe/docpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldID, id))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldEnabled, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldURL, v))
}

// AuthHeaderName applies equality check predicate on the "auth_header_name" field. It's identical to AuthHeaderNameEQ.
func AuthHeaderName(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldAuthHeaderName, v))
}

// AuthHeaderValueEncrypted applies equality check predicate on the "auth_header_value_encrypted" field. It's identical to AuthHeaderValueEncryptedEQ.
func AuthHeaderValueEncrypted(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldAuthHeaderValueEncrypted, v))
}

// SecretEncrypted applies equality check predicate on the "secret_encrypted" field. It's identical to SecretEncryptedEQ.
func SecretEncrypted(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldSecretEncrypted, v))
}

// SignatureEnabled applies equality check predicate on the "signature_enabled" field. It's identical to SignatureEnabledEQ.
func SignatureEnabled(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldSignatureEnabled, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldEnabled, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldURL, v))
}

// EventsIsNil applies the IsNil predicate on the "events" field.
func EventsIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldEvents))
}

// EventsNotNil applies the NotNil predicate on the "events" field.
func EventsNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldEvents))
}

// AuthTypeEQ applies the EQ predicate on the "auth_type" field.
func AuthTypeEQ(v AuthType) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldAuthType, v))
}

// AuthTypeNEQ applies the NEQ predicate on the "auth_type" field.
func AuthTypeNEQ(v AuthType) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldAuthType, v))
}

// AuthTypeIn applies the In predicate on the "auth_type" field.
func AuthTypeIn(vs ...AuthType) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldAuthType, vs...))
}

// AuthTypeNotIn applies the NotIn predicate on the "auth_type" field.
func AuthTypeNotIn(vs ...AuthType) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldAuthType, vs...))
}

// AuthHeaderNameEQ applies the EQ predicate on the "auth_header_name" field.
func AuthHeaderNameEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldAuthHeaderName, v))
}

// AuthHeaderNameNEQ applies the NEQ predicate on the "auth_header_name" field.
func AuthHeaderNameNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldAuthHeaderName, v))
}

// AuthHeaderNameIn applies the In predicate on the "auth_header_name" field.
func AuthHeaderNameIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldAuthHeaderName, vs...))
}

// AuthHeaderNameNotIn applies the NotIn predicate on the "auth_header_name" field.
func AuthHeaderNameNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldAuthHeaderName, vs...))
}

// AuthHeaderNameGT applies the GT predicate on the "auth_header_name" field.
func AuthHeaderNameGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldAuthHeaderName, v))
}

// AuthHeaderNameGTE applies the GTE predicate on the "auth_header_name" field.
func AuthHeaderNameGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldAuthHeaderName, v))
}

// AuthHeaderNameLT applies the LT predicate on the "auth_header_name" field.
func AuthHeaderNameLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldAuthHeaderName, v))
}

// AuthHeaderNameLTE applies the LTE predicate on the "auth_header_name" field.
func AuthHeaderNameLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldAuthHeaderName, v))
}

// AuthHeaderNameContains applies the Contains predicate on the "auth_header_name" field.
func AuthHeaderNameContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldAuthHeaderName, v))
}

// AuthHeaderNameHasPrefix applies the HasPrefix predicate on the "auth_header_name" field.
func AuthHeaderNameHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldAuthHeaderName, v))
}

// AuthHeaderNameHasSuffix applies the HasSuffix predicate on the "auth_header_name" field.
func AuthHeaderNameHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldAuthHeaderName, v))
}

// AuthHeaderNameIsNil applies the IsNil predicate on the "auth_header_name" field.
func AuthHeaderNameIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldAuthHeaderName))
}

// AuthHeaderNameNotNil applies the NotNil predicate on the "auth_header_name" field.
func AuthHeaderNameNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldAuthHeaderName))
}

// AuthHeaderNameEqualFold applies the EqualFold predicate on the "auth_header_name" field.
func AuthHeaderNameEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldAuthHeaderName, v))
}

// AuthHeaderNameContainsFold applies the ContainsFold predicate on the "auth_header_name" field.
func AuthHeaderNameContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldAuthHeaderName, v))
}

// AuthHeaderValueEncryptedEQ applies the EQ predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedNEQ applies the NEQ predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedIn applies the In predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldAuthHeaderValueEncrypted, vs...))
}

// AuthHeaderValueEncryptedNotIn applies the NotIn predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldAuthHeaderValueEncrypted, vs...))
}

// AuthHeaderValueEncryptedGT applies the GT predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedGTE applies the GTE predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedLT applies the LT predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedLTE applies the LTE predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedContains applies the Contains predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedHasPrefix applies the HasPrefix predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedHasSuffix applies the HasSuffix predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedIsNil applies the IsNil predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldAuthHeaderValueEncrypted))
}

// AuthHeaderValueEncryptedNotNil applies the NotNil predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldAuthHeaderValueEncrypted))
}

// AuthHeaderValueEncryptedEqualFold applies the EqualFold predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldAuthHeaderValueEncrypted, v))
}

// AuthHeaderValueEncryptedContainsFold applies the ContainsFold predicate on the "auth_header_value_encrypted" field.
func AuthHeaderValueEncryptedContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldAuthHeaderValueEncrypted, v))
}

// SecretEncryptedEQ applies the EQ predicate on the "secret_encrypted" field.
func SecretEncryptedEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldSecretEncrypted, v))
}

// SecretEncryptedNEQ applies the NEQ predicate on the "secret_encrypted" field.
func SecretEncryptedNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldSecretEncrypted, v))
}

// SecretEncryptedIn applies the In predicate on the "secret_encrypted" field.
func SecretEncryptedIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldSecretEncrypted, vs...))
}

// SecretEncryptedNotIn applies the NotIn predicate on the "secret_encrypted" field.
func SecretEncryptedNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldSecretEncrypted, vs...))
}

// SecretEncryptedGT applies the GT predicate on the "secret_encrypted" field.
func SecretEncryptedGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldSecretEncrypted, v))
}

// SecretEncryptedGTE applies the GTE predicate on the "secret_encrypted" field.
func SecretEncryptedGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldSecretEncrypted, v))
}

// SecretEncryptedLT applies the LT predicate on the "secret_encrypted" field.
func SecretEncryptedLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldSecretEncrypted, v))
}

// SecretEncryptedLTE applies the LTE predicate on the "secret_encrypted" field.
func SecretEncryptedLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldSecretEncrypted, v))
}

// SecretEncryptedContains applies the Contains predicate on the "secret_encrypted" field.
func SecretEncryptedContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldSecretEncrypted, v))
}

// SecretEncryptedHasPrefix applies the HasPrefix predicate on the "secret_encrypted" field.
func SecretEncryptedHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldSecretEncrypted, v))
}

// SecretEncryptedHasSuffix applies the HasSuffix predicate on the "secret_encrypted" field.
func SecretEncryptedHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldSecretEncrypted, v))
}

// SecretEncryptedIsNil applies the IsNil predicate on the "secret_encrypted" field.
func SecretEncryptedIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldSecretEncrypted))
}

// SecretEncryptedNotNil applies the NotNil predicate on the "secret_encrypted" field.
func SecretEncryptedNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldSecretEncrypted))
}

// SecretEncryptedEqualFold applies the EqualFold predicate on the "secret_encrypted" field.
func SecretEncryptedEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldSecretEncrypted, v))
}

// SecretEncryptedContainsFold applies the ContainsFold predicate on the "secret_encrypted" field.
func SecretEncryptedContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldSecretEncrypted, v))
}

// SignatureEnabledEQ applies the EQ predicate on the "signature_enabled" field.
func SignatureEnabledEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldSignatureEnabled, v))
}

// SignatureEnabledNEQ applies the NEQ predicate on the "signature_enabled" field.
func SignatureEnabledNEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldSignatureEnabled, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookConfig) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookConfig) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookConfig) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.NotPredicates(p))
}
