// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docpipe/docpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOrganizationID, v))
}

// UserFileName applies equality check predicate on the "user_file_name" field. It's identical to UserFileNameEQ.
func UserFileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUserFileName, v))
}

// StoredFileName applies equality check predicate on the "stored_file_name" field. It's identical to StoredFileNameEQ.
func StoredFileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoredFileName, v))
}

// PdfFileName applies equality check predicate on the "pdf_file_name" field. It's identical to PdfFileNameEQ.
func PdfFileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfFileName, v))
}

// StateUpdatedAt applies equality check predicate on the "state_updated_at" field. It's identical to StateUpdatedAtEQ.
func StateUpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStateUpdatedAt, v))
}

// UploadDate applies equality check predicate on the "upload_date" field. It's identical to UploadDateEQ.
func UploadDate(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadDate, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOrganizationID, v))
}

// UserFileNameEQ applies the EQ predicate on the "user_file_name" field.
func UserFileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUserFileName, v))
}

// UserFileNameNEQ applies the NEQ predicate on the "user_file_name" field.
func UserFileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUserFileName, v))
}

// UserFileNameIn applies the In predicate on the "user_file_name" field.
func UserFileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUserFileName, vs...))
}

// UserFileNameNotIn applies the NotIn predicate on the "user_file_name" field.
func UserFileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUserFileName, vs...))
}

// UserFileNameGT applies the GT predicate on the "user_file_name" field.
func UserFileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUserFileName, v))
}

// UserFileNameGTE applies the GTE predicate on the "user_file_name" field.
func UserFileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUserFileName, v))
}

// UserFileNameLT applies the LT predicate on the "user_file_name" field.
func UserFileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUserFileName, v))
}

// UserFileNameLTE applies the LTE predicate on the "user_file_name" field.
func UserFileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUserFileName, v))
}

// UserFileNameContains applies the Contains predicate on the "user_file_name" field.
func UserFileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldUserFileName, v))
}

// UserFileNameHasPrefix applies the HasPrefix predicate on the "user_file_name" field.
func UserFileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldUserFileName, v))
}

// UserFileNameHasSuffix applies the HasSuffix predicate on the "user_file_name" field.
func UserFileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldUserFileName, v))
}

// UserFileNameEqualFold applies the EqualFold predicate on the "user_file_name" field.
func UserFileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldUserFileName, v))
}

// UserFileNameContainsFold applies the ContainsFold predicate on the "user_file_name" field.
func UserFileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldUserFileName, v))
}

// StoredFileNameEQ applies the EQ predicate on the "stored_file_name" field.
func StoredFileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoredFileName, v))
}

// StoredFileNameNEQ applies the NEQ predicate on the "stored_file_name" field.
func StoredFileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStoredFileName, v))
}

// StoredFileNameIn applies the In predicate on the "stored_file_name" field.
func StoredFileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStoredFileName, vs...))
}

// StoredFileNameNotIn applies the NotIn predicate on the "stored_file_name" field.
func StoredFileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStoredFileName, vs...))
}

// StoredFileNameGT applies the GT predicate on the "stored_file_name" field.
func StoredFileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStoredFileName, v))
}

// StoredFileNameGTE applies the GTE predicate on the "stored_file_name" field.
func StoredFileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStoredFileName, v))
}

// StoredFileNameLT applies the LT predicate on the "stored_file_name" field.
func StoredFileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStoredFileName, v))
}

// StoredFileNameLTE applies the LTE predicate on the "stored_file_name" field.
func StoredFileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStoredFileName, v))
}

// StoredFileNameContains applies the Contains predicate on the "stored_file_name" field.
func StoredFileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStoredFileName, v))
}

// StoredFileNameHasPrefix applies the HasPrefix predicate on the "stored_file_name" field.
func StoredFileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStoredFileName, v))
}

// StoredFileNameHasSuffix applies the HasSuffix predicate on the "stored_file_name" field.
func StoredFileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStoredFileName, v))
}

// StoredFileNameEqualFold applies the EqualFold predicate on the "stored_file_name" field.
func StoredFileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStoredFileName, v))
}

// StoredFileNameContainsFold applies the ContainsFold predicate on the "stored_file_name" field.
func StoredFileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStoredFileName, v))
}

// PdfFileNameEQ applies the EQ predicate on the "pdf_file_name" field.
func PdfFileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfFileName, v))
}

// PdfFileNameNEQ applies the NEQ predicate on the "pdf_file_name" field.
func PdfFileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPdfFileName, v))
}

// PdfFileNameIn applies the In predicate on the "pdf_file_name" field.
func PdfFileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPdfFileName, vs...))
}

// PdfFileNameNotIn applies the NotIn predicate on the "pdf_file_name" field.
func PdfFileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPdfFileName, vs...))
}

// PdfFileNameGT applies the GT predicate on the "pdf_file_name" field.
func PdfFileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPdfFileName, v))
}

// PdfFileNameGTE applies the GTE predicate on the "pdf_file_name" field.
func PdfFileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPdfFileName, v))
}

// PdfFileNameLT applies the LT predicate on the "pdf_file_name" field.
func PdfFileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPdfFileName, v))
}

// PdfFileNameLTE applies the LTE predicate on the "pdf_file_name" field.
func PdfFileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPdfFileName, v))
}

// PdfFileNameContains applies the Contains predicate on the "pdf_file_name" field.
func PdfFileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPdfFileName, v))
}

// PdfFileNameHasPrefix applies the HasPrefix predicate on the "pdf_file_name" field.
func PdfFileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPdfFileName, v))
}

// PdfFileNameHasSuffix applies the HasSuffix predicate on the "pdf_file_name" field.
func PdfFileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPdfFileName, v))
}

// PdfFileNameEqualFold applies the EqualFold predicate on the "pdf_file_name" field.
func PdfFileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPdfFileName, v))
}

// PdfFileNameContainsFold applies the ContainsFold predicate on the "pdf_file_name" field.
func PdfFileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPdfFileName, v))
}

// TagIdsIsNil applies the IsNil predicate on the "tag_ids" field.
func TagIdsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTagIds))
}

// TagIdsNotNil applies the NotNil predicate on the "tag_ids" field.
func TagIdsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTagIds))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldState, vs...))
}

// StateUpdatedAtEQ applies the EQ predicate on the "state_updated_at" field.
func StateUpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStateUpdatedAt, v))
}

// StateUpdatedAtNEQ applies the NEQ predicate on the "state_updated_at" field.
func StateUpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStateUpdatedAt, v))
}

// StateUpdatedAtIn applies the In predicate on the "state_updated_at" field.
func StateUpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStateUpdatedAt, vs...))
}

// StateUpdatedAtNotIn applies the NotIn predicate on the "state_updated_at" field.
func StateUpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStateUpdatedAt, vs...))
}

// StateUpdatedAtGT applies the GT predicate on the "state_updated_at" field.
func StateUpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStateUpdatedAt, v))
}

// StateUpdatedAtGTE applies the GTE predicate on the "state_updated_at" field.
func StateUpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStateUpdatedAt, v))
}

// StateUpdatedAtLT applies the LT predicate on the "state_updated_at" field.
func StateUpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStateUpdatedAt, v))
}

// StateUpdatedAtLTE applies the LTE predicate on the "state_updated_at" field.
func StateUpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStateUpdatedAt, v))
}

// UploadDateEQ applies the EQ predicate on the "upload_date" field.
func UploadDateEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadDate, v))
}

// UploadDateNEQ applies the NEQ predicate on the "upload_date" field.
func UploadDateNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadDate, v))
}

// UploadDateIn applies the In predicate on the "upload_date" field.
func UploadDateIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadDate, vs...))
}

// UploadDateNotIn applies the NotIn predicate on the "upload_date" field.
func UploadDateNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadDate, vs...))
}

// UploadDateGT applies the GT predicate on the "upload_date" field.
func UploadDateGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadDate, v))
}

// UploadDateGTE applies the GTE predicate on the "upload_date" field.
func UploadDateGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadDate, v))
}

// UploadDateLT applies the LT predicate on the "upload_date" field.
func UploadDateLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadDate, v))
}

// UploadDateLTE applies the LTE predicate on the "upload_date" field.
func UploadDateLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadDate, v))
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.Extraction) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
