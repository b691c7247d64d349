// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldUserFileName holds the string denoting the user_file_name field in the database.
	FieldUserFileName = "user_file_name"
	// FieldStoredFileName holds the string denoting the stored_file_name field in the database.
	FieldStoredFileName = "stored_file_name"
	// FieldPdfFileName holds the string denoting the pdf_file_name field in the database.
	FieldPdfFileName = "pdf_file_name"
	// FieldTagIds holds the string denoting the tag_ids field in the database.
	FieldTagIds = "tag_ids"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStateUpdatedAt holds the string denoting the state_updated_at field in the database.
	FieldStateUpdatedAt = "state_updated_at"
	// FieldUploadDate holds the string denoting the upload_date field in the database.
	FieldUploadDate = "upload_date"
	// EdgeExtractions holds the string denoting the extractions edge name in mutations.
	EdgeExtractions = "extractions"
	// ExtractionFieldID holds the string denoting the ID field of the Extraction.
	ExtractionFieldID = "extraction_id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// ExtractionsTable is the table that holds the extractions relation/edge.
	ExtractionsTable = "extractions"
	// ExtractionsInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionsInverseTable = "extractions"
	// ExtractionsColumn is the table column denoting the extractions relation/edge.
	ExtractionsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldUserFileName,
	FieldStoredFileName,
	FieldPdfFileName,
	FieldTagIds,
	FieldState,
	FieldStateUpdatedAt,
	FieldUploadDate,
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
	// DefaultStateUpdatedAt holds the default value on creation for the "state_updated_at" field.
	DefaultStateUpdatedAt func() time.Time
	// DefaultUploadDate holds the default value on creation for the "upload_date" field.
	DefaultUploadDate func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateUploaded is the default value of the State enum.
const DefaultState = StateUploaded

// State values.
const (
	StateUploaded          State = "uploaded"
	StateOcrProcessing     State = "ocr_processing"
	StateOcrCompleted      State = "ocr_completed"
	StateOcrFailed         State = "ocr_failed"
	StateLlmProcessing     State = "llm_processing"
	StateLlmCompleted      State = "llm_completed"
	StateLlmFailed         State = "llm_failed"
	StateKBIndexProcessing State = "kb_index_processing"
	StateKBIndexCompleted  State = "kb_index_completed"
	StateKBIndexFailed     State = "kb_index_failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateUploaded, StateOcrProcessing, StateOcrCompleted, StateOcrFailed, StateLlmProcessing, StateLlmCompleted, StateLlmFailed, StateKBIndexProcessing, StateKBIndexCompleted, StateKBIndexFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByUserFileName orders the results by the user_file_name field.
func ByUserFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserFileName, opts...).ToFunc()
}

// ByStoredFileName orders the results by the stored_file_name field.
func ByStoredFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoredFileName, opts...).ToFunc()
}

// ByPdfFileName orders the results by the pdf_file_name field.
func ByPdfFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfFileName, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStateUpdatedAt orders the results by the state_updated_at field.
func ByStateUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateUpdatedAt, opts...).ToFunc()
}

// ByUploadDate orders the results by the upload_date field.
func ByUploadDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadDate, opts...).ToFunc()
}

// ByExtractionsCount orders the results by extractions count.
func ByExtractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractionsStep(), opts...)
	}
}

// ByExtractions orders the results by extractions terms.
func ByExtractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExtractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionsInverseTable, ExtractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
	)
}
