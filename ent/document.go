// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docpipe/docpipe/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	// Opaque 24-char hex identifier
	ID string `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// File name as uploaded by the user
	UserFileName string `json:"user_file_name,omitempty"`
	// Internal blob key of the original upload
	StoredFileName string `json:"stored_file_name,omitempty"`
	// Blob key of the PDF rendition consumed by OCR
	PdfFileName string `json:"pdf_file_name,omitempty"`
	// TagIds holds the value of the "tag_ids" field.
	TagIds []string `json:"tag_ids,omitempty"`
	// State holds the value of the "state" field.
	State document.State `json:"state,omitempty"`
	// StateUpdatedAt holds the value of the "state_updated_at" field.
	StateUpdatedAt time.Time `json:"state_updated_at,omitempty"`
	// UploadDate holds the value of the "upload_date" field.
	UploadDate time.Time `json:"upload_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Extractions holds the value of the extractions edge.
	Extractions []*Extraction `json:"extractions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) ExtractionsOrErr() ([]*Extraction, error) {
	if e.loadedTypes[0] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldTagIds:
			values[i] = new([]byte)
		case document.FieldID, document.FieldOrganizationID, document.FieldUserFileName, document.FieldStoredFileName, document.FieldPdfFileName, document.FieldState:
			values[i] = new(sql.NullString)
		case document.FieldStateUpdatedAt, document.FieldUploadDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case document.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case document.FieldUserFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_file_name", values[i])
			} else if value.Valid {
				_m.UserFileName = value.String
			}
		case document.FieldStoredFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stored_file_name", values[i])
			} else if value.Valid {
				_m.StoredFileName = value.String
			}
		case document.FieldPdfFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_file_name", values[i])
			} else if value.Valid {
				_m.PdfFileName = value.String
			}
		case document.FieldTagIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tag_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TagIds); err != nil {
					return fmt.Errorf("unmarshal field tag_ids: %w", err)
				}
			}
		case document.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = document.State(value.String)
			}
		case document.FieldStateUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field state_updated_at", values[i])
			} else if value.Valid {
				_m.StateUpdatedAt = value.Time
			}
		case document.FieldUploadDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field upload_date", values[i])
			} else if value.Valid {
				_m.UploadDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtractions queries the "extractions" edge of the Document entity.
func (_m *Document) QueryExtractions() *ExtractionQuery {
	return NewDocumentClient(_m.config).QueryExtractions(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("user_file_name=")
	builder.WriteString(_m.UserFileName)
	builder.WriteString(", ")
	builder.WriteString("stored_file_name=")
	builder.WriteString(_m.StoredFileName)
	builder.WriteString(", ")
	builder.WriteString("pdf_file_name=")
	builder.WriteString(_m.PdfFileName)
	builder.WriteString(", ")
	builder.WriteString("tag_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TagIds))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("state_updated_at=")
	builder.WriteString(_m.StateUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("upload_date=")
	builder.WriteString(_m.UploadDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
