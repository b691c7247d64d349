// Code generated by ent, DO NOT EDIT.

package blobchunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the blobchunk type in the database.
	Label = "blob_chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBlobID holds the string denoting the blob_id field in the database.
	FieldBlobID = "blob_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// EdgeObject holds the string denoting the object edge name in mutations.
	EdgeObject = "object"
	// BlobObjectFieldID holds the string denoting the ID field of the BlobObject.
	BlobObjectFieldID = "blob_id"
	// Table holds the table name of the blobchunk in the database.
	Table = "blob_chunks"
	// ObjectTable is the table that holds the object relation/edge.
	ObjectTable = "blob_chunks"
	// ObjectInverseTable is the table name for the BlobObject entity.
	// It exists in this package in order to avoid circular dependency with the "blobobject" package.
	ObjectInverseTable = "blob_objects"
	// ObjectColumn is the table column denoting the object relation/edge.
	ObjectColumn = "blob_id"
)

// Columns holds all SQL columns for blobchunk fields.
var Columns = []string{
	FieldID,
	FieldBlobID,
	FieldSeq,
	FieldData,
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

// OrderOption defines the ordering options for the BlobChunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlobID orders the results by the blob_id field.
func ByBlobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByObjectField orders the results by object field.
func ByObjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newObjectStep(), sql.OrderByField(field, opts...))
	}
}
func newObjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ObjectInverseTable, BlobObjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ObjectTable, ObjectColumn),
	)
}
