// Code generated by ent, DO NOT EDIT.

package blobchunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docpipe/docpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLTE(FieldID, id))
}

// BlobID applies equality check predicate on the "blob_id" field. It's identical to BlobIDEQ.
func BlobID(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldBlobID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldSeq, v))
}

// Data applies equality check predicate on the "data" field. It's identical to DataEQ.
func Data(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldData, v))
}

// BlobIDEQ applies the EQ predicate on the "blob_id" field.
func BlobIDEQ(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldBlobID, v))
}

// BlobIDNEQ applies the NEQ predicate on the "blob_id" field.
func BlobIDNEQ(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNEQ(FieldBlobID, v))
}

// BlobIDIn applies the In predicate on the "blob_id" field.
func BlobIDIn(vs ...string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldIn(FieldBlobID, vs...))
}

// BlobIDNotIn applies the NotIn predicate on the "blob_id" field.
func BlobIDNotIn(vs ...string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNotIn(FieldBlobID, vs...))
}

// BlobIDGT applies the GT predicate on the "blob_id" field.
func BlobIDGT(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGT(FieldBlobID, v))
}

// BlobIDGTE applies the GTE predicate on the "blob_id" field.
func BlobIDGTE(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGTE(FieldBlobID, v))
}

// BlobIDLT applies the LT predicate on the "blob_id" field.
func BlobIDLT(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLT(FieldBlobID, v))
}

// BlobIDLTE applies the LTE predicate on the "blob_id" field.
func BlobIDLTE(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLTE(FieldBlobID, v))
}

// BlobIDContains applies the Contains predicate on the "blob_id" field.
func BlobIDContains(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldContains(FieldBlobID, v))
}

// BlobIDHasPrefix applies the HasPrefix predicate on the "blob_id" field.
func BlobIDHasPrefix(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldHasPrefix(FieldBlobID, v))
}

// BlobIDHasSuffix applies the HasSuffix predicate on the "blob_id" field.
func BlobIDHasSuffix(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldHasSuffix(FieldBlobID, v))
}

// BlobIDEqualFold applies the EqualFold predicate on the "blob_id" field.
func BlobIDEqualFold(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEqualFold(FieldBlobID, v))
}

// BlobIDContainsFold applies the ContainsFold predicate on the "blob_id" field.
func BlobIDContainsFold(v string) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldContainsFold(FieldBlobID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLTE(FieldSeq, v))
}

// DataEQ applies the EQ predicate on the "data" field.
func DataEQ(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldEQ(FieldData, v))
}

// DataNEQ applies the NEQ predicate on the "data" field.
func DataNEQ(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNEQ(FieldData, v))
}

// DataIn applies the In predicate on the "data" field.
func DataIn(vs ...[]byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldIn(FieldData, vs...))
}

// DataNotIn applies the NotIn predicate on the "data" field.
func DataNotIn(vs ...[]byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldNotIn(FieldData, vs...))
}

// DataGT applies the GT predicate on the "data" field.
func DataGT(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGT(FieldData, v))
}

// DataGTE applies the GTE predicate on the "data" field.
func DataGTE(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldGTE(FieldData, v))
}

// DataLT applies the LT predicate on the "data" field.
func DataLT(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLT(FieldData, v))
}

// DataLTE applies the LTE predicate on the "data" field.
func DataLTE(v []byte) predicate.BlobChunk {
	return predicate.BlobChunk(sql.FieldLTE(FieldData, v))
}

// HasObject applies the HasEdge predicate on the "object" edge.
func HasObject() predicate.BlobChunk {
	return predicate.BlobChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ObjectTable, ObjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasObjectWith applies the HasEdge predicate on the "object" edge with a given conditions (other predicates).
func HasObjectWith(preds ...predicate.BlobObject) predicate.BlobChunk {
	return predicate.BlobChunk(func(s *sql.Selector) {
		step := newObjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlobChunk) predicate.BlobChunk {
	return predicate.BlobChunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlobChunk) predicate.BlobChunk {
	return predicate.BlobChunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlobChunk) predicate.BlobChunk {
	return predicate.BlobChunk(sql.NotPredicates(p))
}
