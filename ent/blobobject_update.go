// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docpipe/docpipe/ent/blobchunk"
	"github.com/docpipe/docpipe/ent/blobobject"
	"github.com/docpipe/docpipe/ent/predicate"
)

// BlobObjectUpdate is the builder for updating BlobObject entities.
type BlobObjectUpdate struct {
	config
	hooks    []Hook
	mutation *BlobObjectMutation
}

// Where appends a list predicates to the BlobObjectUpdate builder.
func (_u *BlobObjectUpdate) Where(ps ...predicate.BlobObject) *BlobObjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *BlobObjectUpdate) SetBucket(v string) *BlobObjectUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *BlobObjectUpdate) SetNillableBucket(v *string) *BlobObjectUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *BlobObjectUpdate) SetKey(v string) *BlobObjectUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *BlobObjectUpdate) SetNillableKey(v *string) *BlobObjectUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *BlobObjectUpdate) SetSize(v int64) *BlobObjectUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *BlobObjectUpdate) SetNillableSize(v *int64) *BlobObjectUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *BlobObjectUpdate) AddSize(v int64) *BlobObjectUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *BlobObjectUpdate) SetChunkCount(v int) *BlobObjectUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *BlobObjectUpdate) SetNillableChunkCount(v *int) *BlobObjectUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *BlobObjectUpdate) AddChunkCount(v int) *BlobObjectUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BlobObjectUpdate) SetMetadata(v map[string]string) *BlobObjectUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BlobObjectUpdate) ClearMetadata() *BlobObjectUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddChunkIDs adds the "chunks" edge to the BlobChunk entity by IDs.
func (_u *BlobObjectUpdate) AddChunkIDs(ids ...int) *BlobObjectUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the BlobChunk entity.
func (_u *BlobObjectUpdate) AddChunks(v ...*BlobChunk) *BlobObjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the BlobObjectMutation object of the builder.
func (_u *BlobObjectUpdate) Mutation() *BlobObjectMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the BlobChunk entity.
func (_u *BlobObjectUpdate) ClearChunks() *BlobObjectUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to BlobChunk entities by IDs.
func (_u *BlobObjectUpdate) RemoveChunkIDs(ids ...int) *BlobObjectUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to BlobChunk entities.
func (_u *BlobObjectUpdate) RemoveChunks(v ...*BlobChunk) *BlobObjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlobObjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlobObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlobObjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlobObjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BlobObjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blobobject.Table, blobobject.Columns, sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(blobobject.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(blobobject.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(blobobject.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(blobobject.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(blobobject.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(blobobject.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(blobobject.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(blobobject.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blobobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlobObjectUpdateOne is the builder for updating a single BlobObject entity.
type BlobObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlobObjectMutation
}

// SetBucket sets the "bucket" field.
func (_u *BlobObjectUpdateOne) SetBucket(v string) *BlobObjectUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *BlobObjectUpdateOne) SetNillableBucket(v *string) *BlobObjectUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *BlobObjectUpdateOne) SetKey(v string) *BlobObjectUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *BlobObjectUpdateOne) SetNillableKey(v *string) *BlobObjectUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *BlobObjectUpdateOne) SetSize(v int64) *BlobObjectUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *BlobObjectUpdateOne) SetNillableSize(v *int64) *BlobObjectUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *BlobObjectUpdateOne) AddSize(v int64) *BlobObjectUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *BlobObjectUpdateOne) SetChunkCount(v int) *BlobObjectUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *BlobObjectUpdateOne) SetNillableChunkCount(v *int) *BlobObjectUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *BlobObjectUpdateOne) AddChunkCount(v int) *BlobObjectUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BlobObjectUpdateOne) SetMetadata(v map[string]string) *BlobObjectUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BlobObjectUpdateOne) ClearMetadata() *BlobObjectUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddChunkIDs adds the "chunks" edge to the BlobChunk entity by IDs.
func (_u *BlobObjectUpdateOne) AddChunkIDs(ids ...int) *BlobObjectUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the BlobChunk entity.
func (_u *BlobObjectUpdateOne) AddChunks(v ...*BlobChunk) *BlobObjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the BlobObjectMutation object of the builder.
func (_u *BlobObjectUpdateOne) Mutation() *BlobObjectMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the BlobChunk entity.
func (_u *BlobObjectUpdateOne) ClearChunks() *BlobObjectUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to BlobChunk entities by IDs.
func (_u *BlobObjectUpdateOne) RemoveChunkIDs(ids ...int) *BlobObjectUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to BlobChunk entities.
func (_u *BlobObjectUpdateOne) RemoveChunks(v ...*BlobChunk) *BlobObjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Where appends a list predicates to the BlobObjectUpdate builder.
func (_u *BlobObjectUpdateOne) Where(ps ...predicate.BlobObject) *BlobObjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlobObjectUpdateOne) Select(field string, fields ...string) *BlobObjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlobObject entity.
func (_u *BlobObjectUpdateOne) Save(ctx context.Context) (*BlobObject, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlobObjectUpdateOne) SaveX(ctx context.Context) *BlobObject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlobObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlobObjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BlobObjectUpdateOne) sqlSave(ctx context.Context) (_node *BlobObject, err error) {
	_spec := sqlgraph.NewUpdateSpec(blobobject.Table, blobobject.Columns, sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlobObject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blobobject.FieldID)
		for _, f := range fields {
			if !blobobject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blobobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(blobobject.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(blobobject.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(blobobject.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(blobobject.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(blobobject.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(blobobject.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(blobobject.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(blobobject.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blobobject.ChunksTable,
			Columns: []string{blobobject.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlobObject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blobobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
