// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docpipe/docpipe/ent/blobchunk"
	"github.com/docpipe/docpipe/ent/blobobject"
)

// BlobObjectCreate is the builder for creating a BlobObject entity.
type BlobObjectCreate struct {
	config
	mutation *BlobObjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBucket sets the "bucket" field.
func (_c *BlobObjectCreate) SetBucket(v string) *BlobObjectCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *BlobObjectCreate) SetKey(v string) *BlobObjectCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *BlobObjectCreate) SetSize(v int64) *BlobObjectCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *BlobObjectCreate) SetChunkCount(v int) *BlobObjectCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BlobObjectCreate) SetMetadata(v map[string]string) *BlobObjectCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlobObjectCreate) SetCreatedAt(v time.Time) *BlobObjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlobObjectCreate) SetNillableCreatedAt(v *time.Time) *BlobObjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlobObjectCreate) SetID(v string) *BlobObjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddChunkIDs adds the "chunks" edge to the BlobChunk entity by IDs.
func (_c *BlobObjectCreate) AddChunkIDs(ids ...int) *BlobObjectCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the BlobChunk entity.
func (_c *BlobObjectCreate) AddChunks(v ...*BlobChunk) *BlobObjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the BlobObjectMutation object of the builder.
func (_c *BlobObjectCreate) Mutation() *BlobObjectMutation {
	return _c.mutation
}

// Save creates the BlobObject in the database.
func (_c *BlobObjectCreate) Save(ctx context.Context) (*BlobObject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlobObjectCreate) SaveX(ctx context.Context) *BlobObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobObjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobObjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlobObjectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blobobject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlobObjectCreate) check() error {
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "BlobObject.bucket"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "BlobObject.key"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "BlobObject.size"`)}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "BlobObject.chunk_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlobObject.created_at"`)}
	}
	return nil
}

func (_c *BlobObjectCreate) sqlSave(ctx context.Context) (*BlobObject, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BlobObject.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlobObjectCreate) createSpec() (*BlobObject, *sqlgraph.CreateSpec) {
	var (
		_node = &BlobObject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blobobject.Table, sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(blobobject.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(blobobject.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(blobobject.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(blobobject.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(blobobject.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blobobject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlobObject.Create().
//		SetBucket(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlobObjectUpsert) {
//			SetBucket(v+v).
//		}).
//		Exec(ctx)
func (_c *BlobObjectCreate) OnConflict(opts ...sql.ConflictOption) *BlobObjectUpsertOne {
	_c.conflict = opts
	return &BlobObjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlobObject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlobObjectCreate) OnConflictColumns(columns ...string) *BlobObjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlobObjectUpsertOne{
		create: _c,
	}
}

type (
	// BlobObjectUpsertOne is the builder for "upsert"-ing
	//  one BlobObject node.
	BlobObjectUpsertOne struct {
		create *BlobObjectCreate
	}

	// BlobObjectUpsert is the "OnConflict" setter.
	BlobObjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetBucket sets the "bucket" field.
func (u *BlobObjectUpsert) SetBucket(v string) *BlobObjectUpsert {
	u.Set(blobobject.FieldBucket, v)
	return u
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *BlobObjectUpsert) UpdateBucket() *BlobObjectUpsert {
	u.SetExcluded(blobobject.FieldBucket)
	return u
}

// SetKey sets the "key" field.
func (u *BlobObjectUpsert) SetKey(v string) *BlobObjectUpsert {
	u.Set(blobobject.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *BlobObjectUpsert) UpdateKey() *BlobObjectUpsert {
	u.SetExcluded(blobobject.FieldKey)
	return u
}

// SetSize sets the "size" field.
func (u *BlobObjectUpsert) SetSize(v int64) *BlobObjectUpsert {
	u.Set(blobobject.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *BlobObjectUpsert) UpdateSize() *BlobObjectUpsert {
	u.SetExcluded(blobobject.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *BlobObjectUpsert) AddSize(v int64) *BlobObjectUpsert {
	u.Add(blobobject.FieldSize, v)
	return u
}

// SetChunkCount sets the "chunk_count" field.
func (u *BlobObjectUpsert) SetChunkCount(v int) *BlobObjectUpsert {
	u.Set(blobobject.FieldChunkCount, v)
	return u
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *BlobObjectUpsert) UpdateChunkCount() *BlobObjectUpsert {
	u.SetExcluded(blobobject.FieldChunkCount)
	return u
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *BlobObjectUpsert) AddChunkCount(v int) *BlobObjectUpsert {
	u.Add(blobobject.FieldChunkCount, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *BlobObjectUpsert) SetMetadata(v map[string]string) *BlobObjectUpsert {
	u.Set(blobobject.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BlobObjectUpsert) UpdateMetadata() *BlobObjectUpsert {
	u.SetExcluded(blobobject.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BlobObjectUpsert) ClearMetadata() *BlobObjectUpsert {
	u.SetNull(blobobject.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BlobObject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blobobject.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BlobObjectUpsertOne) UpdateNewValues() *BlobObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(blobobject.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(blobobject.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlobObject.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BlobObjectUpsertOne) Ignore() *BlobObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlobObjectUpsertOne) DoNothing() *BlobObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlobObjectCreate.OnConflict
// documentation for more info.
func (u *BlobObjectUpsertOne) Update(set func(*BlobObjectUpsert)) *BlobObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlobObjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetBucket sets the "bucket" field.
func (u *BlobObjectUpsertOne) SetBucket(v string) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *BlobObjectUpsertOne) UpdateBucket() *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateBucket()
	})
}

// SetKey sets the "key" field.
func (u *BlobObjectUpsertOne) SetKey(v string) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *BlobObjectUpsertOne) UpdateKey() *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateKey()
	})
}

// SetSize sets the "size" field.
func (u *BlobObjectUpsertOne) SetSize(v int64) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *BlobObjectUpsertOne) AddSize(v int64) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *BlobObjectUpsertOne) UpdateSize() *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateSize()
	})
}

// SetChunkCount sets the "chunk_count" field.
func (u *BlobObjectUpsertOne) SetChunkCount(v int) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetChunkCount(v)
	})
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *BlobObjectUpsertOne) AddChunkCount(v int) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.AddChunkCount(v)
	})
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *BlobObjectUpsertOne) UpdateChunkCount() *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateChunkCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BlobObjectUpsertOne) SetMetadata(v map[string]string) *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BlobObjectUpsertOne) UpdateMetadata() *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BlobObjectUpsertOne) ClearMetadata() *BlobObjectUpsertOne {
	return u.Update(func(s *BlobObjectUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *BlobObjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlobObjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlobObjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BlobObjectUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BlobObjectUpsertOne.ID is not supported by MySQL driver. Use BlobObjectUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BlobObjectUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BlobObjectCreateBulk is the builder for creating many BlobObject entities in bulk.
type BlobObjectCreateBulk struct {
	config
	err      error
	builders []*BlobObjectCreate
	conflict []sql.ConflictOption
}

// Save creates the BlobObject entities in the database.
func (_c *BlobObjectCreateBulk) Save(ctx context.Context) ([]*BlobObject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlobObject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlobObjectMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlobObjectCreateBulk) SaveX(ctx context.Context) []*BlobObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobObjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlobObject.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlobObjectUpsert) {
//			SetBucket(v+v).
//		}).
//		Exec(ctx)
func (_c *BlobObjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *BlobObjectUpsertBulk {
	_c.conflict = opts
	return &BlobObjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlobObject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlobObjectCreateBulk) OnConflictColumns(columns ...string) *BlobObjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlobObjectUpsertBulk{
		create: _c,
	}
}

// BlobObjectUpsertBulk is the builder for "upsert"-ing
// a bulk of BlobObject nodes.
type BlobObjectUpsertBulk struct {
	create *BlobObjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BlobObject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blobobject.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BlobObjectUpsertBulk) UpdateNewValues() *BlobObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(blobobject.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(blobobject.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlobObject.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BlobObjectUpsertBulk) Ignore() *BlobObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlobObjectUpsertBulk) DoNothing() *BlobObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlobObjectCreateBulk.OnConflict
// documentation for more info.
func (u *BlobObjectUpsertBulk) Update(set func(*BlobObjectUpsert)) *BlobObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlobObjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetBucket sets the "bucket" field.
func (u *BlobObjectUpsertBulk) SetBucket(v string) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *BlobObjectUpsertBulk) UpdateBucket() *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateBucket()
	})
}

// SetKey sets the "key" field.
func (u *BlobObjectUpsertBulk) SetKey(v string) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *BlobObjectUpsertBulk) UpdateKey() *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateKey()
	})
}

// SetSize sets the "size" field.
func (u *BlobObjectUpsertBulk) SetSize(v int64) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *BlobObjectUpsertBulk) AddSize(v int64) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *BlobObjectUpsertBulk) UpdateSize() *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateSize()
	})
}

// SetChunkCount sets the "chunk_count" field.
func (u *BlobObjectUpsertBulk) SetChunkCount(v int) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetChunkCount(v)
	})
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *BlobObjectUpsertBulk) AddChunkCount(v int) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.AddChunkCount(v)
	})
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *BlobObjectUpsertBulk) UpdateChunkCount() *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateChunkCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BlobObjectUpsertBulk) SetMetadata(v map[string]string) *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BlobObjectUpsertBulk) UpdateMetadata() *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BlobObjectUpsertBulk) ClearMetadata() *BlobObjectUpsertBulk {
	return u.Update(func(s *BlobObjectUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *BlobObjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BlobObjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlobObjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlobObjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
