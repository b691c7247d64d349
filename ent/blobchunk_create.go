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
)

// BlobChunkCreate is the builder for creating a BlobChunk entity.
type BlobChunkCreate struct {
	config
	mutation *BlobChunkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBlobID sets the "blob_id" field.
func (_c *BlobChunkCreate) SetBlobID(v string) *BlobChunkCreate {
	_c.mutation.SetBlobID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *BlobChunkCreate) SetSeq(v int) *BlobChunkCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetData sets the "data" field.
func (_c *BlobChunkCreate) SetData(v []byte) *BlobChunkCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetObjectID sets the "object" edge to the BlobObject entity by ID.
func (_c *BlobChunkCreate) SetObjectID(id string) *BlobChunkCreate {
	_c.mutation.SetObjectID(id)
	return _c
}

// SetObject sets the "object" edge to the BlobObject entity.
func (_c *BlobChunkCreate) SetObject(v *BlobObject) *BlobChunkCreate {
	return _c.SetObjectID(v.ID)
}

// Mutation returns the BlobChunkMutation object of the builder.
func (_c *BlobChunkCreate) Mutation() *BlobChunkMutation {
	return _c.mutation
}

// Save creates the BlobChunk in the database.
func (_c *BlobChunkCreate) Save(ctx context.Context) (*BlobChunk, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlobChunkCreate) SaveX(ctx context.Context) *BlobChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlobChunkCreate) check() error {
	if _, ok := _c.mutation.BlobID(); !ok {
		return &ValidationError{Name: "blob_id", err: errors.New(`ent: missing required field "BlobChunk.blob_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "BlobChunk.seq"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "BlobChunk.data"`)}
	}
	if len(_c.mutation.ObjectIDs()) == 0 {
		return &ValidationError{Name: "object", err: errors.New(`ent: missing required edge "BlobChunk.object"`)}
	}
	return nil
}

func (_c *BlobChunkCreate) sqlSave(ctx context.Context) (*BlobChunk, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlobChunkCreate) createSpec() (*BlobChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &BlobChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blobchunk.Table, sqlgraph.NewFieldSpec(blobchunk.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(blobchunk.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(blobchunk.FieldData, field.TypeBytes, value)
		_node.Data = value
	}
	if nodes := _c.mutation.ObjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blobchunk.ObjectTable,
			Columns: []string{blobchunk.ObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blobobject.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BlobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlobChunk.Create().
//		SetBlobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlobChunkUpsert) {
//			SetBlobID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlobChunkCreate) OnConflict(opts ...sql.ConflictOption) *BlobChunkUpsertOne {
	_c.conflict = opts
	return &BlobChunkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlobChunk.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlobChunkCreate) OnConflictColumns(columns ...string) *BlobChunkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlobChunkUpsertOne{
		create: _c,
	}
}

type (
	// BlobChunkUpsertOne is the builder for "upsert"-ing
	//  one BlobChunk node.
	BlobChunkUpsertOne struct {
		create *BlobChunkCreate
	}

	// BlobChunkUpsert is the "OnConflict" setter.
	BlobChunkUpsert struct {
		*sql.UpdateSet
	}
)

// SetBlobID sets the "blob_id" field.
func (u *BlobChunkUpsert) SetBlobID(v string) *BlobChunkUpsert {
	u.Set(blobchunk.FieldBlobID, v)
	return u
}

// UpdateBlobID sets the "blob_id" field to the value that was provided on create.
func (u *BlobChunkUpsert) UpdateBlobID() *BlobChunkUpsert {
	u.SetExcluded(blobchunk.FieldBlobID)
	return u
}

// SetSeq sets the "seq" field.
func (u *BlobChunkUpsert) SetSeq(v int) *BlobChunkUpsert {
	u.Set(blobchunk.FieldSeq, v)
	return u
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *BlobChunkUpsert) UpdateSeq() *BlobChunkUpsert {
	u.SetExcluded(blobchunk.FieldSeq)
	return u
}

// AddSeq adds v to the "seq" field.
func (u *BlobChunkUpsert) AddSeq(v int) *BlobChunkUpsert {
	u.Add(blobchunk.FieldSeq, v)
	return u
}

// SetData sets the "data" field.
func (u *BlobChunkUpsert) SetData(v []byte) *BlobChunkUpsert {
	u.Set(blobchunk.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *BlobChunkUpsert) UpdateData() *BlobChunkUpsert {
	u.SetExcluded(blobchunk.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BlobChunk.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BlobChunkUpsertOne) UpdateNewValues() *BlobChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlobChunk.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BlobChunkUpsertOne) Ignore() *BlobChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlobChunkUpsertOne) DoNothing() *BlobChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlobChunkCreate.OnConflict
// documentation for more info.
func (u *BlobChunkUpsertOne) Update(set func(*BlobChunkUpsert)) *BlobChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlobChunkUpsert{UpdateSet: update})
	}))
	return u
}

// SetBlobID sets the "blob_id" field.
func (u *BlobChunkUpsertOne) SetBlobID(v string) *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.SetBlobID(v)
	})
}

// UpdateBlobID sets the "blob_id" field to the value that was provided on create.
func (u *BlobChunkUpsertOne) UpdateBlobID() *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.UpdateBlobID()
	})
}

// SetSeq sets the "seq" field.
func (u *BlobChunkUpsertOne) SetSeq(v int) *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *BlobChunkUpsertOne) AddSeq(v int) *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *BlobChunkUpsertOne) UpdateSeq() *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.UpdateSeq()
	})
}

// SetData sets the "data" field.
func (u *BlobChunkUpsertOne) SetData(v []byte) *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *BlobChunkUpsertOne) UpdateData() *BlobChunkUpsertOne {
	return u.Update(func(s *BlobChunkUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *BlobChunkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlobChunkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlobChunkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BlobChunkUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BlobChunkUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BlobChunkCreateBulk is the builder for creating many BlobChunk entities in bulk.
type BlobChunkCreateBulk struct {
	config
	err      error
	builders []*BlobChunkCreate
	conflict []sql.ConflictOption
}

// Save creates the BlobChunk entities in the database.
func (_c *BlobChunkCreateBulk) Save(ctx context.Context) ([]*BlobChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlobChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlobChunkMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BlobChunkCreateBulk) SaveX(ctx context.Context) []*BlobChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlobChunk.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlobChunkUpsert) {
//			SetBlobID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlobChunkCreateBulk) OnConflict(opts ...sql.ConflictOption) *BlobChunkUpsertBulk {
	_c.conflict = opts
	return &BlobChunkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlobChunk.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlobChunkCreateBulk) OnConflictColumns(columns ...string) *BlobChunkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlobChunkUpsertBulk{
		create: _c,
	}
}

// BlobChunkUpsertBulk is the builder for "upsert"-ing
// a bulk of BlobChunk nodes.
type BlobChunkUpsertBulk struct {
	create *BlobChunkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BlobChunk.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BlobChunkUpsertBulk) UpdateNewValues() *BlobChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlobChunk.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BlobChunkUpsertBulk) Ignore() *BlobChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlobChunkUpsertBulk) DoNothing() *BlobChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlobChunkCreateBulk.OnConflict
// documentation for more info.
func (u *BlobChunkUpsertBulk) Update(set func(*BlobChunkUpsert)) *BlobChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlobChunkUpsert{UpdateSet: update})
	}))
	return u
}

// SetBlobID sets the "blob_id" field.
func (u *BlobChunkUpsertBulk) SetBlobID(v string) *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.SetBlobID(v)
	})
}

// UpdateBlobID sets the "blob_id" field to the value that was provided on create.
func (u *BlobChunkUpsertBulk) UpdateBlobID() *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.UpdateBlobID()
	})
}

// SetSeq sets the "seq" field.
func (u *BlobChunkUpsertBulk) SetSeq(v int) *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *BlobChunkUpsertBulk) AddSeq(v int) *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *BlobChunkUpsertBulk) UpdateSeq() *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.UpdateSeq()
	})
}

// SetData sets the "data" field.
func (u *BlobChunkUpsertBulk) SetData(v []byte) *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *BlobChunkUpsertBulk) UpdateData() *BlobChunkUpsertBulk {
	return u.Update(func(s *BlobChunkUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *BlobChunkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BlobChunkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlobChunkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlobChunkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
