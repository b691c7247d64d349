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
	"github.com/docpipe/docpipe/ent/document"
	"github.com/docpipe/docpipe/ent/extraction"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionCreate) SetDocumentID(v string) *ExtractionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (_c *ExtractionCreate) SetPromptRevID(v string) *ExtractionCreate {
	_c.mutation.SetPromptRevID(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ExtractionCreate) SetResult(v map[string]interface{}) *ExtractionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionCreate) SetUpdatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionCreate) SetID(v string) *ExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionCreate) SetDocument(v *Document) *ExtractionCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extraction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Extraction.document_id"`)}
	}
	if _, ok := _c.mutation.PromptRevID(); !ok {
		return &ValidationError{Name: "prompt_rev_id", err: errors.New(`ent: missing required field "Extraction.prompt_rev_id"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "Extraction.result"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Extraction.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Extraction.document"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
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
			return nil, fmt.Errorf("unexpected Extraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PromptRevID(); ok {
		_spec.SetField(extraction.FieldPromptRevID, field.TypeString, value)
		_node.PromptRevID = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(extraction.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extraction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.DocumentTable,
			Columns: []string{extraction.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertOne {
	_c.conflict = opts
	return &ExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflictColumns(columns ...string) *ExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionUpsertOne is the builder for "upsert"-ing
	//  one Extraction node.
	ExtractionUpsertOne struct {
		create *ExtractionCreate
	}

	// ExtractionUpsert is the "OnConflict" setter.
	ExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *ExtractionUpsert) SetDocumentID(v string) *ExtractionUpsert {
	u.Set(extraction.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDocumentID() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDocumentID)
	return u
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (u *ExtractionUpsert) SetPromptRevID(v string) *ExtractionUpsert {
	u.Set(extraction.FieldPromptRevID, v)
	return u
}

// UpdatePromptRevID sets the "prompt_rev_id" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdatePromptRevID() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldPromptRevID)
	return u
}

// SetResult sets the "result" field.
func (u *ExtractionUpsert) SetResult(v map[string]interface{}) *ExtractionUpsert {
	u.Set(extraction.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateResult() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldResult)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionUpsert) SetUpdatedAt(v time.Time) *ExtractionUpsert {
	u.Set(extraction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateUpdatedAt() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertOne) UpdateNewValues() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extraction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionUpsertOne) Ignore() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertOne) DoNothing() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreate.OnConflict
// documentation for more info.
func (u *ExtractionUpsertOne) Update(set func(*ExtractionUpsert)) *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractionUpsertOne) SetDocumentID(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDocumentID() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentID()
	})
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (u *ExtractionUpsertOne) SetPromptRevID(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetPromptRevID(v)
	})
}

// UpdatePromptRevID sets the "prompt_rev_id" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdatePromptRevID() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdatePromptRevID()
	})
}

// SetResult sets the "result" field.
func (u *ExtractionUpsertOne) SetResult(v map[string]interface{}) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateResult() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateResult()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionUpsertOne) SetUpdatedAt(v time.Time) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateUpdatedAt() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionUpsertOne.ID is not supported by MySQL driver. Use ExtractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
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
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertBulk {
	_c.conflict = opts
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflictColumns(columns ...string) *ExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// ExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Extraction nodes.
type ExtractionUpsertBulk struct {
	create *ExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) UpdateNewValues() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extraction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) Ignore() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertBulk) DoNothing() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionUpsertBulk) Update(set func(*ExtractionUpsert)) *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractionUpsertBulk) SetDocumentID(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDocumentID() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDocumentID()
	})
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (u *ExtractionUpsertBulk) SetPromptRevID(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetPromptRevID(v)
	})
}

// UpdatePromptRevID sets the "prompt_rev_id" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdatePromptRevID() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdatePromptRevID()
	})
}

// SetResult sets the "result" field.
func (u *ExtractionUpsertBulk) SetResult(v map[string]interface{}) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateResult() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateResult()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionUpsertBulk) SetUpdatedAt(v time.Time) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateUpdatedAt() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
