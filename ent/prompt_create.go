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
	"github.com/docpipe/docpipe/ent/prompt"
)

// PromptCreate is the builder for creating a Prompt entity.
type PromptCreate struct {
	config
	mutation *PromptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PromptCreate) SetName(v string) *PromptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptCreate) SetContent(v string) *PromptCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *PromptCreate) SetModel(v string) *PromptCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *PromptCreate) SetNillableModel(v *string) *PromptCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTagIds sets the "tag_ids" field.
func (_c *PromptCreate) SetTagIds(v []string) *PromptCreate {
	_c.mutation.SetTagIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptCreate) SetCreatedAt(v time.Time) *PromptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptCreate) SetNillableCreatedAt(v *time.Time) *PromptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptCreate) SetID(v string) *PromptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptMutation object of the builder.
func (_c *PromptCreate) Mutation() *PromptMutation {
	return _c.mutation
}

// Save creates the Prompt in the database.
func (_c *PromptCreate) Save(ctx context.Context) (*Prompt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptCreate) SaveX(ctx context.Context) *Prompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptCreate) defaults() {
	if _, ok := _c.mutation.Model(); !ok {
		v := prompt.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prompt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Prompt.name"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Prompt.content"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Prompt.model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prompt.created_at"`)}
	}
	return nil
}

func (_c *PromptCreate) sqlSave(ctx context.Context) (*Prompt, error) {
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
			return nil, fmt.Errorf("unexpected Prompt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptCreate) createSpec() (*Prompt, *sqlgraph.CreateSpec) {
	var (
		_node = &Prompt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompt.Table, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(prompt.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(prompt.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.TagIds(); ok {
		_spec.SetField(prompt.FieldTagIds, field.TypeJSON, value)
		_node.TagIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prompt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prompt.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptCreate) OnConflict(opts ...sql.ConflictOption) *PromptUpsertOne {
	_c.conflict = opts
	return &PromptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptCreate) OnConflictColumns(columns ...string) *PromptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptUpsertOne{
		create: _c,
	}
}

type (
	// PromptUpsertOne is the builder for "upsert"-ing
	//  one Prompt node.
	PromptUpsertOne struct {
		create *PromptCreate
	}

	// PromptUpsert is the "OnConflict" setter.
	PromptUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PromptUpsert) SetName(v string) *PromptUpsert {
	u.Set(prompt.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptUpsert) UpdateName() *PromptUpsert {
	u.SetExcluded(prompt.FieldName)
	return u
}

// SetContent sets the "content" field.
func (u *PromptUpsert) SetContent(v string) *PromptUpsert {
	u.Set(prompt.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PromptUpsert) UpdateContent() *PromptUpsert {
	u.SetExcluded(prompt.FieldContent)
	return u
}

// SetModel sets the "model" field.
func (u *PromptUpsert) SetModel(v string) *PromptUpsert {
	u.Set(prompt.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *PromptUpsert) UpdateModel() *PromptUpsert {
	u.SetExcluded(prompt.FieldModel)
	return u
}

// SetTagIds sets the "tag_ids" field.
func (u *PromptUpsert) SetTagIds(v []string) *PromptUpsert {
	u.Set(prompt.FieldTagIds, v)
	return u
}

// UpdateTagIds sets the "tag_ids" field to the value that was provided on create.
func (u *PromptUpsert) UpdateTagIds() *PromptUpsert {
	u.SetExcluded(prompt.FieldTagIds)
	return u
}

// ClearTagIds clears the value of the "tag_ids" field.
func (u *PromptUpsert) ClearTagIds() *PromptUpsert {
	u.SetNull(prompt.FieldTagIds)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptUpsertOne) UpdateNewValues() *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prompt.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prompt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prompt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PromptUpsertOne) Ignore() *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptUpsertOne) DoNothing() *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptCreate.OnConflict
// documentation for more info.
func (u *PromptUpsertOne) Update(set func(*PromptUpsert)) *PromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PromptUpsertOne) SetName(v string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateName() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateName()
	})
}

// SetContent sets the "content" field.
func (u *PromptUpsertOne) SetContent(v string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateContent() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateContent()
	})
}

// SetModel sets the "model" field.
func (u *PromptUpsertOne) SetModel(v string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateModel() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateModel()
	})
}

// SetTagIds sets the "tag_ids" field.
func (u *PromptUpsertOne) SetTagIds(v []string) *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.SetTagIds(v)
	})
}

// UpdateTagIds sets the "tag_ids" field to the value that was provided on create.
func (u *PromptUpsertOne) UpdateTagIds() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateTagIds()
	})
}

// ClearTagIds clears the value of the "tag_ids" field.
func (u *PromptUpsertOne) ClearTagIds() *PromptUpsertOne {
	return u.Update(func(s *PromptUpsert) {
		s.ClearTagIds()
	})
}

// Exec executes the query.
func (u *PromptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PromptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PromptUpsertOne.ID is not supported by MySQL driver. Use PromptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PromptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PromptCreateBulk is the builder for creating many Prompt entities in bulk.
type PromptCreateBulk struct {
	config
	err      error
	builders []*PromptCreate
	conflict []sql.ConflictOption
}

// Save creates the Prompt entities in the database.
func (_c *PromptCreateBulk) Save(ctx context.Context) ([]*Prompt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prompt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptMutation)
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
func (_c *PromptCreateBulk) SaveX(ctx context.Context) []*Prompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prompt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptCreateBulk) OnConflict(opts ...sql.ConflictOption) *PromptUpsertBulk {
	_c.conflict = opts
	return &PromptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptCreateBulk) OnConflictColumns(columns ...string) *PromptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptUpsertBulk{
		create: _c,
	}
}

// PromptUpsertBulk is the builder for "upsert"-ing
// a bulk of Prompt nodes.
type PromptUpsertBulk struct {
	create *PromptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptUpsertBulk) UpdateNewValues() *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prompt.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prompt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prompt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PromptUpsertBulk) Ignore() *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptUpsertBulk) DoNothing() *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptCreateBulk.OnConflict
// documentation for more info.
func (u *PromptUpsertBulk) Update(set func(*PromptUpsert)) *PromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PromptUpsertBulk) SetName(v string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateName() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateName()
	})
}

// SetContent sets the "content" field.
func (u *PromptUpsertBulk) SetContent(v string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateContent() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateContent()
	})
}

// SetModel sets the "model" field.
func (u *PromptUpsertBulk) SetModel(v string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateModel() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateModel()
	})
}

// SetTagIds sets the "tag_ids" field.
func (u *PromptUpsertBulk) SetTagIds(v []string) *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.SetTagIds(v)
	})
}

// UpdateTagIds sets the "tag_ids" field to the value that was provided on create.
func (u *PromptUpsertBulk) UpdateTagIds() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.UpdateTagIds()
	})
}

// ClearTagIds clears the value of the "tag_ids" field.
func (u *PromptUpsertBulk) ClearTagIds() *PromptUpsertBulk {
	return u.Update(func(s *PromptUpsert) {
		s.ClearTagIds()
	})
}

// Exec executes the query.
func (u *PromptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PromptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
