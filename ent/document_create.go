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

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrganizationID sets the "organization_id" field.
func (_c *DocumentCreate) SetOrganizationID(v string) *DocumentCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserFileName sets the "user_file_name" field.
func (_c *DocumentCreate) SetUserFileName(v string) *DocumentCreate {
	_c.mutation.SetUserFileName(v)
	return _c
}

// SetStoredFileName sets the "stored_file_name" field.
func (_c *DocumentCreate) SetStoredFileName(v string) *DocumentCreate {
	_c.mutation.SetStoredFileName(v)
	return _c
}

// SetPdfFileName sets the "pdf_file_name" field.
func (_c *DocumentCreate) SetPdfFileName(v string) *DocumentCreate {
	_c.mutation.SetPdfFileName(v)
	return _c
}

// SetTagIds sets the "tag_ids" field.
func (_c *DocumentCreate) SetTagIds(v []string) *DocumentCreate {
	_c.mutation.SetTagIds(v)
	return _c
}

// SetState sets the "state" field.
func (_c *DocumentCreate) SetState(v document.State) *DocumentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableState(v *document.State) *DocumentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (_c *DocumentCreate) SetStateUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetStateUpdatedAt(v)
	return _c
}

// SetNillableStateUpdatedAt sets the "state_updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStateUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetStateUpdatedAt(*v)
	}
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *DocumentCreate) SetUploadDate(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadDate(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_c *DocumentCreate) AddExtractionIDs(ids ...string) *DocumentCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_c *DocumentCreate) AddExtractions(v ...*Extraction) *DocumentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := document.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.StateUpdatedAt(); !ok {
		v := document.DefaultStateUpdatedAt()
		_c.mutation.SetStateUpdatedAt(v)
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		v := document.DefaultUploadDate()
		_c.mutation.SetUploadDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Document.organization_id"`)}
	}
	if _, ok := _c.mutation.UserFileName(); !ok {
		return &ValidationError{Name: "user_file_name", err: errors.New(`ent: missing required field "Document.user_file_name"`)}
	}
	if _, ok := _c.mutation.StoredFileName(); !ok {
		return &ValidationError{Name: "stored_file_name", err: errors.New(`ent: missing required field "Document.stored_file_name"`)}
	}
	if _, ok := _c.mutation.PdfFileName(); !ok {
		return &ValidationError{Name: "pdf_file_name", err: errors.New(`ent: missing required field "Document.pdf_file_name"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Document.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := document.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Document.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateUpdatedAt(); !ok {
		return &ValidationError{Name: "state_updated_at", err: errors.New(`ent: missing required field "Document.state_updated_at"`)}
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		return &ValidationError{Name: "upload_date", err: errors.New(`ent: missing required field "Document.upload_date"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(document.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserFileName(); ok {
		_spec.SetField(document.FieldUserFileName, field.TypeString, value)
		_node.UserFileName = value
	}
	if value, ok := _c.mutation.StoredFileName(); ok {
		_spec.SetField(document.FieldStoredFileName, field.TypeString, value)
		_node.StoredFileName = value
	}
	if value, ok := _c.mutation.PdfFileName(); ok {
		_spec.SetField(document.FieldPdfFileName, field.TypeString, value)
		_node.PdfFileName = value
	}
	if value, ok := _c.mutation.TagIds(); ok {
		_spec.SetField(document.FieldTagIds, field.TypeJSON, value)
		_node.TagIds = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(document.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StateUpdatedAt(); ok {
		_spec.SetField(document.FieldStateUpdatedAt, field.TypeTime, value)
		_node.StateUpdatedAt = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(document.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = value
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ExtractionsTable,
			Columns: []string{document.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeString),
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
//	client.Document.Create().
//		SetOrganizationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrganizationID sets the "organization_id" field.
func (u *DocumentUpsert) SetOrganizationID(v string) *DocumentUpsert {
	u.Set(document.FieldOrganizationID, v)
	return u
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateOrganizationID() *DocumentUpsert {
	u.SetExcluded(document.FieldOrganizationID)
	return u
}

// SetUserFileName sets the "user_file_name" field.
func (u *DocumentUpsert) SetUserFileName(v string) *DocumentUpsert {
	u.Set(document.FieldUserFileName, v)
	return u
}

// UpdateUserFileName sets the "user_file_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUserFileName() *DocumentUpsert {
	u.SetExcluded(document.FieldUserFileName)
	return u
}

// SetStoredFileName sets the "stored_file_name" field.
func (u *DocumentUpsert) SetStoredFileName(v string) *DocumentUpsert {
	u.Set(document.FieldStoredFileName, v)
	return u
}

// UpdateStoredFileName sets the "stored_file_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStoredFileName() *DocumentUpsert {
	u.SetExcluded(document.FieldStoredFileName)
	return u
}

// SetPdfFileName sets the "pdf_file_name" field.
func (u *DocumentUpsert) SetPdfFileName(v string) *DocumentUpsert {
	u.Set(document.FieldPdfFileName, v)
	return u
}

// UpdatePdfFileName sets the "pdf_file_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePdfFileName() *DocumentUpsert {
	u.SetExcluded(document.FieldPdfFileName)
	return u
}

// SetTagIds sets the "tag_ids" field.
func (u *DocumentUpsert) SetTagIds(v []string) *DocumentUpsert {
	u.Set(document.FieldTagIds, v)
	return u
}

// UpdateTagIds sets the "tag_ids" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTagIds() *DocumentUpsert {
	u.SetExcluded(document.FieldTagIds)
	return u
}

// ClearTagIds clears the value of the "tag_ids" field.
func (u *DocumentUpsert) ClearTagIds() *DocumentUpsert {
	u.SetNull(document.FieldTagIds)
	return u
}

// SetState sets the "state" field.
func (u *DocumentUpsert) SetState(v document.State) *DocumentUpsert {
	u.Set(document.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateState() *DocumentUpsert {
	u.SetExcluded(document.FieldState)
	return u
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (u *DocumentUpsert) SetStateUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldStateUpdatedAt, v)
	return u
}

// UpdateStateUpdatedAt sets the "state_updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldStateUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
		if _, exists := u.create.mutation.UploadDate(); exists {
			s.SetIgnore(document.FieldUploadDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *DocumentUpsertOne) SetOrganizationID(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateOrganizationID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateOrganizationID()
	})
}

// SetUserFileName sets the "user_file_name" field.
func (u *DocumentUpsertOne) SetUserFileName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUserFileName(v)
	})
}

// UpdateUserFileName sets the "user_file_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUserFileName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUserFileName()
	})
}

// SetStoredFileName sets the "stored_file_name" field.
func (u *DocumentUpsertOne) SetStoredFileName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStoredFileName(v)
	})
}

// UpdateStoredFileName sets the "stored_file_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStoredFileName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStoredFileName()
	})
}

// SetPdfFileName sets the "pdf_file_name" field.
func (u *DocumentUpsertOne) SetPdfFileName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPdfFileName(v)
	})
}

// UpdatePdfFileName sets the "pdf_file_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePdfFileName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePdfFileName()
	})
}

// SetTagIds sets the "tag_ids" field.
func (u *DocumentUpsertOne) SetTagIds(v []string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTagIds(v)
	})
}

// UpdateTagIds sets the "tag_ids" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTagIds() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTagIds()
	})
}

// ClearTagIds clears the value of the "tag_ids" field.
func (u *DocumentUpsertOne) ClearTagIds() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTagIds()
	})
}

// SetState sets the "state" field.
func (u *DocumentUpsertOne) SetState(v document.State) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateState() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateState()
	})
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (u *DocumentUpsertOne) SetStateUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStateUpdatedAt(v)
	})
}

// UpdateStateUpdatedAt sets the "state_updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
			if _, exists := b.mutation.UploadDate(); exists {
				s.SetIgnore(document.FieldUploadDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *DocumentUpsertBulk) SetOrganizationID(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateOrganizationID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateOrganizationID()
	})
}

// SetUserFileName sets the "user_file_name" field.
func (u *DocumentUpsertBulk) SetUserFileName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUserFileName(v)
	})
}

// UpdateUserFileName sets the "user_file_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUserFileName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUserFileName()
	})
}

// SetStoredFileName sets the "stored_file_name" field.
func (u *DocumentUpsertBulk) SetStoredFileName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStoredFileName(v)
	})
}

// UpdateStoredFileName sets the "stored_file_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStoredFileName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStoredFileName()
	})
}

// SetPdfFileName sets the "pdf_file_name" field.
func (u *DocumentUpsertBulk) SetPdfFileName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPdfFileName(v)
	})
}

// UpdatePdfFileName sets the "pdf_file_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePdfFileName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePdfFileName()
	})
}

// SetTagIds sets the "tag_ids" field.
func (u *DocumentUpsertBulk) SetTagIds(v []string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTagIds(v)
	})
}

// UpdateTagIds sets the "tag_ids" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTagIds() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTagIds()
	})
}

// ClearTagIds clears the value of the "tag_ids" field.
func (u *DocumentUpsertBulk) ClearTagIds() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTagIds()
	})
}

// SetState sets the "state" field.
func (u *DocumentUpsertBulk) SetState(v document.State) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateState() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateState()
	})
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (u *DocumentUpsertBulk) SetStateUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStateUpdatedAt(v)
	})
}

// UpdateStateUpdatedAt sets the "state_updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
