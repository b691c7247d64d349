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
	"github.com/docpipe/docpipe/ent/queuemessage"
)

// QueueMessageCreate is the builder for creating a QueueMessage entity.
type QueueMessageCreate struct {
	config
	mutation *QueueMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueue sets the "queue" field.
func (_c *QueueMessageCreate) SetQueue(v string) *QueueMessageCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueMessageCreate) SetStatus(v queuemessage.Status) *QueueMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableStatus(v *queuemessage.Status) *QueueMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMsg sets the "msg" field.
func (_c *QueueMessageCreate) SetMsg(v map[string]interface{}) *QueueMessageCreate {
	_c.mutation.SetMsg(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueMessageCreate) SetCreatedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableCreatedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *QueueMessageCreate) SetClaimedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableClaimedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QueueMessageCreate) SetCompletedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableCompletedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueMessageCreate) SetID(v string) *QueueMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_c *QueueMessageCreate) Mutation() *QueueMessageMutation {
	return _c.mutation
}

// Save creates the QueueMessage in the database.
func (_c *QueueMessageCreate) Save(ctx context.Context) (*QueueMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueMessageCreate) SaveX(ctx context.Context) *QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queuemessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuemessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueMessageCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "QueueMessage.queue"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Msg(); !ok {
		return &ValidationError{Name: "msg", err: errors.New(`ent: missing required field "QueueMessage.msg"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueMessage.created_at"`)}
	}
	return nil
}

func (_c *QueueMessageCreate) sqlSave(ctx context.Context) (*QueueMessage, error) {
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
			return nil, fmt.Errorf("unexpected QueueMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueMessageCreate) createSpec() (*QueueMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuemessage.Table, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(queuemessage.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Msg(); ok {
		_spec.SetField(queuemessage.FieldMsg, field.TypeJSON, value)
		_node.Msg = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuemessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(queuemessage.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(queuemessage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.Create().
//		SetQueue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertOne {
	_c.conflict = opts
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflictColumns(columns ...string) *QueueMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

type (
	// QueueMessageUpsertOne is the builder for "upsert"-ing
	//  one QueueMessage node.
	QueueMessageUpsertOne struct {
		create *QueueMessageCreate
	}

	// QueueMessageUpsert is the "OnConflict" setter.
	QueueMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueue sets the "queue" field.
func (u *QueueMessageUpsert) SetQueue(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldQueue, v)
	return u
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateQueue() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldQueue)
	return u
}

// SetStatus sets the "status" field.
func (u *QueueMessageUpsert) SetStatus(v queuemessage.Status) *QueueMessageUpsert {
	u.Set(queuemessage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateStatus() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldStatus)
	return u
}

// SetMsg sets the "msg" field.
func (u *QueueMessageUpsert) SetMsg(v map[string]interface{}) *QueueMessageUpsert {
	u.Set(queuemessage.FieldMsg, v)
	return u
}

// UpdateMsg sets the "msg" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateMsg() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldMsg)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *QueueMessageUpsert) SetClaimedAt(v time.Time) *QueueMessageUpsert {
	u.Set(queuemessage.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateClaimedAt() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *QueueMessageUpsert) ClearClaimedAt() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldClaimedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *QueueMessageUpsert) SetCompletedAt(v time.Time) *QueueMessageUpsert {
	u.Set(queuemessage.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateCompletedAt() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *QueueMessageUpsert) ClearCompletedAt() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertOne) UpdateNewValues() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuemessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(queuemessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueMessageUpsertOne) Ignore() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertOne) DoNothing() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreate.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertOne) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueue sets the "queue" field.
func (u *QueueMessageUpsertOne) SetQueue(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateQueue() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateQueue()
	})
}

// SetStatus sets the "status" field.
func (u *QueueMessageUpsertOne) SetStatus(v queuemessage.Status) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateStatus() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetMsg sets the "msg" field.
func (u *QueueMessageUpsertOne) SetMsg(v map[string]interface{}) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetMsg(v)
	})
}

// UpdateMsg sets the "msg" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateMsg() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateMsg()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *QueueMessageUpsertOne) SetClaimedAt(v time.Time) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateClaimedAt() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *QueueMessageUpsertOne) ClearClaimedAt() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearClaimedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *QueueMessageUpsertOne) SetCompletedAt(v time.Time) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateCompletedAt() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *QueueMessageUpsertOne) ClearCompletedAt() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueMessageUpsertOne.ID is not supported by MySQL driver. Use QueueMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueMessageCreateBulk is the builder for creating many QueueMessage entities in bulk.
type QueueMessageCreateBulk struct {
	config
	err      error
	builders []*QueueMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueMessage entities in the database.
func (_c *QueueMessageCreateBulk) Save(ctx context.Context) ([]*QueueMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueMessageMutation)
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
func (_c *QueueMessageCreateBulk) SaveX(ctx context.Context) []*QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertBulk {
	_c.conflict = opts
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflictColumns(columns ...string) *QueueMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// QueueMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueMessage nodes.
type QueueMessageUpsertBulk struct {
	create *QueueMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) UpdateNewValues() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuemessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(queuemessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) Ignore() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertBulk) DoNothing() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreateBulk.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertBulk) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueue sets the "queue" field.
func (u *QueueMessageUpsertBulk) SetQueue(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateQueue() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateQueue()
	})
}

// SetStatus sets the "status" field.
func (u *QueueMessageUpsertBulk) SetStatus(v queuemessage.Status) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateStatus() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetMsg sets the "msg" field.
func (u *QueueMessageUpsertBulk) SetMsg(v map[string]interface{}) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetMsg(v)
	})
}

// UpdateMsg sets the "msg" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateMsg() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateMsg()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *QueueMessageUpsertBulk) SetClaimedAt(v time.Time) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateClaimedAt() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *QueueMessageUpsertBulk) ClearClaimedAt() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearClaimedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *QueueMessageUpsertBulk) SetCompletedAt(v time.Time) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateCompletedAt() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *QueueMessageUpsertBulk) ClearCompletedAt() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
