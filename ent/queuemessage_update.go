// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docpipe/docpipe/ent/predicate"
	"github.com/docpipe/docpipe/ent/queuemessage"
)

// QueueMessageUpdate is the builder for updating QueueMessage entities.
type QueueMessageUpdate struct {
	config
	hooks    []Hook
	mutation *QueueMessageMutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdate) Where(ps ...predicate.QueueMessage) *QueueMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueue sets the "queue" field.
func (_u *QueueMessageUpdate) SetQueue(v string) *QueueMessageUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableQueue(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdate) SetStatus(v queuemessage.Status) *QueueMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMsg sets the "msg" field.
func (_u *QueueMessageUpdate) SetMsg(v map[string]interface{}) *QueueMessageUpdate {
	_u.mutation.SetMsg(v)
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QueueMessageUpdate) SetClaimedAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableClaimedAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QueueMessageUpdate) ClearClaimedAt() *QueueMessageUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueMessageUpdate) SetCompletedAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableCompletedAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueMessageUpdate) ClearCompletedAt() *QueueMessageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdate) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(queuemessage.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Msg(); ok {
		_spec.SetField(queuemessage.FieldMsg, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(queuemessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(queuemessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queuemessage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queuemessage.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueMessageUpdateOne is the builder for updating a single QueueMessage entity.
type QueueMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueMessageMutation
}

// SetQueue sets the "queue" field.
func (_u *QueueMessageUpdateOne) SetQueue(v string) *QueueMessageUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableQueue(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdateOne) SetStatus(v queuemessage.Status) *QueueMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMsg sets the "msg" field.
func (_u *QueueMessageUpdateOne) SetMsg(v map[string]interface{}) *QueueMessageUpdateOne {
	_u.mutation.SetMsg(v)
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QueueMessageUpdateOne) SetClaimedAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableClaimedAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QueueMessageUpdateOne) ClearClaimedAt() *QueueMessageUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueMessageUpdateOne) SetCompletedAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableCompletedAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueMessageUpdateOne) ClearCompletedAt() *QueueMessageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdateOne) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdateOne) Where(ps ...predicate.QueueMessage) *QueueMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueMessageUpdateOne) Select(field string, fields ...string) *QueueMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueMessage entity.
func (_u *QueueMessageUpdateOne) Save(ctx context.Context) (*QueueMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) SaveX(ctx context.Context) *QueueMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdateOne) sqlSave(ctx context.Context) (_node *QueueMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuemessage.FieldID)
		for _, f := range fields {
			if !queuemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuemessage.FieldID {
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
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(queuemessage.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Msg(); ok {
		_spec.SetField(queuemessage.FieldMsg, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(queuemessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(queuemessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queuemessage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queuemessage.FieldCompletedAt, field.TypeTime)
	}
	_node = &QueueMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
