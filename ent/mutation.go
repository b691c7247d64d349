// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docpipe/docpipe/ent/blobchunk"
	"github.com/docpipe/docpipe/ent/blobobject"
	"github.com/docpipe/docpipe/ent/document"
	"github.com/docpipe/docpipe/ent/extraction"
	"github.com/docpipe/docpipe/ent/predicate"
	"github.com/docpipe/docpipe/ent/prompt"
	"github.com/docpipe/docpipe/ent/queuemessage"
	"github.com/docpipe/docpipe/ent/webhookconfig"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBlobChunk       = "BlobChunk"
	TypeBlobObject      = "BlobObject"
	TypeDocument        = "Document"
	TypeExtraction      = "Extraction"
	TypePrompt          = "Prompt"
	TypeQueueMessage    = "QueueMessage"
	TypeWebhookConfig   = "WebhookConfig"
	TypeWebhookDelivery = "WebhookDelivery"
)

// BlobChunkMutation represents an operation that mutates the BlobChunk nodes in the graph.
type BlobChunkMutation struct {
	config
	op            Op
	typ           string
	id            *int
	seq           *int
	addseq        *int
	data          *[]byte
	clearedFields map[string]struct{}
	object        *string
	clearedobject bool
	done          bool
	oldValue      func(context.Context) (*BlobChunk, error)
	predicates    []predicate.BlobChunk
}

var _ ent.Mutation = (*BlobChunkMutation)(nil)

// blobchunkOption allows management of the mutation configuration using functional options.
type blobchunkOption func(*BlobChunkMutation)

// newBlobChunkMutation creates new mutation for the BlobChunk entity.
func newBlobChunkMutation(c config, op Op, opts ...blobchunkOption) *BlobChunkMutation {
	m := &BlobChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeBlobChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlobChunkID sets the ID field of the mutation.
func withBlobChunkID(id int) blobchunkOption {
	return func(m *BlobChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *BlobChunk
		)
		m.oldValue = func(ctx context.Context) (*BlobChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlobChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlobChunk sets the old BlobChunk of the mutation.
func withBlobChunk(node *BlobChunk) blobchunkOption {
	return func(m *BlobChunkMutation) {
		m.oldValue = func(context.Context) (*BlobChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlobChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlobChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlobChunkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlobChunkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlobChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlobID sets the "blob_id" field.
func (m *BlobChunkMutation) SetBlobID(s string) {
	m.object = &s
}

// BlobID returns the value of the "blob_id" field in the mutation.
func (m *BlobChunkMutation) BlobID() (r string, exists bool) {
	v := m.object
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobID returns the old "blob_id" field's value of the BlobChunk entity.
// If the BlobChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobChunkMutation) OldBlobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobID: %w", err)
	}
	return oldValue.BlobID, nil
}

// ResetBlobID resets all changes to the "blob_id" field.
func (m *BlobChunkMutation) ResetBlobID() {
	m.object = nil
}

// SetSeq sets the "seq" field.
func (m *BlobChunkMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *BlobChunkMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the BlobChunk entity.
// If the BlobChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobChunkMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *BlobChunkMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *BlobChunkMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *BlobChunkMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetData sets the "data" field.
func (m *BlobChunkMutation) SetData(b []byte) {
	m.data = &b
}

// Data returns the value of the "data" field in the mutation.
func (m *BlobChunkMutation) Data() (r []byte, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the BlobChunk entity.
// If the BlobChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobChunkMutation) OldData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *BlobChunkMutation) ResetData() {
	m.data = nil
}

// SetObjectID sets the "object" edge to the BlobObject entity by id.
func (m *BlobChunkMutation) SetObjectID(id string) {
	m.object = &id
}

// ClearObject clears the "object" edge to the BlobObject entity.
func (m *BlobChunkMutation) ClearObject() {
	m.clearedobject = true
	m.clearedFields[blobchunk.FieldBlobID] = struct{}{}
}

// ObjectCleared reports if the "object" edge to the BlobObject entity was cleared.
func (m *BlobChunkMutation) ObjectCleared() bool {
	return m.clearedobject
}

// ObjectID returns the "object" edge ID in the mutation.
func (m *BlobChunkMutation) ObjectID() (id string, exists bool) {
	if m.object != nil {
		return *m.object, true
	}
	return
}

// ObjectIDs returns the "object" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ObjectID instead. It exists only for internal usage by the builders.
func (m *BlobChunkMutation) ObjectIDs() (ids []string) {
	if id := m.object; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetObject resets all changes to the "object" edge.
func (m *BlobChunkMutation) ResetObject() {
	m.object = nil
	m.clearedobject = false
}

// Where appends a list predicates to the BlobChunkMutation builder.
func (m *BlobChunkMutation) Where(ps ...predicate.BlobChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlobChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlobChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlobChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlobChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlobChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlobChunk).
func (m *BlobChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlobChunkMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.object != nil {
		fields = append(fields, blobchunk.FieldBlobID)
	}
	if m.seq != nil {
		fields = append(fields, blobchunk.FieldSeq)
	}
	if m.data != nil {
		fields = append(fields, blobchunk.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlobChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blobchunk.FieldBlobID:
		return m.BlobID()
	case blobchunk.FieldSeq:
		return m.Seq()
	case blobchunk.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlobChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blobchunk.FieldBlobID:
		return m.OldBlobID(ctx)
	case blobchunk.FieldSeq:
		return m.OldSeq(ctx)
	case blobchunk.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown BlobChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blobchunk.FieldBlobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobID(v)
		return nil
	case blobchunk.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case blobchunk.FieldData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown BlobChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlobChunkMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, blobchunk.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlobChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blobchunk.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blobchunk.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown BlobChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlobChunkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlobChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlobChunkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlobChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlobChunkMutation) ResetField(name string) error {
	switch name {
	case blobchunk.FieldBlobID:
		m.ResetBlobID()
		return nil
	case blobchunk.FieldSeq:
		m.ResetSeq()
		return nil
	case blobchunk.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown BlobChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlobChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.object != nil {
		edges = append(edges, blobchunk.EdgeObject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlobChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blobchunk.EdgeObject:
		if id := m.object; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlobChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlobChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlobChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedobject {
		edges = append(edges, blobchunk.EdgeObject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlobChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case blobchunk.EdgeObject:
		return m.clearedobject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlobChunkMutation) ClearEdge(name string) error {
	switch name {
	case blobchunk.EdgeObject:
		m.ClearObject()
		return nil
	}
	return fmt.Errorf("unknown BlobChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlobChunkMutation) ResetEdge(name string) error {
	switch name {
	case blobchunk.EdgeObject:
		m.ResetObject()
		return nil
	}
	return fmt.Errorf("unknown BlobChunk edge %s", name)
}

// BlobObjectMutation represents an operation that mutates the BlobObject nodes in the graph.
type BlobObjectMutation struct {
	config
	op             Op
	typ            string
	id             *string
	bucket         *string
	key            *string
	size           *int64
	addsize        *int64
	chunk_count    *int
	addchunk_count *int
	metadata       *map[string]string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	chunks         map[int]struct{}
	removedchunks  map[int]struct{}
	clearedchunks  bool
	done           bool
	oldValue       func(context.Context) (*BlobObject, error)
	predicates     []predicate.BlobObject
}

var _ ent.Mutation = (*BlobObjectMutation)(nil)

// blobobjectOption allows management of the mutation configuration using functional options.
type blobobjectOption func(*BlobObjectMutation)

// newBlobObjectMutation creates new mutation for the BlobObject entity.
func newBlobObjectMutation(c config, op Op, opts ...blobobjectOption) *BlobObjectMutation {
	m := &BlobObjectMutation{
		config:        c,
		op:            op,
		typ:           TypeBlobObject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlobObjectID sets the ID field of the mutation.
func withBlobObjectID(id string) blobobjectOption {
	return func(m *BlobObjectMutation) {
		var (
			err   error
			once  sync.Once
			value *BlobObject
		)
		m.oldValue = func(ctx context.Context) (*BlobObject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlobObject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlobObject sets the old BlobObject of the mutation.
func withBlobObject(node *BlobObject) blobobjectOption {
	return func(m *BlobObjectMutation) {
		m.oldValue = func(context.Context) (*BlobObject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlobObjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlobObjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlobObject entities.
func (m *BlobObjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlobObjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlobObjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlobObject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBucket sets the "bucket" field.
func (m *BlobObjectMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *BlobObjectMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the BlobObject entity.
// If the BlobObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobObjectMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *BlobObjectMutation) ResetBucket() {
	m.bucket = nil
}

// SetKey sets the "key" field.
func (m *BlobObjectMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *BlobObjectMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the BlobObject entity.
// If the BlobObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobObjectMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *BlobObjectMutation) ResetKey() {
	m.key = nil
}

// SetSize sets the "size" field.
func (m *BlobObjectMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *BlobObjectMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the BlobObject entity.
// If the BlobObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobObjectMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *BlobObjectMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *BlobObjectMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *BlobObjectMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetChunkCount sets the "chunk_count" field.
func (m *BlobObjectMutation) SetChunkCount(i int) {
	m.chunk_count = &i
	m.addchunk_count = nil
}

// ChunkCount returns the value of the "chunk_count" field in the mutation.
func (m *BlobObjectMutation) ChunkCount() (r int, exists bool) {
	v := m.chunk_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkCount returns the old "chunk_count" field's value of the BlobObject entity.
// If the BlobObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobObjectMutation) OldChunkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkCount: %w", err)
	}
	return oldValue.ChunkCount, nil
}

// AddChunkCount adds i to the "chunk_count" field.
func (m *BlobObjectMutation) AddChunkCount(i int) {
	if m.addchunk_count != nil {
		*m.addchunk_count += i
	} else {
		m.addchunk_count = &i
	}
}

// AddedChunkCount returns the value that was added to the "chunk_count" field in this mutation.
func (m *BlobObjectMutation) AddedChunkCount() (r int, exists bool) {
	v := m.addchunk_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkCount resets all changes to the "chunk_count" field.
func (m *BlobObjectMutation) ResetChunkCount() {
	m.chunk_count = nil
	m.addchunk_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *BlobObjectMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BlobObjectMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the BlobObject entity.
// If the BlobObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobObjectMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BlobObjectMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[blobobject.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BlobObjectMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[blobobject.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BlobObjectMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, blobobject.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *BlobObjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlobObjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlobObject entity.
// If the BlobObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobObjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlobObjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddChunkIDs adds the "chunks" edge to the BlobChunk entity by ids.
func (m *BlobObjectMutation) AddChunkIDs(ids ...int) {
	if m.chunks == nil {
		m.chunks = make(map[int]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the BlobChunk entity.
func (m *BlobObjectMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the BlobChunk entity was cleared.
func (m *BlobObjectMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the BlobChunk entity by IDs.
func (m *BlobObjectMutation) RemoveChunkIDs(ids ...int) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the BlobChunk entity.
func (m *BlobObjectMutation) RemovedChunksIDs() (ids []int) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *BlobObjectMutation) ChunksIDs() (ids []int) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *BlobObjectMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// Where appends a list predicates to the BlobObjectMutation builder.
func (m *BlobObjectMutation) Where(ps ...predicate.BlobObject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlobObjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlobObjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlobObject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlobObjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlobObjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlobObject).
func (m *BlobObjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlobObjectMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.bucket != nil {
		fields = append(fields, blobobject.FieldBucket)
	}
	if m.key != nil {
		fields = append(fields, blobobject.FieldKey)
	}
	if m.size != nil {
		fields = append(fields, blobobject.FieldSize)
	}
	if m.chunk_count != nil {
		fields = append(fields, blobobject.FieldChunkCount)
	}
	if m.metadata != nil {
		fields = append(fields, blobobject.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, blobobject.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlobObjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blobobject.FieldBucket:
		return m.Bucket()
	case blobobject.FieldKey:
		return m.Key()
	case blobobject.FieldSize:
		return m.Size()
	case blobobject.FieldChunkCount:
		return m.ChunkCount()
	case blobobject.FieldMetadata:
		return m.Metadata()
	case blobobject.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlobObjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blobobject.FieldBucket:
		return m.OldBucket(ctx)
	case blobobject.FieldKey:
		return m.OldKey(ctx)
	case blobobject.FieldSize:
		return m.OldSize(ctx)
	case blobobject.FieldChunkCount:
		return m.OldChunkCount(ctx)
	case blobobject.FieldMetadata:
		return m.OldMetadata(ctx)
	case blobobject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlobObject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobObjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blobobject.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case blobobject.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case blobobject.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case blobobject.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkCount(v)
		return nil
	case blobobject.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case blobobject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlobObject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlobObjectMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, blobobject.FieldSize)
	}
	if m.addchunk_count != nil {
		fields = append(fields, blobobject.FieldChunkCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlobObjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blobobject.FieldSize:
		return m.AddedSize()
	case blobobject.FieldChunkCount:
		return m.AddedChunkCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobObjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blobobject.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	case blobobject.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkCount(v)
		return nil
	}
	return fmt.Errorf("unknown BlobObject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlobObjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blobobject.FieldMetadata) {
		fields = append(fields, blobobject.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlobObjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlobObjectMutation) ClearField(name string) error {
	switch name {
	case blobobject.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown BlobObject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlobObjectMutation) ResetField(name string) error {
	switch name {
	case blobobject.FieldBucket:
		m.ResetBucket()
		return nil
	case blobobject.FieldKey:
		m.ResetKey()
		return nil
	case blobobject.FieldSize:
		m.ResetSize()
		return nil
	case blobobject.FieldChunkCount:
		m.ResetChunkCount()
		return nil
	case blobobject.FieldMetadata:
		m.ResetMetadata()
		return nil
	case blobobject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlobObject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlobObjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunks != nil {
		edges = append(edges, blobobject.EdgeChunks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlobObjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blobobject.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlobObjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchunks != nil {
		edges = append(edges, blobobject.EdgeChunks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlobObjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blobobject.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlobObjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunks {
		edges = append(edges, blobobject.EdgeChunks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlobObjectMutation) EdgeCleared(name string) bool {
	switch name {
	case blobobject.EdgeChunks:
		return m.clearedchunks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlobObjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BlobObject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlobObjectMutation) ResetEdge(name string) error {
	switch name {
	case blobobject.EdgeChunks:
		m.ResetChunks()
		return nil
	}
	return fmt.Errorf("unknown BlobObject edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	organization_id    *string
	user_file_name     *string
	stored_file_name   *string
	pdf_file_name      *string
	tag_ids            *[]string
	appendtag_ids      []string
	state              *document.State
	state_updated_at   *time.Time
	upload_date        *time.Time
	clearedFields      map[string]struct{}
	extractions        map[string]struct{}
	removedextractions map[string]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *DocumentMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *DocumentMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *DocumentMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetUserFileName sets the "user_file_name" field.
func (m *DocumentMutation) SetUserFileName(s string) {
	m.user_file_name = &s
}

// UserFileName returns the value of the "user_file_name" field in the mutation.
func (m *DocumentMutation) UserFileName() (r string, exists bool) {
	v := m.user_file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUserFileName returns the old "user_file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUserFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserFileName: %w", err)
	}
	return oldValue.UserFileName, nil
}

// ResetUserFileName resets all changes to the "user_file_name" field.
func (m *DocumentMutation) ResetUserFileName() {
	m.user_file_name = nil
}

// SetStoredFileName sets the "stored_file_name" field.
func (m *DocumentMutation) SetStoredFileName(s string) {
	m.stored_file_name = &s
}

// StoredFileName returns the value of the "stored_file_name" field in the mutation.
func (m *DocumentMutation) StoredFileName() (r string, exists bool) {
	v := m.stored_file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredFileName returns the old "stored_file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoredFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredFileName: %w", err)
	}
	return oldValue.StoredFileName, nil
}

// ResetStoredFileName resets all changes to the "stored_file_name" field.
func (m *DocumentMutation) ResetStoredFileName() {
	m.stored_file_name = nil
}

// SetPdfFileName sets the "pdf_file_name" field.
func (m *DocumentMutation) SetPdfFileName(s string) {
	m.pdf_file_name = &s
}

// PdfFileName returns the value of the "pdf_file_name" field in the mutation.
func (m *DocumentMutation) PdfFileName() (r string, exists bool) {
	v := m.pdf_file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfFileName returns the old "pdf_file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPdfFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfFileName: %w", err)
	}
	return oldValue.PdfFileName, nil
}

// ResetPdfFileName resets all changes to the "pdf_file_name" field.
func (m *DocumentMutation) ResetPdfFileName() {
	m.pdf_file_name = nil
}

// SetTagIds sets the "tag_ids" field.
func (m *DocumentMutation) SetTagIds(s []string) {
	m.tag_ids = &s
	m.appendtag_ids = nil
}

// TagIds returns the value of the "tag_ids" field in the mutation.
func (m *DocumentMutation) TagIds() (r []string, exists bool) {
	v := m.tag_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTagIds returns the old "tag_ids" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTagIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagIds: %w", err)
	}
	return oldValue.TagIds, nil
}

// AppendTagIds adds s to the "tag_ids" field.
func (m *DocumentMutation) AppendTagIds(s []string) {
	m.appendtag_ids = append(m.appendtag_ids, s...)
}

// AppendedTagIds returns the list of values that were appended to the "tag_ids" field in this mutation.
func (m *DocumentMutation) AppendedTagIds() ([]string, bool) {
	if len(m.appendtag_ids) == 0 {
		return nil, false
	}
	return m.appendtag_ids, true
}

// ClearTagIds clears the value of the "tag_ids" field.
func (m *DocumentMutation) ClearTagIds() {
	m.tag_ids = nil
	m.appendtag_ids = nil
	m.clearedFields[document.FieldTagIds] = struct{}{}
}

// TagIdsCleared returns if the "tag_ids" field was cleared in this mutation.
func (m *DocumentMutation) TagIdsCleared() bool {
	_, ok := m.clearedFields[document.FieldTagIds]
	return ok
}

// ResetTagIds resets all changes to the "tag_ids" field.
func (m *DocumentMutation) ResetTagIds() {
	m.tag_ids = nil
	m.appendtag_ids = nil
	delete(m.clearedFields, document.FieldTagIds)
}

// SetState sets the "state" field.
func (m *DocumentMutation) SetState(d document.State) {
	m.state = &d
}

// State returns the value of the "state" field in the mutation.
func (m *DocumentMutation) State() (r document.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldState(ctx context.Context) (v document.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *DocumentMutation) ResetState() {
	m.state = nil
}

// SetStateUpdatedAt sets the "state_updated_at" field.
func (m *DocumentMutation) SetStateUpdatedAt(t time.Time) {
	m.state_updated_at = &t
}

// StateUpdatedAt returns the value of the "state_updated_at" field in the mutation.
func (m *DocumentMutation) StateUpdatedAt() (r time.Time, exists bool) {
	v := m.state_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStateUpdatedAt returns the old "state_updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStateUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateUpdatedAt: %w", err)
	}
	return oldValue.StateUpdatedAt, nil
}

// ResetStateUpdatedAt resets all changes to the "state_updated_at" field.
func (m *DocumentMutation) ResetStateUpdatedAt() {
	m.state_updated_at = nil
}

// SetUploadDate sets the "upload_date" field.
func (m *DocumentMutation) SetUploadDate(t time.Time) {
	m.upload_date = &t
}

// UploadDate returns the value of the "upload_date" field in the mutation.
func (m *DocumentMutation) UploadDate() (r time.Time, exists bool) {
	v := m.upload_date
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadDate returns the old "upload_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadDate: %w", err)
	}
	return oldValue.UploadDate, nil
}

// ResetUploadDate resets all changes to the "upload_date" field.
func (m *DocumentMutation) ResetUploadDate() {
	m.upload_date = nil
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *DocumentMutation) AddExtractionIDs(ids ...string) {
	if m.extractions == nil {
		m.extractions = make(map[string]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *DocumentMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *DocumentMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *DocumentMutation) RemoveExtractionIDs(ids ...string) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *DocumentMutation) RemovedExtractionsIDs() (ids []string) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *DocumentMutation) ExtractionsIDs() (ids []string) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *DocumentMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.organization_id != nil {
		fields = append(fields, document.FieldOrganizationID)
	}
	if m.user_file_name != nil {
		fields = append(fields, document.FieldUserFileName)
	}
	if m.stored_file_name != nil {
		fields = append(fields, document.FieldStoredFileName)
	}
	if m.pdf_file_name != nil {
		fields = append(fields, document.FieldPdfFileName)
	}
	if m.tag_ids != nil {
		fields = append(fields, document.FieldTagIds)
	}
	if m.state != nil {
		fields = append(fields, document.FieldState)
	}
	if m.state_updated_at != nil {
		fields = append(fields, document.FieldStateUpdatedAt)
	}
	if m.upload_date != nil {
		fields = append(fields, document.FieldUploadDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOrganizationID:
		return m.OrganizationID()
	case document.FieldUserFileName:
		return m.UserFileName()
	case document.FieldStoredFileName:
		return m.StoredFileName()
	case document.FieldPdfFileName:
		return m.PdfFileName()
	case document.FieldTagIds:
		return m.TagIds()
	case document.FieldState:
		return m.State()
	case document.FieldStateUpdatedAt:
		return m.StateUpdatedAt()
	case document.FieldUploadDate:
		return m.UploadDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case document.FieldUserFileName:
		return m.OldUserFileName(ctx)
	case document.FieldStoredFileName:
		return m.OldStoredFileName(ctx)
	case document.FieldPdfFileName:
		return m.OldPdfFileName(ctx)
	case document.FieldTagIds:
		return m.OldTagIds(ctx)
	case document.FieldState:
		return m.OldState(ctx)
	case document.FieldStateUpdatedAt:
		return m.OldStateUpdatedAt(ctx)
	case document.FieldUploadDate:
		return m.OldUploadDate(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case document.FieldUserFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserFileName(v)
		return nil
	case document.FieldStoredFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredFileName(v)
		return nil
	case document.FieldPdfFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfFileName(v)
		return nil
	case document.FieldTagIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagIds(v)
		return nil
	case document.FieldState:
		v, ok := value.(document.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case document.FieldStateUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateUpdatedAt(v)
		return nil
	case document.FieldUploadDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadDate(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldTagIds) {
		fields = append(fields, document.FieldTagIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldTagIds:
		m.ClearTagIds()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case document.FieldUserFileName:
		m.ResetUserFileName()
		return nil
	case document.FieldStoredFileName:
		m.ResetStoredFileName()
		return nil
	case document.FieldPdfFileName:
		m.ResetPdfFileName()
		return nil
	case document.FieldTagIds:
		m.ResetTagIds()
		return nil
	case document.FieldState:
		m.ResetState()
		return nil
	case document.FieldStateUpdatedAt:
		m.ResetStateUpdatedAt()
		return nil
	case document.FieldUploadDate:
		m.ResetUploadDate()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedextractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextractions {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	prompt_rev_id   *string
	result          *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	document        *string
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*Extraction, error)
	predicates      []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id string) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Extraction entities.
func (m *ExtractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionMutation) ResetDocumentID() {
	m.document = nil
}

// SetPromptRevID sets the "prompt_rev_id" field.
func (m *ExtractionMutation) SetPromptRevID(s string) {
	m.prompt_rev_id = &s
}

// PromptRevID returns the value of the "prompt_rev_id" field in the mutation.
func (m *ExtractionMutation) PromptRevID() (r string, exists bool) {
	v := m.prompt_rev_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptRevID returns the old "prompt_rev_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldPromptRevID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptRevID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptRevID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptRevID: %w", err)
	}
	return oldValue.PromptRevID, nil
}

// ResetPromptRevID resets all changes to the "prompt_rev_id" field.
func (m *ExtractionMutation) ResetPromptRevID() {
	m.prompt_rev_id = nil
}

// SetResult sets the "result" field.
func (m *ExtractionMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ExtractionMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *ExtractionMutation) ResetResult() {
	m.result = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extraction.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, extraction.FieldDocumentID)
	}
	if m.prompt_rev_id != nil {
		fields = append(fields, extraction.FieldPromptRevID)
	}
	if m.result != nil {
		fields = append(fields, extraction.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extraction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldDocumentID:
		return m.DocumentID()
	case extraction.FieldPromptRevID:
		return m.PromptRevID()
	case extraction.FieldResult:
		return m.Result()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	case extraction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extraction.FieldPromptRevID:
		return m.OldPromptRevID(ctx)
	case extraction.FieldResult:
		return m.OldResult(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extraction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extraction.FieldPromptRevID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptRevID(v)
		return nil
	case extraction.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extraction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extraction.FieldPromptRevID:
		m.ResetPromptRevID()
		return nil
	case extraction.FieldResult:
		m.ResetResult()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extraction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extraction.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extraction.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	content       *string
	model         *string
	tag_ids       *[]string
	appendtag_ids []string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Prompt, error)
	predicates    []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptMutation) ResetName() {
	m.name = nil
}

// SetContent sets the "content" field.
func (m *PromptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptMutation) ResetContent() {
	m.content = nil
}

// SetModel sets the "model" field.
func (m *PromptMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *PromptMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *PromptMutation) ResetModel() {
	m.model = nil
}

// SetTagIds sets the "tag_ids" field.
func (m *PromptMutation) SetTagIds(s []string) {
	m.tag_ids = &s
	m.appendtag_ids = nil
}

// TagIds returns the value of the "tag_ids" field in the mutation.
func (m *PromptMutation) TagIds() (r []string, exists bool) {
	v := m.tag_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTagIds returns the old "tag_ids" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldTagIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagIds: %w", err)
	}
	return oldValue.TagIds, nil
}

// AppendTagIds adds s to the "tag_ids" field.
func (m *PromptMutation) AppendTagIds(s []string) {
	m.appendtag_ids = append(m.appendtag_ids, s...)
}

// AppendedTagIds returns the list of values that were appended to the "tag_ids" field in this mutation.
func (m *PromptMutation) AppendedTagIds() ([]string, bool) {
	if len(m.appendtag_ids) == 0 {
		return nil, false
	}
	return m.appendtag_ids, true
}

// ClearTagIds clears the value of the "tag_ids" field.
func (m *PromptMutation) ClearTagIds() {
	m.tag_ids = nil
	m.appendtag_ids = nil
	m.clearedFields[prompt.FieldTagIds] = struct{}{}
}

// TagIdsCleared returns if the "tag_ids" field was cleared in this mutation.
func (m *PromptMutation) TagIdsCleared() bool {
	_, ok := m.clearedFields[prompt.FieldTagIds]
	return ok
}

// ResetTagIds resets all changes to the "tag_ids" field.
func (m *PromptMutation) ResetTagIds() {
	m.tag_ids = nil
	m.appendtag_ids = nil
	delete(m.clearedFields, prompt.FieldTagIds)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, prompt.FieldName)
	}
	if m.content != nil {
		fields = append(fields, prompt.FieldContent)
	}
	if m.model != nil {
		fields = append(fields, prompt.FieldModel)
	}
	if m.tag_ids != nil {
		fields = append(fields, prompt.FieldTagIds)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldName:
		return m.Name()
	case prompt.FieldContent:
		return m.Content()
	case prompt.FieldModel:
		return m.Model()
	case prompt.FieldTagIds:
		return m.TagIds()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldName:
		return m.OldName(ctx)
	case prompt.FieldContent:
		return m.OldContent(ctx)
	case prompt.FieldModel:
		return m.OldModel(ctx)
	case prompt.FieldTagIds:
		return m.OldTagIds(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompt.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case prompt.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case prompt.FieldTagIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagIds(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldTagIds) {
		fields = append(fields, prompt.FieldTagIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldTagIds:
		m.ClearTagIds()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldName:
		m.ResetName()
		return nil
	case prompt.FieldContent:
		m.ResetContent()
		return nil
	case prompt.FieldModel:
		m.ResetModel()
		return nil
	case prompt.FieldTagIds:
		m.ResetTagIds()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prompt edge %s", name)
}

// QueueMessageMutation represents an operation that mutates the QueueMessage nodes in the graph.
type QueueMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	queue         *string
	status        *queuemessage.Status
	msg           *map[string]interface{}
	created_at    *time.Time
	claimed_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueueMessage, error)
	predicates    []predicate.QueueMessage
}

var _ ent.Mutation = (*QueueMessageMutation)(nil)

// queuemessageOption allows management of the mutation configuration using functional options.
type queuemessageOption func(*QueueMessageMutation)

// newQueueMessageMutation creates new mutation for the QueueMessage entity.
func newQueueMessageMutation(c config, op Op, opts ...queuemessageOption) *QueueMessageMutation {
	m := &QueueMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueMessageID sets the ID field of the mutation.
func withQueueMessageID(id string) queuemessageOption {
	return func(m *QueueMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueMessage
		)
		m.oldValue = func(ctx context.Context) (*QueueMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueMessage sets the old QueueMessage of the mutation.
func withQueueMessage(node *QueueMessage) queuemessageOption {
	return func(m *QueueMessageMutation) {
		m.oldValue = func(context.Context) (*QueueMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueMessage entities.
func (m *QueueMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *QueueMessageMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *QueueMessageMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *QueueMessageMutation) ResetQueue() {
	m.queue = nil
}

// SetStatus sets the "status" field.
func (m *QueueMessageMutation) SetStatus(q queuemessage.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueMessageMutation) Status() (r queuemessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldStatus(ctx context.Context) (v queuemessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueMessageMutation) ResetStatus() {
	m.status = nil
}

// SetMsg sets the "msg" field.
func (m *QueueMessageMutation) SetMsg(value map[string]interface{}) {
	m.msg = &value
}

// Msg returns the value of the "msg" field in the mutation.
func (m *QueueMessageMutation) Msg() (r map[string]interface{}, exists bool) {
	v := m.msg
	if v == nil {
		return
	}
	return *v, true
}

// OldMsg returns the old "msg" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldMsg(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMsg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMsg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMsg: %w", err)
	}
	return oldValue.Msg, nil
}

// ResetMsg resets all changes to the "msg" field.
func (m *QueueMessageMutation) ResetMsg() {
	m.msg = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClaimedAt sets the "claimed_at" field.
func (m *QueueMessageMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *QueueMessageMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *QueueMessageMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[queuemessage.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *QueueMessageMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *QueueMessageMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, queuemessage.FieldClaimedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QueueMessageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QueueMessageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QueueMessageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[queuemessage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QueueMessageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QueueMessageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, queuemessage.FieldCompletedAt)
}

// Where appends a list predicates to the QueueMessageMutation builder.
func (m *QueueMessageMutation) Where(ps ...predicate.QueueMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueMessage).
func (m *QueueMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.queue != nil {
		fields = append(fields, queuemessage.FieldQueue)
	}
	if m.status != nil {
		fields = append(fields, queuemessage.FieldStatus)
	}
	if m.msg != nil {
		fields = append(fields, queuemessage.FieldMsg)
	}
	if m.created_at != nil {
		fields = append(fields, queuemessage.FieldCreatedAt)
	}
	if m.claimed_at != nil {
		fields = append(fields, queuemessage.FieldClaimedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, queuemessage.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldQueue:
		return m.Queue()
	case queuemessage.FieldStatus:
		return m.Status()
	case queuemessage.FieldMsg:
		return m.Msg()
	case queuemessage.FieldCreatedAt:
		return m.CreatedAt()
	case queuemessage.FieldClaimedAt:
		return m.ClaimedAt()
	case queuemessage.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuemessage.FieldQueue:
		return m.OldQueue(ctx)
	case queuemessage.FieldStatus:
		return m.OldStatus(ctx)
	case queuemessage.FieldMsg:
		return m.OldMsg(ctx)
	case queuemessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queuemessage.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case queuemessage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case queuemessage.FieldStatus:
		v, ok := value.(queuemessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuemessage.FieldMsg:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMsg(v)
		return nil
	case queuemessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queuemessage.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case queuemessage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QueueMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuemessage.FieldClaimedAt) {
		fields = append(fields, queuemessage.FieldClaimedAt)
	}
	if m.FieldCleared(queuemessage.FieldCompletedAt) {
		fields = append(fields, queuemessage.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMessageMutation) ClearField(name string) error {
	switch name {
	case queuemessage.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case queuemessage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMessageMutation) ResetField(name string) error {
	switch name {
	case queuemessage.FieldQueue:
		m.ResetQueue()
		return nil
	case queuemessage.FieldStatus:
		m.ResetStatus()
		return nil
	case queuemessage.FieldMsg:
		m.ResetMsg()
		return nil
	case queuemessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queuemessage.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case queuemessage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage edge %s", name)
}

// WebhookConfigMutation represents an operation that mutates the WebhookConfig nodes in the graph.
type WebhookConfigMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	enabled                     *bool
	url                         *string
	events                      *[]string
	appendevents                []string
	auth_type                   *webhookconfig.AuthType
	auth_header_name            *string
	auth_header_value_encrypted *string
	secret_encrypted            *string
	signature_enabled           *bool
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*WebhookConfig, error)
	predicates                  []predicate.WebhookConfig
}

var _ ent.Mutation = (*WebhookConfigMutation)(nil)

// webhookconfigOption allows management of the mutation configuration using functional options.
type webhookconfigOption func(*WebhookConfigMutation)

// newWebhookConfigMutation creates new mutation for the WebhookConfig entity.
func newWebhookConfigMutation(c config, op Op, opts ...webhookconfigOption) *WebhookConfigMutation {
	m := &WebhookConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookConfigID sets the ID field of the mutation.
func withWebhookConfigID(id string) webhookconfigOption {
	return func(m *WebhookConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookConfig
		)
		m.oldValue = func(ctx context.Context) (*WebhookConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookConfig sets the old WebhookConfig of the mutation.
func withWebhookConfig(node *WebhookConfig) webhookconfigOption {
	return func(m *WebhookConfigMutation) {
		m.oldValue = func(context.Context) (*WebhookConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookConfig entities.
func (m *WebhookConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnabled sets the "enabled" field.
func (m *WebhookConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *WebhookConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *WebhookConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetURL sets the "url" field.
func (m *WebhookConfigMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookConfigMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *WebhookConfigMutation) ClearURL() {
	m.url = nil
	m.clearedFields[webhookconfig.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *WebhookConfigMutation) URLCleared() bool {
	_, ok := m.clearedFields[webhookconfig.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookConfigMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, webhookconfig.FieldURL)
}

// SetEvents sets the "events" field.
func (m *WebhookConfigMutation) SetEvents(s []string) {
	m.events = &s
	m.appendevents = nil
}

// Events returns the value of the "events" field in the mutation.
func (m *WebhookConfigMutation) Events() (r []string, exists bool) {
	v := m.events
	if v == nil {
		return
	}
	return *v, true
}

// OldEvents returns the old "events" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldEvents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvents: %w", err)
	}
	return oldValue.Events, nil
}

// AppendEvents adds s to the "events" field.
func (m *WebhookConfigMutation) AppendEvents(s []string) {
	m.appendevents = append(m.appendevents, s...)
}

// AppendedEvents returns the list of values that were appended to the "events" field in this mutation.
func (m *WebhookConfigMutation) AppendedEvents() ([]string, bool) {
	if len(m.appendevents) == 0 {
		return nil, false
	}
	return m.appendevents, true
}

// ClearEvents clears the value of the "events" field.
func (m *WebhookConfigMutation) ClearEvents() {
	m.events = nil
	m.appendevents = nil
	m.clearedFields[webhookconfig.FieldEvents] = struct{}{}
}

// EventsCleared returns if the "events" field was cleared in this mutation.
func (m *WebhookConfigMutation) EventsCleared() bool {
	_, ok := m.clearedFields[webhookconfig.FieldEvents]
	return ok
}

// ResetEvents resets all changes to the "events" field.
func (m *WebhookConfigMutation) ResetEvents() {
	m.events = nil
	m.appendevents = nil
	delete(m.clearedFields, webhookconfig.FieldEvents)
}

// SetAuthType sets the "auth_type" field.
func (m *WebhookConfigMutation) SetAuthType(wt webhookconfig.AuthType) {
	m.auth_type = &wt
}

// AuthType returns the value of the "auth_type" field in the mutation.
func (m *WebhookConfigMutation) AuthType() (r webhookconfig.AuthType, exists bool) {
	v := m.auth_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthType returns the old "auth_type" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldAuthType(ctx context.Context) (v webhookconfig.AuthType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthType: %w", err)
	}
	return oldValue.AuthType, nil
}

// ResetAuthType resets all changes to the "auth_type" field.
func (m *WebhookConfigMutation) ResetAuthType() {
	m.auth_type = nil
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (m *WebhookConfigMutation) SetAuthHeaderName(s string) {
	m.auth_header_name = &s
}

// AuthHeaderName returns the value of the "auth_header_name" field in the mutation.
func (m *WebhookConfigMutation) AuthHeaderName() (r string, exists bool) {
	v := m.auth_header_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthHeaderName returns the old "auth_header_name" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldAuthHeaderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthHeaderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthHeaderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthHeaderName: %w", err)
	}
	return oldValue.AuthHeaderName, nil
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (m *WebhookConfigMutation) ClearAuthHeaderName() {
	m.auth_header_name = nil
	m.clearedFields[webhookconfig.FieldAuthHeaderName] = struct{}{}
}

// AuthHeaderNameCleared returns if the "auth_header_name" field was cleared in this mutation.
func (m *WebhookConfigMutation) AuthHeaderNameCleared() bool {
	_, ok := m.clearedFields[webhookconfig.FieldAuthHeaderName]
	return ok
}

// ResetAuthHeaderName resets all changes to the "auth_header_name" field.
func (m *WebhookConfigMutation) ResetAuthHeaderName() {
	m.auth_header_name = nil
	delete(m.clearedFields, webhookconfig.FieldAuthHeaderName)
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (m *WebhookConfigMutation) SetAuthHeaderValueEncrypted(s string) {
	m.auth_header_value_encrypted = &s
}

// AuthHeaderValueEncrypted returns the value of the "auth_header_value_encrypted" field in the mutation.
func (m *WebhookConfigMutation) AuthHeaderValueEncrypted() (r string, exists bool) {
	v := m.auth_header_value_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthHeaderValueEncrypted returns the old "auth_header_value_encrypted" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldAuthHeaderValueEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthHeaderValueEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthHeaderValueEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthHeaderValueEncrypted: %w", err)
	}
	return oldValue.AuthHeaderValueEncrypted, nil
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (m *WebhookConfigMutation) ClearAuthHeaderValueEncrypted() {
	m.auth_header_value_encrypted = nil
	m.clearedFields[webhookconfig.FieldAuthHeaderValueEncrypted] = struct{}{}
}

// AuthHeaderValueEncryptedCleared returns if the "auth_header_value_encrypted" field was cleared in this mutation.
func (m *WebhookConfigMutation) AuthHeaderValueEncryptedCleared() bool {
	_, ok := m.clearedFields[webhookconfig.FieldAuthHeaderValueEncrypted]
	return ok
}

// ResetAuthHeaderValueEncrypted resets all changes to the "auth_header_value_encrypted" field.
func (m *WebhookConfigMutation) ResetAuthHeaderValueEncrypted() {
	m.auth_header_value_encrypted = nil
	delete(m.clearedFields, webhookconfig.FieldAuthHeaderValueEncrypted)
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (m *WebhookConfigMutation) SetSecretEncrypted(s string) {
	m.secret_encrypted = &s
}

// SecretEncrypted returns the value of the "secret_encrypted" field in the mutation.
func (m *WebhookConfigMutation) SecretEncrypted() (r string, exists bool) {
	v := m.secret_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretEncrypted returns the old "secret_encrypted" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldSecretEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretEncrypted: %w", err)
	}
	return oldValue.SecretEncrypted, nil
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (m *WebhookConfigMutation) ClearSecretEncrypted() {
	m.secret_encrypted = nil
	m.clearedFields[webhookconfig.FieldSecretEncrypted] = struct{}{}
}

// SecretEncryptedCleared returns if the "secret_encrypted" field was cleared in this mutation.
func (m *WebhookConfigMutation) SecretEncryptedCleared() bool {
	_, ok := m.clearedFields[webhookconfig.FieldSecretEncrypted]
	return ok
}

// ResetSecretEncrypted resets all changes to the "secret_encrypted" field.
func (m *WebhookConfigMutation) ResetSecretEncrypted() {
	m.secret_encrypted = nil
	delete(m.clearedFields, webhookconfig.FieldSecretEncrypted)
}

// SetSignatureEnabled sets the "signature_enabled" field.
func (m *WebhookConfigMutation) SetSignatureEnabled(b bool) {
	m.signature_enabled = &b
}

// SignatureEnabled returns the value of the "signature_enabled" field in the mutation.
func (m *WebhookConfigMutation) SignatureEnabled() (r bool, exists bool) {
	v := m.signature_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureEnabled returns the old "signature_enabled" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldSignatureEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureEnabled: %w", err)
	}
	return oldValue.SignatureEnabled, nil
}

// ResetSignatureEnabled resets all changes to the "signature_enabled" field.
func (m *WebhookConfigMutation) ResetSignatureEnabled() {
	m.signature_enabled = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookConfig entity.
// If the WebhookConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WebhookConfigMutation builder.
func (m *WebhookConfigMutation) Where(ps ...predicate.WebhookConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookConfig).
func (m *WebhookConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookConfigMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.enabled != nil {
		fields = append(fields, webhookconfig.FieldEnabled)
	}
	if m.url != nil {
		fields = append(fields, webhookconfig.FieldURL)
	}
	if m.events != nil {
		fields = append(fields, webhookconfig.FieldEvents)
	}
	if m.auth_type != nil {
		fields = append(fields, webhookconfig.FieldAuthType)
	}
	if m.auth_header_name != nil {
		fields = append(fields, webhookconfig.FieldAuthHeaderName)
	}
	if m.auth_header_value_encrypted != nil {
		fields = append(fields, webhookconfig.FieldAuthHeaderValueEncrypted)
	}
	if m.secret_encrypted != nil {
		fields = append(fields, webhookconfig.FieldSecretEncrypted)
	}
	if m.signature_enabled != nil {
		fields = append(fields, webhookconfig.FieldSignatureEnabled)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookconfig.FieldEnabled:
		return m.Enabled()
	case webhookconfig.FieldURL:
		return m.URL()
	case webhookconfig.FieldEvents:
		return m.Events()
	case webhookconfig.FieldAuthType:
		return m.AuthType()
	case webhookconfig.FieldAuthHeaderName:
		return m.AuthHeaderName()
	case webhookconfig.FieldAuthHeaderValueEncrypted:
		return m.AuthHeaderValueEncrypted()
	case webhookconfig.FieldSecretEncrypted:
		return m.SecretEncrypted()
	case webhookconfig.FieldSignatureEnabled:
		return m.SignatureEnabled()
	case webhookconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case webhookconfig.FieldURL:
		return m.OldURL(ctx)
	case webhookconfig.FieldEvents:
		return m.OldEvents(ctx)
	case webhookconfig.FieldAuthType:
		return m.OldAuthType(ctx)
	case webhookconfig.FieldAuthHeaderName:
		return m.OldAuthHeaderName(ctx)
	case webhookconfig.FieldAuthHeaderValueEncrypted:
		return m.OldAuthHeaderValueEncrypted(ctx)
	case webhookconfig.FieldSecretEncrypted:
		return m.OldSecretEncrypted(ctx)
	case webhookconfig.FieldSignatureEnabled:
		return m.OldSignatureEnabled(ctx)
	case webhookconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case webhookconfig.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhookconfig.FieldEvents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvents(v)
		return nil
	case webhookconfig.FieldAuthType:
		v, ok := value.(webhookconfig.AuthType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthType(v)
		return nil
	case webhookconfig.FieldAuthHeaderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthHeaderName(v)
		return nil
	case webhookconfig.FieldAuthHeaderValueEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthHeaderValueEncrypted(v)
		return nil
	case webhookconfig.FieldSecretEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretEncrypted(v)
		return nil
	case webhookconfig.FieldSignatureEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureEnabled(v)
		return nil
	case webhookconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookconfig.FieldURL) {
		fields = append(fields, webhookconfig.FieldURL)
	}
	if m.FieldCleared(webhookconfig.FieldEvents) {
		fields = append(fields, webhookconfig.FieldEvents)
	}
	if m.FieldCleared(webhookconfig.FieldAuthHeaderName) {
		fields = append(fields, webhookconfig.FieldAuthHeaderName)
	}
	if m.FieldCleared(webhookconfig.FieldAuthHeaderValueEncrypted) {
		fields = append(fields, webhookconfig.FieldAuthHeaderValueEncrypted)
	}
	if m.FieldCleared(webhookconfig.FieldSecretEncrypted) {
		fields = append(fields, webhookconfig.FieldSecretEncrypted)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookConfigMutation) ClearField(name string) error {
	switch name {
	case webhookconfig.FieldURL:
		m.ClearURL()
		return nil
	case webhookconfig.FieldEvents:
		m.ClearEvents()
		return nil
	case webhookconfig.FieldAuthHeaderName:
		m.ClearAuthHeaderName()
		return nil
	case webhookconfig.FieldAuthHeaderValueEncrypted:
		m.ClearAuthHeaderValueEncrypted()
		return nil
	case webhookconfig.FieldSecretEncrypted:
		m.ClearSecretEncrypted()
		return nil
	}
	return fmt.Errorf("unknown WebhookConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookConfigMutation) ResetField(name string) error {
	switch name {
	case webhookconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case webhookconfig.FieldURL:
		m.ResetURL()
		return nil
	case webhookconfig.FieldEvents:
		m.ResetEvents()
		return nil
	case webhookconfig.FieldAuthType:
		m.ResetAuthType()
		return nil
	case webhookconfig.FieldAuthHeaderName:
		m.ResetAuthHeaderName()
		return nil
	case webhookconfig.FieldAuthHeaderValueEncrypted:
		m.ResetAuthHeaderValueEncrypted()
		return nil
	case webhookconfig.FieldSecretEncrypted:
		m.ResetSecretEncrypted()
		return nil
	case webhookconfig.FieldSignatureEnabled:
		m.ResetSignatureEnabled()
		return nil
	case webhookconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookConfig edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	organization_id             *string
	event_type                  *string
	event_id                    *string
	document_id                 *string
	payload                     *map[string]interface{}
	target_url                  *string
	auth_type                   *webhookdelivery.AuthType
	auth_header_name            *string
	auth_header_value_encrypted *string
	secret_encrypted            *string
	attempts                    *int
	addattempts                 *int
	next_attempt_at             *time.Time
	status                      *webhookdelivery.Status
	last_status_code            *int
	addlast_status_code         *int
	last_error                  *string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*WebhookDelivery, error)
	predicates                  []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *WebhookDeliveryMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *WebhookDeliveryMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *WebhookDeliveryMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookDeliveryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookDeliveryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookDeliveryMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventID sets the "event_id" field.
func (m *WebhookDeliveryMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WebhookDeliveryMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WebhookDeliveryMutation) ResetEventID() {
	m.event_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *WebhookDeliveryMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *WebhookDeliveryMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldDocumentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *WebhookDeliveryMutation) ClearDocumentID() {
	m.document_id = nil
	m.clearedFields[webhookdelivery.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *WebhookDeliveryMutation) ResetDocumentID() {
	m.document_id = nil
	delete(m.clearedFields, webhookdelivery.FieldDocumentID)
}

// SetPayload sets the "payload" field.
func (m *WebhookDeliveryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookDeliveryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookDeliveryMutation) ResetPayload() {
	m.payload = nil
}

// SetTargetURL sets the "target_url" field.
func (m *WebhookDeliveryMutation) SetTargetURL(s string) {
	m.target_url = &s
}

// TargetURL returns the value of the "target_url" field in the mutation.
func (m *WebhookDeliveryMutation) TargetURL() (r string, exists bool) {
	v := m.target_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetURL returns the old "target_url" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldTargetURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetURL: %w", err)
	}
	return oldValue.TargetURL, nil
}

// ResetTargetURL resets all changes to the "target_url" field.
func (m *WebhookDeliveryMutation) ResetTargetURL() {
	m.target_url = nil
}

// SetAuthType sets the "auth_type" field.
func (m *WebhookDeliveryMutation) SetAuthType(wt webhookdelivery.AuthType) {
	m.auth_type = &wt
}

// AuthType returns the value of the "auth_type" field in the mutation.
func (m *WebhookDeliveryMutation) AuthType() (r webhookdelivery.AuthType, exists bool) {
	v := m.auth_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthType returns the old "auth_type" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAuthType(ctx context.Context) (v webhookdelivery.AuthType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthType: %w", err)
	}
	return oldValue.AuthType, nil
}

// ResetAuthType resets all changes to the "auth_type" field.
func (m *WebhookDeliveryMutation) ResetAuthType() {
	m.auth_type = nil
}

// SetAuthHeaderName sets the "auth_header_name" field.
func (m *WebhookDeliveryMutation) SetAuthHeaderName(s string) {
	m.auth_header_name = &s
}

// AuthHeaderName returns the value of the "auth_header_name" field in the mutation.
func (m *WebhookDeliveryMutation) AuthHeaderName() (r string, exists bool) {
	v := m.auth_header_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthHeaderName returns the old "auth_header_name" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAuthHeaderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthHeaderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthHeaderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthHeaderName: %w", err)
	}
	return oldValue.AuthHeaderName, nil
}

// ClearAuthHeaderName clears the value of the "auth_header_name" field.
func (m *WebhookDeliveryMutation) ClearAuthHeaderName() {
	m.auth_header_name = nil
	m.clearedFields[webhookdelivery.FieldAuthHeaderName] = struct{}{}
}

// AuthHeaderNameCleared returns if the "auth_header_name" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) AuthHeaderNameCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldAuthHeaderName]
	return ok
}

// ResetAuthHeaderName resets all changes to the "auth_header_name" field.
func (m *WebhookDeliveryMutation) ResetAuthHeaderName() {
	m.auth_header_name = nil
	delete(m.clearedFields, webhookdelivery.FieldAuthHeaderName)
}

// SetAuthHeaderValueEncrypted sets the "auth_header_value_encrypted" field.
func (m *WebhookDeliveryMutation) SetAuthHeaderValueEncrypted(s string) {
	m.auth_header_value_encrypted = &s
}

// AuthHeaderValueEncrypted returns the value of the "auth_header_value_encrypted" field in the mutation.
func (m *WebhookDeliveryMutation) AuthHeaderValueEncrypted() (r string, exists bool) {
	v := m.auth_header_value_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthHeaderValueEncrypted returns the old "auth_header_value_encrypted" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAuthHeaderValueEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthHeaderValueEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthHeaderValueEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthHeaderValueEncrypted: %w", err)
	}
	return oldValue.AuthHeaderValueEncrypted, nil
}

// ClearAuthHeaderValueEncrypted clears the value of the "auth_header_value_encrypted" field.
func (m *WebhookDeliveryMutation) ClearAuthHeaderValueEncrypted() {
	m.auth_header_value_encrypted = nil
	m.clearedFields[webhookdelivery.FieldAuthHeaderValueEncrypted] = struct{}{}
}

// AuthHeaderValueEncryptedCleared returns if the "auth_header_value_encrypted" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) AuthHeaderValueEncryptedCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldAuthHeaderValueEncrypted]
	return ok
}

// ResetAuthHeaderValueEncrypted resets all changes to the "auth_header_value_encrypted" field.
func (m *WebhookDeliveryMutation) ResetAuthHeaderValueEncrypted() {
	m.auth_header_value_encrypted = nil
	delete(m.clearedFields, webhookdelivery.FieldAuthHeaderValueEncrypted)
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (m *WebhookDeliveryMutation) SetSecretEncrypted(s string) {
	m.secret_encrypted = &s
}

// SecretEncrypted returns the value of the "secret_encrypted" field in the mutation.
func (m *WebhookDeliveryMutation) SecretEncrypted() (r string, exists bool) {
	v := m.secret_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretEncrypted returns the old "secret_encrypted" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldSecretEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretEncrypted: %w", err)
	}
	return oldValue.SecretEncrypted, nil
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (m *WebhookDeliveryMutation) ClearSecretEncrypted() {
	m.secret_encrypted = nil
	m.clearedFields[webhookdelivery.FieldSecretEncrypted] = struct{}{}
}

// SecretEncryptedCleared returns if the "secret_encrypted" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) SecretEncryptedCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldSecretEncrypted]
	return ok
}

// ResetSecretEncrypted resets all changes to the "secret_encrypted" field.
func (m *WebhookDeliveryMutation) ResetSecretEncrypted() {
	m.secret_encrypted = nil
	delete(m.clearedFields, webhookdelivery.FieldSecretEncrypted)
}

// SetAttempts sets the "attempts" field.
func (m *WebhookDeliveryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *WebhookDeliveryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *WebhookDeliveryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *WebhookDeliveryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *WebhookDeliveryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *WebhookDeliveryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetStatus sets the "status" field.
func (m *WebhookDeliveryMutation) SetStatus(w webhookdelivery.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookDeliveryMutation) Status() (r webhookdelivery.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldStatus(ctx context.Context) (v webhookdelivery.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebhookDeliveryMutation) ResetStatus() {
	m.status = nil
}

// SetLastStatusCode sets the "last_status_code" field.
func (m *WebhookDeliveryMutation) SetLastStatusCode(i int) {
	m.last_status_code = &i
	m.addlast_status_code = nil
}

// LastStatusCode returns the value of the "last_status_code" field in the mutation.
func (m *WebhookDeliveryMutation) LastStatusCode() (r int, exists bool) {
	v := m.last_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatusCode returns the old "last_status_code" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatusCode: %w", err)
	}
	return oldValue.LastStatusCode, nil
}

// AddLastStatusCode adds i to the "last_status_code" field.
func (m *WebhookDeliveryMutation) AddLastStatusCode(i int) {
	if m.addlast_status_code != nil {
		*m.addlast_status_code += i
	} else {
		m.addlast_status_code = &i
	}
}

// AddedLastStatusCode returns the value that was added to the "last_status_code" field in this mutation.
func (m *WebhookDeliveryMutation) AddedLastStatusCode() (r int, exists bool) {
	v := m.addlast_status_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (m *WebhookDeliveryMutation) ClearLastStatusCode() {
	m.last_status_code = nil
	m.addlast_status_code = nil
	m.clearedFields[webhookdelivery.FieldLastStatusCode] = struct{}{}
}

// LastStatusCodeCleared returns if the "last_status_code" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastStatusCodeCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastStatusCode]
	return ok
}

// ResetLastStatusCode resets all changes to the "last_status_code" field.
func (m *WebhookDeliveryMutation) ResetLastStatusCode() {
	m.last_status_code = nil
	m.addlast_status_code = nil
	delete(m.clearedFields, webhookdelivery.FieldLastStatusCode)
}

// SetLastError sets the "last_error" field.
func (m *WebhookDeliveryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *WebhookDeliveryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *WebhookDeliveryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[webhookdelivery.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *WebhookDeliveryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, webhookdelivery.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookDeliveryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookDeliveryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookDeliveryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.organization_id != nil {
		fields = append(fields, webhookdelivery.FieldOrganizationID)
	}
	if m.event_type != nil {
		fields = append(fields, webhookdelivery.FieldEventType)
	}
	if m.event_id != nil {
		fields = append(fields, webhookdelivery.FieldEventID)
	}
	if m.document_id != nil {
		fields = append(fields, webhookdelivery.FieldDocumentID)
	}
	if m.payload != nil {
		fields = append(fields, webhookdelivery.FieldPayload)
	}
	if m.target_url != nil {
		fields = append(fields, webhookdelivery.FieldTargetURL)
	}
	if m.auth_type != nil {
		fields = append(fields, webhookdelivery.FieldAuthType)
	}
	if m.auth_header_name != nil {
		fields = append(fields, webhookdelivery.FieldAuthHeaderName)
	}
	if m.auth_header_value_encrypted != nil {
		fields = append(fields, webhookdelivery.FieldAuthHeaderValueEncrypted)
	}
	if m.secret_encrypted != nil {
		fields = append(fields, webhookdelivery.FieldSecretEncrypted)
	}
	if m.attempts != nil {
		fields = append(fields, webhookdelivery.FieldAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, webhookdelivery.FieldNextAttemptAt)
	}
	if m.status != nil {
		fields = append(fields, webhookdelivery.FieldStatus)
	}
	if m.last_status_code != nil {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.last_error != nil {
		fields = append(fields, webhookdelivery.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdelivery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookdelivery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldOrganizationID:
		return m.OrganizationID()
	case webhookdelivery.FieldEventType:
		return m.EventType()
	case webhookdelivery.FieldEventID:
		return m.EventID()
	case webhookdelivery.FieldDocumentID:
		return m.DocumentID()
	case webhookdelivery.FieldPayload:
		return m.Payload()
	case webhookdelivery.FieldTargetURL:
		return m.TargetURL()
	case webhookdelivery.FieldAuthType:
		return m.AuthType()
	case webhookdelivery.FieldAuthHeaderName:
		return m.AuthHeaderName()
	case webhookdelivery.FieldAuthHeaderValueEncrypted:
		return m.AuthHeaderValueEncrypted()
	case webhookdelivery.FieldSecretEncrypted:
		return m.SecretEncrypted()
	case webhookdelivery.FieldAttempts:
		return m.Attempts()
	case webhookdelivery.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case webhookdelivery.FieldStatus:
		return m.Status()
	case webhookdelivery.FieldLastStatusCode:
		return m.LastStatusCode()
	case webhookdelivery.FieldLastError:
		return m.LastError()
	case webhookdelivery.FieldCreatedAt:
		return m.CreatedAt()
	case webhookdelivery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case webhookdelivery.FieldEventType:
		return m.OldEventType(ctx)
	case webhookdelivery.FieldEventID:
		return m.OldEventID(ctx)
	case webhookdelivery.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case webhookdelivery.FieldPayload:
		return m.OldPayload(ctx)
	case webhookdelivery.FieldTargetURL:
		return m.OldTargetURL(ctx)
	case webhookdelivery.FieldAuthType:
		return m.OldAuthType(ctx)
	case webhookdelivery.FieldAuthHeaderName:
		return m.OldAuthHeaderName(ctx)
	case webhookdelivery.FieldAuthHeaderValueEncrypted:
		return m.OldAuthHeaderValueEncrypted(ctx)
	case webhookdelivery.FieldSecretEncrypted:
		return m.OldSecretEncrypted(ctx)
	case webhookdelivery.FieldAttempts:
		return m.OldAttempts(ctx)
	case webhookdelivery.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case webhookdelivery.FieldStatus:
		return m.OldStatus(ctx)
	case webhookdelivery.FieldLastStatusCode:
		return m.OldLastStatusCode(ctx)
	case webhookdelivery.FieldLastError:
		return m.OldLastError(ctx)
	case webhookdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookdelivery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case webhookdelivery.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookdelivery.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case webhookdelivery.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case webhookdelivery.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookdelivery.FieldTargetURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetURL(v)
		return nil
	case webhookdelivery.FieldAuthType:
		v, ok := value.(webhookdelivery.AuthType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthType(v)
		return nil
	case webhookdelivery.FieldAuthHeaderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthHeaderName(v)
		return nil
	case webhookdelivery.FieldAuthHeaderValueEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthHeaderValueEncrypted(v)
		return nil
	case webhookdelivery.FieldSecretEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretEncrypted(v)
		return nil
	case webhookdelivery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case webhookdelivery.FieldStatus:
		v, ok := value.(webhookdelivery.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookdelivery.FieldLastStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatusCode(v)
		return nil
	case webhookdelivery.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case webhookdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookdelivery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, webhookdelivery.FieldAttempts)
	}
	if m.addlast_status_code != nil {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldAttempts:
		return m.AddedAttempts()
	case webhookdelivery.FieldLastStatusCode:
		return m.AddedLastStatusCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case webhookdelivery.FieldLastStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStatusCode(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldDocumentID) {
		fields = append(fields, webhookdelivery.FieldDocumentID)
	}
	if m.FieldCleared(webhookdelivery.FieldAuthHeaderName) {
		fields = append(fields, webhookdelivery.FieldAuthHeaderName)
	}
	if m.FieldCleared(webhookdelivery.FieldAuthHeaderValueEncrypted) {
		fields = append(fields, webhookdelivery.FieldAuthHeaderValueEncrypted)
	}
	if m.FieldCleared(webhookdelivery.FieldSecretEncrypted) {
		fields = append(fields, webhookdelivery.FieldSecretEncrypted)
	}
	if m.FieldCleared(webhookdelivery.FieldLastStatusCode) {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.FieldCleared(webhookdelivery.FieldLastError) {
		fields = append(fields, webhookdelivery.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case webhookdelivery.FieldAuthHeaderName:
		m.ClearAuthHeaderName()
		return nil
	case webhookdelivery.FieldAuthHeaderValueEncrypted:
		m.ClearAuthHeaderValueEncrypted()
		return nil
	case webhookdelivery.FieldSecretEncrypted:
		m.ClearSecretEncrypted()
		return nil
	case webhookdelivery.FieldLastStatusCode:
		m.ClearLastStatusCode()
		return nil
	case webhookdelivery.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case webhookdelivery.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookdelivery.FieldEventID:
		m.ResetEventID()
		return nil
	case webhookdelivery.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case webhookdelivery.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookdelivery.FieldTargetURL:
		m.ResetTargetURL()
		return nil
	case webhookdelivery.FieldAuthType:
		m.ResetAuthType()
		return nil
	case webhookdelivery.FieldAuthHeaderName:
		m.ResetAuthHeaderName()
		return nil
	case webhookdelivery.FieldAuthHeaderValueEncrypted:
		m.ResetAuthHeaderValueEncrypted()
		return nil
	case webhookdelivery.FieldSecretEncrypted:
		m.ResetSecretEncrypted()
		return nil
	case webhookdelivery.FieldAttempts:
		m.ResetAttempts()
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case webhookdelivery.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookdelivery.FieldLastStatusCode:
		m.ResetLastStatusCode()
		return nil
	case webhookdelivery.FieldLastError:
		m.ResetLastError()
		return nil
	case webhookdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookdelivery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}
