package documents

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Repository used by unit tests. It mirrors the
// Mongo repository's contract: store-assigned ObjectIDs, field-level merge on
// update, ErrNotFound for missing ids.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]bson.M
	order []primitive.ObjectID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]bson.M)}
}

func (m *MemoryRepo) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	d := cloneDoc(doc)
	d["_id"] = id
	m.store[id] = d
	m.order = append(m.order, id)
	return id, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bson.M, 0, len(m.order))
	for _, id := range m.order {
		if d, ok := m.store[id]; ok {
			out = append(out, cloneDoc(d))
		}
	}
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoc(d), nil
}

func (m *MemoryRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range fields {
		d[k] = v
	}
	return cloneDoc(d), nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func cloneDoc(d bson.M) bson.M {
	out := make(bson.M, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
