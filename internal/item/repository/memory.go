package repository

import (
	"context"
	"sync"

	"github.com/shoppinglist/shopping-list/internal/item"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps items in process memory, in insertion order. Used for
// ITEM_STORE=memory and in tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]*item.Item
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*item.Item)}
}

func (m *MemoryRepo) List(ctx context.Context) ([]*item.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*item.Item, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.store[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Create(ctx context.Context, name string) (*item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := &item.Item{ID: primitive.NewObjectID(), Name: name}
	m.store[it.ID] = it
	m.order = append(m.order, it.ID)
	cp := *it
	return &cp, nil
}

func (m *MemoryRepo) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.store[id]
	if !ok {
		return nil, item.ErrNotFound
	}
	it.Name = name
	cp := *it
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error { return nil }
