package engine

import (
	"sync"
	"time"

	"github.com/celerix-dev/clientes/pkg/schema"
	"github.com/google/uuid"
)

// MemStore is the thread-safe in-process record store.
// Nothing is persisted; all data is lost when the process exits.
type MemStore struct {
	mu    sync.RWMutex
	data  map[string]*schema.Cliente
	order []string
	now   func() time.Time
}

// NewMemStore initializes an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]*schema.Cliente),
		now:  time.Now,
	}
}

// --- Interface Implementation ---

func (m *MemStore) Create(firstName, lastName string) (schema.Cliente, error) {
	c := schema.Cliente{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		UpdatedAt: m.now(),
	}
	if err := m.Insert(c); err != nil {
		return schema.Cliente{}, err
	}
	return c, nil
}

// Insert adds a record keyed by its id, keeping the caller's id and timestamp.
// Existing records are never overwritten.
func (m *MemStore) Insert(c schema.Cliente) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[c.ID]; exists {
		return ErrDuplicateID
	}
	m.order = append(m.order, c.ID)
	m.data[c.ID] = &c
	return nil
}

func (m *MemStore) Get(id string) (schema.Cliente, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.data[id]
	if !ok {
		return schema.Cliente{}, ErrNotFound
	}
	return *c, nil
}

func (m *MemStore) Update(id, firstName, lastName string) (schema.Cliente, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.data[id]
	if !ok {
		return schema.Cliente{}, ErrNotFound
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.UpdatedAt = m.now()
	return *c, nil
}

func (m *MemStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[id]; !ok {
		return ErrNotFound
	}
	delete(m.data, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a copy of every record in insertion order.
// Callers may freely reorder or modify the returned slice.
func (m *MemStore) List() ([]schema.Cliente, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]schema.Cliente, 0, len(m.order))
	for _, id := range m.order {
		list = append(list, *m.data[id])
	}
	return list, nil
}

// Len reports the number of records currently stored.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
