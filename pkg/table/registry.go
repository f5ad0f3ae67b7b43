package table

import (
	"errors"
	"sync"
)

// ErrTableNotFound is returned when a table id is not in the registry
var ErrTableNotFound = errors.New("table not found")

// Registry is an in-memory store of live tables. It is created at process
// start and injected into anything that needs to look tables up; entries are
// only removed by an explicit Remove, never by the tables themselves.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[string]*Table),
	}
}

// Add stores the table by its id
func (r *Registry) Add(t *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables[t.ID()] = t
}

// Get returns the table with the given id
func (r *Registry) Get(id string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}

	return t, nil
}

// Remove deletes the table with the given id
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tables, id)
}

// Len returns the number of live tables
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tables)
}
