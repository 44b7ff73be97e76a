package receipt

import (
	"fmt"
	"sync"
)

// Store defines the interface for record storage. IDs start at 1 and
// increase in append order; assignment and append happen as one atomic
// step so concurrent submissions never share an ID or observe a
// half-appended list.
type Store interface {
	// Append assigns the next sequential ID and stores the record,
	// returning the stored copy.
	Append(record *Record) (*Record, error)

	// Get retrieves a record by ID
	Get(id int64) (*Record, error)

	// List returns all records in insertion order
	List() ([]*Record, error)

	// Close closes the store
	Close() error
}

// MemoryStore implements the Store interface in process memory. It is
// the default backend; records are lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  int64
	records []*Record
}

// NewMemoryStore creates a new MemoryStore instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Append assigns the next sequential ID and stores the record
func (s *MemoryStore) Append(record *Record) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	stored.ID = s.nextID
	s.nextID++
	s.records = append(s.records, &stored)
	return &stored, nil
}

// Get retrieves a record by ID
func (s *MemoryStore) Get(id int64) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, fmt.Errorf("record not found: %d", id)
}

// List returns all records in insertion order
func (s *MemoryStore) List() ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*Record, len(s.records))
	copy(records, s.records)
	return records, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
