package storage

import (
	"errors"
	"sync"
)

var ErrProfileNotFound = errors.New("profile not found")

// MemoryProfileRepository keeps profile records in process. Used in demo mode
// and tests when no Postgres is configured.
type MemoryProfileRepository struct {
	mu      sync.Mutex
	records map[string]ProfileRecord
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{records: map[string]ProfileRecord{}}
}

func (m *MemoryProfileRepository) InsertProfile(rec *ProfileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = *rec
	return nil
}

func (m *MemoryProfileRepository) GetProfile(id string) (*ProfileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &rec, nil
}
