package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/business-launch/modules-api/models"
)

// MemoryModuleStore keeps modules in a map. It backs tests and any
// environment without a database, and implements the same contract as the
// Postgres store, including the sentinel errors.
type MemoryModuleStore struct {
	mu      sync.RWMutex
	records map[string]models.BusinessModule
}

func NewMemoryModuleStore() *MemoryModuleStore {
	return &MemoryModuleStore{records: make(map[string]models.BusinessModule)}
}

func (s *MemoryModuleStore) ListByOwner(userID string) ([]models.BusinessModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	modules := []models.BusinessModule{}
	for _, m := range s.records {
		if m.UserID == userID {
			modules = append(modules, clone(m))
		}
	}
	return modules, nil
}

func (s *MemoryModuleStore) GetByID(id string) (models.BusinessModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.records[id]
	if !ok {
		return models.BusinessModule{}, ErrNotFound
	}
	return clone(m), nil
}

func (s *MemoryModuleStore) Create(draft models.BusinessModule) (models.BusinessModule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := clone(draft)
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()
	s.records[record.ID] = record
	return clone(record), nil
}

func (s *MemoryModuleStore) Update(id string, record models.BusinessModule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}

	next := clone(record)
	next.ID = id
	next.UserID = existing.UserID
	next.CreatedAt = existing.CreatedAt
	s.records[id] = next
	return nil
}

func (s *MemoryModuleStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func clone(m models.BusinessModule) models.BusinessModule {
	out := m
	out.Tasks = make([]models.Task, len(m.Tasks))
	copy(out.Tasks, m.Tasks)
	return out
}
