package audit

import (
	"context"
	"sync"
)

// MemoryStore keeps audit records in memory. Used in tests and when no
// database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *MemoryStore) ListByFile(_ context.Context, filePath string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, rec := range s.records {
		if rec.FilePath == filePath {
			out = append(out, rec)
		}
	}
	return out, nil
}
