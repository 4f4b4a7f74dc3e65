package repo

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store for development and tests.
// Records are copied on the way in and out.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Complaint
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Complaint), now: time.Now}
}

func (s *MemoryStore) Insert(_ context.Context, c *Complaint) error {
	now := s.now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	for c.ID == "" || s.has(c.ID) {
		c.ID = NewID()
	}
	if c.DateSubmitted.IsZero() {
		c.DateSubmitted = now
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	s.data[c.ID] = *c
	return nil
}

func (s *MemoryStore) has(id string) bool {
	_, ok := s.data[id]
	return ok
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) Find(_ context.Context, f Filter) ([]*Complaint, error) {
	s.mu.RLock()
	out := make([]*Complaint, 0, len(s.data))
	for _, c := range s.data {
		if f.Match(&c) {
			cp := c
			out = append(out, &cp)
		}
	}
	s.mu.RUnlock()
	SortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, p Patch) (*Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Apply(&c)
	c.UpdatedAt = s.now().UTC()
	s.data[id] = c
	return &c, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.has(id) {
		return ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *MemoryStore) Summarize(_ context.Context) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum Summary
	for _, c := range s.data {
		sum.Tally(&c)
	}
	return sum, nil
}
