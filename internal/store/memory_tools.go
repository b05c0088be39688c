// server/internal/store/memory_tools.go
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"taller-api-server/internal/models"
)

type MemoryToolStore struct {
	mu     sync.RWMutex
	tools  map[string]models.Tool
	usages []models.ToolUsage
}

func NewMemoryToolStore() *MemoryToolStore {
	return &MemoryToolStore{tools: make(map[string]models.Tool)}
}

func (s *MemoryToolStore) Create(_ context.Context, t *models.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tools[t.Code]; ok {
		return ErrDuplicate
	}
	s.tools[t.Code] = *t
	return nil
}

func (s *MemoryToolStore) GetByCode(_ context.Context, code string) (*models.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tools[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryToolStore) Update(_ context.Context, t *models.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tools[t.Code]; !ok {
		return ErrNotFound
	}
	s.tools[t.Code] = *t
	return nil
}

func (s *MemoryToolStore) List(_ context.Context) ([]models.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tool, 0, len(s.tools))
	for _, t := range s.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *MemoryToolStore) OpenUsage(_ context.Context, u *models.ToolUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.usages {
		if existing.ToolCode == u.ToolCode && existing.CheckinTime == nil {
			return ErrOpenUsageExists
		}
	}
	s.usages = append(s.usages, *u)
	return nil
}

func (s *MemoryToolStore) CloseOpenUsage(_ context.Context, toolCode string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.usages {
		if s.usages[i].ToolCode == toolCode && s.usages[i].CheckinTime == nil {
			t := at
			s.usages[i].CheckinTime = &t
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryToolStore) OpenUsageByTool(_ context.Context, toolCode string) (*models.ToolUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.usages {
		if u.ToolCode == toolCode && u.CheckinTime == nil {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
