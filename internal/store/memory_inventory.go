// server/internal/store/memory_inventory.go
package store

import (
	"context"
	"sort"
	"sync"

	"taller-api-server/internal/models"
)

type MemoryPartStore struct {
	mu    sync.RWMutex
	parts map[string]models.Part
}

func NewMemoryPartStore() *MemoryPartStore {
	return &MemoryPartStore{parts: make(map[string]models.Part)}
}

func (s *MemoryPartStore) Create(_ context.Context, p *models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[p.Code]; ok {
		return ErrDuplicate
	}
	s.parts[p.Code] = *p
	return nil
}

func (s *MemoryPartStore) GetByCode(_ context.Context, code string) (*models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parts[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryPartStore) Update(_ context.Context, p *models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[p.Code]; !ok {
		return ErrNotFound
	}
	s.parts[p.Code] = *p
	return nil
}

func (s *MemoryPartStore) List(_ context.Context) ([]models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Part, 0, len(s.parts))
	for _, p := range s.parts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *MemoryPartStore) ListBelowStock(_ context.Context, threshold int) ([]models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Part
	for _, p := range s.parts {
		if p.Status != models.PartDiscontinued && p.Stock < threshold {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *MemoryPartStore) AdjustStock(_ context.Context, code string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parts[code]
	if !ok {
		return 0, ErrNotFound
	}
	next := p.Stock + delta
	if next < 0 {
		return 0, ErrInsufficientStock
	}
	p.Stock = next
	p.Status = p.StatusForStock()
	s.parts[code] = p
	return next, nil
}

type MemoryMovementStore struct {
	mu        sync.RWMutex
	movements []models.StockMovement
}

func NewMemoryMovementStore() *MemoryMovementStore {
	return &MemoryMovementStore{}
}

func (s *MemoryMovementStore) Record(_ context.Context, m *models.StockMovement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append(s.movements, *m)
	return nil
}

func (s *MemoryMovementStore) ListByPart(_ context.Context, code string) ([]models.StockMovement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.StockMovement
	for _, m := range s.movements {
		if m.PartCode == code {
			out = append(out, m)
		}
	}
	return out, nil
}
