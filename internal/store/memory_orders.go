// server/internal/store/memory_orders.go
package store

import (
	"context"
	"sort"
	"sync"

	"taller-api-server/internal/models"
)

// MemoryOrderStore keeps work orders in a map keyed by orderID. Used by
// unit tests and as the reference behavior for the Mongo store.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]models.WorkOrder
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string]models.WorkOrder)}
}

func (s *MemoryOrderStore) Create(_ context.Context, o *models.WorkOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.OrderID]; ok {
		return ErrDuplicate
	}
	s.orders[o.OrderID] = *o
	return nil
}

func (s *MemoryOrderStore) GetByOrderID(_ context.Context, orderID string) (*models.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (s *MemoryOrderStore) Update(_ context.Context, o *models.WorkOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.OrderID]; !ok {
		return ErrNotFound
	}
	s.orders[o.OrderID] = *o
	return nil
}

func (s *MemoryOrderStore) List(_ context.Context, f OrderFilter) ([]models.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WorkOrder, 0, len(s.orders))
	for _, o := range s.orders {
		if f.State != "" && o.State != f.State {
			continue
		}
		if f.MechanicID != "" && o.MechanicID != f.MechanicID {
			continue
		}
		if f.Waitlisted != nil && o.Waitlisted != *f.Waitlisted {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryOrderStore) CountInProgressByZone(_ context.Context, zoneID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, o := range s.orders {
		if o.ZoneID == zoneID && o.State == models.OrderInProgress {
			n++
		}
	}
	return n, nil
}

// MemoryLogStore keeps log entries in insertion order.
type MemoryLogStore struct {
	mu      sync.RWMutex
	entries []models.LogEntry
}

func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{}
}

func (s *MemoryLogStore) Append(_ context.Context, e *models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *MemoryLogStore) ListByOrder(_ context.Context, orderID string) ([]models.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.LogEntry
	for _, e := range s.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

// MemoryQualityStore enforces the one-control-per-order rule.
type MemoryQualityStore struct {
	mu       sync.RWMutex
	controls map[string]models.QualityControl
}

func NewMemoryQualityStore() *MemoryQualityStore {
	return &MemoryQualityStore{controls: make(map[string]models.QualityControl)}
}

func (s *MemoryQualityStore) Create(_ context.Context, qc *models.QualityControl) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.controls[qc.OrderID]; ok {
		return ErrDuplicate
	}
	s.controls[qc.OrderID] = *qc
	return nil
}

func (s *MemoryQualityStore) GetByOrder(_ context.Context, orderID string) (*models.QualityControl, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qc, ok := s.controls[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return &qc, nil
}
