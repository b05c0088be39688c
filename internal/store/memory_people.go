// server/internal/store/memory_people.go
package store

import (
	"context"
	"sort"
	"sync"

	"taller-api-server/internal/models"
)

type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile // keyed by profileID
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]models.UserProfile)}
}

func (s *MemoryProfileStore) Create(_ context.Context, p *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.profiles {
		if existing.Username == p.Username {
			return ErrDuplicate
		}
	}
	s.profiles[p.ProfileID] = *p
	return nil
}

func (s *MemoryProfileStore) GetByUsername(_ context.Context, username string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryProfileStore) GetByProfileID(_ context.Context, profileID string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryProfileStore) FirstByRole(_ context.Context, role models.Role) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var match *models.UserProfile
	for _, p := range s.profiles {
		p := p
		if p.Role != role || p.Status != "active" {
			continue
		}
		if match == nil || p.CreatedAt.Before(match.CreatedAt) {
			match = &p
		}
	}
	if match == nil {
		return nil, ErrNotFound
	}
	return match, nil
}

type MemoryMechanicStore struct {
	mu        sync.RWMutex
	mechanics map[string]models.Mechanic // keyed by mechanicID
}

func NewMemoryMechanicStore() *MemoryMechanicStore {
	return &MemoryMechanicStore{mechanics: make(map[string]models.Mechanic)}
}

func (s *MemoryMechanicStore) Create(_ context.Context, m *models.Mechanic) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mechanics[m.MechanicID]; ok {
		return ErrDuplicate
	}
	s.mechanics[m.MechanicID] = *m
	return nil
}

func (s *MemoryMechanicStore) GetByMechanicID(_ context.Context, mechanicID string) (*models.Mechanic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mechanics[mechanicID]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryMechanicStore) GetByProfileID(_ context.Context, profileID string) (*models.Mechanic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.mechanics {
		if m.ProfileID == profileID {
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryMechanicStore) List(_ context.Context) ([]models.Mechanic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Mechanic, 0, len(s.mechanics))
	for _, m := range s.mechanics {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MechanicID < out[j].MechanicID })
	return out, nil
}

type MemoryZoneStore struct {
	mu    sync.RWMutex
	zones map[string]models.WorkZone
}

func NewMemoryZoneStore() *MemoryZoneStore {
	return &MemoryZoneStore{zones: make(map[string]models.WorkZone)}
}

func (s *MemoryZoneStore) Create(_ context.Context, z *models.WorkZone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.zones[z.ZoneID]; ok {
		return ErrDuplicate
	}
	s.zones[z.ZoneID] = *z
	return nil
}

func (s *MemoryZoneStore) GetByZoneID(_ context.Context, zoneID string) (*models.WorkZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	z, ok := s.zones[zoneID]
	if !ok {
		return nil, ErrNotFound
	}
	return &z, nil
}

func (s *MemoryZoneStore) ListActive(_ context.Context) ([]models.WorkZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WorkZone
	for _, z := range s.zones {
		if z.Active {
			out = append(out, z)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZoneID < out[j].ZoneID })
	return out, nil
}

type MemoryClientStore struct {
	mu      sync.RWMutex
	clients map[string]models.Client // keyed by RUT
}

func NewMemoryClientStore() *MemoryClientStore {
	return &MemoryClientStore{clients: make(map[string]models.Client)}
}

func (s *MemoryClientStore) Create(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.RUT]; ok {
		return ErrDuplicate
	}
	s.clients[c.RUT] = *c
	return nil
}

func (s *MemoryClientStore) GetByRUT(_ context.Context, rut string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[rut]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryClientStore) List(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RUT < out[j].RUT })
	return out, nil
}

type MemoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles map[string]models.Vehicle // keyed by plate
}

func NewMemoryVehicleStore() *MemoryVehicleStore {
	return &MemoryVehicleStore{vehicles: make(map[string]models.Vehicle)}
}

func (s *MemoryVehicleStore) Create(_ context.Context, v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[v.Plate]; ok {
		return ErrDuplicate
	}
	s.vehicles[v.Plate] = *v
	return nil
}

func (s *MemoryVehicleStore) GetByPlate(_ context.Context, plate string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[plate]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (s *MemoryVehicleStore) ListByClient(_ context.Context, rut string) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Vehicle
	for _, v := range s.vehicles {
		if v.ClientRUT == rut {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

// MemoryCatalogStore backs the reference tables in tests and the seeder
// dry-run mode.
type MemoryCatalogStore struct {
	mu          sync.RWMutex
	brands      []models.VehicleBrand
	models      []models.VehicleModel
	specialties []models.Specialty
	services    map[string]models.CatalogService
	suppliers   []models.Supplier
}

func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{services: make(map[string]models.CatalogService)}
}

func (s *MemoryCatalogStore) CreateBrand(_ context.Context, b *models.VehicleBrand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands = append(s.brands, *b)
	return nil
}

func (s *MemoryCatalogStore) ListBrands(_ context.Context) ([]models.VehicleBrand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.VehicleBrand(nil), s.brands...), nil
}

func (s *MemoryCatalogStore) CreateModel(_ context.Context, m *models.VehicleModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = append(s.models, *m)
	return nil
}

func (s *MemoryCatalogStore) ListModelsByBrand(_ context.Context, brand string) ([]models.VehicleModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.VehicleModel
	for _, m := range s.models {
		if m.Brand == brand {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryCatalogStore) CreateSpecialty(_ context.Context, sp *models.Specialty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specialties = append(s.specialties, *sp)
	return nil
}

func (s *MemoryCatalogStore) ListSpecialties(_ context.Context) ([]models.Specialty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Specialty(nil), s.specialties...), nil
}

func (s *MemoryCatalogStore) CreateService(_ context.Context, svc *models.CatalogService) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[svc.Name]; ok {
		return ErrDuplicate
	}
	s.services[svc.Name] = *svc
	return nil
}

func (s *MemoryCatalogStore) GetServiceByName(_ context.Context, name string) (*models.CatalogService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &svc, nil
}

func (s *MemoryCatalogStore) ListServices(_ context.Context) ([]models.CatalogService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CatalogService, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryCatalogStore) CreateSupplier(_ context.Context, sup *models.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append(s.suppliers, *sup)
	return nil
}

func (s *MemoryCatalogStore) ListSuppliers(_ context.Context) ([]models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Supplier(nil), s.suppliers...), nil
}
