// server/internal/store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"taller-api-server/internal/models"
)

// Storage-level sentinel errors. Services translate them into their own
// error kinds where needed.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOpenUsageExists   = errors.New("tool already has an open usage")
)

// OrderFilter narrows List. Zero values mean "no filter".
type OrderFilter struct {
	State      models.OrderState
	MechanicID string
	Waitlisted *bool
}

type OrderStore interface {
	Create(ctx context.Context, o *models.WorkOrder) error
	GetByOrderID(ctx context.Context, orderID string) (*models.WorkOrder, error)
	Update(ctx context.Context, o *models.WorkOrder) error
	List(ctx context.Context, f OrderFilter) ([]models.WorkOrder, error)
	// CountInProgressByZone backs the waitlist capacity check.
	CountInProgressByZone(ctx context.Context, zoneID string) (int, error)
}

type LogStore interface {
	Append(ctx context.Context, e *models.LogEntry) error
	ListByOrder(ctx context.Context, orderID string) ([]models.LogEntry, error)
}

type QualityStore interface {
	// Create fails with ErrDuplicate when the order already has a control.
	Create(ctx context.Context, qc *models.QualityControl) error
	GetByOrder(ctx context.Context, orderID string) (*models.QualityControl, error)
}

type PartStore interface {
	Create(ctx context.Context, p *models.Part) error
	GetByCode(ctx context.Context, code string) (*models.Part, error)
	Update(ctx context.Context, p *models.Part) error
	List(ctx context.Context) ([]models.Part, error)
	ListBelowStock(ctx context.Context, threshold int) ([]models.Part, error)
	// AdjustStock atomically applies delta and returns the resulting stock.
	// A negative delta that would drive stock below zero fails with
	// ErrInsufficientStock and leaves the part untouched.
	AdjustStock(ctx context.Context, code string, delta int) (int, error)
}

type MovementStore interface {
	Record(ctx context.Context, m *models.StockMovement) error
	ListByPart(ctx context.Context, code string) ([]models.StockMovement, error)
}

type ToolStore interface {
	Create(ctx context.Context, t *models.Tool) error
	GetByCode(ctx context.Context, code string) (*models.Tool, error)
	Update(ctx context.Context, t *models.Tool) error
	List(ctx context.Context) ([]models.Tool, error)
	// OpenUsage fails with ErrOpenUsageExists if the tool already has a
	// usage without a checkin time.
	OpenUsage(ctx context.Context, u *models.ToolUsage) error
	// CloseOpenUsage stamps the open usage, if any. Reports whether one
	// was closed.
	CloseOpenUsage(ctx context.Context, toolCode string, at time.Time) (bool, error)
	OpenUsageByTool(ctx context.Context, toolCode string) (*models.ToolUsage, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, profileID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) error
	// HasRecentLowStockAlert reports an unread LOW_STOCK alert for the
	// part created at or after since.
	HasRecentLowStockAlert(ctx context.Context, partCode string, since time.Time) (bool, error)
	// HasDelayAlert reports whether the order ever got a WORK_DELAYED
	// notification.
	HasDelayAlert(ctx context.Context, orderID string) (bool, error)
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.UserProfile) error
	GetByUsername(ctx context.Context, username string) (*models.UserProfile, error)
	GetByProfileID(ctx context.Context, profileID string) (*models.UserProfile, error)
	// FirstByRole resolves the notification target for single-holder
	// roles. Multi-holder fan-out is not supported.
	FirstByRole(ctx context.Context, role models.Role) (*models.UserProfile, error)
}

type MechanicStore interface {
	Create(ctx context.Context, m *models.Mechanic) error
	GetByMechanicID(ctx context.Context, mechanicID string) (*models.Mechanic, error)
	GetByProfileID(ctx context.Context, profileID string) (*models.Mechanic, error)
	List(ctx context.Context) ([]models.Mechanic, error)
}

type ZoneStore interface {
	Create(ctx context.Context, z *models.WorkZone) error
	GetByZoneID(ctx context.Context, zoneID string) (*models.WorkZone, error)
	ListActive(ctx context.Context) ([]models.WorkZone, error)
}

type ClientStore interface {
	Create(ctx context.Context, c *models.Client) error
	GetByRUT(ctx context.Context, rut string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
}

type VehicleStore interface {
	Create(ctx context.Context, v *models.Vehicle) error
	GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	ListByClient(ctx context.Context, rut string) ([]models.Vehicle, error)
}

// CatalogStore groups the small reference tables maintained by the admin
// group and the seeder.
type CatalogStore interface {
	CreateBrand(ctx context.Context, b *models.VehicleBrand) error
	ListBrands(ctx context.Context) ([]models.VehicleBrand, error)
	CreateModel(ctx context.Context, m *models.VehicleModel) error
	ListModelsByBrand(ctx context.Context, brand string) ([]models.VehicleModel, error)
	CreateSpecialty(ctx context.Context, s *models.Specialty) error
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	CreateService(ctx context.Context, s *models.CatalogService) error
	GetServiceByName(ctx context.Context, name string) (*models.CatalogService, error)
	ListServices(ctx context.Context) ([]models.CatalogService, error)
	CreateSupplier(ctx context.Context, s *models.Supplier) error
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}
