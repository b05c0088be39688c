// server/internal/service/helpers_test.go
package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"taller-api-server/internal/events"
	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

// fixture wires the services over in-memory stores with the full reactor
// fan-out, so tests can assert both state transitions and the
// notifications they produce.
type fixture struct {
	orders    *OrderService
	inventory *InventoryService
	tools     *ToolService
	center    *NotificationCenter

	orderStore store.OrderStore
	partStore  store.PartStore
	toolStore  store.ToolStore
	notifStore store.NotificationStore

	profiles  *store.MemoryProfileStore
	mechanics *store.MemoryMechanicStore
	zones     *store.MemoryZoneStore
	catalog   *store.MemoryCatalogStore

	now time.Time

	managerID      string
	receptionistID string
	mechProfileID  string
	mechanicID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	profiles := store.NewMemoryProfileStore()
	mechanics := store.NewMemoryMechanicStore()
	clients := store.NewMemoryClientStore()
	vehicles := store.NewMemoryVehicleStore()
	zones := store.NewMemoryZoneStore()
	catalog := store.NewMemoryCatalogStore()
	orders := store.NewMemoryOrderStore()
	logs := store.NewMemoryLogStore()
	quality := store.NewMemoryQualityStore()
	parts := store.NewMemoryPartStore()
	movements := store.NewMemoryMovementStore()
	tools := store.NewMemoryToolStore()
	notifications := store.NewMemoryNotificationStore()

	f := &fixture{
		orderStore: orders,
		partStore:  parts,
		toolStore:  tools,
		notifStore: notifications,
		profiles:   profiles,
		mechanics:  mechanics,
		zones:      zones,
		catalog:    catalog,
		now:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	ctx := context.Background()
	seed := []struct {
		username string
		role     models.Role
		idTarget *string
	}{
		{"jefe", models.RoleShopManager, &f.managerID},
		{"recepcion", models.RoleReceptionist, &f.receptionistID},
		{"mecanico", models.RoleMechanic, &f.mechProfileID},
	}
	for _, u := range seed {
		profile := &models.UserProfile{
			ProfileID: newID("USR"),
			Username:  u.username,
			Name:      u.username,
			Role:      u.role,
			Status:    "active",
			CreatedAt: f.now,
		}
		require.NoError(t, profiles.Create(ctx, profile))
		*u.idTarget = profile.ProfileID
	}

	mechanic := &models.Mechanic{
		MechanicID: newID("MEC"),
		ProfileID:  f.mechProfileID,
		Name:       "mecanico",
		Specialty:  "engine",
	}
	require.NoError(t, mechanics.Create(ctx, mechanic))
	f.mechanicID = mechanic.MechanicID

	require.NoError(t, zones.Create(ctx, &models.WorkZone{
		ZoneID: "zone-1", Name: "Zona 1", Capacity: 5, Active: true,
	}))

	center := NewNotificationCenter(notifications, nil, nil, log)
	center.Now = func() time.Time { return f.now }
	f.center = center

	dispatcher := events.NewDispatcher(log)
	dispatcher.Subscribe(events.NewMechanicReactor(mechanics, center))
	dispatcher.Subscribe(events.NewShopManagerReactor(profiles, center))
	dispatcher.Subscribe(events.NewReceptionistReactor(profiles, center))

	f.inventory = NewInventoryService(parts, movements, profiles, center, log)
	f.inventory.Now = func() time.Time { return f.now }

	f.orders = NewOrderService(orders, logs, quality, clients, vehicles, zones, mechanics, catalog, notifications, f.inventory, dispatcher, log)
	f.orders.Now = func() time.Time { return f.now }

	f.tools = NewToolService(tools, mechanics, orders, log)
	f.tools.Now = func() time.Time { return f.now }

	return f
}

// advance moves the fixture clock; every service shares it.
func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) intake(t *testing.T, plate string) *models.WorkOrder {
	t.Helper()
	order, err := f.orders.Intake(context.Background(), IntakeInput{
		ClientRUT:  "12345678-5",
		ClientName: "Maria Perez",
		Plate:      plate,
		Brand:      "Toyota",
		Model:      "Corolla",
		Reason:     "Ruido en frenos",
	}, f.receptionistID)
	require.NoError(t, err)
	return order
}

func (f *fixture) assign(t *testing.T, orderID string) *models.WorkOrder {
	t.Helper()
	order, err := f.orders.Assign(context.Background(), orderID, f.mechanicID, "zone-1", f.now.Add(48*time.Hour), f.managerID)
	require.NoError(t, err)
	return order
}

func (f *fixture) seedPart(t *testing.T, code string, stock int) {
	t.Helper()
	require.NoError(t, f.partStore.Create(context.Background(), &models.Part{
		Code:      code,
		Name:      "Part " + code,
		Stock:     stock,
		PriceBuy:  1000,
		PriceSell: 2000,
		Status:    models.PartAvailable,
	}))
}

func (f *fixture) notificationsFor(t *testing.T, profileID string) []models.Notification {
	t.Helper()
	out, err := f.notifStore.ListByRecipient(context.Background(), profileID)
	require.NoError(t, err)
	return out
}
