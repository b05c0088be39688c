// server/internal/service/orders_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

func TestIntakeCreatesPendingOrder(t *testing.T) {
	f := newFixture(t)
	order := f.intake(t, "ABCD12")

	assert.Equal(t, models.OrderPending, order.State)
	assert.False(t, order.Waitlisted)
	assert.Equal(t, "123456785", order.ClientRUT) // normalized
	assert.Equal(t, "ABCD12", order.Plate)
	assert.Equal(t, models.PriorityMedium, order.Priority)
}

func TestIntakeRejectsBadRUTAndPlate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.Intake(ctx, IntakeInput{
		ClientRUT: "12345678-9", // wrong check digit
		Plate:     "ABCD12",
		Reason:    "x",
	}, f.receptionistID)
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.orders.Intake(ctx, IntakeInput{
		ClientRUT: "12345678-5",
		Plate:     "ABC123", // neither format
		Reason:    "x",
	}, f.receptionistID)
	require.ErrorIs(t, err, ErrValidation)
}

func TestIntakeRejectsDuplicatePlate(t *testing.T) {
	f := newFixture(t)
	f.intake(t, "ABCD12")

	_, err := f.orders.Intake(context.Background(), IntakeInput{
		ClientRUT:  "12345678-5",
		ClientName: "Maria Perez",
		Plate:      "ABCD12",
		Reason:     "Otra visita",
	}, f.receptionistID)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestIntakeWaitlistsWhenAllZonesFull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Inactive zones must not count as free capacity.
	require.NoError(t, f.zones.Create(ctx, &models.WorkZone{
		ZoneID: "zone-inactive", Name: "Cerrada", Capacity: 5, Active: false,
	}))

	// Fill the only active zone (capacity 5).
	plates := []string{"AB1234", "CD5678", "EF9012", "GH3456", "IJ7890"}
	for _, plate := range plates {
		o := f.intake(t, plate)
		f.assign(t, o.OrderID)
	}

	waitlisted := f.intake(t, "KL1357")
	assert.True(t, waitlisted.Waitlisted)
	assert.Equal(t, models.OrderPending, waitlisted.State)
}

func TestAssignRejectsEarlierEstimatedDateUnmutated(t *testing.T) {
	f := newFixture(t)
	order := f.intake(t, "ABCD12")

	_, err := f.orders.Assign(context.Background(), order.OrderID, f.mechanicID, "zone-1", f.now.Add(-time.Hour), f.managerID)
	require.ErrorIs(t, err, ErrInvalidDate)

	// The stored order must be untouched.
	stored, err := f.orders.Get(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, stored.State)
	assert.Empty(t, stored.MechanicID)
	assert.Nil(t, stored.EstimatedDelivery)
}

func TestAssignMovesToInProgressAndNotifiesMechanic(t *testing.T) {
	f := newFixture(t)
	order := f.intake(t, "ABCD12")

	assigned := f.assign(t, order.OrderID)
	assert.Equal(t, models.OrderInProgress, assigned.State)
	assert.Equal(t, f.mechanicID, assigned.MechanicID)
	assert.Equal(t, "zone-1", assigned.ZoneID)
	assert.False(t, assigned.Waitlisted)

	mechNotifs := f.notificationsFor(t, f.mechProfileID)
	require.Len(t, mechNotifs, 1)
	assert.Contains(t, mechNotifs[0].Message, order.OrderID)

	// The receptionist hears about the state change.
	recNotifs := f.notificationsFor(t, f.receptionistID)
	require.Len(t, recNotifs, 1)
	assert.Contains(t, recNotifs[0].Message, "PENDING")
	assert.Contains(t, recNotifs[0].Message, "IN_PROGRESS")
}

func TestAssignRequiresPendingState(t *testing.T) {
	f := newFixture(t)
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.orders.Assign(context.Background(), order.OrderID, f.mechanicID, "zone-1", f.now.Add(time.Hour), f.managerID)
	require.ErrorIs(t, err, ErrGuardViolation)
}

func TestRecordLogOnlyByAssignedMechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	// A second mechanic with a profile of their own.
	other := &models.UserProfile{
		ProfileID: newID("USR"), Username: "otro", Role: models.RoleMechanic,
		Status: "active", CreatedAt: f.now,
	}
	require.NoError(t, f.profiles.Create(ctx, other))
	require.NoError(t, f.mechanics.Create(ctx, &models.Mechanic{
		MechanicID: newID("MEC"), ProfileID: other.ProfileID, Name: "otro", Specialty: "brakes",
	}))

	_, err := f.orders.RecordLog(ctx, order.OrderID, other.ProfileID, models.ProgressInProgress, "ajuste", 30, "")
	require.ErrorIs(t, err, ErrGuardViolation)

	entry, err := f.orders.RecordLog(ctx, order.OrderID, f.mechProfileID, models.ProgressInProgress, "ajuste de frenos", 45, "")
	require.NoError(t, err)
	assert.Equal(t, 45, entry.MinutesSpent)
	assert.Equal(t, f.mechanicID, entry.MechanicID)
}

func TestRecordLogReachesManager(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.orders.RecordLog(ctx, order.OrderID, f.mechProfileID, models.ProgressInProgress, "cambio de bujías", 30, "")
	require.NoError(t, err)

	// A plain entry, with no change request, still reaches the manager.
	notifs := f.notificationsFor(t, f.managerID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotifGeneralMessage, notifs[0].Type)
	assert.Contains(t, notifs[0].Message, "bujías")
}

func TestRecordLogChangeRequestReachesManager(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.orders.RecordLog(ctx, order.OrderID, f.mechProfileID, models.ProgressPaused, "esperando repuesto", 10, "se requiere cambio de amortiguadores")
	require.NoError(t, err)

	// The log entry itself plus the change request.
	notifs := f.notificationsFor(t, f.managerID)
	require.Len(t, notifs, 2)
	assert.Equal(t, models.NotifGeneralMessage, notifs[0].Type)
	assert.Equal(t, models.NotifChangeRequest, notifs[1].Type)
	assert.Contains(t, notifs[1].Message, "amortiguadores")
}

func TestQualityCheckApprovedFinishesOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	finished, err := f.orders.QualityCheck(ctx, order.OrderID, f.managerID, QualityInput{
		Result: models.QualityApproved, RoadTestOK: true, FluidsChecked: true,
		LightsElectricalOK: true, ToolsRemoved: true, VehicleClean: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderFinished, finished.State)
	require.NotNil(t, finished.ActualDelivery)
	assert.Equal(t, f.now, *finished.ActualDelivery)

	// Receptionist gets state change + pickup notice.
	recNotifs := f.notificationsFor(t, f.receptionistID)
	assert.Len(t, recNotifs, 3) // assign transition, QC transition, finished

	// The mechanic hears the verdict either way.
	mechNotifs := f.notificationsFor(t, f.mechProfileID)
	require.Len(t, mechNotifs, 2) // assignment + approval
	assert.Contains(t, mechNotifs[1].Message, "passed quality control")
}

func TestQualityCheckRejectedReturnsToPendingAndNotifiesMechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	rejected, err := f.orders.QualityCheck(ctx, order.OrderID, f.managerID, QualityInput{
		Result: models.QualityRejected, Notes: "frenos siguen chillando",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, rejected.State)
	assert.Nil(t, rejected.ActualDelivery)

	mechNotifs := f.notificationsFor(t, f.mechProfileID)
	require.Len(t, mechNotifs, 2) // assignment + rejection
	assert.Contains(t, mechNotifs[1].Message, "rejected")
}

func TestQualityCheckIsOneShot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.orders.QualityCheck(ctx, order.OrderID, f.managerID, QualityInput{Result: models.QualityRejected})
	require.NoError(t, err)

	// Reassign and try a second check: the guard must hold.
	f.assign(t, order.OrderID)
	_, err = f.orders.QualityCheck(ctx, order.OrderID, f.managerID, QualityInput{Result: models.QualityApproved})
	require.ErrorIs(t, err, ErrGuardViolation)
}

func TestDetectDelaysFlagsOnceEver(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID) // estimated = now + 48h

	// Not yet due.
	delayed, err := f.orders.DetectDelays(ctx)
	require.NoError(t, err)
	assert.Empty(t, delayed)

	f.advance(72 * time.Hour)
	delayed, err = f.orders.DetectDelays(ctx)
	require.NoError(t, err)
	require.Len(t, delayed, 1)
	assert.Equal(t, order.OrderID, delayed[0].OrderID)

	managerNotifs := f.notificationsFor(t, f.managerID)
	require.Len(t, managerNotifs, 1)
	assert.Equal(t, models.NotifWorkDelayed, managerNotifs[0].Type)

	// A second scan never re-flags the same order.
	f.advance(24 * time.Hour)
	delayed, err = f.orders.DetectDelays(ctx)
	require.NoError(t, err)
	assert.Empty(t, delayed)
	assert.Len(t, f.notificationsFor(t, f.managerID), 1)
}

func TestAddPartItemConsumesStockAndPricesAtSell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "FIL-001", 10)
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	updated, err := f.orders.AddPartItem(ctx, order.OrderID, "FIL-001", 2, f.managerID)
	require.NoError(t, err)
	require.Len(t, updated.PartItems, 1)
	assert.Equal(t, int64(2000), updated.PartItems[0].UnitPrice)
	assert.Equal(t, int64(4000), updated.TotalParts())

	part, err := f.inventory.GetPart(ctx, "FIL-001")
	require.NoError(t, err)
	assert.Equal(t, 8, part.Stock)
}

func TestAddPartItemInsufficientStockLeavesOrderUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "FIL-001", 1)
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.orders.AddPartItem(ctx, order.OrderID, "FIL-001", 5, f.managerID)
	require.ErrorIs(t, err, ErrInsufficientStock)

	stored, err := f.orders.Get(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Empty(t, stored.PartItems)

	part, err := f.inventory.GetPart(ctx, "FIL-001")
	require.NoError(t, err)
	assert.Equal(t, 1, part.Stock)
}

func TestAddServiceItemUsesCatalogBasePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.catalog.CreateService(ctx, &models.CatalogService{
		Name: "Cambio de aceite", BasePrice: 25000,
	}))
	order := f.intake(t, "ABCD12")

	updated, err := f.orders.AddServiceItem(ctx, order.OrderID, "Cambio de aceite", 0)
	require.NoError(t, err)
	require.Len(t, updated.ServiceItems, 1)
	assert.Equal(t, int64(25000), updated.ServiceItems[0].Price)
}

func TestReportTotalsIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "FIL-001", 10)
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.orders.AddServiceItem(ctx, order.OrderID, "Revision", 20000)
	require.NoError(t, err)
	_, err = f.orders.AddPartItem(ctx, order.OrderID, "FIL-001", 3, f.managerID)
	require.NoError(t, err)
	_, err = f.orders.RecordLog(ctx, order.OrderID, f.mechProfileID, models.ProgressInProgress, "trabajo", 90, "")
	require.NoError(t, err)
	_, err = f.orders.RecordLog(ctx, order.OrderID, f.mechProfileID, models.ProgressDone, "listo", 30, "")
	require.NoError(t, err)

	report, err := f.orders.Report(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), report.TotalServices)
	assert.Equal(t, int64(6000), report.TotalParts)
	assert.Equal(t, report.TotalServices+report.TotalParts, report.Total)
	assert.Equal(t, 120, report.LoggedMinutes)
	assert.Len(t, report.LogEntries, 2)
}

func TestListForMechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)
	f.intake(t, "EF5678") // unassigned

	mine, err := f.orders.ListForMechanic(ctx, f.mechProfileID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.OrderID, mine[0].OrderID)

	pending, err := f.orders.List(ctx, store.OrderFilter{State: models.OrderPending})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
