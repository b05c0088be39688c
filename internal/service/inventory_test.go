// server/internal/service/inventory_test.go
package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller-api-server/internal/models"
)

func TestMoveInAndOutKeepsLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "FIL-001", 5)

	in, err := f.inventory.Move(ctx, "FIL-001", models.MovementIn, 10, "", f.managerID)
	require.NoError(t, err)
	assert.Equal(t, 15, in.StockAfter)

	out, err := f.inventory.Move(ctx, "FIL-001", models.MovementOut, 4, "OT-X", f.managerID)
	require.NoError(t, err)
	assert.Equal(t, 11, out.StockAfter)
	assert.Equal(t, "OT-X", out.OrderID)

	movements, err := f.inventory.Movements(ctx, "FIL-001")
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, models.MovementIn, movements[0].Direction)
	assert.Equal(t, models.MovementOut, movements[1].Direction)
}

func TestMoveOutNeverGoesNegative(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "FIL-001", 2)

	ok, err := f.inventory.CheckStock(ctx, "FIL-001", 5)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.inventory.Move(ctx, "FIL-001", models.MovementOut, 5, "", f.managerID)
	require.ErrorIs(t, err, ErrInsufficientStock)

	part, err := f.inventory.GetPart(ctx, "FIL-001")
	require.NoError(t, err)
	assert.Equal(t, 2, part.Stock)

	// No ledger entry for the failed move.
	movements, err := f.inventory.Movements(ctx, "FIL-001")
	require.NoError(t, err)
	assert.Empty(t, movements)

	// Draining to exactly zero is allowed.
	_, err = f.inventory.Move(ctx, "FIL-001", models.MovementOut, 2, "", f.managerID)
	require.NoError(t, err)
	part, err = f.inventory.GetPart(ctx, "FIL-001")
	require.NoError(t, err)
	assert.Equal(t, 0, part.Stock)
	assert.Equal(t, models.PartOutOfStock, part.Status)
}

func TestConcurrentMovesNeverOversell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "FIL-001", 5)

	var wg sync.WaitGroup
	okCount := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.inventory.Move(ctx, "FIL-001", models.MovementOut, 1, "", f.managerID)
			okCount <- err == nil
		}()
	}
	wg.Wait()
	close(okCount)

	succeeded := 0
	for ok := range okCount {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 5, succeeded)

	part, err := f.inventory.GetPart(ctx, "FIL-001")
	require.NoError(t, err)
	assert.Equal(t, 0, part.Stock)
	assert.Equal(t, models.PartOutOfStock, part.Status)
}

func TestMoveRejectsNonPositiveQty(t *testing.T) {
	f := newFixture(t)
	f.seedPart(t, "FIL-001", 5)

	_, err := f.inventory.Move(context.Background(), "FIL-001", models.MovementOut, 0, "", f.managerID)
	require.ErrorIs(t, err, ErrValidation)
	_, err = f.inventory.Move(context.Background(), "FIL-001", models.MovementOut, -2, "", f.managerID)
	require.ErrorIs(t, err, ErrValidation)
}

func TestLowStockAlertRaisedBelowThreshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "COR-001", 3)

	_, err := f.inventory.Move(ctx, "COR-001", models.MovementOut, 1, "", f.managerID)
	require.NoError(t, err)

	notifs := f.notificationsFor(t, f.managerID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotifLowStock, notifs[0].Type)
	assert.Equal(t, "COR-001", notifs[0].PartCode)
	assert.Equal(t, f.managerID, notifs[0].SenderID) // whoever moved the stock

	low, err := f.inventory.LowStockParts(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "COR-001", low[0].Code)
}

func TestLowStockAlertDedupWithin24h(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "COR-001", 3)

	_, err := f.inventory.Move(ctx, "COR-001", models.MovementOut, 1, "", f.managerID)
	require.NoError(t, err)
	_, err = f.inventory.Move(ctx, "COR-001", models.MovementOut, 1, "", f.managerID)
	require.NoError(t, err)
	assert.Len(t, f.notificationsFor(t, f.managerID), 1)

	// After the window a fresh alert goes out.
	f.advance(25 * time.Hour)
	_, err = f.inventory.Move(ctx, "COR-001", models.MovementOut, 1, "", f.managerID)
	require.NoError(t, err)
	assert.Len(t, f.notificationsFor(t, f.managerID), 2)
}

func TestLowStockAlertPerPartDedupKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPart(t, "COR-001", 3)
	f.seedPart(t, "AMO-001", 3)

	_, err := f.inventory.Move(ctx, "COR-001", models.MovementOut, 1, "", f.managerID)
	require.NoError(t, err)
	_, err = f.inventory.Move(ctx, "AMO-001", models.MovementOut, 1, "", f.managerID)
	require.NoError(t, err)

	// One alert per part; the dedup key is the part, not the type.
	assert.Len(t, f.notificationsFor(t, f.managerID), 2)
}

func TestCreatePartValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.inventory.CreatePart(ctx, &models.Part{Code: "X-001", Name: "x", Stock: -1})
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, f.inventory.CreatePart(ctx, &models.Part{Code: "X-001", Name: "x", Stock: 0}))
	part, err := f.inventory.GetPart(ctx, "X-001")
	require.NoError(t, err)
	assert.Equal(t, models.PartOutOfStock, part.Status)

	err = f.inventory.CreatePart(ctx, &models.Part{Code: "X-001", Name: "x"})
	require.ErrorIs(t, err, ErrDuplicate)
}
