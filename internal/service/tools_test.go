// server/internal/service/tools_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller-api-server/internal/models"
)

func seedTool(t *testing.T, f *fixture, code string) {
	t.Helper()
	require.NoError(t, f.tools.CreateTool(context.Background(), &models.Tool{
		Code: code, Name: "Tool " + code,
	}))
}

func TestCheckoutSetsCustodianAndOpensUsage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedTool(t, f, "TOR-001")
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	tool, err := f.tools.Checkout(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolInMaintenance, tool.Status)
	assert.Equal(t, f.mechanicID, tool.CustodianID)

	usage, err := f.toolStore.OpenUsageByTool(ctx, "TOR-001")
	require.NoError(t, err)
	assert.Equal(t, f.mechanicID, usage.MechanicID)
	assert.Equal(t, order.OrderID, usage.OrderID)
	assert.Nil(t, usage.CheckinTime)
}

func TestCheckoutWithoutActiveOrderRecordsCustodyOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedTool(t, f, "TOR-001")

	tool, err := f.tools.Checkout(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolInMaintenance, tool.Status)
	assert.Equal(t, f.mechanicID, tool.CustodianID)

	// Bench work opens no usage record.
	_, err = f.toolStore.OpenUsageByTool(ctx, "TOR-001")
	require.Error(t, err)
}

func TestCheckoutRejectsUnavailableTool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedTool(t, f, "TOR-001")

	_, err := f.tools.Checkout(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)

	// A second mechanic cannot take it while checked out.
	other := &models.UserProfile{
		ProfileID: newID("USR"), Username: "otro", Role: models.RoleMechanic,
		Status: "active", CreatedAt: f.now,
	}
	require.NoError(t, f.profiles.Create(ctx, other))
	require.NoError(t, f.mechanics.Create(ctx, &models.Mechanic{
		MechanicID: newID("MEC"), ProfileID: other.ProfileID, Name: "otro", Specialty: "brakes",
	}))

	_, err = f.tools.Checkout(ctx, "TOR-001", other.ProfileID)
	require.ErrorIs(t, err, ErrToolUnavailable)
}

func TestCheckinOnlyByCustodian(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedTool(t, f, "TOR-001")
	order := f.intake(t, "ABCD12")
	f.assign(t, order.OrderID)

	_, err := f.tools.Checkout(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)

	other := &models.UserProfile{
		ProfileID: newID("USR"), Username: "otro", Role: models.RoleMechanic,
		Status: "active", CreatedAt: f.now,
	}
	require.NoError(t, f.profiles.Create(ctx, other))
	require.NoError(t, f.mechanics.Create(ctx, &models.Mechanic{
		MechanicID: newID("MEC"), ProfileID: other.ProfileID, Name: "otro", Specialty: "brakes",
	}))

	_, err = f.tools.Checkin(ctx, "TOR-001", other.ProfileID)
	require.ErrorIs(t, err, ErrNotCustodian)

	tool, err := f.tools.Checkin(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolOperational, tool.Status)
	assert.Empty(t, tool.CustodianID)
	require.NotNil(t, tool.LastMaintenance)

	// The usage is closed.
	_, err = f.toolStore.OpenUsageByTool(ctx, "TOR-001")
	require.Error(t, err)
}

func TestCheckinOfIdleToolIsNoOp(t *testing.T) {
	f := newFixture(t)
	seedTool(t, f, "TOR-001")

	tool, err := f.tools.Checkin(context.Background(), "TOR-001", f.mechProfileID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolOperational, tool.Status)
	assert.Empty(t, tool.CustodianID)
	assert.Nil(t, tool.LastMaintenance)
}

func TestCheckoutAfterCheckinSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedTool(t, f, "TOR-001")

	_, err := f.tools.Checkout(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)
	_, err = f.tools.Checkin(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)
	_, err = f.tools.Checkout(ctx, "TOR-001", f.mechProfileID)
	require.NoError(t, err)
}
