// server/internal/models/workorder_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkOrderTotals(t *testing.T) {
	o := WorkOrder{
		ServiceItems: []ServiceItem{
			{Service: "Cambio de aceite", Price: 25000},
			{Service: "Revision general", Price: 20000},
		},
		PartItems: []PartItem{
			{PartCode: "FIL-001", Qty: 2, UnitPrice: 6000},
			{PartCode: "BUJ-001", Qty: 4, UnitPrice: 4500},
		},
	}

	assert.Equal(t, int64(45000), o.TotalServices())
	assert.Equal(t, int64(30000), o.TotalParts())
	assert.Equal(t, o.TotalServices()+o.TotalParts(), o.Total())
}

func TestWorkOrderTotalsEmpty(t *testing.T) {
	var o WorkOrder
	assert.Zero(t, o.TotalServices())
	assert.Zero(t, o.TotalParts())
	assert.Zero(t, o.Total())
}

func TestTotalLoggedMinutes(t *testing.T) {
	entries := []LogEntry{
		{MinutesSpent: 90},
		{MinutesSpent: 30},
		{MinutesSpent: 0},
	}
	assert.Equal(t, 120, TotalLoggedMinutes(entries))
	assert.Zero(t, TotalLoggedMinutes(nil))
}

func TestPartStatusForStock(t *testing.T) {
	p := Part{Stock: 5, Status: PartAvailable}
	assert.Equal(t, PartAvailable, p.StatusForStock())

	p.Stock = 0
	assert.Equal(t, PartOutOfStock, p.StatusForStock())

	p.Status = PartDiscontinued
	p.Stock = 10
	assert.Equal(t, PartDiscontinued, p.StatusForStock())
}
