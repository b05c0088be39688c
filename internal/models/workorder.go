// server/internal/models/workorder.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderState string

const (
	OrderPending    OrderState = "PENDING"
	OrderInProgress OrderState = "IN_PROGRESS"
	OrderFinished   OrderState = "FINISHED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ServiceItem is a labor line on a work order.
type ServiceItem struct {
	Service string `bson:"service" json:"service"`
	Price   int64  `bson:"price" json:"price"`
}

// PartItem is a spare-part line on a work order. Adding one consumes
// stock through the inventory ledger.
type PartItem struct {
	PartCode  string `bson:"partCode" json:"partCode"`
	Name      string `bson:"name" json:"name"`
	Qty       int    `bson:"qty" json:"qty"`
	UnitPrice int64  `bson:"unitPrice" json:"unitPrice"`
}

// WorkOrder (OT) is the aggregate root for line items, log entries and the
// quality control. Line items are embedded so they live and die with the
// order.
type WorkOrder struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID           string             `bson:"orderID" json:"orderID"` // e.g. "OT-1A2B3C4D"
	ClientRUT         string             `bson:"clientRUT" json:"clientRUT"`
	Plate             string             `bson:"plate" json:"plate"`
	MechanicID        string             `bson:"mechanicID,omitempty" json:"mechanicID,omitempty"`
	ZoneID            string             `bson:"zoneID,omitempty" json:"zoneID,omitempty"`
	State             OrderState         `bson:"state" json:"state"`
	Priority          Priority           `bson:"priority" json:"priority"`
	Waitlisted        bool               `bson:"waitlisted" json:"waitlisted"`
	IntakeDate        time.Time          `bson:"intakeDate" json:"intakeDate"`
	EstimatedDelivery *time.Time         `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time         `bson:"actualDelivery,omitempty" json:"actualDelivery,omitempty"`
	Reason            string             `bson:"reason" json:"reason"`
	Problem           string             `bson:"problem" json:"problem"`
	Observations      string             `bson:"observations,omitempty" json:"observations,omitempty"`
	ServiceItems      []ServiceItem      `bson:"serviceItems,omitempty" json:"serviceItems"`
	PartItems         []PartItem         `bson:"partItems,omitempty" json:"partItems"`
	CreatedBy         string             `bson:"createdBy" json:"createdBy"` // profileID
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TotalServices sums the labor lines.
func (o *WorkOrder) TotalServices() int64 {
	var total int64
	for _, it := range o.ServiceItems {
		total += it.Price
	}
	return total
}

// TotalParts sums qty x unit price over the part lines.
func (o *WorkOrder) TotalParts() int64 {
	var total int64
	for _, it := range o.PartItems {
		total += int64(it.Qty) * it.UnitPrice
	}
	return total
}

// Total is the grand total handed to the report generator.
func (o *WorkOrder) Total() int64 {
	return o.TotalServices() + o.TotalParts()
}

type ProgressState string

const (
	ProgressPending    ProgressState = "PENDING"
	ProgressInProgress ProgressState = "IN_PROGRESS"
	ProgressPaused     ProgressState = "PAUSED"
	ProgressDone       ProgressState = "DONE"
)

// LogEntry is one logbook record written by the assigned mechanic.
// Timestamp is set on creation and never updated.
type LogEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EntryID       string             `bson:"entryID" json:"entryID"`
	OrderID       string             `bson:"orderID" json:"orderID"`
	MechanicID    string             `bson:"mechanicID" json:"mechanicID"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
	Progress      ProgressState      `bson:"progress" json:"progress"`
	Description   string             `bson:"description" json:"description"`
	MinutesSpent  int                `bson:"minutesSpent" json:"minutesSpent"`
	ChangeRequest string             `bson:"changeRequest,omitempty" json:"changeRequest,omitempty"`
}

// TotalLoggedMinutes sums the time reported across log entries.
func TotalLoggedMinutes(entries []LogEntry) int {
	total := 0
	for _, e := range entries {
		total += e.MinutesSpent
	}
	return total
}

// CatalogService is a labor offering with a base price (integer CLP).
type CatalogService struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   int64              `bson:"basePrice" json:"basePrice"`
}
