// server/internal/models/tool.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ToolStatus string

const (
	ToolOperational   ToolStatus = "OPERATIONAL"
	ToolInMaintenance ToolStatus = "IN_MAINTENANCE"
	ToolOutOfService  ToolStatus = "OUT_OF_SERVICE"
)

// Tool is a shared workshop tool. CustodianID is set iff the tool is
// checked out (IN_MAINTENANCE).
type Tool struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code            string             `bson:"code" json:"code"` // e.g. "TOR-001"
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Brand           string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	Status          ToolStatus         `bson:"status" json:"status"`
	CustodianID     string             `bson:"custodianID,omitempty" json:"custodianID,omitempty"` // mechanicID
	AcquiredAt      time.Time          `bson:"acquiredAt" json:"acquiredAt"`
	LastMaintenance *time.Time         `bson:"lastMaintenance,omitempty" json:"lastMaintenance,omitempty"`
}

// ToolUsage records one checkout/checkin cycle of a tool against a work
// order. At most one open usage (CheckinTime == nil) may exist per tool.
type ToolUsage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UsageID      string             `bson:"usageID" json:"usageID"`
	ToolCode     string             `bson:"toolCode" json:"toolCode"`
	OrderID      string             `bson:"orderID" json:"orderID"`
	MechanicID   string             `bson:"mechanicID" json:"mechanicID"`
	CheckoutTime time.Time          `bson:"checkoutTime" json:"checkoutTime"`
	// CheckinTime marshals as an explicit null while open so the partial
	// unique index on open usages can match it.
	CheckinTime *time.Time `bson:"checkinTime" json:"checkinTime"`
}
