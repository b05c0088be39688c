// server/internal/models/part.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PartStatus string

const (
	PartAvailable    PartStatus = "AVAILABLE"
	PartOutOfStock   PartStatus = "OUT_OF_STOCK"
	PartDiscontinued PartStatus = "DISCONTINUED"
)

// Part is a spare part held in the warehouse. Prices are integer CLP.
type Part struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code          string             `bson:"code" json:"code"` // e.g. "FIL-001"
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Brand         string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Compatibility string             `bson:"compatibility,omitempty" json:"compatibility,omitempty"`
	Stock         int                `bson:"stock" json:"stock"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"` // warehouse shelf
	PriceBuy      int64              `bson:"priceBuy" json:"priceBuy"`
	PriceSell     int64              `bson:"priceSell" json:"priceSell"`
	SupplierID    string             `bson:"supplierID,omitempty" json:"supplierID,omitempty"`
	Status        PartStatus         `bson:"status" json:"status"`
	ReceivedAt    time.Time          `bson:"receivedAt" json:"receivedAt"`
}

// StatusForStock derives the part status from its stock level. A
// discontinued part stays discontinued regardless of stock.
func (p *Part) StatusForStock() PartStatus {
	if p.Status == PartDiscontinued {
		return PartDiscontinued
	}
	if p.Stock == 0 {
		return PartOutOfStock
	}
	return PartAvailable
}

type Supplier struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SupplierID string             `bson:"supplierID" json:"supplierID"`
	Name       string             `bson:"name" json:"name"`
	RUT        string             `bson:"rut,omitempty" json:"rut,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
}

type MovementDirection string

const (
	MovementIn  MovementDirection = "IN"
	MovementOut MovementDirection = "OUT"
)

// StockMovement is the ledger entry written for every stock mutation.
type StockMovement struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovementID string             `bson:"movementID" json:"movementID"`
	PartCode   string             `bson:"partCode" json:"partCode"`
	Direction  MovementDirection  `bson:"direction" json:"direction"`
	Qty        int                `bson:"qty" json:"qty"`
	StockAfter int                `bson:"stockAfter" json:"stockAfter"`
	OrderID    string             `bson:"orderID,omitempty" json:"orderID,omitempty"`
	CreatedBy  string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
