// server/internal/models/quality.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QualityResult string

const (
	QualityApproved QualityResult = "APPROVED"
	QualityRejected QualityResult = "REJECTED"
)

// QualityControl is the one-shot final check of a work order. The checklist
// mirrors the paper form used in the shop.
type QualityControl struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID     string             `bson:"orderID" json:"orderID"`
	Result      QualityResult      `bson:"result" json:"result"`
	Responsible string             `bson:"responsible" json:"responsible"` // profileID of the shop manager
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	RoadTestOK         bool `bson:"roadTestOK" json:"roadTestOK"`
	FluidsChecked      bool `bson:"fluidsChecked" json:"fluidsChecked"`
	LightsElectricalOK bool `bson:"lightsElectricalOK" json:"lightsElectricalOK"`
	ToolsRemoved       bool `bson:"toolsRemoved" json:"toolsRemoved"`
	VehicleClean       bool `bson:"vehicleClean" json:"vehicleClean"`
}
