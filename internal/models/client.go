// server/internal/models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a vehicle owner. Keyed by Chilean RUT (unique, checksum
// validated at the API boundary).
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RUT       string             `bson:"rut" json:"rut"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// VehicleBrand / VehicleModel form the brand-model catalog managed by the
// admin group.
type VehicleBrand struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type VehicleModel struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Brand string             `bson:"brand" json:"brand"`
	Name  string             `bson:"name" json:"name"`
}

// Vehicle belongs to one client. Keyed by plate (unique, format validated).
type Vehicle struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Plate       string             `bson:"plate" json:"plate"`
	ClientRUT   string             `bson:"clientRUT" json:"clientRUT"`
	Brand       string             `bson:"brand" json:"brand"`
	Model       string             `bson:"model" json:"model"`
	Year        int                `bson:"year" json:"year"`
	Odometer    int                `bson:"odometer" json:"odometer"`
	LastService *time.Time         `bson:"lastService,omitempty" json:"lastService,omitempty"`
	BodyDamage  string             `bson:"bodyDamage,omitempty" json:"bodyDamage,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
