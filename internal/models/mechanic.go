// server/internal/models/mechanic.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Specialty of a mechanic: engine, transmission, brakes, suspension,
// exhaust, electrical, electronic, fuel, general.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Mechanic is a workshop resource, referenced by work orders and tools.
// ProfileID links it to the login identity; the link is set at
// registration, never inferred from the display name.
type Mechanic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MechanicID  string             `bson:"mechanicID" json:"mechanicID"` // e.g. "MEC-1A2B3C4D"
	ProfileID   string             `bson:"profileID" json:"profileID"`
	Name        string             `bson:"name" json:"name"`
	RUT         string             `bson:"rut,omitempty" json:"rut,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialty   string             `bson:"specialty" json:"specialty"`
	HelperCount int                `bson:"helperCount" json:"helperCount"` // 0..2
}
