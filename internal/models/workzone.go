// server/internal/models/workzone.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WorkZone is a physical bay group. The shop has 4 zones, 5 cars each.
type WorkZone struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ZoneID   string             `bson:"zoneID" json:"zoneID"` // e.g. "zone-1"
	Name     string             `bson:"name" json:"name"`
	Capacity int                `bson:"capacity" json:"capacity"`
	Active   bool               `bson:"active" json:"active"`
}
