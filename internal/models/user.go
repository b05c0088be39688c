// server/internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role identifies what a profile is allowed to do. Every profile carries
// exactly one role; there is no re-role workflow.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleReceptionist     Role = "RECEPTIONIST"
	RoleShopManager      Role = "SHOP_MANAGER"
	RoleMechanic         Role = "MECHANIC"
	RoleWarehouseManager Role = "WAREHOUSE_MANAGER"
)

// UserProfile is the identity record every operation runs under.
type UserProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID string             `bson:"profileID" json:"profileID"` // e.g. "USR-1A2B3C4D"
	Username  string             `bson:"username" json:"username"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"` // "active", "disabled"
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
