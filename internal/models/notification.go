// server/internal/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotifChangeRequest  NotificationType = "CHANGE_REQUEST"
	NotifWorkDelayed    NotificationType = "WORK_DELAYED"
	NotifLowStock       NotificationType = "LOW_STOCK"
	NotifGeneralMessage NotificationType = "GENERAL_MESSAGE"
)

// Notification is a message delivered to one role-holder. OrderID is empty
// for system-wide alerts (low stock). PartCode is the structured dedup key
// for low-stock alerts. Sender and recipient are weak references: deleting
// a profile leaves the notification in place.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NotificationID string             `bson:"notificationID" json:"notificationID"`
	Type           NotificationType   `bson:"type" json:"type"`
	OrderID        string             `bson:"orderID,omitempty" json:"orderID,omitempty"`
	PartCode       string             `bson:"partCode,omitempty" json:"partCode,omitempty"`
	SenderID       string             `bson:"senderID,omitempty" json:"senderID,omitempty"`
	RecipientID    string             `bson:"recipientID" json:"recipientID"`
	Message        string             `bson:"message" json:"message"`
	Read           bool               `bson:"read" json:"read"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
