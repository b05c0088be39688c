// server/internal/service/notifications.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

// Pusher is the realtime side of notification delivery. Satisfied by the
// websocket hub.
type Pusher interface {
	Send(profileID string, message []byte) error
}

// Forwarder is the outbound webhook side. Satisfied by webhook.Notifier.
type Forwarder interface {
	Enabled() bool
	Forward(ctx context.Context, n *models.Notification) error
}

// NotificationCenter persists notifications and delivers them over the
// websocket hub and the outbound webhook. Persistence is the only step
// that can fail the call; pushes are best-effort.
type NotificationCenter struct {
	notifications store.NotificationStore
	pusher        Pusher
	forwarder     Forwarder
	log           *logrus.Logger

	// Now is swappable for tests.
	Now func() time.Time
}

func NewNotificationCenter(notifications store.NotificationStore, pusher Pusher, forwarder Forwarder, log *logrus.Logger) *NotificationCenter {
	return &NotificationCenter{
		notifications: notifications,
		pusher:        pusher,
		forwarder:     forwarder,
		log:           log,
		Now:           time.Now,
	}
}

// Notify fills in the ID and timestamp, persists the notification and
// fans it out. Implements events.Sink.
func (c *NotificationCenter) Notify(ctx context.Context, n *models.Notification) error {
	if n.NotificationID == "" {
		n.NotificationID = newID("NTF")
	}
	n.CreatedAt = c.Now()

	if err := c.notifications.Create(ctx, n); err != nil {
		return err
	}

	if c.pusher != nil {
		payload, err := json.Marshal(n)
		if err == nil {
			if err := c.pusher.Send(n.RecipientID, payload); err != nil {
				c.log.WithField("recipientID", n.RecipientID).WithError(err).Warn("websocket push failed")
			}
		}
	}
	if c.forwarder != nil && c.forwarder.Enabled() {
		if err := c.forwarder.Forward(ctx, n); err != nil {
			c.log.WithField("notificationID", n.NotificationID).WithError(err).Warn("webhook forward failed")
		}
	}
	return nil
}

func (c *NotificationCenter) ListForRecipient(ctx context.Context, profileID string) ([]models.Notification, error) {
	return c.notifications.ListByRecipient(ctx, profileID)
}

func (c *NotificationCenter) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	err := c.notifications.MarkRead(ctx, notificationID, recipientID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
