// server/internal/store/memory_notifications.go
package store

import (
	"context"
	"sync"
	"time"

	"taller-api-server/internal/models"
)

type MemoryNotificationStore struct {
	mu            sync.RWMutex
	notifications []models.Notification
}

func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{}
}

func (s *MemoryNotificationStore) Create(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *MemoryNotificationStore) ListByRecipient(_ context.Context, profileID string) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if n.RecipientID == profileID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *MemoryNotificationStore) MarkRead(_ context.Context, notificationID, recipientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].NotificationID == notificationID && s.notifications[i].RecipientID == recipientID {
			s.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryNotificationStore) HasRecentLowStockAlert(_ context.Context, partCode string, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notifications {
		if n.Type == models.NotifLowStock && n.PartCode == partCode && !n.Read && !n.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryNotificationStore) HasDelayAlert(_ context.Context, orderID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notifications {
		if n.Type == models.NotifWorkDelayed && n.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}
