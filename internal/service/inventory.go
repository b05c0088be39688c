// server/internal/service/inventory.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

// LowStockThreshold is the stock level below which a part raises an
// alert for the shop manager.
const LowStockThreshold = 3

// lowStockDedupWindow suppresses repeat alerts for the same part while a
// recent one is still unread.
const lowStockDedupWindow = 24 * time.Hour

// InventoryService owns the parts ledger: every stock mutation goes
// through Move and leaves a StockMovement record behind.
type InventoryService struct {
	parts     store.PartStore
	movements store.MovementStore
	profiles  store.ProfileStore
	center    *NotificationCenter
	log       *logrus.Logger

	Now func() time.Time
}

func NewInventoryService(parts store.PartStore, movements store.MovementStore, profiles store.ProfileStore, center *NotificationCenter, log *logrus.Logger) *InventoryService {
	return &InventoryService{
		parts:     parts,
		movements: movements,
		profiles:  profiles,
		center:    center,
		log:       log,
		Now:       time.Now,
	}
}

func (s *InventoryService) GetPart(ctx context.Context, code string) (*models.Part, error) {
	p, err := s.parts.GetByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: part %s", ErrNotFound, code)
	}
	return p, err
}

// CheckStock reports whether the part can cover qty units.
func (s *InventoryService) CheckStock(ctx context.Context, code string, qty int) (bool, error) {
	p, err := s.GetPart(ctx, code)
	if err != nil {
		return false, err
	}
	return p.Stock >= qty, nil
}

func (s *InventoryService) CreatePart(ctx context.Context, p *models.Part) error {
	if p.Stock < 0 || p.PriceBuy < 0 || p.PriceSell < 0 {
		return fmt.Errorf("%w: stock and prices must be non-negative", ErrValidation)
	}
	p.Status = p.StatusForStock()
	if p.ReceivedAt.IsZero() {
		p.ReceivedAt = s.Now()
	}
	err := s.parts.Create(ctx, p)
	if errors.Is(err, store.ErrDuplicate) {
		return fmt.Errorf("%w: part %s", ErrDuplicate, p.Code)
	}
	return err
}

func (s *InventoryService) ListParts(ctx context.Context) ([]models.Part, error) {
	return s.parts.List(ctx)
}

// Move applies a stock entry or exit. An OUT move that exceeds the
// available stock fails with ErrInsufficientStock and mutates nothing.
// Dropping below the threshold raises a low-stock alert.
func (s *InventoryService) Move(ctx context.Context, code string, direction models.MovementDirection, qty int, orderID, actor string) (*models.StockMovement, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	delta := qty
	if direction == models.MovementOut {
		delta = -qty
	}

	stockAfter, err := s.parts.AdjustStock(ctx, code, delta)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("%w: part %s", ErrNotFound, code)
	case errors.Is(err, store.ErrInsufficientStock):
		return nil, fmt.Errorf("%w: part %s", ErrInsufficientStock, code)
	case err != nil:
		return nil, err
	}

	movement := &models.StockMovement{
		MovementID: newID("MOV"),
		PartCode:   code,
		Direction:  direction,
		Qty:        qty,
		StockAfter: stockAfter,
		OrderID:    orderID,
		CreatedBy:  actor,
		CreatedAt:  s.Now(),
	}
	if err := s.movements.Record(ctx, movement); err != nil {
		return nil, err
	}

	if direction == models.MovementOut && stockAfter < LowStockThreshold {
		if err := s.RaiseLowStockAlert(ctx, code, stockAfter, actor); err != nil {
			s.log.WithField("partCode", code).WithError(err).Warn("low-stock alert failed")
		}
	}
	return movement, nil
}

func (s *InventoryService) LowStockParts(ctx context.Context) ([]models.Part, error) {
	return s.parts.ListBelowStock(ctx, LowStockThreshold)
}

func (s *InventoryService) Movements(ctx context.Context, code string) ([]models.StockMovement, error) {
	return s.movements.ListByPart(ctx, code)
}

// RaiseLowStockAlert notifies the shop manager about a part running low.
// Suppressed while an unread alert for the same part from the last 24
// hours exists.
func (s *InventoryService) RaiseLowStockAlert(ctx context.Context, code string, stock int, sender string) error {
	since := s.Now().Add(-lowStockDedupWindow)
	exists, err := s.center.notifications.HasRecentLowStockAlert(ctx, code, since)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	manager, err := s.profiles.FirstByRole(ctx, models.RoleShopManager)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: no active shop manager to alert", ErrNotFound)
	}
	if err != nil {
		return err
	}

	return s.center.Notify(ctx, &models.Notification{
		Type:        models.NotifLowStock,
		PartCode:    code,
		SenderID:    sender,
		RecipientID: manager.ProfileID,
		Message:     fmt.Sprintf("Part %s is low on stock (%d left)", code, stock),
	})
}
