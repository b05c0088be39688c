// server/internal/service/tools.go
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

// ToolService tracks custody of shared workshop tools. Checkout marks
// the tool IN_MAINTENANCE under the borrowing mechanic; checkin releases
// it. The store enforces at most one open usage per tool.
type ToolService struct {
	tools     store.ToolStore
	mechanics store.MechanicStore
	orders    store.OrderStore
	log       *logrus.Logger

	Now func() time.Time
}

func NewToolService(tools store.ToolStore, mechanics store.MechanicStore, orders store.OrderStore, log *logrus.Logger) *ToolService {
	return &ToolService{
		tools:     tools,
		mechanics: mechanics,
		orders:    orders,
		log:       log,
		Now:       time.Now,
	}
}

func (s *ToolService) CreateTool(ctx context.Context, t *models.Tool) error {
	if t.Status == "" {
		t.Status = models.ToolOperational
	}
	if t.AcquiredAt.IsZero() {
		t.AcquiredAt = s.Now()
	}
	err := s.tools.Create(ctx, t)
	if errors.Is(err, store.ErrDuplicate) {
		return fmt.Errorf("%w: tool %s", ErrDuplicate, t.Code)
	}
	return err
}

func (s *ToolService) ListTools(ctx context.Context) ([]models.Tool, error) {
	return s.tools.List(ctx)
}

func (s *ToolService) GetTool(ctx context.Context, code string) (*models.Tool, error) {
	t, err := s.tools.GetByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: tool %s", ErrNotFound, code)
	}
	return t, err
}

// Checkout hands an OPERATIONAL tool to the mechanic behind the calling
// profile. The usage is recorded against the mechanic's active
// IN_PROGRESS order when one exists.
func (s *ToolService) Checkout(ctx context.Context, toolCode, actorProfileID string) (*models.Tool, error) {
	mechanic, err := s.mechanics.GetByProfileID(ctx, actorProfileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: no mechanic linked to profile %s", ErrNotFound, actorProfileID)
	}
	if err != nil {
		return nil, err
	}

	tool, err := s.GetTool(ctx, toolCode)
	if err != nil {
		return nil, err
	}
	if tool.Status != models.ToolOperational {
		return nil, fmt.Errorf("%w: tool %s is %s", ErrToolUnavailable, toolCode, tool.Status)
	}

	// A usage record belongs to an order. Bench work without an active
	// order records custody on the tool alone.
	if orderID := s.activeOrderID(ctx, mechanic.MechanicID); orderID != "" {
		usage := &models.ToolUsage{
			UsageID:      newID("USE"),
			ToolCode:     tool.Code,
			OrderID:      orderID,
			MechanicID:   mechanic.MechanicID,
			CheckoutTime: s.Now(),
		}
		if err := s.tools.OpenUsage(ctx, usage); err != nil {
			if errors.Is(err, store.ErrOpenUsageExists) {
				return nil, fmt.Errorf("%w: tool %s is already checked out", ErrToolUnavailable, toolCode)
			}
			return nil, err
		}
	}

	tool.Status = models.ToolInMaintenance
	tool.CustodianID = mechanic.MechanicID
	if err := s.tools.Update(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// Checkin releases a tool. Only the current custodian may return it.
func (s *ToolService) Checkin(ctx context.Context, toolCode, actorProfileID string) (*models.Tool, error) {
	mechanic, err := s.mechanics.GetByProfileID(ctx, actorProfileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: no mechanic linked to profile %s", ErrNotFound, actorProfileID)
	}
	if err != nil {
		return nil, err
	}

	tool, err := s.GetTool(ctx, toolCode)
	if err != nil {
		return nil, err
	}
	// Returning an idle tool is a no-op release.
	if tool.CustodianID == "" {
		return tool, nil
	}
	if tool.CustodianID != mechanic.MechanicID {
		return nil, fmt.Errorf("%w: tool %s", ErrNotCustodian, toolCode)
	}

	// No open usage is the bench-work case: the checkout never opened one.
	now := s.Now()
	if _, err := s.tools.CloseOpenUsage(ctx, toolCode, now); err != nil {
		return nil, err
	}

	tool.Status = models.ToolOperational
	tool.CustodianID = ""
	tool.LastMaintenance = &now
	if err := s.tools.Update(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// activeOrderID finds the mechanic's current IN_PROGRESS order, if any.
// Tool usage without an order is allowed (bench work).
func (s *ToolService) activeOrderID(ctx context.Context, mechanicID string) string {
	orders, err := s.orders.List(ctx, store.OrderFilter{
		State:      models.OrderInProgress,
		MechanicID: mechanicID,
	})
	if err != nil || len(orders) == 0 {
		return ""
	}
	return orders[0].OrderID
}
