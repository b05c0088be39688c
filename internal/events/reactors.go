// server/internal/events/reactors.go
package events

import (
	"context"
	"fmt"

	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

// Sink delivers a composed notification. The notification center fills
// in the ID and timestamp.
type Sink interface {
	Notify(ctx context.Context, n *models.Notification) error
}

// MechanicReactor notifies the assigned mechanic about assignments and
// quality-control results. The recipient is resolved through the
// mechanic's profile link, never through name matching.
type MechanicReactor struct {
	mechanics store.MechanicStore
	sink      Sink
}

func NewMechanicReactor(mechanics store.MechanicStore, sink Sink) *MechanicReactor {
	return &MechanicReactor{mechanics: mechanics, sink: sink}
}

func (r *MechanicReactor) Name() string { return "mechanic" }

func (r *MechanicReactor) React(ctx context.Context, ev Event) error {
	var message string
	notifType := models.NotifGeneralMessage

	switch ev.Kind {
	case KindAssignment:
		message = fmt.Sprintf("You have been assigned to order %s (vehicle %s)", ev.Order.OrderID, ev.Order.Plate)
	case KindQualityResult:
		if ev.Result == models.QualityApproved {
			message = fmt.Sprintf("Order %s passed quality control", ev.Order.OrderID)
		} else {
			message = fmt.Sprintf("Order %s was rejected at quality control and returned to pending", ev.Order.OrderID)
		}
	default:
		return nil
	}

	if ev.Order.MechanicID == "" {
		return nil
	}
	mechanic, err := r.mechanics.GetByMechanicID(ctx, ev.Order.MechanicID)
	if err != nil {
		return fmt.Errorf("resolve mechanic %s: %w", ev.Order.MechanicID, err)
	}
	if mechanic.ProfileID == "" {
		return fmt.Errorf("mechanic %s has no profile link", mechanic.MechanicID)
	}

	return r.sink.Notify(ctx, &models.Notification{
		Type:        notifType,
		OrderID:     ev.Order.OrderID,
		SenderID:    ev.Sender,
		RecipientID: mechanic.ProfileID,
		Message:     message,
	})
}

// ShopManagerReactor routes log entries, change requests and delay
// alerts to the shop manager on duty.
type ShopManagerReactor struct {
	profiles store.ProfileStore
	sink     Sink
}

func NewShopManagerReactor(profiles store.ProfileStore, sink Sink) *ShopManagerReactor {
	return &ShopManagerReactor{profiles: profiles, sink: sink}
}

func (r *ShopManagerReactor) Name() string { return "shop_manager" }

func (r *ShopManagerReactor) React(ctx context.Context, ev Event) error {
	var (
		message   string
		notifType models.NotificationType
	)

	switch ev.Kind {
	case KindLogRecorded:
		notifType = models.NotifGeneralMessage
		message = fmt.Sprintf("New log entry on order %s: %s", ev.Order.OrderID, ev.Message)
	case KindChangeRequest:
		notifType = models.NotifChangeRequest
		message = fmt.Sprintf("Change requested on order %s: %s", ev.Order.OrderID, ev.Message)
	case KindDelay:
		notifType = models.NotifWorkDelayed
		message = fmt.Sprintf("Order %s is past its estimated delivery date", ev.Order.OrderID)
	default:
		return nil
	}

	manager, err := r.profiles.FirstByRole(ctx, models.RoleShopManager)
	if err != nil {
		return fmt.Errorf("resolve shop manager: %w", err)
	}

	return r.sink.Notify(ctx, &models.Notification{
		Type:        notifType,
		OrderID:     ev.Order.OrderID,
		SenderID:    ev.Sender,
		RecipientID: manager.ProfileID,
		Message:     message,
	})
}

// ReceptionistReactor keeps the front desk informed so the client can be
// called: state transitions, finished orders and delays.
type ReceptionistReactor struct {
	profiles store.ProfileStore
	sink     Sink
}

func NewReceptionistReactor(profiles store.ProfileStore, sink Sink) *ReceptionistReactor {
	return &ReceptionistReactor{profiles: profiles, sink: sink}
}

func (r *ReceptionistReactor) Name() string { return "receptionist" }

func (r *ReceptionistReactor) React(ctx context.Context, ev Event) error {
	var (
		message   string
		notifType = models.NotifGeneralMessage
	)

	switch ev.Kind {
	case KindStatusChanged:
		message = fmt.Sprintf("Order %s moved from %s to %s", ev.Order.OrderID, ev.PreviousState, ev.NewState)
	case KindOrderFinished:
		message = fmt.Sprintf("Order %s is finished; vehicle %s is ready for pickup", ev.Order.OrderID, ev.Order.Plate)
	case KindDelay:
		notifType = models.NotifWorkDelayed
		message = fmt.Sprintf("Order %s is delayed; the client should be informed", ev.Order.OrderID)
	default:
		return nil
	}

	receptionist, err := r.profiles.FirstByRole(ctx, models.RoleReceptionist)
	if err != nil {
		return fmt.Errorf("resolve receptionist: %w", err)
	}

	return r.sink.Notify(ctx, &models.Notification{
		Type:        notifType,
		OrderID:     ev.Order.OrderID,
		SenderID:    ev.Sender,
		RecipientID: receptionist.ProfileID,
		Message:     message,
	})
}
