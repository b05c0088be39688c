// server/internal/service/orders.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"taller-api-server/internal/events"
	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
	"taller-api-server/internal/validation"
)

// IntakeInput is everything the receptionist captures at the front desk.
type IntakeInput struct {
	ClientRUT     string
	ClientName    string
	ClientPhone   string
	ClientEmail   string
	ClientAddress string

	Plate      string
	Brand      string
	Model      string
	Year       int
	Odometer   int
	BodyDamage string

	Reason   string
	Problem  string
	Priority models.Priority
}

// OrderReport is the JSON handed to the document/PDF collaborator.
type OrderReport struct {
	Order         models.WorkOrder  `json:"order"`
	LogEntries    []models.LogEntry `json:"logEntries"`
	TotalServices int64             `json:"totalServices"`
	TotalParts    int64             `json:"totalParts"`
	Total         int64             `json:"total"`
	LoggedMinutes int               `json:"loggedMinutes"`
}

// OrderService drives the work-order state machine. Every transition is
// persisted first, then published; reactor trouble never rolls a
// transition back.
type OrderService struct {
	orders    store.OrderStore
	logs      store.LogStore
	quality   store.QualityStore
	clients   store.ClientStore
	vehicles  store.VehicleStore
	zones     store.ZoneStore
	mechanics store.MechanicStore
	catalog   store.CatalogStore
	alerts    store.NotificationStore
	inventory *InventoryService
	bus       *events.Dispatcher
	log       *logrus.Logger

	Now func() time.Time
}

func NewOrderService(
	orders store.OrderStore,
	logs store.LogStore,
	quality store.QualityStore,
	clients store.ClientStore,
	vehicles store.VehicleStore,
	zones store.ZoneStore,
	mechanics store.MechanicStore,
	catalog store.CatalogStore,
	alerts store.NotificationStore,
	inventory *InventoryService,
	bus *events.Dispatcher,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		logs:      logs,
		quality:   quality,
		clients:   clients,
		vehicles:  vehicles,
		zones:     zones,
		mechanics: mechanics,
		catalog:   catalog,
		alerts:    alerts,
		inventory: inventory,
		bus:       bus,
		log:       log,
		Now:       time.Now,
	}
}

// Intake registers the client (get-or-create by RUT), the vehicle
// (plates are unique; a known plate is rejected) and opens a PENDING
// work order. The order is flagged waitlisted when every active zone is
// already at capacity.
func (s *OrderService) Intake(ctx context.Context, in IntakeInput, actor string) (*models.WorkOrder, error) {
	rut, err := validation.ValidateRUT(in.ClientRUT)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	plate, err := validation.ValidatePlate(in.Plate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if in.Reason == "" {
		return nil, fmt.Errorf("%w: intake reason is required", ErrValidation)
	}

	now := s.Now()

	if _, err := s.clients.GetByRUT(ctx, rut); errors.Is(err, store.ErrNotFound) {
		client := &models.Client{
			RUT:       rut,
			Name:      in.ClientName,
			Phone:     in.ClientPhone,
			Email:     in.ClientEmail,
			Address:   in.ClientAddress,
			CreatedAt: now,
		}
		if err := s.clients.Create(ctx, client); err != nil && !errors.Is(err, store.ErrDuplicate) {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		Plate:      plate,
		ClientRUT:  rut,
		Brand:      in.Brand,
		Model:      in.Model,
		Year:       in.Year,
		Odometer:   in.Odometer,
		BodyDamage: in.BodyDamage,
		CreatedAt:  now,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: vehicle %s is already registered", ErrDuplicate, plate)
		}
		return nil, err
	}

	waitlisted, err := s.allZonesFull(ctx)
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	order := &models.WorkOrder{
		OrderID:    newID("OT"),
		ClientRUT:  rut,
		Plate:      plate,
		State:      models.OrderPending,
		Priority:   priority,
		Waitlisted: waitlisted,
		IntakeDate: now,
		Reason:     in.Reason,
		Problem:    in.Problem,
		CreatedBy:  actor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) allZonesFull(ctx context.Context) (bool, error) {
	zones, err := s.zones.ListActive(ctx)
	if err != nil {
		return false, err
	}
	if len(zones) == 0 {
		return true, nil
	}
	for _, z := range zones {
		n, err := s.orders.CountInProgressByZone(ctx, z.ZoneID)
		if err != nil {
			return false, err
		}
		if n < z.Capacity {
			return false, nil
		}
	}
	return true, nil
}

// Assign moves a PENDING order to IN_PROGRESS with a mechanic, a zone
// and an estimated delivery date. The date guard runs before any
// mutation: a rejected assignment leaves the order untouched.
func (s *OrderService) Assign(ctx context.Context, orderID, mechanicID, zoneID string, estimated time.Time, actor string) (*models.WorkOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.State != models.OrderPending {
		return nil, fmt.Errorf("%w: order %s is %s, not PENDING", ErrGuardViolation, orderID, order.State)
	}
	if estimated.Before(order.IntakeDate) {
		return nil, fmt.Errorf("%w: order %s", ErrInvalidDate, orderID)
	}

	mechanic, err := s.mechanics.GetByMechanicID(ctx, mechanicID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: mechanic %s", ErrNotFound, mechanicID)
	}
	if err != nil {
		return nil, err
	}
	zone, err := s.zones.GetByZoneID(ctx, zoneID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: zone %s", ErrNotFound, zoneID)
	}
	if err != nil {
		return nil, err
	}
	if !zone.Active {
		return nil, fmt.Errorf("%w: zone %s is inactive", ErrGuardViolation, zoneID)
	}

	previous := order.State
	order.MechanicID = mechanic.MechanicID
	order.ZoneID = zone.ZoneID
	order.EstimatedDelivery = &estimated
	order.State = models.OrderInProgress
	order.Waitlisted = false
	order.UpdatedAt = s.Now()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.Event{
		Kind:   events.KindAssignment,
		Order:  order,
		Sender: actor,
	})
	s.bus.Publish(ctx, events.Event{
		Kind:          events.KindStatusChanged,
		Order:         order,
		PreviousState: previous,
		NewState:      order.State,
		Sender:        actor,
	})
	return order, nil
}

// RecordLog appends a logbook entry. Only the assigned mechanic may
// write to an order, and only while it is IN_PROGRESS. A change-request
// note additionally raises a CHANGE_REQUEST event for the shop manager.
func (s *OrderService) RecordLog(ctx context.Context, orderID, actorProfileID string, progress models.ProgressState, description string, minutes int, changeRequest string) (*models.LogEntry, error) {
	if minutes < 0 {
		return nil, fmt.Errorf("%w: minutes must be non-negative", ErrValidation)
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.State != models.OrderInProgress {
		return nil, fmt.Errorf("%w: order %s is %s, not IN_PROGRESS", ErrGuardViolation, orderID, order.State)
	}

	mechanic, err := s.mechanics.GetByProfileID(ctx, actorProfileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: no mechanic linked to profile %s", ErrNotFound, actorProfileID)
	}
	if err != nil {
		return nil, err
	}
	if order.MechanicID != mechanic.MechanicID {
		return nil, fmt.Errorf("%w: order %s belongs to another mechanic", ErrGuardViolation, orderID)
	}

	entry := &models.LogEntry{
		EntryID:       newID("LOG"),
		OrderID:       order.OrderID,
		MechanicID:    mechanic.MechanicID,
		Timestamp:     s.Now(),
		Progress:      progress,
		Description:   description,
		MinutesSpent:  minutes,
		ChangeRequest: changeRequest,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.Event{
		Kind:    events.KindLogRecorded,
		Order:   order,
		Sender:  actorProfileID,
		Message: description,
	})
	if changeRequest != "" {
		s.bus.Publish(ctx, events.Event{
			Kind:    events.KindChangeRequest,
			Order:   order,
			Sender:  actorProfileID,
			Message: changeRequest,
		})
	}
	return entry, nil
}

// QualityInput is the shop manager's checklist submission.
type QualityInput struct {
	Result             models.QualityResult
	Notes              string
	RoadTestOK         bool
	FluidsChecked      bool
	LightsElectricalOK bool
	ToolsRemoved       bool
	VehicleClean       bool
}

// QualityCheck records the one-shot quality control of an IN_PROGRESS
// order. APPROVED finishes the order and stamps the actual delivery
// date; REJECTED returns it to PENDING for reassignment. A second check
// on the same order fails regardless of the first result.
func (s *OrderService) QualityCheck(ctx context.Context, orderID, responsible string, in QualityInput) (*models.WorkOrder, error) {
	if in.Result != models.QualityApproved && in.Result != models.QualityRejected {
		return nil, fmt.Errorf("%w: result must be APPROVED or REJECTED", ErrValidation)
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.State != models.OrderInProgress {
		return nil, fmt.Errorf("%w: order %s is %s, not IN_PROGRESS", ErrGuardViolation, orderID, order.State)
	}

	now := s.Now()
	qc := &models.QualityControl{
		OrderID:            order.OrderID,
		Result:             in.Result,
		Responsible:        responsible,
		Notes:              in.Notes,
		CreatedAt:          now,
		RoadTestOK:         in.RoadTestOK,
		FluidsChecked:      in.FluidsChecked,
		LightsElectricalOK: in.LightsElectricalOK,
		ToolsRemoved:       in.ToolsRemoved,
		VehicleClean:       in.VehicleClean,
	}
	if err := s.quality.Create(ctx, qc); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: order %s already has a quality control", ErrGuardViolation, orderID)
		}
		return nil, err
	}

	previous := order.State
	if in.Result == models.QualityApproved {
		order.State = models.OrderFinished
		order.ActualDelivery = &now
	} else {
		order.State = models.OrderPending
	}
	order.UpdatedAt = now
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.Event{
		Kind:   events.KindQualityResult,
		Order:  order,
		Sender: responsible,
		Result: in.Result,
	})
	s.bus.Publish(ctx, events.Event{
		Kind:          events.KindStatusChanged,
		Order:         order,
		PreviousState: previous,
		NewState:      order.State,
		Sender:        responsible,
	})
	if in.Result == models.QualityApproved {
		s.bus.Publish(ctx, events.Event{
			Kind:   events.KindOrderFinished,
			Order:  order,
			Sender: responsible,
		})
	}
	return order, nil
}

// DetectDelays scans IN_PROGRESS orders whose estimated delivery date
// has passed and raises one DELAY event per order, ever. Returns the
// orders flagged on this run.
func (s *OrderService) DetectDelays(ctx context.Context) ([]models.WorkOrder, error) {
	orders, err := s.orders.List(ctx, store.OrderFilter{State: models.OrderInProgress})
	if err != nil {
		return nil, err
	}
	now := s.Now()

	var delayed []models.WorkOrder
	for i := range orders {
		o := orders[i]
		if o.EstimatedDelivery == nil || !o.EstimatedDelivery.Before(now) {
			continue
		}
		already, err := s.alerts.HasDelayAlert(ctx, o.OrderID)
		if err != nil {
			return nil, err
		}
		if already {
			continue
		}
		s.bus.Publish(ctx, events.Event{
			Kind:  events.KindDelay,
			Order: &o,
		})
		delayed = append(delayed, o)
	}
	return delayed, nil
}

// AddServiceItem appends a labor line. A zero price pulls the base price
// from the service catalog.
func (s *OrderService) AddServiceItem(ctx context.Context, orderID, serviceName string, price int64) (*models.WorkOrder, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.State == models.OrderFinished {
		return nil, fmt.Errorf("%w: order %s is finished", ErrGuardViolation, orderID)
	}

	if price == 0 {
		svc, err := s.catalog.GetServiceByName(ctx, serviceName)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: service %q not in catalog and no price given", ErrNotFound, serviceName)
		}
		if err != nil {
			return nil, err
		}
		price = svc.BasePrice
	}

	order.ServiceItems = append(order.ServiceItems, models.ServiceItem{
		Service: serviceName,
		Price:   price,
	})
	order.UpdatedAt = s.Now()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddPartItem consumes stock through the inventory ledger and appends a
// part line priced at the part's sell price. The stock decrement runs
// first: with insufficient stock the order is untouched.
func (s *OrderService) AddPartItem(ctx context.Context, orderID, partCode string, qty int, actor string) (*models.WorkOrder, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.State == models.OrderFinished {
		return nil, fmt.Errorf("%w: order %s is finished", ErrGuardViolation, orderID)
	}

	part, err := s.inventory.GetPart(ctx, partCode)
	if err != nil {
		return nil, err
	}
	if _, err := s.inventory.Move(ctx, partCode, models.MovementOut, qty, order.OrderID, actor); err != nil {
		return nil, err
	}

	order.PartItems = append(order.PartItems, models.PartItem{
		PartCode:  part.Code,
		Name:      part.Name,
		Qty:       qty,
		UnitPrice: part.PriceSell,
	})
	order.UpdatedAt = s.Now()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*models.WorkOrder, error) {
	return s.getOrder(ctx, orderID)
}

func (s *OrderService) List(ctx context.Context, f store.OrderFilter) ([]models.WorkOrder, error) {
	return s.orders.List(ctx, f)
}

// ListForMechanic resolves the mechanic behind the profile and returns
// that mechanic's orders.
func (s *OrderService) ListForMechanic(ctx context.Context, profileID string) ([]models.WorkOrder, error) {
	mechanic, err := s.mechanics.GetByProfileID(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: no mechanic linked to profile %s", ErrNotFound, profileID)
	}
	if err != nil {
		return nil, err
	}
	return s.orders.List(ctx, store.OrderFilter{MechanicID: mechanic.MechanicID})
}

// Report assembles the totals and logged minutes for the document
// generator.
func (s *OrderService) Report(ctx context.Context, orderID string) (*OrderReport, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	entries, err := s.logs.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderReport{
		Order:         *order,
		LogEntries:    entries,
		TotalServices: order.TotalServices(),
		TotalParts:    order.TotalParts(),
		Total:         order.Total(),
		LoggedMinutes: models.TotalLoggedMinutes(entries),
	}, nil
}

func (s *OrderService) getOrder(ctx context.Context, orderID string) (*models.WorkOrder, error) {
	order, err := s.orders.GetByOrderID(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	return order, err
}
