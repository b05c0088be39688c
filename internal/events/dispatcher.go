// server/internal/events/dispatcher.go
package events

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Reactor receives every published event. Implementations filter on
// Kind themselves.
type Reactor interface {
	// Name deduplicates subscriptions: subscribing two reactors with the
	// same name keeps only the first.
	Name() string
	React(ctx context.Context, ev Event) error
}

// Dispatcher fans events out to reactors in subscription order, on the
// caller's goroutine. A reactor failure is logged and never propagates:
// notification trouble must not roll back a state transition.
type Dispatcher struct {
	mu       sync.RWMutex
	reactors []Reactor
	log      *logrus.Logger
}

func NewDispatcher(log *logrus.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Subscribe registers a reactor. Idempotent by Name.
func (d *Dispatcher) Subscribe(r Reactor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.reactors {
		if existing.Name() == r.Name() {
			return
		}
	}
	d.reactors = append(d.reactors, r)
}

// Unsubscribe removes the reactor with the given name, if present.
func (d *Dispatcher) Unsubscribe(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.reactors {
		if existing.Name() == name {
			d.reactors = append(d.reactors[:i], d.reactors[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every subscribed reactor. Panics inside a
// reactor are recovered so one misbehaving subscriber cannot take down
// the request.
func (d *Dispatcher) Publish(ctx context.Context, ev Event) {
	d.mu.RLock()
	reactors := make([]Reactor, len(d.reactors))
	copy(reactors, d.reactors)
	d.mu.RUnlock()

	for _, r := range reactors {
		d.deliver(ctx, r, ev)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, r Reactor, ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.WithFields(logrus.Fields{
				"reactor": r.Name(),
				"event":   ev.Kind,
				"panic":   rec,
			}).Error("reactor panicked")
		}
	}()
	if err := r.React(ctx, ev); err != nil {
		fields := logrus.Fields{
			"reactor": r.Name(),
			"event":   ev.Kind,
		}
		if ev.Order != nil {
			fields["orderID"] = ev.Order.OrderID
		}
		d.log.WithFields(fields).WithError(err).Error("reactor failed")
	}
}
