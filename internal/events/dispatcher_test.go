// server/internal/events/dispatcher_test.go
package events

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReactor struct {
	name  string
	seen  []Kind
	fail  error
	panic bool
}

func (r *recordingReactor) Name() string { return r.name }

func (r *recordingReactor) React(_ context.Context, ev Event) error {
	r.seen = append(r.seen, ev.Kind)
	if r.panic {
		panic("boom")
	}
	return r.fail
}

func newTestDispatcher() *Dispatcher {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDispatcher(log)
}

func TestSubscribeIsIdempotentByName(t *testing.T) {
	d := newTestDispatcher()
	first := &recordingReactor{name: "r"}
	second := &recordingReactor{name: "r"}
	d.Subscribe(first)
	d.Subscribe(second)

	d.Publish(context.Background(), Event{Kind: KindAssignment})

	assert.Len(t, first.seen, 1)
	assert.Empty(t, second.seen)
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	d := newTestDispatcher()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		d.Subscribe(&orderedReactor{name: name, order: &order})
	}

	d.Publish(context.Background(), Event{Kind: KindDelay})
	require.Equal(t, []string{"a", "b", "c"}, order)
}

type orderedReactor struct {
	name  string
	order *[]string
}

func (r *orderedReactor) Name() string { return r.name }

func (r *orderedReactor) React(_ context.Context, _ Event) error {
	*r.order = append(*r.order, r.name)
	return nil
}

func TestReactorFailureDoesNotStopDelivery(t *testing.T) {
	d := newTestDispatcher()
	failing := &recordingReactor{name: "failing", fail: errors.New("down")}
	healthy := &recordingReactor{name: "healthy"}
	d.Subscribe(failing)
	d.Subscribe(healthy)

	d.Publish(context.Background(), Event{Kind: KindStatusChanged})

	assert.Len(t, failing.seen, 1)
	assert.Len(t, healthy.seen, 1)
}

func TestReactorPanicIsRecovered(t *testing.T) {
	d := newTestDispatcher()
	panicking := &recordingReactor{name: "panicking", panic: true}
	healthy := &recordingReactor{name: "healthy"}
	d.Subscribe(panicking)
	d.Subscribe(healthy)

	require.NotPanics(t, func() {
		d.Publish(context.Background(), Event{Kind: KindOrderFinished})
	})
	assert.Len(t, healthy.seen, 1)
}

func TestUnsubscribeRemovesReactor(t *testing.T) {
	d := newTestDispatcher()
	r := &recordingReactor{name: "r"}
	d.Subscribe(r)
	d.Unsubscribe("r")

	d.Publish(context.Background(), Event{Kind: KindLogRecorded})
	assert.Empty(t, r.seen)

	// Re-subscribing after removal works.
	d.Subscribe(r)
	d.Publish(context.Background(), Event{Kind: KindLogRecorded})
	assert.Len(t, r.seen, 1)
}
