// Package notification delivers complaint lifecycle events to a Sink without
// blocking or failing the operation that produced them.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/pkg/observability"
)

type Event string

const (
	EventCreated       Event = "created"
	EventStatusChanged Event = "status_changed"
)

func (e Event) Valid() bool {
	return e == EventCreated || e == EventStatusChanged
}

// Sink delivers one event. Implementations may block; the dispatcher bounds
// each call with its own timeout.
type Sink interface {
	Send(ctx context.Context, event Event, c *repo.Complaint) error
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ctx context.Context, event Event, c *repo.Complaint) error

func (f SinkFunc) Send(ctx context.Context, event Event, c *repo.Complaint) error {
	return f(ctx, event, c)
}

// Notifier is what the complaint service calls after a successful write.
type Notifier interface {
	OnCreated(c *repo.Complaint)
	OnStatusChanged(c *repo.Complaint)
}

const defaultTimeout = 30 * time.Second

// Dispatcher runs every Send on its own goroutine, detached from the caller's
// context. Errors and panics are logged and counted, never returned.
type Dispatcher struct {
	sink    Sink
	timeout time.Duration
	metrics *observability.ComplaintMetrics
	log     *slog.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(sink Sink, timeout time.Duration, metrics *observability.ComplaintMetrics) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		sink:    sink,
		timeout: timeout,
		metrics: metrics,
		log:     slog.Default().With("component", "notification"),
	}
}

func (d *Dispatcher) OnCreated(c *repo.Complaint) { d.Dispatch(EventCreated, c) }

func (d *Dispatcher) OnStatusChanged(c *repo.Complaint) { d.Dispatch(EventStatusChanged, c) }

// Wait blocks until every dispatched event has finished.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Drain waits for in-flight events or gives up when ctx is done.
func (d *Dispatcher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch hands a copy of c to the sink on a new goroutine.
func (d *Dispatcher) Dispatch(event Event, c *repo.Complaint) {
	if c == nil {
		return
	}
	snapshot := *c

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.send(ctx, event, &snapshot); err != nil {
			d.log.Warn("notification failed",
				"event", string(event),
				"complaint_id", snapshot.ID,
				"err", err,
			)
			d.metrics.NotificationResult(ctx, string(event), "failed")
			return
		}
		d.log.Debug("notification sent", "event", string(event), "complaint_id", snapshot.ID)
		d.metrics.NotificationResult(ctx, string(event), "sent")
	}()
}

func (d *Dispatcher) send(ctx context.Context, event Event, c *repo.Complaint) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSinkPanic, r)
		}
	}()
	return d.sink.Send(ctx, event, c)
}
