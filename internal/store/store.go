// Package store holds the dashboard's server-derived state: one store per
// data slice (tickets, comments, attachments, stats), each driving the
// ticket API and exposing loading and error flags.
//
// Load methods never return errors; failures are recorded in the state and
// logged. Mutation methods record, log and return them.
package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// Dependencies bundles optional collaborators shared by all stores.
type Dependencies struct {
	Logger     *zap.Logger
	Dispatcher events.Dispatcher
}

func (d Dependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Dependencies) publish(ctx context.Context, event events.Event) {
	if d.Dispatcher == nil {
		return
	}
	if err := d.Dispatcher.Publish(ctx, event); err != nil {
		d.logger().Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func (d Dependencies) loadFailed(ctx context.Context, store string, ticketID int64, err error) {
	d.logger().Error("failed to load "+store, zap.Int64("ticket_id", ticketID), zap.Error(err))
	d.publish(ctx, events.Event{
		Type:     events.EventLoadFailed,
		TicketID: ticketID,
		Payload:  events.LoadFailedPayload{Store: store, Error: err.Error()},
	})
}
