package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// DefaultActivitySize is used when a non-positive size is configured.
const DefaultActivitySize = 20

// feedEvents are the store events shown to users as activity.
var feedEvents = []events.EventType{
	events.EventTicketCreated,
	events.EventTicketStatusChanged,
	events.EventTicketDeleted,
	events.EventCommentAdded,
	events.EventAttachmentUploaded,
	events.EventAttachmentDeleted,
}

// ActivityService keeps the most recent ticket changes made through the
// dashboard and logs failed loads.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu     sync.RWMutex
	size   int
	recent []events.Event
}

// NewActivityService creates the service. size bounds the feed.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, size int) *ActivityService {
	if size <= 0 {
		size = DefaultActivitySize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		size:       size,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range feedEvents {
		a.dispatcher.Subscribe(t, a.handleChange)
	}
	a.dispatcher.Subscribe(events.EventLoadFailed, a.handleLoadFailed)
	a.dispatcher.Subscribe(events.EventStatsRefreshed, a.handleStatsRefreshed)
}

// Recent returns the feed oldest first.
func (a *ActivityService) Recent() []events.Event {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]events.Event{}, a.recent...)
}

func (a *ActivityService) handleChange(ctx context.Context, event events.Event) error {
	a.mu.Lock()
	a.recent = append(a.recent, event)
	if over := len(a.recent) - a.size; over > 0 {
		a.recent = append([]events.Event{}, a.recent[over:]...)
	}
	a.mu.Unlock()

	a.logger.Info(string(event.Type), zap.Int64("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (a *ActivityService) handleLoadFailed(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.LoadFailedPayload)
	a.logger.Warn("LoadFailed",
		zap.String("store", payload.Store),
		zap.Int64("ticket_id", event.TicketID),
		zap.String("error", payload.Error))
	return nil
}

func (a *ActivityService) handleStatsRefreshed(ctx context.Context, event events.Event) error {
	a.logger.Debug("StatsRefreshed", zap.Any("payload", event.Payload))
	return nil
}
