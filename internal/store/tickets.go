package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// TicketsAPI is the part of the API client the tickets store needs.
type TicketsAPI interface {
	FetchTickets(ctx context.Context, filters domain.TicketFilters) ([]domain.Ticket, error)
	FetchTicketByID(ctx context.Context, id int64) (*domain.Ticket, error)
	CreateTicket(ctx context.Context, input domain.NewTicket) (*domain.Ticket, error)
	UpdateTicket(ctx context.Context, id int64, patch domain.TicketPatch) (*domain.Ticket, error)
	DeleteTicket(ctx context.Context, id int64) error
}

// TicketsStore owns the ticket list for one filter set. Mutations reload
// the whole list afterwards.
type TicketsStore struct {
	api   TicketsAPI
	deps  Dependencies
	slice *Slice[[]domain.Ticket]

	mu      sync.RWMutex
	filters domain.TicketFilters
}

// NewTicketsStore creates a store in the loading phase. Call Load to fetch.
func NewTicketsStore(api TicketsAPI, filters domain.TicketFilters, deps Dependencies) *TicketsStore {
	return &TicketsStore{
		api:     api,
		deps:    deps,
		slice:   NewSlice([]domain.Ticket{}, PhaseLoading),
		filters: filters,
	}
}

// Snapshot returns the current list state.
func (s *TicketsStore) Snapshot() State[[]domain.Ticket] {
	st := s.slice.Snapshot()
	st.Data = append([]domain.Ticket{}, st.Data...)
	return st
}

// Filters returns the active filter set.
func (s *TicketsStore) Filters() domain.TicketFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters replaces the filter set and reloads.
func (s *TicketsStore) SetFilters(ctx context.Context, filters domain.TicketFilters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
	s.Load(ctx)
}

// Load fetches the list for the active filters.
func (s *TicketsStore) Load(ctx context.Context) {
	filters := s.Filters()
	gen := s.slice.Begin()
	tickets, err := s.api.FetchTickets(ctx, filters)
	if err != nil {
		if s.slice.Fail(gen, err) {
			s.deps.loadFailed(ctx, "tickets", 0, err)
		}
		return
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	if s.slice.Succeed(gen, tickets) {
		s.deps.publish(ctx, events.Event{
			Type:    events.EventTicketsLoaded,
			Payload: events.TicketsLoadedPayload{Count: len(tickets)},
		})
	}
}

// Refresh reloads the list.
func (s *TicketsStore) Refresh(ctx context.Context) {
	s.Load(ctx)
}

// GetTicket fetches a single ticket without touching the list.
func (s *TicketsStore) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.api.FetchTicketByID(ctx, id)
	if err != nil {
		s.deps.logger().Error("failed to load ticket", zap.Int64("ticket_id", id), zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

// AddTicket creates a ticket and reloads the list.
func (s *TicketsStore) AddTicket(ctx context.Context, input domain.NewTicket) (*domain.Ticket, error) {
	s.slice.StartMutation()
	created, err := s.api.CreateTicket(ctx, input)
	if err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("failed to create ticket", zap.Error(err))
		return nil, err
	}
	s.deps.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: created.ID,
		Payload:  events.TicketCreatedPayload{Title: created.Title, Priority: created.Priority},
	})
	s.Load(ctx)
	return created, nil
}

// UpdateTicketStatus sets the status through the full-resource update and
// reloads the list.
func (s *TicketsStore) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	s.slice.StartMutation()
	updated, err := s.api.UpdateTicket(ctx, id, domain.TicketPatch{Status: &status})
	if err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("failed to update ticket", zap.Int64("ticket_id", id), zap.Error(err))
		return nil, err
	}
	s.deps.publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: id,
		Payload:  events.TicketStatusChangedPayload{NewStatus: status},
	})
	s.Load(ctx)
	return updated, nil
}

// DeleteTicket removes a ticket and reloads the list.
func (s *TicketsStore) DeleteTicket(ctx context.Context, id int64) error {
	s.slice.StartMutation()
	if err := s.api.DeleteTicket(ctx, id); err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("failed to delete ticket", zap.Int64("ticket_id", id), zap.Error(err))
		return err
	}
	s.deps.publish(ctx, events.Event{Type: events.EventTicketDeleted, TicketID: id})
	s.Load(ctx)
	return nil
}
