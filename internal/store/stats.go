package store

import (
	"context"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// StatsAPI is the part of the API client the stats store needs.
type StatsAPI interface {
	FetchStats(ctx context.Context) (*domain.Stats, error)
}

// StatsStore owns the dashboard counters.
type StatsStore struct {
	api   StatsAPI
	deps  Dependencies
	slice *Slice[domain.StatsSummary]
}

// NewStatsStore creates a store in the loading phase with zero counts.
func NewStatsStore(api StatsAPI, deps Dependencies) *StatsStore {
	return &StatsStore{
		api:   api,
		deps:  deps,
		slice: NewSlice(domain.StatsSummary{}, PhaseLoading),
	}
}

// Snapshot returns the current counters.
func (s *StatsStore) Snapshot() State[domain.StatsSummary] {
	return s.slice.Snapshot()
}

// Load fetches and normalizes the backend counters.
func (s *StatsStore) Load(ctx context.Context) {
	gen := s.slice.Begin()
	raw, err := s.api.FetchStats(ctx)
	if err != nil {
		if s.slice.Fail(gen, err) {
			s.deps.loadFailed(ctx, "stats", 0, err)
		}
		return
	}
	summary := raw.Normalize()
	if s.slice.Succeed(gen, summary) {
		s.deps.publish(ctx, events.Event{
			Type:    events.EventStatsRefreshed,
			Payload: events.StatsRefreshedPayload{Stats: summary},
		})
	}
}

// Refresh reloads the counters.
func (s *StatsStore) Refresh(ctx context.Context) {
	s.Load(ctx)
}
