package domain

// Stats is the aggregate payload returned by the backend.
// PendingTickets is what the backend reports; InProgressTickets is kept for
// payloads that already use the dashboard name.
type Stats struct {
	OpenTickets       int  `json:"openTickets"`
	InProgressTickets int  `json:"inProgressTickets,omitempty"`
	PendingTickets    *int `json:"pendingTickets,omitempty"`
	ClosedTickets     int  `json:"closedTickets"`
	TotalTickets      *int `json:"totalTickets,omitempty"`
}

// StatsSummary is the shape the dashboard renders.
type StatsSummary struct {
	OpenTickets       int `json:"openTickets"`
	InProgressTickets int `json:"inProgressTickets"`
	ClosedTickets     int `json:"closedTickets"`
	TotalTickets      int `json:"totalTickets"`
}

// Normalize maps pendingTickets onto inProgressTickets (absent counts as
// zero) and derives the total as open+pending+closed unless the backend
// supplied one.
func (s Stats) Normalize() StatsSummary {
	pending := 0
	if s.PendingTickets != nil {
		pending = *s.PendingTickets
	}
	out := StatsSummary{
		OpenTickets:       s.OpenTickets,
		InProgressTickets: pending,
		ClosedTickets:     s.ClosedTickets,
		TotalTickets:      s.OpenTickets + pending + s.ClosedTickets,
	}
	if s.TotalTickets != nil {
		out.TotalTickets = *s.TotalTickets
	}
	return out
}
