package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// TicketFilters is the sparse filter set accepted by GET /tickets.
type TicketFilters struct {
	Status     TicketStatus
	Priority   TicketPriority
	AssignedTo *int64
	Category   string
	Search     string
}

// Values encodes the filters as query parameters. Empty or absent fields
// are omitted.
func (f TicketFilters) Values() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Priority != "" {
		q.Set("priority", string(f.Priority))
	}
	if f.AssignedTo != nil {
		q.Set("assignedTo", strconv.FormatInt(*f.AssignedTo, 10))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// ParseTicketFilters reads filters from query parameters, ignoring blank
// and malformed values.
func ParseTicketFilters(q url.Values) TicketFilters {
	f := TicketFilters{
		Status:   TicketStatus(strings.TrimSpace(q.Get("status"))),
		Priority: TicketPriority(strings.TrimSpace(q.Get("priority"))),
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
	}
	if raw := strings.TrimSpace(q.Get("assignedTo")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.AssignedTo = &id
		}
	}
	return f
}

// Match reports whether t satisfies every set filter. Search matches the
// title or description case-insensitively.
func (f TicketFilters) Match(t Ticket) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.AssignedTo != nil && (t.AssignedTo == nil || *t.AssignedTo != *f.AssignedTo) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), term) && !strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
	}
	return true
}
