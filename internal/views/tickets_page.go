package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/store"
)

// StatusTab is one status filter tab.
type StatusTab struct {
	Label  string              `json:"label"`
	Status domain.TicketStatus `json:"status"`
	Link   string              `json:"link"`
	Active bool                `json:"active"`
}

// TicketRow is a ticket in the list.
type TicketRow struct {
	ID        int64                 `json:"id"`
	Title     string                `json:"title"`
	Status    domain.TicketStatus   `json:"status"`
	Priority  domain.TicketPriority `json:"priority"`
	Category  string                `json:"category,omitempty"`
	Assignee  string                `json:"assignee,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	Link      string                `json:"link"`
}

// TicketsPageView is the ticket list page.
type TicketsPageView struct {
	Navbar  Navbar      `json:"navbar"`
	Theme   Palette     `json:"theme"`
	Loading bool        `json:"loading"`
	Error   *ErrorPanel `json:"error,omitempty"`
	Header  HeaderCard  `json:"header"`
	Tabs    []StatusTab `json:"tabs"`
	Search  string      `json:"search,omitempty"`
	Tickets []TicketRow `json:"tickets"`
}

var statusLabels = map[domain.TicketStatus]string{
	domain.TicketStatusOpen:    "Open",
	domain.TicketStatusPending: "Pending",
	domain.TicketStatusClosed:  "Closed",
}

// FilterTickets keeps tickets whose title contains term, ignoring case, or
// whose id contains it. A blank term keeps everything.
func FilterTickets(tickets []domain.Ticket, term string) []domain.Ticket {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return tickets
	}
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if strings.Contains(strings.ToLower(t.Title), term) || strings.Contains(strconv.FormatInt(t.ID, 10), term) {
			out = append(out, t)
		}
	}
	return out
}

// BuildTicketsPage renders the list state for the selected status tab and
// search term.
func BuildTicketsPage(st store.State[[]domain.Ticket], status domain.TicketStatus, search string, palette Palette) TicketsPageView {
	v := TicketsPageView{
		Navbar:  NewNavbar("/tickets", palette.Mode),
		Theme:   palette,
		Loading: st.Loading(),
		Search:  search,
		Tickets: []TicketRow{},
	}
	for _, s := range domain.TicketStatuses {
		v.Tabs = append(v.Tabs, StatusTab{
			Label:  statusLabels[s],
			Status: s,
			Link:   TicketsLink(s),
			Active: s == status,
		})
	}
	if st.Phase == store.PhaseError {
		v.Error = NewErrorPanel("failed to load tickets", st.Err, TicketsLink(status))
	}

	filtered := FilterTickets(st.Data, search)
	for _, t := range filtered {
		v.Tickets = append(v.Tickets, TicketRow{
			ID:        t.ID,
			Title:     t.Title,
			Status:    t.Status,
			Priority:  t.Priority,
			Category:  t.Category,
			Assignee:  t.Assignee,
			CreatedAt: t.CreatedAt,
			Link:      TicketLink(t.ID),
		})
	}
	v.Header = HeaderCard{
		Title:         "Tickets",
		Subtitle:      fmt.Sprintf("%d ticket(s) found", len(filtered)),
		AddButtonText: "New ticket",
		AddLink:       "/new-ticket",
	}
	return v
}
