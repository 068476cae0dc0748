package views

import (
	"fmt"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
	"github.com/spec-kit/ticket-dashboard/internal/store"
)

// DashboardView is the landing page.
type DashboardView struct {
	Navbar   Navbar        `json:"navbar"`
	Theme    Palette       `json:"theme"`
	Loading  bool          `json:"loading"`
	Error    *ErrorPanel   `json:"error,omitempty"`
	Header   *HeaderCard   `json:"header,omitempty"`
	Stats    []StatCard    `json:"stats,omitempty"`
	Activity *ActivityCard `json:"activity,omitempty"`
}

// BuildDashboard renders the stats state and recent activity.
func BuildDashboard(st store.State[domain.StatsSummary], activity []events.Event, palette Palette) DashboardView {
	v := DashboardView{
		Navbar:  NewNavbar("/", palette.Mode),
		Theme:   palette,
		Loading: st.Loading(),
	}
	if v.Loading {
		return v
	}
	if st.Phase == store.PhaseError {
		v.Error = NewErrorPanel("failed to load statistics", st.Err, "/views/dashboard/refresh")
		return v
	}

	s := st.Data
	v.Header = &HeaderCard{
		Title:    "Dashboard",
		Subtitle: "Overview of your tickets and recent activity",
		Chips: []Chip{
			{Label: "Today", Color: "primary"},
			{Label: fmt.Sprintf("%d tickets total", s.TotalTickets)},
			{Label: "Live data", Color: "success"},
		},
		AddButtonText: "New ticket",
		AddLink:       "/new-ticket",
	}
	v.Stats = []StatCard{
		{Title: "Open tickets", Value: s.OpenTickets, Color: palette.Primary, Icon: "check_circle", Link: TicketsLink(domain.TicketStatusOpen)},
		{Title: "Pending", Value: s.InProgressTickets, Color: palette.Warning, Icon: "schedule", Link: TicketsLink(domain.TicketStatusPending)},
		{Title: "Closed", Value: s.ClosedTickets, Color: palette.Success, Icon: "task_alt", Link: TicketsLink(domain.TicketStatusClosed)},
	}

	card := &ActivityCard{
		Title:       "Recent activity",
		ViewAllText: "View all",
		ViewAllLink: TicketsLink(""),
		Items:       ActivityFromEvents(activity),
	}
	if len(card.Items) == 0 {
		card.Empty = &EmptyState{
			Icon:        "inbox",
			Title:       "No recent activity",
			Description: "Ticket changes made from this dashboard show up here.",
		}
	}
	v.Activity = card
	return v
}
