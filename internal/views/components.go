// Package views turns store snapshots into the view-models the dashboard
// renders. Nothing here talks to the network.
package views

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// StatCard is a single counter tile.
type StatCard struct {
	Title string `json:"title"`
	Value int    `json:"value"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Link  string `json:"link,omitempty"`
}

// Chip is a small label in a header.
type Chip struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// HeaderCard is the title block of a page.
type HeaderCard struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Chips         []Chip `json:"chips,omitempty"`
	AddButtonText string `json:"addButtonText,omitempty"`
	AddLink       string `json:"addLink,omitempty"`
}

// ActivityItem is one line of an activity card.
type ActivityItem struct {
	Message  string    `json:"message"`
	TicketID int64     `json:"ticketId,omitempty"`
	Link     string    `json:"link,omitempty"`
	At       time.Time `json:"at"`
}

// EmptyState is shown by an activity card with no items.
type EmptyState struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ActivityCard lists recent items.
type ActivityCard struct {
	Title       string         `json:"title"`
	ViewAllText string         `json:"viewAllText"`
	ViewAllLink string         `json:"viewAllLink,omitempty"`
	Items       []ActivityItem `json:"items"`
	Empty       *EmptyState    `json:"empty,omitempty"`
}

// NavItem is an entry of the navigation bar.
type NavItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// Navbar is the top navigation.
type Navbar struct {
	Items     []NavItem `json:"items"`
	ThemeMode ThemeMode `json:"themeMode"`
}

// ErrorPanel replaces a page whose initial load failed.
type ErrorPanel struct {
	Icon      string `json:"icon"`
	Message   string `json:"message"`
	RetryLink string `json:"retryLink"`
}

// NewNavbar marks the item matching activePath.
func NewNavbar(activePath string, mode ThemeMode) Navbar {
	items := []NavItem{
		{Label: "Dashboard", Path: "/"},
		{Label: "Tickets", Path: "/tickets"},
		{Label: "New ticket", Path: "/new-ticket"},
	}
	for i := range items {
		items[i].Active = items[i].Path == activePath
	}
	return Navbar{Items: items, ThemeMode: mode}
}

// NewErrorPanel builds the retry panel for err.
func NewErrorPanel(prefix string, err error, retryLink string) *ErrorPanel {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &ErrorPanel{Icon: "warning", Message: prefix + ": " + msg, RetryLink: retryLink}
}

// TicketsLink returns the list path filtered by status.
func TicketsLink(status domain.TicketStatus) string {
	if status == "" {
		return "/tickets"
	}
	return "/tickets?" + url.Values{"status": {string(status)}}.Encode()
}

// TicketLink returns the detail path of a ticket.
func TicketLink(id int64) string {
	return fmt.Sprintf("/tickets/%d", id)
}

// ActivityFromEvents renders events newest first.
func ActivityFromEvents(evts []events.Event) []ActivityItem {
	items := make([]ActivityItem, 0, len(evts))
	for i := len(evts) - 1; i >= 0; i-- {
		e := evts[i]
		item := ActivityItem{Message: describe(e), TicketID: e.TicketID, At: e.Timestamp}
		if e.TicketID != 0 && e.Type != events.EventTicketDeleted {
			item.Link = TicketLink(e.TicketID)
		}
		items = append(items, item)
	}
	return items
}

func describe(e events.Event) string {
	switch p := e.Payload.(type) {
	case events.TicketCreatedPayload:
		return fmt.Sprintf("Ticket #%d created: %s", e.TicketID, p.Title)
	case events.TicketStatusChangedPayload:
		return fmt.Sprintf("Ticket #%d moved to %s", e.TicketID, p.NewStatus)
	case events.CommentAddedPayload:
		return fmt.Sprintf("%s commented on ticket #%d", p.AuthorName, e.TicketID)
	case events.AttachmentPayload:
		if e.Type == events.EventAttachmentDeleted {
			return fmt.Sprintf("Attachment removed from ticket #%d", e.TicketID)
		}
		return fmt.Sprintf("%s attached to ticket #%d", p.OriginalName, e.TicketID)
	}
	if e.Type == events.EventTicketDeleted {
		return fmt.Sprintf("Ticket #%d deleted", e.TicketID)
	}
	return string(e.Type)
}

// HumanSize formats a byte count with a binary unit.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
