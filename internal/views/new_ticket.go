package views

import (
	"strings"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// PriorityOption is a selectable priority.
type PriorityOption struct {
	Value domain.TicketPriority `json:"value"`
	Label string                `json:"label"`
	Color string                `json:"color"`
}

// NewTicketView describes the creation form.
type NewTicketView struct {
	Navbar     Navbar           `json:"navbar"`
	Theme      Palette          `json:"theme"`
	Header     HeaderCard       `json:"header"`
	Priorities []PriorityOption `json:"priorities"`
	Categories []string         `json:"categories"`
	Assignees  []string         `json:"assignees"`
	Defaults   NewTicketForm    `json:"defaults"`
}

// Categories offered by the creation form.
var Categories = []string{
	"Bug Report",
	"Feature Request",
	"Support",
	"Documentation",
	"Performance",
	"Security",
}

// Unassigned is the assignee choice meaning nobody.
const Unassigned = "Unassigned"

// NewTicketForm is the submitted creation form.
type NewTicketForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Assignee    string `json:"assignee"`
	AssignedTo  *int64 `json:"assignedTo,omitempty"`
	CreatedBy   int64  `json:"createdBy"`
}

// BuildNewTicket renders the empty form. assignees are user names from
// the backend.
func BuildNewTicket(assignees []string, palette Palette) NewTicketView {
	return NewTicketView{
		Navbar: NewNavbar("/new-ticket", palette.Mode),
		Theme:  palette,
		Header: HeaderCard{Title: "New ticket", Subtitle: "Describe the issue so the team can help"},
		Priorities: []PriorityOption{
			{Value: domain.TicketPriorityLow, Label: "Low", Color: palette.Success},
			{Value: domain.TicketPriorityMedium, Label: "Medium", Color: palette.Warning},
			{Value: domain.TicketPriorityHigh, Label: "High", Color: palette.Error},
			{Value: domain.TicketPriorityCritical, Label: "Critical", Color: palette.Error},
		},
		Categories: Categories,
		Assignees:  append(append([]string{}, assignees...), Unassigned),
		Defaults:   NewTicketForm{Priority: string(domain.TicketPriorityMedium)},
	}
}

// Validate checks the form and builds the creation payload. Field errors
// are keyed by form field.
func (f NewTicketForm) Validate() (domain.NewTicket, map[string]any) {
	errs := map[string]any{}
	title := strings.TrimSpace(f.Title)
	description := strings.TrimSpace(f.Description)
	if title == "" {
		errs["title"] = "title is required"
	}
	if description == "" {
		errs["description"] = "description is required"
	}

	priority := domain.TicketPriority(strings.ToLower(strings.TrimSpace(f.Priority)))
	switch priority {
	case "":
		priority = domain.TicketPriorityMedium
	case "urgent":
		priority = domain.TicketPriorityCritical
	}
	if !priority.Valid() {
		errs["priority"] = "unknown priority"
	}

	assignee := strings.TrimSpace(f.Assignee)
	if assignee == Unassigned {
		assignee = ""
	}
	if len(errs) > 0 {
		return domain.NewTicket{}, errs
	}
	return domain.NewTicket{
		Title:       title,
		Description: description,
		Status:      domain.TicketStatusOpen,
		Priority:    priority,
		CreatedBy:   f.CreatedBy,
		AssignedTo:  f.AssignedTo,
		Assignee:    assignee,
		Category:    strings.TrimSpace(f.Category),
	}, nil
}
