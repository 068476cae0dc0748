package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusPending TicketStatus = "pending"
	TicketStatusClosed  TicketStatus = "closed"
)

// TicketStatuses lists statuses in display order.
var TicketStatuses = []TicketStatus{TicketStatusOpen, TicketStatusPending, TicketStatusClosed}

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusPending, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// Ticket is a support request as exchanged with the ticket backend.
type Ticket struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	CreatedBy   int64          `json:"createdBy"`
	AssignedTo  *int64         `json:"assignedTo,omitempty"`
	Assignee    string         `json:"assignee,omitempty"`
	Category    string         `json:"category,omitempty"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
	Comments    []Comment      `json:"comments,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
}

// NewTicket is the creation payload: a ticket without server-assigned fields.
type NewTicket struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
	CreatedBy   int64          `json:"createdBy"`
	AssignedTo  *int64         `json:"assignedTo,omitempty"`
	Assignee    string         `json:"assignee,omitempty"`
	Category    string         `json:"category,omitempty"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
}

// TicketPatch carries the fields of a partial update. Nil fields are not sent.
type TicketPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *TicketStatus   `json:"status,omitempty"`
	Priority    *TicketPriority `json:"priority,omitempty"`
	AssignedTo  *int64          `json:"assignedTo,omitempty"`
	Assignee    *string         `json:"assignee,omitempty"`
	Category    *string         `json:"category,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
}

// Apply copies the set fields of p onto t.
func (p TicketPatch) Apply(t *Ticket) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		id := *p.AssignedTo
		t.AssignedTo = &id
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
}
