package dto

import (
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/views"
)

// CreateTicketRequest payload of the new ticket form.
type CreateTicketRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority"`
	Category    string `json:"category" form:"category"`
	Assignee    string `json:"assignee" form:"assignee"`
	AssignedTo  *int64 `json:"assignedTo" form:"assignedTo"`
	CreatedBy   int64  `json:"createdBy" form:"createdBy"`
}

// Form converts the request into the form the views validate.
func (r CreateTicketRequest) Form() views.NewTicketForm {
	return views.NewTicketForm{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
		Assignee:    r.Assignee,
		AssignedTo:  r.AssignedTo,
		CreatedBy:   r.CreatedBy,
	}
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status" form:"status"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Content    string `json:"content" form:"content"`
	AuthorName string `json:"authorName" form:"authorName"`
}
