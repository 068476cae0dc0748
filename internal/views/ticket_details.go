package views

import (
	"fmt"
	"time"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/store"
)

// AttachmentRow is an attachment in the detail view.
type AttachmentRow struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Mimetype     string    `json:"mimetype"`
	Size         string    `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
	DownloadLink string    `json:"downloadLink"`
}

// StatusAction is a status the ticket can be moved to.
type StatusAction struct {
	Label  string              `json:"label"`
	Status domain.TicketStatus `json:"status"`
}

// TicketDetailsView is the ticket page with its thread and files.
type TicketDetailsView struct {
	Navbar        Navbar           `json:"navbar"`
	Theme         Palette          `json:"theme"`
	Loading       bool             `json:"loading"`
	Error         *ErrorPanel      `json:"error,omitempty"`
	Ticket        *domain.Ticket   `json:"ticket,omitempty"`
	Comments      []domain.Comment `json:"comments"`
	CommentCount  int              `json:"commentCount"`
	CommentsError string           `json:"commentsError,omitempty"`
	Attachments   []AttachmentRow  `json:"attachments"`
	Uploading     bool             `json:"uploading"`
	StatusActions []StatusAction   `json:"statusActions,omitempty"`
}

// BuildTicketDetails renders a ticket fetched on its own together with the
// comment and attachment stores of that ticket.
func BuildTicketDetails(
	ticket *domain.Ticket,
	ticketErr error,
	comments store.State[[]domain.Comment],
	attachments store.State[[]domain.Attachment],
	uploading bool,
	palette Palette,
) TicketDetailsView {
	v := TicketDetailsView{
		Navbar:      NewNavbar("/tickets", palette.Mode),
		Theme:       palette,
		Loading:     comments.Loading() || attachments.Loading(),
		Comments:    append([]domain.Comment{}, comments.Data...),
		Attachments: []AttachmentRow{},
		Uploading:   uploading,
	}
	if ticketErr != nil || ticket == nil {
		link := "/tickets"
		if ticket != nil {
			link = TicketLink(ticket.ID)
		}
		v.Error = NewErrorPanel("failed to load ticket", ticketErr, link)
		return v
	}

	t := *ticket
	t.Comments = nil
	t.Attachments = nil
	v.Ticket = &t
	v.CommentCount = len(v.Comments)
	if comments.Phase == store.PhaseError && comments.Err != nil {
		v.CommentsError = comments.Err.Error()
	}
	for _, a := range attachments.Data {
		v.Attachments = append(v.Attachments, AttachmentRow{
			ID:           a.ID,
			Name:         a.OriginalName,
			Mimetype:     a.Mimetype,
			Size:         HumanSize(a.Size),
			UploadedAt:   a.UploadedAt,
			DownloadLink: fmt.Sprintf("/views/attachments/%d/download", a.ID),
		})
	}
	for _, s := range domain.TicketStatuses {
		if s != t.Status {
			v.StatusActions = append(v.StatusActions, StatusAction{Label: "Mark as " + statusLabels[s], Status: s})
		}
	}
	return v
}
