package domain

import "time"

// Comment is a timestamped note attached to a ticket.
type Comment struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	TicketID   *int64    `json:"ticketId,omitempty"`
	UserID     *int64    `json:"userId,omitempty"`
}

// Attachment describes a binary file associated with a ticket.
type Attachment struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Mimetype     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
	TicketID     *int64    `json:"ticketId,omitempty"`
	URL          string    `json:"url,omitempty"`
}
