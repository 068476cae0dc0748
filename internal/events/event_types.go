package events

import (
	"time"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketsLoaded       EventType = "tickets_loaded"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketDeleted       EventType = "ticket_deleted"
	EventCommentAdded        EventType = "comment_added"
	EventAttachmentUploaded  EventType = "attachment_uploaded"
	EventAttachmentDeleted   EventType = "attachment_deleted"
	EventStatsRefreshed      EventType = "stats_refreshed"
	EventLoadFailed          EventType = "load_failed"
)

// Event represents a state change emitted by a store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title    string                `json:"title"`
	Priority domain.TicketPriority `json:"priority"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	NewStatus domain.TicketStatus `json:"new_status"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID   int64  `json:"comment_id"`
	AuthorName  string `json:"author_name"`
	BodyPreview string `json:"body_preview"`
}

// AttachmentPayload payload for uploads and deletions.
type AttachmentPayload struct {
	AttachmentID int64  `json:"attachment_id"`
	OriginalName string `json:"original_name,omitempty"`
}

// StatsRefreshedPayload payload.
type StatsRefreshedPayload struct {
	Stats domain.StatsSummary `json:"stats"`
}

// LoadFailedPayload payload.
type LoadFailedPayload struct {
	Store string `json:"store"`
	Error string `json:"error"`
}

// TicketsLoadedPayload payload.
type TicketsLoadedPayload struct {
	Count int `json:"count"`
}
