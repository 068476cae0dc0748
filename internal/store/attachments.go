package store

import (
	"context"
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/apiclient"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// AttachmentsAPI is the part of the API client the attachments store needs.
type AttachmentsAPI interface {
	FetchTicketByID(ctx context.Context, id int64) (*domain.Ticket, error)
	UploadAttachment(ctx context.Context, ticketID int64, filename string, r io.Reader) (*domain.Attachment, error)
	DownloadAttachment(ctx context.Context, attachmentID int64) (*apiclient.Download, error)
	DeleteAttachment(ctx context.Context, attachmentID int64) error
}

// AttachmentsStore owns the attachment list of one ticket.
type AttachmentsStore struct {
	api       AttachmentsAPI
	deps      Dependencies
	ticketID  int64
	slice     *Slice[[]domain.Attachment]
	uploading atomic.Int32
}

// NewAttachmentsStore creates an idle store for ticketID.
func NewAttachmentsStore(api AttachmentsAPI, ticketID int64, deps Dependencies) *AttachmentsStore {
	return &AttachmentsStore{
		api:      api,
		deps:     deps,
		ticketID: ticketID,
		slice:    NewSlice([]domain.Attachment{}, PhaseIdle),
	}
}

// Snapshot returns the current list state.
func (s *AttachmentsStore) Snapshot() State[[]domain.Attachment] {
	st := s.slice.Snapshot()
	st.Data = append([]domain.Attachment{}, st.Data...)
	return st
}

// Uploading reports whether an upload is in flight.
func (s *AttachmentsStore) Uploading() bool {
	return s.uploading.Load() > 0
}

// SetAttachments replaces the list, e.g. from an already fetched ticket.
func (s *AttachmentsStore) SetAttachments(list []domain.Attachment) {
	s.slice.Replace(append([]domain.Attachment{}, list...))
}

// Load reads the attachments embedded in the ticket.
func (s *AttachmentsStore) Load(ctx context.Context) {
	if s.ticketID == 0 {
		return
	}
	gen := s.slice.Begin()
	ticket, err := s.api.FetchTicketByID(ctx, s.ticketID)
	if err != nil {
		if s.slice.Fail(gen, err) {
			s.deps.loadFailed(ctx, "attachments", s.ticketID, err)
		}
		return
	}
	s.slice.SucceedFunc(gen, func(prev []domain.Attachment) []domain.Attachment {
		if ticket.Attachments == nil {
			return prev
		}
		return append([]domain.Attachment{}, ticket.Attachments...)
	})
}

// Upload sends a file and appends the created attachment.
func (s *AttachmentsStore) Upload(ctx context.Context, filename string, r io.Reader) (*domain.Attachment, error) {
	if s.ticketID == 0 {
		return nil, ErrNoTicket
	}
	s.uploading.Add(1)
	defer s.uploading.Add(-1)

	attachment, err := s.api.UploadAttachment(ctx, s.ticketID, filename, r)
	if err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("upload failed", zap.Int64("ticket_id", s.ticketID), zap.String("filename", filename), zap.Error(err))
		return nil, err
	}
	s.slice.CompleteMutation(func(prev []domain.Attachment) []domain.Attachment {
		next := make([]domain.Attachment, 0, len(prev)+1)
		return append(append(next, prev...), *attachment)
	})
	s.deps.publish(ctx, events.Event{
		Type:     events.EventAttachmentUploaded,
		TicketID: s.ticketID,
		Payload:  events.AttachmentPayload{AttachmentID: attachment.ID, OriginalName: attachment.OriginalName},
	})
	return attachment, nil
}

// Download fetches the content of an attachment. The list is unchanged.
func (s *AttachmentsStore) Download(ctx context.Context, attachmentID int64) (*apiclient.Download, error) {
	s.slice.StartMutation()
	d, err := s.api.DownloadAttachment(ctx, attachmentID)
	if err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("download failed", zap.Int64("attachment_id", attachmentID), zap.Error(err))
		return nil, err
	}
	s.slice.CompleteMutation(nil)
	return d, nil
}

// Delete removes an attachment and drops it from the list.
func (s *AttachmentsStore) Delete(ctx context.Context, attachmentID int64) error {
	s.slice.StartMutation()
	if err := s.api.DeleteAttachment(ctx, attachmentID); err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("delete failed", zap.Int64("attachment_id", attachmentID), zap.Error(err))
		return err
	}
	s.slice.CompleteMutation(func(prev []domain.Attachment) []domain.Attachment {
		next := make([]domain.Attachment, 0, len(prev))
		for _, a := range prev {
			if a.ID != attachmentID {
				next = append(next, a)
			}
		}
		return next
	})
	s.deps.publish(ctx, events.Event{
		Type:     events.EventAttachmentDeleted,
		TicketID: s.ticketID,
		Payload:  events.AttachmentPayload{AttachmentID: attachmentID},
	})
	return nil
}
