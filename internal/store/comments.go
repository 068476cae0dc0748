package store

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// CommentsAPI is the part of the API client the comments store needs.
type CommentsAPI interface {
	FetchTicketByID(ctx context.Context, id int64) (*domain.Ticket, error)
	AddComment(ctx context.Context, ticketID int64, content, authorName string) (*domain.Comment, error)
}

// CommentsStore owns the comment thread of one ticket.
type CommentsStore struct {
	api      CommentsAPI
	deps     Dependencies
	ticketID int64
	slice    *Slice[[]domain.Comment]
}

// NewCommentsStore creates an idle store for ticketID.
func NewCommentsStore(api CommentsAPI, ticketID int64, deps Dependencies) *CommentsStore {
	return &CommentsStore{
		api:      api,
		deps:     deps,
		ticketID: ticketID,
		slice:    NewSlice([]domain.Comment{}, PhaseIdle),
	}
}

// Snapshot returns the current thread state.
func (s *CommentsStore) Snapshot() State[[]domain.Comment] {
	st := s.slice.Snapshot()
	st.Data = append([]domain.Comment{}, st.Data...)
	return st
}

// Load reads the comments embedded in the ticket. A ticket without a
// comments field leaves the current list untouched.
func (s *CommentsStore) Load(ctx context.Context) {
	if s.ticketID == 0 {
		return
	}
	gen := s.slice.Begin()
	ticket, err := s.api.FetchTicketByID(ctx, s.ticketID)
	if err != nil {
		if s.slice.Fail(gen, err) {
			s.deps.loadFailed(ctx, "comments", s.ticketID, err)
		}
		return
	}
	s.slice.SucceedFunc(gen, func(prev []domain.Comment) []domain.Comment {
		if ticket.Comments == nil {
			return prev
		}
		return append([]domain.Comment{}, ticket.Comments...)
	})
}

// SubmitComment posts a comment and appends the created entry.
func (s *CommentsStore) SubmitComment(ctx context.Context, content, authorName string) (*domain.Comment, error) {
	if s.ticketID == 0 {
		return nil, ErrNoTicket
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}
	s.slice.StartMutation()
	comment, err := s.api.AddComment(ctx, s.ticketID, content, authorName)
	if err != nil {
		s.slice.FailMutation(err)
		s.deps.logger().Error("failed to add comment", zap.Int64("ticket_id", s.ticketID), zap.Error(err))
		return nil, err
	}
	s.slice.CompleteMutation(func(prev []domain.Comment) []domain.Comment {
		next := make([]domain.Comment, 0, len(prev)+1)
		return append(append(next, prev...), *comment)
	})
	s.deps.publish(ctx, events.Event{
		Type:     events.EventCommentAdded,
		TicketID: s.ticketID,
		Payload: events.CommentAddedPayload{
			CommentID:   comment.ID,
			AuthorName:  comment.AuthorName,
			BodyPreview: preview(comment.Content, 80),
		},
	})
	return comment, nil
}

func preview(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "…"
}
