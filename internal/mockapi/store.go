// Package mockapi is an in-memory implementation of the ticket backend
// REST surface, used for local development and tests.
package mockapi

import (
	"errors"
	"mime"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

var (
	// ErrNotFound is returned for unknown tickets or attachments.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned for payloads the backend rejects.
	ErrInvalid = errors.New("invalid input")
)

type storedFile struct {
	meta     domain.Attachment
	data     []byte
	ticketID int64
}

// Store holds tickets, comments, attachments and users in memory.
type Store struct {
	mu             sync.RWMutex
	tickets        map[int64]*domain.Ticket
	files          map[int64]*storedFile
	users          []domain.User
	nextTicket     int64
	nextComment    int64
	nextAttachment int64
	now            func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		tickets:        make(map[int64]*domain.Ticket),
		files:          make(map[int64]*storedFile),
		nextTicket:     1,
		nextComment:    1,
		nextAttachment: 1,
		now:            func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// SetClock overrides the time source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetUsers replaces the user directory.
func (s *Store) SetUsers(users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]domain.User(nil), users...)
}

// Users lists users.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User{}, s.users...)
}

// ListTickets returns matching tickets in creation order, without nested
// comments and attachments.
func (s *Store) ListTickets(filters domain.TicketFilters) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.tickets))
	for id := range s.tickets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Ticket, 0, len(ids))
	for _, id := range ids {
		t := *s.tickets[id]
		if !filters.Match(t) {
			continue
		}
		t.Comments = nil
		t.Attachments = nil
		out = append(out, t)
	}
	return out
}

// GetTicket returns a ticket with its comments and attachments.
func (s *Store) GetTicket(id int64) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, ErrNotFound
	}
	return cloneTicket(t), nil
}

// CreateTicket assigns an id and timestamps to input.
func (s *Store) CreateTicket(input domain.NewTicket) (domain.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Ticket{}, invalid("title required")
	}
	if input.Status == "" {
		input.Status = domain.TicketStatusOpen
	}
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityMedium
	}
	if !input.Status.Valid() {
		return domain.Ticket{}, invalid("unknown status " + string(input.Status))
	}
	if !input.Priority.Valid() {
		return domain.Ticket{}, invalid("unknown priority " + string(input.Priority))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	t := &domain.Ticket{
		ID:          s.nextTicket,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   input.CreatedBy,
		AssignedTo:  input.AssignedTo,
		Assignee:    input.Assignee,
		Category:    input.Category,
		DueDate:     input.DueDate,
	}
	s.nextTicket++
	s.tickets[t.ID] = t
	return cloneTicket(t), nil
}

// UpdateTicket applies a partial update.
func (s *Store) UpdateTicket(id int64, patch domain.TicketPatch) (domain.Ticket, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Ticket{}, invalid("unknown status " + string(*patch.Status))
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Ticket{}, invalid("unknown priority " + string(*patch.Priority))
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.Ticket{}, invalid("title required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, ErrNotFound
	}
	patch.Apply(t)
	t.UpdatedAt = s.now()
	return cloneTicket(t), nil
}

// DeleteTicket removes a ticket and its attachment payloads.
func (s *Store) DeleteTicket(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[id]; !ok {
		return ErrNotFound
	}
	delete(s.tickets, id)
	for fid, f := range s.files {
		if f.ticketID == id {
			delete(s.files, fid)
		}
	}
	return nil
}

// Stats counts tickets per status. No total is reported.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var open, pending, closed int
	for _, t := range s.tickets {
		switch t.Status {
		case domain.TicketStatusOpen:
			open++
		case domain.TicketStatusPending:
			pending++
		case domain.TicketStatusClosed:
			closed++
		}
	}
	return domain.Stats{OpenTickets: open, PendingTickets: &pending, ClosedTickets: closed}
}

// AddComment appends a comment to a ticket.
func (s *Store) AddComment(ticketID int64, content, authorName string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, invalid("content required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[ticketID]
	if !ok {
		return domain.Comment{}, ErrNotFound
	}
	tid := ticketID
	c := domain.Comment{
		ID:         s.nextComment,
		Content:    content,
		AuthorName: authorName,
		CreatedAt:  s.now(),
		TicketID:   &tid,
	}
	s.nextComment++
	t.Comments = append(t.Comments, c)
	t.UpdatedAt = c.CreatedAt
	return c, nil
}

// AddAttachment stores data under a generated filename.
func (s *Store) AddAttachment(ticketID int64, originalName, mimetype string, data []byte) (domain.Attachment, error) {
	if strings.TrimSpace(originalName) == "" {
		return domain.Attachment{}, invalid("file name required")
	}
	ext := filepath.Ext(originalName)
	if mimetype == "" || mimetype == "application/octet-stream" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			mimetype = byExt
		} else if mimetype == "" {
			mimetype = "application/octet-stream"
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[ticketID]
	if !ok {
		return domain.Attachment{}, ErrNotFound
	}
	id := s.nextAttachment
	s.nextAttachment++
	tid := ticketID
	a := domain.Attachment{
		ID:           id,
		Filename:     uuid.NewString() + ext,
		OriginalName: originalName,
		Mimetype:     mimetype,
		Size:         int64(len(data)),
		UploadedAt:   s.now(),
		TicketID:     &tid,
		URL:          "/api/attachments/" + strconv.FormatInt(id, 10) + "/download",
	}
	s.files[id] = &storedFile{meta: a, data: append([]byte(nil), data...), ticketID: ticketID}
	t.Attachments = append(t.Attachments, a)
	return a, nil
}

// Attachment returns the metadata and content of an attachment.
func (s *Store) Attachment(id int64) (domain.Attachment, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	if !ok {
		return domain.Attachment{}, nil, ErrNotFound
	}
	return f.meta, append([]byte(nil), f.data...), nil
}

// DeleteAttachment removes an attachment from its ticket.
func (s *Store) DeleteAttachment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.files, id)
	if t, ok := s.tickets[f.ticketID]; ok {
		kept := t.Attachments[:0]
		for _, a := range t.Attachments {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		t.Attachments = kept
	}
	return nil
}

func cloneTicket(t *domain.Ticket) domain.Ticket {
	out := *t
	out.Comments = append([]domain.Comment(nil), t.Comments...)
	out.Attachments = append([]domain.Attachment(nil), t.Attachments...)
	return out
}

type invalidError struct{ msg string }

func (e invalidError) Error() string { return e.msg }
func (e invalidError) Unwrap() error { return ErrInvalid }

func invalid(msg string) error { return invalidError{msg: msg} }
