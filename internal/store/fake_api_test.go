package store

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/spec-kit/ticket-dashboard/internal/apiclient"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

var errBackend = errors.New("failed to fetch: Internal Server Error")

// fakeAPI is an in-memory stand-in for the API client.
type fakeAPI struct {
	mu          sync.Mutex
	tickets     []domain.Ticket
	ticket      *domain.Ticket
	stats       *domain.Stats
	failFetch   bool
	failMutate  bool
	fetchCalls  int
	updates     []domain.TicketPatch
	nextComment int64
	nextAttach  int64
	fetchHook   func(call int)
}

func (f *fakeAPI) FetchTickets(_ context.Context, filters domain.TicketFilters) ([]domain.Ticket, error) {
	f.mu.Lock()
	f.fetchCalls++
	call := f.fetchCalls
	hook := f.fetchHook
	fail := f.failFetch
	var out []domain.Ticket
	for _, t := range f.tickets {
		if filters.Match(t) {
			out = append(out, t)
		}
	}
	f.mu.Unlock()
	if hook != nil {
		hook(call)
	}
	if fail {
		return nil, errBackend
	}
	return out, nil
}

func (f *fakeAPI) FetchTicketByID(_ context.Context, id int64) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.failFetch {
		return nil, errBackend
	}
	if f.ticket != nil && f.ticket.ID == id {
		t := *f.ticket
		return &t, nil
	}
	for _, t := range f.tickets {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &apiclient.Error{Op: "failed to fetch ticket", StatusCode: 404, StatusText: "Not Found"}
}

func (f *fakeAPI) CreateTicket(_ context.Context, in domain.NewTicket) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return nil, errBackend
	}
	t := domain.Ticket{ID: int64(len(f.tickets) + 1), Title: in.Title, Status: domain.TicketStatusOpen, Priority: in.Priority}
	f.tickets = append(f.tickets, t)
	return &t, nil
}

func (f *fakeAPI) UpdateTicket(_ context.Context, id int64, patch domain.TicketPatch) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return nil, errBackend
	}
	f.updates = append(f.updates, patch)
	for i := range f.tickets {
		if f.tickets[i].ID == id {
			patch.Apply(&f.tickets[i])
			t := f.tickets[i]
			return &t, nil
		}
	}
	return nil, errBackend
}

func (f *fakeAPI) DeleteTicket(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return errBackend
	}
	kept := f.tickets[:0]
	for _, t := range f.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	f.tickets = kept
	return nil
}

func (f *fakeAPI) FetchStats(context.Context) (*domain.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFetch {
		return nil, errBackend
	}
	s := *f.stats
	return &s, nil
}

func (f *fakeAPI) AddComment(_ context.Context, ticketID int64, content, author string) (*domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return nil, errBackend
	}
	f.nextComment++
	return &domain.Comment{ID: 100 + f.nextComment, Content: content, AuthorName: author, TicketID: &ticketID}, nil
}

func (f *fakeAPI) UploadAttachment(_ context.Context, ticketID int64, filename string, r io.Reader) (*domain.Attachment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return nil, errBackend
	}
	f.nextAttach++
	return &domain.Attachment{ID: 200 + f.nextAttach, OriginalName: filename, Size: int64(len(data)), TicketID: &ticketID}, nil
}

func (f *fakeAPI) DownloadAttachment(_ context.Context, id int64) (*apiclient.Download, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return nil, errBackend
	}
	return &apiclient.Download{Data: []byte("payload"), ContentType: "text/plain", Filename: "a.txt"}, nil
}

func (f *fakeAPI) DeleteAttachment(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMutate {
		return errBackend
	}
	return nil
}

func (f *fakeAPI) setFailFetch(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failFetch = v
}

func (f *fakeAPI) setFailMutate(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failMutate = v
}

func intPtr(v int) *int { return &v }
