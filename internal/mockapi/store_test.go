package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func fixedStore() *Store {
	s := NewStore()
	s.SetClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })
	return s
}

func TestStoreCreateAssignsIDsAndDefaults(t *testing.T) {
	s := fixedStore()
	first, err := s.CreateTicket(domain.NewTicket{Title: " Printer jam ", CreatedBy: 7})
	require.NoError(t, err)
	second, err := s.CreateTicket(domain.NewTicket{Title: "VPN down", Priority: domain.TicketPriorityHigh})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "Printer jam", first.Title)
	assert.Equal(t, domain.TicketStatusOpen, first.Status)
	assert.Equal(t, domain.TicketPriorityMedium, first.Priority)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), first.CreatedAt)

	_, err = s.CreateTicket(domain.NewTicket{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = s.CreateTicket(domain.NewTicket{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStoreListFiltersAndStripsNested(t *testing.T) {
	s := fixedStore()
	Seed(s)

	all := s.ListTickets(domain.TicketFilters{})
	require.Len(t, all, 4)
	for _, tk := range all {
		assert.Nil(t, tk.Comments)
	}

	open := s.ListTickets(domain.TicketFilters{Status: domain.TicketStatusOpen})
	require.Len(t, open, 2)
	assert.Equal(t, int64(1), open[0].ID)

	search := s.ListTickets(domain.TicketFilters{Search: "DASHBOARD"})
	require.Len(t, search, 1)
	assert.Equal(t, "Slow dashboard", search[0].Title)

	agent := int64(2)
	assigned := s.ListTickets(domain.TicketFilters{AssignedTo: &agent})
	assert.Len(t, assigned, 2)
}

func TestStoreStatsReportsPendingWithoutTotal(t *testing.T) {
	s := fixedStore()
	Seed(s)
	stats := s.Stats()
	assert.Equal(t, 2, stats.OpenTickets)
	require.NotNil(t, stats.PendingTickets)
	assert.Equal(t, 1, *stats.PendingTickets)
	assert.Equal(t, 1, stats.ClosedTickets)
	assert.Nil(t, stats.TotalTickets)
}

func TestStoreAttachmentsLifecycle(t *testing.T) {
	s := fixedStore()
	tk, err := s.CreateTicket(domain.NewTicket{Title: "Logs"})
	require.NoError(t, err)

	a, err := s.AddAttachment(tk.ID, "trace.txt", "", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "trace.txt", a.OriginalName)
	assert.NotEqual(t, a.OriginalName, a.Filename)
	assert.Contains(t, a.Mimetype, "text/plain")
	assert.Equal(t, int64(5), a.Size)

	_, data, err := s.Attachment(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	require.NoError(t, s.DeleteAttachment(a.ID))
	got, err := s.GetTicket(tk.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Attachments)
	assert.ErrorIs(t, s.DeleteAttachment(a.ID), ErrNotFound)
}

func TestStoreCommentsAndDelete(t *testing.T) {
	s := fixedStore()
	tk, err := s.CreateTicket(domain.NewTicket{Title: "Mail"})
	require.NoError(t, err)

	_, err = s.AddComment(tk.ID, "   ", "Ann")
	assert.ErrorIs(t, err, ErrInvalid)
	c, err := s.AddComment(tk.ID, "first", "Ann")
	require.NoError(t, err)
	require.NotNil(t, c.TicketID)
	assert.Equal(t, tk.ID, *c.TicketID)

	require.NoError(t, s.DeleteTicket(tk.ID))
	_, err = s.GetTicket(tk.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.AddComment(tk.ID, "late", "Ann")
	assert.ErrorIs(t, err, ErrNotFound)
}
