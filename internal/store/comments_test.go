package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func ticketWithComments() *fakeAPI {
	return &fakeAPI{ticket: &domain.Ticket{
		ID: 3,
		Comments: []domain.Comment{
			{ID: 1, Content: "first", AuthorName: "Ann"},
			{ID: 2, Content: "second", AuthorName: "Bob"},
		},
	}}
}

func TestCommentsStoreStartsIdleAndLoads(t *testing.T) {
	api := ticketWithComments()
	s := NewCommentsStore(api, 3, Dependencies{})
	assert.Equal(t, PhaseIdle, s.Snapshot().Phase)

	s.Load(context.Background())
	st := s.Snapshot()
	assert.Equal(t, PhaseReady, st.Phase)
	assert.Len(t, st.Data, 2)
}

func TestCommentsStoreWithoutTicketDoesNothing(t *testing.T) {
	api := ticketWithComments()
	s := NewCommentsStore(api, 0, Dependencies{})
	s.Load(context.Background())
	assert.Equal(t, PhaseIdle, s.Snapshot().Phase)
	assert.Zero(t, api.fetchCalls)

	_, err := s.SubmitComment(context.Background(), "hi", "Ann")
	assert.ErrorIs(t, err, ErrNoTicket)
}

func TestCommentsStoreSubmitAppendsOne(t *testing.T) {
	api := ticketWithComments()
	s := NewCommentsStore(api, 3, Dependencies{})
	s.Load(context.Background())
	before := s.Snapshot().Data
	fetches := api.fetchCalls

	c, err := s.SubmitComment(context.Background(), "third", "Cid")
	require.NoError(t, err)

	after := s.Snapshot().Data
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, *c, after[len(after)-1])
	assert.Equal(t, fetches, api.fetchCalls, "submit must not reload")
}

func TestCommentsStoreRejectsBlankContent(t *testing.T) {
	api := ticketWithComments()
	s := NewCommentsStore(api, 3, Dependencies{})
	_, err := s.SubmitComment(context.Background(), "   ", "Ann")
	assert.ErrorIs(t, err, ErrEmptyComment)
	assert.Equal(t, PhaseIdle, s.Snapshot().Phase)
}

func TestCommentsStoreSubmitFailure(t *testing.T) {
	api := ticketWithComments()
	s := NewCommentsStore(api, 3, Dependencies{})
	s.Load(context.Background())
	api.setFailMutate(true)

	_, err := s.SubmitComment(context.Background(), "third", "Cid")
	assert.ErrorIs(t, err, errBackend)
	st := s.Snapshot()
	assert.Equal(t, PhaseError, st.Phase)
	assert.Len(t, st.Data, 2)
}

func TestCommentsStoreKeepsListWhenTicketHasNoComments(t *testing.T) {
	api := &fakeAPI{ticket: &domain.Ticket{ID: 3}}
	s := NewCommentsStore(api, 3, Dependencies{})
	_, err := s.SubmitComment(context.Background(), "note", "Ann")
	require.NoError(t, err)

	s.Load(context.Background())
	assert.Len(t, s.Snapshot().Data, 1)
}
