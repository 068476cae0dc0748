package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func ticketWithAttachments() *fakeAPI {
	return &fakeAPI{ticket: &domain.Ticket{
		ID: 4,
		Attachments: []domain.Attachment{
			{ID: 10, OriginalName: "a.log"},
			{ID: 11, OriginalName: "b.png"},
			{ID: 12, OriginalName: "c.pdf"},
		},
	}}
}

func TestAttachmentsStoreDeleteFiltersOnlyThatID(t *testing.T) {
	api := ticketWithAttachments()
	s := NewAttachmentsStore(api, 4, Dependencies{})
	s.Load(context.Background())

	require.NoError(t, s.Delete(context.Background(), 11))
	st := s.Snapshot()
	require.Len(t, st.Data, 2)
	assert.Equal(t, int64(10), st.Data[0].ID)
	assert.Equal(t, int64(12), st.Data[1].ID)
	assert.Equal(t, PhaseReady, st.Phase)
}

func TestAttachmentsStoreUploadAppends(t *testing.T) {
	api := ticketWithAttachments()
	s := NewAttachmentsStore(api, 4, Dependencies{})
	s.Load(context.Background())

	a, err := s.Upload(context.Background(), "new.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), a.Size)
	assert.False(t, s.Uploading())

	st := s.Snapshot()
	require.Len(t, st.Data, 4)
	assert.Equal(t, "new.txt", st.Data[3].OriginalName)
}

func TestAttachmentsStoreFailuresAreReturned(t *testing.T) {
	api := ticketWithAttachments()
	s := NewAttachmentsStore(api, 4, Dependencies{})
	s.Load(context.Background())
	api.setFailMutate(true)

	_, err := s.Upload(context.Background(), "x", strings.NewReader(""))
	assert.ErrorIs(t, err, errBackend)
	assert.ErrorIs(t, s.Delete(context.Background(), 10), errBackend)
	_, err = s.Download(context.Background(), 10)
	assert.ErrorIs(t, err, errBackend)

	st := s.Snapshot()
	assert.Equal(t, PhaseError, st.Phase)
	assert.Len(t, st.Data, 3)
}

func TestAttachmentsStoreDownloadAndSet(t *testing.T) {
	api := ticketWithAttachments()
	s := NewAttachmentsStore(api, 4, Dependencies{})

	d, err := s.Download(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), d.Data)

	s.SetAttachments([]domain.Attachment{{ID: 99}})
	assert.Len(t, s.Snapshot().Data, 1)
}

func TestAttachmentsStoreLoadFailureOnFirstLoad(t *testing.T) {
	api := ticketWithAttachments()
	api.setFailFetch(true)
	s := NewAttachmentsStore(api, 4, Dependencies{})
	s.Load(context.Background())

	st := s.Snapshot()
	assert.Equal(t, PhaseError, st.Phase)
	assert.Empty(t, st.Data)
}
