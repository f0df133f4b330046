package update_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudzxml/updates-service/internal/storage"
	"github.com/yudzxml/updates-service/internal/update"
)

// fakeStore is an in-memory update.Store keeping records in insertion order.
type fakeStore struct {
	records []update.Record

	createCalls int
	listCalls   int
	deleteCalls int

	// createErrs is consumed one error per Create call; nil entries mean success.
	createErrs []error
	listErr    error
}

func (s *fakeStore) Create(ctx context.Context, rec *update.Record) error {
	s.createCalls++
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		if err != nil {
			return err
		}
	}
	s.records = append(s.records, *rec)
	return nil
}

func (s *fakeStore) List(ctx context.Context) ([]update.Record, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]update.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) (*update.Record, error) {
	s.deleteCalls++
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return &rec, nil
		}
	}
	return nil, update.ErrNotFound
}

// stubUploader records the filenames it was asked to store and returns a
// fixed URL or error.
type stubUploader struct {
	calls     int
	filenames []string
	url       string
	err       error
}

func (u *stubUploader) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	u.calls++
	u.filenames = append(u.filenames, filename)
	if u.err != nil {
		return "", fmt.Errorf("%w: %v", storage.ErrUploadFailed, u.err)
	}
	return u.url, nil
}

func validInput() update.PublishInput {
	return update.PublishInput{
		Author:      "x",
		Title:       "Tool",
		Version:     "1.0",
		KeyScript:   "abc",
		VersionType: "full",
		File:        strings.NewReader("payload"),
		FileSize:    7,
	}
}

func TestPublishMissingFields(t *testing.T) {
	mutations := map[string]func(*update.PublishInput){
		"author":      func(in *update.PublishInput) { in.Author = "" },
		"title":       func(in *update.PublishInput) { in.Title = "" },
		"version":     func(in *update.PublishInput) { in.Version = "" },
		"keyScript":   func(in *update.PublishInput) { in.KeyScript = "" },
		"versionType": func(in *update.PublishInput) { in.VersionType = "" },
		"file":        func(in *update.PublishInput) { in.File = nil },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{}
			up := &stubUploader{url: "https://cdn.example/x.zip"}
			svc := update.NewService(store, up)

			in := validInput()
			mutate(&in)

			_, err := svc.Publish(context.Background(), in)
			assert.ErrorIs(t, err, update.ErrMissingField)
			assert.Zero(t, up.calls, "no upload on validation failure")
			assert.Zero(t, store.createCalls, "no store write on validation failure")
		})
	}
}

func TestPublishInvalidVersionType(t *testing.T) {
	store := &fakeStore{}
	up := &stubUploader{url: "https://cdn.example/x.zip"}
	svc := update.NewService(store, up)

	in := validInput()
	in.VersionType = "beta"

	_, err := svc.Publish(context.Background(), in)
	assert.ErrorIs(t, err, update.ErrInvalidVersionType)
	assert.Zero(t, up.calls)
	assert.Zero(t, store.createCalls)
}

func TestPublishNormalizesVersionType(t *testing.T) {
	store := &fakeStore{}
	up := &stubUploader{url: "https://cdn.example/x.zip"}
	svc := update.NewService(store, up)

	in := validInput()
	in.VersionType = "FULL"

	rec, err := svc.Publish(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "full", rec.VersionType)
	assert.True(t, strings.HasPrefix(rec.ID, "full-"))
	assert.Equal(t, "https://cdn.example/x.zip", rec.URL)
	assert.Equal(t, "x", rec.Author)
	assert.Equal(t, "Tool", rec.Title)
	assert.False(t, rec.UpdateDate.IsZero())
	require.Len(t, store.records, 1)
}

func TestPublishUploadFailureWritesNoRecord(t *testing.T) {
	store := &fakeStore{}
	up := &stubUploader{err: errors.New("relay down")}
	svc := update.NewService(store, up)

	_, err := svc.Publish(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, 1, up.calls)
	assert.Zero(t, store.createCalls, "no record written when the upload fails")
}

func TestPublishRetriesDuplicateID(t *testing.T) {
	store := &fakeStore{createErrs: []error{update.ErrDuplicateID}}
	up := &stubUploader{url: "https://cdn.example/x.zip"}
	svc := update.NewService(store, up)

	rec, err := svc.Publish(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 2, store.createCalls, "colliding id retried with a fresh timestamp")
	assert.Equal(t, 1, up.calls, "artifact uploaded exactly once")
	require.Len(t, store.records, 1)
	assert.Equal(t, rec.ID, store.records[0].ID)
}

func TestPublishGivesUpAfterRepeatedCollisions(t *testing.T) {
	store := &fakeStore{createErrs: []error{
		update.ErrDuplicateID, update.ErrDuplicateID, update.ErrDuplicateID,
	}}
	up := &stubUploader{url: "https://cdn.example/x.zip"}
	svc := update.NewService(store, up)

	_, err := svc.Publish(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, 3, store.createCalls)
	assert.Empty(t, store.records)
}

func TestPublishSanitizesFilename(t *testing.T) {
	store := &fakeStore{}
	up := &stubUploader{url: "https://cdn.example/x.zip"}
	svc := update.NewService(store, up)

	in := validInput()
	in.Title = "My Tool v2 (beta)/.."

	_, err := svc.Publish(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, up.filenames, 1)
	assert.Regexp(t, regexp.MustCompile(`^updates-full-\d+-[a-z0-9._-]+\.zip$`), up.filenames[0])
	assert.NotContains(t, up.filenames[0], "/")
	assert.NotContains(t, up.filenames[0], " ")
}

func TestDeleteNotFound(t *testing.T) {
	svc := update.NewService(&fakeStore{}, &stubUploader{})

	_, err := svc.Delete(context.Background(), "full-123")
	assert.ErrorIs(t, err, update.ErrNotFound)
}
