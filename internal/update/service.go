package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yudzxml/updates-service/internal/storage"
)

// ErrMissingField is returned when a publish request lacks a required field
// or the file payload.
var ErrMissingField = errors.New("missing required field")

// ErrInvalidVersionType is returned when versionType is not "full" or "lite".
var ErrInvalidVersionType = errors.New("invalid versionType")

// Store is the persistence surface the service needs. *Repository satisfies
// it; tests use an in-memory fake.
type Store interface {
	Create(ctx context.Context, rec *Record) error
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) (*Record, error)
}

const (
	// uploadTimeout bounds the object-storage call.
	uploadTimeout = 30 * time.Second
	// storeTimeout bounds every metadata-store call so a slow database
	// cannot hang a request indefinitely.
	storeTimeout = 10 * time.Second

	// createAttempts is how many times a publish retries an id collision
	// (two publishes in the same millisecond) with a fresh timestamp.
	createAttempts = 3
)

// Service contains the publish, list, and delete logic for update records.
type Service struct {
	store    Store
	uploader storage.Uploader
}

// NewService creates a new Service backed by the given store and uploader.
func NewService(store Store, uploader storage.Uploader) *Service {
	return &Service{store: store, uploader: uploader}
}

// PublishInput carries the parsed fields and file payload of an upload
// request, regardless of whether it arrived as JSON or multipart.
type PublishInput struct {
	Author      string
	Title       string
	Version     string
	KeyScript   string
	VersionType string

	File     io.Reader
	FileSize int64
}

// Publish validates the input, uploads the artifact, and persists a new
// record. The artifact is uploaded exactly once; if the upload fails no
// record is written.
func (s *Service) Publish(ctx context.Context, in PublishInput) (*Record, error) {
	if in.Author == "" || in.Title == "" || in.Version == "" ||
		in.KeyScript == "" || in.VersionType == "" || in.File == nil {
		return nil, ErrMissingField
	}

	versionType := strings.ToLower(in.VersionType)
	if versionType != "full" && versionType != "lite" {
		return nil, ErrInvalidVersionType
	}

	now := time.Now().UTC()
	filename := artifactFilename(versionType, in.Title, now)

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	url, err := s.uploader.Upload(uploadCtx, filename, in.File, in.FileSize)
	if err != nil {
		return nil, fmt.Errorf("upload artifact: %w", err)
	}

	rec := &Record{
		Author:      in.Author,
		Title:       in.Title,
		Version:     in.Version,
		KeyScript:   in.KeyScript,
		VersionType: versionType,
		UpdateDate:  now,
		URL:         url,
	}

	// Record ids embed the publish millisecond; on a same-millisecond
	// collision retry with a fresh timestamp instead of failing.
	for attempt := 0; attempt < createAttempts; attempt++ {
		rec.ID = fmt.Sprintf("%s-%d", versionType, time.Now().UnixMilli())

		storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		err = s.store.Create(storeCtx, rec)
		cancel()

		if errors.Is(err, ErrDuplicateID) {
			time.Sleep(time.Millisecond)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("persist update record: %w", err)
		}
		return rec, nil
	}
	return nil, fmt.Errorf("persist update record: %w", err)
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.store.List(ctx)
}

// Delete removes a record by id and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.store.Delete(ctx, id)
}

// artifactFilename derives the stored object name. The title is reduced to a
// safe character set so user text cannot smuggle path separators into the
// object key.
func artifactFilename(versionType, title string, now time.Time) string {
	return fmt.Sprintf("updates-%s-%d-%s.zip", versionType, now.UnixMilli(), sanitizeTitle(title))
}

// sanitizeTitle lowercases the title and keeps only [a-z0-9._-]; everything
// else becomes a dash.
func sanitizeTitle(s string) string {
	s = strings.ToLower(s)
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' || r == '-' {
			b = append(b, r)
		} else {
			b = append(b, '-')
		}
	}
	return string(b)
}
