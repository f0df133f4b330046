package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudzxml/updates-service/internal/storage"
)

func TestCDNUploadNestedURL(t *testing.T) {
	var gotFilename, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilename = r.Header.Get(storage.FilenameHeader)
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"url":"https://cdn.example/updates-full-1-tool.zip"}}`))
	}))
	defer srv.Close()

	s := storage.NewCDNStorage(srv.URL)
	url, err := s.Upload(context.Background(), "updates-full-1-tool.zip", strings.NewReader("zipbytes"), 8)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/updates-full-1-tool.zip", url)
	assert.Equal(t, "updates-full-1-tool.zip", gotFilename)
	assert.Equal(t, "application/octet-stream", gotContentType)
	assert.Equal(t, "zipbytes", gotBody)
}

func TestCDNUploadFlatURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/flat.zip"}`))
	}))
	defer srv.Close()

	s := storage.NewCDNStorage(srv.URL)
	url, err := s.Upload(context.Background(), "flat.zip", strings.NewReader("x"), 1)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/flat.zip", url)
}

func TestCDNUploadMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	s := storage.NewCDNStorage(srv.URL)
	_, err := s.Upload(context.Background(), "x.zip", strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}

func TestCDNUploadRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := storage.NewCDNStorage(srv.URL)
	_, err := s.Upload(context.Background(), "x.zip", strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}

func TestCDNUploadUnreachableRelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := storage.NewCDNStorage(srv.URL)
	_, err := s.Upload(context.Background(), "x.zip", strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}

func TestCDNUploadMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := storage.NewCDNStorage(srv.URL)
	_, err := s.Upload(context.Background(), "x.zip", strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}
