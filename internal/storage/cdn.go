package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FilenameHeader tells the relay what to name the stored object.
const FilenameHeader = "x-filename"

// cdnUploadTimeout bounds a single relay call; uploads that exceed it fail
// instead of hanging the request.
const cdnUploadTimeout = 30 * time.Second

// CDNStorage implements Uploader by relaying the raw payload to an external
// upload endpoint that answers with the public URL of the stored object.
type CDNStorage struct {
	endpoint string
	client   *http.Client
}

// cdnResponse covers both response shapes the relay is known to produce:
// {"data":{"url":...}} and a top-level {"url":...}.
type cdnResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	URL string `json:"url"`
}

// NewCDNStorage returns a CDNStorage posting to the given endpoint.
func NewCDNStorage(endpoint string) *CDNStorage {
	return &CDNStorage{
		endpoint: endpoint,
		client:   &http.Client{Timeout: cdnUploadTimeout},
	}
}

// Upload posts the payload as application/octet-stream with the target
// filename in the x-filename header and extracts the URL from the response.
func (s *CDNStorage) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cdnUploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, r)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(FilenameHeader, filename)
	req.ContentLength = size

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: relay answered %s", ErrUploadFailed, resp.Status)
	}

	var body cdnResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode relay response: %v", ErrUploadFailed, err)
	}

	url := body.Data.URL
	if url == "" {
		url = body.URL
	}
	if url == "" {
		return "", fmt.Errorf("%w: relay response carries no url", ErrUploadFailed)
	}
	return url, nil
}
