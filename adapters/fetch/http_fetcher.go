package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"retailedge/domain/core"
)

// HTTPFetcher downloads source spreadsheets with a fixed timeout. A fetch
// failure is a retryable I/O failure at this boundary, never a pipeline
// failure.
type HTTPFetcher struct {
	client      *http.Client
	maxBodySize int64
}

// NewHTTPFetcher creates a fetcher with the given timeout and response
// size cap.
func NewHTTPFetcher(timeout time.Duration, maxBodySize int64) *HTTPFetcher {
	return &HTTPFetcher{
		client:      &http.Client{Timeout: timeout},
		maxBodySize: maxBodySize,
	}
}

// Fetch retrieves the bytes at url. Non-2xx responses and oversized bodies
// are fetch errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, core.NewFetchError(url, err)
	}

	startTime := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, core.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, core.NewFetchError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, core.NewFetchError(url, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, core.NewFetchError(url, fmt.Errorf("response exceeds %d bytes", f.maxBodySize))
	}

	log.Printf("[HTTPFetcher] Downloaded %d bytes in %.2fms",
		len(body), float64(time.Since(startTime).Nanoseconds())/1e6)
	return body, nil
}
