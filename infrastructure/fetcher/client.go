// Package fetcher talks to the public joke and riddle providers.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"teacher-bot/domain/mimetypes"
	"teacher-bot/errors"
	"teacher-bot/internal/jsonx"
)

// maxBodySize bounds what is read from a provider; a joke is a few hundred bytes.
const maxBodySize = 64 << 10

// NewHTTPClient returns a client whose every request is bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          4,
			MaxIdleConnsPerHost:   2,
		},
	}
}

// getJSON performs a GET and decodes a JSON body into out.
// Every failure, including a non-JSON body, wraps errors.ErrFetch.
func getJSON(ctx context.Context, client *http.Client, url, userAgent string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFetch, err)
	}
	req.Header.Set("Accept", string(mimetypes.ApplicationJSON))
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", errors.ErrFetch, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", errors.ErrFetch, err)
	}
	if sniffed := mimetypes.Sniff(body); sniffed != mimetypes.ApplicationJSON {
		declared := resp.Header.Get("Content-Type")
		return fmt.Errorf("%w: expected JSON, got %s (declared %q)", errors.ErrFetch, sniffed, declared)
	}
	if err := jsonx.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding body: %v", errors.ErrFetch, err)
	}
	return nil
}
