// Package pubchem implements the client for the upstream chemistry
// database: compound search, structure retrieval and property lookup over
// PUG REST.
package pubchem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	conf "github.com/bazarkua/molexa/config"
	"github.com/bazarkua/molexa/errors"
)

var log = conf.NamedLogger("pubchem")

const (
	requestTimeout = 15 * time.Second
	maxAttempts    = 4
	initialBackoff = 500 * time.Millisecond
)

// Client talks to the PUG REST endpoint.
type Client struct {
	baseUrl string
	http    *http.Client
}

// NewClient constructor.
func NewClient(config *conf.Config) *Client {
	return &Client{
		baseUrl: config.PubchemBaseUrl,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// get fetches path relative to the base url, retrying transient failures
// with a doubling delay between attempts.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseUrl + path

	var lastErr error
	backoff := initialBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, status, requestErr := c.getOnce(ctx, url)
		switch {
		case requestErr == nil && status == http.StatusOK:
			return body, nil
		case requestErr == nil && status == http.StatusNotFound:
			return nil, fmt.Errorf("pubchem: %s: %w", path, errors.ErrNotFound)
		case requestErr == nil && status < 500:
			return nil, fmt.Errorf("pubchem: %s returned status %d", path, status)
		case requestErr != nil:
			lastErr = requestErr
		default:
			lastErr = fmt.Errorf("pubchem: %s returned status %d", path, status)
		}

		log.Warnf("request to %s failed (attempt %d/%d): %v", url, attempt, maxAttempts, lastErr)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("pubchem: %w: %v", errors.ErrUpstreamUnavailable, lastErr)
}

func (c *Client) getOnce(ctx context.Context, url string) ([]byte, int, error) {
	request, requestErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if requestErr != nil {
		return nil, 0, requestErr
	}

	response, doErr := c.http.Do(request)
	if doErr != nil {
		return nil, 0, doErr
	}
	defer response.Body.Close()

	body, readErr := io.ReadAll(response.Body)
	if readErr != nil {
		return nil, response.StatusCode, readErr
	}
	return body, response.StatusCode, nil
}
