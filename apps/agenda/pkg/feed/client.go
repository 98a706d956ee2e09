package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"os"
	"time"
)

type client struct {
	source string
}

// New returns a Client reading events from source, which is either an
// http(s) URL or a path on disk.
func New(source string) Client {
	return client{
		source: source,
	}
}

func (client client) Fetch(ctx context.Context) ([]RawEvent, error) {
	body, err := client.retrieve(ctx)
	if err != nil {
		return nil, err
	}

	return extractEvents(body)
}

func (client client) retrieve(ctx context.Context) ([]byte, error) {
	parsed, err := neturl.Parse(client.source)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return client.retrieveHTTP(ctx)
	}

	body, err := os.ReadFile(client.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	return body, nil
}

func (client client) retrieveHTTP(ctx context.Context) ([]byte, error) {
	httpClient := &http.Client{
		//nolint:mnd // Set a reasonable timeout for fetching the feed
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	// every load must reflect the live resource, not a cached copy
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: res.StatusCode}
	}

	return io.ReadAll(res.Body)
}

func extractEvents(body []byte) ([]RawEvent, error) {
	var records []RawEvent
	if err := json.Unmarshal(body, &records); err == nil && records != nil {
		return records, nil
	}

	var envelope struct {
		Events []RawEvent `json:"events"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse feed body: %w", err)
	}

	if envelope.Events == nil {
		return nil, ErrInvalidPayload
	}

	return envelope.Events, nil
}
