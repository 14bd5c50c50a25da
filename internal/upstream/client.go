// Package upstream contains all access to the council's Cloud9 mobile API.
// The service layer depends on the API interface, not on the HTTP client,
// which allows the service to be unit-tested with a mock.
// No business logic lives here, only transport and wire types.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/metrics"
)

// API defines the two council endpoints the service consumes.
// Every returned error wraps domain.ErrUpstreamUnavailable.
type API interface {
	// Addresses looks up the properties registered at an already normalised postcode.
	Addresses(ctx context.Context, postcode string) ([]AddressItem, error)

	// WasteCollections fetches the raw container slots for a UPRN.
	WasteCollections(ctx context.Context, uprn string) (WasteCollectionDates, error)
}

// Options holds the endpoint, timeout and the static identity headers the
// council API expects from its mobile app.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	Authorization string
	APIVersion    string
	AppVersion    string
	Platform      string
	UserAgent     string
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL    string
	header     http.Header
	httpClient *http.Client
	log        *slog.Logger
	metrics    *metrics.Metrics
}

// NewClient constructs a Client. A zero Timeout falls back to 30 seconds.
// log and m may be nil.
func NewClient(opts Options, log *slog.Logger, m *metrics.Metrics) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	h := http.Header{}
	h.Set("Accept", "application/json")
	setIfNotEmpty(h, "Authorization", opts.Authorization)
	setIfNotEmpty(h, "X-Api-Version", opts.APIVersion)
	setIfNotEmpty(h, "X-App-Version", opts.AppVersion)
	setIfNotEmpty(h, "X-Platform", opts.Platform)
	setIfNotEmpty(h, "User-Agent", opts.UserAgent)

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		header:     h,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        log,
		metrics:    m,
	}
}

// compile-time check: Client must satisfy API.
var _ API = (*Client)(nil)

// Addresses calls GET {base}/addresses?postcode={postcode}.
func (c *Client) Addresses(ctx context.Context, postcode string) ([]AddressItem, error) {
	endpoint := c.baseURL + "/addresses?" + url.Values{"postcode": {postcode}}.Encode()

	var body AddressesResponse
	if err := c.getJSON(ctx, "addresses", endpoint, &body); err != nil {
		return nil, fmt.Errorf("%w: lookup addresses: %w", domain.ErrUpstreamUnavailable, err)
	}
	return body.Addresses, nil
}

// WasteCollections calls GET {base}/wastecollections/{uprn}.
func (c *Client) WasteCollections(ctx context.Context, uprn string) (WasteCollectionDates, error) {
	endpoint := c.baseURL + "/wastecollections/" + url.PathEscape(uprn)

	var body WasteCollectionsResponse
	if err := c.getJSON(ctx, "wastecollections", endpoint, &body); err != nil {
		return WasteCollectionDates{}, fmt.Errorf("%w: fetch collections: %w", domain.ErrUpstreamUnavailable, err)
	}
	return body.WasteCollectionDates, nil
}

// getJSON issues one GET and decodes a 2xx JSON body into dest.
// There are no retries: a failure is reported to the caller straight away.
func (c *Client) getJSON(ctx context.Context, name, endpoint string, dest any) (err error) {
	callID := uuid.NewString()
	start := time.Now()
	status := 0
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		c.metrics.ObserveUpstream(name, outcome, start)
		c.log.DebugContext(ctx, "upstream request",
			"call_id", callID,
			"endpoint", name,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header = c.header.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setIfNotEmpty(h http.Header, key, value string) {
	if value != "" {
		h.Set(key, value)
	}
}
