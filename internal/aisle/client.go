// Package aisle looks up the store aisle for an item name over HTTP.
//
// The lookup is best effort: every failure is logged and reported to the
// caller as "no result".
package aisle

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

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// Defaults applied when Config leaves a field empty.
const (
	DefaultQueryParam = "q"
	DefaultTimeout    = 5 * time.Second

	// maxBody caps how much of a response is read.
	maxBody = 1 << 20
)

var _ types.AisleLookup = (*Client)(nil)

// Config configures the aisle client. An empty Endpoint disables lookups.
type Config struct {
	Endpoint   string
	QueryParam string
	Timeout    time.Duration
}

// Client queries an aisle endpoint with GET <endpoint>?<param>=<item>.
//
// Accepted response bodies:
//
//	{"aisle": "A12"}
//	{"results": [{"aisle": "A12"}, ...]}
//
// The first non-empty aisle wins.
type Client struct {
	endpoint string
	param    string
	http     *http.Client
	logger   *slog.Logger
}

// New returns a client for cfg. A nil logger discards log output.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.QueryParam == "" {
		cfg.QueryParam = DefaultQueryParam
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		endpoint: strings.TrimSpace(cfg.Endpoint),
		param:    cfg.QueryParam,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger.With("component", "aisle"),
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

// Lookup returns the aisle for item. ok is false when the client is disabled,
// the item is blank, or the lookup fails for any reason.
func (c *Client) Lookup(ctx context.Context, item string) (string, bool) {
	item = strings.TrimSpace(item)
	if !c.Enabled() || item == "" {
		return "", false
	}

	aisle, err := c.fetch(ctx, item)
	if err != nil {
		c.logger.Warn("aisle lookup failed", "item", item, "err", err)
		return "", false
	}
	return aisle, true
}

func (c *Client) fetch(ctx context.Context, item string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: bad endpoint: %w", types.ErrEnrichmentUnavailable, err)
	}
	q := u.Query()
	q.Set(c.param, item)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrEnrichmentUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrEnrichmentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", types.ErrEnrichmentUnavailable, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", types.ErrEnrichmentUnavailable, err)
	}
	aisle := body.first()
	if aisle == "" {
		return "", fmt.Errorf("%w: no aisle for %q", types.ErrEnrichmentUnavailable, item)
	}
	return aisle, nil
}

type response struct {
	Aisle   string `json:"aisle"`
	Results []struct {
		Aisle string `json:"aisle"`
	} `json:"results"`
}

func (r response) first() string {
	if a := strings.TrimSpace(r.Aisle); a != "" {
		return a
	}
	for _, res := range r.Results {
		if a := strings.TrimSpace(res.Aisle); a != "" {
			return a
		}
	}
	return ""
}
