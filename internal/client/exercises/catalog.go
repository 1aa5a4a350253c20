package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/client/repositories/kv"
	"github.com/mindcase/mindcase/internal/common"
	"github.com/mindcase/mindcase/internal/logging"
	"github.com/mindcase/mindcase/internal/netx"
)

const (
	DefaultBaseURL = "https://api.api-ninjas.com/v1/exercises"
	DefaultTTL     = 24 * time.Hour

	// PlaceholderAPIKey ships in sample configs and counts as no key.
	PlaceholderAPIKey = "YOUR_API_NINJAS_KEY_HERE"
)

var (
	invalidKeyRe = regexp.MustCompile(`(?i)invalid api key`)
	downRe       = regexp.MustCompile(`(?i)currently down for free users`)
)

// Filter narrows the catalog; empty fields are not sent.
type Filter struct {
	Muscle string
	Type   string
}

// Result is what Fetch returns. FromCache reports whether the upstream was
// skipped.
type Result struct {
	Items     []models.Exercise
	FromCache bool
}

// cachedResponse is the value stored under each cache key.
type cachedResponse struct {
	FetchedAt time.Time         `json:"fetchedAt"`
	Payload   []models.Exercise `json:"payload"`
}

type Catalog struct {
	APIKey     string
	BaseURL    string
	TTL        time.Duration
	HTTPClient *http.Client
	Store      kv.Repository
	Logger     logging.Logger
	// Now is overridable in tests.
	Now func() time.Time
}

// CacheKey is the canonical store key for f: non-empty parameters sorted by
// name and URL-encoded, or "all".
func CacheKey(f Filter) string {
	q := f.query().Encode()
	if q == "" {
		q = "all"
	}
	return kv.PrefixExercisesCache + q
}

func (f Filter) query() url.Values {
	q := url.Values{}
	if m := strings.TrimSpace(f.Muscle); m != "" {
		q.Set("muscle", m)
	}
	if t := strings.TrimSpace(f.Type); t != "" {
		q.Set("type", t)
	}
	return q
}

func (c *Catalog) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Catalog) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultTTL
}

func (c *Catalog) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Nop()
}

func (c *Catalog) validateKey() error {
	switch {
	case c.APIKey == "" || c.APIKey == PlaceholderAPIKey:
		return fmt.Errorf("%w: missing API key, set the exercises API key in the configuration", ErrConfiguration)
	case strings.TrimSpace(c.APIKey) != c.APIKey:
		return fmt.Errorf("%w: API key has leading or trailing whitespace", ErrConfiguration)
	}
	return nil
}

// Fetch returns exercises matching f, from the cache when fresh.
func (c *Catalog) Fetch(ctx context.Context, f Filter) (Result, error) {
	if err := c.validateKey(); err != nil {
		return Result{}, err
	}

	key := CacheKey(f)
	if items, ok := c.readCache(ctx, key); ok {
		return Result{Items: items, FromCache: true}, nil
	}

	items, err := c.fetchUpstream(ctx, f)
	if err != nil {
		return Result{}, err
	}

	c.writeCache(ctx, key, items)
	return Result{Items: items, FromCache: false}, nil
}

func (c *Catalog) readCache(ctx context.Context, key string) ([]models.Exercise, bool) {
	if c.Store == nil {
		return nil, false
	}
	raw, ok, err := c.Store.Get(ctx, key)
	if err != nil {
		c.logger().Debug(ctx, "exercise cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var cached cachedResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		c.logger().Debug(ctx, "exercise cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	if c.now().Sub(cached.FetchedAt) >= c.ttl() {
		return nil, false
	}
	return cached.Payload, true
}

func (c *Catalog) writeCache(ctx context.Context, key string, items []models.Exercise) {
	if c.Store == nil {
		return
	}
	b, err := json.Marshal(cachedResponse{FetchedAt: c.now(), Payload: items})
	if err == nil {
		err = c.Store.Set(ctx, key, string(b))
	}
	if err != nil {
		c.logger().Warn(ctx, "exercise cache write failed", "key", key, "error", err)
	}
}

func (c *Catalog) fetchUpstream(ctx context.Context, f Filter) ([]models.Exercise, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	u := base
	if q := f.query().Encode(); q != "" {
		u += "?" + q
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}
	req.Header.Set(common.APIKeyHeader, c.APIKey)

	status, body, err := netx.Send(httpClient, req)
	if err != nil {
		return nil, &client.NetworkError{Op: "GET exercises", Err: err}
	}
	if !netx.IsSuccess(status) {
		return nil, classify(status, strings.TrimSpace(string(body)))
	}

	var items []models.Exercise
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return items, nil
}

func classify(status int, text string) error {
	apiErr := &client.APIError{Status: status, Message: fmt.Sprintf("API error %d: %s", status, text)}
	switch {
	case status == http.StatusBadRequest && invalidKeyRe.MatchString(text):
		return fmt.Errorf("%w: invalid API key, verify it in the api-ninjas dashboard", ErrConfiguration)
	case status == http.StatusBadRequest && downRe.MatchString(text):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, apiErr)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: key rejected (401), regenerate it or check the header name", ErrConfiguration)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w (429): wait or upgrade the plan", ErrRateLimited)
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, apiErr)
	}
	return apiErr
}

// IsRecoverable reports whether err should be answered with Fallback.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
