package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindcase/mindcase/internal/client/repositories/kv"
	"github.com/mindcase/mindcase/internal/common"
	"github.com/mindcase/mindcase/internal/logging"
	"github.com/mindcase/mindcase/internal/netx"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   kv.Repository
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL (e.g. http://localhost:5000/api).
// The bearer token is looked up in store under kv.KeyAuthToken per request.
func NewHTTPClient(baseURL string, timeout time.Duration, store kv.Repository, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		logger:  logger,
	}
}

// envelope is the backend's response wrapper.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Do sends a JSON request and decodes the payload into out (which may be nil).
// body, when non-nil, is JSON-encoded.
func (c *HTTPClient) Do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, reqID)

	if token := c.token(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	start := time.Now()
	status, raw, err := netx.Send(c.http, req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return &NetworkError{Op: op, Err: err}
	}

	c.logger.Debug(ctx, "request done",
		"method", method, "path", path, "status", status,
		"duration", time.Since(start), "request_id", reqID)

	if !netx.IsSuccess(status) {
		return &APIError{Status: status, Message: errorMessage(status, raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload(raw), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *HTTPClient) token(ctx context.Context) string {
	if c.store == nil {
		return ""
	}
	token, ok, err := c.store.Get(ctx, kv.KeyAuthToken)
	if err != nil {
		c.logger.Debug(ctx, "token lookup failed", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// payload returns the "data" member of an envelope, or raw itself.
func payload(raw []byte) []byte {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if len(env.Data) == 0 {
		return raw
	}
	return env.Data
}

func errorMessage(status int, raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
