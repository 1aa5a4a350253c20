package exercises

import "errors"

var (
	// ErrConfiguration means the API key is missing, a placeholder, or was
	// rejected upstream.
	ErrConfiguration = errors.New("exercise catalog misconfigured")
	ErrRateLimited   = errors.New("exercise catalog rate limit exceeded")
	// ErrUpstreamUnavailable is recoverable by showing Fallback.
	ErrUpstreamUnavailable = errors.New("exercise catalog unavailable")
)
