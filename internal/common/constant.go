// Package common contains constants and sentinel errors shared by the
// mindcase client and the development backend.
package common

const (
	// AuthorizationHeader carries "Bearer <token>" on authenticated calls.
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// RequestIDHeader correlates client and server log lines.
	RequestIDHeader = "X-Request-ID"

	// APIKeyHeader authenticates against the exercise catalog.
	APIKeyHeader = "X-Api-Key"
)
