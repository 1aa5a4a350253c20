// Package client talks to the mindcase backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) with one method per
//     backend endpoint: auth, moods, journals, nutrition and chat.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that reads
//     the bearer token from the local store on every call, unwraps the
//     backend's {success, data, message} envelope and maps failures to
//     typed errors.
//
// # Error Handling
//
// Transport failures are *NetworkError and match ErrNetwork. Non-2xx
// responses are *APIError and match ErrAPI; 401 and 403 additionally match
// ErrUnauthorized. Use errors.Is / errors.As.
//
// Requests are never retried. Each call is bounded by the configured
// timeout and by ctx.
package client
