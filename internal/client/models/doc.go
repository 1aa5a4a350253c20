// Package models defines the client-side records exchanged with the mindcase
// backend and kept in the local store. JSON tags follow the backend's wire
// format (camelCase fields, "_id" for server-assigned identifiers).
package models
