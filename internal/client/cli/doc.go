// Package cli provides the interactive mindcase command-line client.
//
// It restores the previous session, then runs a REPL over the state
// services: mood check-ins, journal entries, food and step tracking, the
// exercise catalog with local favorites, and the support chat.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
