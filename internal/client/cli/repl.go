package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Moods(ctx context.Context) error
	SetMood(ctx context.Context, args []string) error

	Journals(ctx context.Context) error
	NewJournal(ctx context.Context) error
	EditJournal(ctx context.Context, args []string) error
	DeleteJournal(ctx context.Context, args []string) error

	Today(ctx context.Context) error
	AddFood(ctx context.Context) error
	DeleteFood(ctx context.Context, args []string) error
	Steps(ctx context.Context, args []string) error
	Weekly(ctx context.Context) error

	Exercises(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error

	Chat(ctx context.Context, args []string) error
	Chats(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, exercises [muscle] [type], fav <name>, favorites, exit"
	helpSignedIn  = "Available commands: moods, mood <type>, journals, journal, editjournal <id>, deljournal <id>, " +
		"today, food, delfood <id>, steps <n>, weekly, exercises [muscle] [type], fav <name>, favorites, " +
		"chat <text>, chats, logout, exit"
)

// runREPL starts a read-eval-print loop for the mindcase CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands that talk to the backend require a session; the exercise catalog
// and favorites are available signed out.
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mc %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsSession(cmd) && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "moods":
			cmdErr = a.Moods(ctx)
		case "mood":
			cmdErr = a.SetMood(ctx, args)

		case "journals":
			cmdErr = a.Journals(ctx)
		case "journal":
			cmdErr = a.NewJournal(ctx)
		case "editjournal":
			cmdErr = a.EditJournal(ctx, args)
		case "deljournal":
			cmdErr = a.DeleteJournal(ctx, args)

		case "today":
			cmdErr = a.Today(ctx)
		case "food":
			cmdErr = a.AddFood(ctx)
		case "delfood":
			cmdErr = a.DeleteFood(ctx, args)
		case "steps":
			cmdErr = a.Steps(ctx, args)
		case "weekly":
			cmdErr = a.Weekly(ctx)

		case "exercises":
			cmdErr = a.Exercises(ctx, args)
		case "fav":
			cmdErr = a.Favorite(ctx, args)
		case "favorites":
			cmdErr = a.Favorites(ctx)

		case "chat":
			cmdErr = a.Chat(ctx, args)
		case "chats":
			cmdErr = a.Chats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}

func needsSession(cmd string) bool {
	switch cmd {
	case "logout", "moods", "mood", "journals", "journal", "editjournal", "deljournal",
		"today", "food", "delfood", "steps", "weekly", "chat", "chats":
		return true
	}
	return false
}
