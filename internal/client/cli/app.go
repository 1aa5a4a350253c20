package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mindcase/mindcase/internal/client/app"
	"github.com/mindcase/mindcase/internal/client/config"
	"github.com/mindcase/mindcase/internal/logging"
)

type App struct {
	state  *app.State
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp wires the client from configuration, reading from stdin and
// writing to stdout.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) *App {
	return newApp(app.New(ctx, c, logger), os.Stdin, os.Stdout)
}

func newApp(s *app.State, in io.Reader, out io.Writer) *App {
	return &App{state: s, reader: bufio.NewReader(in), out: out, now: time.Now}
}

// Run restores the previous session and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.state.Close()

	a.state.Bootstrap(ctx)
	fmt.Fprintln(a.out, "Welcome to mindcase (type 'help' for commands)")
	if sess, ok := a.state.Session.Current(); ok {
		fmt.Fprintf(a.out, "Signed in as %s\n", sess.DisplayName)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.state.Authenticated()
}

func (a *App) getStatus() string {
	if sess, ok := a.state.Session.Current(); ok {
		return fmt.Sprintf("(%s)", sess.DisplayName)
	}
	return ""
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
