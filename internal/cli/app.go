// Package cli is the interactive surface of jotbook: a small REPL that
// drives the user, note, and session stores. All user-facing output
// goes to the app's writer; diagnostics go to the logger.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jotbook/internal/model"
	"jotbook/internal/store"
)

type App struct {
	users    *store.UserStore
	notes    *store.NoteStore
	sessions *store.SessionStore

	user   *model.User
	reader *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

func NewApp(users *store.UserStore, notes *store.NoteStore, sessions *store.SessionStore, logger *slog.Logger) *App {
	return &App{
		users:    users,
		notes:    notes,
		sessions: sessions,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		logger:   logger,
	}
}

// LoadSession restores the logged-in user from the session record, if
// one exists. Called once at startup.
func (a *App) LoadSession() {
	a.user = a.sessions.Current()
	if a.user != nil {
		a.logger.Debug("session restored", "user_id", a.user.ID)
	}
}

func (a *App) loggedIn() bool { return a.user != nil }

func (a *App) prompt() string {
	if a.user != nil {
		return fmt.Sprintf("jotbook (%s)> ", a.user.Username)
	}
	return "jotbook> "
}

// Run starts the REPL and blocks until the user exits, input ends, or
// ctx is canceled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "jotbook — your notes, kept locally. Type 'help' for commands.")
	a.LoadSession()
	if a.user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.user.Username)
	}
	runREPL(ctx, a, a.prompt, a.reader, a.out)
}
