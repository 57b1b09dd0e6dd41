package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// commands is the surface the REPL dispatches to. The real App type
// satisfies it; tests provide a lightweight fake.
type commands interface {
	loggedIn() bool
	Register() error
	Login() error
	Logout() error
	Profile() error
	AddNote() error
	ListNotes(args []string) error
	ShowNote() error
	EditNote() error
	DeleteNote() error
}

const (
	helpLoggedOut = "Commands: register, login, help, exit"
	helpLoggedIn  = "Commands: add, list [newest|oldest] [search text], show, edit, delete, profile, logout, help, exit"
)

// runREPL reads a line, parses the first token as the command, and
// dispatches to c. Unknown commands and commands issued in the wrong
// login state are reported back to the user. The loop ends on EOF,
// "exit"/"quit", or ctx cancellation.
//
// Command lines are read on a separate goroutine so cancellation
// unblocks the loop even while it is waiting for input; a read in
// flight at that point is abandoned. Reads issued by command handlers
// happen on the calling goroutine, between line requests, so the two
// never touch the reader at the same time.
func runREPL(ctx context.Context, c commands, prompt func() string, reader *bufio.Reader, out io.Writer) {
	type line struct {
		text string
		err  error
	}
	requests := make(chan struct{})
	lines := make(chan line)
	go func() {
		for range requests {
			text, err := reader.ReadString('\n')
			lines <- line{text, err}
			if err != nil {
				return
			}
		}
	}()
	defer close(requests)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprint(out, prompt())
		requests <- struct{}{}

		var l line
		select {
		case <-ctx.Done():
			return
		case l = <-lines:
		}

		fields := strings.Fields(l.text)
		if len(fields) == 0 {
			if l.err != nil {
				return
			}
			continue
		}

		var err error
		switch cmd := fields[0]; cmd {
		case "exit", "quit":
			return
		case "help":
			if c.loggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}
		case "register", "login":
			if c.loggedIn() {
				fmt.Fprintln(out, "Already logged in. Use 'logout' first.")
				break
			}
			if cmd == "register" {
				err = c.Register()
			} else {
				err = c.Login()
			}
		case "add", "list", "show", "edit", "delete", "profile", "logout":
			if !c.loggedIn() {
				fmt.Fprintln(out, "Please 'login' or 'register' first.")
				break
			}
			switch cmd {
			case "add":
				err = c.AddNote()
			case "list":
				err = c.ListNotes(fields[1:])
			case "show":
				err = c.ShowNote()
			case "edit":
				err = c.EditNote()
			case "delete":
				err = c.DeleteNote()
			case "profile":
				err = c.Profile()
			case "logout":
				err = c.Logout()
			}
		default:
			fmt.Fprintf(out, "Unknown command %q. Type 'help'.\n", cmd)
		}

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if l.err != nil {
			return
		}
	}
}
