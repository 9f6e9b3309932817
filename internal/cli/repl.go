package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, arg string) error
	NewNote(ctx context.Context) error
	EditNote(ctx context.Context) error
	Delete(ctx context.Context) error
	Cancel(ctx context.Context) error
	Back(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on a. Unknown commands are reported back to the user; the loop
// exits on scanner EOF or "exit"/"quit".
//
// Prompt & commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list | l       — list notes (re-fetches)
//	  - search [text]  — set the search filter; no text clears it
//	  - show <n>       — preview the n-th listed note
//	  - new            — create a note
//	  - edit           — edit the previewed note
//	  - delete | rm    — delete the previewed note (asks first)
//	  - cancel         — dismiss an open form, keeping nothing
//	  - back | b       — leave the preview
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are ignored here; handlers surface
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("notedesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, show, new, edit, delete, cancel, (b)ack, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <number>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "new":
			_ = a.NewNote(ctx)

		case "edit":
			_ = a.EditNote(ctx)

		case "delete", "rm":
			_ = a.Delete(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "b", "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
