// Package cli provides the interactive notedesk command-line client.
//
// It wires configuration, the local state store, the session manager, the API
// client, and the notes controller into an interactive REPL. Typical flow:
// restore a persisted session, fetch the note list, and execute user commands
// until exit. The REPL is presentation only; every invariant lives in the
// session and controller packages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dstepanovs/notedesk/internal/api"
	"github.com/dstepanovs/notedesk/internal/config"
	"github.com/dstepanovs/notedesk/internal/controller"
	"github.com/dstepanovs/notedesk/internal/logging"
	"github.com/dstepanovs/notedesk/internal/session"
	"github.com/dstepanovs/notedesk/internal/store"
)

type App struct {
	config  *config.Config
	session *session.Manager
	notes   *controller.Controller
	store   *store.SQLiteStore
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	st, err := store.Open(ctx, cfg.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}

	a := &App{
		config: cfg,
		store:  st,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}

	// The session manager and API client depend on each other (token source
	// one way, login exchange the other); the closure breaks the cycle.
	var sess *session.Manager
	client := api.New(cfg.ServerBaseURL, cfg.RequestTimeout, api.TokenFunc(func() (string, bool) {
		return sess.Token()
	}), log)
	sess = session.NewManager(st, client, log)

	a.session = sess
	a.notes = controller.New(client, a.confirmPrompt, log)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	fmt.Fprintln(a.out, "Welcome to notedesk (type 'help' for commands)")

	a.session.Restore(ctx)
	if current := a.session.Current(); current.Active() {
		fmt.Fprintf(a.out, "Logged in as %s\n", current.Identity.Email)
		a.notes.Init(ctx)
		a.renderNotes()
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Active()
}

func (a *App) getStatus() string {
	current := a.session.Current()
	if !current.Active() {
		return ""
	}
	return fmt.Sprintf("(%s) ", current.Identity.Email)
}

func (a *App) confirmPrompt(question string) bool {
	return Confirm(a.reader, question, a.out)
}
