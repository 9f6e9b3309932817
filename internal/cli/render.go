package cli

import (
	"fmt"

	"github.com/dstepanovs/notedesk/internal/controller"
)

const snippetLength = 80

// renderNotes prints the current list view: an error banner if the last
// operation failed, then the (possibly stale) notes.
func (a *App) renderNotes() {
	state := a.notes.State()

	if state.Err != "" {
		fmt.Fprintf(a.out, "! %s\n", state.Err)
	}

	if len(state.Notes) == 0 {
		if state.Search != "" {
			fmt.Fprintf(a.out, "No notes match %q.\n", state.Search)
		} else {
			fmt.Fprintln(a.out, "No notes yet.")
		}
		return
	}

	if state.Search != "" {
		fmt.Fprintf(a.out, "Notes matching %q:\n", state.Search)
	}
	for i, note := range state.Notes {
		fmt.Fprintf(a.out, "%3d. %s — %s (%s)\n",
			i+1, note.Title, snippet(note.Content), note.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) renderPreview() {
	state := a.notes.State()
	if state.Selection == nil {
		return
	}
	note := state.Selection
	fmt.Fprintf(a.out, "\n# %s\nUpdated: %s\n\n%s\n\n", note.Title,
		note.UpdatedAt.Format("2006-01-02 15:04"), note.Content)
}

// renderSaveOutcome reports a save: either the refreshed list or, when the
// form is still open, the error that kept it open.
func (a *App) renderSaveOutcome(verb string) {
	state := a.notes.State()
	if state.Mode == controller.ModeCreating || state.Mode == controller.ModeEditing {
		fmt.Fprintf(a.out, "Save failed: %s (your input is kept; retry or 'cancel')\n", state.Err)
		return
	}
	fmt.Fprintf(a.out, "Note %s\n", verb)
	a.renderNotes()
}

// snippet shortens content for the list view the same way the note cards do.
func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + " ..."
}
