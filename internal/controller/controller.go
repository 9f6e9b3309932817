// Package controller owns the notes interaction state machine: which view is
// active (browsing, previewing, creating, editing), the search filter, the
// read-through notes cache, and the busy/error flags the presentation layer
// renders from.
//
// All methods are meant to be driven from a single goroutine; network calls
// happen inline and their outcomes are folded back into state before the
// method returns. Errors from the gateway never escape as errors: they land
// in State.Err.
package controller

import (
	"context"
	"fmt"

	"github.com/dstepanovs/notedesk/internal/logging"
	"github.com/dstepanovs/notedesk/internal/models"
)

// Gateway is the slice of the API client the controller needs.
type Gateway interface {
	ListNotes(ctx context.Context, query string) ([]models.Note, error)
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// ConfirmFunc asks the user a yes/no question before a destructive action.
type ConfirmFunc func(question string) bool

type Controller struct {
	gw      Gateway
	confirm ConfirmFunc
	log     logging.Logger

	mode     Mode
	notes    []models.Note
	search   string
	selected *models.Note
	draft    Draft
	loading  bool
	saving   bool
	errMsg   string

	// fetchSeq orders overlapping list fetches; only the latest may publish.
	fetchSeq uint64
}

// New returns a Controller in Browsing mode with an empty filter. A nil
// confirm skips the prompt and proceeds.
func New(gw Gateway, confirm ConfirmFunc, log logging.Logger) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{gw: gw, confirm: confirm, log: log}
}

// Init issues the initial unfiltered list fetch.
func (c *Controller) Init(ctx context.Context) {
	c.fetch(ctx)
}

// Refresh re-fetches the list with the current search filter.
func (c *Controller) Refresh(ctx context.Context) {
	c.fetch(ctx)
}

// Search updates the filter and re-fetches. The mode is untouched, so a form
// stays open while results change underneath it.
func (c *Controller) Search(ctx context.Context, query string) {
	c.search = query
	c.fetch(ctx)
}

// fetch is the one place list results are published. On failure the previous
// notes stay visible and only Err changes. A response that is no longer the
// latest (a re-entrant Search overtook it) is dropped entirely.
func (c *Controller) fetch(ctx context.Context) {
	c.errMsg = ""
	c.fetchSeq++
	seq := c.fetchSeq
	c.loading = true

	notes, err := c.gw.ListNotes(ctx, c.search)

	if seq != c.fetchSeq {
		c.log.Debug(ctx, "dropping stale list response", "seq", seq, "latest", c.fetchSeq)
		return
	}
	c.loading = false

	if err != nil {
		c.errMsg = err.Error()
		return
	}
	c.notes = notes
}

// Select moves to Previewing with the given note. Ignored while a form is
// active; the form owns the screen until saved or cancelled.
func (c *Controller) Select(note models.Note) {
	if c.mode == ModeCreating || c.mode == ModeEditing {
		return
	}
	n := note
	c.selected = &n
	c.draft = Draft{}
	c.mode = ModePreviewing
}

// New opens the create form. Repeated calls are idempotent; re-entry while a
// save is in flight is refused (the busy flag gates the presentation too, but
// the controller does not rely on that).
func (c *Controller) New() {
	if c.saving {
		return
	}
	c.selected = nil
	c.draft = Draft{}
	c.mode = ModeCreating
}

// Edit opens the edit form pre-filled from the note.
func (c *Controller) Edit(note models.Note) {
	if c.saving {
		return
	}
	n := note
	c.selected = &n
	c.draft = Draft{NoteID: note.ID, Title: note.Title, Content: note.Content}
	c.mode = ModeEditing
}

// SetDraft stores the form's in-progress values so they survive a failed save.
func (c *Controller) SetDraft(title, content string) {
	c.draft.Title = title
	c.draft.Content = content
}

// Save submits the active form: create when in Creating, update the selected
// note when in Editing. The caller has already trim-validated title and
// content; the controller does not re-check. On success the form closes,
// selection clears, and the list is re-fetched from the service rather than
// patched locally. On failure the form stays put with Err set so the user's
// input is not lost.
func (c *Controller) Save(ctx context.Context, values models.NoteDraft) {
	entryMode := c.mode
	if entryMode != ModeCreating && entryMode != ModeEditing {
		return
	}
	if entryMode == ModeEditing && c.selected == nil {
		return
	}

	c.errMsg = ""
	c.saving = true

	var err error
	if entryMode == ModeCreating {
		_, err = c.gw.CreateNote(ctx, values)
	} else {
		_, err = c.gw.UpdateNote(ctx, c.selected.ID, values)
	}

	c.saving = false

	// The user may have cancelled while the request was in flight; a
	// resolving save must not resurrect the form.
	if c.mode != entryMode {
		if err != nil {
			c.log.Warn(ctx, "save failed after navigation", "error", err)
		}
		return
	}

	if err != nil {
		c.errMsg = err.Error()
		return
	}

	c.selected = nil
	c.draft = Draft{}
	c.mode = ModeBrowsing
	c.fetch(ctx)
}

// Delete asks for confirmation, then removes the note. Declining is a no-op.
// On success selection clears, the view returns to Browsing, and the list is
// re-fetched; on failure mode and selection are untouched and Err is set.
func (c *Controller) Delete(ctx context.Context, note models.Note) {
	if !c.confirm(fmt.Sprintf("Delete %q?", note.Title)) {
		return
	}

	c.errMsg = ""
	c.loading = true
	err := c.gw.DeleteNote(ctx, note.ID)
	c.loading = false

	if err != nil {
		c.errMsg = err.Error()
		return
	}

	c.selected = nil
	c.mode = ModeBrowsing
	c.fetch(ctx)
}

// Cancel dismisses the active form, returning to Previewing when a note was
// being edited and to Browsing otherwise. Calling it outside a form is a
// no-op.
func (c *Controller) Cancel() {
	switch c.mode {
	case ModeEditing:
		c.draft = Draft{}
		if c.selected != nil {
			c.mode = ModePreviewing
			return
		}
		c.mode = ModeBrowsing
	case ModeCreating:
		c.draft = Draft{}
		c.mode = ModeBrowsing
	}
}

// Back leaves the preview, clearing the selection. A no-op anywhere else.
func (c *Controller) Back() {
	if c.mode != ModePreviewing {
		return
	}
	c.selected = nil
	c.mode = ModeBrowsing
}

// State returns a value snapshot for rendering.
func (c *Controller) State() State {
	s := State{
		Notes:   append([]models.Note(nil), c.notes...),
		Search:  c.search,
		Mode:    c.mode,
		Draft:   c.draft,
		Loading: c.loading,
		Saving:  c.saving,
		Err:     c.errMsg,
	}
	if c.selected != nil {
		sel := *c.selected
		s.Selection = &sel
	}
	return s
}
