package controller

import "github.com/dstepanovs/notedesk/internal/models"

// Mode is the current view of the notes screen.
type Mode int

const (
	// ModeBrowsing shows the list, nothing selected.
	ModeBrowsing Mode = iota
	// ModePreviewing shows one selected note, read-only.
	ModePreviewing
	// ModeCreating shows the new-note form; never has a selection.
	ModeCreating
	// ModeEditing shows the form pre-filled from the selected note.
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModePreviewing:
		return "previewing"
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Draft holds the form's transient title/content, keyed by the identity of
// the note being edited (zero for a new note). It is reset whenever that
// identity changes so a background refresh can never leave the form pointing
// at a stale entity.
type Draft struct {
	NoteID  int64
	Title   string
	Content string
}

// State is a value snapshot of the controller for the presentation layer.
// Mutating it has no effect on the controller.
type State struct {
	Notes     []models.Note
	Search    string
	Selection *models.Note
	Mode      Mode
	Draft     Draft

	// Loading brackets list fetches and deletes; Saving brackets
	// create/update. They are independent so the list can refresh while a
	// form is busy.
	Loading bool
	Saving  bool

	// Err is the last operation's failure message, "" when none. It is
	// cleared at the start of every new operation.
	Err string
}
