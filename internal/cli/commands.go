package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dstepanovs/notedesk/internal/controller"
	"github.com/dstepanovs/notedesk/internal/models"
	"github.com/dstepanovs/notedesk/internal/session"
)

// Login prompts for credentials and performs the login exchange. A rejected
// login is reported inline and the user lands back at the prompt; the
// previous session, if any, survives.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	s, err := a.session.Login(ctx, email, password)
	if err != nil {
		var authErr *session.AuthenticationError
		if errors.As(err, &authErr) {
			fmt.Fprintf(a.out, "Login failed: %s\n", authErr.Message)
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", s.Identity.Email)
	a.notes.Init(ctx)
	a.renderNotes()
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {
	a.notes.Refresh(ctx)
	a.renderNotes()
	return nil
}

// Search sets the filter (empty clears it) and re-fetches.
func (a *App) Search(ctx context.Context, query string) error {
	a.notes.Search(ctx, query)
	a.renderNotes()
	return nil
}

// Show previews the n-th note of the last rendered list (1-based).
func (a *App) Show(ctx context.Context, arg string) error {
	state := a.notes.State()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.Notes) {
		fmt.Fprintf(a.out, "No such note: %s\n", arg)
		return nil
	}

	a.notes.Select(state.Notes[n-1])
	a.renderPreview()
	return nil
}

// NewNote runs the create form: prompt, trim-validate, save. Validation is
// owned here, form-side; the controller never sees an empty title or content.
func (a *App) NewNote(ctx context.Context) error {
	state := a.notes.State()
	if state.Saving {
		fmt.Fprintln(a.out, "A save is already in progress")
		return nil
	}

	// A draft kept after a failed save is offered back instead of being
	// thrown away.
	kept := controller.Draft{}
	if state.Mode == controller.ModeCreating {
		kept = state.Draft
	} else {
		a.notes.New()
	}

	titlePrompt := "Title"
	if kept.Title != "" {
		titlePrompt = fmt.Sprintf("Title [%s]", kept.Title)
	}
	title, err := GetSimpleText(a.reader, titlePrompt, a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = kept.Title
	}

	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = kept.Content
	}

	draft, ok := a.validateDraft(title, content)
	if !ok {
		a.notes.Cancel()
		return nil
	}

	a.notes.SetDraft(draft.Title, draft.Content)
	a.notes.Save(ctx, draft)
	a.renderSaveOutcome("created")
	return nil
}

// EditNote runs the edit form over the previewed note. Pressing Enter on a
// prompt keeps the current value.
func (a *App) EditNote(ctx context.Context) error {
	state := a.notes.State()
	if state.Mode != controller.ModePreviewing || state.Selection == nil {
		fmt.Fprintln(a.out, "Nothing selected; use 'show <number>' first")
		return nil
	}
	note := *state.Selection

	a.notes.Edit(note)

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", note.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = note.Title
	}

	content, err := GetMultiline(a.reader, "Content (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = note.Content
	}

	draft, ok := a.validateDraft(title, content)
	if !ok {
		a.notes.Cancel()
		return nil
	}

	a.notes.SetDraft(draft.Title, draft.Content)
	a.notes.Save(ctx, draft)
	a.renderSaveOutcome("updated")
	return nil
}

// Delete removes the previewed note after the controller's confirmation
// prompt.
func (a *App) Delete(ctx context.Context) error {
	state := a.notes.State()
	if state.Selection == nil {
		fmt.Fprintln(a.out, "Nothing selected; use 'show <number>' first")
		return nil
	}

	a.notes.Delete(ctx, *state.Selection)

	if errMsg := a.notes.State().Err; errMsg != "" {
		fmt.Fprintf(a.out, "Delete failed: %s\n", errMsg)
		return nil
	}
	a.renderNotes()
	return nil
}

// Cancel dismisses an open form. An editing session falls back to the
// preview; a create form falls back to the list.
func (a *App) Cancel(ctx context.Context) error {
	a.notes.Cancel()

	if a.notes.State().Mode == controller.ModePreviewing {
		a.renderPreview()
		return nil
	}
	a.renderNotes()
	return nil
}

func (a *App) Back(ctx context.Context) error {
	a.notes.Back()
	a.renderNotes()
	return nil
}

// validateDraft enforces the form rules: both fields non-empty after
// trimming, title within the service's length cap.
func (a *App) validateDraft(title, content string) (models.NoteDraft, bool) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		fmt.Fprintln(a.out, "Title and content are both required")
		return models.NoteDraft{}, false
	}
	if len([]rune(title)) > models.MaxTitleLength {
		fmt.Fprintf(a.out, "Title is too long (max %d characters)\n", models.MaxTitleLength)
		return models.NoteDraft{}, false
	}
	return models.NoteDraft{Title: title, Content: content}, true
}
