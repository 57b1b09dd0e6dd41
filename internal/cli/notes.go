package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"jotbook/internal/model"
	"jotbook/internal/store"
)

// AddNote collects a title, multi-line content, and a category, and
// stores a new note for the logged-in user. Empty title or content is
// rejected here; the store does not enforce it.
func (a *App) AddNote() error {
	title, err := promptLine(a.reader, a.out, "Title")
	if err != nil {
		return err
	}
	content, err := promptMultiline(a.reader, a.out, "Content")
	if err != nil {
		return err
	}
	if title == "" || content == "" {
		fmt.Fprintln(a.out, "Title and content are required.")
		return nil
	}
	category, err := promptCategory(a.reader, a.out, model.CategoryWork)
	if err != nil {
		return err
	}

	n, err := a.notes.Create(a.user.ID, title, content, category)
	if err != nil {
		return err
	}
	a.logger.Debug("note created", "note_id", n.ID)
	fmt.Fprintf(a.out, "Saved %q.\n", n.Title)
	return nil
}

// ListNotes prints the user's notes. An optional first argument of
// "newest" or "oldest" sorts by creation date; any remaining text is a
// case-insensitive search over titles and content. With no arguments,
// notes appear in storage order.
func (a *App) ListNotes(args []string) error {
	notes := a.notes.ListByOwner(a.user.ID)

	order := ""
	if len(args) > 0 && (args[0] == "newest" || args[0] == "oldest") {
		order = args[0]
		args = args[1:]
	}
	if query := strings.Join(args, " "); query != "" {
		notes = filterNotes(notes, query)
	}
	notes = sortNotesByDate(notes, order)

	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes found.")
		return nil
	}
	for i, n := range notes {
		fmt.Fprintf(a.out, "%2d. [%s] %s (%s)\n", i+1, n.Category, n.Title, n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// ShowNote prints one note in full.
func (a *App) ShowNote() error {
	n, err := a.selectNote()
	if err != nil || n == nil {
		return err
	}
	fmt.Fprintf(a.out, "\n%s [%s]\ncreated %s, updated %s\n\n%s\n",
		n.Title, n.Category,
		n.CreatedAt.Format("2006-01-02 15:04"), n.UpdatedAt.Format("2006-01-02 15:04"),
		n.Content)
	return nil
}

// EditNote updates one of the user's notes. Empty answers keep the
// current value.
func (a *App) EditNote() error {
	n, err := a.selectNote()
	if err != nil || n == nil {
		return err
	}

	title, err := promptLine(a.reader, a.out, fmt.Sprintf("Title [%s]", n.Title))
	if err != nil {
		return err
	}
	if title != "" {
		n.Title = title
	}
	content, err := promptMultiline(a.reader, a.out, "Content (empty to keep)")
	if err != nil {
		return err
	}
	if content != "" {
		n.Content = content
	}
	category, err := promptCategory(a.reader, a.out, n.Category)
	if err != nil {
		return err
	}
	n.Category = category

	updated, err := a.notes.Update(a.user.ID, *n)
	if err != nil {
		if msg := friendlyNoteErr(err); msg != "" {
			fmt.Fprintln(a.out, msg)
			return nil
		}
		return err
	}
	a.logger.Debug("note updated", "note_id", updated.ID)
	fmt.Fprintf(a.out, "Updated %q.\n", updated.Title)
	return nil
}

// DeleteNote removes one of the user's notes after confirmation.
func (a *App) DeleteNote() error {
	n, err := a.selectNote()
	if err != nil || n == nil {
		return err
	}

	answer, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete %q? (y/N)", n.Title))
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.notes.Delete(a.user.ID, n.ID); err != nil {
		if msg := friendlyNoteErr(err); msg != "" {
			fmt.Fprintln(a.out, msg)
			return nil
		}
		return err
	}
	a.logger.Debug("note deleted", "note_id", n.ID)
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// selectNote lists the user's notes and prompts for a number. Returns
// nil with no error when there is nothing to select or the input does
// not name a note.
func (a *App) selectNote() (*model.Note, error) {
	notes := a.notes.ListByOwner(a.user.ID)
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet.")
		return nil, nil
	}
	for i, n := range notes {
		fmt.Fprintf(a.out, "%2d. [%s] %s\n", i+1, n.Category, n.Title)
	}

	answer, err := promptLine(a.reader, a.out, "Note number")
	if err != nil {
		return nil, err
	}
	i, err := strconv.Atoi(answer)
	if err != nil || i < 1 || i > len(notes) {
		fmt.Fprintf(a.out, "No note %q.\n", answer)
		return nil, nil
	}
	n := notes[i-1]
	return &n, nil
}

// filterNotes returns the notes whose title or content contains query,
// compared case-insensitively.
func filterNotes(notes []model.Note, query string) []model.Note {
	query = strings.ToLower(query)
	var matched []model.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), query) ||
			strings.Contains(strings.ToLower(n.Content), query) {
			matched = append(matched, n)
		}
	}
	return matched
}

// sortNotesByDate returns a copy sorted by creation date. Order is
// "newest", "oldest", or "" for storage order unchanged.
func sortNotesByDate(notes []model.Note, order string) []model.Note {
	if order == "" {
		return notes
	}
	sorted := make([]model.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == "oldest" {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[j].CreatedAt.Before(sorted[i].CreatedAt)
	})
	return sorted
}

// friendlyNoteErr maps store refusals to user-facing messages; empty
// means the error is not one the user can act on.
func friendlyNoteErr(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "That note no longer exists."
	case errors.Is(err, store.ErrNotOwner):
		return "That note belongs to another account."
	}
	return ""
}
