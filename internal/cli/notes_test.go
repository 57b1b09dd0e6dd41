package cli

import (
	"testing"
	"time"

	"jotbook/internal/model"
)

func noteAt(id, title, content string, created time.Time) model.Note {
	return model.Note{ID: id, Title: title, Content: content, CreatedAt: created}
}

func TestFilterNotes(t *testing.T) {
	now := time.Now()
	notes := []model.Note{
		noteAt("1", "Groceries", "milk and eggs", now),
		noteAt("2", "Exam plan", "chapters 1-3", now),
		noteAt("3", "misc", "buy MILK", now),
	}

	got := filterNotes(notes, "milk")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("matched ids = %q, %q; want 1, 3", got[0].ID, got[1].ID)
	}

	if got := filterNotes(notes, "exam"); len(got) != 1 || got[0].ID != "2" {
		t.Error("title match failed")
	}
	if got := filterNotes(notes, "nothing here"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSortNotesByDate(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	notes := []model.Note{
		noteAt("mid", "b", "", base.Add(time.Hour)),
		noteAt("old", "a", "", base),
		noteAt("new", "c", "", base.Add(2*time.Hour)),
	}

	newest := sortNotesByDate(notes, "newest")
	if newest[0].ID != "new" || newest[2].ID != "old" {
		t.Errorf("newest order = %q..%q, want new..old", newest[0].ID, newest[2].ID)
	}

	oldest := sortNotesByDate(notes, "oldest")
	if oldest[0].ID != "old" || oldest[2].ID != "new" {
		t.Errorf("oldest order = %q..%q, want old..new", oldest[0].ID, oldest[2].ID)
	}

	// Storage order untouched without an explicit order.
	same := sortNotesByDate(notes, "")
	if same[0].ID != "mid" {
		t.Error("storage order not preserved")
	}
	if notes[0].ID != "mid" {
		t.Error("input slice mutated")
	}
}
