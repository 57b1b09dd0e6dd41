package store

import (
	"errors"
	"testing"

	"jotbook/internal/database"
	"jotbook/internal/kvstore"
	"jotbook/internal/model"
)

func setupNoteTest(t *testing.T) *NoteStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewNoteStore(kvstore.New(db))
}

func TestNoteCreate(t *testing.T) {
	ns := setupNoteTest(t)

	n, err := ns.Create("u1", "groceries", "milk, eggs", model.CategoryPersonal)
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if n.ID == "" {
		t.Error("expected non-empty ID")
	}
	if n.UserID != "u1" {
		t.Errorf("user id = %q, want %q", n.UserID, "u1")
	}
	if !n.CreatedAt.Equal(n.UpdatedAt) {
		t.Error("CreatedAt != UpdatedAt at creation")
	}
}

func TestNoteCreateInvalidCategory(t *testing.T) {
	ns := setupNoteTest(t)

	_, err := ns.Create("u1", "t", "c", model.Category("finance"))
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestListByOwnerFiltersAndOrders(t *testing.T) {
	ns := setupNoteTest(t)

	first, err := ns.Create("u1", "first", "a", model.CategoryWork)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ns.Create("u2", "other", "b", model.CategoryStudy); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := ns.Create("u1", "second", "c", model.CategoryPersonal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := ns.ListByOwner("u1")
	if len(notes) != 2 {
		t.Fatalf("len = %d, want 2", len(notes))
	}
	if notes[0].ID != first.ID || notes[1].ID != second.ID {
		t.Error("notes not in insertion order")
	}

	if got := ns.ListByOwner("u3"); len(got) != 0 {
		t.Errorf("len for stranger = %d, want 0", len(got))
	}
}

func TestNoteUpdate(t *testing.T) {
	ns := setupNoteTest(t)

	created, err := ns.Create("u1", "draft", "v1", model.CategoryWork)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edit := *created
	edit.Title = "final"
	edit.Content = "v2"
	edit.Category = model.CategoryStudy

	updated, err := ns.Update("u1", edit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "final" || updated.Content != "v2" {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("UpdatedAt went backwards")
	}

	notes := ns.ListByOwner("u1")
	if len(notes) != 1 || notes[0].Title != "final" {
		t.Error("stored note not replaced")
	}
}

func TestNoteUpdateNotFound(t *testing.T) {
	ns := setupNoteTest(t)

	_, err := ns.Update("u1", model.Note{ID: "missing", Category: model.CategoryWork})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNoteUpdateNotOwner(t *testing.T) {
	ns := setupNoteTest(t)

	created, err := ns.Create("u1", "private", "body", model.CategoryPersonal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edit := *created
	edit.Title = "stolen"
	_, err = ns.Update("u2", edit)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}

	notes := ns.ListByOwner("u1")
	if len(notes) != 1 || notes[0].Title != "private" {
		t.Error("note mutated by non-owner")
	}
}

func TestNoteDelete(t *testing.T) {
	ns := setupNoteTest(t)

	created, err := ns.Create("u1", "temp", "gone soon", model.CategoryWork)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := ns.Delete("u1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := ns.ListByOwner("u1"); len(got) != 0 {
		t.Errorf("len after delete = %d, want 0", len(got))
	}
}

func TestNoteDeleteIdempotent(t *testing.T) {
	ns := setupNoteTest(t)

	created, err := ns.Create("u1", "keep", "body", model.CategoryWork)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := ns.Delete("u1", "no-such-id"); err != nil {
		t.Fatalf("delete missing id: %v", err)
	}
	notes := ns.ListByOwner("u1")
	if len(notes) != 1 || notes[0].ID != created.ID {
		t.Error("note list changed by no-op delete")
	}
}

func TestNoteCreateStoreUnavailable(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	ns := NewNoteStore(kvstore.New(db))
	db.Close()

	_, err = ns.Create("u1", "title", "content", model.CategoryWork)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestNoteDeleteNotOwner(t *testing.T) {
	ns := setupNoteTest(t)

	created, err := ns.Create("u1", "private", "body", model.CategoryPersonal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := ns.Delete("u2", created.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
	if got := ns.ListByOwner("u1"); len(got) != 1 {
		t.Error("note deleted by non-owner")
	}
}
