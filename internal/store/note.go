package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"jotbook/internal/kvstore"
	"jotbook/internal/model"
)

// NoteStore owns the notes record. Mutations require the acting
// user's id and refuse to touch notes owned by anyone else.
type NoteStore struct {
	mu sync.Mutex
	kv *kvstore.Store
}

func NewNoteStore(kv *kvstore.Store) *NoteStore {
	return &NoteStore{kv: kv}
}

func (s *NoteStore) loadAll() []model.Note {
	raw, err := s.kv.Get(kvstore.KeyNotes)
	if err != nil || raw == nil {
		return nil
	}
	var notes []model.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil
	}
	return notes
}

func (s *NoteStore) saveAll(notes []model.Note) error {
	raw, err := json.Marshal(notes)
	if err != nil {
		return unavailable("encode notes", err)
	}
	if err := s.kv.Set(kvstore.KeyNotes, raw); err != nil {
		return unavailable("save notes", err)
	}
	return nil
}

// Create appends a note for ownerID. CreatedAt and UpdatedAt start
// equal.
func (s *NoteStore) Create(ownerID, title, content string, category model.Category) (*model.Note, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	n := model.Note{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.saveAll(append(s.loadAll(), n)); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByOwner returns ownerID's notes in storage order.
func (s *NoteStore) ListByOwner(ownerID string) []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	var notes []model.Note
	for _, n := range s.loadAll() {
		if n.UserID == ownerID {
			notes = append(notes, n)
		}
	}
	return notes
}

// Update replaces the title, content, and category of the note with
// n.ID. ID, UserID, and CreatedAt are taken from the stored record;
// UpdatedAt is set to the time of this call.
func (s *NoteStore) Update(actingUserID string, n model.Note) (*model.Note, error) {
	if !n.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.loadAll()
	idx := -1
	for i := range notes {
		if notes[i].ID == n.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}
	if notes[idx].UserID != actingUserID {
		return nil, ErrNotOwner
	}

	updated := notes[idx]
	updated.Title = n.Title
	updated.Content = n.Content
	updated.Category = n.Category
	updated.UpdatedAt = time.Now().UTC()
	notes[idx] = updated

	if err := s.saveAll(notes); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the note with noteID if actingUserID owns it.
// Deleting an id that does not exist succeeds and changes nothing.
func (s *NoteStore) Delete(actingUserID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.loadAll()
	idx := -1
	for i := range notes {
		if notes[i].ID == noteID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	if notes[idx].UserID != actingUserID {
		return ErrNotOwner
	}

	return s.saveAll(append(notes[:idx], notes[idx+1:]...))
}
