package store

import (
	"encoding/json"

	"jotbook/internal/kvstore"
	"jotbook/internal/model"
)

// SessionStore owns the current-session record: a denormalized
// snapshot of the logged-in user, or nothing. It is kept in sync with
// the canonical user list by UserStore on profile updates.
type SessionStore struct {
	kv *kvstore.Store
}

func NewSessionStore(kv *kvstore.Store) *SessionStore {
	return &SessionStore{kv: kv}
}

// Current returns the logged-in user snapshot, or nil when no session
// exists. An unreadable or undecodable record counts as no session.
func (s *SessionStore) Current() *model.User {
	raw, err := s.kv.Get(kvstore.KeySession)
	if err != nil || raw == nil {
		return nil
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// Set overwrites the session with a snapshot of u.
func (s *SessionStore) Set(u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return unavailable("encode session", err)
	}
	if err := s.kv.Set(kvstore.KeySession, raw); err != nil {
		return unavailable("save session", err)
	}
	return nil
}

// Clear removes the session. Clearing an absent session succeeds.
func (s *SessionStore) Clear() error {
	if err := s.kv.Remove(kvstore.KeySession); err != nil {
		return unavailable("clear session", err)
	}
	return nil
}
