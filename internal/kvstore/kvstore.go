// Package kvstore is the whole-record key-value layer all persistence
// goes through. Each key holds one complete serialized collection; a
// write replaces the value wholesale. Nothing at this level knows what
// the bytes mean.
package kvstore

import (
	"database/sql"
	"fmt"
)

// Keys for the three records the application owns.
const (
	KeyUsers   = "users"
	KeyNotes   = "notes"
	KeySession = "current-session"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value stored under key, or (nil, nil) if the key
// is absent.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", key, err)
	}
	return value, nil
}

// Set replaces the value under key, creating the record if needed.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}

// Remove deletes the record under key. Removing an absent key is not
// an error.
func (s *Store) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("remove record %q: %w", key, err)
	}
	return nil
}
