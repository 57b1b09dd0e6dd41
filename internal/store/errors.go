package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail is returned when a registration or profile
	// update would reuse another account's email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when an update targets a record that is
	// not in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrNotOwner is returned when a note mutation is attempted by a
	// user other than the note's owner.
	ErrNotOwner = errors.New("note belongs to another user")

	// ErrInvalidCategory is returned for a category outside the fixed
	// set.
	ErrInvalidCategory = errors.New("invalid note category")

	// ErrStoreUnavailable wraps backing-store write failures; the
	// mutation did not persist.
	ErrStoreUnavailable = errors.New("store unavailable")
)

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
