package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jotbook/internal/auth"
	"jotbook/internal/kvstore"
	"jotbook/internal/model"
)

// UserStore owns the users record and the session side-effects of
// account operations. Every mutation is a whole-list read-modify-write;
// the mutex serializes those cycles within this process.
type UserStore struct {
	mu       sync.Mutex
	kv       *kvstore.Store
	sessions *SessionStore
}

func NewUserStore(kv *kvstore.Store, sessions *SessionStore) *UserStore {
	return &UserStore{kv: kv, sessions: sessions}
}

// loadAll returns the stored user list. An absent, unreadable, or
// undecodable record is an empty list.
func (s *UserStore) loadAll() []model.User {
	raw, err := s.kv.Get(kvstore.KeyUsers)
	if err != nil || raw == nil {
		return nil
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil
	}
	return users
}

func (s *UserStore) saveAll(users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return unavailable("encode users", err)
	}
	if err := s.kv.Set(kvstore.KeyUsers, raw); err != nil {
		return unavailable("save users", err)
	}
	return nil
}

func findByEmail(users []model.User, email string) int {
	email = strings.ToLower(email)
	for i := range users {
		if strings.ToLower(users[i].Email) == email {
			return i
		}
	}
	return -1
}

// Register creates an account, stores it, and logs it in. The email is
// stored lower-cased; uniqueness is checked case-insensitively.
func (s *UserStore) Register(email, username, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadAll()
	if findByEmail(users, email) != -1 {
		return nil, ErrDuplicateEmail
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(email),
		Username:  username,
		Password:  digest,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.saveAll(append(users, u)); err != nil {
		return nil, err
	}
	if err := s.sessions.Set(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate checks email and password and logs the user in. Unknown
// email and wrong password both return ErrInvalidCredentials.
func (s *UserStore) Authenticate(email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadAll()
	i := findByEmail(users, email)
	if i == -1 {
		return nil, ErrInvalidCredentials
	}
	u := users[i]
	if !auth.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.Set(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile rewrites current's account record. The caller must
// re-supply the current password; newPassword is optional and empty
// means keep the existing digest. ID and CreatedAt never change. If
// the session points at the same account it is rewritten too, so the
// snapshot cannot drift from the canonical record.
func (s *UserStore) UpdateProfile(current *model.User, newEmail, newUsername, currentPassword, newPassword string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !auth.CheckPassword(current.Password, currentPassword) {
		return nil, ErrInvalidCredentials
	}

	users := s.loadAll()

	newEmail = strings.ToLower(newEmail)
	if newEmail != strings.ToLower(current.Email) {
		if i := findByEmail(users, newEmail); i != -1 && users[i].ID != current.ID {
			return nil, ErrDuplicateEmail
		}
	}

	digest := current.Password
	if newPassword != "" {
		var err error
		digest, err = auth.HashPassword(newPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	updated := model.User{
		ID:        current.ID,
		Email:     newEmail,
		Username:  newUsername,
		Password:  digest,
		CreatedAt: current.CreatedAt,
	}

	idx := -1
	for i := range users {
		if users[i].ID == current.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}
	users[idx] = updated

	if err := s.saveAll(users); err != nil {
		return nil, err
	}

	if sess := s.sessions.Current(); sess != nil && sess.ID == updated.ID {
		if err := s.sessions.Set(updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}
