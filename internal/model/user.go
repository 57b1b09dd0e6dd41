package model

import "time"

// User is an account record. Password holds the bcrypt digest of the
// user's password, never the plaintext. Email is stored lower-cased
// and is unique across all users.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
