package cli

import (
	"errors"
	"fmt"

	"jotbook/internal/store"
)

// Register collects account details and creates a new account. The new
// account is logged in immediately.
func (a *App) Register() error {
	email, err := promptLine(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	username, err := promptLine(a.reader, a.out, "Username")
	if err != nil {
		return err
	}
	if email == "" || username == "" {
		fmt.Fprintln(a.out, "Email and username are required.")
		return nil
	}

	password, err := promptPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	if password == "" {
		fmt.Fprintln(a.out, "Password is required.")
		return nil
	}
	if password != confirm {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return nil
	}

	u, err := a.users.Register(email, username, password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			fmt.Fprintln(a.out, "An account with this email already exists.")
			return nil
		}
		return err
	}

	a.user = u
	a.logger.Info("account created", "user_id", u.ID)
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
	return nil
}

// Login authenticates against the stored accounts.
func (a *App) Login() error {
	email, err := promptLine(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out, "Password")
	if err != nil {
		return err
	}

	u, err := a.users.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return nil
		}
		return err
	}

	a.user = u
	a.logger.Info("logged in", "user_id", u.ID)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
	return nil
}

// Logout clears the session.
func (a *App) Logout() error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	a.logger.Info("logged out", "user_id", a.user.ID)
	a.user = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Profile shows the account and optionally updates it. Empty answers
// keep the current value; the current password is always required to
// apply changes.
func (a *App) Profile() error {
	fmt.Fprintf(a.out, "Email:    %s\nUsername: %s\nJoined:   %s\n",
		a.user.Email, a.user.Username, a.user.CreatedAt.Format("2006-01-02"))

	answer, err := promptLine(a.reader, a.out, "Update profile? (y/N)")
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	email, err := promptLine(a.reader, a.out, fmt.Sprintf("New email [%s]", a.user.Email))
	if err != nil {
		return err
	}
	if email == "" {
		email = a.user.Email
	}
	username, err := promptLine(a.reader, a.out, fmt.Sprintf("New username [%s]", a.user.Username))
	if err != nil {
		return err
	}
	if username == "" {
		username = a.user.Username
	}

	current, err := promptPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	newPassword, err := promptPassword(a.out, "New password (empty to keep)")
	if err != nil {
		return err
	}
	if newPassword != "" {
		confirm, err := promptPassword(a.out, "Confirm new password")
		if err != nil {
			return err
		}
		if newPassword != confirm {
			fmt.Fprintln(a.out, "Passwords do not match.")
			return nil
		}
	}

	updated, err := a.users.UpdateProfile(a.user, email, username, current, newPassword)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidCredentials):
			fmt.Fprintln(a.out, "Current password is incorrect.")
			return nil
		case errors.Is(err, store.ErrDuplicateEmail):
			fmt.Fprintln(a.out, "Another account already uses that email.")
			return nil
		}
		return err
	}

	a.user = updated
	a.logger.Info("profile updated", "user_id", updated.ID)
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
