// Package models defines server-side data models persisted in the database.
package models

import "time"

// Profile holds the free-form fields supplied at registration.
type Profile map[string]any

type User struct {
	ID string
	// Email is unique across users.
	Email string
	// Password is a bcrypt hash, never plaintext.
	Password  string
	RoleID    int64
	Profile   Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Email    *string
	Password *string
	RoleID   *int64
	Profile  Profile
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Password == nil && p.RoleID == nil && p.Profile == nil
}
