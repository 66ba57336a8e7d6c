// Package models holds the client-side view of server data.
package models

// User is a user as returned by the server; the password hash is never sent.
type User struct {
	ID        string
	Email     string
	RoleID    int64
	Profile   map[string]any
	CreatedAt string
}

// BanStatus reports whether a user is currently banned and, if so, the ban.
type BanStatus struct {
	Banned    bool
	BanID     int64
	Reason    string
	CreatedAt string
}
