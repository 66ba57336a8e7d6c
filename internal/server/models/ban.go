package models

import "time"

// Ban belongs to a user. A nil UnbannedAt means the ban has not been lifted.
type Ban struct {
	ID         int64
	UserID     string
	Reason     string
	CreatedAt  time.Time
	UnbannedAt *time.Time
}

// IsActive reports whether the ban is still in force.
func (b *Ban) IsActive() bool {
	return b.UnbannedAt == nil
}
