package models

import "time"

// Audit operation labels.
const (
	OperationGetAllUsers    = "Get all the users"
	OperationChangePassword = "Change the password"
)

// LogEntry is an append-only audit record.
type LogEntry struct {
	ID        int64
	Operation string
	CreatedBy string
	CreatedAt time.Time
}
