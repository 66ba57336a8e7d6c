package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// userFields flattens a projected user; zero fields are left out.
func userFields(u *models.User) map[string]any {
	m := map[string]any{}
	if u.ID != "" {
		m[pb.FieldID] = u.ID
	}
	if u.Email != "" {
		m[pb.FieldEmail] = u.Email
	}
	if u.RoleID != 0 {
		m[pb.FieldRoleID] = u.RoleID
	}
	if u.Profile != nil {
		m[pb.FieldProfile] = map[string]any(u.Profile)
	}
	if !u.CreatedAt.IsZero() {
		m[pb.FieldCreatedAt] = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !u.UpdatedAt.IsZero() {
		m[pb.FieldUpdatedAt] = u.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return m
}

func banFields(b *models.Ban) map[string]any {
	m := map[string]any{
		pb.FieldID:     b.ID,
		pb.FieldUserID: b.UserID,
		pb.FieldReason: b.Reason,
	}
	if !b.CreatedAt.IsZero() {
		m[pb.FieldCreatedAt] = b.CreatedAt.UTC().Format(time.RFC3339)
	}
	return m
}
