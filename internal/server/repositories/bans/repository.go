package bans

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

type Repository interface {
	// GetByUserID returns the user's bans, oldest first. No bans is an
	// empty slice, not an error.
	GetByUserID(ctx context.Context, userID string) ([]*models.Ban, error)
}
