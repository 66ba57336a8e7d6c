package logs

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

type Repository interface {
	// Create appends entry and fills in its ID and CreatedAt.
	Create(ctx context.Context, entry *models.LogEntry) error
}
