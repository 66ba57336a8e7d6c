package users

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string, sel models.UserSelect) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, sel models.UserSelect) ([]*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}
