package client

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, password string, profile map[string]any) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Logout()
	LoggedIn() bool
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	ChangePassword(ctx context.Context, oldPass, newPass string) (string, error)
	BanStatus(ctx context.Context, id string) (*models.BanStatus, error)
	Ping(ctx context.Context) error
}
