// Package roles provides read access to the roles table. Roles themselves are
// managed elsewhere; the user directory only resolves them by type.
package roles

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// Repository resolves roles.
type Repository interface {
	// GetByType returns the role with the given type or common.ErrorNotFound.
	GetByType(ctx context.Context, roleType models.RoleType) (*models.Role, error)
}
