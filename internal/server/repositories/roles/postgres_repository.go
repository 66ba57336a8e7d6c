package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByType(ctx context.Context, roleType models.RoleType) (*models.Role, error) {
	query :=
		`SELECT id, type FROM roles
		 WHERE type = $1
		 `

	var (
		role models.Role
		t    string
	)
	err := r.db.QueryRowContext(ctx, query, string(roleType)).Scan(&role.ID, &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	role.Type = models.RoleType(t)

	return &role, nil
}
