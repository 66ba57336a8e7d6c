package logs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.LogEntry) error {

	query :=
		`INSERT INTO logs (operation, created_by)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, entry.Operation, entry.CreatedBy).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
