package bans

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Ban, error) {
	query :=
		`SELECT id, user_id, reason, created_at, unbanned_at FROM bans
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Ban, 0)
	for rows.Next() {
		var (
			ban        models.Ban
			unbannedAt sql.NullTime
		)
		if err := rows.Scan(&ban.ID, &ban.UserID, &ban.Reason, &ban.CreatedAt, &unbannedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if unbannedAt.Valid {
			t := unbannedAt.Time
			ban.UnbannedAt = &t
		}
		result = append(result, &ban)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
