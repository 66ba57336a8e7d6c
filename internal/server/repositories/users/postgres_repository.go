package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const allColumns = "id, email, password, role_id, profile, created_at, updated_at"

const (
	uniqueViolation = "23505"
	emailConstraint = "users_email_key"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	profile, err := marshalProfile(user.Profile)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO users (id, email, password, role_id, profile)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Password, user.RoleID, profile).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, mapWriteError(fmt.Errorf("db error: %w", err))
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + allColumns + ` FROM users WHERE email = $1 LIMIT 1`

	return r.queryOne(ctx, query, models.UserFields, email)
}

// GetByID reads only the columns selected by sel. An empty selection reads
// just the id. An id that is not a UUID matches no row.
func (r *PostgresRepository) GetByID(ctx context.Context, id string, sel models.UserSelect) (*models.User, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	cols := sel.Columns()
	if len(cols) == 0 {
		cols = []string{models.UserFieldID}
	}

	query := `SELECT ` + strings.Join(cols, ", ") + ` FROM users WHERE id = $1`

	return r.queryOne(ctx, query, cols, id)
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) List(ctx context.Context, sel models.UserSelect) ([]*models.User, error) {
	cols := sel.Columns()
	if len(cols) == 0 {
		cols = []string{models.UserFieldID}
	}

	query := `SELECT ` + strings.Join(cols, ", ") + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u := &models.User{}
		dest, finish := scanTargets(u, cols)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := finish(); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update applies the non-nil fields of patch and returns the full row.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id, models.SelectAllUser)
	}
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Email != nil {
		add(models.UserFieldEmail, *patch.Email)
	}
	if patch.Password != nil {
		add(models.UserFieldPassword, *patch.Password)
	}
	if patch.RoleID != nil {
		add(models.UserFieldRoleID, *patch.RoleID)
	}
	if patch.Profile != nil {
		profile, err := marshalProfile(patch.Profile)
		if err != nil {
			return nil, err
		}
		add(models.UserFieldProfile, profile)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), allColumns)

	user, err := r.queryOne(ctx, query, models.UserFields, args...)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return user, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, cols []string, args ...any) (*models.User, error) {
	user := &models.User{}
	dest, finish := scanTargets(user, cols)

	err := r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := finish(); err != nil {
		return nil, err
	}

	return user, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// mapWriteError turns a duplicate email into common.ErrorAlreadyExists.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == emailConstraint {
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pgErr.Detail)
	}
	return err
}

// scanTargets maps column names to fields of u. The returned func decodes
// the profile JSON once the row has been scanned.
func scanTargets(u *models.User, cols []string) ([]any, func() error) {
	var profile []byte

	dest := make([]any, len(cols))
	for i, c := range cols {
		switch c {
		case models.UserFieldID:
			dest[i] = &u.ID
		case models.UserFieldEmail:
			dest[i] = &u.Email
		case models.UserFieldPassword:
			dest[i] = &u.Password
		case models.UserFieldRoleID:
			dest[i] = &u.RoleID
		case models.UserFieldProfile:
			dest[i] = &profile
		case models.UserFieldCreatedAt:
			dest[i] = &u.CreatedAt
		case models.UserFieldUpdatedAt:
			dest[i] = &u.UpdatedAt
		}
	}

	return dest, func() error {
		if len(profile) == 0 {
			return nil
		}
		if err := json.Unmarshal(profile, &u.Profile); err != nil {
			return fmt.Errorf("error decoding profile: %w", err)
		}
		return nil
	}
}

func marshalProfile(p models.Profile) ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error encoding profile: %w", err)
	}
	return b, nil
}
