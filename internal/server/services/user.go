// Package services contains server-side business logic. This file implements
// UserService, the user directory: creating, reading and updating users,
// password changes, ban status and id generation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/auth"
	"github.com/dmitrijs2005/userdirectory/internal/server/config"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/repomanager"
)

// Message is the acknowledgment returned by action-style operations.
type Message struct {
	Message string
}

const passwordChangedMessage = "The password has been changed successfully!"

// UserService composes the users, roles, bans and logs repositories with a
// password hasher and an id source. Every call is request-scoped.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      PasswordHasher
	ids                         IDSource
	hashCost                    int
	maxIDAttempts               int
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, ids IDSource,
	cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      hasher,
		ids:                         ids,
		hashCost:                    cfg.PasswordHashCost,
		maxIDAttempts:               cfg.UserIDMaxAttempts,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger.With("module", "users"),
	}
}

// CreateUser stores user with its role forced to the subscriber role. The
// password must already be hashed. When the subscriber role does not exist
// the result is (nil, nil) and nothing is written. An empty ID is filled in
// with GenerateUserID.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	role, err := s.repomanager.Roles(s.db).GetByType(ctx, models.RoleSubscriber)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "default role is missing, user not created", "role", models.RoleSubscriber)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving default role: %w", err)
	}

	u := *user
	u.RoleID = role.ID

	if u.ID == "" {
		u.ID, err = s.GenerateUserID(ctx)
		if err != nil {
			return nil, err
		}
	}

	created, err := s.repomanager.Users(s.db).Create(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user created", "user_id", created.ID, "role_id", created.RoleID)
	return created, nil
}

// GetByEmail returns the user with the given email, or (nil, nil).
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error searching user by email: %w", err)
	}
	return user, nil
}

// GetByID returns the user projected through sel, or (nil, nil).
func (s *UserService) GetByID(ctx context.Context, id string, sel models.UserSelect) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id, sel)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error searching user by id: %w", err)
	}
	return user, nil
}

// ListAll records an audit entry for actorID and returns every user without
// password hashes. An unknown actor yields common.ErrUserNotFound.
func (s *UserService) ListAll(ctx context.Context, actorID string) ([]*models.User, error) {
	actor, err := s.requireUser(ctx, actorID, models.UserSelect{models.UserFieldID: true})
	if err != nil {
		return nil, err
	}

	entry := &models.LogEntry{Operation: models.OperationGetAllUsers, CreatedBy: actor.ID}
	if err := s.repomanager.Logs(s.db).Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error writing audit log: %w", err)
	}

	users, err := s.repomanager.Users(s.db).List(ctx, models.SelectFullUser)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// ChangePassword replaces the actor's password after checking oldPass.
// The update and its audit entry are committed together; nothing is written
// when the actor is unknown (404) or oldPass does not match (400).
func (s *UserService) ChangePassword(ctx context.Context, actorID, oldPass, newPass string) (*Message, error) {
	user, err := s.requireUser(ctx, actorID, models.SelectAllUser)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(oldPass, user.Password) {
		return nil, common.ErrIncorrectData
	}

	hash, err := s.hashPassword(newPass)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.updateUser(ctx, tx, models.UserPatch{Password: &hash}, user); err != nil {
			return err
		}
		entry := &models.LogEntry{Operation: models.OperationChangePassword, CreatedBy: user.ID}
		if err := s.repomanager.Logs(tx).Create(ctx, entry); err != nil {
			return fmt.Errorf("error writing audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "password changed", "user_id", user.ID)
	return &Message{Message: passwordChangedMessage}, nil
}

// UpdateUser applies patch to the row of user.ID and returns the full row.
// No validation happens here.
func (s *UserService) UpdateUser(ctx context.Context, patch models.UserPatch, user *models.User) (*models.User, error) {
	return s.updateUser(ctx, s.db, patch, user)
}

func (s *UserService) updateUser(ctx context.Context, db dbx.DBTX, patch models.UserPatch, user *models.User) (*models.User, error) {
	updated, err := s.repomanager.Users(db).Update(ctx, user.ID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return updated, nil
}

// IsBanned returns the user's most recent ban if it has not been lifted,
// otherwise nil. Older bans are not consulted, even unlifted ones.
func (s *UserService) IsBanned(ctx context.Context, user *models.User) (*models.Ban, error) {
	bans, err := s.repomanager.Bans(s.db).GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error reading bans: %w", err)
	}
	if len(bans) == 0 {
		return nil, nil
	}

	last := bans[len(bans)-1]
	if !last.IsActive() {
		return nil, nil
	}
	return last, nil
}

// GenerateUserID draws random ids until one is not used by any user. It
// gives up with common.ErrIdentifierSpaceExhausted after the configured
// number of attempts.
func (s *UserService) GenerateUserID(ctx context.Context) (string, error) {
	repo := s.repomanager.Users(s.db)

	for attempt := 1; attempt <= s.maxIDAttempts; attempt++ {
		id := s.ids.NewID()

		taken, err := repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("error checking user id: %w", err)
		}
		if !taken {
			return id, nil
		}

		s.logger.Warn(ctx, "generated user id is taken", "attempt", attempt)
	}

	s.logger.Error(ctx, "no free user id found", "attempts", s.maxIDAttempts)
	return "", common.ErrIdentifierSpaceExhausted
}

// Register hashes password and creates a subscriber. A used email yields
// common.ErrEmailTaken; a missing subscriber role yields (nil, nil).
func (s *UserService) Register(ctx context.Context, email, password string, profile models.Profile) (*models.User, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.ErrEmailTaken
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.CreateUser(ctx, &models.User{Email: email, Password: hash, Profile: profile})
	if errors.Is(err, common.ErrorAlreadyExists) {
		// lost a race with a concurrent registration
		return nil, common.ErrEmailTaken
	}
	return user, err
}

// Login checks credentials and returns an access token for the user.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Compare(password, user.Password) {
		return "", common.ErrIncorrectData
	}

	ban, err := s.IsBanned(ctx, user)
	if err != nil {
		return "", err
	}
	if ban != nil {
		s.logger.Info(ctx, "login refused for banned user", "user_id", user.ID, "ban_id", ban.ID)
		return "", common.ErrUserBanned
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating access token: %w", err)
	}
	return token, nil
}

// --- helpers below ---

func (s *UserService) requireUser(ctx context.Context, id string, sel models.UserSelect) (*models.User, error) {
	user, err := s.GetByID(ctx, id, sel)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password, s.hashCost)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return "", common.ErrIncorrectData
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}
