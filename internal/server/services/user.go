// Package services contains server-side business logic on top of the
// repositories. Every method returns one of the sentinel errors declared in
// errors.go (or a wrapped internal error) rather than a result flag.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/server/auth"
	"github.com/dmitrijs2005/whatsut/internal/server/config"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	User        *models.User
	AccessToken string
}

// UserService handles registration, login and user lookups.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user. Duplicate usernames yield ErrUserExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyField
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login checks the credentials in a fixed order: existence, ban, password.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.GetByUserName(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.Banned {
		return nil, common.ErrorBanned
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorWrongPassword
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &LoginResult{User: user, AccessToken: token}, nil
}

// GetByUserName returns ErrUserNotFound for unknown names.
func (s *UserService) GetByUserName(ctx context.Context, username string) (*models.User, error) {
	return lookupUser(ctx, s.repomanager, s.db, username)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// IsBanned reports whether username has been banned.
func (s *UserService) IsBanned(ctx context.Context, username string) (bool, error) {
	user, err := s.GetByUserName(ctx, username)
	if err != nil {
		return false, err
	}
	return user.Banned, nil
}

// IsOperator reports whether username holds the moderation capability.
func (s *UserService) IsOperator(ctx context.Context, username string) (bool, error) {
	user, err := s.GetByUserName(ctx, username)
	if err != nil {
		return false, err
	}
	return s.repomanager.Users(s.db).IsOperator(ctx, user.ID)
}
