// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and mints session JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/edgcastillo/saveddit/internal/common"
	"github.com/edgcastillo/saveddit/internal/server/auth"
	"github.com/edgcastillo/saveddit/internal/server/config"
	"github.com/edgcastillo/saveddit/internal/server/models"
	"github.com/edgcastillo/saveddit/internal/server/repositories/repomanager"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
)

// UserService provides account operations:
// - Register: validate input, hash the password, create the user
// - Login: verify credentials and mint a session token
// - Resolve: map a token subject back to a user record
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new account. The plaintext password is hashed before it
// reaches the repository; a duplicate email or username surfaces as
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	if err := validateRegistration(email, username, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, Username: username, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the username/password pair and, on success, returns a
// signed session token. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// Resolve verifies a bearer token and loads the user it was issued to.
// Every failure collapses to common.ErrInvalidToken.
func (s *UserService) Resolve(ctx context.Context, token string) (*models.User, error) {
	subject, err := auth.SubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	return user, nil
}

func validateRegistration(email, username, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return fmt.Errorf("%w: username must be %d-%d characters", common.ErrValidation, minUsernameLen, maxUsernameLen)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	return nil
}
