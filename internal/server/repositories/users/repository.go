// Package users contains the persistence port and Postgres adapter for user
// records.
package users

import (
	"context"

	"github.com/edgcastillo/saveddit/internal/server/models"
)

// Repository is the user directory port. Lookups are case-sensitive exact
// matches; misses surface as common.ErrNotFound and unique violations as
// common.ErrAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// SetRedditCredentials writes both encrypted credential columns in one
	// statement so no reader can observe a half-linked record.
	SetRedditCredentials(ctx context.Context, userID, encUsername, encPassword string) error
}
