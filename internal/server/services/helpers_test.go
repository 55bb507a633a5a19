package services

// Shared fakes for service tests, modeled as hand-written stubs bound
// through a fake RepositoryManager.

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/edgcastillo/saveddit/internal/dbx"
	"github.com/edgcastillo/saveddit/internal/server/config"
	"github.com/edgcastillo/saveddit/internal/server/models"
	"github.com/edgcastillo/saveddit/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
		BcryptCost:            4, // keep tests fast
		ExternalCallTimeout:   time.Second,
	}
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	setErr       error
	setCalls     int
	setEncUser   string
	setEncPass   string
	setForUserID string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "generated-id"
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) SetRedditCredentials(ctx context.Context, userID, encUsername, encPassword string) error {
	f.setCalls++
	f.setForUserID = userID
	f.setEncUser = encUsername
	f.setEncPass = encPassword
	return f.setErr
}

type fakeRepoManager struct {
	users users.Repository
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return f.users }
