package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edgcastillo/saveddit/internal/common"
	"github.com/edgcastillo/saveddit/internal/server/auth"
	"github.com/edgcastillo/saveddit/internal/server/models"
)

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeUsersRepo{}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	u, err := svc.Register(context.Background(), "a@x.com", "alice", "Passw0rd1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" || u.Username != "alice" || u.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "Passw0rd1" || u.PasswordHash == "" {
		t.Fatalf("password must be hashed before persisting, got %q", u.PasswordHash)
	}
	if !auth.CheckPassword("Passw0rd1", u.PasswordHash) {
		t.Fatalf("stored hash does not verify against the original password")
	}
}

func TestRegister_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	svc := NewUserService(db, &fakeRepoManager{users: &fakeUsersRepo{}}, testConfig())

	tests := []struct {
		name     string
		email    string
		username string
		password string
	}{
		{name: "bad email", email: "not-an-email", username: "alice", password: "Passw0rd1"},
		{name: "short username", username: "al", email: "a@x.com", password: "Passw0rd1"},
		{name: "long username", username: string(make([]byte, 51)), email: "a@x.com", password: "Passw0rd1"},
		{name: "short password", username: "alice", email: "a@x.com", password: "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("expected common.ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeUsersRepo{createErr: common.ErrAlreadyExists}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	_, err := svc.Register(context.Background(), "a@x.com", "alice", "Passw0rd1")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected common.ErrAlreadyExists, got %v", err)
	}
}

func TestLogin_SuccessIssuesResolvableToken(t *testing.T) {
	db, _ := newSQLMockDB(t)

	hash, err := auth.HashPassword("Passw0rd1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	stored := &models.User{ID: "42", Username: "alice", PasswordHash: hash}
	repo := &fakeUsersRepo{getOut: stored}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	token, err := svc.Login(context.Background(), "alice", "Passw0rd1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved.Username != "alice" {
		t.Fatalf("resolved wrong user: %+v", resolved)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)

	hash, _ := auth.HashPassword("Passw0rd1", 4)
	repo := &fakeUsersRepo{getOut: &models.User{Username: "alice", PasswordHash: hash}}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUserIndistinguishable(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeUsersRepo{getErr: common.ErrNotFound}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials, got %v", err)
	}
}

func TestResolve_BadToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	svc := NewUserService(db, &fakeRepoManager{users: &fakeUsersRepo{}}, testConfig())

	_, err := svc.Resolve(context.Background(), "garbage")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestResolve_UserGone(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeUsersRepo{getErr: common.ErrNotFound}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	token, err := auth.GenerateToken("alice", []byte("k"), testConfig().TokenValidityDuration)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
