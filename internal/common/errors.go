// Package common defines shared constants and sentinel errors used across
// saveddit components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")

	// Credential custody errors.
	ErrInvalidRedditCredentials = errors.New("invalid reddit credentials")
	ErrNotLinked                = errors.New("reddit account not linked")
	ErrDecryptionFailed         = errors.New("decryption failed")

	// External collaborator errors (timeout, unreachable, bad response).
	ErrExternalService = errors.New("external service error")
)
