package models

import (
	"database/sql"
	"time"
)

// User is an account record. The Reddit credential columns hold AES-GCM
// blobs produced by cryptox, never plaintext, and are NULL until the account
// is linked.
type User struct {
	ID                string
	Email             string
	Username          string
	PasswordHash      string
	RedditUsernameEnc sql.NullString
	RedditPasswordEnc sql.NullString
	CreatedAt         time.Time
}

// Linked reports whether valid Reddit credentials are stored for the user.
// Derived from the presence of both encrypted columns rather than kept as a
// separate flag, so the two can never diverge.
func (u *User) Linked() bool {
	return u.RedditUsernameEnc.Valid && u.RedditPasswordEnc.Valid
}
