// Package auth covers the two credential primitives of the service: signed
// session tokens and one-way password hashes.
package auth

import (
	"errors"
	"time"

	"github.com/edgcastillo/saveddit/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints an HS256-signed token whose subject is the username
// and whose expiry is now + ttl. Tokens are stateless: nothing is stored
// server-side and there is no revocation short of expiry.
func GenerateToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// SubjectFromToken verifies the signature and expiry of tokenString and
// returns its subject. Malformed input, a bad signature, and an expired
// token all collapse to common.ErrInvalidToken so the caller cannot tell
// which check failed.
func SubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
