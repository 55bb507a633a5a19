package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash at the given cost. The hash is
// self-describing (algorithm, cost and salt travel inside it), so
// verification needs no external state.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. Malformed hashes are
// a verification failure, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
