// Package domain holds the auth bounded context model.
package domain

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Admin is a back-office account. Password holds a bcrypt hash, except for
// legacy rows created before hashing was introduced, which store plaintext.
type Admin struct {
	ID       int64
	Username string
	Password string
}

// CheckPassword verifies a candidate password against the stored credential.
// Bcrypt hashes are compared with bcrypt; anything else falls back to a
// constant-time byte comparison so legacy rows keep working until rehashed.
func (a *Admin) CheckPassword(candidate string) bool {
	if isBcryptHash(a.Password) {
		return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.Password), []byte(candidate)) == 1
}

// HashPassword derives a bcrypt hash for storage.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
