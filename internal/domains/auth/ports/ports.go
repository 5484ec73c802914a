package ports

import (
	"context"
	"errors"

	"github.com/cantinota/noleggio-api/internal/domains/auth/domain"
)

var (
	ErrNotFound = errors.New("admin not found")
	// ErrInvalidCredentials deliberately covers both unknown usernames and
	// wrong passwords so responses cannot be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Repository persists admin accounts.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Save(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}

// TokenClaims is the identity carried by an issued token.
type TokenClaims struct {
	AdminID  int64
	Username string
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(adminID int64, username string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
