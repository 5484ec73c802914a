// Package application implements the auth use cases.
package application

import (
	"context"
	"errors"

	"github.com/cantinota/noleggio-api/internal/domains/auth/ports"
)

// Service authenticates admins and issues tokens.
type Service struct {
	repo   ports.Repository
	tokens ports.TokenIssuer
}

func NewService(repo ports.Repository, tokens ports.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login verifies the credentials and returns a signed token. Unknown
// usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ports.ErrInvalidCredentials
		}
		return "", err
	}
	if !admin.CheckPassword(password) {
		return "", ports.ErrInvalidCredentials
	}
	return s.tokens.Issue(admin.ID, admin.Username)
}

// Verify validates a bearer token and returns its claims.
func (s *Service) Verify(token string) (*ports.TokenClaims, error) {
	return s.tokens.Verify(token)
}
