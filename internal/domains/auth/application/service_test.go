package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantinota/noleggio-api/internal/domains/auth/adapters/memory"
	"github.com/cantinota/noleggio-api/internal/domains/auth/adapters/token"
	"github.com/cantinota/noleggio-api/internal/domains/auth/domain"
	"github.com/cantinota/noleggio-api/internal/domains/auth/ports"
)

func seedAdmin(t *testing.T, repo ports.Repository, username, password string) *domain.Admin {
	t.Helper()
	hash, err := domain.HashPassword(password)
	require.NoError(t, err)
	admin, err := repo.Save(context.Background(), &domain.Admin{Username: username, Password: hash})
	require.NoError(t, err)
	return admin
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	repo := memory.NewRepository()
	tokens := token.NewJWT("test-secret", time.Hour)
	svc := NewService(repo, tokens)

	admin := seedAdmin(t, repo, "admin", "correct-horse")

	signed, err := svc.Login(context.Background(), "admin", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, token.NewJWT("test-secret", time.Hour))

	seedAdmin(t, repo, "admin", "correct-horse")

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, token.NewJWT("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_LegacyPlaintextRowStillAuthenticates(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, token.NewJWT("test-secret", time.Hour))

	_, err := repo.Save(context.Background(), &domain.Admin{Username: "legacy", Password: "oldpass"})
	require.NoError(t, err)

	signed, err := svc.Login(context.Background(), "legacy", "oldpass")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)

	_, err = svc.Login(context.Background(), "legacy", "other")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	svc := NewService(memory.NewRepository(), token.NewJWT("test-secret", time.Hour))

	other := token.NewJWT("other-secret", time.Hour)
	signed, err := other.Issue(1, "admin")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)
}
