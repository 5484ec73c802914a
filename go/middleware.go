package noleggioserver

import (
	"strings"

	"github.com/gin-gonic/gin"

	authports "github.com/cantinota/noleggio-api/internal/domains/auth/ports"
	apierrors "github.com/cantinota/noleggio-api/internal/shared/errors"
)

const identityKey = "adminClaims"

// AuthMiddleware validates the bearer token and stores the admin claims in
// the request context for downstream handlers.
func AuthMiddleware(tokens authports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("Token mancante"))
			c.Abort()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if raw == "" {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("Token mancante"))
			c.Abort()
			return
		}
		claims, err := tokens.Verify(raw)
		if err != nil {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("Token non valido"))
			c.Abort()
			return
		}
		c.Set(identityKey, claims)
		c.Next()
	}
}

// AdminFromContext returns the authenticated admin claims, if any.
func AdminFromContext(c *gin.Context) (*authports.TokenClaims, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*authports.TokenClaims)
	return claims, ok
}
