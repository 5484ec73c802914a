// Package token implements the TokenIssuer port with HS256 JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/cantinota/noleggio-api/internal/domains/auth/ports"
)

// DefaultTTL matches the session length the back office expects.
const DefaultTTL = 4 * time.Hour

var _ ports.TokenIssuer = (*JWT)(nil)

// Claims is the JWT payload for admin sessions.
type Claims struct {
	AdminID  int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWT signs and verifies admin session tokens with a shared HMAC secret.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given admin identity.
func (j *JWT) Issue(adminID int64, username string) (string, error) {
	now := j.now()
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, rejecting unexpected signing methods.
func (j *JWT) Verify(tokenString string) (*ports.TokenClaims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Join(ports.ErrInvalidToken, err)
	}
	return &ports.TokenClaims{AdminID: claims.AdminID, Username: claims.Username}, nil
}
