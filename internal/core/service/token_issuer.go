package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/user-management/internal/core/domain"
)

// DefaultTokenTTL is the validity window of an issued session token.
const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrNoSigningSecret = errors.New("token issuer: signing secret is empty")

// TokenIssuer mints signed session tokens. The secret is injected at
// construction so instances with distinct secrets can coexist (tests, key
// rotation staging).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed HS256 JWT asserting the user's id, role and
// username, expiring ttl after issuance. Pure function of user, secret and
// the clock.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrNoSigningSecret
	}

	now := t.now().UTC()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"role":     string(user.Role),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(t.secret)
}
