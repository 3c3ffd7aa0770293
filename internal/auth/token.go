package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobconnect-app/jobconnect/internal/models"
)

// SessionCookie is the cookie the server sets on login. Its value is an
// HS256 JWT; to the client it is just an opaque credential.
const SessionCookie = "jobconnect_session"

const sessionTTL = 24 * time.Hour

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// MintSessionToken issues a fresh token for the account. Every login gets
// a new token id, so logins are never idempotent.
func MintSessionToken(secret string, account models.Account) (string, error) {
	claims := sessionClaims{
		Role: string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a token and returns the account id it was
// minted for. The signing method is pinned to HS256.
func ParseSessionToken(secret, tokenStr string) (accountID string, err error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}

	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("invalid claims")
	}
	return claims.Subject, nil
}
