// Package auth covers the shared-passcode login and the session tokens it
// issues. There are no user accounts: one passcode guards the whole
// journal, and a valid token is a valid session.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ourstory-app/ourstory/internal/common"
)

// Claims carries only the registered claims; the token's existence is
// the authorization.
type Claims struct {
	jwt.RegisteredClaims
}

func GenerateToken(secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "journal",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks the signature and expiry of a session token.
func ValidateToken(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid {
		return common.ErrInvalidToken
	}

	return nil
}
