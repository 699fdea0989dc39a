package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ourstory-app/ourstory/internal/common"
)

// HashPasscode produces a bcrypt hash suitable for the PasscodeHash
// config field.
func HashPasscode(passcode string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasscode compares the candidate against the stored hash. Any
// mismatch is reported as unauthorized without detail.
func CheckPasscode(hash, passcode string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
		return common.ErrorUnauthorized
	}
	return nil
}
