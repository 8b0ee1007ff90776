// Package gate verifies supplied secrets against a link's active password
// protections.
package gate

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

// Cost is the bcrypt work factor used when hashing new link passwords.
const Cost = 12

// ErrInvalidPassword is returned when a secret was supplied but matched none
// of the active protections. The message deliberately does not reveal how
// many protections exist.
var ErrInvalidPassword = errors.New("invalid password")

// Decision is the outcome of an authorization check.
type Decision int

const (
	// NotRequired means no password protection is active.
	NotRequired Decision = iota
	// Granted means the supplied secret matched an active protection.
	Granted
	// PasswordRequired means a secret is needed but none was supplied.
	PasswordRequired
)

// Authorize checks the supplied secret against every active protection.
// Any single match grants access (logical OR, short-circuit on first match).
func Authorize(active []models.PasswordProtection, secret string) (Decision, error) {
	if len(active) == 0 {
		return NotRequired, nil
	}
	if secret == "" {
		return PasswordRequired, nil
	}
	for _, p := range active {
		if bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(secret)) == nil {
			return Granted, nil
		}
	}
	return 0, ErrInvalidPassword
}

// HashSecret hashes a new link password. This is a creation-time operation
// and is never called on the resolve path.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
