// Package auth provides password hashing and the role model for the blog's
// single-admin account scheme.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen = 16
	keyLen  = 64

	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a scrypt digest under a fresh random salt and encodes
// both as "hex(digest).hex(salt)". The dot cannot appear in hex output, so the
// encoding splits unambiguously.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest) + "." + hex.EncodeToString(salt), nil
}

// CheckPassword reports whether candidate matches a stored hash. A malformed
// stored value is treated as a mismatch, never an error: legacy or corrupted
// records must not take login down with them.
func CheckPassword(candidate, stored string) bool {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		slog.Warn("stored password hash has invalid format")
		return false
	}
	digest, err := hex.DecodeString(parts[0])
	if err != nil {
		slog.Warn("stored password digest is not hex")
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		slog.Warn("stored password salt is not hex")
		return false
	}
	derived, err := scrypt.Key([]byte(candidate), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}
	if len(derived) != len(digest) {
		return false
	}
	return subtle.ConstantTimeCompare(derived, digest) == 1
}
