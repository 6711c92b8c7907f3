// Package auth implements the password hashing and bearer token primitives
// used by the authentication endpoints.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2 round count. Changing it invalidates all
	// stored hashes, so it is fixed for the process lifetime of the store.
	Iterations = 100_000

	saltLength = 16
	keyLength  = 32
)

// NewSalt returns a fresh 16-byte random salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword derives a lowercase hex digest from the password and salt
// using PBKDF2-HMAC-SHA256. The result is deterministic for a given input
// pair.
func HashPassword(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, Iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the digest for the candidate password and
// compares it to the stored hex value in constant time.
func VerifyPassword(password string, salt []byte, storedHex string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHex)) == 1
}
