// Package cryptox implements the credential digest used by signup and
// authorization: PBKDF2-SHA256 over the secret and salt, hex-encoded.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2 cost factor. Lowering it weakens stored
	// digests; changing it invalidates every existing record.
	Iterations = 100000

	keyLength = 32
)

// Derive computes the hex-encoded credential digest for the given secret and
// salt. The KDF input is secret||salt and the KDF salt parameter is the salt
// bytes alone. Deterministic: equal inputs always produce equal digests.
//
// An empty salt is rejected: the KDF salt parameter is what separates equal
// secrets, so deriving without one would silently produce colliding digests.
func Derive(secret, salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", fmt.Errorf("kdf: empty salt")
	}

	combined := make([]byte, 0, len(secret)+len(salt))
	combined = append(combined, secret...)
	combined = append(combined, salt...)

	key := pbkdf2.Key(combined, salt, Iterations, keyLength, sha256.New)
	return hex.EncodeToString(key), nil
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// RandomSalt generates a random hexadecimal salt from size random bytes, so
// the resulting string is twice as long as size.
func RandomSalt(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
