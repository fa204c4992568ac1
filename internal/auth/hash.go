package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/rand"
	"strings"
)

const saltLength = 5

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// makeSalt returns a random alphabetic salt.
func makeSalt() string {
	b := make([]byte, saltLength)
	for i := range b {
		b[i] = saltAlphabet[rand.Intn(len(saltAlphabet))]
	}
	return string(b)
}

// HashPassword hashes a password with a fresh random salt. The stored
// form is "<salt>,<hexdigest>" where the digest covers name+password+salt.
func HashPassword(name, password string) string {
	return HashPasswordWithSalt(name, password, makeSalt())
}

// HashPasswordWithSalt is deterministic given the same salt.
func HashPasswordWithSalt(name, password, salt string) string {
	sum := sha256.Sum256([]byte(name + password + salt))
	return salt + "," + hex.EncodeToString(sum[:])
}

// CheckPassword reports whether the password matches the stored hash.
// The salt is the text before the first comma of the stored value.
func CheckPassword(name, password, stored string) bool {
	salt, _, ok := strings.Cut(stored, ",")
	if !ok {
		return false
	}
	recomputed := HashPasswordWithSalt(name, password, salt)
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(stored)) == 1
}
