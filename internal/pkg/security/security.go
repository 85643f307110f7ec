// Package security provides hashing and random-token primitives for the
// passwordless login flow and friend-code generation. Link secrets are
// hashed with bcrypt before they are stored; only the link itself carries
// the plaintext.
package security

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// friendCodeAlphabet holds the characters a friend code may contain.
// Uppercase letters and digits only, as the codes are read aloud and typed.
const friendCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FriendCodeLength is the fixed length of a generated friend code.
const FriendCodeLength = 6

// HashSecret takes a plaintext link secret and returns its bcrypt hash.
// If an error occurs during hashing, it logs the error and returns the resulting hash as a string.
func HashSecret(secret string) string {
	secretBytes := []byte(secret)
	hash, err := bcrypt.GenerateFromPassword(secretBytes, bcrypt.DefaultCost)
	if err != nil {
		log.Print(err.Error())
	}
	return string(hash)
}

// CheckSecret compares a bcrypt hashed secret with its possible plaintext equivalent.
// It returns nil on success, or an error on failure indicating that the secrets do not match.
func CheckSecret(hashedSecret, secret string) error {
	hashedSecretBytes := []byte(hashedSecret)
	secretBytes := []byte(secret)

	err := bcrypt.CompareHashAndPassword(hashedSecretBytes, secretBytes)
	return err
}

// GenerateSecret returns a URL-safe random string built from n bytes of
// entropy, suitable for embedding in a login link.
func GenerateSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateFriendCode returns a random 6-character uppercase alphanumeric
// friend code. Uniqueness is enforced by the database constraint; callers
// retry on collision.
func GenerateFriendCode() (string, error) {
	code := make([]byte, FriendCodeLength)
	max := big.NewInt(int64(len(friendCodeAlphabet)))
	for i := range code {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = friendCodeAlphabet[idx.Int64()]
	}
	return string(code), nil
}
