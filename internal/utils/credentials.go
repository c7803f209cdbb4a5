package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateStoreID produces a random four-digit login ID for a new store.
// Collisions are handled by the unique constraint on the stores table.
func GenerateStoreID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate store ID: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}

// GenerateStorePassword produces an eight-character lowercase alphanumeric
// password for a newly registered store.
func GenerateStorePassword() (string, error) {
	buf := make([]byte, 8)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate store password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// GenerateSecureRandomString generates a cryptographically secure random string of the
// specified byte length, then hex encodes it.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
