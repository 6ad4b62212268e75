package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSessionToken returns a hex-encoded token built from length bytes
// of cryptographically secure randomness. The resulting string is twice the
// byte length.
//
// Returns an error only if the system entropy source fails.
func GenerateSessionToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
