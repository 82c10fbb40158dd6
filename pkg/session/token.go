package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// generateToken draws length bytes from the system CSPRNG and encodes
// them URL-safe. At the default 64 bytes a collision within a store's
// lifetime is not a realistic concern, so tokens are treated as unique.
func generateToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
