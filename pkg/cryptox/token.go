package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Common token sizes in bytes.
const (
	TokenSize128 = 16 // 128-bit token
	TokenSize256 = 32 // 256-bit token
)

// GenerateToken returns a URL-safe random token with size bytes of entropy.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: invalid token size %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
