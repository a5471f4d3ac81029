package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericCode returns a random code of the given number of decimal
// digits, zero-padded. Used for emailed one-time verification codes.
func GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("cryptox: code digits must be positive, got %d", digits)
	}

	const charset = "0123456789"
	code := make([]byte, digits)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("cryptox: failed to generate code: %w", err)
		}
		code[i] = charset[n.Int64()]
	}
	return string(code), nil
}
