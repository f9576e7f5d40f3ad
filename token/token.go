// Package token generates random identifiers for short links.
package token

import (
	"crypto/rand"
	"fmt"
)

// Alphabet is the character set tokens are drawn from. Tokens are
// case-sensitive and safe to embed in a URL path segment as-is.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random token of the given length drawn from a
// cryptographically secure source. Each random byte is reduced modulo the
// alphabet size; the resulting bias is acceptable because tokens are
// identifiers, not secrets.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}
