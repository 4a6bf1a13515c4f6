package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// HashPassword returns the lowercase hex HMAC-SHA-256 of password keyed with secret.
// The same function produces the stored ADMIN_PASSWORD_HASH offline.
func HashPassword(password, secret string) string {
	return sign(password, secret)
}

// VerifyPassword recomputes the hash of password and compares it to storedHash in constant time.
func VerifyPassword(password, storedHash, secret string) bool {
	return timingSafeEqual(HashPassword(password, secret), storedHash)
}

// IsValidPasswordHash reports whether s looks like a HashPassword digest.
func IsValidPasswordHash(s string) bool {
	if len(s) != hashHexLength {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}

// GenerateSecret returns n random bytes hex encoded, suitable as a SESSION_SECRET.
func GenerateSecret(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", n)
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
