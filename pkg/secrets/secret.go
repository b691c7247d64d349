package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SecretPrefix marks webhook signing secrets.
const SecretPrefix = "whs_"

// GenerateSecret returns a new webhook signing secret:
// "whs_" followed by 32 bytes of URL-safe base64 entropy.
func GenerateSecret() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	return SecretPrefix + base64.RawURLEncoding.EncodeToString(raw), nil
}
