package secrets

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns the hex HMAC-SHA256 of "<timestamp>.<body>"
// under the secret. The body bytes must be exactly what is transmitted.
func ComputeSignature(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the hex signature matches the payload.
// Comparison is constant-time.
func VerifySignature(secret, timestamp string, body []byte, signature string) bool {
	want := ComputeSignature(secret, timestamp, body)
	return hmac.Equal([]byte(want), []byte(signature))
}
