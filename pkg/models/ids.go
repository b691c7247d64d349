package models

import (
	"crypto/rand"
	"encoding/hex"
)

// NewDocumentID returns a 24-character hex document id.
func NewDocumentID() string {
	raw := make([]byte, 12)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(raw)
}
