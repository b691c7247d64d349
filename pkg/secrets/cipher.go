// Package secrets provides at-rest encryption for webhook auth material,
// webhook secret generation, and HMAC request signing.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Cipher encrypts and decrypts short secrets with AES-256-CFB.
// The key is SHA-256 of the configured master secret; the IV is derived
// deterministically from the key (first 16 bytes of SHA-256(key)), which
// keeps the wire format self-contained. Plaintext exists only in memory
// while a delivery is being signed.
type Cipher struct {
	key []byte
	iv  []byte
}

// NewCipher derives a cipher from the master secret.
// An empty master secret is a configuration error.
func NewCipher(masterSecret string) (*Cipher, error) {
	if masterSecret == "" {
		return nil, fmt.Errorf("master secret is empty")
	}
	key := sha256.Sum256([]byte(masterSecret))
	ivSeed := sha256.Sum256(key[:])
	return &Cipher{
		key: key[:],
		iv:  ivSeed[:aes.BlockSize],
	}, nil
}

// Encrypt returns the base64 ciphertext of the plaintext.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to build AES cipher: %w", err)
	}
	out := make([]byte, len(plaintext))
	cipher.NewCFBEncrypter(block, c.iv).XORKeyStream(out, []byte(plaintext))
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to build AES cipher: %w", err)
	}
	out := make([]byte, len(raw))
	cipher.NewCFBDecrypter(block, c.iv).XORKeyStream(out, raw)
	return string(out), nil
}
