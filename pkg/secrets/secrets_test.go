package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSignature(t *testing.T) {
	// Known-answer vector: changing the canonicalization, separator, or
	// digest silently breaks every receiver's verification code.
	got := ComputeSignature("whs_testsecret", "1700000000", []byte(`{"a":1}`))
	assert.Equal(t, "6e50c2a1d72b4a854716c33670d75b1676a913de189477394d2f0f79a852c9a6", got)
}

func TestVerifySignature(t *testing.T) {
	secret := "whs_testsecret"
	ts := "1700000000"
	body := []byte(`{"a":1}`)
	sig := ComputeSignature(secret, ts, body)

	tests := []struct {
		name      string
		secret    string
		ts        string
		body      []byte
		signature string
		want      bool
	}{
		{"valid", secret, ts, body, sig, true},
		{"wrong secret", "whs_other", ts, body, sig, false},
		{"wrong timestamp", secret, "1700000001", body, sig, false},
		{"tampered body", secret, ts, []byte(`{"a":2}`), sig, false},
		{"garbage signature", secret, ts, body, "deadbeef", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifySignature(tt.secret, tt.ts, tt.body, tt.signature))
		})
	}
}

func TestGenerateSecret(t *testing.T) {
	s1, err := GenerateSecret()
	require.NoError(t, err)
	s2, err := GenerateSecret()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s1, SecretPrefix))
	// 32 bytes of raw URL-safe base64 is 43 characters.
	assert.Len(t, s1, len(SecretPrefix)+43)
	assert.NotEqual(t, s1, s2)
}

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher("test-master-secret")
	require.NoError(t, err)

	tests := []string{
		"",
		"whs_abc123",
		"a much longer secret value with spaces and symbols !@#$%",
	}
	for _, plaintext := range tests {
		enc, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		dec, err := c.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, plaintext, dec)
		if plaintext != "" {
			assert.NotEqual(t, plaintext, enc)
		}
	}
}

func TestCipherKeyIsolation(t *testing.T) {
	c1, err := NewCipher("master-one")
	require.NoError(t, err)
	c2, err := NewCipher("master-two")
	require.NoError(t, err)

	enc, err := c1.Encrypt("whs_secret")
	require.NoError(t, err)

	dec, err := c2.Decrypt(enc)
	require.NoError(t, err)
	assert.NotEqual(t, "whs_secret", dec)
}

func TestNewCipherRequiresMaster(t *testing.T) {
	_, err := NewCipher("")
	require.Error(t, err)
}
