package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/pkg/secrets"
	testdb "github.com/docpipe/docpipe/test/database"
)

func setupTestWebhookService(t *testing.T) (*WebhookService, *secrets.Cipher) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := secrets.NewCipher("test-master-secret")
	require.NoError(t, err)
	return NewWebhookService(client.Client, cipher), cipher
}

func TestWebhookService_GetConfigMissing(t *testing.T) {
	svc, _ := setupTestWebhookService(t)

	cfg, err := svc.GetConfig(context.Background(), "org-none")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestWebhookService_UpsertValidation(t *testing.T) {
	svc, _ := setupTestWebhookService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		org  string
		req  UpsertWebhookRequest
	}{
		{"missing org", "", UpsertWebhookRequest{URL: "https://x.test"}},
		{"enabled without url", "org-1", UpsertWebhookRequest{Enabled: true}},
		{"non-http url", "org-1", UpsertWebhookRequest{URL: "ftp://x.test"}},
		{"unparseable url", "org-1", UpsertWebhookRequest{URL: "://nope"}},
		{"bad auth type", "org-1", UpsertWebhookRequest{URL: "https://x.test", AuthType: "basic"}},
		{"header auth without name", "org-1", UpsertWebhookRequest{URL: "https://x.test", AuthType: AuthHeader}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(ctx, tt.org, tt.req)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestWebhookService_UpsertAndGet(t *testing.T) {
	svc, _ := setupTestWebhookService(t)
	ctx := context.Background()

	settings, err := svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
		Enabled: true,
		URL:     "https://receiver.test/hook",
		Events:  []string{"document.uploaded"},
	})
	require.NoError(t, err)
	assert.Equal(t, "org-1", settings.OrganizationID)
	assert.True(t, settings.Enabled)
	assert.Equal(t, AuthNone, settings.AuthType)
	assert.False(t, settings.HasSecret)
	assert.Empty(t, settings.GeneratedSecret)

	got, err := svc.GetConfig(ctx, "org-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://receiver.test/hook", got.URL)
	assert.Equal(t, []string{"document.uploaded"}, got.Events)

	// Upsert again updates in place.
	settings, err = svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
		Enabled: false,
		URL:     "https://receiver.test/hook2",
	})
	require.NoError(t, err)
	assert.False(t, settings.Enabled)
	assert.Equal(t, "https://receiver.test/hook2", settings.URL)
}

func TestWebhookService_EventsRoundTrip(t *testing.T) {
	svc, _ := setupTestWebhookService(t)
	ctx := context.Background()

	// An absent allowlist stays nil; an empty one stays empty. The
	// delivery engine relies on the distinction: nil means all events,
	// empty means none.
	_, err := svc.Upsert(ctx, "org-all", UpsertWebhookRequest{
		Enabled: true, URL: "https://receiver.test/hook",
	})
	require.NoError(t, err)
	raw, err := svc.GetRawConfig(ctx, "org-all")
	require.NoError(t, err)
	assert.Nil(t, raw.Events)

	_, err = svc.Upsert(ctx, "org-none", UpsertWebhookRequest{
		Enabled: true, URL: "https://receiver.test/hook", Events: []string{},
	})
	require.NoError(t, err)
	raw, err = svc.GetRawConfig(ctx, "org-none")
	require.NoError(t, err)
	require.NotNil(t, raw.Events)
	assert.Empty(t, raw.Events)
}

func TestWebhookService_SecretLifecycle(t *testing.T) {
	svc, _ := setupTestWebhookService(t)
	ctx := context.Background()

	t.Run("generated once when signatures enabled", func(t *testing.T) {
		settings, err := svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
			Enabled:          true,
			URL:              "https://receiver.test/hook",
			SignatureEnabled: true,
		})
		require.NoError(t, err)
		assert.True(t, settings.HasSecret)
		assert.True(t, strings.HasPrefix(settings.GeneratedSecret, secrets.SecretPrefix))
	})

	t.Run("reads never return the secret", func(t *testing.T) {
		got, err := svc.GetConfig(ctx, "org-1")
		require.NoError(t, err)
		assert.True(t, got.HasSecret)
		assert.Empty(t, got.GeneratedSecret)
	})

	t.Run("re-upsert keeps the stored secret", func(t *testing.T) {
		raw1, err := svc.GetRawConfig(ctx, "org-1")
		require.NoError(t, err)

		settings, err := svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
			Enabled:          true,
			URL:              "https://receiver.test/hook",
			SignatureEnabled: true,
		})
		require.NoError(t, err)
		assert.Empty(t, settings.GeneratedSecret)

		raw2, err := svc.GetRawConfig(ctx, "org-1")
		require.NoError(t, err)
		assert.Equal(t, *raw1.SecretEncrypted, *raw2.SecretEncrypted)
	})

	t.Run("regeneration replaces the secret", func(t *testing.T) {
		raw1, err := svc.GetRawConfig(ctx, "org-1")
		require.NoError(t, err)

		settings, err := svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
			Enabled:          true,
			URL:              "https://receiver.test/hook",
			SignatureEnabled: true,
			RegenerateSecret: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, settings.GeneratedSecret)

		raw2, err := svc.GetRawConfig(ctx, "org-1")
		require.NoError(t, err)
		assert.NotEqual(t, *raw1.SecretEncrypted, *raw2.SecretEncrypted)
	})

	t.Run("hmac auth implies a secret", func(t *testing.T) {
		settings, err := svc.Upsert(ctx, "org-hmac", UpsertWebhookRequest{
			Enabled:  true,
			URL:      "https://receiver.test/hook",
			AuthType: AuthHMAC,
		})
		require.NoError(t, err)
		assert.True(t, settings.HasSecret)
		assert.NotEmpty(t, settings.GeneratedSecret)
	})
}

func TestWebhookService_HeaderValueEncryptedAtRest(t *testing.T) {
	svc, cipher := setupTestWebhookService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
		Enabled:         true,
		URL:             "https://receiver.test/hook",
		AuthType:        AuthHeader,
		AuthHeaderName:  "Authorization",
		AuthHeaderValue: "Bearer tok-123",
	})
	require.NoError(t, err)

	raw, err := svc.GetRawConfig(ctx, "org-1")
	require.NoError(t, err)
	require.NotNil(t, raw.AuthHeaderValueEncrypted)
	assert.NotEqual(t, "Bearer tok-123", *raw.AuthHeaderValueEncrypted)

	plain, err := cipher.Decrypt(*raw.AuthHeaderValueEncrypted)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", plain)

	t.Run("absent value keeps the stored one", func(t *testing.T) {
		_, err := svc.Upsert(ctx, "org-1", UpsertWebhookRequest{
			Enabled:        true,
			URL:            "https://receiver.test/hook",
			AuthType:       AuthHeader,
			AuthHeaderName: "Authorization",
		})
		require.NoError(t, err)

		again, err := svc.GetRawConfig(ctx, "org-1")
		require.NoError(t, err)
		require.NotNil(t, again.AuthHeaderValueEncrypted)
		assert.Equal(t, *raw.AuthHeaderValueEncrypted, *again.AuthHeaderValueEncrypted)
	})

	t.Run("sanitized view never exposes the value", func(t *testing.T) {
		got, err := svc.GetConfig(ctx, "org-1")
		require.NoError(t, err)
		assert.Equal(t, "Authorization", got.AuthHeaderName)
	})
}
