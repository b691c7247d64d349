package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/webhookconfig"
	"github.com/docpipe/docpipe/pkg/secrets"
)

// Auth types accepted on a webhook config.
const (
	AuthNone   = "none"
	AuthHeader = "header"
	AuthHMAC   = "hmac"
)

// WebhookService manages per-organization webhook configuration. Secret
// material is encrypted at rest and never read back out through the API;
// a freshly generated signing secret is returned exactly once.
type WebhookService struct {
	client *ent.Client
	cipher *secrets.Cipher
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client, cipher *secrets.Cipher) *WebhookService {
	return &WebhookService{client: client, cipher: cipher}
}

// WebhookSettings is the sanitized view of an organization's config.
type WebhookSettings struct {
	OrganizationID   string    `json:"organization_id"`
	Enabled          bool      `json:"enabled"`
	URL              string    `json:"url"`
	Events           []string  `json:"events,omitempty"`
	AuthType         string    `json:"auth_type"`
	AuthHeaderName   string    `json:"auth_header_name,omitempty"`
	SignatureEnabled bool      `json:"signature_enabled"`
	HasSecret        bool      `json:"has_secret"`
	UpdatedAt        time.Time `json:"updated_at"`
	// GeneratedSecret is set only on the response that created it.
	GeneratedSecret string `json:"generated_secret,omitempty"`
}

// UpsertWebhookRequest carries a config write.
type UpsertWebhookRequest struct {
	Enabled          bool     `json:"enabled"`
	URL              string   `json:"url"`
	Events           []string `json:"events"`
	AuthType         string   `json:"auth_type"`
	AuthHeaderName   string   `json:"auth_header_name"`
	AuthHeaderValue  string   `json:"auth_header_value"`
	SignatureEnabled bool     `json:"signature_enabled"`
	// RegenerateSecret forces a new signing secret even when one exists.
	RegenerateSecret bool `json:"regenerate_secret"`
}

// GetConfig returns the sanitized config, or nil when the organization
// has none.
func (s *WebhookService) GetConfig(ctx context.Context, orgID string) (*WebhookSettings, error) {
	cfg, err := s.client.WebhookConfig.Get(ctx, orgID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook config: %w", err)
	}
	return sanitize(cfg, ""), nil
}

// GetRawConfig returns the stored row with encrypted fields intact, or
// nil when absent. Used by the delivery engine to snapshot auth material.
func (s *WebhookService) GetRawConfig(ctx context.Context, orgID string) (*ent.WebhookConfig, error) {
	cfg, err := s.client.WebhookConfig.Get(ctx, orgID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook config: %w", err)
	}
	return cfg, nil
}

// Upsert writes the organization's config. When signatures are enabled
// and no secret exists (or regeneration is requested) a new secret is
// generated, stored encrypted, and returned in the response once.
func (s *WebhookService) Upsert(ctx context.Context, orgID string, req UpsertWebhookRequest) (*WebhookSettings, error) {
	if orgID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.Enabled && req.URL == "" {
		return nil, NewValidationError("url", "required when enabled")
	}
	if req.URL != "" {
		u, err := url.Parse(req.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, NewValidationError("url", "must be an http(s) URL")
		}
	}
	switch req.AuthType {
	case "", AuthNone, AuthHeader, AuthHMAC:
	default:
		return nil, NewValidationError("auth_type", "must be none, header, or hmac")
	}
	if req.AuthType == AuthHeader && req.AuthHeaderName == "" {
		return nil, NewValidationError("auth_header_name", "required for header auth")
	}
	authType := req.AuthType
	if authType == "" {
		authType = AuthNone
	}

	existing, err := s.GetRawConfig(ctx, orgID)
	if err != nil {
		return nil, err
	}

	needSecret := authType == AuthHMAC || req.SignatureEnabled
	var generated string
	var secretEnc string
	if needSecret {
		hasSecret := existing != nil && existing.SecretEncrypted != nil && *existing.SecretEncrypted != ""
		if !hasSecret || req.RegenerateSecret {
			secret, err := secrets.GenerateSecret()
			if err != nil {
				return nil, fmt.Errorf("failed to generate signing secret: %w", err)
			}
			secretEnc, err = s.cipher.Encrypt(secret)
			if err != nil {
				return nil, fmt.Errorf("failed to encrypt signing secret: %w", err)
			}
			generated = secret
		} else {
			secretEnc = *existing.SecretEncrypted
		}
	}

	var headerValueEnc string
	if req.AuthHeaderValue != "" {
		headerValueEnc, err = s.cipher.Encrypt(req.AuthHeaderValue)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt auth header value: %w", err)
		}
	} else if existing != nil && existing.AuthHeaderValueEncrypted != nil {
		// Absent header value means "keep the stored one".
		headerValueEnc = *existing.AuthHeaderValueEncrypted
	}

	builder := s.client.WebhookConfig.Create().
		SetID(orgID).
		SetEnabled(req.Enabled).
		SetURL(req.URL).
		SetAuthType(webhookconfig.AuthType(authType)).
		SetSignatureEnabled(req.SignatureEnabled)
	if req.Events != nil {
		builder = builder.SetEvents(req.Events)
	}
	if req.AuthHeaderName != "" {
		builder = builder.SetAuthHeaderName(req.AuthHeaderName)
	}
	if headerValueEnc != "" {
		builder = builder.SetAuthHeaderValueEncrypted(headerValueEnc)
	}
	if secretEnc != "" {
		builder = builder.SetSecretEncrypted(secretEnc)
	}

	err = builder.
		OnConflictColumns(webhookconfig.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert webhook config: %w", err)
	}

	stored, err := s.GetRawConfig(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return sanitize(stored, generated), nil
}

func sanitize(cfg *ent.WebhookConfig, generated string) *WebhookSettings {
	out := &WebhookSettings{
		OrganizationID:   cfg.ID,
		Enabled:          cfg.Enabled,
		URL:              cfg.URL,
		Events:           cfg.Events,
		AuthType:         string(cfg.AuthType),
		SignatureEnabled: cfg.SignatureEnabled,
		HasSecret:        cfg.SecretEncrypted != nil && *cfg.SecretEncrypted != "",
		UpdatedAt:        cfg.UpdatedAt,
		GeneratedSecret:  generated,
	}
	if cfg.AuthHeaderName != nil {
		out.AuthHeaderName = *cfg.AuthHeaderName
	}
	return out
}
