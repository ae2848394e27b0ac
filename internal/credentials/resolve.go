package credentials

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"github.com/fhuszti/videos-cdn-go/internal/config"
)

// FromSettings returns the CDN key, preferring the inline blob over Secret Manager.
func FromSettings(ctx context.Context, cfg *config.Settings) (HMAC, error) {
	if cfg.CDNCredentials != "" {
		return Parse(cfg.CDNCredentials)
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return HMAC{}, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	defer client.Close()

	return NewSecretManagerSource(client, cfg.CDNCredentialsSecret).Load(ctx)
}
