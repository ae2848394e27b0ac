package storage

import (
	"context"
	"log"

	"github.com/fhuszti/videos-cdn-go/internal/config"
	cdncreds "github.com/fhuszti/videos-cdn-go/internal/credentials"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

// FromSettings opens the object store the upload URLs are signed for. The API
// and the purge worker share it so purges hit the signed objects.
func FromSettings(ctx context.Context, cfg *config.Settings) (port.ObjectStore, error) {
	if cfg.CDNEnabled {
		key, err := cdncreds.FromSettings(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client, err := NewCDNClient(cfg.CDNEndpoint, cfg.CDNRegion, key.AccessKey, key.SecretKey, cfg.CDNUseSSL)
		if err != nil {
			return nil, err
		}
		log.Printf("signing uploads for CDN bucket %q", cfg.CDNBucket)
		return NewCDNStorage(client, cfg.CDNBucket), nil
	}

	client, err := NewS3Client(ctx, PipelineOptions{
		Bucket:    cfg.UploadBucket,
		Region:    cfg.UploadRegion,
		Endpoint:  cfg.UploadEndpoint,
		AccessKey: cfg.UploadAccessKey,
		SecretKey: cfg.UploadSecretKey,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("signing uploads for pipeline bucket %q", cfg.UploadBucket)
	return NewPipelineStorage(client, cfg.UploadBucket), nil
}
