package port

import (
	"context"
	"time"
)

// SignedUploadURL is a pre-authorised, time-boxed write capability for one object key.
type SignedUploadURL struct {
	URL         string
	Method      string
	ContentType string
	// Headers the client must send verbatim with the upload request.
	Headers   map[string]string
	ExpiresAt time.Time
}

// ObjectStore defines the object-store operations the service needs. It never
// moves video bytes itself.
type ObjectStore interface {
	SignUploadURL(ctx context.Context, objectKey, contentType string, metadata map[string]string, ttl time.Duration) (SignedUploadURL, error)
	RemoveObject(ctx context.Context, objectKey string) error
}
