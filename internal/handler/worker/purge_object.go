package worker

import (
	"context"
	"log"

	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/task"
	"github.com/fhuszti/videos-cdn-go/internal/validation"
)

// PurgeObjectHandler handles a purge-object task.
// It validates the incoming payload and delegates the call to the service.
func PurgeObjectHandler(ctx context.Context, p task.PurgeObjectPayload, svc port.UploadPurger) error {
	if err := validation.ValidateStruct(p); err != nil {
		log.Printf("❌  Payload validation failed: %v", err)
		return err
	}

	if err := svc.PurgeObject(ctx, p.ObjectKey); err != nil {
		log.Printf("❌  Failed to purge object %q: %v", p.ObjectKey, err)
		return err
	}

	log.Printf("✅  Successfully purged object %q", p.ObjectKey)
	return nil
}
