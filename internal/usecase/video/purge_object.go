package video

import (
	"context"
	"errors"

	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

type uploadPurgerSrv struct {
	strg port.ObjectStore
}

func NewUploadPurger(strg port.ObjectStore) port.UploadPurger {
	return &uploadPurgerSrv{strg: strg}
}

// PurgeObject removes an uploaded object. An object that was never uploaded is
// not an error.
func (s *uploadPurgerSrv) PurgeObject(ctx context.Context, objectKey string) error {
	if err := s.strg.RemoveObject(ctx, objectKey); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			logger.Warnf(ctx, "object %q already gone", objectKey)
			return nil
		}
		return err
	}
	logger.Infof(ctx, "✅ purged object %q", objectKey)
	return nil
}
