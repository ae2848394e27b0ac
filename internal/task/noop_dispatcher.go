package task

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/port"
)

// NoopDispatcher drops tasks when no Redis is configured. Removed videos then
// keep their object in the bucket.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueuePurgeObject(ctx context.Context, objectKey string) error {
	return nil
}
