package port

import (
	"context"
)

// TaskDispatcher enqueues asynchronous tasks related to video assets.
type TaskDispatcher interface {
	EnqueuePurgeObject(ctx context.Context, objectKey string) error
}
