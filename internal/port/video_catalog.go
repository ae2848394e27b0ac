package port

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

// VideoCatalog defines persistence operations for video assets.
type VideoCatalog interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	ListByCourse(ctx context.Context, courseKey string) ([]*model.Video, error)
	// RemoveForCourse reports whether the video was left without any course
	// and deleted with it.
	RemoveForCourse(ctx context.Context, courseKey string, id uuid.UUID) (orphaned bool, err error)
}
