package video

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

type videoRemoverSrv struct {
	catalog  port.VideoCatalog
	tasks    port.TaskDispatcher
	strategy Strategy
}

// NewVideoRemover constructs a VideoRemover implementation.
func NewVideoRemover(catalog port.VideoCatalog, tasks port.TaskDispatcher, strategy Strategy) port.VideoRemover {
	return &videoRemoverSrv{catalog: catalog, tasks: tasks, strategy: strategy}
}

// RemoveVideo detaches the video from the course. Once no course uses it, the
// purge of its uploaded object is scheduled. A failed enqueue is logged and
// does not undo the removal.
func (s *videoRemoverSrv) RemoveVideo(ctx context.Context, in port.RemoveVideoInput) error {
	orphaned, err := s.catalog.RemoveForCourse(ctx, in.CourseKey, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVideoNotFound
		}
		return err
	}
	if !orphaned {
		logger.Infof(ctx, "video #%s is still used by other courses, keeping its object", in.ID)
		return nil
	}

	key := ObjectKey(s.strategy.RootPath, in.ID)
	if err := s.tasks.EnqueuePurgeObject(ctx, key); err != nil {
		logger.Errorf(ctx, "❌ failed to enqueue purge of %q: %v", key, err)
	}
	return nil
}
