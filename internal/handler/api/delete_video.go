package api

import (
	"log"
	"net/http"

	"github.com/fhuszti/videos-cdn-go/internal/api_context"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
)

// DeleteVideoHandler detaches a video from the course.
func DeleteVideoHandler(svc port.VideoRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, ok := api_context.CourseFromContext(r.Context())
		if !ok {
			writeVideoError(w, video.ErrCourseNotFound, "")
			return
		}
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.RemoveVideo(r.Context(), port.RemoveVideoInput{CourseKey: course.Key, ID: id}); err != nil {
			writeVideoError(w, err, "Failed to delete video")
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully removed video #%s from course %q", id, course.Key)
	}
}
