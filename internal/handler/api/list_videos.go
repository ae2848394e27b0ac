package api

import (
	"net/http"

	"github.com/fhuszti/videos-cdn-go/internal/api_context"
	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
)

// ListVideosHandler returns the catalog entries of the course, newest first.
func ListVideosHandler(renderer port.HTTPRenderer, svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, ok := api_context.CourseFromContext(r.Context())
		if !ok {
			writeVideoError(w, video.ErrCourseNotFound, "")
			return
		}

		raw, etag, err := renderer.RenderVideoList(r.Context(), svc, course.Key)
		if err != nil {
			writeVideoError(w, err, "Could not list videos")
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "private, no-cache")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Debugf(r.Context(), "✅  Listed videos of course %q", course.Key)
	}
}
