package api

import (
	"encoding/json"
	"net/http"

	"github.com/fhuszti/videos-cdn-go/internal/api_context"
	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
)

// GenerateUploadLinksHandler issues one signed upload URL per requested file
// of the course resolved by middleware.WithCourse.
func GenerateUploadLinksHandler(svc port.UploadLinkGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, ok := api_context.CourseFromContext(r.Context())
		if !ok {
			writeVideoError(w, video.ErrCourseNotFound, "")
			return
		}

		var batch port.UploadBatch
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			logger.Warnf(r.Context(), "❌  Invalid upload request body: %v", err)
			writeVideoError(w, video.ErrMalformedRequest, "")
			return
		}

		out, err := svc.GenerateUploadLinks(r.Context(), port.GenerateUploadLinksInput{
			Course: *course,
			Batch:  &batch,
		})
		if err != nil {
			if video.IsClientError(err) {
				logger.Warnf(r.Context(), "❌  Upload request rejected: %v", err)
			}
			writeVideoError(w, err, "Could not generate upload links")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully generated %d upload link(s)", len(out.Files))
	}
}
