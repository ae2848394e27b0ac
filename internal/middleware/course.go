package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/fhuszti/videos-cdn-go/internal/api_context"
	"github.com/fhuszti/videos-cdn-go/internal/handler/api"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/go-chi/chi/v5"
)

// WithCourse resolves the {courseKey} URL parameter for the authenticated
// requester before the handler reads the body.
func WithCourse(locator port.CourseLocator) func(http.Handler) http.Handler {
	return resolveCourse(locator, http.StatusNotFound, "Course not found")
}

// WithCourseOrBadRequest is WithCourse for the custom upload link route, which
// answers an unknown course with 400.
func WithCourseOrBadRequest(locator port.CourseLocator) func(http.Handler) http.Handler {
	return resolveCourse(locator, http.StatusBadRequest, "Course Not Found")
}

func resolveCourse(locator port.CourseLocator, notFoundStatus int, notFoundMsg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := chi.URLParam(r, "courseKey")
			if key == "" {
				api.WriteError(w, http.StatusBadRequest, "Course key is required", nil)
				return
			}

			course, err := locator.Locate(r.Context(), key, api_context.RequesterFromContext(r.Context()))
			if err != nil {
				if errors.Is(err, video.ErrCourseNotFound) {
					api.WriteError(w, notFoundStatus, notFoundMsg, nil)
					return
				}
				api.WriteError(w, http.StatusInternalServerError, "Could not resolve course", err)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.CourseKey, course)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
