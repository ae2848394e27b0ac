package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/videos-cdn-go/internal/api_context"
	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

const courseKey = "course-v1:edX+DemoX+Demo_Course"

func withCourse(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), api_context.CourseKey, &model.Course{Key: courseKey})
	return r.WithContext(ctx)
}

func withID(r *http.Request, id uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), api_context.IDKey, id)
	return r.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error JSON: %v; body=%q", err, rec.Body.String())
	}
	return body.Error
}
