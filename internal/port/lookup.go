package port

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
)

// CourseLocator resolves a course key for a requester, enforcing the host's
// course-access rules.
type CourseLocator interface {
	Locate(ctx context.Context, courseKey string, requester model.Requester) (*model.Course, error)
}

// TranscriptPreferencesStore returns the transcript preferences of a course,
// or nil when the course has none.
type TranscriptPreferencesStore interface {
	Get(ctx context.Context, courseKey string) (*model.TranscriptPreferences, error)
}

// Known feature flags.
const (
	FlagVideoTranscript = "video_transcript_enabled"
)

// FeatureFlags tells whether a named feature is active for a course.
type FeatureFlags interface {
	Enabled(ctx context.Context, flag, courseKey string) (bool, error)
}
