package mock

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
)

// CourseLocator implements port.CourseLocator for tests.
type CourseLocator struct {
	Out       *model.Course
	Err       error
	Called    bool
	Key       string
	Requester model.Requester
}

func (m *CourseLocator) Locate(ctx context.Context, courseKey string, requester model.Requester) (*model.Course, error) {
	m.Called = true
	m.Key = courseKey
	m.Requester = requester
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Out != nil {
		return m.Out, nil
	}
	return &model.Course{Key: courseKey}, nil
}

// TranscriptPreferences implements port.TranscriptPreferencesStore for tests.
type TranscriptPreferences struct {
	Out   *model.TranscriptPreferences
	Err   error
	Calls int
}

func (m *TranscriptPreferences) Get(ctx context.Context, courseKey string) (*model.TranscriptPreferences, error) {
	m.Calls++
	return m.Out, m.Err
}

// FeatureFlags implements port.FeatureFlags for tests.
type FeatureFlags struct {
	On    map[string]bool
	Err   error
	Calls int
}

func (m *FeatureFlags) Enabled(ctx context.Context, flag, courseKey string) (bool, error) {
	m.Calls++
	if m.Err != nil {
		return false, m.Err
	}
	return m.On[flag], nil
}
