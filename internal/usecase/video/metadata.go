package video

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fhuszti/videos-cdn-go/internal/port"
)

const (
	MetaClientVideoID         = "client_video_id"
	MetaCourseKey             = "course_key"
	MetaTranscriptPreferences = "transcript_preferences"
)

// MetadataComposer builds the object metadata attached to a signed upload.
type MetadataComposer struct {
	flags port.FeatureFlags
	prefs port.TranscriptPreferencesStore
}

func NewMetadataComposer(flags port.FeatureFlags, prefs port.TranscriptPreferencesStore) *MetadataComposer {
	return &MetadataComposer{flags: flags, prefs: prefs}
}

// Compose returns client_video_id and course_key, plus the course transcript
// preferences when the transcript feature is on and preferences exist.
func (c *MetadataComposer) Compose(ctx context.Context, fileName, courseKey string) (map[string]string, error) {
	meta := map[string]string{
		MetaClientVideoID: fileName,
		MetaCourseKey:     courseKey,
	}

	enabled, err := c.flags.Enabled(ctx, port.FlagVideoTranscript, courseKey)
	if err != nil {
		return nil, fmt.Errorf("%w: feature flag %s: %v", ErrUpstreamLookup, port.FlagVideoTranscript, err)
	}
	if !enabled {
		return meta, nil
	}

	prefs, err := c.prefs.Get(ctx, courseKey)
	if err != nil {
		return nil, fmt.Errorf("%w: transcript preferences: %v", ErrUpstreamLookup, err)
	}
	if prefs == nil {
		return meta, nil
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("%w: encode transcript preferences: %v", ErrUpstreamLookup, err)
	}
	meta[MetaTranscriptPreferences] = string(raw)
	return meta, nil
}
