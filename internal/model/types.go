package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EncodedVideo is one transcoded rendition of an asset.
type EncodedVideo struct {
	Profile  string `json:"profile"`
	URL      string `json:"url"`
	FileSize int64  `json:"file_size"`
	Bitrate  int    `json:"bitrate"`
}

type EncodedVideos []EncodedVideo

func (e EncodedVideos) Value() (driver.Value, error) {
	if e == nil {
		e = EncodedVideos{}
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal EncodedVideos: %w", err)
	}
	return b, nil
}
func (e *EncodedVideos) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("EncodedVideos.Scan: %w", err)
	}
	if data == nil {
		*e = EncodedVideos{}
		return nil
	}
	return json.Unmarshal(data, e)
}

// URLForProfile returns the URL of the first rendition with the given profile.
func (e EncodedVideos) URLForProfile(profile string) string {
	for _, v := range e {
		if v.Profile == profile {
			return v.URL
		}
	}
	return ""
}

// Sources is the list of playback URLs of an asset.
type Sources []string

func (s Sources) Value() (driver.Value, error) {
	if s == nil {
		s = Sources{}
	}
	return json.Marshal(s)
}
func (s *Sources) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("Sources.Scan: %w", err)
	}
	if data == nil {
		*s = Sources{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// TranscriptPreferences is the course-level transcript configuration
// forwarded to the transcoding pipeline through object metadata.
type TranscriptPreferences struct {
	Provider            string   `json:"provider"`
	CieloFidelity       string   `json:"cielo24_fidelity,omitempty"`
	CieloTurnaround     string   `json:"cielo24_turnaround,omitempty"`
	ThreePlayTurnaround string   `json:"three_play_turnaround,omitempty"`
	PreferredLanguages  []string `json:"preferred_languages"`
	VideoSourceLanguage string   `json:"video_source_language,omitempty"`
}

func (p TranscriptPreferences) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal TranscriptPreferences: %w", err)
	}
	return b, nil
}
func (p *TranscriptPreferences) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("TranscriptPreferences.Scan: %w", err)
	}
	if data == nil {
		*p = TranscriptPreferences{}
		return nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unmarshal TranscriptPreferences: %w", err)
	}
	return nil
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("expected []byte, got %T", src)
	}
}
