package model

import (
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

const (
	// VideoStatusUpload means the asset is registered and awaiting its upload.
	VideoStatusUpload       = "upload"
	VideoStatusUploadFailed = "upload_failed"
	VideoStatusUploadDone   = "upload_completed"
	VideoStatusReady        = "file_complete"
)

// Video is a catalog entry for one logical video asset.
type Video struct {
	ID            uuid.UUID     `json:"edx_video_id"`
	ClientVideoID string        `json:"client_video_id"`
	CourseKey     string        `json:"course_key"`
	Status        string        `json:"status"`
	Duration      float64       `json:"duration"`
	EncodedVideos EncodedVideos `json:"encoded_videos"`
	HTML5Sources  Sources       `json:"html5_sources"`
	CreatedAt     time.Time     `json:"created"`
	UpdatedAt     time.Time     `json:"-"`
}

// NewPendingVideo describes an asset that has a signed upload URL but no bytes yet.
func NewPendingVideo(id uuid.UUID, courseKey, clientVideoID string, playbackSource string) *Video {
	v := &Video{
		ID:            id,
		ClientVideoID: clientVideoID,
		CourseKey:     courseKey,
		Status:        VideoStatusUpload,
		Duration:      0,
		EncodedVideos: EncodedVideos{},
		HTML5Sources:  Sources{},
	}
	if playbackSource != "" {
		v.HTML5Sources = Sources{playbackSource}
	}
	return v
}
