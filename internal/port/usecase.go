package port

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// FileUploadRequest is one proposed upload. Fields are pointers so that a
// missing JSON key can be told apart from an empty value.
type FileUploadRequest struct {
	FileName    *string `json:"file_name" validate:"required"`
	ContentType *string `json:"content_type" validate:"required,video_content_type"`
}

// UploadBatch is the body of an upload-link request.
type UploadBatch struct {
	Files []FileUploadRequest `json:"files" validate:"required,min=1,dive"`
}

// UploadLinkGenerator validates a batch and returns one signed upload URL and
// one fresh video ID per file, in input order.
type UploadLinkGenerator interface {
	GenerateUploadLinks(ctx context.Context, in GenerateUploadLinksInput) (GenerateUploadLinksOutput, error)
}
type GenerateUploadLinksInput struct {
	Course model.Course
	Batch  *UploadBatch
}
type UploadLink struct {
	FileName   string    `json:"file_name"`
	UploadURL  string    `json:"upload_url"`
	EdxVideoID uuid.UUID `json:"edx_video_id"`
}
type GenerateUploadLinksOutput struct {
	Files []UploadLink `json:"files"`
}

// VideoLister lists the catalog entries of a course.
type VideoLister interface {
	ListVideos(ctx context.Context, courseKey string) (ListVideosOutput, error)
}
type ListVideosOutput struct {
	Videos []*model.Video `json:"videos"`
}

// VideoRemover detaches a video from a course and schedules the purge of its object.
type VideoRemover interface {
	RemoveVideo(ctx context.Context, in RemoveVideoInput) error
}
type RemoveVideoInput struct {
	CourseKey string
	ID        uuid.UUID
}

// VideoPostProcessor adjusts a video block after the host editor saved it.
type VideoPostProcessor interface {
	PostProcess(ctx context.Context, in PostProcessInput) (model.VideoBlock, error)
}
type PostProcessInput struct {
	Block model.VideoBlock `json:"block"`
	// MetadataChanged is computed by the host: the user edited metadata, or
	// one of the block's transcripts could not be found.
	MetadataChanged bool `json:"metadata_changed"`
}

// UploadPurger removes the stored object of a deleted video.
type UploadPurger interface {
	PurgeObject(ctx context.Context, objectKey string) error
}
