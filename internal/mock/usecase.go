package mock

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

// MockUploadLinkGenerator implements port.UploadLinkGenerator for tests.
type MockUploadLinkGenerator struct {
	Out    port.GenerateUploadLinksOutput
	Err    error
	Called bool
	In     port.GenerateUploadLinksInput
}

func (m *MockUploadLinkGenerator) GenerateUploadLinks(ctx context.Context, in port.GenerateUploadLinksInput) (port.GenerateUploadLinksOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockVideoLister implements port.VideoLister for tests.
type MockVideoLister struct {
	Out    port.ListVideosOutput
	Err    error
	Called bool
	Key    string
}

func (m *MockVideoLister) ListVideos(ctx context.Context, courseKey string) (port.ListVideosOutput, error) {
	m.Called = true
	m.Key = courseKey
	return m.Out, m.Err
}

// MockVideoRemover implements port.VideoRemover for tests.
type MockVideoRemover struct {
	Err    error
	Called bool
	In     port.RemoveVideoInput
}

func (m *MockVideoRemover) RemoveVideo(ctx context.Context, in port.RemoveVideoInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockVideoPostProcessor implements port.VideoPostProcessor for tests.
type MockVideoPostProcessor struct {
	Out    model.VideoBlock
	Err    error
	Called bool
	In     port.PostProcessInput
}

func (m *MockVideoPostProcessor) PostProcess(ctx context.Context, in port.PostProcessInput) (model.VideoBlock, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockUploadPurger implements port.UploadPurger for tests.
type MockUploadPurger struct {
	Err    error
	Called bool
	Key    string
}

func (m *MockUploadPurger) PurgeObject(ctx context.Context, objectKey string) error {
	m.Called = true
	m.Key = objectKey
	return m.Err
}
