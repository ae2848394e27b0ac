package video

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

type videoListerSrv struct {
	catalog port.VideoCatalog
}

func NewVideoLister(catalog port.VideoCatalog) port.VideoLister {
	return &videoListerSrv{catalog: catalog}
}

func (s *videoListerSrv) ListVideos(ctx context.Context, courseKey string) (port.ListVideosOutput, error) {
	videos, err := s.catalog.ListByCourse(ctx, courseKey)
	if err != nil {
		return port.ListVideosOutput{}, err
	}
	if videos == nil {
		videos = []*model.Video{}
	}
	return port.ListVideosOutput{Videos: videos}, nil
}
