package video

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

// ProfileYoutube is the encoded-video profile that carries a YouTube id.
const ProfileYoutube = "youtube"

// PostSaveStep adjusts a saved video block. Steps run in order.
type PostSaveStep func(ctx context.Context, b model.VideoBlock) (model.VideoBlock, error)

type postProcessorSrv struct {
	steps []PostSaveStep
}

// NewVideoPostProcessor composes the editor post-save steps: id trimming, CDN
// playback source, then the YouTube profile override.
func NewVideoPostProcessor(catalog port.VideoCatalog, strategy Strategy) port.VideoPostProcessor {
	return &postProcessorSrv{steps: []PostSaveStep{
		TrimVideoID,
		CDNSourceStep(strategy),
		YoutubeProfileStep(catalog),
	}}
}

func (s *postProcessorSrv) PostProcess(ctx context.Context, in port.PostProcessInput) (model.VideoBlock, error) {
	b := in.Block
	if !in.MetadataChanged {
		return b, nil
	}
	for _, step := range s.steps {
		var err error
		if b, err = step(ctx, b); err != nil {
			return in.Block, err
		}
	}
	return b, nil
}

func TrimVideoID(_ context.Context, b model.VideoBlock) (model.VideoBlock, error) {
	b.EdxVideoID = strings.TrimSpace(b.EdxVideoID)
	return b, nil
}

// CDNSourceStep points a subtitle-less block at its CDN playback URL.
func CDNSourceStep(strategy Strategy) PostSaveStep {
	return func(_ context.Context, b model.VideoBlock) (model.VideoBlock, error) {
		if !strategy.CDNEnabled || b.EdxVideoID == "" || b.Sub != "" {
			return b, nil
		}
		b.HTML5Sources = []string{PlaybackSource(strategy.CDNHost, strategy.RootPath, b.EdxVideoID)}
		return b, nil
	}
}

// YoutubeProfileStep copies the catalog's YouTube rendition into the block.
func YoutubeProfileStep(catalog port.VideoCatalog) PostSaveStep {
	return func(ctx context.Context, b model.VideoBlock) (model.VideoBlock, error) {
		if b.EdxVideoID == "" {
			return b, nil
		}
		id, err := uuid.Parse(b.EdxVideoID)
		if err != nil {
			return b, nil
		}
		v, err := catalog.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return b, nil
			}
			return b, err
		}
		if yt := v.EncodedVideos.URLForProfile(ProfileYoutube); yt != "" && yt != b.YoutubeID {
			b.YoutubeID = yt
		}
		return b, nil
	}
}
