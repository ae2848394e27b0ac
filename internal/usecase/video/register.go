package video

import (
	"context"
	"fmt"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

// Registrar records pending assets in the video catalog.
type Registrar struct {
	catalog  port.VideoCatalog
	strategy Strategy
}

func NewRegistrar(catalog port.VideoCatalog, strategy Strategy) *Registrar {
	return &Registrar{catalog: catalog, strategy: strategy}
}

// Register writes an "upload" entry for the asset. Under the CDN strategy the
// entry already points at its future playback URL.
func (r *Registrar) Register(ctx context.Context, id uuid.UUID, courseKey, clientFileName string) (*model.Video, error) {
	source := ""
	if r.strategy.CDNEnabled {
		source = PlaybackSource(r.strategy.CDNHost, r.strategy.RootPath, id.String())
	}
	v := model.NewPendingVideo(id, courseKey, clientFileName, source)

	if err := r.catalog.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("%w: video %s: %v", ErrCatalogWrite, id, err)
	}
	return v, nil
}
