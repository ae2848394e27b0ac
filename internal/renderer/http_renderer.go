package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/fhuszti/videos-cdn-go/internal/port"
)

type httpRenderer struct{}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer() port.HTTPRenderer {
	return &httpRenderer{}
}

// RenderVideoList runs the lister and returns the JSON encoded output and a
// quoted ETag string.
func (r *httpRenderer) RenderVideoList(ctx context.Context, lister port.VideoLister, courseKey string) ([]byte, string, error) {
	out, err := lister.ListVideos(ctx, courseKey)
	if err != nil {
		return nil, "", err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	return raw, etagFor(raw), nil
}

func etagFor(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}
