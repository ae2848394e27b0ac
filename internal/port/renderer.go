package port

import "context"

// HTTPRenderer mediates between HTTP handlers and read use cases. It returns
// the JSON body together with an ETag derived from it.
type HTTPRenderer interface {
	RenderVideoList(ctx context.Context, lister VideoLister, courseKey string) ([]byte, string, error)
}
