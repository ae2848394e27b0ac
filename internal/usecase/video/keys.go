package video

import (
	"fmt"

	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

// ObjectKey is the storage location of an asset. The separator is kept even
// when rootPath is empty.
func ObjectKey(rootPath string, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", rootPath, id)
}

// PlaybackSource is the CDN URL the asset with the given edx_video_id is served from.
func PlaybackSource(cdnHost, rootPath, id string) string {
	return fmt.Sprintf("%s/%s/%s", cdnHost, rootPath, id)
}

// CheckASCIIFileName rejects names that cannot travel in an object metadata header.
func CheckASCIIFileName(name string) error {
	for i := 0; i < len(name); i++ {
		if name[i] > 0x7f {
			return &NonASCIIFileNameError{FileName: name}
		}
	}
	return nil
}
