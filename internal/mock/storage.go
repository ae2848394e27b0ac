package mock

import (
	"context"
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/port"
)

// Storage implements port.ObjectStore for tests.
type Storage struct {
	// captured inputs
	ObjectKeys   []string
	ContentTypes []string
	Metadata     []map[string]string
	TTL          time.Duration
	RemovedKey   string

	// errors
	SignErr error
	// SignErrAt fails the n-th signing call (1-based) when SignErr is set.
	SignErrAt int
	RemoveErr error

	// call flags
	SignCalls    int
	RemoveCalled bool
}

func (m *Storage) SignUploadURL(ctx context.Context, objectKey, contentType string, metadata map[string]string, ttl time.Duration) (port.SignedUploadURL, error) {
	m.SignCalls++
	m.ObjectKeys = append(m.ObjectKeys, objectKey)
	m.ContentTypes = append(m.ContentTypes, contentType)
	m.Metadata = append(m.Metadata, metadata)
	m.TTL = ttl
	if m.SignErr != nil && (m.SignErrAt == 0 || m.SignErrAt == m.SignCalls) {
		return port.SignedUploadURL{}, m.SignErr
	}
	return port.SignedUploadURL{
		URL:         "https://storage.example.com/" + objectKey + "?sig=1",
		Method:      "PUT",
		ContentType: contentType,
		Headers:     map[string]string{"Content-Type": contentType},
		ExpiresAt:   time.Now().Add(ttl),
	}, nil
}

func (m *Storage) RemoveObject(ctx context.Context, objectKey string) error {
	m.RemoveCalled = true
	m.RemovedKey = objectKey
	return m.RemoveErr
}
