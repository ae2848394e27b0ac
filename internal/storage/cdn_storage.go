package storage

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// CDNStorage signs uploads into the CDN origin bucket through its
// S3-compatible XML API.
type CDNStorage struct {
	client     minioClient
	bucketName string
	now        func() time.Time
}

// compile-time check: *CDNStorage must satisfy port.ObjectStore
var _ port.ObjectStore = (*CDNStorage)(nil)

// NewCDNClient builds a minio client for the CDN endpoint. With a region set,
// URLs are signed without contacting the endpoint.
func NewCDNClient(endpoint, region, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	log.Println("initialising CDN storage client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", video.ErrCredentials, err)
	}
	return client, nil
}

func NewCDNStorage(client minioClient, bucket string) *CDNStorage {
	return &CDNStorage{client: client, bucketName: bucket, now: time.Now}
}

func (s *CDNStorage) SignUploadURL(ctx context.Context, objectKey, contentType string, metadata map[string]string, ttl time.Duration) (port.SignedUploadURL, error) {
	log.Printf("generating a signed upload link for file %q in bucket %q...", objectKey, s.bucketName)

	issuedAt := s.now()
	headers := uploadHeaders(contentType)
	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucketName, objectKey, ttl, metadataQuery(metadata), headers)
	if err != nil {
		return port.SignedUploadURL{}, mapSignErr(err)
	}

	return port.SignedUploadURL{
		URL:         u.String(),
		Method:      http.MethodPut,
		ContentType: contentType,
		Headers:     flatten(headers),
		ExpiresAt:   issuedAt.Add(ttl),
	}, nil
}

func (s *CDNStorage) RemoveObject(ctx context.Context, objectKey string) error {
	log.Printf("removing file %q from bucket %q...", objectKey, s.bucketName)

	err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
	return mapMinioErr(err)
}
