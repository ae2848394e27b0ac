package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

type TestBucket struct {
	Name    string
	Cleanup func() error
}

// SetupTestBucket creates a fresh, uniquely named bucket.
func SetupTestBucket(client *minio.Client) (*TestBucket, error) {
	ctx := context.Background()
	name := fmt.Sprintf("videos-%d", time.Now().UnixNano())

	if err := client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		return nil, fmt.Errorf("could not create bucket %q: %w", name, err)
	}

	cleanup := func() error {
		for obj := range client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, name, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := client.RemoveBucket(ctx, name); err != nil {
			return fmt.Errorf("could not remove bucket %q: %w", name, err)
		}
		return nil
	}

	return &TestBucket{Name: name, Cleanup: cleanup}, nil
}
