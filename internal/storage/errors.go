package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/minio/minio-go/v7"
)

// mapSignErr keeps cancellation visible to the caller.
func mapSignErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", video.ErrCredentials, err)
}

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return fmt.Errorf("%w: %v", video.ErrObjectNotFound, err)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %v", video.ErrCredentials, err)
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", video.ErrStorage, err)
	}
}

func mapS3Err(err error) error {
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", video.ErrObjectNotFound, err)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %v", video.ErrCredentials, err)
		}
	}
	return fmt.Errorf("%w: %v", video.ErrStorage, err)
}
