package video

import (
	"errors"
	"fmt"
)

// Batch validation errors. Their messages are returned to the client verbatim.
var (
	ErrMalformedRequest       = errors.New("Request object is not JSON or does not contain 'files'")
	ErrMissingField           = errors.New("Request 'files' entry does not contain 'file_name' and 'content_type'")
	ErrUnsupportedContentType = errors.New("Request 'files' entry contain unsupported content_type")
	ErrNonASCIIFileName       = errors.New("file name must contain only ASCII characters")
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrVideoNotFound  = errors.New("video not found")
	ErrCredentials    = errors.New("storage: unusable signing credentials")
	ErrCatalogWrite   = errors.New("catalog: write failed")
	ErrUpstreamLookup = errors.New("upstream lookup failed")
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrStorage        = errors.New("storage: internal error")
)

// NonASCIIFileNameError names the offending file.
type NonASCIIFileNameError struct {
	FileName string
}

func (e *NonASCIIFileNameError) Error() string {
	return fmt.Sprintf("The file name for %s must contain only ASCII characters.", e.FileName)
}

func (e *NonASCIIFileNameError) Is(target error) bool {
	return target == ErrNonASCIIFileName
}

// IsClientError reports whether err is caused by the request itself.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedRequest) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrUnsupportedContentType) ||
		errors.Is(err, ErrNonASCIIFileName)
}
