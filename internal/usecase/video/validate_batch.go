package video

import (
	"errors"
	"log"

	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/validation"
	"github.com/go-playground/validator/v10"
)

// ValidateBatch checks the shape of an upload batch and reports a single
// error class for the whole batch: malformed, then missing field, then
// unsupported content type.
func ValidateBatch(batch *port.UploadBatch) error {
	if batch == nil {
		return ErrMalformedRequest
	}

	err := validation.ValidateStruct(batch)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrMalformedRequest
	}
	if details, jerr := validation.ErrorsToJson(verrs); jerr == nil {
		log.Printf("upload batch rejected: %s", details)
	}

	var missing, unsupported bool
	for _, fe := range verrs {
		switch {
		case fe.Field() == "files":
			return ErrMalformedRequest
		case fe.Tag() == "required":
			missing = true
		default:
			unsupported = true
		}
	}
	if missing {
		return ErrMissingField
	}
	if unsupported {
		return ErrUnsupportedContentType
	}
	return nil
}
