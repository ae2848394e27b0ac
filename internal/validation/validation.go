package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/fhuszti/videos-cdn-go/internal/uuid"
	"github.com/go-playground/validator/v10"
)

// VideoContentTypes are the only content types an upload URL is issued for.
var VideoContentTypes = map[string]struct{}{
	"video/mp4":       {},
	"video/quicktime": {},
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})

	// uuid.UUID is a byte array; validate its canonical string form.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if id, ok := field.Interface().(uuid.UUID); ok {
			if id == uuid.Nil {
				return ""
			}
			return id.String()
		}
		return nil
	}, uuid.UUID{})

	if err := validate.RegisterValidation("video_content_type", func(fl validator.FieldLevel) bool {
		_, ok := VideoContentTypes[fl.Field().String()]
		return ok
	}); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ErrorsToJson(validationErrs error) (string, error) {
	errsMap := make(map[string]string)
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
