package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/googleapis/gax-go/v2"
)

// HMAC is the interoperability key of the CDN service account.
type HMAC struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// Parse decodes a credential blob of the form {"access_key":...,"secret_key":...}.
func Parse(blob string) (HMAC, error) {
	if strings.TrimSpace(blob) == "" {
		return HMAC{}, fmt.Errorf("%w: empty credential blob", video.ErrCredentials)
	}
	var c HMAC
	if err := json.Unmarshal([]byte(blob), &c); err != nil {
		return HMAC{}, fmt.Errorf("%w: credential blob is not JSON: %v", video.ErrCredentials, err)
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return HMAC{}, fmt.Errorf("%w: credential blob needs access_key and secret_key", video.ErrCredentials)
	}
	return c, nil
}

type secretAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
}

// SecretManagerSource reads the credential blob from a Secret Manager version,
// e.g. projects/p/secrets/cdn-hmac/versions/latest.
type SecretManagerSource struct {
	client  secretAccessor
	version string
}

func NewSecretManagerSource(client secretAccessor, version string) *SecretManagerSource {
	return &SecretManagerSource{client: client, version: version}
}

func (s *SecretManagerSource) Load(ctx context.Context) (HMAC, error) {
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: s.version})
	if err != nil {
		return HMAC{}, fmt.Errorf("%w: access secret %s: %v", video.ErrCredentials, s.version, err)
	}
	if res.GetPayload() == nil {
		return HMAC{}, fmt.Errorf("%w: secret %s has no payload", video.ErrCredentials, s.version)
	}
	return Parse(string(res.GetPayload().GetData()))
}
