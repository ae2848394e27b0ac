package credentials

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/fhuszti/videos-cdn-go/internal/config"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(`{"access_key":"GOOG1EXAMPLE","secret_key":"s3cr3t"}`)
	require.NoError(t, err)
	assert.Equal(t, "GOOG1EXAMPLE", c.AccessKey)
	assert.Equal(t, "s3cr3t", c.SecretKey)
}

func TestParse_Invalid(t *testing.T) {
	for name, blob := range map[string]string{
		"empty":          "",
		"blank":          "   ",
		"not json":       "{access_key",
		"missing secret": `{"access_key":"a"}`,
		"missing access": `{"secret_key":"b"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(blob)
			assert.ErrorIs(t, err, video.ErrCredentials)
		})
	}
}

type fakeAccessor struct {
	data []byte
	err  error
	name string
}

func (f *fakeAccessor) AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	f.name = req.GetName()
	if f.err != nil {
		return nil, f.err
	}
	return &secretmanagerpb.AccessSecretVersionResponse{
		Name:    req.GetName(),
		Payload: &secretmanagerpb.SecretPayload{Data: f.data},
	}, nil
}

func TestSecretManagerSource_Load(t *testing.T) {
	acc := &fakeAccessor{data: []byte(`{"access_key":"a","secret_key":"b"}`)}
	src := NewSecretManagerSource(acc, "projects/p/secrets/cdn-hmac/versions/latest")

	c, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, HMAC{AccessKey: "a", SecretKey: "b"}, c)
	assert.Equal(t, "projects/p/secrets/cdn-hmac/versions/latest", acc.name)
}

func TestSecretManagerSource_Errors(t *testing.T) {
	t.Run("access", func(t *testing.T) {
		src := NewSecretManagerSource(&fakeAccessor{err: errors.New("permission denied")}, "v")
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, video.ErrCredentials)
	})
	t.Run("bad payload", func(t *testing.T) {
		src := NewSecretManagerSource(&fakeAccessor{data: []byte("nope")}, "v")
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, video.ErrCredentials)
	})
}

func TestFromSettings_InlineBlob(t *testing.T) {
	c, err := FromSettings(context.Background(), &config.Settings{CDNCredentials: `{"access_key":"a","secret_key":"b"}`})
	require.NoError(t, err)
	assert.Equal(t, "a", c.AccessKey)
}
