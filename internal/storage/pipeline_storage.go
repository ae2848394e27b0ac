package storage

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
)

type s3Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type s3Remover interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// PipelineStorage signs uploads into the host's default video upload bucket.
type PipelineStorage struct {
	presigner  s3Presigner
	remover    s3Remover
	bucketName string
	now        func() time.Time
}

// compile-time check: *PipelineStorage must satisfy port.ObjectStore
var _ port.ObjectStore = (*PipelineStorage)(nil)

// PipelineOptions locate the upload bucket. Empty keys fall back to the
// default AWS credential chain.
type PipelineOptions struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds the S3 client of the upload pipeline.
func NewS3Client(ctx context.Context, opts PipelineOptions) (*s3.Client, error) {
	log.Println("initialising pipeline storage client...")
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", video.ErrCredentials, err)
	}
	return newS3Client(cfg, opts.Endpoint), nil
}

func newS3Client(cfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewPipelineStorage(client *s3.Client, bucket string) *PipelineStorage {
	return &PipelineStorage{
		presigner:  s3.NewPresignClient(client),
		remover:    client,
		bucketName: bucket,
		now:        time.Now,
	}
}

func (s *PipelineStorage) SignUploadURL(ctx context.Context, objectKey, contentType string, metadata map[string]string, ttl time.Duration) (port.SignedUploadURL, error) {
	log.Printf("generating a signed upload link for file %q in bucket %q...", objectKey, s.bucketName)

	issuedAt := s.now()
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = ttl
	}, withMetadataQuery(metadata))
	if err != nil {
		return port.SignedUploadURL{}, mapSignErr(err)
	}

	headers := flatten(req.SignedHeader)
	delete(headers, "Host")
	return port.SignedUploadURL{
		URL:         req.URL,
		Method:      http.MethodPut,
		ContentType: contentType,
		Headers:     headers,
		ExpiresAt:   issuedAt.Add(ttl),
	}, nil
}

// withMetadataQuery adds the metadata to the request URL ahead of signing.
// The v4 presigner never hoists x-amz-meta-* headers into the query itself.
func withMetadataQuery(metadata map[string]string) func(*s3.PresignOptions) {
	return s3.WithPresignClientFromClientOptions(func(o *s3.Options) {
		o.APIOptions = append(o.APIOptions, func(stack *middleware.Stack) error {
			return stack.Build.Add(middleware.BuildMiddlewareFunc("videoMetadataQuery",
				func(ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler) (middleware.BuildOutput, middleware.Metadata, error) {
					req, ok := in.Request.(*smithyhttp.Request)
					if !ok {
						return middleware.BuildOutput{}, middleware.Metadata{}, fmt.Errorf("unexpected request type %T", in.Request)
					}
					q := req.URL.Query()
					for k, v := range metadataQuery(metadata) {
						q[k] = v
					}
					req.URL.RawQuery = q.Encode()
					return next.HandleBuild(ctx, in)
				}), middleware.After)
		})
	})
}

func (s *PipelineStorage) RemoveObject(ctx context.Context, objectKey string) error {
	log.Printf("removing file %q from bucket %q...", objectKey, s.bucketName)

	_, err := s.remover.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	return mapS3Err(err)
}
