package registry

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/elements/internal/errors"
)

// ObjectPutter is the part of the S3 client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads manifests to an S3 bucket. Each publish writes the
// versioned object first and then replaces the latest one:
//
//	<prefix>/v0.3.0/registry.json
//	<prefix>/registry.json
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// NewPublisher creates a Publisher writing to bucket under prefix.
func NewPublisher(client ObjectPutter, bucket, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// NewS3Client creates an S3 client for region using the standard AWS
// environment credentials.
func NewS3Client(region string) *s3.Client {
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	return s3.New(s3.Options{
		Region: region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
					SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
					SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
					Source:          "environment",
				}, nil
			})),
	})
}

// Keys returns the object keys a publish of m writes, versioned first.
func (p *Publisher) Keys(m *Manifest) []string {
	return []string{
		path.Join(p.prefix, "v"+m.Version, "registry.json"),
		path.Join(p.prefix, "registry.json"),
	}
}

// Publish validates m and uploads it.
func (p *Publisher) Publish(ctx context.Context, m *Manifest) error {
	ctx, span := otel.Tracer("github.com/vango-dev/elements/registry").Start(ctx, "registry.publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("registry.bucket", p.bucket),
		attribute.String("registry.version", m.Version),
	)

	if err := m.Validate(); err != nil {
		span.SetStatus(codes.Error, "invalid manifest")
		return err
	}
	data, err := m.Bytes()
	if err != nil {
		return errors.New("E144").Wrap(err)
	}
	sum, err := m.Checksum()
	if err != nil {
		return errors.New("E144").Wrap(err)
	}

	for _, key := range p.Keys(m) {
		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(data),
			ContentType:  aws.String("application/json"),
			CacheControl: aws.String("public, max-age=300"),
			Metadata: map[string]string{
				"version":      m.Version,
				"checksum":     sum,
				"publish-time": time.Now().UTC().Format(time.RFC3339),
			},
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "put object failed")
			return errors.New("E144").Wrap(err).
				WithDetail("Upload of s3://" + p.bucket + "/" + key + " failed: " + err.Error()).
				WithSuggestion("Check the bucket name and your AWS credentials")
		}
		p.logger.Info("registry object written", "bucket", p.bucket, "key", key, "bytes", len(data))
	}
	return nil
}
