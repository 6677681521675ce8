package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dragonnestlite/assetgen/internal/config"
)

// ErrR2NotConfigured is returned when a credential or the bucket is missing.
var ErrR2NotConfigured = errors.New("R2 configuration incomplete")

// Deployed assets never change under the same key.
const assetCacheControl = "public, max-age=31536000, immutable"

// Publisher uploads finished artifacts to the deployed asset bucket and
// addresses them.
type Publisher interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	PublicURL(key string) string
}

// objectPutter is the subset of the S3 API used for publishing
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ModelKey is the bucket key of a model file.
func ModelKey(filename string) string {
	return path.Join("models", path.Base(filename))
}

// R2Client publishes generated assets to a Cloudflare R2 bucket
type R2Client struct {
	api    objectPutter
	bucket string
	base   string
}

// NewR2Client creates an R2 publisher. Objects are addressed through the
// configured public URL, or through the bucket's S3 endpoint without one.
func NewR2Client(cfg *config.R2Config) (*R2Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrR2NotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := r2Endpoint(cfg.AccountID)
	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	base := cfg.PublicURL
	if base == "" {
		base = endpoint + "/" + cfg.BucketName
	}
	return newR2Client(api, cfg.BucketName, base), nil
}

func newR2Client(api objectPutter, bucket, base string) *R2Client {
	return &R2Client{
		api:    api,
		bucket: bucket,
		base:   strings.TrimRight(base, "/"),
	}
}

func r2Endpoint(accountID string) string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
}

// Upload stores body under key and returns its public URL.
func (c *R2Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(assetCacheControl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish %s to R2: %w", key, err)
	}
	return c.PublicURL(key), nil
}

// PublicURL is the address a published key is served from.
func (c *R2Client) PublicURL(key string) string {
	return c.base + "/" + strings.TrimLeft(key, "/")
}
