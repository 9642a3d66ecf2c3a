// Package storage talks to the S3-compatible object store that holds
// quote images, and builds the public URLs those images are served from.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/yardsolutions/quotes-backend/internal/config"
)

// CacheControl is applied to every uploaded object.
const CacheControl = "max-age=3600"

// S3API is the subset of the S3 client used here.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Object is a stored object directly under a directory.
type Object struct {
	Name string
	Size int64
}

// Client reads and writes one bucket.
type Client struct {
	api           S3API
	bucket        string
	publicBaseURL string
}

// NewClient builds an S3 client against the configured endpoint with static credentials.
func NewClient(ctx context.Context, cfg config.StorageConfig) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading object store config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return NewClientWithAPI(api, cfg.Bucket, cfg.PublicBaseURL), nil
}

// NewClientWithAPI wraps an existing S3API.
func NewClientWithAPI(api S3API, bucket, publicBaseURL string) *Client {
	return &Client{
		api:           api,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}
}

func (c *Client) Bucket() string {
	return c.bucket
}

// List returns up to limit objects directly under dir, sorted by name ascending.
func (c *Client) List(ctx context.Context, dir string, limit int32) ([]Object, error) {
	prefix := strings.TrimSuffix(dir, "/") + "/"

	out, err := c.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:    aws.String(c.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
		MaxKeys:   aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s/%s: %w", c.bucket, prefix, err)
	}

	objects := make([]Object, 0, len(out.Contents))
	for _, obj := range out.Contents {
		name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
		if name == "" {
			continue
		}
		objects = append(objects, Object{Name: name, Size: aws.ToInt64(obj.Size)})
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })

	return objects, nil
}

// Upload stores body at key with the given content type.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(CacheControl),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("uploading %s/%s: %w", c.bucket, key, err)
	}

	return nil
}

// PublicURL returns the public URL of name inside dir.
func (c *Client) PublicURL(dir, name string) string {
	return BuildURL(c.publicBaseURL, c.bucket, dir, name)
}

// BuildURL joins "<base>/<bucket>/<dir>/<name>" as is. Only the trailing
// slash of base is trimmed; segments are not cleaned.
func BuildURL(base, bucket, dir, name string) string {
	return strings.Join([]string{strings.TrimRight(base, "/"), bucket, dir, name}, "/")
}

// StatusCode extracts the HTTP status of a failed object store call.
// It returns 0 when the error did not come from an HTTP response.
func StatusCode(err error) int {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode()
	}
	return 0
}

// ErrorMessage returns the object store's own message for err when it has one.
// Transport and wrapping details are never returned.
func ErrorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}
	if code := StatusCode(err); code != 0 {
		return http.StatusText(code)
	}
	return http.StatusText(http.StatusBadGateway)
}
