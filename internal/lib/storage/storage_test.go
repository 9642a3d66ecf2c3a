package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

type fakeS3 struct {
	listInput  *s3.ListObjectsV2Input
	listOutput *s3.ListObjectsV2Output
	listErr    error

	putInput *s3.PutObjectInput
	putBody  string
	putErr   error
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.listInput = in
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOutput, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.putBody = string(b)
	}
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

const quoteID = "3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://abc.supabase.co/storage/v1/object/public", "https://abc.supabase.co/storage/v1/object/public/quote-images/" + quoteID + "/a.png"},
		{"https://abc.supabase.co/storage/v1/object/public/", "https://abc.supabase.co/storage/v1/object/public/quote-images/" + quoteID + "/a.png"},
	}

	if got := BuildURL("https://cdn.example.com", "quote-images", "../x", "a.png"); got != "https://cdn.example.com/quote-images/../x/a.png" {
		t.Errorf("segments must be joined unchanged, got %q", got)
	}
	if got := BuildURL("https://cdn.example.com", "quote-images", "", "a.png"); got != "https://cdn.example.com/quote-images//a.png" {
		t.Errorf("empty segments must be kept, got %q", got)
	}

	for _, tt := range tests {
		if got := BuildURL(tt.base, "quote-images", quoteID, "a.png"); got != tt.want {
			t.Errorf("BuildURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestListSortsAndStripsPrefix(t *testing.T) {
	api := &fakeS3{listOutput: &s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String(quoteID + "/b.png"), Size: aws.Int64(20)},
			{Key: aws.String(quoteID + "/"), Size: aws.Int64(0)},
			{Key: aws.String(quoteID + "/a.jpeg"), Size: aws.Int64(10)},
		},
	}}
	c := NewClientWithAPI(api, "quote-images", "https://cdn.example.com")

	objects, err := c.List(context.Background(), quoteID, 100)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if aws.ToString(api.listInput.Prefix) != quoteID+"/" {
		t.Errorf("unexpected prefix %q", aws.ToString(api.listInput.Prefix))
	}
	if aws.ToInt32(api.listInput.MaxKeys) != 100 {
		t.Errorf("unexpected max keys %d", aws.ToInt32(api.listInput.MaxKeys))
	}
	if aws.ToString(api.listInput.Bucket) != "quote-images" {
		t.Errorf("unexpected bucket %q", aws.ToString(api.listInput.Bucket))
	}

	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %+v", objects)
	}
	if objects[0].Name != "a.jpeg" || objects[1].Name != "b.png" {
		t.Errorf("objects not sorted by name: %+v", objects)
	}
	if objects[1].Size != 20 {
		t.Errorf("expected size 20, got %d", objects[1].Size)
	}
}

func TestListEmpty(t *testing.T) {
	c := NewClientWithAPI(&fakeS3{listOutput: &s3.ListObjectsV2Output{}}, "quote-images", "https://cdn.example.com")

	objects, err := c.List(context.Background(), quoteID, 100)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if objects == nil || len(objects) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", objects)
	}
}

func TestUpload(t *testing.T) {
	api := &fakeS3{}
	c := NewClientWithAPI(api, "quote-images", "https://cdn.example.com")

	err := c.Upload(context.Background(), quoteID+"/x.png", strings.NewReader("png-bytes"), 9, "image/png")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	in := api.putInput
	if aws.ToString(in.Key) != quoteID+"/x.png" {
		t.Errorf("unexpected key %q", aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "image/png" {
		t.Errorf("unexpected content type %q", aws.ToString(in.ContentType))
	}
	if aws.ToString(in.CacheControl) != "max-age=3600" {
		t.Errorf("unexpected cache control %q", aws.ToString(in.CacheControl))
	}
	if aws.ToInt64(in.ContentLength) != 9 {
		t.Errorf("unexpected content length %d", aws.ToInt64(in.ContentLength))
	}
	if api.putBody != "png-bytes" {
		t.Errorf("unexpected body %q", api.putBody)
	}
}

func TestUploadError(t *testing.T) {
	api := &fakeS3{putErr: errors.New("boom")}
	c := NewClientWithAPI(api, "quote-images", "https://cdn.example.com")

	if err := c.Upload(context.Background(), "k", strings.NewReader(""), 0, "image/png"); err == nil {
		t.Fatal("expected error")
	}
	if api.putInput.ContentLength != nil {
		t.Error("content length should be unset for unknown sizes")
	}
}

func TestStatusCodeAndMessage(t *testing.T) {
	respErr := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusForbidden}},
			Err:      errors.New("access denied"),
		},
	}

	if got := StatusCode(respErr); got != http.StatusForbidden {
		t.Errorf("expected 403, got %d", got)
	}
	if got := ErrorMessage(respErr); got != "Forbidden" {
		t.Errorf("expected Forbidden, got %q", got)
	}

	plain := errors.New("dial tcp: refused")
	if StatusCode(plain) != 0 {
		t.Error("expected 0 for non-http errors")
	}
	if got := ErrorMessage(fmt.Errorf("listing quote-images/%s/: %w", quoteID, plain)); got != "Bad Gateway" {
		t.Errorf("internal error detail must not be returned, got %q", got)
	}
}
