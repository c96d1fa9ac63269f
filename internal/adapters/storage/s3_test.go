package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	put    *s3.PutObjectInput
	del    *s3.DeleteObjectInput
	putErr error
	delErr error
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.del = params
	if f.delErr != nil {
		return nil, f.delErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutObject(t *testing.T) {
	client := &fakeS3Client{}
	store := NewS3Store(client, "media-bucket")

	err := store.PutObject(context.Background(), "speakers/a.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	require.NotNil(t, client.put)
	assert.Equal(t, "media-bucket", aws.ToString(client.put.Bucket))
	assert.Equal(t, "speakers/a.png", aws.ToString(client.put.Key))
	assert.Equal(t, "image/png", aws.ToString(client.put.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(client.put.ContentLength))
}

func TestS3Store_PutObject_error(t *testing.T) {
	client := &fakeS3Client{putErr: errors.New("access denied")}
	store := NewS3Store(client, "media-bucket")

	err := store.PutObject(context.Background(), "k", "image/png", strings.NewReader(""), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestS3Store_DeleteObject(t *testing.T) {
	client := &fakeS3Client{}
	store := NewS3Store(client, "media-bucket")

	require.NoError(t, store.DeleteObject(context.Background(), "gallery/x.jpg"))
	assert.Equal(t, "gallery/x.jpg", aws.ToString(client.del.Key))
	assert.Equal(t, "media-bucket", aws.ToString(client.del.Bucket))

	client.delErr = errors.New("boom")
	require.Error(t, store.DeleteObject(context.Background(), "gallery/x.jpg"))
}
