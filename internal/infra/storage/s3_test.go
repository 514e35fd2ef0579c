package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/errors"
)

type fakeObjectAPI struct {
	puts    []*s3.PutObjectInput
	deletes []string
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, params)

	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(params.Key))

	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Storage_PutReturnsPublicURL(t *testing.T) {
	api := &fakeObjectAPI{}
	store := &s3Storage{client: api, bucket: "padel-point", baseURL: "http://localhost:9000/padel-point", logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	url, err := store.Put(context.Background(), "products/1/a.jpg", "image/jpeg", bytes.NewReader([]byte("jpeg")), 4)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/padel-point/products/1/a.jpg", url)

	require.Len(t, api.puts, 1)
	assert.Equal(t, "padel-point", aws.ToString(api.puts[0].Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(api.puts[0].ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(api.puts[0].ContentLength))

	require.NoError(t, store.Delete(context.Background(), "products/1/a.jpg"))
	assert.Equal(t, []string{"products/1/a.jpg"}, api.deletes)
}

func TestS3Storage_PutFailure(t *testing.T) {
	api := &fakeObjectAPI{err: errors.New("access denied")}
	store := &s3Storage{client: api, bucket: "b", baseURL: "http://x", logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	_, err := store.Put(context.Background(), "k", "image/png", bytes.NewReader(nil), 0)
	require.ErrorContains(t, err, "put object k")
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), &config.Config{Storage: &config.StorageConfig{}}, slog.Default())
	require.Error(t, err)
}
