package client

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/config"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{}, f.err
}

func TestR2UploadReturnsPublicURL(t *testing.T) {
	putter := &fakePutter{}
	c := newR2Client(putter, "assets", "https://cdn.example.com/game/")

	url, err := c.Upload(context.Background(), ModelKey("fighter.glb"), strings.NewReader("glb"), "model/gltf-binary")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/game/models/fighter.glb", url)
	assert.Equal(t, "assets", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "models/fighter.glb", aws.ToString(putter.input.Key))
	assert.Equal(t, "model/gltf-binary", aws.ToString(putter.input.ContentType))
	assert.Equal(t, assetCacheControl, aws.ToString(putter.input.CacheControl))
	assert.Equal(t, "glb", putter.body)
}

func TestR2UploadDefaultsContentType(t *testing.T) {
	putter := &fakePutter{}
	c := newR2Client(putter, "assets", "https://cdn")

	_, err := c.Upload(context.Background(), "/audio/bgm/town.mp3", strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Equal(t, "audio/bgm/town.mp3", aws.ToString(putter.input.Key))
	assert.Equal(t, "application/octet-stream", aws.ToString(putter.input.ContentType))
}

func TestR2UploadError(t *testing.T) {
	c := newR2Client(&fakePutter{err: errors.New("denied")}, "assets", "https://cdn")

	_, err := c.Upload(context.Background(), "models/a.glb", strings.NewReader(""), "model/gltf-binary")
	assert.ErrorContains(t, err, "failed to publish models/a.glb to R2")
	assert.ErrorContains(t, err, "denied")
}

func TestModelKey(t *testing.T) {
	assert.Equal(t, "models/fighter.glb", ModelKey("fighter.glb"))
	assert.Equal(t, "models/fighter.glb", ModelKey("assets/models/fighter.glb"))
}

func TestNewR2Client(t *testing.T) {
	_, err := NewR2Client(&config.R2Config{AccountID: "acc"})
	assert.ErrorIs(t, err, ErrR2NotConfigured)

	c, err := NewR2Client(&config.R2Config{AccountID: "acc", AccessKeyID: "k", SecretAccessKey: "s", BucketName: "b"})
	require.NoError(t, err)
	assert.Equal(t, "https://acc.r2.cloudflarestorage.com/b/models/a.glb", c.PublicURL("models/a.glb"))

	c, err = NewR2Client(&config.R2Config{AccountID: "acc", AccessKeyID: "k", SecretAccessKey: "s", BucketName: "b", PublicURL: "https://cdn.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/models/a.glb", c.PublicURL("models/a.glb"))
}
