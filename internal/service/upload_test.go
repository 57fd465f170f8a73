package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports/mocks"
)

func testImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUploadService_UploadImage_Success(t *testing.T) {
	store := mocks.NewMockImageStore(t)
	svc := NewUploadService(store, newTestLogger(t))

	store.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "caterers/") && strings.HasSuffix(name, ".jpg")
		}), "image/jpeg", mock.Anything).
		Return("http://minio/eventconnect/caterers/x.jpg", nil)

	url, err := svc.UploadImage(context.Background(), "caterers", testImage(t, 100, 100))

	require.NoError(t, err)
	assert.Equal(t, "http://minio/eventconnect/caterers/x.jpg", url)
}

func TestUploadService_UploadImage_UnknownKind(t *testing.T) {
	store := mocks.NewMockImageStore(t)
	svc := NewUploadService(store, newTestLogger(t))

	_, err := svc.UploadImage(context.Background(), "events", testImage(t, 10, 10))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadService_UploadImage_NotAnImage(t *testing.T) {
	store := mocks.NewMockImageStore(t)
	svc := NewUploadService(store, newTestLogger(t))

	_, err := svc.UploadImage(context.Background(), "ngos", strings.NewReader("not an image"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadService_UploadImage_DownscalesWideImages(t *testing.T) {
	store := mocks.NewMockImageStore(t)
	svc := NewUploadService(store, newTestLogger(t))

	var stored []byte
	store.EXPECT().
		Put(mock.Anything, mock.Anything, "image/jpeg", mock.Anything).
		Run(func(ctx context.Context, objectName, contentType string, data []byte) {
			stored = data
		}).
		Return("http://minio/eventconnect/ngos/x.jpg", nil)

	_, err := svc.UploadImage(context.Background(), "ngos", testImage(t, 3200, 400))

	require.NoError(t, err)
	require.NotEmpty(t, stored)

	img, _, err := image.Decode(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 1600)
}
