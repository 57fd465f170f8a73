package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports"
)

const (
	maxImageWidth  = 1600
	maxUploadBytes = 10 << 20
	jpegQuality    = 90
)

// UploadKinds maps the upload route segment to the object prefix.
var UploadKinds = map[string]bool{
	"ngos":       true,
	"caterers":   true,
	"organizers": true,
}

type UploadService struct {
	store  ports.ImageStore
	logger logger.Logger
}

func NewUploadService(store ports.ImageStore, logger logger.Logger) *UploadService {
	return &UploadService{store: store, logger: logger}
}

// UploadImage validates and normalizes a profile image: decodes it,
// downscales anything wider than maxImageWidth, re-encodes as JPEG and
// stores it under the kind prefix. Returns the public URL.
func (s *UploadService) UploadImage(ctx context.Context, kind string, r io.Reader) (string, error) {
	if !UploadKinds[kind] {
		return "", fmt.Errorf("%w: unknown upload kind %q", domain.ErrValidation, kind)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxUploadBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrValidation, maxUploadBytes)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: file is not a supported image", domain.ErrValidation)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	objectName := fmt.Sprintf("%s/%s.jpg", kind, uuid.New().String())
	url, err := s.store.Put(ctx, objectName, "image/jpeg", buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	s.logger.Info("image uploaded",
		logger.String("object", objectName),
		logger.Int("bytes", buf.Len()),
	)

	return url, nil
}
