package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/config"
)

// MinioStore keeps uploaded images in a single MinIO bucket and serves
// them by their public object URL.
type MinioStore struct {
	client *minio.Client
	bucket string
	logger logger.Logger
}

// NewMinioStore connects to MinIO and creates the bucket when it does
// not exist yet.
func NewMinioStore(ctx context.Context, cfg config.MinioConfig, log logger.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("ensure bucket %q: %w", cfg.Bucket, err)
		}
	} else {
		log.Info("bucket created", logger.String("bucket", cfg.Bucket))
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, logger: log}, nil
}

func (s *MinioStore) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", objectName, err)
	}

	s.logger.Debug("object stored",
		logger.String("bucket", s.bucket),
		logger.String("object", objectName),
	)

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectName), nil
}
