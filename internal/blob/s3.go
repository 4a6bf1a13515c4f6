package blob

import (
	"context"
	"fmt"
	"io"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/models"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store writes objects to an S3 compatible bucket such as Cloudflare R2.
type S3Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var _ ObjectStore = (*S3Store)(nil)

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if cfg.Blob == nil {
		return nil, ErrNotConfigured
	}

	client, err := minio.New(cfg.Blob.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Blob.AccessKeyID, cfg.Blob.SecretAccessKey, ""),
		Secure: cfg.Blob.SSL(),
		Region: cfg.Blob.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Blob.Bucket,
		baseURL: cfg.Site.MediaBaseURL,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	start := time.Now()

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	observe(metrics.BlobOperationPut, start, err)
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}

	metrics.UploadBytes.Add(float64(size))
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	start := time.Now()

	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	observe(metrics.BlobOperationDelete, start, err)
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	return nil
}

func (s *S3Store) URL(key string) string {
	return models.MediaURL(s.baseURL, key)
}

func observe(operation string, start time.Time, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.BlobOperationDuration.WithLabelValues(operation, result).Observe(time.Since(start).Seconds())
}
