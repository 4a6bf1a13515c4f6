package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/storage"
	"time"
)

// PhotoCountJob publishes the number of stored photos as a gauge.
type PhotoCountJob struct {
	storage  storage.StorageProvider
	interval time.Duration
	logger   *slog.Logger
}

func NewPhotoCountJob(store storage.StorageProvider, interval time.Duration, logger *slog.Logger) *PhotoCountJob {
	return &PhotoCountJob{
		storage:  store,
		interval: interval,
		logger:   logger,
	}
}

func (j *PhotoCountJob) Name() string {
	return "photo_count"
}

func (j *PhotoCountJob) Interval() time.Duration {
	return j.interval
}

func (j *PhotoCountJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("photo count job interval must be positive")
	}

	return runEvery(ctx, j.Name(), j.interval, j.logger, j.refresh)
}

func (j *PhotoCountJob) refresh(ctx context.Context) error {
	count, err := j.storage.CountPhotos(ctx)
	if err != nil {
		return fmt.Errorf("failed to count photos: %w", err)
	}

	metrics.PhotosStored.Set(float64(count))
	return nil
}
