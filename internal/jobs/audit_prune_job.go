package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/storage"
	"time"
)

// AuditPruneJob deletes login audit entries older than the retention period.
type AuditPruneJob struct {
	storage   storage.StorageProvider
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewAuditPruneJob(store storage.StorageProvider, interval, retention time.Duration, logger *slog.Logger) *AuditPruneJob {
	return &AuditPruneJob{
		storage:   store,
		interval:  interval,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

func (j *AuditPruneJob) Name() string {
	return "login_audit_prune"
}

func (j *AuditPruneJob) Interval() time.Duration {
	return j.interval
}

func (j *AuditPruneJob) Run(ctx context.Context) error {
	if j.interval <= 0 || j.retention <= 0 {
		return fmt.Errorf("login audit prune job interval and retention must be positive")
	}

	return runEvery(ctx, j.Name(), j.interval, j.logger, j.prune)
}

func (j *AuditPruneJob) prune(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)

	removed, err := j.storage.PruneLoginAttempts(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune login attempts: %w", err)
	}

	if removed > 0 {
		metrics.LoginAttemptsPruned.Add(float64(removed))
		j.logger.Info("pruned login audit entries", "count", removed, "before", cutoff)
	}

	return nil
}
