package jobs

import (
	"context"
	"errors"
	"log/slog"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/mocks"
	"photo-portfolio/internal/testutil"
	"sync/atomic"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPhotoCountJob_SetsGauge(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)
	store.EXPECT().CountPhotos(gomock.Any()).Return(42, nil)

	job := NewPhotoCountJob(store, time.Minute, slog.New(testutil.NewTestLogHandler()))
	require.NoError(t, job.refresh(context.Background()))

	assert.Equal(t, float64(42), promtestutil.ToFloat64(metrics.PhotosStored))
}

func TestPhotoCountJob_RunStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)
	store.EXPECT().CountPhotos(gomock.Any()).Return(0, errors.New("pool closed")).MinTimes(1)

	handler := testutil.NewTestLogHandler()
	job := NewPhotoCountJob(store, time.Hour, slog.New(handler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- job.Run(ctx) }()

	require.Eventually(t, func() bool {
		return handler.ContainsMessage(slog.LevelError, "job run failed")
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("job did not stop after cancel")
	}
}

func TestPhotoCountJob_RejectsNonPositiveInterval(t *testing.T) {
	job := NewPhotoCountJob(nil, 0, slog.New(testutil.NewTestLogHandler()))
	assert.Error(t, job.Run(context.Background()))
}

func TestAuditPruneJob_UsesRetentionCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store.EXPECT().PruneLoginAttempts(gomock.Any(), now.Add(-30*24*time.Hour)).Return(int64(3), nil)

	handler := testutil.NewTestLogHandler()
	job := NewAuditPruneJob(store, time.Hour, 30*24*time.Hour, slog.New(handler))
	job.now = func() time.Time { return now }

	before := promtestutil.ToFloat64(metrics.LoginAttemptsPruned)
	require.NoError(t, job.prune(context.Background()))

	assert.Equal(t, before+3, promtestutil.ToFloat64(metrics.LoginAttemptsPruned))
	assert.True(t, handler.ContainsMessage(slog.LevelInfo, "pruned login audit entries"))
}

func TestAuditPruneJob_NothingToRemoveIsQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)
	store.EXPECT().PruneLoginAttempts(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	handler := testutil.NewTestLogHandler()
	job := NewAuditPruneJob(store, time.Hour, time.Hour, slog.New(handler))

	require.NoError(t, job.prune(context.Background()))
	assert.Equal(t, 0, handler.CountByLevel(slog.LevelInfo))
}

type blockingJob struct {
	runs atomic.Int32
}

func (j *blockingJob) Name() string            { return "blocking" }
func (j *blockingJob) Interval() time.Duration { return time.Minute }
func (j *blockingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func TestJobManager_StartAndShutdown(t *testing.T) {
	handler := testutil.NewTestLogHandler()
	jm := NewJobManager(slog.New(handler))

	job := &blockingJob{}
	jm.Register(job)

	jm.Start(context.Background())
	jm.Start(context.Background())

	require.Eventually(t, func() bool { return job.runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jm.Shutdown(shutdownCtx)

	assert.Equal(t, int32(1), job.runs.Load(), "a running job is not started twice")
	assert.Equal(t, 0, handler.CountByLevel(slog.LevelError), "cancellation is not a failure")
	assert.True(t, handler.ContainsMessage(slog.LevelDebug, "All jobs stopped cleanly"))
}
