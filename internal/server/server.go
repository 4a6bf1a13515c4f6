package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"photo-portfolio/internal/auth"
	"photo-portfolio/internal/blob"
	"photo-portfolio/internal/cache"
	"photo-portfolio/internal/catalog"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/jobs"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/middlewares"
	"photo-portfolio/internal/storage"
	"photo-portfolio/internal/throttle"
	"photo-portfolio/internal/version"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	redis       *redis.Client
	jobManager  *jobs.JobManager
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	store, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	var objectStore blob.ObjectStore
	if cfg.Blob != nil {
		s3Store, err := blob.NewS3Store(cfg)
		if err != nil {
			store.Close()
			cancel()
			return nil, err
		}
		objectStore = s3Store
		logger.Info("object store configured", "endpoint", cfg.Blob.Endpoint, "bucket", cfg.Blob.Bucket)
	}

	var redisClient *redis.Client
	var throttleClient throttle.RedisClient
	if cfg.Throttle.Type == config.ThrottleTypeRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Index,
			MinIdleConns: 2,
		})
		throttleClient = redisClient

		if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
			collector := redisprometheus.NewCollector(metrics.Namespace, "throttle", redisClient)
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis throttle collector: already registered", "error", err)
			}
		}
	}

	limiter, err := throttle.NewLimiter(cfg, throttleClient)
	if err != nil {
		store.Close()
		cancel()
		return nil, err
	}

	if !cfg.Auth.Configured() {
		logger.Warn("session secret or admin password hash not set, admin login is disabled")
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, store, objectStore, limiter, auth.NewAuthenticator())
	appCtx.FeedCache = cache.NewFeedCache(cfg.Site.FeedTTL)

	jobManager := jobs.NewJobManager(logger)
	jobManager.Register(jobs.NewPhotoCountJob(store, cfg.Jobs.PhotoCountInterval, logger))
	if cfg.Storage.Writable() {
		jobManager.Register(jobs.NewAuditPruneJob(store, cfg.Jobs.AuditPruneInterval, cfg.Jobs.AuditRetention, logger))
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           setupRouter(appCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		if err := prometheus.Register(versioncollector.NewCollector(version.ProgramName())); err != nil {
			logger.Debug("failed to register build info collector: already registered", "error", err)
		}

		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		redis:       redisClient,
		jobManager:  jobManager,
		cancel:      cancel,
	}, nil
}

// setupStorage opens the photo store named by storage.type. Postgres is migrated before use.
func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.StorageProvider, error) {
	switch cfg.Storage.Type {
	case config.StorageTypePostgres:
		dbProvider, err := storage.NewDatabaseProvider(ctx, cfg)
		if err != nil {
			logger.Error("failed to initialize database provider", "error", err)
			return nil, err
		}

		logger.Debug("Running database migrations")
		if err := dbProvider.RunMigrations(ctx, logger); err != nil {
			logger.Error("failed to run database migrations", "error", err)
			dbProvider.Close()
			return nil, err
		}
		logger.Debug("Database Migrations Completed")

		return dbProvider, nil
	case config.StorageTypeStatic:
		store, err := catalog.Load(os.DirFS(cfg.Storage.StaticDir), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load posts from %s: %w", cfg.Storage.StaticDir, err)
		}

		count, _ := store.CountPhotos(ctx)
		logger.Info("loaded static posts", "directory", cfg.Storage.StaticDir, "photos", count)

		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}

func (s *Server) Start() error {
	s.jobManager.Start(s.appCtx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "storage", s.cfg.Storage.Type, "version", version.Info())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.cancel()
	s.appCtx.Storage.Close()

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("failed to close redis client", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
