package storage

import (
	"context"
	"photo-portfolio/internal/models"
	"time"

	"github.com/avct/uasurfer"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// noinspection GoNameStartsWithPackageName
type StorageProvider interface {
	Close()
	Ping(ctx context.Context) error

	// ListPhotos returns photos newest first. A limit of zero or less returns every photo.
	ListPhotos(ctx context.Context, limit, offset int) ([]*models.Photo, error)
	CountPhotos(ctx context.Context) (int, error)
	GetPhotoBySlug(ctx context.Context, slug string) (*models.Photo, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error)
	UpdatePhoto(ctx context.Context, slug string, update models.PhotoUpdate) (*models.Photo, error)
	DeletePhoto(ctx context.Context, slug string) (*models.Photo, error)

	RecordLoginAttempt(ctx context.Context, ipAddress, rawUserAgent string, userAgent uasurfer.UserAgent, succeeded bool) error
	// PruneLoginAttempts removes audit entries older than before and reports how many were removed.
	PruneLoginAttempts(ctx context.Context, before time.Time) (int64, error)
	// ListLoginAttempts returns the most recent audit entries, newest first.
	ListLoginAttempts(ctx context.Context, limit int) ([]*models.LoginAttempt, error)
}
