package storage

import (
	"context"
	"errors"
	"fmt"
	"photo-portfolio/internal/models"

	"github.com/jackc/pgx/v5"
)

const photoColumns = `
	id, slug, title, date, image_key, thumb_key, type,
	COALESCE(camera, ''), COALESCE(lens, ''), COALESCE(aperture, ''), COALESCE(exposure, ''),
	COALESCE(focal_length, ''), COALESCE(iso, ''), COALESCE(make, ''),
	tags, created_at, updated_at
`

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Date,
		&p.ImageKey,
		&p.ThumbKey,
		&p.Type,
		&p.Camera,
		&p.Lens,
		&p.Aperture,
		&p.Exposure,
		&p.FocalLength,
		&p.ISO,
		&p.Make,
		&p.Tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPhotos returns a page of photos ordered by capture date, newest first.
func (p *DatabaseProvider) ListPhotos(ctx context.Context, limit, offset int) ([]*models.Photo, error) {
	query := `SELECT ` + photoColumns + `
		FROM photos
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	// LIMIT NULL is LIMIT ALL
	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := p.pool.Query(ctx, query, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	photos := make([]*models.Photo, 0)
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photos: %w", err)
	}

	return photos, nil
}

func (p *DatabaseProvider) CountPhotos(ctx context.Context) (int, error) {
	var count int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM photos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

func (p *DatabaseProvider) GetPhotoBySlug(ctx context.Context, slug string) (*models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE slug = $1`

	photo, err := scanPhoto(p.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

func (p *DatabaseProvider) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM photos WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// CreatePhoto inserts a photo record. A duplicate slug returns ErrSlugExists.
func (p *DatabaseProvider) CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	query := `
		INSERT INTO photos (slug, title, date, image_key, thumb_key, type, camera, lens, aperture, exposure, focal_length, iso, make, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING ` + photoColumns

	photoType := photo.Type
	if photoType == "" {
		photoType = models.PhotoTypeDefault
	}

	created, err := scanPhoto(p.pool.QueryRow(ctx, query,
		photo.Slug,
		photo.Title,
		photo.Date,
		photo.ImageKey,
		photo.ThumbKey,
		photoType,
		nullIfEmpty(photo.Camera),
		nullIfEmpty(photo.Lens),
		nullIfEmpty(photo.Aperture),
		nullIfEmpty(photo.Exposure),
		nullIfEmpty(photo.FocalLength),
		nullIfEmpty(photo.ISO),
		nullIfEmpty(photo.Make),
		tagsOrEmpty(photo.Tags),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return created, nil
}

// UpdatePhoto applies a partial metadata update. The slug and media keys never change.
func (p *DatabaseProvider) UpdatePhoto(ctx context.Context, slug string, update models.PhotoUpdate) (*models.Photo, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	current, err := scanPhoto(tx.QueryRow(ctx, `SELECT `+photoColumns+` FROM photos WHERE slug = $1 FOR UPDATE`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	update.Apply(current)

	query := `
		UPDATE photos
		SET title = $2, date = $3, type = $4, camera = $5, lens = $6, aperture = $7, exposure = $8,
		    focal_length = $9, iso = $10, make = $11, tags = $12, updated_at = CURRENT_TIMESTAMP
		WHERE slug = $1
		RETURNING ` + photoColumns

	updated, err := scanPhoto(tx.QueryRow(ctx, query,
		slug,
		current.Title,
		current.Date,
		current.Type,
		nullIfEmpty(current.Camera),
		nullIfEmpty(current.Lens),
		nullIfEmpty(current.Aperture),
		nullIfEmpty(current.Exposure),
		nullIfEmpty(current.FocalLength),
		nullIfEmpty(current.ISO),
		nullIfEmpty(current.Make),
		tagsOrEmpty(current.Tags),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// DeletePhoto removes the record and returns it so the caller can clean up its objects.
func (p *DatabaseProvider) DeletePhoto(ctx context.Context, slug string) (*models.Photo, error) {
	deleted, err := scanPhoto(p.pool.QueryRow(ctx, `DELETE FROM photos WHERE slug = $1 RETURNING `+photoColumns, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to delete photo: %w", err)
	}
	return deleted, nil
}
