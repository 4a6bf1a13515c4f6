package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"photo-portfolio/internal/models"
	"photo-portfolio/internal/storage"
	"photo-portfolio/internal/utils"
	"sort"
	"time"

	"github.com/avct/uasurfer"
)

// PostsPrefix is the URL prefix the posts directory is served under.
const PostsPrefix = "/posts"

// Store is a read-only photo store built from a directory of posts laid out as
// <dir>/<dir>.md with the referenced images next to the markdown file.
type Store struct {
	photos []*models.Photo
	bySlug map[string]*models.Photo
}

var _ storage.StorageProvider = (*Store)(nil)

// Load reads every post directory in fsys. Directories without a markdown file or without
// frontmatter are skipped with a warning.
func Load(fsys fs.FS, logger *slog.Logger) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read posts directory: %w", err)
	}

	s := &Store{
		photos: make([]*models.Photo, 0, len(entries)),
		bySlug: make(map[string]*models.Photo, len(entries)),
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := entry.Name()
		content, err := fs.ReadFile(fsys, path.Join(dir, dir+".md"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("no markdown file found for post", "dir", dir)
				continue
			}
			return nil, fmt.Errorf("failed to read post %s: %w", dir, err)
		}

		fm, err := ParseFrontmatter(content)
		if err != nil {
			logger.Warn("skipping post with unreadable frontmatter", "dir", dir, "error", err)
			continue
		}

		photo := photoFromFrontmatter(dir, fm, logger)
		if _, exists := s.bySlug[photo.Slug]; exists {
			logger.Warn("skipping post with duplicate slug", "dir", dir, "slug", photo.Slug)
			continue
		}

		s.photos = append(s.photos, photo)
		s.bySlug[photo.Slug] = photo
	}

	sortNewestFirst(s.photos)

	return s, nil
}

func photoFromFrontmatter(dir string, fm *Frontmatter, logger *slog.Logger) *models.Photo {
	p := &models.Photo{
		Slug:        firstNonEmpty(fm.Slug, dir),
		Title:       firstNonEmpty(fm.Title, dir),
		Type:        firstNonEmpty(fm.Type, models.PhotoTypeDefault),
		Camera:      fm.Camera,
		Lens:        fm.Lens,
		Aperture:    fm.ApertureFriendly,
		Exposure:    fm.ExposureFriendly,
		FocalLength: fm.FocalLengthFriendly,
		ISO:         fm.ISO,
		Make:        fm.Make,
		Tags:        []string(fm.Tags),
	}

	if fm.Image != "" {
		p.ImageKey = path.Join(PostsPrefix, dir, fm.Image)
	}
	if fm.Thumb != "" {
		p.ThumbKey = path.Join(PostsPrefix, dir, fm.Thumb)
	}

	if fm.Date != "" {
		date, err := utils.ParseTimeString(fm.Date)
		if err != nil {
			logger.Warn("ignoring unparseable post date", "dir", dir, "date", fm.Date)
		} else {
			p.Date = date
		}
	}

	return p
}

// sortNewestFirst orders photos by date descending; undated photos go last.
func sortNewestFirst(photos []*models.Photo) {
	sort.SliceStable(photos, func(i, j int) bool {
		a, b := photos[i].Date, photos[j].Date
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *Store) Close() {}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) ListPhotos(_ context.Context, limit, offset int) ([]*models.Photo, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.photos) {
		return []*models.Photo{}, nil
	}

	end := len(s.photos)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]*models.Photo, end-offset)
	copy(page, s.photos[offset:end])
	return page, nil
}

func (s *Store) CountPhotos(_ context.Context) (int, error) {
	return len(s.photos), nil
}

func (s *Store) GetPhotoBySlug(_ context.Context, slug string) (*models.Photo, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, storage.ErrPhotoNotFound
	}
	return p, nil
}

func (s *Store) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := s.bySlug[slug]
	return ok, nil
}

func (s *Store) CreatePhoto(_ context.Context, _ *models.Photo) (*models.Photo, error) {
	return nil, storage.ErrReadOnly
}

func (s *Store) UpdatePhoto(_ context.Context, _ string, _ models.PhotoUpdate) (*models.Photo, error) {
	return nil, storage.ErrReadOnly
}

func (s *Store) DeletePhoto(_ context.Context, _ string) (*models.Photo, error) {
	return nil, storage.ErrReadOnly
}

// RecordLoginAttempt is a no-op; the static catalog has nowhere to keep an audit log.
func (s *Store) RecordLoginAttempt(_ context.Context, _, _ string, _ uasurfer.UserAgent, _ bool) error {
	return nil
}

func (s *Store) PruneLoginAttempts(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (s *Store) ListLoginAttempts(_ context.Context, _ int) ([]*models.LoginAttempt, error) {
	return []*models.LoginAttempt{}, nil
}

