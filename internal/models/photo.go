package models

import (
	"strings"
	"time"
)

const PhotoTypeDefault = "photo"

// Photo is a single row of the photo-record store.
type Photo struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	ImageKey    string    `json:"image_key"`
	ThumbKey    string    `json:"thumb_key"`
	Type        string    `json:"type"`
	Camera      string    `json:"camera"`
	Lens        string    `json:"lens"`
	Aperture    string    `json:"aperture"`
	Exposure    string    `json:"exposure"`
	FocalLength string    `json:"focal_length"`
	ISO         string    `json:"iso"`
	Make        string    `json:"make"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PhotoUpdate carries the editable metadata of a photo; nil fields are left untouched.
type PhotoUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Camera      *string    `json:"camera,omitempty"`
	Lens        *string    `json:"lens,omitempty"`
	Aperture    *string    `json:"aperture,omitempty"`
	Exposure    *string    `json:"exposure,omitempty"`
	FocalLength *string    `json:"focalLength,omitempty"`
	ISO         *string    `json:"iso,omitempty"`
	Make        *string    `json:"make,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Apply copies the set fields of u onto p.
func (u PhotoUpdate) Apply(p *Photo) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Camera != nil {
		p.Camera = *u.Camera
	}
	if u.Lens != nil {
		p.Lens = *u.Lens
	}
	if u.Aperture != nil {
		p.Aperture = *u.Aperture
	}
	if u.Exposure != nil {
		p.Exposure = *u.Exposure
	}
	if u.FocalLength != nil {
		p.FocalLength = *u.FocalLength
	}
	if u.ISO != nil {
		p.ISO = *u.ISO
	}
	if u.Make != nil {
		p.Make = *u.Make
	}
	if u.Tags != nil {
		p.Tags = u.Tags
	}
}

// PhotoItem is the public representation of a photo, with resolved media URLs.
type PhotoItem struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Image       string   `json:"image"`
	Thumb       string   `json:"thumb"`
	Type        string   `json:"type"`
	Camera      string   `json:"camera"`
	Lens        string   `json:"lens"`
	Aperture    string   `json:"aperture"`
	Exposure    string   `json:"exposure"`
	FocalLength string   `json:"focalLength"`
	ISO         string   `json:"iso"`
	Make        string   `json:"make"`
	Tags        []string `json:"tags"`
}

// NewPhotoItem builds the public view of p. Media keys are joined to mediaBaseURL; an empty
// base yields root-relative paths.
func NewPhotoItem(p *Photo, mediaBaseURL string) PhotoItem {
	item := PhotoItem{
		Slug:        p.Slug,
		Title:       p.Title,
		Image:       MediaURL(mediaBaseURL, p.ImageKey),
		Thumb:       MediaURL(mediaBaseURL, p.ThumbKey),
		Type:        p.Type,
		Camera:      p.Camera,
		Lens:        p.Lens,
		Aperture:    p.Aperture,
		Exposure:    p.Exposure,
		FocalLength: p.FocalLength,
		ISO:         p.ISO,
		Make:        p.Make,
		Tags:        p.Tags,
	}

	if !p.Date.IsZero() {
		item.Date = p.Date.UTC().Format(time.RFC3339)
	}

	if item.Type == "" {
		item.Type = PhotoTypeDefault
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}

	return item
}

func NewPhotoItems(photos []*Photo, mediaBaseURL string) []PhotoItem {
	items := make([]PhotoItem, 0, len(photos))
	for _, p := range photos {
		items = append(items, NewPhotoItem(p, mediaBaseURL))
	}
	return items
}

// MediaURL joins a storage key to a public base URL.
func MediaURL(baseURL, key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(key, "/")
}
