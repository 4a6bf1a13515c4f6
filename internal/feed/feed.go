package feed

import (
	"fmt"
	"html"
	"mime"
	"path"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/models"
	"time"

	"github.com/gorilla/feeds"
)

const (
	ContentType = "application/xml; charset=utf-8"

	defaultEnclosureType = "image/jpeg"
)

// Build renders the RSS 2.0 document for photos, which are expected newest first.
func Build(site config.SiteConfig, photos []*models.Photo, mediaBaseURL string, now time.Time) (string, error) {
	var author *feeds.Author
	if site.Author.Name != "" || site.Author.Email != "" {
		author = &feeds.Author{Name: site.Author.Name, Email: site.Author.Email}
	}

	f := &feeds.Feed{
		Title:       site.Title,
		Link:        &feeds.Link{Href: site.BaseURL + "/"},
		Description: site.Description,
		Author:      author,
		Id:          site.BaseURL,
		Created:     now,
	}

	if site.CopyrightHolder != "" {
		f.Copyright = fmt.Sprintf("Copyright %d, %s", now.Year(), site.CopyrightHolder)
	}

	for _, p := range photos {
		f.Add(newItem(site, p, mediaBaseURL, author))
	}

	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = site.Language
	rss.Ttl = int(site.FeedTTL / time.Minute)
	if site.Favicon != "" {
		rss.Image = &feeds.RssImage{Url: site.Favicon, Title: site.Title, Link: site.BaseURL + "/"}
	}

	out, err := feeds.ToXML(rss)
	if err != nil {
		return "", fmt.Errorf("failed to render rss feed: %w", err)
	}

	return out, nil
}

func newItem(site config.SiteConfig, p *models.Photo, mediaBaseURL string, author *feeds.Author) *feeds.Item {
	link := PhotoLink(site.BaseURL, p.Slug)
	image := models.MediaURL(mediaBaseURL, p.ImageKey)

	item := &feeds.Item{
		Title:   p.Title,
		Link:    &feeds.Link{Href: link},
		Id:      link,
		Created: p.Date,
		Author:  author,
		Content: itemContent(p, image),
	}

	if image != "" {
		item.Enclosure = &feeds.Enclosure{
			Url:    image,
			Length: "0",
			Type:   enclosureType(p.ImageKey),
		}
	}

	return item
}

// PhotoLink is the public page of a photo.
func PhotoLink(baseURL, slug string) string {
	return baseURL + "/photo/" + slug
}

func itemContent(p *models.Photo, image string) string {
	return fmt.Sprintf(`<img src="%s" alt="%s" /><p>Camera: %s | Lens: %s | %s | %s | ISO %s</p>`,
		html.EscapeString(image),
		html.EscapeString(p.Title),
		html.EscapeString(p.Camera),
		html.EscapeString(p.Lens),
		html.EscapeString(p.Aperture),
		html.EscapeString(p.Exposure),
		html.EscapeString(p.ISO),
	)
}

func enclosureType(key string) string {
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return defaultEnclosureType
}
