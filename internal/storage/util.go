package storage

import (
	"errors"
	"net"
	"net/url"
	"photo-portfolio/internal/config"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
)

func GetConnectionStringFromConfig(cfg *config.Config) string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Storage.Host, strconv.Itoa(cfg.Storage.Port)),
		Path:   "/" + cfg.Storage.Database,
	}

	if cfg.Storage.Username != "" {
		if cfg.Storage.Password != "" {
			u.User = url.UserPassword(cfg.Storage.Username, cfg.Storage.Password)
		} else {
			u.User = url.User(cfg.Storage.Username)
		}
	}

	if cfg.Storage.SSLMode != "" {
		q := url.Values{}
		q.Set("sslmode", cfg.Storage.SSLMode)
		u.RawQuery = q.Encode()
	}

	return u.String()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// nullIfEmpty maps empty metadata to SQL NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
