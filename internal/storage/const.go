package storage

import (
	"errors"
)

const (
	// uniqueViolationCode is the postgres SQLSTATE for unique_violation.
	uniqueViolationCode = "23505"

	migrationsTable = "schema_migrations"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrSlugExists    = errors.New("a photo with this slug already exists")
	ErrReadOnly      = errors.New("photo store is read only")
)
