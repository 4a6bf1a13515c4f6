package auth

import (
	"errors"
	"time"
)

const (
	// SessionLifetime is how long a session token stays valid after it was issued.
	SessionLifetime = 24 * time.Hour

	// TokenSeparator joins the session id, the issue timestamp and the signature.
	TokenSeparator = "."

	// SessionCookieName is the default name of the cookie carrying the session token.
	SessionCookieName = "session"

	tokenParts    = 3
	hashHexLength = 64
)

var (
	ErrEmptySecret = errors.New("session secret is empty")
)
