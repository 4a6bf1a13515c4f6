package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Authenticator mints and verifies stateless session tokens of the form
// <session_id>.<issued_at_ms>.<hex hmac-sha256 of "<session_id>.<issued_at_ms>">.
// It holds no secrets; callers pass the shared secret to each operation.
type Authenticator struct {
	now   func() time.Time
	newID func() (string, error)
}

type Option func(*Authenticator)

// WithClock replaces the time source used for issuing and expiring tokens.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

// WithIDGenerator replaces the session id source.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(a *Authenticator) {
		a.newID = newID
	}
}

func NewAuthenticator(opts ...Option) *Authenticator {
	a := &Authenticator{
		now:   time.Now,
		newID: randomSessionID,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

var defaultAuthenticator = NewAuthenticator()

// CreateSession issues a new signed session token using the default Authenticator.
func CreateSession(secret string) (string, error) {
	return defaultAuthenticator.CreateSession(secret)
}

// VerifySession checks a session token using the default Authenticator.
func VerifySession(token, secret string) bool {
	return defaultAuthenticator.VerifySession(token, secret)
}

// CreateSession issues a new signed session token. Nothing is persisted.
func (a *Authenticator) CreateSession(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	sessionID, err := a.newID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	issuedAt := strconv.FormatInt(a.now().UnixMilli(), 10)
	payload := sessionID + TokenSeparator + issuedAt

	return payload + TokenSeparator + sign(payload, secret), nil
}

// VerifySession reports whether token was signed with secret and is no older than
// SessionLifetime. Malformed, expired, future-dated and tampered tokens all yield false.
func (a *Authenticator) VerifySession(token, secret string) bool {
	if secret == "" {
		return false
	}

	parts := strings.Split(token, TokenSeparator)
	if len(parts) != tokenParts {
		return false
	}

	sessionID, issuedAt, providedSig := parts[0], parts[1], parts[2]

	issuedAtMillis, err := strconv.ParseInt(issuedAt, 10, 64)
	if err != nil {
		return false
	}

	age := a.now().UnixMilli() - issuedAtMillis
	if age < 0 || age > SessionLifetime.Milliseconds() {
		return false
	}

	expectedSig := sign(sessionID+TokenSeparator+issuedAt, secret)

	return timingSafeEqual(providedSig, expectedSig)
}

// sign returns the lowercase hex HMAC-SHA-256 of message keyed with secret.
func sign(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func randomSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
