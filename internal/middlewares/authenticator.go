package middlewares

//go:generate mockgen -source=authenticator.go -destination=../mocks/authenticator.go -package=mocks

// SessionAuthenticator issues and checks signed session tokens.
type SessionAuthenticator interface {
	CreateSession(secret string) (string, error)
	VerifySession(token, secret string) bool
}
