package middlewares

import (
	"net/http"
	"photo-portfolio/internal/metrics"
	"strconv"
)

// OptionalAuth marks the request as admin when it carries a valid session cookie. It never
// rejects a request. Without a configured session secret every request is anonymous.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		secret := appCtx.Config.Auth.SessionSecret
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(appCtx.Config.Auth.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		valid := appCtx.Authenticator.VerifySession(cookie.Value, secret)
		metrics.SessionVerifications.WithLabelValues(strconv.FormatBool(valid)).Inc()
		if valid {
			appCtx.SetAdmin(true)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests OptionalAuth did not mark as admin. It must run after OptionalAuth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !appCtx.IsAdmin() {
			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}
