package handlers

import (
	"net/http"
	"photo-portfolio/internal/auth"
	"photo-portfolio/internal/middlewares"
)

func setSessionCookie(ctx *middlewares.AppContext, token string) {
	http.SetCookie(ctx.Response, &http.Cookie{
		Name:     ctx.Config.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   ctx.Config.Auth.SecureCookie(),
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(ctx *middlewares.AppContext) {
	http.SetCookie(ctx.Response, &http.Cookie{
		Name:     ctx.Config.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctx.Config.Auth.SecureCookie(),
		SameSite: http.SameSiteStrictMode,
	})
}
