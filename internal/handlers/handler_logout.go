package handlers

import (
	"net/http"
	"photo-portfolio/internal/middlewares"
)

// POSTLogoutHandler expires the session cookie. Tokens are stateless, so a copied token stays
// valid until it expires.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	clearSessionCookie(ctx)

	if ctx.IsAdmin() {
		ctx.Logger.Info("admin logged out", "ip", ctx.ClientIP())
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
