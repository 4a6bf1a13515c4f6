package handlers

import (
	"net/http"
	"photo-portfolio/internal/middlewares"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	if ctx.Storage != nil {
		if err := ctx.Storage.Ping(ctx); err != nil {
			ctx.Logger.Error("health check failed to reach photo store", "error", err)
			ctx.SetJSONStatus(http.StatusServiceUnavailable, "UNAVAILABLE")
			return
		}
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
