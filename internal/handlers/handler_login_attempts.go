package handlers

import (
	"net/http"
	"photo-portfolio/internal/middlewares"
	"strconv"
)

// GETLoginAttemptsHandler lists the most recent login audit entries for the admin.
func GETLoginAttemptsHandler(ctx *middlewares.AppContext) {
	limit, err := strconv.Atoi(ctx.Request.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultAuditLimit
	}
	limit = min(limit, maxAuditLimit)

	attempts, err := ctx.Storage.ListLoginAttempts(ctx, limit)
	if err != nil {
		ctx.Logger.Error("failed to list login attempts", "limit", limit, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.WriteJSON(http.StatusOK, LoginAttemptsResponse{Attempts: attempts})
}
