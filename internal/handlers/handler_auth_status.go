package handlers

import (
	"net/http"
	"photo-portfolio/internal/middlewares"
)

func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, AuthStatusResponse{
		Authenticated: ctx.IsAdmin(),
	})
}
