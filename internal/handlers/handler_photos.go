package handlers

import (
	"errors"
	"net/http"
	"photo-portfolio/internal/middlewares"
	"photo-portfolio/internal/models"
	"photo-portfolio/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GETPhotosHandler returns one page of photos, newest first. Bad offsets read as zero.
func GETPhotosHandler(ctx *middlewares.AppContext) {
	offset, err := strconv.Atoi(ctx.Request.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	photos, err := ctx.Storage.ListPhotos(ctx, ctx.Config.Site.PageSize, offset)
	if err != nil {
		ctx.Logger.Error("failed to list photos", "offset", offset, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.WriteJSON(http.StatusOK, PhotosResponse{
		Photos: models.NewPhotoItems(photos, ctx.Config.MediaBaseURL()),
	})
}

func GETPhotoHandler(ctx *middlewares.AppContext) {
	slug := chi.URLParam(ctx.Request, "slug")

	photo, err := ctx.Storage.GetPhotoBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			ctx.SetJSONError(http.StatusNotFound, ErrMsgPhotoNotFound)
			return
		}
		ctx.Logger.Error("failed to get photo", "slug", slug, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.WriteJSON(http.StatusOK, PhotoResponse{
		Photo: models.NewPhotoItem(photo, ctx.Config.MediaBaseURL()),
	})
}
