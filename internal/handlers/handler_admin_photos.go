package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/middlewares"
	"photo-portfolio/internal/models"
	"photo-portfolio/internal/storage"
	"photo-portfolio/internal/utils"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

// POSTPhotoUploadHandler stores a new photo: the original and its thumbnail go to the object
// store, then the record is inserted. Objects are removed again when the insert fails.
func POSTPhotoUploadHandler(ctx *middlewares.AppContext) {
	logger := ctx.Logger
	r := ctx.Request

	if ctx.Blob == nil || ctx.Storage == nil {
		logger.Error("photo upload attempted without an object store or photo store configured")
		ctx.SetJSONError(http.StatusInternalServerError, ErrMsgServerConfiguration)
		return
	}

	r.Body = http.MaxBytesReader(ctx.Response, r.Body, ctx.Config.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctx.SetJSONError(http.StatusRequestEntityTooLarge, ErrMsgUploadTooLarge)
			return
		}
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgUploadFieldsMissing)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Warn("failed to remove multipart temp files", "error", err)
		}
	}()

	title := strings.TrimSpace(r.FormValue("title"))
	dateValue := strings.TrimSpace(r.FormValue("date"))
	imageData, imageHeader, err := readFormFile(r, "file")
	if err != nil {
		logger.Warn("failed to read uploaded file", "error", err)
	}

	if imageData == nil || title == "" || dateValue == "" {
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgUploadFieldsMissing)
		return
	}

	date, err := utils.ParseTimeString(dateValue)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgInvalidDate)
		return
	}

	slug := utils.Slugify(title)
	if slug == "" {
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgInvalidTitle)
		return
	}

	exists, err := ctx.Storage.SlugExists(ctx, slug)
	if err != nil {
		logger.Error("failed to check for existing photo", "slug", slug, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, ErrMsgUploadFailed)
		return
	}
	if exists {
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgDuplicateTitle)
		return
	}

	imageKey := slug + "." + utils.FileExtension(imageHeader.Filename, defaultImageExtension)
	thumbKey := slug + thumbnailSuffix
	imageType := detectContentType(imageData, imageHeader)
	thumbData, thumbType := uploadThumbnail(ctx, imageData, imageType)

	if err := ctx.Blob.Put(ctx, imageKey, bytes.NewReader(imageData), int64(len(imageData)), imageType); err != nil {
		logger.Error("failed to store photo", "key", imageKey, "error", err)
		metrics.PhotoUploads.WithLabelValues(metrics.ResultError).Inc()
		ctx.SetJSONError(http.StatusInternalServerError, ErrMsgUploadFailed)
		return
	}

	if err := ctx.Blob.Put(ctx, thumbKey, bytes.NewReader(thumbData), int64(len(thumbData)), thumbType); err != nil {
		logger.Error("failed to store thumbnail", "key", thumbKey, "error", err)
		deleteObjects(ctx, imageKey)
		metrics.PhotoUploads.WithLabelValues(metrics.ResultError).Inc()
		ctx.SetJSONError(http.StatusInternalServerError, ErrMsgUploadFailed)
		return
	}

	photo := &models.Photo{
		Slug:        slug,
		Title:       title,
		Date:        date,
		ImageKey:    imageKey,
		ThumbKey:    thumbKey,
		Type:        models.PhotoTypeDefault,
		Camera:      strings.TrimSpace(r.FormValue("camera")),
		Lens:        strings.TrimSpace(r.FormValue("lens")),
		Aperture:    strings.TrimSpace(r.FormValue("aperture")),
		Exposure:    strings.TrimSpace(r.FormValue("exposure")),
		FocalLength: strings.TrimSpace(r.FormValue("focalLength")),
		ISO:         strings.TrimSpace(r.FormValue("iso")),
		Make:        strings.TrimSpace(r.FormValue("make")),
		Tags:        splitTags(r.FormValue("tags")),
	}

	created, err := ctx.Storage.CreatePhoto(ctx, photo)
	if err != nil {
		deleteObjects(ctx, imageKey, thumbKey)
		metrics.PhotoUploads.WithLabelValues(metrics.ResultError).Inc()
		if errors.Is(err, storage.ErrSlugExists) {
			ctx.SetJSONError(http.StatusBadRequest, ErrMsgDuplicateTitle)
			return
		}
		logger.Error("failed to insert photo", "slug", slug, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, ErrMsgUploadFailed)
		return
	}

	invalidateFeed(ctx)
	metrics.PhotoUploads.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.Info("photo uploaded", "slug", slug, "bytes", len(imageData), "url", ctx.Blob.URL(imageKey))

	ctx.WriteJSON(http.StatusCreated, PhotoResponse{
		Photo: models.NewPhotoItem(created, ctx.Config.MediaBaseURL()),
	})
}

// PUTPhotoHandler updates the metadata of an existing photo. The slug and stored objects never change.
func PUTPhotoHandler(ctx *middlewares.AppContext) {
	slug := chi.URLParam(ctx.Request, "slug")

	var req photoUpdateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	update, errMsg := req.toUpdate()
	if errMsg != "" {
		ctx.SetJSONError(http.StatusBadRequest, errMsg)
		return
	}

	updated, err := ctx.Storage.UpdatePhoto(ctx, slug, update)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			ctx.SetJSONError(http.StatusNotFound, ErrMsgPhotoNotFound)
			return
		}
		ctx.Logger.Error("failed to update photo", "slug", slug, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	invalidateFeed(ctx)
	ctx.Logger.Info("photo updated", "slug", slug)
	ctx.WriteJSON(http.StatusOK, PhotoResponse{
		Photo: models.NewPhotoItem(updated, ctx.Config.MediaBaseURL()),
	})
}

// DELETEPhotoHandler removes the record first, then its objects. Object removal failures are logged only.
func DELETEPhotoHandler(ctx *middlewares.AppContext) {
	slug := chi.URLParam(ctx.Request, "slug")

	deleted, err := ctx.Storage.DeletePhoto(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			ctx.SetJSONError(http.StatusNotFound, ErrMsgPhotoNotFound)
			return
		}
		ctx.Logger.Error("failed to delete photo", "slug", slug, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	invalidateFeed(ctx)

	if ctx.Blob != nil {
		deleteObjects(ctx, deleted.ImageKey, deleted.ThumbKey)
	}

	ctx.Logger.Info("photo deleted", "slug", slug)
	ctx.SetJSONStatus(http.StatusOK, "OK")
}

func (req photoUpdateRequest) toUpdate() (models.PhotoUpdate, string) {
	update := models.PhotoUpdate{
		Type:        trimmed(req.Type),
		Camera:      trimmed(req.Camera),
		Lens:        trimmed(req.Lens),
		Aperture:    trimmed(req.Aperture),
		Exposure:    trimmed(req.Exposure),
		FocalLength: trimmed(req.FocalLength),
		ISO:         trimmed(req.ISO),
		Make:        trimmed(req.Make),
		Tags:        req.Tags,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.PhotoUpdate{}, ErrMsgInvalidTitle
		}
		update.Title = &title
	}

	if req.Date != nil {
		date, err := utils.ParseTimeString(*req.Date)
		if err != nil {
			return models.PhotoUpdate{}, ErrMsgInvalidDate
		}
		update.Date = &date
	}

	if update.Type != nil && *update.Type == "" {
		t := models.PhotoTypeDefault
		update.Type = &t
	}

	return update, ""
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func readFormFile(r *http.Request, field string) ([]byte, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		return nil, nil, nil
	}

	return data, header, nil
}

// detectContentType sniffs the bytes and falls back to the client supplied type.
func detectContentType(data []byte, header *multipart.FileHeader) string {
	detected := mimetype.Detect(data)
	if detected.Is("application/octet-stream") && header != nil {
		if ct := header.Header.Get("Content-Type"); ct != "" {
			return ct
		}
	}
	return detected.String()
}

// uploadThumbnail picks the thumbnail bytes: the uploaded thumbnail, a generated one, or the
// original image when it cannot be decoded.
func uploadThumbnail(ctx *middlewares.AppContext, imageData []byte, imageType string) ([]byte, string) {
	thumbData, _, err := readFormFile(ctx.Request, "thumbnail")
	if err != nil {
		ctx.Logger.Warn("failed to read uploaded thumbnail", "error", err)
	}
	if thumbData != nil {
		return thumbData, thumbnailContentType
	}

	generated, err := makeThumbnail(imageData)
	if err != nil {
		ctx.Logger.Warn("could not generate thumbnail, using original image", "error", err)
		return imageData, imageType
	}

	return generated, thumbnailContentType
}

func deleteObjects(ctx *middlewares.AppContext, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := ctx.Blob.Delete(ctx, key); err != nil {
			ctx.Logger.Error("failed to delete object", "key", key, "error", err)
		}
	}
}

func invalidateFeed(ctx *middlewares.AppContext) {
	if ctx.FeedCache != nil {
		ctx.FeedCache.Invalidate()
	}
}

func splitTags(value string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
