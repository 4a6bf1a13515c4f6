package handlers

import (
	"net/http"
	"photo-portfolio/internal/feed"
	"photo-portfolio/internal/middlewares"
	"time"
)

func GETRSSHandler(ctx *middlewares.AppContext) {
	var generation uint64
	if ctx.FeedCache != nil {
		out, gen, ok := ctx.FeedCache.Get()
		if ok {
			ctx.WriteText(http.StatusOK, feed.ContentType, out)
			return
		}
		generation = gen
	}

	photos, err := ctx.Storage.ListPhotos(ctx, 0, 0)
	if err != nil {
		ctx.Logger.Error("failed to list photos for rss feed", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	out, err := feed.Build(ctx.Config.Site, photos, ctx.Config.MediaBaseURL(), time.Now())
	if err != nil {
		ctx.Logger.Error("failed to build rss feed", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if ctx.FeedCache != nil {
		ctx.FeedCache.Set(out, generation)
	}

	ctx.WriteText(http.StatusOK, feed.ContentType, out)
}
