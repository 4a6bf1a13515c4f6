package server

import (
	"net/http"
	"photo-portfolio/internal/catalog"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/handlers"
	"photo-portfolio/internal/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware(ctx.Config.Server.TrustedProxyPrefixes()))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	// handlers write through the AppContext, so it must see the compressed writer
	r.Use(middlewares.AppContextMiddleware(ctx))
	r.Use(middlewares.OptionalAuth)

	if ctx.Config.Storage.Type == config.StorageTypeStatic {
		posts := http.StripPrefix(catalog.PostsPrefix, http.FileServer(http.Dir(ctx.Config.Storage.StaticDir)))
		r.Handle(catalog.PostsPrefix+"/*", posts)
	}

	r.Get("/rss.xml", ctx.HandlerFunc(handlers.GETRSSHandler))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
		})

		r.Route("/photos", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETPhotosHandler))
			r.Get("/{slug}", ctx.HandlerFunc(handlers.GETPhotoHandler))
		})

		if ctx.Config.Storage.Writable() && ctx.Blob != nil {
			r.Route("/admin/photos", func(r chi.Router) {
				r.Use(middlewares.RequireAuth)
				r.Post("/", ctx.HandlerFunc(handlers.POSTPhotoUploadHandler))
				r.Put("/{slug}", ctx.HandlerFunc(handlers.PUTPhotoHandler))
				r.Delete("/{slug}", ctx.HandlerFunc(handlers.DELETEPhotoHandler))
			})
		}

		if ctx.Config.Storage.Writable() {
			r.With(middlewares.RequireAuth).Get("/admin/login-attempts", ctx.HandlerFunc(handlers.GETLoginAttemptsHandler))
		}

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
