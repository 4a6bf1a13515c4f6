package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"photo-portfolio/internal/blob"
	"photo-portfolio/internal/cache"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/storage"
	"photo-portfolio/internal/throttle"
)

type AppContext struct {
	context.Context
	Config        *config.Config
	Logger        *slog.Logger
	Storage       storage.StorageProvider
	Blob          blob.ObjectStore
	Limiter       throttle.Limiter
	Authenticator SessionAuthenticator
	FeedCache     *cache.FeedCache

	Request  *http.Request
	Response http.ResponseWriter

	admin bool
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:       r.Context(),
				Config:        baseCtx.Config,
				Logger:        baseCtx.Logger,
				Storage:       baseCtx.Storage,
				Blob:          baseCtx.Blob,
				Limiter:       baseCtx.Limiter,
				Authenticator: baseCtx.Authenticator,
				FeedCache:     baseCtx.FeedCache,
				Request:       r,
				Response:      w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, storage storage.StorageProvider, objectStore blob.ObjectStore, limiter throttle.Limiter, authenticator SessionAuthenticator) *AppContext {
	return &AppContext{
		Context:       ctx,
		Config:        cfg,
		Logger:        logger,
		Storage:       storage,
		Blob:          objectStore,
		Limiter:       limiter,
		Authenticator: authenticator,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

// SetAdmin marks the current request as carrying a valid admin session.
func (ctx *AppContext) SetAdmin(admin bool) {
	ctx.admin = admin
}

func (ctx *AppContext) IsAdmin() bool {
	return ctx.admin
}

// ClientIP returns the address set by ClientIPMiddleware without its port.
func (ctx *AppContext) ClientIP() string {
	host, _, err := net.SplitHostPort(ctx.Request.RemoteAddr)
	if err != nil {
		return ctx.Request.RemoteAddr
	}
	return host
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) WriteText(status int, contentType, text string) {
	ctx.Response.Header().Set("Content-Type", contentType)
	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write([]byte(text)); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
