package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"photo-portfolio/internal/auth"
	"photo-portfolio/internal/metrics"
	"photo-portfolio/internal/middlewares"

	"github.com/avct/uasurfer"
)

// POSTLoginHandler checks the admin password and issues a session cookie. The response never
// says more than "Invalid password" about a failed attempt.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	logger := ctx.Logger

	password := readPassword(ctx)
	if password == "" {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultMissing).Inc()
		ctx.SetJSONError(http.StatusBadRequest, ErrMsgPasswordRequired)
		return
	}

	authCfg := ctx.Config.Auth
	if !authCfg.Configured() {
		logger.Error("login attempted but the session secret or admin password hash is not configured")
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultNotConfigured).Inc()
		ctx.SetJSONError(http.StatusInternalServerError, ErrMsgServerConfiguration)
		return
	}

	clientIP := ctx.ClientIP()

	if !loginAllowed(ctx, clientIP) {
		logger.Warn("login throttled", "ip", clientIP)
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultThrottled).Inc()
		recordLoginAttempt(ctx, clientIP, false)
		ctx.SetJSONError(http.StatusTooManyRequests, ErrMsgTooManyAttempts)
		return
	}

	if !auth.VerifyPassword(password, authCfg.AdminPasswordHash, authCfg.SessionSecret) {
		logger.Info("failed admin login", "ip", clientIP)
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultInvalid).Inc()
		if ctx.Limiter != nil {
			if err := ctx.Limiter.Fail(ctx, clientIP); err != nil {
				logger.Warn("failed to record login failure with throttle", "error", err)
				metrics.ThrottleErrors.WithLabelValues(ctx.Config.Throttle.Type).Inc()
			}
		}
		recordLoginAttempt(ctx, clientIP, false)
		ctx.SetJSONError(http.StatusUnauthorized, ErrMsgInvalidPassword)
		return
	}

	token, err := ctx.Authenticator.CreateSession(authCfg.SessionSecret)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if ctx.Limiter != nil {
		if err := ctx.Limiter.Reset(ctx, clientIP); err != nil {
			logger.Warn("failed to reset login throttle", "error", err)
			metrics.ThrottleErrors.WithLabelValues(ctx.Config.Throttle.Type).Inc()
		}
	}

	recordLoginAttempt(ctx, clientIP, true)
	metrics.LoginAttempts.WithLabelValues(metrics.LoginResultSuccess).Inc()
	logger.Info("admin logged in", "ip", clientIP)

	setSessionCookie(ctx, token)
	ctx.SetJSONStatus(http.StatusOK, "OK")
}

// readPassword accepts a JSON body or a regular form post.
func readPassword(ctx *middlewares.AppContext) string {
	r := ctx.Request

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req loginRequest
		if err := json.NewDecoder(http.MaxBytesReader(ctx.Response, r.Body, maxJSONBodyBytes)).Decode(&req); err != nil {
			return ""
		}
		return req.Password
	}

	r.Body = http.MaxBytesReader(ctx.Response, r.Body, maxJSONBodyBytes)
	return r.PostFormValue("password")
}

// loginAllowed asks the throttle whether clientIP may try again. Throttle errors allow the attempt.
func loginAllowed(ctx *middlewares.AppContext, clientIP string) bool {
	if ctx.Limiter == nil {
		return true
	}

	allowed, err := ctx.Limiter.Allow(ctx, clientIP)
	if err != nil {
		ctx.Logger.Warn("login throttle unavailable, allowing attempt", "error", err)
		metrics.ThrottleErrors.WithLabelValues(ctx.Config.Throttle.Type).Inc()
		return true
	}

	return allowed
}

func recordLoginAttempt(ctx *middlewares.AppContext, clientIP string, succeeded bool) {
	if ctx.Storage == nil {
		return
	}

	rawUserAgent := ctx.Request.UserAgent()
	userAgent := uasurfer.Parse(rawUserAgent)

	if err := ctx.Storage.RecordLoginAttempt(ctx, clientIP, rawUserAgent, *userAgent, succeeded); err != nil {
		ctx.Logger.Warn("failed to record login attempt", "error", err)
	}
}
