package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/middlewares"
	"photo-portfolio/internal/mocks"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

const TestSessionSecret = "test-session-secret"

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext        *middlewares.AppContext
	Request           *http.Request
	Response          *httptest.ResponseRecorder
	MockController    *gomock.Controller
	MockStorage       *mocks.MockStorageProvider
	MockBlob          *mocks.MockObjectStore
	MockLimiter       *mocks.MockLimiter
	MockAuthenticator *mocks.MockSessionAuthenticator
	LogHandler        *TestLogHandler
}

// NewTestConfig returns a validated-looking config with the defaults handlers rely on.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, MaxUploadBytes: 8 << 20},
		Auth: config.AuthConfig{
			CookieName: config.DefaultAuthConfig.CookieName,
		},
		Site: config.SiteConfig{
			Title:           "Test Photos",
			Description:     "Photos for tests",
			BaseURL:         "https://photos.example.com",
			MediaBaseURL:    "https://media.example.com",
			Language:        "en",
			CopyrightHolder: "Test Photographer",
			FeedTTL:         60 * time.Minute,
			PageSize:        15,
		},
		Storage:  config.StorageConfig{Type: config.StorageTypePostgres},
		Throttle: config.ThrottleConfig{Type: config.ThrottleTypeMemory, MaxAttempts: 5, Window: 15 * time.Minute},
	}
}

// NewTestContext creates a complete test setup with mocked dependencies.
func NewTestContext(t *testing.T, method, url string, body io.Reader) *TestContext {
	t.Helper()

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockStorage := mocks.NewMockStorageProvider(ctrl)
	mockBlob := mocks.NewMockObjectStore(ctrl)
	mockLimiter := mocks.NewMockLimiter(ctrl)
	mockAuthenticator := mocks.NewMockSessionAuthenticator(ctrl)

	req := httptest.NewRequest(method, url, body)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:       req.Context(),
		Config:        NewTestConfig(),
		Logger:        logger,
		Storage:       mockStorage,
		Blob:          mockBlob,
		Limiter:       mockLimiter,
		Authenticator: mockAuthenticator,
		Request:       req,
		Response:      rr,
	}

	return &TestContext{
		AppContext:        appCtx,
		Request:           req,
		Response:          rr,
		MockController:    ctrl,
		MockStorage:       mockStorage,
		MockBlob:          mockBlob,
		MockLimiter:       mockLimiter,
		MockAuthenticator: mockAuthenticator,
		LogHandler:        logHandler,
	}
}

// SetRequest swaps the request the handler under test sees.
func (tc *TestContext) SetRequest(req *http.Request) {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
}

// SetURLParam adds a chi URL parameter to the request.
func (tc *TestContext) SetURLParam(key, value string) {
	rctx := chi.RouteContext(tc.Request.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)

	tc.SetRequest(tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx)))
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d (body: %s)", expectedStatus, tc.Response.Code, tc.Response.Body.String())
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertJSONField checks a top level field of a JSON object response.
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if response[field] != expected {
		t.Errorf("Expected JSON field %q to be %v, got %v", field, expected, response[field])
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// DecodeJSONResponse parses the response body into v.
func (tc *TestContext) DecodeJSONResponse(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(tc.Response.Body.Bytes(), v); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
}
