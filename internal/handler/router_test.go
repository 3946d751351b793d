//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"shopbot/internal/handler"
	"shopbot/internal/handler/api"
	"shopbot/internal/pkg/config"
	"shopbot/tests/common/httptest"
	usecasemock "shopbot/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := api.NewWebhookHandler(usecasemock.NewMockWebhookUseCase(ctrl), slog.New(slog.NewTextHandler(io.Discard, nil)))

	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(), h)
	return engine
}

func TestNewRouterRegistersRoutes(t *testing.T) {
	engine := newTestRouter(t)

	var got []string
	for _, r := range engine.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}

	assert.ElementsMatch(t, []string{
		"GET /health",
		"GET /webhooks/whatsapp/:ownerID",
		"POST /webhooks/whatsapp/:ownerID",
	}, got)
}

func TestHealthCheck(t *testing.T) {
	engine := newTestRouter(t)

	w := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCORSPreflightAllowsConfiguredOrigin(t *testing.T) {
	engine := newTestRouter(t)

	req := nethttptest.NewRequest(http.MethodOptions, "/webhooks/whatsapp/abc", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := nethttptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
