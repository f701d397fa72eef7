package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"singsing/storefront/internal/app/pkg/logger"
)

func newEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	r := gin.New()
	r.Use(Recovery(log), CORS(), Logger(log), ErrorHandler(log))
	return r, logs
}

func TestLoggerTagsRequest(t *testing.T) {
	r, logs := newEngine(t)
	r.GET("/carts/:cart_id", func(c *gin.Context) {
		assert.Equal(t, "trace-1", logger.TraceID(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts/c1", nil)
	req.Header.Set(HeaderRequestID, "trace-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-1", w.Header().Get(HeaderRequestID))
	entries := logs.FilterField(zap.String("cart_id", "c1")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestLoggerGeneratesTraceID(t *testing.T) {
	r, _ := newEngine(t)
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestErrorHandlerWritesEnvelope(t *testing.T) {
	r, logs := newEngine(t)
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("disk on fire")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":500`)
	assert.NotEmpty(t, logs.FilterMessageSnippet("disk on fire").All())
}

func TestRecovery(t *testing.T) {
	r, _ := newEngine(t)
	r.GET("/panic", func(c *gin.Context) { panic("oops") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"meta"`)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newEngine(t)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
