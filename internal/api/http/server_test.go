package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"govdataviz/internal/api/http/middlewares"
)

type panicController struct{}

func (panicController) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/panic", func(*gin.Context) { panic("boom") })
	r.GET("/api/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func newTestServer(requests int) http.Handler {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s := NewServer(ServerConfig{FrontendURL: "http://localhost:3000, http://localhost:5173", MaxBodyBytes: 1024},
		middlewares.NewRateLimiter(middlewares.RateLimitConfig{Requests: requests, Window: time.Minute, Prefix: "/api/"}), log)
	s.AddController(panicController{})
	return s.Handler()
}

func TestServer_RecoversPanics(t *testing.T) {
	h := newTestServer(100)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"error":"Internal server error"`)
}

func TestServer_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer(100).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}

func TestServer_CORS(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/ok", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	newTestServer(100).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RateLimit(t *testing.T) {
	h := newTestServer(1)
	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ok", nil)
		req.RemoteAddr = "198.51.100.7:1234"
		h.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
