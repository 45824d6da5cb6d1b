package system

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"govdataviz/internal/api/http/response"
)

// ServiceName — имя сервиса в /health.
const ServiceName = "gov-data-viz-backend"

// Version — версия API в корневом маршруте.
const Version = "1.0.0"

// Checker — зависимость, доступность которой проверяет readiness.
type Checker interface {
	Ping(ctx context.Context) error
}

// Controller — системные маршруты: корень API, health, liveness, readiness, метрики.
type Controller struct {
	checks map[string]Checker
	log    *slog.Logger
}

// New создаёт системный контроллер. checks — именованные зависимости для readiness.
func New(checks map[string]Checker, log *slog.Logger) *Controller {
	return &Controller{checks: checks, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/", c.root)
	r.GET("/health", c.health)
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Government Data Visualization API",
		"version": Version,
		"endpoints": gin.H{
			"health":  "/health",
			"data":    "/api/data",
			"bls":     "/api/bls",
			"fred":    "/api/fred",
			"census":  "/api/census",
			"charts":  "/api/charts",
			"eia":     "/api/eia",
			"noaa":    "/api/noaa",
			"metrics": "/metrics",
		},
	})
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": response.Timestamp(),
		"service":   ServiceName,
	})
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	failed := gin.H{}
	for name, check := range c.checks {
		if err := check.Ping(pingCtx); err != nil {
			c.log.Warn("ready check failed", "dependency", name, "error", err)
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "errors": failed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
