package charts

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/ports"
)

// Controller — маршруты графиков: конфигурация и выгрузка.
type Controller struct {
	uc  ports.IChartUseCase
	log *slog.Logger
}

// New создаёт контроллер графиков.
func New(uc ports.IChartUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/charts")

	api.POST("/config", c.config)
	api.POST("/export", c.export)
}

// @Summary Конфигурация графика
// @Tags charts
// @Accept json
// @Produce json
// @Param request body ConfigRequest true "Тип, данные и настройки"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/charts/config [post]
func (c *Controller) config(ctx *gin.Context) {
	var req ConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("chart config bind failed", "error", err)
		response.Fail(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.Type == "" || len(req.Data) == 0 {
		response.Fail(ctx, http.StatusBadRequest, "Chart type and data are required")
		return
	}
	cfg, err := c.uc.GenerateConfig(ctx.Request.Context(), req.Type, req.Data, req.Options)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to generate chart config")
		return
	}
	response.OK(ctx, cfg)
}

// @Summary Выгрузка графика
// @Description Рисует серии конфигурации в svg, png или jpg и отдаёт файлом.
// @Tags charts
// @Accept json
// @Produce image/png,image/jpeg,image/svg+xml
// @Param request body ExportRequest true "Конфигурация и формат"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/charts/export [post]
func (c *Controller) export(ctx *gin.Context) {
	var req ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("chart export bind failed", "error", err)
		response.Fail(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.Config == nil {
		response.Fail(ctx, http.StatusBadRequest, "Chart configuration is required")
		return
	}
	opts := req.Options()
	out, err := c.uc.Export(ctx.Request.Context(), *req.Config, opts)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to export chart")
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="chart.%s"`, opts.Format))
	ctx.Data(http.StatusOK, opts.Format.ContentType(), out)
}
