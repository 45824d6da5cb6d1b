package bls

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

// Период готовых выборок /unemployment и /cpi.
const (
	presetStartYear = "2023"
	presetEndYear   = "2024"
)

// Controller — маршруты BLS.
type Controller struct {
	uc  ports.IBLSUseCase
	log *slog.Logger
}

// New создаёт контроллер BLS.
func New(uc ports.IBLSUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/bls")

	api.GET("/series/:seriesId", c.series)
	api.POST("/series", c.multipleSeries)
	api.GET("/unemployment", c.preset(domain.BLSSeriesUnemploymentRate, "failed to fetch unemployment data"))
	api.GET("/cpi", c.preset(domain.BLSSeriesCPIAllUrban, "failed to fetch CPI data"))
}

// @Summary Ряд BLS
// @Tags bls
// @Produce json
// @Param seriesId path string true "Идентификатор ряда"
// @Param startYear query string false "Начальный год"
// @Param endYear query string false "Конечный год"
// @Param calculations query bool false "Добавить расчёты BLS"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bls/series/{seriesId} [get]
func (c *Controller) series(ctx *gin.Context) {
	opts := domain.BLSOptions{
		StartYear:    ctx.Query("startYear"),
		EndYear:      ctx.Query("endYear"),
		Calculations: ctx.Query("calculations") == "true",
	}
	ts, err := c.uc.GetSeries(ctx.Request.Context(), ctx.Param("seriesId"), opts)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch BLS data")
		return
	}
	response.OK(ctx, ts)
}

// @Summary Несколько рядов BLS
// @Tags bls
// @Accept json
// @Produce json
// @Param request body MultipleSeriesRequest true "Ряды и период"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bls/series [post]
func (c *Controller) multipleSeries(ctx *gin.Context) {
	var req MultipleSeriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("bls series bind failed", "error", err)
		response.Fail(ctx, http.StatusBadRequest, "seriesIds must be an array")
		return
	}
	if req.SeriesIDs == nil {
		response.Fail(ctx, http.StatusBadRequest, "seriesIds must be an array")
		return
	}
	list, err := c.uc.GetMultipleSeries(ctx.Request.Context(), req.SeriesIDs, req.Options())
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch BLS data")
		return
	}
	response.OK(ctx, list)
}

// preset отдаёт готовый ряд за 2023–2024 как точки с датой YYYY-MM.
func (c *Controller) preset(seriesID, failMsg string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ts, err := c.uc.GetSeries(ctx.Request.Context(), seriesID, domain.BLSOptions{StartYear: presetStartYear, EndYear: presetEndYear})
		if err != nil {
			response.Error(ctx, c.log, err, failMsg)
			return
		}
		response.OK(ctx, ts.Points(true))
	}
}
