package fred

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

// Период готовых выборок /gdp и /rates.
const (
	presetStart = "2023-01-01"
	presetEnd   = "2024-12-31"
)

// Параметры поиска по умолчанию.
const (
	defaultSearchLimit  = 20
	defaultSearchOffset = 0
)

// Controller — маршруты FRED.
type Controller struct {
	uc  ports.IFREDUseCase
	log *slog.Logger
}

// New создаёт контроллер FRED.
func New(uc ports.IFREDUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/fred")

	api.GET("/series/:seriesId", c.series)
	api.GET("/search", c.search)
	api.GET("/gdp", c.preset(domain.FREDSeriesGDP, false, "failed to fetch GDP data"))
	api.GET("/rates", c.preset(domain.FREDSeriesFedFunds, true, "failed to fetch interest rates data"))
}

// @Summary Наблюдения ряда FRED
// @Description Ответ FRED /series/observations без изменений.
// @Tags fred
// @Produce json
// @Param seriesId path string true "Идентификатор ряда"
// @Param observation_start query string false "YYYY-MM-DD"
// @Param observation_end query string false "YYYY-MM-DD"
// @Param frequency query string false "Частота агрегации"
// @Param units query string false "Преобразование значений"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/fred/series/{seriesId} [get]
func (c *Controller) series(ctx *gin.Context) {
	opts := domain.FREDObservationOptions{
		ObservationStart: ctx.Query("observation_start"),
		ObservationEnd:   ctx.Query("observation_end"),
		Frequency:        ctx.Query("frequency"),
		Units:            ctx.Query("units"),
	}
	raw, err := c.uc.GetSeriesObservations(ctx.Request.Context(), ctx.Param("seriesId"), opts)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch FRED data")
		return
	}
	response.OK(ctx, raw)
}

// @Summary Поиск рядов FRED
// @Tags fred
// @Produce json
// @Param search_text query string true "Текст поиска"
// @Param limit query int false "Размер страницы" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/fred/search [get]
func (c *Controller) search(ctx *gin.Context) {
	limit, err := response.QueryInt(ctx, "limit", defaultSearchLimit)
	if err != nil {
		response.Error(ctx, c.log, err, "invalid search parameters")
		return
	}
	offset, err := response.QueryInt(ctx, "offset", defaultSearchOffset)
	if err != nil {
		response.Error(ctx, c.log, err, "invalid search parameters")
		return
	}
	raw, err := c.uc.SearchSeries(ctx.Request.Context(), domain.FREDSearchOptions{
		SearchText: ctx.Query("search_text"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		response.Error(ctx, c.log, err, "failed to search FRED data")
		return
	}
	response.OK(ctx, raw)
}

// preset отдаёт готовый ряд за 2023–2024 как точки. monthOnly обрезает дату до YYYY-MM.
func (c *Controller) preset(seriesID string, monthOnly bool, failMsg string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		points, err := c.uc.GetObservationPoints(ctx.Request.Context(), seriesID,
			domain.FREDObservationOptions{ObservationStart: presetStart, ObservationEnd: presetEnd})
		if err != nil {
			response.Error(ctx, c.log, err, failMsg)
			return
		}
		if monthOnly {
			for i := range points {
				points[i].Date = domain.MonthOf(points[i].Date)
			}
		}
		response.OK(ctx, points)
	}
}
