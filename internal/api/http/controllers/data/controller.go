package data

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/catalog"
)

// Controller — маршруты /api/data: источники, поиск, журнал обращений, снимки рядов.
type Controller struct {
	uc  ports.ICatalogUseCase
	log *slog.Logger
}

// New создаёт контроллер каталога.
func New(uc ports.ICatalogUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/data")

	api.GET("/sources", c.sources)
	api.GET("/search", c.search)
	api.GET("/history", c.history)
	api.GET("/datasets", c.datasets)
	api.GET("/datasets/:source/:id", c.dataset)
}

// SearchResult — ответ /api/data/search.
type SearchResult struct {
	Query   string `json:"query"`
	Source  string `json:"source,omitempty"`
	Results any    `json:"results"`
	Total   int    `json:"total"`
	Limit   int    `json:"limit"`
}

// @Summary Источники данных
// @Description available — настроен ли ключ источника.
// @Tags data
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/data/sources [get]
func (c *Controller) sources(ctx *gin.Context) {
	response.OK(ctx, c.uc.Sources(ctx.Request.Context()))
}

// @Summary Поиск рядов
// @Description Ищет во встроенном справочнике популярных рядов и в поиске FRED.
// @Tags data
// @Produce json
// @Param query query string true "Текст поиска"
// @Param source query string false "bls, fred, census, eia или noaa"
// @Param limit query int false "Максимум результатов" default(20)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/data/search [get]
func (c *Controller) search(ctx *gin.Context) {
	limit, err := response.QueryInt(ctx, "limit", catalog.DefaultSearchLimit)
	if err != nil {
		response.Error(ctx, c.log, err, "search failed")
		return
	}
	query, source := ctx.Query("query"), ctx.Query("source")
	results, err := c.uc.Search(ctx.Request.Context(), query, source, limit)
	if err != nil {
		response.Error(ctx, c.log, err, "search failed")
		return
	}
	response.OK(ctx, SearchResult{Query: query, Source: source, Results: results, Total: len(results), Limit: limit})
}

// @Summary Журнал обращений к внешним API
// @Tags data
// @Produce json
// @Param source query string false "Источник"
// @Param limit query int false "Сколько записей" default(50)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/data/history [get]
func (c *Controller) history(ctx *gin.Context) {
	limit, err := response.QueryInt(ctx, "limit", catalog.DefaultHistoryLimit)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch history")
		return
	}
	events, err := c.uc.History(ctx.Request.Context(), ctx.Query("source"), limit)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch history")
		return
	}
	response.OK(ctx, events)
}

// @Summary Сохранённые снимки рядов
// @Tags data
// @Produce json
// @Param source query string false "Источник"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/data/datasets [get]
func (c *Controller) datasets(ctx *gin.Context) {
	list, err := c.uc.Datasets(ctx.Request.Context(), ctx.Query("source"))
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch datasets")
		return
	}
	response.OK(ctx, list)
}

// @Summary Снимок ряда
// @Tags data
// @Produce json
// @Param source path string true "Источник"
// @Param id path string true "Идентификатор ряда"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/data/datasets/{source}/{id} [get]
func (c *Controller) dataset(ctx *gin.Context) {
	ts, err := c.uc.Dataset(ctx.Request.Context(), ctx.Param("source"), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch dataset")
		return
	}
	response.OK(ctx, ts)
}
