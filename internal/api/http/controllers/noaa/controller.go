package noaa

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

// Параметры выдачи готовых выборок.
const (
	monthsShown     = 12
	extremesPerType = 10
	datasetsShown   = 20
	tempDecimals    = 1
	precipDecimals  = 2
)

// Controller — маршруты NOAA.
type Controller struct {
	uc  ports.INOAAUseCase
	log *slog.Logger
}

// New создаёт контроллер NOAA.
func New(uc ports.INOAAUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/noaa")

	api.GET("/temperature", c.temperature)
	api.GET("/precipitation", c.precipitation)
	api.GET("/extremes", c.extremes)
	api.GET("/datasets", c.datasets)
	api.GET("/data/:dataType", c.data)
}

// seriesMeta — метаданные готовых выборок.
type seriesMeta struct {
	Name        string `json:"name"`
	Units       string `json:"units"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// datasetsMeta — метаданные списка наборов.
type datasetsMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Total       int    `json:"total"`
}

// @Summary Средняя температура по месяцам
// @Description Последние 12 месяцев, среднее по станциям с точностью 0.1.
// @Tags noaa
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/noaa/temperature [get]
func (c *Controller) temperature(ctx *gin.Context) {
	data, err := c.uc.GetTemperatureData(ctx.Request.Context(), domain.NOAAOptions{})
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch temperature data")
		return
	}
	response.OKWithMeta(ctx, domain.LastN(domain.MonthlyMean(data.Results, tempDecimals), monthsShown), seriesMeta{
		Name:        "Average Temperature",
		Units:       "degrees Fahrenheit",
		Description: "Monthly average temperatures across the United States",
		Source:      domain.SourceNOAA,
	})
}

// @Summary Осадки по месяцам
// @Description Последние 12 месяцев, среднее по станциям с точностью 0.01.
// @Tags noaa
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/noaa/precipitation [get]
func (c *Controller) precipitation(ctx *gin.Context) {
	data, err := c.uc.GetPrecipitationData(ctx.Request.Context(), domain.NOAAOptions{})
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch precipitation data")
		return
	}
	response.OKWithMeta(ctx, domain.LastN(domain.MonthlyMean(data.Results, precipDecimals), monthsShown), seriesMeta{
		Name:        "Precipitation",
		Units:       "inches",
		Description: "Monthly precipitation totals across the United States",
		Source:      domain.SourceNOAA,
	})
}

// @Summary Климатические экстремумы
// @Description Первые 10 наблюдений TMAX, TMIN и PRCP, свежие сначала.
// @Tags noaa
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/noaa/extremes [get]
func (c *Controller) extremes(ctx *gin.Context) {
	data, err := c.uc.GetClimateExtremes(ctx.Request.Context(), domain.NOAAOptions{})
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch climate extreme data")
		return
	}
	response.OKWithMeta(ctx, domain.GroupExtremes(data.Results, extremesPerType), seriesMeta{
		Name:        "Climate Extremes",
		Units:       "various",
		Description: "Recent climate extreme events in the United States",
		Source:      domain.SourceNOAA,
	})
}

// @Summary Наборы данных NOAA
// @Description Первые 20 наборов и общее число.
// @Tags noaa
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/noaa/datasets [get]
func (c *Controller) datasets(ctx *gin.Context) {
	list, err := c.uc.GetDatasets(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch NOAA datasets")
		return
	}
	total := len(list)
	if len(list) > datasetsShown {
		list = list[:datasetsShown]
	}
	response.OKWithMeta(ctx, list, datasetsMeta{
		Name:        "NOAA Datasets",
		Description: "Available climate and weather datasets from NOAA",
		Source:      domain.SourceNOAA,
		Total:       total,
	})
}

// @Summary Данные NOAA по типу
// @Tags noaa
// @Produce json
// @Param dataType path string true "temperature, precipitation или extremes"
// @Param startdate query string false "YYYY-MM-DD" default(2023-01-01)
// @Param enddate query string false "YYYY-MM-DD" default(2024-12-31)
// @Param locationid query string false "Локация" default(FIPS:US)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/noaa/data/{dataType} [get]
func (c *Controller) data(ctx *gin.Context) {
	opts := domain.NOAAOptions{
		StartDate:  ctx.Query("startdate"),
		EndDate:    ctx.Query("enddate"),
		LocationID: ctx.Query("locationid"),
	}

	var (
		data *domain.NOAAData
		err  error
	)
	switch dataType := ctx.Param("dataType"); dataType {
	case "temperature":
		data, err = c.uc.GetTemperatureData(ctx.Request.Context(), opts)
	case "precipitation":
		data, err = c.uc.GetPrecipitationData(ctx.Request.Context(), opts)
	case "extremes":
		data, err = c.uc.GetClimateExtremes(ctx.Request.Context(), opts)
	default:
		err = fmt.Errorf("%w: invalid data type %q, available: temperature, precipitation, extremes", domain.ErrInvalidArgument, dataType)
	}
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch NOAA data")
		return
	}
	response.OKWithMeta(ctx, data.Results, data.Metadata)
}
