package eia

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

// Controller — маршруты EIA.
type Controller struct {
	uc  ports.IEIAUseCase
	log *slog.Logger
}

// New создаёт контроллер EIA.
func New(uc ports.IEIAUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: по маршруту на каждый набор и общий /data/:dataType.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/eia")

	for _, dataType := range domain.EIADataTypes() {
		api.GET("/"+dataType, c.preset(dataType))
	}
	api.GET("/data/:dataType", c.data)
}

// presetMeta — метаданные готовых выборок.
type presetMeta struct {
	Name        string `json:"name"`
	Units       string `json:"units"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// dataMeta — метаданные /data/:dataType.
type dataMeta struct {
	SeriesID    string `json:"series_id"`
	Name        string `json:"name"`
	Units       string `json:"units"`
	Frequency   string `json:"frequency"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// preset отдаёт набор с параметрами по умолчанию как точки {date, value}.
func (c *Controller) preset(dataType string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, err := c.uc.GetSeries(ctx.Request.Context(), dataType, domain.EIAOptions{})
		if err != nil {
			response.Error(ctx, c.log, err, "failed to fetch "+dataType+" data")
			return
		}
		points := make([]domain.Point, 0, len(s.Data))
		for _, p := range s.Data {
			points = append(points, domain.Point{Date: p.Period, Value: p.Value})
		}
		response.OKWithMeta(ctx, points, presetMeta{
			Name:        s.Name,
			Units:       s.Units,
			Description: s.Description,
			Source:      s.Source,
		})
	}
}

// @Summary Набор EIA
// @Description Неизвестный dataType или частота — 400. Если EIA недоступен, отдаются данные-заглушки с source=mock.
// @Tags eia
// @Produce json
// @Param dataType path string true "electricity, renewable, gas-prices, solar, wind, coal, nuclear, petroleum"
// @Param frequency query string false "Частота" default(monthly)
// @Param start query string false "Начало периода" default(2023-01)
// @Param end query string false "Конец периода" default(2024-12)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/eia/data/{dataType} [get]
func (c *Controller) data(ctx *gin.Context) {
	opts := domain.EIAOptions{
		Frequency: ctx.Query("frequency"),
		Start:     ctx.Query("start"),
		End:       ctx.Query("end"),
	}
	s, err := c.uc.GetSeries(ctx.Request.Context(), ctx.Param("dataType"), opts)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch EIA data")
		return
	}
	response.OKWithMeta(ctx, s.Data, dataMeta{
		SeriesID:    s.SeriesID,
		Name:        s.Name,
		Units:       s.Units,
		Frequency:   s.Frequency,
		Description: s.Description,
		Source:      s.Source,
	})
}
