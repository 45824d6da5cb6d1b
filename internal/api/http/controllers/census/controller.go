package census

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/api/http/response"
	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

// Controller — маршруты Census.
type Controller struct {
	uc  ports.ICensusUseCase
	log *slog.Logger
}

// New создаёт контроллер Census.
func New(uc ports.ICensusUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/census")

	api.GET("/data", c.data)
	// набор может содержать слэши: acs/acs5
	api.GET("/variables/*dataset", c.variables)
	api.GET("/population", c.population)
}

// @Summary Таблица Census
// @Description Ответ Census как есть: первая строка — заголовки.
// @Tags census
// @Produce json
// @Param get query string true "Переменные через запятую"
// @Param for query string false "География"
// @Param in query string false "Вложенность географии"
// @Param dataset query string false "Набор" default(acs/acs5)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/census/data [get]
func (c *Controller) data(ctx *gin.Context) {
	opts := domain.CensusDataOptions{
		Dataset: ctx.DefaultQuery("dataset", domain.CensusDatasetACS5),
		Get:     ctx.Query("get"),
		For:     ctx.Query("for"),
		In:      ctx.Query("in"),
	}
	raw, err := c.uc.GetData(ctx.Request.Context(), opts)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch Census data")
		return
	}
	response.OK(ctx, raw)
}

// @Summary Переменные набора Census
// @Tags census
// @Produce json
// @Param dataset path string true "Набор, например acs/acs5"
// @Param group query string false "Группа переменных"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/census/variables/{dataset} [get]
func (c *Controller) variables(ctx *gin.Context) {
	raw, err := c.uc.GetVariables(ctx.Request.Context(), ctx.Param("dataset"), ctx.Query("group"))
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch Census variables")
		return
	}
	response.OK(ctx, raw)
}

// @Summary Население по штатам
// @Description ACS 5-year, по убыванию населения.
// @Tags census
// @Produce json
// @Param limit query int false "Сколько штатов" default(10)
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/census/population [get]
func (c *Controller) population(ctx *gin.Context) {
	limit, err := response.QueryInt(ctx, "limit", 0)
	if err != nil {
		response.Error(ctx, c.log, err, "invalid population parameters")
		return
	}
	list, err := c.uc.GetPopulationByState(ctx.Request.Context(), limit)
	if err != nil {
		response.Error(ctx, c.log, err, "failed to fetch population data")
		return
	}
	response.OK(ctx, list)
}
