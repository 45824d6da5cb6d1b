package charts

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"govdataviz/internal/domain"
	"govdataviz/internal/mocks"
)

func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, *mocks.MockIChartUseCase) {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	uc := mocks.NewMockIChartUseCase(ctrl)
	r := gin.New()
	New(uc, log).RegisterRoutes(r)
	return r, uc
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	return env.Error
}

func TestConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, uc := newTestRouter(ctrl)

	uc.EXPECT().
		GenerateConfig(gomock.Any(), domain.ChartLine, json.RawMessage(`[1,2]`), domain.ChartRequestOptions{Title: "T"}).
		Return(&domain.ChartOptions{Config: domain.ChartConfig{Type: domain.ChartLine, Title: "T"}}, nil)

	w := post(r, "/api/charts/config", `{"type":"line","data":[1,2],"options":{"title":"T"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"T"`)
}

func TestConfig_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, _ := newTestRouter(ctrl)

	for _, body := range []string{`{"data":[1]}`, `{"type":"bar"}`} {
		w := post(r, "/api/charts/config", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Chart type and data are required", errorOf(t, w))
	}
}

func TestConfig_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, uc := newTestRouter(ctrl)

	uc.EXPECT().GenerateConfig(gomock.Any(), domain.ChartType("radar"), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInvalidArgument)

	w := post(r, "/api/charts/config", `{"type":"radar","data":[1]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, uc := newTestRouter(ctrl)

	uc.EXPECT().
		Export(gomock.Any(), gomock.Any(), domain.ExportOptions{Format: domain.ExportPNG, Width: 800, Height: 600}).
		Return([]byte("\x89PNG"), nil)
	uc.EXPECT().
		Export(gomock.Any(), gomock.Any(), domain.ExportOptions{Format: domain.ExportSVG, Width: 300, Height: 200}).
		Return([]byte("<svg/>"), nil)

	w := post(r, "/api/charts/export", `{"config":{"config":{"type":"line"}}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="chart.png"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "\x89PNG", w.Body.String())

	w = post(r, "/api/charts/export", `{"config":{"config":{"type":"line"}},"format":"svg","width":300,"height":200}`)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="chart.svg"`, w.Header().Get("Content-Disposition"))
}

func TestExport_MissingConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, _ := newTestRouter(ctrl)

	w := post(r, "/api/charts/export", `{"format":"png"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Chart configuration is required", errorOf(t, w))
}

func TestExport_InvalidFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, uc := newTestRouter(ctrl)

	opts := domain.ExportOptions{Format: "gif", Width: 800, Height: 600}
	uc.EXPECT().Export(gomock.Any(), gomock.Any(), opts).Return(nil, opts.Validate())

	w := post(r, "/api/charts/export", `{"config":{},"format":"gif"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorOf(t, w), "unsupported export format")
}
