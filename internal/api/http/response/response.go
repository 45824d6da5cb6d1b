package response

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/domain"
)

// TimeFormat — формат поля timestamp (ISO-8601 с миллисекундами, UTC).
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Envelope — общий вид ответа API.
type Envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Metadata   any    `json:"metadata,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Timestamp возвращает текущее время в формате TimeFormat.
func Timestamp() string {
	return time.Now().UTC().Format(TimeFormat)
}

// OK отвечает 200 с данными.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Timestamp: Timestamp()})
}

// OKWithMeta отвечает 200 с данными и метаданными.
func OKWithMeta(c *gin.Context, data, meta any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Metadata: meta, Timestamp: Timestamp()})
}

// Fail отвечает ошибкой с кодом status и прерывает цепочку обработчиков.
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: msg, Timestamp: Timestamp()})
}

// StatusOf возвращает HTTP-код для ошибки use case.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error логирует ошибку и отвечает по StatusOf. fallback — текст, если у ошибки пустое сообщение.
func Error(c *gin.Context, log *slog.Logger, err error, fallback string) {
	status := StatusOf(err)
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	if status >= http.StatusInternalServerError {
		log.Error(fallback, "path", c.FullPath(), "error", err)
	} else {
		log.Warn(fallback, "path", c.FullPath(), "error", err)
	}
	Fail(c, status, msg)
}
