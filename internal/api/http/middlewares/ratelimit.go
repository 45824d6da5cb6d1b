package middlewares

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"govdataviz/internal/api/http/response"
)

// RateLimitConfig — ограничение числа запросов с одного IP. Переменные: GOVVIZ_RATE_LIMIT_*.
type RateLimitConfig struct {
	Requests int           `envconfig:"REQUESTS" default:"100"`
	Window   time.Duration `envconfig:"WINDOW" default:"1m"`
	Prefix   string        `envconfig:"PREFIX" default:"/api/"`
}

// window — счётчик запросов клиента в текущем окне.
type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter — фиксированное окно на клиента. Окна живут в go-cache и вычищаются сами.
type RateLimiter struct {
	cfg     RateLimitConfig
	windows *gocache.Cache
	mu      sync.Mutex
	now     func() time.Time
}

// NewRateLimiter создаёт лимитер.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Requests <= 0 {
		cfg.Requests = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return &RateLimiter{
		cfg:     cfg,
		windows: gocache.New(cfg.Window, 2*cfg.Window),
		now:     time.Now,
	}
}

// Allow учитывает запрос клиента key. Если лимит исчерпан, возвращает false и время до сброса окна.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if v, ok := l.windows.Get(key); ok {
		w := v.(*window)
		if now.Before(w.resetAt) {
			if w.count >= l.cfg.Requests {
				return false, w.resetAt.Sub(now)
			}
			w.count++
			return true, 0
		}
	}
	l.windows.Set(key, &window{count: 1, resetAt: now.Add(l.cfg.Window)}, l.cfg.Window)
	return true, 0
}

// Middleware ограничивает запросы с путём, начинающимся с Prefix. Превышение — 429 с retryAfter в секундах.
func (l *RateLimiter) Middleware(c *gin.Context) {
	if !strings.HasPrefix(c.Request.URL.Path, l.cfg.Prefix) {
		c.Next()
		return
	}
	key := c.ClientIP()
	if key == "" {
		key = "unknown"
	}
	ok, wait := l.Allow(key)
	if !ok {
		httpRateLimited.Inc()
		retry := int(math.Ceil(wait.Seconds()))
		c.Header("Retry-After", strconv.Itoa(retry))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Envelope{
			Success:    false,
			Error:      "Too many requests",
			RetryAfter: retry,
			Timestamp:  response.Timestamp(),
		})
		return
	}
	c.Next()
}
