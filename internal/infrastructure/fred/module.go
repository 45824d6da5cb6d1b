package fred

import (
	"log/slog"
	"strings"
	"time"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
	"govdataviz/internal/ports"
)

var _ ports.IFREDClient = (*Client)(nil)

// Config — настройки FRED API. Переменные: GOVVIZ_FRED_BASE_URL, GOVVIZ_FRED_API_KEY, GOVVIZ_FRED_TIMEOUT.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.stlouisfed.org/fred"`
	APIKey  string        `envconfig:"API_KEY" default:""`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Client — клиент FRED API.
type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
}

// New создаёт клиент FRED.
func New(cfg Config, log *slog.Logger) *Client {
	return &Client{
		http:    upstream.New(domain.SourceFRED, cfg.Timeout, log),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// HasKey сообщает, задан ли API-ключ.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}
