package noaa

import (
	"log/slog"
	"strings"
	"time"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
	"govdataviz/internal/ports"
)

var _ ports.INOAAClient = (*Client)(nil)

// Config — настройки NOAA Climate Data Online v2. Переменные: GOVVIZ_NOAA_*.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://www.ncdc.noaa.gov/cdo-web/api/v2"`
	Token   string        `envconfig:"API_TOKEN" default:""`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Client — клиент NOAA CDO. Токен передаётся заголовком token.
type Client struct {
	http    *upstream.Client
	baseURL string
	token   string
}

// New создаёт клиент NOAA.
func New(cfg Config, log *slog.Logger) *Client {
	return &Client{
		http:    upstream.New(domain.SourceNOAA, cfg.Timeout, log),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
	}
}

// HasKey сообщает, задан ли токен.
func (c *Client) HasKey() bool {
	return c.token != ""
}
