package eia

import (
	"log/slog"
	"strings"
	"time"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
	"govdataviz/internal/ports"
)

var _ ports.IEIAClient = (*Client)(nil)

// PageLength — сколько записей запрашивается у EIA за раз.
const PageLength = 100

// Config — настройки EIA API v2. Переменные: GOVVIZ_EIA_*.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.eia.gov/v2"`
	APIKey  string        `envconfig:"API_KEY" default:""`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Client — клиент EIA API v2.
type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
}

// New создаёт клиент EIA.
func New(cfg Config, log *slog.Logger) *Client {
	return &Client{
		http:    upstream.New(domain.SourceEIA, cfg.Timeout, log),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// HasKey сообщает, задан ли API-ключ.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}
