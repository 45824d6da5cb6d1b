package bls

import (
	"log/slog"
	"strings"
	"time"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
	"govdataviz/internal/ports"
)

var _ ports.IBLSClient = (*Client)(nil)

// Config — настройки BLS API. Переменные: GOVVIZ_BLS_BASE_URL, GOVVIZ_BLS_API_KEY, GOVVIZ_BLS_TIMEOUT.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.bls.gov/publicAPI/v2"`
	APIKey  string        `envconfig:"API_KEY" default:""`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Client — клиент BLS Public Data API v2.
type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
	log     *slog.Logger
}

// New создаёт клиент BLS.
func New(cfg Config, log *slog.Logger) *Client {
	return &Client{
		http:    upstream.New(domain.SourceBLS, cfg.Timeout, log),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		log:     log,
	}
}

// HasKey сообщает, задан ли ключ регистрации.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}
