package census

import (
	"log/slog"
	"strings"
	"time"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
	"govdataviz/internal/ports"
)

var _ ports.ICensusClient = (*Client)(nil)

// Config — настройки Census Data API. Переменные: GOVVIZ_CENSUS_*.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.census.gov/data"`
	APIKey  string        `envconfig:"API_KEY" default:""`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Client — клиент Census Data API.
type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
}

// New создаёт клиент Census.
func New(cfg Config, log *slog.Logger) *Client {
	return &Client{
		http:    upstream.New(domain.SourceCensus, cfg.Timeout, log),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// HasKey сообщает, задан ли API-ключ.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}
