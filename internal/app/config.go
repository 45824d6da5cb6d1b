package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"govdataviz/internal/api/http"
	"govdataviz/internal/api/http/middlewares"
	"govdataviz/internal/infrastructure/bls"
	"govdataviz/internal/infrastructure/census"
	"govdataviz/internal/infrastructure/click"
	"govdataviz/internal/infrastructure/eia"
	"govdataviz/internal/infrastructure/filecache"
	"govdataviz/internal/infrastructure/fred"
	"govdataviz/internal/infrastructure/kafka"
	"govdataviz/internal/infrastructure/mongo"
	"govdataviz/internal/infrastructure/noaa"
	"govdataviz/internal/infrastructure/pg"
	"govdataviz/internal/infrastructure/redis"
	"govdataviz/internal/pkg/logger"
)

const AppName = "GOVVIZ"

// Бэкенды кэша.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// CacheConfig — выбор хранилища кэша. Переменные: GOVVIZ_CACHE_BACKEND (file|redis), GOVVIZ_CACHE_FILE.
type CacheConfig struct {
	Backend string `envconfig:"BACKEND" default:"file"`
	filecache.Config
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом GOVVIZ.
type Config struct {
	Server     http.ServerConfig           `envconfig:"SERVER"`
	Log        logger.Config               `envconfig:"LOG"`
	Cache      CacheConfig                 `envconfig:"CACHE"`
	RateLimit  middlewares.RateLimitConfig `envconfig:"RATE_LIMIT"`
	BLS        bls.Config                  `envconfig:"BLS"`
	FRED       fred.Config                 `envconfig:"FRED"`
	Census     census.Config               `envconfig:"CENSUS"`
	EIA        eia.Config                  `envconfig:"EIA"`
	NOAA       noaa.Config                 `envconfig:"NOAA"`
	Redis      redis.Config                `envconfig:"REDIS"`
	PG         pg.Config                   `envconfig:"PG"`
	Mongo      mongo.Config                `envconfig:"MONGO"`
	Kafka      kafka.Config                `envconfig:"KAFKA"`
	ClickHouse click.Config                `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Без аргументов читается .env из текущего каталога.
func LoadCfg(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
