package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "govdataviz/internal/api/http"
	blsController "govdataviz/internal/api/http/controllers/bls"
	censusController "govdataviz/internal/api/http/controllers/census"
	"govdataviz/internal/api/http/controllers/charts"
	"govdataviz/internal/api/http/controllers/data"
	eiaController "govdataviz/internal/api/http/controllers/eia"
	fredController "govdataviz/internal/api/http/controllers/fred"
	noaaController "govdataviz/internal/api/http/controllers/noaa"
	"govdataviz/internal/api/http/controllers/system"
	"govdataviz/internal/api/http/middlewares"
	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/bls"
	"govdataviz/internal/infrastructure/census"
	"govdataviz/internal/infrastructure/click"
	"govdataviz/internal/infrastructure/eia"
	"govdataviz/internal/infrastructure/fred"
	"govdataviz/internal/infrastructure/kafka"
	"govdataviz/internal/infrastructure/mongo"
	"govdataviz/internal/infrastructure/noaa"
	"govdataviz/internal/infrastructure/noop"
	"govdataviz/internal/infrastructure/pg"
	"govdataviz/internal/pkg/logger"
	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/analytics"
	blsUsecase "govdataviz/internal/usecase/bls"
	"govdataviz/internal/usecase/catalog"
	censusUsecase "govdataviz/internal/usecase/census"
	"govdataviz/internal/usecase/chart"
	eiaUsecase "govdataviz/internal/usecase/eia"
	"govdataviz/internal/usecase/fetcher"
	fredUsecase "govdataviz/internal/usecase/fred"
	noaaUsecase "govdataviz/internal/usecase/noaa"
)

// App — приложение: конфиг, логгер и список функций закрытия ресурсов.
type App struct {
	cfg     Config
	log     *slog.Logger
	closers []func() error
}

// New создаёт приложение с конфигом (подключения открываются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает инфраструктуру, инициализирует зависимости и запускает HTTP-сервер (блокирующий вызов).
// Выключенные части инфраструктуры (GOVVIZ_*_ENABLED=false) заменяются заглушками из noop.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log = logger.New(a.cfg.Log)
	slog.SetDefault(a.log)
	defer a.close()

	checks := map[string]system.Checker{}

	cache, err := OpenCache(ctx, a.cfg, a.log)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	a.closers = append(a.closers, cache.Close)
	if cache.Redis != nil {
		checks["redis"] = cache.Redis
	}

	fetchLog, err := a.fetchLog(ctx, checks)
	if err != nil {
		return err
	}
	datasets, err := a.datasets(ctx, checks)
	if err != nil {
		return err
	}
	writer, err := a.analytics(ctx, checks)
	if err != nil {
		return err
	}
	producer := a.producer(ctx, writer)

	f := fetcher.New(cache.Store, fetchLog, producer, a.log)

	blsClient := bls.New(a.cfg.BLS, a.log)
	fredClient := fred.New(a.cfg.FRED, a.log)
	censusClient := census.New(a.cfg.Census, a.log)
	eiaClient := eia.New(a.cfg.EIA, a.log)
	noaaClient := noaa.New(a.cfg.NOAA, a.log)

	blsUC := blsUsecase.New(blsClient, f, datasets, a.log)
	fredUC := fredUsecase.New(fredClient, f, a.log)
	censusUC := censusUsecase.New(censusClient, f, a.log)
	eiaUC := eiaUsecase.New(eiaClient, f, datasets, a.log)
	noaaUC := noaaUsecase.New(noaaClient, f, a.log)

	// BLS и Census отвечают и без ключа, остальным источникам он обязателен.
	available := map[string]bool{
		domain.SourceBLS:    true,
		domain.SourceCensus: true,
		domain.SourceFRED:   fredClient.HasKey(),
		domain.SourceEIA:    eiaClient.HasKey(),
		domain.SourceNOAA:   noaaClient.HasKey(),
	}
	catalogUC := catalog.New(fredUC, fetchLog, datasets, available, a.log)

	srv := apihttp.NewServer(a.cfg.Server, middlewares.NewRateLimiter(a.cfg.RateLimit), a.log)
	srv.AddController(
		system.New(checks, a.log),
		blsController.New(blsUC, a.log),
		fredController.New(fredUC, a.log),
		censusController.New(censusUC, a.log),
		eiaController.New(eiaUC, a.log),
		noaaController.New(noaaUC, a.log),
		data.New(catalogUC, a.log),
		charts.New(chart.New(a.log), a.log),
	)

	a.log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"cache", a.cfg.Cache.Backend,
		"sources", available)
	return srv.Start(ctx)
}

// fetchLog возвращает журнал обращений: PostgreSQL, если включён, иначе заглушку.
func (a *App) fetchLog(ctx context.Context, checks map[string]system.Checker) (ports.IFetchLogRepository, error) {
	if !a.cfg.PG.Enabled {
		return noop.FetchLog{}, nil
	}
	db, err := pg.New(ctx, &a.cfg.PG)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	if err := pg.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	repo := pg.NewFetchLogRepo(db, a.log)
	checks["postgres"] = repo
	return repo, nil
}

// datasets возвращает хранилище снимков рядов: MongoDB, если включена, иначе заглушку.
func (a *App) datasets(ctx context.Context, checks map[string]system.Checker) (ports.IDatasetRepository, error) {
	if !a.cfg.Mongo.Enabled {
		return noop.Datasets{}, nil
	}
	cli, err := mongo.New(ctx, &a.cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}
	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return cli.Close(ctx)
	})
	repo := mongo.NewDatasetRepo(cli, a.log)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	checks["mongo"] = repo
	return repo, nil
}

// analytics возвращает приёмник событий обращений: ClickHouse, если включён, иначе заглушку.
func (a *App) analytics(ctx context.Context, checks map[string]system.Checker) (ports.IFetchAnalytics, error) {
	if !a.cfg.ClickHouse.Enabled {
		return noop.Analytics{}, nil
	}
	cli, err := click.New(ctx, &a.cfg.ClickHouse)
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	a.closers = append(a.closers, cli.Close)
	w := click.NewFetchEventWriter(cli)
	if err := w.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse table: %w", err)
	}
	checks["clickhouse"] = cli
	return w, nil
}

// producer возвращает продюсера событий обращений. При включённой Kafka запускает
// консьюмера, который переносит события в аналитику.
func (a *App) producer(ctx context.Context, writer ports.IFetchAnalytics) ports.IProducer {
	if !a.cfg.Kafka.Enabled {
		return noop.Producer{}
	}
	p := kafka.NewProducer(&a.cfg.Kafka)
	a.closers = append(a.closers, p.Close)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, analytics.New(writer, a.log), a.log)
	a.closers = append(a.closers, consumer.Close)
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error("fetch event consumer failed", "error", err)
		}
	}()
	return p
}

// close закрывает ресурсы в обратном порядке открытия.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
}
