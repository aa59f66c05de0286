package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/air_crash_atlas/internal/config"
	"github.com/shenikar/air_crash_atlas/internal/dataset"
	v1 "github.com/shenikar/air_crash_atlas/internal/handler/http/v1"
	"github.com/shenikar/air_crash_atlas/internal/observability"
	"github.com/shenikar/air_crash_atlas/internal/prefetch"
	"github.com/shenikar/air_crash_atlas/internal/repository"
	"github.com/shenikar/air_crash_atlas/internal/service"
	"github.com/shenikar/air_crash_atlas/internal/weather"
	"github.com/shenikar/air_crash_atlas/pkg/logger"
	"github.com/shenikar/air_crash_atlas/pkg/postgres"
	redisclient "github.com/shenikar/air_crash_atlas/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/air_crash_atlas/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Air Crash Atlas API
// @version 1.0
// @description Aircraft crash dataset: filters, statistics, related crashes and weather at crash sites.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// seedDatabase импортирует JSON-набор в пустую таблицу (или всегда при DATASET_SEED=true)
func seedDatabase(ctx context.Context, cfg *config.Config, repo *repository.CrashRepository, file *dataset.FileSource, log *logrus.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 && !cfg.DatasetSeed {
		log.WithField("count", count).Info("Crash table already populated, skipping import")
		return nil
	}

	records, err := file.Load(ctx)
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, records); err != nil {
		return err
	}
	log.WithField("count", len(records)).Info("Crash dataset imported into PostgreSQL")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	metrics := observability.NewMetrics()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Источник набора данных: JSON-файл или PostgreSQL
	fileSource := dataset.NewFileSource(cfg.DatasetPath, log)
	var source service.DatasetSource = fileSource

	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		crashRepo := repository.NewCrashRepository(dbpool)
		if err := seedDatabase(ctx, cfg, crashRepo, fileSource, log); err != nil {
			log.Fatalf("Failed to import crash dataset: %v", err)
		}
		source = crashRepo
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Погода и прогрев кеша; без API-ключа погода недоступна
	var weatherProvider service.WeatherProvider
	var prefetchPublisher service.PrefetchPublisher
	var prefetchWorker *prefetch.Worker
	if cfg.WeatherEnabled() {
		client := weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL, cfg.WeatherTimeout, clockwork.NewRealClock(), log)
		cache := repository.NewWeatherCache(redisClient, cfg.WeatherCacheTTL)
		cached := weather.NewCachedProvider(client, cache, metrics, log)
		weatherProvider = cached

		if cfg.PrefetchEnabled {
			prefetchPublisher = prefetch.NewRedisPublisher(redisClient)
			prefetchWorker = prefetch.NewWorker(redisClient, cached, metrics, log, cfg.WeatherTimeout)
			prefetchWorker.Start(ctx)
		}
	} else {
		log.Warn("WEATHER_API_KEY is not set, weather lookups are disabled")
	}

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(source, weatherProvider, prefetchPublisher, metrics, log)
	if _, err := dashboardService.Reload(ctx); err != nil {
		log.Fatalf("Failed to load crash dataset: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Ждем, пока воркер прогрева вернет соединение Redis
	if prefetchWorker != nil {
		select {
		case <-prefetchWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Weather prefetch worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
