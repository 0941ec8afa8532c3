package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/gaia_guard/internal/alert"
	"github.com/shenikar/gaia_guard/internal/cache"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/shenikar/gaia_guard/internal/environment"
	v1 "github.com/shenikar/gaia_guard/internal/handler/http/v1"
	"github.com/shenikar/gaia_guard/internal/provider"
	"github.com/shenikar/gaia_guard/internal/recommendation"
	"github.com/shenikar/gaia_guard/internal/repository"
	"github.com/shenikar/gaia_guard/internal/service"
	"github.com/shenikar/gaia_guard/internal/webhook"
	"github.com/shenikar/gaia_guard/pkg/logger"
	"github.com/shenikar/gaia_guard/pkg/postgres"
	redisclient "github.com/shenikar/gaia_guard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/gaia_guard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title GaiaGuard API
// @version 1.0
// @description Land degradation monitoring API: environmental readings, degradation assessment and alerts.
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

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// storage - репозитории выбранного драйвера и функция освобождения ресурсов
type storage struct {
	land      service.LandRepository
	favorites service.FavoriteRepository
	close     func()
}

func setupStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("could not create sqlite directory: %w", err)
			}
		}
		db, err := repository.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite: %w", err)
		}
		log.Infof("Using SQLite storage at %s", cfg.SQLitePath)
		return &storage{
			land:      repository.NewSQLiteLandRepository(db),
			favorites: repository.NewSQLiteFavoriteRepository(db),
			close:     func() { _ = db.Close() },
		}, nil
	default:
		// Запуск миграций
		if err := runMigrations(cfg, log); err != nil {
			return nil, err
		}
		// Подключение к PostgreSQL
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		return &storage{
			land:      repository.NewLandRepository(dbpool),
			favorites: repository.NewFavoriteRepository(dbpool),
			close:     dbpool.Close,
		}, nil
	}
}

func newVegetationSource(cfg *config.Config) environment.VegetationSource {
	if cfg.Providers.VegetationProvider == config.VegetationProviderMODIS {
		return provider.NewMODISClient(cfg.Providers)
	}
	return provider.NewSentinelClient(cfg.Providers)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := setupStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.close()

	// Redis нужен для кэша показаний и очереди вебхуков
	var (
		redisClient      *redis.Client
		webhookPublisher webhook.WebhookPublisher
		cacheStore       cache.Store = cache.NewMemoryStore()
	)
	if cfg.CacheBackend == config.CacheBackendRedis || cfg.WebhookURL != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		if cfg.CacheBackend == config.CacheBackendRedis {
			cacheStore = cache.NewRedisStore(redisClient)
		}

		if cfg.WebhookURL != "" {
			// Инициализация издателя вебхуков
			webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)

			// Инициализация и запуск воркера вебхуков
			webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
			webhookWorker.Start(ctx)
		}
	}
	readingsCache := cache.NewReadingsCache(cacheStore, cfg.Fallback.CacheTTL, log)

	// Внешние провайдеры
	fetcher := environment.NewFetcher(newVegetationSource(cfg), provider.NewOpenWeatherClient(cfg.Providers), cfg.Fallback, log)
	generator := recommendation.NewGenerator(provider.NewLLMClient(cfg.Providers), log)
	dispatcher := alert.NewDispatcher(provider.NewTwilioClient(cfg.Providers), store.land, log)

	// Инициализация сервисов
	landService := service.NewLandService(store.land, readingsCache, fetcher, generator, dispatcher, webhookPublisher, log, cfg)
	favoriteService := service.NewFavoriteService(store.favorites, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(landService, favoriteService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	cancel()

	log.Info("Server gracefully stopped")
}
