package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/projecthub-backend/internal/cache"
	"github.com/ignatzorin/projecthub-backend/internal/config"
	"github.com/ignatzorin/projecthub-backend/internal/db"
	httpHandlers "github.com/ignatzorin/projecthub-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/projecthub-backend/internal/http/router"
	"github.com/ignatzorin/projecthub-backend/internal/logger"
	"github.com/ignatzorin/projecthub-backend/internal/metrics"
	"github.com/ignatzorin/projecthub-backend/internal/repository"
	"github.com/ignatzorin/projecthub-backend/internal/service"
	"github.com/ignatzorin/projecthub-backend/internal/ws"
)

const sessionCleanupInterval = time.Minute

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.InitForEnv(cfg.Env)
	mainLog := logger.WithComponent("main")

	// Подключение к базе и миграции (только если база настроена).
	var dbConn *sqlx.DB
	var projectRepo *repository.ProjectRepository
	if cfg.UsesPostgres() {
		dbConn, err = db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLog.Fatalf("ошибка подключения к базе: %v", err)
		}
		defer safeClose(dbConn)

		if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
			mainLog.Fatalf("ошибка миграций: %v", err)
		}
		projectRepo = repository.NewProjectRepository(dbConn)
	}

	// Каталог загружается один раз; дальше он только читается.
	var lister service.ProjectLister
	if projectRepo != nil {
		lister = projectRepo
	}
	catalog, err := service.LoadCatalog(ctx, cfg.CatalogSource, lister)
	if err != nil {
		mainLog.Fatalf("ошибка загрузки каталога: %v", err)
	}

	// Хранилище сессий: Redis, если настроен, иначе память процесса.
	var sessions repository.SessionRepository
	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			mainLog.Fatalf("ошибка подключения к redis: %v", err)
		}
		sessions = repository.NewRedisSessionRepository(redisClient, cfg.SessionTTL)
	} else {
		sessions = repository.NewMemorySessionRepository(cache.New(ctx, sessionCleanupInterval), cfg.SessionTTL)
	}

	// Вебсокеты.
	hub := ws.NewHub()
	go hub.Run(ctx)

	discoveryOpts := service.DiscoveryOptions{FeaturedSeed: cfg.FeaturedSeed}
	if projectRepo != nil {
		discoveryOpts.Projects = projectRepo
	}
	discoveryService := service.NewDiscoveryService(catalog, sessions, hub, metrics.NewDiscovery(), discoveryOpts)

	// HTTP хэндлеры.
	var seedHandler *httpHandlers.SeedHandler
	if projectRepo != nil {
		seedHandler = httpHandlers.NewSeedHandler(service.NewSeedService(projectRepo))
	}

	engine := httpRouter.SetupRouter(
		cfg,
		httpHandlers.NewHealthHandler(dbConn, redisClient),
		httpHandlers.NewProjectHandler(discoveryService),
		httpHandlers.NewCatalogHandler(discoveryService),
		httpHandlers.NewDiscoveryHandler(discoveryService),
		httpHandlers.NewWSHandler(hub, discoveryService),
		seedHandler,
		redisClient,
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			mainLog.Errorf("ошибка остановки http сервера: %v", err)
		}
	}()

	mainLog.WithField("port", cfg.HTTPPort).
		WithField("catalog_source", cfg.CatalogSource).
		WithField("projects", catalog.Len()).
		Info("HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		mainLog.Fatalf("сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.WithComponent("main").Errorf("ошибка закрытия базы: %v", err)
	}
}
