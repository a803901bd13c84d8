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
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"

	"github.com/shenikar/rescue_pulse/internal/config"
	v1 "github.com/shenikar/rescue_pulse/internal/handler/http/v1"
	"github.com/shenikar/rescue_pulse/internal/location"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/repository"
	"github.com/shenikar/rescue_pulse/internal/service"
	"github.com/shenikar/rescue_pulse/internal/webhook"
	"github.com/shenikar/rescue_pulse/pkg/logger"
	"github.com/shenikar/rescue_pulse/pkg/postgres"
	redisclient "github.com/shenikar/rescue_pulse/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/rescue_pulse/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type flags struct {
	envFile       string
	migrate       bool
	migrationsDir string
	lat           float64
	lng           float64
	hasLocation   bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	flagSet := pflag.NewFlagSet("rescue-pulse", pflag.ContinueOnError)
	flagSet.StringVar(&f.envFile, "env-file", "", "path to a .env file (default: .env if present)")
	flagSet.BoolVar(&f.migrate, "migrate", false, "apply database migrations before start")
	flagSet.StringVar(&f.migrationsDir, "migrations", "migrations", "directory with SQL migrations")
	flagSet.Float64Var(&f.lat, "lat", 0, "initial latitude of the user")
	flagSet.Float64Var(&f.lng, "lng", 0, "initial longitude of the user")

	if err := flagSet.Parse(args); err != nil {
		return f, err
	}
	f.hasLocation = flagSet.Changed("lat") || flagSet.Changed("lng")
	return f, nil
}

func runMigrations(cfg *config.Config, dir string, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New("file://"+dir, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// @title Rescue Pulse API
// @version 1.0
// @description Real-time emergency help requests: publish, respond, resolve.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logrus.Fatalf("Failed to parse flags: %v", err)
	}

	// Загрузка конфигурации
	var envFiles []string
	if f.envFile != "" {
		envFiles = append(envFiles, f.envFile)
	}
	cfg, err := config.LoadConfig(envFiles...)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if f.migrate || cfg.MigrateOnStart {
		if err := runMigrations(cfg, f.migrationsDir, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозитория
	alertRepo := repository.NewAlertRepository(dbpool, log)

	// Координаты приходят через PUT /location, флаги задают стартовую точку
	tracker := location.NewTracker(nil, log)
	if f.hasLocation {
		start := models.Coordinates{Lat: f.lat, Lng: f.lng}
		if !start.Valid() {
			log.Fatalf("Invalid initial location: %v", start)
		}
		tracker.Update(start)
	}

	// Инициализация сессии
	user := models.User{ID: cfg.UserID, Name: cfg.UserName, Avatar: cfg.UserAvatar}
	session, err := service.NewSession(user, alertRepo, tracker, webhookPublisher, cfg, log)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	session.Start(ctx)
	defer session.Close()

	// Инициализация хэндлеров
	handler := v1.NewHandler(session, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Фоновые задачи останавливаются до закрытия Redis и пула
	cancel()
	session.Close()
	webhookWorker.Wait()

	log.Info("Server gracefully stopped")
}
