package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"prepcenter/cmd"
	httpin "prepcenter/internal/adapters/in/http"
	"prepcenter/internal/adapters/out/kafka"
	"prepcenter/internal/adapters/out/postgres"
	"prepcenter/internal/adapters/out/postgres/feed"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/metrics"
	"prepcenter/internal/pkg/resilience"
	"prepcenter/internal/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.Initialize(ctx, tracing.Config{
		ServiceName:  "prepcenter",
		OTLPEndpoint: configs.OTLPEndpoint,
		SampleRate:   1.0,
		Enabled:      configs.TracingEnabled,
	})
	if err != nil {
		log.Fatalf("Failed to initialise tracing: %v", err)
	}

	gormDB := mustGormOpen(configs.DSN())
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	m := metrics.New(metrics.DefaultConfig())
	app := cmd.NewCompositionRoot(configs, gormDB, m, logger)

	hub := feed.NewHub(logger)
	go func() {
		if err := hub.Listen(ctx, configs.DSN()); err != nil {
			logger.Error("inbox listener stopped", "error", err)
		}
	}()

	var publisher ports.NotificationPublisher
	if brokers := configs.Brokers(); len(brokers) > 0 {
		kafkaPublisher := kafka.NewNotificationPublisher(
			kafka.DefaultConfig(brokers, configs.KafkaNotificationsTopic),
			resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("kafka"), logger, m),
		)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("failed to close kafka publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
	} else {
		logger.Warn("KAFKA_BROKERS not set, notification relay disabled")
	}

	jobManager := app.CreateJobManager(publisher)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	server := httpin.NewServer(app.CreateHTTPHandlers(), hub, m, logger)
	e, err := httpin.NewRouter(server, httpin.RouterConfig{
		JWTSecret: []byte(configs.JWTSecret),
		Metrics:   m,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}

	go func() {
		logger.Info("http server starting", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err = tp.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		DBHost:                  getEnv("DB_HOST", ""),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  getEnv("DB_USER", ""),
		DBPassword:              getEnv("DB_PASSWORD", ""),
		DBName:                  getEnv("DB_NAME", ""),
		DBSslMode:               getEnv("DB_SSLMODE", "disable"),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		KafkaBrokers:            getEnv("KAFKA_BROKERS", ""),
		KafkaNotificationsTopic: getEnv("KAFKA_NOTIFICATIONS_TOPIC", "prepcenter.notifications"),
		TracingEnabled:          getEnv("OTEL_ENABLED", "false") == "true",
		OTLPEndpoint:            getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		RelaySchedule:           getEnv("RELAY_SCHEDULE", "*/5 * * * * *"),
		LoadAuditSchedule:       getEnv("LOAD_AUDIT_SCHEDULE", "0 */10 * * * *"),
		StaleTaskSchedule:       getEnv("STALE_TASK_SCHEDULE", "0 0 * * * *"),
		StaleTaskThreshold:      mustDuration("STALE_TASK_THRESHOLD", "4h"),
		RelayBatchSize:          mustInt("RELAY_BATCH_SIZE", "100"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func mustDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func mustInt(key, fallback string) int {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB
}
