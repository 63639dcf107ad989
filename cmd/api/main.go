package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/tutoring_api/internal/app"
	"github.com/Freeeeeet/tutoring_api/internal/config"
	"github.com/Freeeeeet/tutoring_api/internal/controller"
	"github.com/Freeeeeet/tutoring_api/internal/controller/handlers"
	"github.com/Freeeeeet/tutoring_api/internal/migrations"
	"github.com/Freeeeeet/tutoring_api/internal/repository"
	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	logger.Info("Starting tutoring API",
		zap.String("environment", cfg.Environment),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := app.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Репозитории
	tutorRepo := repository.NewTutorRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// Сервисы
	tutorService := service.NewTutorService(tutorRepo, logger)
	bookingService := service.NewBookingService(bookingRepo, logger)
	taskService := service.NewTaskService(taskRepo, logger)
	planService := service.NewPlanService(service.SystemClock, logger)

	h := handlers.NewHandlers(tutorService, bookingService, taskService, planService, logger)
	server := controller.NewServer(cfg.Addr(), cfg.CORSOrigins, h, logger)

	monitor := app.NewPoolMonitor(app.PgxPoolStats(pool), cfg.PoolStatsInterval, logger)
	monitor.Start(ctx)
	defer monitor.Stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to stop HTTP server", zap.Error(err))
	}

	logger.Info("Tutoring API stopped")
}

// migrate накатывает эталонную схему из internal/migrations
func migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Run(ctx)
}
