package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	configs, err := cmd.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := cmd.NewLogger(configs.Log, os.Stdout)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs.DB)

	app, err := cmd.NewCompositionRoot(ctx, *configs, gormDB, appLogger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			appLogger.Error("close outbound clients", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("create router: %v", err)
	}

	go func() {
		appLogger.Info("http server listening", "address", configs.HTTP.Address())
		if err := e.Start(configs.HTTP.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http server shutdown", "error", err)
	}
}

func mustGormOpen(cfg cmd.DBConfig) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm\n: %s", err)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
	return gormDB
}
