package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/PilYeooong/nuber-eats-backend/internal/config"
	"github.com/PilYeooong/nuber-eats-backend/internal/logger"
	"github.com/PilYeooong/nuber-eats-backend/internal/router"
	"github.com/PilYeooong/nuber-eats-backend/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps.PaymentService.StartPromotionSweep(ctx, cfg.Public.PromotionSweepInterval.Std())

	r := router.New(deps)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Public.Port),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		logger.Log.Info("shutting down server")
		server.Shutdown(context.Background())
	}()

	logger.Log.Info("server started", "port", cfg.Public.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
