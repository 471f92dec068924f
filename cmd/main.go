package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/homescout/listing-service/internal/app"
	"github.com/homescout/listing-service/internal/config"
	"github.com/homescout/listing-service/internal/controllers"
	"github.com/homescout/listing-service/internal/routes"
	"github.com/homescout/listing-service/internal/services"
	"github.com/homescout/listing-service/internal/utils"
	"github.com/homescout/listing-service/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	utils.SetLogLevel(cfg.LogLevel)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	if err := run(cfg, stop); err != nil {
		utils.Logger.WithError(err).Error("listing-service stopped")
		os.Exit(1)
	}
}

// run wires the service and serves until stop fires or the listener fails.
// Storage and the cron scheduler are released before it returns.
func run(cfg *config.Config, stop <-chan os.Signal) error {
	application, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("initialize listing-service: %w", err)
	}
	defer application.Close()

	unitService := services.NewUnitService(cfg, application.Repos)
	catalogService := services.NewCatalogService(application.Repos)
	statsService := services.NewStatsService(application.Repos)

	if cfg.SeedDBWithTestData {
		if err := app.SeedAllTestData(context.Background(), application.Repos, unitService); err != nil {
			return fmt.Errorf("seed test data: %w", err)
		}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("parse page templates: %w", err)
	}

	router := routes.NewRouter(routes.Controllers{
		Health:  controllers.NewHealthController(application),
		Units:   controllers.NewUnitsController(unitService),
		Catalog: controllers.NewCatalogController(catalogService),
		Web:     controllers.NewWebController(unitService, renderer),
	})

	c := cron.New()
	if cfg.StatsCron != "" {
		_, statsErr := c.AddFunc(cfg.StatsCron, func() {
			if _, e := statsService.RunInventoryReport(context.Background()); e != nil {
				utils.Logger.WithError(e).Error("Scheduled inventory report failed")
			}
		})
		if statsErr != nil {
			return fmt.Errorf("schedule inventory report cron: %w", statsErr)
		}
	}
	c.Start()
	defer c.Stop()

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", utils.HeaderRequestID},
		ExposedHeaders: []string{utils.HeaderRequestID},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           co.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listing-service failed to start: %w", err)
		}
		return nil
	case <-stop:
	}

	utils.Logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
