package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"portfolioapi/docs"
	"portfolioapi/internal/config"
	handlers "portfolioapi/internal/http/handler"
	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/logger"
	"portfolioapi/internal/otel"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Tomiwa Portfolio API
// @version 1.0.0
// @description Portfolio content and contact form backend.
// @BasePath /api
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Loc:    logger.LoadLocation(cfg.Log.Timezone),
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.AppConfig, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error().Err(err).Msg("tracer shutdown failed")
		}
	}()

	store, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("store close failed")
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("store connection closed")
	}()
	log.Info().Str("driver", cfg.Store.Driver).Msg("store connected")

	deps := handlers.Deps{
		Store:     store,
		Portfolio: service.NewPortfolioService(store.Clients(), service.WithLogger(log)),
		Contact:   service.NewContactService(store.Contacts(), service.WithLogger(log)),
	}

	// Object storage is optional; without it the image routes are not registered.
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return err
		}
		deps.Images = service.NewImageService(objStore, cfg.APIPrefix+handlers.ImagesPath)
		log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("image storage enabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := newApp(cfg, log, deps, promMiddleware, reg)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("prefix", cfg.APIPrefix).Msg("http server listening")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func newApp(cfg *config.AppConfig, log zerolog.Logger, deps handlers.Deps, prom *middleware.PrometheusMiddleware, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "portfolio-api",
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	// Order matters: the access logger renders errors through ErrorHandler, so
	// the metrics and span recorded around it see the final status.
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())
	app.Use(otelfiber.Middleware())
	app.Use(prom.Handler())
	app.Use(middleware.Logger(log))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	basePath := swaggerBasePath(cfg.APIPrefix)
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		docs.SwaggerInfo.BasePath = basePath

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, cfg.APIPrefix, deps)
	return app
}

// swaggerBasePath maps the API prefix to the document's basePath.
func swaggerBasePath(prefix string) string {
	if prefix == "" {
		return "/"
	}
	return prefix
}
