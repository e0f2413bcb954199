package main

import (
	"context"
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

	"postboard/docs"
	"postboard/internal/client"
	"postboard/internal/config"
	"postboard/internal/controller"
	handlers "postboard/internal/http/handler"
	"postboard/internal/http/middleware"
	"postboard/internal/logging"
	tracing "postboard/internal/otel"
)

// @title Postboard API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	clientOpts := []client.Option{client.WithTimeout(cfg.Upstream.Timeout())}
	if cfg.MetricsEnabled {
		clientOpts = append(clientOpts, client.WithMetrics(reg))
	}
	api, err := client.New(cfg.Upstream.BaseURL, clientOpts...)
	if err != nil {
		fatal(log, "client_init_failed", err)
	}

	payloads, err := config.LoadPayloads(cfg.UI.PayloadsFile)
	if err != nil {
		fatal(log, "payloads_load_failed", err)
	}

	ctl := controller.New(api,
		controller.WithPayloads(payloads),
		controller.WithPageSize(cfg.UI.PageSize),
		controller.WithLogger(log),
	)

	// Initial load; a failure only shows up in the page's error banner.
	mountCtx, cancel := context.WithTimeout(ctx, cfg.Upstream.Timeout())
	if err := ctl.Mount(mountCtx); err == nil {
		log.Info("posts_loaded", logging.Fields{"count": len(ctl.State().Posts), "upstream": api.BaseURL()})
	}
	cancel()

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))

	if cfg.MetricsEnabled {
		prom, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			fatal(log, "metrics_init_failed", err)
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	handlers.RegisterRoutes(app, ctl)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", logging.Fields{"addr": addr, "app_host": cfg.AppHost})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fatal(log, "server_failed", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", logging.Fields{"error": err.Error()})
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", logging.Fields{"error": err.Error()})
	}
	log.Info("server_stopped", nil)
}

func fatal(log *logging.Logger, msg string, err error) {
	log.Error(msg, logging.Fields{"error": err.Error()})
	os.Exit(1)
}
