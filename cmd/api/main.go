package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"faultapi/internal/config"
	"faultapi/internal/database"
	"faultapi/internal/database/migration"
	"faultapi/internal/fixture"
	handlers "faultapi/internal/http/handler"
	"faultapi/internal/http/middleware"
	"faultapi/internal/otel"
	sqliterepo "faultapi/internal/repository/sqlite"
	"faultapi/internal/service"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Resolve the enabled fixture endpoints; a typo in the list is a startup failure
	endpoints, err := fixture.Parse(cfg.Endpoints)
	if err != nil {
		log.Fatalf("invalid fixture endpoint list: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (noop when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize the embedded sqlite database backing the overflow endpoint
	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	msgRepo := sqliterepo.NewMessageSQLite(db)
	msgSvc := service.NewMessageService(msgRepo)

	// No recover middleware is installed anywhere in this app. A panicking
	// handler takes its connection (or the process) down with it; observing
	// that failure from the outside is the service's entire purpose.
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register fixture endpoints and service routes
	if err := handlers.RegisterRoutes(app, db, msgSvc, cfg.ListenAddr(), endpoints); err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}

	// Bind failure is fatal by design: no retry, no backoff
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
