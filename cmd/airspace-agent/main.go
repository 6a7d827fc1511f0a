package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/skysense/airspace-agent/internal/agent"
	httpapi "github.com/skysense/airspace-agent/internal/api/http"
	"github.com/skysense/airspace-agent/internal/config"
	"github.com/skysense/airspace-agent/internal/flight"
	"github.com/skysense/airspace-agent/internal/scheduler"
	"github.com/skysense/airspace-agent/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound completion calls.
	httpClient := &http.Client{
		Timeout: cfg.GenerateTimeout,
	}

	// File-backed snapshot store and the flight data service over it.
	snapStore := store.NewSnapshotStore(cfg.SnapshotsDir, cfg.Regions)
	flights := flight.NewService(snapStore)

	// Completion backend client, constructed once here and injected; the
	// narration layer never reaches for hidden global state.
	groq := agent.NewGroqClient(httpClient, cfg.GroqAPIKey, cfg.GroqModel, cfg.GenerateTimeout)
	narrator := agent.NewNarrator(groq)
	router := agent.NewRouter(flights, narrator, cfg.MaxSample)

	// Periodic snapshot freshness sweep.
	monitor := scheduler.New(flights, cfg.FreshnessInterval)
	if err := monitor.Start(); err != nil {
		log.Fatalf("failed to start freshness monitor: %v", err)
	}
	defer monitor.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "airspace-agent",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware; CORS is open for the browser front-end.
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Liveness and service metadata endpoints.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":              "ok",
			"message":             "Airspace agent API is running",
			"snapshots_directory": cfg.SnapshotsDir,
			"available_regions":   flights.Regions(),
			"freshness":           monitor.Freshness(),
			"endpoints": fiber.Map{
				"health":             "/health",
				"flights_by_region":  "/flights/region/{region}",
				"flight_by_callsign": "/flights/{callsign}?region={region}",
				"alerts":             "/alerts/active",
				"traveler_query":     "POST /traveler/query",
				"ops_analyze":        "POST /ops/analyze",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "airspace-agent",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, flights, router)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
