package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"stockwatch-go-api/internal/config"
	"stockwatch-go-api/internal/directory"
	"stockwatch-go-api/internal/handlers"
	"stockwatch-go-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logging; level comes from LOG_LEVEL
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	// Initialize services
	dir := directory.New()
	quoteService := services.NewQuoteService(cfg, log)
	portfolioService := services.NewPortfolioService(dir, quoteService)

	// Initialize handlers
	pathStore := handlers.NewPathStore()
	marketHandler := handlers.NewMarketHandler(dir, quoteService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, pathStore)
	healthHandler := handlers.NewHealthHandler()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		StrictRouting: true,
		CaseSensitive: true,
		ServerHeader:  "StockWatch-API",
		AppName:       "StockWatch v1.0",
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 60,
		BodyLimit:     4 * 1024 * 1024, // 4MB
		ErrorHandler:  handlers.CustomErrorHandler,
	})

	// Middleware stack
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       3600,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "StockWatch API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	app.Get("/health", healthHandler.Health)
	app.Get("/health/ready", healthHandler.Ready)

	api := app.Group("/api")
	api.Get("/prices", marketHandler.Prices)
	api.Get("/stocks", marketHandler.Stocks)
	api.Get("/detailed/:name", marketHandler.Detailed)
	api.Post("/set-excel-path", portfolioHandler.SetExcelPath)
	api.Get("/portfolio-data", portfolioHandler.PortfolioData)
	api.Get("/portfolio-with-live-prices", portfolioHandler.PortfolioWithLivePrices)
	api.Get("/historical/:symbol", marketHandler.Historical)

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("stockwatch API started")
	log.Info().Int("securities", dir.Len()).Msg("watch-list loaded")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server shutdown complete")
}
