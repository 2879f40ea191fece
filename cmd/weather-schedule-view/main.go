package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-schedule-view/internal/api/http"
	"github.com/i474232898/weather-schedule-view/internal/config"
	"github.com/i474232898/weather-schedule-view/internal/render"
	"github.com/i474232898/weather-schedule-view/internal/scheduler"
	"github.com/i474232898/weather-schedule-view/internal/store"
	"github.com/i474232898/weather-schedule-view/internal/viewstate"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Static schedule and the tab state machine on top of it.
	schedule := store.NewScheduleStore()
	ctrl := viewstate.NewController(schedule)
	if !cfg.InitialScreen.Equal(ctrl.State().Selected) {
		ctrl.SelectScreen(cfg.InitialScreen)
	}

	// Compositor follows the view state and is driven by the frame clock.
	comp := render.NewCompositor(ctrl.Store())
	defer comp.Close()

	clock := scheduler.New(cfg.FrameInterval, comp)
	if err := clock.Start(); err != nil {
		log.Fatalf("failed to start frame clock: %v", err)
	}
	defer clock.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-schedule-view",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
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

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-schedule-view",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Schedule:      schedule,
		Controller:    ctrl,
		Compositor:    comp,
		SelectLimiter: httpapi.NewSelectLimiter(cfg.SelectRate, cfg.SelectBurst),
	})

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
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
