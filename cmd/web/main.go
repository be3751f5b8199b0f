package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-inventory-web/internal/client"
	"go-inventory-web/internal/config"
	"go-inventory-web/internal/handler"
	"go-inventory-web/internal/middleware"
	"go-inventory-web/internal/service"
	"go-inventory-web/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Backend API client
	backend := client.New(cfg.APIBaseURL)

	// 3. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(backend, log)
	orderService := service.NewOrderService(backend)

	productHandler := handler.NewProductHandler(invService, log)
	orderHandler := handler.NewOrderHandler(orderService, invService, log)

	// 4. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		Views:   view.Engine(),
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(middleware.Metrics(registry))

	// 6. Routes
	handler.RegisterRoutes(app, productHandler, orderHandler)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root: view.Static(),
	}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// 7. Start + Graceful Shutdown
	go func() {
		log.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"backend": cfg.APIBaseURL,
		}).Info("Starting inventory web client")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
