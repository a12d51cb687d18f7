package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"star-home/internal/config"
	"star-home/internal/handler"
	"star-home/internal/middleware"
	"star-home/internal/migrations"
	"star-home/internal/pkg/logger"
	"star-home/internal/repository"
	"star-home/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.LogWithContext("main", "startup")

	if envErr != nil {
		log.Info("No .env file found, using environment variables")
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if cfg.MigrationsEnabled {
		if err := migrations.Up(db.DB); err != nil {
			log.WithError(err).Fatal("Failed to apply migrations")
		}
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}
	if redis != nil {
		defer redis.Close()
	} else {
		log.Warn("REDIS_URL not set, comment tree cache disabled")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	handler.RegisterRoutes(app, handlers, services)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Error("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownLog := logger.LogWithContext("main", "shutdown")
	shutdownLog.WithFields(logrus.Fields{"timeout": cfg.ShutdownTimeout}).Info("Shutting down server")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		shutdownLog.WithError(err).Error("Forced shutdown")
	}
}
