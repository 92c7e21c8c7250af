package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/kawaf/petcafe-service/internal/api/http"
	"github.com/kawaf/petcafe-service/internal/api/http/handlers"
	"github.com/kawaf/petcafe-service/internal/cache"
	"github.com/kawaf/petcafe-service/internal/config"
	"github.com/kawaf/petcafe-service/internal/events"
	"github.com/kawaf/petcafe-service/internal/observability"
	"github.com/kawaf/petcafe-service/internal/persistence"
	"github.com/kawaf/petcafe-service/internal/repository"
	"github.com/kawaf/petcafe-service/internal/service"
	"github.com/kawaf/petcafe-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	animalRepo := repository.NewAnimalRepository(pool)
	menuRepo := repository.NewMenuItemRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	var listings *cache.ListingCache
	if cfg.Cache.Enabled {
		listings = cache.NewListingCache(redis.Client, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartCacheWorker(dispatcher, listings, logger)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	resolver := authService.Resolver()
	animalService := service.NewAnimalService(animalRepo, listings, dispatcher)
	menuService := service.NewMenuService(menuRepo, listings, dispatcher)
	eventService := service.NewEventService(eventRepo, listings, dispatcher)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:    handlers.NewAuthHandler(authService, resolver),
		Animals: handlers.NewAnimalsHandler(animalService, resolver),
		Menu:    handlers.NewMenuHandler(menuService, resolver),
		Events:  handlers.NewEventsHandler(eventService, resolver),
		Users:   handlers.NewUsersHandler(userService, resolver),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
