// Package server wires the application together and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/rabbit/app/controllers"
	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/repositories"
	"github.com/shashiranjanraj/rabbit/app/routes"
	"github.com/shashiranjanraj/rabbit/app/services"
	"github.com/shashiranjanraj/rabbit/config"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/cache"
	"github.com/shashiranjanraj/rabbit/pkg/database"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
	"github.com/shashiranjanraj/rabbit/pkg/metrics"
	"github.com/shashiranjanraj/rabbit/pkg/middleware"
	"github.com/shashiranjanraj/rabbit/pkg/reqid"
	"github.com/shashiranjanraj/rabbit/pkg/router"
	"github.com/shashiranjanraj/rabbit/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Run boots the application and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	logger.Setup(cfg.Production())

	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.Connect(bootCtx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("server: mongo connect: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("mongo close failed", "error", err)
		}
	}()
	logger.Info("mongodb connected", "database", cfg.Mongo.Database)

	// The cache degrades to pass-through when redis is unreachable.
	store, err := cache.Connect(bootCtx, cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}
	defer store.Close()

	disks, err := storage.NewManager(cfg.Storage)
	if err != nil {
		return fmt.Errorf("server: storage: %w", err)
	}

	tokens := auth.NewJWT(cfg.JWTSecret)

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	cartService := services.NewCartService(productRepo, cartRepo)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery(cfg.Production()),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(cfg.CORSOrigin)),
		middleware.MaxBody(cfg.MaxBodyBytes),
	)

	routes.Register(r, routes.API{
		Users:       controllers.NewUserController(authService),
		Products:    controllers.NewProductController(productRepo, store),
		Cart:        controllers.NewCartController(cartService, tokens),
		Orders:      controllers.NewOrderController(orderRepo),
		Subscribers: controllers.NewSubscriberController(subscriberRepo),
		Upload:      controllers.NewUploadController(disks.Default(), cfg.Storage.UploadFolder),
		AdminUsers:  controllers.NewAdminUserController(userRepo),
		Tokens:      tokens,
		LoadUser: func(ctx context.Context, id string) (*models.User, error) {
			return userRepo.FindByID(ctx, id)
		},
	})

	r.Get("/metrics", "metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
