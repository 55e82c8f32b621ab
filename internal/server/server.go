// Package server boots the HTTP API: config, datastores, routes,
// middleware, and graceful shutdown.
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

	"github.com/shashiranjanraj/ridewithme/app/controllers"
	"github.com/shashiranjanraj/ridewithme/app/repositories"
	"github.com/shashiranjanraj/ridewithme/app/routes"
	"github.com/shashiranjanraj/ridewithme/app/services"
	"github.com/shashiranjanraj/ridewithme/config"
	"github.com/shashiranjanraj/ridewithme/database/indexes"
	"github.com/shashiranjanraj/ridewithme/pkg/cache"
	"github.com/shashiranjanraj/ridewithme/pkg/database"
	"github.com/shashiranjanraj/ridewithme/pkg/logger"
	"github.com/shashiranjanraj/ridewithme/pkg/metrics"
	"github.com/shashiranjanraj/ridewithme/pkg/middleware"
	"github.com/shashiranjanraj/ridewithme/pkg/reqid"
	"github.com/shashiranjanraj/ridewithme/pkg/router"
	"github.com/shashiranjanraj/ridewithme/pkg/storage"
)

const (
	shutdownTimeout = 10 * time.Second

	rateLimitMax    = 120
	rateLimitWindow = time.Minute
)

// Run boots the application and blocks until SIGINT/SIGTERM.
func Run() error {
	config.Load()

	if config.LogToMongo() {
		mh, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDatabase(), "logs")
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			logger.SetHandler(logger.NewMultiHandler(logger.Handler(), mh))
			defer mh.Close()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := database.Connect(ctx); err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer database.Disconnect(context.Background())

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	storage.Connect()

	if err := indexes.Ensure(ctx, database.DB()); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	handler, err := buildHandler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// buildHandler wires repositories, services, controllers and routes.
func buildHandler() (http.Handler, error) {
	carRepo := repositories.NewCarRepository(database.DB())
	userRepo := repositories.NewUserRepository(database.DB())

	carSvc := services.NewCarService(carRepo)
	authSvc := services.NewAuthService(userRepo)

	gql, err := controllers.NewGraphQLHandler(carSvc)
	if err != nil {
		return nil, fmt.Errorf("graphql schema: %w", err)
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(rateLimitMax, rateLimitWindow),
	)

	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(authSvc),
		Cars:    controllers.NewCarController(carSvc),
		GraphQL: gql,
	})

	r.HandleFunc("/metrics", metrics.Handler())
	r.HandleFunc("/healthz", healthz)

	return r.Handler(), nil
}

func healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NewRouter builds the full route table without touching any datastore.
// The CLI uses it to print the route list.
func NewRouter() *router.Router {
	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth: controllers.NewAuthController(nil),
		Cars: controllers.NewCarController(nil),
	})
	return r
}
