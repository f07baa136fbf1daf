// Command gateway runs a small HTTP gateway in front of a Valhalla-compatible
// routing service. It forwards route, matrix and isochrone requests and
// returns trip geometry with polyline shapes already decoded.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meridianmaps/valhalla-go/internal/config"
	"github.com/meridianmaps/valhalla-go/internal/handler"
	"github.com/meridianmaps/valhalla-go/internal/middleware"
	"github.com/meridianmaps/valhalla-go/valhalla"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := newLogger(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting routing gateway",
		zap.String("port", cfg.Port),
		zap.String("upstream", cfg.ValhallaURL),
	)

	// Initialize the routing client
	opts := []valhalla.Option{
		valhalla.WithTimeout(cfg.RequestTimeout),
		valhalla.WithLogger(log.Named("valhalla")),
		valhalla.WithRetry(cfg.MaxRetries),
	}
	if cfg.ValhallaAPIKey != "" {
		opts = append(opts, valhalla.WithAPIKey(cfg.ValhallaAPIKey))
	}
	client := valhalla.NewClient(cfg.ValhallaURL, opts...)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Register routes
	routeHandler := handler.NewRouteHandler(client)
	routeHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down routing gateway...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("routing gateway stopped")
}

// newLogger builds a production logger, or a human-readable development one
// when the environment asks for it.
func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
