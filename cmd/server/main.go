package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily-quotes/internal/config"
	"daily-quotes/internal/handler"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wiring
	container, err := config.NewContainer(ctx)
	if err != nil {
		log.Printf("Failed to initialize: %v", err)
		os.Exit(1)
	}

	logger := container.Logger
	handlers := handler.Handlers{
		Quotes:        handler.NewQuoteHandler(container.Session, logger),
		Favorites:     handler.NewFavoriteHandler(container.Session, logger),
		Contributions: handler.NewContributionHandler(container.Session, logger),
		Receiver:      handler.NewReceiverHandler(container.ContributionService, logger),
	}
	apiKey := handler.NewAPIKeyMiddleware(container.Config.GetContributionAPIKey(), logger)

	// Router
	router := handler.NewRouter(
		handlers,
		container.Config.GetCORSAllowedOrigins(),
		apiKey.Middleware,
		handler.RequestLogger(logger),
	)

	// start server
	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	runErr := g.Wait()
	if err := container.Close(); err != nil {
		logger.Error("Failed to release resources", err)
	}
	if runErr != nil {
		logger.Error("Server stopped with error", runErr)
		os.Exit(1)
	}
	logger.Info("Server exited")
}
