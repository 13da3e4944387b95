package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/kv"
	"storefront/internal/logger"
	"storefront/internal/nav"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/wishlist"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The server has 30 seconds to finish the requests it is currently
	// handling.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	done <- true
}

// buildStore picks the persistence backend: Redis when configured and
// reachable, the in-memory store otherwise.
func buildStore(cfg *config.Config, log *zap.Logger) (kv.Store, *redis.Client) {
	if !cfg.Redis.Enabled {
		log.Info("Using in-memory key-value store")
		return kv.NewMemory(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, falling back to in-memory store", zap.Error(err))
		client.Close()
		return kv.NewMemory(), nil
	}

	log.Info("Using redis key-value store",
		zap.String("host", cfg.Redis.Host),
		zap.String("port", cfg.Redis.Port),
	)
	return kv.NewRedis(client, "storefront"), client
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	store, redisClient := buildStore(cfg, log)

	// Assemble the state containers. Navigation events go nowhere here:
	// the HTTP client does its own routing.
	navigator := nav.Nop{}

	catalogStore := catalog.Default()
	cartState := cart.New(store, log)
	wishlistState := wishlist.New(store, log)
	authState := auth.New(
		auth.NewMockProvider(cfg.Simulated.LoginDelay, cfg.Simulated.RegisterDelay),
		store, navigator, log,
	)
	checkoutState := checkout.New(
		cartState,
		checkout.NewMockOrderService(cfg.Simulated.OrderDelay),
		store, navigator, log,
	)

	// Restore persisted state.
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for name, load := range map[string]func(context.Context) error{
		"cart":     cartState.Load,
		"wishlist": wishlistState.Load,
		"auth":     authState.Load,
		"checkout": checkoutState.Load,
	} {
		if err := load(loadCtx); err != nil {
			log.Fatal("Failed to restore state", zap.String("container", name), zap.Error(err))
		}
	}
	log.Info("State containers restored")

	srv := server.NewServer(cfg, log, server.Deps{
		Catalog:     catalogStore,
		Cart:        cartState,
		Wishlist:    wishlistState,
		Auth:        authState,
		Checkout:    checkoutState,
		Sessions:    session.NewRegistry(),
		RedisClient: redisClient,
	})

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
