package server

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	custommiddleware "storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/transport"
	"storefront/internal/wishlist"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deps carries the separately-owned state containers injected into the
// server. RedisClient is nil when running on the in-memory store.
type Deps struct {
	Catalog     *catalog.Store
	Cart        *cart.Cart
	Wishlist    *wishlist.Wishlist
	Auth        *auth.State
	Checkout    *checkout.Checkout
	Sessions    *session.Registry
	RedisClient *redis.Client
}

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Deps) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	sessionAuth := custommiddleware.SessionAuth(deps.Sessions, logger)

	catalogHandler := transport.NewCatalogHandler(deps.Catalog, logger)
	cartHandler := transport.NewCartHandler(deps.Cart, deps.Catalog, logger)
	wishlistHandler := transport.NewWishlistHandler(deps.Wishlist, deps.Catalog, logger)
	checkoutHandler := transport.NewCheckoutHandler(deps.Checkout, logger)
	authHandler := transport.NewAuthHandler(deps.Auth, deps.Sessions, logger)

	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)

	// Auth endpoints are rate limited when Redis is available.
	if deps.RedisClient != nil {
		router.Group(func(r chi.Router) {
			r.Use(custommiddleware.RateLimitMiddleware(deps.RedisClient, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
				Window:            cfg.RateLimit.Window,
				KeyPrefix:         "ratelimit:auth",
			}, logger))
			authHandler.RegisterRoutes(r, sessionAuth)
		})
	} else {
		authHandler.RegisterRoutes(router, sessionAuth)
	}

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  deps.RedisClient,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
