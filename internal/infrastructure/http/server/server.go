// Package server provides the HTTP server for the JSON API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/application/user"
	"github.com/platewise/v2/internal/infrastructure/cache"
	"github.com/platewise/v2/internal/infrastructure/config"
	"github.com/platewise/v2/internal/infrastructure/http/handlers"
	"github.com/platewise/v2/internal/infrastructure/http/middleware"
	gormpersistence "github.com/platewise/v2/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v2/internal/ports/inbound"
)

// Server is the HTTP server with all dependencies.
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server

	db    *gormpersistence.Connection
	redis *cache.RedisCache

	userService     *user.UserService
	fridgeService   inbound.FridgeService
	recipeService   inbound.RecipeService
	mealPlanService inbound.MealPlanService
	shoppingService inbound.ShoppingService
	searchService   inbound.SearchService
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gormpersistence.Connection,
	redis *cache.RedisCache,
	userService *user.UserService,
	fridgeService inbound.FridgeService,
	recipeService inbound.RecipeService,
	mealPlanService inbound.MealPlanService,
	shoppingService inbound.ShoppingService,
	searchService inbound.SearchService,
) *Server {
	s := &Server{
		config:          cfg,
		logger:          logger.Named("http-server"),
		db:              db,
		redis:           redis,
		userService:     userService,
		fridgeService:   fridgeService,
		recipeService:   recipeService,
		mealPlanService: mealPlanService,
		shoppingService: shoppingService,
		searchService:   searchService,
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return s
}

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS(s.config))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	if s.config.Monitoring.EnableMetrics {
		metrics := middleware.NewMetrics()
		r.Use(metrics.Handler())
		r.Handle(s.config.Monitoring.MetricsPath, promhttp.Handler())
	}

	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealth)

	authHandler := handlers.NewAuthHandler(s.userService, s.logger)
	fridgeHandler := handlers.NewFridgeHandler(s.fridgeService, s.logger)
	recipeHandler := handlers.NewRecipeHandler(s.recipeService, s.logger)
	mealPlanHandler := handlers.NewMealPlanHandler(s.mealPlanService, s.logger)
	shoppingHandler := handlers.NewShoppingHandler(s.shoppingService, s.userService, s.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.userService))

			r.Get("/users/me", authHandler.Me)
			r.Put("/users/me/units", authHandler.SetUnitSystem)

			r.Route("/fridge", func(r chi.Router) {
				r.Get("/", fridgeHandler.List)
				r.Post("/", fridgeHandler.Add)
				r.Post("/purchased", fridgeHandler.MarkPurchased)
				r.Put("/{id}", fridgeHandler.UpdateQuantity)
				r.Delete("/{id}", fridgeHandler.Remove)
				r.Delete("/", fridgeHandler.Clear)
			})

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", recipeHandler.List)
				r.Post("/", recipeHandler.Create)
				r.Post("/generate", recipeHandler.Generate)
				if s.config.Search.Enabled && s.searchService != nil {
					searchHandler := handlers.NewSearchHandler(s.searchService, s.logger)
					r.Get("/search", searchHandler.Search)
				}
				r.Get("/{id}", recipeHandler.Get)
				r.Post("/{id}/cooked", recipeHandler.MarkCooked)
				r.Delete("/{id}", recipeHandler.Delete)
			})

			r.Route("/mealplan", func(r chi.Router) {
				r.Post("/", mealPlanHandler.Plan)
				r.Delete("/{id}", mealPlanHandler.Unplan)
			})

			r.Get("/shopping-list", shoppingHandler.Get)
		})
	})

	return r
}

type healthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := healthStatus{
		Status:  "healthy",
		Version: s.config.App.Version,
		Checks:  map[string]string{},
	}
	code := http.StatusOK

	if err := s.db.HealthCheck(ctx); err != nil {
		status.Status = "unhealthy"
		status.Checks["database"] = err.Error()
		code = http.StatusServiceUnavailable
	} else {
		status.Checks["database"] = "ok"
	}

	// A dead cache degrades performance but does not take the API down.
	if s.redis != nil {
		if err := s.redis.HealthCheck(ctx); err != nil {
			status.Checks["redis"] = err.Error()
		} else {
			status.Checks["redis"] = "ok"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the router for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
