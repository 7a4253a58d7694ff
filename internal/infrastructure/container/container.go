// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/platewise/v2/internal/application/fridge"
	"github.com/platewise/v2/internal/application/mealplan"
	"github.com/platewise/v2/internal/application/recipe"
	"github.com/platewise/v2/internal/application/search"
	"github.com/platewise/v2/internal/application/shopping"
	"github.com/platewise/v2/internal/application/user"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/infrastructure/ai/ollama"
	"github.com/platewise/v2/internal/infrastructure/ai/openai"
	"github.com/platewise/v2/internal/infrastructure/cache"
	"github.com/platewise/v2/internal/infrastructure/config"
	"github.com/platewise/v2/internal/infrastructure/http/server"
	gormpersistence "github.com/platewise/v2/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v2/internal/infrastructure/websearch"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/logger"
)

// Module provides all dependency injection modules.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration.
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging.
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM connection.
var DatabaseModule = fx.Provide(
	gormpersistence.NewConnection,
	func(conn *gormpersistence.Connection) *gorm.DB {
		return conn.DB()
	},
)

// CacheModule provides the Redis cache.
var CacheModule = fx.Provide(
	cache.NewRedisCache,
	func(redis *cache.RedisCache) outbound.CacheRepository {
		return redis
	},
)

// RepositoryModule provides repository implementations. The ingredient
// catalog repository is wrapped in its caching decorator here so every
// consumer reads through the cache.
var RepositoryModule = fx.Provide(
	gormpersistence.NewUserRepository,
	gormpersistence.NewRecipeRepository,
	gormpersistence.NewFridgeRepository,
	gormpersistence.NewMealPlanRepository,
	func(
		db *gorm.DB,
		cacheRepo outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) outbound.IngredientRepository {
		inner := gormpersistence.NewIngredientRepository(db)
		return cache.NewCachedIngredientRepository(inner, cacheRepo, cfg.Redis.CatalogTTL, log)
	},
)

// ServiceModule provides application services.
var ServiceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		if cfg.AI.Provider == "ollama" {
			return ollama.NewClient(cfg, log)
		}
		return openai.NewClient(cfg, log)
	},

	func(cfg *config.Config, log *zap.Logger) outbound.RecipeSearchService {
		if !cfg.Search.Enabled {
			return nil
		}
		return websearch.NewClient(cfg, log)
	},

	func(provider outbound.RecipeSearchService, log *zap.Logger) inbound.SearchService {
		if provider == nil {
			return nil
		}
		return search.NewSearchService(provider, log)
	},

	func(userRepo outbound.UserRepository, cfg *config.Config, log *zap.Logger) *user.UserService {
		return user.NewUserService(userRepo, cfg.Auth.JWTSecret, log)
	},

	fridge.NewFridgeService,
	recipe.NewRecipeService,
	mealplan.NewMealPlanService,
	shopping.NewShoppingService,
)

// HTTPModule provides the HTTP server.
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers start and stop hooks.
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	conn *gormpersistence.Connection,
	redis *cache.RedisCache,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			measurement.SetSolidDensity(cfg.Units.SolidDensity)

			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}
			if err := redis.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
			if err := conn.Close(); err != nil {
				log.Error("Failed to close database connection", zap.Error(err))
			}
			_ = log.Sync()
			return nil
		},
	})
}
