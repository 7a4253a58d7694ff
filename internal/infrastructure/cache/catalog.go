package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/ports/outbound"
)

const catalogKey = "catalog:ingredients"

// CachedIngredientRepository decorates the ingredient repository with a
// cached full-catalog read. Every shopping-list build and every fuzzy match
// loads the whole catalog, so this is the hottest read in the system.
type CachedIngredientRepository struct {
	inner  outbound.IngredientRepository
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedIngredientRepository creates the caching decorator.
func NewCachedIngredientRepository(
	inner outbound.IngredientRepository,
	cache outbound.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) outbound.IngredientRepository {
	return &CachedIngredientRepository{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("catalog-cache"),
	}
}

// List returns the catalog, from cache when fresh. Cache failures fall
// through to the database; the catalog read must never fail because Redis
// is down.
func (r *CachedIngredientRepository) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	if raw, err := r.cache.Get(ctx, catalogKey); err == nil && len(raw) > 0 {
		var catalog []ingredient.Ingredient
		if err := json.Unmarshal(raw, &catalog); err == nil {
			return catalog, nil
		}
		// Corrupt payload: drop it and reload from the source.
		_ = r.cache.Delete(ctx, catalogKey)
	}

	catalog, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(catalog); err == nil {
		if err := r.cache.Set(ctx, catalogKey, raw, r.ttl); err != nil {
			r.logger.Debug("Catalog cache write failed", zap.Error(err))
		}
	}
	return catalog, nil
}

// FindByID delegates to the source repository.
func (r *CachedIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	return r.inner.FindByID(ctx, id)
}

// Search delegates to the source repository.
func (r *CachedIngredientRepository) Search(ctx context.Context, query string, limit int) ([]ingredient.Ingredient, error) {
	return r.inner.Search(ctx, query, limit)
}
