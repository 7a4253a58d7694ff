package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
)

type fakeCache struct {
	data map[string][]byte
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data[key], nil
}
func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}
func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type countingIngredientRepo struct {
	catalog []ingredient.Ingredient
	calls   int
}

func (r *countingIngredientRepo) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	r.calls++
	return r.catalog, nil
}
func (r *countingIngredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	return nil, nil
}
func (r *countingIngredientRepo) Search(ctx context.Context, query string, limit int) ([]ingredient.Ingredient, error) {
	return nil, nil
}

func TestCachedCatalogServesSecondReadFromCache(t *testing.T) {
	chicken, err := ingredient.New("chicken breast", ingredient.CategoryProteins, "g", 5)
	require.NoError(t, err)

	source := &countingIngredientRepo{catalog: []ingredient.Ingredient{*chicken}}
	repo := NewCachedIngredientRepository(source, newFakeCache(), time.Minute, zap.NewNop())

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	second, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls, "second read comes from cache")
}

func TestCachedCatalogFallsThroughOnCacheFailure(t *testing.T) {
	source := &countingIngredientRepo{}
	broken := newFakeCache()
	broken.err = errors.New("redis down")
	repo := NewCachedIngredientRepository(source, broken, time.Minute, zap.NewNop())

	_, err := repo.List(context.Background())
	require.NoError(t, err, "catalog reads survive a dead cache")
	assert.Equal(t, 1, source.calls)
}

func TestCachedCatalogDropsCorruptPayload(t *testing.T) {
	source := &countingIngredientRepo{}
	cache := newFakeCache()
	cache.data[catalogKey] = []byte("{not json")
	repo := NewCachedIngredientRepository(source, cache, time.Minute, zap.NewNop())

	_, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls, "corrupt cache entry falls back to the source")
}
