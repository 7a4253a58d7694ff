// Package outbound defines the interfaces for outbound ports (secondary or
// driven adapters): everything the application calls out to. The domain core
// never touches these; repositories hand it plain in-memory collections.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/pantry"
	"github.com/platewise/v2/internal/domain/recipe"
	"github.com/platewise/v2/internal/domain/user"
)

// IngredientRepository provides read access to the canonical ingredient
// catalog. The catalog is seeded and administered externally.
type IngredientRepository interface {
	List(ctx context.Context) ([]ingredient.Ingredient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error)
	Search(ctx context.Context, query string, limit int) ([]ingredient.Ingredient, error)
}

// FridgeRepository persists per-user fridge inventory.
type FridgeRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.FridgeEntry, error)
	Create(ctx context.Context, entry *pantry.FridgeEntry) error
	Update(ctx context.Context, entry *pantry.FridgeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// RecipeRepository persists recipes.
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error)
}

// PlannedMealRecord is one calendar slot: a recipe planned for a day at a
// serving count.
type PlannedMealRecord struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Date     time.Time
	Servings int
}

// MealPlanRepository persists the weekly calendar.
type MealPlanRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]PlannedMealRecord, error)
	Create(ctx context.Context, record *PlannedMealRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists user accounts and preferences.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CacheRepository defines the caching operations used for the read-mostly
// ingredient catalog.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GeneratedIngredient is one ingredient line from recipe generation.
// Amount arrives as a combined "number + unit" string and is parsed once at
// the ingestion boundary.
type GeneratedIngredient struct {
	Name      string
	Amount    string
	Available bool
}

// GeneratedRecipe is the provider-agnostic recipe generation result.
type GeneratedRecipe struct {
	Title        string
	Description  string
	Servings     int
	PrepMinutes  int
	CookMinutes  int
	Ingredients  []GeneratedIngredient
	Instructions []string
	Calories     int
	Model        string
}

// AIService generates recipes through a large-language-model provider.
type AIService interface {
	GenerateRecipe(ctx context.Context, prompt string, system measurement.System) (*GeneratedRecipe, error)
}

// WebRecipe is a search hit from the external recipe-search provider.
type WebRecipe struct {
	Title       string
	SourceURL   string
	Description string
	Ingredients []GeneratedIngredient
	Servings    int
}

// RecipeSearchService fetches recipes from the third-party search provider.
type RecipeSearchService interface {
	Search(ctx context.Context, query string, limit int) ([]WebRecipe, error)
}
