// Package inbound defines the interfaces for inbound ports (primary or
// driving adapters) and their DTOs. HTTP handlers depend on these, never on
// application structs directly.
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/planner"
)

// ShoppingService derives shopping-list output for a user's meal plan.
type ShoppingService interface {
	BuildShoppingList(ctx context.Context, userID uuid.UUID, system measurement.System) (*planner.Result, error)
}

// FridgeEntryDTO is the transport shape of a fridge entry.
type FridgeEntryDTO struct {
	ID             uuid.UUID `json:"id"`
	IngredientID   uuid.UUID `json:"ingredientId"`
	IngredientName string    `json:"ingredientName"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
}

// AddFridgeItemCommand adds an ingredient to the fridge by free-text name.
type AddFridgeItemCommand struct {
	UserID   uuid.UUID
	Name     string
	Quantity float64
	Unit     string
}

// FridgeService manages a user's fridge inventory.
type FridgeService interface {
	List(ctx context.Context, userID uuid.UUID) ([]FridgeEntryDTO, error)
	Add(ctx context.Context, cmd AddFridgeItemCommand) (*FridgeEntryDTO, error)
	UpdateQuantity(ctx context.Context, userID, entryID uuid.UUID, quantity float64) (*FridgeEntryDTO, error)
	Remove(ctx context.Context, userID, entryID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	MarkPurchased(ctx context.Context, cmd AddFridgeItemCommand) (*FridgeEntryDTO, error)
}

// IngredientLineDTO is the transport shape of a recipe ingredient line.
// Amount carries a legacy combined "number + unit" string from imports and
// AI output; when set it is parsed once at ingestion and wins over the
// typed Quantity/Unit pair.
type IngredientLineDTO struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Amount   string  `json:"amount,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// RecipeDTO is the transport shape of a recipe.
type RecipeDTO struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Servings     int                 `json:"servings"`
	PrepMinutes  int                 `json:"prepMinutes"`
	CookMinutes  int                 `json:"cookMinutes"`
	Ingredients  []IngredientLineDTO `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	AIGenerated  bool                `json:"aiGenerated"`
	Favorite     bool                `json:"favorite"`
}

// CreateRecipeCommand creates a recipe from typed ingredient lines or from
// legacy combined amount strings (see IngredientLineDTO.Amount).
type CreateRecipeCommand struct {
	AuthorID     uuid.UUID
	Title        string
	Description  string
	Servings     int
	Ingredients  []IngredientLineDTO
	Instructions []string
}

// GenerateRecipeCommand generates a recipe via the AI provider.
type GenerateRecipeCommand struct {
	UserID uuid.UUID
	Prompt string
	System measurement.System
}

// RecipeService manages recipes and the cook flow.
type RecipeService interface {
	Create(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	Get(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]RecipeDTO, int, error)
	Generate(ctx context.Context, cmd GenerateRecipeCommand) (*RecipeDTO, error)
	// MarkCooked deducts the recipe's scaled ingredient demand from the
	// user's fridge, flooring each entry at zero.
	MarkCooked(ctx context.Context, userID, recipeID uuid.UUID, servings int) error
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
}

// PlanMealCommand schedules a recipe on the calendar.
type PlanMealCommand struct {
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Date     string // ISO date
	Servings int
}

// MealPlanService manages the weekly calendar.
type MealPlanService interface {
	Plan(ctx context.Context, cmd PlanMealCommand) (uuid.UUID, error)
	Unplan(ctx context.Context, userID, plannedMealID uuid.UUID) error
}

// WebRecipeDTO is the transport shape of an external search hit. Ingredient
// amounts stay as the provider's combined strings; they are parsed only if
// the user imports the recipe.
type WebRecipeDTO struct {
	Title       string              `json:"title"`
	SourceURL   string              `json:"sourceUrl"`
	Description string              `json:"description"`
	Servings    int                 `json:"servings"`
	Ingredients []IngredientLineDTO `json:"ingredients"`
}

// SearchService queries the external recipe-search provider.
type SearchService interface {
	SearchRecipes(ctx context.Context, query string, limit int) ([]WebRecipeDTO, error)
}
