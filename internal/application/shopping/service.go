// Package shopping provides the application layer for shopping-list
// derivation. It loads the meal plan and fridge state and delegates the
// whole computation to the pure planner core.
package shopping

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/planner"
	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

// ShoppingService implements the shopping-list use case.
type ShoppingService struct {
	mealPlanRepo   outbound.MealPlanRepository
	recipeRepo     outbound.RecipeRepository
	fridgeRepo     outbound.FridgeRepository
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewShoppingService creates a new shopping service.
func NewShoppingService(
	mealPlanRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	fridgeRepo outbound.FridgeRepository,
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) inbound.ShoppingService {
	return &ShoppingService{
		mealPlanRepo:   mealPlanRepo,
		recipeRepo:     recipeRepo,
		fridgeRepo:     fridgeRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("shopping-service"),
	}
}

// BuildShoppingList recomputes the shopping list from the user's current
// meal plan and fridge. Nothing is persisted; the list is derived state.
func (s *ShoppingService) BuildShoppingList(ctx context.Context, userID uuid.UUID, system measurement.System) (*planner.Result, error) {
	records, err := s.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list planned meals", err)
	}

	meals := make([]planner.PlannedMeal, 0, len(records))
	for _, record := range records {
		r, err := s.recipeRepo.FindByID(ctx, record.RecipeID)
		if err != nil {
			return nil, errors.NewDatabaseError("find planned recipe", err)
		}
		if r == nil {
			// A deleted recipe leaves a dangling calendar slot; skip it
			// instead of failing the whole list.
			s.logger.Warn("Planned meal references missing recipe",
				zap.String("planned_meal_id", record.ID.String()),
				zap.String("recipe_id", record.RecipeID.String()),
			)
			continue
		}
		meals = append(meals, planner.PlannedMeal{
			RecipeServings:  r.Servings(),
			PlannedServings: record.Servings,
			Ingredients:     r.Ingredients(),
		})
	}

	fridge, err := s.loadFridge(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := planner.BuildShoppingList(meals, fridge, system)

	s.logger.Info("Shopping list built",
		zap.String("user_id", userID.String()),
		zap.Int("planned_meals", len(meals)),
		zap.Int("shopping_items", len(result.ShoppingList)),
		zap.Int("running_low", len(result.RunningLow)),
	)

	return &result, nil
}

// loadFridge joins fridge entries with their catalog records so the planner
// sees category and fridge-life data alongside quantities.
func (s *ShoppingService) loadFridge(ctx context.Context, userID uuid.UUID) ([]planner.FridgeItem, error) {
	entries, err := s.fridgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list fridge entries", err)
	}

	catalog, err := s.ingredientRepo.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredient catalog", err)
	}
	byID := make(map[uuid.UUID]ingredient.Ingredient, len(catalog))
	for _, ing := range catalog {
		byID[ing.ID] = ing
	}

	items := make([]planner.FridgeItem, 0, len(entries))
	for _, entry := range entries {
		item := planner.FridgeItem{
			Name:     entry.IngredientName,
			Quantity: entry.Quantity,
			Unit:     entry.Unit,
			// Entries without a catalog record have unknown shelf life and
			// must not be reported as expiring.
			FridgeLifeDays: 365,
		}
		if ing, ok := byID[entry.IngredientID]; ok {
			item.Category = string(ing.Category)
			item.FridgeLifeDays = ing.FridgeLifeDays
		}
		items = append(items, item)
	}
	return items, nil
}
