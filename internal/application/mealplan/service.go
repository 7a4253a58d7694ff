// Package mealplan provides the application layer for the weekly calendar.
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/ports/inbound"
	"github.com/platewise/v2/internal/ports/outbound"
	"github.com/platewise/v2/pkg/errors"
)

// MealPlanService implements the calendar use cases.
type MealPlanService struct {
	mealPlanRepo outbound.MealPlanRepository
	recipeRepo   outbound.RecipeRepository
	logger       *zap.Logger
}

// NewMealPlanService creates a new meal plan service.
func NewMealPlanService(
	mealPlanRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &MealPlanService{
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
		logger:       logger.Named("mealplan-service"),
	}
}

// Plan schedules a recipe on the calendar. Servings defaults to the
// recipe's native count when the caller leaves it zero.
func (s *MealPlanService) Plan(ctx context.Context, cmd inbound.PlanMealCommand) (uuid.UUID, error) {
	date, err := time.Parse("2006-01-02", cmd.Date)
	if err != nil {
		return uuid.Nil, errors.NewValidationError("date must be formatted YYYY-MM-DD")
	}
	if cmd.Servings < 0 {
		return uuid.Nil, errors.NewValidationError("servings cannot be negative")
	}

	r, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return uuid.Nil, errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return uuid.Nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	servings := cmd.Servings
	if servings == 0 {
		servings = r.Servings()
	}

	record := outbound.PlannedMealRecord{
		ID:       uuid.New(),
		UserID:   cmd.UserID,
		RecipeID: cmd.RecipeID,
		Date:     date,
		Servings: servings,
	}
	if err := s.mealPlanRepo.Create(ctx, &record); err != nil {
		return uuid.Nil, errors.NewDatabaseError("create planned meal", err)
	}

	s.logger.Info("Meal planned",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("recipe_id", cmd.RecipeID.String()),
		zap.String("date", cmd.Date),
		zap.Int("servings", servings),
	)
	return record.ID, nil
}

// Unplan removes a calendar slot after an ownership check.
func (s *MealPlanService) Unplan(ctx context.Context, userID, plannedMealID uuid.UUID) error {
	records, err := s.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return errors.NewDatabaseError("list planned meals", err)
	}

	for _, record := range records {
		if record.ID == plannedMealID {
			if err := s.mealPlanRepo.Delete(ctx, plannedMealID); err != nil {
				return errors.NewDatabaseError("delete planned meal", err)
			}
			return nil
		}
	}
	return errors.New(errors.CodeNotFound, "Planned meal not found", "")
}
