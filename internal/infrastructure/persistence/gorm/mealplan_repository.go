package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/v2/internal/ports/outbound"
)

// MealPlanRepository implements the meal plan repository interface using
// GORM.
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository.
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// ListByUser returns the user's calendar slots ordered by date.
func (r *MealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]outbound.PlannedMealRecord, error) {
	var models []PlannedMealModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]outbound.PlannedMealRecord, len(models))
	for i, model := range models {
		records[i] = outbound.PlannedMealRecord{
			ID:       model.ID,
			UserID:   model.UserID,
			RecipeID: model.RecipeID,
			Date:     model.Date,
			Servings: model.Servings,
		}
	}
	return records, nil
}

// Create creates a new calendar slot.
func (r *MealPlanRepository) Create(ctx context.Context, record *outbound.PlannedMealRecord) error {
	model := PlannedMealModel{
		ID:       record.ID,
		UserID:   record.UserID,
		RecipeID: record.RecipeID,
		Date:     record.Date,
		Servings: record.Servings,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

// Delete removes a calendar slot.
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&PlannedMealModel{}, "id = ?", id).Error
}
