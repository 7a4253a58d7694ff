package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/v2/internal/domain/recipe"
	"github.com/platewise/v2/internal/ports/outbound"
)

// RecipeRepository implements the recipe repository interface using GORM.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe.
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	return r.db.WithContext(ctx).Create(RecipeToModel(entity)).Error
}

// Update updates an existing recipe.
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	result := r.db.WithContext(ctx).Save(RecipeToModel(entity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("recipe not found")
	}
	return nil
}

// Delete soft deletes a recipe by ID.
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("recipe not found")
	}
	return nil
}

// FindByID finds a recipe by ID. A missing recipe returns nil without error.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return ModelToRecipe(&model), nil
}

// ListByUser returns a page of the user's recipes, newest first, plus the
// total count.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("author_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []RecipeModel
	query := r.db.WithContext(ctx).
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, int(total), nil
}
