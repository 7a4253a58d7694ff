package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/ports/outbound"
)

// IngredientRepository implements read access to the ingredient catalog
// using GORM.
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository.
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns the full catalog ordered by name. The catalog is small
// enough to load whole; fuzzy matching needs every name anyway.
func (r *IngredientRepository) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	var models []IngredientModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	catalog := make([]ingredient.Ingredient, len(models))
	for i := range models {
		catalog[i] = ModelToIngredient(&models[i])
	}
	return catalog, nil
}

// FindByID finds a catalog entry by ID. A missing entry returns nil without
// error.
func (r *IngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	var model IngredientModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	entity := ModelToIngredient(&model)
	return &entity, nil
}

// Search returns catalog entries whose names contain the query.
func (r *IngredientRepository) Search(ctx context.Context, query string, limit int) ([]ingredient.Ingredient, error) {
	var models []IngredientModel
	q := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	results := make([]ingredient.Ingredient, len(models))
	for i := range models {
		results[i] = ModelToIngredient(&models[i])
	}
	return results, nil
}
