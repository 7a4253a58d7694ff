package gorm

import (
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/pantry"
	"github.com/platewise/v2/internal/domain/recipe"
	"github.com/platewise/v2/internal/domain/user"
)

// UserToModel converts a user entity to its GORM model.
func UserToModel(entity *user.User) *UserModel {
	return &UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		UnitSystem:   string(entity.UnitSystem()),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ModelToUser converts a GORM model to a user entity.
func ModelToUser(model *UserModel) *user.User {
	return user.Restore(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		measurement.System(model.UnitSystem),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// IngredientToModel converts a catalog entry to its GORM model.
func IngredientToModel(entity *ingredient.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:             entity.ID,
		Name:           entity.Name,
		Category:       string(entity.Category),
		DefaultUnit:    entity.DefaultUnit,
		FridgeLifeDays: entity.FridgeLifeDays,
		Calories:       entity.Nutrition.Calories,
		Protein:        entity.Nutrition.Protein,
		Carbs:          entity.Nutrition.Carbs,
		Fat:            entity.Nutrition.Fat,
	}
}

// ModelToIngredient converts a GORM model to a catalog entry.
func ModelToIngredient(model *IngredientModel) ingredient.Ingredient {
	return ingredient.Ingredient{
		ID:          model.ID,
		Name:        model.Name,
		Category:    ingredient.StorageCategory(model.Category),
		DefaultUnit: model.DefaultUnit,
		Nutrition: ingredient.Nutrition{
			Calories: model.Calories,
			Protein:  model.Protein,
			Carbs:    model.Carbs,
			Fat:      model.Fat,
		},
		FridgeLifeDays: model.FridgeLifeDays,
	}
}

// RecipeToModel converts a recipe entity to its GORM model.
func RecipeToModel(entity *recipe.Recipe) *RecipeModel {
	lines := entity.Ingredients()
	records := make(IngredientLines, len(lines))
	for i, line := range lines {
		records[i] = IngredientLineRecord{
			Name:      line.Name,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
			Category:  line.Category,
			Optional:  line.Optional,
			Available: line.Available,
		}
	}

	calories := 0
	if n := entity.Nutrition(); n != nil {
		calories = n.Calories
	}

	return &RecipeModel{
		ID:              entity.ID(),
		Title:           entity.Title(),
		Description:     entity.Description(),
		AuthorID:        entity.AuthorID(),
		Ingredients:     records,
		Instructions:    StringSlice(entity.Instructions()),
		Servings:        entity.Servings(),
		PrepTimeMinutes: int(entity.PrepTime().Minutes()),
		CookTimeMinutes: int(entity.CookTime().Minutes()),
		Calories:        calories,
		AIGenerated:     entity.IsAIGenerated(),
		AIPrompt:        entity.AIPrompt(),
		AIModel:         entity.AIModel(),
		Favorite:        entity.IsFavorite(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model to a recipe entity.
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	lines := make([]recipe.IngredientLine, len(model.Ingredients))
	for i, record := range model.Ingredients {
		lines[i] = recipe.IngredientLine{
			Name:      record.Name,
			Quantity:  record.Quantity,
			Unit:      record.Unit,
			Category:  record.Category,
			Optional:  record.Optional,
			Available: record.Available,
		}
	}

	var nutrition *recipe.NutritionEstimate
	if model.Calories > 0 {
		nutrition = &recipe.NutritionEstimate{Calories: model.Calories}
	}

	return recipe.Restore(
		model.ID,
		model.Title,
		model.Description,
		model.AuthorID,
		lines,
		[]string(model.Instructions),
		model.Servings,
		time.Duration(model.PrepTimeMinutes)*time.Minute,
		time.Duration(model.CookTimeMinutes)*time.Minute,
		nutrition,
		model.AIGenerated,
		model.AIPrompt,
		model.AIModel,
		model.Favorite,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// FridgeEntryToModel converts a fridge entry to its GORM model.
func FridgeEntryToModel(entry *pantry.FridgeEntry) *FridgeEntryModel {
	model := &FridgeEntryModel{
		ID:             entry.ID,
		UserID:         entry.UserID,
		IngredientName: entry.IngredientName,
		Quantity:       entry.Quantity,
		Unit:           entry.Unit,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
	if entry.IngredientID != uuid.Nil {
		id := entry.IngredientID
		model.IngredientID = &id
	}
	return model
}

// ModelToFridgeEntry converts a GORM model to a fridge entry.
func ModelToFridgeEntry(model *FridgeEntryModel) *pantry.FridgeEntry {
	ingredientID := uuid.Nil
	if model.IngredientID != nil {
		ingredientID = *model.IngredientID
	}
	return &pantry.FridgeEntry{
		ID:             model.ID,
		UserID:         model.UserID,
		IngredientID:   ingredientID,
		IngredientName: model.IngredientName,
		Quantity:       model.Quantity,
		Unit:           model.Unit,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
