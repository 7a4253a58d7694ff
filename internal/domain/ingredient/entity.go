// Package ingredient contains the canonical ingredient catalog entry and the
// fuzzy name matcher used to associate free-text ingredient names with
// catalog and fridge records.
package ingredient

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// StorageCategory is the catalog's broad display taxonomy. It is distinct
// from the behavioral measurement.IngredientType, which is derived from the
// name at runtime and never persisted.
type StorageCategory string

const (
	CategoryProteins   StorageCategory = "proteins"
	CategoryVegetables StorageCategory = "vegetables"
	CategoryFruits     StorageCategory = "fruits"
	CategoryDairy      StorageCategory = "dairy"
	CategoryGrains     StorageCategory = "grains"
	CategorySpices     StorageCategory = "spices"
	CategoryPantry     StorageCategory = "pantry"
	CategoryOther      StorageCategory = "other"
)

// Nutrition holds caller-supplied estimates per 100 g. The catalog does not
// resolve nutritional truth.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Ingredient is a canonical catalog entry. Entries are seeded and
// administered externally; this core only reads them.
type Ingredient struct {
	ID             uuid.UUID
	Name           string
	Category       StorageCategory
	DefaultUnit    string
	Nutrition      Nutrition
	FridgeLifeDays int
}

var ErrEmptyName = errors.New("ingredient name is required")

// New creates a catalog entry with a trimmed name.
func New(name string, category StorageCategory, defaultUnit string, fridgeLifeDays int) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		category = CategoryOther
	}
	return &Ingredient{
		ID:             uuid.New(),
		Name:           name,
		Category:       category,
		DefaultUnit:    defaultUnit,
		FridgeLifeDays: fridgeLifeDays,
	}, nil
}
