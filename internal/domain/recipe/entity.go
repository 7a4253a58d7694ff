// Package recipe contains the recipe aggregate. Ingredient amounts are kept
// as separate quantity and unit fields from ingestion onward; combined
// "200 g" strings from legacy or AI-generated data are parsed exactly once
// at the boundary (see ParseIngredientLine).
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the aggregate root for a saved recipe. Ingredient lines are
// immutable once the recipe is saved, except via full regeneration.
type Recipe struct {
	id          uuid.UUID
	title       string
	description string
	authorID    uuid.UUID

	ingredients  []IngredientLine
	instructions []string
	servings     int

	prepTime time.Duration
	cookTime time.Duration

	nutrition *NutritionEstimate

	aiGenerated bool
	aiPrompt    string
	aiModel     string

	favorite  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewRecipe creates a recipe with validation. Servings defaults to one when
// the source did not supply a count, so serving multipliers stay finite.
func NewRecipe(title, description string, authorID uuid.UUID, servings int) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if servings < 0 {
		return nil, ErrInvalidServings
	}
	if servings == 0 {
		servings = 1
	}

	now := time.Now()
	return &Recipe{
		id:          uuid.New(),
		title:       title,
		description: description,
		authorID:    authorID,
		servings:    servings,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Restore rebuilds a recipe from persisted state. Used by the persistence
// mappers only.
func Restore(
	id uuid.UUID,
	title, description string,
	authorID uuid.UUID,
	ingredients []IngredientLine,
	instructions []string,
	servings int,
	prepTime, cookTime time.Duration,
	nutrition *NutritionEstimate,
	aiGenerated bool,
	aiPrompt, aiModel string,
	favorite bool,
	createdAt, updatedAt time.Time,
) *Recipe {
	if servings <= 0 {
		servings = 1
	}
	return &Recipe{
		id:           id,
		title:        title,
		description:  description,
		authorID:     authorID,
		ingredients:  ingredients,
		instructions: instructions,
		servings:     servings,
		prepTime:     prepTime,
		cookTime:     cookTime,
		nutrition:    nutrition,
		aiGenerated:  aiGenerated,
		aiPrompt:     aiPrompt,
		aiModel:      aiModel,
		favorite:     favorite,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Recipe) ID() uuid.UUID                  { return r.id }
func (r *Recipe) Title() string                  { return r.title }
func (r *Recipe) Description() string            { return r.description }
func (r *Recipe) AuthorID() uuid.UUID            { return r.authorID }
func (r *Recipe) Ingredients() []IngredientLine  { return r.ingredients }
func (r *Recipe) Instructions() []string         { return r.instructions }
func (r *Recipe) Servings() int                  { return r.servings }
func (r *Recipe) PrepTime() time.Duration        { return r.prepTime }
func (r *Recipe) CookTime() time.Duration        { return r.cookTime }
func (r *Recipe) Nutrition() *NutritionEstimate  { return r.nutrition }
func (r *Recipe) IsAIGenerated() bool            { return r.aiGenerated }
func (r *Recipe) AIPrompt() string               { return r.aiPrompt }
func (r *Recipe) AIModel() string                { return r.aiModel }
func (r *Recipe) IsFavorite() bool               { return r.favorite }
func (r *Recipe) CreatedAt() time.Time           { return r.createdAt }
func (r *Recipe) UpdatedAt() time.Time           { return r.updatedAt }

// AddIngredient appends a validated ingredient line.
func (r *Recipe) AddIngredient(line IngredientLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, line)
	r.updatedAt = time.Now()
	return nil
}

// AddInstruction appends an instruction step.
func (r *Recipe) AddInstruction(step string) error {
	if step == "" {
		return ErrEmptyInstruction
	}
	r.instructions = append(r.instructions, step)
	r.updatedAt = time.Now()
	return nil
}

// SetTiming records preparation and cooking durations.
func (r *Recipe) SetTiming(prep, cook time.Duration) {
	r.prepTime = prep
	r.cookTime = cook
	r.updatedAt = time.Now()
}

// SetNutrition attaches a caller-supplied nutrition estimate.
func (r *Recipe) SetNutrition(n *NutritionEstimate) {
	r.nutrition = n
	r.updatedAt = time.Now()
}

// MarkAIGenerated records the provenance of a generated recipe.
func (r *Recipe) MarkAIGenerated(prompt, model string) {
	r.aiGenerated = true
	r.aiPrompt = prompt
	r.aiModel = model
	r.updatedAt = time.Now()
}

// ToggleFavorite flips the favorite flag.
func (r *Recipe) ToggleFavorite() {
	r.favorite = !r.favorite
	r.updatedAt = time.Now()
}

// ServingMultiplier returns the factor scaling this recipe's ingredient
// amounts to the planned serving count.
func (r *Recipe) ServingMultiplier(plannedServings int) float64 {
	if plannedServings <= 0 {
		return 1
	}
	return float64(plannedServings) / float64(r.servings)
}

// Validate ensures the recipe is complete enough to save.
func (r *Recipe) Validate() error {
	if len(r.ingredients) == 0 {
		return ErrNoIngredients
	}
	if len(r.instructions) == 0 {
		return ErrNoInstructions
	}
	return nil
}

func validateTitle(title string) error {
	if len(title) < 3 {
		return ErrTitleTooShort
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
