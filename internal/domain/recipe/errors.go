package recipe

import "errors"

// Domain errors for recipe operations

var (
	ErrTitleTooShort          = errors.New("recipe title must be at least 3 characters")
	ErrTitleTooLong           = errors.New("recipe title must not exceed 200 characters")
	ErrInvalidServings        = errors.New("servings cannot be negative")
	ErrNoIngredients          = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions         = errors.New("recipe must have at least one instruction")
	ErrEmptyInstruction       = errors.New("instruction step cannot be empty")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNegativeAmount         = errors.New("ingredient amount cannot be negative")
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrNotRecipeOwner         = errors.New("only the recipe owner can perform this action")
)
