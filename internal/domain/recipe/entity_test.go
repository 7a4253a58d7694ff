package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	r, err := NewRecipe("Spaghetti Carbonara", "A classic", uuid.New(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Servings())
	assert.NotEqual(t, uuid.Nil, r.ID())

	_, err = NewRecipe("AB", "too short", uuid.New(), 2)
	assert.ErrorIs(t, err, ErrTitleTooShort)

	_, err = NewRecipe("Valid Title", "", uuid.New(), -1)
	assert.ErrorIs(t, err, ErrInvalidServings)
}

func TestNewRecipeDefaultsServingsToOne(t *testing.T) {
	r, err := NewRecipe("Mystery Stew", "", uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Servings())
}

func TestServingMultiplier(t *testing.T) {
	r, err := NewRecipe("Pancakes", "", uuid.New(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2.0, r.ServingMultiplier(4))
	assert.Equal(t, 0.5, r.ServingMultiplier(1))
	assert.Equal(t, 1.0, r.ServingMultiplier(0), "unset planned servings scale by one")
}

func TestAddIngredient(t *testing.T) {
	r, err := NewRecipe("Omelette", "", uuid.New(), 1)
	require.NoError(t, err)

	require.NoError(t, r.AddIngredient(IngredientLine{Name: "egg", Quantity: 2, Unit: "pc"}))
	assert.Len(t, r.Ingredients(), 1)

	err = r.AddIngredient(IngredientLine{Name: "", Quantity: 1})
	assert.ErrorIs(t, err, ErrIngredientNameRequired)

	err = r.AddIngredient(IngredientLine{Name: "salt", Quantity: -1})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestValidateRequiresIngredientsAndInstructions(t *testing.T) {
	r, err := NewRecipe("Toast", "", uuid.New(), 1)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Validate(), ErrNoIngredients)

	require.NoError(t, r.AddIngredient(IngredientLine{Name: "bread", Quantity: 2, Unit: "pc"}))
	assert.ErrorIs(t, r.Validate(), ErrNoInstructions)

	require.NoError(t, r.AddInstruction("Toast the bread."))
	assert.NoError(t, r.Validate())
}

func TestParseIngredientLine(t *testing.T) {
	line := ParseIngredientLine("chicken breast", "200 g")
	assert.Equal(t, "chicken breast", line.Name)
	assert.Equal(t, 200.0, line.Quantity)
	assert.Equal(t, "g", line.Unit)

	line = ParseIngredientLine("flour", "1 1/2 cups")
	assert.InDelta(t, 1.5, line.Quantity, 0.001)
	assert.Equal(t, "cup", line.Unit)

	line = ParseIngredientLine("eggs", "2")
	assert.Equal(t, 2.0, line.Quantity)
	assert.Equal(t, "", line.Unit)

	// Malformed amounts degrade to zero instead of failing.
	line = ParseIngredientLine("salt", "to taste")
	assert.Equal(t, 0.0, line.Quantity)
}

func TestMarkAIGenerated(t *testing.T) {
	r, err := NewRecipe("Generated Curry", "", uuid.New(), 2)
	require.NoError(t, err)

	r.MarkAIGenerated("quick curry with pantry staples", "gpt-4o-mini")
	assert.True(t, r.IsAIGenerated())
	assert.Equal(t, "gpt-4o-mini", r.AIModel())
}
