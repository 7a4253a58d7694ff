package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/recipe"
)

func TestBuildShoppingListNoMealsPlanned(t *testing.T) {
	result := BuildShoppingList(nil, []FridgeItem{{Name: "milk", Quantity: 1, Unit: "l"}}, measurement.SystemMetric)

	assert.Empty(t, result.ShoppingList)
	assert.Empty(t, result.RunningLow)
	assert.NotEmpty(t, result.Message)
}

func TestBuildShoppingListInsufficientSupply(t *testing.T) {
	// Recipe needs 200 g chicken breast at 1 native serving, planned for 2:
	// demand 400 g against 300 g on hand leaves a 100 g shortage.
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 2,
		Ingredients: []recipe.IngredientLine{
			{Name: "chicken breast", Quantity: 200, Unit: "g", Category: "proteins"},
		},
	}}
	fridge := []FridgeItem{
		{Name: "chicken breast", Quantity: 300, Unit: "g", Category: "proteins", FridgeLifeDays: 5},
	}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	require.Len(t, result.ShoppingList, 1)

	item := result.ShoppingList[0]
	assert.Equal(t, StatusInsufficient, item.Status)
	assert.Equal(t, "100 g", item.Amount)
	assert.Equal(t, "300 g", item.CurrentAmount)
	assert.Equal(t, "400 g", item.NeededAmount)
	assert.Empty(t, result.RunningLow)
}

func TestBuildShoppingListInsufficientSupplyUSDisplay(t *testing.T) {
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 2,
		Ingredients: []recipe.IngredientLine{
			{Name: "chicken breast", Quantity: 200, Unit: "g"},
		},
	}}
	fridge := []FridgeItem{{Name: "chicken breast", Quantity: 300, Unit: "g", FridgeLifeDays: 5}}

	result := BuildShoppingList(meals, fridge, measurement.SystemUS)
	require.Len(t, result.ShoppingList, 1)

	// 300 g ≈ 10.6 oz, 400 g ≈ 14.1 oz, shortage 100 g ≈ 3.5 oz.
	assert.Equal(t, "3.5 oz", result.ShoppingList[0].Amount)
	assert.Equal(t, "10.6 oz", result.ShoppingList[0].CurrentAmount)
	assert.Equal(t, "14.1 oz", result.ShoppingList[0].NeededAmount)
}

func TestBuildShoppingListMissingCountIngredient(t *testing.T) {
	// "2 eggs" with no fridge match: count units pass through unconverted.
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 1,
		Ingredients: []recipe.IngredientLine{
			{Name: "eggs", Quantity: 2, Unit: ""},
		},
	}}

	result := BuildShoppingList(meals, nil, measurement.SystemUS)
	require.Len(t, result.ShoppingList, 1)

	item := result.ShoppingList[0]
	assert.Equal(t, StatusMissing, item.Status)
	assert.Equal(t, "2 pc", item.Amount)
	assert.Empty(t, item.CurrentAmount)
}

func TestBuildShoppingListSufficientSupplyEmitsNothing(t *testing.T) {
	meals := []PlannedMeal{{
		RecipeServings:  2,
		PlannedServings: 2,
		Ingredients: []recipe.IngredientLine{
			{Name: "milk", Quantity: 250, Unit: "ml"},
		},
	}}
	fridge := []FridgeItem{{Name: "milk", Quantity: 1, Unit: "l", FridgeLifeDays: 4}}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	assert.Empty(t, result.ShoppingList)
}

func TestBuildShoppingListAggregatesAcrossMeals(t *testing.T) {
	line := recipe.IngredientLine{Name: "Rice", Quantity: 100, Unit: "g"}
	meals := []PlannedMeal{
		{RecipeServings: 1, PlannedServings: 1, Ingredients: []recipe.IngredientLine{line}},
		{RecipeServings: 1, PlannedServings: 3, Ingredients: []recipe.IngredientLine{line}},
	}

	result := BuildShoppingList(meals, nil, measurement.SystemMetric)
	require.Len(t, result.ShoppingList, 1, "same ingredient across meals aggregates into one entry")
	assert.Equal(t, "400 g", result.ShoppingList[0].Amount)
	assert.Equal(t, "rice", result.ShoppingList[0].Name)
}

func TestBuildShoppingListFuzzyMatchesFridge(t *testing.T) {
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 1,
		Ingredients: []recipe.IngredientLine{
			{Name: "boneless chicken breast", Quantity: 100, Unit: "g"},
		},
	}}
	fridge := []FridgeItem{{Name: "chicken breast", Quantity: 500, Unit: "g", FridgeLifeDays: 5}}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	assert.Empty(t, result.ShoppingList, "fuzzy match should find the fridge entry")
}

func TestBuildShoppingListRunningLowDeduplicated(t *testing.T) {
	meals := []PlannedMeal{
		{RecipeServings: 1, PlannedServings: 1, Ingredients: []recipe.IngredientLine{
			{Name: "spinach", Quantity: 50, Unit: "g"},
		}},
		{RecipeServings: 1, PlannedServings: 1, Ingredients: []recipe.IngredientLine{
			{Name: "spinach", Quantity: 30, Unit: "g"},
		}},
	}
	fridge := []FridgeItem{{Name: "spinach", Quantity: 200, Unit: "g", FridgeLifeDays: 1}}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	require.Len(t, result.RunningLow, 1, "an expiring ingredient appears exactly once")

	low := result.RunningLow[0]
	assert.Equal(t, StatusExpiringSoon, low.Status)
	assert.Equal(t, 1, low.FridgeLifeDays)
	assert.Equal(t, "200 g", low.CurrentAmount)
}

func TestBuildShoppingListRunningLowIndependentOfDemand(t *testing.T) {
	// An expiring fridge item shows up even when no planned meal uses it.
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 1,
		Ingredients:     []recipe.IngredientLine{{Name: "rice", Quantity: 100, Unit: "g"}},
	}}
	fridge := []FridgeItem{
		{Name: "rice", Quantity: 500, Unit: "g", FridgeLifeDays: 30},
		{Name: "fresh basil", Quantity: 1, Unit: "bunch", FridgeLifeDays: 2},
	}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	require.Len(t, result.RunningLow, 1)
	assert.Equal(t, "fresh basil", result.RunningLow[0].Name)
}

func TestBuildShoppingListSkipsCrossBaseUnitSupply(t *testing.T) {
	// Demand in grams, fridge entry in pieces: no comparable base unit, so
	// no shortage entry is emitted rather than guessing.
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 1,
		Ingredients:     []recipe.IngredientLine{{Name: "tomato", Quantity: 300, Unit: "g"}},
	}}
	fridge := []FridgeItem{{Name: "tomato", Quantity: 2, Unit: "pc", FridgeLifeDays: 6}}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	assert.Empty(t, result.ShoppingList)
}

func TestBuildShoppingListDeterministicOrder(t *testing.T) {
	meals := []PlannedMeal{{
		RecipeServings:  1,
		PlannedServings: 1,
		Ingredients: []recipe.IngredientLine{
			{Name: "quinoa", Quantity: 100, Unit: "g"},
			{Name: "lentils", Quantity: 200, Unit: "g"},
			{Name: "couscous", Quantity: 150, Unit: "g"},
		},
	}}

	first := BuildShoppingList(meals, nil, measurement.SystemMetric)
	second := BuildShoppingList(meals, nil, measurement.SystemMetric)
	assert.Equal(t, first, second, "identical input must produce identical output")

	require.Len(t, first.ShoppingList, 3)
	assert.Equal(t, "quinoa", first.ShoppingList[0].Name)
	assert.Equal(t, "lentils", first.ShoppingList[1].Name)
	assert.Equal(t, "couscous", first.ShoppingList[2].Name)
}

func TestBuildShoppingListZeroDemandIsSatisfied(t *testing.T) {
	// A malformed amount parses to zero; zero demand is trivially covered.
	line := recipe.ParseIngredientLine("salt", "to taste")
	meals := []PlannedMeal{{RecipeServings: 1, PlannedServings: 1, Ingredients: []recipe.IngredientLine{line}}}
	fridge := []FridgeItem{{Name: "salt", Quantity: 100, Unit: "g", FridgeLifeDays: 365}}

	result := BuildShoppingList(meals, fridge, measurement.SystemMetric)
	assert.Empty(t, result.ShoppingList)
}
