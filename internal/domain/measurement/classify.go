package measurement

import "strings"

// IngredientType is a behavioral category derived from an ingredient's name.
// It drives the default unit for a measurement system and the density factor
// for volume/weight conversion. It is never persisted: every consumer derives
// it from the same keyword lists so classification cannot diverge.
type IngredientType string

const (
	IngredientLiquid  IngredientType = "liquid"
	IngredientProtein IngredientType = "protein"
	IngredientSpice   IngredientType = "spice"
	IngredientProduce IngredientType = "produce"
	IngredientSolid   IngredientType = "solid"
)

// Keyword lists checked in priority order. The first matching category wins,
// so "chicken broth" classifies as liquid, not protein. The lists only need
// to be consistent enough to pick a sensible unit and density, not
// botanically precise.
var (
	liquidKeywords = []string{
		"milk", "water", "oil", "broth", "stock", "juice",
		"sauce", "vinegar", "wine", "beer", "cream", "yogurt",
	}
	proteinKeywords = []string{
		"chicken", "beef", "pork", "fish", "salmon", "tuna",
		"turkey", "lamb", "shrimp", "steak", "bacon", "sausage",
	}
	spiceKeywords = []string{
		"salt", "pepper", "paprika", "cumin", "oregano", "basil",
		"thyme", "rosemary", "cinnamon", "ginger", "garlic powder", "onion powder",
	}
	produceKeywords = []string{
		"tomato", "onion", "carrot", "potato", "apple", "banana",
		"lettuce", "spinach", "broccoli", "bell pepper", "cucumber", "zucchini",
	}
)

// DetectIngredientType classifies an ingredient name into its behavioral
// category by substring matching. Names matching no list default to solid,
// the convention for grains, flour, sugar and other dry goods.
func DetectIngredientType(ingredientName string) IngredientType {
	name := strings.ToLower(ingredientName)

	for _, kw := range liquidKeywords {
		if strings.Contains(name, kw) {
			return IngredientLiquid
		}
	}
	for _, kw := range proteinKeywords {
		if strings.Contains(name, kw) {
			return IngredientProtein
		}
	}
	for _, kw := range spiceKeywords {
		if strings.Contains(name, kw) {
			return IngredientSpice
		}
	}
	for _, kw := range produceKeywords {
		if strings.Contains(name, kw) {
			return IngredientProduce
		}
	}

	return IngredientSolid
}
