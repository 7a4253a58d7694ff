package recipe

// NutritionEstimate holds caller-supplied per-serving estimates. Values are
// not verified against any nutritional database.
type NutritionEstimate struct {
	Calories int
	Protein  float64 // grams
	Carbs    float64 // grams
	Fat      float64 // grams
	Fiber    float64 // grams
}
