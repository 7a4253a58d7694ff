// Package planner derives shopping-list and low-stock output from planned
// meals and fridge inventory. The whole computation is a pure function of
// its inputs: repeated calls with unchanged input produce identical output,
// including ordering.
package planner

import (
	"strconv"
	"strings"

	"github.com/platewise/v2/internal/domain/ingredient"
	"github.com/platewise/v2/internal/domain/measurement"
	"github.com/platewise/v2/internal/domain/recipe"
)

// ItemStatus classifies a shopping-list entry.
type ItemStatus string

const (
	StatusMissing      ItemStatus = "missing"
	StatusInsufficient ItemStatus = "insufficient"
)

// LowStockStatus classifies a running-low entry.
type LowStockStatus string

const (
	StatusLowStock     LowStockStatus = "low_stock"
	StatusExpiringSoon LowStockStatus = "expiring_soon"
)

// expiryThresholdDays is the fridge-life cutoff for the running-low list.
const expiryThresholdDays = 2

// PlannedMeal pairs a recipe's ingredient lines with the servings planned on
// the calendar.
type PlannedMeal struct {
	RecipeServings  int
	PlannedServings int
	Ingredients     []recipe.IngredientLine
}

// FridgeItem is a fridge entry joined with its catalog data, as supplied by
// the caller. The planner never performs I/O itself.
type FridgeItem struct {
	Name           string
	Quantity       float64
	Unit           string
	Category       string
	FridgeLifeDays int
}

// ShoppingItem is a derived shopping-list entry. Never persisted; recomputed
// from current fridge and meal-plan state on every request.
type ShoppingItem struct {
	Name          string     `json:"name"`
	Amount        string     `json:"amount"`
	Category      string     `json:"category"`
	Status        ItemStatus `json:"status"`
	CurrentAmount string     `json:"currentAmount,omitempty"`
	NeededAmount  string     `json:"neededAmount,omitempty"`
}

// LowStockItem is a derived running-low entry.
type LowStockItem struct {
	Name           string         `json:"name"`
	CurrentAmount  string         `json:"currentAmount"`
	FridgeLifeDays int            `json:"fridgeLife"`
	Status         LowStockStatus `json:"status"`
}

// Result is the output of BuildShoppingList.
type Result struct {
	ShoppingList []ShoppingItem `json:"shoppingList"`
	RunningLow   []LowStockItem `json:"runningLow"`
	Message      string         `json:"message,omitempty"`
}

// demand accumulates one ingredient's total requirement in its base unit.
type demand struct {
	name      string
	totalBase float64
	baseUnit  string
	category  string
}

// supply is a fridge item pre-converted to its base unit.
type supply struct {
	FridgeItem
	baseValue float64
	baseUnit  string
}

// BuildShoppingList aggregates per-recipe ingredient demand across the meal
// plan, compares it against fridge supply and emits shopping-list and
// running-low entries. Demand is aggregated in base units (grams,
// milliliters, or the count unit itself); supply is compared only when it
// shares the demand's base unit, since cross-dimension summation has no
// meaningful answer at cooking precision.
func BuildShoppingList(meals []PlannedMeal, fridge []FridgeItem, system measurement.System) Result {
	if len(meals) == 0 {
		return Result{
			ShoppingList: []ShoppingItem{},
			RunningLow:   []LowStockItem{},
			Message:      "No meals planned. Add meals to your calendar first.",
		}
	}

	demands := aggregateDemand(meals)
	supplies := convertSupply(fridge)

	fridgeNames := make([]string, len(supplies))
	for i, s := range supplies {
		fridgeNames[i] = s.Name
	}

	shoppingList := []ShoppingItem{}
	for _, d := range demands {
		idx := ingredient.Match(d.name, fridgeNames)
		if idx < 0 {
			shoppingList = append(shoppingList, ShoppingItem{
				Name:     d.name,
				Amount:   measurement.FormatDisplayAmount(d.totalBase, d.baseUnit, system),
				Category: d.category,
				Status:   StatusMissing,
			})
			continue
		}

		s := supplies[idx]
		if s.baseUnit != d.baseUnit || s.baseValue >= d.totalBase {
			continue
		}

		category := s.Category
		if category == "" {
			category = d.category
		}
		shoppingList = append(shoppingList, ShoppingItem{
			Name:          d.name,
			Amount:        measurement.FormatDisplayAmount(d.totalBase-s.baseValue, d.baseUnit, system),
			Category:      category,
			Status:        StatusInsufficient,
			CurrentAmount: measurement.FormatDisplayAmount(s.baseValue, s.baseUnit, system),
			NeededAmount:  measurement.FormatDisplayAmount(d.totalBase, d.baseUnit, system),
		})
	}

	return Result{
		ShoppingList: shoppingList,
		RunningLow:   collectRunningLow(supplies),
	}
}

// aggregateDemand walks every planned meal's ingredient lines, scales them
// by the serving multiplier, converts to base units and accumulates by
// lower-cased trimmed name. Insertion order is preserved so output is
// deterministic. When the same name recurs with a different base unit the
// later value is skipped: summing grams into milliliters would corrupt the
// total.
func aggregateDemand(meals []PlannedMeal) []demand {
	index := make(map[string]int)
	var demands []demand

	for _, meal := range meals {
		multiplier := servingMultiplier(meal)

		for _, line := range meal.Ingredients {
			name := strings.ToLower(strings.TrimSpace(line.Name))
			if name == "" {
				continue
			}

			adjusted := line.Quantity * multiplier
			base := measurement.ToBaseUnit(adjusted, line.Unit, name)

			if i, ok := index[name]; ok {
				if demands[i].baseUnit == base.Unit {
					demands[i].totalBase += base.Value
				}
				continue
			}

			index[name] = len(demands)
			demands = append(demands, demand{
				name:      name,
				totalBase: base.Value,
				baseUnit:  base.Unit,
				category:  line.Category,
			})
		}
	}

	return demands
}

func servingMultiplier(meal PlannedMeal) float64 {
	if meal.RecipeServings <= 0 || meal.PlannedServings <= 0 {
		return 1
	}
	return float64(meal.PlannedServings) / float64(meal.RecipeServings)
}

func convertSupply(fridge []FridgeItem) []supply {
	supplies := make([]supply, len(fridge))
	for i, item := range fridge {
		base := measurement.ToBaseUnit(item.Quantity, item.Unit, item.Name)
		supplies[i] = supply{
			FridgeItem: item,
			baseValue:  base.Value,
			baseUnit:   base.Unit,
		}
	}
	return supplies
}

// collectRunningLow emits every fridge item whose remaining fridge life is
// at or below the expiry threshold, independent of the shortage check.
// Iteration follows fridge insertion order and entries are deduplicated by
// name so an ingredient never appears twice.
func collectRunningLow(supplies []supply) []LowStockItem {
	runningLow := []LowStockItem{}
	seen := make(map[string]struct{})

	for _, s := range supplies {
		if s.FridgeLifeDays > expiryThresholdDays {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		runningLow = append(runningLow, LowStockItem{
			Name:           s.Name,
			CurrentAmount:  strconv.FormatFloat(s.Quantity, 'f', -1, 64) + " " + measurement.NormalizeUnit(s.Unit),
			FridgeLifeDays: s.FridgeLifeDays,
			Status:         StatusExpiringSoon,
		})
	}

	return runningLow
}
