package recipe

import (
	"strings"

	"github.com/platewise/v2/internal/domain/measurement"
)

// IngredientLine is one ingredient requirement of a recipe. Quantity and
// Unit are separate typed fields; the combined-string form only exists at
// the ingestion boundary.
type IngredientLine struct {
	Name      string
	Quantity  float64
	Unit      string
	Category  string
	Optional  bool
	Available bool // source-availability hint from recipe generation
}

// Validate validates the line.
func (l IngredientLine) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrIngredientNameRequired
	}
	if l.Quantity < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// ScaledQuantity returns the quantity adjusted by a serving multiplier.
func (l IngredientLine) ScaledQuantity(multiplier float64) float64 {
	return l.Quantity * multiplier
}

// DisplayAmount renders the line's amount for the given measurement system,
// converting to the system's conventional unit for the ingredient.
func (l IngredientLine) DisplayAmount(multiplier float64, system measurement.System) string {
	amount, unit := measurement.ConvertToSystem(l.ScaledQuantity(multiplier), l.Unit, l.Name, system)
	if measurement.IsCountUnit(l.Unit) {
		// Count units keep their own token; "2 eggs" never becomes cups.
		return measurement.FormatAmount(l.ScaledQuantity(multiplier), system) + " " + displayUnit(l.Unit)
	}
	return measurement.FormatAmount(amount, system) + " " + unit
}

// ParseIngredientLine is the single legacy-data parsing routine: it splits a
// combined amount string such as "1 1/2 cups" into typed quantity and unit
// fields. Malformed amounts degrade to zero rather than failing, so one bad
// line cannot abort an import.
func ParseIngredientLine(name, combinedAmount string) IngredientLine {
	amountText, unitText := measurement.SplitAmount(combinedAmount)
	parsed := measurement.ParseAmount(amountText)

	return IngredientLine{
		Name:     strings.TrimSpace(name),
		Quantity: parsed.Value,
		Unit:     measurement.NormalizeUnit(unitText),
	}
}

func displayUnit(unit string) string {
	if u := measurement.NormalizeUnit(unit); u != "" {
		return u
	}
	return measurement.BaseCountUnit
}
