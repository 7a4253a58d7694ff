package measurement

import "math"

// SolidDensity is the density approximation (g/ml) for dry solids measured
// by volume, e.g. cups of flour or rice. It is applied uniformly wherever a
// solid crosses the volume/weight boundary so the general converter and the
// base-unit path cannot disagree about how heavy a cup of flour is.
const SolidDensity = 0.6

// solidDensity is the active factor. SetSolidDensity overrides it once at
// startup from configuration; it is not safe to change while conversions
// are running.
var solidDensity = float64(SolidDensity)

// SetSolidDensity overrides the solid-density approximation. Values that
// are not positive are ignored.
func SetSolidDensity(density float64) {
	if density > 0 {
		solidDensity = density
	}
}

// ConversionResult carries a converted value plus a Degraded flag.
// Degraded means the amount passed through unconverted (unknown unit or a
// count unit on either side); the value is still usable, just approximate.
type ConversionResult struct {
	Value    float64
	Degraded bool
}

// BaseAmount is a quantity expressed in its dimension's base unit:
// grams for weight, milliliters for volume, the unit itself for count.
type BaseAmount struct {
	Value    float64
	Unit     string
	Degraded bool
}

// densityFor returns the g/ml approximation used when converting between
// volume and weight for the given ingredient category. Liquids and proteins
// are close enough to water for cooking purposes.
func densityFor(t IngredientType) float64 {
	if t == IngredientSolid {
		return solidDensity
	}
	return 1
}

// Convert converts an amount between two units. Same-dimension conversions
// go through the dimension's base unit. Cross-dimension conversions apply
// the density approximation for the ingredient category. Count units on
// either side pass through unchanged: "3 cloves" converted to cups is
// still 3, flagged degraded. Unknown units likewise pass through degraded
// instead of failing.
func Convert(amount float64, fromUnit, toUnit string, ingredientType IngredientType) ConversionResult {
	from, fromOK := LookupUnit(fromUnit)
	to, toOK := LookupUnit(toUnit)

	if NormalizeUnit(fromUnit) == NormalizeUnit(toUnit) {
		return ConversionResult{Value: amount}
	}
	if !fromOK || !toOK {
		return ConversionResult{Value: amount, Degraded: true}
	}
	if from.Dimension == DimensionCount || to.Dimension == DimensionCount {
		return ConversionResult{Value: amount, Degraded: true}
	}

	if from.Dimension == to.Dimension {
		return ConversionResult{Value: amount * from.Factor / to.Factor}
	}

	density := densityFor(ingredientType)
	if from.Dimension == DimensionVolume && to.Dimension == DimensionWeight {
		grams := amount * from.Factor * density
		return ConversionResult{Value: grams / to.Factor}
	}
	// weight -> volume
	ml := amount * from.Factor / density
	return ConversionResult{Value: ml / to.Factor}
}

// ToBaseUnit maps a quantity to its dimension's base unit for aggregation:
// any weight unit to grams, any volume unit to milliliters. Solids measured
// by volume land in grams via SolidDensity so that "1 cup flour" and
// "100 g flour" aggregate in the same unit. Count-like and unknown units
// keep their own unit (defaulting to pc when the unit text is empty).
func ToBaseUnit(amount float64, unit, ingredientName string) BaseAmount {
	normalized := NormalizeUnit(unit)
	u, ok := catalog[normalized]
	if !ok {
		if normalized == "" {
			normalized = BaseCountUnit
		}
		return BaseAmount{Value: amount, Unit: normalized, Degraded: true}
	}

	switch u.Dimension {
	case DimensionWeight:
		return BaseAmount{Value: amount * u.Factor, Unit: BaseWeightUnit}
	case DimensionVolume:
		if DetectIngredientType(ingredientName) == IngredientSolid {
			return BaseAmount{Value: amount * u.Factor * solidDensity, Unit: BaseWeightUnit}
		}
		return BaseAmount{Value: amount * u.Factor, Unit: BaseVolumeUnit}
	default:
		return BaseAmount{Value: amount, Unit: normalized}
	}
}

// StandardUnit picks the conventional unit for an ingredient category in the
// given measurement system.
func StandardUnit(ingredientType IngredientType, system System) string {
	if system == SystemMetric {
		if ingredientType == IngredientLiquid {
			return "ml"
		}
		return "g"
	}

	switch ingredientType {
	case IngredientLiquid, IngredientSolid:
		return "cup"
	case IngredientProtein, IngredientProduce:
		return "oz"
	case IngredientSpice:
		return "tsp"
	default:
		return "cup"
	}
}

// ConvertToSystem converts an amount to the conventional unit for the
// ingredient in the target measurement system, rounded to two decimals.
func ConvertToSystem(amount float64, currentUnit, ingredientName string, targetSystem System) (float64, string) {
	ingredientType := DetectIngredientType(ingredientName)
	targetUnit := StandardUnit(ingredientType, targetSystem)
	converted := Convert(amount, currentUnit, targetUnit, ingredientType)

	rounded := math.Round(converted.Value*100) / 100
	return rounded, targetUnit
}
