package measurement

import (
	"fmt"
	"math"
	"strings"
)

// usFractions are the cooking fractions a US-system amount may be rendered
// with, matched against the fractional remainder within a 0.05 tolerance.
var usFractions = []struct {
	value float64
	glyph string
}{
	{0.125, "⅛"},
	{0.25, "¼"},
	{0.333, "⅓"},
	{0.5, "½"},
	{0.667, "⅔"},
	{0.75, "¾"},
}

// FormatDisplayAmount renders a base-unit value as a user-facing string in
// the target measurement system. Grams scale to kg above 1000 (or to oz/lb
// for US, threshold one pound); milliliters scale to l (or to tbsp/cups for
// US, threshold one cup). Count units render as a rounded integer plus the
// unit token.
func FormatDisplayAmount(baseValue float64, baseUnit string, system System) string {
	switch baseUnit {
	case BaseWeightUnit:
		if system == SystemMetric {
			if baseValue >= 1000 {
				return fmt.Sprintf("%.1f kg", baseValue/1000)
			}
			return fmt.Sprintf("%d g", int(math.Round(baseValue)))
		}
		if baseValue >= 453.592 {
			return fmt.Sprintf("%.1f lb", baseValue/453.592)
		}
		return fmt.Sprintf("%.1f oz", baseValue/28.35)

	case BaseVolumeUnit:
		if system == SystemMetric {
			if baseValue >= 1000 {
				return fmt.Sprintf("%.1f l", baseValue/1000)
			}
			return fmt.Sprintf("%d ml", int(math.Round(baseValue)))
		}
		if baseValue >= 236.588 {
			return fmt.Sprintf("%.1f cups", baseValue/236.588)
		}
		return fmt.Sprintf("%.1f tbsp", baseValue/14.787)

	default:
		return fmt.Sprintf("%d %s", int(math.Round(baseValue)), baseUnit)
	}
}

// FormatAmount renders a plain numeric amount for serving-scaled ingredient
// display. Metric amounts use decimal notation scaled by magnitude; US
// amounts prefer cooking fractions (1 ½, ⅔) and fall back to a trimmed
// two-decimal string when no fraction is close enough.
func FormatAmount(amount float64, system System) string {
	if system == SystemMetric {
		switch {
		case amount >= 1000:
			return fmt.Sprintf("%.1f", amount/1000)
		case amount >= 100:
			return fmt.Sprintf("%d", int(math.Round(amount)))
		case amount >= 10:
			return fmt.Sprintf("%.1f", amount)
		default:
			return trimDecimal(amount)
		}
	}

	whole := math.Floor(amount)
	decimal := amount - whole
	for _, frac := range usFractions {
		if math.Abs(decimal-frac.value) < 0.05 {
			if whole > 0 {
				return fmt.Sprintf("%d %s", int(whole), frac.glyph)
			}
			return frac.glyph
		}
	}

	return trimDecimal(amount)
}

// UnitInstructions returns the measurement directives embedded in recipe
// generation prompts so the model emits amounts in the user's system.
func UnitInstructions(system System) string {
	if system == SystemMetric {
		return `Use METRIC units exclusively:
- Liquids (milk, water, oil, broth): milliliters (ml) or liters (l)
- Solids (flour, rice, sugar): grams (g) or kilograms (kg)
- Proteins (chicken, beef, fish): grams (g) or kilograms (kg)
- Produce (vegetables, fruits): grams (g) for weight
- Spices: grams (g) or milliliters (ml) for small amounts
- Use whole numbers or simple decimals (e.g., 250g, 1.5kg, 500ml)`
	}
	return `Use US/IMPERIAL units exclusively:
- Liquids (milk, water, oil, broth): cups, fluid ounces (fl oz), tablespoons (tbsp), teaspoons (tsp)
- Solids (flour, rice, sugar): cups, tablespoons (tbsp), teaspoons (tsp)
- Proteins (chicken, beef, fish): pounds (lb) or ounces (oz)
- Produce (vegetables, fruits): whole pieces, pounds (lb), or ounces (oz)
- Spices: tablespoons (tbsp), teaspoons (tsp), pinches
- Use fractions for precision (e.g., 1/2 cup, 1 1/2 lbs, 2/3 cup)`
}

// trimDecimal formats to two decimals and strips trailing zeros and dots,
// so 1.50 renders as "1.5" and 2.00 as "2".
func trimDecimal(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
