// Package measurement contains the unit catalog and the conversion logic
// used across recipe scaling, fridge accounting and shopping-list math.
// Everything in this package is pure computation over in-memory values.
package measurement

import "strings"

// System identifies a measurement system.
type System string

const (
	SystemUS        System = "us"
	SystemMetric    System = "metric"
	SystemUniversal System = "universal"
)

// Dimension classifies what a unit measures.
type Dimension string

const (
	DimensionWeight Dimension = "weight"
	DimensionVolume Dimension = "volume"
	DimensionCount  Dimension = "count"
)

// Base units per dimension. Every weight factor is expressed in grams,
// every volume factor in milliliters. Count units have no factor.
const (
	BaseWeightUnit = "g"
	BaseVolumeUnit = "ml"
	BaseCountUnit  = "pc"
)

// Unit describes a single catalog entry.
type Unit struct {
	Name         string
	Abbreviation string
	System       System
	Dimension    Dimension
	Factor       float64 // to grams (weight) or milliliters (volume); 0 for count
}

// catalog is keyed by canonical abbreviation.
var catalog = map[string]Unit{
	// US weight
	"oz": {Name: "ounce", Abbreviation: "oz", System: SystemUS, Dimension: DimensionWeight, Factor: 28.35},
	"lb": {Name: "pound", Abbreviation: "lb", System: SystemUS, Dimension: DimensionWeight, Factor: 453.592},

	// US volume
	"cup":   {Name: "cup", Abbreviation: "cup", System: SystemUS, Dimension: DimensionVolume, Factor: 236.588},
	"tbsp":  {Name: "tablespoon", Abbreviation: "tbsp", System: SystemUS, Dimension: DimensionVolume, Factor: 14.787},
	"tsp":   {Name: "teaspoon", Abbreviation: "tsp", System: SystemUS, Dimension: DimensionVolume, Factor: 4.929},
	"fl oz": {Name: "fluid ounce", Abbreviation: "fl oz", System: SystemUS, Dimension: DimensionVolume, Factor: 29.574},
	"pt":    {Name: "pint", Abbreviation: "pt", System: SystemUS, Dimension: DimensionVolume, Factor: 473.176},
	"qt":    {Name: "quart", Abbreviation: "qt", System: SystemUS, Dimension: DimensionVolume, Factor: 946.353},
	"gal":   {Name: "gallon", Abbreviation: "gal", System: SystemUS, Dimension: DimensionVolume, Factor: 3785.41},

	// Metric weight
	"g":  {Name: "gram", Abbreviation: "g", System: SystemMetric, Dimension: DimensionWeight, Factor: 1},
	"kg": {Name: "kilogram", Abbreviation: "kg", System: SystemMetric, Dimension: DimensionWeight, Factor: 1000},
	"mg": {Name: "milligram", Abbreviation: "mg", System: SystemMetric, Dimension: DimensionWeight, Factor: 0.001},

	// Metric volume
	"ml": {Name: "milliliter", Abbreviation: "ml", System: SystemMetric, Dimension: DimensionVolume, Factor: 1},
	"l":  {Name: "liter", Abbreviation: "l", System: SystemMetric, Dimension: DimensionVolume, Factor: 1000},

	// Universal count
	"pc":    {Name: "piece", Abbreviation: "pc", System: SystemUniversal, Dimension: DimensionCount},
	"whole": {Name: "whole", Abbreviation: "whole", System: SystemUniversal, Dimension: DimensionCount},
	"clove": {Name: "clove", Abbreviation: "clove", System: SystemUniversal, Dimension: DimensionCount},
	"pinch": {Name: "pinch", Abbreviation: "pinch", System: SystemUniversal, Dimension: DimensionCount},
	"dash":  {Name: "dash", Abbreviation: "dash", System: SystemUniversal, Dimension: DimensionCount},
	"can":   {Name: "can", Abbreviation: "can", System: SystemUniversal, Dimension: DimensionCount},
	"pkg":   {Name: "package", Abbreviation: "pkg", System: SystemUniversal, Dimension: DimensionCount},
}

// aliases maps common spelling variants to canonical abbreviations.
var aliases = map[string]string{
	"cups":        "cup",
	"c":           "cup",
	"tablespoons": "tbsp",
	"tablespoon":  "tbsp",
	"tbs":         "tbsp",
	"teaspoons":   "tsp",
	"teaspoon":    "tsp",
	"ounces":      "oz",
	"ounce":       "oz",
	"pounds":      "lb",
	"pound":       "lb",
	"lbs":         "lb",
	"grams":       "g",
	"gram":        "g",
	"kilograms":   "kg",
	"kilogram":    "kg",
	"milligrams":  "mg",
	"milligram":   "mg",
	"milliliters": "ml",
	"milliliter":  "ml",
	"liters":      "l",
	"liter":       "l",
	"fluid ounce": "fl oz",
	"pints":       "pt",
	"pint":        "pt",
	"quarts":      "qt",
	"quart":       "qt",
	"gallons":     "gal",
	"gallon":      "gal",
	"pieces":      "pc",
	"piece":       "pc",
	"pcs":         "pc",
	"cloves":      "clove",
	"packages":    "pkg",
	"package":     "pkg",
	"cans":        "can",
}

// NormalizeUnit canonicalizes a free-text unit spelling to its abbreviation.
// Lookup is case-insensitive and whitespace-trimmed. Unknown units pass
// through unchanged so that opaque count-like units ("slice", "bunch")
// survive the round trip instead of failing.
func NormalizeUnit(unit string) string {
	normalized := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := aliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// LookupUnit resolves a free-text unit to its catalog entry.
// The boolean reports whether the unit is known to the catalog.
func LookupUnit(unit string) (Unit, bool) {
	u, ok := catalog[NormalizeUnit(unit)]
	return u, ok
}

// IsCountUnit reports whether the unit is count-dimensioned or unknown.
// Unknown units are treated as opaque count-like units throughout.
func IsCountUnit(unit string) bool {
	u, ok := LookupUnit(unit)
	if !ok {
		return true
	}
	return u.Dimension == DimensionCount
}
