package usecase

import "strings"

// UnitFamily is the measurement family a unit belongs to. Units only merge
// within one family, and only via the family's base unit; there is no
// cross-family conversion (no gram<->cup density tables).
type UnitFamily string

const (
	FamilyCount   UnitFamily = "count"
	FamilyMass    UnitFamily = "mass"
	FamilyVolume  UnitFamily = "volume"
	FamilyUnknown UnitFamily = "unknown"
)

// Base units per family
const (
	UnitPiece      = "piece"
	UnitGram       = "gram"
	UnitMilliliter = "milliliter"
)

// unitSynonyms maps unit spellings to one canonical token
var unitSynonyms = map[string]string{
	// Count
	"piece": UnitPiece, "pieces": UnitPiece, "pc": UnitPiece, "pcs": UnitPiece,
	"each": UnitPiece, "ea": UnitPiece, "count": UnitPiece, "ct": UnitPiece,
	"unit": UnitPiece, "units": UnitPiece, "whole": UnitPiece,
	"clove": "clove", "cloves": "clove",
	"pinch": "pinch", "pinches": "pinch",
	"slice": "slice", "slices": "slice",
	"bunch": "bunch", "bunches": "bunch",
	// Mass
	"g": UnitGram, "gram": UnitGram, "grams": UnitGram,
	"kg": "kilogram", "kgs": "kilogram", "kilo": "kilogram", "kilos": "kilogram",
	"kilogram": "kilogram", "kilograms": "kilogram",
	"mg": "milligram", "milligram": "milligram", "milligrams": "milligram",
	"oz": "ounce", "ounce": "ounce", "ounces": "ounce",
	"lb": "pound", "lbs": "pound", "pound": "pound", "pounds": "pound",
	// Volume
	"ml": UnitMilliliter, "milliliter": UnitMilliliter, "milliliters": UnitMilliliter,
	"millilitre": UnitMilliliter, "millilitres": UnitMilliliter,
	"l": "liter", "liter": "liter", "liters": "liter", "litre": "liter", "litres": "liter",
	"tsp": "teaspoon", "teaspoon": "teaspoon", "teaspoons": "teaspoon",
	"tbsp": "tablespoon", "tablespoon": "tablespoon", "tablespoons": "tablespoon",
	"cup": "cup", "cups": "cup",
}

// unitConversions maps a canonical token to its family base unit and the
// multiplication factor into that base. Tokens absent here are bases
// themselves (factor 1) or unconvertible.
var unitConversions = map[string]struct {
	base   string
	factor float64
}{
	"kilogram":   {UnitGram, 1000},
	"milligram":  {UnitGram, 0.001},
	"ounce":      {UnitGram, 28.35},
	"pound":      {UnitGram, 453.59},
	"liter":      {UnitMilliliter, 1000},
	"teaspoon":   {UnitMilliliter, 5},
	"tablespoon": {UnitMilliliter, 15},
	"cup":        {UnitMilliliter, 240},
}

// unitFamilies maps every canonical token to its measurement family
var unitFamilies = map[string]UnitFamily{
	UnitPiece: FamilyCount, "clove": FamilyCount, "pinch": FamilyCount,
	"slice": FamilyCount, "bunch": FamilyCount,
	UnitGram: FamilyMass, "kilogram": FamilyMass, "milligram": FamilyMass,
	"ounce": FamilyMass, "pound": FamilyMass,
	UnitMilliliter: FamilyVolume, "liter": FamilyVolume, "teaspoon": FamilyVolume,
	"tablespoon": FamilyVolume, "cup": FamilyVolume,
}

// UnitNormalizer converts heterogeneous ingredient units into a canonical
// comparable form. It never guesses: a unit it does not recognize is passed
// through unchanged and flagged, so the aggregator keeps such entries as
// separate lines instead of forcing an invalid merge.
type UnitNormalizer struct{}

// NewUnitNormalizer creates a unit normalizer
func NewUnitNormalizer() *UnitNormalizer {
	return &UnitNormalizer{}
}

// Normalize converts a quantity/unit pair into the canonical base unit of
// its family. The returned bool reports whether the unit was recognized;
// unrecognized units come back lowercased but otherwise untouched.
// An empty unit on an ingredient is read as a count of whole items.
func (n *UnitNormalizer) Normalize(quantity float64, unit, ingredientName string) (float64, string, bool) {
	token := strings.ToLower(strings.TrimSpace(unit))
	if token == "" {
		return quantity, UnitPiece, true
	}

	canonical, ok := unitSynonyms[token]
	if !ok {
		return quantity, token, false
	}

	if conv, ok := unitConversions[canonical]; ok {
		return quantity * conv.factor, conv.base, true
	}
	return quantity, canonical, true
}

// Family reports the measurement family of a canonical unit token
func (n *UnitNormalizer) Family(canonicalUnit string) UnitFamily {
	if f, ok := unitFamilies[canonicalUnit]; ok {
		return f
	}
	return FamilyUnknown
}

// Compatible reports whether two canonical unit tokens can be merged.
// After normalization this reduces to string equality: same-family units
// were already converted to the family base, and unknown units only merge
// with themselves.
func (n *UnitNormalizer) Compatible(a, b string) bool {
	return a == b
}
