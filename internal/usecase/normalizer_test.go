package usecase

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewUnitNormalizer()

	tests := []struct {
		name     string
		quantity float64
		unit     string
		wantQty  float64
		wantUnit string
		wantOK   bool
	}{
		{"piece synonym", 3, "pieces", 3, "piece", true},
		{"pc abbreviation", 2, "pc", 2, "piece", true},
		{"gram passthrough", 200, "g", 200, "gram", true},
		{"kilogram to gram", 1.5, "kg", 1500, "gram", true},
		{"milligram to gram", 500, "mg", 0.5, "gram", true},
		{"ounce to gram", 2, "oz", 56.7, "gram", true},
		{"teaspoon to milliliter", 1, "tsp", 5, "milliliter", true},
		{"tablespoon to milliliter", 2, "tbsp", 30, "milliliter", true},
		{"cup to milliliter", 0.5, "cup", 120, "milliliter", true},
		{"liter to milliliter", 1.25, "l", 1250, "milliliter", true},
		{"case and whitespace", 4, "  Grams ", 4, "gram", true},
		{"empty unit defaults to piece", 2, "", 2, "piece", true},
		{"clove kept as count unit", 3, "cloves", 3, "clove", true},
		{"unknown unit passes through", 1, "dollop", 1, "dollop", false},
		{"unknown unit lowercased", 1, "Dollop", 1, "dollop", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotQty, gotUnit, gotOK := n.Normalize(tt.quantity, tt.unit, "ingredient")
			if math.Abs(gotQty-tt.wantQty) > 1e-9 {
				t.Errorf("quantity = %v, want %v", gotQty, tt.wantQty)
			}
			if gotUnit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", gotUnit, tt.wantUnit)
			}
			if gotOK != tt.wantOK {
				t.Errorf("ok = %v, want %v", gotOK, tt.wantOK)
			}
		})
	}
}

func TestFamily(t *testing.T) {
	n := NewUnitNormalizer()

	tests := []struct {
		unit string
		want UnitFamily
	}{
		{"piece", FamilyCount},
		{"clove", FamilyCount},
		{"gram", FamilyMass},
		{"milliliter", FamilyVolume},
		{"dollop", FamilyUnknown},
	}

	for _, tt := range tests {
		if got := n.Family(tt.unit); got != tt.want {
			t.Errorf("Family(%q) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	n := NewUnitNormalizer()

	t.Run("same canonical unit merges", func(t *testing.T) {
		_, u1, _ := n.Normalize(1, "tsp", "salt")
		_, u2, _ := n.Normalize(1, "cup", "salt")
		if !n.Compatible(u1, u2) {
			t.Errorf("volume units should be compatible after normalization, got %q vs %q", u1, u2)
		}
	})

	t.Run("cross family never merges", func(t *testing.T) {
		_, u1, _ := n.Normalize(1, "tsp", "salt")
		_, u2, _ := n.Normalize(200, "g", "salt")
		if n.Compatible(u1, u2) {
			t.Error("volume and mass units must not be compatible")
		}
	})

	t.Run("unknown unit only merges with itself", func(t *testing.T) {
		if !n.Compatible("dollop", "dollop") {
			t.Error("identical unknown units should be compatible")
		}
		if n.Compatible("dollop", "piece") {
			t.Error("unknown unit must not merge with piece")
		}
	})
}
