package usecase

import (
	"fmt"
	"strings"

	"github.com/foodbook/backend/internal/domain"
)

// IngredientSource is one raw ingredient occurrence taken from a recipe or
// meal-plan entry, before consolidation.
type IngredientSource struct {
	Name        string
	Quantity    float64
	Unit        string
	RecipeTitle string
	Nutrition   string
}

// nameGroup accumulates every occurrence of one ingredient name
type nameGroup struct {
	displayName string
	unitOrder   []string
	quantities  map[string]float64
	nutrition   string
	recipes     map[string]bool
}

// Aggregator merges ingredient occurrences across recipes into unique
// shopping items with combined quantities. Merging requires a shared
// canonical unit; incompatible units stay as separate line entries so no
// quantity is ever silently dropped or coerced.
type Aggregator struct {
	normalizer *UnitNormalizer
}

// NewAggregator creates an aggregator backed by the given unit normalizer
func NewAggregator(normalizer *UnitNormalizer) *Aggregator {
	if normalizer == nil {
		normalizer = NewUnitNormalizer()
	}
	return &Aggregator{normalizer: normalizer}
}

// Aggregate consolidates the sources into partial shopping items, grouped
// by case-insensitive trimmed name and partitioned by canonical unit.
// Output order is first-seen order of the ingredient name across the input;
// sorting for the shopping route happens later in the pipeline.
//
// Aggregation is idempotent: feeding the produced items back in as sources
// yields the same totals.
func (a *Aggregator) Aggregate(sources []IngredientSource) ([]domain.ShoppingItem, error) {
	groups := make(map[string]*nameGroup)
	var order []string

	for _, src := range sources {
		name := strings.TrimSpace(src.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)

		qty := src.Quantity
		if qty < 0 {
			qty = 0
		}
		qty, unit, _ := a.normalizer.Normalize(qty, src.Unit, name)

		g, ok := groups[key]
		if !ok {
			g = &nameGroup{
				displayName: name,
				quantities:  make(map[string]float64),
				recipes:     make(map[string]bool),
			}
			groups[key] = g
			order = append(order, key)
		}

		if _, seen := g.quantities[unit]; !seen {
			g.unitOrder = append(g.unitOrder, unit)
		}
		g.quantities[unit] += qty
		if g.nutrition == "" {
			g.nutrition = src.Nutrition
		}
		if title := strings.TrimSpace(src.RecipeTitle); title != "" {
			g.recipes[title] = true
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no usable ingredients", domain.ErrInvalidInput)
	}

	var items []domain.ShoppingItem
	for _, key := range order {
		g := groups[key]
		recipeCount := len(g.recipes)
		if recipeCount == 0 {
			recipeCount = 1
		}
		for _, unit := range g.unitOrder {
			item := domain.ShoppingItem{
				Name:            g.displayName,
				Quantity:        g.quantities[unit],
				Unit:            unit,
				RecipeCount:     recipeCount,
				NutritionalInfo: g.nutrition,
			}
			// A name split across incompatible units keeps one line per
			// unit; the note disambiguates them for the shopper.
			if len(g.unitOrder) > 1 {
				item.Notes = fmt.Sprintf("measured in %s", unit)
			}
			items = append(items, item)
		}
	}

	return items, nil
}
