package usecase

import (
	"fmt"
	"strings"

	"github.com/foodbook/backend/internal/domain"
)

// bulkThresholds lists, per staple category, the aggregated quantity per
// canonical unit past which a larger pack is worth buying. Categories
// absent here are never flagged for bulk purchase.
var bulkThresholds = map[string]map[string]float64{
	"Produce": {UnitPiece: 6, UnitGram: 1500, "bunch": 3},
	"Protein": {UnitPiece: 8, UnitGram: 1000},
	"Dairy":   {UnitPiece: 6, UnitGram: 1000, UnitMilliliter: 2000},
	"Pantry":  {UnitPiece: 10, UnitGram: 1000, UnitMilliliter: 1500},
	"Bakery":  {UnitPiece: 6},
}

// bulkDiscountRates is the assumed larger-pack discount per category
var bulkDiscountRates = map[string]float64{
	"Produce": 0.10,
	"Protein": 0.20,
	"Dairy":   0.12,
	"Pantry":  0.15,
	"Bakery":  0.10,
}

// substitutionTable maps ingredient names to ordered alternatives
var substitutionTable = map[string][]string{
	"butter":      {"margarine", "coconut oil"},
	"milk":        {"oat milk", "almond milk", "soy milk"},
	"buttermilk":  {"milk with lemon juice", "plain yogurt"},
	"heavy cream": {"evaporated milk", "greek yogurt"},
	"sour cream":  {"greek yogurt", "crème fraîche"},
	"egg":         {"flax egg", "applesauce"},
	"eggs":        {"flax egg", "applesauce"},
	"sugar":       {"honey", "maple syrup"},
	"honey":       {"maple syrup", "agave nectar"},
	"olive oil":   {"canola oil", "sunflower oil"},
	"vegetable oil": {"canola oil", "melted butter"},
	"flour":       {"almond flour", "oat flour"},
	"soy sauce":   {"tamari", "coconut aminos"},
	"lemon":       {"lime", "white wine vinegar"},
	"onion":       {"shallot", "leek"},
	"garlic":      {"garlic powder", "shallot"},
	"basil":       {"oregano", "thyme"},
	"cilantro":    {"parsley"},
	"chicken":     {"turkey", "tofu"},
	"ground beef": {"ground turkey", "lentils"},
	"parmesan":    {"pecorino", "nutritional yeast"},
	"yogurt":      {"sour cream", "kefir"},
	"rice":        {"quinoa", "couscous"},
	"pasta":       {"zucchini noodles", "rice noodles"},
}

// Advisor flags bulk-purchase opportunities on aggregated items and
// attaches substitution suggestions from the static table.
type Advisor struct{}

// NewAdvisor creates an advisor over the static bulk and substitution tables
func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Advise sets the bulk-purchase flag, bulk savings and substitutions on an
// item whose category and estimated price are already populated. Savings
// are a fixed per-category share of the estimated price, never negative and
// never more than the price itself. Items without a substitution entry get
// an empty list, not an error.
func (a *Advisor) Advise(item *domain.ShoppingItem) {
	item.IsBulkPurchase = false
	item.BulkSavings = 0

	if thresholds, ok := bulkThresholds[item.Category]; ok {
		if threshold, ok := thresholds[item.Unit]; ok && item.Quantity >= threshold {
			rate, ok := bulkDiscountRates[item.Category]
			if !ok {
				rate = defaultBulkDiscountPct
			}
			savings := item.EstimatedPrice * rate
			if savings < 0 {
				savings = 0
			}
			if savings > item.EstimatedPrice {
				savings = item.EstimatedPrice
			}
			item.IsBulkPurchase = true
			item.BulkSavings = savings
		}
	}

	subs, ok := substitutionTable[strings.ToLower(strings.TrimSpace(item.Name))]
	if !ok {
		item.Substitutions = []string{}
		return
	}
	item.Substitutions = append([]string(nil), subs...)
}

// ListAdvice derives the advisory sections for a finished list: store
// suggestions from the categories on the route and general tips from the
// item mix. Purely informational and deterministic for a given list.
func (a *Advisor) ListAdvice(items []domain.ShoppingItem, categories []domain.ShoppingCategory) (suggestions, tips []string) {
	bulkCount := 0
	multiRecipe := 0
	for i := range items {
		if items[i].IsBulkPurchase {
			bulkCount++
		}
		if items[i].RecipeCount > 1 {
			multiRecipe++
		}
	}

	if len(categories) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Follow the aisle order below; the route covers %d sections starting with %s.",
			len(categories), categories[0].StoreSection))
	}
	if bulkCount > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"A warehouse store may pay off: %d item(s) qualify for bulk packs.", bulkCount))
	}

	if multiRecipe > 0 {
		tips = append(tips, fmt.Sprintf(
			"%d item(s) are shared across recipes; quantities are already combined.", multiRecipe))
	}
	for i := range categories {
		if categories[i].Name == "Spices & Condiments" {
			tips = append(tips, "Check your spice rack before buying; small amounts may already be at home.")
			break
		}
	}
	if len(items) > 0 {
		tips = append(tips, "Prices are estimates from a static table, not live store prices.")
	}
	return suggestions, tips
}
