package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/foodbook/backend/internal/domain"
)

const exportTimeLayout = "2006-01-02 15:04"

// Exporter renders a ShoppingListResult into a deterministic plain-text
// report. Currency is rounded to two decimals and durations to whole
// minutes in the rendered text only; the underlying fields keep full
// precision.
type Exporter struct{}

// NewExporter creates an exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Render produces the textual shopping list
func (e *Exporter) Render(result *domain.ShoppingListResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	rule := strings.Repeat("=", 48)

	b.WriteString(rule + "\n")
	b.WriteString("  " + result.ListName + "\n")
	b.WriteString("  Generated: " + result.GeneratedAt.Format(exportTimeLayout) + "\n")
	b.WriteString(rule + "\n")

	if len(result.RecipeNames) > 0 {
		b.WriteString("Recipes: " + strings.Join(result.RecipeNames, ", ") + "\n")
	}
	fmt.Fprintf(&b, "Items: %d | Estimated cost: $%.2f | Estimated time: %d min\n",
		result.TotalItems, result.EstimatedCost, wholeMinutes(result.EstimatedShoppingTime))

	for ci := range result.Categories {
		cat := &result.Categories[ci]
		fmt.Fprintf(&b, "\n%s %s — %s ($%.2f, %d item(s))\n",
			cat.Icon, cat.Name, cat.StoreSection, cat.CategoryTotal, cat.ItemCount())
		if cat.ShoppingOrder != "" {
			b.WriteString("  Route: " + cat.ShoppingOrder + "\n")
		}

		for _, key := range cat.ItemKeys {
			item := result.ItemByKey(key)
			if item == nil {
				continue
			}
			e.renderItem(&b, item)
		}
	}

	if len(result.StoreSuggestions) > 0 {
		b.WriteString("\nStore suggestions:\n")
		for _, s := range result.StoreSuggestions {
			b.WriteString("  - " + s + "\n")
		}
	}
	if len(result.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for _, tip := range result.Tips {
			b.WriteString("  - " + tip + "\n")
		}
	}
	if result.PotentialSavings > 0 {
		fmt.Fprintf(&b, "\nPotential bulk savings: $%.2f\n", result.PotentialSavings)
	}

	return b.String()
}

// renderItem writes one item line plus its optional detail lines
func (e *Exporter) renderItem(b *strings.Builder, item *domain.ShoppingItem) {
	checked := "[ ]"
	if item.IsChecked {
		checked = "[x]"
	}

	marker := ""
	switch item.Priority {
	case priorityEssential:
		marker = "(!) "
	case priorityOptional:
		marker = "(opt) "
	}

	fmt.Fprintf(b, "  %s %s%s — %s %s @ $%.2f", checked, marker, item.Name,
		trimQuantity(item.Quantity), item.Unit, item.EstimatedPrice)
	if item.IsBulkPurchase {
		fmt.Fprintf(b, " [bulk: save $%.2f]", item.BulkSavings)
	}
	b.WriteString("\n")

	if item.Notes != "" {
		b.WriteString("        note: " + item.Notes + "\n")
	}
	if len(item.Substitutions) > 0 {
		b.WriteString("        swap: " + strings.Join(item.Substitutions, ", ") + "\n")
	}
	if item.NutritionalInfo != "" {
		b.WriteString("        nutrition: " + item.NutritionalInfo + "\n")
	}
}

// trimQuantity formats a quantity without trailing zeros (5, 2.5, 0.25)
func trimQuantity(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// wholeMinutes rounds a duration to whole minutes for display
func wholeMinutes(d time.Duration) int {
	return int(d.Round(time.Minute) / time.Minute)
}
