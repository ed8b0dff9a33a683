package usecase

import (
	"sort"
	"strings"

	"github.com/foodbook/backend/internal/domain"
)

// Optimizer post-processes an already-generated list: it re-runs
// de-duplication as a guard against inconsistent upstream merges, re-sorts
// categories and items into a stable shopping route, and recomputes every
// derived total from current item state so user edits cannot desync them.
//
// Optimize is idempotent: running it on its own output is a no-op.
type Optimizer struct {
	classifier *Classifier
	estimator  *Estimator
	advisor    *Advisor
}

// NewOptimizer creates an optimizer sharing the pipeline's classifier,
// estimator and advisor so recomputed values match generation exactly.
func NewOptimizer(classifier *Classifier, estimator *Estimator, advisor *Advisor) *Optimizer {
	return &Optimizer{classifier: classifier, estimator: estimator, advisor: advisor}
}

// Optimize returns a new result with IsOptimized set. The input is not
// mutated.
func (o *Optimizer) Optimize(result *domain.ShoppingListResult) (*domain.ShoppingListResult, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	out := result.Clone()
	out.Items = o.dedupe(out.Items)

	// Re-derive price, bulk advice and classification-dependent fields so
	// merged quantities and edited items carry consistent numbers.
	for i := range out.Items {
		item := &out.Items[i]
		o.classifier.Apply(item)
		item.EstimatedPrice = o.estimator.Price(item)
		checked := item.IsChecked
		o.advisor.Advise(item)
		item.IsChecked = checked
	}

	o.sortItems(out.Items)
	out.Categories = o.classifier.BuildCategories(out.Items)

	var cost, savings float64
	for i := range out.Items {
		cost += out.Items[i].EstimatedPrice
		savings += out.Items[i].BulkSavings
	}
	out.EstimatedCost = cost
	out.PotentialSavings = savings
	out.TotalItems = len(out.Items)
	out.EstimatedShoppingTime = o.estimator.ShoppingTime(len(out.Items), len(out.Categories))
	out.IsOptimized = true

	return out, nil
}

// dedupe merges items sharing a (name, unit) key, preserving first-seen
// order. Quantities sum; a checked flag survives if any duplicate carried it.
func (o *Optimizer) dedupe(items []domain.ShoppingItem) []domain.ShoppingItem {
	index := make(map[string]int)
	out := make([]domain.ShoppingItem, 0, len(items))

	for i := range items {
		key := items[i].Key()
		if at, ok := index[key]; ok {
			kept := &out[at]
			kept.Quantity += items[i].Quantity
			kept.IsChecked = kept.IsChecked || items[i].IsChecked
			if items[i].RecipeCount > kept.RecipeCount {
				kept.RecipeCount = items[i].RecipeCount
			}
			if kept.Notes == "" {
				kept.Notes = items[i].Notes
			}
			if kept.NutritionalInfo == "" {
				kept.NutritionalInfo = items[i].NutritionalInfo
			}
			continue
		}
		index[key] = len(out)
		out = append(out, items[i])
	}
	return out
}

// sortItems orders the flat list to match the category walk: category
// priority, category name, then item priority and name. Deterministic for
// a given item set, which makes repeated optimization stable.
func (o *Optimizer) sortItems(items []domain.ShoppingItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ci := o.classifier.CategoryMeta(items[i].Category)
		cj := o.classifier.CategoryMeta(items[j].Category)
		if ci.Priority != cj.Priority {
			return ci.Priority < cj.Priority
		}
		if ci.Name != cj.Name {
			return ci.Name < cj.Name
		}
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		ni := strings.ToLower(items[i].Name)
		nj := strings.ToLower(items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return items[i].Unit < items[j].Unit
	})
}
