package usecase

import (
	"testing"

	"github.com/foodbook/backend/internal/domain"
)

func TestAdvise(t *testing.T) {
	a := NewAdvisor()

	t.Run("flags bulk purchase past the category threshold", func(t *testing.T) {
		item := domain.ShoppingItem{
			Name: "Chicken", Quantity: 1200, Unit: "gram",
			Category: "Protein", EstimatedPrice: 40.0,
		}
		a.Advise(&item)
		if !item.IsBulkPurchase {
			t.Fatal("1200g of protein should be flagged for bulk purchase")
		}
		if item.BulkSavings <= 0 {
			t.Errorf("BulkSavings = %v, want > 0", item.BulkSavings)
		}
		if item.BulkSavings > item.EstimatedPrice {
			t.Errorf("BulkSavings = %v exceeds price %v", item.BulkSavings, item.EstimatedPrice)
		}
	})

	t.Run("below threshold stays unflagged", func(t *testing.T) {
		item := domain.ShoppingItem{
			Name: "Chicken", Quantity: 300, Unit: "gram",
			Category: "Protein", EstimatedPrice: 10.0,
		}
		a.Advise(&item)
		if item.IsBulkPurchase || item.BulkSavings != 0 {
			t.Errorf("got bulk=%v savings=%v, want false/0", item.IsBulkPurchase, item.BulkSavings)
		}
	})

	t.Run("non-staple categories never flag", func(t *testing.T) {
		item := domain.ShoppingItem{
			Name: "Paprika", Quantity: 5000, Unit: "gram",
			Category: "Spices & Condiments", EstimatedPrice: 30.0,
		}
		a.Advise(&item)
		if item.IsBulkPurchase {
			t.Error("spices must not be flagged for bulk purchase")
		}
	})

	t.Run("substitutions come from the static table", func(t *testing.T) {
		item := domain.ShoppingItem{Name: "Butter", Quantity: 200, Unit: "gram", Category: "Dairy"}
		a.Advise(&item)
		if len(item.Substitutions) == 0 {
			t.Fatal("butter should have substitutions")
		}
		if item.Substitutions[0] != "margarine" {
			t.Errorf("Substitutions[0] = %q, want margarine (table order preserved)", item.Substitutions[0])
		}
	})

	t.Run("absent entry yields empty list never nil", func(t *testing.T) {
		item := domain.ShoppingItem{Name: "Dragonfruit", Quantity: 2, Unit: "piece", Category: "Produce"}
		a.Advise(&item)
		if item.Substitutions == nil {
			t.Fatal("Substitutions must be an empty list, not nil")
		}
		if len(item.Substitutions) != 0 {
			t.Errorf("Substitutions = %v, want empty", item.Substitutions)
		}
	})

	t.Run("advise does not share table backing arrays", func(t *testing.T) {
		a1 := domain.ShoppingItem{Name: "milk", Category: "Dairy"}
		a2 := domain.ShoppingItem{Name: "milk", Category: "Dairy"}
		a.Advise(&a1)
		a.Advise(&a2)
		a1.Substitutions[0] = "mutated"
		if a2.Substitutions[0] == "mutated" {
			t.Error("substitution slices must be independent copies")
		}
	})
}

func TestListAdvice(t *testing.T) {
	a := NewAdvisor()

	items := []domain.ShoppingItem{
		{Name: "Chicken", Category: "Protein", IsBulkPurchase: true, RecipeCount: 2},
		{Name: "Salt", Category: "Spices & Condiments", RecipeCount: 1},
	}
	categories := []domain.ShoppingCategory{
		{Name: "Protein", StoreSection: "Meat & Seafood Counter", Priority: 1},
		{Name: "Spices & Condiments", StoreSection: "Spice & Sauce Aisle", Priority: 2},
	}

	suggestions, tips := a.ListAdvice(items, categories)
	if len(suggestions) == 0 {
		t.Error("expected store suggestions for a non-empty list")
	}
	if len(tips) == 0 {
		t.Error("expected tips for a non-empty list")
	}

	// Deterministic for identical input
	s2, t2 := a.ListAdvice(items, categories)
	if len(s2) != len(suggestions) || len(t2) != len(tips) {
		t.Error("advice must be deterministic")
	}
	for i := range suggestions {
		if s2[i] != suggestions[i] {
			t.Errorf("suggestion %d differs between runs", i)
		}
	}
}
