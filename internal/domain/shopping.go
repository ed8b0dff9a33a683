package domain

import (
	"strings"
	"time"
)

// ShoppingItem is one consolidated purchasable entry. All occurrences of an
// ingredient across the source recipes are merged into a single item per
// compatible unit; Key identifies it inside a ShoppingListResult.
type ShoppingItem struct {
	Name            string   `json:"name"`
	Quantity        float64  `json:"quantity"`
	Unit            string   `json:"unit"`
	Category        string   `json:"category"`
	StoreSection    string   `json:"storeSection"`
	Priority        int      `json:"priority"` // 1=essential, 2=normal, 3=optional
	IsEssential     bool     `json:"isEssential"`
	IsOptional      bool     `json:"isOptional"`
	EstimatedPrice  float64  `json:"estimatedPrice"`
	Notes           string   `json:"notes,omitempty"`
	Substitutions   []string `json:"substitutions,omitempty"`
	RecipeCount     int      `json:"recipeCount"`
	IsChecked       bool     `json:"isChecked"`
	NutritionalInfo string   `json:"nutritionalInfo,omitempty"`
	IsBulkPurchase  bool     `json:"isBulkPurchase"`
	BulkSavings     float64  `json:"bulkSavings"`
}

// Key returns the identity of the item within a result. Names are
// case-insensitive; the unit disambiguates entries kept separate because
// their units could not be merged.
func (i *ShoppingItem) Key() string {
	return strings.ToLower(strings.TrimSpace(i.Name)) + "|" + i.Unit
}

// ShoppingCategory groups items that share a shopping category. Categories
// reference items by key into ShoppingListResult.Items rather than holding
// copies, so a per-item update propagates without aliasing.
type ShoppingCategory struct {
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Color         string   `json:"color"`
	StoreSection  string   `json:"storeSection"`
	ShoppingOrder string   `json:"shoppingOrder"`
	Priority      int      `json:"priority"` // lower = visited first
	ItemKeys      []string `json:"itemKeys,omitempty"`
	CategoryTotal float64  `json:"categoryTotal"`
}

// ItemCount returns the number of items referenced by the category.
func (c *ShoppingCategory) ItemCount() int {
	return len(c.ItemKeys)
}

// ShoppingListResult is the fully assembled output of the generation
// pipeline. It is immutable once generated except for per-item IsChecked;
// an Optimizer pass produces a new result with IsOptimized set.
type ShoppingListResult struct {
	Items                 []ShoppingItem     `json:"items"`
	Categories            []ShoppingCategory `json:"categories"`
	EstimatedCost         float64            `json:"estimatedCost"`
	TotalItems            int                `json:"totalItems"`
	EstimatedShoppingTime time.Duration      `json:"estimatedShoppingTime"`
	StoreSuggestions      []string           `json:"storeSuggestions,omitempty"`
	Tips                  []string           `json:"tips,omitempty"`
	RecipeNames           []string           `json:"recipeNames,omitempty"`
	GeneratedAt           time.Time          `json:"generatedAt"`
	ListName              string             `json:"listName"`
	IsOptimized           bool               `json:"isOptimized"`
	PotentialSavings      float64            `json:"potentialSavings"`
}

// Clone returns a deep copy of the result. Callers that hand a result to
// another owner (cache, optimizer) copy first so per-item IsChecked edits
// on one copy never leak into the other.
func (r *ShoppingListResult) Clone() *ShoppingListResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Items = make([]ShoppingItem, len(r.Items))
	copy(out.Items, r.Items)
	for i := range out.Items {
		out.Items[i].Substitutions = append([]string(nil), r.Items[i].Substitutions...)
	}
	out.Categories = make([]ShoppingCategory, len(r.Categories))
	copy(out.Categories, r.Categories)
	for i := range out.Categories {
		out.Categories[i].ItemKeys = append([]string(nil), r.Categories[i].ItemKeys...)
	}
	out.StoreSuggestions = append([]string(nil), r.StoreSuggestions...)
	out.Tips = append([]string(nil), r.Tips...)
	out.RecipeNames = append([]string(nil), r.RecipeNames...)
	return &out
}

// ItemByKey returns a pointer to the item with the given key, or nil.
func (r *ShoppingListResult) ItemByKey(key string) *ShoppingItem {
	for i := range r.Items {
		if r.Items[i].Key() == key {
			return &r.Items[i]
		}
	}
	return nil
}

// RecipeIngredient is a single ingredient requirement inside a recipe,
// already loaded by the surrounding application.
type RecipeIngredient struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	NutritionalInfo string  `json:"nutritionalInfo,omitempty"`
}

// Recipe is the slice of a recipe the pipeline needs: a title, the serving
// count the ingredient quantities are stated for, and the ingredients.
type Recipe struct {
	Title       string             `json:"title"`
	Servings    int                `json:"servings"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// MealType identifies the slot a planned meal occupies.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealPlanItem binds a recipe to a planned date, serving count and meal
// type. Meal plans feed the same aggregation pipeline as ad hoc recipe
// sets, with quantities scaled by Servings relative to the recipe's base
// serving count.
type MealPlanItem struct {
	Recipe   Recipe    `json:"recipe"`
	Date     time.Time `json:"date"`
	Servings int       `json:"servings"`
	MealType MealType  `json:"mealType"`
}

// ExportedNote is a rendered shopping list persisted by a NoteStore.
type ExportedNote struct {
	ID        string    `json:"id"`
	ListName  string    `json:"listName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
