package usecase

import (
	"sort"
	"strings"

	"github.com/foodbook/backend/internal/domain"
)

// Category priorities drive the shopping route: lower numbers are visited
// first. Essential staples come first, pantry goods second, the catch-all
// last so nothing is lost.
const (
	priorityEssential = 1
	priorityNormal    = 2
	priorityOptional  = 3
)

// CategoryOther is the catch-all for ingredients no rule matches
const CategoryOther = "Other"

// categoryDef carries the static metadata of one shopping category
type categoryDef struct {
	name          string
	icon          string
	color         string
	storeSection  string
	shoppingOrder string
	priority      int
}

// categoryDefs lists every category in catalog order
var categoryDefs = []categoryDef{
	{"Produce", "🥦", "#4CAF50", "Produce Section", "Start along the produce wall", priorityEssential},
	{"Protein", "🥩", "#E53935", "Meat & Seafood Counter", "Back counter, after produce", priorityEssential},
	{"Dairy", "🥛", "#90CAF9", "Dairy Cooler", "Refrigerated wall, far side", priorityNormal},
	{"Bakery", "🍞", "#FFB74D", "Bakery Corner", "Front corner near the entrance", priorityNormal},
	{"Pantry", "🥫", "#8D6E63", "Dry Goods Aisles", "Center aisles, top to bottom", priorityNormal},
	{"Spices & Condiments", "🧂", "#BA68C8", "Spice & Sauce Aisle", "Single aisle, alphabetical racks", priorityNormal},
	{"Frozen", "🧊", "#4DD0E1", "Frozen Aisle", "Last chilled aisle before checkout", priorityNormal},
	{"Beverages", "🧃", "#7986CB", "Beverage Aisle", "Near the frozen section", priorityNormal},
	{"Snacks", "🍿", "#F06292", "Snack Aisle", "Center aisle, both sides", priorityNormal},
	{CategoryOther, "🛒", "#9E9E9E", "General Merchandise", "Sweep remaining aisles last", priorityOptional},
}

// categoryRule maps name keywords to a category. Rules are evaluated in
// order and the first match wins, so more specific rules must precede
// broader ones ("cream cheese" is dairy even though "cheese" also appears
// under a later rule's keyword in an item name).
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Frozen", []string{
		"frozen", "ice cream", "popsicle",
	}},
	{"Dairy", []string{
		"milk", "cheese", "yogurt", "butter", "cream", "cheddar", "mozzarella",
		"parmesan", "ricotta", "feta", "ghee", "curd",
	}},
	{"Produce", []string{
		"apple", "banana", "orange", "lettuce", "tomato", "potato", "onion",
		"carrot", "broccoli", "spinach", "strawberry", "blueberry", "grape",
		"lemon", "lime", "avocado", "cucumber", "pepper", "corn", "garlic",
		"ginger", "mushroom", "zucchini", "cabbage", "celery", "kale",
		"cilantro", "parsley", "basil", "scallion", "leek", "mango", "pear",
		"peach", "pineapple", "cauliflower", "eggplant", "radish", "beet",
	}},
	{"Protein", []string{
		"chicken", "beef", "pork", "fish", "salmon", "turkey", "lamb", "shrimp",
		"tuna", "bacon", "sausage", "steak", "ham", "crab", "lobster", "egg",
		"tofu", "tempeh", "duck", "anchovy",
	}},
	{"Bakery", []string{
		"bread", "bagel", "bun", "roll", "tortilla", "croissant", "baguette",
		"pita", "muffin",
	}},
	{"Beverages", []string{
		"juice", "soda", "coffee", "tea", "cola", "lemonade", "water",
		"wine", "beer",
	}},
	{"Snacks", []string{
		"chips", "cracker", "cookie", "candy", "chocolate", "popcorn",
		"granola", "pretzel",
	}},
	{"Spices & Condiments", []string{
		"salt", "sugar", "cinnamon", "cumin", "paprika", "oregano", "thyme",
		"chili powder", "curry", "turmeric", "nutmeg", "vanilla", "ketchup",
		"mustard", "mayonnaise", "soy sauce", "vinegar", "sauce", "salsa",
		"dressing", "syrup", "honey", "jam", "spice",
	}},
	{"Pantry", []string{
		"rice", "pasta", "flour", "oats", "noodle", "cereal", "bean", "lentil",
		"chickpea", "quinoa", "oil", "stock", "broth", "nut", "almond",
		"peanut", "walnut", "raisin", "coconut", "yeast", "baking",
	}},
}

// Classification is the category assignment for one shopping item
type Classification struct {
	Category     string
	StoreSection string
	Priority     int
}

// Classifier assigns aggregated items to shopping categories with
// store-aisle ordering, using a fixed priority-ordered keyword rule list.
type Classifier struct{}

// NewClassifier creates a classifier over the static category rules
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify resolves the category for an ingredient name. Names matching no
// rule land in the catch-all category and ErrUnknownIngredient is returned
// alongside the usable classification; callers treat it as an advisory,
// never as a failure.
func (c *Classifier) Classify(ingredientName string) (Classification, error) {
	name := strings.ToLower(strings.TrimSpace(ingredientName))

	if name != "" {
		for _, rule := range categoryRules {
			for _, keyword := range rule.keywords {
				if strings.Contains(name, keyword) {
					def := c.def(rule.category)
					return Classification{
						Category:     def.name,
						StoreSection: def.storeSection,
						Priority:     def.priority,
					}, nil
				}
			}
		}
	}

	def := c.def(CategoryOther)
	return Classification{
		Category:     def.name,
		StoreSection: def.storeSection,
		Priority:     def.priority,
	}, domain.ErrUnknownIngredient
}

// Apply classifies the item in place, setting category, store section,
// priority and the essential/optional flags. The flags derive from the
// category priority independently: a normal-priority item carries neither.
func (c *Classifier) Apply(item *domain.ShoppingItem) error {
	cls, err := c.Classify(item.Name)
	item.Category = cls.Category
	item.StoreSection = cls.StoreSection
	item.Priority = cls.Priority
	item.IsEssential = cls.Priority == priorityEssential
	item.IsOptional = cls.Priority == priorityOptional
	return err
}

// CategoryMeta returns the static metadata for a category name, falling
// back to the catch-all for unknown names.
func (c *Classifier) CategoryMeta(name string) domain.ShoppingCategory {
	def := c.def(name)
	return domain.ShoppingCategory{
		Name:          def.name,
		Icon:          def.icon,
		Color:         def.color,
		StoreSection:  def.storeSection,
		ShoppingOrder: def.shoppingOrder,
		Priority:      def.priority,
	}
}

// Catalog returns the full static category catalog with no items attached,
// ordered by navigation priority then name.
func (c *Classifier) Catalog() []domain.ShoppingCategory {
	catalog := make([]domain.ShoppingCategory, 0, len(categoryDefs))
	for _, def := range categoryDefs {
		catalog = append(catalog, c.CategoryMeta(def.name))
	}
	sort.SliceStable(catalog, func(i, j int) bool {
		if catalog[i].Priority != catalog[j].Priority {
			return catalog[i].Priority < catalog[j].Priority
		}
		return catalog[i].Name < catalog[j].Name
	})
	return catalog
}

// BuildCategories buckets the items into categories, preserving item order
// within each bucket and ordering the buckets by priority then name. Items
// are referenced by key; the flat list stays the single owner.
func (c *Classifier) BuildCategories(items []domain.ShoppingItem) []domain.ShoppingCategory {
	buckets := make(map[string]*domain.ShoppingCategory)
	var order []string

	for i := range items {
		item := &items[i]
		name := item.Category
		if name == "" {
			name = CategoryOther
		}
		bucket, ok := buckets[name]
		if !ok {
			meta := c.CategoryMeta(name)
			bucket = &meta
			buckets[name] = bucket
			order = append(order, name)
		}
		bucket.ItemKeys = append(bucket.ItemKeys, item.Key())
		bucket.CategoryTotal += item.EstimatedPrice
	}

	categories := make([]domain.ShoppingCategory, 0, len(order))
	for _, name := range order {
		categories = append(categories, *buckets[name])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Priority != categories[j].Priority {
			return categories[i].Priority < categories[j].Priority
		}
		return categories[i].Name < categories[j].Name
	})
	return categories
}

// def resolves the category definition by name, defaulting to the catch-all
func (c *Classifier) def(name string) categoryDef {
	for _, d := range categoryDefs {
		if d.name == name {
			return d
		}
	}
	return categoryDefs[len(categoryDefs)-1]
}
