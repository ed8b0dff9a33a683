package usecase

import (
	"time"

	"github.com/foodbook/backend/internal/domain"
)

// Trip time model: a fixed store overhead, a per-item pick time, and an
// aisle-transition cost per category visited beyond the first. Both terms
// are non-negative, so the estimate is monotonic in item and category count.
const (
	baseShoppingTime       = 10 * time.Minute
	timePerItem            = 90 * time.Second
	timePerCategoryChange  = 2 * time.Minute
	defaultItemPrice       = 2.50
	minimumItemPrice       = 0.50
	defaultBulkDiscountPct = 0.15
)

// unitBasePrices is the static price table per canonical unit. Prices are
// per single unit of the base (per piece, per gram, per milliliter).
var unitBasePrices = map[string]float64{
	UnitPiece:      0.90,
	UnitGram:       0.012,
	UnitMilliliter: 0.004,
	"clove":        0.30,
	"pinch":        0.05,
	"slice":        0.35,
	"bunch":        2.20,
}

// categoryPriceFactors scales the unit price by shopping category
var categoryPriceFactors = map[string]float64{
	"Produce":             1.0,
	"Protein":             2.8,
	"Dairy":               1.6,
	"Bakery":              1.3,
	"Pantry":              0.9,
	"Spices & Condiments": 0.7,
	"Frozen":              1.4,
	"Beverages":           1.1,
	"Snacks":              1.2,
	CategoryOther:         1.0,
}

// EstimatorConfig holds configuration for the estimator
type EstimatorConfig struct {
	DefaultItemPrice float64
}

// Estimator assigns deterministic per-item price estimates from the static
// price table and rolls item/category counts up into a trip duration.
// There is no live pricing: the figures exist to rank and total the list,
// not to predict a till receipt.
type Estimator struct {
	defaultItemPrice float64
}

// NewEstimator creates an estimator with the given configuration
func NewEstimator(config EstimatorConfig) *Estimator {
	price := config.DefaultItemPrice
	if price <= 0 {
		price = defaultItemPrice
	}
	return &Estimator{defaultItemPrice: price}
}

// Price estimates the purchase price of one consolidated item. Unknown
// units get the fixed default price rather than zero: a zero would corrupt
// the list total and every savings comparison built on it.
func (e *Estimator) Price(item *domain.ShoppingItem) float64 {
	base, ok := unitBasePrices[item.Unit]
	if !ok {
		return e.defaultItemPrice
	}

	factor, ok := categoryPriceFactors[item.Category]
	if !ok {
		factor = 1.0
	}

	price := item.Quantity * base * factor
	if price < minimumItemPrice {
		price = minimumItemPrice
	}
	return price
}

// ShoppingTime estimates the store trip duration for a list of the given
// size. Monotonically non-decreasing in both arguments.
func (e *Estimator) ShoppingTime(itemCount, categoryCount int) time.Duration {
	if itemCount <= 0 {
		return 0
	}
	d := baseShoppingTime + time.Duration(itemCount)*timePerItem
	if categoryCount > 1 {
		d += time.Duration(categoryCount-1) * timePerCategoryChange
	}
	return d
}
