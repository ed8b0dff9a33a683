package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/foodbook/backend/internal/domain"
)

// ShoppingServiceConfig holds configuration for the shopping list service
type ShoppingServiceConfig struct {
	CacheTTL         time.Duration
	DefaultItemPrice float64
}

// ShoppingService is the entry point of the consolidation engine. It runs
// the generation pipeline (aggregate -> classify -> estimate -> advise) as
// a pure function over an input snapshot, with an optional optimizer pass
// and plain-text export. The pipeline itself performs no I/O; the cache
// and note store are the only collaborators that do.
type ShoppingService struct {
	aggregator *Aggregator
	classifier *Classifier
	estimator  *Estimator
	advisor    *Advisor
	optimizer  *Optimizer
	exporter   *Exporter
	cache      domain.CacheRepository
	notes      domain.NoteStore
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewShoppingService creates the service with its collaborators. The cache
// may be nil (generation is cheap enough to always recompute); the note
// store is only required for export.
func NewShoppingService(
	cache domain.CacheRepository,
	notes domain.NoteStore,
	logger *zap.Logger,
	config ShoppingServiceConfig,
) *ShoppingService {
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Minute
	}

	normalizer := NewUnitNormalizer()
	classifier := NewClassifier()
	estimator := NewEstimator(EstimatorConfig{DefaultItemPrice: config.DefaultItemPrice})
	advisor := NewAdvisor()

	return &ShoppingService{
		aggregator: NewAggregator(normalizer),
		classifier: classifier,
		estimator:  estimator,
		advisor:    advisor,
		optimizer:  NewOptimizer(classifier, estimator, advisor),
		exporter:   NewExporter(),
		cache:      cache,
		notes:      notes,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// GenerateSmartShoppingList consolidates the recipes into a shopping list
// for the given user. Identical requests within the cache TTL return the
// cached result.
func (s *ShoppingService) GenerateSmartShoppingList(
	ctx context.Context,
	recipes []domain.Recipe,
	userID string,
) (*domain.ShoppingListResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: recipe set is empty", domain.ErrInvalidInput)
	}

	cacheKey := recipesCacheKey(userID, recipes)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var sources []IngredientSource
	var recipeNames []string
	for _, recipe := range recipes {
		recipeNames = append(recipeNames, recipe.Title)
		for _, ing := range recipe.Ingredients {
			sources = append(sources, IngredientSource{
				Name:        ing.Name,
				Quantity:    ing.Quantity,
				Unit:        ing.Unit,
				RecipeTitle: recipe.Title,
				Nutrition:   ing.NutritionalInfo,
			})
		}
	}

	listName := fmt.Sprintf("Shopping List (%d recipes)", len(recipes))
	if len(recipes) == 1 {
		listName = fmt.Sprintf("Shopping List for %s", recipes[0].Title)
	}

	result, err := s.generate(sources, recipeNames, listName)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, result)
	return result, nil
}

// GenerateFromIngredients builds a list from bare ingredient names with no
// quantities or units attached; each name is read as one whole item.
func (s *ShoppingService) GenerateFromIngredients(
	ctx context.Context,
	ingredientNames []string,
	userID string,
) (*domain.ShoppingListResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if len(ingredientNames) == 0 {
		return nil, fmt.Errorf("%w: ingredient list is empty", domain.ErrInvalidInput)
	}

	var sources []IngredientSource
	for _, name := range ingredientNames {
		sources = append(sources, IngredientSource{
			Name:     name,
			Quantity: 1,
			Unit:     UnitPiece,
		})
	}

	return s.generate(sources, nil, "Custom Shopping List")
}

// GenerateFromMealPlan builds a list from a meal plan, scaling ingredient
// quantities by each entry's planned servings relative to the recipe's
// base serving count before aggregation.
func (s *ShoppingService) GenerateFromMealPlan(
	ctx context.Context,
	plan []domain.MealPlanItem,
	userID string,
) (*domain.ShoppingListResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: meal plan is empty", domain.ErrInvalidInput)
	}

	var sources []IngredientSource
	var recipeNames []string
	seen := make(map[string]bool)
	for _, entry := range plan {
		scale := servingScale(entry)
		if !seen[entry.Recipe.Title] {
			seen[entry.Recipe.Title] = true
			recipeNames = append(recipeNames, entry.Recipe.Title)
		}
		for _, ing := range entry.Recipe.Ingredients {
			sources = append(sources, IngredientSource{
				Name:        ing.Name,
				Quantity:    ing.Quantity * scale,
				Unit:        ing.Unit,
				RecipeTitle: entry.Recipe.Title,
				Nutrition:   ing.NutritionalInfo,
			})
		}
	}

	listName := fmt.Sprintf("Meal Plan Shopping List (%d meals)", len(plan))
	return s.generate(sources, recipeNames, listName)
}

// ShoppingCategories returns the static category catalog with no items
// attached.
func (s *ShoppingService) ShoppingCategories(ctx context.Context) []domain.ShoppingCategory {
	return s.classifier.Catalog()
}

// Optimize runs the optimizer pass over a generated result, producing a
// new result with recomputed totals and IsOptimized set.
func (s *ShoppingService) Optimize(
	ctx context.Context,
	result *domain.ShoppingListResult,
) (*domain.ShoppingListResult, error) {
	return s.optimizer.Optimize(result)
}

// ExportToNotes renders the result and persists it through the note store,
// returning the artifact id. A store failure surfaces as ErrExportFailure;
// the in-memory result stays valid regardless of the outcome.
func (s *ShoppingService) ExportToNotes(
	ctx context.Context,
	result *domain.ShoppingListResult,
	listName string,
) (string, error) {
	if result == nil {
		return "", fmt.Errorf("%w: nil result", domain.ErrInvalidInput)
	}
	if s.notes == nil {
		return "", fmt.Errorf("%w: no note store configured", domain.ErrExportFailure)
	}

	name := strings.TrimSpace(listName)
	if name == "" {
		name = result.ListName
	}
	rendered := result
	if name != result.ListName {
		rendered = result.Clone()
		rendered.ListName = name
	}

	note := &domain.ExportedNote{
		ListName:  name,
		Content:   s.exporter.Render(rendered),
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.notes.Save(ctx, note)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	s.logger.Info("shopping list exported",
		zap.String("note_id", id),
		zap.String("list_name", name),
		zap.Int("items", result.TotalItems))
	return id, nil
}

// ExportedNote retrieves a previously exported list by artifact id
func (s *ShoppingService) ExportedNote(ctx context.Context, id string) (*domain.ExportedNote, error) {
	if s.notes == nil {
		return nil, domain.ErrListNotFound
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: note id is required", domain.ErrInvalidInput)
	}
	return s.notes.Get(ctx, id)
}

// generate runs the pipeline over the flattened sources and assembles a
// fully populated result. No partial results: any error aborts the run.
func (s *ShoppingService) generate(
	sources []IngredientSource,
	recipeNames []string,
	listName string,
) (*domain.ShoppingListResult, error) {
	items, err := s.aggregator.Aggregate(sources)
	if err != nil {
		return nil, err
	}

	for i := range items {
		item := &items[i]
		if err := s.classifier.Apply(item); errors.Is(err, domain.ErrUnknownIngredient) {
			// Advisory only: the item lands in the catch-all category with
			// a default price instead of being dropped.
			s.logger.Warn("ingredient not recognized, using defaults",
				zap.String("ingredient", item.Name))
		}
		item.EstimatedPrice = s.estimator.Price(item)
		s.advisor.Advise(item)
	}

	categories := s.classifier.BuildCategories(items)

	var cost, savings float64
	for i := range items {
		cost += items[i].EstimatedPrice
		savings += items[i].BulkSavings
	}

	suggestions, tips := s.advisor.ListAdvice(items, categories)

	return &domain.ShoppingListResult{
		Items:                 items,
		Categories:            categories,
		EstimatedCost:         cost,
		TotalItems:            len(items),
		EstimatedShoppingTime: s.estimator.ShoppingTime(len(items), len(categories)),
		StoreSuggestions:      suggestions,
		Tips:                  tips,
		RecipeNames:           recipeNames,
		GeneratedAt:           time.Now().UTC(),
		ListName:              listName,
		IsOptimized:           false,
		PotentialSavings:      savings,
	}, nil
}

// fromCache returns a cached copy of a previously generated result, or nil
func (s *ShoppingService) fromCache(ctx context.Context, key string) *domain.ShoppingListResult {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil || cached == nil {
		return nil
	}
	return cached
}

// toCache stores a generated result; failures are logged, never fatal
func (s *ShoppingService) toCache(ctx context.Context, key string, result *domain.ShoppingListResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache shopping list", zap.Error(err))
	}
}

// recipesCacheKey fingerprints a generation request. The hash covers the
// user and every ingredient line in input order, so any change to the
// recipe set produces a new key.
func recipesCacheKey(userID string, recipes []domain.Recipe) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\n", strings.ToLower(strings.TrimSpace(userID)))
	for _, r := range recipes {
		fmt.Fprintf(h, "%s|%d\n", strings.ToLower(r.Title), r.Servings)
		for _, ing := range r.Ingredients {
			fmt.Fprintf(h, "%s|%g|%s\n", strings.ToLower(ing.Name), ing.Quantity, strings.ToLower(ing.Unit))
		}
	}
	return fmt.Sprintf("shopping:%s:%x", strings.ToLower(strings.TrimSpace(userID)), h.Sum64())
}

// servingScale computes the quantity multiplier for one meal plan entry
func servingScale(entry domain.MealPlanItem) float64 {
	base := entry.Recipe.Servings
	if base <= 0 {
		base = 1
	}
	planned := entry.Servings
	if planned <= 0 {
		planned = base
	}
	return float64(planned) / float64(base)
}
