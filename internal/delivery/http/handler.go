package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodbook/backend/internal/domain"
	"github.com/foodbook/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping *usecase.ShoppingService
}

// NewHandler creates a new HTTP handler
func NewHandler(shopping *usecase.ShoppingService) *Handler {
	return &Handler{shopping: shopping}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "foodbook-backend",
		"version": "1.0.0",
	})
}

type generateRequest struct {
	UserID  string          `json:"userId" binding:"required"`
	Recipes []domain.Recipe `json:"recipes" binding:"required"`
}

// GenerateShoppingList consolidates a recipe set into a shopping list
func (h *Handler) GenerateShoppingList(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.shopping.GenerateSmartShoppingList(c.Request.Context(), req.Recipes, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type ingredientsRequest struct {
	UserID      string   `json:"userId" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
}

// GenerateFromIngredients builds a list from bare ingredient names
func (h *Handler) GenerateFromIngredients(c *gin.Context) {
	var req ingredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.shopping.GenerateFromIngredients(c.Request.Context(), req.Ingredients, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type mealPlanRequest struct {
	UserID string                `json:"userId" binding:"required"`
	Items  []domain.MealPlanItem `json:"items" binding:"required"`
}

// GenerateFromMealPlan builds a list from a meal plan
func (h *Handler) GenerateFromMealPlan(c *gin.Context) {
	var req mealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.shopping.GenerateFromMealPlan(c.Request.Context(), req.Items, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListCategories returns the static shopping category catalog
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.shopping.ShoppingCategories(c.Request.Context()),
	})
}

type optimizeRequest struct {
	Result *domain.ShoppingListResult `json:"result" binding:"required"`
}

// OptimizeShoppingList re-runs dedupe/sort/totals over a generated list
func (h *Handler) OptimizeShoppingList(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.shopping.Optimize(c.Request.Context(), req.Result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type exportRequest struct {
	Result   *domain.ShoppingListResult `json:"result" binding:"required"`
	ListName string                     `json:"listName"`
}

// ExportShoppingList renders a result and persists it as a note
func (h *Handler) ExportShoppingList(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.shopping.ExportToNotes(c.Request.Context(), req.Result, req.ListName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetExportedList returns a previously exported list by artifact id
func (h *Handler) GetExportedList(c *gin.Context) {
	note, err := h.shopping.ExportedNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// respondError maps domain errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrListNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
