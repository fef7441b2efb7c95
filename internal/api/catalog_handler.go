package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/export"
	"mcgregor/if-planner/internal/service"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs ---

// CreateFoodRequest defines the expected JSON for adding a custom food.
type CreateFoodRequest struct {
	Name      string  `json:"name" binding:"required"`
	ProteinG  float64 `json:"protein_per_100g" binding:"min=0"`
	FatG      float64 `json:"fat_per_100g" binding:"min=0"`
	CarbsG    float64 `json:"carbs_per_100g" binding:"min=0"`
	Calories  float64 `json:"calories_per_100g" binding:"min=0"`
	Serving   string  `json:"serving_size"`
	Timing    string  `json:"meal_timing" binding:"omitempty,oneof=first_meal last_meal anytime"`
	PrepMin   int     `json:"preparation_time" binding:"min=0"`
}

// CreateSupplementRequest defines the expected JSON for adding a custom supplement.
type CreateSupplementRequest struct {
	Name   string `json:"name" binding:"required"`
	Dosage string `json:"dosage" binding:"required"`
	Timing string `json:"timing" binding:"required"`
	Notes  string `json:"notes"`
}

// --- Handler Methods ---

// currentUserID resolves the authenticated user's ObjectID or aborts.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetFoods returns the built-in food library plus the user's custom foods.
func (h *CatalogHandler) GetFoods(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	foods, err := h.catalogService.Foods(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve foods.")
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetSupplements returns the built-in regimen plus the user's custom supplements.
func (h *CatalogHandler) GetSupplements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	supps, err := h.catalogService.Supplements(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve supplements.")
		return
	}
	c.JSON(http.StatusOK, supps)
}

// CreateFood appends a custom food to the user's catalog.
func (h *CatalogHandler) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	food, err := h.catalogService.AddCustomFood(c.Request.Context(), userID, domain.Food{
		Name:     req.Name,
		ProteinG: req.ProteinG,
		FatG:     req.FatG,
		CarbsG:   req.CarbsG,
		Calories: req.Calories,
		Serving:  req.Serving,
		Timing:   domain.MealTiming(req.Timing),
		PrepMin:  req.PrepMin,
	})
	if err != nil {
		if errors.Is(err, service.ErrCatalogValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add custom food.")
		}
		return
	}
	c.JSON(http.StatusCreated, food)
}

// CreateSupplement appends a custom supplement to the user's regimen.
func (h *CatalogHandler) CreateSupplement(c *gin.Context) {
	var req CreateSupplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	supp, err := h.catalogService.AddCustomSupplement(c.Request.Context(), userID, domain.Supplement{
		Name:   req.Name,
		Dosage: req.Dosage,
		Timing: domain.SupplementTiming(req.Timing),
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrCatalogValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add custom supplement.")
		}
		return
	}
	c.JSON(http.StatusCreated, supp)
}

// ExportConfig returns the user's custom entries in the config file format.
func (h *CatalogHandler) ExportConfig(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	data, err := h.catalogService.ExportConfig(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export configuration.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="custom_if_config.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ImportConfig validates a config document and appends its entries.
func (h *CatalogHandler) ImportConfig(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	foods, supps, err := h.catalogService.ImportConfig(c.Request.Context(), userID, c.Request.Body)
	if err != nil {
		var vErr *export.ValidationError
		if errors.As(err, &vErr) {
			abortWithError(c, http.StatusBadRequest, vErr.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, "Malformed configuration: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"imported_foods":       foods,
		"imported_supplements": supps,
	})
}
