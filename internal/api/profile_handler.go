package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/planner"
	"mcgregor/if-planner/internal/service"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// PreferencesRequest carries the raw planner form fields. Numeric fields are
// strings on purpose: they round-trip exactly as the user typed them.
type PreferencesRequest struct {
	Age         string `json:"age"`
	Weight      string `json:"weight"`
	Height      string `json:"height"`
	Gender      string `json:"gender"`
	Activity    string `json:"activity"`
	FastingType string `json:"fasting_type"`
	StartTime   string `json:"start_time"`
	Allergies   string `json:"allergies"`
	Dislikes    string `json:"dislikes"`
	Seasonal    string `json:"seasonal"`
}

// PreferencesResponse mirrors the stored form state.
type PreferencesResponse struct {
	PreferencesRequest
	Calories  int       `json:"calories,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CalculateCaloriesRequest carries body metrics for the recommendation.
type CalculateCaloriesRequest struct {
	Age      int     `json:"age" binding:"required"`
	WeightKG float64 `json:"weight_kg" binding:"required"`
	HeightCM float64 `json:"height_cm" binding:"required"`
	Gender   string  `json:"gender" binding:"required,oneof=male female"`
	Activity string  `json:"activity_level" binding:"required"`
}

func mapProfileToResponse(p *domain.PreferenceProfile) PreferencesResponse {
	if p == nil {
		return PreferencesResponse{}
	}
	return PreferencesResponse{
		PreferencesRequest: PreferencesRequest{
			Age:         p.Age,
			Weight:      p.Weight,
			Height:      p.Height,
			Gender:      p.Gender,
			Activity:    p.Activity,
			FastingType: p.FastingType,
			StartTime:   p.StartTime,
			Allergies:   p.Allergies,
			Dislikes:    p.Dislikes,
			Seasonal:    p.Seasonal,
		},
		Calories:  p.Calories,
		UpdatedAt: p.UpdatedAt,
	}
}

// --- Handler Methods ---

// GetPreferences returns the stored form state for repopulating the client.
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Preferences(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPreferencesNotFound) {
			// No saved state yet; an empty form is a valid answer.
			c.JSON(http.StatusOK, PreferencesResponse{})
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve preferences.")
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// SavePreferences overwrites the stored form state.
func (h *ProfileHandler) SavePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.SavePreferences(c.Request.Context(), domain.PreferenceProfile{
		OwnerID:     userID,
		Age:         req.Age,
		Weight:      req.Weight,
		Height:      req.Height,
		Gender:      req.Gender,
		Activity:    req.Activity,
		FastingType: req.FastingType,
		StartTime:   req.StartTime,
		Allergies:   req.Allergies,
		Dislikes:    req.Dislikes,
		Seasonal:    req.Seasonal,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save preferences.")
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// CalculateCalories runs the calorie recommendation from body metrics.
func (h *ProfileHandler) CalculateCalories(c *gin.Context) {
	var req CalculateCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Please fill in all fields: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	estimate, err := h.profileService.CalculateCalories(c.Request.Context(), userID, domain.BodyMetrics{
		Age:      req.Age,
		WeightKG: req.WeightKG,
		HeightCM: req.HeightCM,
		Gender:   domain.Gender(req.Gender),
		Activity: domain.ActivityLevel(req.Activity),
	})
	if err != nil {
		var inputErr *planner.InputError
		if errors.As(err, &inputErr) {
			abortWithError(c, http.StatusBadRequest, inputErr.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to calculate calories.")
		}
		return
	}
	c.JSON(http.StatusOK, estimate)
}
