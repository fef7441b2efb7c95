package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/planner"
	"mcgregor/if-planner/internal/service"
)

// PlanHandler holds the planner service dependency.
type PlanHandler struct {
	plannerService service.PlannerService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plannerService service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// --- DTOs ---

// FastingScheduleRequest is the request shape of a fasting schedule.
type FastingScheduleRequest struct {
	EatingWindowStart string `json:"eating_window_start" binding:"required"`
	EatingWindowEnd   string `json:"eating_window_end" binding:"required"`
	FastingHours      int    `json:"fasting_duration" binding:"min=0"`
}

func (r FastingScheduleRequest) toDomain() domain.FastingSchedule {
	return domain.FastingSchedule{
		EatingWindowStart: r.EatingWindowStart,
		EatingWindowEnd:   r.EatingWindowEnd,
		FastingHours:      r.FastingHours,
	}
}

// CreateDailyPlanRequest builds a simple daily plan.
type CreateDailyPlanRequest struct {
	Schedule       FastingScheduleRequest `json:"fasting_schedule" binding:"required"`
	TargetCalories int                    `json:"target_calories" binding:"min=0"`
}

// CreateWeeklyPlanRequest builds a weekly plan.
type CreateWeeklyPlanRequest struct {
	Schedule       FastingScheduleRequest `json:"fasting_schedule" binding:"required"`
	TargetCalories int                    `json:"target_calories" binding:"min=0"`
	ShoppingDays   int                    `json:"shopping_days" binding:"min=0"`
}

// CreatePersonalizedPlanRequest builds a personalized plan.
type CreatePersonalizedPlanRequest struct {
	Schedule FastingScheduleRequest `json:"fasting_schedule" binding:"required"`
	Goals    struct {
		CaloriesPerDay int     `json:"calories_per_day" binding:"min=0"`
		ProteinPct     float64 `json:"protein_percentage" binding:"min=0,max=1"`
		FatPct         float64 `json:"fat_percentage" binding:"min=0,max=1"`
		CarbPct        float64 `json:"carb_percentage" binding:"min=0,max=1"`
		FiberGoalG     int     `json:"fiber_goal" binding:"min=0"`
	} `json:"nutritional_goals" binding:"required"`
	Preferences struct {
		Allergies         []string `json:"food_allergies"`
		Dislikes          []string `json:"food_dislikes"`
		PreferredCuisines []string `json:"preferred_cuisines"`
		CookingSkill      string   `json:"cooking_skill_level" binding:"omitempty,oneof=beginner intermediate advanced"`
		MaxPrepMinutes    int      `json:"max_prep_time" binding:"min=0"`
	} `json:"preferences"`
}

// --- Handler Methods ---

// mapPlanError translates service/planner errors to HTTP responses.
func mapPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlanAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrArchiveDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrWindowOrder),
		errors.Is(err, domain.ErrScheduleMismatch),
		errors.Is(err, domain.ErrMissingWindowTimes),
		errors.Is(err, planner.ErrInfeasibleServing):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process plan request.")
	}
}

// CreateDailyPlan generates and stores a simple daily plan.
func (h *PlanHandler) CreateDailyPlan(c *gin.Context) {
	var req CreateDailyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	doc, err := h.plannerService.CreateDailyPlan(c.Request.Context(), userID, req.Schedule.toDomain(), req.TargetCalories)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// CreateWeeklyPlan generates and stores a weekly plan.
func (h *PlanHandler) CreateWeeklyPlan(c *gin.Context) {
	var req CreateWeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	doc, err := h.plannerService.CreateWeeklyPlan(c.Request.Context(), userID, req.Schedule.toDomain(), req.TargetCalories, req.ShoppingDays)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// CreatePersonalizedPlan generates and stores a personalized plan.
func (h *PlanHandler) CreatePersonalizedPlan(c *gin.Context) {
	var req CreatePersonalizedPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skill := domain.SkillLevel(req.Preferences.CookingSkill)
	if skill == "" {
		skill = domain.SkillIntermediate
	}

	doc, err := h.plannerService.CreatePersonalizedPlan(
		c.Request.Context(),
		userID,
		req.Schedule.toDomain(),
		domain.NutritionalGoals{
			CaloriesPerDay: req.Goals.CaloriesPerDay,
			ProteinPct:     req.Goals.ProteinPct,
			FatPct:         req.Goals.FatPct,
			CarbPct:        req.Goals.CarbPct,
			FiberGoalG:     req.Goals.FiberGoalG,
		},
		domain.PersonalPreferences{
			Allergies:         req.Preferences.Allergies,
			Dislikes:          req.Preferences.Dislikes,
			PreferredCuisines: req.Preferences.PreferredCuisines,
			CookingSkill:      skill,
			MaxPrepMinutes:    req.Preferences.MaxPrepMinutes,
		},
	)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetPlans lists the user's stored plans, newest first.
func (h *PlanHandler) GetPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.plannerService.GetPlans(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plans.")
		return
	}
	if plans == nil {
		c.JSON(http.StatusOK, []domain.PlanDocument{})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan retrieves one stored plan.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	doc, err := h.plannerService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ArchivePlan uploads a snapshot of the plan and returns a share URL.
func (h *PlanHandler) ArchivePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	url, err := h.plannerService.ArchivePlan(c.Request.Context(), userID, planID)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"share_url": url})
}

// ShoppingList rebuilds a shopping list from a stored plan.
func (h *PlanHandler) ShoppingList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 0 {
			abortWithError(c, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
	}

	items, err := h.plannerService.ShoppingList(c.Request.Context(), userID, planID, days)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	if items == nil {
		c.JSON(http.StatusOK, []domain.ShoppingItem{})
		return
	}
	c.JSON(http.StatusOK, items)
}
