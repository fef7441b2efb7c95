// internal/domain/plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedFood is one food placed in a meal slot with its macros scaled by
// the serving multiplier. The record owns copied values; it never references
// back into the catalog.
type SelectedFood struct {
	Name              string  `bson:"name" json:"name"`
	Serving           string  `bson:"serving,omitempty" json:"serving,omitempty"`
	ServingMultiplier float64 `bson:"servingMultiplier" json:"serving_size_multiplier"`
	Calories          float64 `bson:"calories" json:"calories"`
	Protein           float64 `bson:"protein" json:"protein"`
	Fat               float64 `bson:"fat" json:"fat"`
	Carbs             float64 `bson:"carbs" json:"carbs"`
	PrepMinutes       int     `bson:"prepTime" json:"prep_time"`
	Score             float64 `bson:"score,omitempty" json:"nutrition_score,omitempty"`
}

// SupplementDose is the per-plan view of a supplement.
type SupplementDose struct {
	Name   string `bson:"name" json:"name"`
	Dosage string `bson:"dosage" json:"dosage"`
	Notes  string `bson:"notes" json:"notes"`
}

// MealSlot is one eating occasion inside the window.
type MealSlot struct {
	Name                string           `bson:"name" json:"name"` // "first_meal", "lunch", "last_meal", "main_meal"
	Time                string           `bson:"time,omitempty" json:"time,omitempty"`
	TargetCalories      float64          `bson:"targetCalories" json:"target_calories"`
	Foods               []SelectedFood   `bson:"foods" json:"foods"`
	Supplements         []SupplementDose `bson:"supplements,omitempty" json:"supplements,omitempty"`
	TotalCalories       float64          `bson:"totalCalories" json:"total_calories"`
	TotalProtein        float64          `bson:"totalProtein" json:"total_protein"`
	TotalFat            float64          `bson:"totalFat" json:"total_fat"`
	TotalCarbs          float64          `bson:"totalCarbs" json:"total_carbs"`
	CookingInstructions []string         `bson:"cookingInstructions,omitempty" json:"cooking_instructions,omitempty"`
}

// PrepTask is one timed entry of the preparation schedule.
type PrepTask struct {
	Time     string `bson:"time" json:"time"`
	Task     string `bson:"task" json:"task"`
	Duration string `bson:"duration" json:"duration"`
}

// PrepSchedule groups shopping advice and timed prep tasks for a day.
type PrepSchedule struct {
	Shopping string     `bson:"shopping" json:"shopping"`
	Tasks    []PrepTask `bson:"mealPrep" json:"meal_prep"`
}

// SupplementSchedule buckets supplements by timing. Fixed buckets are
// "morning", "with_meals" and "evening"; custom timings create ad-hoc
// buckets keyed by the timing with underscores replaced by spaces.
type SupplementSchedule map[string][]SupplementDose

// MealPlan is a single day's plan. Produced fresh on every planning call and
// never mutated afterwards, only serialized.
type MealPlan struct {
	PlanID           string              `bson:"planId" json:"plan_id"`
	Date             string              `bson:"date" json:"date"` // "2006-01-02"
	Personalized     bool                `bson:"personalized" json:"personalized_plan"`
	FastingSchedule  FastingSchedule     `bson:"fastingSchedule" json:"fasting_schedule"`
	Targets          *NutritionTargets   `bson:"targets,omitempty" json:"nutritional_targets,omitempty"`
	Meals            []MealSlot          `bson:"meals" json:"meals"`
	DailySupplements SupplementSchedule  `bson:"dailySupplements" json:"daily_supplements"`
	PrepSchedule     *PrepSchedule       `bson:"prepSchedule,omitempty" json:"prep_schedule,omitempty"`
	TimingAdvice     map[string]string   `bson:"timingAdvice,omitempty" json:"meal_timing_optimization,omitempty"`
}

// ShoppingItem is one aggregated shopping-list entry.
type ShoppingItem struct {
	Item     string `bson:"item" json:"item"`
	Quantity string `bson:"quantity" json:"quantity"`
	Category string `bson:"category" json:"category"`
	Notes    string `bson:"notes" json:"notes"`
}

// WeeklyPlan is seven daily plans plus one aggregated shopping list.
type WeeklyPlan struct {
	PlanID          string          `bson:"planId" json:"plan_id"`
	WeekOf          string          `bson:"weekOf" json:"week_of"`
	FastingSchedule FastingSchedule `bson:"fastingSchedule" json:"fasting_schedule"`
	DailyPlans      []MealPlan      `bson:"dailyPlans" json:"daily_plans"`
	ShoppingList    []ShoppingItem  `bson:"weeklyShoppingList" json:"weekly_shopping_list"`
	PrepTips        []string        `bson:"prepTips" json:"prep_tips"`
}

// PlanKind distinguishes stored plan documents.
type PlanKind string

const (
	PlanDaily        PlanKind = "daily"
	PlanWeekly       PlanKind = "weekly"
	PlanPersonalized PlanKind = "personalized"
)

// PlanDocument is the persistence wrapper for generated plans. Exactly one of
// Daily/Weekly is set depending on Kind (personalized plans are daily-shaped).
type PlanDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"-"`
	Kind      PlanKind           `bson:"kind" json:"kind"`
	Daily     *MealPlan          `bson:"daily,omitempty" json:"daily,omitempty"`
	Weekly    *WeeklyPlan        `bson:"weekly,omitempty" json:"weekly,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
