// Package planner contains the meal-selection heuristics: macro target
// calculation, food scoring, greedy slot filling, plan assembly and
// shopping-list aggregation. Everything here is a pure computation over
// in-memory lists.
package planner

import (
	"errors"
	"fmt"
	"math"

	"mcgregor/if-planner/internal/domain"
)

// Calories per gram of each macro.
const (
	calPerGramProtein = 4
	calPerGramCarb    = 4
	calPerGramFat     = 9
)

// InputError marks a user-facing input problem (missing or nonsensical form
// fields). Handlers map it to a 400 with the message shown verbatim.
type InputError struct {
	Field string
	Msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

var errUnknownActivity = errors.New("unknown activity level")

// MacroTargets converts a daily calorie figure and macro split into gram
// targets. The split is not validated against summing to 1.0: a caller
// supplying percentages summing to more or less gets under/over-counted gram
// targets relative to the stated calorie total.
func MacroTargets(goals domain.NutritionalGoals) domain.NutritionTargets {
	cal := float64(goals.CaloriesPerDay)
	return domain.NutritionTargets{
		DailyCalories: goals.CaloriesPerDay,
		ProteinGrams:  cal * goals.ProteinPct / calPerGramProtein,
		FatGrams:      cal * goals.FatPct / calPerGramFat,
		CarbGrams:     cal * goals.CarbPct / calPerGramCarb,
		FiberGrams:    goals.FiberGoalG,
		ProteinPct:    goals.ProteinPct * 100,
		FatPct:        goals.FatPct * 100,
		CarbPct:       goals.CarbPct * 100,
	}
}

// activityMultipliers is the fixed five-tier TDEE table.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// CalorieEstimate is the result of the body-metrics calorie recommendation.
type CalorieEstimate struct {
	BMR         float64 `json:"bmr"`
	TDEE        float64 `json:"tdee"`
	Recommended int     `json:"recommended_calories"` // TDEE rounded to nearest 50
}

// EstimateCalories derives a daily calorie recommendation from body metrics
// using the Mifflin-St Jeor equation and the activity multiplier table.
func EstimateCalories(m domain.BodyMetrics) (CalorieEstimate, error) {
	switch {
	case m.Age <= 0:
		return CalorieEstimate{}, &InputError{Field: "age", Msg: "must be a positive number"}
	case m.WeightKG <= 0:
		return CalorieEstimate{}, &InputError{Field: "weight_kg", Msg: "must be a positive number"}
	case m.HeightCM <= 0:
		return CalorieEstimate{}, &InputError{Field: "height_cm", Msg: "must be a positive number"}
	}

	var bmr float64
	switch m.Gender {
	case domain.GenderMale:
		bmr = 10*m.WeightKG + 6.25*m.HeightCM - 5*float64(m.Age) + 5
	case domain.GenderFemale:
		bmr = 10*m.WeightKG + 6.25*m.HeightCM - 5*float64(m.Age) - 161
	default:
		return CalorieEstimate{}, &InputError{Field: "gender", Msg: "must be selected"}
	}

	mult, ok := activityMultipliers[m.Activity]
	if !ok {
		return CalorieEstimate{}, &InputError{Field: "activity_level", Msg: errUnknownActivity.Error()}
	}

	tdee := bmr * mult
	return CalorieEstimate{
		BMR:         bmr,
		TDEE:        tdee,
		Recommended: int(math.Round(tdee/50) * 50),
	}, nil
}
