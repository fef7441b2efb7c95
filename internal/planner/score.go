package planner

import (
	"mcgregor/if-planner/internal/domain"
)

// ScoringStrategy selects how candidate foods are ranked before greedy
// selection.
type ScoringStrategy int

const (
	// ScoreMacroSum ranks by protein+fat per 100g. Used when no nutrition
	// targets or preferences are supplied.
	ScoreMacroSum ScoringStrategy = iota
	// ScoreWeighted ranks by the combined nutrition/preference score.
	ScoreWeighted
)

// Scoring constants for the weighted strategy. A food maxes out the protein
// term at 30g/100g and the fat term at 50g/100g; the carb term decays to zero
// at 10g/100g and floors there.
const (
	proteinCeiling  = 30.0
	fatCeiling      = 50.0
	carbPenaltyOver = 10.0
)

// NutritionScore rates a food's macro density in roughly [0,1], rewarding
// protein and fat per 100g and penalizing carbohydrate density.
func NutritionScore(f domain.Food) float64 {
	proteinScore := f.ProteinG / proteinCeiling
	if proteinScore > 1 {
		proteinScore = 1
	}
	fatScore := f.FatG / fatCeiling
	if fatScore > 1 {
		fatScore = 1
	}
	carbPenalty := 1 - f.CarbsG/carbPenaltyOver
	if carbPenalty < 0 {
		carbPenalty = 0
	}
	return 0.4*proteinScore + 0.4*fatScore + 0.2*carbPenalty
}

// PreferenceScore rates how well a food fits the user's cooking skill and
// prep-time ceiling. Starts at 0.5, capped at 1.0.
func PreferenceScore(f domain.Food, prefs domain.PersonalPreferences) float64 {
	score := 0.5

	if prefs.CookingSkill == domain.SkillBeginner && f.PrepMin <= 10 {
		score += 0.3
	} else if prefs.CookingSkill == domain.SkillAdvanced {
		score += 0.1
	}

	if f.PrepMin <= prefs.MaxPrepMinutes/2 {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// CombinedScore is the sort key for personalized meal selection.
func CombinedScore(f domain.Food, prefs domain.PersonalPreferences) float64 {
	return 0.7*NutritionScore(f) + 0.3*PreferenceScore(f, prefs)
}

// MacroSumScore is the crude base-planner sort key.
func MacroSumScore(f domain.Food) float64 {
	return f.ProteinG + f.FatG
}
