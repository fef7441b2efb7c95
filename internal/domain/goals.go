// internal/domain/goals.go
package domain

// NutritionalGoals is the user-supplied daily calorie target plus macro split.
// The percentages are expected to sum to 1.0 but that is not enforced
// anywhere: a caller supplying a split that sums to more or less than 1.0
// gets gram targets that under/over-count the stated calorie total.
type NutritionalGoals struct {
	CaloriesPerDay int     `bson:"caloriesPerDay" json:"calories_per_day"`
	ProteinPct     float64 `bson:"proteinPercentage" json:"protein_percentage"` // 0.25 = 25%
	FatPct         float64 `bson:"fatPercentage" json:"fat_percentage"`
	CarbPct        float64 `bson:"carbPercentage" json:"carb_percentage"`
	FiberGoalG     int     `bson:"fiberGoal" json:"fiber_goal"`
}

// NutritionTargets are the gram targets derived from NutritionalGoals.
type NutritionTargets struct {
	DailyCalories int     `bson:"dailyCalories" json:"daily_calories"`
	ProteinGrams  float64 `bson:"proteinGrams" json:"protein_grams"`
	FatGrams      float64 `bson:"fatGrams" json:"fat_grams"`
	CarbGrams     float64 `bson:"carbGrams" json:"carb_grams"`
	FiberGrams    int     `bson:"fiberGrams" json:"fiber_grams"`
	// Percentage view of the split, for display (25.0 means 25%).
	ProteinPct float64 `bson:"proteinPct" json:"protein_pct"`
	FatPct     float64 `bson:"fatPct" json:"fat_pct"`
	CarbPct    float64 `bson:"carbPct" json:"carb_pct"`
}

// SkillLevel is the user's self-reported cooking ability.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// PersonalPreferences drive the personalized selection path. Allergies and
// dislikes are matched as case-insensitive substrings of food names, not
// against any ingredient taxonomy.
type PersonalPreferences struct {
	Allergies         []string   `bson:"allergies" json:"food_allergies"`
	Dislikes          []string   `bson:"dislikes" json:"food_dislikes"`
	PreferredCuisines []string   `bson:"preferredCuisines" json:"preferred_cuisines"`
	CookingSkill      SkillLevel `bson:"cookingSkill" json:"cooking_skill_level"`
	MaxPrepMinutes    int        `bson:"maxPrepMinutes" json:"max_prep_time"`
}

// Gender as used by the Mifflin-St Jeor formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel selects the TDEE multiplier tier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// BodyMetrics are the inputs to the calorie recommendation.
type BodyMetrics struct {
	Age      int           `bson:"age" json:"age"`
	WeightKG float64       `bson:"weightKg" json:"weight_kg"`
	HeightCM float64       `bson:"heightCm" json:"height_cm"`
	Gender   Gender        `bson:"gender" json:"gender"`
	Activity ActivityLevel `bson:"activity" json:"activity_level"`
}
