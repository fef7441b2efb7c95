package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"mcgregor/if-planner/internal/catalog"
	"mcgregor/if-planner/internal/domain"
)

const dateLayout = "2006-01-02"

// slotShare is one meal slot's name and fraction of the daily calories.
type slotShare struct {
	Name    string
	Share   float64
	Timings []domain.MealTiming
}

// SlotDistribution maps the eating-window length to meal slots and their
// calorie shares: a window of at most 4 hours gets a single main meal, up to
// 8 hours a 60/40 split, longer windows a 40/30/30 split with a lunch.
func SlotDistribution(windowHours float64) []slotShare {
	switch {
	case windowHours <= 4:
		return []slotShare{
			{Name: "main_meal", Share: 1.0, Timings: []domain.MealTiming{domain.TimingFirstMeal, domain.TimingLastMeal, domain.TimingAnytime}},
		}
	case windowHours <= 8:
		return []slotShare{
			{Name: "first_meal", Share: 0.6, Timings: []domain.MealTiming{domain.TimingFirstMeal, domain.TimingAnytime}},
			{Name: "last_meal", Share: 0.4, Timings: []domain.MealTiming{domain.TimingLastMeal, domain.TimingAnytime}},
		}
	default:
		return []slotShare{
			{Name: "first_meal", Share: 0.4, Timings: []domain.MealTiming{domain.TimingFirstMeal, domain.TimingAnytime}},
			{Name: "lunch", Share: 0.3, Timings: []domain.MealTiming{domain.TimingAnytime}},
			{Name: "last_meal", Share: 0.3, Timings: []domain.MealTiming{domain.TimingLastMeal, domain.TimingAnytime}},
		}
	}
}

// Assembler builds plan records from a catalog. The catalog is owned by the
// assembler's creator; plans only carry copied/derived values.
type Assembler struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewAssembler returns an assembler over the given catalog.
func NewAssembler(cat *catalog.Catalog) *Assembler {
	return &Assembler{catalog: cat, now: time.Now}
}

// DailyPlan builds the simple (non-personalized) plan: two slots at 60/40 of
// the target, ranked by protein+fat, fixed 80% servings.
func (a *Assembler) DailyPlan(schedule domain.FastingSchedule, targetCalories int) (*domain.MealPlan, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	firstTime, err := schedule.FirstMealTime()
	if err != nil {
		return nil, err
	}
	lastTime, err := schedule.LastMealTime()
	if err != nil {
		return nil, err
	}

	opts := BaseSelection()
	target := float64(targetCalories)

	firstSel, err := SelectMeal(a.catalog.FoodsForTiming(domain.TimingFirstMeal, domain.TimingAnytime), target*0.6, opts)
	if err != nil {
		return nil, err
	}
	lastSel, err := SelectMeal(a.catalog.FoodsForTiming(domain.TimingLastMeal, domain.TimingAnytime), target*0.4, opts)
	if err != nil {
		return nil, err
	}

	withFood := a.withFoodSupplements()
	plan := &domain.MealPlan{
		PlanID:          uuid.NewString(),
		Date:            a.now().Format(dateLayout),
		FastingSchedule: schedule,
		Meals: []domain.MealSlot{
			slotFromSelection("first_meal", domain.Clock(firstTime), target*0.6, firstSel, withFood),
			slotFromSelection("last_meal", domain.Clock(lastTime), target*0.4, lastSel, withFood),
		},
		DailySupplements: a.SupplementSchedule(),
		PrepSchedule:     prepSchedule(firstTime, lastTime),
	}
	return plan, nil
}

// PersonalizedPlan builds the weighted-scoring plan: slot distribution from
// the window length, preference filtering, adaptive servings, macro targets
// and per-meal cooking instructions.
func (a *Assembler) PersonalizedPlan(
	schedule domain.FastingSchedule,
	goals domain.NutritionalGoals,
	prefs domain.PersonalPreferences,
) (*domain.MealPlan, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	windowHours, err := schedule.WindowHours()
	if err != nil {
		return nil, err
	}

	targets := MacroTargets(goals)
	opts := PersonalizedSelection(prefs)

	plan := &domain.MealPlan{
		PlanID:           uuid.NewString(),
		Date:             a.now().Format(dateLayout),
		Personalized:     true,
		FastingSchedule:  schedule,
		Targets:          &targets,
		DailySupplements: a.SupplementSchedule(),
		TimingAdvice:     timingAdvice(windowHours),
	}

	for _, slot := range SlotDistribution(windowHours) {
		candidates := FilterByPreferences(a.catalog.FoodsForTiming(slot.Timings...), prefs)
		target := float64(targets.DailyCalories) * slot.Share
		sel, err := SelectMeal(candidates, target, opts)
		if err != nil {
			return nil, err
		}
		meal := slotFromSelection(slot.Name, "", target, sel, nil)
		meal.CookingInstructions = cookingInstructions(sel.Foods, prefs)
		plan.Meals = append(plan.Meals, meal)
	}
	return plan, nil
}

// WeeklyPlan builds seven daily plans plus a single aggregated shopping list
// computed from the first day over the given horizon.
func (a *Assembler) WeeklyPlan(schedule domain.FastingSchedule, targetCalories, days int) (*domain.WeeklyPlan, error) {
	weekly := &domain.WeeklyPlan{
		PlanID:          uuid.NewString(),
		WeekOf:          a.now().Format(dateLayout),
		FastingSchedule: schedule,
		PrepTips:        PrepTips(),
	}
	for day := 0; day < 7; day++ {
		daily, err := a.DailyPlan(schedule, targetCalories)
		if err != nil {
			return nil, err
		}
		daily.Date = a.now().AddDate(0, 0, day).Format(dateLayout)
		weekly.DailyPlans = append(weekly.DailyPlans, *daily)
	}
	weekly.ShoppingList = ShoppingList(&weekly.DailyPlans[0], days)
	return weekly, nil
}

// slotFromSelection folds a selection and any with-food supplements into a
// MealSlot record.
func slotFromSelection(name, at string, target float64, sel MealSelection, supps []domain.SupplementDose) domain.MealSlot {
	foods := sel.Foods
	if foods == nil {
		foods = []domain.SelectedFood{}
	}
	return domain.MealSlot{
		Name:           name,
		Time:           at,
		TargetCalories: target,
		Foods:          foods,
		Supplements:    supps,
		TotalCalories:  sel.TotalCalories,
		TotalProtein:   sel.TotalProtein,
		TotalFat:       sel.TotalFat,
		TotalCarbs:     sel.TotalCarbs,
	}
}

// withFoodSupplements returns doses for every supplement taken with food.
func (a *Assembler) withFoodSupplements() []domain.SupplementDose {
	var doses []domain.SupplementDose
	for _, s := range a.catalog.Supplements() {
		if s.Timing == domain.SupplementWithFood {
			doses = append(doses, domain.SupplementDose{Name: s.Name, Dosage: s.Dosage, Notes: s.Notes})
		}
	}
	return doses
}

// SupplementSchedule buckets the full regimen by timing. Fixed buckets are
// morning, with_meals and evening; any other timing creates an ad-hoc bucket
// keyed by the timing with underscores replaced by spaces.
func (a *Assembler) SupplementSchedule() domain.SupplementSchedule {
	schedule := domain.SupplementSchedule{
		"morning":    {},
		"with_meals": {},
		"evening":    {},
	}
	for _, s := range a.catalog.Supplements() {
		dose := domain.SupplementDose{Name: s.Name, Dosage: s.Dosage, Notes: s.Notes}
		switch s.Timing {
		case domain.SupplementMorning:
			schedule["morning"] = append(schedule["morning"], dose)
		case domain.SupplementWithFood:
			schedule["with_meals"] = append(schedule["with_meals"], dose)
		case domain.SupplementEvening:
			schedule["evening"] = append(schedule["evening"], dose)
		default:
			key := strings.ReplaceAll(string(s.Timing), "_", " ")
			schedule[key] = append(schedule[key], dose)
		}
	}
	return schedule
}

// prepSchedule derives prep tasks as fixed offsets before the meal times:
// 30 minutes before the first meal, 25 before the last.
func prepSchedule(firstMeal, lastMeal time.Time) *domain.PrepSchedule {
	return &domain.PrepSchedule{
		Shopping: "Day before or morning",
		Tasks: []domain.PrepTask{
			{Time: domain.Clock(firstMeal.Add(-30 * time.Minute)), Task: "Prepare first meal", Duration: "20-30 minutes"},
			{Time: domain.Clock(lastMeal.Add(-25 * time.Minute)), Task: "Prepare last meal", Duration: "15-25 minutes"},
		},
	}
}

// cookingInstructions generates guidance lines for the selected foods based
// on skill level plus food-specific techniques.
func cookingInstructions(foods []domain.SelectedFood, prefs domain.PersonalPreferences) []string {
	var out []string
	if prefs.CookingSkill == domain.SkillBeginner {
		out = append(out,
			"Keep it simple - focus on basic cooking methods",
			"Season with salt, pepper, and olive oil",
		)
	} else {
		out = append(out,
			"Feel free to experiment with herbs and spices",
			"Consider advanced cooking techniques like sous vide or grilling",
		)
	}
	for _, f := range foods {
		name := strings.ToLower(f.Name)
		switch {
		case strings.Contains(name, "salmon"):
			out = append(out, "Pan-sear "+f.Name+" for 4-5 minutes per side")
		case strings.Contains(name, "beef"):
			out = append(out, "Cook "+f.Name+" to desired doneness (medium-rare recommended)")
		case strings.Contains(name, "eggs"):
			out = append(out, "Scramble or fry "+f.Name+" in grass-fed butter")
		}
	}
	return out
}

// timingAdvice returns meal-timing recommendations keyed by window length.
func timingAdvice(windowHours float64) map[string]string {
	advice := map[string]string{
		"break_fast_with":  "High-fat foods (MCT oil, avocado) to maintain ketosis",
		"pre_workout":      "If exercising, consider BCAAs during fasting",
		"post_workout":     "Prioritize protein within eating window",
		"last_meal_cutoff": "Stop eating 3 hours before sleep for better digestion",
	}
	if windowHours <= 4 {
		advice["meal_composition"] = "Balance all macros in single meal"
	} else if windowHours <= 8 {
		advice["first_meal"] = "Higher fat and protein"
		advice["last_meal"] = "Include some carbs for better sleep"
	}
	return advice
}

// PrepTips are the weekly meal-prep recommendations.
func PrepTips() []string {
	return []string{
		"Prep proteins in bulk at the start of the week",
		"Pre-wash and chop vegetables for quick cooking",
		"Keep emergency keto snacks (nuts, cheese) on hand",
		"Prepare MCT oil or bulletproof coffee for breaking fast",
		"Set reminders for supplement timing",
		"Stay hydrated during fasting periods with electrolytes",
		"Consider batch cooking proteins like salmon and beef",
		"Keep avocados at different ripeness stages for the week",
	}
}
