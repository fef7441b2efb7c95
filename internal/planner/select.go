package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mcgregor/if-planner/internal/domain"
)

// ServingPolicy decides what happens when a candidate food's serving
// multiplier would fall at or below the minimum. Silently skipping such
// foods is the default, with stricter alternatives available.
type ServingPolicy int

const (
	// ServingSkip drops the candidate and moves on.
	ServingSkip ServingPolicy = iota
	// ServingDefer re-queues the candidate once behind the remaining ranked
	// list, in case later picks free up no budget but an earlier small-budget
	// state was transient. A candidate is deferred at most once.
	ServingDefer
	// ServingError aborts slot assembly with ErrInfeasibleServing.
	ServingError
)

// ErrInfeasibleServing is returned under ServingError when a ranked candidate
// cannot be served above the minimum multiplier.
var ErrInfeasibleServing = errors.New("serving below minimum for remaining calorie budget")

// SelectionOptions parameterize the single selection pipeline. The base and
// personalized planners are just two presets over it.
type SelectionOptions struct {
	Strategy ScoringStrategy
	MaxFoods int

	// FixedMultiplier, when > 0, applies an unconditional serving multiplier
	// to every accepted food (base planner: 0.8). When 0, the multiplier is
	// computed adaptively from the remaining budget.
	FixedMultiplier float64

	// Adaptive-serving bounds, used when FixedMultiplier == 0.
	MinMultiplier float64 // a food is only accepted above this (0.3 ≈ 30g)
	MaxMultiplier float64 // serving cap (1.5 ≈ 150g)

	Policy      ServingPolicy
	Preferences *domain.PersonalPreferences // required for ScoreWeighted
}

// BaseSelection is the simple, non-personalized preset: rank by protein+fat,
// fixed 80% servings, at most 4 foods.
func BaseSelection() SelectionOptions {
	return SelectionOptions{
		Strategy:        ScoreMacroSum,
		MaxFoods:        4,
		FixedMultiplier: 0.8,
	}
}

// PersonalizedSelection is the weighted preset: combined nutrition/preference
// score, adaptive servings in (0.3, 1.5], at most 5 foods.
func PersonalizedSelection(prefs domain.PersonalPreferences) SelectionOptions {
	return SelectionOptions{
		Strategy:      ScoreWeighted,
		MaxFoods:      5,
		MinMultiplier: 0.3,
		MaxMultiplier: 1.5,
		Policy:        ServingSkip,
		Preferences:   &prefs,
	}
}

// FilterByPreferences removes foods whose name contains an allergy or dislike
// substring (case-insensitive) or whose prep time exceeds the ceiling.
func FilterByPreferences(foods []domain.Food, prefs domain.PersonalPreferences) []domain.Food {
	var out []domain.Food
candidates:
	for _, f := range foods {
		name := strings.ToLower(f.Name)
		for _, allergen := range prefs.Allergies {
			if allergen != "" && strings.Contains(name, strings.ToLower(allergen)) {
				continue candidates
			}
		}
		for _, dislike := range prefs.Dislikes {
			if dislike != "" && strings.Contains(name, strings.ToLower(dislike)) {
				continue candidates
			}
		}
		if f.PrepMin > prefs.MaxPrepMinutes {
			continue
		}
		out = append(out, f)
	}
	return out
}

// scoredFood pairs a candidate with its rank score.
type scoredFood struct {
	food     domain.Food
	score    float64
	deferred bool
}

// rank scores and sorts candidates descending. Ties keep catalog order.
func rank(foods []domain.Food, opts SelectionOptions) ([]scoredFood, error) {
	scored := make([]scoredFood, 0, len(foods))
	for _, f := range foods {
		var s float64
		switch opts.Strategy {
		case ScoreMacroSum:
			s = MacroSumScore(f)
		case ScoreWeighted:
			if opts.Preferences == nil {
				return nil, errors.New("weighted scoring requires preferences")
			}
			s = CombinedScore(f, *opts.Preferences)
		default:
			return nil, fmt.Errorf("unknown scoring strategy %d", opts.Strategy)
		}
		scored = append(scored, scoredFood{food: f, score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored, nil
}

// MealSelection is the output of filling one slot.
type MealSelection struct {
	Foods         []domain.SelectedFood
	TotalCalories float64
	TotalProtein  float64
	TotalFat      float64
	TotalCarbs    float64
}

// SelectMeal greedily fills a slot's calorie budget from ranked candidates,
// stopping once the budget is met or the food cap is reached.
func SelectMeal(candidates []domain.Food, targetCalories float64, opts SelectionOptions) (MealSelection, error) {
	ranked, err := rank(candidates, opts)
	if err != nil {
		return MealSelection{}, err
	}

	if opts.FixedMultiplier > 0 {
		return selectFixed(ranked, targetCalories, opts), nil
	}
	return selectAdaptive(ranked, targetCalories, opts)
}

// selectFixed is the base path: walk the top MaxFoods candidates and take
// each at the fixed multiplier while the budget is unfilled.
func selectFixed(ranked []scoredFood, targetCalories float64, opts SelectionOptions) MealSelection {
	var sel MealSelection
	limit := opts.MaxFoods
	if limit > len(ranked) {
		limit = len(ranked)
	}
	for _, cand := range ranked[:limit] {
		if sel.TotalCalories >= targetCalories {
			continue
		}
		f := cand.food
		m := opts.FixedMultiplier
		sel.add(domain.SelectedFood{
			Name:              f.Name,
			Serving:           f.Serving,
			ServingMultiplier: m,
			Calories:          f.Calories * m,
			Protein:           f.ProteinG * m,
			Fat:               f.FatG * m,
			Carbs:             f.CarbsG * m,
			PrepMinutes:       f.PrepMin,
		})
	}
	return sel
}

// selectAdaptive is the personalized path: serving sized to the remaining
// budget, bounded by MaxMultiplier, accepted only above MinMultiplier.
func selectAdaptive(ranked []scoredFood, targetCalories float64, opts SelectionOptions) (MealSelection, error) {
	var sel MealSelection
	queue := ranked
	for len(queue) > 0 {
		if sel.TotalCalories >= targetCalories || len(sel.Foods) >= opts.MaxFoods {
			break
		}
		cand := queue[0]
		queue = queue[1:]
		f := cand.food

		remaining := targetCalories - sel.TotalCalories
		m := opts.MaxMultiplier
		if f.Calories > 0 {
			if byBudget := remaining / f.Calories; byBudget < m {
				m = byBudget
			}
		}

		if m <= opts.MinMultiplier {
			switch opts.Policy {
			case ServingError:
				return MealSelection{}, fmt.Errorf("%w: %s needs > %.0fg", ErrInfeasibleServing, f.Name, opts.MinMultiplier*100)
			case ServingDefer:
				if !cand.deferred {
					cand.deferred = true
					queue = append(queue, cand)
				}
			}
			// ServingSkip: excluded from the meal entirely, budget untouched.
			continue
		}

		sel.add(domain.SelectedFood{
			Name:              f.Name,
			ServingMultiplier: m,
			Calories:          f.Calories * m,
			Protein:           f.ProteinG * m,
			Fat:               f.FatG * m,
			Carbs:             f.CarbsG * m,
			PrepMinutes:       f.PrepMin,
			Score:             cand.score,
		})
	}
	return sel, nil
}

func (s *MealSelection) add(f domain.SelectedFood) {
	s.Foods = append(s.Foods, f)
	s.TotalCalories += f.Calories
	s.TotalProtein += f.Protein
	s.TotalFat += f.Fat
	s.TotalCarbs += f.Carbs
}
