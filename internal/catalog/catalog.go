// Package catalog holds the built-in food and supplement library and merges
// in per-user custom entries. The built-in lists are static; a catalog only
// ever grows by appending, entries are never removed or mutated.
package catalog

import (
	"mcgregor/if-planner/internal/domain"
)

// DefaultFoods returns the built-in keto/IF-friendly food library.
func DefaultFoods() []domain.Food {
	return []domain.Food{
		{Name: "Avocado", ProteinG: 2.0, FatG: 14.7, CarbsG: 8.5, Calories: 160, Serving: "1 medium avocado", Timing: domain.TimingAnytime, PrepMin: 5},
		{Name: "Salmon (wild-caught)", ProteinG: 25.4, FatG: 13.4, CarbsG: 0, Calories: 208, Serving: "150g fillet", Timing: domain.TimingAnytime, PrepMin: 15},
		{Name: "Eggs (pasture-raised)", ProteinG: 13.0, FatG: 11.0, CarbsG: 1.1, Calories: 155, Serving: "2 large eggs", Timing: domain.TimingAnytime, PrepMin: 10},
		{Name: "Grass-fed Beef", ProteinG: 26.0, FatG: 20.0, CarbsG: 0, Calories: 250, Serving: "150g steak", Timing: domain.TimingAnytime, PrepMin: 20},
		{Name: "Olive Oil (extra virgin)", ProteinG: 0, FatG: 100, CarbsG: 0, Calories: 884, Serving: "1 tbsp", Timing: domain.TimingAnytime, PrepMin: 0},
		{Name: "Nuts (mixed)", ProteinG: 15.0, FatG: 54.0, CarbsG: 16.0, Calories: 607, Serving: "30g handful", Timing: domain.TimingAnytime, PrepMin: 0},
		{Name: "Greek Yogurt (full-fat)", ProteinG: 10.0, FatG: 5.0, CarbsG: 4.0, Calories: 97, Serving: "150g cup", Timing: domain.TimingAnytime, PrepMin: 0},
		{Name: "MCT Oil", ProteinG: 0, FatG: 100, CarbsG: 0, Calories: 828, Serving: "1 tbsp", Timing: domain.TimingFirstMeal, PrepMin: 0},
		{Name: "Coconut Oil", ProteinG: 0, FatG: 99.0, CarbsG: 0, Calories: 862, Serving: "1 tbsp", Timing: domain.TimingAnytime, PrepMin: 0},
		{Name: "Sardines", ProteinG: 25.0, FatG: 11.5, CarbsG: 0, Calories: 208, Serving: "100g can", Timing: domain.TimingAnytime, PrepMin: 5},
		{Name: "Mackerel", ProteinG: 26.0, FatG: 16.0, CarbsG: 0, Calories: 262, Serving: "150g fillet", Timing: domain.TimingAnytime, PrepMin: 15},
		{Name: "Cheese (aged cheddar)", ProteinG: 25.0, FatG: 33.0, CarbsG: 1.3, Calories: 403, Serving: "50g portion", Timing: domain.TimingAnytime, PrepMin: 0},
		{Name: "Spinach", ProteinG: 2.9, FatG: 0.4, CarbsG: 3.6, Calories: 23, Serving: "100g serving", Timing: domain.TimingAnytime, PrepMin: 5},
		{Name: "Broccoli", ProteinG: 3.0, FatG: 0.4, CarbsG: 7.0, Calories: 34, Serving: "150g serving", Timing: domain.TimingAnytime, PrepMin: 10},
		{Name: "Brussels Sprouts", ProteinG: 3.4, FatG: 0.3, CarbsG: 9.0, Calories: 43, Serving: "150g serving", Timing: domain.TimingAnytime, PrepMin: 15},
		{Name: "Cauliflower", ProteinG: 1.9, FatG: 0.3, CarbsG: 5.0, Calories: 25, Serving: "150g serving", Timing: domain.TimingAnytime, PrepMin: 12},
	}
}

// DefaultSupplements returns the built-in supplement regimen.
func DefaultSupplements() []domain.Supplement {
	return []domain.Supplement{
		{Name: "Vitamin D3", Dosage: "2000-4000 IU", Timing: domain.SupplementWithFood, Notes: "Fat-soluble, take with meals containing fat"},
		{Name: "Vitamin K2 (MK-7)", Dosage: "100-200 mcg", Timing: domain.SupplementWithFood, Notes: "Synergistic with D3, take together"},
		{Name: "Magnesium Glycinate", Dosage: "200-400mg", Timing: domain.SupplementEvening, Notes: "Better absorption, helps with sleep"},
		{Name: "Biotin", Dosage: "2500-5000 mcg", Timing: domain.SupplementMorning, Notes: "Support hair, skin, nails"},
		{Name: "Omega-3 Fish Oil", Dosage: "1000-2000mg EPA/DHA", Timing: domain.SupplementWithFood, Notes: "If not eating enough fatty fish"},
		{Name: "Electrolytes", Dosage: "As needed", Timing: domain.SupplementMorning, Notes: "Important during fasting periods"},
	}
}

// Catalog combines the built-in library with a user's custom entries.
// A planner instance owns its Catalog; appends are additive only.
type Catalog struct {
	foods       []domain.Food
	supplements []domain.Supplement
}

// New returns a catalog seeded with the built-in library.
func New() *Catalog {
	return &Catalog{
		foods:       DefaultFoods(),
		supplements: DefaultSupplements(),
	}
}

// AddFoods appends custom foods.
func (c *Catalog) AddFoods(foods ...domain.Food) {
	c.foods = append(c.foods, foods...)
}

// AddSupplements appends custom supplements.
func (c *Catalog) AddSupplements(supps ...domain.Supplement) {
	c.supplements = append(c.supplements, supps...)
}

// Foods returns a copy of the full food list (built-in plus custom).
func (c *Catalog) Foods() []domain.Food {
	out := make([]domain.Food, len(c.foods))
	copy(out, c.foods)
	return out
}

// Supplements returns a copy of the full supplement list.
func (c *Catalog) Supplements() []domain.Supplement {
	out := make([]domain.Supplement, len(c.supplements))
	copy(out, c.supplements)
	return out
}

// FoodsForTiming returns foods allowed in a slot with the given timings.
func (c *Catalog) FoodsForTiming(timings ...domain.MealTiming) []domain.Food {
	var out []domain.Food
	for _, f := range c.foods {
		if f.AllowedIn(timings...) {
			out = append(out, f)
		}
	}
	return out
}
