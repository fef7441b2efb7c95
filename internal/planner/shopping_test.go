package planner

import (
	"testing"

	"mcgregor/if-planner/internal/domain"
)

func planWithFoods(slots ...[]string) *domain.MealPlan {
	plan := &domain.MealPlan{}
	for _, names := range slots {
		var foods []domain.SelectedFood
		for _, n := range names {
			foods = append(foods, domain.SelectedFood{Name: n})
		}
		plan.Meals = append(plan.Meals, domain.MealSlot{Foods: foods})
	}
	return plan
}

func TestShoppingListQuantities(t *testing.T) {
	cases := []struct {
		name     string
		food     string
		days     int
		wantQty  string
		wantCat  string
	}{
		{"salmon every other day", "Salmon (wild-caught)", 7, "3 fillets", "Meat & Fish"},
		{"beef steaks", "Grass-fed Beef", 7, "3 steaks", "Meat & Fish"},
		{"eggs one dozen per week", "Eggs (pasture-raised)", 7, "1 dozen", "Other"},
		{"eggs two dozen for two weeks", "Eggs (pasture-raised)", 14, "2 dozen", "Other"},
		{"eggs floor at one dozen", "Eggs (pasture-raised)", 2, "1 dozen", "Other"},
		{"avocado per day", "Avocado", 7, "7 avocados", "Healthy Fats"},
		{"oil one bottle", "Olive Oil (extra virgin)", 7, "1 bottle", "Healthy Fats"},
		{"nuts one bag", "Nuts (mixed)", 7, "1 bag", "Healthy Fats"},
		{"cheese block", "Cheese (aged cheddar)", 7, "1 block (7 servings)", "Dairy"},
		{"greens in bunches", "Spinach", 7, "3 bunches/bags", "Vegetables"},
		{"fallback servings", "Greek Yogurt (full-fat)", 7, "7 servings", "Dairy"},
		{"single day minimum", "Salmon (wild-caught)", 1, "1 fillets", "Meat & Fish"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := ShoppingList(planWithFoods([]string{tc.food}), tc.days)
			if len(items) != 1 {
				t.Fatalf("got %d items, want 1", len(items))
			}
			if items[0].Quantity != tc.wantQty {
				t.Errorf("Quantity = %q, want %q", items[0].Quantity, tc.wantQty)
			}
			if items[0].Category != tc.wantCat {
				t.Errorf("Category = %q, want %q", items[0].Category, tc.wantCat)
			}
		})
	}
}

// A food appearing in several slots yields one entry with an unscaled
// quantity. First occurrence wins; repeats are not counted.
func TestShoppingListDeduplicatesByName(t *testing.T) {
	plan := planWithFoods(
		[]string{"Avocado", "Salmon (wild-caught)"},
		[]string{"Avocado", "Grass-fed Beef"},
		[]string{"Avocado"},
	)
	items := ShoppingList(plan, 7)

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 distinct foods", len(items))
	}
	avocados := 0
	for _, it := range items {
		if it.Item == "Avocado" {
			avocados++
			if it.Quantity != "7 avocados" {
				t.Errorf("Avocado quantity = %q, want the single-occurrence %q", it.Quantity, "7 avocados")
			}
		}
	}
	if avocados != 1 {
		t.Errorf("Avocado appears %d times, want 1", avocados)
	}
}

func TestShoppingListPreservesFirstSeenOrder(t *testing.T) {
	plan := planWithFoods([]string{"Spinach", "Avocado"}, []string{"Salmon (wild-caught)", "Spinach"})
	items := ShoppingList(plan, 7)

	want := []string{"Spinach", "Avocado", "Salmon (wild-caught)"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Item != name {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Item, name)
		}
	}
}

func TestFoodCategoryFirstRuleWins(t *testing.T) {
	// "Salmon in olive oil" matches Meat & Fish before Healthy Fats.
	if got := foodCategory("Salmon in olive oil"); got != "Meat & Fish" {
		t.Errorf("foodCategory() = %q, want Meat & Fish", got)
	}
	if got := foodCategory("Mystery item"); got != "Other" {
		t.Errorf("foodCategory() = %q, want Other", got)
	}
}
