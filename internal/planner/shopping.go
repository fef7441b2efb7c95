package planner

import (
	"fmt"
	"strings"

	"mcgregor/if-planner/internal/domain"
)

// ShoppingList walks every food in every slot of a plan and aggregates them
// into shopping entries. Deduplication is by name, first occurrence wins:
// repeated appearances of the same food across slots do not scale the
// quantity. TODO: scale quantities with occurrence count; the current rules
// assume each food shows up in one slot per day.
func ShoppingList(plan *domain.MealPlan, days int) []domain.ShoppingItem {
	var items []domain.ShoppingItem
	seen := make(map[string]bool)
	for _, meal := range plan.Meals {
		for _, food := range meal.Foods {
			if seen[food.Name] {
				continue
			}
			seen[food.Name] = true
			items = append(items, domain.ShoppingItem{
				Item:     food.Name,
				Quantity: foodQuantity(food.Name, days),
				Category: foodCategory(food.Name),
				Notes:    fmt.Sprintf("For %d days of meal prep", days),
			})
		}
	}
	return items
}

// foodQuantity maps a food name to a shopping quantity string via fixed
// case-insensitive substring rules.
func foodQuantity(name string, days int) string {
	lower := strings.ToLower(name)
	everyOtherDay := days / 2
	if everyOtherDay < 1 {
		everyOtherDay = 1
	}

	switch {
	case strings.Contains(lower, "salmon") || strings.Contains(lower, "fish"):
		return fmt.Sprintf("%d fillets", everyOtherDay)
	case strings.Contains(lower, "beef"):
		return fmt.Sprintf("%d steaks", everyOtherDay)
	case strings.Contains(lower, "chicken"):
		return fmt.Sprintf("%d breasts", everyOtherDay)
	case strings.Contains(lower, "eggs"):
		dozens := days * 2 / 12 // 2 eggs per day
		if dozens < 1 {
			dozens = 1
		}
		return fmt.Sprintf("%d dozen", dozens)
	case strings.Contains(lower, "avocado"):
		return fmt.Sprintf("%d avocados", days)
	case strings.Contains(lower, "oil"):
		return "1 bottle"
	case strings.Contains(lower, "nuts"):
		return "1 bag"
	case strings.Contains(lower, "cheese"):
		return fmt.Sprintf("1 block (%d servings)", days)
	case strings.Contains(lower, "spinach"), strings.Contains(lower, "broccoli"), strings.Contains(lower, "cauliflower"):
		return fmt.Sprintf("%d bunches/bags", everyOtherDay)
	default:
		return fmt.Sprintf("%d servings", days)
	}
}

// foodCategory assigns a shopping-list section by name substring; the first
// matching rule wins.
func foodCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "salmon", "beef", "chicken", "fish", "sardines", "mackerel"):
		return "Meat & Fish"
	case containsAny(lower, "cheese", "yogurt", "butter"):
		return "Dairy"
	case containsAny(lower, "spinach", "broccoli", "cauliflower", "brussels"):
		return "Vegetables"
	case containsAny(lower, "oil", "nuts", "avocado"):
		return "Healthy Fats"
	default:
		return "Other"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
