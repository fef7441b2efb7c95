// internal/domain/food.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealTiming restricts a food to a slot of the eating window.
type MealTiming string

const (
	TimingFirstMeal MealTiming = "first_meal"
	TimingLastMeal  MealTiming = "last_meal"
	TimingAnytime   MealTiming = "anytime"
)

// Food is a single catalog entry with nutrition per 100g.
// Built-in entries carry a zero ID and OwnerID; custom entries are stored
// per user and get both set by the repository layer. Entries are immutable
// once created and are only ever appended to a catalog, never removed.
type Food struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"ownerId,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	ProteinG  float64            `bson:"proteinPer100g" json:"protein_per_100g"`
	FatG      float64            `bson:"fatPer100g" json:"fat_per_100g"`
	CarbsG    float64            `bson:"carbsPer100g" json:"carbs_per_100g"`
	Calories  float64            `bson:"caloriesPer100g" json:"calories_per_100g"`
	Serving   string             `bson:"servingSize" json:"serving_size"` // display only, e.g. "150g fillet"
	Timing    MealTiming         `bson:"mealTiming" json:"meal_timing"`
	PrepMin   int                `bson:"preparationTime" json:"preparation_time"` // minutes
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"-"`
}

// AllowedIn reports whether the food may appear in a slot restricted to the
// given timings. "anytime" foods are allowed everywhere.
func (f Food) AllowedIn(timings ...MealTiming) bool {
	for _, t := range timings {
		if f.Timing == t {
			return true
		}
	}
	return false
}
