package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/planner"
)

func TestPreferencesNotFound(t *testing.T) {
	svc := NewProfileService(newFakePreferenceRepo())
	_, err := svc.Preferences(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrPreferencesNotFound) {
		t.Fatalf("Preferences() error = %v, want ErrPreferencesNotFound", err)
	}
}

func TestSaveAndLoadPreferences(t *testing.T) {
	svc := NewProfileService(newFakePreferenceRepo())
	owner := primitive.NewObjectID()

	saved, err := svc.SavePreferences(context.Background(), domain.PreferenceProfile{
		OwnerID:     owner,
		Age:         "30",
		Weight:      "80",
		FastingType: "16:8",
		Allergies:   "shellfish, peanuts",
	})
	if err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("saved profile has no timestamp")
	}

	got, err := svc.Preferences(context.Background(), owner)
	if err != nil {
		t.Fatalf("Preferences() error = %v", err)
	}
	if got.FastingType != "16:8" || got.Allergies != "shellfish, peanuts" {
		t.Errorf("loaded profile = %+v, want the saved form fields", got)
	}
}

func TestSavePreferencesKeepsLastCalories(t *testing.T) {
	svc := NewProfileService(newFakePreferenceRepo())
	owner := primitive.NewObjectID()

	if _, err := svc.SavePreferences(context.Background(), domain.PreferenceProfile{OwnerID: owner, Calories: 2200}); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	// A later save without a calorie figure preserves the earlier one.
	saved, err := svc.SavePreferences(context.Background(), domain.PreferenceProfile{OwnerID: owner, Age: "31"})
	if err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	if saved.Calories != 2200 {
		t.Errorf("Calories = %d, want the preserved 2200", saved.Calories)
	}
}

func TestCalculateCaloriesStoresRecommendation(t *testing.T) {
	repo := newFakePreferenceRepo()
	svc := NewProfileService(repo)
	owner := primitive.NewObjectID()

	estimate, err := svc.CalculateCalories(context.Background(), owner, domain.BodyMetrics{
		Age: 30, WeightKG: 80, HeightCM: 180,
		Gender: domain.GenderMale, Activity: domain.ActivityModerate,
	})
	if err != nil {
		t.Fatalf("CalculateCalories() error = %v", err)
	}
	if estimate.Recommended != 2750 {
		t.Errorf("Recommended = %d, want 2750", estimate.Recommended)
	}

	profile, err := svc.Preferences(context.Background(), owner)
	if err != nil {
		t.Fatalf("Preferences() error = %v", err)
	}
	if profile.Calories != 2750 {
		t.Errorf("stored Calories = %d, want 2750", profile.Calories)
	}
}

func TestCalculateCaloriesPropagatesInputError(t *testing.T) {
	repo := newFakePreferenceRepo()
	svc := NewProfileService(repo)
	owner := primitive.NewObjectID()

	_, err := svc.CalculateCalories(context.Background(), owner, domain.BodyMetrics{Age: -1})
	var inputErr *planner.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("CalculateCalories() error = %v, want *planner.InputError", err)
	}
	if len(repo.profiles) != 0 {
		t.Error("nothing should be stored for an invalid calculation")
	}
}
