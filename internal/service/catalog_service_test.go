package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/catalog"
	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/export"
)

func TestAddCustomFood(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})
	owner := primitive.NewObjectID()

	added, err := svc.AddCustomFood(context.Background(), owner, domain.Food{
		Name: "Duck Eggs", ProteinG: 13, FatG: 14, CarbsG: 1.4, Calories: 185, Serving: "2 eggs", PrepMin: 10,
	})
	if err != nil {
		t.Fatalf("AddCustomFood() error = %v", err)
	}
	if added.ID.IsZero() {
		t.Error("added food has no ID")
	}
	if added.OwnerID != owner {
		t.Error("added food should carry the owner ID")
	}
	if added.Timing != domain.TimingAnytime {
		t.Errorf("Timing = %q, want the anytime default", added.Timing)
	}

	foods, err := svc.Foods(context.Background(), owner)
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	want := len(catalog.DefaultFoods()) + 1
	if len(foods) != want {
		t.Errorf("Foods() = %d entries, want %d", len(foods), want)
	}
	if foods[len(foods)-1].Name != "Duck Eggs" {
		t.Error("custom food should follow the built-ins")
	}
}

func TestAddCustomFoodValidation(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})
	owner := primitive.NewObjectID()

	cases := []struct {
		name string
		food domain.Food
	}{
		{"empty name", domain.Food{Calories: 100}},
		{"negative protein", domain.Food{Name: "Bad", ProteinG: -1}},
		{"negative calories", domain.Food{Name: "Bad", Calories: -10}},
		{"negative prep time", domain.Food{Name: "Bad", PrepMin: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddCustomFood(context.Background(), owner, tc.food); !errors.Is(err, ErrCatalogValidation) {
				t.Errorf("AddCustomFood() error = %v, want ErrCatalogValidation", err)
			}
		})
	}
}

func TestAddCustomSupplementValidation(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})
	owner := primitive.NewObjectID()

	if _, err := svc.AddCustomSupplement(context.Background(), owner, domain.Supplement{Name: "Zinc"}); !errors.Is(err, ErrCatalogValidation) {
		t.Errorf("missing dosage: error = %v, want ErrCatalogValidation", err)
	}
	if _, err := svc.AddCustomSupplement(context.Background(), owner, domain.Supplement{Name: "Zinc", Dosage: "15mg"}); err != nil {
		t.Errorf("valid supplement: error = %v", err)
	}
}

func TestUserCatalogIsPerOwner(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	if _, err := svc.AddCustomFood(context.Background(), alice, domain.Food{Name: "Duck Eggs", Calories: 185}); err != nil {
		t.Fatalf("AddCustomFood() error = %v", err)
	}

	bobCat, err := svc.UserCatalog(context.Background(), bob)
	if err != nil {
		t.Fatalf("UserCatalog() error = %v", err)
	}
	if got, want := len(bobCat.Foods()), len(catalog.DefaultFoods()); got != want {
		t.Errorf("another user's catalog has %d foods, want the %d built-ins only", got, want)
	}
}

func TestImportConfigAppends(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})
	owner := primitive.NewObjectID()

	if _, err := svc.AddCustomFood(context.Background(), owner, domain.Food{Name: "Existing", Calories: 100}); err != nil {
		t.Fatalf("AddCustomFood() error = %v", err)
	}

	var buf bytes.Buffer
	err := export.WriteCustomConfig(&buf,
		[]domain.Food{{Name: "Imported Food", ProteinG: 5, FatG: 5, CarbsG: 5, Calories: 85, Serving: "portion", Timing: domain.TimingAnytime, PrepMin: 5}},
		[]domain.Supplement{{Name: "Zinc", Dosage: "15mg", Timing: domain.SupplementWithFood}},
	)
	if err != nil {
		t.Fatalf("WriteCustomConfig() error = %v", err)
	}

	nFoods, nSupps, err := svc.ImportConfig(context.Background(), owner, &buf)
	if err != nil {
		t.Fatalf("ImportConfig() error = %v", err)
	}
	if nFoods != 1 || nSupps != 1 {
		t.Errorf("imported %d foods / %d supplements, want 1/1", nFoods, nSupps)
	}

	foods, err := svc.Foods(context.Background(), owner)
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	// Built-ins, the pre-existing custom entry, and the imported one.
	want := len(catalog.DefaultFoods()) + 2
	if len(foods) != want {
		t.Errorf("Foods() = %d entries, want %d (import must append, not replace)", len(foods), want)
	}
}

func TestImportConfigRejectsInvalidWithoutPartialState(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := NewCatalogService(repo)
	owner := primitive.NewObjectID()

	raw := `{
        "custom_foods": [
            {"name": "Valid", "protein_per_100g": 1, "fat_per_100g": 1, "carbs_per_100g": 1, "calories_per_100g": 20, "serving_size": "portion", "meal_timing": "anytime", "preparation_time": 1},
            {"name": "Broken"}
        ]
    }`
	_, _, err := svc.ImportConfig(context.Background(), owner, strings.NewReader(raw))
	var vErr *export.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ImportConfig() error = %v, want *export.ValidationError", err)
	}
	if len(repo.foods) != 0 {
		t.Errorf("repo has %d foods after a failed import, want 0", len(repo.foods))
	}
}

func TestExportConfigRoundTrip(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})
	owner := primitive.NewObjectID()

	if _, err := svc.AddCustomFood(context.Background(), owner, domain.Food{
		Name: "Duck Eggs", ProteinG: 13, FatG: 14, CarbsG: 1.4, Calories: 185, Serving: "2 eggs", PrepMin: 10,
	}); err != nil {
		t.Fatalf("AddCustomFood() error = %v", err)
	}

	data, err := svc.ExportConfig(context.Background(), owner)
	if err != nil {
		t.Fatalf("ExportConfig() error = %v", err)
	}

	foods, _, err := export.ReadCustomConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported config does not re-import: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Duck Eggs" {
		t.Errorf("re-imported foods = %+v, want the single Duck Eggs entry", foods)
	}
}
