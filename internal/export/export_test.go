package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"mcgregor/if-planner/internal/domain"
)

func TestCustomConfigRoundTrip(t *testing.T) {
	foods := []domain.Food{
		{Name: "Duck Eggs", ProteinG: 13, FatG: 14, CarbsG: 1.4, Calories: 185, Serving: "2 eggs", Timing: domain.TimingAnytime, PrepMin: 10},
		{Name: "Bone Broth", ProteinG: 10, FatG: 0.5, CarbsG: 0, Calories: 45, Serving: "250ml cup", Timing: domain.TimingFirstMeal, PrepMin: 5},
	}
	supps := []domain.Supplement{
		{Name: "Zinc", Dosage: "15mg", Timing: domain.SupplementWithFood, Notes: "With dinner"},
	}

	var buf bytes.Buffer
	if err := WriteCustomConfig(&buf, foods, supps); err != nil {
		t.Fatalf("WriteCustomConfig() error = %v", err)
	}

	gotFoods, gotSupps, err := ReadCustomConfig(&buf)
	if err != nil {
		t.Fatalf("ReadCustomConfig() error = %v", err)
	}
	if !reflect.DeepEqual(gotFoods, foods) {
		t.Errorf("foods round trip = %+v, want %+v", gotFoods, foods)
	}
	if !reflect.DeepEqual(gotSupps, supps) {
		t.Errorf("supplements round trip = %+v, want %+v", gotSupps, supps)
	}
}

func TestReadCustomConfigMissingField(t *testing.T) {
	raw := `{
        "custom_foods": [
            {
                "name": "Duck Eggs",
                "protein_per_100g": 13,
                "fat_per_100g": 14,
                "carbs_per_100g": 1.4,
                "calories_per_100g": 185,
                "serving_size": "2 eggs",
                "meal_timing": "anytime",
                "preparation_time": 10
            },
            {
                "name": "Broken Entry",
                "protein_per_100g": 10
            }
        ],
        "custom_supplements": []
    }`

	foods, supps, err := ReadCustomConfig(strings.NewReader(raw))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ReadCustomConfig() error = %v, want *ValidationError", err)
	}
	if vErr.Entry != "custom_foods[1]" {
		t.Errorf("ValidationError.Entry = %q, want custom_foods[1]", vErr.Entry)
	}
	if vErr.Field != "fat_per_100g" {
		t.Errorf("ValidationError.Field = %q, want fat_per_100g", vErr.Field)
	}
	// A failed import applies nothing, including the valid first entry.
	if foods != nil || supps != nil {
		t.Error("partial results should not be returned on validation failure")
	}
}

func TestReadCustomConfigRejectsNegativeValues(t *testing.T) {
	raw := `{
        "custom_foods": [
            {
                "name": "Bad Macro",
                "protein_per_100g": -5,
                "fat_per_100g": 14,
                "carbs_per_100g": 1.4,
                "calories_per_100g": 185,
                "serving_size": "portion",
                "meal_timing": "anytime",
                "preparation_time": 10
            }
        ]
    }`

	_, _, err := ReadCustomConfig(strings.NewReader(raw))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ReadCustomConfig() error = %v, want *ValidationError", err)
	}
	if vErr.Field != "protein_per_100g" {
		t.Errorf("ValidationError.Field = %q, want protein_per_100g", vErr.Field)
	}
}

func TestReadCustomConfigRejectsEmptyName(t *testing.T) {
	raw := `{"custom_supplements": [{"name": "", "dosage": "1g", "timing": "morning", "notes": ""}]}`

	_, _, err := ReadCustomConfig(strings.NewReader(raw))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ReadCustomConfig() error = %v, want *ValidationError", err)
	}
	if vErr.Entry != "custom_supplements[0]" || vErr.Field != "name" {
		t.Errorf("got %q/%q, want custom_supplements[0]/name", vErr.Entry, vErr.Field)
	}
}

func TestReadCustomConfigMalformedJSON(t *testing.T) {
	_, _, err := ReadCustomConfig(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("malformed JSON should fail to decode")
	}
}

func TestSavePlan(t *testing.T) {
	plan := domain.MealPlan{PlanID: "test-plan", Date: "2026-08-30"}
	path := filepath.Join(t.TempDir(), "plan.json")

	written, err := SavePlan(plan, path)
	if err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}
	if written != path {
		t.Errorf("SavePlan() = %q, want %q", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading plan file: %v", err)
	}
	var got domain.MealPlan
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("plan file is not valid JSON: %v", err)
	}
	if got.PlanID != "test-plan" {
		t.Errorf("PlanID = %q, want test-plan", got.PlanID)
	}
	if !bytes.Contains(data, []byte("\n    \"")) {
		t.Error("plan file should be written with 4-space indentation")
	}
}

func TestSavePlanOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if _, err := SavePlan(domain.MealPlan{PlanID: "first"}, path); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}
	if _, err := SavePlan(domain.MealPlan{PlanID: "second"}, path); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading plan file: %v", err)
	}
	var got domain.MealPlan
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("plan file is not valid JSON: %v", err)
	}
	if got.PlanID != "second" {
		t.Errorf("PlanID = %q, want the overwriting second plan", got.PlanID)
	}
}

func TestExportImportCustomConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_if_config.json")
	foods := []domain.Food{
		{Name: "Duck Eggs", ProteinG: 13, FatG: 14, CarbsG: 1.4, Calories: 185, Serving: "2 eggs", Timing: domain.TimingAnytime, PrepMin: 10},
	}

	if err := ExportCustomConfig(path, foods, nil); err != nil {
		t.Fatalf("ExportCustomConfig() error = %v", err)
	}
	gotFoods, gotSupps, err := ImportCustomConfig(path)
	if err != nil {
		t.Fatalf("ImportCustomConfig() error = %v", err)
	}
	if !reflect.DeepEqual(gotFoods, foods) {
		t.Errorf("foods = %+v, want %+v", gotFoods, foods)
	}
	if len(gotSupps) != 0 {
		t.Errorf("supplements = %+v, want none", gotSupps)
	}
}
