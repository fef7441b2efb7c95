// Package export handles the on-disk JSON formats: plan snapshots and the
// custom foods/supplements configuration file. Import goes through explicit
// schema validation at the decode boundary; a malformed entry produces a
// typed error before any record is constructed.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"mcgregor/if-planner/internal/domain"
)

const jsonIndent = "    " // 4-space indent, matching the plan file format

// ValidationError reports a missing or invalid field in an imported config.
type ValidationError struct {
	Entry string // e.g. `custom_foods[2]`
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q %s", e.Entry, e.Field, e.Msg)
}

// SavePlan writes a plan record as indented JSON, overwriting any existing
// file. An empty filename defaults to a date-stamped name. Returns the
// filename written.
func SavePlan(plan any, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("IF_meal_plan_%s.json", time.Now().Format("20060102"))
	}
	data, err := json.MarshalIndent(plan, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("write plan file: %w", err)
	}
	return filename, nil
}

// CustomConfig is the wire format of the custom-configuration file.
type CustomConfig struct {
	CustomFoods       []foodEntry       `json:"custom_foods"`
	CustomSupplements []supplementEntry `json:"custom_supplements"`
	ExportDate        string            `json:"export_date"`
}

// foodEntry mirrors domain.Food field-for-field. Pointers distinguish a
// missing field from a zero value during import validation.
type foodEntry struct {
	Name     *string  `json:"name"`
	ProteinG *float64 `json:"protein_per_100g"`
	FatG     *float64 `json:"fat_per_100g"`
	CarbsG   *float64 `json:"carbs_per_100g"`
	Calories *float64 `json:"calories_per_100g"`
	Serving  *string  `json:"serving_size"`
	Timing   *string  `json:"meal_timing"`
	PrepMin  *int     `json:"preparation_time"`
}

type supplementEntry struct {
	Name   *string `json:"name"`
	Dosage *string `json:"dosage"`
	Timing *string `json:"timing"`
	Notes  *string `json:"notes"`
}

func foodToEntry(f domain.Food) foodEntry {
	timing := string(f.Timing)
	return foodEntry{
		Name:     &f.Name,
		ProteinG: &f.ProteinG,
		FatG:     &f.FatG,
		CarbsG:   &f.CarbsG,
		Calories: &f.Calories,
		Serving:  &f.Serving,
		Timing:   &timing,
		PrepMin:  &f.PrepMin,
	}
}

func supplementToEntry(s domain.Supplement) supplementEntry {
	timing := string(s.Timing)
	return supplementEntry{
		Name:   &s.Name,
		Dosage: &s.Dosage,
		Timing: &timing,
		Notes:  &s.Notes,
	}
}

func (e foodEntry) validate(pos string) (domain.Food, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"name", e.Name != nil && *e.Name != ""},
		{"protein_per_100g", e.ProteinG != nil},
		{"fat_per_100g", e.FatG != nil},
		{"carbs_per_100g", e.CarbsG != nil},
		{"calories_per_100g", e.Calories != nil},
		{"serving_size", e.Serving != nil},
		{"meal_timing", e.Timing != nil},
		{"preparation_time", e.PrepMin != nil},
	}
	for _, r := range required {
		if !r.ok {
			return domain.Food{}, &ValidationError{Entry: pos, Field: r.name, Msg: "is missing or empty"}
		}
	}
	for _, n := range []struct {
		name string
		v    float64
	}{
		{"protein_per_100g", *e.ProteinG},
		{"fat_per_100g", *e.FatG},
		{"carbs_per_100g", *e.CarbsG},
		{"calories_per_100g", *e.Calories},
		{"preparation_time", float64(*e.PrepMin)},
	} {
		if n.v < 0 {
			return domain.Food{}, &ValidationError{Entry: pos, Field: n.name, Msg: "must be non-negative"}
		}
	}
	return domain.Food{
		Name:     *e.Name,
		ProteinG: *e.ProteinG,
		FatG:     *e.FatG,
		CarbsG:   *e.CarbsG,
		Calories: *e.Calories,
		Serving:  *e.Serving,
		Timing:   domain.MealTiming(*e.Timing),
		PrepMin:  *e.PrepMin,
	}, nil
}

func (e supplementEntry) validate(pos string) (domain.Supplement, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"name", e.Name != nil && *e.Name != ""},
		{"dosage", e.Dosage != nil},
		{"timing", e.Timing != nil},
		{"notes", e.Notes != nil},
	}
	for _, r := range required {
		if !r.ok {
			return domain.Supplement{}, &ValidationError{Entry: pos, Field: r.name, Msg: "is missing or empty"}
		}
	}
	return domain.Supplement{
		Name:   *e.Name,
		Dosage: *e.Dosage,
		Timing: domain.SupplementTiming(*e.Timing),
		Notes:  *e.Notes,
	}, nil
}

// WriteCustomConfig encodes custom foods and supplements to w.
func WriteCustomConfig(w io.Writer, foods []domain.Food, supps []domain.Supplement) error {
	cfg := CustomConfig{
		CustomFoods:       make([]foodEntry, 0, len(foods)),
		CustomSupplements: make([]supplementEntry, 0, len(supps)),
		ExportDate:        time.Now().Format(time.RFC3339),
	}
	for _, f := range foods {
		cfg.CustomFoods = append(cfg.CustomFoods, foodToEntry(f))
	}
	for _, s := range supps {
		cfg.CustomSupplements = append(cfg.CustomSupplements, supplementToEntry(s))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	return enc.Encode(cfg)
}

// ReadCustomConfig decodes and validates a custom configuration. Nothing is
// returned on any validation failure, so a failed import applies no partial
// state.
func ReadCustomConfig(r io.Reader) ([]domain.Food, []domain.Supplement, error) {
	var cfg CustomConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, nil, fmt.Errorf("decode custom config: %w", err)
	}

	foods := make([]domain.Food, 0, len(cfg.CustomFoods))
	for i, e := range cfg.CustomFoods {
		f, err := e.validate(fmt.Sprintf("custom_foods[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		foods = append(foods, f)
	}
	supps := make([]domain.Supplement, 0, len(cfg.CustomSupplements))
	for i, e := range cfg.CustomSupplements {
		s, err := e.validate(fmt.Sprintf("custom_supplements[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		supps = append(supps, s)
	}
	return foods, supps, nil
}

// ExportCustomConfig writes the config file, overwriting any existing file.
func ExportCustomConfig(filename string, foods []domain.Food, supps []domain.Supplement) error {
	if filename == "" {
		filename = "custom_if_config.json"
	}
	var buf bytes.Buffer
	if err := WriteCustomConfig(&buf, foods, supps); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0o644)
}

// ImportCustomConfig reads and validates the config file.
func ImportCustomConfig(filename string) ([]domain.Food, []domain.Supplement, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("open custom config: %w", err)
	}
	defer f.Close()
	return ReadCustomConfig(f)
}
