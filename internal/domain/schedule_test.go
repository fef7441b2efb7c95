package domain

import (
	"errors"
	"testing"
)

func TestFastingScheduleValidate(t *testing.T) {
	cases := []struct {
		name     string
		schedule FastingSchedule
		wantErr  error
	}{
		{
			name:     "16:8 window matches fasting hours",
			schedule: FastingSchedule{EatingWindowStart: "12:00", EatingWindowEnd: "20:00", FastingHours: 16},
		},
		{
			name:     "window only, no fasting hours",
			schedule: FastingSchedule{EatingWindowStart: "12:00", EatingWindowEnd: "20:00"},
		},
		{
			name:     "window contradicts fasting hours",
			schedule: FastingSchedule{EatingWindowStart: "12:00", EatingWindowEnd: "20:00", FastingHours: 20},
			wantErr:  ErrScheduleMismatch,
		},
		{
			name:     "half hour tolerance accepted",
			schedule: FastingSchedule{EatingWindowStart: "12:00", EatingWindowEnd: "20:30", FastingHours: 16},
		},
		{
			name:     "end before start",
			schedule: FastingSchedule{EatingWindowStart: "20:00", EatingWindowEnd: "12:00", FastingHours: 16},
			wantErr:  ErrWindowOrder,
		},
		{
			name:     "no window and no fasting hours",
			schedule: FastingSchedule{},
			wantErr:  ErrMissingWindowTimes,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.schedule.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestWindowHours(t *testing.T) {
	s := FastingSchedule{EatingWindowStart: "12:00", EatingWindowEnd: "20:00", FastingHours: 16}
	hours, err := s.WindowHours()
	if err != nil {
		t.Fatalf("WindowHours() error = %v", err)
	}
	if hours != 8 {
		t.Errorf("WindowHours() = %v, want 8", hours)
	}
}

func TestWindowHoursFallsBackToFastingDuration(t *testing.T) {
	s := FastingSchedule{FastingHours: 16}
	hours, err := s.WindowHours()
	if err != nil {
		t.Fatalf("WindowHours() error = %v", err)
	}
	if hours != 8 {
		t.Errorf("WindowHours() = %v, want 8 from 24-16 fallback", hours)
	}
}

func TestMealTimes(t *testing.T) {
	s := FastingSchedule{EatingWindowStart: "12:00", EatingWindowEnd: "20:00", FastingHours: 16}

	first, err := s.FirstMealTime()
	if err != nil {
		t.Fatalf("FirstMealTime() error = %v", err)
	}
	if got := Clock(first); got != "12:00" {
		t.Errorf("first meal at %s, want 12:00", got)
	}

	last, err := s.LastMealTime()
	if err != nil {
		t.Fatalf("LastMealTime() error = %v", err)
	}
	if got := Clock(last); got != "19:00" {
		t.Errorf("last meal at %s, want 19:00 (one hour before window close)", got)
	}
}

func TestFoodAllowedIn(t *testing.T) {
	mct := Food{Name: "MCT Oil", Timing: TimingFirstMeal}
	if !mct.AllowedIn(TimingFirstMeal, TimingAnytime) {
		t.Error("first-meal food should be allowed in a first-meal slot")
	}
	if mct.AllowedIn(TimingLastMeal, TimingAnytime) {
		t.Error("first-meal food should not be allowed in a last-meal slot")
	}

	anytime := Food{Name: "Avocado", Timing: TimingAnytime}
	if !anytime.AllowedIn(TimingLastMeal, TimingAnytime) {
		t.Error("anytime food should be allowed in every slot")
	}
}
