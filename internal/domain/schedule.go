// internal/domain/schedule.go
package domain

import (
	"errors"
	"fmt"
	"time"
)

// Clock layout used for all time-of-day strings ("12:00", "20:00").
const clockLayout = "15:04"

var (
	ErrWindowOrder        = errors.New("eating window end must be after start")
	ErrScheduleMismatch   = errors.New("fasting duration does not match eating window")
	ErrMissingWindowTimes = errors.New("eating window start and end are required")
)

// FastingSchedule describes the daily eating window and the fasting duration.
// Both are carried separately; Validate enforces that they agree when both
// are present, so a 4-hour window cannot be labeled as 16-hour fasting.
type FastingSchedule struct {
	EatingWindowStart string `bson:"eatingWindowStart" json:"eating_window_start"` // "12:00"
	EatingWindowEnd   string `bson:"eatingWindowEnd" json:"eating_window_end"`     // "20:00"
	FastingHours      int    `bson:"fastingHours" json:"fasting_duration"`
}

// parseClock parses a "HH:MM" time-of-day string.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time-of-day %q: %w", s, err)
	}
	return t, nil
}

// Window returns the parsed start and end of the eating window.
func (s FastingSchedule) Window() (start, end time.Time, err error) {
	if s.EatingWindowStart == "" || s.EatingWindowEnd == "" {
		return time.Time{}, time.Time{}, ErrMissingWindowTimes
	}
	if start, err = parseClock(s.EatingWindowStart); err != nil {
		return
	}
	if end, err = parseClock(s.EatingWindowEnd); err != nil {
		return
	}
	if !end.After(start) {
		err = ErrWindowOrder
	}
	return
}

// WindowHours returns the eating window length in hours. The parsed window is
// the source of truth; when window times are absent the duration falls back
// to 24 - FastingHours.
func (s FastingSchedule) WindowHours() (float64, error) {
	start, end, err := s.Window()
	if errors.Is(err, ErrMissingWindowTimes) && s.FastingHours > 0 {
		return float64(24 - s.FastingHours), nil
	}
	if err != nil {
		return 0, err
	}
	return end.Sub(start).Hours(), nil
}

// Validate checks window ordering and, when FastingHours is set alongside the
// window times, that the two agree to within half an hour.
func (s FastingSchedule) Validate() error {
	hours, err := s.WindowHours()
	if err != nil {
		return err
	}
	if s.FastingHours > 0 && s.EatingWindowStart != "" {
		implied := 24 - hours
		if diff := implied - float64(s.FastingHours); diff > 0.5 || diff < -0.5 {
			return fmt.Errorf("%w: window implies %.1fh fasting, schedule says %dh",
				ErrScheduleMismatch, implied, s.FastingHours)
		}
	}
	return nil
}

// FirstMealTime is the start of the eating window.
func (s FastingSchedule) FirstMealTime() (time.Time, error) {
	start, _, err := s.Window()
	return start, err
}

// LastMealTime is one hour before the window closes.
func (s FastingSchedule) LastMealTime() (time.Time, error) {
	_, end, err := s.Window()
	return end.Add(-1 * time.Hour), err
}

// Clock formats a time-of-day back to "HH:MM".
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}
