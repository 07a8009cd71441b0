// Package entry turns raw form input into exercise entries ready for the store.
package entry

import (
	"errors"
	"fmt"
	"strconv"
)

// Intensity is how hard an exercise session was.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// Intensities lists the accepted intensity labels in ascending order.
func Intensities() []Intensity {
	return []Intensity{IntensityLow, IntensityMedium, IntensityHigh}
}

// Valid reports whether i is one of Intensities.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidIntensity = errors.New("invalid intensity")
)

// Field names used in validation errors.
const (
	FieldActivityType = "activity type"
	FieldDuration     = "duration"
	FieldIntensity    = "intensity"
)

// ValidationError describes a rejected raw input. It unwraps to one of the
// Err* sentinels.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("%s: %s is required", e.Err, e.Field)
	case e.Value == "":
		return fmt.Sprintf("%s: %s", e.Err, e.Field)
	default:
		return fmt.Sprintf("%s: %s %q", e.Err, e.Field, e.Value)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Entry is a validated exercise ready for insertion.
type Entry struct {
	ActivityType    string
	DurationMinutes int
	Intensity       string
}

// Validator checks raw form fields. The zero value only requires
// intensity to be non-empty; Strict also requires one of Intensities.
type Validator struct {
	Strict bool
}

// Validate checks the three raw fields using the zero Validator.
func Validate(activityType, durationRaw, intensity string) (Entry, error) {
	return Validator{}.Validate(activityType, durationRaw, intensity)
}

// Validate converts raw strings into an Entry. Values are not trimmed or
// case-folded. Missing fields are reported before duration problems.
func (v Validator) Validate(activityType, durationRaw, intensity string) (Entry, error) {
	for _, f := range []struct{ name, value string }{
		{FieldActivityType, activityType},
		{FieldDuration, durationRaw},
		{FieldIntensity, intensity},
	} {
		if f.value == "" {
			return Entry{}, &ValidationError{Field: f.name, Err: ErrMissingField}
		}
	}

	minutes, err := strconv.Atoi(durationRaw)
	if err != nil || minutes <= 0 {
		return Entry{}, &ValidationError{Field: FieldDuration, Value: durationRaw, Err: ErrInvalidDuration}
	}

	if v.Strict && !Intensity(intensity).Valid() {
		return Entry{}, &ValidationError{Field: FieldIntensity, Value: intensity, Err: ErrInvalidIntensity}
	}

	return Entry{ActivityType: activityType, DurationMinutes: minutes, Intensity: intensity}, nil
}
