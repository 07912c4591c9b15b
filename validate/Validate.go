// Package validate implements functionality for accumulating
// configuration validation errors so that every problem with a
// configuration is reported at once, rather than one problem at a
// time.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Error represents a single validation error
type Error struct {
	Field   string      // Field that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ValidationError bundles multiple validation errors into a single
// error value.
type ValidationError struct {
	errors []Error
}

// Errors returns the individual validation errors making up the
// validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}
	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validator accumulates validation errors and can produce a
// ValidationError once all fields have been checked.
type Validator struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{errors: make([]Error, 0)}
}

// AddError adds a validation error for field
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
// Err returns nil when no errors were accumulated.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Prefixed merges the validation errors of err into the validator,
// prefixing each field with prefix so that errors from nested
// configuration sections report their full field path. An error that
// is not a validation error is recorded against prefix directly.
// Prefixed is a no-op when err is nil.
func (v *Validator) Prefixed(prefix string, err error) {
	if err == nil {
		return
	}

	join := func(field string) string {
		if prefix == "" {
			return field
		}
		if field == "" {
			return prefix
		}
		return prefix + "." + field
	}

	var vErr ValidationError
	if errors.As(err, &vErr) {
		for _, e := range vErr.Errors() {
			v.errors = append(v.errors, Error{
				Field:   join(e.Field),
				Value:   e.Value,
				Message: e.Message,
			})
		}
		return
	}

	var e Error
	if errors.As(err, &e) {
		v.errors = append(v.errors, Error{
			Field:   join(e.Field),
			Value:   e.Value,
			Message: e.Message,
		})
		return
	}

	v.AddError(prefix, err.Error(), nil)
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// OneOf validates that a value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field,
		fmt.Sprintf("value must be one of %v, got %q", allowed, value),
		value)
}

// Positive validates that an integer is positive (> 0)
func (v *Validator) Positive(field string, value int) {
	if value <= 0 {
		v.AddError(field, fmt.Sprintf("value must be positive, got %d", value),
			value)
	}
}

// NonNegative validates that an integer is non-negative (>= 0)
func (v *Validator) NonNegative(field string, value int) {
	if value < 0 {
		v.AddError(field,
			fmt.Sprintf("value cannot be negative, got %d", value), value)
	}
}

// PositiveFloat validates that a float is positive (> 0).
// NaN values fail validation.
func (v *Validator) PositiveFloat(field string, value float64) {
	if !(value > 0) {
		v.AddError(field, fmt.Sprintf("value must be positive, got %v", value),
			value)
	}
}

// NonNegativeFloat validates that a float is non-negative (>= 0).
// NaN values fail validation.
func (v *Validator) NonNegativeFloat(field string, value float64) {
	if !(value >= 0) {
		v.AddError(field,
			fmt.Sprintf("value cannot be negative, got %v", value), value)
	}
}

// UnitInterval validates that a float lies in [0, 1].
// NaN values fail validation.
func (v *Validator) UnitInterval(field string, value float64) {
	if !(value >= 0 && value <= 1) {
		v.AddError(field,
			fmt.Sprintf("value must be between 0 and 1, got %v", value), value)
	}
}

// Finite validates that a float is neither NaN nor an infinity
func (v *Validator) Finite(field string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.AddError(field, fmt.Sprintf("value must be finite, got %v", value),
			value)
	}
}

// Range validates that an integer is within a specified range
// (inclusive)
func (v *Validator) Range(field string, value, minVal, maxVal int) {
	if value < minVal || value > maxVal {
		v.AddError(field,
			fmt.Sprintf("value must be between %d and %d, got %d",
				minVal, maxVal, value),
			value)
	}
}

// Ordered validates that low is strictly less than high, as required
// of the bounds of an interval
func (v *Validator) Ordered(field string, low, high float64) {
	if !(low < high) {
		v.AddError(field,
			fmt.Sprintf("lower bound must be less than upper bound, "+
				"got [%v, %v]", low, high),
			[2]float64{low, high})
	}
}
