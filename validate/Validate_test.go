package validate

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidator_Positive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Positive("capacity", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_UnitInterval(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0.0, false},
		{"one", 1.0, false},
		{"middle", 0.42, false},
		{"above one", 1.01, true},
		{"negative", -0.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.UnitInterval("discount_factor", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_Ordered(t *testing.T) {
	tests := []struct {
		name      string
		low, high float64
		wantErr   bool
	}{
		{"ordered", -10, 10, false},
		{"equal", 5, 5, true},
		{"reversed", 10, -10, true},
		{"nan low", math.NaN(), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Ordered("v_limit", tt.low, tt.high)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_AccumulatesAllErrors(t *testing.T) {
	v := New()
	v.Positive("capacity", 0)
	v.UnitInterval("discount_factor", 1.5)
	v.NotEmpty("env_id", "")

	if v.IsValid() {
		t.Fatal("expected validator to be invalid")
	}
	if got := len(v.Errors()); got != 3 {
		t.Fatalf("expected 3 errors, got %d", got)
	}

	err := v.Err()
	vErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if got := len(vErr.Errors()); got != 3 {
		t.Fatalf("expected 3 errors in ValidationError, got %d", got)
	}

	// All three field names should appear in the message
	msg := err.Error()
	for _, field := range []string{"capacity", "discount_factor", "env_id"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected message to mention %q, got %q", field, msg)
		}
	}
}

func TestValidator_ErrNilWhenValid(t *testing.T) {
	v := New()
	v.Positive("capacity", 100)

	if err := v.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidator_Prefixed(t *testing.T) {
	inner := New()
	inner.Positive("capacity", -1)
	inner.NotEmpty("device", "")

	outer := New()
	outer.Prefixed("memory", inner.Err())

	if got := len(outer.Errors()); got != 2 {
		t.Fatalf("expected 2 errors, got %d", got)
	}
	for _, e := range outer.Errors() {
		if !strings.HasPrefix(e.Field, "memory.") {
			t.Errorf("expected field to be prefixed with memory., got %q",
				e.Field)
		}
	}
}

func TestValidator_PrefixedFieldlessError(t *testing.T) {
	v := New()
	v.Prefixed("specific", errInvalid)

	if got := len(v.Errors()); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := v.Errors()[0].Field; got != "specific" {
		t.Errorf("expected field specific, got %q", got)
	}
}

func TestValidator_PrefixedPlainError(t *testing.T) {
	v := New()
	v.Prefixed("body", errors.New("layers cannot be decoded"))

	if got := len(v.Errors()); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	e := v.Errors()[0]
	if e.Field != "body" {
		t.Errorf("expected field body, got %q", e.Field)
	}
	if e.Message != "layers cannot be decoded" {
		t.Errorf("unexpected message %q", e.Message)
	}
}

func TestValidator_PrefixedNil(t *testing.T) {
	v := New()
	v.Prefixed("memory", nil)

	if !v.IsValid() {
		t.Fatalf("expected validator to stay valid, got %v", v.Err())
	}
}

var errInvalid = Error{Field: "", Message: "section is malformed"}
