package cmd

import (
	"testing"
)

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"target": "Notepad", "quality": 80}

	if got := stringParam(params, "target", ""); got != "Notepad" {
		t.Errorf("stringParam = %q, want %q", got, "Notepad")
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringParam default = %q, want %q", got, "fallback")
	}
	// Numeric values coerce to their string form.
	if got := stringParam(params, "quality", ""); got != "80" {
		t.Errorf("stringParam numeric = %q, want %q", got, "80")
	}
}

func TestIntParam(t *testing.T) {
	// JSON numbers arrive as float64.
	params := map[string]interface{}{"quality": float64(90), "port": 8080}

	if got := intParam(params, "quality", 0); got != 90 {
		t.Errorf("intParam float64 = %d, want 90", got)
	}
	if got := intParam(params, "port", 0); got != 8080 {
		t.Errorf("intParam int = %d, want 8080", got)
	}
	if got := intParam(params, "missing", 42); got != 42 {
		t.Errorf("intParam default = %d, want 42", got)
	}
}

func TestFloatParam(t *testing.T) {
	params := map[string]interface{}{"scale": 0.5, "whole": 1}

	if got := floatParam(params, "scale", 1.0); got != 0.5 {
		t.Errorf("floatParam = %v, want 0.5", got)
	}
	if got := floatParam(params, "whole", 0); got != 1.0 {
		t.Errorf("floatParam int = %v, want 1.0", got)
	}
	if got := floatParam(params, "missing", 1.0); got != 1.0 {
		t.Errorf("floatParam default = %v, want 1.0", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"ignore-case": true}

	if !boolParam(params, "ignore-case", false) {
		t.Error("boolParam should read true")
	}
	if boolParam(params, "missing", false) {
		t.Error("boolParam should fall back to default")
	}
}
