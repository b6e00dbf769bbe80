// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// variablesBody builds a config whose variables section has n entries
// named v000..., each mapping to "x".
func variablesBody(n int) string {
	var builder strings.Builder
	builder.WriteString(`{"variables": {`)
	for i := 0; i < n; i++ {
		if i > 0 {
			builder.WriteString(",")
		}
		fmt.Fprintf(&builder, `"v%03d": "x"`, i)
	}
	builder.WriteString(`}}`)
	return builder.String()
}

func TestVariablesDocumentOrder(t *testing.T) {
	cache := newTestCache(t, `{"variables": {"USER": "pebor", "HOME": "/home/pebor", "SHELL": "zsh"}}`)

	variables, err := cache.Variables()
	if err != nil {
		t.Fatalf("Variables() failed: %v", err)
	}

	want := []Variable{
		{Name: "USER", Value: "pebor"},
		{Name: "HOME", Value: "/home/pebor"},
		{Name: "SHELL", Value: "zsh"},
	}
	if len(variables) != len(want) {
		t.Fatalf("expected %d variables, got %d", len(want), len(variables))
	}
	for i, variable := range variables {
		if variable != want[i] {
			t.Errorf("variable %d: expected %+v, got %+v", i, want[i], variable)
		}
	}
}

func TestVariablesMissingSection(t *testing.T) {
	cache := newTestCache(t, `{"hybrid": {}}`)

	variables, err := cache.Variables()
	if err != nil {
		t.Fatalf("Variables() failed: %v", err)
	}
	if len(variables) != 0 {
		t.Errorf("expected no variables, got %d", len(variables))
	}
}

func TestVariablesAtLimit(t *testing.T) {
	cache := newTestCache(t, variablesBody(64))

	variables, err := cache.Variables()
	if err != nil {
		t.Fatalf("Variables() with 64 entries failed: %v", err)
	}
	if len(variables) != 64 {
		t.Errorf("expected 64 variables, got %d", len(variables))
	}
}

func TestVariablesOverLimitIsFatal(t *testing.T) {
	cache := newTestCache(t, variablesBody(65))

	_, err := cache.Variables()
	if err == nil {
		t.Fatal("expected error for 65 variables")
	}
	if !IsFatal(err) {
		t.Errorf("expected a fatal error, got %v", err)
	}
	if !errors.Is(err, ErrTooManyVariables) {
		t.Errorf("expected ErrTooManyVariables, got %v", err)
	}
}

func TestSubstituteExactMatch(t *testing.T) {
	cache := newTestCache(t, `{"variables": {"FOO": "bar"}}`)

	result, err := cache.Substitute("FOO")
	if err != nil {
		t.Fatalf("Substitute() failed: %v", err)
	}
	if result != "bar" {
		t.Errorf("expected bar, got %q", result)
	}
}

func TestSubstituteIdentity(t *testing.T) {
	cache := newTestCache(t, `{"variables": {"FOO": "bar"}}`)

	const input = "no placeholders here"
	result, err := cache.Substitute(input)
	if err != nil {
		t.Fatalf("Substitute() failed: %v", err)
	}
	if result != input {
		t.Errorf("expected input unchanged, got %q", result)
	}
}

func TestSubstituteAllOccurrences(t *testing.T) {
	cache := newTestCache(t, `{"variables": {"NAME": "clock"}}`)

	result, err := cache.Substitute("NAME and NAME again")
	if err != nil {
		t.Fatalf("Substitute() failed: %v", err)
	}
	if result != "clock and clock again" {
		t.Errorf("expected both occurrences replaced, got %q", result)
	}
}

// Pins the cascading behavior: variables apply in document order, each
// pass running over the text as left by the previous one, so B→C
// rewrites the B that A→B just produced. Existing configurations rely
// on this exact outcome.
func TestSubstituteCascades(t *testing.T) {
	cache := newTestCache(t, `{"variables": {"A": "B", "B": "C"}}`)

	result, err := cache.Substitute("A")
	if err != nil {
		t.Fatalf("Substitute() failed: %v", err)
	}
	if result != "C" {
		t.Errorf("expected cascading result C, got %q", result)
	}
}

// The reverse order must not cascade: when B→C is defined before A→B,
// the text produced by A→B is never revisited.
func TestSubstituteOrderDependent(t *testing.T) {
	cache := newTestCache(t, `{"variables": {"B": "C", "A": "B"}}`)

	result, err := cache.Substitute("A")
	if err != nil {
		t.Fatalf("Substitute() failed: %v", err)
	}
	if result != "B" {
		t.Errorf("expected order-dependent result B, got %q", result)
	}
}

func TestTryGetWithSubstitution(t *testing.T) {
	cache := newTestCache(t, `{
		"variables": {"CITY": "Berlin"},
		"weather": {"label": "Weather in CITY", "raw": "CITY"}
	}`)

	value, ok, err := cache.TryGet("weather", "label", true, true)
	if err != nil || !ok {
		t.Fatalf("TryGet() = ok=%v err=%v", ok, err)
	}
	if value.Str != "Weather in Berlin" {
		t.Errorf("expected substituted label, got %q", value.Str)
	}

	// Substitution off: the raw value passes through.
	value, ok, err = cache.TryGet("weather", "raw", true, false)
	if err != nil || !ok {
		t.Fatalf("TryGet() = ok=%v err=%v", ok, err)
	}
	if value.Str != "CITY" {
		t.Errorf("expected raw value, got %q", value.Str)
	}
}

func TestSubstituteOverLimitIsFatal(t *testing.T) {
	body := variablesBody(65)
	// Splice a value section into the oversized fixture.
	body = body[:len(body)-1] + `, "clock": {"format": "v000"}}`
	cache := newTestCache(t, body)

	_, _, err := cache.TryGet("clock", "format", true, true)
	if !IsFatal(err) {
		t.Errorf("expected substitution against 65 variables to be fatal, got %v", err)
	}
}
