package timecode

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"int64", int64(42), 42},
		{"float32", float32(0.5), 0.5},
		{"uint", uint(3), 3},
		{"json number", json.Number("3.25"), 3.25},
		{"numeric string", "12.5", 12.5},
		{"padded string", "  8 ", 8},
		{"exponent string", "1e2", 100},
		{"not a number", "not a number", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"slice", []any{1, 2}, 0},
		{"value key string", map[string]any{"value": "12.5"}, 12.5},
		{"value key number", map[string]any{"value": 4.0}, 4},
		{"nested value", map[string]any{"foo": map[string]any{"value": 3}}, 3},
		{
			"bad value key falls back to siblings",
			map[string]any{"value": "abc", "seconds": 9},
			9,
		},
		{
			"skips unparsable siblings",
			map[string]any{"a": "x", "b": map[string]any{"c": "y"}, "d": "11"},
			11,
		},
		{"empty map", map[string]any{}, 0},
		{"nan string", "NaN", 0},
		{"inf string", "Inf", 0},
		{"inf float", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if got != tt.want {
				t.Errorf("Extract(%#v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	input := map[string]any{
		"zeta":  1,
		"alpha": 2,
		"mid":   map[string]any{"value": 3},
	}

	for i := 0; i < 50; i++ {
		if got := Extract(input); got != 2 {
			t.Fatalf("iteration %d: expected 2, got %v", i, got)
		}
	}
}

func TestExtractCyclicMapTerminates(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	if got := Extract(cyclic); got != 0 {
		t.Errorf("expected 0 for cyclic input, got %v", got)
	}
}

func TestExtractorMaxDepth(t *testing.T) {
	deep := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": 5,
			},
		},
	}

	shallow := Extractor{MaxDepth: 2}
	if got, _ := shallow.Seconds(deep); got != 0 {
		t.Errorf("expected depth limit to hide nested value, got %v", got)
	}

	deepEnough := Extractor{MaxDepth: 3}
	if got, _ := deepEnough.Seconds(deep); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestExtractorStrict(t *testing.T) {
	strict := Extractor{Strict: true}

	if _, err := strict.Seconds("garbage"); !errors.Is(err, ErrMalformedTime) {
		t.Errorf("expected ErrMalformedTime, got %v", err)
	}

	got, err := strict.Seconds(map[string]any{"value": "1.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}

	tolerant := Extractor{}
	if _, err := tolerant.Seconds("garbage"); err != nil {
		t.Errorf("tolerant extractor returned error: %v", err)
	}
}
