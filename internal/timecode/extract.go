package timecode

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultMaxDepth bounds how far Extract descends into nested mappings.
const DefaultMaxDepth = 32

// key that wraps the real number inside descriptor objects
const valueKey = "value"

// ErrMalformedTime is returned in strict mode when no number can be found.
var ErrMalformedTime = errors.New("malformed time value")

// Extractor recovers seconds from loosely shaped time fields.
//
// The zero value is tolerant: anything unparsable resolves to 0.
type Extractor struct {
	// Strict makes Seconds report ErrMalformedTime instead of returning 0.
	Strict bool
	// MaxDepth limits recursion into nested mappings (DefaultMaxDepth when <= 0).
	MaxDepth int
}

var defaultExtractor = Extractor{}

// Extract returns the number of seconds held by v, or 0 if there is none.
func Extract(v any) float64 {
	secs, _ := defaultExtractor.Seconds(v)
	return secs
}

// Seconds extracts a finite seconds value from v.
//
// In tolerant mode the error is always nil.
func (e Extractor) Seconds(v any) (float64, error) {
	depth := e.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}

	if secs, ok := search(v, depth); ok {
		return secs, nil
	}
	if e.Strict {
		return 0, ErrMalformedTime
	}
	return 0, nil
}

// search walks v looking for the first usable number
func search(v any, depth int) (float64, bool) {
	m, isMap := v.(map[string]any)
	if !isMap {
		return scalar(v)
	}
	if depth <= 0 {
		return 0, false
	}

	if inner, ok := m[valueKey]; ok {
		if secs, ok := scalar(inner); ok {
			return secs, true
		}
	}

	// sorted so the same mapping always yields the same answer
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if secs, ok := search(m[k], depth-1); ok {
			return secs, true
		}
	}
	return 0, false
}

// scalar converts a single non-mapping value into seconds
func scalar(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	default:
		return 0, false
	}
	return finite(f)
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
