// Package value implements the interpreter's dynamically-typed runtime
// Value: a tagged union of Int, Float, Str, and Dict, with the arithmetic,
// bitwise, comparison, and coercion rules used by the executor's expression
// evaluator.
//
// Value is an explicit interface (Kind/String), not a bare interface{},
// following the teacher repository's own stance that a marker interface
// gives callers real type safety over "any" values.
package value

import (
	"strconv"
)

// Value is any runtime value the interpreter can hold: Int, Float, Str, or
// Dict.
type Value interface {
	// Kind returns the short tag name of the concrete variant ("INT",
	// "FLOAT", "STR", "DICT"), used by error messages and the value-from-
	// string round trip.
	Kind() string
	// String returns the value's display form (to_display_string).
	String() string
}

// Int is a 64-bit signed integer Value. Overflow during arithmetic never
// wraps silently; it surfaces as an *OverflowError.
type Int struct{ V int64 }

func (Int) Kind() string     { return "INT" }
func (i Int) String() string { return strconv.FormatInt(i.V, 10) }

// Float is an IEEE-754 double Value. ±Inf and NaN are both legal results of
// arithmetic and are never treated as errors.
type Float struct{ V float64 }

func (Float) Kind() string { return "FLOAT" }
func (f Float) String() string {
	return formatFloat(f.V)
}

// formatFloat renders a float the way the guest language expects:
// strconv's shortest round-trip form, except that an integral value keeps
// an explicit trailing ".0" (so Pow(7,3) reads "343.0", not "343").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if needsTrailingZero(s) {
		s += ".0"
	}
	return s
}

func needsTrailingZero(s string) bool {
	for _, r := range s {
		switch r {
		case '.', 'e', 'E', 'n', 'N', 'i', 'I': // "n"/"i" catch NaN/Inf spellings
			return false
		}
	}
	return true
}

// Str is a UTF-8 string Value. Indexing (via the executor's subscript
// handling in internal/executor) is grapheme-cluster based, not byte- or
// rune-based; see Graphemes in grapheme.go.
type Str struct{ V string }

func (Str) Kind() string     { return "STR" }
func (s Str) String() string { return s.V }

// NewFromUserInput auto-detects a Value's kind from a raw input string
// (used by INPUT): signed integer, else double, else string. It never
// produces a Dict.
func NewFromUserInput(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int{V: n}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float{V: f}
	}
	return Str{V: s}
}
