// Package parser provides the line-record layer underneath grid text construction:
// CSV record reading and writing, raw value coercion and A1 cell references.
package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue infers the value of a raw grid cell: int64 for decimal integers,
// float64 for finite decimals, otherwise the text unchanged.
//
// Non-finite spellings such as "NaN" or "Inf" stay text.
func ParseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	return f
}

// ParseInt parses a decimal integer, ignoring surrounding spaces.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
