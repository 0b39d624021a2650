package ezgrid

import "github.com/0Hughman0/ez-grid/pkg/ezgrid/parser"

// Transformer turns the raw text of a cell into a grid value during text construction.
type Transformer[V any] interface {
	Transform(row, col, raw string) (V, error)
}

// TransformFunc adapts a function to a Transformer.
type TransformFunc[V any] func(row, col, raw string) (V, error)

// Transform calls f(row, col, raw).
func (f TransformFunc[V]) Transform(row, col, raw string) (V, error) {
	return f(row, col, raw)
}

// Identity keeps every raw value as text.
var Identity Transformer[string] = TransformFunc[string](func(_, _, raw string) (string, error) {
	return raw, nil
})

// Ints parses every raw value as a decimal integer.
var Ints Transformer[int] = TransformFunc[int](func(_, _, raw string) (int, error) {
	return parser.ParseInt(raw)
})

// Values infers int64 or float64 where the raw text is numeric and keeps text otherwise.
var Values Transformer[any] = TransformFunc[any](func(_, _, raw string) (any, error) {
	return parser.ParseValue(raw), nil
})
