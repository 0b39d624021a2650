// Package ezgrid provides a labeled two-dimensional grid whose rows and columns
// are addressed by headings instead of numeric indices.
package ezgrid

import "fmt"

// DefaultName is the name given to grids constructed without one.
const DefaultName = "Grid"

// Axis identifies the row axis or the column axis of a grid.
type Axis int

const (
	// RowAxis is the axis of row headings.
	RowAxis Axis = iota
	// ColAxis is the axis of column headings.
	ColAxis
)

// String returns the string representation of an Axis.
func (a Axis) String() string {
	switch a {
	case RowAxis:
		return "row"
	case ColAxis:
		return "column"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Options configures grid construction.
type Options[V any] struct {
	// Name is the grid's display label. Empty means DefaultName.
	Name string
	// Default pre-fills every cell that is never explicitly set.
	// If nil, cells start at the zero value of V.
	Default *V
}

// DefaultOptions returns options for a grid named DefaultName filled with zero values.
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Name: DefaultName,
	}
}

// WithDefault returns a copy of o whose cells start at v.
func (o Options[V]) WithDefault(v V) Options[V] {
	o.Default = &v
	return o
}

// GridName returns the configured name or DefaultName.
func (o Options[V]) GridName() string {
	if o.Name != "" {
		return o.Name
	}
	return DefaultName
}

// DefaultValue returns the value new cells are filled with.
func (o Options[V]) DefaultValue() V {
	if o.Default != nil {
		return *o.Default
	}
	var zero V
	return zero
}
