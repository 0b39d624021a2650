package ezgrid

import "iter"

// RowAccessor is a view of one row, subscripted by column heading.
// It caches the row's storage slot and stays valid as long as the grid does.
type RowAccessor[R, C comparable, V any] struct {
	g       *Grid[R, C, V]
	heading R
	slot    int
}

// RowAt returns an accessor for row h.
func (g *Grid[R, C, V]) RowAt(h R) (*RowAccessor[R, C, V], error) {
	rs, err := g.rows.SlotOf(h)
	if err != nil {
		return nil, err
	}
	return &RowAccessor[R, C, V]{g: g, heading: h, slot: rs}, nil
}

// Heading returns the row heading the accessor is bound to.
func (a *RowAccessor[R, C, V]) Heading() R { return a.heading }

// Get returns the value in column col.
func (a *RowAccessor[R, C, V]) Get(col C) (V, error) {
	cs, err := a.g.cols.SlotOf(col)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.g.data[a.slot][cs], nil
}

// Set stores v in column col.
func (a *RowAccessor[R, C, V]) Set(col C, v V) error {
	cs, err := a.g.cols.SlotOf(col)
	if err != nil {
		return err
	}
	a.g.data[a.slot][cs] = v
	return nil
}

// Values returns the row's values in column order.
func (a *RowAccessor[R, C, V]) Values() iter.Seq[V] {
	return a.g.rowValues(a.slot)
}

// ColumnAccessor is a view of one column, subscripted by row heading.
type ColumnAccessor[R, C comparable, V any] struct {
	g       *Grid[R, C, V]
	heading C
	slot    int
}

// ColAt returns an accessor for column h.
func (g *Grid[R, C, V]) ColAt(h C) (*ColumnAccessor[R, C, V], error) {
	cs, err := g.cols.SlotOf(h)
	if err != nil {
		return nil, err
	}
	return &ColumnAccessor[R, C, V]{g: g, heading: h, slot: cs}, nil
}

// Heading returns the column heading the accessor is bound to.
func (a *ColumnAccessor[R, C, V]) Heading() C { return a.heading }

// Get returns the value in row row.
func (a *ColumnAccessor[R, C, V]) Get(row R) (V, error) {
	rs, err := a.g.rows.SlotOf(row)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.g.data[rs][a.slot], nil
}

// Set stores v in row row.
func (a *ColumnAccessor[R, C, V]) Set(row R, v V) error {
	rs, err := a.g.rows.SlotOf(row)
	if err != nil {
		return err
	}
	a.g.data[rs][a.slot] = v
	return nil
}

// Values returns the column's values in row order.
func (a *ColumnAccessor[R, C, V]) Values() iter.Seq[V] {
	return a.g.colValues(a.slot)
}
