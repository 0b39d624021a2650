package ezgrid

import (
	"iter"

	"github.com/0Hughman0/ez-grid/pkg/ezgrid/models"
)

// Row returns the values of row h in column order.
// The heading is resolved immediately; values are read as the sequence advances.
func (g *Grid[R, C, V]) Row(h R) (iter.Seq[V], error) {
	rs, err := g.rows.SlotOf(h)
	if err != nil {
		return nil, err
	}
	return g.rowValues(rs), nil
}

// Col returns the values of column h in row order.
// The heading is resolved immediately; values are read as the sequence advances.
func (g *Grid[R, C, V]) Col(h C) (iter.Seq[V], error) {
	cs, err := g.cols.SlotOf(h)
	if err != nil {
		return nil, err
	}
	return g.colValues(cs), nil
}

// Rows walks the rows in declared order, yielding each heading with its values.
func (g *Grid[R, C, V]) Rows() iter.Seq2[R, iter.Seq[V]] {
	return func(yield func(R, iter.Seq[V]) bool) {
		for pos := 0; pos < g.rows.Len(); pos++ {
			if !yield(g.rows.HeadingAt(pos), g.rowValues(g.rows.SlotAt(pos))) {
				return
			}
		}
	}
}

// Cols walks the columns in declared order, yielding each heading with its values.
func (g *Grid[R, C, V]) Cols() iter.Seq2[C, iter.Seq[V]] {
	return func(yield func(C, iter.Seq[V]) bool) {
		for pos := 0; pos < g.cols.Len(); pos++ {
			if !yield(g.cols.HeadingAt(pos), g.colValues(g.cols.SlotAt(pos))) {
				return
			}
		}
	}
}

// Cells walks every cell in row-major order.
func (g *Grid[R, C, V]) Cells() iter.Seq[models.Cell[R, C, V]] {
	return func(yield func(models.Cell[R, C, V]) bool) {
		for rpos := 0; rpos < g.rows.Len(); rpos++ {
			rh, rs := g.rows.HeadingAt(rpos), g.rows.SlotAt(rpos)
			for cpos := 0; cpos < g.cols.Len(); cpos++ {
				c := models.Cell[R, C, V]{
					Row:   rh,
					Col:   g.cols.HeadingAt(cpos),
					Value: g.data[rs][g.cols.SlotAt(cpos)],
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (g *Grid[R, C, V]) rowValues(rs int) iter.Seq[V] {
	return func(yield func(V) bool) {
		for pos := 0; pos < g.cols.Len(); pos++ {
			if !yield(g.data[rs][g.cols.SlotAt(pos)]) {
				return
			}
		}
	}
}

func (g *Grid[R, C, V]) colValues(cs int) iter.Seq[V] {
	return func(yield func(V) bool) {
		for pos := 0; pos < g.rows.Len(); pos++ {
			if !yield(g.data[g.rows.SlotAt(pos)][cs]) {
				return
			}
		}
	}
}
