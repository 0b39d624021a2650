package ezgrid

import (
	"github.com/0Hughman0/ez-grid/pkg/ezgrid/models"
	"github.com/0Hughman0/ez-grid/pkg/ezgrid/parser"
)

// Grid is a dense two-dimensional table addressed by row and column headings.
//
// A Grid is not safe for concurrent use.
type Grid[R, C comparable, V any] struct {
	name string
	def  V
	rows *HeadingIndex[R]
	cols *HeadingIndex[C]
	// data[rowSlot][colSlot]
	data [][]V
}

// New creates a grid with the given headings, every cell set to opts' default value.
func New[R, C comparable, V any](rowHeadings []R, colHeadings []C, opts Options[V]) (*Grid[R, C, V], error) {
	g := &Grid[R, C, V]{
		name: opts.GridName(),
		def:  opts.DefaultValue(),
		rows: NewHeadingIndex[R](RowAxis),
		cols: NewHeadingIndex[C](ColAxis),
	}
	if err := g.rows.checkNew(rowHeadings); err != nil {
		return nil, err
	}
	if err := g.cols.checkNew(colHeadings); err != nil {
		return nil, err
	}
	// checkNew has ruled out duplicates, so Add cannot fail.
	for _, h := range colHeadings {
		_, _ = g.cols.Add(h)
	}
	g.data = make([][]V, 0, len(rowHeadings))
	for _, h := range rowHeadings {
		_, _ = g.rows.Add(h)
		g.data = append(g.data, g.filledRow())
	}
	return g, nil
}

func (g *Grid[R, C, V]) filledRow() []V {
	row := make([]V, g.cols.Len())
	for i := range row {
		row[i] = g.def
	}
	return row
}

// Name returns the grid's display label.
func (g *Grid[R, C, V]) Name() string { return g.name }

// SetName changes the grid's display label.
func (g *Grid[R, C, V]) SetName(name string) { g.name = name }

// Default returns the value new cells are filled with.
func (g *Grid[R, C, V]) Default() V { return g.def }

// NumRows returns the number of rows.
func (g *Grid[R, C, V]) NumRows() int { return g.rows.Len() }

// NumCols returns the number of columns.
func (g *Grid[R, C, V]) NumCols() int { return g.cols.Len() }

// RowHeadings returns the row headings in declared order.
func (g *Grid[R, C, V]) RowHeadings() []R { return g.rows.Headings() }

// ColHeadings returns the column headings in declared order.
func (g *Grid[R, C, V]) ColHeadings() []C { return g.cols.Headings() }

// HasRow reports whether h is a row heading.
func (g *Grid[R, C, V]) HasRow(h R) bool { return g.rows.Has(h) }

// HasCol reports whether h is a column heading.
func (g *Grid[R, C, V]) HasCol(h C) bool { return g.cols.Has(h) }

// Get returns the value at (row, col).
func (g *Grid[R, C, V]) Get(row R, col C) (V, error) {
	var zero V
	rs, err := g.rows.SlotOf(row)
	if err != nil {
		return zero, err
	}
	cs, err := g.cols.SlotOf(col)
	if err != nil {
		return zero, err
	}
	return g.data[rs][cs], nil
}

// Set stores v at (row, col).
func (g *Grid[R, C, V]) Set(row R, col C, v V) error {
	rs, err := g.rows.SlotOf(row)
	if err != nil {
		return err
	}
	cs, err := g.cols.SlotOf(col)
	if err != nil {
		return err
	}
	g.data[rs][cs] = v
	return nil
}

// AppendRow adds a row after the last one. values are given in column order.
func (g *Grid[R, C, V]) AppendRow(h R, values []V) error {
	if len(values) != g.cols.Len() {
		return &ShapeError{Axis: RowAxis, Heading: h, Want: g.cols.Len(), Got: len(values)}
	}
	if _, err := g.rows.Add(h); err != nil {
		return err
	}
	row := make([]V, len(values))
	for pos, v := range values {
		row[g.cols.SlotAt(pos)] = v
	}
	g.data = append(g.data, row)
	return nil
}

// AppendCol adds a column after the last one. values are given in row order.
func (g *Grid[R, C, V]) AppendCol(h C, values []V) error {
	if len(values) != g.rows.Len() {
		return &ShapeError{Axis: ColAxis, Heading: h, Want: g.rows.Len(), Got: len(values)}
	}
	if _, err := g.cols.Add(h); err != nil {
		return err
	}
	for pos, v := range values {
		rs := g.rows.SlotAt(pos)
		g.data[rs] = append(g.data[rs], v)
	}
	return nil
}

// SetRow overwrites every value of an existing row. values are given in column order.
func (g *Grid[R, C, V]) SetRow(h R, values []V) error {
	rs, err := g.rows.SlotOf(h)
	if err != nil {
		return err
	}
	if len(values) != g.cols.Len() {
		return &ShapeError{Axis: RowAxis, Heading: h, Want: g.cols.Len(), Got: len(values)}
	}
	for pos, v := range values {
		g.data[rs][g.cols.SlotAt(pos)] = v
	}
	return nil
}

// SetCol overwrites every value of an existing column. values are given in row order.
func (g *Grid[R, C, V]) SetCol(h C, values []V) error {
	cs, err := g.cols.SlotOf(h)
	if err != nil {
		return err
	}
	if len(values) != g.rows.Len() {
		return &ShapeError{Axis: ColAxis, Heading: h, Want: g.rows.Len(), Got: len(values)}
	}
	for pos, v := range values {
		g.data[g.rows.SlotAt(pos)][cs] = v
	}
	return nil
}

// Combine merges the columns of other into g, matching rows by heading.
//
// Columns of other that g lacks are appended after g's columns, in other's
// order. Columns present in both keep their position; their values are
// replaced by other's only when overwrite is true. Every row heading of other
// must exist in g. Rows of g missing from other get g's default value in the
// appended columns and are left alone in the shared ones.
func (g *Grid[R, C, V]) Combine(other *Grid[R, C, V], overwrite bool) error {
	for _, h := range other.rows.headings {
		if !g.rows.Has(h) {
			return NewUnknownHeadingError(RowAxis, h)
		}
	}

	for cpos := 0; cpos < other.cols.Len(); cpos++ {
		ch := other.cols.HeadingAt(cpos)
		ocs := other.cols.SlotAt(cpos)

		if cs, err := g.cols.SlotOf(ch); err == nil {
			if !overwrite {
				continue
			}
			for rpos := 0; rpos < other.rows.Len(); rpos++ {
				rs, _ := g.rows.SlotOf(other.rows.HeadingAt(rpos))
				g.data[rs][cs] = other.data[other.rows.SlotAt(rpos)][ocs]
			}
			continue
		}

		values := make([]V, g.rows.Len())
		for rpos := range values {
			ors, err := other.rows.SlotOf(g.rows.HeadingAt(rpos))
			if err != nil {
				values[rpos] = g.def
				continue
			}
			values[rpos] = other.data[ors][ocs]
		}
		if err := g.AppendCol(ch, values); err != nil {
			return err
		}
	}
	return nil
}

// SwapRows exchanges the positions of two rows. Values travel with their heading.
func (g *Grid[R, C, V]) SwapRows(h1, h2 R) error {
	return swap(g.rows, h1, h2)
}

// SwapCols exchanges the positions of two columns. Values travel with their heading.
func (g *Grid[R, C, V]) SwapCols(h1, h2 C) error {
	return swap(g.cols, h1, h2)
}

func swap[H comparable](x *HeadingIndex[H], h1, h2 H) error {
	p1, err := x.PositionOf(h1)
	if err != nil {
		return err
	}
	p2, err := x.PositionOf(h2)
	if err != nil {
		return err
	}
	x.Swap(p1, p2)
	return nil
}

// Snapshot copies the grid into a GridData.
func (g *Grid[R, C, V]) Snapshot() models.GridData {
	d := models.GridData{
		Name:        g.name,
		RowHeadings: make([]any, 0, g.rows.Len()),
		ColHeadings: make([]any, 0, g.cols.Len()),
		Values:      make([][]any, 0, g.rows.Len()),
	}
	for _, h := range g.cols.headings {
		d.ColHeadings = append(d.ColHeadings, h)
	}
	for rpos, h := range g.rows.headings {
		d.RowHeadings = append(d.RowHeadings, h)
		rs := g.rows.SlotAt(rpos)
		row := make([]any, 0, g.cols.Len())
		for cpos := 0; cpos < g.cols.Len(); cpos++ {
			row = append(row, g.data[rs][g.cols.SlotAt(cpos)])
		}
		d.Values = append(d.Values, row)
	}
	return d
}

// Ref returns the A1 reference of (row, col) in the saved layout, where the
// header record is row 1 and the row headings are column A.
func (g *Grid[R, C, V]) Ref(row R, col C) (string, error) {
	rpos, err := g.rows.PositionOf(row)
	if err != nil {
		return "", err
	}
	cpos, err := g.cols.PositionOf(col)
	if err != nil {
		return "", err
	}
	return parser.CellRef(cpos+2, rpos+2)
}

// Extent returns the A1 range covered by the saved layout, headings included.
func (g *Grid[R, C, V]) Extent() string {
	ref, err := parser.RangeRef(g.cols.Len()+1, g.rows.Len()+1)
	if err != nil {
		return ""
	}
	return ref
}
