package models

// GridData represents a grid with all of its headings and values in declared order.
type GridData struct {
	// Name is the grid's display label.
	Name string `json:"name"`
	// RowHeadings lists the row headings in declared order.
	RowHeadings []any `json:"row_headings"`
	// ColHeadings lists the column headings in declared order.
	ColHeadings []any `json:"col_headings"`
	// Values is row-major: Values[i][j] belongs to RowHeadings[i] and ColHeadings[j].
	Values [][]any `json:"values"`
}

// Cells returns the number of values held by the snapshot.
func (d GridData) Cells() int {
	return len(d.RowHeadings) * len(d.ColHeadings)
}
