// Package models defines data structures for grid snapshots.
package models

// Cell is a single value of a grid together with its row and column headings.
// It is a copy: changing the grid afterwards does not affect it.
type Cell[R, C comparable, V any] struct {
	// Row is the row heading.
	Row R `json:"row"`
	// Col is the column heading.
	Col C `json:"col"`
	// Value is the value stored at (Row, Col) when the cell was produced.
	Value V `json:"value"`
}
