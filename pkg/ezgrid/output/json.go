// Package output renders grid snapshots for other programs.
package output

import (
	"encoding/json"

	"github.com/0Hughman0/ez-grid/pkg/ezgrid/models"
)

// ToJSON serializes a grid snapshot.
func ToJSON(data models.GridData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// CellsToJSON serializes cells as a flat list of {row, col, value} objects.
func CellsToJSON[R, C comparable, V any](cells []models.Cell[R, C, V], pretty bool) ([]byte, error) {
	if cells == nil {
		cells = []models.Cell[R, C, V]{}
	}
	if pretty {
		return json.MarshalIndent(cells, "", "  ")
	}
	return json.Marshal(cells)
}
