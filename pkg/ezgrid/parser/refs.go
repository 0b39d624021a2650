package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellRef returns the A1 reference of a 1-based (col, row) coordinate.
func CellRef(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}

// RangeRef returns the A1 range spanning A1 to the 1-based (cols, rows) corner.
func RangeRef(cols, rows int) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(cols, rows)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}
