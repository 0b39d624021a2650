package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0Hughman0/ez-grid/pkg/ezgrid/models"
)

func TestToJSON(t *testing.T) {
	data := models.GridData{
		Name:        "Test Grid",
		RowHeadings: []any{"Row 1"},
		ColHeadings: []any{"Col 1", "Col 2"},
		Values:      [][]any{{1, "x"}},
	}

	got, err := ToJSON(data, false)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"Test Grid","row_headings":["Row 1"],"col_headings":["Col 1","Col 2"],"values":[[1,"x"]]}`,
		string(got))

	pretty, err := ToJSON(data, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"name\": \"Test Grid\"")
	assert.JSONEq(t, string(got), string(pretty))
}

func TestCellsToJSON(t *testing.T) {
	cells := []models.Cell[string, string, int]{
		{Row: "Row 1", Col: "Col 1", Value: 1},
		{Row: "Row 1", Col: "Col 2", Value: 2},
	}

	got, err := CellsToJSON(cells, false)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"row":"Row 1","col":"Col 1","value":1},{"row":"Row 1","col":"Col 2","value":2}]`,
		string(got))

	empty, err := CellsToJSON[string, string, int](nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
