package ezgrid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// columnGap is the minimum number of spaces after every rendered entry.
const columnGap = 2

// String renders g as an aligned table: a header line with a blank corner and
// the column headings, then one line per row. Each column is left-justified
// to its widest entry plus columnGap spaces.
func (g *Grid[R, C, V]) String() string {
	table := make([][]string, 0, g.rows.Len()+1)

	header := make([]string, 0, g.cols.Len()+1)
	header = append(header, "")
	for _, h := range g.cols.headings {
		header = append(header, fmt.Sprint(h))
	}
	table = append(table, header)

	for rh, values := range g.Rows() {
		line := make([]string, 0, g.cols.Len()+1)
		line = append(line, fmt.Sprint(rh))
		for v := range values {
			line = append(line, fmt.Sprint(v))
		}
		table = append(table, line)
	}

	widths := make([]int, len(header))
	for _, line := range table {
		for j, s := range line {
			widths[j] = max(widths[j], utf8.RuneCountInString(s))
		}
	}

	lines := make([]string, len(table))
	var sb strings.Builder
	for i, line := range table {
		sb.Reset()
		for j, s := range line {
			sb.WriteString(s)
			sb.WriteString(strings.Repeat(" ", widths[j]+columnGap-utf8.RuneCountInString(s)))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
