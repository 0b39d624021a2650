package ezgrid

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/0Hughman0/ez-grid/pkg/ezgrid/parser"
)

// RecordReader yields line-records one at a time and io.EOF after the last.
// *csv.Reader satisfies it.
type RecordReader interface {
	Read() ([]string, error)
}

// RecordWriter consumes line-records. *csv.Writer satisfies it.
type RecordWriter interface {
	Write(record []string) error
}

// FromLines builds a grid from in-memory line-records.
//
// The first record is (name, column headings...). Every following record is
// (row heading, values...) and must be exactly as long as the first. Each value
// passes through t. A nil t keeps values as text and is only valid when V is string.
func FromLines[V any](records [][]string, t Transformer[V]) (*Grid[string, string, V], error) {
	return FromRecords(&lineReader{records: records}, t)
}

// FromText builds a grid from comma-separated, newline-terminated text.
func FromText[V any](r io.Reader, t Transformer[V]) (*Grid[string, string, V], error) {
	return FromRecords[V](parser.NewReader(r), t)
}

// FromRecords builds a grid from the records produced by r. See FromLines.
func FromRecords[V any](r RecordReader, t Transformer[V]) (*Grid[string, string, V], error) {
	if t == nil {
		id, ok := Identity.(Transformer[V])
		if !ok {
			return nil, ErrNoTransformer
		}
		t = id
	}

	header, err := r.Read()
	if errors.Is(err, io.EOF) || (err == nil && len(header) == 0) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)

	g, err := New[string, string, V](nil, header[1:], Options[V]{})
	if err != nil {
		return nil, err
	}
	g.SetName(header[0])

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", g.NumRows()+2, err)
		}
		if len(record) != len(header) {
			se := &ShapeError{Axis: RowAxis, Want: len(header) - 1}
			if len(record) > 0 {
				se.Heading = record[0]
				se.Got = len(record) - 1
			}
			return nil, se
		}

		rowHeading := record[0]
		values := make([]V, len(record)-1)
		for i, raw := range record[1:] {
			v, err := t.Transform(rowHeading, header[i+1], raw)
			if err != nil {
				return nil, &TransformError{Row: rowHeading, Col: header[i+1], Raw: raw, Err: err}
			}
			values[i] = v
		}
		if err := g.AppendRow(rowHeading, values); err != nil {
			return nil, err
		}
	}

	slog.Debug("Read grid records",
		slog.String("name", g.Name()),
		slog.Int("rows", g.NumRows()),
		slog.Int("cols", g.NumCols()))
	return g, nil
}

// Save writes g as comma-separated text that FromText reads back.
// Headings and values are written in their fmt.Sprint form. A \r\n inside a
// heading or value reads back as \n.
func (g *Grid[R, C, V]) Save(w io.Writer) error {
	cw := parser.NewWriter(w)
	if err := g.WriteRecords(cw); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecords writes the header record and then one record per row to w.
func (g *Grid[R, C, V]) WriteRecords(w RecordWriter) error {
	header := make([]string, 0, g.cols.Len()+1)
	header = append(header, g.name)
	for _, h := range g.cols.headings {
		header = append(header, fmt.Sprint(h))
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for rh, values := range g.Rows() {
		record := make([]string, 0, g.cols.Len()+1)
		record = append(record, fmt.Sprint(rh))
		for v := range values {
			record = append(record, fmt.Sprint(v))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %v: %w", rh, err)
		}
	}

	slog.Debug("Wrote grid records",
		slog.String("name", g.name),
		slog.Int("rows", g.rows.Len()),
		slog.Int("cols", g.cols.Len()))
	return nil
}

// lineReader serves in-memory records through the RecordReader interface.
type lineReader struct {
	records [][]string
	next    int
}

func (l *lineReader) Read() ([]string, error) {
	if l.next >= len(l.records) {
		return nil, io.EOF
	}
	record := l.records[l.next]
	l.next++
	return record, nil
}
