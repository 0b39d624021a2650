package parser

import (
	"encoding/csv"
	"io"
)

// Comma is the field separator of grid text. Records end with a newline.
const Comma = ','

// NewReader returns a CSV reader for grid text. Records may have differing
// lengths so that shape checks are left to the grid.
//
// Blank lines are skipped, and a \r\n inside a quoted field is read back as \n.
func NewReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Comma
	cr.FieldsPerRecord = -1
	return cr
}

// Writer is a CSV writer for grid text.
//
// A record made of a single empty field is written as "" so that NewReader
// reads it back instead of skipping a blank line.
type Writer struct {
	*csv.Writer
	w io.Writer
}

// NewWriter returns a Writer for grid text.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Comma
	return &Writer{Writer: cw, w: w}
}

// Write writes a single record.
func (w *Writer) Write(record []string) error {
	if len(record) != 1 || record[0] != "" {
		return w.Writer.Write(record)
	}
	w.Writer.Flush()
	if err := w.Writer.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w.w, "\"\"\n")
	return err
}
