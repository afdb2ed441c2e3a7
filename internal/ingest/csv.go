package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyInput indicates the source had no header row.
var ErrEmptyInput = errors.New("input has no header row")

// ReadCSV parses CSV data into a Table. The first record is the header;
// every following record becomes a row. Ragged records are tolerated (the
// csv reader's field-count check is disabled) because sheet exports often
// omit trailing empty cells.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return newTable(records[0], records[1:]), nil
}

// WriteCSV serializes a table, appending one extra column to every row.
// Column order follows t.Headers with extraHeader last; the output row
// count always equals len(t.Rows).
func WriteCSV(w io.Writer, t *Table, extraHeader string, extraValues []string) error {
	cw := csv.NewWriter(w)

	header := append(append([]string{}, t.Headers...), extraHeader)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range t.Rows {
		rec := make([]string, 0, len(header))
		for _, h := range t.Headers {
			rec = append(rec, row[h])
		}
		extra := ""
		if i < len(extraValues) {
			extra = extraValues[i]
		}
		rec = append(rec, extra)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
