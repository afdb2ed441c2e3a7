// Package ingest reads tabular bibliographic records from CSV and XLSX
// sources and writes the augmented output table. Column names are free-form;
// semantic interpretation of cells belongs to the rowmap package.
package ingest

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Row maps a column name to its cell value for one record. Rows are built
// once during ingestion and read-only afterwards; they are echoed back into
// the final output.
type Row map[string]string

// Lookup returns the first present, non-empty value among the given column
// name candidates, in candidate order. For each candidate an exact match is
// tried first, then a case-insensitive match against the row's trimmed keys.
// The boolean reports whether any candidate matched a column at all, even
// one holding an empty value.
func (r Row) Lookup(candidates ...string) (string, bool) {
	found := false
	for _, want := range candidates {
		if v, ok := r[want]; ok {
			found = true
			if s := strings.TrimSpace(v); s != "" {
				return s, true
			}
		}
		for k, v := range r {
			if strings.EqualFold(strings.TrimSpace(k), want) {
				found = true
				if s := strings.TrimSpace(v); s != "" {
					return s, true
				}
			}
		}
	}
	return "", found
}

// Table is an ordered set of rows with their original header order
// preserved, so the augmented output can reproduce the input layout.
type Table struct {
	Headers []string
	Rows    []Row
}

// newTable builds a Table from a header record and data records. Cell text
// is NFC-normalized and trimmed of surrounding whitespace; rows shorter than
// the header are padded with empty cells, longer rows have trailing cells
// dropped.
func newTable(header []string, records [][]string) *Table {
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = cleanCell(h)
	}

	t := &Table{Headers: headers, Rows: make([]Row, 0, len(records))}
	for _, rec := range records {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = cleanCell(rec[i])
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// cleanCell normalizes a cell to NFC and trims surrounding whitespace,
// including the UTF-8 BOM a sheet export may leave on the first header.
func cleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimSpace(norm.NFC.String(s))
}
