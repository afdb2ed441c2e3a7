package pipeline

import (
	"io"

	"github.com/refbuild/citesheet/internal/citation"
	"github.com/refbuild/citesheet/internal/ingest"
)

// CitationColumnHeader is the column appended to the output table.
const CitationColumnHeader = "APA 7 Citation"

// SkippedSentinel is attached to rows whose item was rejected by
// validation. Every input row appears in the output; rejected rows are
// annotated, never dropped.
const SkippedSentinel = "Skipped due to validation errors"

// GenerationResult is the terminal aggregate of one run.
type GenerationResult struct {
	RunID string `json:"run_id"`

	// Citations holds the rendered plain-text citations, one per valid
	// item, in validation order. Always non-nil, possibly empty.
	Citations []string `json:"citations"`

	// Errors collects validation and rendering failures. A fatal run error
	// appears here as well.
	Errors []string `json:"errors"`

	// Warnings carries non-fatal run observations, e.g. the skipped-row
	// count.
	Warnings []string `json:"warnings"`

	// Notes is the run-scoped diagnostic log from row normalization.
	Notes []string `json:"notes,omitempty"`

	// Items holds the validated citation items behind Citations, in the
	// same order, for interchange exports.
	Items []citation.Item `json:"-"`

	// Table is the original ingested table; nil when ingestion failed.
	Table *ingest.Table `json:"-"`

	// CitationColumn holds one value per original row, in row order: the
	// rendered citation or SkippedSentinel. Empty on a fatal run.
	CitationColumn []string `json:"-"`
}

// fatal records err in the error list and returns res with empty outputs.
func (r *GenerationResult) fatal(err error) *GenerationResult {
	r.Errors = append(r.Errors, err.Error())
	r.Citations = []string{}
	r.CitationColumn = nil
	return r
}

// WriteCSV writes the augmented table: every original column plus the
// citation column, row count equal to the input row count.
func (r *GenerationResult) WriteCSV(w io.Writer) error {
	return ingest.WriteCSV(w, r.Table, CitationColumnHeader, r.CitationColumn)
}

// assembleColumn maps rendered citations back onto original rows by the
// position encoded in each item ID. Valid items and citations share one
// order, so a position-indexed lookup suffices; rows with no surviving item
// get the sentinel.
func assembleColumn(table *ingest.Table, valid []citation.Item, citations []string) []string {
	byPosition := make(map[int]string, len(valid))
	for i, item := range valid {
		if i < len(citations) {
			byPosition[citation.Position(item.ID)] = citations[i]
		}
	}

	column := make([]string, len(table.Rows))
	for i := range table.Rows {
		if text, ok := byPosition[i+1]; ok {
			column[i] = text
		} else {
			column[i] = SkippedSentinel
		}
	}
	return column
}
