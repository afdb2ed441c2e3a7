package ingest

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoSheetID indicates a share URL with no extractable document ID.
var ErrNoSheetID = errors.New("no spreadsheet ID found in URL")

// sheetIDPattern extracts the document ID from a Google Sheets share URL of
// the form .../d/<ID>/...
var sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// exportURLTemplate is the CSV export endpoint for a spreadsheet ID.
const exportURLTemplate = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

// SheetExportURL derives the CSV export URL from a shareable spreadsheet
// URL. Returns ErrNoSheetID when the URL has no recognizable /d/<ID>/
// segment.
func SheetExportURL(shareURL string) (string, error) {
	m := sheetIDPattern.FindStringSubmatch(shareURL)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrNoSheetID, shareURL)
	}
	return fmt.Sprintf(exportURLTemplate, m[1]), nil
}
