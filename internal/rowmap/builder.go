package rowmap

import (
	"strconv"
	"strings"

	"github.com/refbuild/citesheet/internal/citation"
	"github.com/refbuild/citesheet/internal/ingest"
	"github.com/refbuild/citesheet/internal/runlog"
)

const doiResolverHost = "doi.org/"

// BuildItems converts every row of a table into a citation item, in row
// order. No row is rejected here; incomplete items are left for the
// validator. Diagnostic notes about missing or unparseable fields go to log.
func BuildItems(table *ingest.Table, log *runlog.Sink) []citation.Item {
	items := make([]citation.Item, 0, len(table.Rows))
	for i, row := range table.Rows {
		items = append(items, BuildItem(row, i, log))
	}
	return items
}

// BuildItem composes one citation item from the row at 0-based index i. The
// item ID encodes the 1-based row position and is never reassigned.
func BuildItem(row ingest.Row, i int, log *runlog.Sink) citation.Item {
	typeText, _ := row.Lookup(typeAliases...)

	item := citation.Item{
		ID:   citation.ItemID(i),
		Type: MapType(typeText),
	}

	item.Title, _ = row.Lookup(titleAliases...)
	if item.Title == "" {
		log.Notef("row %d: no title", i+1)
	}

	if authors, _ := row.Lookup(authorAliases...); authors != "" {
		item.Author = ParseAuthors(authors)
	}
	if len(item.Author) == 0 {
		log.Notef("row %d: no authors", i+1)
	}

	if yearText, _ := row.Lookup(yearAliases...); yearText != "" {
		if year, err := strconv.Atoi(yearText); err == nil {
			item.Issued = citation.YearDate(year)
		} else {
			log.Notef("row %d: year %q is not a number", i+1, yearText)
		}
	} else {
		log.Notef("row %d: no year", i+1)
	}

	item.ContainerTitle, _ = row.Lookup(containerAliases...)
	item.Page, _ = row.Lookup(pageAliases...)
	item.Publisher, _ = row.Lookup(publisherAliases...)

	if volText, _ := row.Lookup(volumeAliases...); volText != "" {
		vi := ExtractVolumeIssue(volText)
		item.Volume = vi.Volume
		item.Issue = vi.Issue
	}
	if item.Issue == "" {
		item.Issue, _ = row.Lookup(issueAliases...)
	}

	if ident, _ := row.Lookup(doiAliases...); ident != "" {
		item.DOI, item.URL = splitIdentifier(ident)
	}
	// A dedicated URL column only counts when the identifier column
	// produced nothing.
	if item.DOI == "" && item.URL == "" {
		if u, _ := row.Lookup(urlAliases...); strings.HasPrefix(u, "http") {
			item.URL = u
		}
	}

	return item
}

// splitIdentifier disambiguates a DOI-or-URL cell. Resolver URLs like
// https://doi.org/10.1234/x are reduced to the bare DOI; other http(s)
// values are URLs; values starting with "10." are bare DOIs; anything else
// is ignored.
func splitIdentifier(ident string) (doi, url string) {
	switch {
	case strings.HasPrefix(ident, "http") && strings.Contains(ident, doiResolverHost):
		idx := strings.Index(ident, doiResolverHost)
		return ident[idx+len(doiResolverHost):], ""
	case strings.HasPrefix(ident, "http"):
		return "", ident
	case strings.HasPrefix(ident, "10."):
		return ident, ""
	default:
		return "", ""
	}
}
