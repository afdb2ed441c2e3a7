// Package citation defines the core CSL item model for bibliographic sources.
package citation

import "fmt"

// Type identifies the kind of source a citation item describes. Values
// follow the CSL type vocabulary so items can be handed to a CSL engine
// unchanged.
type Type string

const (
	TypeJournalArticle   Type = "article-journal"
	TypeNewspaperArticle Type = "article-newspaper"
	TypeMagazineArticle  Type = "article-magazine"
	TypeBook             Type = "book"
	TypeChapter          Type = "chapter"
	TypeConferencePaper  Type = "paper-conference"
	TypeThesis           Type = "thesis"
	TypeReport           Type = "report"
	TypeWebpage          Type = "webpage"
	TypeBlogPost         Type = "post-weblog"
	TypeReview           Type = "review"
)

// Name represents one contributor in CSL form. Either Family/Given are set,
// or Literal carries the whole name when a confident split was not possible
// (single-token names, initials-only strings, organizational authors).
type Name struct {
	Family  string `json:"family,omitempty"`
	Given   string `json:"given,omitempty"`
	Literal string `json:"literal,omitempty"`
}

// Date represents a CSL date using date-parts. Only the year part is
// populated by the row pipeline.
type Date struct {
	DateParts [][]int `json:"date-parts"`
}

// YearDate builds a year-only Date.
func YearDate(year int) *Date {
	return &Date{DateParts: [][]int{{year}}}
}

// Item is the canonical structured record for one bibliographic source.
// The ID encodes the source row's original 1-based position and is the join
// key between raw rows, validation results, and rendered output. It is
// assigned once at build time and never reassigned.
type Item struct {
	ID             string `json:"id"`
	Type           Type   `json:"type"`
	Title          string `json:"title,omitempty"`
	Author         []Name `json:"author,omitempty"`
	Issued         *Date  `json:"issued,omitempty"`
	ContainerTitle string `json:"container-title,omitempty"`
	Volume         string `json:"volume,omitempty"`
	Issue          string `json:"issue,omitempty"`
	Page           string `json:"page,omitempty"`
	DOI            string `json:"DOI,omitempty"`
	URL            string `json:"URL,omitempty"`
	Publisher      string `json:"publisher,omitempty"`
}

// ItemID returns the canonical identifier for the row at 0-based index i.
func ItemID(i int) string {
	return fmt.Sprintf("item_%d", i+1)
}

// Position returns the 1-based row position encoded in an item ID, or 0 if
// the ID is not in canonical form.
func Position(id string) int {
	var n int
	if _, err := fmt.Sscanf(id, "item_%d", &n); err != nil || n < 1 {
		return 0
	}
	return n
}
