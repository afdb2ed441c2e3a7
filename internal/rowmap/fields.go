// Package rowmap turns loosely-structured spreadsheet rows into canonical
// citation items: header-alias resolution, author-list parsing, volume/issue
// extraction, and DOI/URL disambiguation.
package rowmap

import (
	"strings"

	"github.com/refbuild/citesheet/internal/citation"
)

// Header alias candidates per semantic field, in lookup priority order.
// Row.Lookup already tries case-insensitive matches, so only the canonical
// spellings are listed.
var (
	titleAliases     = []string{"Title"}
	authorAliases    = []string{"Author(s)", "Authors", "Author"}
	yearAliases      = []string{"Year", "Publication Year", "Date"}
	containerAliases = []string{"Journal", "Publication", "Container Title", "Source"}
	volumeAliases    = []string{"Volume", "Volume-Issue"}
	issueAliases     = []string{"Issue"}
	pageAliases      = []string{"Pages", "Page Range", "Page"}
	doiAliases       = []string{"DOI", "DOI or URL"}
	urlAliases       = []string{"URL"}
	publisherAliases = []string{"Publisher"}
	typeAliases      = []string{"Source Type"}
)

// typeSynonyms maps lower-cased, trimmed source-type text to CSL types.
var typeSynonyms = map[string]citation.Type{
	"journal article":       citation.TypeJournalArticle,
	"journal":               citation.TypeJournalArticle,
	"article":               citation.TypeJournalArticle,
	"peer-reviewed article": citation.TypeJournalArticle,
	"newspaper article":     citation.TypeNewspaperArticle,
	"newspaper":             citation.TypeNewspaperArticle,
	"magazine article":      citation.TypeMagazineArticle,
	"magazine":              citation.TypeMagazineArticle,
	"book":                  citation.TypeBook,
	"book chapter":          citation.TypeChapter,
	"chapter":               citation.TypeChapter,
	"conference paper":      citation.TypeConferencePaper,
	"conference proceeding": citation.TypeConferencePaper,
	"proceedings":           citation.TypeConferencePaper,
	"thesis":                citation.TypeThesis,
	"dissertation":          citation.TypeThesis,
	"report":                citation.TypeReport,
	"technical report":      citation.TypeReport,
	"webpage":               citation.TypeWebpage,
	"web page":              citation.TypeWebpage,
	"website":               citation.TypeWebpage,
	"blog post":             citation.TypeBlogPost,
	"blog":                  citation.TypeBlogPost,
	"review":                citation.TypeReview,
	"book review":           citation.TypeReview,
}

// MapType resolves raw source-type text to a CSL type. Empty or absent text
// defaults to article-journal; non-empty text with no synonym entry falls
// back to webpage. The two fallbacks are distinct and both load-bearing.
func MapType(raw string) citation.Type {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return citation.TypeJournalArticle
	}
	if t, ok := typeSynonyms[key]; ok {
		return t
	}
	return citation.TypeWebpage
}
