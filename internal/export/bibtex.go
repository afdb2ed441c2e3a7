// Package export writes citation items to interchange formats alongside the
// rendered bibliography.
package export

import (
	"fmt"
	"strings"

	"github.com/refbuild/citesheet/internal/citation"
)

// bibtexTypes maps CSL item types to BibTeX entry types.
var bibtexTypes = map[citation.Type]string{
	citation.TypeJournalArticle:   "article",
	citation.TypeNewspaperArticle: "article",
	citation.TypeMagazineArticle:  "article",
	citation.TypeBook:             "book",
	citation.TypeChapter:          "incollection",
	citation.TypeConferencePaper:  "inproceedings",
	citation.TypeThesis:           "phdthesis",
	citation.TypeReport:           "techreport",
	citation.TypeWebpage:          "misc",
	citation.TypeBlogPost:         "misc",
	citation.TypeReview:           "article",
}

// ToBibTeX converts one citation item to a BibTeX entry.
func ToBibTeX(item citation.Item) string {
	entryType, ok := bibtexTypes[item.Type]
	if !ok {
		entryType = "misc"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, item.ID))

	if len(item.Author) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", formatAuthors(item.Author)))
	}
	if item.Title != "" {
		b.WriteString(fmt.Sprintf("  title = {%s},\n", item.Title))
	}
	if item.ContainerTitle != "" {
		fieldName := "journal"
		if entryType == "inproceedings" || entryType == "incollection" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, item.ContainerTitle))
	}
	if item.Issued != nil && len(item.Issued.DateParts) > 0 && len(item.Issued.DateParts[0]) > 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", item.Issued.DateParts[0][0]))
	}
	if item.Volume != "" {
		b.WriteString(fmt.Sprintf("  volume = {%s},\n", item.Volume))
	}
	if item.Issue != "" {
		b.WriteString(fmt.Sprintf("  number = {%s},\n", item.Issue))
	}
	if item.Page != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", item.Page))
	}
	if item.Publisher != "" {
		b.WriteString(fmt.Sprintf("  publisher = {%s},\n", item.Publisher))
	}
	if item.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", item.DOI))
	}
	if item.URL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", item.URL))
	}

	b.WriteString("}\n")
	return b.String()
}

// ToBibTeXList converts multiple items to BibTeX format.
func ToBibTeXList(items []citation.Item) string {
	var entries []string
	for _, item := range items {
		entries = append(entries, ToBibTeX(item))
	}
	return strings.Join(entries, "\n")
}

// formatAuthors formats authors in BibTeX style: "Last, First and Last, First".
// Literal names are braced so BibTeX treats them as a single token.
func formatAuthors(authors []citation.Name) string {
	var formatted []string
	for _, a := range authors {
		switch {
		case a.Literal != "":
			formatted = append(formatted, fmt.Sprintf("{%s}", a.Literal))
		case a.Given != "":
			formatted = append(formatted, fmt.Sprintf("%s, %s", a.Family, a.Given))
		default:
			formatted = append(formatted, a.Family)
		}
	}
	return strings.Join(formatted, " and ")
}
