package export

import (
	"strings"
	"testing"

	"github.com/refbuild/citesheet/internal/citation"
)

func TestToBibTeX(t *testing.T) {
	item := citation.Item{
		ID:             "item_1",
		Type:           citation.TypeJournalArticle,
		Title:          "A Study of Things",
		Author:         []citation.Name{{Family: "Smith", Given: "John"}, {Literal: "Acme Corp"}},
		Issued:         citation.YearDate(2021),
		ContainerTitle: "Journal of Things",
		Volume:         "12",
		Issue:          "3",
		Page:           "45-67",
		DOI:            "10.1234/jot.2021.45",
	}

	got := ToBibTeX(item)

	wants := []string{
		"@article{item_1,",
		"author = {Smith, John and {Acme Corp}},",
		"title = {A Study of Things},",
		"journal = {Journal of Things},",
		"year = {2021},",
		"volume = {12},",
		"number = {3},",
		"pages = {45-67},",
		"doi = {10.1234/jot.2021.45},",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("ToBibTeX() missing %q:\n%s", want, got)
		}
	}
}

func TestToBibTeX_EntryTypes(t *testing.T) {
	tests := []struct {
		itemType citation.Type
		want     string
	}{
		{citation.TypeBook, "@book{"},
		{citation.TypeChapter, "@incollection{"},
		{citation.TypeConferencePaper, "@inproceedings{"},
		{citation.TypeThesis, "@phdthesis{"},
		{citation.TypeReport, "@techreport{"},
		{citation.TypeWebpage, "@misc{"},
	}

	for _, tt := range tests {
		t.Run(string(tt.itemType), func(t *testing.T) {
			got := ToBibTeX(citation.Item{ID: "item_1", Type: tt.itemType, Title: "T"})
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("ToBibTeX() = %q, want prefix %q", got[:20], tt.want)
			}
		})
	}
}

func TestToBibTeX_ConferenceUsesBooktitle(t *testing.T) {
	item := citation.Item{
		ID:             "item_1",
		Type:           citation.TypeConferencePaper,
		Title:          "T",
		ContainerTitle: "Proc. of Things",
	}
	got := ToBibTeX(item)
	if !strings.Contains(got, "booktitle = {Proc. of Things}") {
		t.Errorf("ToBibTeX() should use booktitle for proceedings:\n%s", got)
	}
}

func TestToBibTeXList(t *testing.T) {
	items := []citation.Item{
		{ID: "item_1", Type: citation.TypeBook, Title: "A"},
		{ID: "item_2", Type: citation.TypeBook, Title: "B"},
	}
	got := ToBibTeXList(items)
	if strings.Count(got, "@book{") != 2 {
		t.Errorf("ToBibTeXList() = %q, want two entries", got)
	}
}
