package rowmap

import (
	"strings"

	"github.com/refbuild/citesheet/internal/citation"
)

// authorDelimiters are tried in priority order; the first one present in
// the cell is used to split the list. Spacing around "&" and "and" matters:
// it keeps surnames like "Anderson" from being split.
var authorDelimiters = []string{";", " & ", " and "}

// ParseAuthors splits a free-text author cell into structured name entries.
// The heuristic is lossy by design: fragments that cannot be confidently
// split into family/given parts become literal names rather than errors, and
// a "Family, Given" fragment missing either part is dropped silently.
func ParseAuthors(cell string) []citation.Name {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	fragments := []string{cell}
	for _, delim := range authorDelimiters {
		if strings.Contains(cell, delim) {
			fragments = strings.Split(cell, delim)
			break
		}
	}

	var names []citation.Name
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if name, ok := parseName(frag); ok {
			names = append(names, name)
		}
	}
	return names
}

// parseName converts one author fragment into a Name entry.
func parseName(frag string) (citation.Name, bool) {
	if strings.Contains(frag, ",") {
		// "Family, Given" form; split on the first comma only.
		parts := strings.SplitN(frag, ",", 2)
		family := strings.TrimSpace(parts[0])
		given := strings.TrimSpace(parts[1])
		if family == "" || given == "" {
			return citation.Name{}, false
		}
		return citation.Name{Family: family, Given: given}, true
	}

	tokens := strings.Fields(frag)
	if len(tokens) >= 2 && len(tokens[0]) > 1 {
		// "Given [Middle ...] Family" form.
		return citation.Name{
			Family: tokens[len(tokens)-1],
			Given:  strings.Join(tokens[:len(tokens)-1], " "),
		}, true
	}

	// Single-word names, initials-only, organizational authors.
	return citation.Name{Literal: frag}, true
}
