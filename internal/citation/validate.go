package citation

import "fmt"

// ValidationResult partitions a full item sequence into the items usable for
// rendering and per-item reasons for the ones that are not. Valid preserves
// the relative order of the input sequence; Errors holds one message per
// rejected item, in input order, prefixed with the item's 1-based position.
type ValidationResult struct {
	Valid  []Item
	Errors []string
}

// Validate applies the minimum-completeness rules to items. An item is
// rejected when it has neither a title nor any author, or when it is a
// journal article with no container title. No other rules apply; partial
// records otherwise pass through so the style engine can do what it can
// with them.
func Validate(items []Item) ValidationResult {
	res := ValidationResult{
		Valid:  make([]Item, 0, len(items)),
		Errors: []string{},
	}

	for i, item := range items {
		if reason := checkItem(item); reason != "" {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %s", i+1, reason))
			continue
		}
		res.Valid = append(res.Valid, item)
	}

	return res
}

// checkItem returns a rejection reason, or "" if the item is usable.
func checkItem(item Item) string {
	if item.Title == "" && len(item.Author) == 0 {
		return "missing both title and author"
	}
	if item.Type == TypeJournalArticle && item.ContainerTitle == "" {
		return "journal article has no journal/container title"
	}
	return ""
}
