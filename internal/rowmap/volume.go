package rowmap

import (
	"regexp"
	"strings"
)

// Combined volume/issue encodings, tried in order; first match wins. The
// recognized forms are "12(3)", "vol. 5 no. 2", "v. 5 n. 2", and "12-3"
// with hyphen, en dash, or em dash.
var volumeIssuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+)\s*\(\s*(\d+)\s*\)$`),
	regexp.MustCompile(`(?i)^vol\.?\s*(\d+)[,\s]+no\.?\s*(\d+)$`),
	regexp.MustCompile(`(?i)^v\.?\s*(\d+)[,\s]+n\.?\s*(\d+)$`),
	regexp.MustCompile(`^(\d+)\s*[-\x{2013}\x{2014}]\s*(\d+)$`),
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// VolumeIssue holds the extracted parts; an empty string means the part was
// not present in the text.
type VolumeIssue struct {
	Volume string
	Issue  string
}

// ExtractVolumeIssue recognizes the textual encodings of "volume(issue)".
// When no combined pattern matches but the whole trimmed text is purely
// digits, it is taken as a bare volume. Anything else yields neither part;
// the caller then falls back to a separate issue column.
func ExtractVolumeIssue(text string) VolumeIssue {
	text = strings.TrimSpace(text)
	if text == "" {
		return VolumeIssue{}
	}

	for _, p := range volumeIssuePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return VolumeIssue{Volume: m[1], Issue: m[2]}
		}
	}

	if digitsOnly.MatchString(text) {
		return VolumeIssue{Volume: text}
	}

	return VolumeIssue{}
}
