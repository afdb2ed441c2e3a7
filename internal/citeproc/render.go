package citeproc

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
	"go.uber.org/zap"

	"github.com/refbuild/citesheet/internal/citation"
)

// ErrMalformedStyle indicates a style document without a recognizable style
// root. Checked before engine construction so a truncated download fails
// with a clear message instead of an engine parse error.
var ErrMalformedStyle = errors.New("style document has no <style root element")

// Placeholder substitutes for a single citation whose text could not be
// extracted. One bad fragment never aborts the batch.
const Placeholder = "[citation unavailable]"

// styleRootMarker must appear in a CSL style document.
const styleRootMarker = "<style"

// Renderer adapts the engine boundary for the pipeline: it builds the
// lookup context, orders the render request, and reduces engine markup to
// plain text.
type Renderer struct {
	newEngine EngineFactory
	logger    *zap.Logger
}

// NewRenderer creates a renderer around an engine factory. logger may be
// nil.
func NewRenderer(factory EngineFactory, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{newEngine: factory, logger: logger}
}

// Render formats items with the given style and locale documents. It
// returns one plain-text citation per item, in item order, plus per-item
// extraction errors. A non-nil error means the whole batch failed at one of
// the engine stages; per-item failures are reported in errs with a
// Placeholder left in the citation slot instead.
func (r *Renderer) Render(ctx context.Context, style, locale string, items []citation.Item) (citations, errs []string, err error) {
	if !strings.Contains(style, styleRootMarker) {
		return nil, nil, ErrMalformedStyle
	}

	byID := make(map[string]citation.Item, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}

	sys := Sys{
		RetrieveLocale: func(string) string { return locale },
		RetrieveItem: func(id string) (citation.Item, bool) {
			item, ok := byID[id]
			return item, ok
		},
	}

	engine, err := r.newEngine(style, sys)
	if err != nil {
		return nil, nil, fmt.Errorf("constructing citation engine: %w", err)
	}

	if err := engine.UpdateItems(ctx, ids); err != nil {
		return nil, nil, fmt.Errorf("registering items with engine: %w", err)
	}

	bib, err := engine.MakeBibliography(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("generating bibliography: %w", err)
	}

	citations = make([]string, len(ids))
	errs = []string{}
	for i, id := range ids {
		if i >= len(bib.Entries) {
			citations[i] = Placeholder
			errs = append(errs, fmt.Sprintf("%s: engine returned no entry", id))
			continue
		}
		text := ExtractText(bib.Entries[i])
		if text == "" {
			citations[i] = Placeholder
			errs = append(errs, fmt.Sprintf("%s: could not extract citation text", id))
			r.logger.Warn("empty citation fragment", zap.String("item_id", id))
			continue
		}
		citations[i] = text
	}

	return citations, errs, nil
}

// ExtractText reduces an engine markup fragment to plain text: tags
// stripped, entities unescaped, internal whitespace runs collapsed to
// single spaces.
func ExtractText(fragment string) string {
	text := html.UnescapeString(strip.StripTags(fragment))
	return strings.Join(strings.Fields(text), " ")
}
