// Package pipeline runs a single citation-generation pass: ingestion,
// normalization, validation, rendering, and result assembly. One run is
// linear and non-overlapping; all state is created fresh per run and
// returned in the result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/refbuild/citesheet/internal/citation"
	"github.com/refbuild/citesheet/internal/citeproc"
	"github.com/refbuild/citesheet/internal/fetch"
	"github.com/refbuild/citesheet/internal/ingest"
	"github.com/refbuild/citesheet/internal/rowmap"
	"github.com/refbuild/citesheet/internal/runlog"
)

// Fatal run errors.
var (
	// ErrNoInput indicates neither a table nor a sheet URL was supplied.
	ErrNoInput = errors.New("no input: supply a file or a spreadsheet URL")

	// ErrNoValidItems indicates validation rejected every row.
	ErrNoValidItems = errors.New("no valid items after validation")
)

// Generator holds the capabilities a run needs. The renderer and fetcher
// are injected at construction so the pipeline itself has no ambient
// dependencies.
type Generator struct {
	fetcher  *fetch.Client
	renderer *citeproc.Renderer
	logger   *zap.Logger
}

// NewGenerator creates a Generator. logger may be nil.
func NewGenerator(fetcher *fetch.Client, renderer *citeproc.Renderer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{fetcher: fetcher, renderer: renderer, logger: logger}
}

// Request describes one generation run. Exactly one of Table or SheetURL
// must be set. CustomStyle, when non-empty, is used instead of fetching
// StyleURL; the locale document at LocaleURL is always fetched.
type Request struct {
	Table       *ingest.Table
	SheetURL    string
	CustomStyle string
	StyleURL    string
	LocaleURL   string
}

// Run executes the pipeline to completion. The returned result is never
// nil; a non-nil error marks a fatal run and is also recorded in the
// result's error list, leaving citations and rows empty but accessible.
func (g *Generator) Run(ctx context.Context, req Request) (*GenerationResult, error) {
	log := runlog.New(g.logger)
	res := &GenerationResult{
		RunID:     log.RunID(),
		Citations: []string{},
		Errors:    []string{},
		Warnings:  []string{},
	}

	table, err := g.resolveTable(ctx, req)
	if err != nil {
		return res.fatal(err), err
	}
	res.Table = table

	items := rowmap.BuildItems(table, log)
	vr := citation.Validate(items)
	res.Errors = append(res.Errors, vr.Errors...)

	if skipped := len(items) - len(vr.Valid); skipped > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d row(s) skipped due to validation errors", skipped))
	}

	if len(vr.Valid) == 0 {
		res.Notes = log.Notes()
		return res.fatal(ErrNoValidItems), ErrNoValidItems
	}

	style, locale, err := g.fetchDocuments(ctx, req)
	if err != nil {
		res.Notes = log.Notes()
		return res.fatal(err), err
	}

	citations, renderErrs, err := g.renderer.Render(ctx, style, locale, vr.Valid)
	if err != nil {
		res.Notes = log.Notes()
		return res.fatal(err), err
	}
	res.Errors = append(res.Errors, renderErrs...)

	res.Citations = citations
	res.Items = vr.Valid
	res.CitationColumn = assembleColumn(table, vr.Valid, citations)
	res.Notes = log.Notes()

	g.logger.Info("generation run complete",
		zap.String("run_id", res.RunID),
		zap.Int("rows", len(table.Rows)),
		zap.Int("rendered", len(citations)),
		zap.Int("errors", len(res.Errors)))

	return res, nil
}

// resolveTable produces the raw-row table for the run: either the caller's
// pre-parsed table, or the CSV export of the given sheet URL.
func (g *Generator) resolveTable(ctx context.Context, req Request) (*ingest.Table, error) {
	if req.Table != nil {
		return req.Table, nil
	}
	if strings.TrimSpace(req.SheetURL) == "" {
		return nil, ErrNoInput
	}

	exportURL, err := ingest.SheetExportURL(req.SheetURL)
	if err != nil {
		return nil, err
	}

	body, err := g.fetcher.Fetch(ctx, "sheet CSV export", exportURL)
	if err != nil {
		return nil, err
	}

	table, err := ingest.ReadCSV(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing sheet export: %w", err)
	}
	return table, nil
}

// fetchDocuments retrieves style and locale concurrently. Both must succeed
// before rendering begins; the first failure aborts the run with that
// fetch's error.
func (g *Generator) fetchDocuments(ctx context.Context, req Request) (style, locale string, err error) {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if req.CustomStyle != "" {
			style = req.CustomStyle
			return nil
		}
		var ferr error
		style, ferr = g.fetcher.Fetch(ctx, "style document", req.StyleURL)
		return ferr
	})

	eg.Go(func() error {
		var ferr error
		locale, ferr = g.fetcher.Fetch(ctx, "locale document", req.LocaleURL)
		return ferr
	})

	if err := eg.Wait(); err != nil {
		return "", "", err
	}
	return style, locale, nil
}
