package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/refbuild/citesheet/internal/citeproc"
	"github.com/refbuild/citesheet/internal/config"
	"github.com/refbuild/citesheet/internal/export"
	"github.com/refbuild/citesheet/internal/fetch"
	"github.com/refbuild/citesheet/internal/ingest"
	"github.com/refbuild/citesheet/internal/pipeline"
)

var (
	genCSVPath    string
	genXLSXPath   string
	genSheetName  string
	genSheetURL   string
	genStylePath  string
	genOutPath    string
	genBibTeXPath string
	genNoCache    bool
)

func init() {
	generateCmd.Flags().StringVar(&genCSVPath, "csv", "", "Local CSV file to read")
	generateCmd.Flags().StringVar(&genXLSXPath, "xlsx", "", "Local XLSX workbook to read")
	generateCmd.Flags().StringVar(&genSheetName, "sheet-name", "", "Worksheet name inside the XLSX workbook (default: first sheet)")
	generateCmd.Flags().StringVar(&genSheetURL, "sheet-url", "", "Shareable Google Sheets URL to read")
	generateCmd.Flags().StringVar(&genStylePath, "style", "", "Custom CSL style file (default: fetch APA 7)")
	generateCmd.Flags().StringVarP(&genOutPath, "out", "o", "", "Write the augmented CSV to this path")
	generateCmd.Flags().StringVar(&genBibTeXPath, "bibtex", "", "Also write the validated items as BibTeX to this path")
	generateCmd.Flags().BoolVar(&genNoCache, "no-cache", false, "Bypass the fetched-document cache")
	generateCmd.MarkFlagsMutuallyExclusive("csv", "xlsx", "sheet-url")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate APA 7 citations from a spreadsheet",
	Long: `Generate APA 7 citations from tabular bibliographic records.

Usage:
  citesheet generate --csv refs.csv --out refs-cited.csv
  citesheet generate --xlsx refs.xlsx --sheet-name References
  citesheet generate --sheet-url "https://docs.google.com/spreadsheets/d/<ID>/edit"
  citesheet generate --csv refs.csv --style my-style.csl`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer logger.Sync()
	}

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if bin := os.Getenv("CITESHEET_CITEPROC"); bin != "" {
		cfg.CiteprocBinary = bin
	}

	req := pipeline.Request{
		SheetURL:  genSheetURL,
		StyleURL:  cfg.StyleURL,
		LocaleURL: cfg.LocaleURL,
	}

	if genCSVPath == "" && genXLSXPath == "" && genSheetURL == "" {
		exitWithError(ExitError, "%v", pipeline.ErrNoInput)
	}

	req.Table, err = loadLocalTable()
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if genStylePath != "" {
		style, err := os.ReadFile(genStylePath)
		if err != nil {
			exitWithError(ExitError, "reading style file: %v", err)
		}
		req.CustomStyle = string(style)
	}

	fetchOpts := []fetch.Option{fetch.WithLogger(logger)}
	if !genNoCache && cfg.CachePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0755); err == nil {
			if cache, err := fetch.OpenCache(cfg.CachePath); err == nil {
				defer cache.Close()
				fetchOpts = append(fetchOpts, fetch.WithCache(cache))
			} else {
				logger.Warn("opening document cache failed", zap.Error(err))
			}
		}
	}

	g := pipeline.NewGenerator(
		fetch.NewClient(fetchOpts...),
		citeproc.NewRenderer(citeproc.NewExecFactory(cfg.CiteprocBinary), logger),
		logger,
	)

	res, err := g.Run(context.Background(), req)
	if err != nil {
		code := ExitError
		switch {
		case errors.Is(err, pipeline.ErrNoValidItems):
			code = ExitDataError
		case errors.Is(err, fetch.ErrBadStatus), errors.Is(err, ingest.ErrNoSheetID):
			code = ExitFetchError
		case errors.Is(err, citeproc.ErrMalformedStyle):
			code = ExitDataError
		}
		exitWithError(code, "%v", err)
	}

	if genOutPath != "" {
		f, err := os.Create(genOutPath)
		if err != nil {
			exitWithError(ExitError, "creating output file: %v", err)
		}
		defer f.Close()
		if err := res.WriteCSV(f); err != nil {
			exitWithError(ExitError, "writing output CSV: %v", err)
		}
	}

	if genBibTeXPath != "" {
		if err := os.WriteFile(genBibTeXPath, []byte(export.ToBibTeXList(res.Items)), 0644); err != nil {
			exitWithError(ExitError, "writing BibTeX file: %v", err)
		}
	}

	if humanOutput {
		printResultHuman(res)
		return nil
	}
	return outputJSON(res)
}

// loadLocalTable reads the CSV or XLSX input file, if one was given.
func loadLocalTable() (*ingest.Table, error) {
	switch {
	case genCSVPath != "":
		f, err := os.Open(genCSVPath)
		if err != nil {
			return nil, fmt.Errorf("opening CSV: %w", err)
		}
		defer f.Close()
		return ingest.ReadCSV(f)
	case genXLSXPath != "":
		f, err := os.Open(genXLSXPath)
		if err != nil {
			return nil, fmt.Errorf("opening workbook: %w", err)
		}
		defer f.Close()
		return ingest.ReadXLSX(f, genSheetName)
	default:
		return nil, nil
	}
}
