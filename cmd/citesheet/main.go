// Package main provides the citesheet CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug logging to stderr
var verbose bool

func main() {
	// Optional .env for local overrides (style URL, citeproc binary).
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citesheet",
	Short: "Turn spreadsheet bibliographies into APA 7 citations",
	Long: `citesheet converts tabular bibliographic records (CSV, XLSX, or a
public Google Sheet) into APA 7th-edition reference citations.

Rows with loosely-labeled columns are normalized into structured citation
items, rendered through an external CSL engine, and written back as the
original table plus one appended citation column.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}
