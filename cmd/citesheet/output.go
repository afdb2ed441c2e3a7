package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/refbuild/citesheet/internal/pipeline"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// printResultHuman prints a generation result in human-readable form.
func printResultHuman(res *pipeline.GenerationResult) {
	for i, c := range res.Citations {
		fmt.Printf("%d. %s\n", i+1, c)
	}
	if len(res.Warnings) > 0 {
		fmt.Println()
		for _, w := range res.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
	}
	if len(res.Errors) > 0 {
		fmt.Println()
		for _, e := range res.Errors {
			fmt.Printf("error: %s\n", e)
		}
	}
	if verbose {
		for _, n := range res.Notes {
			fmt.Printf("note: %s\n", n)
		}
	}
}
