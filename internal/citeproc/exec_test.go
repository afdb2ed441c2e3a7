package citeproc

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/refbuild/citesheet/internal/citation"
)

// writeBridgeScript creates a stand-in bridge binary that ignores stdin and
// prints a fixed [meta, entries] document.
func writeBridgeScript(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script bridge not available on windows")
	}

	path := filepath.Join(t.TempDir(), "citeproc-bridge")
	script := "#!/bin/sh\ncat > /dev/null\nprintf '%s' '" + output + "'\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing bridge script: %v", err)
	}
	return path
}

func TestExecEngine_MakeBibliography(t *testing.T) {
	bridge := writeBridgeScript(t, `[{"maxoffset": 0}, ["<div>Smith, J. (2020).</div>"]]`)

	factory := NewExecFactory(bridge)
	sys := Sys{
		RetrieveLocale: func(string) string { return "<locale/>" },
		RetrieveItem: func(id string) (citation.Item, bool) {
			return citation.Item{ID: id, Type: citation.TypeBook, Title: "T"}, true
		},
	}

	eng, err := factory(testStyle, sys)
	if err != nil {
		t.Fatalf("factory() error = %v", err)
	}
	if err := eng.UpdateItems(context.Background(), []string{"item_1"}); err != nil {
		t.Fatalf("UpdateItems() error = %v", err)
	}

	bib, err := eng.MakeBibliography(context.Background())
	if err != nil {
		t.Fatalf("MakeBibliography() error = %v", err)
	}
	if len(bib.Entries) != 1 || bib.Entries[0] != "<div>Smith, J. (2020).</div>" {
		t.Errorf("Entries = %v", bib.Entries)
	}
}

func TestExecEngine_BridgeFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script bridge not available on windows")
	}
	path := filepath.Join(t.TempDir(), "citeproc-bridge")
	script := "#!/bin/sh\necho 'style parse error' >&2\nexit 1\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing bridge script: %v", err)
	}

	eng, err := NewExecFactory(path)(testStyle, Sys{
		RetrieveLocale: func(string) string { return "" },
		RetrieveItem:   func(string) (citation.Item, bool) { return citation.Item{}, true },
	})
	if err != nil {
		t.Fatalf("factory() error = %v", err)
	}
	if err := eng.UpdateItems(context.Background(), []string{"item_1"}); err != nil {
		t.Fatalf("UpdateItems() error = %v", err)
	}

	if _, err := eng.MakeBibliography(context.Background()); err == nil {
		t.Fatal("MakeBibliography() expected error from failing bridge")
	}
}

func TestExecFactory_MissingBinary(t *testing.T) {
	factory := NewExecFactory(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := factory(testStyle, Sys{}); err == nil {
		t.Fatal("factory() expected error for missing binary")
	}
}

func TestExecEngine_UnknownItemID(t *testing.T) {
	bridge := writeBridgeScript(t, `[{}, []]`)
	eng, err := NewExecFactory(bridge)(testStyle, Sys{
		RetrieveLocale: func(string) string { return "" },
		RetrieveItem:   func(string) (citation.Item, bool) { return citation.Item{}, false },
	})
	if err != nil {
		t.Fatalf("factory() error = %v", err)
	}
	if err := eng.UpdateItems(context.Background(), []string{"item_9"}); err == nil {
		t.Fatal("UpdateItems() expected error for unknown id")
	}
}
