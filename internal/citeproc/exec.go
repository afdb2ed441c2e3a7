package citeproc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/refbuild/citesheet/internal/citation"
)

// DefaultBinary is the citeproc bridge binary looked up on PATH when no
// explicit path is configured.
const DefaultBinary = "citeproc"

// execInput is the JSON document written to the bridge binary's stdin.
type execInput struct {
	Style  string          `json:"style"`
	Locale string          `json:"locale"`
	Items  []citation.Item `json:"items"`
	IDs    []string        `json:"ids"`
}

// ExecEngine drives an external citeproc bridge process. The process reads
// one execInput JSON document on stdin and writes a two-element JSON array
// [meta, [fragment, ...]] on stdout, fragments in request order.
type ExecEngine struct {
	binary string
	style  string
	sys    Sys
	items  []citation.Item
	ids    []string
}

// NewExecFactory returns an EngineFactory that launches the given bridge
// binary per run. An empty binary falls back to DefaultBinary. Construction
// fails if the binary cannot be found on PATH.
func NewExecFactory(binary string) EngineFactory {
	return func(style string, sys Sys) (Engine, error) {
		if binary == "" {
			binary = DefaultBinary
		}
		path, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("citeproc binary %q not found: %w", binary, err)
		}
		return &ExecEngine{binary: path, style: style, sys: sys}, nil
	}
}

// UpdateItems resolves and registers the ordered item IDs through the Sys
// lookup context.
func (e *ExecEngine) UpdateItems(_ context.Context, ids []string) error {
	items := make([]citation.Item, 0, len(ids))
	for _, id := range ids {
		item, ok := e.sys.RetrieveItem(id)
		if !ok {
			return fmt.Errorf("no item registered for id %q", id)
		}
		items = append(items, item)
	}
	e.items = items
	e.ids = ids
	return nil
}

// MakeBibliography runs the bridge process over the registered items.
func (e *ExecEngine) MakeBibliography(ctx context.Context) (*Bibliography, error) {
	input := execInput{
		Style:  e.style,
		Locale: e.sys.RetrieveLocale("en-US"),
		Items:  e.items,
		IDs:    e.ids,
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encoding engine input: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.binary)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("citeproc: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("citeproc: %w", err)
	}

	return parseBibliography(stdout.Bytes())
}

// parseBibliography decodes the [meta, entries] array the bridge emits.
func parseBibliography(data []byte) (*Bibliography, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("decoding engine output: %w", err)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("engine output has %d elements, want [meta, entries]", len(parts))
	}

	var entries []string
	if err := json.Unmarshal(parts[1], &entries); err != nil {
		return nil, fmt.Errorf("decoding bibliography entries: %w", err)
	}

	return &Bibliography{Meta: parts[0], Entries: entries}, nil
}
