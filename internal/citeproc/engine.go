// Package citeproc is the boundary to the external CSL rendering engine.
// The engine itself (style grammar, formatting algorithms) is an outside
// collaborator; this package only defines the capability interface the
// pipeline depends on, an implementation that drives an external citeproc
// binary, and the adapter that turns engine markup into plain text.
package citeproc

import (
	"context"
	"encoding/json"

	"github.com/refbuild/citesheet/internal/citation"
)

// Sys is the lookup context handed to an engine at construction: locale
// retrieval by language tag and item retrieval by canonical item ID. It
// mirrors the citeproc "sys" object so any conforming engine can be plugged
// in behind the Engine interface.
type Sys struct {
	RetrieveLocale func(lang string) string
	RetrieveItem   func(id string) (citation.Item, bool)
}

// Bibliography is the engine's output: opaque formatting metadata plus an
// ordered list of markup fragments, one per requested item ID, in request
// order.
type Bibliography struct {
	Meta    json.RawMessage
	Entries []string
}

// Engine is the capability interface for a CSL rendering engine. Engines
// are single-use: constructed with a style and lookup context, fed the
// ordered item IDs, then asked for the bibliography.
type Engine interface {
	// UpdateItems registers the ordered item IDs to be rendered. Every ID
	// must resolve through the Sys item callback.
	UpdateItems(ctx context.Context, ids []string) error

	// MakeBibliography renders the registered items.
	MakeBibliography(ctx context.Context) (*Bibliography, error)
}

// EngineFactory constructs an engine from a style document and lookup
// context. Injected into the Renderer so tests and alternative engines can
// swap implementations without touching the pipeline.
type EngineFactory func(style string, sys Sys) (Engine, error)
