// Package wasmgrammar embeds the grammar description that wasm/zz_generated.go
// is derived from, so cmd/wasmgen can regenerate it without a second copy of
// the grammar text living outside version control.
package wasmgrammar

import (
	_ "embed"

	"github.com/xyproto/wasmsyntax/grammar"
)

//go:embed wasm.grammar
var Source string

// Load parses and validates the embedded grammar, returning the in-memory
// model cmd/wasmgen feeds to grammar.Generate.
func Load() (*grammar.Grammar, error) {
	g, err := grammar.Parse(Source)
	if err != nil {
		return nil, err
	}
	if err := grammar.Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}
