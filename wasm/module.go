// Package wasm holds the generated WebAssembly module AST
// (zz_generated.go) plus the hand-written driver-facing helpers around it:
// whole-module decode/encode with trailing-byte enforcement, and a
// structural dumper for diagnostics.
package wasm

//go:generate go run ../cmd/wasmgen -o zz_generated.go

import (
	"fmt"

	"github.com/xyproto/wasmsyntax/wire"
)

// DecodeModuleBytes decodes a complete module from buf, failing if any bytes
// remain after the module's sections are consumed.
func DecodeModuleBytes(buf []byte) (Module, error) {
	m, rest, err := DecodeModule(buf)
	if err != nil {
		return Module{}, err
	}
	if len(rest) != 0 {
		return Module{}, fmt.Errorf("%w: module: %d trailing byte(s) after sections", wire.ErrDecode, len(rest))
	}
	return m, nil
}

// EncodeModuleBytes serialises m into a freshly allocated byte slice.
func EncodeModuleBytes(m Module) []byte {
	return m.Encode(nil)
}
