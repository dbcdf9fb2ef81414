// Package grammar implements the front-end and code generator for the
// declarative binary-grammar DSL described in spec §4.2/§4.3: it parses
// grammar text into an in-memory model (this file), and turns that model
// into Go source text defining one AST type plus matching Encode/Decode
// routines per non-terminal (codegen.go).
package grammar

import "github.com/xyproto/wasmsyntax/wire"

// Grammar is an ordered sequence of non-terminals.
type Grammar struct {
	NonTerminals []*NonTerminal
}

// Find returns the non-terminal with the given name, or nil.
func (g *Grammar) Find(name string) *NonTerminal {
	for _, nt := range g.NonTerminals {
		if nt.Name == name {
			return nt
		}
	}
	return nil
}

// NonTerminal is a named grammar rule with a non-empty ordered sequence of
// productions. A single production lowers to a record; several lower to a
// tagged union (spec §3.2).
type NonTerminal struct {
	Name        string
	Productions []*Production
}

// Production is one alternative of a non-terminal: a non-empty ordered
// sequence of symbols, and a right-hand-side tag naming the record (for a
// lone production) or the variant (for one of several).
type Production struct {
	Symbols []Symbol
	RHS     string
}

// Fields returns the production's bound symbols in order, skipping
// literals (literals contribute nothing to the AST record/variant).
func (p *Production) Fields() []*BoundSymbol {
	var fields []*BoundSymbol
	for _, sym := range p.Symbols {
		if sym.Bound != nil {
			fields = append(fields, sym.Bound)
		}
	}
	return fields
}

// LiteralPrefixSymbolCount returns how many leading symbols make up the
// literal prefix, i.e. the count LiteralPrefix's bytes were derived from.
// Kept distinct from len(LiteralPrefix()) because a literal symbol's
// canonical encoding can be more than one byte (e.g. a multi-byte LEB128
// literal), so the two counts are not interchangeable.
func (p *Production) LiteralPrefixSymbolCount() int {
	n := 0
	for _, sym := range p.Symbols {
		if sym.Literal == nil {
			break
		}
		n++
	}
	return n
}

// LiteralPrefix returns the canonical byte encoding of the production's
// leading run of Literal symbols, i.e. the bytes up to (but not including)
// its first bound symbol. Used by the generator to build the dispatch that
// distinguishes a non-terminal's productions (spec's "literal prefix").
func (p *Production) LiteralPrefix() []byte {
	var prefix []byte
	for _, sym := range p.Symbols {
		if sym.Literal == nil {
			break
		}
		prefix = append(prefix, sym.Literal.Bytes()...)
	}
	return prefix
}

// Symbol is either a Literal (an expected byte/integer in the stream) or a
// Bound symbol (a named AST field). Exactly one of the two fields is set.
type Symbol struct {
	Literal *Literal
	Bound   *BoundSymbol
}

// LiteralKind identifies the width and signedness of a Literal symbol.
type LiteralKind int

const (
	LitU8 LiteralKind = iota
	LitU32
	LitI32
	LitU64
	LitI64
)

func (k LiteralKind) String() string {
	switch k {
	case LitU8:
		return "u8"
	case LitU32:
		return "u32"
	case LitI32:
		return "i32"
	case LitU64:
		return "u64"
	case LitI64:
		return "i64"
	default:
		return "unknown"
	}
}

// Literal is a tagged integer expected verbatim in the stream. U8 encodes
// as a single raw byte; the others as LEB128 (signed or unsigned per Kind).
type Literal struct {
	Kind LiteralKind
	U8   byte
	U32  uint32
	I32  int32
	U64  uint64
	I64  int64
}

// Bytes returns the literal's canonical byte encoding.
func (l Literal) Bytes() []byte {
	switch l.Kind {
	case LitU8:
		return []byte{l.U8}
	case LitU32:
		return wire.EncodeU32(l.U32, nil)
	case LitI32:
		return wire.EncodeI32(l.I32, nil)
	case LitU64:
		return wire.EncodeU64(l.U64, nil)
	case LitI64:
		return wire.EncodeI64(l.I64, nil)
	default:
		panic("grammar: unknown literal kind")
	}
}

// BoundSymbolKind identifies the shape of a bound symbol, i.e. the
// semantic type of the AST field it denotes (spec §3.1).
type BoundSymbolKind int

const (
	// ShapeVec is a length-prefixed sequence of Elem.
	ShapeVec BoundSymbolKind = iota
	// ShapeRepeated is a greedy, no-prefix sequence of Elem.
	ShapeRepeated
	// ShapeSized is a byte-size-prefixed window around Inner.
	ShapeSized
	// ShapeName is a length-prefixed UTF-8 string.
	ShapeName
	// ShapeU8 through ShapeF64 are the other seven primitive carriers.
	ShapeU8
	ShapeU32
	ShapeI32
	ShapeU64
	ShapeI64
	ShapeF32
	ShapeF64
	// ShapeType is a reference to another declared non-terminal.
	ShapeType
)

// BoundSymbol is a symbol bound to a field name in the AST.
type BoundSymbol struct {
	Name string
	Kind BoundSymbolKind

	// Elem names the element non-terminal or primitive keyword for
	// ShapeVec/ShapeRepeated.
	Elem string
	// Inner is the nested shape for ShapeSized (recursively any shape).
	Inner *BoundSymbol
	// Type names the referenced non-terminal for ShapeType.
	Type string
}

// IsPrimitive reports whether the shape is one of the eight hand-written
// primitive carriers (spec §4.1), as opposed to a reference to a
// generated non-terminal type.
func (k BoundSymbolKind) IsPrimitive() bool {
	switch k {
	case ShapeU8, ShapeU32, ShapeI32, ShapeU64, ShapeI64, ShapeF32, ShapeF64, ShapeName:
		return true
	default:
		return false
	}
}
