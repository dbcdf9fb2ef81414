package grammar

import (
	"fmt"
	"strings"
)

// primitiveInfo describes how a primitive shape lowers to Go: its field
// type, and the wire package functions that encode/decode a bare value of
// that type (signature (T, []byte) []byte / ([]byte) (T, []byte, error)).
type primitiveInfo struct {
	goType  string
	encode  string
	decode  string
}

var primitivesByKind = map[BoundSymbolKind]primitiveInfo{
	ShapeName: {"string", "wire.EncodeName", "wire.DecodeName"},
	ShapeU8:   {"byte", "wire.EncodeByte", "wire.DecodeByte"},
	ShapeU32:  {"uint32", "wire.EncodeU32", "wire.DecodeU32"},
	ShapeI32:  {"int32", "wire.EncodeI32", "wire.DecodeI32"},
	ShapeU64:  {"uint64", "wire.EncodeU64", "wire.DecodeU64"},
	ShapeI64:  {"int64", "wire.EncodeI64", "wire.DecodeI64"},
	ShapeF32:  {"float32", "wire.EncodeF32", "wire.DecodeF32"},
	ShapeF64:  {"float64", "wire.EncodeF64", "wire.DecodeF64"},
}

// primitivesByName maps the DSL's primitive keyword to the same info, for
// resolving a flat type reference (a Vec/Repeated element, or the target of
// a plain Type shape) that might name a primitive instead of a non-terminal.
var primitivesByName = map[string]primitiveInfo{
	"name": primitivesByKind[ShapeName],
	"u8":   primitivesByKind[ShapeU8],
	"u32":  primitivesByKind[ShapeU32],
	"i32":  primitivesByKind[ShapeI32],
	"u64":  primitivesByKind[ShapeU64],
	"i64":  primitivesByKind[ShapeI64],
	"f32":  primitivesByKind[ShapeF32],
	"f64":  primitivesByKind[ShapeF64],
}

// typeRefCodec resolves a flat identifier -- either a primitive keyword or
// the name of a declared non-terminal -- to its Go type and the two
// function-valued expressions that encode/decode a bare value of that type.
// For a non-terminal, the generated type's own Encode method and DecodeX
// function serve as those expressions directly (a Go method expression
// T.Encode has exactly the func(T, []byte) []byte shape this package
// standardizes on).
func typeRefCodec(name string) (goType, encodeExpr, decodeExpr string) {
	if p, ok := primitivesByName[name]; ok {
		return p.goType, p.encode, p.decode
	}
	return name, name + ".Encode", "Decode" + name
}

// shapeGoType returns the Go type a bound symbol's shape lowers to.
func shapeGoType(shape *BoundSymbol) string {
	switch shape.Kind {
	case ShapeVec:
		elemType, _, _ := typeRefCodec(shape.Elem)
		return "[]" + elemType
	case ShapeRepeated:
		elemType, _, _ := typeRefCodec(shape.Elem)
		return "wire.Repeated[" + elemType + "]"
	case ShapeSized:
		return "wire.Sized[" + shapeGoType(shape.Inner) + "]"
	case ShapeType:
		goType, _, _ := typeRefCodec(shape.Type)
		return goType
	default:
		info, ok := primitivesByKind[shape.Kind]
		if !ok {
			panic("grammar: unhandled shape kind in shapeGoType")
		}
		return info.goType
	}
}

// shapeCodec returns the Go type and the two codec expressions for any
// shape, flat or composite. For a composite shape (Vec, Repeated, Sized)
// the expressions are inline func literals built around the element or
// inner shape's own codec, so the recursion bottoms out at a flat
// identifier's direct function reference.
func shapeCodec(shape *BoundSymbol) (goType, encodeExpr, decodeExpr string) {
	switch shape.Kind {
	case ShapeVec:
		elemType, elemEnc, elemDec := typeRefCodec(shape.Elem)
		goType = "[]" + elemType
		encodeExpr = fmt.Sprintf("func(v %s, buf []byte) []byte { return wire.EncodeVec(v, buf, %s) }", goType, elemEnc)
		decodeExpr = fmt.Sprintf("func(buf []byte) (%s, []byte, error) { return wire.DecodeVec(buf, %s) }", goType, elemDec)
	case ShapeRepeated:
		elemType, elemEnc, elemDec := typeRefCodec(shape.Elem)
		goType = fmt.Sprintf("wire.Repeated[%s]", elemType)
		encodeExpr = fmt.Sprintf("func(v %s, buf []byte) []byte { return wire.EncodeRepeated(v, buf, %s) }", goType, elemEnc)
		decodeExpr = fmt.Sprintf("func(buf []byte) (%s, []byte, error) { v, rest := wire.DecodeRepeated(buf, %s); return v, rest, nil }", goType, elemDec)
	case ShapeSized:
		innerType, innerEnc, innerDec := shapeCodec(shape.Inner)
		goType = fmt.Sprintf("wire.Sized[%s]", innerType)
		encodeExpr = fmt.Sprintf("func(v %s, buf []byte) []byte { return wire.EncodeSized(v, buf, %s) }", goType, innerEnc)
		decodeExpr = fmt.Sprintf("func(buf []byte) (%s, []byte, error) { return wire.DecodeSized(buf, %s) }", goType, innerDec)
	case ShapeType:
		goType, encodeExpr, decodeExpr = typeRefCodec(shape.Type)
	default:
		info, ok := primitivesByKind[shape.Kind]
		if !ok {
			panic("grammar: unhandled shape kind in shapeCodec")
		}
		goType, encodeExpr, decodeExpr = info.goType, info.encode, info.decode
	}
	return
}

// exportedFieldName turns a DSL field name (already a valid lowercase Go
// identifier, e.g. "import_name", "else_") into an exported struct field
// name by splitting on underscores and title-casing each part.
func exportedFieldName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "Field"
	}
	return b.String()
}

// variantTypeName builds the Go type name for one production of a
// multi-production non-terminal: the non-terminal's own name prefixed onto
// the production's RHS tag, so that e.g. Section's "Custom" production
// becomes SectionCustom rather than colliding with the unrelated Custom
// non-terminal.
func variantTypeName(nt *NonTerminal, production *Production) string {
	return nt.Name + production.RHS
}

// Generate walks a validated Grammar and returns the Go source text of one
// file defining, per non-terminal, an AST type (a struct for a lone
// production, an interface plus one struct per variant for several) and its
// matching Encode method / DecodeX function (spec §4.3).
//
// Generate does not call Validate itself; callers are expected to validate
// first (spec §4.3's guarantees -- unique discriminators, resolved type
// references -- are preconditions, not something codegen re-derives).
func Generate(g *Grammar, packageName string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by wasmgen from a grammar description. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)
	fmt.Fprintf(&b, "import (\n\t\"bytes\"\n\t\"fmt\"\n\n\t\"github.com/xyproto/wasmsyntax/wire\"\n)\n\n")

	for _, nt := range g.NonTerminals {
		if len(nt.Productions) == 1 {
			generateRecord(&b, nt, nt.Productions[0])
		} else {
			generateUnion(&b, nt)
		}
	}

	return b.String(), nil
}

func generateRecord(b *strings.Builder, nt *NonTerminal, production *Production) {
	fields := production.Fields()

	fmt.Fprintf(b, "// %s is generated from the %q production.\n", nt.Name, production.RHS)
	fmt.Fprintf(b, "type %s struct {\n", nt.Name)
	for _, f := range fields {
		fmt.Fprintf(b, "\t%s %s\n", exportedFieldName(f.Name), shapeGoType(f))
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "func (v %s) Encode(buf []byte) []byte {\n", nt.Name)
	emitSymbolsEncode(b, production.Symbols, func(f *BoundSymbol) string {
		return "v." + exportedFieldName(f.Name)
	})
	fmt.Fprintf(b, "\treturn buf\n}\n\n")

	fmt.Fprintf(b, "func Decode%s(buf []byte) (%s, []byte, error) {\n", nt.Name, nt.Name)
	fmt.Fprintf(b, "\tvar zero %s\n", nt.Name)
	if len(fields) > 0 {
		fmt.Fprintf(b, "\tvar err error\n")
	}
	emitSymbolsDecode(b, production.Symbols, nt.Name, "zero")
	fmt.Fprintf(b, "\treturn %s{\n", nt.Name)
	for _, f := range fields {
		fmt.Fprintf(b, "\t\t%s: %s,\n", exportedFieldName(f.Name), f.Name)
	}
	fmt.Fprintf(b, "\t}, buf, nil\n}\n\n")
}

func generateUnion(b *strings.Builder, nt *NonTerminal) {
	marker := "is" + nt.Name

	fmt.Fprintf(b, "// %s is a tagged union generated from %d productions.\n", nt.Name, len(nt.Productions))
	fmt.Fprintf(b, "type %s interface {\n\t%s()\n\tEncode(buf []byte) []byte\n}\n\n", nt.Name, marker)

	for _, production := range nt.Productions {
		typeName := variantTypeName(nt, production)
		fields := production.Fields()

		fmt.Fprintf(b, "// %s is the %q variant of %s.\n", typeName, production.RHS, nt.Name)
		fmt.Fprintf(b, "type %s struct {\n", typeName)
		for _, f := range fields {
			fmt.Fprintf(b, "\t%s %s\n", exportedFieldName(f.Name), shapeGoType(f))
		}
		fmt.Fprintf(b, "}\n\n")

		fmt.Fprintf(b, "func (%s) %s() {}\n\n", typeName, marker)

		fmt.Fprintf(b, "func (v %s) Encode(buf []byte) []byte {\n", typeName)
		emitSymbolsEncode(b, production.Symbols, func(f *BoundSymbol) string {
			return "v." + exportedFieldName(f.Name)
		})
		fmt.Fprintf(b, "\treturn buf\n}\n\n")
	}

	generateUnionDecoder(b, nt)
}

func generateUnionDecoder(b *strings.Builder, nt *NonTerminal) {
	order := dispatchOrder(nt.Productions)
	sorted := make([]*Production, len(order))
	for i, idx := range order {
		sorted[i] = nt.Productions[idx]
	}
	fmt.Fprintf(b, "func Decode%s(buf []byte) (%s, []byte, error) {\n", nt.Name, nt.Name)
	for _, production := range sorted {
		typeName := variantTypeName(nt, production)
		prefix := production.LiteralPrefix()
		skip := production.LiteralPrefixSymbolCount()
		remaining := production.Symbols[skip:]

		hasRemainingFields := false
		for _, sym := range remaining {
			if sym.Bound != nil {
				hasRemainingFields = true
				break
			}
		}

		fmt.Fprintf(b, "\tif len(buf) >= %d && bytes.Equal(buf[:%d], %s) {\n", len(prefix), len(prefix), goByteSliceLiteral(prefix))
		fmt.Fprintf(b, "\t\trest := buf[%d:]\n", len(prefix))
		if hasRemainingFields {
			fmt.Fprintf(b, "\t\tvar err error\n")
		}
		emitSymbolsDecodeInto(b, remaining, nt.Name, "nil", "rest")
		fmt.Fprintf(b, "\t\treturn %s{\n", typeName)
		for _, f := range production.Fields() {
			fmt.Fprintf(b, "\t\t\t%s: %s,\n", exportedFieldName(f.Name), f.Name)
		}
		fmt.Fprintf(b, "\t\t}, rest, nil\n\t}\n")
	}
	fmt.Fprintf(b, "\treturn nil, nil, fmt.Errorf(\"%%w: %s: no production matches\", wire.ErrDecode)\n", nt.Name)
	fmt.Fprintf(b, "}\n\n")
}

// emitSymbolsEncode writes, for each symbol in order, a statement appending
// its bytes to buf. fieldExpr maps a bound symbol to the Go expression
// holding its value (v.Field for a record/variant method body).
func emitSymbolsEncode(b *strings.Builder, symbols []Symbol, fieldExpr func(*BoundSymbol) string) {
	for _, sym := range symbols {
		if sym.Literal != nil {
			fmt.Fprintf(b, "\tbuf = append(buf, %s...)\n", goByteSliceLiteral(sym.Literal.Bytes()))
			continue
		}
		f := sym.Bound
		expr := fieldExpr(f)
		switch f.Kind {
		case ShapeVec:
			_, enc, _ := typeRefCodec(f.Elem)
			fmt.Fprintf(b, "\tbuf = wire.EncodeVec(%s, buf, %s)\n", expr, enc)
		case ShapeRepeated:
			_, enc, _ := typeRefCodec(f.Elem)
			fmt.Fprintf(b, "\tbuf = wire.EncodeRepeated(%s, buf, %s)\n", expr, enc)
		case ShapeSized:
			_, innerEnc, _ := shapeCodec(f.Inner)
			fmt.Fprintf(b, "\tbuf = wire.EncodeSized(%s, buf, %s)\n", expr, innerEnc)
		case ShapeType:
			_, enc, _ := typeRefCodec(f.Type)
			fmt.Fprintf(b, "\tbuf = %s(%s, buf)\n", enc, expr)
		default:
			info, ok := primitivesByKind[f.Kind]
			if !ok {
				panic("grammar: unhandled shape kind in emitSymbolsEncode")
			}
			fmt.Fprintf(b, "\tbuf = %s(%s, buf)\n", info.encode, expr)
		}
	}
}

// emitSymbolsDecode writes decode statements for each symbol in order,
// reading from and reassigning the function's own "buf" parameter, used by
// record decoders (which own an unambiguous "buf" identifier throughout).
func emitSymbolsDecode(b *strings.Builder, symbols []Symbol, ntName, zeroExpr string) {
	emitSymbolsDecodeInto(b, symbols, ntName, zeroExpr, "buf")
}

// emitSymbolsDecodeInto is the general form: bufVar names the variable
// holding the remaining input, reassigned after each symbol is consumed.
// Used directly by record decoders (bufVar == "buf", the function
// parameter) and by union variant decoders (bufVar == "rest", a local
// introduced after the literal-prefix byte match already consumed some
// input, leaving the function's own "buf" parameter untouched). A failure
// inside a matched branch returns the error; the remaining candidates are
// not tried.
func emitSymbolsDecodeInto(b *strings.Builder, symbols []Symbol, ntName, zeroExpr, bufVar string) {
	for _, sym := range symbols {
		if sym.Literal != nil {
			decodeFn, wantText := literalDecodeAndValue(sym.Literal)
			fmt.Fprintf(b, "\t\t{\n")
			fmt.Fprintf(b, "\t\t\tv, next, decErr := %s(%s)\n", decodeFn, bufVar)
			fmt.Fprintf(b, "\t\t\tif decErr != nil {\n\t\t\t\treturn %s, nil, decErr\n\t\t\t}\n", zeroExpr)
			fmt.Fprintf(b, "\t\t\tif v != %s {\n", wantText)
			fmt.Fprintf(b, "\t\t\t\treturn %s, nil, fmt.Errorf(\"%%w: %s: expected literal %s, found %%v\", wire.ErrDecode, v)\n", zeroExpr, ntName, wantText)
			fmt.Fprintf(b, "\t\t\t}\n")
			fmt.Fprintf(b, "\t\t\t%s = next\n", bufVar)
			fmt.Fprintf(b, "\t\t}\n")
			continue
		}
		f := sym.Bound
		goType, _, decodeExpr := shapeCodec(f)
		fmt.Fprintf(b, "\t\tvar %s %s\n", f.Name, goType)
		fmt.Fprintf(b, "\t\t%s, %s, err = %s(%s)\n", f.Name, bufVar, decodeExpr, bufVar)
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn %s, nil, err\n\t\t}\n", zeroExpr)
	}
}

// literalDecodeAndValue returns the wire decode function and the literal
// Go expression to compare its result against, for a Literal symbol of any
// width/signedness -- not every literal is a single raw byte (e.g. the
// 0xFC-prefixed instructions' opcode-extension word is a u32 LEB literal).
func literalDecodeAndValue(lit *Literal) (decodeFn, valueExpr string) {
	switch lit.Kind {
	case LitU8:
		return "wire.DecodeByte", goByteLiteral(lit.U8)
	case LitU32:
		return "wire.DecodeU32", fmt.Sprintf("uint32(%d)", lit.U32)
	case LitI32:
		return "wire.DecodeI32", fmt.Sprintf("int32(%d)", lit.I32)
	case LitU64:
		return "wire.DecodeU64", fmt.Sprintf("uint64(%d)", lit.U64)
	case LitI64:
		return "wire.DecodeI64", fmt.Sprintf("int64(%d)", lit.I64)
	default:
		panic("grammar: unhandled literal kind in literalDecodeAndValue")
	}
}

func goByteLiteral(v byte) string {
	return fmt.Sprintf("0x%02X", v)
}

func goByteSliceLiteral(bs []byte) string {
	parts := make([]string, len(bs))
	for i, v := range bs {
		parts[i] = goByteLiteral(v)
	}
	return "[]byte{" + strings.Join(parts, ", ") + "}"
}
