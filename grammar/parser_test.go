package grammar

import (
	"strings"
	"testing"
)

func TestParseSimpleRecord(t *testing.T) {
	src := `
FuncType {
	0x60 r1:vec(ValType) r2:vec(ValType) = FuncType,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(g.NonTerminals) != 1 {
		t.Fatalf("expected 1 non-terminal, got %d", len(g.NonTerminals))
	}
	nt := g.NonTerminals[0]
	if nt.Name != "FuncType" || len(nt.Productions) != 1 {
		t.Fatalf("unexpected non-terminal: %+v", nt)
	}
	p := nt.Productions[0]
	if len(p.Symbols) != 3 {
		t.Fatalf("expected 3 symbols, got %d", len(p.Symbols))
	}
	if p.Symbols[0].Literal == nil || p.Symbols[0].Literal.U8 != 0x60 {
		t.Errorf("expected leading literal 0x60, got %+v", p.Symbols[0])
	}
	fields := p.Fields()
	if len(fields) != 2 || fields[0].Name != "r1" || fields[1].Name != "r2" {
		t.Errorf("unexpected fields: %+v", fields)
	}
	if fields[0].Kind != ShapeVec || fields[0].Elem != "ValType" {
		t.Errorf("unexpected field shape: %+v", fields[0])
	}
}

func TestParseUnion(t *testing.T) {
	src := `
Mut {
	0x00 = Const,
	0x01 = Mut,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	nt := g.NonTerminals[0]
	if len(nt.Productions) != 2 {
		t.Fatalf("expected 2 productions, got %d", len(nt.Productions))
	}
	if nt.Productions[0].RHS != "Const" || nt.Productions[1].RHS != "Mut" {
		t.Errorf("unexpected RHS tags: %q, %q", nt.Productions[0].RHS, nt.Productions[1].RHS)
	}
}

func TestParseShapes(t *testing.T) {
	src := `
Limits {
	0x00 n:u32 = LimitsMin,
	0x01 n:u32 m:u32 = LimitsMinMax,
}
Custom {
	name:name bytes:repeated(u8) = Custom,
}
Code {
	code:sized(Func) = Code,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	custom := g.Find("Custom")
	if custom == nil {
		t.Fatal("Custom not found")
	}
	fields := custom.Productions[0].Fields()
	if fields[0].Kind != ShapeName {
		t.Errorf("expected name field to be ShapeName, got %v", fields[0].Kind)
	}
	if fields[1].Kind != ShapeRepeated || fields[1].Elem != "u8" {
		t.Errorf("unexpected bytes field: %+v", fields[1])
	}

	code := g.Find("Code")
	codeField := code.Productions[0].Fields()[0]
	if codeField.Kind != ShapeSized || codeField.Inner == nil || codeField.Inner.Kind != ShapeType || codeField.Inner.Type != "Func" {
		t.Errorf("unexpected sized field: %+v", codeField)
	}
}

func TestParseRejectsEmptyNonTerminal(t *testing.T) {
	_, err := Parse("Foo {\n}\n")
	if err == nil {
		t.Fatal("expected error for empty non-terminal")
	}
	if !strings.Contains(err.Error(), "at least one production") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestParseRejectsOverlongU8Literal(t *testing.T) {
	_, err := Parse("Foo {\n\t300 x:u32 = Foo,\n}\n")
	if err == nil {
		t.Fatal("expected error for overlong u8 literal")
	}
}

func TestParseTypedLiteral(t *testing.T) {
	src := `
Foo {
	0xFC 8:u32 x:u32 0:u32 = MemoryInit,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	p := g.NonTerminals[0].Productions[0]
	if len(p.Symbols) != 4 {
		t.Fatalf("expected 4 symbols, got %d", len(p.Symbols))
	}
	if p.Symbols[1].Literal == nil || p.Symbols[1].Literal.Kind != LitU32 || p.Symbols[1].Literal.U32 != 8 {
		t.Errorf("unexpected second symbol: %+v", p.Symbols[1])
	}
	if p.LiteralPrefixSymbolCount() != 2 {
		t.Errorf("expected prefix symbol count 2, got %d", p.LiteralPrefixSymbolCount())
	}
	if len(p.LiteralPrefix()) != 2 {
		t.Errorf("expected prefix byte length 2, got %d", len(p.LiteralPrefix()))
	}
}

func TestValidateRejectsUndeclaredReference(t *testing.T) {
	src := `
Foo {
	x:Bar = Foo,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Validate(g); err == nil {
		t.Fatal("expected validation error for undeclared non-terminal Bar")
	}
}

func TestCheckDiscriminatorsRejectsAmbiguousOrder(t *testing.T) {
	src := `
Foo {
	0xFC x:u32 = B,
	0xFC 8:u32 x:u32 = A,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = CheckDiscriminators(g)
	if err == nil {
		t.Fatal("expected error: shorter prefix declared before the longer prefix it's a proper prefix of")
	}
	if !strings.Contains(err.Error(), "must come first") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckDiscriminatorsAcceptsLongerFirst(t *testing.T) {
	src := `
Foo {
	0xFC 8:u32 x:u32 = A,
	0xFC x:u32 = B,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := CheckDiscriminators(g); err != nil {
		t.Fatalf("expected longer-prefix-first to be accepted, got: %v", err)
	}
}

func TestCheckDiscriminatorsAppliesPerNonTerminalIndependently(t *testing.T) {
	src := `
Foo {
	0xFC 8:u32 x:u32 = A,
	0xFC x:u32 = B,
}
Bar {
	0xFC x:u32 = B,
	0xFC 8:u32 = A,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = CheckDiscriminators(g)
	if err == nil {
		t.Fatal("expected error: Bar declares the shorter prefix first even though Foo is fine")
	}
	if !strings.Contains(err.Error(), "Bar") {
		t.Errorf("expected error to name Bar, got: %v", err)
	}
}

func TestCheckDiscriminatorsRejectsDuplicatePrefix(t *testing.T) {
	src := `
Foo {
	0x00 = A,
	0x00 = B,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := CheckDiscriminators(g); err == nil {
		t.Fatal("expected error for duplicate literal prefixes")
	}
}

func TestCheckDiscriminatorsRejectsNoLeadingLiteral(t *testing.T) {
	src := `
Foo {
	x:u32 = A,
	y:u32 = B,
}
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := CheckDiscriminators(g); err == nil {
		t.Fatal("expected error: neither production can discriminate without a leading literal")
	}
}
