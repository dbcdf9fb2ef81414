package wasm

import (
	"strings"
	"testing"

	"github.com/xyproto/wasmsyntax/wire"
)

func TestDumpRendersNestedStructure(t *testing.T) {
	ft := FuncType{
		R1: []ValType{ValTypeI32{}},
		R2: []ValType{},
	}
	out := Dump(ft)
	if !strings.Contains(out, "FuncType{") {
		t.Errorf("expected FuncType{ in dump, got:\n%s", out)
	}
	if !strings.Contains(out, "ValTypeI32{}") {
		t.Errorf("expected ValTypeI32{} in dump, got:\n%s", out)
	}
}

func TestDumpUnwrapsRepeatedAndSized(t *testing.T) {
	c := Custom{Nm: "name", Bytes: wire.Repeated[byte]{Items: []byte{0x01, 0x02}}}
	out := Dump(c)
	if strings.Contains(out, "Items:") {
		t.Errorf("expected Repeated wrapper to be unwrapped, got:\n%s", out)
	}
	if !strings.Contains(out, "0x01") || !strings.Contains(out, "0x02") {
		t.Errorf("expected raw byte values in dump, got:\n%s", out)
	}
}

func TestCollectStatsCountsSectionKinds(t *testing.T) {
	m := Module{Sections: wire.Repeated[Section]{Items: []Section{
		SectionTypeSec{T: wire.Sized[[]FuncType]{Value: nil}},
		SectionTypeSec{T: wire.Sized[[]FuncType]{Value: nil}},
	}}}
	stats := CollectStats(m)
	if stats.Sections["wasm.SectionTypeSec"] != 2 {
		t.Errorf("expected 2 SectionTypeSec entries, got %+v", stats.Sections)
	}
	if !strings.Contains(stats.String(), "SectionTypeSec: 2") {
		t.Errorf("expected stats string to mention count, got %q", stats.String())
	}
}
