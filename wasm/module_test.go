package wasm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xyproto/wasmsyntax/wasmgrammar"
	"github.com/xyproto/wasmsyntax/wire"
)

func TestEmbeddedGrammarLoadsAndValidates(t *testing.T) {
	if _, err := wasmgrammar.Load(); err != nil {
		t.Fatalf("wasmgrammar.Load() failed, union discriminators not well-formed: %v", err)
	}
}

func TestModuleRoundTripEmpty(t *testing.T) {
	m := Module{Sections: wire.Repeated[Section]{}}
	buf := EncodeModuleBytes(m)
	want := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf, want) {
		t.Fatalf("empty module encoding = %x, want %x", buf, want)
	}
	got, err := DecodeModuleBytes(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.Sections.Items) != 0 {
		t.Fatalf("expected no sections, got %d", len(got.Sections.Items))
	}
}

func TestModuleRoundTripWithCustomSection(t *testing.T) {
	custom := SectionCustomSec{
		C: wire.Sized[Custom]{Value: Custom{Nm: "name", Bytes: wire.Repeated[byte]{Items: []byte{0x01, 0x00, 0x00}}}},
	}
	m := Module{Sections: wire.Repeated[Section]{Items: []Section{custom}}}
	buf := EncodeModuleBytes(m)

	// magic + version, then a single custom section: id 0x00, size, then
	// name "name" (len-prefixed) followed by the raw payload bytes.
	want := []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		0x00,
		0x08,
		0x04, 0x6E, 0x61, 0x6D, 0x65,
		0x01, 0x00, 0x00,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("custom-section module encoding = %x, want %x", buf, want)
	}

	decoded, err := DecodeModuleBytes(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.Sections.Items) != 1 {
		t.Fatalf("expected 1 section, got %d", len(decoded.Sections.Items))
	}
	got, ok := decoded.Sections.Items[0].(SectionCustomSec)
	if !ok {
		t.Fatalf("expected SectionCustomSec, got %T", decoded.Sections.Items[0])
	}
	if got.C.Value.Nm != "name" {
		t.Errorf("custom section name = %q, want %q", got.C.Value.Nm, "name")
	}
	if !bytes.Equal(got.C.Value.Bytes.Items, []byte{0x01, 0x00, 0x00}) {
		t.Errorf("custom section bytes = %x, want 01 00 00", got.C.Value.Bytes.Items)
	}

	reencoded := EncodeModuleBytes(decoded)
	if !bytes.Equal(reencoded, buf) {
		t.Fatalf("re-encoding mismatch: got %x, want %x", reencoded, buf)
	}
}

func TestModuleRejectsBadMagic(t *testing.T) {
	buf := []byte{0x00, 0x61, 0x73, 0x6E, 0x01, 0x00, 0x00, 0x00}
	if _, err := DecodeModuleBytes(buf); !errors.Is(err, wire.ErrDecode) {
		t.Fatalf("expected bad magic to be rejected, got %v", err)
	}
}

func TestModuleRejectsBadVersion(t *testing.T) {
	buf := []byte{0x00, 0x61, 0x73, 0x6D, 0x02, 0x00, 0x00, 0x00}
	if _, err := DecodeModuleBytes(buf); !errors.Is(err, wire.ErrDecode) {
		t.Fatalf("expected bad version to be rejected, got %v", err)
	}
}

func TestModuleRejectsTrailingBytes(t *testing.T) {
	buf := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, 0xFF}
	if _, err := DecodeModuleBytes(buf); !errors.Is(err, wire.ErrDecode) {
		t.Fatalf("expected trailing byte to be rejected, got %v", err)
	}
}

func TestModuleRejectsEmptyBuffer(t *testing.T) {
	if _, err := DecodeModuleBytes(nil); !errors.Is(err, wire.ErrDecode) {
		t.Fatalf("expected empty buffer to be rejected, got %v", err)
	}
}

func TestEncodeDecodeInverseFuncType(t *testing.T) {
	ft := FuncType{
		R1: []ValType{ValTypeI32{}, ValTypeI64{}},
		R2: []ValType{ValTypeF64{}},
	}
	buf := ft.Encode(nil)
	got, rest, err := DecodeFuncType(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected no residual bytes, got %x", rest)
	}
	if len(got.R1) != 2 || len(got.R2) != 1 {
		t.Fatalf("unexpected shape: %+v", got)
	}
}
