package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestU32BoundaryCases(t *testing.T) {
	if got := EncodeU32(123, nil); !bytes.Equal(got, []byte{0x7B}) {
		t.Errorf("EncodeU32(123) = %x, want 7b", got)
	}
	v, rest, err := DecodeU32([]byte{0x7B})
	if err != nil || v != 123 || len(rest) != 0 {
		t.Errorf("DecodeU32(7b) = %v, %x, %v", v, rest, err)
	}

	if got := EncodeU32(101010, nil); !bytes.Equal(got, []byte{0x92, 0x95, 0x06}) {
		t.Errorf("EncodeU32(101010) = %x, want 92 95 06", got)
	}
	v, rest, err = DecodeU32([]byte{0x92, 0x95, 0x06, 0x12})
	if err != nil || v != 101010 || !bytes.Equal(rest, []byte{0x12}) {
		t.Errorf("DecodeU32 = %v, %x, %v", v, rest, err)
	}
}

func TestU32RejectsOverlong(t *testing.T) {
	// Fifth byte's 7-bit group must be at most 0x0F; 0x10 exceeds it.
	_, _, err := DecodeU32([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x10})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected overlong u32 to be rejected, got %v", err)
	}
}

func TestI32BoundaryCases(t *testing.T) {
	if got := EncodeI32(-123456, nil); !bytes.Equal(got, []byte{0xC0, 0xBB, 0x78}) {
		t.Errorf("EncodeI32(-123456) = %x, want c0 bb 78", got)
	}
	v, rest, err := DecodeI32([]byte{0xC0, 0xBB, 0x78})
	if err != nil || v != -123456 || len(rest) != 0 {
		t.Errorf("DecodeI32 = %v, %x, %v", v, rest, err)
	}
}

func TestI32SignedRoundTrip(t *testing.T) {
	values := []int32{math.MinInt32, math.MinInt32 + 1, -1, 0, 1, math.MaxInt32 - 1, math.MaxInt32}
	for _, want := range values {
		buf := EncodeI32(want, nil)
		got, rest, err := DecodeI32(buf)
		if err != nil || got != want || len(rest) != 0 {
			t.Errorf("i32 round trip for %d: got %d, rest %x, err %v", want, got, rest, err)
		}
	}
}

func TestI64SignedRoundTrip(t *testing.T) {
	values := []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64 - 1, math.MaxInt64}
	for _, want := range values {
		buf := EncodeI64(want, nil)
		got, rest, err := DecodeI64(buf)
		if err != nil || got != want || len(rest) != 0 {
			t.Errorf("i64 round trip for %d: got %d, rest %x, err %v", want, got, rest, err)
		}
	}
}

func TestRepeatedNeverFailsOnU8(t *testing.T) {
	in := []byte{0x02, 0x03, 0x01, 0x00, 0x00}
	r, rest := DecodeRepeated(in, DecodeByte)
	if len(rest) != 0 {
		t.Fatalf("expected empty remainder, got %x", rest)
	}
	if !bytes.Equal(r.Items, in) {
		t.Errorf("expected all 5 bytes consumed, got %v", r.Items)
	}
}

func TestSizedRejectsResidualAndShortfall(t *testing.T) {
	// Declared size 2 but u32-as-byte-sequence for value 300 needs 2 bytes exactly: use a
	// mismatch instead by wrapping a single byte in a size that's too large.
	oversized := append([]byte{0x02}, 0x05) // size says 2, only 1 byte follows
	_, _, err := DecodeSized(oversized, DecodeByte)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected shortfall to be rejected, got %v", err)
	}

	// Residual: a window of 2 bytes around a decoder that consumes only 1 of them
	// (DecodeU32 on a single-byte LEB128 value) leaves a residual byte.
	residual := []byte{0x02, 0x00, 0x00} // size=2, inner bytes [0x00, 0x00]; u32 decode consumes 1 byte leaving 1 residual
	_, _, err = DecodeSized(residual, DecodeU32)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected residual bytes to be rejected, got %v", err)
	}
}

func TestVecRoundTrip(t *testing.T) {
	items := []uint32{1, 2, 300, 0}
	buf := EncodeVec(items, nil, EncodeU32)
	got, rest, err := DecodeVec(buf, DecodeU32)
	if err != nil || len(rest) != 0 {
		t.Fatalf("DecodeVec failed: %v, rest=%x", err, rest)
	}
	if len(got) != len(items) {
		t.Fatalf("length mismatch: got %v want %v", got, items)
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d: got %d want %d", i, got[i], items[i])
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	buf := EncodeName("name", nil)
	want := []byte{0x04, 0x6E, 0x61, 0x6D, 0x65}
	if !bytes.Equal(buf, want) {
		t.Fatalf("EncodeName(name) = %x, want %x", buf, want)
	}
	got, rest, err := DecodeName(buf)
	if err != nil || got != "name" || len(rest) != 0 {
		t.Errorf("DecodeName = %q, %x, %v", got, rest, err)
	}
}

func TestNameRejectsInvalidUTF8(t *testing.T) {
	buf := append(EncodeU32(1, nil), 0xFF)
	_, _, err := DecodeName(buf)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected invalid UTF-8 to be rejected, got %v", err)
	}
}

func TestEmptyBufferFailsForEveryPrimitive(t *testing.T) {
	if _, _, err := DecodeByte(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeByte(nil) should fail")
	}
	if _, _, err := DecodeU32(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeU32(nil) should fail")
	}
	if _, _, err := DecodeI32(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeI32(nil) should fail")
	}
	if _, _, err := DecodeU64(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeU64(nil) should fail")
	}
	if _, _, err := DecodeI64(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeI64(nil) should fail")
	}
	if _, _, err := DecodeF32(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeF32(nil) should fail")
	}
	if _, _, err := DecodeF64(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeF64(nil) should fail")
	}
	if _, _, err := DecodeName(nil); !errors.Is(err, ErrDecode) {
		t.Error("DecodeName(nil) should fail")
	}
}
