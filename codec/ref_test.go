package codec_test

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wirebyte/bincodec/codec"
	"github.com/wirebyte/bincodec/errors"
)

func TestRef_ResolvesEarlierValue(t *testing.T) {
	length := codec.U8()
	payload := codec.Bytes(codec.LenOf(length))

	type rec struct {
		N    uint8
		Data []byte
	}
	c := codec.Struct(
		codec.F("n", length, func(r *rec) uint8 { return r.N }, func(r *rec, v uint8) { r.N = v }),
		codec.F("data", payload, func(r *rec) []byte { return r.Data }, func(r *rec, v []byte) { r.Data = v }),
	)

	in := rec{N: 3, Data: []byte{0xAA, 0xBB, 0xCC}}
	out, err := codec.Encode(c, in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{3, 0xAA, 0xBB, 0xCC}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("encoded bytes mismatch (-want +got):\n%s", diff)
	}

	got, err := codec.Decode(c, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRef_ForwardReferenceFails(t *testing.T) {
	// The payload references a length field that appears after it in
	// declaration order. Resolution must fail on both directions, never
	// succeed with a stale value.
	length := codec.U8()
	payload := codec.Bytes(codec.LenOf(length))

	type rec struct {
		Data []byte
		N    uint8
	}
	c := codec.Struct(
		codec.F("data", payload, func(r *rec) []byte { return r.Data }, func(r *rec, v []byte) { r.Data = v }),
		codec.F("n", length, func(r *rec) uint8 { return r.N }, func(r *rec, v uint8) { r.N = v }),
	)

	_, err := codec.Encode(c, rec{Data: []byte{1}, N: 1})
	if !errors.IsKind(err, errors.KindRefNotFound) {
		t.Errorf("encode: expected ref_not_found, got %v", err)
	}

	_, err = codec.Decode(c, []byte{1, 1})
	if !errors.IsKind(err, errors.KindRefNotFound) {
		t.Errorf("decode: expected ref_not_found, got %v", err)
	}
}

func TestRef_FreshContextPerCall(t *testing.T) {
	// A value recorded in one call must not leak into the next call's
	// fresh Context.
	length := codec.U8()
	ref := codec.Ref(length)

	encCtx := codec.NewEncodeContext()
	if _, err := codec.EncodeInto(length, 5, make([]byte, 1), encCtx); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if v, err := ref.Resolve(encCtx); err != nil || v != 5 {
		t.Fatalf("Resolve in same context: %v, %v", v, err)
	}

	if _, err := ref.Resolve(codec.NewEncodeContext()); !errors.IsKind(err, errors.KindRefNotFound) {
		t.Errorf("expected ref_not_found in fresh context, got %v", err)
	}
}

func TestComputedRef(t *testing.T) {
	w := codec.U16(binary.BigEndian)
	h := codec.U16(binary.BigEndian)
	area := codec.Computed2(codec.Ref(w), codec.Ref(h), func(w, h uint16) int {
		return int(w) * int(h)
	})
	pixels := codec.Bytes(codec.RefLen(area))

	type img struct {
		W, H   uint16
		Pixels []byte
	}
	c := codec.Struct(
		codec.F("w", w, func(i *img) uint16 { return i.W }, func(i *img, v uint16) { i.W = v }),
		codec.F("h", h, func(i *img) uint16 { return i.H }, func(i *img, v uint16) { i.H = v }),
		codec.F("pixels", pixels, func(i *img) []byte { return i.Pixels }, func(i *img, v []byte) { i.Pixels = v }),
	)

	in := img{W: 2, H: 3, Pixels: []byte{1, 2, 3, 4, 5, 6}}
	out, err := codec.Encode(c, in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := codec.Decode(c, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestComputedRef_DependencyNotFound(t *testing.T) {
	length := codec.U8()
	doubled := codec.Computed1(codec.Ref(length), func(n uint8) int { return int(n) * 2 })

	_, err := doubled.Resolve(codec.NewDecodeContext())
	if !errors.IsKind(err, errors.KindRefNotFound) {
		t.Errorf("expected ref_not_found, got %v", err)
	}
}

func TestComputed3(t *testing.T) {
	a, b, c := codec.U8(), codec.U8(), codec.U8()
	sum := codec.Computed3(codec.Ref(a), codec.Ref(b), codec.Ref(c),
		func(a, b, c uint8) int { return int(a) + int(b) + int(c) })

	ctx := codec.NewEncodeContext()
	buf := make([]byte, 1)
	for i, coder := range []codec.Coder[uint8]{a, b, c} {
		if _, err := codec.EncodeInto(coder, uint8(i+1), buf, ctx); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}
	v, err := sum.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v != 6 {
		t.Errorf("expected 6, got %d", v)
	}
}

func TestRefLen_NegativeLength(t *testing.T) {
	n := codec.I8()
	payload := codec.Bytes(codec.LenOf(n))

	ctx := codec.NewDecodeContext()
	if _, _, err := n.Decode([]byte{0xFF}, ctx); err != nil { // -1
		t.Fatalf("Decode: %v", err)
	}
	_, _, err := payload.Decode([]byte{1, 2, 3}, ctx)
	if !errors.IsKind(err, errors.KindInvalidLength) {
		t.Errorf("expected invalid_length, got %v", err)
	}
}

func TestFixedLen_Negative(t *testing.T) {
	c := codec.Bytes(codec.FixedLen(-1))
	_, _, err := c.Decode([]byte{1}, codec.NewDecodeContext())
	if !errors.IsKind(err, errors.KindInvalidLength) {
		t.Errorf("expected invalid_length, got %v", err)
	}
}
