package bitio

import (
	"errors"
	"testing"
)

func TestWriteBits_SingleByte(t *testing.T) {
	buf := make([]byte, 1)
	w := NewWriter(buf)

	// 1 + 3 + 4 bits: 1, 101, 0010 -> 0b1_101_0010
	for _, f := range []struct {
		v     uint32
		width int
	}{{1, 1}, {5, 3}, {2, 4}} {
		if err := w.WriteBits(f.v, f.width); err != nil {
			t.Fatalf("WriteBits(%d, %d): %v", f.v, f.width, err)
		}
	}
	if buf[0] != 0xD2 {
		t.Errorf("expected 0xD2, got 0x%02X", buf[0])
	}
	if w.Offset() != 8 {
		t.Errorf("expected offset 8, got %d", w.Offset())
	}
}

func TestWriteBits_ByteBoundarySplit(t *testing.T) {
	buf := make([]byte, 2)
	w := NewWriter(buf)

	// A 12-bit field starting at bit 4 spans both bytes.
	if err := w.WriteBits(0xA, 4); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(0xBCD, 12); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if buf[0] != 0xAB || buf[1] != 0xCD {
		t.Errorf("expected AB CD, got %02X %02X", buf[0], buf[1])
	}
}

func TestWriteBits_ShortBuffer(t *testing.T) {
	w := NewWriter(make([]byte, 1))
	if err := w.WriteBits(0, 8); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(1, 1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestReadBits(t *testing.T) {
	r := NewReader([]byte{0xD2})

	tests := []struct {
		width int
		want  uint32
	}{{1, 1}, {3, 5}, {4, 2}}
	for _, tt := range tests {
		got, err := r.ReadBits(tt.width)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", tt.width, err)
		}
		if got != tt.want {
			t.Errorf("ReadBits(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
	if r.Offset() != 8 {
		t.Errorf("expected offset 8, got %d", r.Offset())
	}
}

func TestReadBits_Spanning(t *testing.T) {
	r := NewReader([]byte{0xAB, 0xCD})
	if v, err := r.ReadBits(4); err != nil || v != 0xA {
		t.Fatalf("ReadBits(4) = %d, %v", v, err)
	}
	if v, err := r.ReadBits(12); err != nil || v != 0xBCD {
		t.Fatalf("ReadBits(12) = %#x, %v", v, err)
	}
}

func TestReadBits_ShortBuffer(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(9); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestRoundTrip_32BitField(t *testing.T) {
	buf := make([]byte, 5)
	w := NewWriter(buf)
	if err := w.WriteBits(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(0xDEADBEEF, 32); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(0x55, 7); err != nil {
		t.Fatal(err)
	}

	r := NewReader(buf)
	if v, _ := r.ReadBits(1); v != 1 {
		t.Errorf("first field = %d", v)
	}
	if v, _ := r.ReadBits(32); v != 0xDEADBEEF {
		t.Errorf("wide field = %#x", v)
	}
	if v, _ := r.ReadBits(7); v != 0x55 {
		t.Errorf("last field = %#x", v)
	}
}
