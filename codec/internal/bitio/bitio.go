// Package bitio implements an MSB-first bit cursor over a byte slice.
//
// Bit 7 of byte 0 is the first bit written or read. A field wider than the
// bits left in the current byte is split: the high bits land in the current
// byte, the remainder carries into the following bytes.
package bitio

import (
	"errors"
)

// ErrShortBuffer is returned when a read or write runs past the end of the
// underlying slice. Callers map it to their own error types.
var ErrShortBuffer = errors.New("bitio: short buffer")

// Writer packs unsigned values MSB-first into a byte slice. The slice
// region being written must be zeroed by the caller; Writer only ORs bits
// in.
type Writer struct {
	buf []byte
	pos int // absolute bit position from the start of buf
}

// NewWriter creates a Writer over buf starting at bit 0.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// WriteBits writes the low `width` bits of v, most significant first.
// Width must be between 1 and 32; values wider than the field are a caller
// error and must be validated upstream.
func (w *Writer) WriteBits(v uint32, width int) error {
	if w.pos+width > len(w.buf)*8 {
		return ErrShortBuffer
	}
	remaining := width
	for remaining > 0 {
		byteIdx := w.pos / 8
		bitOff := w.pos % 8
		avail := 8 - bitOff
		take := remaining
		if take > avail {
			take = avail
		}
		chunk := byte(v >> (remaining - take) & (1<<take - 1))
		w.buf[byteIdx] |= chunk << (avail - take)
		w.pos += take
		remaining -= take
	}
	return nil
}

// Offset returns the current position in bits.
func (w *Writer) Offset() int { return w.pos }

// Reader extracts unsigned values MSB-first from a byte slice.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over buf starting at bit 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits reads `width` bits, most significant first, into the low bits of
// the result. Width must be between 1 and 32.
func (r *Reader) ReadBits(width int) (uint32, error) {
	if r.pos+width > len(r.buf)*8 {
		return 0, ErrShortBuffer
	}
	var v uint32
	remaining := width
	for remaining > 0 {
		byteIdx := r.pos / 8
		bitOff := r.pos % 8
		avail := 8 - bitOff
		take := remaining
		if take > avail {
			take = avail
		}
		chunk := r.buf[byteIdx] >> (avail - take) & (1<<take - 1)
		v = v<<take | uint32(chunk)
		r.pos += take
		remaining -= take
	}
	return v, nil
}

// Offset returns the current position in bits.
func (r *Reader) Offset() int { return r.pos }
