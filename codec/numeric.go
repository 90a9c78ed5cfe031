package codec

import (
	"encoding/binary"
	"math"

	"github.com/wirebyte/bincodec/errors"
)

// Fixed-width numeric coders. Byte order is per-field: each constructor
// takes the binary.ByteOrder the field uses on the wire. Signed integers
// are two's-complement, floats are IEEE-754. Every numeric coder records
// its value in the Context, so any of them can serve as a length or
// discriminator reference target.

type fixedCoder[T any] struct {
	target
	size int
	put  func(binary.ByteOrder, []byte, T)
	get  func(binary.ByteOrder, []byte) T
	ord  binary.ByteOrder
}

func (c *fixedCoder[T]) Encode(dst []byte, v T, ctx *Context) (int, error) {
	if len(dst) < c.size {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, c.size, len(dst))
	}
	c.put(c.ord, dst, v)
	c.record(ctx, v)
	return c.size, nil
}

func (c *fixedCoder[T]) Decode(src []byte, ctx *Context) (T, int, error) {
	if len(src) < c.size {
		var zero T
		return zero, 0, errors.BufferTooSmall(errors.PhaseDecode, c.size, len(src))
	}
	v := c.get(c.ord, src)
	c.record(ctx, v)
	return v, c.size, nil
}

// U8 creates an unsigned 8-bit coder.
func U8() Coder[uint8] {
	return &fixedCoder[uint8]{
		target: newTarget(),
		size:   1,
		put:    func(_ binary.ByteOrder, b []byte, v uint8) { b[0] = v },
		get:    func(_ binary.ByteOrder, b []byte) uint8 { return b[0] },
	}
}

// U16 creates an unsigned 16-bit coder with the given byte order.
func U16(ord binary.ByteOrder) Coder[uint16] {
	return &fixedCoder[uint16]{
		target: newTarget(),
		size:   2,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v uint16) { o.PutUint16(b, v) },
		get:    func(o binary.ByteOrder, b []byte) uint16 { return o.Uint16(b) },
	}
}

// U32 creates an unsigned 32-bit coder with the given byte order.
func U32(ord binary.ByteOrder) Coder[uint32] {
	return &fixedCoder[uint32]{
		target: newTarget(),
		size:   4,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v uint32) { o.PutUint32(b, v) },
		get:    func(o binary.ByteOrder, b []byte) uint32 { return o.Uint32(b) },
	}
}

// U64 creates an unsigned 64-bit coder with the given byte order.
func U64(ord binary.ByteOrder) Coder[uint64] {
	return &fixedCoder[uint64]{
		target: newTarget(),
		size:   8,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v uint64) { o.PutUint64(b, v) },
		get:    func(o binary.ByteOrder, b []byte) uint64 { return o.Uint64(b) },
	}
}

// I8 creates a signed 8-bit coder.
func I8() Coder[int8] {
	return &fixedCoder[int8]{
		target: newTarget(),
		size:   1,
		put:    func(_ binary.ByteOrder, b []byte, v int8) { b[0] = byte(v) },
		get:    func(_ binary.ByteOrder, b []byte) int8 { return int8(b[0]) },
	}
}

// I16 creates a signed 16-bit coder with the given byte order.
func I16(ord binary.ByteOrder) Coder[int16] {
	return &fixedCoder[int16]{
		target: newTarget(),
		size:   2,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v int16) { o.PutUint16(b, uint16(v)) },
		get:    func(o binary.ByteOrder, b []byte) int16 { return int16(o.Uint16(b)) },
	}
}

// I32 creates a signed 32-bit coder with the given byte order.
func I32(ord binary.ByteOrder) Coder[int32] {
	return &fixedCoder[int32]{
		target: newTarget(),
		size:   4,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v int32) { o.PutUint32(b, uint32(v)) },
		get:    func(o binary.ByteOrder, b []byte) int32 { return int32(o.Uint32(b)) },
	}
}

// I64 creates a signed 64-bit coder with the given byte order.
func I64(ord binary.ByteOrder) Coder[int64] {
	return &fixedCoder[int64]{
		target: newTarget(),
		size:   8,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v int64) { o.PutUint64(b, uint64(v)) },
		get:    func(o binary.ByteOrder, b []byte) int64 { return int64(o.Uint64(b)) },
	}
}

// F32 creates an IEEE-754 single-precision float coder with the given byte order.
func F32(ord binary.ByteOrder) Coder[float32] {
	return &fixedCoder[float32]{
		target: newTarget(),
		size:   4,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v float32) { o.PutUint32(b, math.Float32bits(v)) },
		get:    func(o binary.ByteOrder, b []byte) float32 { return math.Float32frombits(o.Uint32(b)) },
	}
}

// F64 creates an IEEE-754 double-precision float coder with the given byte order.
func F64(ord binary.ByteOrder) Coder[float64] {
	return &fixedCoder[float64]{
		target: newTarget(),
		size:   8,
		ord:    ord,
		put:    func(o binary.ByteOrder, b []byte, v float64) { o.PutUint64(b, math.Float64bits(v)) },
		get:    func(o binary.ByteOrder, b []byte) float64 { return math.Float64frombits(o.Uint64(b)) },
	}
}

// Bool creates a single-byte boolean coder: 0 is false, anything else
// decodes true, and encode writes 0 or 1.
func Bool() Coder[bool] {
	return &fixedCoder[bool]{
		target: newTarget(),
		size:   1,
		put: func(_ binary.ByteOrder, b []byte, v bool) {
			if v {
				b[0] = 1
			} else {
				b[0] = 0
			}
		},
		get: func(_ binary.ByteOrder, b []byte) bool { return b[0] != 0 },
	}
}
