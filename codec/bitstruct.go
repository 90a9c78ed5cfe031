package codec

import (
	"github.com/wirebyte/bincodec/codec/internal/bitio"
	"github.com/wirebyte/bincodec/errors"
)

// BitField is one field of a bit-packed struct: a name and a width in bits.
type BitField struct {
	Name  string
	Width int
}

// BitValues holds the decoded or to-be-encoded fields of a bit struct.
// Fields are unsigned; a field absent from the map encodes as zero.
type BitValues = map[string]uint32

type bitStructCoder struct {
	target
	fields    []BitField
	totalBits int
}

// BitStruct creates a sub-byte packed struct coder from an ordered field
// list. Widths must be between 1 and 32 and the total must be a multiple of
// 8; violations are construction-time errors, with the alignment error
// naming the exact padding needed. Fields pack MSB-first in declaration
// order: the first field's high bit occupies bit 7 of byte 0.
//
// The whole record is one reference target; individual bit fields are not
// separately referenceable.
func BitStruct(fields ...BitField) (Coder[BitValues], error) {
	total := 0
	for _, f := range fields {
		if f.Width < 1 || f.Width > 32 {
			return nil, errors.InvalidBitWidth(f.Name, f.Width)
		}
		total += f.Width
	}
	if total%8 != 0 {
		return nil, errors.NonByteAligned(total)
	}
	return &bitStructCoder{target: newTarget(), fields: fields, totalBits: total}, nil
}

// MustBitStruct is BitStruct that panics on a schema error. For schemas
// built from literals at package init.
func MustBitStruct(fields ...BitField) Coder[BitValues] {
	c, err := BitStruct(fields...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *bitStructCoder) size() int { return c.totalBits / 8 }

func (c *bitStructCoder) Encode(dst []byte, v BitValues, ctx *Context) (int, error) {
	size := c.size()
	if len(dst) < size {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, size, len(dst))
	}
	// Range-check every field before touching the buffer.
	for _, f := range c.fields {
		if val := v[f.Name]; f.Width < 32 && val > 1<<f.Width-1 {
			return 0, errors.BitValueOutOfRange(f.Name, val, f.Width)
		}
	}
	for i := 0; i < size; i++ {
		dst[i] = 0
	}
	w := bitio.NewWriter(dst[:size])
	for _, f := range c.fields {
		if err := w.WriteBits(v[f.Name], f.Width); err != nil {
			return 0, errors.BufferTooSmall(errors.PhaseEncode, size, len(dst))
		}
	}
	c.record(ctx, v)
	return size, nil
}

func (c *bitStructCoder) Decode(src []byte, ctx *Context) (BitValues, int, error) {
	size := c.size()
	if len(src) < size {
		return nil, 0, errors.BufferTooSmall(errors.PhaseDecode, size, len(src))
	}
	r := bitio.NewReader(src[:size])
	v := make(BitValues, len(c.fields))
	for _, f := range c.fields {
		bits, err := r.ReadBits(f.Width)
		if err != nil {
			return nil, 0, errors.BufferTooSmall(errors.PhaseDecode, size, len(src))
		}
		v[f.Name] = bits
	}
	c.record(ctx, v)
	return v, size, nil
}
