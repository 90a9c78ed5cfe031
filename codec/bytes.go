package codec

import (
	"github.com/wirebyte/bincodec/errors"
)

type bytesCoder struct {
	target
	length Length
}

// Bytes creates a raw byte-block coder of the given length. Encode fails
// with length_mismatch when the payload's length disagrees with the
// resolved length; decode consumes exactly that many bytes and copies them
// out of the caller's buffer.
func Bytes(length Length) Coder[[]byte] {
	return &bytesCoder{target: newTarget(), length: length}
}

func (c *bytesCoder) Encode(dst []byte, v []byte, ctx *Context) (int, error) {
	n, err := c.length.resolve(ctx)
	if err != nil {
		return 0, err
	}
	if n != len(v) {
		return 0, errors.LengthMismatch(errors.PhaseEncode, n, len(v))
	}
	if len(dst) < n {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, n, len(dst))
	}
	copy(dst, v)
	c.record(ctx, v)
	return n, nil
}

func (c *bytesCoder) Decode(src []byte, ctx *Context) ([]byte, int, error) {
	n, err := c.length.resolve(ctx)
	if err != nil {
		return nil, 0, err
	}
	if len(src) < n {
		return nil, 0, errors.BufferTooSmall(errors.PhaseDecode, n, len(src))
	}
	out := make([]byte, n)
	copy(out, src)
	c.record(ctx, out)
	return out, n, nil
}

type bytesRemainingCoder struct {
	target
}

// BytesRemaining creates a coder for the remainder of the buffer view:
// decode consumes every byte left, encode writes the whole payload. With no
// length to validate, encode fails only when the destination view is
// shorter than the payload.
func BytesRemaining() Coder[[]byte] {
	return &bytesRemainingCoder{target: newTarget()}
}

func (c *bytesRemainingCoder) Encode(dst []byte, v []byte, ctx *Context) (int, error) {
	if len(dst) < len(v) {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, len(v), len(dst))
	}
	copy(dst, v)
	c.record(ctx, v)
	return len(v), nil
}

func (c *bytesRemainingCoder) Decode(src []byte, ctx *Context) ([]byte, int, error) {
	out := make([]byte, len(src))
	copy(out, src)
	c.record(ctx, out)
	return out, len(src), nil
}

type bytesPrefixedCoder[N Integer] struct {
	target
	lenCoder Coder[N]
}

// BytesPrefixed creates a length-prefixed byte-block coder. The length field
// is encoded and decoded with lenCoder before the payload, and its value is
// recorded as a reference target like any other coder's.
func BytesPrefixed[N Integer](lenCoder Coder[N]) Coder[[]byte] {
	return &bytesPrefixedCoder[N]{target: newTarget(), lenCoder: lenCoder}
}

func (c *bytesPrefixedCoder[N]) Encode(dst []byte, v []byte, ctx *Context) (int, error) {
	n, err := encodeLengthPrefix(dst, c.lenCoder, len(v), ctx)
	if err != nil {
		return 0, err
	}
	if len(dst)-n < len(v) {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, n+len(v), len(dst))
	}
	copy(dst[n:], v)
	c.record(ctx, v)
	return n + len(v), nil
}

func (c *bytesPrefixedCoder[N]) Decode(src []byte, ctx *Context) ([]byte, int, error) {
	count, n, err := decodeLengthPrefix(src, c.lenCoder, ctx)
	if err != nil {
		return nil, 0, err
	}
	if len(src)-n < count {
		return nil, 0, errors.BufferTooSmall(errors.PhaseDecode, n+count, len(src))
	}
	out := make([]byte, count)
	copy(out, src[n:])
	c.record(ctx, out)
	return out, n + count, nil
}

// encodeLengthPrefix writes a payload length through the supplied length
// coder, rejecting payloads whose length does not survive the round trip
// into the length field's type.
func encodeLengthPrefix[N Integer](dst []byte, lenCoder Coder[N], length int, ctx *Context) (int, error) {
	lv := N(length)
	if int(int64(lv)) != length || lv < 0 {
		return 0, errors.New(errors.PhaseEncode, errors.KindInvalidLength).
			Detail("payload length %d does not fit in the length field", length).
			Value(length).
			Build()
	}
	return lenCoder.Encode(dst, lv, ctx)
}

// decodeLengthPrefix reads a payload length through the supplied length
// coder and validates it the same way the Length resolvers do.
func decodeLengthPrefix[N Integer](src []byte, lenCoder Coder[N], ctx *Context) (count, n int, err error) {
	lv, n, err := lenCoder.Decode(src, ctx)
	if err != nil {
		return 0, 0, err
	}
	count, err = checkLength(int(int64(lv)), ctx)
	if err != nil {
		return 0, 0, err
	}
	return count, n, nil
}
