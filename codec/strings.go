package codec

import (
	"bytes"

	"github.com/wirebyte/bincodec/errors"
)

// String coders. Values are Go strings carrying UTF-8 bytes; the three
// termination strategies on the wire are a fixed byte count (strict or
// zero-padded), a length prefix, and a single zero-byte terminator.

type stringCoder struct {
	target
	length Length
	pad    bool
}

// String creates a fixed-length string coder. Encode requires the string's
// byte length to equal the resolved length exactly; decode consumes exactly
// that many bytes.
func String(length Length) Coder[string] {
	return &stringCoder{target: newTarget(), length: length}
}

// StringPadded creates a fixed-byte-count string coder with zero-pad and
// truncate semantics: encode writes at most the resolved length bytes and
// fills the rest with zero bytes; decode strips trailing zero bytes.
func StringPadded(length Length) Coder[string] {
	return &stringCoder{target: newTarget(), length: length, pad: true}
}

func (c *stringCoder) Encode(dst []byte, v string, ctx *Context) (int, error) {
	n, err := c.length.resolve(ctx)
	if err != nil {
		return 0, err
	}
	if !c.pad && len(v) != n {
		return 0, errors.LengthMismatch(errors.PhaseEncode, n, len(v))
	}
	if len(dst) < n {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, n, len(dst))
	}
	copied := copy(dst[:n], v)
	for i := copied; i < n; i++ {
		dst[i] = 0
	}
	c.record(ctx, v)
	return n, nil
}

func (c *stringCoder) Decode(src []byte, ctx *Context) (string, int, error) {
	n, err := c.length.resolve(ctx)
	if err != nil {
		return "", 0, err
	}
	if len(src) < n {
		return "", 0, errors.BufferTooSmall(errors.PhaseDecode, n, len(src))
	}
	raw := src[:n]
	if c.pad {
		raw = bytes.TrimRight(raw, "\x00")
	}
	v := string(raw)
	c.record(ctx, v)
	return v, n, nil
}

type stringPrefixedCoder[N Integer] struct {
	target
	lenCoder Coder[N]
}

// StringPrefixed creates a length-prefixed string coder. The byte length is
// encoded and decoded with lenCoder before the payload, and the length
// coder's value is recorded as a reference target.
func StringPrefixed[N Integer](lenCoder Coder[N]) Coder[string] {
	return &stringPrefixedCoder[N]{target: newTarget(), lenCoder: lenCoder}
}

func (c *stringPrefixedCoder[N]) Encode(dst []byte, v string, ctx *Context) (int, error) {
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

func (c *stringPrefixedCoder[N]) Decode(src []byte, ctx *Context) (string, int, error) {
	count, n, err := decodeLengthPrefix(src, c.lenCoder, ctx)
	if err != nil {
		return "", 0, err
	}
	if len(src)-n < count {
		return "", 0, errors.BufferTooSmall(errors.PhaseDecode, n+count, len(src))
	}
	v := string(src[n : n+count])
	c.record(ctx, v)
	return v, n + count, nil
}

type stringZeroCoder struct {
	target
}

// StringZero creates a zero-terminated string coder: encode writes the
// string bytes followed by a single zero byte, decode consumes up to and
// including the first zero byte. A string containing an interior zero byte
// will not round-trip; that is a schema-authoring concern, not a checked
// invariant.
func StringZero() Coder[string] {
	return &stringZeroCoder{target: newTarget()}
}

func (c *stringZeroCoder) Encode(dst []byte, v string, ctx *Context) (int, error) {
	need := len(v) + 1
	if len(dst) < need {
		return 0, errors.BufferTooSmall(errors.PhaseEncode, need, len(dst))
	}
	copy(dst, v)
	dst[len(v)] = 0
	c.record(ctx, v)
	return need, nil
}

func (c *stringZeroCoder) Decode(src []byte, ctx *Context) (string, int, error) {
	i := bytes.IndexByte(src, 0)
	if i < 0 {
		return "", 0, errors.New(errors.PhaseDecode, errors.KindBufferTooSmall).
			Detail("no zero terminator in %d byte(s)", len(src)).
			Build()
	}
	v := string(src[:i])
	c.record(ctx, v)
	return v, i + 1, nil
}
