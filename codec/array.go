package codec

import (
	"fmt"

	"github.com/wirebyte/bincodec/errors"
)

// Preallocation cap for decoded slices. Hostile or corrupted length fields
// can claim enormous counts; allocation beyond this grows with append as
// elements actually decode.
const maxPrealloc = 1 << 16

type arrayCoder[T any] struct {
	target
	elem   Coder[T]
	length Length
}

// Array creates a fixed-count array coder. The count is a literal or a
// reference; encode fails with length_mismatch when the slice's length
// disagrees with the resolved count, and decode consumes exactly that many
// elements.
func Array[T any](elem Coder[T], length Length) Coder[[]T] {
	return &arrayCoder[T]{target: newTarget(), elem: elem, length: length}
}

func (c *arrayCoder[T]) Encode(dst []byte, v []T, ctx *Context) (int, error) {
	count, err := c.length.resolve(ctx)
	if err != nil {
		return 0, err
	}
	if count != len(v) {
		return 0, errors.LengthMismatch(errors.PhaseEncode, count, len(v))
	}
	n, err := encodeElems(dst, v, c.elem, ctx)
	if err != nil {
		return 0, err
	}
	c.record(ctx, v)
	return n, nil
}

func (c *arrayCoder[T]) Decode(src []byte, ctx *Context) ([]T, int, error) {
	count, err := c.length.resolve(ctx)
	if err != nil {
		return nil, 0, err
	}
	out, n, err := decodeElems(src, count, c.elem, ctx)
	if err != nil {
		return nil, 0, err
	}
	c.record(ctx, out)
	return out, n, nil
}

type arrayPrefixedCoder[T any, N Integer] struct {
	target
	lenCoder Coder[N]
	elem     Coder[T]
}

// ArrayPrefixed creates a length-prefixed array coder: a leading count is
// encoded and decoded with lenCoder, then exactly that many elements follow.
// The count coder's value is recorded as a reference target like any other
// coder's.
func ArrayPrefixed[T any, N Integer](lenCoder Coder[N], elem Coder[T]) Coder[[]T] {
	return &arrayPrefixedCoder[T, N]{target: newTarget(), lenCoder: lenCoder, elem: elem}
}

func (c *arrayPrefixedCoder[T, N]) Encode(dst []byte, v []T, ctx *Context) (int, error) {
	n, err := encodeLengthPrefix(dst, c.lenCoder, len(v), ctx)
	if err != nil {
		return 0, err
	}
	en, err := encodeElems(dst[n:], v, c.elem, ctx)
	if err != nil {
		return 0, err
	}
	c.record(ctx, v)
	return n + en, nil
}

func (c *arrayPrefixedCoder[T, N]) Decode(src []byte, ctx *Context) ([]T, int, error) {
	count, n, err := decodeLengthPrefix(src, c.lenCoder, ctx)
	if err != nil {
		return nil, 0, err
	}
	out, dn, err := decodeElems(src[n:], count, c.elem, ctx)
	if err != nil {
		return nil, 0, err
	}
	c.record(ctx, out)
	return out, n + dn, nil
}

// WhilePredicate decides whether another element follows. It runs before
// each element, with the element index, the elements visible so far, the
// unconsumed remainder of the buffer view, and the Context.
//
// The visible slice differs by direction: on encode it is the complete
// source array (the current element included); on decode it holds only the
// elements decoded before this one. Predicates that inspect elems[i] work
// on encode and see nothing on decode. This asymmetry is preserved
// behavior; predicates meant to be direction-neutral should look only at
// the index, earlier elements, or context references.
type WhilePredicate[T any] func(index int, elems []T, rest []byte, ctx *Context) bool

type arrayWhileCoder[T any] struct {
	target
	elem Coder[T]
	pred WhilePredicate[T]
}

// ArrayWhile creates a predicate-terminated array coder with no explicit
// length. Iteration stops the instant the predicate reports false, without
// consuming that element. On encode, iteration also stops when the source
// array is exhausted.
func ArrayWhile[T any](elem Coder[T], pred WhilePredicate[T]) Coder[[]T] {
	return &arrayWhileCoder[T]{target: newTarget(), elem: elem, pred: pred}
}

func (c *arrayWhileCoder[T]) Encode(dst []byte, v []T, ctx *Context) (int, error) {
	if err := ctx.enter(); err != nil {
		return 0, err
	}
	defer ctx.exit()

	var off int
	for i := 0; i < len(v); i++ {
		if !c.pred(i, v, dst[off:], ctx) {
			break
		}
		n, err := c.elem.Encode(dst[off:], v[i], ctx)
		if err != nil {
			return 0, errors.PrependPath(err, fmt.Sprintf("[%d]", i))
		}
		off += n
	}
	c.record(ctx, v)
	return off, nil
}

func (c *arrayWhileCoder[T]) Decode(src []byte, ctx *Context) ([]T, int, error) {
	if err := ctx.enter(); err != nil {
		return nil, 0, err
	}
	defer ctx.exit()

	out := []T{}
	var off int
	for i := 0; ; i++ {
		if !c.pred(i, out, src[off:], ctx) {
			break
		}
		v, n, err := c.elem.Decode(src[off:], ctx)
		if err != nil {
			return nil, 0, errors.PrependPath(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, v)
		off += n
	}
	c.record(ctx, out)
	return out, off, nil
}

func encodeElems[T any](dst []byte, v []T, elem Coder[T], ctx *Context) (int, error) {
	if err := ctx.enter(); err != nil {
		return 0, err
	}
	defer ctx.exit()

	var off int
	for i := range v {
		n, err := elem.Encode(dst[off:], v[i], ctx)
		if err != nil {
			return 0, errors.PrependPath(err, fmt.Sprintf("[%d]", i))
		}
		off += n
	}
	return off, nil
}

func decodeElems[T any](src []byte, count int, elem Coder[T], ctx *Context) ([]T, int, error) {
	if err := ctx.enter(); err != nil {
		return nil, 0, err
	}
	defer ctx.exit()

	prealloc := count
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	out := make([]T, 0, prealloc)
	var off int
	for i := 0; i < count; i++ {
		v, n, err := elem.Decode(src[off:], ctx)
		if err != nil {
			return nil, 0, errors.PrependPath(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, v)
		off += n
	}
	return out, off, nil
}
