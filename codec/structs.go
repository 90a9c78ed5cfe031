package codec

import (
	"github.com/wirebyte/bincodec/errors"
)

// Field encodes or decodes one named part of a struct value S, in place.
type Field[S any] interface {
	encodeField(dst []byte, s *S, ctx *Context) (int, error)
	decodeField(src []byte, s *S, ctx *Context) (int, error)
}

type fieldAdapter[S, T any] struct {
	name  string
	coder Coder[T]
	get   func(*S) T
	set   func(*S, T)
}

// F adapts a Coder[T] into a field of struct type S via getter and setter
// closures. The name appears in error paths.
func F[S, T any](name string, c Coder[T], get func(*S) T, set func(*S, T)) Field[S] {
	return &fieldAdapter[S, T]{name: name, coder: c, get: get, set: set}
}

func (f *fieldAdapter[S, T]) encodeField(dst []byte, s *S, ctx *Context) (int, error) {
	n, err := f.coder.Encode(dst, f.get(s), ctx)
	if err != nil {
		return 0, errors.PrependPath(err, f.name)
	}
	return n, nil
}

func (f *fieldAdapter[S, T]) decodeField(src []byte, s *S, ctx *Context) (int, error) {
	v, n, err := f.coder.Decode(src, ctx)
	if err != nil {
		return 0, errors.PrependPath(err, f.name)
	}
	f.set(s, v)
	return n, nil
}

type structCoder[S any] struct {
	target
	fields []Field[S]
}

// Struct creates a flat struct coder that runs its fields in declaration
// order on both directions, threading one Context through all of them so a
// later field's length reference can resolve an earlier field's value. The
// struct coder records the whole struct value as its own reference target.
func Struct[S any](fields ...Field[S]) Coder[S] {
	return &structCoder[S]{target: newTarget(), fields: fields}
}

func (c *structCoder[S]) Encode(dst []byte, v S, ctx *Context) (int, error) {
	if err := ctx.enter(); err != nil {
		return 0, err
	}
	defer ctx.exit()

	var off int
	for _, f := range c.fields {
		n, err := f.encodeField(dst[off:], &v, ctx)
		if err != nil {
			return 0, err
		}
		off += n
	}
	c.record(ctx, v)
	return off, nil
}

func (c *structCoder[S]) Decode(src []byte, ctx *Context) (S, int, error) {
	var v S
	if err := ctx.enter(); err != nil {
		return v, 0, err
	}
	defer ctx.exit()

	var off int
	for _, f := range c.fields {
		n, err := f.decodeField(src[off:], &v, ctx)
		if err != nil {
			var zero S
			return zero, 0, err
		}
		off += n
	}
	c.record(ctx, v)
	return v, off, nil
}
