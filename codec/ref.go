package codec

import (
	"github.com/wirebyte/bincodec/errors"
)

// RefValue is a lazy lookup of a value produced earlier in the current
// traversal. Resolution happens against the Context at the moment a
// dependent coder runs, so a reference observes only coders that appear
// before it in declaration order.
type RefValue[T any] interface {
	Resolve(ctx *Context) (T, error)
}

type coderRef[T any] struct {
	h Handle
}

// Ref binds a RefValue to the exact coder instance c. Resolving it returns
// the last value c recorded into the Context, or a ref_not_found error if c
// has not run yet in this call.
func Ref[T any](c Coder[T]) RefValue[T] {
	return coderRef[T]{h: c.Handle()}
}

func (r coderRef[T]) Resolve(ctx *Context) (T, error) {
	v, ok := ctx.lookup(r.h)
	if !ok {
		var zero T
		return zero, errors.RefNotFound(uint64(r.h))
	}
	return v.(T), nil
}

// Computed references derive a value from other references through a pure
// function. The combiner re-runs on every resolution; it must be cheap and
// must not depend on anything outside its arguments.

type computed1[A, T any] struct {
	a  RefValue[A]
	fn func(A) T
}

// Computed1 derives a reference from one dependency.
func Computed1[A, T any](a RefValue[A], fn func(A) T) RefValue[T] {
	return computed1[A, T]{a: a, fn: fn}
}

func (r computed1[A, T]) Resolve(ctx *Context) (T, error) {
	av, err := r.a.Resolve(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.fn(av), nil
}

type computed2[A, B, T any] struct {
	a  RefValue[A]
	b  RefValue[B]
	fn func(A, B) T
}

// Computed2 derives a reference from two dependencies.
func Computed2[A, B, T any](a RefValue[A], b RefValue[B], fn func(A, B) T) RefValue[T] {
	return computed2[A, B, T]{a: a, b: b, fn: fn}
}

func (r computed2[A, B, T]) Resolve(ctx *Context) (T, error) {
	var zero T
	av, err := r.a.Resolve(ctx)
	if err != nil {
		return zero, err
	}
	bv, err := r.b.Resolve(ctx)
	if err != nil {
		return zero, err
	}
	return r.fn(av, bv), nil
}

type computed3[A, B, C, T any] struct {
	a  RefValue[A]
	b  RefValue[B]
	c  RefValue[C]
	fn func(A, B, C) T
}

// Computed3 derives a reference from three dependencies.
func Computed3[A, B, C, T any](a RefValue[A], b RefValue[B], c RefValue[C], fn func(A, B, C) T) RefValue[T] {
	return computed3[A, B, C, T]{a: a, b: b, c: c, fn: fn}
}

func (r computed3[A, B, C, T]) Resolve(ctx *Context) (T, error) {
	var zero T
	av, err := r.a.Resolve(ctx)
	if err != nil {
		return zero, err
	}
	bv, err := r.b.Resolve(ctx)
	if err != nil {
		return zero, err
	}
	cv, err := r.c.Resolve(ctx)
	if err != nil {
		return zero, err
	}
	return r.fn(av, bv, cv), nil
}

// Integer constrains the numeric types usable as length references.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Length specifies the size of a length-bearing composite coder: a literal
// count, or a count resolved from a reference at call time. All lengths
// share one validation rule: the resolved value must be non-negative, and
// the check runs before any buffer access.
type Length interface {
	resolve(ctx *Context) (int, error)
}

type fixedLen int

// FixedLen is a literal length.
func FixedLen(n int) Length {
	return fixedLen(n)
}

func (l fixedLen) resolve(ctx *Context) (int, error) {
	return checkLength(int(l), ctx)
}

type refLen[T Integer] struct {
	r RefValue[T]
}

// RefLen resolves a length from a reference at call time.
func RefLen[T Integer](r RefValue[T]) Length {
	return refLen[T]{r: r}
}

// LenOf is shorthand for RefLen(Ref(c)): the length is whatever integer the
// coder c last recorded in this Context.
func LenOf[T Integer](c Coder[T]) Length {
	return RefLen(Ref(c))
}

func (l refLen[T]) resolve(ctx *Context) (int, error) {
	v, err := l.r.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	// A uint64 beyond the int range wraps negative and fails the check.
	return checkLength(int(int64(v)), ctx)
}

func checkLength(n int, ctx *Context) (int, error) {
	if n < 0 {
		return 0, errors.InvalidLength(ctx.phase(), n)
	}
	return n, nil
}
