package codec

import (
	"github.com/wirebyte/bincodec/errors"
)

// Refine layers a logical type R over a physical coder for U via a pure
// bidirectional transform. Decode runs base then refine; encode runs
// unrefine then base. The refined value is what gets recorded as this
// coder's reference target.
func Refine[U, R any](base Coder[U], refine func(U, *Context) (R, error), unrefine func(R, *Context) (U, error)) Coder[R] {
	return &refineCoder[U, R]{target: newTarget(), base: base, refine: refine, unrefine: unrefine}
}

type refineCoder[U, R any] struct {
	target
	base     Coder[U]
	refine   func(U, *Context) (R, error)
	unrefine func(R, *Context) (U, error)
}

func (c *refineCoder[U, R]) Encode(dst []byte, v R, ctx *Context) (int, error) {
	if err := ctx.enter(); err != nil {
		return 0, err
	}
	defer ctx.exit()

	u, err := c.unrefine(v, ctx)
	if err != nil {
		return 0, err
	}
	n, err := c.base.Encode(dst, u, ctx)
	if err != nil {
		return 0, err
	}
	c.record(ctx, v)
	return n, nil
}

func (c *refineCoder[U, R]) Decode(src []byte, ctx *Context) (R, int, error) {
	var zero R
	if err := ctx.enter(); err != nil {
		return zero, 0, err
	}
	defer ctx.exit()

	u, n, err := c.base.Decode(src, ctx)
	if err != nil {
		return zero, 0, err
	}
	v, err := c.refine(u, ctx)
	if err != nil {
		return zero, 0, err
	}
	c.record(ctx, v)
	return v, n, nil
}

// Variant is one member of a discriminated refinement family: a pure
// bidirectional transform between the shared base type U and this variant's
// view of the refined type R.
type Variant[U, R any] struct {
	Refine   func(U, *Context) (R, error)
	Unrefine func(R, *Context) (U, error)
}

// Selector picks a variant key for a base value on decode and for a refined
// value on encode. Returning ok=false means no variant applies.
//
// The two selections must agree for corresponding (base, refined) pairs.
// The engine cannot verify that agreement; violating it yields a wrong
// variant or an invalid_variant_key error at runtime, never a
// construction-time error.
type Selector[U, R any] interface {
	SelectDecode(base U, ctx *Context) (key string, ok bool)
	SelectEncode(refined R, ctx *Context) (key string, ok bool)
}

// SelectorFuncs adapts two closures into a Selector.
type SelectorFuncs[U, R any] struct {
	Decode func(base U, ctx *Context) (string, bool)
	Encode func(refined R, ctx *Context) (string, bool)
}

func (s SelectorFuncs[U, R]) SelectDecode(base U, ctx *Context) (string, bool) {
	return s.Decode(base, ctx)
}

func (s SelectorFuncs[U, R]) SelectEncode(refined R, ctx *Context) (string, bool) {
	return s.Encode(refined, ctx)
}

// RefineSwitch turns one physical layout into a runtime-selected family of
// logical record types. Decode runs the base coder, asks the selector for a
// key, and applies that variant's Refine; encode asks the selector for a
// key and applies that variant's Unrefine before running the base coder.
// The refined value is recorded as the switch's reference target on both
// directions.
//
// A selector that declines fails with no_variant_selected; a key absent
// from the variant table fails with invalid_variant_key. There is no
// default variant and no silent fallback.
func RefineSwitch[U, R any](base Coder[U], variants map[string]Variant[U, R], sel Selector[U, R]) Coder[R] {
	return &refineSwitchCoder[U, R]{target: newTarget(), base: base, variants: variants, sel: sel}
}

type refineSwitchCoder[U, R any] struct {
	target
	base     Coder[U]
	variants map[string]Variant[U, R]
	sel      Selector[U, R]
}

func (c *refineSwitchCoder[U, R]) Encode(dst []byte, v R, ctx *Context) (int, error) {
	if err := ctx.enter(); err != nil {
		return 0, err
	}
	defer ctx.exit()

	key, ok := c.sel.SelectEncode(v, ctx)
	if !ok {
		return 0, errors.NoVariantSelected(errors.PhaseEncode)
	}
	variant, found := c.variants[key]
	if !found {
		return 0, errors.InvalidVariantKey(errors.PhaseEncode, key)
	}
	debugf("refineSwitch encode: variant %q", key)
	u, err := variant.Unrefine(v, ctx)
	if err != nil {
		return 0, errors.PrependPath(err, key)
	}
	n, err := c.base.Encode(dst, u, ctx)
	if err != nil {
		return 0, err
	}
	c.record(ctx, v)
	return n, nil
}

func (c *refineSwitchCoder[U, R]) Decode(src []byte, ctx *Context) (R, int, error) {
	var zero R
	if err := ctx.enter(); err != nil {
		return zero, 0, err
	}
	defer ctx.exit()

	u, n, err := c.base.Decode(src, ctx)
	if err != nil {
		return zero, 0, err
	}
	key, ok := c.sel.SelectDecode(u, ctx)
	if !ok {
		return zero, 0, errors.NoVariantSelected(errors.PhaseDecode)
	}
	variant, found := c.variants[key]
	if !found {
		return zero, 0, errors.InvalidVariantKey(errors.PhaseDecode, key)
	}
	debugf("refineSwitch decode: variant %q", key)
	v, err := variant.Refine(u, ctx)
	if err != nil {
		return zero, 0, errors.PrependPath(err, key)
	}
	c.record(ctx, v)
	return v, n, nil
}
