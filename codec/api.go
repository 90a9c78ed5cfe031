package codec

// Top-level entry points. These wrap the Coder contract with context
// creation and, on encode, the buffer-growth helper for outputs of unknown
// size.

type callOptions struct {
	ctx    *Context
	growth GrowthOptions
}

// Option configures a top-level Encode or Decode call.
type Option func(*callOptions)

// WithContext supplies an existing Context instead of a fresh one, sharing
// reference state across related calls in a multi-pass protocol. The
// Context's direction must match the call.
func WithContext(ctx *Context) Option {
	return func(o *callOptions) { o.ctx = ctx }
}

// WithGrowth overrides the buffer-growth options for an Encode call.
func WithGrowth(g GrowthOptions) Option {
	return func(o *callOptions) { o.growth = g }
}

// Encode serializes v with c into a freshly allocated buffer, retrying with
// larger buffers per the growth options until the output fits.
func Encode[T any](c Coder[T], v T, opts ...Option) ([]byte, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	growth := o.growth.withDefaults()
	if err := growth.validate(); err != nil {
		return nil, err
	}
	return growAndRetry(growth, func(dst []byte) (int, error) {
		// Each attempt gets a clean reference table so a retry never
		// observes values recorded by a failed traversal.
		ctx := o.ctx
		if ctx == nil {
			ctx = NewEncodeContext()
		}
		return c.Encode(dst, v, ctx)
	})
}

// EncodeInto serializes v with c into the caller's buffer, returning the
// number of bytes written. No growth applies; a destination that is too
// small fails with buffer_too_small. A nil ctx gets a fresh encode Context.
func EncodeInto[T any](c Coder[T], v T, dst []byte, ctx *Context) (int, error) {
	if ctx == nil {
		ctx = NewEncodeContext()
	}
	return c.Encode(dst, v, ctx)
}

// Decode deserializes a value from data with c. Trailing bytes beyond what
// the coder consumes are ignored; use the Coder's Decode method directly
// when the consumed count matters.
func Decode[T any](c Coder[T], data []byte, opts ...Option) (T, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	ctx := o.ctx
	if ctx == nil {
		ctx = NewDecodeContext()
	}
	v, _, err := c.Decode(data, ctx)
	return v, err
}
