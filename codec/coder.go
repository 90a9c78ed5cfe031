package codec

import (
	"sync/atomic"

	"github.com/wirebyte/bincodec/errors"
)

// Coder is the universal codec unit: a paired encode/decode operation over a
// caller-owned byte buffer view for one logical type.
//
// Encode writes v into dst and returns the number of bytes written. Decode
// reads a value from src and returns it with the number of bytes consumed.
// Both operations thread the same Context through nested coders so that
// values recorded by earlier coders are visible to later references.
//
// Coders are stateless apart from closed-over configuration: they never
// retain dst or src past the call and never allocate their destination.
// Build a coder tree once and reuse it; any instance targeted by Ref must be
// the same instance that appears in the schema.
type Coder[T any] interface {
	Encode(dst []byte, v T, ctx *Context) (int, error)
	Decode(src []byte, ctx *Context) (T, int, error)

	// Handle returns the coder's build-time reference handle.
	Handle() Handle
}

// Handle identifies a coder instance in a Context's reference table.
// Handles are assigned once at construction from a process-wide counter, so
// two distinct coder instances never share one.
type Handle uint64

var handleCounter atomic.Uint64

// target is embedded by every coder to give it a reference handle.
type target struct {
	h Handle
}

func newTarget() target {
	return target{h: Handle(handleCounter.Add(1))}
}

// Handle returns the coder's reference handle.
func (t target) Handle() Handle { return t.h }

// record stores v under the coder's handle in ctx. Every coder calls this
// immediately after its work, on both directions.
func (t target) record(ctx *Context, v any) {
	ctx.refs[t.h] = v
}

// Direction tags a Context as serving encode or decode traversals.
type Direction int

const (
	DirEncode Direction = iota
	DirDecode
)

// DefaultDepthLimit bounds schema nesting per Context. Deep but finite
// schemas can raise it with SetDepthLimit; a coder reachable from its own
// field tree will hit the limit instead of overflowing the goroutine stack.
const DefaultDepthLimit = 4096

// Context is the per-invocation side table threaded through a traversal.
// It carries the direction and the reference table mapping coder handles to
// the last value each coder produced in this call.
//
// A Context is not safe for concurrent use: interleaving two traversals on
// one Context lets a reference from one resolve a value recorded by the
// other. Create a fresh Context per top-level call unless state is shared
// intentionally across a related multi-pass protocol.
type Context struct {
	dir        Direction
	refs       map[Handle]any
	depth      int
	depthLimit int
}

// NewEncodeContext creates a Context for an encode traversal.
func NewEncodeContext() *Context {
	return &Context{dir: DirEncode, refs: make(map[Handle]any), depthLimit: DefaultDepthLimit}
}

// NewDecodeContext creates a Context for a decode traversal.
func NewDecodeContext() *Context {
	return &Context{dir: DirDecode, refs: make(map[Handle]any), depthLimit: DefaultDepthLimit}
}

// Direction returns the direction this Context was created for.
func (c *Context) Direction() Direction { return c.dir }

// SetDepthLimit overrides the nesting depth guard for this Context.
func (c *Context) SetDepthLimit(n int) { c.depthLimit = n }

// phase maps the context direction to an error phase.
func (c *Context) phase() errors.Phase {
	if c.dir == DirEncode {
		return errors.PhaseEncode
	}
	return errors.PhaseDecode
}

// enter increments the traversal depth, failing once the guard is exceeded.
// Container coders pair it with exit around their children.
func (c *Context) enter() error {
	c.depth++
	if c.depth > c.depthLimit {
		return errors.DepthExceeded(c.phase(), c.depthLimit)
	}
	return nil
}

func (c *Context) exit() {
	c.depth--
}

// lookup returns the value recorded under h in this Context, if any.
func (c *Context) lookup(h Handle) (any, bool) {
	v, ok := c.refs[h]
	return v, ok
}
