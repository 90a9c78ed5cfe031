package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild   Phase = "build"   // schema construction
	PhaseEncode  Phase = "encode"  // value to bytes
	PhaseDecode  Phase = "decode"  // bytes to value
	PhaseResolve Phase = "resolve" // reference resolution
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidLength      Kind = "invalid_length"
	KindLengthMismatch     Kind = "length_mismatch"
	KindBufferTooSmall     Kind = "buffer_too_small"
	KindRefNotFound        Kind = "ref_not_found"
	KindInvalidBitWidth    Kind = "invalid_bit_width"
	KindNonByteAligned     Kind = "non_byte_aligned"
	KindBitValueOutOfRange Kind = "bit_value_out_of_range"
	KindNoVariantSelected  Kind = "no_variant_selected"
	KindInvalidVariantKey  Kind = "invalid_variant_key"
	KindGrowthExhausted    Kind = "growth_exhausted"
	KindInvalidConfig      Kind = "invalid_config"
	KindDepthExceeded      Kind = "depth_exceeded"
)

// Error is the structured error type used throughout the codec engine
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err or any error it wraps is a codec error of the
// given kind, regardless of phase.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if stderrors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// PrependPath returns err with path segments prepended if it is a codec
// error; other errors pass through unchanged. Used by container coders to
// accumulate the field path as errors propagate upward.
func PrependPath(err error, path ...string) error {
	var ce *Error
	if !stderrors.As(err, &ce) {
		return err
	}
	out := *ce
	out.Path = append(append([]string{}, path...), ce.Path...)
	return &out
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidLength creates an error for a length that resolved negative
func InvalidLength(phase Phase, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidLength,
		Detail: fmt.Sprintf("length must be a non-negative integer, got %d", length),
		Value:  length,
	}
}

// LengthMismatch creates an error for a payload that disagrees with its fixed length
func LengthMismatch(phase Phase, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthMismatch,
		Detail: fmt.Sprintf("fixed length %d does not match payload length %d", want, got),
		Value:  got,
	}
}

// BufferTooSmall creates an error for a buffer shorter than an operation needs
func BufferTooSmall(phase Phase, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("need %d byte(s), have %d", need, have),
	}
}

// RefNotFound creates an error for a reference resolved before its target ran
func RefNotFound(handle uint64) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindRefNotFound,
		Detail: fmt.Sprintf("coder #%d has not recorded a value in this context; reference targets must appear before their referencers", handle),
		Value:  handle,
	}
}

// InvalidBitWidth creates a construction-time error for a bit field width outside 1-32
func InvalidBitWidth(field string, width int) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindInvalidBitWidth,
		Path:   []string{field},
		Detail: fmt.Sprintf("bit width must be between 1 and 32, got %d", width),
		Value:  width,
	}
}

// NonByteAligned creates a construction-time error for a bit schema whose
// total width is not a multiple of 8. The message names the exact padding
// needed to reach alignment.
func NonByteAligned(totalBits int) *Error {
	pad := (8 - totalBits%8) % 8
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindNonByteAligned,
		Detail: fmt.Sprintf("schema is %d bit(s) wide; add %d padding bit(s) to reach a byte boundary", totalBits, pad),
		Value:  totalBits,
	}
}

// BitValueOutOfRange creates an encode error for a value exceeding its field width
func BitValueOutOfRange(field string, value uint32, width int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindBitValueOutOfRange,
		Path:   []string{field},
		Detail: fmt.Sprintf("value %d does not fit in %d bit(s) (max %d)", value, width, uint64(1)<<width-1),
		Value:  value,
	}
}

// NoVariantSelected creates an error for a selector that declined to pick a variant
func NoVariantSelected(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoVariantSelected,
		Detail: "selector returned no variant key",
	}
}

// InvalidVariantKey creates an error for a selector key absent from the variant table
func InvalidVariantKey(phase Phase, key string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidVariantKey,
		Detail: fmt.Sprintf("no variant registered under key %q", key),
		Value:  key,
	}
}

// GrowthExhausted creates an error for an encode that hit the growth ceiling
func GrowthExhausted(maxByteLength int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindGrowthExhausted,
		Detail: fmt.Sprintf("encoded output does not fit in maxByteLength %d", maxByteLength),
	}
}

// InvalidConfig creates an error for malformed configuration
func InvalidConfig(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindInvalidConfig,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// DepthExceeded creates an error for a traversal nested deeper than the context allows
func DepthExceeded(phase Phase, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDepthExceeded,
		Detail: fmt.Sprintf("schema nesting exceeds depth limit %d", limit),
		Value:  limit,
	}
}
